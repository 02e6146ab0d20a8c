// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ids provides the identity layer of the scene database:
// the [ID] interface that every database object satisfies, the
// concrete [IDBase] that all object types embed, the database
// [Category] enumeration, and the reference-walk capability used to
// discover the links between objects.
package ids

import "sync/atomic"

// Continue and Break can be returned from [RefVisitor] functions
// to continue or break a reference walk.
const (
	Continue = true
	Break    = false
)

// SessionID is a stable, process-unique identity token for a database
// object. It is assigned once, when the object is first added to a
// database, and is never reused for the lifetime of the process,
// so a SessionID held across frees never aliases a newer object.
type SessionID uint64

// SessionNone is the zero [SessionID]. It is never assigned to an
// object; relation edges with a SessionNone target record a reference
// slot that is currently nil.
const SessionNone SessionID = 0

// sessionCounter is the process-wide [SessionID] allocator.
var sessionCounter atomic.Uint64

// NextSessionID returns a new process-unique [SessionID].
// It is safe to call from any goroutine.
func NextSessionID() SessionID {
	return SessionID(sessionCounter.Add(1))
}

// RefFlags is a bitmask of usage metadata carried by a reference slot,
// reported by [ID.WalkReferences] and recorded on relation edges.
type RefFlags int64

const (
	// RefUser is a normal, ownership-style use of the target.
	RefUser RefFlags = 1 << iota

	// RefReadOnly marks a slot that must never be rewritten in place
	// (remapping and save-time patching leave it alone).
	RefReadOnly

	// RefIndirect marks a use made through an indirection, such as a
	// linked library, rather than a direct field of the object.
	RefIndirect

	// RefUIOnly marks a use that only matters for UI traversal; such
	// slots are skipped by relations building unless explicitly
	// requested.
	RefUIOnly
)

// RefVisitor is called once per reference-bearing slot of an object,
// including slots that are currently nil. slot is the address of the
// field itself, so consumers may rewrite or clear the reference
// through it. Return [Continue] to keep walking or [Break] to stop.
type RefVisitor func(slot *ID, flags RefFlags) bool

// ID is the interface that all scene database objects satisfy.
// Concrete object types embed [IDBase] and add their own data fields;
// fields referencing other database objects must be declared with type
// ID and reported by [ID.WalkReferences].
type ID interface {

	// AsIDBase returns the [IDBase] of this object, which holds the
	// core database state: name, flags, and session id.
	AsIDBase() *IDBase

	// Category returns the database category this object belongs to.
	// It is fixed per concrete type.
	Category() Category

	// WalkReferences calls fn once per reference slot of this object,
	// in a fixed per-type order, including slots that are currently
	// nil. Implementations must stop walking as soon as fn returns
	// [Break].
	WalkReferences(fn RefVisitor)
}
