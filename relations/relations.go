// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package relations implements the rebuildable relations graph of the
// scene database: a bidirectional adjacency index over every typed
// reference between database objects, answering "which objects does X
// reference" and "which objects reference X" in expected constant
// time. Consumers such as the unused-data sweep, dependency graph
// construction, save-time reference patching, and UI pickers build the
// graph with [Build], query it with [Relations.Lookup], drive
// mark-and-sweep traversals through entry [Tags], and release it with
// [Relations.Free].
//
// A [Relations] is a snapshot: it reflects the reference structure of
// the registry at the moment of the [Build] call. Mutating the
// registry afterwards (adding or removing objects, rewriting
// reference fields) leaves the graph stale, and staleness is never
// detected here; consumers must rebuild, or explicitly accept working
// from a stale snapshot.
package relations

import (
	"errors"

	"cogentcore.org/scenedb/base/mempool"
	"cogentcore.org/scenedb/ids"
)

// Registry is the iteration capability the graph builder consumes.
// [cogentcore.org/scenedb.Main] implements it; tests may supply any
// stable iteration over a set of objects.
type Registry interface {

	// ForEach calls fn once per live object, in a stable,
	// category-grouped order, until fn returns false.
	ForEach(fn func(id ids.ID) bool)
}

// Flags configure a [Build].
type Flags int64

const (
	// IncludeUI includes reference slots flagged [ids.RefUIOnly],
	// which are otherwise skipped.
	IncludeUI Flags = 1 << iota
)

// Tags is a bitset that consumers set on entries to drive
// mark-and-sweep style traversals over the graph without auxiliary
// structures. Every entry's tags are zero right after a build.
// Concurrent tag writers from independent goroutines are out of
// contract; tagging belongs to a single orchestrating traversal at a
// time.
type Tags int64

const (
	// TagDoomed marks an entry as a candidate for deletion.
	TagDoomed Tags = 1 << iota

	// TagProcessed marks an entry already handled by the current
	// traversal.
	TagProcessed

	// TagInProgress marks an entry the current traversal has entered
	// but not finished, for cycle detection in recursing consumers.
	TagInProgress
)

var (
	// ErrIdentityCollision means two distinct live objects claim the
	// same session id: an internal consistency violation in the
	// registry that can not be recovered from here.
	ErrIdentityCollision = errors.New("session id maps to two distinct objects")

	// ErrUnassignedID means a live object has no session id, so it
	// can not be indexed; objects must be added to a database before
	// relations are built over them.
	ErrUnassignedID = errors.New("object has no session id")
)

// Item is a single edge record in an entry's to or from list. Items
// are allocated from the graph's pool and reclaimed only by
// [Relations.Free], never individually. An Item does not keep either
// endpoint alive; it records the relation and enough identity to look
// the endpoints up.
type Item struct {
	next *Item

	// Slot is the address of the reference slot on the source object,
	// set on to-items only, so that consumers can rewrite or clear
	// the reference in place.
	Slot *ids.ID

	// Source is the referencing object, set on from-items only.
	Source ids.ID

	// Session is the identity at the far end of the edge: the target
	// for a to-item ([ids.SessionNone] when the slot is nil), the
	// source for a from-item.
	Session ids.SessionID

	// Usage is the usage metadata the slot carried when discovered.
	Usage ids.RefFlags
}

// Next returns the next item in the edge list, or nil at the end.
func (it *Item) Next() *Item {
	return it.next
}

// Entry aggregates every edge one identity participates in, both as
// source and as target. There is one entry per object that was live at
// build time or was the target of at least one discovered reference.
type Entry struct {
	id      ids.ID
	session ids.SessionID
	to      *Item
	from    *Item

	// Tags is the consumer-owned mark bitset; see [Tags].
	Tags Tags
}

// ID returns the object this entry indexes.
func (e *Entry) ID() ids.ID {
	return e.id
}

// Session returns the identity this entry is stored under.
func (e *Entry) Session() ids.SessionID {
	return e.session
}

// To returns the head of the outgoing edge list: one item per
// reference slot of this object, most recently discovered first.
func (e *Entry) To() *Item {
	return e.to
}

// From returns the head of the incoming edge list: one item per
// reference other objects hold into this one, most recently
// discovered first.
func (e *Entry) From() *Item {
	return e.from
}

// Relations is the graph artifact: the identity index over entries
// plus the pool backing their edge records. Build one with [Build].
// Querying after [Relations.Free] is invalid until the graph is
// rebuilt.
type Relations struct {
	entries map[ids.SessionID]*Entry
	pool    *mempool.Pool[Item]
	flags   Flags
}

// Lookup returns the entry for the given identity, or nil if the
// identity was not present at build time (for example, an object
// freed before the build). A nil result is a valid outcome, not an
// error.
func (rl *Relations) Lookup(session ids.SessionID) *Entry {
	return rl.entries[session]
}

// Len returns the number of entries in the graph.
func (rl *Relations) Len() int {
	return len(rl.entries)
}

// Entries calls fn for every entry in the graph, in unspecified
// order, until fn returns false.
func (rl *Relations) Entries(fn func(e *Entry) bool) {
	for _, e := range rl.entries {
		if !fn(e) {
			return
		}
	}
}

// TagSet sets or clears the given tag across every entry, in one pass
// over the index.
func (rl *Relations) TagSet(tag Tags, value bool) {
	for _, e := range rl.entries {
		if value {
			e.Tags |= tag
		} else {
			e.Tags &^= tag
		}
	}
}

// Free releases the edge pool in bulk and drops the identity index.
// It is safe to call on a never-built or already freed graph.
func (rl *Relations) Free() {
	if rl == nil {
		return
	}
	if rl.pool != nil {
		rl.pool.Free()
		rl.pool = nil
	}
	rl.entries = nil
}
