// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ids

// Flag is a bitmask of persistent per-object state flags.
type Flag int64

const (
	// FlagExtraUser keeps the object alive through the unused-data
	// sweep even when nothing in the database references it.
	FlagExtraUser Flag = 1 << iota
)

// IDBase is the concrete base that all scene database object types
// embed. It holds the state shared by every category.
type IDBase struct {

	// Name is the user-visible name of the object, unique within its
	// category by application convention (not enforced here).
	Name string

	// Flags holds persistent per-object state flags.
	Flags Flag

	// Session is the process-unique identity of this object, assigned
	// when the object is first added to a database. Copies must not
	// inherit it.
	Session SessionID `copier:"-"`
}

// AsIDBase returns the receiver, implementing part of the [ID]
// interface for every type embedding IDBase.
func (ib *IDBase) AsIDBase() *IDBase {
	return ib
}

func (ib *IDBase) String() string {
	return ib.Name
}
