// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package idmap provides secondary lookup indexes over the scene
// database, for UI pickers and save-time reference patching: from
// (category, name) to object, and from session id to object. Like the
// relations graph, a [Map] is a snapshot of the database at build
// time; callers either rebuild after mutating the database or keep
// the map current themselves with [Map.Insert] and [Map.Remove].
package idmap

import "cogentcore.org/scenedb/ids"

// Registry is the iteration capability a [Map] is built from;
// [cogentcore.org/scenedb.Main] implements it.
type Registry interface {
	ForEach(fn func(id ids.ID) bool)
}

// Which selects the indexes a [Map] maintains. Building only what a
// consumer needs keeps one-shot maps cheap.
type Which int64

const (
	// ByName indexes objects by (category, name).
	ByName Which = 1 << iota

	// BySession indexes objects by session id.
	BySession
)

type nameKey struct {
	cat  ids.Category
	name string
}

// Map holds the requested indexes. Build one with [New].
type Map struct {
	byName    map[nameKey]ids.ID
	bySession map[ids.SessionID]ids.ID
}

// New builds the indexes selected by which, in one pass over the
// registry. The caller must hold the registry's bulk-scan lock when
// the registry is shared.
func New(reg Registry, which Which) *Map {
	mp := &Map{}
	if which&ByName != 0 {
		mp.byName = map[nameKey]ids.ID{}
	}
	if which&BySession != 0 {
		mp.bySession = map[ids.SessionID]ids.ID{}
	}
	reg.ForEach(func(id ids.ID) bool {
		mp.Insert(id)
		return true
	})
	return mp
}

// Insert adds one object to the maintained indexes, replacing any
// object previously indexed under the same keys.
func (mp *Map) Insert(id ids.ID) {
	ib := id.AsIDBase()
	if mp.byName != nil {
		mp.byName[nameKey{id.Category(), ib.Name}] = id
	}
	if mp.bySession != nil {
		mp.bySession[ib.Session] = id
	}
}

// Remove drops one object from the maintained indexes. An index key
// now held by a different object (for example after a rename and
// re-insert) is left alone.
func (mp *Map) Remove(id ids.ID) {
	ib := id.AsIDBase()
	if mp.byName != nil {
		k := nameKey{id.Category(), ib.Name}
		if mp.byName[k] == id {
			delete(mp.byName, k)
		}
	}
	if mp.bySession != nil && mp.bySession[ib.Session] == id {
		delete(mp.bySession, ib.Session)
	}
}

// LookupName returns the object indexed under the given category and
// name, or nil if there is none (or the name index was not selected).
func (mp *Map) LookupName(cat ids.Category, name string) ids.ID {
	return mp.byName[nameKey{cat, name}]
}

// LookupSession returns the object indexed under the given session
// id, or nil if there is none (or the session index was not
// selected).
func (mp *Map) LookupSession(session ids.SessionID) ids.ID {
	return mp.bySession[session]
}
