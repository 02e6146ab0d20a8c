// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scenedb implements the in-memory scene database of a
// content creation application: the central [Main] registry holding
// every data object in an open project, partitioned by category, plus
// the rebuildable [relations] graph recording which objects reference
// which. Consumers of the graph provided here are the unused-data
// sweep ([UnusedIDs], [DeleteUnused]) and reference patching
// ([Remap]); dependency schedulers and UI layers live outside this
// module and consume the same surfaces.
package scenedb

import (
	"errors"
	"log/slog"
	"slices"
	"sync"

	"github.com/google/uuid"

	"cogentcore.org/scenedb/ids"
	"cogentcore.org/scenedb/relations"
)

// ErrNotInMain is returned for operations on an object that is not in
// the database.
var ErrNotInMain = errors.New("object not in database")

// Main is one open project database. It holds the live objects of
// every category, insertion-ordered within each, and anchors the
// current relations graph between builds.
//
// Any bulk traversal over every live object ([Main.ForEach],
// [Main.RelationsCreate], [UnusedIDs], ...) must be wrapped in
// [Main.Lock] / [Main.Unlock] when other goroutines may be operating
// on the same database. Per-object field access is outside the lock's
// scope; it is the mutating code's own responsibility.
type Main struct {

	// Path is the file path this database was loaded from, or empty
	// for a never-saved project.
	Path string

	// UUID identifies this database instance for the lifetime of the
	// process.
	UUID uuid.UUID

	// lists holds the live objects, partitioned by category.
	lists [ids.CategoryN][]ids.ID

	// relations is the current relations graph, nil when not built.
	relations *relations.Relations

	lock sync.Mutex
}

// NewMain returns a new, empty database.
func NewMain() *Main {
	return &Main{UUID: uuid.New()}
}

// Lock acquires the bulk-scan lock. It blocks until the lock is free,
// with no timeout or cancellation, and is not reentrant.
func (mn *Main) Lock() {
	mn.lock.Lock()
}

// Unlock releases the bulk-scan lock.
func (mn *Main) Unlock() {
	mn.lock.Unlock()
}

// Add adds the given object to the database, assigning a session id
// if the object does not already have one. Adding an object that is
// already in the database is a programmer error; it is logged and
// ignored.
func (mn *Main) Add(id ids.ID) {
	ib := id.AsIDBase()
	c := id.Category()
	if slices.Contains(mn.lists[c], id) {
		slog.Error("scenedb.Main.Add: object already in database", "name", ib.Name, "category", c)
		return
	}
	if ib.Session == ids.SessionNone {
		ib.Session = ids.NextSessionID()
	}
	mn.lists[c] = append(mn.lists[c], id)
}

// Remove detaches the object from the database. The object keeps its
// session id; the relations graph, if built, becomes stale. Returns
// [ErrNotInMain] if the object is not present.
func (mn *Main) Remove(id ids.ID) error {
	c := id.Category()
	i := slices.Index(mn.lists[c], id)
	if i < 0 {
		return ErrNotInMain
	}
	mn.lists[c] = slices.Delete(mn.lists[c], i, i+1)
	return nil
}

// ForEach calls fn once per live object, walking the categories in
// [ids.CategoryOrder] and each category in insertion order, until fn
// returns false. It satisfies [relations.Registry]. Callers must hold
// [Main.Lock] when the database is shared.
func (mn *Main) ForEach(fn func(id ids.ID) bool) {
	for _, c := range ids.CategoryOrder {
		for _, id := range mn.lists[c] {
			if !fn(id) {
				return
			}
		}
	}
}

// InCategory returns the live objects of the given category, in
// insertion order. The returned slice is the database's own storage;
// callers must not mutate it.
func (mn *Main) InCategory(c ids.Category) []ids.ID {
	return mn.lists[c]
}

// Len returns the total number of live objects across all categories.
func (mn *Main) Len() int {
	n := 0
	for i := range mn.lists {
		n += len(mn.lists[i])
	}
	return n
}

// IsEmpty reports whether the database holds no objects.
func (mn *Main) IsEmpty() bool {
	return mn.Len() == 0
}

// IDSet returns the set of all live objects. If set is non-nil, it is
// extended in place and returned, so sets can be accumulated across
// multiple databases.
func (mn *Main) IDSet(set map[ids.ID]struct{}) map[ids.ID]struct{} {
	if set == nil {
		set = make(map[ids.ID]struct{}, mn.Len())
	}
	mn.ForEach(func(id ids.ID) bool {
		set[id] = struct{}{}
		return true
	})
	return set
}

// RelationsCreate builds the relations graph over the current
// database contents and anchors it on the Main, tearing down any
// prior graph first. The caller must hold [Main.Lock] when the
// database is shared. On error, no graph remains anchored:
// [Main.Relations] returns nil.
func (mn *Main) RelationsCreate(flags relations.Flags) error {
	mn.RelationsFree()
	rl, err := relations.Build(mn, flags)
	if err != nil {
		return err
	}
	mn.relations = rl
	return nil
}

// Relations returns the currently anchored relations graph, or nil
// when none has been built (or the last build failed).
func (mn *Main) Relations() *relations.Relations {
	return mn.relations
}

// RelationsFree tears down the anchored relations graph; no-op when
// none is built.
func (mn *Main) RelationsFree() {
	if mn.relations != nil {
		mn.relations.Free()
		mn.relations = nil
	}
}

// Free empties the database: every category list is dropped at once
// and the relations graph is freed. Per-object teardown is each
// category's own concern and does not happen here. The Main remains
// usable afterwards.
func (mn *Main) Free() {
	mn.RelationsFree()
	for i := range mn.lists {
		mn.lists[i] = nil
	}
}
