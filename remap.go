// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scenedb

import (
	"cogentcore.org/scenedb/ids"
	"cogentcore.org/scenedb/relations"
)

// Remap rewrites every live reference to old so that it points to new
// instead, the way save-time pointer patching does, and returns the
// number of slots rewritten. new may be nil to clear the references.
// Slots flagged [ids.RefReadOnly] are left alone.
//
// Remap builds a fresh relations graph (including UI-only references,
// which must be patched too) to locate the users of old, and frees it
// before returning, since the rewrites make it stale. The caller must
// hold [Main.Lock] when the database is shared.
func Remap(mn *Main, old, new ids.ID) (int, error) {
	if err := mn.RelationsCreate(relations.IncludeUI); err != nil {
		return 0, err
	}
	rl := mn.Relations()
	defer mn.RelationsFree()

	session := old.AsIDBase().Session
	oe := rl.Lookup(session)
	if oe == nil {
		return 0, nil
	}
	n := 0
	for fit := oe.From(); fit != nil; fit = fit.Next() {
		se := rl.Lookup(fit.Session)
		if se == nil {
			continue
		}
		for it := se.To(); it != nil; it = it.Next() {
			if it.Session != session || *it.Slot != old {
				continue
			}
			if it.Usage&ids.RefReadOnly != 0 {
				continue
			}
			*it.Slot = new
			n++
		}
	}
	return n, nil
}
