// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scenedb

import (
	"slices"

	"cogentcore.org/scenedb/ids"
	"cogentcore.org/scenedb/relations"
)

// RootCategories are the categories whose objects anchor liveness for
// [UnusedIDs]: anything reachable from an object of a root category is
// in use.
var RootCategories = []ids.Category{ids.Scene}

// UnusedIDs returns the objects nothing keeps alive: those not
// reachable through any chain of references from a root object. Roots
// are the objects of [RootCategories] and any object flagged
// [ids.FlagExtraUser]. Reference cycles among unused objects are
// collected as a whole.
//
// A fresh relations graph is built for the sweep and freed before
// returning, replacing any graph anchored on the Main. The caller
// must hold [Main.Lock] when the database is shared.
func UnusedIDs(mn *Main) ([]ids.ID, error) {
	if err := mn.RelationsCreate(0); err != nil {
		return nil, err
	}
	rl := mn.Relations()
	defer mn.RelationsFree()

	// Doom everything, then un-doom what the roots reach.
	rl.TagSet(relations.TagDoomed, true)

	var stack []*relations.Entry
	mn.ForEach(func(id ids.ID) bool {
		if isRoot(id) {
			if e := rl.Lookup(id.AsIDBase().Session); e != nil {
				stack = append(stack, e)
			}
		}
		return true
	})
	for len(stack) > 0 {
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if e.Tags&relations.TagDoomed == 0 {
			continue // already reached; cycles end here
		}
		e.Tags &^= relations.TagDoomed
		for it := e.To(); it != nil; it = it.Next() {
			if it.Session == ids.SessionNone {
				continue
			}
			if te := rl.Lookup(it.Session); te != nil {
				stack = append(stack, te)
			}
		}
	}

	var unused []ids.ID
	mn.ForEach(func(id ids.ID) bool {
		e := rl.Lookup(id.AsIDBase().Session)
		if e != nil && e.Tags&relations.TagDoomed != 0 {
			unused = append(unused, id)
		}
		return true
	})
	return unused, nil
}

// DeleteUnused removes every unused object from the database and
// returns the removed objects, in database iteration order.
func DeleteUnused(mn *Main) ([]ids.ID, error) {
	unused, err := UnusedIDs(mn)
	if err != nil {
		return nil, err
	}
	for _, id := range unused {
		mn.Remove(id)
	}
	return unused, nil
}

func isRoot(id ids.ID) bool {
	if id.AsIDBase().Flags&ids.FlagExtraUser != 0 {
		return true
	}
	return slices.Contains(RootCategories, id.Category())
}
