// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package relations

import (
	"fmt"

	"cogentcore.org/scenedb/base/mempool"
	"cogentcore.org/scenedb/ids"
)

// itemsPerBlock is the edge pool block size. Real scenes produce tens
// of thousands of edges, so records are allocated in bulk.
const itemsPerBlock = 128

// Build constructs the relations graph for every live object in reg.
// Every object gets an entry, connected or not; every reference slot,
// including nil ones, gets a to-item on its holder's entry; every
// non-nil reference additionally gets a from-item on its target's
// entry. Slots flagged [ids.RefUIOnly] are skipped unless flags has
// [IncludeUI]. Reference cycles and self-references are handled by
// construction: the builder never recurses into targets, it only
// iterates the flat registry and resolves identities through the
// index.
//
// The caller must hold the registry's bulk-scan lock for the duration
// when other goroutines may be mutating the registry.
//
// On a consistency error the partially built graph is freed and a nil
// graph is returned: a failed build leaves nothing to query.
func Build(reg Registry, flags Flags) (*Relations, error) {
	rl := &Relations{
		entries: map[ids.SessionID]*Entry{},
		pool:    mempool.New[Item](itemsPerBlock),
		flags:   flags,
	}
	var werr error
	reg.ForEach(func(id ids.ID) bool {
		if _, werr = rl.ensure(id); werr != nil {
			return false
		}
		id.WalkReferences(func(slot *ids.ID, usage ids.RefFlags) bool {
			if usage&ids.RefUIOnly != 0 && flags&IncludeUI == 0 {
				return ids.Continue
			}
			werr = rl.link(id, slot, usage)
			return werr == nil
		})
		return werr == nil
	})
	if werr != nil {
		rl.Free()
		return nil, werr
	}
	return rl, nil
}

// ensure returns the entry for id, creating it on first sight.
// An identity must never map to two different entries: if the index
// already holds an entry for id's session that indexes a different
// object, the registry is corrupt.
func (rl *Relations) ensure(id ids.ID) (*Entry, error) {
	session := id.AsIDBase().Session
	if session == ids.SessionNone {
		return nil, fmt.Errorf("relations: %w: %q", ErrUnassignedID, id.AsIDBase().Name)
	}
	e := rl.entries[session]
	if e == nil {
		e = &Entry{id: id, session: session}
		rl.entries[session] = e
		return e, nil
	}
	if e.id != id {
		return nil, fmt.Errorf("relations: %w: session %d held by %q and %q",
			ErrIdentityCollision, session, e.id.AsIDBase().Name, id.AsIDBase().Name)
	}
	return e, nil
}

// link records one discovered reference slot of src: a to-item on
// src's entry always, and a from-item on the target's entry when the
// slot is non-nil. A nil slot still yields a to-item, with a
// [ids.SessionNone] target, so consumers can observe empty fields.
func (rl *Relations) link(src ids.ID, slot *ids.ID, usage ids.RefFlags) error {
	se, err := rl.ensure(src)
	if err != nil {
		return err
	}
	tgt := *slot
	it := rl.pool.Alloc()
	it.Slot = slot
	it.Usage = usage
	if tgt != nil {
		it.Session = tgt.AsIDBase().Session
	}
	it.next = se.to
	se.to = it

	if tgt == nil {
		return nil
	}
	te, err := rl.ensure(tgt)
	if err != nil {
		return err
	}
	fit := rl.pool.Alloc()
	fit.Source = src
	fit.Session = src.AsIDBase().Session
	fit.Usage = usage
	fit.next = te.from
	te.from = fit
	return nil
}
