// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scenedb_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/scenedb"
	"cogentcore.org/scenedb/ids"
	"cogentcore.org/scenedb/testdata"
)

// usedMain builds a database where a scene keeps a chain of objects
// alive: scene -> object -> mesh -> material -> texture -> image.
func usedMain(t *testing.T) *scenedb.Main {
	t.Helper()
	mn := scenedb.NewMain()
	im := testdata.NewImage("image")
	tx := testdata.NewTexture("texture")
	ma := testdata.NewMaterial("material")
	me := testdata.NewMesh("mesh")
	ob := testdata.NewObject("object")
	sc := testdata.NewScene("scene")
	tx.Image = im
	ma.Texture = tx
	me.Materials = []ids.ID{ma}
	ob.Data = me
	sc.Objects = []ids.ID{ob}
	for _, id := range []ids.ID{im, tx, ma, me, ob, sc} {
		mn.Add(id)
	}
	return mn
}

func TestUnusedIDsNone(t *testing.T) {
	mn := usedMain(t)
	unused, err := scenedb.UnusedIDs(mn)
	require.NoError(t, err)
	assert.Empty(t, unused)
	// the sweep's graph must not stay anchored
	assert.Nil(t, mn.Relations())
}

func TestUnusedIDsOrphanChain(t *testing.T) {
	mn := usedMain(t)
	oim := testdata.NewImage("orphan-image")
	otx := testdata.NewTexture("orphan-texture")
	otx.Image = oim
	mn.Add(oim)
	mn.Add(otx)

	// the orphan texture is unused, so the image it references is too
	unused, err := scenedb.UnusedIDs(mn)
	require.NoError(t, err)
	assert.ElementsMatch(t, []ids.ID{oim, otx}, unused)
}

func TestUnusedIDsExtraUser(t *testing.T) {
	mn := usedMain(t)
	oim := testdata.NewImage("orphan-image")
	otx := testdata.NewTexture("orphan-texture")
	otx.Image = oim
	otx.Flags |= ids.FlagExtraUser
	mn.Add(oim)
	mn.Add(otx)

	// the flagged texture is a root, which also keeps its image alive
	unused, err := scenedb.UnusedIDs(mn)
	require.NoError(t, err)
	assert.Empty(t, unused)
}

// A reference cycle among unused objects is collected as a whole.
func TestUnusedIDsCycle(t *testing.T) {
	mn := usedMain(t)
	a := testdata.NewTexture("cycle-a")
	b := testdata.NewTexture("cycle-b")
	a.Image = b
	b.Image = a
	mn.Add(a)
	mn.Add(b)

	unused, err := scenedb.UnusedIDs(mn)
	require.NoError(t, err)
	assert.ElementsMatch(t, []ids.ID{a, b}, unused)
}

func TestDeleteUnused(t *testing.T) {
	mn := usedMain(t)
	used := mn.Len()
	oim := testdata.NewImage("orphan-image")
	otx := testdata.NewTexture("orphan-texture")
	otx.Image = oim
	mn.Add(oim)
	mn.Add(otx)

	deleted, err := scenedb.DeleteUnused(mn)
	require.NoError(t, err)
	assert.ElementsMatch(t, []ids.ID{oim, otx}, deleted)
	assert.Equal(t, used, mn.Len())

	// a second sweep finds nothing
	deleted, err = scenedb.DeleteUnused(mn)
	require.NoError(t, err)
	assert.Empty(t, deleted)
}
