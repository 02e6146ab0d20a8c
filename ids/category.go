// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ids

import "strconv"

// Category identifies the typed sub-collection of the database that an
// object belongs to. Each concrete object type maps to exactly one
// Category.
type Category int32

const (
	Library Category = iota
	Image
	Texture
	NodeTree
	Material
	Mesh
	Curve
	Object
	Collection
	World
	Scene
	Text

	// CategoryN is the number of categories.
	CategoryN
)

var categoryNames = [CategoryN]string{
	"Library",
	"Image",
	"Texture",
	"NodeTree",
	"Material",
	"Mesh",
	"Curve",
	"Object",
	"Collection",
	"World",
	"Scene",
	"Text",
}

func (c Category) String() string {
	if c < 0 || c >= CategoryN {
		return "Category(" + strconv.Itoa(int(c)) + ")"
	}
	return categoryNames[c]
}

// CategoryOrder is the order in which whole-database traversals visit
// the categories: categories that tend to be referenced come before
// the categories that reference them. The order only affects edge-list
// ordering in the relations graph, never correctness, but it is fixed
// so that traversals are deterministic.
var CategoryOrder = [CategoryN]Category{
	Library,
	Image,
	Texture,
	NodeTree,
	Material,
	Mesh,
	Curve,
	Object,
	Collection,
	World,
	Scene,
	Text,
}
