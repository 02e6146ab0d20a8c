// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package testdata provides small synthetic object types covering the
// database categories, for tests of the registry, the relations
// graph, and its consumers.
package testdata

import "cogentcore.org/scenedb/ids"

// Image is pixel data; it references nothing.
type Image struct {
	ids.IDBase
}

func NewImage(name string) *Image {
	return &Image{ids.IDBase{Name: name}}
}

func (im *Image) Category() ids.Category { return ids.Image }

func (im *Image) WalkReferences(fn ids.RefVisitor) {}

// Texture references an [Image] (possibly nil).
type Texture struct {
	ids.IDBase

	Image ids.ID
}

func NewTexture(name string) *Texture {
	return &Texture{IDBase: ids.IDBase{Name: name}}
}

func (tx *Texture) Category() ids.Category { return ids.Texture }

func (tx *Texture) WalkReferences(fn ids.RefVisitor) {
	fn(&tx.Image, ids.RefUser)
}

// Material references a [Texture] (possibly nil).
type Material struct {
	ids.IDBase

	Texture ids.ID
}

func NewMaterial(name string) *Material {
	return &Material{IDBase: ids.IDBase{Name: name}}
}

func (ma *Material) Category() ids.Category { return ids.Material }

func (ma *Material) WalkReferences(fn ids.RefVisitor) {
	fn(&ma.Texture, ids.RefUser)
}

// Mesh references a list of [Material]s.
type Mesh struct {
	ids.IDBase

	Materials []ids.ID
}

func NewMesh(name string) *Mesh {
	return &Mesh{IDBase: ids.IDBase{Name: name}}
}

func (me *Mesh) Category() ids.Category { return ids.Mesh }

func (me *Mesh) WalkReferences(fn ids.RefVisitor) {
	for i := range me.Materials {
		if !fn(&me.Materials[i], ids.RefUser) {
			return
		}
	}
}

// Object references its parent object, its object data (e.g. a
// [Mesh]), a material list, and a read-only proxy object.
type Object struct {
	ids.IDBase

	Parent    ids.ID
	Data      ids.ID
	Materials []ids.ID
	Proxy     ids.ID
}

func NewObject(name string) *Object {
	return &Object{IDBase: ids.IDBase{Name: name}}
}

func (ob *Object) Category() ids.Category { return ids.Object }

func (ob *Object) WalkReferences(fn ids.RefVisitor) {
	if !fn(&ob.Parent, ids.RefUser) {
		return
	}
	if !fn(&ob.Data, ids.RefUser) {
		return
	}
	for i := range ob.Materials {
		if !fn(&ob.Materials[i], ids.RefUser) {
			return
		}
	}
	fn(&ob.Proxy, ids.RefUser|ids.RefReadOnly)
}

// World is environment data; it references nothing.
type World struct {
	ids.IDBase
}

func NewWorld(name string) *World {
	return &World{ids.IDBase{Name: name}}
}

func (wo *World) Category() ids.Category { return ids.World }

func (wo *World) WalkReferences(fn ids.RefVisitor) {}

// Scene references a [World], a list of [Object]s, and the active
// object, which is a UI-only reference.
type Scene struct {
	ids.IDBase

	World        ids.ID
	Objects      []ids.ID
	ActiveObject ids.ID
}

func NewScene(name string) *Scene {
	return &Scene{IDBase: ids.IDBase{Name: name}}
}

func (sc *Scene) Category() ids.Category { return ids.Scene }

func (sc *Scene) WalkReferences(fn ids.RefVisitor) {
	if !fn(&sc.World, ids.RefUser) {
		return
	}
	for i := range sc.Objects {
		if !fn(&sc.Objects[i], ids.RefUser) {
			return
		}
	}
	fn(&sc.ActiveObject, ids.RefUIOnly)
}
