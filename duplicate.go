// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scenedb

import (
	"reflect"

	"github.com/jinzhu/copier"

	"cogentcore.org/scenedb/ids"
)

// Duplicate returns a copy of the given object, added to the database
// with a fresh session id. Reference fields of the copy still point at
// the same objects as the original's: duplication is shallow in
// database terms, like object duplication in an editor. Fields with a
// `copier:"-"` struct tag are not copied.
func Duplicate(mn *Main, id ids.ID) (ids.ID, error) {
	dup := reflect.New(reflect.TypeOf(id).Elem()).Interface().(ids.ID)
	err := copier.CopyWithOption(dup, id, copier.Option{CaseSensitive: true})
	if err != nil {
		return nil, err
	}
	// Reference lists must not share backing storage with the
	// original, so that later slot rewrites stay independent.
	dv := reflect.ValueOf(dup).Elem()
	for i := 0; i < dv.NumField(); i++ {
		f := dv.Field(i)
		if f.Kind() != reflect.Slice || !f.CanSet() || f.IsNil() {
			continue
		}
		ns := reflect.MakeSlice(f.Type(), f.Len(), f.Len())
		reflect.Copy(ns, f)
		f.Set(ns)
	}
	dup.AsIDBase().Session = ids.SessionNone
	mn.Add(dup)
	return dup, nil
}
