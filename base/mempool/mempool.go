// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mempool provides a bulk arena allocator for fixed-size
// records. Records are handed out from growable fixed-capacity blocks
// and are never freed individually: the whole pool is released at
// once. This amortizes allocation cost for structures with very many
// small records of one type, such as graph edge lists.
package mempool

// Pool allocates zeroed records of type T from fixed-capacity blocks.
// Allocated records keep stable addresses for the lifetime of the
// pool. The zero value is not usable; call [New].
type Pool[T any] struct {
	blocks   [][]T
	perBlock int
	used     int // records used in the last block
}

// New returns a new [Pool] that allocates perBlock records per block.
// Values less than 1 fall back to a default block size.
func New[T any](perBlock int) *Pool[T] {
	if perBlock < 1 {
		perBlock = 128
	}
	return &Pool[T]{perBlock: perBlock}
}

// Alloc returns a pointer to a new zeroed record, growing the pool by
// one block when the current block is full.
func (p *Pool[T]) Alloc() *T {
	if len(p.blocks) == 0 || p.used == p.perBlock {
		p.blocks = append(p.blocks, make([]T, p.perBlock))
		p.used = 0
	}
	b := p.blocks[len(p.blocks)-1]
	r := &b[p.used]
	p.used++
	return r
}

// Len returns the number of records allocated from the pool.
func (p *Pool[T]) Len() int {
	n := len(p.blocks)
	if n == 0 {
		return 0
	}
	return (n-1)*p.perBlock + p.used
}

// Free releases every block at once. The pool is empty and reusable
// afterwards; records obtained before the call must no longer be used.
func (p *Pool[T]) Free() {
	p.blocks = nil
	p.used = 0
}
