// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"sync/atomic"
)

// a counter that can be read without holding the tree lock
type counter uint64

func (c *counter) increment() {
	atomic.AddUint64((*uint64)(c), 1)
}

func (c *counter) value() uint64 {
	return atomic.LoadUint64((*uint64)(c))
}

// running totals for a tree
type statistics struct {
	inserts   counter
	deletes   counter
	removed   counter
	searches  counter
	found     counter
	rotations counter
	allocated counter
	released  counter
}

// Stats - a snapshot of the operation totals of a tree
type Stats struct {
	Inserts   uint64 `json:"inserts"`
	Deletes   uint64 `json:"deletes"`
	Removed   uint64 `json:"removed"`
	Searches  uint64 `json:"searches"`
	Found     uint64 `json:"found"`
	Rotations uint64 `json:"rotations"`
	Allocated uint64 `json:"allocated"`
	Released  uint64 `json:"released"`
}

// Stats - read the totals, does not take the tree lock so values
// may be from different points of a running operation
func (tree *Tree[K]) Stats() Stats {
	s := &tree.stats
	return Stats{
		Inserts:   s.inserts.value(),
		Deletes:   s.deletes.value(),
		Removed:   s.removed.value(),
		Searches:  s.searches.value(),
		Found:     s.found.value(),
		Rotations: s.rotations.value(),
		Allocated: s.allocated.value(),
		Released:  s.released.value(),
	}
}
