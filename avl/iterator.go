// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"golang.org/x/exp/constraints"
)

// First - return the node with the lowest key value
func (tree *Tree[K]) First() *Node[K] {
	tree.lock.Lock()
	defer tree.lock.Unlock()
	return tree.root.first()
}

// Last - return the node with the highest key value
func (tree *Tree[K]) Last() *Node[K] {
	tree.lock.Lock()
	defer tree.lock.Unlock()
	return tree.root.last()
}

// Keys - all keys in ascending order, duplicates included
func (tree *Tree[K]) Keys() []K {
	tree.lock.Lock()
	defer tree.lock.Unlock()

	keys := make([]K, 0, tree.count)
	walk(tree.root, func(key K) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

// Walk - call fn for each key in ascending order until it returns
// false, the tree lock is held so fn must not use the tree
func (tree *Tree[K]) Walk(fn func(key K) bool) {
	tree.lock.Lock()
	defer tree.lock.Unlock()
	walk(tree.root, fn)
}

// in-order traversal, false once fn asked to stop
func walk[K constraints.Ordered](p *Node[K], fn func(key K) bool) bool {
	if nil == p {
		return true
	}
	if !walk(p.left, fn) {
		return false
	}
	if !fn(p.key) {
		return false
	}
	return walk(p.right, fn)
}
