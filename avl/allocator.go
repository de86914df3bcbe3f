// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// allocate a new leaf node
func (tree *Tree[K]) newNode(key K) *Node[K] {
	tree.stats.allocated.increment()
	tree.count += 1
	return &Node[K]{
		key:    key,
		height: 1,
	}
}

// release a node that has been unlinked from the tree
//
// the links are cleared so a caller still holding the node from an
// earlier search does not keep the rest of the tree reachable
func (tree *Tree[K]) freeNode(p *Node[K]) {
	var zero K

	p.left = nil
	p.right = nil
	p.key = zero
	p.height = 0

	tree.stats.released.increment()
	tree.count -= 1
}
