// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"golang.org/x/exp/constraints"
)

// Node - a node in the tree
type Node[K constraints.Ordered] struct {
	left   *Node[K] // left sub-tree, keys not greater than key
	right  *Node[K] // right sub-tree, keys not less than key
	key    K        // key part for ordering
	height int      // height of the sub-tree rooted here, leaf = 1
}

// Key - read the key from a node
func (p *Node[K]) Key() K {
	return p.key
}

// Height - height of the sub-tree rooted at this node, zero for nil
func (p *Node[K]) Height() int {
	if nil == p {
		return 0
	}
	return p.height
}

// Balance - left height minus right height, zero for nil
func (p *Node[K]) Balance() int {
	if nil == p {
		return 0
	}
	return p.left.Height() - p.right.Height()
}

// Left - the left child or nil
func (p *Node[K]) Left() *Node[K] {
	if nil == p {
		return nil
	}
	return p.left
}

// Right - the right child or nil
func (p *Node[K]) Right() *Node[K] {
	if nil == p {
		return nil
	}
	return p.right
}

// recompute the cached height from the children
func (p *Node[K]) update() {
	lh := p.left.Height()
	rh := p.right.Height()
	if lh > rh {
		p.height = 1 + lh
	} else {
		p.height = 1 + rh
	}
}

// internal: lowest node in a sub-tree
func (p *Node[K]) first() *Node[K] {
	if nil == p {
		return nil
	}
	for nil != p.left {
		p = p.left
	}
	return p
}

// internal: highest node in a sub-tree
func (p *Node[K]) last() *Node[K] {
	if nil == p {
		return nil
	}
	for nil != p.right {
		p = p.right
	}
	return p
}
