// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"golang.org/x/exp/constraints"
)

// Search - find a node holding key, nil if not found
//
// the node belongs to the tree, its key and children can change
// after the call returns if the tree is modified; use Update to
// search and act on the result under one lock
func (tree *Tree[K]) Search(key K) *Node[K] {
	var p *Node[K]
	tree.Update(func(txn *Txn[K]) {
		p = txn.Search(key)
	})
	return p
}

// look up one key and write the audit record
func (tree *Tree[K]) searchKey(key K) *Node[K] {
	p := search(tree.root, key)
	tree.stats.searches.increment()
	if nil != p {
		tree.stats.found.increment()
	}
	tree.log.Infof("%s: search key: %v  found: %t", tree.id, key, nil != p)
	return p
}

func search[K constraints.Ordered](p *Node[K], key K) *Node[K] {
	if nil == p {
		return nil
	}

	switch {
	case key < p.key:
		return search(p.left, key)
	case key > p.key:
		return search(p.right, key)
	default:
		return p
	}
}
