// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Insert - add a key to the tree, duplicates are kept
func (tree *Tree[K]) Insert(key K) {
	tree.Update(func(txn *Txn[K]) {
		txn.Insert(key)
	})
}

// BatchInsert - add each key in order as a single locked unit
func (tree *Tree[K]) BatchInsert(keys []K) {
	tree.Update(func(txn *Txn[K]) {
		txn.BatchInsert(keys)
	})
}

// add one key to the tree and write the audit record
func (tree *Tree[K]) insertKey(key K, operation string) {
	tree.root = tree.insert(tree.root, key)
	tree.stats.inserts.increment()
	tree.log.Infof("%s: %s key: %v", tree.id, operation, key)
}

// internal routine for insert, returns the possibly new sub-tree root
func (tree *Tree[K]) insert(p *Node[K], key K) *Node[K] {
	if nil == p {
		return tree.newNode(key)
	}

	if key < p.key {
		p.left = tree.insert(p.left, key)
	} else {
		p.right = tree.insert(p.right, key)
	}

	p.update()
	return tree.rebalance(p)
}
