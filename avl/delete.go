// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Delete - remove one node holding key
//
// returns false if the key was not in the tree, which is not an error
func (tree *Tree[K]) Delete(key K) bool {
	removed := false
	tree.Update(func(txn *Txn[K]) {
		removed = txn.Delete(key)
	})
	return removed
}

// BatchDelete - remove each key in order as a single locked unit,
// returns the number of nodes removed
func (tree *Tree[K]) BatchDelete(keys []K) int {
	n := 0
	tree.Update(func(txn *Txn[K]) {
		n = txn.BatchDelete(keys)
	})
	return n
}

// remove one key from the tree and write the audit record
func (tree *Tree[K]) deleteKey(key K, operation string) bool {
	removed := false
	tree.root, removed = tree.delete(tree.root, key)
	tree.stats.deletes.increment()
	if removed {
		tree.stats.removed.increment()
	}
	tree.log.Infof("%s: %s key: %v  removed: %t", tree.id, operation, key, removed)
	return removed
}

// internal delete routine, returns the possibly new sub-tree root
func (tree *Tree[K]) delete(p *Node[K], key K) (*Node[K], bool) {
	if nil == p { // key not in tree
		return nil, false
	}

	removed := false
	switch {
	case key < p.key:
		p.left, removed = tree.delete(p.left, key)
		if !removed {
			return p, false
		}

	case key > p.key:
		p.right, removed = tree.delete(p.right, key)
		if !removed {
			return p, false
		}

	default: // found
		if nil == p.left {
			r := p.right
			tree.freeNode(p)
			return r, true
		}
		if nil == p.right {
			l := p.left
			tree.freeNode(p)
			return l, true
		}

		// two children: take over the successor key then remove
		// the successor from the right sub-tree by key
		successor := p.right.first()
		p.key = successor.key
		p.right, removed = tree.delete(p.right, successor.key)
	}

	p.update()
	return tree.rebalance(p), removed
}
