// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"golang.org/x/exp/constraints"

	"github.com/bitmark-inc/avltree/fault"
)

// Txn - handle to a tree whose lock is already held
//
// only valid inside the callback given to Update, operations on a
// finished Txn panic with fault.ErrTransactionFinished
type Txn[K constraints.Ordered] struct {
	tree     *Tree[K]
	finished bool
}

// Update - run fn with the tree lock held for its whole duration
//
// fn must use the Txn for tree access, calling the Tree methods from
// inside fn would block on the held lock
func (tree *Tree[K]) Update(fn func(txn *Txn[K])) {
	tree.lock.Lock()
	defer tree.lock.Unlock()

	txn := &Txn[K]{
		tree: tree,
	}
	defer func() {
		txn.finished = true
	}()

	fn(txn)
}

// Update - nested composition, fn runs with the same lock
func (txn *Txn[K]) Update(fn func(txn *Txn[K])) {
	txn.mustBeActive()
	fn(txn)
}

// Insert - add a key
func (txn *Txn[K]) Insert(key K) {
	txn.mustBeActive()
	txn.tree.insertKey(key, "insert")
}

// Delete - remove one node holding key, false if absent
func (txn *Txn[K]) Delete(key K) bool {
	txn.mustBeActive()
	return txn.tree.deleteKey(key, "delete")
}

// Search - find a node holding key, nil if not found
func (txn *Txn[K]) Search(key K) *Node[K] {
	txn.mustBeActive()
	return txn.tree.searchKey(key)
}

// BatchInsert - add each key in order
func (txn *Txn[K]) BatchInsert(keys []K) {
	txn.mustBeActive()
	for _, key := range keys {
		txn.tree.insertKey(key, "batch insert")
	}
}

// BatchDelete - remove each key in order, absent keys are skipped,
// returns the number of nodes removed
func (txn *Txn[K]) BatchDelete(keys []K) int {
	txn.mustBeActive()
	n := 0
	for _, key := range keys {
		if txn.tree.deleteKey(key, "batch delete") {
			n += 1
		}
	}
	return n
}

// Count - number of nodes currently in the tree
func (txn *Txn[K]) Count() int {
	txn.mustBeActive()
	return txn.tree.count
}

// Root - the current root node
func (txn *Txn[K]) Root() *Node[K] {
	txn.mustBeActive()
	return txn.tree.root
}

func (txn *Txn[K]) mustBeActive() {
	if txn.finished {
		panic(fault.ErrTransactionFinished)
	}
}
