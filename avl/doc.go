// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - a height balanced binary search tree that is safe
// for use from multiple goroutines
//
// Every node caches the height of its sub-tree and after each insert
// or delete the heights differ by at most one between the two
// children of any node.  Keys are any ordered type, equal keys are
// kept and are placed in the right sub-tree.
//
// All operations on a tree are serialised by a single mutex which is
// held for the whole call, including the whole of a batch.  To
// compose several operations under one lock acquisition use
// Tree.Update, the callback receives a Txn whose operations run
// without locking again so nesting never deadlocks.
//
// Each insert, delete and search writes an audit record to the
// logger channel given to New.
package avl
