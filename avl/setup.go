// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"sync"

	"github.com/hashicorp/go-uuid"
	"golang.org/x/exp/constraints"

	"github.com/bitmark-inc/avltree/fault"
)

// Logger - the part of a *logger.L channel used for audit records
type Logger interface {
	Debugf(format string, arguments ...interface{})
	Infof(format string, arguments ...interface{})
	Warnf(format string, arguments ...interface{})
}

// Tree - type to hold the root node of a tree
type Tree[K constraints.Ordered] struct {
	lock  sync.Mutex // serialises every operation
	root  *Node[K]
	count int
	id    string
	log   Logger
	stats statistics
}

// New - create an initially empty tree that writes audit records to
// the log channel
func New[K constraints.Ordered](log Logger) *Tree[K] {
	if nil == log {
		fault.Panic(fault.ErrNilLogger.Error())
	}

	id, err := uuid.GenerateUUID()
	fault.PanicIfError("avl: generate tree id", err)

	log.Infof("%s: new tree", id)

	return &Tree[K]{
		root:  nil,
		count: 0,
		id:    id,
		log:   log,
	}
}

// ID - identifier written in each audit record of this tree
func (tree *Tree[K]) ID() string {
	return tree.id
}

// IsEmpty - true if tree contains no data
func (tree *Tree[K]) IsEmpty() bool {
	tree.lock.Lock()
	defer tree.lock.Unlock()
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree[K]) Count() int {
	tree.lock.Lock()
	defer tree.lock.Unlock()
	return tree.count
}

// Height - height of the whole tree, zero when empty
func (tree *Tree[K]) Height() int {
	tree.lock.Lock()
	defer tree.lock.Unlock()
	return tree.root.Height()
}

// Root - return the root node of the tree
func (tree *Tree[K]) Root() *Node[K] {
	tree.lock.Lock()
	defer tree.lock.Unlock()
	return tree.root
}
