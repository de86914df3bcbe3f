// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"math/rand"

	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/ratelimit"
)

type operation int

const (
	opSearch operation = iota
	opInsert
	opDelete
	opBatchInsert
	opBatchDelete
	operationCount // must be last
)

func (op operation) String() string {
	switch op {
	case opSearch:
		return "search"
	case opInsert:
		return "insert"
	case opDelete:
		return "delete"
	case opBatchInsert:
		return "batch-insert"
	case opBatchDelete:
		return "batch-delete"
	default:
		return fmt.Sprintf("operation(%d)", int(op))
	}
}

// percentages are of all operations except batch which is the share
// of inserts and deletes that are done as a batch
type operationMix struct {
	insert    int
	delete    int
	batch     int
	batchSize int
	keySpace  int
}

// select an operation from two rolls in [0, 100)
func (m operationMix) choose(roll int, batchRoll int) operation {
	switch {
	case roll < m.insert:
		if batchRoll < m.batch {
			return opBatchInsert
		}
		return opInsert
	case roll < m.insert+m.delete:
		if batchRoll < m.batch {
			return opBatchDelete
		}
		return opDelete
	default:
		return opSearch
	}
}

type worker struct {
	log     *logger.L
	tree    *avl.Tree[int]
	limiter *rate.Limiter
	mix     operationMix
	random  *rand.Rand
	counts  [operationCount]uint64
	found   uint64
	removed uint64
}

func newWorker(n int, tree *avl.Tree[int], limiter *rate.Limiter, mix operationMix, seed int64) *worker {
	return &worker{
		log:     logger.New(fmt.Sprintf("worker-%d", n)),
		tree:    tree,
		limiter: limiter,
		mix:     mix,
		random:  rand.New(rand.NewSource(seed)),
	}
}

// Run - background process loop
func (w *worker) Run(args interface{}, shutdown <-chan struct{}) {
	log := w.log
	log.Info("starting…")

loop:
	for {
		select {
		case <-shutdown:
			break loop
		default:
		}
		if err := w.step(); nil != err {
			log.Errorf("step error: %s", err)
		}
	}

	log.Infof("stopped after: %d operations", w.total())
}

// perform one randomly chosen operation
func (w *worker) step() error {
	op := w.mix.choose(w.random.Intn(100), w.random.Intn(100))

	switch op {
	case opBatchInsert, opBatchDelete:
		if err := ratelimit.LimitN(w.limiter, w.mix.batchSize, w.mix.batchSize); nil != err {
			return err
		}
	default:
		if err := ratelimit.Limit(w.limiter); nil != err {
			return err
		}
	}

	switch op {
	case opSearch:
		if nil != w.tree.Search(w.key()) {
			w.found += 1
		}
	case opInsert:
		w.tree.Insert(w.key())
	case opDelete:
		if w.tree.Delete(w.key()) {
			w.removed += 1
		}
	case opBatchInsert:
		w.tree.BatchInsert(w.keys())
	case opBatchDelete:
		w.removed += uint64(w.tree.BatchDelete(w.keys()))
	}
	w.counts[op] += 1
	return nil
}

func (w *worker) key() int {
	return w.random.Intn(w.mix.keySpace)
}

func (w *worker) keys() []int {
	keys := make([]int, w.mix.batchSize)
	for i := range keys {
		keys[i] = w.key()
	}
	return keys
}

func (w *worker) total() uint64 {
	n := uint64(0)
	for _, c := range w.counts {
		n += c
	}
	return n
}
