// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"golang.org/x/exp/constraints"

	"github.com/bitmark-inc/avltree/fault"
)

// Check - verify ordering, balance, cached heights and the node count
func (tree *Tree[K]) Check() error {
	tree.lock.Lock()
	defer tree.lock.Unlock()

	_, n, err := check(tree.root, nil, nil, tree.log, tree.id)
	if nil != err {
		return err
	}
	if n != tree.count {
		tree.log.Warnf("%s: check: nodes: %d  count: %d", tree.id, n, tree.count)
		return fault.ErrCountMismatch
	}
	return nil
}

// internal consistency checker, all keys of p must be within
// [low, high] where nil means unbounded
//
// equal keys can sit on either side after a rotation so the bounds
// are inclusive
func check[K constraints.Ordered](p *Node[K], low *K, high *K, log Logger, id string) (int, int, error) {
	if nil == p {
		return 0, 0, nil
	}

	if (nil != low && p.key < *low) || (nil != high && p.key > *high) {
		log.Warnf("%s: check: key: %v  out of order", id, p.key)
		return 0, 0, fault.ErrOrderViolation
	}

	lh, ln, err := check(p.left, low, &p.key, log, id)
	if nil != err {
		return 0, 0, err
	}
	rh, rn, err := check(p.right, &p.key, high, log, id)
	if nil != err {
		return 0, 0, err
	}

	if lh-rh > 1 || rh-lh > 1 {
		log.Warnf("%s: check: key: %v  left height: %d  right height: %d", id, p.key, lh, rh)
		return 0, 0, fault.ErrBalanceViolation
	}

	h := 1 + lh
	if rh > lh {
		h = 1 + rh
	}
	if h != p.height {
		log.Warnf("%s: check: key: %v  height: %d  expected: %d", id, p.key, p.height, h)
		return 0, 0, fault.ErrHeightMismatch
	}

	return h, 1 + ln + rn, nil
}
