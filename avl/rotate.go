// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// single right rotation, the left child becomes the sub-tree root
//
//	    y            x
//	   / \          / \
//	  x   c   →    a   y
//	 / \              / \
//	a   b            b   c
func (tree *Tree[K]) rotateRight(y *Node[K]) *Node[K] {
	x := y.left
	y.left = x.right
	x.right = y

	y.update()
	x.update()

	tree.stats.rotations.increment()
	tree.log.Debugf("%s: rotate right at key: %v", tree.id, y.key)
	return x
}

// single left rotation, mirror of rotateRight
func (tree *Tree[K]) rotateLeft(x *Node[K]) *Node[K] {
	y := x.right
	x.right = y.left
	y.left = x

	x.update()
	y.update()

	tree.stats.rotations.increment()
	tree.log.Debugf("%s: rotate left at key: %v", tree.id, x.key)
	return y
}

// restore the balance of a node whose children are balanced and
// whose height is current, returns the new sub-tree root
func (tree *Tree[K]) rebalance(p *Node[K]) *Node[K] {
	if nil == p {
		return nil
	}

	balance := p.Balance()

	if balance > 1 {
		if p.left.Balance() < 0 { // LR case
			p.left = tree.rotateLeft(p.left)
		}
		return tree.rotateRight(p)
	}

	if balance < -1 {
		if p.right.Balance() > 0 { // RL case
			p.right = tree.rotateRight(p.right)
		}
		return tree.rotateLeft(p)
	}

	return p
}
