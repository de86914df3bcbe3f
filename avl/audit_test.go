// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/avl/mocks"
)

func TestAuditRecords(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockLogger(ctl)

	m.EXPECT().Debugf(gomock.Any(), gomock.Any()).AnyTimes()
	gomock.InOrder(
		m.EXPECT().Infof("%s: new tree", gomock.Any()).Times(1),
		m.EXPECT().Infof("%s: %s key: %v", gomock.Any(), "insert", 7).Times(1),
		m.EXPECT().Infof("%s: search key: %v  found: %t", gomock.Any(), 7, true).Times(1),
		m.EXPECT().Infof("%s: search key: %v  found: %t", gomock.Any(), 8, false).Times(1),
		m.EXPECT().Infof("%s: %s key: %v  removed: %t", gomock.Any(), "delete", 8, false).Times(1),
		m.EXPECT().Infof("%s: %s key: %v  removed: %t", gomock.Any(), "delete", 7, true).Times(1),
		m.EXPECT().Infof("%s: %s key: %v", gomock.Any(), "batch insert", 1).Times(1),
		m.EXPECT().Infof("%s: %s key: %v", gomock.Any(), "batch insert", 2).Times(1),
		m.EXPECT().Infof("%s: %s key: %v  removed: %t", gomock.Any(), "batch delete", 2, true).Times(1),
		m.EXPECT().Infof("%s: %s key: %v  removed: %t", gomock.Any(), "batch delete", 3, false).Times(1),
	)

	tree := avl.New[int](m)
	tree.Insert(7)
	assert.NotNil(t, tree.Search(7), "7 not found")
	assert.Nil(t, tree.Search(8), "8 found")
	assert.False(t, tree.Delete(8), "8 removed")
	assert.True(t, tree.Delete(7), "7 not removed")
	tree.BatchInsert([]int{1, 2})
	assert.Equal(t, 1, tree.BatchDelete([]int{2, 3}), "wrong batch delete count")
}

func TestAuditRecordsCarryTreeID(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockLogger(ctl)

	var id string
	m.EXPECT().Infof("%s: new tree", gomock.Any()).Do(func(format string, arguments ...interface{}) {
		id = arguments[0].(string)
	}).Times(1)

	tree := avl.New[int](m)
	assert.Equal(t, tree.ID(), id, "wrong id in audit record")

	m.EXPECT().Infof("%s: %s key: %v", tree.ID(), "insert", 10).Times(1)
	m.EXPECT().Infof("%s: %s key: %v", tree.ID(), "insert", 20).Times(1)
	m.EXPECT().Infof("%s: %s key: %v", tree.ID(), "insert", 30).Times(1)
	m.EXPECT().Debugf("%s: rotate left at key: %v", tree.ID(), 10).Times(1)

	tree.Insert(10)
	tree.Insert(20)
	tree.Insert(30)
}

func TestDistinctTreeIDs(t *testing.T) {
	a := newTree()
	b := newTree()
	assert.NotEqual(t, a.ID(), b.ID(), "trees share an id")
}

func TestCheckReportsThroughLogger(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockLogger(ctl)
	m.EXPECT().Infof(gomock.Any(), gomock.Any()).AnyTimes()
	m.EXPECT().Debugf(gomock.Any(), gomock.Any()).AnyTimes()
	m.EXPECT().Warnf(gomock.Any(), gomock.Any()).Times(0)

	tree := avl.New[int](m)
	tree.BatchInsert([]int{3, 1, 4, 1, 5, 9, 2, 6})
	assert.NoError(t, tree.Check(), "consistent tree failed check")
}
