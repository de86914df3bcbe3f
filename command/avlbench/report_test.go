// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/avltree/avl"
)

func TestHeightBound(t *testing.T) {
	assert.InDelta(t, 1.1128, heightBound(0), 0.001, "empty tree")
	assert.True(t, heightBound(1) >= 1, "single node")
	assert.True(t, heightBound(2) >= 2, "two nodes")
	assert.True(t, heightBound(1000000) < 29, "million nodes")
}

func TestReportEmptyTree(t *testing.T) {
	tree := avl.New[int](logger.New("avl"))

	r := makeReport(tree, nil, time.Second)
	assert.True(t, r.OK, "empty tree not ok")
	assert.Equal(t, 0, r.Count, "count")
	assert.Equal(t, 0, r.Height, "height")
	assert.Equal(t, "", r.Error, "error")
}

func TestReportJson(t *testing.T) {
	tree := avl.New[int](logger.New("avl"))
	tree.BatchInsert([]int{10, 20, 30, 40, 50})

	r := makeReport(tree, nil, 2*time.Second)

	buffer := &bytes.Buffer{}
	require.NoError(t, printJson(buffer, r), "print")

	decoded := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(buffer.Bytes(), &decoded), "decode")

	assert.Equal(t, 5.0, decoded["count"], "count")
	assert.Equal(t, 3.0, decoded["height"], "height")
	assert.Equal(t, true, decoded["ok"], "ok")
	assert.Equal(t, "2s", decoded["elapsed"], "elapsed")
	_, hasError := decoded["error"]
	assert.False(t, hasError, "error should be omitted")
}
