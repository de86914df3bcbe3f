// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
)

type insertResult struct {
	ID     string  `json:"id"`
	Keys   []int64 `json:"keys"`
	Root   *int64  `json:"root"`
	Height int     `json:"height"`
	Count  int     `json:"count"`
}

func runInsert(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	if 0 == c.NArg() {
		return fault.ErrMissingKey
	}

	keys, err := parseKeys(c.Args())
	if nil != err {
		return err
	}

	tree := avl.New[int64](m.log)
	tree.BatchInsert(keys)

	if m.verbose {
		fmt.Fprintf(m.e, "inserted: %d keys\n", len(keys))
	}

	result := insertResult{
		ID:     tree.ID(),
		Keys:   tree.Keys(),
		Height: tree.Height(),
		Count:  tree.Count(),
	}
	if root := tree.Root(); nil != root {
		k := root.Key()
		result.Root = &k
	}

	return printJson(m.w, result)
}
