// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/avltree/avl"
)

func runRun(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	var r io.Reader = m.r
	fileName := c.String("file")
	if "" != fileName && "-" != fileName {
		f, err := os.Open(fileName)
		if nil != err {
			return err
		}
		defer f.Close()
		r = f
	}

	if m.verbose {
		fmt.Fprintf(m.e, "script: %q\n", fileName)
	}

	tree := avl.New[int64](m.log)
	return runScript(tree, r, m.w)
}
