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
)

type metadata struct {
	verbose bool
	log     *auditLog
	e       io.Writer
	w       io.Writer
	r       io.Reader
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	app := newApp(os.Stdin, os.Stdout, os.Stderr)

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp(r io.Reader, w io.Writer, e io.Writer) *cli.App {

	app := cli.NewApp()
	app.Name = "avl-cli"
	app.Usage = "build an AVL tree of integer keys"
	app.Version = version
	app.HideVersion = true

	app.Writer = w
	app.ErrWriter = e

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " print tree audit records",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "insert",
			Usage:     "insert keys into an empty tree and show the result",
			ArgsUsage: "KEY...",
			Flags:     []cli.Flag{},
			Action:    runInsert,
		},
		{
			Name:      "run",
			Usage:     "execute a script of tree operations",
			ArgsUsage: " ",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "file, f",
					Value: "",
					Usage: " script `FILE` [default: standard input]",
				},
			},
			Action: runRun,
		},
		{
			Name:  "version",
			Usage: "display avl-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		verbose := c.GlobalBool("verbose")

		c.App.Metadata["config"] = &metadata{
			verbose: verbose,
			log: &auditLog{
				verbose: verbose,
				e:       e,
			},
			e: e,
			w: c.App.Writer,
			r: r,
		}
		return nil
	}

	return app
}
