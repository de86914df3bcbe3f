// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// avl-cli - build an AVL tree of integer keys and show the results
//
// the insert command builds a tree from its arguments, the run
// command executes a script of tree operations read from a file or
// standard input, one operation per line:
//
//   insert KEY
//   delete KEY
//   search KEY
//   batch-insert KEY...
//   batch-delete KEY...
//   print
//   keys
//   check
//
// blank lines and lines starting with "#" are ignored
package main
