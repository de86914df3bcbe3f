// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// avlbench - drive a shared AVL tree from many workers
//
// a Lua configuration file sets the number of workers, the key space,
// the mix of operations and the overall operation rate.  When the run
// finishes the tree is checked and a JSON report is written to
// standard output.
//
// changes to the rate and the log levels in the configuration file
// are applied while the benchmark runs.
package main
