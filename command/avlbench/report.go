// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/bitmark-inc/avltree/avl"
)

type report struct {
	Workers    int               `json:"workers"`
	Elapsed    string            `json:"elapsed"`
	Operations map[string]uint64 `json:"operations"`
	Found      uint64            `json:"found"`
	Removed    uint64            `json:"removed"`
	Stats      avl.Stats         `json:"stats"`
	Count      int               `json:"count"`
	Height     int               `json:"height"`
	Bound      float64           `json:"bound"`
	OK         bool              `json:"ok"`
	Error      string            `json:"error,omitempty"`
}

// maximum height of an AVL tree holding n keys
func heightBound(n int) float64 {
	return 1.4405*math.Log2(float64(n+2)) - 0.3277
}

// must only be called after all workers have stopped
func makeReport(tree *avl.Tree[int], workers []*worker, elapsed time.Duration) *report {
	r := &report{
		Workers:    len(workers),
		Elapsed:    elapsed.String(),
		Operations: make(map[string]uint64),
	}

	for _, w := range workers {
		for op, n := range w.counts {
			r.Operations[operation(op).String()] += n
		}
		r.Found += w.found
		r.Removed += w.removed
	}

	r.Stats = tree.Stats()
	r.Count = tree.Count()
	r.Height = tree.Height()
	r.Bound = heightBound(r.Count)
	r.OK = true

	if err := tree.Check(); nil != err {
		r.OK = false
		r.Error = err.Error()
	} else if float64(r.Height) > r.Bound {
		r.OK = false
		r.Error = fmt.Sprintf("height: %d exceeds bound: %.3f", r.Height, r.Bound)
	}
	return r
}

func printJson(handle io.Writer, message interface{}) error {

	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return err
	}

	fmt.Fprintf(handle, "%s\n", b)
	return nil
}
