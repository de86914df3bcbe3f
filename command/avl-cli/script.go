// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
)

// one line of a script
type scriptOperation struct {
	line      int
	operation string
	keys      []int64
}

// error with the script line that caused it
type scriptError struct {
	line int
	err  error
}

func (e *scriptError) Error() string {
	return fmt.Sprintf("line: %d  error: %s", e.line, e.err)
}

// number of keys each operation takes, -1 is one or more
var scriptArity = map[string]int{
	"insert":       1,
	"delete":       1,
	"search":       1,
	"batch-insert": -1,
	"batch-delete": -1,
	"print":        0,
	"keys":         0,
	"check":        0,
}

// output record for each executed line
type scriptResult struct {
	Line      int         `json:"line"`
	Operation string      `json:"operation"`
	Keys      []int64     `json:"keys,omitempty"`
	Result    interface{} `json:"result"`
	Count     int         `json:"count"`
}

// split a line into an operation, blank and comment lines give nil
func parseLine(line int, text string) (*scriptOperation, error) {
	text = strings.TrimSpace(text)
	if "" == text || strings.HasPrefix(text, "#") {
		return nil, nil
	}

	fields := strings.Fields(text)
	op := &scriptOperation{
		line:      line,
		operation: strings.ToLower(fields[0]),
	}

	arity, ok := scriptArity[op.operation]
	if !ok {
		return nil, &scriptError{line: line, err: fault.ErrUnknownScriptOperation}
	}

	keys, err := parseKeys(fields[1:])
	if nil != err {
		return nil, &scriptError{line: line, err: err}
	}

	switch {
	case arity < 0 && 0 == len(keys):
		return nil, &scriptError{line: line, err: fault.ErrMissingKey}
	case arity >= 0 && arity != len(keys):
		if 0 == len(keys) {
			return nil, &scriptError{line: line, err: fault.ErrMissingKey}
		}
		return nil, &scriptError{line: line, err: fault.ErrInvalidCount}
	}

	op.keys = keys
	return op, nil
}

// convert decimal strings to keys
func parseKeys(arguments []string) ([]int64, error) {
	keys := make([]int64, 0, len(arguments))
	for _, s := range arguments {
		k, err := strconv.ParseInt(s, 10, 64)
		if nil != err {
			return nil, fault.ErrInvalidKey
		}
		keys = append(keys, k)
	}
	return keys, nil
}

// read and execute each line in turn stopping at the first error,
// lines before the error have already been applied to the tree
func runScript(tree *avl.Tree[int64], r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line += 1
		op, err := parseLine(line, scanner.Text())
		if nil != err {
			return err
		}
		if nil == op {
			continue
		}
		if err := execute(tree, op, w); nil != err {
			return err
		}
	}
	return scanner.Err()
}

// apply one operation and print its result
func execute(tree *avl.Tree[int64], op *scriptOperation, w io.Writer) error {
	result := &scriptResult{
		Line:      op.line,
		Operation: op.operation,
		Keys:      op.keys,
	}

	switch op.operation {
	case "insert":
		tree.Insert(op.keys[0])
		result.Result = true
	case "delete":
		result.Result = tree.Delete(op.keys[0])
	case "search":
		result.Result = nil != tree.Search(op.keys[0])
	case "batch-insert":
		tree.BatchInsert(op.keys)
		result.Result = len(op.keys)
	case "batch-delete":
		result.Result = tree.BatchDelete(op.keys)
	case "keys":
		result.Result = tree.Keys()
	case "check":
		if err := tree.Check(); nil != err {
			return &scriptError{line: op.line, err: err}
		}
		result.Result = "ok"
	case "print":
		tree.Print(w)
		return nil
	default:
		return &scriptError{line: op.line, err: fault.ErrUnknownScriptOperation}
	}

	result.Count = tree.Count()
	return printJson(w, result)
}
