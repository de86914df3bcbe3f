// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/logger"
)

const (
	testingDirName = "testing"
)

func TestMain(m *testing.M) {
	setupTestLogger()
	rc := m.Run()
	teardownTestLogger()
	os.Exit(rc)
}

func setupTestLogger() {
	removeFiles()
	_ = os.Mkdir(testingDirName, 0700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

func teardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	os.RemoveAll(testingDirName)
}

// create a data directory holding a configuration file
func writeTestConfig(t *testing.T, content string) (string, string) {
	dir, err := ioutil.TempDir("", "avlbench")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}

	fileName := filepath.Join(dir, "avlbench.conf")
	if err := ioutil.WriteFile(fileName, []byte(content), 0600); nil != err {
		os.RemoveAll(dir)
		t.Fatalf("write config error: %s", err)
	}
	return dir, fileName
}
