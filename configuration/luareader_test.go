// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/avltree/configuration"
	"github.com/bitmark-inc/avltree/fault"
)

type logging struct {
	Directory string            `gluamapper:"directory"`
	Levels    map[string]string `gluamapper:"levels"`
}

type sample struct {
	DataDirectory string  `gluamapper:"data_directory"`
	Workers       int     `gluamapper:"workers"`
	Rate          float64 `gluamapper:"rate"`
	Source        string  `gluamapper:"source"`
	Logging       logging `gluamapper:"logging"`
}

const sampleConfig = `
local M = {}

M.data_directory = "."
M.workers = 2 * 3
M.source = arg[0]

M.logging = {
    directory = "log",
    levels = {
        main = "info",
        DEFAULT = "error",
    },
}

return M
`

func writeConfig(t *testing.T, content string) (string, func()) {
	dir, err := ioutil.TempDir("", "configuration")
	require.NoError(t, err, "temp dir")

	fileName := filepath.Join(dir, "test.conf")
	err = ioutil.WriteFile(fileName, []byte(content), 0600)
	require.NoError(t, err, "write config")

	return fileName, func() { os.RemoveAll(dir) }
}

func TestParseConfigurationFile(t *testing.T) {
	fileName, cleanup := writeConfig(t, sampleConfig)
	defer cleanup()

	config := &sample{
		Rate: 250,
	}
	err := configuration.ParseConfigurationFile(fileName, config)
	require.NoError(t, err, "parse")

	assert.Equal(t, ".", config.DataDirectory, "data directory")
	assert.Equal(t, 6, config.Workers, "workers")
	assert.Equal(t, 250.0, config.Rate, "default was overwritten")
	assert.Equal(t, fileName, config.Source, "arg[0]")
	assert.Equal(t, "log", config.Logging.Directory, "logging directory")
	assert.Equal(t, "info", config.Logging.Levels["main"], "main level")
	assert.Equal(t, "error", config.Logging.Levels["DEFAULT"], "default level")
}

func TestParseMissingFile(t *testing.T) {
	err := configuration.ParseConfigurationFile("/no/such/directory/test.conf", &sample{})
	assert.Equal(t, fault.ErrNotFoundConfigFile, err, "missing file")
}

func TestParseNotStructPointer(t *testing.T) {
	fileName, cleanup := writeConfig(t, sampleConfig)
	defer cleanup()

	err := configuration.ParseConfigurationFile(fileName, sample{})
	assert.Equal(t, fault.ErrInvalidStructPointer, err, "struct value")

	var config *sample
	err = configuration.ParseConfigurationFile(fileName, config)
	assert.Equal(t, fault.ErrInvalidStructPointer, err, "nil pointer")
}

func TestParseNoTable(t *testing.T) {
	fileName, cleanup := writeConfig(t, "return 42\n")
	defer cleanup()

	err := configuration.ParseConfigurationFile(fileName, &sample{})
	assert.Equal(t, fault.ErrInvalidConfiguration, err, "non table result")
}

func TestParseSyntaxError(t *testing.T) {
	fileName, cleanup := writeConfig(t, "local M = {\nreturn M\n")
	defer cleanup()

	err := configuration.ParseConfigurationFile(fileName, &sample{})
	assert.Error(t, err, "syntax error not reported")
}
