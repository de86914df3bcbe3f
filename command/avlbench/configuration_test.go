// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/avltree/fault"
)

const minimalConfig = `
return {
    data_directory = ".",
}
`

const fullConfig = `
local M = {}

M.data_directory = "."
M.pidfile = "avlbench.pid"
M.workers = 8
M.duration = 3
M.key_space = 500
M.batch_size = 32
M.insert_percent = 50
M.delete_percent = 25
M.batch_percent = 20
M.rate = 1000
M.burst = 10

M.logging = {
    directory = "logs",
    file = "bench.log",
    size = 4096,
    count = 2,
    levels = {
        DEFAULT = "info",
        avl = "debug",
    },
}

return M
`

func TestConfigurationDefaults(t *testing.T) {
	dir, fileName := writeTestConfig(t, minimalConfig)
	defer os.RemoveAll(dir)

	config, err := getConfiguration(fileName)
	require.NoError(t, err, "get configuration")

	absDir, _ := filepath.Abs(dir)
	assert.Equal(t, filepath.Clean(absDir), config.DataDirectory, "data directory")
	assert.Equal(t, "", config.PidFile, "pid file")
	assert.Equal(t, defaultWorkers, config.Workers, "workers")
	assert.Equal(t, defaultDuration, config.Duration, "duration")
	assert.Equal(t, defaultKeySpace, config.KeySpace, "key space")
	assert.Equal(t, defaultBatchSize, config.BatchSize, "batch size")
	assert.Equal(t, defaultInsertPercent, config.InsertPercent, "insert percent")
	assert.Equal(t, defaultDeletePercent, config.DeletePercent, "delete percent")
	assert.Equal(t, float64(defaultRate), config.Rate, "rate")
	assert.Equal(t, defaultBurst, config.Burst, "burst")

	assert.Equal(t, filepath.Join(config.DataDirectory, defaultLogDirectory), config.Logging.Directory, "log directory")
	assert.Equal(t, defaultLogFile, config.Logging.File, "log file")
	assert.Equal(t, defaultLogSize, config.Logging.Size, "log size")
	assert.Equal(t, defaultLogCount, config.Logging.Count, "log count")
	assert.Equal(t, "critical", config.Logging.Levels[logger.DefaultTag], "default level")

	info, err := os.Stat(config.Logging.Directory)
	require.NoError(t, err, "log directory not created")
	assert.True(t, info.IsDir(), "log directory is not a directory")
}

func TestConfigurationFromFile(t *testing.T) {
	dir, fileName := writeTestConfig(t, fullConfig)
	defer os.RemoveAll(dir)

	config, err := getConfiguration(fileName)
	require.NoError(t, err, "get configuration")

	assert.Equal(t, filepath.Join(config.DataDirectory, "avlbench.pid"), config.PidFile, "pid file")
	assert.Equal(t, 8, config.Workers, "workers")
	assert.Equal(t, 3, config.Duration, "duration")
	assert.Equal(t, 500, config.KeySpace, "key space")
	assert.Equal(t, 1000.0, config.Rate, "rate")

	// burst is raised to hold a whole batch
	assert.Equal(t, 32, config.Burst, "burst")

	assert.Equal(t, "bench.log", config.Logging.File, "log file")
	assert.Equal(t, "debug", config.Logging.Levels["avl"], "avl level")

	m := config.mix()
	assert.Equal(t, operationMix{insert: 50, delete: 25, batch: 20, batchSize: 32, keySpace: 500}, m, "mix")
}

func TestConfigurationErrors(t *testing.T) {
	items := []struct {
		content string
		err     error
	}{
		{`return { data_directory = ".", workers = 0 }`, fault.ErrInvalidWorkerCount},
		{`return { data_directory = ".", key_space = -1 }`, fault.ErrInvalidCount},
		{`return { data_directory = ".", duration = 0 }`, fault.ErrInvalidCount},
		{`return { data_directory = ".", rate = -5 }`, fault.ErrInvalidCount},
		{`return { data_directory = ".", insert_percent = 101 }`, fault.ErrInvalidPercentage},
		{`return { data_directory = ".", insert_percent = 60, delete_percent = 50 }`, fault.ErrInvalidPercentage},
		{`return { data_directory = ".", batch_percent = -1 }`, fault.ErrInvalidPercentage},
		{`return { data_directory = ".", logging = { file = "x/y.log" } }`, fault.ErrInvalidFileName},
	}

	for i, item := range items {
		dir, fileName := writeTestConfig(t, item.content)
		_, err := getConfiguration(fileName)
		assert.Equalf(t, item.err, err, "%d: wrong error for: %s", i, item.content)
		os.RemoveAll(dir)
	}
}

func TestConfigurationMissingDataDirectory(t *testing.T) {
	dir, fileName := writeTestConfig(t, `return { workers = 1 }`)
	defer os.RemoveAll(dir)

	_, err := getConfiguration(fileName)
	assert.Error(t, err, "blank data directory accepted")
}
