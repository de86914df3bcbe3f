// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/configuration"
	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/util"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultWorkers       = 4
	defaultDuration      = 10 // seconds
	defaultKeySpace      = 10000
	defaultBatchSize     = 16
	defaultInsertPercent = 40
	defaultDeletePercent = 30
	defaultBatchPercent  = 10
	defaultRate          = 0 // unlimited
	defaultBurst         = 100

	defaultLogDirectory = "log"
	defaultLogFile      = "avlbench.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "critical",
	}
)

// Configuration - contents of the Lua configuration file
type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	PidFile       string               `gluamapper:"pidfile" json:"pidfile"`
	Workers       int                  `gluamapper:"workers" json:"workers"`
	Duration      int                  `gluamapper:"duration" json:"duration"`
	KeySpace      int                  `gluamapper:"key_space" json:"key_space"`
	BatchSize     int                  `gluamapper:"batch_size" json:"batch_size"`
	InsertPercent int                  `gluamapper:"insert_percent" json:"insert_percent"`
	DeletePercent int                  `gluamapper:"delete_percent" json:"delete_percent"`
	BatchPercent  int                  `gluamapper:"batch_percent" json:"batch_percent"`
	Rate          float64              `gluamapper:"rate" json:"rate"`
	Burst         int                  `gluamapper:"burst" json:"burst"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	// parsing merges into the levels map so give it a fresh copy
	levels := make(map[string]string, len(defaultLogLevels))
	for tag, level := range defaultLogLevels {
		levels[tag] = level
	}

	options := &Configuration{
		DataDirectory: defaultDataDirectory,
		PidFile:       "", // no PidFile by default
		Workers:       defaultWorkers,
		Duration:      defaultDuration,
		KeySpace:      defaultKeySpace,
		BatchSize:     defaultBatchSize,
		InsertPercent: defaultInsertPercent,
		DeletePercent: defaultDeletePercent,
		BatchPercent:  defaultBatchPercent,
		Rate:          defaultRate,
		Burst:         defaultBurst,

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    levels,
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	if err := options.validate(); nil != err {
		return nil, err
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	}
	options.DataDirectory = filepath.Clean(options.DataDirectory)

	// this directory must exist - i.e. must be created prior to running
	if err := util.EnsureDirectory(options.DataDirectory); nil != err {
		return nil, err
	}

	// optional absolute paths i.e. blank or an absolute path
	if "" != options.PidFile {
		options.PidFile = util.EnsureAbsolute(options.DataDirectory, options.PidFile)
	}

	// log file must be a plain name, it is placed in the log directory
	if err := util.PlainFileName(options.Logging.File); nil != err {
		return nil, err
	}

	// make absolute and create directories if they do not already exist
	options.Logging.Directory = util.EnsureAbsolute(options.DataDirectory, options.Logging.Directory)
	if err := os.MkdirAll(options.Logging.Directory, 0700); nil != err {
		return nil, err
	}

	// done
	return options, nil
}

// check the workload values
func (c *Configuration) validate() error {
	if c.Workers <= 0 {
		return fault.ErrInvalidWorkerCount
	}
	if c.KeySpace <= 0 || c.BatchSize <= 0 || c.Duration <= 0 || c.Burst <= 0 {
		return fault.ErrInvalidCount
	}
	if c.Rate < 0 {
		return fault.ErrInvalidCount
	}
	if c.BatchSize > c.Burst {
		c.Burst = c.BatchSize
	}
	for _, p := range []int{c.InsertPercent, c.DeletePercent, c.BatchPercent} {
		if p < 0 || p > 100 {
			return fault.ErrInvalidPercentage
		}
	}
	if c.InsertPercent+c.DeletePercent > 100 {
		return fault.ErrInvalidPercentage
	}
	return nil
}

// the mix of operations for the workers
func (c *Configuration) mix() operationMix {
	return operationMix{
		insert:    c.InsertPercent,
		delete:    c.DeletePercent,
		batch:     c.BatchPercent,
		batchSize: c.BatchSize,
		keySpace:  c.KeySpace,
	}
}
