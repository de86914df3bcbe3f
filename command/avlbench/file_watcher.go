// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"path/filepath"

	"github.com/bitmark-inc/logger"
	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/ratelimit"
	"github.com/bitmark-inc/avltree/util"
)

const (
	watcherLoggerPrefix = "config-watcher"
)

// re-read the configuration file when it changes and apply the rate
// and log levels
//
// workers keep the batch size they started with so the burst never
// drops below it
type configWatcher struct {
	log       *logger.L
	watcher   *fsnotify.Watcher
	filePath  string
	limiter   *rate.Limiter
	batchSize int
	reloaded  chan *Configuration
}

func newConfigWatcher(targetFile string, log *logger.L, limiter *rate.Limiter, batchSize int) (*configWatcher, error) {
	filePath, err := filepath.Abs(filepath.Clean(targetFile))
	if nil != err {
		log.Errorf("parse file %s error: %s", targetFile, err)
		return nil, err
	}

	if !util.EnsureFileExists(filePath) {
		return nil, fault.ErrNotFoundConfigFile
	}

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		log.Errorf("new watcher with error: %s", err)
		return nil, err
	}

	// editors often replace the file so watch its directory
	err = watcher.Add(filepath.Dir(filePath))
	if nil != err {
		log.Errorf("watcher add error: %s", err)
		watcher.Close()
		return nil, err
	}

	return &configWatcher{
		log:       log,
		watcher:   watcher,
		filePath:  filePath,
		limiter:   limiter,
		batchSize: batchSize,
		reloaded:  make(chan *Configuration, 1),
	}, nil
}

// Run - background process loop
func (w *configWatcher) Run(args interface{}, shutdown <-chan struct{}) {
	log := w.log
	log.Infof("watching: %s", w.filePath)
	defer w.watcher.Close()

loop:
	for {
		select {
		case <-shutdown:
			break loop

		case event, ok := <-w.watcher.Events:
			if !ok {
				break loop
			}
			if filepath.Base(event.Name) != filepath.Base(w.filePath) {
				continue loop
			}
			log.Debugf("file event: %v", event)

			if watcherEventFileRemove(event) {
				log.Warnf("file %s removed, keep current settings", w.filePath)
				continue loop
			}
			if watcherEventFileChange(event) {
				w.reload()
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				break loop
			}
			log.Errorf("watcher error: %s", err)
		}
	}

	log.Info("stopped")
}

// apply the live settings from the configuration file
func (w *configWatcher) reload() {
	config, err := getConfiguration(w.filePath)
	if nil != err {
		w.log.Errorf("reload %s error: %s", w.filePath, err)
		return
	}

	if config.Burst < w.batchSize {
		w.log.Warnf("burst: %d  raised to running batch size: %d", config.Burst, w.batchSize)
		config.Burst = w.batchSize
	}

	logger.LoadLevels(config.Logging.Levels)
	ratelimit.Set(w.limiter, config.Rate, config.Burst)
	w.log.Infof("reloaded rate: %v  burst: %d", config.Rate, config.Burst)

	// only the latest is of interest
	select {
	case <-w.reloaded:
	default:
	}
	w.reloaded <- config
}

func watcherEventFileRemove(event fsnotify.Event) bool {
	return event.Op&fsnotify.Remove == fsnotify.Remove ||
		event.Op&fsnotify.Rename == fsnotify.Rename
}

func watcherEventFileChange(event fsnotify.Event) bool {
	return event.Op&fsnotify.Write == fsnotify.Write ||
		event.Op&fsnotify.Create == fsnotify.Create
}
