// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/background"
	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/ratelimit"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--quiet] --config-file=FILE", program)
	}

	if len(arguments) > 0 {
		exitwithstatus.Message("%s: unexpected arguments: %q", program, arguments)
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	verbose := len(options["verbose"]) > 0
	quiet := len(options["quiet"]) > 0

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	masterConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	if verbose {
		masterConfiguration.Logging.Console = true
	}

	// start logging
	if err = logger.Initialise(masterConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	// set up the fault panic log (now that logging is available
	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("shutting down…")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("masterConfiguration: %v", masterConfiguration)

	// optional PID file
	// use if not running under a supervisor program like daemon(8)
	if "" != masterConfiguration.PidFile {
		lockFile, err := os.OpenFile(masterConfiguration.PidFile, os.O_WRONLY|os.O_EXCL|os.O_CREATE, os.ModeExclusive|0600)
		if err != nil {
			if os.IsExist(err) {
				exitwithstatus.Message("%s: another instance is already running", program)
			}
			exitwithstatus.Message("%s: PID file: %q creation failed, error: %s", program, masterConfiguration.PidFile, err)
		}
		fmt.Fprintf(lockFile, "%d\n", os.Getpid())
		lockFile.Close()
		defer os.Remove(masterConfiguration.PidFile)
	}

	tree := avl.New[int](logger.New("avl"))
	limiter := ratelimit.New(masterConfiguration.Rate, masterConfiguration.Burst)

	watcher, err := newConfigWatcher(configurationFile, logger.New(watcherLoggerPrefix), limiter, masterConfiguration.BatchSize)
	if nil != err {
		log.Criticalf("file watcher setup failed with error: %s", err)
		exitwithstatus.Message("%s: file watcher setup failed with error: %s", program, err)
	}

	mix := masterConfiguration.mix()
	seed := time.Now().UnixNano()
	workers := make([]*worker, masterConfiguration.Workers)
	processes := background.Processes{watcher}
	for i := range workers {
		workers[i] = newWorker(i, tree, limiter, mix, seed+int64(i))
		processes = append(processes, workers[i])
	}

	log.Infof("tree: %s  workers: %d  duration: %ds", tree.ID(), len(workers), masterConfiguration.Duration)

	started := time.Now()
	processHandle := background.Start(processes, nil)

	waitForCompletion(log, watcher.reloaded, time.Duration(masterConfiguration.Duration)*time.Second)

	processHandle.Stop()
	elapsed := time.Since(started)

	r := makeReport(tree, workers, elapsed)
	log.Infof("count: %d  height: %d  bound: %.3f  ok: %t", r.Count, r.Height, r.Bound, r.OK)

	if !quiet {
		if err := printJson(os.Stdout, r); nil != err {
			log.Errorf("report error: %s", err)
		}
	}

	if !r.OK {
		log.Criticalf("tree check failed: %s", r.Error)
		exitwithstatus.Message("%s: tree check failed: %s", program, r.Error)
	}
}

// wait for the run time to expire or a terminating signal
func waitForCompletion(log *logger.L, reloaded <-chan *Configuration, duration time.Duration) {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(ch)

	timer := time.NewTimer(duration)
	defer timer.Stop()

	for {
		select {
		case sig := <-ch:
			log.Infof("received signal: %v", sig)
			return
		case <-timer.C:
			log.Info("run time expired")
			return
		case config := <-reloaded:
			log.Infof("configuration reloaded rate: %v  burst: %d", config.Rate, config.Burst)
		}
	}
}
