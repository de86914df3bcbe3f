// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"
)

// time allowed for the log to be written before panicking
const flushDelay = 100 * time.Millisecond

// hold a logger channel for last attempts to log something
var (
	lock sync.Mutex
	log  *logger.L
)

// Initialise - set up a log channel, requires logger to be initialised
func Initialise() error {
	lock.Lock()
	defer lock.Unlock()

	if nil != log {
		return ErrAlreadyInitialised
	}
	log = logger.New("PANIC")
	if nil == log {
		return ErrInvalidLoggerChannel
	}
	return nil
}

// Finalise - flush any data and release the channel
func Finalise() {
	lock.Lock()
	defer lock.Unlock()

	if nil != log {
		log.Flush()
		log = nil
	}
}

// Critical - log a simple string prefixed by the caller position
func Critical(message string) {
	file, line := caller()
	internalCriticalf("(%q:%d) %s", file, line, message)
}

// Criticalf - log a formatted string with arguments like fmt.Sprintf()
func Criticalf(format string, arguments ...interface{}) {
	file, line := caller()
	internalCriticalf("(%q:%d) %s", file, line, fmt.Sprintf(format, arguments...))
}

// Panicf - log then panic with a formatted message
func Panicf(format string, arguments ...interface{}) {
	file, line := caller()
	internalCriticalf("(%q:%d) %s", file, line, fmt.Sprintf(format, arguments...))
	Panic("abort, see last messages in log file")
}

// Panic - final panic
func Panic(message string) {
	internalCriticalf("%s", message)
	time.Sleep(flushDelay)
	panic(message)
}

// PanicWithError - final panic including the error text
func PanicWithError(message string, err error) {
	s := fmt.Sprintf("%s failed with error: %v", message, err)
	internalCriticalf("%s", s)
	time.Sleep(flushDelay)
	panic(s)
}

// PanicIfError - conditional panic
func PanicIfError(message string, err error) {
	if nil == err {
		return
	}
	PanicWithError(message, err)
}

// position of the caller of the exported function
func caller() (string, int) {
	if _, file, line, ok := runtime.Caller(2); ok {
		return file, line
	}
	return "?", 0
}

// handle an uninitialised logger channel by printing
func internalCriticalf(format string, arguments ...interface{}) {
	lock.Lock()
	defer lock.Unlock()

	if nil == log {
		fmt.Printf("*** "+format+"\n", arguments...)
		return
	}
	log.Criticalf(format, arguments...)
	log.Flush()
}
