// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised     = ExistsError("already initialised")
	ErrBalanceViolation       = InvalidError("subtree heights differ by more than one")
	ErrCountMismatch          = InvalidError("node count does not match tree")
	ErrHeightMismatch         = InvalidError("cached height is inconsistent")
	ErrInvalidConfiguration   = InvalidError("configuration must return a table")
	ErrInvalidCount           = InvalidError("invalid count")
	ErrInvalidDirectory       = InvalidError("invalid directory")
	ErrInvalidFileName        = InvalidError("file name must not contain a path")
	ErrInvalidKey             = InvalidError("invalid key")
	ErrInvalidLoggerChannel   = InvalidError("invalid logger channel")
	ErrInvalidPercentage      = InvalidError("operation percentages must not exceed 100")
	ErrInvalidStructPointer   = InvalidError("invalid struct pointer")
	ErrInvalidWorkerCount     = InvalidError("worker count must be positive")
	ErrMissingKey             = InvalidError("operation requires at least one key")
	ErrNilLogger              = InvalidError("logger is nil")
	ErrNotFoundConfigFile     = NotFoundError("config file is not found")
	ErrNotInitialised         = NotFoundError("not initialised")
	ErrOrderViolation         = InvalidError("keys are out of order")
	ErrRateLimiting           = ProcessError("rate limiting")
	ErrTransactionFinished    = ProcessError("transaction already finished")
	ErrUnknownScriptOperation = InvalidError("unknown script operation")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
