// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
)

// audit records go to the error stream only in verbose mode
type auditLog struct {
	verbose bool
	e       io.Writer
}

func (a *auditLog) Debugf(format string, arguments ...interface{}) {
	a.printf("debug", format, arguments...)
}

func (a *auditLog) Infof(format string, arguments ...interface{}) {
	a.printf("info", format, arguments...)
}

func (a *auditLog) Warnf(format string, arguments ...interface{}) {
	a.printf("warn", format, arguments...)
}

func (a *auditLog) printf(level string, format string, arguments ...interface{}) {
	if !a.verbose {
		return
	}
	fmt.Fprintf(a.e, "%s: %s\n", level, fmt.Sprintf(format, arguments...))
}
