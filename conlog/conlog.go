// SPDX-License-Identifier: GPL-2.0-or-later

package conlog

import (
	"log"
	"sync/atomic"
)

var (
	p         = log.Printf
	developer atomic.Bool
)

// SetPrintf replaces the output of Printf and DPrintf. A nil f restores
// log.Printf.
func SetPrintf(f func(string, ...interface{})) {
	if f == nil {
		f = log.Printf
	}
	p = f
}

// SetDeveloper enables DPrintf output.
func SetDeveloper(b bool) {
	developer.Store(b)
}

func Developer() bool {
	return developer.Load()
}

func Printf(format string, v ...interface{}) {
	p(format, v...)
}

// DPrintf only prints in developer mode.
func DPrintf(format string, v ...interface{}) {
	if developer.Load() {
		p(format, v...)
	}
}
