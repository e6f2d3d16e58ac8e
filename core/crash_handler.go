// Package core provides centralized panic handling for goroutines that
// run behind a raw-mode terminal, where an unrecovered panic leaves the
// shell unusable.
package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync/atomic"
)

// crashHandler is invoked with the recovered value before exit. The host
// installs one that restores the terminal first.
var crashHandler atomic.Value // func(any)

// SetCrashHandler installs the process-wide crash handler
func SetCrashHandler(fn func(r any)) {
	if fn != nil {
		crashHandler.Store(fn)
	}
}

// HandleCrash is the unified panic handler: runs the installed handler,
// prints the stack trace, and exits
func HandleCrash(r any) {
	if r == nil {
		return
	}

	if fn, ok := crashHandler.Load().(func(any)); ok {
		fn(r)
	}

	fmt.Fprintf(os.Stderr, "\r\nCRASH DETECTED: %v\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Exit(1)
}

// Go runs a function in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash.
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
