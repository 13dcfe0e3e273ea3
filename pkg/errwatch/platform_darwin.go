// Native boundary defaults for macOS, where the foreign runtime crossing
// into Go is Objective-C.

//go:build darwin

package errwatch

import (
	"os"
	"os/signal"
	"syscall"
)

const defaultNativeFallback = "an unhandled Objective-C exception occurred"

var defaultForeignNamespaces = []string{"NS", "objc."}

// notifyCrashSignals registers the fatal signals an Objective-C or C layer
// can raise into the process. SIGTRAP is included because uncaught NSException
// aborts route through it on some macOS versions.
func notifyCrashSignals(ch chan<- os.Signal) {
	signal.Notify(ch, syscall.SIGSEGV, syscall.SIGBUS, syscall.SIGABRT, syscall.SIGTRAP)
}
