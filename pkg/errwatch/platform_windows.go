// Native boundary defaults for Windows. POSIX fatal signals are not
// available; only os.Interrupt is registered (the Go runtime maps
// CTRL_BREAK_EVENT and console-close events to it as well).

//go:build windows

package errwatch

import (
	"os"
	"os/signal"
)

const defaultNativeFallback = "a native unhandled error occurred"

var defaultForeignNamespaces = []string{"java.", "javax."}

func notifyCrashSignals(ch chan<- os.Signal) {
	signal.Notify(ch, os.Interrupt)
}
