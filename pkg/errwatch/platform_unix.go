// Native boundary defaults for Linux and the BSDs. The foreign runtime most
// commonly bridged on these targets is an embedded JVM, so foreign-runtime
// throwables are classified by Java namespace prefixes.

//go:build !windows && !darwin

package errwatch

import (
	"os"
	"os/signal"
	"syscall"
)

const defaultNativeFallback = "a native unhandled error occurred"

var defaultForeignNamespaces = []string{"java.", "javax.", "android."}

// notifyCrashSignals registers the POSIX fatal signals a native library can
// raise into the process.
func notifyCrashSignals(ch chan<- os.Signal) {
	signal.Notify(ch, syscall.SIGSEGV, syscall.SIGBUS, syscall.SIGABRT)
}
