// nativeboundary.go captures errors crossing between managed and foreign
// code: foreign exceptions surfacing into the runtime, managed errors
// marshaled out, foreign-VM unhandled throwables, and host-OS level
// failures. The signal shape is a tagged variant; which crossings a platform
// actually raises, and the platform defaults, live in the platform_*.go
// files.

package errwatch

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"sync/atomic"
)

// CrossingKind tags which boundary a NativeSignal crossed.
type CrossingKind string

const (
	// CrossingForeignToManaged is a foreign exception surfacing into managed
	// code. Suppressible: the listener marks it handled.
	CrossingForeignToManaged CrossingKind = "foreign-to-managed"

	// CrossingManagedToForeign is a managed error marshaled out into foreign
	// code. Not suppressible: the marshaling layer owns what happens next.
	CrossingManagedToForeign CrossingKind = "managed-to-foreign"

	// CrossingForeignRuntime is an unhandled throwable of an embedded
	// foreign VM surfacing through interop. Suppressible.
	CrossingForeignRuntime CrossingKind = "foreign-runtime"

	// CrossingHostOS is a host-OS level unhandled error whose diagnostics
	// must be extracted from a native error object.
	CrossingHostOS CrossingKind = "host-os"
)

// NativeSignal is one error delivery from a native boundary hook.
type NativeSignal struct {
	// Kind selects the mapping branch.
	Kind CrossingKind

	// Err is the crossing error. For CrossingHostOS it may be nil when the
	// native side only exposes an error object, not a structured error.
	Err error

	// TypeName is the foreign runtime's reported type name, set for
	// CrossingForeignRuntime signals.
	TypeName string

	// Describe extracts a detailed description from the native error object,
	// set for CrossingHostOS signals. Extraction runs on the delivery
	// goroutine and is allowed to fail or panic; the listener contains it.
	Describe func() (string, error)

	handled atomic.Bool
}

// MarkHandled flags the signal as dealt with, telling the native side not to
// propagate it further as a crash.
func (s *NativeSignal) MarkHandled() {
	s.handled.Store(true)
}

// Handled reports whether the signal was marked handled.
func (s *NativeSignal) Handled() bool {
	return s.handled.Load()
}

// NativeBoundaryOption configures a NativeBoundaryListener.
type NativeBoundaryOption func(*NativeBoundaryListener)

// WithForeignNamespaces overrides the type-name prefixes that classify a
// foreign-runtime throwable as foreign. The platform default is used when
// this option is absent.
func WithForeignNamespaces(prefixes ...string) NativeBoundaryOption {
	return func(l *NativeBoundaryListener) {
		l.foreignPrefixes = prefixes
	}
}

// WithFallbackMessage overrides the message used when host-OS diagnostic
// extraction fails.
func WithFallbackMessage(msg string) NativeBoundaryOption {
	return func(l *NativeBoundaryListener) {
		l.fallback = msg
	}
}

// WithLogger sets a logger for debug output when diagnostic extraction falls
// back. Nil (the default) disables logging.
func WithLogger(logger *log.Logger) NativeBoundaryOption {
	return func(l *NativeBoundaryListener) {
		l.logger = logger
	}
}

// NativeBoundaryListener funnels every native crossing into the same channel
// as managed errors. Stateless between signals; subscribed or closed is its
// only state.
type NativeBoundaryListener struct {
	core
	hook            Hook[*NativeSignal]
	foreignPrefixes []string
	fallback        string
	logger          *log.Logger
}

// NewNativeBoundaryListener subscribes to hook and republishes every
// crossing error to consumer, translated per its CrossingKind.
func NewNativeBoundaryListener(hook Hook[*NativeSignal], consumer Consumer, opts ...NativeBoundaryOption) *NativeBoundaryListener {
	l := &NativeBoundaryListener{
		hook:            hook,
		foreignPrefixes: defaultForeignNamespaces,
		fallback:        defaultNativeFallback,
	}
	for _, opt := range opts {
		opt(l)
	}
	l.init(OriginNativeBoundary, consumer)
	l.detach = hook.Detach
	hook.Attach(l.onSignal)
	return l
}

func (l *NativeBoundaryListener) onSignal(sig *NativeSignal) {
	switch sig.Kind {
	case CrossingForeignToManaged:
		_ = l.publish(l, sig.Err, "")
		sig.MarkHandled()

	case CrossingManagedToForeign:
		_ = l.publish(l, sig.Err, "")

	case CrossingForeignRuntime:
		err := sig.Err
		if err != nil && l.isForeignType(sig.TypeName) {
			err = &NativeUnhandledError{
				Message:  err.Error(),
				TypeName: sig.TypeName,
				Cause:    err,
			}
		}
		_ = l.publish(l, err, "")
		sig.MarkHandled()

	case CrossingHostOS:
		_ = l.publish(l, l.describeHostError(sig), "")
	}
}

func (l *NativeBoundaryListener) isForeignType(typeName string) bool {
	for _, prefix := range l.foreignPrefixes {
		if strings.HasPrefix(typeName, prefix) {
			return true
		}
	}
	return false
}

// describeHostError extracts the native error object's description. The
// extraction itself can fail on several platforms; every expected failure
// kind is matched individually, and any failure or panic degrades to the
// platform fallback message with the secondary failure as cause. Nothing in
// here may escape back into the delivery goroutine.
func (l *NativeBoundaryListener) describeHostError(sig *NativeSignal) (result error) {
	defer func() {
		if r := recover(); r != nil {
			result = l.fallbackError(recoveredError(r))
		}
	}()

	if sig.Describe == nil {
		if sig.Err != nil {
			return sig.Err
		}
		return &NativeUnhandledError{Message: l.fallback}
	}

	detail, err := sig.Describe()
	switch {
	case err == nil:
		return &NativeUnhandledError{Message: detail, Cause: sig.Err}
	case errors.Is(err, ErrInvalidOperation):
		return l.fallbackError(err)
	case errors.Is(err, ErrAccessDenied):
		return l.fallbackError(err)
	case errors.Is(err, ErrNativeCall):
		return l.fallbackError(err)
	default:
		// Unexpected extraction failures degrade the same way; letting one
		// escape a native-interop callback is fatal on several platforms.
		return l.fallbackError(err)
	}
}

func (l *NativeBoundaryListener) fallbackError(cause error) error {
	if l.logger != nil {
		l.logger.Printf("errwatch: native diagnostic extraction failed, using fallback: %v", cause)
	}
	return &NativeUnhandledError{Message: l.fallback, Cause: cause}
}

func recoveredError(r any) error {
	if err, ok := r.(error); ok {
		return err
	}
	return fmt.Errorf("%v", r)
}
