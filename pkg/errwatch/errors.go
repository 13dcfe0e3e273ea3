// errors.go defines the errors this library raises itself, as opposed to the
// errors it captures.

package errwatch

import "errors"

var (
	// ErrNilError is returned when an Event is constructed, or a publish is
	// attempted, without an error.
	ErrNilError = errors.New("errwatch: event requires a non-nil error")

	// ErrInvalidOperation reports that the native error object was not in a
	// state that allows diagnostic extraction.
	ErrInvalidOperation = errors.New("errwatch: invalid operation on native error object")

	// ErrAccessDenied reports that the platform refused access to the native
	// error object's diagnostics.
	ErrAccessDenied = errors.New("errwatch: access to native diagnostics denied")

	// ErrNativeCall reports that the native call extracting diagnostics
	// failed at the platform layer.
	ErrNativeCall = errors.New("errwatch: native diagnostic call failed")
)

// NativeUnhandledError marks an error that originated in foreign code and
// surfaced through the native boundary, so consumers can distinguish it from
// errors raised in managed code. Message carries the foreign runtime's
// description; Cause, when set, is the original foreign error.
type NativeUnhandledError struct {
	Message  string
	TypeName string
	Cause    error
}

func (e *NativeUnhandledError) Error() string {
	return e.Message
}

func (e *NativeUnhandledError) Unwrap() error {
	return e.Cause
}
