// Package contract holds the fail-fast checks shared by the container
// packages. A violation is a programming mistake in the caller, so every
// helper here panics instead of returning an error.
package contract

import "github.com/zeebo/errs"

var (
	// ErrInvalidArgument classifies panics caused by a missing or unusable
	// argument: a nil function, a nil value passed to Some, an empty error
	// list passed to a failure constructor.
	ErrInvalidArgument = errs.Class("invalid argument")

	// ErrInvalidState classifies panics caused by reading a side of a
	// container that is not populated.
	ErrInvalidState = errs.Class("invalid state")
)

// ArgumentNil panics with ErrInvalidArgument naming the missing argument.
func ArgumentNil(name string) {
	panic(ErrInvalidArgument.New("%s must not be nil", name))
}

// InvalidArgument panics with ErrInvalidArgument.
func InvalidArgument(format string, args ...interface{}) {
	panic(ErrInvalidArgument.New(format, args...))
}

// InvalidState panics with ErrInvalidState.
func InvalidState(format string, args ...interface{}) {
	panic(ErrInvalidState.New(format, args...))
}

// Recover runs f and returns the error it panicked with, or nil when f
// returned normally. Panics that are not errors are re-raised.
func Recover(f func()) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		e, ok := r.(error)
		if !ok {
			panic(r)
		}
		err = e
	}()

	f()
	return nil
}
