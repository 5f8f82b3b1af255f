package rop

import (
	"fmt"
	"slices"

	"github.com/ib-77/monads/internal/contract"
)

// Result is either a success holding a value or a failure holding a
// non-empty, ordered list of Errors. The zero value is a success holding
// the zero T.
type Result[T any] struct {
	value T
	errs  ErrorList
}

func Success[T any](value T) Result[T] {
	return Result[T]{value: value}
}

// Fail returns a failed Result holding a single error.
func Fail[T any](err Error) Result[T] {
	return Result[T]{errs: ErrorList{err}}
}

// FailAll returns a failed Result holding a copy of errs. It panics if errs
// is empty.
func FailAll[T any](errs []Error) Result[T] {
	if len(errs) == 0 {
		contract.InvalidArgument("errors must not be empty")
	}
	return Result[T]{errs: slices.Clone(errs)}
}

// FailFrom re-types a failed Result, keeping its errors. It panics if from
// is a success.
func FailFrom[In, Out any](from Result[In]) Result[Out] {
	if from.errs == nil {
		contract.InvalidState("result is successful")
	}
	return Result[Out]{errs: from.errs}
}

func (r Result[T]) IsSuccess() bool {
	return r.errs == nil
}

func (r Result[T]) IsError() bool {
	return r.errs != nil
}

// Value returns the success value and panics on a failed Result.
func (r Result[T]) Value() T {
	if r.errs != nil {
		contract.InvalidState("result is not successful")
	}
	return r.value
}

func (r Result[T]) ValueOrDefault() T {
	return r.value
}

// TryGetValue returns the success value and true, or the zero T and false.
func (r Result[T]) TryGetValue() (T, bool) {
	return r.value, r.errs == nil
}

// Errors returns a copy of the error list and panics on a success. Check
// IsError first.
func (r Result[T]) Errors() ErrorList {
	if r.errs == nil {
		contract.InvalidState("errors cannot be accessed when no errors have been recorded")
	}
	return slices.Clone(r.errs)
}

// ErrorsOrEmptyList returns a copy of the error list, empty on a success.
func (r Result[T]) ErrorsOrEmptyList() ErrorList {
	if r.errs == nil {
		return ErrorList{}
	}
	return slices.Clone(r.errs)
}

// FirstError returns the first recorded error and panics on a success.
func (r Result[T]) FirstError() Error {
	if r.errs == nil {
		contract.InvalidState("result has no errors")
	}
	return r.errs[0]
}

// Err returns nil on success, otherwise the errors joined into one Go error.
func (r Result[T]) Err() error {
	return r.errs.Err()
}

// Get returns the value and Err, for handing a Result back to code that
// expects Go's (T, error) convention.
func (r Result[T]) Get() (T, error) {
	return r.value, r.Err()
}

// Then continues with onSuccess when r succeeded. A failure is returned
// unchanged and onSuccess is not called.
func (r Result[T]) Then(onSuccess func(T) Result[T]) Result[T] {
	if onSuccess == nil {
		contract.ArgumentNil("onSuccess")
	}

	if r.errs != nil {
		return r
	}
	return onSuccess(r.value)
}

func (r Result[T]) String() string {
	if r.errs == nil {
		return fmt.Sprintf("Success(%v)", r.value)
	}
	return fmt.Sprintf("Error(%v)", []Error(r.errs))
}

// Equal reports whether a and b hold the same value or the same errors in
// the same order.
func Equal[T comparable](a, b Result[T]) bool {
	if a.IsSuccess() != b.IsSuccess() {
		return false
	}
	if a.IsSuccess() {
		return a.value == b.value
	}
	return slices.Equal(a.errs, b.errs)
}
