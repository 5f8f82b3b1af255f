package rop

import (
	"github.com/ib-77/monads/internal/contract"
)

// Map transforms the success value. A failure is re-typed with its errors
// kept and onSuccess is not called.
func Map[In, Out any](input Result[In], onSuccess func(In) Out) Result[Out] {
	if onSuccess == nil {
		contract.ArgumentNil("onSuccess")
	}

	if input.IsSuccess() {
		return Success(onSuccess(input.value))
	}
	return FailFrom[In, Out](input)
}

// Bind continues with a Result-returning function on success.
func Bind[In, Out any](input Result[In], onSuccess func(In) Result[Out]) Result[Out] {
	if onSuccess == nil {
		contract.ArgumentNil("onSuccess")
	}

	if input.IsSuccess() {
		return onSuccess(input.value)
	}
	return FailFrom[In, Out](input)
}

// Match reduces the Result to a value via exactly one of the handlers.
func Match[In, Out any](input Result[In],
	onSuccess func(In) Out,
	onError func(ErrorList) Out) Out {
	if onSuccess == nil {
		contract.ArgumentNil("onSuccess")
	}
	if onError == nil {
		contract.ArgumentNil("onError")
	}

	if input.IsSuccess() {
		return onSuccess(input.value)
	}
	return onError(input.Errors())
}

// Try calls onTryExecute and converts its error, if any, into a failed
// Result. See FromError for how errors are classified.
func Try[T any](onTryExecute func() (T, error)) Result[T] {
	if onTryExecute == nil {
		contract.ArgumentNil("onTryExecute")
	}

	out, err := onTryExecute()
	if err != nil {
		return FromError[T](err)
	}
	return Success(out)
}

// FromError builds a failed Result from a Go error. Every Error found in
// err (directly, wrapped, or inside errors.Join) is kept as is; any other
// part becomes an Unexpected error. It panics if err is nil.
func FromError[T any](err error) Result[T] {
	if contract.IsNil(err) {
		contract.ArgumentNil("err")
	}
	errs := classify(err)
	if len(errs) == 0 {
		errs = ErrorList{NewError(Unexpected, err.Error())}
	}
	return Result[T]{errs: errs}
}

// Tee runs a side effect on success and returns input unchanged.
func Tee[T any](input Result[T], onSuccess func(T)) Result[T] {
	if onSuccess == nil {
		contract.ArgumentNil("onSuccess")
	}

	if input.IsSuccess() {
		onSuccess(input.value)
	}
	return input
}

// Ensure turns a success whose value fails predicate into Fail(err).
func Ensure[T any](input Result[T], predicate func(T) bool, err Error) Result[T] {
	if predicate == nil {
		contract.ArgumentNil("predicate")
	}

	if input.IsSuccess() && !predicate(input.value) {
		return Fail[T](err)
	}
	return input
}

// Validate runs every validator against value and reports all failures
// together, in validator order. Success values returned by validators are
// ignored; on success the original value is returned.
func Validate[T any](value T, validators ...func(T) Result[T]) Result[T] {
	var errs ErrorList
	for i, validate := range validators {
		if validate == nil {
			contract.InvalidArgument("validator %d must not be nil", i)
		}

		if res := validate(value); res.IsError() {
			errs = append(errs, res.errs...)
		}
	}

	if len(errs) > 0 {
		return Result[T]{errs: errs}
	}
	return Success(value)
}
