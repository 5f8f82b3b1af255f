package rop

import (
	"github.com/ib-77/monads/internal/contract"
	"github.com/ib-77/monads/pkg/rop/either"
	"github.com/ib-77/monads/pkg/rop/option"
)

// FromOption returns Success with the wrapped value, or Fail(ifNone).
func FromOption[T any](o option.Option[T], ifNone Error) Result[T] {
	if v, ok := o.TryGetValue(); ok {
		return Success(v)
	}
	return Fail[T](ifNone)
}

// ToOption drops the errors of a failed Result. A success holding nil also
// maps to None, since an Option never wraps nil.
func ToOption[T any](r Result[T]) option.Option[T] {
	if r.IsError() || contract.IsNil(r.value) {
		return option.None[T]()
	}
	return option.Some(r.value)
}

// FromEither maps Right to Success and Left to a single-error failure.
func FromEither[T any](e either.Either[Error, T]) Result[T] {
	return either.Match(e, Fail[T], Success[T])
}

// FromEitherList maps Right to Success and Left to a failure holding every
// listed error. It panics if a Left holds an empty list.
func FromEitherList[T any](e either.Either[ErrorList, T]) Result[T] {
	return either.Match(e,
		func(errs ErrorList) Result[T] { return FailAll[T](errs) },
		Success[T])
}

// ToEither maps Success to Right and a failure to Left holding its errors.
func ToEither[T any](r Result[T]) either.Either[ErrorList, T] {
	if r.IsError() {
		return either.Left[ErrorList, T](r.Errors())
	}
	return either.Right[ErrorList](r.value)
}
