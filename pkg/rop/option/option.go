package option

import (
	"fmt"

	"github.com/ib-77/monads/internal/contract"
)

// IsInvalidArgument reports whether err, typically recovered from a panic,
// was raised for a nil function, a nil value or an empty error list.
func IsInvalidArgument(err error) bool {
	return contract.ErrInvalidArgument.Has(err)
}

// IsInvalidState reports whether err, typically recovered from a panic, was
// raised by reading a side of a container that is not populated.
func IsInvalidState(err error) bool {
	return contract.ErrInvalidState.Has(err)
}

// Option holds a value of type T or nothing. The zero value is None.
type Option[T any] struct {
	value T
	ok    bool
}

// Some wraps value. It panics if value is nil.
func Some[T any](value T) Option[T] {
	if contract.IsNil(value) {
		contract.ArgumentNil("value")
	}
	return Option[T]{value: value, ok: true}
}

// None returns the empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// HasValue reports whether the option holds a value.
func (o Option[T]) HasValue() bool {
	return o.ok
}

// IsNone reports whether the option is empty.
func (o Option[T]) IsNone() bool {
	return !o.ok
}

// Value returns the wrapped value and panics on None.
func (o Option[T]) Value() T {
	if !o.ok {
		contract.InvalidState("option does not have a value")
	}
	return o.value
}

// ValueOrDefault returns the wrapped value, or the zero T on None.
func (o Option[T]) ValueOrDefault() T {
	return o.value
}

// TryGetValue returns the wrapped value and true, or the zero T and false.
func (o Option[T]) TryGetValue() (T, bool) {
	return o.value, o.ok
}

// Or returns the wrapped value, or fallback on None.
func (o Option[T]) Or(fallback T) T {
	if o.ok {
		return o.value
	}
	return fallback
}

// Filter keeps the value only when predicate accepts it.
func (o Option[T]) Filter(predicate func(T) bool) Option[T] {
	if predicate == nil {
		contract.ArgumentNil("predicate")
	}
	if o.ok && predicate(o.value) {
		return o
	}
	return None[T]()
}

func (o Option[T]) String() string {
	if !o.ok {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}
