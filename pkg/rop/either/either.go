package either

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

// Either holds a Left value or a Right value, never both.
//
// The zero value is a Right holding the zero R. It cannot be told apart from
// Right(zero R), so an uninitialized Either must not be read as a failure.
type Either[L, R any] struct {
	left   L
	right  R
	isLeft bool
}

// Left returns an Either on the Left side.
func Left[L, R any](value L) Either[L, R] {
	return Either[L, R]{left: value, isLeft: true}
}

// Right returns an Either on the Right side.
func Right[L, R any](value R) Either[L, R] {
	return Either[L, R]{right: value}
}

func (e Either[L, R]) IsLeft() bool {
	return e.isLeft
}

func (e Either[L, R]) IsRight() bool {
	return !e.isLeft
}

// LeftValue returns the Left value and panics on a Right.
func (e Either[L, R]) LeftValue() L {
	if !e.isLeft {
		contract.InvalidState("either is not left")
	}
	return e.left
}

// RightValue returns the Right value and panics on a Left.
func (e Either[L, R]) RightValue() R {
	if e.isLeft {
		contract.InvalidState("either is not right")
	}
	return e.right
}

func (e Either[L, R]) LeftValueOrDefault() L {
	return e.left
}

func (e Either[L, R]) RightValueOrDefault() R {
	return e.right
}

// TryGetLeft returns the Left value and true, or the zero L and false.
func (e Either[L, R]) TryGetLeft() (L, bool) {
	return e.left, e.isLeft
}

// TryGetRight returns the Right value and true, or the zero R and false.
func (e Either[L, R]) TryGetRight() (R, bool) {
	return e.right, !e.isLeft
}

// Swap exchanges the sides.
func (e Either[L, R]) Swap() Either[R, L] {
	if e.isLeft {
		return Right[R, L](e.left)
	}
	return Left[R, L](e.right)
}

func (e Either[L, R]) String() string {
	if e.isLeft {
		return fmt.Sprintf("Left(%v)", e.left)
	}
	return fmt.Sprintf("Right(%v)", e.right)
}
