package either

import "github.com/ib-77/monads/internal/contract"

// Bind continues with rightFunc on a Right. A Left is returned unchanged
// and rightFunc is not called.
func (e Either[L, R]) Bind(rightFunc func(R) Either[L, R]) Either[L, R] {
	if rightFunc == nil {
		contract.ArgumentNil("rightFunc")
	}

	if e.isLeft {
		return e
	}
	return rightFunc(e.right)
}

// Select maps the Right value. A Left is carried over with its value.
func Select[L, R, U any](e Either[L, R], selector func(R) U) Either[L, U] {
	if selector == nil {
		contract.ArgumentNil("selector")
	}

	if e.isLeft {
		return Left[L, U](e.left)
	}
	return Right[L](selector(e.right))
}

// SelectMany is Bind with a Right type change.
func SelectMany[L, R, U any](e Either[L, R], selector func(R) Either[L, U]) Either[L, U] {
	if selector == nil {
		contract.ArgumentNil("selector")
	}

	if e.isLeft {
		return Left[L, U](e.left)
	}
	return selector(e.right)
}

// Match calls onLeft or onRight depending on the side and returns its result.
func Match[L, R, U any](e Either[L, R], onLeft func(L) U, onRight func(R) U) U {
	if onLeft == nil {
		contract.ArgumentNil("onLeft")
	}
	if onRight == nil {
		contract.ArgumentNil("onRight")
	}

	if e.isLeft {
		return onLeft(e.left)
	}
	return onRight(e.right)
}
