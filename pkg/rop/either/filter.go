package either

import "github.com/ib-77/monads/internal/contract"

// Filter keeps a Right whose value satisfies predicate. Anything else,
// including an existing Left, becomes Left(leftIfFail): the previous Left
// payload is replaced.
func (e Either[L, R]) Filter(predicate func(R) bool, leftIfFail L) Either[L, R] {
	if predicate == nil {
		contract.ArgumentNil("predicate")
	}

	if !e.isLeft && predicate(e.right) {
		return e
	}
	return Left[L, R](leftIfFail)
}

// Flatten returns the nested Either when the Right value is itself an
// Either[L, R]. That only happens when R is an interface type, e.g.
// Either[string, any]. Otherwise e is returned unchanged.
func (e Either[L, R]) Flatten() Either[L, R] {
	if e.isLeft {
		return e
	}
	if nested, ok := any(e.right).(Either[L, R]); ok {
		return nested
	}
	return e
}

// Join removes one level of nesting from the Right side.
func Join[L, R any](e Either[L, Either[L, R]]) Either[L, R] {
	if e.isLeft {
		return Left[L, R](e.left)
	}
	return e.right
}
