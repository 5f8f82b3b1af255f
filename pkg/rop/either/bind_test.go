package either

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func positiveIncrement(x int) Either[string, int] {
	if x > 0 {
		return Right[string](x + 1)
	}
	return Left[string, int]("neg")
}

func TestBind_Right(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Right[string](6), Right[string](5).Bind(positiveIncrement))
	assert.Equal(t, Left[string, int]("neg"), Right[string](-1).Bind(positiveIncrement))
}

func TestBind_LeftShortCircuits(t *testing.T) {
	t.Parallel()

	called := false
	out := Left[string, int]("err").Bind(func(x int) Either[string, int] {
		called = true
		return Right[string](x)
	})

	assert.Equal(t, Left[string, int]("err"), out)
	if called {
		t.Fatalf("rightFunc should not be called on Left")
	}
}

func TestBind_NilPanics(t *testing.T) {
	t.Parallel()

	requirePanicClass(t, IsInvalidArgument, func() { Right[string](1).Bind(nil) })
	requirePanicClass(t, IsInvalidArgument, func() { Left[string, int]("x").Bind(nil) })
}

func TestSelect(t *testing.T) {
	t.Parallel()

	out := Select(Right[string](7), strconv.Itoa)
	assert.Equal(t, Right[string]("7"), out)

	called := false
	left := Select(Left[string, int]("err"), func(x int) string {
		called = true
		return strconv.Itoa(x)
	})
	assert.Equal(t, Left[string, string]("err"), left)
	assert.False(t, called)

	requirePanicClass(t, IsInvalidArgument, func() { Select[string, int, string](Right[string](1), nil) })
}

func TestSelectMany(t *testing.T) {
	t.Parallel()

	parse := func(s string) Either[error, int] {
		n, err := strconv.Atoi(s)
		if err != nil {
			return Left[error, int](err)
		}
		return Right[error](n)
	}

	assert.Equal(t, Right[error](12), SelectMany(Right[error]("12"), parse))

	bad := SelectMany(Right[error]("x"), parse)
	assert.True(t, bad.IsLeft())
	assert.Error(t, bad.LeftValue())

	called := false
	prior := assert.AnError
	out := SelectMany(Left[error, string](prior), func(s string) Either[error, int] {
		called = true
		return parse(s)
	})
	assert.Equal(t, Left[error, int](prior), out)
	assert.False(t, called)

	requirePanicClass(t, IsInvalidArgument, func() { SelectMany[error, string, int](Right[error]("1"), nil) })
}

func TestMatch(t *testing.T) {
	t.Parallel()

	onLeft := func(s string) string { return "left:" + s }
	onRight := func(x int) string { return "right:" + strconv.Itoa(x) }

	assert.Equal(t, "left:err", Match(Left[string, int]("err"), onLeft, onRight))
	assert.Equal(t, "right:3", Match(Right[string](3), onLeft, onRight))

	requirePanicClass(t, IsInvalidArgument, func() { Match(Right[string](3), nil, onRight) })
	requirePanicClass(t, IsInvalidArgument, func() { Match(Right[string](3), onLeft, nil) })
}
