package option

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/monads/internal/contract"
)

type account struct {
	name string
}

func requirePanicClass(t *testing.T, is func(error) bool, f func()) {
	t.Helper()

	err := contract.Recover(f)
	require.Error(t, err, "expected panic")
	assert.True(t, is(err), "unexpected panic: %v", err)
}

func TestSome_HasValue(t *testing.T) {
	t.Parallel()

	o := Some(42)
	assert.True(t, o.HasValue())
	assert.False(t, o.IsNone())
	assert.Equal(t, 42, o.Value())
	assert.Equal(t, 42, o.ValueOrDefault())
}

func TestSome_ZeroValueIsStillSome(t *testing.T) {
	t.Parallel()

	o := Some(0)
	assert.True(t, o.HasValue())
	assert.Equal(t, 0, o.Value())
	assert.NotEqual(t, None[int](), o)
}

func TestSome_PanicsOnNil(t *testing.T) {
	t.Parallel()

	var acc *account
	requirePanicClass(t, IsInvalidArgument, func() { Some(acc) })

	var m map[string]int
	requirePanicClass(t, IsInvalidArgument, func() { Some(m) })

	var e error
	requirePanicClass(t, IsInvalidArgument, func() { Some(e) })
}

func TestNone(t *testing.T) {
	t.Parallel()

	o := None[string]()
	assert.False(t, o.HasValue())
	assert.True(t, o.IsNone())
	assert.Equal(t, "", o.ValueOrDefault())
	requirePanicClass(t, IsInvalidState, func() { o.Value() })
}

func TestZeroValueIsNone(t *testing.T) {
	t.Parallel()

	var o Option[int]
	assert.True(t, o.IsNone())
	assert.Equal(t, None[int](), o)
}

func TestTryGetValue(t *testing.T) {
	t.Parallel()

	v, ok := Some("x").TryGetValue()
	assert.True(t, ok)
	assert.Equal(t, "x", v)

	v, ok = None[string]().TryGetValue()
	assert.False(t, ok)
	assert.Equal(t, "", v)
}

func TestOr(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 3, Some(3).Or(7))
	assert.Equal(t, 7, None[int]().Or(7))
}

func TestFilter(t *testing.T) {
	t.Parallel()

	even := func(x int) bool { return x%2 == 0 }

	assert.Equal(t, Some(4), Some(4).Filter(even))
	assert.Equal(t, None[int](), Some(3).Filter(even))
	assert.Equal(t, None[int](), None[int]().Filter(even))
	requirePanicClass(t, IsInvalidArgument, func() { Some(1).Filter(nil) })
}

func TestEquality(t *testing.T) {
	t.Parallel()

	assert.True(t, Some(5) == Some(5))
	assert.False(t, Some(5) == Some(6))
	assert.True(t, None[int]() == None[int]())

	seen := map[Option[string]]int{}
	seen[Some("a")]++
	seen[Some("a")]++
	seen[None[string]()]++
	assert.Equal(t, 2, seen[Some("a")])
	assert.Equal(t, 1, seen[None[string]()])
}

func TestString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Some(5)", Some(5).String())
	assert.Equal(t, "None", None[int]().String())
}

func TestPanicClassifiers(t *testing.T) {
	t.Parallel()

	var acc *account
	argErr := contract.Recover(func() { Some(acc) })
	stateErr := contract.Recover(func() { None[int]().Value() })

	assert.True(t, IsInvalidArgument(argErr))
	assert.False(t, IsInvalidState(argErr))
	assert.True(t, IsInvalidState(stateErr))
	assert.False(t, IsInvalidArgument(stateErr))
}
