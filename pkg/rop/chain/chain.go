package chain

import (
	"context"

	"github.com/ib-77/monads/internal/contract"
	"github.com/ib-77/monads/pkg/rop"
)

// Chain wraps a rop.Result with context to enable fluent chaining
type Chain[T any] struct {
	ctx    context.Context
	result rop.Result[T]
}

// Start creates a new chain from a rop.Result
func Start[T any](ctx context.Context, result rop.Result[T]) *Chain[T] {
	return &Chain[T]{
		ctx:    ctx,
		result: result,
	}
}

// FromValue creates a new chain from a successful value
func FromValue[T any](ctx context.Context, value T) *Chain[T] {
	return Start(ctx, rop.Success(value))
}

// Result returns the underlying rop.Result
func (c *Chain[T]) Result() rop.Result[T] {
	return c.result
}

func (c *Chain[T]) Context() context.Context {
	return c.ctx
}

// Then chains a function that returns rop.Result[U]
func Then[T, U any](c *Chain[T], onSuccess func(context.Context, T) rop.Result[U]) *Chain[U] {
	if onSuccess == nil {
		contract.ArgumentNil("onSuccess")
	}

	return &Chain[U]{
		ctx: c.ctx,
		result: rop.Bind(c.result, func(v T) rop.Result[U] {
			return onSuccess(c.ctx, v)
		}),
	}
}

// ThenTry chains a function that returns (U, error)
func ThenTry[T, U any](c *Chain[T], tryOnSuccess func(context.Context, T) (U, error)) *Chain[U] {
	if tryOnSuccess == nil {
		contract.ArgumentNil("tryOnSuccess")
	}

	return &Chain[U]{
		ctx: c.ctx,
		result: rop.Bind(c.result, func(v T) rop.Result[U] {
			return rop.Try(func() (U, error) { return tryOnSuccess(c.ctx, v) })
		}),
	}
}

// Map chains a pure transformation function
func Map[T, U any](c *Chain[T], onSuccess func(context.Context, T) U) *Chain[U] {
	if onSuccess == nil {
		contract.ArgumentNil("onSuccess")
	}

	return &Chain[U]{
		ctx: c.ctx,
		result: rop.Map(c.result, func(v T) U {
			return onSuccess(c.ctx, v)
		}),
	}
}

// Ensure performs a side effect without changing the result
func (c *Chain[T]) Ensure(onSuccess func(context.Context, T)) *Chain[T] {
	if onSuccess == nil {
		contract.ArgumentNil("onSuccess")
	}

	return &Chain[T]{
		ctx: c.ctx,
		result: rop.Tee(c.result, func(v T) {
			onSuccess(c.ctx, v)
		}),
	}
}

// Check fails the chain with err when predicate rejects the value
func (c *Chain[T]) Check(predicate func(context.Context, T) bool, err rop.Error) *Chain[T] {
	if predicate == nil {
		contract.ArgumentNil("predicate")
	}

	return &Chain[T]{
		ctx: c.ctx,
		result: rop.Ensure(c.result, func(v T) bool {
			return predicate(c.ctx, v)
		}, err),
	}
}

// Finally collapses the chain into a final value using rop.Match
func Finally[T, U any](c *Chain[T], onSuccess func(context.Context, T) U,
	onError func(context.Context, rop.ErrorList) U) U {
	if onSuccess == nil {
		contract.ArgumentNil("onSuccess")
	}
	if onError == nil {
		contract.ArgumentNil("onError")
	}

	return rop.Match(c.result,
		func(v T) U { return onSuccess(c.ctx, v) },
		func(errs rop.ErrorList) U { return onError(c.ctx, errs) })
}

// Or returns the first successful chain among c and alternatives. When all
// of them failed, the first failure is returned.
func (c *Chain[T]) Or(alternatives ...*Chain[T]) *Chain[T] {
	if c.result.IsSuccess() {
		return c
	}
	for _, alt := range alternatives {
		if alt != nil && alt.result.IsSuccess() {
			return alt
		}
	}
	return c
}

// And returns the first failed chain among c and required, or the last one
// when every chain succeeded.
func (c *Chain[T]) And(required ...*Chain[T]) *Chain[T] {
	last := c
	if c.result.IsError() {
		return c
	}
	for _, r := range required {
		if r == nil {
			continue
		}
		if r.result.IsError() {
			return r
		}
		last = r
	}
	return last
}
