package chain

import (
	"context"

	"github.com/ib-77/maybe3/pkg/maybe"
	"github.com/ib-77/maybe3/pkg/maybe/solo"
)

// Chain wraps a maybe.Maybe with context to enable fluent chaining
type Chain[T any] struct {
	ctx context.Context
	res maybe.Maybe[T]
}

// Start creates a new chain from a maybe.Maybe
func Start[T any](ctx context.Context, m maybe.Maybe[T]) Chain[T] {
	return Chain[T]{ctx: ctx, res: m}
}

// FromValue creates a new chain from a present value
func FromValue[T any](ctx context.Context, v T) Chain[T] {
	return Start(ctx, maybe.Just(v))
}

// Result returns the underlying maybe.Maybe
func (c Chain[T]) Result() maybe.Maybe[T] {
	return c.res
}

// Then composes functions that already return maybe.Maybe[T]
func (c Chain[T]) Then(onPresent func(ctx context.Context, t T) maybe.Maybe[T]) Chain[T] {
	if c.res.IsNone() {
		return c
	}
	return Chain[T]{ctx: c.ctx, res: onPresent(c.ctx, c.res.Value())}
}

// Map transforms the present value to a new value
func (c Chain[T]) Map(onPresent func(ctx context.Context, t T) T) Chain[T] {
	if c.res.IsNone() {
		return c
	}
	return Chain[T]{ctx: c.ctx, res: maybe.Just(onPresent(c.ctx, c.res.Value()))}
}

// Filter drops the value when the predicate rejects it
func (c Chain[T]) Filter(pred func(ctx context.Context, t T) bool) Chain[T] {
	if c.res.IsNone() {
		return c
	}
	return Chain[T]{ctx: c.ctx, res: solo.Filter(c.ctx, c.res, pred)}
}

// Ensure triggers side effects for presence/absence without changing the result
func (c Chain[T]) Ensure(onPresent func(context.Context, T), onNone func(context.Context)) Chain[T] {

	if c.res.IsNone() {
		if onNone != nil {
			onNone(c.ctx)
		}
		return c
	}

	if onPresent != nil {
		onPresent(c.ctx, c.res.Value())
	}
	return c
}

// OrElse extracts the value, falling back to def on absence
func (c Chain[T]) OrElse(def T) T {
	return c.res.OrElse(def)
}

// Finally collapses the chain to a final value, delegating to solo.Finally
func (c Chain[T]) Finally(
	onPresent func(context.Context, T) T,
	onNone func(context.Context) T,
) T {
	return solo.Finally(c.ctx, c.res, onPresent, onNone)
}

// Then chains a function that returns maybe.Maybe[U]
func Then[T, U any](c Chain[T], onPresent func(context.Context, T) maybe.Maybe[U]) Chain[U] {
	return Chain[U]{
		ctx: c.ctx,
		res: solo.Bind[T, U](c.ctx, c.res, onPresent),
	}
}

// Map chains a pure transformation function
func Map[T, U any](c Chain[T], onPresent func(context.Context, T) U) Chain[U] {
	return Chain[U]{
		ctx: c.ctx,
		res: solo.Map[T, U](c.ctx, c.res, onPresent),
	}
}

// Finally collapses a chain into a value of a different type
func Finally[T, U any](c Chain[T], onPresent func(context.Context, T) U, onNone func(context.Context) U) U {
	return solo.Finally[T, U](c.ctx, c.res, onPresent, onNone)
}
