package solo

import (
	"context"

	"github.com/ib-77/maybe3/pkg/maybe"
)

func Wrap[T any](input T) maybe.Maybe[T] {
	return maybe.Just(input)
}

func Empty[T any]() maybe.Maybe[T] {
	return maybe.None[T]()
}

// Bind is the chain operator. Absent input short-circuits: onPresent is
// not invoked and absence propagates unchanged. Present input hands the
// value to onPresent and returns its result directly.
func Bind[In any, Out any](ctx context.Context,
	input maybe.Maybe[In],
	onPresent func(ctx context.Context, r In) maybe.Maybe[Out]) maybe.Maybe[Out] {

	if input.IsPresent() {
		return onPresent(ctx, input.Value())
	}
	return maybe.NoneFrom[In, Out](input)
}

func Map[In any, Out any](ctx context.Context,
	input maybe.Maybe[In],
	onPresent func(ctx context.Context, r In) Out) maybe.Maybe[Out] {

	if input.IsPresent() {
		return maybe.Just(onPresent(ctx, input.Value()))
	}
	return maybe.NoneFrom[In, Out](input)
}

// Filter keeps a present value only while the predicate holds; a present
// value failing it becomes absent.
func Filter[T any](ctx context.Context,
	input maybe.Maybe[T],
	pred func(ctx context.Context, r T) bool) maybe.Maybe[T] {

	if input.IsPresent() {
		if pred(ctx, input.Value()) {
			return input
		}
		return maybe.NoneFrom[T, T](input)
	}
	return input
}

func Tee[T any](ctx context.Context,
	input maybe.Maybe[T],
	onPresent func(ctx context.Context, r maybe.Maybe[T])) maybe.Maybe[T] {

	if input.IsPresent() {
		onPresent(ctx, input)
	}

	return input
}

func DoubleTee[T any](ctx context.Context, input maybe.Maybe[T],
	onPresent func(ctx context.Context, r T),
	onNone func(ctx context.Context)) maybe.Maybe[T] {

	if input.IsPresent() {
		onPresent(ctx, input.Value())
	} else {
		onNone(ctx)
	}

	return input
}

// Try bridges error-returning code into the container: a non-nil error
// collapses to absence.
func Try[In any, Out any](ctx context.Context, input maybe.Maybe[In],
	onTryExecute func(ctx context.Context, r In) (Out, error)) maybe.Maybe[Out] {

	if input.IsPresent() {

		out, err := onTryExecute(ctx, input.Value())
		if err != nil {
			return maybe.None[Out]()
		}

		return maybe.Just(out)
	}

	return maybe.NoneFrom[In, Out](input)
}

func Finally[In, Out any](ctx context.Context, input maybe.Maybe[In],
	onPresent func(ctx context.Context, r In) Out,
	onNone func(ctx context.Context) Out) Out {

	if input.IsPresent() {
		return onPresent(ctx, input.Value())
	}
	return onNone(ctx)
}

func Extract[T any](_ context.Context, input maybe.Maybe[T], def T) T {
	return input.OrElse(def)
}
