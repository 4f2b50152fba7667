// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package async layers deferred, context-aware execution beneath a
// result.Result.
//
// A [Task] does nothing until it is run. [Then] chains tasks strictly in
// order and stops at the first domain failure, exactly like result.AndThen.
// Cancellation is not a domain failure: it is reported through the separate
// error return so callers can tell "the pipeline said no" from "we stopped
// asking".
//
// Nothing blocks implicitly. [Go] starts a task and returns a [Future]
// which the caller must [Future.Await].
package async

import (
	"context"

	"github.com/z5labs/compose/accumulate"
	"github.com/z5labs/compose/internal/try"
	"github.com/z5labs/compose/reader"
	"github.com/z5labs/compose/result"

	"golang.org/x/sync/errgroup"
)

// Task is a deferred computation producing a result.Result. The error
// return is reserved for execution failures such as cancellation.
type Task[E, T any] func(context.Context) (result.Result[E, T], error)

// Of wraps a synchronous, context-aware function.
func Of[E, T any](f func(context.Context) result.Result[E, T]) Task[E, T] {
	return func(ctx context.Context) (result.Result[E, T], error) {
		if err := ctx.Err(); err != nil {
			return result.Result[E, T]{}, err
		}
		return f(ctx), nil
	}
}

// FromResult returns a Task which completes with r.
func FromResult[E, T any](r result.Result[E, T]) Task[E, T] {
	return Of(func(context.Context) result.Result[E, T] {
		return r
	})
}

// FromReader defers running r against cfg until the Task runs.
func FromReader[C, E, T any](r reader.Reader[C, result.Result[E, T]], cfg C) Task[E, T] {
	return Of(func(context.Context) result.Result[E, T] {
		return r.Run(cfg)
	})
}

// Guard converts a panic raised while running t into a domain failure
// built by wrap. The wrapped error is a try.PanicError.
func Guard[E, T any](t Task[E, T], wrap func(error) E) Task[E, T] {
	return func(ctx context.Context) (result.Result[E, T], error) {
		o, perr := try.Call(func() outcome[E, T] {
			res, err := t(ctx)
			return outcome[E, T]{res: res, err: err}
		})
		if perr != nil {
			return result.Err[T](wrap(perr)), nil
		}
		return o.res, o.err
	}
}

type outcome[E, T any] struct {
	res result.Result[E, T]
	err error
}

// Then runs t and, only if it succeeded and ctx is still live, the Task
// returned by f. A domain failure of t is returned unchanged and f is
// never called.
func Then[E, T, U any](t Task[E, T], f func(T) Task[E, U]) Task[E, U] {
	return func(ctx context.Context) (result.Result[E, U], error) {
		res, err := t(ctx)
		if err != nil {
			return result.Result[E, U]{}, err
		}
		if !res.IsOk() {
			// Map never calls its function on an Err, it only retypes it.
			return result.Map(res, func(T) U {
				var zero U
				return zero
			}), nil
		}
		if err := ctx.Err(); err != nil {
			return result.Result[E, U]{}, err
		}
		next := result.Fold(res, f, func(E) Task[E, U] { return nil })
		return next(ctx)
	}
}

// Map transforms the successful value of t.
func Map[E, T, U any](t Task[E, T], f func(T) U) Task[E, U] {
	return func(ctx context.Context) (result.Result[E, U], error) {
		res, err := t(ctx)
		if err != nil {
			return result.Result[E, U]{}, err
		}
		return result.Map(res, f), nil
	}
}

// All runs independent tasks concurrently and accumulates their outcomes
// in input order. Every domain failure is kept. An execution failure of
// any task cancels the others and is returned along with the zero
// Accumulator, which must not be read as a success.
func All[E, T any](ctx context.Context, tasks ...Task[E, T]) (accumulate.Accumulator[E, []T], error) {
	outcomes := make([]accumulate.Accumulator[E, T], len(tasks))

	g, gctx := errgroup.WithContext(ctx)
	for i, t := range tasks {
		g.Go(func() error {
			res, err := t(gctx)
			if err != nil {
				return err
			}
			outcomes[i] = accumulate.FromResult(res)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return accumulate.Accumulator[E, []T]{}, err
	}
	return accumulate.Sequence(outcomes...), nil
}

// Future is the handle of a started Task.
type Future[E, T any] struct {
	done chan struct{}
	res  result.Result[E, T]
	err  error
}

// Go starts t in its own goroutine. ctx governs the task itself. A panic
// escaping t completes the Future with a try.PanicError as its execution
// failure; use [Guard] to turn it into a domain failure instead.
func Go[E, T any](ctx context.Context, t Task[E, T]) *Future[E, T] {
	f := &Future[E, T]{
		done: make(chan struct{}),
	}
	go func() {
		defer close(f.done)
		defer try.Recover(&f.err)
		f.res, f.err = t(ctx)
	}()
	return f
}

// Done is closed once the task has completed.
func (f *Future[E, T]) Done() <-chan struct{} {
	return f.done
}

// Await blocks until the task completes or ctx is done. ctx only bounds
// the wait; it does not cancel the task.
func (f *Future[E, T]) Await(ctx context.Context) (result.Result[E, T], error) {
	select {
	case <-ctx.Done():
		return result.Result[E, T]{}, ctx.Err()
	case <-f.done:
		return f.res, f.err
	}
}
