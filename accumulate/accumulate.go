// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package accumulate provides an error-accumulating outcome type for
// independent validations.
//
// Where a result.Result stops at the first error, combining Accumulators
// always evaluates every input and keeps every error, in input order.
package accumulate

import (
	"slices"

	"github.com/z5labs/compose/result"
)

// Accumulator is either Ok, holding a T, or Err, holding a non-empty
// ordered sequence of E.
type Accumulator[E, T any] struct {
	value T
	errs  []E
}

// Ok returns a successful Accumulator.
func Ok[E, T any](v T) Accumulator[E, T] {
	return Accumulator[E, T]{value: v}
}

// Err returns a failed Accumulator holding e followed by more.
func Err[T, E any](e E, more ...E) Accumulator[E, T] {
	errs := make([]E, 0, 1+len(more))
	errs = append(errs, e)
	errs = append(errs, more...)
	return Accumulator[E, T]{errs: errs}
}

// FromResult lifts a short-circuiting result into an Accumulator. A single
// error becomes a one element sequence.
func FromResult[E, T any](r result.Result[E, T]) Accumulator[E, T] {
	return result.Fold(r, Ok[E, T], func(e E) Accumulator[E, T] {
		return Err[T](e)
	})
}

// IsOk reports whether a holds a value.
func (a Accumulator[E, T]) IsOk() bool {
	return len(a.errs) == 0
}

// Errors returns a copy of the accumulated errors. It is empty for Ok.
func (a Accumulator[E, T]) Errors() []E {
	return slices.Clone(a.errs)
}

// Fold unwraps a. Exactly one of onOk or onErr is called.
func Fold[E, T, R any](a Accumulator[E, T], onOk func(T) R, onErr func([]E) R) R {
	if a.IsOk() {
		return onOk(a.value)
	}
	return onErr(a.Errors())
}

// Map transforms a successful value and passes errors through unchanged.
func Map[E, T, U any](a Accumulator[E, T], f func(T) U) Accumulator[E, U] {
	if !a.IsOk() {
		return Accumulator[E, U]{errs: a.errs}
	}
	return Ok[E](f(a.value))
}

// ToResult converts a into a Result whose error is the whole sequence.
func ToResult[E, T any](a Accumulator[E, T]) result.Result[[]E, T] {
	if !a.IsOk() {
		return result.Err[T](a.Errors())
	}
	return result.Ok[[]E](a.value)
}

// concat gathers the errors of every input without stopping early.
func concat[E any](errSets ...[]E) []E {
	var n int
	for _, errs := range errSets {
		n += len(errs)
	}
	if n == 0 {
		return nil
	}
	out := make([]E, 0, n)
	for _, errs := range errSets {
		out = append(out, errs...)
	}
	return out
}

// Combine2 joins two independent accumulators. join is only applied when
// both are Ok; otherwise every error of a then b is kept.
func Combine2[E, A, B, R any](a Accumulator[E, A], b Accumulator[E, B], join func(A, B) R) Accumulator[E, R] {
	errs := concat(a.errs, b.errs)
	if len(errs) > 0 {
		return Accumulator[E, R]{errs: errs}
	}
	return Ok[E](join(a.value, b.value))
}

// Combine3 joins three independent accumulators.
func Combine3[E, A, B, C, R any](a Accumulator[E, A], b Accumulator[E, B], c Accumulator[E, C], join func(A, B, C) R) Accumulator[E, R] {
	errs := concat(a.errs, b.errs, c.errs)
	if len(errs) > 0 {
		return Accumulator[E, R]{errs: errs}
	}
	return Ok[E](join(a.value, b.value, c.value))
}

// Combine4 joins four independent accumulators.
func Combine4[E, A, B, C, D, R any](a Accumulator[E, A], b Accumulator[E, B], c Accumulator[E, C], d Accumulator[E, D], join func(A, B, C, D) R) Accumulator[E, R] {
	errs := concat(a.errs, b.errs, c.errs, d.errs)
	if len(errs) > 0 {
		return Accumulator[E, R]{errs: errs}
	}
	return Ok[E](join(a.value, b.value, c.value, d.value))
}

// Sequence joins any number of accumulators of the same type.
func Sequence[E, T any](as ...Accumulator[E, T]) Accumulator[E, []T] {
	errSets := make([][]E, len(as))
	for i, a := range as {
		errSets[i] = a.errs
	}
	if errs := concat(errSets...); len(errs) > 0 {
		return Accumulator[E, []T]{errs: errs}
	}
	values := make([]T, len(as))
	for i, a := range as {
		values[i] = a.value
	}
	return Ok[E](values)
}

// Traverse applies f to every element of xs, never stopping early, and
// joins the outcomes with [Sequence].
func Traverse[E, T, U any](xs []T, f func(T) Accumulator[E, U]) Accumulator[E, []U] {
	as := make([]Accumulator[E, U], len(xs))
	for i, x := range xs {
		as[i] = f(x)
	}
	return Sequence(as...)
}
