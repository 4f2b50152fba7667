// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package result provides a short-circuiting outcome type for sequential,
// dependent domain logic.
//
// A [Result] is either Ok, holding a value, or Err, holding a single error.
// When results are chained with [AndThen] the first error wins: every later
// step is skipped and the error propagates unchanged.
package result

// Result is the outcome of a computation which either succeeded with
// a T or failed with an E. Exactly one of the two is populated.
type Result[E, T any] struct {
	ok    bool
	value T
	err   E
}

// Ok returns a successful Result.
func Ok[E, T any](v T) Result[E, T] {
	return Result[E, T]{ok: true, value: v}
}

// Err returns a failed Result.
func Err[T, E any](e E) Result[E, T] {
	return Result[E, T]{err: e}
}

// IsOk reports whether r holds a value.
func (r Result[E, T]) IsOk() bool {
	return r.ok
}

// Fold is the only way to unwrap a Result. Exactly one of onOk or onErr
// is called.
func Fold[E, T, R any](r Result[E, T], onOk func(T) R, onErr func(E) R) R {
	if r.ok {
		return onOk(r.value)
	}
	return onErr(r.err)
}

// Map transforms a successful value and passes an error through unchanged.
func Map[E, T, U any](r Result[E, T], f func(T) U) Result[E, U] {
	if !r.ok {
		return Err[U](r.err)
	}
	return Ok[E](f(r.value))
}

// MapErr transforms an error and passes a successful value through unchanged.
func MapErr[E, F, T any](r Result[E, T], f func(E) F) Result[F, T] {
	if r.ok {
		return Ok[F](r.value)
	}
	return Err[T](f(r.err))
}

// AndThen sequences a dependent step. If r is an Err, f is never invoked.
func AndThen[E, T, U any](r Result[E, T], f func(T) Result[E, U]) Result[E, U] {
	if !r.ok {
		return Err[U](r.err)
	}
	return f(r.value)
}

// FromLookup converts the common (value, ok) lookup idiom into a Result.
// orElse is only called when ok is false.
func FromLookup[E, T any](v T, ok bool, orElse func() E) Result[E, T] {
	if !ok {
		return Err[T](orElse())
	}
	return Ok[E](v)
}

// FromError converts the (value, error) idiom into a Result.
func FromError[T any](v T, err error) Result[error, T] {
	if err != nil {
		return Err[T](err)
	}
	return Ok[error](v)
}

// When returns Ok(onTrue()) if cond holds, otherwise Err(onFalse()).
// Only the selected function is called.
func When[E, T any](cond bool, onFalse func() E, onTrue func() T) Result[E, T] {
	if !cond {
		return Err[T](onFalse())
	}
	return Ok[E](onTrue())
}

// Map2 joins two independent results, failing fast. Unlike
// accumulate.Combine2, only the first error is kept.
func Map2[E, A, B, R any](ra Result[E, A], rb Result[E, B], join func(A, B) R) Result[E, R] {
	return AndThen(ra, func(a A) Result[E, R] {
		return Map(rb, func(b B) R {
			return join(a, b)
		})
	})
}

// Map3 joins three independent results, failing fast.
func Map3[E, A, B, C, R any](ra Result[E, A], rb Result[E, B], rc Result[E, C], join func(A, B, C) R) Result[E, R] {
	return AndThen(ra, func(a A) Result[E, R] {
		return Map2(rb, rc, func(b B, c C) R {
			return join(a, b, c)
		})
	})
}

// Traverse applies f to every element of xs in order and collects the
// values. It stops at the first error; later elements are never passed to f.
func Traverse[E, T, U any](xs []T, f func(T) Result[E, U]) Result[E, []U] {
	out := make([]U, 0, len(xs))
	for _, x := range xs {
		r := f(x)
		if !r.ok {
			return Err[[]U](r.err)
		}
		out = append(out, r.value)
	}
	return Ok[E](out)
}
