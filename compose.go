// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package compose

import (
	"github.com/z5labs/compose/reader"
	"github.com/z5labs/compose/result"
)

// Step is a configuration dependent computation which may fail.
// It is an ordinary reader.Reader, so reader.Narrow applies directly.
type Step[C, E, T any] = reader.Reader[C, result.Result[E, T]]

// Just returns a Step which always succeeds with v.
func Just[C, E, T any](v T) reader.Reader[C, result.Result[E, T]] {
	return reader.Pure[C](result.Ok[E](v))
}

// Fail returns a Step which always fails with e.
func Fail[C, T, E any](e E) reader.Reader[C, result.Result[E, T]] {
	return reader.Pure[C](result.Err[T](e))
}

// Lift embeds an already computed result into a Step.
func Lift[C, E, T any](r result.Result[E, T]) reader.Reader[C, result.Result[E, T]] {
	return reader.Pure[C](r)
}

// Asks builds a Step from a function of the configuration.
func Asks[C, E, T any](f func(C) result.Result[E, T]) reader.Reader[C, result.Result[E, T]] {
	return reader.Of(f)
}

// Map transforms the successful value of r.
func Map[C, E, T, U any](r reader.Reader[C, result.Result[E, T]], f func(T) U) reader.Reader[C, result.Result[E, U]] {
	return reader.Map(r, func(res result.Result[E, T]) result.Result[E, U] {
		return result.Map(res, f)
	})
}

// Then sequences a dependent Step. If r fails, f is never called, the
// Step it would return is never run and r's error is returned unchanged.
func Then[C, E, T, U any](r reader.Reader[C, result.Result[E, T]], f func(T) reader.Reader[C, result.Result[E, U]]) reader.Reader[C, result.Result[E, U]] {
	return func(cfg C) result.Result[E, U] {
		return result.AndThen(r(cfg), func(v T) result.Result[E, U] {
			return f(v)(cfg)
		})
	}
}

// Run executes r once against cfg.
func Run[C, E, T any](r reader.Reader[C, result.Result[E, T]], cfg C) result.Result[E, T] {
	return r.Run(cfg)
}
