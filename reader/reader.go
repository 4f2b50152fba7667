// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package reader provides deferred, composable computations over a
// configuration.
//
// A [Reader] describes how to produce a value once a configuration is
// supplied, without running anything. Readers are composed with [Map] and
// [Bind], adapted to larger configurations with [Narrow] and finally
// executed once with [Reader.Run] at the application boundary.
//
// Domain code should depend on a small capability interface as its
// configuration type rather than on the aggregate application config:
//
//	type Constants interface {
//	    A() int
//	}
//
//	func MultiplyByA(n int) reader.Reader[Constants, int] {
//	    return reader.Of(func(c Constants) int { return c.A() * n })
//	}
//
// The application then narrows each domain reader into its own config:
//
//	r := reader.Narrow(MultiplyByA(2), func(d Dependencies) Constants { return d.Constants })
//	v := r.Run(deps)
package reader

// Reader is a deferred computation which produces a T given a C.
// Running it has no side effects beyond what the wrapped function does.
type Reader[C, T any] func(C) T

// Run executes the computation against cfg.
func (r Reader[C, T]) Run(cfg C) T {
	return r(cfg)
}

// Of wraps f.
func Of[C, T any](f func(C) T) Reader[C, T] {
	return f
}

// Pure returns a Reader which ignores its configuration and produces v.
func Pure[C, T any](v T) Reader[C, T] {
	return func(C) T {
		return v
	}
}

// Ask returns a Reader which produces its configuration.
func Ask[C any]() Reader[C, C] {
	return func(cfg C) C {
		return cfg
	}
}

// Map post-processes the value produced by r without re-reading the
// configuration.
func Map[C, T, U any](r Reader[C, T], f func(T) U) Reader[C, U] {
	return func(cfg C) U {
		return f(r(cfg))
	}
}

// Bind sequences a dependent step. The same configuration is passed to r
// and to the Reader returned by f.
func Bind[C, T, U any](r Reader[C, T], f func(T) Reader[C, U]) Reader[C, U] {
	return func(cfg C) U {
		return f(r(cfg))(cfg)
	}
}

// Narrow adapts r, which only needs a C, into a Reader over a larger
// configuration O by applying project first.
func Narrow[O, C, T any](r Reader[C, T], project func(O) C) Reader[O, T] {
	return func(outer O) T {
		return r(project(outer))
	}
}

// Zip runs two independent readers against the same configuration and
// joins their values.
func Zip[C, A, B, R any](ra Reader[C, A], rb Reader[C, B], join func(A, B) R) Reader[C, R] {
	return func(cfg C) R {
		return join(ra(cfg), rb(cfg))
	}
}

// Sequence runs every reader, in order, against the same configuration.
func Sequence[C, T any](rs ...Reader[C, T]) Reader[C, []T] {
	return func(cfg C) []T {
		out := make([]T, len(rs))
		for i, r := range rs {
			out[i] = r(cfg)
		}
		return out
	}
}
