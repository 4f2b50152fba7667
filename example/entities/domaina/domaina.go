// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package domaina resolves and combines named integer constants.
package domaina

import (
	"github.com/z5labs/compose"
	"github.com/z5labs/compose/failure"
	"github.com/z5labs/compose/reader"
	"github.com/z5labs/compose/result"
)

// Constants is everything domaina needs from its configuration.
type Constants interface {
	A() int
	B(name string) (int, bool)
}

// MultiplyByA multiplies value by the A constant.
func MultiplyByA(value int) reader.Reader[Constants, int] {
	return func(c Constants) int {
		return c.A() * value
	}
}

// BValue resolves the named B constant.
func BValue(name string) compose.Step[Constants, failure.Error, int] {
	return func(c Constants) result.Result[failure.Error, int] {
		v, ok := c.B(name)
		return result.FromLookup(v, ok, func() failure.Error {
			return failure.ConstantUnavailable(name)
		})
	}
}

// Value resolves the named B constant and multiplies it by A. A is never
// read if the B constant is unavailable.
func Value(name string) compose.Step[Constants, failure.Error, int] {
	return compose.Then(BValue(name), func(b int) compose.Step[Constants, failure.Error, int] {
		return reader.Map(MultiplyByA(b), result.Ok[failure.Error, int])
	})
}
