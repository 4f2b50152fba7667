// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package compose

import (
	"errors"
	"testing"

	"github.com/z5labs/compose/reader"
	"github.com/z5labs/compose/result"

	"github.com/stretchr/testify/assert"
)

type settings struct {
	factor int
}

type app struct {
	settings settings
}

func TestThen(t *testing.T) {
	t.Run("will never run the remaining steps", func(t *testing.T) {
		t.Run("if a step fails", func(t *testing.T) {
			step2Err := errors.New("step 2 failed")
			var calls []string

			step1 := Asks(func(s settings) result.Result[error, int] {
				calls = append(calls, "step1")
				return result.Ok[error](s.factor)
			})
			step2 := func(n int) Step[settings, error, int] {
				calls = append(calls, "step2")
				return Fail[settings, int](step2Err)
			}
			step3 := func(n int) Step[settings, error, int] {
				calls = append(calls, "step3")
				return Just[settings, error](n * 2)
			}

			res := Run(Then(Then(step1, step2), step3), settings{factor: 3})

			err := result.Fold(res, func(int) error { return nil }, func(err error) error { return err })
			if !assert.Equal(t, step2Err, err) {
				return
			}
			if !assert.Equal(t, []string{"step1", "step2"}, calls) {
				return
			}
		})
	})

	t.Run("will thread the configuration and values through every step", func(t *testing.T) {
		multiply := func(n int) Step[settings, error, int] {
			return Asks(func(s settings) result.Result[error, int] {
				return result.Ok[error](n * s.factor)
			})
		}

		res := Run(Then(Then(Just[settings, error](2), multiply), multiply), settings{factor: 13})

		if !assert.Equal(t, result.Ok[error](338), res) {
			return
		}
	})
}

func TestMap(t *testing.T) {
	t.Run("will transform the successful value", func(t *testing.T) {
		res := Run(Map(Just[settings, error](21), func(n int) int { return n * 2 }), settings{})

		if !assert.Equal(t, result.Ok[error](42), res) {
			return
		}
	})

	t.Run("will not call the function", func(t *testing.T) {
		t.Run("if the step fails", func(t *testing.T) {
			res := Run(Map(Fail[settings, int](errors.New("boom")), func(n int) int {
				t.Fatal("must not be called")
				return n
			}), settings{})

			if !assert.False(t, res.IsOk()) {
				return
			}
		})
	})
}

func TestLift(t *testing.T) {
	t.Run("will embed an existing result between steps", func(t *testing.T) {
		div := func(n int) Step[app, error, int] {
			return Lift[app](result.When(
				n%2 == 0,
				func() error { return errors.New("not divisible") },
				func() int { return n / 2 },
			))
		}
		factor := reader.Narrow(
			Asks(func(s settings) result.Result[error, int] {
				return result.Ok[error](s.factor)
			}),
			func(a app) settings { return a.settings },
		)

		res := Run(Then(factor, div), app{settings: settings{factor: 26}})

		if !assert.Equal(t, result.Ok[error](13), res) {
			return
		}
	})
}
