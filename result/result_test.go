// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package result

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testError struct {
	message string
}

func foldString[T any](r Result[testError, T]) string {
	return Fold(
		r,
		func(v T) string { return "ok" },
		func(e testError) string { return e.message },
	)
}

func TestFold(t *testing.T) {
	t.Run("will only call onOk", func(t *testing.T) {
		t.Run("if the result is ok", func(t *testing.T) {
			errCalled := false
			v := Fold(
				Ok[testError](2),
				func(n int) int { return n * 10 },
				func(testError) int {
					errCalled = true
					return 0
				},
			)

			if !assert.Equal(t, 20, v) {
				return
			}
			if !assert.False(t, errCalled) {
				return
			}
		})
	})

	t.Run("will only call onErr", func(t *testing.T) {
		t.Run("if the result is an error", func(t *testing.T) {
			okCalled := false
			v := Fold(
				Err[int](testError{message: "boom"}),
				func(int) string {
					okCalled = true
					return ""
				},
				func(e testError) string { return e.message },
			)

			if !assert.Equal(t, "boom", v) {
				return
			}
			if !assert.False(t, okCalled) {
				return
			}
		})
	})
}

func TestMap(t *testing.T) {
	t.Run("will transform a successful value", func(t *testing.T) {
		r := Map(Ok[testError](21), func(n int) int { return n * 2 })

		if !assert.Equal(t, Ok[testError](42), r) {
			return
		}
	})

	t.Run("will pass an error through unchanged", func(t *testing.T) {
		called := false
		r := Map(Err[int](testError{message: "boom"}), func(n int) string {
			called = true
			return strconv.Itoa(n)
		})

		if !assert.Equal(t, Err[string](testError{message: "boom"}), r) {
			return
		}
		if !assert.False(t, called) {
			return
		}
	})
}

func TestMapErr(t *testing.T) {
	t.Run("will transform an error", func(t *testing.T) {
		r := MapErr(Err[int](testError{message: "boom"}), func(e testError) error {
			return errors.New(e.message)
		})

		if !assert.False(t, r.IsOk()) {
			return
		}
		msg := Fold(r, func(int) string { return "" }, func(e error) string { return e.Error() })
		if !assert.Equal(t, "boom", msg) {
			return
		}
	})

	t.Run("will pass a value through unchanged", func(t *testing.T) {
		r := MapErr(Ok[testError](1), func(e testError) error {
			return errors.New(e.message)
		})

		if !assert.Equal(t, Ok[error](1), r) {
			return
		}
	})
}

func TestAndThen(t *testing.T) {
	t.Run("will short-circuit on the first error", func(t *testing.T) {
		var calls []string
		step1 := func(n int) Result[testError, int] {
			calls = append(calls, "step1")
			return Ok[testError](n + 1)
		}
		step2 := func(n int) Result[testError, int] {
			calls = append(calls, "step2")
			return Err[int](testError{message: "step2 failed"})
		}
		step3 := func(n int) Result[testError, int] {
			calls = append(calls, "step3")
			return Ok[testError](n * 2)
		}

		r := AndThen(AndThen(step1(1), step2), step3)

		if !assert.Equal(t, Err[int](testError{message: "step2 failed"}), r) {
			return
		}
		if !assert.Equal(t, []string{"step1", "step2"}, calls) {
			return
		}
	})

	t.Run("will thread values through every step", func(t *testing.T) {
		r := AndThen(Ok[testError](2), func(n int) Result[testError, string] {
			return Ok[testError](strconv.Itoa(n * 13))
		})

		if !assert.Equal(t, Ok[testError]("26"), r) {
			return
		}
	})
}

func TestFromLookup(t *testing.T) {
	t.Run("will not call orElse", func(t *testing.T) {
		t.Run("if the lookup succeeded", func(t *testing.T) {
			r := FromLookup(2, true, func() testError {
				t.Fatal("orElse must not be called")
				return testError{}
			})

			if !assert.Equal(t, Ok[testError](2), r) {
				return
			}
		})
	})

	t.Run("will return the error from orElse", func(t *testing.T) {
		t.Run("if the lookup failed", func(t *testing.T) {
			r := FromLookup(0, false, func() testError {
				return testError{message: "missing"}
			})

			if !assert.Equal(t, "missing", foldString(r)) {
				return
			}
		})
	})
}

func TestFromError(t *testing.T) {
	t.Run("will return an Err", func(t *testing.T) {
		t.Run("if the error is non-nil", func(t *testing.T) {
			_, parseErr := strconv.Atoi("zly numer")

			r := FromError(strconv.Atoi("zly numer"))

			if !assert.Equal(t, Err[int](parseErr), r) {
				return
			}
		})
	})

	t.Run("will return an Ok", func(t *testing.T) {
		t.Run("if the error is nil", func(t *testing.T) {
			r := FromError(strconv.Atoi("1"))

			if !assert.Equal(t, Ok[error](1), r) {
				return
			}
		})
	})
}

func TestWhen(t *testing.T) {
	div := func(dividend, divider int) Result[testError, int] {
		return When(
			divider != 0,
			func() testError { return testError{message: "division by zero"} },
			func() int { return dividend / divider },
		)
	}

	testCases := []struct {
		name     string
		dividend int
		divider  int
		expected Result[testError, int]
	}{
		{
			name:     "divides when the divider is non-zero",
			dividend: 26,
			divider:  2,
			expected: Ok[testError](13),
		},
		{
			name:     "fails when the divider is zero",
			dividend: 26,
			divider:  0,
			expected: Err[int](testError{message: "division by zero"}),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, div(tc.dividend, tc.divider))
		})
	}
}

type value struct {
	text    string
	number  int
	boolean bool
}

func TestMap3(t *testing.T) {
	f1 := func(i int) Result[testError, string] {
		return Ok[testError](strconv.Itoa(i))
	}
	f2 := func(s string) Result[testError, int] {
		n, err := strconv.Atoi(s)
		if err != nil {
			return Err[int](testError{message: "not a number"})
		}
		return Ok[testError](n)
	}
	f3 := func(i int) Result[testError, bool] {
		switch {
		case i >= 0 && i <= 9:
			return Ok[testError](true)
		case i >= 10 && i <= 99:
			return Ok[testError](false)
		default:
			return Err[bool](testError{message: "out of range"})
		}
	}

	testCases := []struct {
		name     string
		a        int
		b        string
		c        int
		expected Result[testError, value]
	}{
		{
			name:     "joins all values",
			a:        1,
			b:        "1",
			c:        1,
			expected: Ok[testError](value{text: "1", number: 1, boolean: true}),
		},
		{
			name:     "keeps only the first error",
			a:        1,
			b:        "zly numer",
			c:        1000,
			expected: Err[value](testError{message: "not a number"}),
		},
		{
			name:     "fails on the last input",
			a:        1,
			b:        "1",
			c:        1000,
			expected: Err[value](testError{message: "out of range"}),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := Map3(f1(tc.a), f2(tc.b), f3(tc.c), func(s string, n int, b bool) value {
				return value{text: s, number: n, boolean: b}
			})
			require.Equal(t, tc.expected, r)
		})
	}
}

func TestTraverse(t *testing.T) {
	isOdd := func(n int) Result[testError, int] {
		if n%2 == 1 {
			return Ok[testError](n)
		}
		return Err[int](testError{message: "not odd"})
	}

	testCases := []struct {
		name     string
		numbers  []int
		expected Result[testError, []int]
		visited  []int
	}{
		{
			name:     "collects every value",
			numbers:  []int{1, 13, 19},
			expected: Ok[testError]([]int{2, 14, 20}),
			visited:  []int{1, 13, 19},
		},
		{
			name:     "stops at the first error",
			numbers:  []int{1, 20, 19},
			expected: Err[[]int](testError{message: "not odd"}),
			visited:  []int{1, 20},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var visited []int
			r := Traverse(tc.numbers, func(n int) Result[testError, int] {
				visited = append(visited, n)
				return Map(isOdd(n), func(n int) int { return n + 1 })
			})
			require.Equal(t, tc.expected, r)
			require.Equal(t, tc.visited, visited)
		})
	}
}
