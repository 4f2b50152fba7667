// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package validation contrasts accumulating validation with fail fast
// parsing.
//
// [Validate] runs every rule and reports every violation. [Parse] and
// [IncrementOdds] stop at the first failure.
package validation

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/z5labs/compose/accumulate"
	"github.com/z5labs/compose/failure"
	"github.com/z5labs/compose/result"
)

// InRange checks min <= n <= max.
func InRange(n, min, max int) accumulate.Accumulator[failure.Error, int] {
	return accumulate.FromResult(inRange(n, min, max))
}

func inRange(n, min, max int) result.Result[failure.Error, int] {
	return result.When(
		n >= min && n <= max,
		func() failure.Error {
			return failure.ValidationFailed(fmt.Sprintf("not in range: %d - %d", min, max))
		},
		func() int { return n },
	)
}

// IsOdd checks that n is a positive odd number.
func IsOdd(n int) accumulate.Accumulator[failure.Error, int] {
	return accumulate.FromResult(odd(n))
}

func odd(n int) result.Result[failure.Error, int] {
	return result.When(
		n%2 == 1,
		func() failure.Error { return failure.ValidationFailed("not odd") },
		func() int { return n },
	)
}

var namePattern = regexp.MustCompile(`^[A-Z][a-z]*$`)

// IsName checks that s is a capitalized word.
func IsName(s string) accumulate.Accumulator[failure.Error, string] {
	return accumulate.FromResult(nameOf(s))
}

func nameOf(s string) result.Result[failure.Error, string] {
	return result.When(
		namePattern.MatchString(s),
		func() failure.Error { return failure.ValidationFailed("not a name") },
		func() string { return s },
	)
}

// Person is a validated age and name pair.
type Person struct {
	Age  int
	Name string
}

// Validate checks age is an odd number in 1..100 and name is a name.
// Violations are reported in that order.
func Validate(age int, name string) accumulate.Accumulator[failure.Error, Person] {
	return accumulate.Combine3(
		InRange(age, 1, 100),
		IsOdd(age),
		IsName(name),
		func(age, _ int, name string) Person {
			return Person{Age: age, Name: name}
		},
	)
}

// ValidateFailFast checks the same rules as [Validate] one after another
// and stops at the first violation. An age in range is shifted by ten
// before the odd check and is returned shifted.
func ValidateFailFast(age int, name string) result.Result[failure.Error, Person] {
	return result.AndThen(inRange(age, 1, 100), func(age int) result.Result[failure.Error, Person] {
		return result.AndThen(odd(age+10), func(age int) result.Result[failure.Error, Person] {
			return result.Map(nameOf(name), func(name string) Person {
				return Person{Age: age, Name: name}
			})
		})
	})
}

// Value is built by [Parse].
type Value struct {
	Text   string
	Number int
	Small  bool
}

// Parse builds a Value from three independent inputs and reports only
// the first failure.
func Parse(text int, number string, size int) result.Result[failure.Error, Value] {
	n, err := strconv.Atoi(number)
	return result.Map3(
		result.Ok[failure.Error](strconv.Itoa(text)),
		result.MapErr(result.FromError(n, err), failure.Wrap),
		small(size),
		func(text string, number int, small bool) Value {
			return Value{Text: text, Number: number, Small: small}
		},
	)
}

func small(n int) result.Result[failure.Error, bool] {
	switch {
	case n >= 0 && n <= 9:
		return result.Ok[failure.Error](true)
	case n >= 10 && n <= 99:
		return result.Ok[failure.Error](false)
	default:
		return result.Err[bool](failure.ValidationFailed(fmt.Sprintf("too large: %d", n)))
	}
}

// IncrementOdds adds one to every number, failing on the first even one.
func IncrementOdds(ns []int) result.Result[failure.Error, []int] {
	return result.Traverse(ns, func(n int) result.Result[failure.Error, int] {
		return result.Map(odd(n), func(n int) int { return n + 1 })
	})
}

// CheckOdds reports every even number.
func CheckOdds(ns []int) accumulate.Accumulator[failure.Error, []int] {
	return accumulate.Traverse(ns, IsOdd)
}
