// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package result

import (
	"errors"
	"fmt"
)

func ExampleAndThen() {
	constants := map[string]int{"b": 2}

	lookup := func(name string) Result[error, int] {
		v, ok := constants[name]
		return FromLookup(v, ok, func() error {
			return errors.New("constant not available: " + name)
		})
	}
	multiply := func(n int) Result[error, int] {
		return Ok[error](n * 13)
	}

	for _, name := range []string{"b", "x"} {
		r := AndThen(lookup(name), multiply)
		fmt.Println(Fold(
			r,
			func(n int) string { return fmt.Sprint(n) },
			func(err error) string { return err.Error() },
		))
	}
	// Output:
	// 26
	// constant not available: x
}
