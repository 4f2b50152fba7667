// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package validation

import (
	"fmt"

	"github.com/z5labs/compose/accumulate"
	"github.com/z5labs/compose/failure"
)

func ExampleValidate() {
	report := func(a accumulate.Accumulator[failure.Error, Person]) {
		accumulate.Fold(a,
			func(p Person) error {
				fmt.Printf("%+v\n", p)
				return nil
			},
			func(errs []failure.Error) error {
				for _, err := range errs {
					fmt.Println(err)
				}
				return nil
			},
		)
	}

	report(Validate(1, "Janek"))
	report(Validate(200, "1 Janek"))
	// Output: {Age:1 Name:Janek}
	// validation_failed: not in range: 1 - 100
	// validation_failed: not odd
	// validation_failed: not a name
}
