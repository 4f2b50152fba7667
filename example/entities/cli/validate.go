// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package cli

import (
	"fmt"

	"github.com/z5labs/compose/accumulate"
	"github.com/z5labs/compose/example/validation"
	"github.com/z5labs/compose/failure"
	"github.com/z5labs/compose/pkg/slogfield"

	"github.com/spf13/cobra"
)

// InvalidInputError is returned by the validate command after every
// violation has been printed.
type InvalidInputError struct {
	Errors []failure.Error
}

func (e InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %d violation(s)", len(e.Errors))
}

func validateCmd(r *root) *cobra.Command {
	var age int
	var name string

	c := &cobra.Command{
		Use:   "validate",
		Short: "Validate an age and a name, reporting every violation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()

			return accumulate.Fold(validation.Validate(age, name),
				func(p validation.Person) error {
					_, err := fmt.Fprintf(w, "valid: %d %s\n", p.Age, p.Name)
					return err
				},
				func(errs []failure.Error) error {
					r.log.WarnContext(cmd.Context(), "validation failed", slogfield.Errors("errors", errs))
					for _, err := range errs {
						fmt.Fprintln(w, err.Message)
					}
					return InvalidInputError{Errors: errs}
				},
			)
		},
	}

	c.Flags().IntVar(&age, "a", 0, "age, an odd number between 1 and 100")
	c.Flags().StringVar(&name, "b", "", "name, a capitalized word")
	return c
}
