// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package cli

import (
	"github.com/z5labs/compose/example/entities/domainb"
	"github.com/z5labs/compose/failure"
	"github.com/z5labs/compose/result"

	"github.com/spf13/cobra"
)

func runCmd(r *root) *cobra.Command {
	var halved bool

	c := &cobra.Command{
		Use:   "run NAME",
		Short: "Run the pipeline for the named constant and print the saved entity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := r.application()
			if err != nil {
				return err
			}

			process := a.Process
			if halved {
				process = a.ProcessHalved
			}
			e, err := process(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printEntity(cmd.OutOrStdout(), e)
		},
	}

	c.Flags().BoolVar(&halved, "halved", false, "halve the constant before looking up the entity")
	return c
}

func runAsyncCmd(r *root) *cobra.Command {
	return &cobra.Command{
		Use:   "run-async NAME",
		Short: "Run the pipeline as a chain of tasks and print the saved entity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := r.application()
			if err != nil {
				return err
			}

			res, err := a.ProcessAsync(cmd.Context(), args[0]).Await(cmd.Context())
			if err != nil {
				return err
			}
			return result.Fold(res,
				func(e domainb.Entity) error {
					return printEntity(cmd.OutOrStdout(), e)
				},
				func(e failure.Error) error {
					return e
				},
			)
		},
	}
}
