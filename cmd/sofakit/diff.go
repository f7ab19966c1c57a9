package main

import (
	"fmt"

	"github.com/aretw0/sofakit/pkg/plan"
	"github.com/spf13/cobra"
)

func newDiffCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "diff <old> <new>",
		Short: "Compare two plans operation by operation",
		Long: `Compares two plans by operation index. Each argument is a plan file
(.json, .yaml) or, when no such file exists, the name of a saved plan.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			oldPlan, err := a.readPlan(cmd, args[0])
			if err != nil {
				return err
			}
			newPlan, err := a.readPlan(cmd, args[1])
			if err != nil {
				return err
			}

			d := plan.Diff(oldPlan, newPlan)
			if d.IsEmpty() {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), "No changes.")
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), d.String())
			return err
		},
	}
}
