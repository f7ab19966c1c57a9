package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/aretw0/sofakit/internal/presentation/docs"
	"github.com/aretw0/sofakit/internal/presentation/tui"
	"github.com/spf13/cobra"
)

func newDescribeCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "describe <kind>",
		Short: "Show the parameters of a kind",
		Long:  `Prints the help page of a kind: its description, class and declared parameters in order.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := a.kit.Registry().Entry(args[0])
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(e.Schema)
			}

			// Style only when writing straight to a terminal
			styled := false
			if f, ok := cmd.OutOrStdout().(*os.File); ok {
				styled = tui.IsTerminal(f)
			}
			out, err := tui.NewRenderer(styled)(docs.Kind(e))
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the schema as JSON")
	return cmd
}
