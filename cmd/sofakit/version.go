package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/sofakit"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of sofakit",
		Args:  cobra.NoArgs,
		// No catalogs or config needed
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "sofakit version %s\n", strings.TrimSpace(sofakit.Version))
			return err
		},
	}
}
