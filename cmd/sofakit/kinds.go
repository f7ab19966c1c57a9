package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newKindsCmd(a *app) *cobra.Command {
	var filter string
	var containers bool

	cmd := &cobra.Command{
		Use:   "kinds",
		Short: "List the registered kinds",
		Long:  `Lists every kind of the loaded catalogs, sorted by name, with its class, parameter count and source catalog.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "KIND\tCLASS\tPARAMS\tCATALOG")
			for _, e := range a.kit.Registry().Entries() {
				if filter != "" && !strings.Contains(strings.ToLower(e.Kind()), strings.ToLower(filter)) {
					continue
				}
				if containers && !e.Container {
					continue
				}
				class := "component"
				if e.Container {
					class = "container"
				}
				fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", e.Kind(), class, e.Schema.Len(), e.Source)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVarP(&filter, "filter", "f", "", "Only list kinds whose name contains this text")
	cmd.Flags().BoolVar(&containers, "containers", false, "Only list container kinds")
	return cmd
}
