package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/syssam/quanta/compiler/gen"
)

func newFeaturesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "features",
		Short: "List the opt-in codegen features",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tSTAGE\tDEFAULT\tDESCRIPTION")
			for _, f := range gen.AllFeatures {
				def := "off"
				if f.Default {
					def = "on"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", f.Name, f.Stage, def, f.Description)
			}
			return w.Flush()
		},
	}
}
