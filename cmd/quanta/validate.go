package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/syssam/quanta/compiler/gen"
)

func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Compile a catalog and report problems without emitting code",
		Args:  cobra.NoArgs,
		RunE:  runValidate,
	}
	cmd.Flags().String("catalog", "", "catalog file, .yaml or .db (default: built-in SI catalog)")
	return cmd
}

func runValidate(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalog(cmd.Context(), setting(cmd, "catalog"))
	if err != nil {
		return err
	}
	g, err := gen.NewGraph(&gen.Config{}, cat)
	if err != nil {
		return err
	}
	units := 0
	for _, k := range g.Kinds {
		units += len(k.Units)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "catalog OK: %d kinds, %d units, %d products, %d reciprocal pairs\n",
		len(g.Kinds), units, len(g.Facts), len(g.Pairs))
	for _, cat := range g.Categories() {
		names := make([]string, 0, 8)
		for _, k := range g.KindsOf(cat) {
			names = append(names, k.Label())
		}
		fmt.Fprintf(cmd.OutOrStdout(), "  %-12s %v\n", cat, names)
	}
	return nil
}
