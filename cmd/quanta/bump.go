package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/syssam/quanta/internal/bump"
)

func newBumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bump",
		Short: "Increment the patch version of a build manifest",
		Long: `Bump rewrites the first version = "major.minor.patch" line of the
manifest with its patch component incremented. The new version is printed
to stdout. On any failure the manifest is left untouched.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			manifest, _ := cmd.Flags().GetString("manifest")
			next, err := bump.Patch(manifest)
			if err != nil {
				return err
			}
			log.Infow("manifest bumped", "path", manifest, "version", next)
			fmt.Fprintln(cmd.OutOrStdout(), next)
			return nil
		},
	}
	cmd.Flags().String("manifest", "", "manifest file holding the version line")
	_ = cmd.MarkFlagRequired("manifest")
	return cmd
}
