package commands

import (
	"fmt"

	"github.com/netxfw/antiddos/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:         "version",
	Short:       "Show version information",
	Long:        `Show the current version of antiddos`,
	Annotations: map[string]string{skipConfigAnnotation: "true"},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "antiddos %s\n", version.Version)
		if version.Commit != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "commit: %s\n", version.Commit)
		}
		if version.BuildDate != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "built:  %s\n", version.BuildDate)
		}
	},
}
