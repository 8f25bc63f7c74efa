package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func NewCmdVersion(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version of drawnumber",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(cmd.OutOrStdout(), FormatVersion(version))
		},
	}
}

// FormatVersion returns the version line printed by `version` and --version.
func FormatVersion(version string) string {
	version = strings.TrimPrefix(version, "v")
	if version == "" {
		version = "dev"
	}
	return fmt.Sprintf("drawnumber version %s\n", version)
}
