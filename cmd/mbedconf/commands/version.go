package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/mbedconf/internal/build"
)

// versionLine is printed by both the version subcommand and --version.
func versionLine() string {
	return fmt.Sprintf("mbedconf version %s (commit: %s, date: %s)\n", build.Version, build.Commit, build.Date)
}

func (c *CLI) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the application version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprint(cmd.OutOrStdout(), versionLine())
		},
	}
}
