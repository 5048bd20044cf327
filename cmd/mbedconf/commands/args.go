package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newArgsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "args",
		Short: "Print the configurator command line, one argument per line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			argv, err := c.app.Args(cmd.Context(), c.runOptions())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, arg := range argv {
				_, _ = fmt.Fprintln(out, arg)
			}
			return nil
		},
	}
}
