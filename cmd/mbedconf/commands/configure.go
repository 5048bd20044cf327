package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newConfigureCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "configure",
		Short: "Run the configurator and print its output",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reuse, _ := cmd.Flags().GetBool("reuse")
			return c.runConfigure(reuse)(cmd, args)
		},
	}
	cmd.Flags().BoolP("reuse", "r", false, "Print the stored output when the inputs are unchanged since the last successful run")
	return cmd
}

func (c *CLI) runConfigure(reuse bool) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		opts := c.runOptions()
		opts.Reuse = reuse
		return c.app.Configure(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), opts)
	}
}
