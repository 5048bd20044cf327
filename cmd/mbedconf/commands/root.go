// Package commands implements the CLI commands for mbedconf.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/mbedconf/internal/app"
	"go.trai.ch/mbedconf/internal/build"
)

// CLI represents the command line interface for mbedconf.
type CLI struct {
	app     Application
	logs    LogConfigurer
	rootCmd *cobra.Command

	configPath string
	verbose    bool
	jsonLogs   bool
}

// Application represents the application logic interface.
type Application interface {
	Configure(ctx context.Context, stdout, stderr io.Writer, opts app.RunOptions) error
	Args(ctx context.Context, opts app.RunOptions) ([]string, error)
	Clean(ctx context.Context, opts app.RunOptions) error
}

// LogConfigurer adjusts log output according to the persistent flags.
type LogConfigurer interface {
	SetVerbose(enable bool)
	SetJSON(enable bool)
}

// New creates a new CLI instance with the given app.
// logs may be nil, in which case the logging flags have no effect.
func New(a Application, logs LogConfigurer) *CLI {
	c := &CLI{
		app:  a,
		logs: logs,
	}

	rootCmd := &cobra.Command{
		Use:   "mbedconf",
		Short: "Configure the mbed-cmake build for the target board",
		Long: "Runs the mbed-cmake target configurator with the project's fixed arguments\n" +
			"and prints its output unchanged. Without a subcommand it runs configure.",
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		Version:           build.Version,
		PersistentPreRun:  c.applyLogFlags,
		RunE:              c.runConfigure(false),
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
	}

	// Persistent flags come first so the default version flag does not claim -v.
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&c.configPath, "config", "c", "", "Path to the profile file (default mbedconf.yaml if present)")
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "Enable debug logging")
	flags.BoolVar(&c.jsonLogs, "json-logs", false, "Write logs as JSON")

	rootCmd.SetVersionTemplate(versionLine())
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c.rootCmd = rootCmd

	rootCmd.AddCommand(c.newConfigureCmd())
	rootCmd.AddCommand(c.newArgsCmd())
	rootCmd.AddCommand(c.newCleanCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

func (c *CLI) applyLogFlags(_ *cobra.Command, _ []string) {
	if c.logs == nil {
		return
	}
	c.logs.SetVerbose(c.verbose)
	c.logs.SetJSON(c.jsonLogs)
}

func (c *CLI) runOptions() app.RunOptions {
	return app.RunOptions{ConfigPath: c.configPath}
}
