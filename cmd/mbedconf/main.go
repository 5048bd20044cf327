// Package main is the entry point for mbedconf.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/mbedconf/cmd/mbedconf/commands"
	"go.trai.ch/mbedconf/internal/app"
	"go.trai.ch/mbedconf/internal/core/domain"
	_ "go.trai.ch/mbedconf/internal/wiring"
	"go.trai.ch/zerr"
)

// ComponentProvider is a function that returns the application components.
type ComponentProvider func(context.Context) (*app.Components, func(), error)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr, provideComponents))
}

// provideComponents builds the component graph. The returned cleanup flushes
// the tracer and reports a failed flush on the component logger.
func provideComponents(ctx context.Context) (*app.Components, func(), error) {
	c, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		return nil, nil, err
	}
	return c, func() {
		if err := c.Shutdown(ctx); err != nil {
			c.Logger.Warn("flush traces: " + err.Error())
		}
	}, nil
}

func run(
	ctx context.Context,
	args []string,
	stdout, stderr io.Writer,
	provider ComponentProvider,
) int {
	// 0. Context with signal handling
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// 1. Initialize application components
	components, cleanup, err := provider(ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return 1
	}
	defer cleanup()

	// 2. Interface - CLI
	logs, _ := components.Logger.(commands.LogConfigurer)
	cli := commands.New(components.App, logs)
	cli.SetArgs(args)
	cli.SetOutput(stdout, stderr)

	// 3. Execution
	if err := cli.Execute(ctx); err != nil {
		// The configurator already wrote its diagnostics to stderr.
		var cfgErr *domain.ConfiguratorError
		if errors.As(err, &cfgErr) {
			components.Logger.Error(zerr.With(domain.ErrConfiguratorFailed, "exit_code", cfgErr.ExitCode))
			return 1
		}
		components.Logger.Error(err)
		return 1
	}
	return 0
}
