// Package app implements the application layer for mbedconf.
package app

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/mbedconf/internal/core/domain"
	"go.trai.ch/mbedconf/internal/core/ports"
	"go.trai.ch/zerr"
)

// SpanConfigure names the span that covers one configure run.
const SpanConfigure = "configure"

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	resolver     ports.RunnerResolver
	executor     ports.Executor
	hasher       ports.Hasher
	stores       ports.RunStoreFactory
	tracer       ports.Tracer
	logger       ports.Logger
	now          func() time.Time
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	resolver ports.RunnerResolver,
	executor ports.Executor,
	hasher ports.Hasher,
	stores ports.RunStoreFactory,
	tracer ports.Tracer,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		resolver:     resolver,
		executor:     executor,
		hasher:       hasher,
		stores:       stores,
		tracer:       tracer,
		logger:       log,
		now:          time.Now,
	}
}

// WithClock replaces the clock used to timestamp run records.
// This is primarily used for testing.
func (a *App) WithClock(now func() time.Time) *App {
	a.now = now
	return a
}

// RunOptions configuration for the Configure, Args and Clean methods.
type RunOptions struct {
	// ConfigPath names the profile file. Empty means mbedconf.yaml, which may be absent.
	ConfigPath string
	// Reuse prints the stored output instead of running the configurator when the inputs are unchanged.
	Reuse bool
}

// Configure runs the configurator once and writes its standard output to stdout unchanged.
// The configurator's standard error is relayed to stderr while it runs.
//
//nolint:cyclop // orchestration function
func (a *App) Configure(ctx context.Context, stdout, stderr io.Writer, opts RunOptions) (err error) {
	// 1. Resolve the invocation
	inv, err := a.prepare(opts)
	if err != nil {
		return err
	}

	// 2. Start the span
	ctx, span := a.tracer.Start(ctx, SpanConfigure)
	defer func() {
		if err != nil {
			span.RecordError(err)
		}
		span.End()
	}()
	span.SetAttribute("target", inv.Target)
	span.SetAttribute("configurator", inv.Configurator)
	span.SetAttribute("reused", false)

	// 3. Fingerprint the inputs
	fingerprint, err := a.hasher.Fingerprint(ctx, inv)
	if err != nil {
		if opts.Reuse {
			return err
		}
		a.logger.Debug(fmt.Sprintf("skipping input fingerprint: %v", err))
		err = nil
	}
	if fingerprint != "" {
		span.SetAttribute("fingerprint", fingerprint)
	}

	// 4. Reuse a stored run
	var store ports.RunStore
	if opts.Reuse {
		store, err = a.stores.Open(workingDirOf(inv))
		if err != nil {
			return err
		}

		record, getErr := store.Get(inv.Target)
		if getErr != nil {
			return getErr
		}
		if record != nil && record.Fingerprint == fingerprint {
			a.logger.Debug(fmt.Sprintf("inputs unchanged (%s), reusing output from %s",
				fingerprint, record.CompletedAt.Format(time.RFC3339)))
			span.SetAttribute("reused", true)
			return writeOutput(stdout, record.Output)
		}
	}

	// 5. Run the configurator
	output, err := a.executor.Execute(ctx, inv, stderr)
	if err != nil {
		var cfgErr *domain.ConfiguratorError
		if errors.As(err, &cfgErr) {
			span.SetAttribute("exit_code", cfgErr.ExitCode)
		}
		return err
	}
	span.SetAttribute("exit_code", 0)

	if err = writeOutput(stdout, output); err != nil {
		return err
	}

	// 6. Record the successful run
	if store != nil {
		record := domain.RunRecord{
			Target:      inv.Target,
			Fingerprint: fingerprint,
			Output:      bytes.Clone(output),
			CompletedAt: a.now().UTC(),
		}
		if putErr := store.Put(record); putErr != nil {
			a.logger.Warn(fmt.Sprintf("failed to record configurator run: %v", putErr))
		}
	}

	return nil
}

// Args returns the complete argument vector Configure would run, without running it.
func (a *App) Args(_ context.Context, opts RunOptions) ([]string, error) {
	inv, err := a.prepare(opts)
	if err != nil {
		return nil, err
	}
	return inv.Argv(), nil
}

// Clean removes the stored configurator runs.
func (a *App) Clean(_ context.Context, opts RunOptions) error {
	profile, err := a.loadProfile(opts)
	if err != nil {
		return err
	}

	dir := filepath.Join(profile.WorkingDir, domain.StateDirName)
	a.logger.Info(fmt.Sprintf("removing %s...", dir))
	if err := os.RemoveAll(dir); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to remove run store"), "path", dir)
	}
	a.logger.Info(fmt.Sprintf("removed %s", dir))
	return nil
}

func (a *App) loadProfile(opts RunOptions) (*domain.Profile, error) {
	path, explicit := opts.ConfigPath, opts.ConfigPath != ""
	if !explicit {
		path = domain.ConfigFileName
	}

	profile, err := a.configLoader.Load(path, explicit)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	return profile, nil
}

func (a *App) prepare(opts RunOptions) (*domain.Invocation, error) {
	profile, err := a.loadProfile(opts)
	if err != nil {
		return nil, err
	}

	runnerPath, err := a.resolver.Resolve(profile.Runner)
	if err != nil {
		return nil, err
	}

	return domain.NewInvocation(profile, runnerPath), nil
}

func writeOutput(w io.Writer, output []byte) error {
	if len(output) == 0 {
		return nil
	}
	if _, err := w.Write(output); err != nil {
		return zerr.Wrap(err, "failed to write configurator output")
	}
	return nil
}

func workingDirOf(inv *domain.Invocation) string {
	if inv.WorkingDir == "" {
		return "."
	}
	return inv.WorkingDir
}
