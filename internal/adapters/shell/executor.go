// Package shell provides the process executor and runner resolution for the configurator.
package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"slices"
	"strings"
	"time"

	"go.trai.ch/mbedconf/internal/core/domain"
	"go.trai.ch/mbedconf/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	// maxStderrTail bounds how much of the configurator's stderr is kept for error reporting.
	maxStderrTail = 64 * 1024

	// waitDelay bounds how long Execute waits for the output pipes after the
	// configurator was killed, in case a grandchild still holds them open.
	waitDelay = 2 * time.Second
)

var _ ports.Executor = (*Executor)(nil)

// Executor implements ports.Executor using os/exec.
type Executor struct {
	logger ports.Logger
}

// NewExecutor creates a new Executor.
func NewExecutor(logger ports.Logger) *Executor {
	return &Executor{
		logger: logger,
	}
}

// Execute runs the invocation and returns its captured standard output.
// The environment is the process environment with the invocation's
// variables applied on top.
func (e *Executor) Execute(ctx context.Context, inv *domain.Invocation, stderr io.Writer) ([]byte, error) {
	argv := inv.Argv()
	name := argv[0]

	cmd := exec.CommandContext(ctx, name, argv[1:]...) //nolint:gosec // argv comes from the profile

	if inv.WorkingDir != "" {
		cmd.Dir = inv.WorkingDir
	}
	cmd.Env = resolveEnvironment(os.Environ(), inv.Environment)
	cmd.WaitDelay = waitDelay

	if stderr == nil {
		stderr = io.Discard
	}

	var stdout bytes.Buffer
	tail := &tailBuffer{limit: maxStderrTail}
	cmd.Stdout = &stdout
	cmd.Stderr = io.MultiWriter(stderr, tail)

	e.logger.Debug("exec " + strings.Join(argv, " "))

	if err := cmd.Run(); err != nil {
		// A cancelled context kills the child, which then also reports an exit status.
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, zerr.Wrap(ctxErr, "configurator interrupted")
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, &domain.ConfiguratorError{
				ExitCode: exitErr.ExitCode(),
				Stderr:   tail.Bytes(),
				Err:      err,
			}
		}
		return nil, errors.Join(
			domain.ErrConfiguratorStartFailed,
			zerr.With(err, "path", name),
		)
	}

	return stdout.Bytes(), nil
}

// tailBuffer keeps the last limit bytes written to it.
type tailBuffer struct {
	buf   []byte
	limit int
}

func (t *tailBuffer) Write(p []byte) (int, error) {
	t.buf = append(t.buf, p...)
	if over := len(t.buf) - t.limit; over > 0 {
		t.buf = t.buf[over:]
	}
	return len(p), nil
}

func (t *tailBuffer) Bytes() []byte {
	return t.buf
}

// resolveEnvironment applies the invocation's variables over the system environment.
// The result is sorted so the child sees a stable environment.
func resolveEnvironment(sysEnv []string, overrides map[string]string) []string {
	envMap := make(map[string]string, len(sysEnv)+len(overrides))
	for _, entry := range sysEnv {
		k, v, ok := strings.Cut(entry, "=")
		if ok {
			envMap[k] = v
		}
	}

	for k, v := range overrides {
		envMap[k] = v
	}

	result := make([]string, 0, len(envMap))
	for k, v := range envMap {
		result = append(result, k+"="+v)
	}
	slices.Sort(result)
	return result
}
