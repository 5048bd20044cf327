package shell_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/mbedconf/internal/adapters/shell"
	"go.trai.ch/mbedconf/internal/core/domain"
	"go.trai.ch/mbedconf/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

// writeStub creates an executable shell script in dir and returns its path.
func writeStub(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	//nolint:gosec // Test requires executable file
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0o700))
	return path
}

func newExecutor(t *testing.T) *shell.Executor {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug(gomock.Any()).AnyTimes()
	return shell.NewExecutor(mockLogger)
}

func TestExecutor_Execute_CapturesStdoutExactly(t *testing.T) {
	dir := t.TempDir()
	runner := writeStub(t, dir, "python3", `printf 'generated cmake\n-- target NUCLEO_H743ZI2\nno trailing newline'`)

	inv := domain.NewInvocation(domain.DefaultProfile(), runner)
	inv.WorkingDir = dir

	out, err := newExecutor(t).Execute(context.Background(), inv, nil)
	require.NoError(t, err)
	assert.Equal(t, []byte("generated cmake\n-- target NUCLEO_H743ZI2\nno trailing newline"), out)
}

func TestExecutor_Execute_PassesArgumentsInOrder(t *testing.T) {
	dir := t.TempDir()
	record := filepath.Join(dir, "argv.txt")
	runner := writeStub(t, dir, "python3", `for a in "$@"; do printf '%s\n' "$a" >> "$RECORD_FILE"; done`)

	p := domain.DefaultProfile()
	p.WorkingDir = dir
	p.Environment = map[string]string{"RECORD_FILE": record}

	_, err := newExecutor(t).Execute(context.Background(), domain.NewInvocation(p, runner), nil)
	require.NoError(t, err)

	data, err := os.ReadFile(record) //nolint:gosec // test file
	require.NoError(t, err)
	assert.Equal(t, []string{
		"mbed-cmake/configure_for_target.py",
		"-a", "mbed_app.json",
		"-x", ".",
		"-i", ".mbedignore",
		"NUCLEO_H743ZI2",
	}, strings.Split(strings.TrimSuffix(string(data), "\n"), "\n"))
}

func TestExecutor_Execute_NonZeroExit(t *testing.T) {
	dir := t.TempDir()
	runner := writeStub(t, dir, "python3", "echo partial output\necho 'KeyError: target' >&2\nexit 3\n")

	inv := domain.NewInvocation(domain.DefaultProfile(), runner)
	inv.WorkingDir = dir

	var relayed bytes.Buffer
	out, err := newExecutor(t).Execute(context.Background(), inv, &relayed)
	require.Error(t, err)
	assert.Nil(t, out, "no output may be returned for a failed run")

	assert.ErrorIs(t, err, domain.ErrConfiguratorFailed)

	var cfgErr *domain.ConfiguratorError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, 3, cfgErr.ExitCode)
	assert.Equal(t, "KeyError: target\n", string(cfgErr.Stderr))
	assert.Equal(t, "KeyError: target\n", relayed.String())
}

func TestExecutor_Execute_StartFailure(t *testing.T) {
	inv := domain.NewInvocation(domain.DefaultProfile(), filepath.Join(t.TempDir(), "missing-python"))

	_, err := newExecutor(t).Execute(context.Background(), inv, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConfiguratorStartFailed)
	assert.NotErrorIs(t, err, domain.ErrConfiguratorFailed)
}

func TestExecutor_Execute_WithoutRunner(t *testing.T) {
	dir := t.TempDir()
	configurator := writeStub(t, dir, "configure_for_target.py", `printf '%s' "$*"`)

	p := domain.DefaultProfile()
	p.Configurator = configurator

	out, err := newExecutor(t).Execute(context.Background(), domain.NewInvocation(p, ""), nil)
	require.NoError(t, err)
	assert.Equal(t, "-a mbed_app.json -x . -i .mbedignore NUCLEO_H743ZI2", string(out))
}

func TestExecutor_Execute_WorkingDirAndEnvironment(t *testing.T) {
	dir := t.TempDir()
	runner := writeStub(t, dir, "python3", `printf '%s|%s' "$(pwd)" "$MBED_TOOLCHAIN"`)

	p := domain.DefaultProfile()
	p.WorkingDir = dir
	p.Environment = map[string]string{"MBED_TOOLCHAIN": "GCC_ARM"}

	out, err := newExecutor(t).Execute(context.Background(), domain.NewInvocation(p, runner), nil)
	require.NoError(t, err)

	wantDir, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	gotDir, env, ok := strings.Cut(string(out), "|")
	require.True(t, ok)
	gotDir, err = filepath.EvalSymlinks(gotDir)
	require.NoError(t, err)

	assert.Equal(t, wantDir, gotDir)
	assert.Equal(t, "GCC_ARM", env)
}

func TestExecutor_Execute_Repeatable(t *testing.T) {
	dir := t.TempDir()
	runner := writeStub(t, dir, "python3", `echo "configured $8"`)

	inv := domain.NewInvocation(domain.DefaultProfile(), runner)
	inv.WorkingDir = dir
	executor := newExecutor(t)

	first, err := executor.Execute(context.Background(), inv, nil)
	require.NoError(t, err)
	second, err := executor.Execute(context.Background(), inv, nil)
	require.NoError(t, err)

	assert.Equal(t, "configured NUCLEO_H743ZI2\n", string(first))
	assert.Equal(t, first, second)
}

func TestExecutor_Execute_Cancelled(t *testing.T) {
	dir := t.TempDir()
	runner := writeStub(t, dir, "python3", "sleep 5\n")

	inv := domain.NewInvocation(domain.DefaultProfile(), runner)
	inv.WorkingDir = dir

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newExecutor(t).Execute(ctx, inv, nil)
	require.Error(t, err)
}

func TestExecutor_Execute_CancelledWhileRunning(t *testing.T) {
	dir := t.TempDir()
	runner := writeStub(t, dir, "python3", "sleep 5\n")

	inv := domain.NewInvocation(domain.DefaultProfile(), runner)
	inv.WorkingDir = dir

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	time.AfterFunc(200*time.Millisecond, cancel)

	start := time.Now()
	_, err := newExecutor(t).Execute(ctx, inv, nil)
	elapsed := time.Since(start)

	require.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, domain.ErrConfiguratorFailed)
	assert.Contains(t, err.Error(), "configurator interrupted")
	assert.Less(t, elapsed, 4*time.Second)
}
