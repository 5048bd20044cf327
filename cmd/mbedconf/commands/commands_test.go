package commands_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/mbedconf/cmd/mbedconf/commands"
	"go.trai.ch/mbedconf/internal/app"
	"go.trai.ch/mbedconf/internal/build"
)

type mockApp struct {
	configureFunc func(ctx context.Context, stdout, stderr io.Writer, opts app.RunOptions) error
	argsFunc      func(ctx context.Context, opts app.RunOptions) ([]string, error)
	cleanFunc     func(ctx context.Context, opts app.RunOptions) error
}

func (m *mockApp) Configure(ctx context.Context, stdout, stderr io.Writer, opts app.RunOptions) error {
	if m.configureFunc != nil {
		return m.configureFunc(ctx, stdout, stderr, opts)
	}
	return nil
}

func (m *mockApp) Args(ctx context.Context, opts app.RunOptions) ([]string, error) {
	if m.argsFunc != nil {
		return m.argsFunc(ctx, opts)
	}
	return nil, nil
}

func (m *mockApp) Clean(ctx context.Context, opts app.RunOptions) error {
	if m.cleanFunc != nil {
		return m.cleanFunc(ctx, opts)
	}
	return nil
}

type recordingLogs struct {
	verbose bool
	json    bool
	calls   int
}

func (r *recordingLogs) SetVerbose(enable bool) {
	r.verbose = enable
	r.calls++
}

func (r *recordingLogs) SetJSON(enable bool) {
	r.json = enable
}

func TestCommands_Root(t *testing.T) {
	t.Run("runs configure without arguments", func(t *testing.T) {
		var captured app.RunOptions
		called := false

		mock := &mockApp{
			configureFunc: func(_ context.Context, stdout, _ io.Writer, opts app.RunOptions) error {
				captured = opts
				called = true
				_, err := stdout.Write([]byte("configured"))
				return err
			},
		}

		cli := commands.New(mock, nil)
		out := new(bytes.Buffer)
		cli.SetOutput(out, new(bytes.Buffer))
		cli.SetArgs([]string{})

		require.NoError(t, cli.Execute(context.Background()))
		assert.True(t, called)
		assert.False(t, captured.Reuse)
		assert.Empty(t, captured.ConfigPath)
		assert.Equal(t, "configured", out.String())
	})

	t.Run("rejects positional arguments", func(t *testing.T) {
		mock := &mockApp{
			configureFunc: func(_ context.Context, _, _ io.Writer, _ app.RunOptions) error {
				panic("should not be called")
			},
		}

		cli := commands.New(mock, nil)
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
		cli.SetArgs([]string{"NUCLEO_F767ZI"})

		require.Error(t, cli.Execute(context.Background()))
	})

	t.Run("applies persistent flags", func(t *testing.T) {
		var captured app.RunOptions
		mock := &mockApp{
			configureFunc: func(_ context.Context, _, _ io.Writer, opts app.RunOptions) error {
				captured = opts
				return nil
			},
		}
		logs := &recordingLogs{}

		cli := commands.New(mock, logs)
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
		cli.SetArgs([]string{"-c", "board.yaml", "-v", "--json-logs"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, "board.yaml", captured.ConfigPath)
		assert.True(t, logs.verbose)
		assert.True(t, logs.json)
		assert.Equal(t, 1, logs.calls)
	})
}

func TestCommands_Configure(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var captured app.RunOptions
		mock := &mockApp{
			configureFunc: func(_ context.Context, _, _ io.Writer, opts app.RunOptions) error {
				captured = opts
				return nil
			},
		}

		cli := commands.New(mock, nil)
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
		cli.SetArgs([]string{"configure", "--reuse", "--config", "board.yaml"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.True(t, captured.Reuse)
		assert.Equal(t, "board.yaml", captured.ConfigPath)
	})

	t.Run("returns error on configure failure", func(t *testing.T) {
		mock := &mockApp{
			configureFunc: func(_ context.Context, _, _ io.Writer, _ app.RunOptions) error {
				return errors.New("simulated error")
			},
		}

		cli := commands.New(mock, nil)
		cli.SetArgs([]string{"configure"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})
}

func TestCommands_Args(t *testing.T) {
	mock := &mockApp{
		argsFunc: func(_ context.Context, _ app.RunOptions) ([]string, error) {
			return []string{"/usr/bin/python3", "mbed-cmake/configure_for_target.py", "-a", "mbed_app.json"}, nil
		},
	}

	cli := commands.New(mock, nil)
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, new(bytes.Buffer))
	cli.SetArgs([]string{"args"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, "/usr/bin/python3\nmbed-cmake/configure_for_target.py\n-a\nmbed_app.json\n", buf.String())
}

func TestCommands_Clean(t *testing.T) {
	called := false
	mock := &mockApp{
		cleanFunc: func(_ context.Context, _ app.RunOptions) error {
			called = true
			return nil
		},
	}

	cli := commands.New(mock, nil)
	cli.SetArgs([]string{"clean"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.True(t, called)
}

func TestCommands_Version(t *testing.T) {
	cli := commands.New(&mockApp{}, nil)

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, buf.String(), "mbedconf version "+build.Version)
}

func TestCommands_VersionFlagMatchesSubcommand(t *testing.T) {
	capture := func(args ...string) string {
		cli := commands.New(&mockApp{}, nil)
		buf := new(bytes.Buffer)
		cli.SetOutput(buf, new(bytes.Buffer))
		cli.SetArgs(args)
		require.NoError(t, cli.Execute(context.Background()))
		return buf.String()
	}

	want := "mbedconf version " + build.Version + " (commit: " + build.Commit + ", date: " + build.Date + ")\n"
	assert.Equal(t, want, capture("version"))
	assert.Equal(t, want, capture("--version"))
}
