package shell_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/mbedconf/internal/adapters/shell"
	"go.trai.ch/mbedconf/internal/core/domain"
)

func TestResolver_Resolve_SearchesPath(t *testing.T) {
	empty := t.TempDir()
	bin := t.TempDir()
	want := writeStub(t, bin, "python3", "exit 0\n")

	r := shell.NewResolverWithEnv([]string{"PATH=" + empty + string(os.PathListSeparator) + bin})

	got, err := r.Resolve("python3")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestResolver_Resolve_NotFound(t *testing.T) {
	r := shell.NewResolverWithEnv([]string{"PATH=" + t.TempDir()})

	_, err := r.Resolve("python3")
	require.ErrorIs(t, err, domain.ErrRunnerNotFound)
	assert.Contains(t, err.Error(), "runner not found")
}

func TestResolver_Resolve_ExplicitPath(t *testing.T) {
	dir := t.TempDir()
	runner := writeStub(t, dir, "python3.11", "exit 0\n")

	got, err := shell.NewResolverWithEnv(nil).Resolve(runner)
	require.NoError(t, err)
	assert.Equal(t, runner, got)
}

func TestResolver_Resolve_NotExecutable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "python3")
	require.NoError(t, os.WriteFile(path, []byte("not a program"), 0o600))

	_, err := shell.NewResolverWithEnv(nil).Resolve(path)
	require.ErrorIs(t, err, domain.ErrRunnerNotFound)
	assert.Contains(t, err.Error(), "runner not found")
}

func TestResolver_Resolve_EmptyRunner(t *testing.T) {
	got, err := shell.NewResolver().Resolve("")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestResolver_Resolve_RelativePathIsAbsolute(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, "tools"), 0o750))
	require.NoError(t, os.Mkdir(filepath.Join(root, "fw"), 0o750))
	writeStub(t, filepath.Join(root, "tools"), "py", "printf 'configured\\n'\n")
	t.Chdir(root)

	got, err := shell.NewResolverWithEnv(nil).Resolve("./tools/py")
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(got))

	want, err := filepath.EvalSymlinks(filepath.Join(root, "tools", "py"))
	require.NoError(t, err)
	gotReal, err := filepath.EvalSymlinks(got)
	require.NoError(t, err)
	assert.Equal(t, want, gotReal)

	// The configurator runs from another directory than the one the runner was resolved in.
	inv := domain.NewInvocation(domain.DefaultProfile(), got)
	inv.WorkingDir = filepath.Join(root, "fw")

	out, err := newExecutor(t).Execute(context.Background(), inv, nil)
	require.NoError(t, err)
	assert.Equal(t, "configured\n", string(out))
}
