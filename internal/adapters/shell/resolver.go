package shell

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"go.trai.ch/mbedconf/internal/core/domain"
	"go.trai.ch/mbedconf/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.RunnerResolver = (*Resolver)(nil)

// Resolver implements ports.RunnerResolver by searching PATH.
type Resolver struct {
	env func() []string
}

// NewResolver creates a Resolver that searches the process environment's PATH.
func NewResolver() *Resolver {
	return &Resolver{env: os.Environ}
}

// NewResolverWithEnv creates a Resolver that searches the PATH found in env.
func NewResolverWithEnv(env []string) *Resolver {
	return &Resolver{env: func() []string { return env }}
}

// Resolve returns the executable path for runner.
// Runners containing a path separator are made absolute against the current
// directory, so they stay valid when the configurator runs in another working directory.
func (r *Resolver) Resolve(runner string) (string, error) {
	if runner == "" {
		return "", nil
	}

	if strings.ContainsRune(runner, filepath.Separator) || strings.ContainsRune(runner, '/') {
		abs, err := filepath.Abs(runner)
		if err != nil {
			return "", runnerNotFound(err, runner)
		}
		if err := findExecutable(abs); err != nil {
			return "", runnerNotFound(err, runner)
		}
		return abs, nil
	}

	path, err := lookPath(runner, r.env())
	if err != nil {
		return "", runnerNotFound(err, runner)
	}
	return path, nil
}

func runnerNotFound(err error, runner string) error {
	return errors.Join(domain.ErrRunnerNotFound, zerr.With(err, "runner", runner))
}

// lookPath searches for an executable in the directories named by the PATH environment variable.
func lookPath(file string, env []string) (string, error) {
	var path string
	for _, e := range env {
		if strings.HasPrefix(e, "PATH=") {
			path = strings.TrimPrefix(e, "PATH=")
			break
		}
	}

	if path == "" {
		return "", exec.ErrNotFound
	}

	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		candidate := filepath.Join(dir, file)
		if err := findExecutable(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", exec.ErrNotFound
}

func findExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0o111 != 0 {
		return nil
	}
	return os.ErrPermission
}
