package domain

import "path/filepath"

const (
	// ConfigFileName is the name of the optional profile file.
	ConfigFileName = "mbedconf.yaml"

	// StateDirName is the name of the directory holding local tool state.
	StateDirName = ".mbedconf"

	// StateFileName is the name of the run store file.
	StateFileName = "state.json"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultStatePath returns the run store path relative to the working directory.
func DefaultStatePath() string {
	return filepath.Join(StateDirName, StateFileName)
}
