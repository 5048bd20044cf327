package domain

import (
	"fmt"
	"strings"
)

// ConfiguratorError describes a configurator run that exited with a non-zero status.
type ConfiguratorError struct {
	ExitCode int
	// Stderr holds the tail of the configurator's standard error.
	Stderr []byte
	Err    error
}

// Error implements the error interface.
func (e *ConfiguratorError) Error() string {
	msg := fmt.Sprintf("configurator exited with status %d", e.ExitCode)
	if tail := lastLine(e.Stderr); tail != "" {
		msg += ": " + tail
	}
	return msg
}

// Unwrap exposes ErrConfiguratorFailed and the underlying process error to errors.Is and errors.As.
func (e *ConfiguratorError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrConfiguratorFailed}
	}
	return []error{ErrConfiguratorFailed, e.Err}
}

func lastLine(b []byte) string {
	s := strings.TrimRight(string(b), "\r\n\t ")
	if i := strings.LastIndexByte(s, '\n'); i >= 0 {
		s = s[i+1:]
	}
	return strings.TrimSpace(s)
}
