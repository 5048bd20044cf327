// Package ports defines the core interfaces for the application.
package ports

import (
	"context"
	"io"

	"go.trai.ch/mbedconf/internal/core/domain"
)

// Executor defines the interface for running the configurator.
//
//go:generate mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute runs the invocation as a single child process and waits for it to exit.
	//
	// The child's standard error is relayed to stderr while it runs.
	// It returns the captured standard output, or an error if the child
	// could not be started or exited with a non-zero status.
	Execute(ctx context.Context, inv *domain.Invocation, stderr io.Writer) ([]byte, error)
}
