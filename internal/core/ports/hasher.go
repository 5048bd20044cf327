package ports

import (
	"context"

	"go.trai.ch/mbedconf/internal/core/domain"
)

// Hasher defines the interface for fingerprinting configurator inputs.
//
//go:generate mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// Fingerprint returns a stable hash over the invocation arguments and the
	// contents of the files the configurator reads.
	Fingerprint(ctx context.Context, inv *domain.Invocation) (string, error)
}
