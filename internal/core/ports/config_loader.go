package ports

import "go.trai.ch/mbedconf/internal/core/domain"

// ConfigLoader defines the interface for loading the configurator profile.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the profile file at path and applies it over the default profile.
	// A missing file yields the default profile unless explicit is set.
	Load(path string, explicit bool) (*domain.Profile, error)
}
