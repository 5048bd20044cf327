// Package config provides the profile loader for mbedconf.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/mbedconf/internal/core/domain"
	"go.trai.ch/mbedconf/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads the profile file at path and applies it over the default profile.
func (l *Loader) Load(path string, explicit bool) (*domain.Profile, error) {
	profile := domain.DefaultProfile()

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			if explicit {
				return nil, zerr.With(domain.ErrConfigNotFound, "path", path)
			}
			return profile, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	var file Profilefile
	if err := readAndUnmarshalYAML(path, &file); err != nil {
		return nil, zerr.With(err, "path", path)
	}

	if file.Version != "" && file.Version != SchemaVersion {
		l.Logger.Warn(fmt.Sprintf("%s declares version %q, expected %q", path, file.Version, SchemaVersion))
	}

	applyProfilefile(profile, &file, filepath.Dir(path))

	if err := profile.Validate(); err != nil {
		return nil, zerr.With(err, "path", path)
	}

	return profile, nil
}

// applyProfilefile overlays the set fields of file onto profile.
func applyProfilefile(profile *domain.Profile, file *Profilefile, configDir string) {
	if file.Runner != nil {
		profile.Runner = *file.Runner
	}
	setIfNotEmpty(&profile.Configurator, file.Configurator)
	setIfNotEmpty(&profile.AppConfig, file.AppConfig)
	setIfNotEmpty(&profile.SourceDir, file.SourceDir)
	setIfNotEmpty(&profile.IgnoreFile, file.IgnoreFile)
	setIfNotEmpty(&profile.Target, file.Target)

	if file.WorkingDir != "" {
		profile.WorkingDir = resolveWorkingDir(configDir, file.WorkingDir)
	}

	if len(file.Environment) > 0 {
		profile.Environment = make(map[string]string, len(file.Environment))
		for k, v := range file.Environment {
			profile.Environment[k] = v
		}
	}
}

func setIfNotEmpty(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}

// resolveWorkingDir resolves a configured working directory relative to the config file.
func resolveWorkingDir(configDir, configured string) string {
	if filepath.IsAbs(configured) {
		return filepath.Clean(configured)
	}
	return filepath.Clean(filepath.Join(configDir, configured))
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into the target struct.
func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is provided by the user
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if parseErr := yaml.Unmarshal(configFile, target); parseErr != nil {
		return zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
	}

	return nil
}
