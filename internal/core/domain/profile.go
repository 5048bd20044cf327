package domain

import "go.trai.ch/zerr"

const (
	// DefaultRunner is the interpreter used to execute the configurator script.
	DefaultRunner = "python3"

	// DefaultConfigurator is the configurator script, relative to the working directory.
	DefaultConfigurator = "mbed-cmake/configure_for_target.py"

	// DefaultAppConfig is the mbed application configuration file.
	DefaultAppConfig = "mbed_app.json"

	// DefaultSourceDir is the source directory handed to the configurator.
	DefaultSourceDir = "."

	// DefaultIgnoreFile is the mbed ignore-list file.
	DefaultIgnoreFile = ".mbedignore"

	// DefaultTarget is the board the configurator generates for.
	DefaultTarget = "NUCLEO_H743ZI2"
)

// Profile is the resolved set of configurator inputs.
type Profile struct {
	// Runner is the interpreter name or path. Empty means the configurator is executed directly.
	Runner       string
	Configurator string
	AppConfig    string
	SourceDir    string
	IgnoreFile   string
	Target       string
	// WorkingDir is the directory the configurator runs in. Empty means the current directory.
	WorkingDir  string
	Environment map[string]string
}

// DefaultProfile returns the profile that reproduces the stock invocation.
func DefaultProfile() *Profile {
	return &Profile{
		Runner:       DefaultRunner,
		Configurator: DefaultConfigurator,
		AppConfig:    DefaultAppConfig,
		SourceDir:    DefaultSourceDir,
		IgnoreFile:   DefaultIgnoreFile,
		Target:       DefaultTarget,
	}
}

// Validate checks that the fields the configurator cannot run without are set.
func (p *Profile) Validate() error {
	switch {
	case p.Configurator == "":
		return zerr.With(ErrInvalidProfile, "field", "configurator")
	case p.Target == "":
		return zerr.With(ErrInvalidProfile, "field", "target")
	case p.AppConfig == "":
		return zerr.With(ErrInvalidProfile, "field", "appConfig")
	case p.SourceDir == "":
		return zerr.With(ErrInvalidProfile, "field", "sourceDir")
	case p.IgnoreFile == "":
		return zerr.With(ErrInvalidProfile, "field", "ignoreFile")
	}
	return nil
}

// Args returns the configurator arguments, excluding the configurator path itself.
func (p *Profile) Args() []string {
	return []string{
		"-a", p.AppConfig,
		"-x", p.SourceDir,
		"-i", p.IgnoreFile,
		p.Target,
	}
}
