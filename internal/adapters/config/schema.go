package config

// SchemaVersion is the profile file version this loader understands.
const SchemaVersion = "1"

// Profilefile represents the structure of the mbedconf.yaml configuration file.
type Profilefile struct {
	Version string `yaml:"version"`
	// Runner is a pointer so that an explicit empty value can disable the runner.
	Runner       *string           `yaml:"runner"`
	Configurator string            `yaml:"configurator"`
	AppConfig    string            `yaml:"appConfig"`
	SourceDir    string            `yaml:"sourceDir"`
	IgnoreFile   string            `yaml:"ignoreFile"`
	Target       string            `yaml:"target"`
	WorkingDir   string            `yaml:"workingDir"`
	Environment  map[string]string `yaml:"environment"`
}
