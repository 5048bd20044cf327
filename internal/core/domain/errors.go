package domain

import "go.trai.ch/zerr"

var (
	// ErrConfiguratorFailed is returned when the configurator exits with a non-zero status.
	ErrConfiguratorFailed = zerr.New("configurator failed")

	// ErrConfiguratorStartFailed is returned when the configurator process cannot be started.
	ErrConfiguratorStartFailed = zerr.New("failed to start configurator")

	// ErrRunnerNotFound is returned when the configured runner cannot be resolved to an executable.
	ErrRunnerNotFound = zerr.New("runner not found")

	// ErrConfigNotFound is returned when an explicitly requested config file does not exist.
	ErrConfigNotFound = zerr.New("config file not found")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidProfile is returned when a profile is missing a required field.
	ErrInvalidProfile = zerr.New("invalid profile")

	// ErrFingerprintFailed is returned when the input fingerprint cannot be computed.
	ErrFingerprintFailed = zerr.New("failed to compute input fingerprint")

	// ErrStoreCreateFailed is returned when the run store directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create run store directory")

	// ErrStoreReadFailed is returned when the run store cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read run store")

	// ErrStoreUnmarshalFailed is returned when the run store cannot be unmarshaled.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal run store")

	// ErrStoreMarshalFailed is returned when the run store cannot be marshaled.
	ErrStoreMarshalFailed = zerr.New("failed to marshal run store")

	// ErrStoreWriteFailed is returned when the run store cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write run store")
)
