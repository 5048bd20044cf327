package ports

// RunnerResolver defines the interface for locating the configurator's interpreter.
//
//go:generate mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type RunnerResolver interface {
	// Resolve returns the executable path for runner.
	// An empty runner resolves to an empty path.
	Resolve(runner string) (string, error)
}
