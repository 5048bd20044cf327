package domain

import "time"

// Invocation is a fully resolved configurator call.
type Invocation struct {
	// RunnerPath is the resolved interpreter executable. Empty means Configurator is executed directly.
	RunnerPath   string
	Configurator string
	Args         []string
	Target       string
	WorkingDir   string
	Environment  map[string]string
}

// NewInvocation builds the invocation for the profile using the resolved runner path.
func NewInvocation(p *Profile, runnerPath string) *Invocation {
	env := make(map[string]string, len(p.Environment))
	for k, v := range p.Environment {
		env[k] = v
	}
	return &Invocation{
		RunnerPath:   runnerPath,
		Configurator: p.Configurator,
		Args:         p.Args(),
		Target:       p.Target,
		WorkingDir:   p.WorkingDir,
		Environment:  env,
	}
}

// ConfiguratorArgs returns the arguments the configurator sees: its own path followed by the profile arguments.
func (i *Invocation) ConfiguratorArgs() []string {
	args := make([]string, 0, len(i.Args)+1)
	args = append(args, i.Configurator)
	return append(args, i.Args...)
}

// Argv returns the complete argument vector, starting with the executable.
func (i *Invocation) Argv() []string {
	if i.RunnerPath == "" {
		return i.ConfiguratorArgs()
	}
	argv := make([]string, 0, len(i.Args)+2)
	argv = append(argv, i.RunnerPath)
	return append(argv, i.ConfiguratorArgs()...)
}

// RunRecord is the stored outcome of a successful configurator run.
type RunRecord struct {
	Target      string    `json:"target,omitzero"`
	Fingerprint string    `json:"fingerprint,omitzero"`
	Output      []byte    `json:"output,omitzero"`
	CompletedAt time.Time `json:"completed_at,omitzero"`
}
