// Where: internal/compose/compose.go
// What: Core types for the docker-compose binding.
// Why: Keep the invocation surface small and explicit.
package compose

import "io"

// Operation is a docker-compose subcommand supported by the binding.
type Operation string

const (
	OpUp      Operation = "up"
	OpDown    Operation = "down"
	OpRestart Operation = "restart"
	OpStop    Operation = "stop"
	OpStart   Operation = "start"
)

// Valid reports whether the operation is one of the supported subcommands.
func (op Operation) Valid() bool {
	switch op {
	case OpUp, OpDown, OpRestart, OpStop, OpStart:
		return true
	}
	return false
}

// Options configures a single docker-compose invocation.
// Zero values mean "not supplied": the corresponding flag is omitted.
type Options struct {
	// AlwaysYes passes --always-yes ahead of all other flags.
	AlwaysYes bool

	// ComposePath selects the compose file. Only its base name is passed
	// as -f; its directory becomes the subprocess working directory.
	ComposePath string

	// ProjectName is passed as -p when non-empty.
	ProjectName string

	// ForceRecreate applies to up only.
	ForceRecreate bool

	// RemoveOrphans applies to up and down.
	RemoveOrphans bool

	// Services are appended as positional arguments in the supplied
	// order. down takes no service arguments.
	Services []string

	// Into receives the subprocess output as it is produced. The output
	// is still accumulated into the Result. Nil means memory only.
	Into io.Writer
}

// Result is the outcome of a completed invocation. A zero ExitCode is
// success; any other value is the subprocess's own exit code. Output
// holds the combined stdout and stderr in both cases.
type Result struct {
	Output   string
	ExitCode int
}

// Ok reports whether the subprocess exited with code zero.
func (r Result) Ok() bool {
	return r.ExitCode == 0
}
