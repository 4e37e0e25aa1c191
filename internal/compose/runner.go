// Where: internal/compose/runner.go
// What: Subprocess execution for the binding.
// Why: Provide a minimal, testable seam between arg assembly and os/exec.
package compose

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
)

// Runner defines the interface for executing the wrapped executable.
// Implementations must merge stderr into stdout and write both to sink.
// The returned int is the subprocess exit code; a non-nil error means
// the process never ran (see StartError).
type Runner interface {
	Run(ctx context.Context, dir, name string, args []string, sink io.Writer) (int, error)
}

// ExecRunner implements Runner using os/exec.
type ExecRunner struct{}

// Run executes the command synchronously with stderr merged into stdout.
// A non-zero exit is a normal outcome, reported through the exit code,
// not through the error.
func (ExecRunner) Run(ctx context.Context, dir, name string, args []string, sink io.Writer) (int, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdout = sink
	cmd.Stderr = cmd.Stdout

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}
		return -1, &StartError{Name: name, Err: err}
	}
	return 0, nil
}

// StartError reports that the executable could not be started at all:
// missing binary, permission problems, or a cancelled context. It is
// deliberately distinct from a non-zero exit code.
type StartError struct {
	Name string
	Err  error
}

func (e *StartError) Error() string {
	return fmt.Sprintf("start %s: %v", e.Name, e.Err)
}

func (e *StartError) Unwrap() error {
	return e.Err
}
