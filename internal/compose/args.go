// Where: internal/compose/args.go
// What: Argument vector assembly for docker-compose invocations.
// Why: The wrapped CLI is positional, so flag order must be stable.
package compose

import "path/filepath"

// BuildArgs assembles the argument vector for an operation. It is a pure
// function of its inputs: wrapper flags first, then -f/-p, a fixed
// "--ansi never", the subcommand, its flags, and finally service names
// (down takes none).
func BuildArgs(op Operation, opts Options) []string {
	args := make([]string, 0, 8+len(opts.Services))

	if opts.AlwaysYes {
		args = append(args, "--always-yes")
	}
	if opts.ComposePath != "" {
		args = append(args, "-f", filepath.Base(opts.ComposePath))
	}
	if opts.ProjectName != "" {
		args = append(args, "-p", opts.ProjectName)
	}

	// Disable colored output for deterministic parsing.
	args = append(args, "--ansi", "never")

	args = append(args, string(op))

	switch op {
	case OpUp:
		if opts.ForceRecreate {
			args = append(args, "--force-recreate")
		}
		if opts.RemoveOrphans {
			args = append(args, "--remove-orphans")
		}
		args = append(args, "-d", "--no-color")
	case OpDown:
		if opts.RemoveOrphans {
			args = append(args, "--remove-orphans")
		}
	}

	if op != OpDown {
		args = append(args, opts.Services...)
	}

	return args
}
