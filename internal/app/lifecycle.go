// Where: internal/app/lifecycle.go
// What: Restart/stop/start command handlers.
// Why: The three lifecycle commands only differ in subcommand and services.
package app

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/mfujino/dcctl/internal/compose"
	"github.com/mfujino/dcctl/internal/ui"
)

func runRestart(cli CLI, deps Dependencies, out io.Writer) int {
	return runLifecycle(compose.OpRestart, cli.Restart.Services, cli, deps, out)
}

func runStop(cli CLI, deps Dependencies, out io.Writer) int {
	return runLifecycle(compose.OpStop, cli.Stop.Services, cli, deps, out)
}

func runStart(cli CLI, deps Dependencies, out io.Writer) int {
	return runLifecycle(compose.OpStart, cli.Start.Services, cli, deps, out)
}

func runLifecycle(op compose.Operation, services []string, cli CLI, deps Dependencies, out io.Writer) int {
	if deps.Composer == nil {
		fmt.Fprintf(out, "%s: not implemented\n", op)
		return 1
	}

	inv, err := resolveInvocation(cli, deps, out)
	if err != nil {
		return exitWithError(out, err)
	}

	opts := inv.Options
	opts.Services = serviceArgs(services, inv.Project)

	res, err := deps.Composer.Run(context.Background(), op, opts)
	if err != nil {
		return exitWithError(out, err)
	}

	console := ui.New(out)
	if !res.Ok() {
		console.Failure(fmt.Sprintf("%s exited with code %d", op, res.ExitCode))
		return res.ExitCode
	}
	console.Success(fmt.Sprintf("%s complete", capitalize(string(op))))
	return 0
}

func capitalize(word string) string {
	if word == "" {
		return word
	}
	return strings.ToUpper(word[:1]) + word[1:]
}
