// Where: internal/app/down.go
// What: Down command handler.
// Why: Removing containers is destructive, so confirm unless told not to.
package app

import (
	"context"
	"fmt"
	"io"

	"github.com/mfujino/dcctl/internal/compose"
	"github.com/mfujino/dcctl/internal/interaction"
	"github.com/mfujino/dcctl/internal/ui"
)

func runDown(cli CLI, deps Dependencies, out io.Writer) int {
	if deps.Composer == nil {
		fmt.Fprintln(out, "down: not implemented")
		return 1
	}

	inv, err := resolveInvocation(cli, deps, out)
	if err != nil {
		return exitWithError(out, err)
	}

	opts := inv.Options
	opts.RemoveOrphans = cli.Down.RemoveOrphans

	if !opts.AlwaysYes && deps.Prompter != nil && interaction.Interactive() {
		confirmed, err := deps.Prompter.Confirm(confirmDownTitle(opts.ProjectName))
		if err != nil {
			return exitWithError(out, err)
		}
		if !confirmed {
			fmt.Fprintln(out, "Aborted.")
			return 1
		}
	}

	res, err := deps.Composer.Run(context.Background(), compose.OpDown, opts)
	if err != nil {
		return exitWithError(out, err)
	}

	console := ui.New(out)
	if !res.Ok() {
		console.Failure(fmt.Sprintf("down exited with code %d", res.ExitCode))
		return res.ExitCode
	}
	console.Success("Down complete")
	return 0
}

func confirmDownTitle(projectName string) string {
	if projectName == "" {
		return "Stop and remove all services?"
	}
	return fmt.Sprintf("Stop and remove all services of %q?", projectName)
}
