// Where: internal/app/up.go
// What: Up command handler.
// Why: Bring the stack up and remember the project on success.
package app

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/mfujino/dcctl/internal/compose"
	"github.com/mfujino/dcctl/internal/config"
	"github.com/mfujino/dcctl/internal/ui"
)

func runUp(cli CLI, deps Dependencies, out io.Writer) int {
	if deps.Composer == nil {
		fmt.Fprintln(out, "up: not implemented")
		return 1
	}

	inv, err := resolveInvocation(cli, deps, out)
	if err != nil {
		return exitWithError(out, err)
	}

	opts := inv.Options
	opts.ForceRecreate = cli.Up.ForceRecreate
	opts.RemoveOrphans = cli.Up.RemoveOrphans
	opts.Services = serviceArgs(cli.Up.Services, inv.Project)

	res, err := deps.Composer.Run(context.Background(), compose.OpUp, opts)
	if err != nil {
		return exitWithError(out, err)
	}

	console := ui.New(out)
	if !res.Ok() {
		console.Failure(fmt.Sprintf("up exited with code %d", res.ExitCode))
		return res.ExitCode
	}

	rememberProject(deps, opts.ProjectName)
	console.Success("Up complete")
	return 0
}

// rememberProject records the project directory for later listing. The
// registry is advisory, so failures are deliberately ignored.
func rememberProject(deps Dependencies, projectName string) {
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	_ = config.RememberProject(projectName, deps.WorkDir, now())
}
