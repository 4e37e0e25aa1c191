// Where: cmd/dcctl/cli.go
// What: CLI dependency wiring helpers.
// Why: Centralize construction for testability.
package main

import (
	"os"

	"github.com/mfujino/dcctl/internal/app"
	"github.com/mfujino/dcctl/internal/compose"
	"github.com/mfujino/dcctl/internal/interaction"
)

var getwd = os.Getwd

// buildDependencies constructs all runtime dependencies required by the
// CLI: the compose client, the prompter, and the working directory.
func buildDependencies() (app.Dependencies, error) {
	workDir, err := getwd()
	if err != nil {
		return app.Dependencies{}, err
	}

	return app.Dependencies{
		WorkDir:  workDir,
		Out:      os.Stdout,
		Composer: compose.NewClient(),
		Prompter: interaction.HuhPrompter{},
	}, nil
}
