// Where: internal/app/resolve_options.go
// What: Merge CLI flags, environment, and config into invocation options.
// Why: Keep precedence rules in one place (flag > env > project > global).
package app

import (
	"io"
	"strings"

	"github.com/mfujino/dcctl/internal/compose"
	"github.com/mfujino/dcctl/internal/config"
	"github.com/mfujino/dcctl/internal/constants"
	"github.com/mfujino/dcctl/internal/envutil"
	"github.com/mfujino/dcctl/internal/meta"
	"github.com/mfujino/dcctl/internal/ui"
)

// invocation carries the resolved options plus the project config they
// came from, for handlers that need service defaults.
type invocation struct {
	Options compose.Options
	Project config.ProjectConfig
}

func resolveInvocation(cli CLI, deps Dependencies, out io.Writer) (invocation, error) {
	project, warnings, err := config.LoadProjectConfig(deps.WorkDir)
	if err != nil {
		return invocation{}, err
	}
	console := ui.New(out)
	for _, warning := range warnings {
		console.Warn(meta.ProjectConfigName + ": " + warning)
	}

	// Global config is advisory: a missing or unreadable file only
	// drops the defaults it would have supplied.
	var global config.GlobalConfig
	if path, err := config.GlobalConfigPath(); err == nil {
		if loaded, err := config.LoadGlobalConfig(path); err == nil {
			global = loaded
		}
	}
	if global.ComposeBin != "" && envutil.GetHostEnv(constants.HostSuffixComposeBin) == "" {
		envutil.SetHostEnv(constants.HostSuffixComposeBin, global.ComposeBin)
	}

	opts := compose.Options{
		Into: out,
		ComposePath: firstNonEmpty(
			cli.File,
			envutil.GetHostEnv(constants.HostSuffixComposeFile),
			project.ComposeFile,
		),
		ProjectName: firstNonEmpty(
			cli.Project,
			envutil.GetHostEnv(constants.HostSuffixProjectName),
			project.ProjectName,
			global.ProjectName,
		),
		AlwaysYes: cli.Yes ||
			envTruthy(constants.HostSuffixAlwaysYes) ||
			project.AlwaysYes ||
			global.AlwaysYes,
	}

	return invocation{Options: opts, Project: project}, nil
}

// serviceArgs picks explicit services, falling back to the project's
// default_services when none were named.
func serviceArgs(explicit []string, project config.ProjectConfig) []string {
	if len(explicit) > 0 {
		return explicit
	}
	return project.DefaultServices
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			return trimmed
		}
	}
	return ""
}

func envTruthy(suffix string) bool {
	switch strings.ToLower(strings.TrimSpace(envutil.GetHostEnv(suffix))) {
	case "1", "true", "yes":
		return true
	}
	return false
}
