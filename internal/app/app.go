// Where: internal/app/app.go
// What: CLI entrypoint logic.
// Why: Provide a testable command dispatcher.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/mfujino/dcctl/internal/compose"
	"github.com/mfujino/dcctl/internal/config"
	"github.com/mfujino/dcctl/internal/interaction"
	"github.com/mfujino/dcctl/internal/version"
)

// Composer is the slice of the compose binding the handlers need.
type Composer interface {
	Run(ctx context.Context, op compose.Operation, opts compose.Options) (compose.Result, error)
}

// Dependencies holds all injected dependencies required for CLI command
// execution. This structure enables dependency injection for testing.
type Dependencies struct {
	WorkDir  string
	Out      io.Writer
	Composer Composer
	Prompter interaction.Prompter
	Now      func() time.Time
}

// CLI defines the command-line interface structure parsed by Kong.
// It contains global flags and all subcommand definitions.
type CLI struct {
	File    string `short:"f" name:"file" help:"Path to the compose file"`
	Project string `short:"p" name:"project" help:"Compose project name"`
	Yes     bool   `short:"y" name:"yes" help:"Assume yes: pass --always-yes and skip prompts"`
	EnvFile string `name:"env-file" help:"Path to .env file"`

	Up         UpCmd         `cmd:"" help:"Create and start services"`
	Down       DownCmd       `cmd:"" help:"Stop and remove services"`
	Restart    RestartCmd    `cmd:"" help:"Restart services"`
	Stop       StopCmd       `cmd:"" help:"Stop services without removing them"`
	Start      StartCmd      `cmd:"" help:"Start previously created services"`
	Completion CompletionCmd `cmd:"" help:"Generate shell completion script"`
	Version    VersionCmd    `cmd:"" help:"Show version information"`
}

type VersionCmd struct{}

type UpCmd struct {
	Services      []string `arg:"" optional:"" name:"service" help:"Services to start (default: all)"`
	ForceRecreate bool     `name:"force-recreate" help:"Recreate containers even if their configuration is unchanged"`
	RemoveOrphans bool     `name:"remove-orphans" help:"Remove containers for services not in the compose file"`
}

type DownCmd struct {
	RemoveOrphans bool `name:"remove-orphans" help:"Remove containers for services not in the compose file"`
}

type (
	RestartCmd struct {
		Services []string `arg:"" optional:"" name:"service" help:"Services to restart (default: all)"`
	}
	StopCmd struct {
		Services []string `arg:"" optional:"" name:"service" help:"Services to stop (default: all)"`
	}
	StartCmd struct {
		Services []string `arg:"" optional:"" name:"service" help:"Services to start (default: all)"`
	}
)

// Run is the main entry point for CLI command execution.
// It parses the command-line arguments, identifies the requested command,
// and dispatches to the appropriate handler. Returns the exit code.
func Run(args []string, deps Dependencies) int {
	out := deps.Out
	if out == nil {
		out = os.Stdout
	}

	if err := config.EnsureGlobalConfig(); err != nil {
		return exitWithError(out, err)
	}

	if len(args) == 0 {
		return runNoArgs(out)
	}

	cli := CLI{}
	parser, err := kong.New(&cli)
	if err != nil {
		return exitWithError(out, err)
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		return exitWithError(out, err)
	}

	// Load environment file if provided or if .env exists in the working
	// directory, mirroring what docker-compose itself picks up.
	if cli.EnvFile != "" {
		if err := godotenv.Load(cli.EnvFile); err != nil {
			fmt.Fprintf(out, "Warning: failed to load env file %s: %v\n", cli.EnvFile, err)
		}
	} else if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			fmt.Fprintf(out, "Warning: failed to load .env: %v\n", err)
		}
	}

	command := ctx.Command()
	if exitCode, handled := dispatchCommand(command, cli, deps, out); handled {
		return exitCode
	}

	fmt.Fprintln(out, "unknown command")
	return 1
}

type commandHandler func(CLI, Dependencies, io.Writer) int

type prefixHandler struct {
	prefix  string
	handler commandHandler
}

func dispatchCommand(command string, cli CLI, deps Dependencies, out io.Writer) (int, bool) {
	exactHandlers := map[string]commandHandler{
		"down":            runDown,
		"completion bash": func(_ CLI, _ Dependencies, out io.Writer) int { return runCompletionBash(cli, out) },
		"completion zsh":  func(_ CLI, _ Dependencies, out io.Writer) int { return runCompletionZsh(cli, out) },
		"completion fish": func(_ CLI, _ Dependencies, out io.Writer) int { return runCompletionFish(cli, out) },
		"version":         func(_ CLI, _ Dependencies, out io.Writer) int { return runVersion(cli, out) },
	}

	if handler, ok := exactHandlers[command]; ok {
		return handler(cli, deps, out), true
	}

	prefixHandlers := []prefixHandler{
		{prefix: "up", handler: runUp},
		{prefix: "restart", handler: runRestart},
		{prefix: "stop", handler: runStop},
		{prefix: "start", handler: runStart},
	}

	for _, entry := range prefixHandlers {
		if command == entry.prefix || strings.HasPrefix(command, entry.prefix+" ") {
			return entry.handler(cli, deps, out), true
		}
	}

	return 1, false
}

// runNoArgs handles invocation without arguments: list the commands and
// point at --help instead of dumping the full kong usage.
func runNoArgs(out io.Writer) int {
	fmt.Fprintln(out, "dcctl: wrapper around the docker-compose executable")
	fmt.Fprintln(out, "Commands:")
	for _, line := range []string{
		"up [service…]       Create and start services",
		"down                Stop and remove services",
		"restart [service…]  Restart services",
		"stop [service…]     Stop services without removing them",
		"start [service…]    Start previously created services",
		"completion <shell>  Generate shell completion script",
		"version             Show version information",
	} {
		fmt.Fprintf(out, "  %s\n", line)
	}
	fmt.Fprintln(out, "Run 'dcctl <command> --help' for details.")
	return 1
}

// runVersion prints the version information of the CLI.
func runVersion(_ CLI, out io.Writer) int {
	fmt.Fprintln(out, version.GetVersion())
	return 0
}

func exitWithError(out io.Writer, err error) int {
	fmt.Fprintln(out, err)
	return 1
}
