// Where: internal/interaction/interaction.go
// What: Interactive primitives for CLI prompts and TTY detection.
// Why: Centralize user interaction to keep command handlers focused on orchestration.
package interaction

import (
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"

	"github.com/mfujino/dcctl/internal/constants"
	"github.com/mfujino/dcctl/internal/envutil"
)

// Prompter defines the interface for interactive confirmation.
type Prompter interface {
	Confirm(title string) (bool, error)
}

// IsTerminal reports whether the file refers to a terminal device.
var IsTerminal = func(file *os.File) bool {
	if file == nil {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Interactive reports whether prompts should be shown.
// DCCTL_INTERACTIVE=0/false forces prompts off regardless of TTY state.
func Interactive() bool {
	switch strings.ToLower(strings.TrimSpace(envutil.GetHostEnv(constants.HostSuffixInteractive))) {
	case "0", "false", "no":
		return false
	}
	return IsTerminal(os.Stdin)
}

// HuhPrompter implements the Prompter interface using the huh TUI library.
type HuhPrompter struct{}

// Confirm shows a yes/no confirmation form and returns the choice.
func (p HuhPrompter) Confirm(title string) (bool, error) {
	var confirmed bool
	err := huh.NewConfirm().
		Title(title).
		Affirmative("Yes").
		Negative("No").
		Value(&confirmed).
		Run()
	if err != nil {
		return false, err
	}
	return confirmed, nil
}
