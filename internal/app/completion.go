// Where: internal/app/completion.go
// What: Shell completion command implementation.
// Why: Provide tab completion for bash, zsh, and fish.
package app

import (
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/kong"
)

// CompletionCmd defines the structure for the completion command.
type CompletionCmd struct {
	Bash CompletionBashCmd `cmd:"" help:"Generate bash completion script"`
	Zsh  CompletionZshCmd  `cmd:"" help:"Generate zsh completion script"`
	Fish CompletionFishCmd `cmd:"" help:"Generate fish completion script"`
}

type (
	CompletionBashCmd struct{}
	CompletionZshCmd  struct{}
	CompletionFishCmd struct{}
)

// commandModel extracts visible command names and their flags from the
// kong model so the scripts never drift from the CLI definition.
func commandModel(cli CLI) ([]string, map[string][]string) {
	parser, _ := kong.New(&cli)

	var commands []string
	flags := make(map[string][]string)
	for _, node := range parser.Model.Children {
		if node.Hidden {
			continue
		}
		commands = append(commands, node.Name)
		var names []string
		for _, flag := range node.Flags {
			if flag.Hidden {
				continue
			}
			names = append(names, "--"+flag.Name)
		}
		flags[node.Name] = names
	}
	return commands, flags
}

func runCompletionBash(cli CLI, out io.Writer) int {
	commands, flags := commandModel(cli)

	var caseParts []string
	for _, cmd := range commands {
		caseParts = append(caseParts, fmt.Sprintf(`        %s)
            COMPREPLY=( $(compgen -W "%s" -- "${cur}") )
            return 0
            ;;`, cmd, strings.Join(flags[cmd], " ")))
	}

	script := `_dcctl_completion() {
    local cur cmd
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"
    cmd="${COMP_WORDS[1]}"

    if [[ "${cur}" == -* && -n "${cmd}" ]]; then
        case "${cmd}" in
%s
        esac
    fi

    if [[ ${COMP_CWORD} -eq 1 ]]; then
        COMPREPLY=( $(compgen -W "%s" -- "${cur}") )
        return 0
    fi
}
complete -F _dcctl_completion dcctl
`
	fmt.Fprintf(out, script, strings.Join(caseParts, "\n"), strings.Join(commands, " "))
	return 0
}

func runCompletionZsh(cli CLI, out io.Writer) int {
	commands, _ := commandModel(cli)

	script := `#compdef dcctl
_dcctl_completion() {
    local -a commands
    commands=(
        %s
    )
    if (( CURRENT == 2 )); then
        _describe 'command' commands
    fi
}
_dcctl_completion "$@"
`
	fmt.Fprintf(out, script, strings.Join(commands, " "))
	return 0
}

func runCompletionFish(cli CLI, out io.Writer) int {
	commands, flags := commandModel(cli)

	var lines []string
	lines = append(lines, fmt.Sprintf(
		`complete -c dcctl -f -n "not __fish_seen_subcommand_from %s" -a "%s"`,
		strings.Join(commands, " "), strings.Join(commands, " ")))
	for _, cmd := range commands {
		for _, flag := range flags[cmd] {
			lines = append(lines, fmt.Sprintf(
				`complete -c dcctl -f -n "__fish_seen_subcommand_from %s" -l %s`,
				cmd, strings.TrimPrefix(flag, "--")))
		}
	}

	fmt.Fprintln(out, strings.Join(lines, "\n"))
	return 0
}
