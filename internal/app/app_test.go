// Where: internal/app/app_test.go
// What: Shared fakes and dispatcher tests.
// Why: Ensure commands route to handlers with resolved options.
package app

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mfujino/dcctl/internal/compose"
)

type composerCall struct {
	op   compose.Operation
	opts compose.Options
}

type fakeComposer struct {
	calls  []composerCall
	result compose.Result
	err    error
}

func (f *fakeComposer) Run(_ context.Context, op compose.Operation, opts compose.Options) (compose.Result, error) {
	f.calls = append(f.calls, composerCall{op: op, opts: opts})
	return f.result, f.err
}

type fakePrompter struct {
	asked     []string
	confirmed bool
	err       error
}

func (f *fakePrompter) Confirm(title string) (bool, error) {
	f.asked = append(f.asked, title)
	return f.confirmed, f.err
}

// isolate points the global config at a temp file and clears invocation
// env vars so tests never see the host environment.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("DCCTL_CONFIG_PATH", filepath.Join(t.TempDir(), "config.yaml"))
	t.Setenv("DCCTL_COMPOSE_FILE", "")
	t.Setenv("DCCTL_PROJECT_NAME", "")
	t.Setenv("DCCTL_ALWAYS_YES", "")
	t.Setenv("DCCTL_COMPOSE_BIN", "")
	t.Setenv("DCCTL_INTERACTIVE", "")
}

func TestRunNoArgsListsCommands(t *testing.T) {
	isolate(t)
	var out bytes.Buffer

	exitCode := Run(nil, Dependencies{Out: &out, WorkDir: t.TempDir()})
	if exitCode != 1 {
		t.Fatalf("expected exit code 1, got %d", exitCode)
	}
	for _, command := range []string{"up", "down", "restart", "stop", "start"} {
		if !strings.Contains(out.String(), command) {
			t.Fatalf("expected %q in output:\n%s", command, out.String())
		}
	}
}

func TestRunUnknownCommand(t *testing.T) {
	isolate(t)
	var out bytes.Buffer

	exitCode := Run([]string{"bogus"}, Dependencies{Out: &out, WorkDir: t.TempDir()})
	if exitCode != 1 {
		t.Fatalf("expected exit code 1, got %d", exitCode)
	}
}

func TestRunVersion(t *testing.T) {
	isolate(t)
	var out bytes.Buffer

	exitCode := Run([]string{"version"}, Dependencies{Out: &out, WorkDir: t.TempDir()})
	if exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d", exitCode)
	}
	if strings.TrimSpace(out.String()) == "" {
		t.Fatalf("expected version output")
	}
}

func TestRunMissingComposer(t *testing.T) {
	isolate(t)
	var out bytes.Buffer

	exitCode := Run([]string{"start"}, Dependencies{Out: &out, WorkDir: t.TempDir()})
	if exitCode != 1 {
		t.Fatalf("expected exit code 1, got %d", exitCode)
	}
	if !strings.Contains(out.String(), "not implemented") {
		t.Fatalf("unexpected output: %s", out.String())
	}
}

func TestRunCompletionBash(t *testing.T) {
	isolate(t)
	var out bytes.Buffer

	exitCode := Run([]string{"completion", "bash"}, Dependencies{Out: &out, WorkDir: t.TempDir()})
	if exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d", exitCode)
	}
	script := out.String()
	if !strings.Contains(script, "complete -F _dcctl_completion dcctl") {
		t.Fatalf("expected completion registration:\n%s", script)
	}
	if !strings.Contains(script, "--force-recreate") {
		t.Fatalf("expected up flags in script:\n%s", script)
	}
}
