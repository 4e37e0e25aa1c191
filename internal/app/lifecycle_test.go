// Where: internal/app/lifecycle_test.go
// What: Tests for restart/stop/start wiring.
// Why: The three lifecycle commands share one path; verify each maps through.
package app

import (
	"bytes"
	"reflect"
	"testing"

	"github.com/mfujino/dcctl/internal/compose"
)

func TestLifecycleCommandsMapToOperations(t *testing.T) {
	cases := []struct {
		args []string
		op   compose.Operation
	}{
		{[]string{"restart", "web"}, compose.OpRestart},
		{[]string{"stop", "web"}, compose.OpStop},
		{[]string{"start", "web"}, compose.OpStart},
	}

	for _, tc := range cases {
		t.Run(string(tc.op), func(t *testing.T) {
			isolate(t)
			composer := &fakeComposer{}
			var out bytes.Buffer
			deps := Dependencies{Out: &out, WorkDir: t.TempDir(), Composer: composer}

			if exitCode := Run(tc.args, deps); exitCode != 0 {
				t.Fatalf("expected exit code 0, got %d\n%s", exitCode, out.String())
			}
			call := composer.calls[0]
			if call.op != tc.op {
				t.Fatalf("unexpected operation: %s", call.op)
			}
			if !reflect.DeepEqual(call.opts.Services, []string{"web"}) {
				t.Fatalf("unexpected services: %v", call.opts.Services)
			}
		})
	}
}

func TestLifecycleServiceOrderPreserved(t *testing.T) {
	isolate(t)
	composer := &fakeComposer{}
	var out bytes.Buffer
	deps := Dependencies{Out: &out, WorkDir: t.TempDir(), Composer: composer}

	if exitCode := Run([]string{"restart", "db", "web", "cache"}, deps); exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d", exitCode)
	}
	if !reflect.DeepEqual(composer.calls[0].opts.Services, []string{"db", "web", "cache"}) {
		t.Fatalf("unexpected services: %v", composer.calls[0].opts.Services)
	}
}

func TestLifecycleFallsBackToDefaultServices(t *testing.T) {
	isolate(t)
	workDir := t.TempDir()
	writeProjectFile(t, workDir, "default_services:\n  - web\n")

	composer := &fakeComposer{}
	var out bytes.Buffer
	deps := Dependencies{Out: &out, WorkDir: workDir, Composer: composer}

	if exitCode := Run([]string{"stop"}, deps); exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d", exitCode)
	}
	if !reflect.DeepEqual(composer.calls[0].opts.Services, []string{"web"}) {
		t.Fatalf("unexpected services: %v", composer.calls[0].opts.Services)
	}
}

func TestLifecycleRelaysExitCode(t *testing.T) {
	isolate(t)
	composer := &fakeComposer{result: compose.Result{ExitCode: 5}}
	var out bytes.Buffer
	deps := Dependencies{Out: &out, WorkDir: t.TempDir(), Composer: composer}

	if exitCode := Run([]string{"stop"}, deps); exitCode != 5 {
		t.Fatalf("expected exit code 5, got %d", exitCode)
	}
}
