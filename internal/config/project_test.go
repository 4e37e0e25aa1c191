// Where: internal/config/project_test.go
// What: Tests for the per-directory project config.
// Why: Unknown keys must warn, and relative paths must resolve.
package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeProjectConfig(t *testing.T, dir, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, "dcctl.yml"), []byte(content), 0o644); err != nil {
		t.Fatalf("write project config: %v", err)
	}
}

func TestLoadProjectConfigMissingFile(t *testing.T) {
	cfg, warnings, err := LoadProjectConfig(t.TempDir())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(warnings) != 0 {
		t.Fatalf("expected no warnings, got %v", warnings)
	}
	if !reflect.DeepEqual(cfg, ProjectConfig{}) {
		t.Fatalf("expected zero config, got %#v", cfg)
	}
}

func TestLoadProjectConfigResolvesRelativeComposeFile(t *testing.T) {
	dir := t.TempDir()
	writeProjectConfig(t, dir, "compose_file: stack/docker-compose.yml\nproject_name: web\n")

	cfg, warnings, err := LoadProjectConfig(dir)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(warnings) != 0 {
		t.Fatalf("expected no warnings, got %v", warnings)
	}
	if cfg.ComposeFile != filepath.Join(dir, "stack", "docker-compose.yml") {
		t.Fatalf("unexpected compose file: %s", cfg.ComposeFile)
	}
	if cfg.ProjectName != "web" {
		t.Fatalf("unexpected project name: %s", cfg.ProjectName)
	}
}

func TestLoadProjectConfigWarnsOnUnknownKeys(t *testing.T) {
	dir := t.TempDir()
	writeProjectConfig(t, dir, "project_name: web\nalways_yse: true\n")

	cfg, warnings, err := LoadProjectConfig(dir)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	expected := []string{`unknown key "always_yse" ignored`}
	if !reflect.DeepEqual(warnings, expected) {
		t.Fatalf("unexpected warnings:\ngot:  %v\nwant: %v", warnings, expected)
	}
	if cfg.AlwaysYes {
		t.Fatalf("typo'd key must not set always_yes")
	}
}

func TestLoadProjectConfigRejectsWrongTypes(t *testing.T) {
	dir := t.TempDir()
	writeProjectConfig(t, dir, "default_services: not-a-list\n")

	if _, _, err := LoadProjectConfig(dir); err == nil {
		t.Fatalf("expected schema validation error")
	}
}

func TestLoadProjectConfigDefaultServices(t *testing.T) {
	dir := t.TempDir()
	writeProjectConfig(t, dir, "default_services:\n  - db\n  - web\n")

	cfg, _, err := LoadProjectConfig(dir)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !reflect.DeepEqual(cfg.DefaultServices, []string{"db", "web"}) {
		t.Fatalf("unexpected services: %v", cfg.DefaultServices)
	}
}
