// Where: internal/config/project.go
// What: Per-directory project config (dcctl.yml).
// Why: Let a project pin its compose file, name, and service defaults.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/mfujino/dcctl/internal/meta"
)

// ProjectConfig is the optional dcctl.yml in a project directory.
type ProjectConfig struct {
	ComposeFile     string   `yaml:"compose_file,omitempty"`
	ProjectName     string   `yaml:"project_name,omitempty"`
	AlwaysYes       bool     `yaml:"always_yes,omitempty"`
	DefaultServices []string `yaml:"default_services,omitempty"`
}

// LoadProjectConfig reads dcctl.yml from dir. A missing file yields a
// zero config and no error. Warnings name keys the schema does not know.
// A relative compose_file is resolved against dir.
func LoadProjectConfig(dir string) (ProjectConfig, []string, error) {
	path := filepath.Join(dir, meta.ProjectConfigName)
	payload, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return ProjectConfig{}, nil, nil
		}
		return ProjectConfig{}, nil, err
	}

	warnings, err := validateProjectConfig(payload)
	if err != nil {
		return ProjectConfig{}, nil, err
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(payload, &cfg); err != nil {
		return ProjectConfig{}, nil, err
	}

	if cfg.ComposeFile != "" && !filepath.IsAbs(cfg.ComposeFile) {
		cfg.ComposeFile = filepath.Join(dir, cfg.ComposeFile)
	}
	return cfg, warnings, nil
}
