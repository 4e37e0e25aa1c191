// Where: internal/config/global.go
// What: Global config load/save helpers.
// Why: Manage ~/.dcctl/config.yaml consistently.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/mfujino/dcctl/internal/constants"
	"github.com/mfujino/dcctl/internal/envutil"
	"github.com/mfujino/dcctl/internal/meta"
)

// GlobalConfig represents the ~/.dcctl/config.yaml global configuration.
// It stores invocation defaults and remembers project directories.
type GlobalConfig struct {
	Version     int                     `yaml:"version"`
	ComposeBin  string                  `yaml:"compose_bin,omitempty"`
	ProjectName string                  `yaml:"project_name,omitempty"`
	AlwaysYes   bool                    `yaml:"always_yes,omitempty"`
	Projects    map[string]ProjectEntry `yaml:"projects,omitempty"`
}

// ProjectEntry stores a project's directory path and last-used timestamp.
type ProjectEntry struct {
	Path     string `yaml:"path"`
	LastUsed string `yaml:"last_used"`
}

// DefaultGlobalConfig returns an initialized GlobalConfig with version set.
func DefaultGlobalConfig() GlobalConfig {
	return GlobalConfig{
		Version:  1,
		Projects: map[string]ProjectEntry{},
	}
}

// GlobalConfigPath returns the path to the global config file.
// Respects DCCTL_CONFIG_PATH and DCCTL_CONFIG_HOME environment variables.
func GlobalConfigPath() (string, error) {
	if override := strings.TrimSpace(envutil.GetHostEnv(constants.HostSuffixConfigPath)); override != "" {
		path := override
		if !filepath.IsAbs(path) {
			if abs, err := filepath.Abs(path); err == nil {
				path = abs
			}
		}
		return path, nil
	}
	if override := strings.TrimSpace(envutil.GetHostEnv(constants.HostSuffixConfigHome)); override != "" {
		return filepath.Join(override, meta.GlobalConfigName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, meta.HomeDir, meta.GlobalConfigName), nil
}

// EnsureGlobalConfig creates the global config file if it doesn't exist.
func EnsureGlobalConfig() error {
	path, err := GlobalConfigPath()
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return SaveGlobalConfig(path, DefaultGlobalConfig())
		}
		return err
	}
	return nil
}

// LoadGlobalConfig reads and parses the global configuration file.
func LoadGlobalConfig(path string) (GlobalConfig, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return GlobalConfig{}, err
	}

	var cfg GlobalConfig
	if err := yaml.Unmarshal(payload, &cfg); err != nil {
		return GlobalConfig{}, err
	}
	return cfg, nil
}

// SaveGlobalConfig writes a GlobalConfig to the specified path.
func SaveGlobalConfig(path string, cfg GlobalConfig) error {
	payload, err := yaml.Marshal(&cfg)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	return os.WriteFile(path, payload, 0o644)
}

// RememberProject records dir as a known project and stamps its last use.
// Failures are returned but are safe to ignore; the registry is advisory.
func RememberProject(name, dir string, now time.Time) error {
	path, err := GlobalConfigPath()
	if err != nil {
		return err
	}
	cfg, err := LoadGlobalConfig(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return err
		}
		cfg = DefaultGlobalConfig()
	}
	if cfg.Projects == nil {
		cfg.Projects = map[string]ProjectEntry{}
	}
	if name == "" {
		name = filepath.Base(dir)
	}
	cfg.Projects[name] = ProjectEntry{
		Path:     dir,
		LastUsed: now.UTC().Format(time.RFC3339),
	}
	return SaveGlobalConfig(path, cfg)
}
