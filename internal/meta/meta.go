// Where: internal/meta/meta.go
// What: Project-local metadata constants.
// Why: Keep naming and directory layout in one place.
package meta

const (
	// Project Identity
	AppName   = "dcctl"
	Slug      = "dcctl"
	EnvPrefix = "DCCTL"

	// Directory Layout
	HomeDir           = ".dcctl"
	GlobalConfigName  = "config.yaml"
	ProjectConfigName = "dcctl.yml"

	// Wrapped executable
	ComposeCommand = "docker-compose"
)
