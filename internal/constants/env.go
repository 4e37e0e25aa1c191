// Where: internal/constants/env.go
// What: Environment variable naming constants.
// Why: Centralize environment variable suffixes to avoid typos and inconsistencies.
package constants

const (
	// Configuration location
	HostSuffixConfigPath = "CONFIG_PATH"
	HostSuffixConfigHome = "CONFIG_HOME"

	// Invocation defaults
	HostSuffixComposeBin  = "COMPOSE_BIN"
	HostSuffixComposeFile = "COMPOSE_FILE"
	HostSuffixProjectName = "PROJECT_NAME"
	HostSuffixAlwaysYes   = "ALWAYS_YES"

	// UX
	HostSuffixInteractive = "INTERACTIVE"
)
