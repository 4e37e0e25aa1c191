// Package envutil provides helper functions for environment variable handling.
package envutil

import (
	"os"

	"github.com/mfujino/dcctl/internal/meta"
)

// HostEnvKey constructs a host-level environment variable name
// by combining the app prefix with the given suffix.
// Example: HostEnvKey("PROJECT_NAME") returns "DCCTL_PROJECT_NAME".
func HostEnvKey(suffix string) string {
	return meta.EnvPrefix + "_" + suffix
}

// GetHostEnv retrieves a host-level environment variable.
// Example: GetHostEnv("PROJECT_NAME") returns the value of DCCTL_PROJECT_NAME.
func GetHostEnv(suffix string) string {
	return os.Getenv(HostEnvKey(suffix))
}

// SetHostEnv sets a host-level environment variable.
func SetHostEnv(suffix, value string) {
	_ = os.Setenv(HostEnvKey(suffix), value)
}
