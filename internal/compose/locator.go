// Where: internal/compose/locator.go
// What: Platform resolution for the docker-compose executable.
// Why: Keep the lookup strategy behind a single injectable function.
package compose

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/mfujino/dcctl/internal/constants"
	"github.com/mfujino/dcctl/internal/envutil"
	"github.com/mfujino/dcctl/internal/meta"
)

// Locator resolves the path of the executable to invoke.
type Locator func() (string, error)

// DefaultLocator resolves docker-compose per host platform. The
// DCCTL_COMPOSE_BIN environment variable overrides everything. On
// Windows the name is looked up on PATH; elsewhere a binary bundled
// next to the running executable is preferred, falling back to PATH.
func DefaultLocator() (string, error) {
	if override := strings.TrimSpace(envutil.GetHostEnv(constants.HostSuffixComposeBin)); override != "" {
		return override, nil
	}

	if runtime.GOOS == "windows" {
		return exec.LookPath(meta.ComposeCommand + ".exe")
	}

	if self, err := os.Executable(); err == nil {
		bundled := filepath.Join(filepath.Dir(self), meta.ComposeCommand)
		if info, err := os.Stat(bundled); err == nil && !info.IsDir() {
			return bundled, nil
		}
	}
	return exec.LookPath(meta.ComposeCommand)
}
