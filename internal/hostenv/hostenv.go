package hostenv

import (
	"errors"
	"os"
	"os/exec"
	"runtime"
	"strings"
)

// ErrPathTranslation tags failures converting a host path to the execution
// environment's addressing.
var ErrPathTranslation = errors.New("path translation")

// EnvVar is one environment variable handed to the backend. A slice keeps
// the assignment order stable, which matters for the bridge's shell line.
type EnvVar struct {
	Name  string
	Value string
}

// Environment is the capability contract shared by native execution and the
// WSL bridge. Implementations are stateless; Detect selects one at startup.
type Environment interface {
	// Name identifies the environment in diagnostics.
	Name() string

	// Bridged reports whether paths must cross an addressing boundary.
	Bridged() bool

	// TranslatePath converts a host path to the form the backend sees.
	TranslatePath(path string) (string, error)

	// Command builds the backend invocation. For the bridge this collapses
	// the whole call into a single escaped shell line.
	Command(binary string, args []string, env []EnvVar) *exec.Cmd
}

// Detect picks the execution environment for this host. Windows hosts
// always go through the WSL bridge since the backend is a Linux binary.
func Detect() Environment {
	if runtime.GOOS == "windows" {
		return &Bridge{}
	}
	return &Native{}
}

// BridgeAvailable reports whether wsl.exe can be found on PATH. Only
// meaningful on Windows hosts; checked before the first spawn so a missing
// WSL installation fails with a clear message instead of a spawn error.
func BridgeAvailable() bool {
	_, err := exec.LookPath("wsl.exe")
	return err == nil
}

// InsideWSL reports whether the launcher itself is already running inside a
// WSL distribution, in which case paths are POSIX and no bridge is needed.
func InsideWSL() bool {
	if os.Getenv("WSL_DISTRO_NAME") != "" {
		return true
	}
	version, err := os.ReadFile("/proc/version")
	if err != nil {
		return false
	}
	lower := strings.ToLower(string(version))
	return strings.Contains(lower, "microsoft") || strings.Contains(lower, "wsl")
}
