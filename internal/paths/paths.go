package paths

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// ErrNotFound tags every missing-installation-piece failure. The wrapped
// message names the piece; callers surface it verbatim.
var ErrNotFound = errors.New("not found")

const (
	backendDir  = "backend"
	frontendDir = "frontend"
	backendName = "carta_backend"
)

// Resolved holds the independently resolved installation paths for one
// launch. Computed once; LibraryDir stays empty when the optional library
// directory is absent.
type Resolved struct {
	BackendExecutable string
	FrontendAssets    string
	EtcDirectory      string
	LibraryDir        string
}

// Resolve locates every installation piece under resourceDir. The etc
// directory goes through the space workaround (see EtcDirectory).
func Resolve(resourceDir, symlinkBase, symlinkName string) (Resolved, error) {
	backend, err := BackendExecutable(resourceDir)
	if err != nil {
		return Resolved{}, err
	}
	frontend, err := FrontendAssets(resourceDir)
	if err != nil {
		return Resolved{}, err
	}
	etc, err := EtcDirectory(backend, symlinkBase, symlinkName)
	if err != nil {
		return Resolved{}, err
	}
	library, _ := LibraryDir(backend)
	return Resolved{
		BackendExecutable: backend,
		FrontendAssets:    frontend,
		EtcDirectory:      etc,
		LibraryDir:        library,
	}, nil
}

// BackendExecutable locates the backend binary under the resource root.
func BackendExecutable(resourceDir string) (string, error) {
	candidate := filepath.Join(resourceDir, backendDir, "bin", backendFilename())
	if _, err := os.Stat(candidate); err != nil {
		return "", fmt.Errorf("backend/bin/%s binary %w", backendFilename(), ErrNotFound)
	}
	return candidate, nil
}

// FrontendAssets locates the built frontend directory under the resource
// root.
func FrontendAssets(resourceDir string) (string, error) {
	candidate := filepath.Join(resourceDir, frontendDir)
	if _, err := os.Stat(candidate); err != nil {
		return "", fmt.Errorf("frontend directory %w", ErrNotFound)
	}
	return candidate, nil
}

// LibraryDir locates the optional native library directory next to the
// backend binary. Absence is not an error; the launch degrades gracefully.
func LibraryDir(backendExecutable string) (string, bool) {
	candidate := filepath.Join(filepath.Dir(backendExecutable), "..", "lib")
	info, err := os.Stat(candidate)
	if err != nil || !info.IsDir() {
		return "", false
	}
	if resolved, err := filepath.EvalSymlinks(candidate); err == nil {
		return resolved, true
	}
	return filepath.Clean(candidate), true
}

// DefaultResourceDir derives the resource root from the launcher's own
// location: the executable's directory, or the bundle Resources directory
// on macOS.
func DefaultResourceDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locate launcher executable: %w", err)
	}
	dir := filepath.Dir(exe)
	if runtime.GOOS == "darwin" {
		// <bundle>/Contents/MacOS/<exe> -> <bundle>/Contents/Resources
		candidate := filepath.Join(dir, "..", "Resources")
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return filepath.Clean(candidate), nil
		}
	}
	return dir, nil
}

func backendFilename() string {
	if runtime.GOOS == "windows" {
		return backendName + ".exe"
	}
	return backendName
}
