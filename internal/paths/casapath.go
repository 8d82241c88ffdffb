package paths

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"
)

// ErrSymlinkConflict reports that the space-workaround symlink location is
// occupied by something that is not a symlink. The occupant is never
// overwritten.
var ErrSymlinkConflict = errors.New("symlink path already exists")

// casaPathPrefix neutralizes the absolute path the backend baked in at build
// time; the backend joins its embedded prefix with this value, so enough
// parent escapes must come first.
const casaPathPrefix = "../../../../../"

// CasaPath builds the configuration-path override handed to the backend via
// the CASAPATH environment variable. The backend splits the value on spaces,
// which is why etcPath must already be space-free.
func CasaPath(etcPath string) string {
	return casaPathPrefix + etcPath + " linux"
}

// EtcDirectory locates the backend's etc dataset directory and returns a
// space-free path to it.
//
// The directory is canonicalized first (falling back to the raw path when
// canonicalization fails). A space-free result is used directly. Otherwise a
// stable symlink under symlinkBase is created idempotently: an existing
// symlink already targeting the resolved directory is reused, a stale
// symlink is replaced, and a non-symlink occupant fails the launch rather
// than being overwritten. Concurrent launchers serialize on a lock file next
// to the symlink so they cannot race the replace step.
func EtcDirectory(backendExecutable, symlinkBase, symlinkName string) (string, error) {
	etc := filepath.Join(filepath.Dir(backendExecutable), "..", "etc")
	if _, err := os.Stat(etc); err != nil {
		return "", fmt.Errorf("backend/etc directory %w", ErrNotFound)
	}

	resolved, err := filepath.EvalSymlinks(etc)
	if err != nil {
		resolved = filepath.Clean(etc)
	}
	if abs, err := filepath.Abs(resolved); err == nil {
		resolved = abs
	}

	if !strings.Contains(resolved, " ") {
		return resolved, nil
	}
	return spaceFreeLink(resolved, symlinkBase, symlinkName)
}

func spaceFreeLink(target, symlinkBase, symlinkName string) (string, error) {
	if err := os.MkdirAll(symlinkBase, 0o755); err != nil {
		return "", fmt.Errorf("create symlink base directory: %w", err)
	}
	linkPath := filepath.Join(symlinkBase, symlinkName)

	// Multiple launcher instances share the one well-known link location.
	lock := flock.New(linkPath + ".lock")
	if err := lock.Lock(); err != nil {
		return "", fmt.Errorf("lock symlink location: %w", err)
	}
	defer func() {
		_ = lock.Unlock()
	}()

	if info, err := os.Lstat(linkPath); err == nil {
		if info.Mode()&os.ModeSymlink == 0 {
			return "", fmt.Errorf("%w: %s", ErrSymlinkConflict, linkPath)
		}
		if existing, err := os.Readlink(linkPath); err == nil && existing == target {
			return linkPath, nil
		}
		if err := os.Remove(linkPath); err != nil {
			return "", fmt.Errorf("replace stale symlink: %w", err)
		}
	}

	if err := os.Symlink(target, linkPath); err != nil {
		// Symlink creation is best effort; the space-containing path at
		// least lets the backend report a meaningful failure.
		return target, nil
	}
	return linkPath, nil
}
