package paths

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// ErrBadInputPath reports an unusable user-supplied input path.
var ErrBadInputPath = errors.New("requested file or directory does not exist")

// BaseDirectory derives the backend's working base directory from the
// optional input path: a file yields its parent directory, a directory is
// used as-is. Without an input path the current directory is used, except
// when launched from Finder on macOS (cwd is "/") where the home directory
// is a saner default.
func BaseDirectory(inputPath string) (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("determine working directory: %w", err)
	}

	if inputPath != "" {
		candidate := inputPath
		if !filepath.IsAbs(candidate) {
			candidate = filepath.Join(cwd, candidate)
		}
		info, err := os.Stat(candidate)
		if err != nil {
			return "", ErrBadInputPath
		}
		switch {
		case info.Mode().IsRegular():
			return filepath.Dir(candidate), nil
		case info.IsDir():
			return candidate, nil
		default:
			return "", errors.New("requested path is neither a file nor a directory")
		}
	}

	if runtime.GOOS == "darwin" && cwd == "/" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", errors.New("HOME directory not found")
		}
		return home, nil
	}
	return cwd, nil
}
