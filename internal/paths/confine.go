package paths

import (
	"path/filepath"
	"strings"

	"cartadesk/internal/hostenv"
)

// ConfineBase keeps the base directory inside the user-supplied top-level
// folder. When the base directory escapes it, the top-level folder itself is
// substituted rather than refusing to start; an in-scope default beats a
// failed launch. Both sides are compared in the execution environment's
// addressing so the check holds across the bridge.
func ConfineBase(env hostenv.Environment, baseDir, topLevel string) string {
	if topLevel == "" {
		return baseDir
	}

	base := baseDir
	root := topLevel
	if env != nil && env.Bridged() {
		translatedBase, errBase := env.TranslatePath(baseDir)
		translatedRoot, errRoot := env.TranslatePath(topLevel)
		if errBase != nil || errRoot != nil {
			return topLevel
		}
		base = translatedBase
		root = translatedRoot
	}

	if within(base, root) {
		return baseDir
	}
	return topLevel
}

func within(path, root string) bool {
	path = filepath.ToSlash(filepath.Clean(path))
	root = filepath.ToSlash(filepath.Clean(root))
	if path == root {
		return true
	}
	if !strings.HasSuffix(root, "/") {
		root += "/"
	}
	return strings.HasPrefix(path, root)
}
