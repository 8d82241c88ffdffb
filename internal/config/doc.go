// Package config loads the optional launcher configuration file.
//
// Everything has a default matching the behavior the desktop build has
// always shipped with, so the file only exists for installations that need
// to move the resource root, relocate the etc symlink, or stretch the
// readiness timeout for slow network filesystems.
package config
