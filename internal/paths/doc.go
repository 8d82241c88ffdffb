// Package paths locates everything the backend needs on disk: the backend
// executable, the frontend asset directory, the backend's etc dataset
// directory, and the optional native library directory.
//
// Each resolution fails independently with a named error so the caller can
// tell the user exactly which piece of the installation is missing. The etc
// directory carries an extra historical burden: the backend embeds a
// build-time absolute path and rejects override values containing spaces,
// which this package works around with a stable symlink under a well-known
// space-free location.
package paths
