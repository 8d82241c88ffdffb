// Package supervisor owns the backend process for the lifetime of the
// launcher: it spawns the backend with the resolved paths and validated
// options, drains its output, polls the chosen TCP port until the backend
// accepts connections, and performs the idempotent shutdown sequence.
//
// The process handle never leaves this package. The GUI layer above only
// sees Ready and Shutdown, so there is exactly one place that can kill or
// leak the child.
package supervisor
