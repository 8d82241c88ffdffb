// Package logging assembles the structured slog loggers used across the
// launcher.
//
// It owns the console and JSON handlers and centralizes level plumbing so
// every component emits diagnostics with the same shape. The backend's own
// output does not pass through here: the supervisor copies it to the
// launcher's streams verbatim, since the backend already formats its lines.
package logging
