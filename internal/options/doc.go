// Package options validates backend command-line options against a static
// schema before the backend process is spawned, so a typo fails fast with an
// actionable message instead of a cryptic backend-side error.
//
// The schema mirrors the option surface of carta_backend. It is maintained
// by hand and must be updated whenever the backend gains or loses an option;
// keep it in sync with the backend release the launcher ships with.
package options
