// Package cliargs splits the launcher's raw argument vector into the
// launcher-private flags, an optional input path, and the opaque argument
// list forwarded to the backend.
//
// The grammar is deliberately loose: any flag-shaped token the launcher does
// not recognize belongs to the backend and is collected verbatim, together
// with a greedy lookahead for its value. A literal "--" stops all
// interpretation. Parsing performs no I/O and never fails; malformed port
// values are reported through the PortParseError field so the caller decides
// how to surface them.
package cliargs
