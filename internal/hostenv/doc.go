// Package hostenv abstracts where the backend process actually executes.
//
// On Unix-like hosts the backend runs natively and paths pass through
// untouched. On Windows the backend is a Linux binary reached through the
// WSL bridge: every path crossing the boundary is rewritten from Windows
// addressing to the distribution's POSIX addressing, and the whole
// invocation is assembled as a single quoted shell line handed to wsl.exe.
//
// Both environments satisfy the same Environment contract; the caller picks
// one with Detect at startup and never branches on the platform again.
package hostenv
