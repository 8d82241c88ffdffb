// Command cartadesk launches and supervises the CARTA backend for a desktop
// session: it validates the invocation, resolves the installed backend and
// frontend, spawns the backend (natively or through the WSL bridge), waits
// for it to accept connections, and owns the shutdown sequence.
package main
