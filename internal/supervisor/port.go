package supervisor

import (
	"fmt"
	"net"
)

// PickPort asks the kernel for a free loopback TCP port. The port is
// released again before the backend starts, which leaves a small window for
// another process to grab it; the readiness poll surfaces that as a launch
// failure rather than a hang.
func PickPort() (int, error) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return 0, fmt.Errorf("no free port available: %w", err)
	}
	defer ln.Close()
	return ln.Addr().(*net.TCPAddr).Port, nil
}
