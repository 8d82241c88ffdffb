//go:build windows

package hostenv

import (
	"os"
	"os/exec"
)

func setProcessGroup(cmd *exec.Cmd) {}

// Terminate forcefully kills the process. On Windows the launcher only ever
// owns the wsl.exe bridge process; killing it tears down the session.
func Terminate(p *os.Process) error {
	if p == nil {
		return nil
	}
	return p.Kill()
}
