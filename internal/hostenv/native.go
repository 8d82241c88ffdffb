package hostenv

import (
	"os"
	"os/exec"
)

// Native executes the backend directly on the host.
type Native struct{}

func (*Native) Name() string  { return "native" }
func (*Native) Bridged() bool { return false }

// TranslatePath is the identity for native execution.
func (*Native) TranslatePath(path string) (string, error) {
	return path, nil
}

// Command builds a direct invocation. The child inherits the launcher's
// environment plus the supplied variables, and is placed in its own process
// group so shutdown can reap it together with anything it forked.
func (*Native) Command(binary string, args []string, env []EnvVar) *exec.Cmd {
	cmd := exec.Command(binary, args...)
	cmd.Env = os.Environ()
	for _, v := range env {
		cmd.Env = append(cmd.Env, v.Name+"="+v.Value)
	}
	setProcessGroup(cmd)
	return cmd
}
