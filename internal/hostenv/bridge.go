package hostenv

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Bridge executes the backend inside a WSL distribution reached from a
// Windows host. Paths are rewritten to the distribution's POSIX addressing
// and the invocation travels as one quoted shell line, because argument and
// environment boundaries do not survive the wsl.exe hop individually.
type Bridge struct {
	// Distribution optionally pins a WSL distribution; empty uses the
	// default one.
	Distribution string
}

func (*Bridge) Name() string  { return "wsl" }
func (*Bridge) Bridged() bool { return true }

// TranslatePath rewrites a Windows path to the POSIX form seen inside WSL:
// extended-length and WSL UNC prefixes are stripped first, then drive-letter
// absolute paths map onto /mnt/<drive>. Paths that are already POSIX pass
// through.
func (*Bridge) TranslatePath(path string) (string, error) {
	return translateWindowsPath(path)
}

// Command assembles the invocation as a single shell line delegated to
// wsl.exe. Environment variables become inline assignments so they reach
// the backend without WSLENV plumbing.
func (b *Bridge) Command(binary string, args []string, env []EnvVar) *exec.Cmd {
	line := buildShellLine(binary, args, env)

	wslArgs := make([]string, 0, 4)
	if b.Distribution != "" {
		wslArgs = append(wslArgs, "--distribution", b.Distribution)
	}
	wslArgs = append(wslArgs, "bash", "-c", line)

	cmd := exec.Command("wsl.exe", wslArgs...)
	cmd.Env = os.Environ()
	setProcessGroup(cmd)
	return cmd
}

const extendedLengthPrefix = `\\?\`

var wslUNCPrefixes = []string{`\\wsl$\`, `\\wsl.localhost\`}

func translateWindowsPath(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("%w: empty path", ErrPathTranslation)
	}

	trimmed := strings.TrimPrefix(path, extendedLengthPrefix)

	// A WSL UNC path points back inside the distribution: drop the share
	// prefix and the distribution name, keep the rooted remainder.
	for _, prefix := range wslUNCPrefixes {
		if !strings.HasPrefix(trimmed, prefix) {
			continue
		}
		rest := strings.TrimPrefix(trimmed, prefix)
		if idx := strings.IndexByte(rest, '\\'); idx >= 0 {
			return "/" + strings.ReplaceAll(rest[idx+1:], `\`, "/"), nil
		}
		return "/", nil
	}

	// Already POSIX, nothing to do.
	if strings.HasPrefix(trimmed, "/") {
		return trimmed, nil
	}

	if len(trimmed) >= 2 && trimmed[1] == ':' && isDriveLetter(trimmed[0]) {
		drive := strings.ToLower(string(trimmed[0]))
		rest := strings.ReplaceAll(trimmed[2:], `\`, "/")
		rest = strings.TrimPrefix(rest, "/")
		if rest == "" {
			return "/mnt/" + drive, nil
		}
		return "/mnt/" + drive + "/" + rest, nil
	}

	return "", fmt.Errorf("%w: cannot translate %q to a WSL path", ErrPathTranslation, path)
}

func isDriveLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// buildShellLine renders env assignments, the binary, and every argument as
// individually quoted words of one bash command line.
func buildShellLine(binary string, args []string, env []EnvVar) string {
	words := make([]string, 0, len(env)+len(args)+1)
	for _, v := range env {
		words = append(words, v.Name+"="+shellQuote(v.Value))
	}
	words = append(words, shellQuote(binary))
	for _, arg := range args {
		words = append(words, shellQuote(arg))
	}
	return strings.Join(words, " ")
}

// shellQuote wraps a value in single quotes, escaping embedded single
// quotes so the value survives bash re-parsing verbatim.
func shellQuote(value string) string {
	return "'" + strings.ReplaceAll(value, "'", `'\''`) + "'"
}
