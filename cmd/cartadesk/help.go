package main

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"cartadesk/internal/hostenv"
	"cartadesk/internal/paths"
)

// runBackendHelp delegates --help/--version to the backend binary itself so
// the displayed option surface always matches the shipped backend, then
// appends the launcher-specific flags. The backend's exit status decides
// ours.
func runBackendHelp(env hostenv.Environment, resourceDir string, version bool) error {
	backend, err := paths.BackendExecutable(resourceDir)
	if err != nil {
		return err
	}
	binary, err := env.TranslatePath(backend)
	if err != nil {
		return fmt.Errorf("backend executable: %w", err)
	}

	flag := "--help"
	if version {
		flag = "--version"
	}
	cmd := env.Command(binary, []string{flag}, nil)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	runErr := cmd.Run()

	if !version {
		fmt.Println()
		fmt.Println("Additional launcher flags:")
		fmt.Println(renderLauncherFlags())
	}

	if runErr != nil {
		var exitErr *exec.ExitError
		if errors.As(runErr, &exitErr) {
			return fmt.Errorf("backend %s exited with status %d", flag, exitErr.ExitCode())
		}
		return fmt.Errorf("run backend %s: %w", flag, runErr)
	}
	return nil
}
