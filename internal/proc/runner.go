// Package proc executes subprocesses with inherited stdio and a scoped
// environment overlay.
package proc

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// ExecRunner runs commands through os/exec with the parent's stdio. It
// implements engine.Runner.
type ExecRunner struct{}

// Run executes argv with extraEnv overlaid on the parent environment and
// returns the subprocess's exit code. A non-zero exit is not an error;
// failing to start the process is.
func (ExecRunner) Run(argv []string, extraEnv map[string]string) (int, error) {
	if len(argv) == 0 {
		return 0, fmt.Errorf("no command specified")
	}

	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	cmd.Env = os.Environ()
	for key, value := range extraEnv {
		cmd.Env = append(cmd.Env, key+"="+value)
	}

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return 0, fmt.Errorf("failed to execute %s: %w", argv[0], err)
}
