package builddriver

import (
	"context"
	"errors"
	"io"
	"os/exec"
)

// Command is one external process invocation.
type Command struct {
	Name   string
	Args   []string
	Dir    string
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Executor starts a command and waits for it. A process that starts and exits
// non-zero is reported through the exit code with a nil error; the error is
// reserved for failures to start or wait.
type Executor interface {
	Execute(ctx context.Context, c Command) (exitCode int, err error)
}

// OSExecutor runs commands with os/exec.
type OSExecutor struct{}

func (OSExecutor) Execute(ctx context.Context, c Command) (int, error) {
	cmd := exec.CommandContext(ctx, c.Name, c.Args...)
	cmd.Dir = c.Dir
	cmd.Stdin = c.Stdin
	cmd.Stdout = c.Stdout
	cmd.Stderr = c.Stderr

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return -1, err
}
