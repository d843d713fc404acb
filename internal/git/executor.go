package git

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
)

// Outcome is the result of a command that was started.
// Exited is false when the process ended without an exit code, e.g. on a signal.
type Outcome struct {
	ExitCode int
	Exited   bool
}

// Success reports whether the process exited with code 0
func (o Outcome) Success() bool {
	return o.Exited && o.ExitCode == 0
}

// ExecRunner implements Executor with os/exec. The child inherits the
// standard streams of the current process unless they are overridden.
type ExecRunner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewExecRunner creates an ExecRunner wired to the process standard streams
func NewExecRunner() *ExecRunner {
	return &ExecRunner{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Run starts the command, waits for it and reports how it ended
func (r *ExecRunner) Run(ctx context.Context, c Command) (Outcome, error) {
	cmd := exec.CommandContext(ctx, c.Program, c.Args...)
	cmd.Env = append(os.Environ(), c.Env...)
	cmd.Dir = c.Dir
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	if err := cmd.Start(); err != nil {
		return Outcome{}, err
	}

	err := cmd.Wait()
	if err == nil {
		return Outcome{ExitCode: 0, Exited: true}, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		state := exitErr.ProcessState
		return Outcome{ExitCode: state.ExitCode(), Exited: state.Exited()}, nil
	}
	return Outcome{}, err
}
