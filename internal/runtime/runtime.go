package runtime

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/exec"
	"syscall"
)

// ErrLaunch is matched by every LaunchError.
var ErrLaunch = errors.New("launch failure")

// LaunchError reports a child process that could not be started.
type LaunchError struct {
	Driver string
	Err    error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("starting %q: %v", e.Driver, e.Err)
}

func (e *LaunchError) Unwrap() error { return e.Err }

// Is reports whether target is ErrLaunch.
func (e *LaunchError) Is(target error) bool {
	return target == ErrLaunch
}

// NotFound reports whether the driver executable could not be located.
func (e *LaunchError) NotFound() bool {
	return errors.Is(e.Err, exec.ErrNotFound) || errors.Is(e.Err, fs.ErrNotExist)
}

// Runner executes a command line as a child process.
type Runner struct {
	// Stdin, Stdout and Stderr can be set for testing; defaults to the
	// wrapper's own streams.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Run starts argv[0] with the remaining elements as arguments and waits for it
// to exit. It returns the child's exit code; a child killed by a signal yields
// 128 plus the signal number. The error is non-nil only when the child could
// not be started, and is then a *LaunchError.
func (r *Runner) Run(ctx context.Context, argv []string) (int, error) {
	if len(argv) == 0 {
		return 0, &LaunchError{Err: errors.New("empty command")}
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Stdin = r.Stdin
	if cmd.Stdin == nil {
		cmd.Stdin = os.Stdin
	}
	cmd.Stdout = r.Stdout
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	cmd.Stderr = r.Stderr
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	if err := cmd.Start(); err != nil {
		return 0, &LaunchError{Driver: argv[0], Err: err}
	}

	err := cmd.Wait()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitCode(exitErr), nil
	}
	// Wait fails without an ExitError only on stream copy errors, after the
	// child has exited.
	if cmd.ProcessState != nil {
		return cmd.ProcessState.ExitCode(), nil
	}
	return 0, fmt.Errorf("waiting for %q: %w", argv[0], err)
}

// exitCode maps a finished child to the code the wrapper exits with.
func exitCode(exitErr *exec.ExitError) int {
	if ws, ok := exitErr.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		return 128 + int(ws.Signal())
	}
	return exitErr.ExitCode()
}
