package runner

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"time"

	gberrors "gitbatch.dev/gitbatch/internal/errors"
)

// DefaultCommandTimeout bounds a single command when the context carries no deadline
const DefaultCommandTimeout = 30 * time.Second

// waitDelay caps how long output pipes may stay open after a process is killed
const waitDelay = time.Second

// Executor starts one process and waits for it.
// A non-zero exit is reported through Result.ExitCode with a nil error;
// the error is reserved for processes that could not be started or timed out.
type Executor interface {
	Execute(ctx context.Context, dir string, argv []string) (Result, error)
}

// ProcessExecutor runs commands as local child processes
type ProcessExecutor struct{}

// Execute runs argv in dir and captures its output as text
func (ProcessExecutor) Execute(ctx context.Context, dir string, argv []string) (Result, error) {
	if len(argv) == 0 {
		return Result{ExitCode: -1}, gberrors.NewLaunchError(argv, gberrors.ErrEmptyCommand)
	}
	if ctx == nil {
		ctx = context.Background()
	}

	// If no timeout/deadline is set in the context, add the default one
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, DefaultCommandTimeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Dir = dir
	cmd.WaitDelay = waitDelay

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result := Result{
		Command: NewCommand(argv...),
		Stdout:  stdout.String(),
		Stderr:  stderr.String(),
	}
	if err == nil {
		return result, nil
	}

	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		result.ExitCode = -1
		return result, gberrors.NewTimeoutError(argv, result.Stdout, result.Stderr, ctx.Err())
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		result.ExitCode = exitErr.ExitCode()
		return result, nil
	}

	result.ExitCode = -1
	return result, gberrors.NewLaunchError(argv, err)
}
