// Package errors provides sentinel errors and custom error types for the gitbatch application.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common conditions
var (
	// ErrEmptyCommand indicates that a command has no executable token
	ErrEmptyCommand = errors.New("empty command")

	// ErrLaunchFailed indicates that a process could not be started
	ErrLaunchFailed = errors.New("failed to start process")

	// ErrTimeout indicates that a process did not finish within its time bound
	ErrTimeout = errors.New("command timed out")

	// ErrNonZeroExit indicates that a process ran to completion but reported failure
	ErrNonZeroExit = errors.New("command exited with non-zero status")

	// ErrBatchFailed indicates that at least one command in a batch did not succeed
	ErrBatchFailed = errors.New("one or more commands failed")

	// ErrInteractiveDisabled is returned when a prompt is requested without a terminal
	ErrInteractiveDisabled = errors.New("interactive prompts require a terminal")
)

// CommandError represents a failed command invocation
type CommandError struct {
	Kind     error
	Argv     []string
	Stdout   string
	Stderr   string
	ExitCode int
	Err      error
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("command %q", strings.Join(e.Argv, " "))
	switch e.Kind {
	case ErrNonZeroExit:
		msg += fmt.Sprintf(" exited with status %d", e.ExitCode)
	case ErrTimeout:
		msg += " timed out"
	case ErrLaunchFailed, ErrEmptyCommand:
		msg += " could not be started"
	default:
		msg += " failed"
	}
	if e.Err != nil {
		msg += fmt.Sprintf(": %v", e.Err)
	}
	return msg
}

// Is returns true if the target error is the sentinel for this error's kind
func (e *CommandError) Is(target error) bool {
	return e.Kind != nil && target == e.Kind
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// NewLaunchError creates a CommandError for a process that could not be started
func NewLaunchError(argv []string, err error) *CommandError {
	kind := ErrLaunchFailed
	if len(argv) == 0 {
		kind = ErrEmptyCommand
	}
	return &CommandError{
		Kind:     kind,
		Argv:     argv,
		ExitCode: -1,
		Err:      err,
	}
}

// NewTimeoutError creates a CommandError for a process killed by its deadline
func NewTimeoutError(argv []string, stdout, stderr string, err error) *CommandError {
	return &CommandError{
		Kind:     ErrTimeout,
		Argv:     argv,
		Stdout:   stdout,
		Stderr:   stderr,
		ExitCode: -1,
		Err:      err,
	}
}

// NewExitError creates a CommandError for a process that exited with a non-zero status
func NewExitError(argv []string, stdout, stderr string, exitCode int, err error) *CommandError {
	return &CommandError{
		Kind:     ErrNonZeroExit,
		Argv:     argv,
		Stdout:   stdout,
		Stderr:   stderr,
		ExitCode: exitCode,
		Err:      err,
	}
}
