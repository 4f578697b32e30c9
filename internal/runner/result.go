package runner

import (
	"fmt"
	"time"

	gberrors "gitbatch.dev/gitbatch/internal/errors"
)

// Result holds the outcome of one command invocation
type Result struct {
	Command  Command
	Stdout   string
	Stderr   string
	ExitCode int
	Duration time.Duration
	Err      error // launch failure, timeout, or non-zero exit
}

// OK reports whether the command ran and exited zero
func (r Result) OK() bool {
	return r.Err == nil && r.ExitCode == 0
}

// Report lists the results of a batch in execution order
type Report struct {
	RunID   string
	Results []Result
}

// Failed returns the results that did not succeed
func (r *Report) Failed() []Result {
	var failed []Result
	for _, res := range r.Results {
		if !res.OK() {
			failed = append(failed, res)
		}
	}
	return failed
}

// OK reports whether every command succeeded
func (r *Report) OK() bool {
	return len(r.Failed()) == 0
}

// Err returns ErrBatchFailed when any command failed, otherwise nil
func (r *Report) Err() error {
	failed := r.Failed()
	if len(failed) == 0 {
		return nil
	}
	return fmt.Errorf("%d of %d commands: %w", len(failed), len(r.Results), gberrors.ErrBatchFailed)
}
