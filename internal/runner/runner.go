package runner

import (
	"context"
	"time"

	"github.com/google/uuid"

	gberrors "gitbatch.dev/gitbatch/internal/errors"
	"gitbatch.dev/gitbatch/internal/tui"
)

// DefaultMaxOutput is the number of characters of stdout/stderr echoed per command
const DefaultMaxOutput = 200

// CompletionBanner is printed once after every batch
const CompletionBanner = "✅ Update complete!"

// Runner executes commands sequentially in one directory
type Runner struct {
	splog     *tui.Splog
	executor  Executor
	dir       string
	timeout   time.Duration
	maxOutput int
}

// Option configures the runner.
type Option func(*Runner)

// WithExecutor replaces the process executor.
func WithExecutor(e Executor) Option {
	return func(r *Runner) {
		r.executor = e
	}
}

// WithDir sets the working directory for every command.
func WithDir(dir string) Option {
	return func(r *Runner) {
		r.dir = dir
	}
}

// WithTimeout sets the per-command time bound. Non-positive values keep the default.
func WithTimeout(d time.Duration) Option {
	return func(r *Runner) {
		if d > 0 {
			r.timeout = d
		}
	}
}

// WithMaxOutput sets how many characters of output are echoed. Non-positive values keep the default.
func WithMaxOutput(n int) Option {
	return func(r *Runner) {
		if n > 0 {
			r.maxOutput = n
		}
	}
}

// New creates a Runner that reports through splog
func New(splog *tui.Splog, opts ...Option) *Runner {
	r := &Runner{
		splog:     splog,
		executor:  ProcessExecutor{},
		timeout:   DefaultCommandTimeout,
		maxOutput: DefaultMaxOutput,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RunAll runs every command in order and prints a trace of each.
// Failures are reported and never stop the batch.
func (r *Runner) RunAll(ctx context.Context, commands []Command) *Report {
	if ctx == nil {
		ctx = context.Background()
	}
	report := &Report{
		RunID:   uuid.NewString(),
		Results: make([]Result, 0, len(commands)),
	}
	r.splog.Debug("batch started", "run_id", report.RunID, "commands", len(commands), "dir", r.dir)

	for i, c := range commands {
		res := r.runOne(ctx, c)
		r.splog.Debug("command finished",
			"run_id", report.RunID,
			"step", i+1,
			"argv", c.String(),
			"exit_code", res.ExitCode,
			"duration", res.Duration,
			"ok", res.OK(),
		)
		report.Results = append(report.Results, res)
	}

	r.splog.Debug("batch finished", "run_id", report.RunID, "failed", len(report.Failed()))
	r.splog.Newline()
	r.splog.Success(CompletionBanner)
	return report
}

func (r *Runner) runOne(ctx context.Context, c Command) Result {
	r.splog.Info("Running: %s", c.Trace())

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	argv := c.Argv()
	start := time.Now()
	res, err := r.executor.Execute(ctx, r.dir, argv)
	res.Command = c
	res.Duration = time.Since(start)

	if err != nil {
		res.Err = err
		if res.ExitCode == 0 {
			res.ExitCode = -1
		}
		r.splog.Fail("Exception: %v", err)
		return res
	}

	if res.Stdout != "" {
		r.splog.Info("%s", Truncate(res.Stdout, r.maxOutput))
	}
	if res.ExitCode != 0 {
		res.Err = gberrors.NewExitError(argv, res.Stdout, res.Stderr, res.ExitCode, nil)
		if res.Stderr != "" {
			r.splog.Fail("Error: %s", Truncate(res.Stderr, r.maxOutput))
		}
	}
	return res
}

// Truncate returns the first n characters of s. Non-positive n returns s unchanged.
func Truncate(s string, n int) string {
	if n <= 0 {
		return s
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
