package actions

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gitbatch.dev/gitbatch/internal/config"
	"gitbatch.dev/gitbatch/internal/git"
	"gitbatch.dev/gitbatch/internal/runner"
	"gitbatch.dev/gitbatch/internal/runtime"
	"gitbatch.dev/gitbatch/internal/tui"
)

// ErrNoStepsSelected is returned when step selection leaves nothing to run
var ErrNoStepsSelected = errors.New("no steps selected")

// RunOptions contains options for the run command
type RunOptions struct {
	Timeout     time.Duration // overrides the plan timeout when positive
	MaxOutput   int           // overrides the plan output limit when positive
	Select      bool
	EditMessage bool
	Confirm     bool
	Executor    runner.Executor // nil uses the process executor
}

// RunAction executes the plan's steps in the repository root.
// A nil report with a nil error means the user declined to run.
func RunAction(ctx context.Context, rt *runtime.Context, opts RunOptions) (*runner.Report, error) {
	splog := rt.Splog
	plan := rt.Plan

	if opts.Select && len(plan.Steps) > 0 {
		labels := make([]string, len(plan.Steps))
		for i, step := range plan.Steps {
			labels[i] = strings.Join(step, " ")
		}
		var indices []int
		err := whilePrompting(splog, func() (err error) {
			indices, err = tui.PromptSelect("Select steps to run:", labels)
			return err
		})
		if err != nil {
			return nil, fmt.Errorf("failed to select steps: %w", err)
		}
		if len(indices) == 0 {
			return nil, ErrNoStepsSelected
		}
		plan, err = plan.Select(indices)
		if err != nil {
			return nil, err
		}
	}

	if opts.EditMessage && plan.UsesMessage() {
		var message string
		err := whilePrompting(splog, func() (err error) {
			message, err = tui.PromptEditMessage(plan.Message)
			return err
		})
		if err != nil {
			return nil, fmt.Errorf("failed to edit message: %w", err)
		}
		edited := *plan
		edited.Message = message
		if err := edited.Validate(); err != nil {
			return nil, err
		}
		plan = &edited
	}

	// Status walks the whole worktree
	if splog.DebugEnabled() {
		if summary, err := git.Summarize(rt.RepoRoot); err == nil {
			splog.Debug("repository", "summary", summary.String())
		} else {
			splog.Debug("failed to summarize repository", "error", err)
		}
	}

	if opts.Confirm {
		var ok bool
		err := whilePrompting(splog, func() (err error) {
			ok, err = tui.PromptConfirm(fmt.Sprintf("Run %d commands in %s?", len(plan.Steps), rt.RepoRoot), true)
			return err
		})
		if err != nil {
			return nil, err
		}
		if !ok {
			splog.Info("Aborted.")
			return nil, nil
		}
	}

	return runner.New(splog, runnerOptions(rt, plan, opts)...).
		RunAll(ctx, runner.Commands(plan.Commands())), nil
}

// whilePrompting keeps console logging quiet while a prompt owns the terminal
func whilePrompting(splog *tui.Splog, prompt func() error) error {
	splog.SetQuiet(true)
	defer splog.SetQuiet(false)
	return prompt()
}

func runnerOptions(rt *runtime.Context, plan *config.Plan, opts RunOptions) []runner.Option {
	timeout := plan.Timeout()
	if opts.Timeout > 0 {
		timeout = opts.Timeout
	}
	maxOutput := plan.MaxOutputChars()
	if opts.MaxOutput > 0 {
		maxOutput = opts.MaxOutput
	}

	runnerOpts := []runner.Option{
		runner.WithDir(rt.RepoRoot),
		runner.WithTimeout(timeout),
		runner.WithMaxOutput(maxOutput),
	}
	if opts.Executor != nil {
		runnerOpts = append(runnerOpts, runner.WithExecutor(opts.Executor))
	}
	return runnerOpts
}
