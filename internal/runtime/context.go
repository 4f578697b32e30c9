package runtime

import (
	"fmt"
	"io"
	"path/filepath"

	"gitbatch.dev/gitbatch/internal/config"
	"gitbatch.dev/gitbatch/internal/git"
	"gitbatch.dev/gitbatch/internal/tui"
)

// Options selects where the context comes from
type Options struct {
	RepoPath string    // repository directory; falls back to the plan's repo_root, then the working directory
	PlanPath string    // plan file; empty means <repo root>/.gitbatch.yaml or the default plan
	LogFile  string    // empty disables file logging
	Out      io.Writer // console output
}

// Context provides access to the plan and output for commands
type Context struct {
	Splog    *tui.Splog
	RepoRoot string
	Plan     *config.Plan
}

// NewContext creates a new context from already resolved parts
func NewContext(splog *tui.Splog, repoRoot string, plan *config.Plan) *Context {
	return &Context{
		Splog:    splog,
		RepoRoot: repoRoot,
		Plan:     plan,
	}
}

// Load resolves the repository root and plan, then opens the logger.
func Load(opts Options) (*Context, error) {
	var (
		plan *config.Plan
		err  error
	)

	repoPath := opts.RepoPath
	if opts.PlanPath != "" {
		plan, err = config.LoadPlan(opts.PlanPath)
		if err != nil {
			return nil, err
		}
		if repoPath == "" && plan.RepoRoot != "" {
			repoPath = plan.RepoRoot
			// A relative repo_root is relative to the plan file
			if !filepath.IsAbs(repoPath) {
				repoPath = filepath.Join(filepath.Dir(opts.PlanPath), repoPath)
			}
		}
	}

	repoRoot, err := git.ResolveRepoRoot(repoPath)
	if err != nil {
		return nil, err
	}

	if plan == nil {
		plan, err = config.LoadRepoPlan(repoRoot)
		if err != nil {
			return nil, err
		}
	}
	if err := plan.Validate(); err != nil {
		return nil, err
	}

	splog, err := tui.NewSplogWithConfig(opts.Out, opts.LogFile)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logging: %w", err)
	}

	return NewContext(splog, repoRoot, plan), nil
}

// Close releases the log file
func (c *Context) Close() error {
	if c.Splog == nil {
		return nil
	}
	return c.Splog.Close()
}
