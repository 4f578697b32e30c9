// Package helpers provides shared helper functions for CLI commands.
package helpers

import (
	"github.com/spf13/cobra"

	"gitbatch.dev/gitbatch/internal/runtime"
	"gitbatch.dev/gitbatch/internal/tui"
)

// Options reads the persistent flags shared by every command
func Options(cmd *cobra.Command) runtime.Options {
	repo, _ := cmd.Flags().GetString("repo")
	plan, _ := cmd.Flags().GetString("plan")
	noLogFile, _ := cmd.Flags().GetBool("no-log-file")

	opts := runtime.Options{
		RepoPath: repo,
		PlanPath: plan,
		Out:      cmd.OutOrStdout(),
	}
	if !noLogFile {
		opts.LogFile = tui.GetLogFilePath()
	}
	return opts
}

// Run is a helper that provides a runtime context to a command's execution function
func Run(cmd *cobra.Command, fn func(ctx *runtime.Context) error) error {
	ctx, err := runtime.Load(Options(cmd))
	if err != nil {
		return err
	}
	defer func() { _ = ctx.Close() }()
	return fn(ctx)
}
