package cli

import (
	"github.com/spf13/cobra"

	"gitbatch.dev/gitbatch/internal/actions"
	"gitbatch.dev/gitbatch/internal/cli/helpers"
	"gitbatch.dev/gitbatch/internal/runtime"
)

// newRunCmd creates the run command
func newRunCmd() *cobra.Command {
	var (
		opts   actions.RunOptions
		strict bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run every step of the plan in order",
		Long: `Run every step of the plan in order, printing each command as it starts,
the first characters of its output, and any error. A failing step never stops
the batch. When all steps have been attempted a completion banner is printed.

By default the command exits successfully even when steps fail; pass --strict
to exit with an error instead.

Examples:
  gitbatch run
  gitbatch run --repo ~/src/docs --timeout 1m
  gitbatch run --select --edit-message --confirm`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				report, err := actions.RunAction(cmd.Context(), ctx, opts)
				if err != nil || report == nil {
					return err
				}
				if strict {
					return report.Err()
				}
				return nil
			})
		},
	}

	cmd.Flags().DurationVar(&opts.Timeout, "timeout", 0, "Time limit for each command (overrides the plan)")
	cmd.Flags().IntVar(&opts.MaxOutput, "max-output", 0, "Characters of output shown per command (overrides the plan)")
	cmd.Flags().BoolVar(&strict, "strict", false, "Exit with an error when any step fails")
	cmd.Flags().BoolVar(&opts.Confirm, "confirm", false, "Ask for confirmation before running")
	cmd.Flags().BoolVar(&opts.Select, "select", false, "Choose which steps to run")
	cmd.Flags().BoolVar(&opts.EditMessage, "edit-message", false, "Edit the commit message before running")

	return cmd
}
