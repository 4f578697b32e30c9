package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"gitbatch.dev/gitbatch/internal/cli/helpers"
	"gitbatch.dev/gitbatch/internal/config"
	"gitbatch.dev/gitbatch/internal/git"
	"gitbatch.dev/gitbatch/internal/runtime"
	"gitbatch.dev/gitbatch/internal/tui"
)

// newPlanCmd creates the plan command
func newPlanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Inspect and create plan files",
		Long: `Inspect and create plan files.

Examples:
  gitbatch plan show
  gitbatch plan init --force`,
	}

	cmd.AddCommand(newPlanShowCmd())
	cmd.AddCommand(newPlanInitCmd())

	return cmd
}

// newPlanShowCmd creates the plan show command
func newPlanShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the plan that run would execute",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				effective := *ctx.Plan
				effective.RepoRoot = ctx.RepoRoot
				data, err := effective.Marshal()
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			})
		},
	}
}

// newPlanInitCmd creates the plan init command
func newPlanInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default plan to .gitbatch.yaml",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			repo, _ := cmd.Flags().GetString("repo")
			repoRoot, err := git.ResolveRepoRoot(repo)
			if err != nil {
				return err
			}

			path := config.RepoPlanPath(repoRoot)
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			} else if err != nil && !errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("failed to check %s: %w", path, err)
			}

			if err := config.DefaultPlan().Save(path); err != nil {
				return fmt.Errorf("failed to write plan: %w", err)
			}

			splog, err := tui.NewSplogWithConfig(cmd.OutOrStdout(), "")
			if err != nil {
				return err
			}
			splog.Success("Wrote %s", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing plan file")

	return cmd
}
