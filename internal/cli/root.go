package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gitbatch",
		Short: "Gitbatch runs a fixed batch of git commands in a repository",
		Long: `Gitbatch runs a fixed, ordered batch of commands (stage, commit, push)
in a git repository and reports each one as it goes.

The batch comes from .gitbatch.yaml at the repository root, or from --plan.
Without a plan file the built-in documentation update plan is used.`,
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.PersistentFlags().String("repo", "", "Repository directory (defaults to the plan's repo_root, then the working directory)")
	rootCmd.PersistentFlags().String("plan", "", "Plan file (defaults to <repo root>/.gitbatch.yaml)")
	rootCmd.PersistentFlags().Bool("no-log-file", false, "Do not write the log file")

	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newPlanCmd())
	rootCmd.AddCommand(newVersionCmd(version, commit, date))

	return rootCmd
}
