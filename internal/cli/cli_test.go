package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"gitbatch.dev/gitbatch/internal/cli"
	"gitbatch.dev/gitbatch/internal/config"
	gberrors "gitbatch.dev/gitbatch/internal/errors"
	"gitbatch.dev/gitbatch/internal/runner"
	"gitbatch.dev/gitbatch/testhelpers"
)

// execute runs the root command in-process and returns its console output
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("DEBUG", "")
	t.Setenv("GIT_CONFIG_GLOBAL", os.DevNull)
	t.Setenv("GIT_CONFIG_NOSYSTEM", "1")

	var out bytes.Buffer
	rootCmd := cli.NewRootCmd("1.2.3", "abc123", "2026-01-01")
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append(args, "--no-log-file"))
	err := rootCmd.Execute()
	return out.String(), err
}

func writePlanFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plan.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestRunCommand(t *testing.T) {
	t.Run("stages, commits, and pushes", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.RemoteSceneSetup)
		bareDir := scene.Dir + "-origin.git"
		require.NoError(t, scene.Repo.WriteFile("docs/notes.md", "# Notes\n"))

		plan := writePlanFile(t, `
message: "docs: add notes"
steps:
  - [git, add, docs/notes.md]
  - [git, commit, -m, "{message}"]
  - [git, push, origin, main]
`)
		output, err := execute(t, "run", "--repo", scene.Dir, "--plan", plan)
		require.NoError(t, err, output)

		lines := strings.Split(output, "\n")
		require.Equal(t, "Running: git add docs/notes.md", lines[0])
		require.Equal(t, "Running: git commit -m", lines[1])
		require.Contains(t, output, "docs: add notes")
		require.Contains(t, output, "Running: git push origin\n")
		require.True(t, strings.HasSuffix(output, "\n"+runner.CompletionBanner+"\n"), output)
		require.NotContains(t, output, "Error:", "push progress on stderr is ignored when the exit code is zero")

		message, err := scene.Repo.LastCommitMessage()
		require.NoError(t, err)
		require.Equal(t, "docs: add notes", message)

		local, err := scene.Repo.GetRevision("HEAD")
		require.NoError(t, err)
		remote, err := testhelpers.RemoteRevision(bareDir, "main")
		require.NoError(t, err)
		require.Equal(t, local, remote)
	})

	t.Run("keeps going after failures and exits successfully", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		plan := writePlanFile(t, `
steps:
  - [git, definitely-not-a-command]
  - [gitbatch-no-such-binary, --flag]
  - [git, status, --porcelain]
`)
		output, err := execute(t, "run", "--repo", scene.Dir, "--plan", plan)
		require.NoError(t, err)

		require.Contains(t, output, "Running: git definitely-not-a-command\nError: git: 'definitely-not-a-command' is not a git command")
		require.Contains(t, output, "Running: gitbatch-no-such-binary --flag\nException: ")
		require.Contains(t, output, "Running: git status --porcelain\n")
		require.True(t, strings.HasSuffix(output, "\n"+runner.CompletionBanner+"\n"), output)
	})

	t.Run("strict mode reports failed steps", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		plan := writePlanFile(t, "steps:\n  - [git, definitely-not-a-command]\n  - [git, status]\n")

		output, err := execute(t, "run", "--repo", scene.Dir, "--plan", plan, "--strict")
		require.ErrorIs(t, err, gberrors.ErrBatchFailed)
		require.Contains(t, output, runner.CompletionBanner)
	})

	t.Run("strict mode succeeds when every step succeeds", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		plan := writePlanFile(t, "steps:\n  - [git, status]\n")

		_, err := execute(t, "run", "--repo", scene.Dir, "--plan", plan, "--strict")
		require.NoError(t, err)
	})

	t.Run("truncates output to --max-output", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		plan := writePlanFile(t, "steps:\n  - [git, log, -1, --format=tformat:abcdefghij]\n")

		output, err := execute(t, "run", "--repo", scene.Dir, "--plan", plan, "--max-output", "4")
		require.NoError(t, err)
		require.Contains(t, output, "\nabcd\n")
		require.NotContains(t, output, "abcde")
	})

	t.Run("reads the repository plan file", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		require.NoError(t, scene.Repo.WriteFile(config.PlanFileName, "steps:\n  - [git, rev-parse, --is-inside-work-tree]\n"))

		output, err := execute(t, "run", "--repo", scene.Dir)
		require.NoError(t, err)
		require.Equal(t, "Running: git rev-parse --is-inside-work-tree\ntrue\n\n\n"+runner.CompletionBanner+"\n", output)
	})

	t.Run("rejects an invalid plan before running anything", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		plan := writePlanFile(t, "steps:\n  - [git, commit, -m, \"{message}\"]\n")

		output, err := execute(t, "run", "--repo", scene.Dir, "--plan", plan)
		require.ErrorIs(t, err, config.ErrInvalidPlan)
		require.NotContains(t, output, "Running:")
	})
}

func TestPlanCommand(t *testing.T) {
	t.Run("init writes the default plan", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)

		output, err := execute(t, "plan", "init", "--repo", scene.Dir)
		require.NoError(t, err)
		require.Contains(t, output, "Wrote ")

		plan, err := config.LoadPlan(filepath.Join(scene.Dir, config.PlanFileName))
		require.NoError(t, err)
		require.Equal(t, config.DefaultPlan().Commands(), plan.Commands())
	})

	t.Run("init refuses to overwrite without --force", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		path := filepath.Join(scene.Dir, config.PlanFileName)
		require.NoError(t, scene.Repo.WriteFile(config.PlanFileName, "steps: []\n"))

		_, err := execute(t, "plan", "init", "--repo", scene.Dir)
		require.Error(t, err)
		require.Contains(t, err.Error(), "already exists")

		_, err = execute(t, "plan", "init", "--repo", scene.Dir, "--force")
		require.NoError(t, err)
		plan, err := config.LoadPlan(path)
		require.NoError(t, err)
		require.Len(t, plan.Steps, len(config.DefaultPlan().Steps))
	})

	t.Run("show prints the effective plan", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)

		output, err := execute(t, "plan", "show", "--repo", scene.Dir)
		require.NoError(t, err)
		require.Contains(t, output, "repo_root: ")
		require.Contains(t, output, "- [git, push, origin, main]")
		require.NotContains(t, output, "Running:")
	})
}

func TestVersionCommand(t *testing.T) {
	output, err := execute(t, "version")
	require.NoError(t, err)
	require.Equal(t, "gitbatch 1.2.3 (commit abc123, built 2026-01-01)\n", output)
}
