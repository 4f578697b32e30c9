package git_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"gitbatch.dev/gitbatch/internal/git"
	"gitbatch.dev/gitbatch/testhelpers"
)

func TestResolveRepoRoot(t *testing.T) {
	t.Run("returns the root for a nested directory", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		nested := filepath.Join(scene.Dir, "docs", "guides")
		require.NoError(t, os.MkdirAll(nested, 0750))

		root, err := git.ResolveRepoRoot(nested)
		require.NoError(t, err)

		want, err := filepath.EvalSymlinks(scene.Dir)
		require.NoError(t, err)
		got, err := filepath.EvalSymlinks(root)
		require.NoError(t, err)
		require.Equal(t, want, got)
	})

	t.Run("rejects a directory outside any repository", func(t *testing.T) {
		_, err := git.ResolveRepoRoot(t.TempDir())
		require.ErrorIs(t, err, git.ErrNotARepository)
	})
}

func TestSummarize(t *testing.T) {
	t.Run("reports branch and changed paths", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		require.NoError(t, scene.Repo.WriteFile("docs/new.md", "new"))
		require.NoError(t, scene.Repo.WriteFile("README.md", "edited"))

		summary, err := git.Summarize(scene.Dir)
		require.NoError(t, err)
		require.Equal(t, "main", summary.Branch)
		require.False(t, summary.Detached)
		require.Len(t, summary.Head, 7)
		require.Equal(t, 2, summary.Changed)
		require.Contains(t, summary.String(), "main @ ")
	})

	t.Run("handles a repository without commits", func(t *testing.T) {
		scene := testhelpers.NewScene(t, nil)

		summary, err := git.Summarize(scene.Dir)
		require.NoError(t, err)
		require.Equal(t, "main", summary.Branch)
		require.Empty(t, summary.Head)
		require.Zero(t, summary.Changed)
		require.Empty(t, summary.Remotes)
		require.Contains(t, summary.String(), "no remotes")
	})

	t.Run("reports a detached HEAD", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		require.NoError(t, scene.Repo.CheckoutDetached("HEAD"))

		summary, err := git.Summarize(scene.Dir)
		require.NoError(t, err)
		require.True(t, summary.Detached)
		require.Empty(t, summary.Branch)
		require.Contains(t, summary.String(), "detached HEAD")
	})

	t.Run("lists remotes", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.RemoteSceneSetup)
		_, err := scene.Repo.CreateBareRemote("backup")
		require.NoError(t, err)

		summary, err := git.Summarize(scene.Dir)
		require.NoError(t, err)
		require.Equal(t, []string{"backup", "origin"}, summary.Remotes)
		require.Contains(t, summary.String(), "remotes: backup, origin")
	})
}
