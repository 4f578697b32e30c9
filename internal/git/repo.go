package git

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// ErrNotARepository indicates that a path is not inside a git worktree
var ErrNotARepository = errors.New("not a git repository")

// ResolveRepoRoot returns the worktree root of the repository containing path.
// An empty path means the current working directory.
func ResolveRepoRoot(path string) (string, error) {
	if path == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to get working directory: %w", err)
		}
		path = wd
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve path: %w", err)
	}

	repo, err := openRepository(absPath)
	if err != nil {
		return "", err
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrNotARepository, absPath, err)
	}

	return worktree.Filesystem.Root(), nil
}

func openRepository(path string) (*gogit.Repository, error) {
	repo, err := gogit.PlainOpenWithOptions(path, &gogit.PlainOpenOptions{
		DetectDotGit:          true,
		EnableDotGitCommonDir: true,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrNotARepository, path, err)
	}
	return repo, nil
}

// Summary describes the worktree a batch is about to run in
type Summary struct {
	Root     string
	Branch   string // empty when HEAD is detached
	Head     string // abbreviated commit, empty before the first commit
	Changed  int    // paths with staged, unstaged, or untracked changes
	Detached bool
	Remotes  []string // configured remote names, sorted
}

// Summarize reads the current branch and change count of the repository at root
func Summarize(root string) (*Summary, error) {
	repo, err := openRepository(root)
	if err != nil {
		return nil, err
	}

	summary := &Summary{Root: root}

	head, err := repo.Reference(plumbing.HEAD, false)
	if err != nil {
		return nil, fmt.Errorf("failed to read HEAD: %w", err)
	}
	if head.Type() == plumbing.SymbolicReference {
		summary.Branch = head.Target().Short()
	} else {
		summary.Detached = true
	}

	// Resolves only once the branch has a commit
	if resolved, err := repo.Head(); err == nil {
		summary.Head = resolved.Hash().String()[:7]
	} else if !errors.Is(err, plumbing.ErrReferenceNotFound) {
		return nil, fmt.Errorf("failed to resolve HEAD: %w", err)
	}

	remotes, err := repo.Remotes()
	if err != nil {
		return nil, fmt.Errorf("failed to list remotes: %w", err)
	}
	for _, remote := range remotes {
		summary.Remotes = append(summary.Remotes, remote.Config().Name)
	}
	sort.Strings(summary.Remotes)

	worktree, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("failed to get worktree: %w", err)
	}
	status, err := worktree.Status()
	if err != nil {
		return nil, fmt.Errorf("failed to get worktree status: %w", err)
	}
	for _, fileStatus := range status {
		if fileStatus.Staging != gogit.Unmodified || fileStatus.Worktree != gogit.Unmodified {
			summary.Changed++
		}
	}

	return summary, nil
}

// String renders the summary as a single log line
func (s *Summary) String() string {
	ref := s.Branch
	if s.Detached {
		ref = "detached HEAD"
	}
	if s.Head != "" {
		ref += " @ " + s.Head
	}
	remotes := "no remotes"
	if len(s.Remotes) > 0 {
		remotes = "remotes: " + strings.Join(s.Remotes, ", ")
	}
	return fmt.Sprintf("%s (%s, %d changed, %s)", s.Root, ref, s.Changed, remotes)
}
