// Package git provides read-only repository queries backed by go-git.
//
// It resolves the repository root that a batch runs in and summarizes the
// worktree state before a run. Commands that change the repository are never
// issued from here; they run as plan steps through the runner package.
package git
