// Package tui provides terminal output for gitbatch.
//
// It handles:
//   - Structured logging to the console and a rotating log file (Splog)
//   - Terminal styling (using lipgloss, with colour only on terminals)
//   - Interactive prompts (using survey, bubbletea and bubbles)
package tui
