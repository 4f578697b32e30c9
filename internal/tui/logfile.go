package tui

import (
	"os"
	"path/filepath"
)

// GetLogFilePath returns the path to the log file.
// If GITBATCH_LOG_FILE is set, uses that path.
// Otherwise, uses ~/.gitbatch/logs/gitbatch.log
func GetLogFilePath() string {
	if customPath := os.Getenv("GITBATCH_LOG_FILE"); customPath != "" {
		return customPath
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "gitbatch.log"
	}

	return filepath.Join(homeDir, ".gitbatch", "logs", "gitbatch.log")
}
