package tui

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/natefinch/lumberjack.v2"
)

// kindKey marks records that the console renders with a non-default style
const kindKey = "kind"

const kindSuccess = "success"

// simpleHandler is a custom slog handler that writes messages without timestamps or level prefixes
type simpleHandler struct {
	writer    io.Writer
	debugMode bool
	quiet     *bool // Pointer to quiet flag so it can be changed dynamically
	styles    *Styles
}

func (h *simpleHandler) Enabled(_ context.Context, level slog.Level) bool {
	// Debug messages only enabled in debug mode
	if level == slog.LevelDebug {
		return h.debugMode
	}
	return true
}

func (h *simpleHandler) Handle(_ context.Context, record slog.Record) error {
	if *h.quiet {
		return nil
	}
	msg := record.Message
	switch {
	case record.Level >= slog.LevelError:
		msg = h.styles.Error(msg)
	case hasKind(record, kindSuccess):
		msg = h.styles.Success(msg)
	}
	_, err := fmt.Fprintln(h.writer, msg)
	return err
}

func (h *simpleHandler) WithAttrs(_ []slog.Attr) slog.Handler {
	return h
}

func (h *simpleHandler) WithGroup(_ string) slog.Handler {
	return h
}

func hasKind(record slog.Record, kind string) bool {
	found := false
	record.Attrs(func(a slog.Attr) bool {
		if a.Key == kindKey && a.Value.String() == kind {
			found = true
			return false
		}
		return true
	})
	return found
}

// createLumberjackLogger creates a lumberjack logger with configuration from environment variables
func createLumberjackLogger(logFilePath string) *lumberjack.Logger {
	config := &lumberjack.Logger{
		Filename:   logFilePath,
		MaxSize:    1,  // megabytes
		MaxBackups: 2,  // old files kept
		MaxAge:     30, // days
		Compress:   false,
	}

	if maxSize, ok := positiveEnvInt("GITBATCH_LOG_MAX_SIZE"); ok {
		config.MaxSize = maxSize
	}
	if maxBackupsStr := os.Getenv("GITBATCH_LOG_MAX_BACKUPS"); maxBackupsStr != "" {
		if maxBackups, err := strconv.Atoi(maxBackupsStr); err == nil && maxBackups >= 0 {
			config.MaxBackups = maxBackups
		}
	}
	if maxAge, ok := positiveEnvInt("GITBATCH_LOG_MAX_AGE"); ok {
		config.MaxAge = maxAge
	}

	return config
}

func positiveEnvInt(name string) (int, bool) {
	raw := os.Getenv(name)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return 0, false
	}
	return v, true
}

// multiHandler fans out log records to multiple handlers
type multiHandler struct {
	handlers []slog.Handler
}

func (h *multiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (h *multiHandler) Handle(ctx context.Context, record slog.Record) error {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, record.Level) {
			if err := handler.Handle(ctx, record.Clone()); err != nil {
				return err
			}
		}
	}
	return nil
}

func (h *multiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newHandlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		newHandlers[i] = handler.WithAttrs(attrs)
	}
	return &multiHandler{handlers: newHandlers}
}

func (h *multiHandler) WithGroup(name string) slog.Handler {
	newHandlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		newHandlers[i] = handler.WithGroup(name)
	}
	return &multiHandler{handlers: newHandlers}
}

// Splog provides structured logging and console output
type Splog struct {
	logger    *slog.Logger
	logWriter io.WriteCloser // Lumberjack logger for file logging
	debug     bool
	quiet     bool
}

// NewSplogWithConfig creates a new splog instance writing to w, with optional file logging.
// Debug messages reach the console when the DEBUG environment variable is set.
func NewSplogWithConfig(w io.Writer, logFilePath string) (*Splog, error) {
	if w == nil {
		w = os.Stdout
	}
	splog := &Splog{debug: os.Getenv("DEBUG") != ""}

	consoleHandler := &simpleHandler{
		writer:    w,
		debugMode: splog.debug,
		quiet:     &splog.quiet,
		styles:    NewStyles(w),
	}
	handlers := []slog.Handler{consoleHandler}

	if logFilePath != "" {
		if err := os.MkdirAll(filepath.Dir(logFilePath), 0750); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}

		lumberjackLogger := createLumberjackLogger(logFilePath)
		splog.logWriter = lumberjackLogger

		fileHandler := slog.NewTextHandler(lumberjackLogger, &slog.HandlerOptions{
			Level: slog.LevelDebug, // Always log everything to file
			ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
				if a.Key == slog.TimeKey {
					return slog.Attr{Key: a.Key, Value: slog.StringValue(a.Value.Time().Format("2006-01-02 15:04:05.000"))}
				}
				return a
			},
		})
		handlers = append(handlers, fileHandler)
	}

	splog.logger = slog.New(&multiHandler{handlers: handlers})
	return splog, nil
}

// SetQuiet suppresses console output while an interactive prompt owns the terminal.
func (s *Splog) SetQuiet(quiet bool) {
	s.quiet = quiet
}

// IsQuiet returns whether the logger is in quiet mode.
func (s *Splog) IsQuiet() bool {
	return s.quiet
}

// DebugEnabled reports whether debug messages are shown on the console
func (s *Splog) DebugEnabled() bool {
	return s.debug
}

func (s *Splog) logMessage(level slog.Level, msg string, attrs ...any) {
	s.logger.Log(context.Background(), level, msg, attrs...)
}

func format(f string, args []interface{}) string {
	if len(args) == 0 {
		return f
	}
	return fmt.Sprintf(f, args...)
}

// Info writes an info message
// nolint // format string validation is handled internally via fmt.Sprintf
func (s *Splog) Info(f string, args ...interface{}) {
	s.logMessage(slog.LevelInfo, format(f, args))
}

// Newline writes a newline
func (s *Splog) Newline() {
	s.logMessage(slog.LevelInfo, "")
}

// Warn writes a warning message
// nolint // format string validation is handled internally via fmt.Sprintf
func (s *Splog) Warn(f string, args ...interface{}) {
	s.logMessage(slog.LevelWarn, "⚠️  "+format(f, args))
}

// Error writes an error message with the error marker
// nolint // format string validation is handled internally via fmt.Sprintf
func (s *Splog) Error(f string, args ...interface{}) {
	s.logMessage(slog.LevelError, "❌ "+format(f, args))
}

// Fail writes an error-level message verbatim
// nolint // format string validation is handled internally via fmt.Sprintf
func (s *Splog) Fail(f string, args ...interface{}) {
	s.logMessage(slog.LevelError, format(f, args))
}

// Success writes an info message rendered with the success style
// nolint // format string validation is handled internally via fmt.Sprintf
func (s *Splog) Success(f string, args ...interface{}) {
	s.logMessage(slog.LevelInfo, format(f, args), kindKey, kindSuccess)
}

// Debug writes a debug message with structured attributes
func (s *Splog) Debug(msg string, attrs ...any) {
	s.logMessage(slog.LevelDebug, msg, attrs...)
}

// Close closes the log file if one was opened
func (s *Splog) Close() error {
	if s.logWriter != nil {
		return s.logWriter.Close()
	}
	return nil
}
