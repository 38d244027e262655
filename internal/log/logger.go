package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Logger wraps the slog logger used across anicompare along with the file it writes to, if any.
type Logger struct {
	logger       *slog.Logger
	file         *os.File
	traceEnabled bool
}

// Config contains logging information used to set up the logging framework
type Config struct {
	// Log Level.  One of: trace, debug, info, warn, error
	Level string
	// Path to the file to log into.  Ignored when Stderr is set.
	FilePath string
	// Stderr sends logs to standard error instead of a file.  The TUI owns the terminal so this is only
	// useful for the non-interactive commands.
	Stderr bool
}

func New(config Config) (*Logger, error) {
	var (
		out  io.Writer = os.Stderr
		file *os.File
	)

	if !config.Stderr {
		dir := filepath.Dir(config.FilePath)
		if err := os.MkdirAll(dir, 0700); err != nil {
			return nil, err
		}

		f, err := os.OpenFile(config.FilePath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
		if err != nil {
			return nil, err
		}
		out, file = f, f
	}

	opts := &slog.HandlerOptions{
		Level: parseLogLevel(config.Level),
	}

	return &Logger{
		logger:       slog.New(slog.NewJSONHandler(out, opts)),
		file:         file,
		traceEnabled: strings.EqualFold(config.Level, "trace"),
	}, nil
}

// Close the log file, if the logger owns one
func (l *Logger) Close() {
	if l.file == nil {
		return
	}
	if err := l.file.Close(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error closing logger: %v\n", err)
	}
}

// Debug logs a message a debug Level
func (l *Logger) Debug(msg string, args ...any) {
	l.logger.Debug(msg, args...)
}

// Info logs a message at info Level
func (l *Logger) Info(msg string, args ...any) {
	l.logger.Info(msg, args...)
}

// Warn logs a message at warn Level
func (l *Logger) Warn(msg string, args ...any) {
	l.logger.Warn(msg, args...)
}

// Error logs a message at error Level.
func (l *Logger) Error(msg string, args ...any) {
	l.logger.Error(msg, args...)
}

// Trace logs at debug level when trace logging is enabled
func (l *Logger) Trace(msg string, args ...any) {
	if l.traceEnabled {
		l.logger.Debug("TRACE: "+msg, args...)
	}
}

// parseLogLevel is a helper to convert a string log Level into the slog version.  Defaults to info if a matching log
// Level cannot be found.
func parseLogLevel(lvl string) slog.Level {
	switch strings.ToLower(lvl) {
	case "debug", "trace":
		// Trace level is handled by this log package instead of slog
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
