// Package log is the structured logging used across anicompare.  Commands install a process-wide Logger at startup
// (a file for the terminal UI, stderr for --json and serve) and every other package logs through the helpers below.
// Until a Logger is installed the helpers drop their messages, so library code and tests never need a logger.
package log

import "sync"

var (
	defaultLogger *Logger
	mu            sync.RWMutex
)

// SetDefaultLogger installs the process-wide logger.  Passing nil silences the package helpers again.
func SetDefaultLogger(logger *Logger) {
	mu.Lock()
	defaultLogger = logger
	mu.Unlock()
}

// DefaultLogger returns the installed logger, or nil when none is installed
func DefaultLogger() *Logger {
	mu.RLock()
	defer mu.RUnlock()
	return defaultLogger
}

// withDefault runs fn against the installed logger, if any
func withDefault(fn func(l *Logger)) {
	if logger := DefaultLogger(); logger != nil {
		fn(logger)
	}
}

func Debug(msg string, args ...any) {
	withDefault(func(l *Logger) { l.Debug(msg, args...) })
}

func Info(msg string, args ...any) {
	withDefault(func(l *Logger) { l.Info(msg, args...) })
}

func Warn(msg string, args ...any) {
	withDefault(func(l *Logger) { l.Warn(msg, args...) })
}

func Error(msg string, args ...any) {
	withDefault(func(l *Logger) { l.Error(msg, args...) })
}

// Trace is for per-request and per-keypress detail, such as AniList round trips and TUI input handling.  It is only
// written when the configured level is "trace".
func Trace(msg string, args ...any) {
	withDefault(func(l *Logger) { l.Trace(msg, args...) })
}
