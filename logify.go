// Package logify provides a minimalist logging library with leveled messages,
// an optional console sink and an optional append-only file sink.
//
// Key features:
//   - Four severity levels (Debug, Info, Warn, Error) filtered by a minimum level
//   - ISO-8601 UTC timestamps with millisecond precision
//   - Per-severity callbacks that fire before the severity filter
//   - Console and file sinks, each individually enabled via Config
//   - Configuration from YAML files and environment variables
//   - Package-level default logger and configurable instances
package logify

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// New creates a new Logger instance from the provided configuration and options.
//
// When the file sink is enabled and a file path is configured, any pre-existing
// file at that path is removed; if cfg.ClearFileOnInit is additionally set, the
// file is recreated empty. After construction the file therefore is absent
// unless ClearFileOnInit was requested, in which case it exists with zero bytes.
// A missing LogFilePath with LogToFile set is not an error here; it surfaces
// as a *ConfigurationError on the first attempted write to the file sink.
//
// Parameters:
//   - cfg: the sink and filter configuration; see Config and DefaultConfig.
//   - opts: a variadic slice of Option functions to customize the logger
//     (e.g., WithConsoleWriter, WithTimeFormat).
//
// Returns:
//   - *Logger: the configured instance.
//   - error: a failure removing or recreating the log file during construction.
func New(cfg Config, opts ...Option) (*Logger, error) {
	l := &Logger{
		cfg:        cfg,
		console:    os.Stdout,
		timeFormat: DefaultTimeFormat,
		callbacks:  make(map[Severity]Callback, len(severityNames)),
	}
	for _, opt := range opts {
		opt(l)
	}
	if cfg.LogToFile && cfg.LogFilePath != "" {
		if err := os.Remove(cfg.LogFilePath); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("logify: reset log file %s: %w", cfg.LogFilePath, err)
		}
		if cfg.ClearFileOnInit {
			f, err := os.OpenFile(cfg.LogFilePath, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
			if err != nil {
				return nil, fmt.Errorf("logify: create log file %s: %w", cfg.LogFilePath, err)
			}
			if err := f.Close(); err != nil {
				return nil, fmt.Errorf("logify: create log file %s: %w", cfg.LogFilePath, err)
			}
		}
	}
	return l, nil
}

// WithConsoleWriter returns an Option that redirects the console sink to the
// given writer instead of os.Stdout. A nil writer is ignored.
//
// Example:
//
//	logger, _ := New(Config{LogToConsole: true}, WithConsoleWriter(&buf))
func WithConsoleWriter(w io.Writer) Option {
	return func(l *Logger) {
		if w != nil {
			l.console = w
		}
	}
}

// WithTimeFormat returns an Option that sets a custom timestamp layout for log
// lines. The layout should be specified using Go's reference time
// (Mon Jan 2 15:04:05 MST 2006). Timestamps are always rendered in UTC.
//
// Example:
//
//	logger, _ := New(Config{LogToConsole: true}, WithTimeFormat("15:04:05"))
func WithTimeFormat(format string) Option {
	return func(l *Logger) {
		if format != "" {
			l.timeFormat = format
		}
	}
}

// Level returns the minimum severity this Logger emits to its sinks.
func (l *Logger) Level() Severity {
	return l.cfg.Level
}

// On registers fn to run whenever a log call of the named severity is made.
// The callback fires before the severity filter, so it observes calls that the
// minimum level would otherwise suppress. At most one callback is held per
// severity; registering again replaces the previous one.
//
// Unrecognized severity names and nil callbacks are silently ignored, leaving
// existing registrations unchanged. Severity names are matched
// case-insensitively against the DEBUG, INFO, WARN and ERROR tags.
func (l *Logger) On(severity string, fn Callback) {
	level, ok := ParseSeverity(severity)
	if !ok || fn == nil {
		return
	}
	l.callbacks[level] = fn
}

// Log is the core function behind the per-severity methods. It dispatches the
// callback registered for the level (if any), applies the severity filter, and
// writes the formatted line to each enabled sink, file first, then console.
//
// The callback runs on the caller's stack before anything else; if it panics,
// the panic propagates and the filter, formatting and sink writes for that
// call never happen. Calls with no arguments produce no output.
//
// Returns:
//   - An error if a sink write fails; the Logger performs no retry or fallback.
func (l *Logger) Log(level Severity, args ...any) error {
	if level > ErrorLevel {
		return nil
	}
	if fn := l.callbacks[level]; fn != nil {
		fn(args...)
	}
	if level < l.cfg.Level || len(args) == 0 {
		return nil
	}
	line := l.format(level, args)
	if l.cfg.LogToFile {
		if err := l.appendFile(line); err != nil {
			return err
		}
	}
	if l.cfg.LogToConsole {
		if _, err := io.WriteString(l.console, line); err != nil {
			return err
		}
	}
	return nil
}

// format renders one complete log line: timestamp, bracketed severity tag and
// the arguments joined by single spaces with exactly one trailing newline.
func (l *Logger) format(level Severity, args []any) string {
	var b strings.Builder
	b.Grow(64)
	b.WriteString(time.Now().UTC().Format(l.timeFormat))
	b.WriteString(" [")
	b.WriteString(level.String())
	b.WriteString("] ")
	// Sprintln stringifies every value generically, separates them with single
	// spaces and appends the newline.
	b.WriteString(fmt.Sprintln(args...))
	return b.String()
}

// appendFile writes line to the configured log file. The file is opened,
// appended to and closed on every call; no handle is held across calls.
func (l *Logger) appendFile(line string) error {
	if l.cfg.LogFilePath == "" {
		return &ConfigurationError{Reason: "file sink enabled without a logFilePath"}
	}
	f, err := os.OpenFile(l.cfg.LogFilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	if _, err := f.WriteString(line); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Debug logs a debug-level message using the Logger instance.
//
// Example:
//
//	logger.Debug("cache warmed", 128, "entries")
func (l *Logger) Debug(args ...any) error {
	return l.Log(DebugLevel, args...)
}

// Debugf logs a formatted debug-level message using the Logger instance.
// It formats the message using the provided format string and arguments;
// a callback registered for the debug severity receives the rendered string
// as its single argument.
//
// Example:
//
//	logger.Debugf("debug value: %v", someValue)
func (l *Logger) Debugf(format string, args ...any) error {
	return l.Log(DebugLevel, fmt.Sprintf(format, args...))
}

// Info logs an informational message using the Logger instance.
func (l *Logger) Info(args ...any) error {
	return l.Log(InfoLevel, args...)
}

// Infof logs a formatted informational message using the Logger instance.
// It formats the message using the provided format string and arguments.
func (l *Logger) Infof(format string, args ...any) error {
	return l.Log(InfoLevel, fmt.Sprintf(format, args...))
}

// Warn logs a warning message using the Logger instance.
func (l *Logger) Warn(args ...any) error {
	return l.Log(WarnLevel, args...)
}

// Warnf logs a formatted warning message using the Logger instance.
// It formats the message using the provided format string and arguments.
func (l *Logger) Warnf(format string, args ...any) error {
	return l.Log(WarnLevel, fmt.Sprintf(format, args...))
}

// Error logs an error message using the Logger instance.
func (l *Logger) Error(args ...any) error {
	return l.Log(ErrorLevel, args...)
}

// Errorf logs a formatted error message using the Logger instance.
// It formats the message using the provided format string and arguments.
func (l *Logger) Errorf(format string, args ...any) error {
	return l.Log(ErrorLevel, fmt.Sprintf(format, args...))
}

// String returns the uppercase tag for the severity, or "UNKNOWN" for values
// outside the defined range.
func (s Severity) String() string {
	if int(s) < len(severityNames) {
		return severityNames[s]
	}
	return "UNKNOWN"
}

// ParseSeverity maps a severity name to its level. Matching is
// case-insensitive and ignores surrounding whitespace.
//
// Returns:
//   - Severity: the parsed level.
//   - bool: false when the name is not one of DEBUG, INFO, WARN, ERROR.
func ParseSeverity(name string) (Severity, bool) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "DEBUG":
		return DebugLevel, true
	case "INFO":
		return InfoLevel, true
	case "WARN":
		return WarnLevel, true
	case "ERROR":
		return ErrorLevel, true
	}
	return 0, false
}

// Debug logs a debug-level message using the package-level Default logger.
func Debug(args ...any) error {
	return Default.Log(DebugLevel, args...)
}

// Debugf logs a formatted debug-level message using the package-level Default logger.
func Debugf(format string, args ...any) error {
	return Default.Log(DebugLevel, fmt.Sprintf(format, args...))
}

// Info logs an informational message using the package-level Default logger.
func Info(args ...any) error {
	return Default.Log(InfoLevel, args...)
}

// Infof logs a formatted informational message using the package-level Default logger.
func Infof(format string, args ...any) error {
	return Default.Log(InfoLevel, fmt.Sprintf(format, args...))
}

// Warn logs a warning message using the package-level Default logger.
func Warn(args ...any) error {
	return Default.Log(WarnLevel, args...)
}

// Warnf logs a formatted warning message using the package-level Default logger.
func Warnf(format string, args ...any) error {
	return Default.Log(WarnLevel, fmt.Sprintf(format, args...))
}

// Error logs an error message using the package-level Default logger.
func Error(args ...any) error {
	return Default.Log(ErrorLevel, args...)
}

// Errorf logs a formatted error message using the package-level Default logger.
func Errorf(format string, args ...any) error {
	return Default.Log(ErrorLevel, fmt.Sprintf(format, args...))
}

// On registers a callback on the package-level Default logger. See Logger.On.
func On(severity string, fn Callback) {
	Default.On(severity, fn)
}
