package logify

// Predefined severity levels for logging, ordered by ordinal.
const (
	// DebugLevel represents debug-level messages for development diagnostics
	DebugLevel Severity = iota

	// InfoLevel indicates normal operational messages for tracking progress
	InfoLevel

	// WarnLevel signifies potential issues that don't disrupt core functionality
	WarnLevel

	// ErrorLevel denotes failures in specific operations or components
	ErrorLevel
)

// DefaultLevel is the minimum severity emitted when a Config leaves the level
// unspecified (see DefaultConfig).
const DefaultLevel = InfoLevel

// DefaultTimeFormat renders timestamps as ISO-8601 UTC with millisecond
// precision and a trailing "Z", e.g. "2026-08-31T10:42:07.123Z".
const DefaultTimeFormat = "2006-01-02T15:04:05.000Z07:00"

// severityNames holds the uppercase tag printed between brackets for each level.
var severityNames = [...]string{"DEBUG", "INFO", "WARN", "ERROR"}

// Default is a pre-configured Logger instance intended for general use.
// It writes to the console only and filters below DefaultLevel. The
// package-level Debug, Info, Warn, Error, their formatted variants and On
// all delegate to it.
var Default = func() *Logger {
	l, _ := New(Config{LogToConsole: true, Level: DefaultLevel})
	return l
}()
