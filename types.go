package logify

import "io"

// Severity defines the logging severity level as an unsigned 32-bit integer.
// Higher values indicate higher priority messages; only messages at or above
// a Logger's configured minimum level reach its sinks.
type Severity uint32

// Config holds the construction options for a Logger instance. The struct tags
// allow a Config to be populated from a YAML file and/or environment variables
// via ReadConfig and ReadEnvConfig; a Config may just as well be built as a
// plain literal and passed to New directly.
type Config struct {
	// LogToFile enables the file sink. LogFilePath must be set for writes to
	// the file sink to succeed; the check happens at write time, not here.
	LogToFile bool `yaml:"logToFile" env:"LOGIFY_LOG_TO_FILE" env-default:"false"`

	// LogToConsole enables the console sink (standard output by default).
	LogToConsole bool `yaml:"logToConsole" env:"LOGIFY_LOG_TO_CONSOLE" env-default:"false"`

	// LogFilePath is the path of the append-only log file used by the file sink.
	LogFilePath string `yaml:"logFilePath" env:"LOGIFY_LOG_FILE_PATH"`

	// Level is the minimum severity emitted to the sinks. Messages below it are
	// filtered out after callback dispatch. No env-default tag: DebugLevel is
	// the Severity zero value, and cleanenv would overwrite a zero-valued field
	// with the default; the Info default comes from DefaultConfig instead.
	Level Severity `yaml:"level" env:"LOGIFY_LEVEL"`

	// ClearFileOnInit recreates the file at LogFilePath as an empty file during
	// construction. Without it, any pre-existing file is removed and the file
	// reappears on the first write.
	ClearFileOnInit bool `yaml:"clearFileOnInit" env:"LOGIFY_CLEAR_FILE_ON_INIT" env-default:"false"`
}

// Callback is a user-supplied hook bound to a single severity via On. It runs
// synchronously on the caller's stack with the exact argument sequence of the
// triggering log call, before the severity filter is applied.
type Callback func(args ...any)

// Logger represents a logging instance. Its configuration is fixed at
// construction; only the callback table may be mutated afterwards, via On.
type Logger struct {
	cfg        Config                // Sink and filter configuration, immutable after New.
	console    io.Writer             // Destination of the console sink (default os.Stdout).
	timeFormat string                // Timestamp layout (Go reference time format).
	callbacks  map[Severity]Callback // At most one callback per severity.
}

// Option defines a functional option for configuring a Logger instance during
// creation. Each Option is a function that accepts a pointer to a Logger and
// modifies its configuration.
type Option func(*Logger)

// ConfigurationError reports a Logger misconfiguration detected on the write
// path, such as an enabled file sink without a file path.
type ConfigurationError struct {
	Reason string
}

// Error implements the error interface.
func (e *ConfigurationError) Error() string {
	return "logify: " + e.Reason
}
