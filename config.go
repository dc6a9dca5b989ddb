package logify

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
	"gopkg.in/yaml.v3"
)

// DefaultConfig returns a Config with both sinks disabled and the minimum
// level set to DefaultLevel. It is the recommended starting point when
// building a Config in code, since the Severity zero value is DebugLevel
// rather than the documented Info default.
func DefaultConfig() Config {
	return Config{Level: DefaultLevel}
}

// ReadConfig loads a Config from the YAML file at path and applies LOGIFY_*
// environment variable overrides on top of it.
//
// Example:
//
//	cfg, err := ReadConfig("logify.yml")
//	if err != nil {
//		// handle
//	}
//	logger, err := New(cfg)
func ReadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("logify: read config %s: %w", path, err)
	}
	return cfg, nil
}

// ReadEnvConfig loads a Config from LOGIFY_* environment variables alone,
// falling back to the documented defaults for anything unset.
func ReadEnvConfig() (Config, error) {
	cfg := DefaultConfig()
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("logify: read env config: %w", err)
	}
	return cfg, nil
}

// SetValue implements the cleanenv setter interface so that severity names in
// environment variables (e.g. LOGIFY_LEVEL=warn) parse into a Severity.
func (s *Severity) SetValue(value string) error {
	level, ok := ParseSeverity(value)
	if !ok {
		return fmt.Errorf("logify: unknown severity %q", value)
	}
	*s = level
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler so that severity names in YAML
// config files (e.g. "level: warn") parse into a Severity.
func (s *Severity) UnmarshalYAML(node *yaml.Node) error {
	var raw string
	if err := node.Decode(&raw); err != nil {
		return err
	}
	return s.SetValue(raw)
}
