package config

import (
	"fmt"
	"slices"
	"strings"
)

var logLevels = []string{"debug", "info", "warn", "error"}

type LogConfig struct {
	Level string `koanf:"level"`
}

// String returns a string representation of the log configuration.
func (c *LogConfig) String() string {
	var b strings.Builder
	b.WriteString("\n--- Log ---\n")
	b.WriteString(fmt.Sprintf("  level: %s\n", c.Level))
	return b.String()
}

// Validate accepts an empty level, which means info.
func (c *LogConfig) Validate() error {
	if c.Level == "" {
		return nil
	}
	if !slices.Contains(logLevels, strings.ToLower(c.Level)) {
		return fmt.Errorf("invalid log level %q, expected one of %v", c.Level, logLevels)
	}
	return nil
}
