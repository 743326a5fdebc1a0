package config

import (
	"fmt"
	"os"
	"strings"
)

// Environment variables consulted when the file leaves a value unset.
const (
	EnvLogLevel  = "TEXTFILTER_LOG_LEVEL"
	EnvLogFormat = "TEXTFILTER_LOG_FORMAT"
)

func (c *Config) normalize() error {
	return c.normalizeLogging()
}

func (c *Config) normalizeLogging() error {
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" || c.Logging.Level == defaultLogLevel {
		if value, ok := os.LookupEnv(EnvLogLevel); ok && strings.TrimSpace(value) != "" {
			c.Logging.Level = strings.ToLower(strings.TrimSpace(value))
		}
	}
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}

	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" || c.Logging.Format == defaultLogFormat {
		if value, ok := os.LookupEnv(EnvLogFormat); ok && strings.TrimSpace(value) != "" {
			c.Logging.Format = strings.ToLower(strings.TrimSpace(value))
		}
	}
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}

	if strings.TrimSpace(c.Logging.File) != "" {
		expanded, err := expandPath(strings.TrimSpace(c.Logging.File))
		if err != nil {
			return fmt.Errorf("logging.file: %w", err)
		}
		c.Logging.File = expanded
	}
	return nil
}
