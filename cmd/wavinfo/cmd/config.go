// SPDX-License-Identifier: EPL-2.0

package cmd

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/gobeaver/beaver-kit/config"
)

const (
	OutputText = "text"
	OutputJSON = "json"
)

type Config struct {
	// Minimum log level written to stderr (debug, info, warn, error)
	LogLevel string `env:"WAVINFO_LOG_LEVEL,default:warn"`

	// Report format written to stdout (text, json)
	Output string `env:"WAVINFO_OUTPUT,default:text"`
}

// GetConfig returns config loaded from environment.
// The tags carry the full variable names, so no prefix is applied.
func GetConfig() (*Config, error) {
	cfg := &Config{}
	if err := config.Load(cfg, config.LoadOptions{Prefix: ""}); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate normalizes the config and rejects unknown values.
func (c *Config) Validate() error {
	c.Output = strings.ToLower(c.Output)
	switch c.Output {
	case OutputText, OutputJSON:
	default:
		return fmt.Errorf("unknown output format %q (want %s or %s)", c.Output, OutputText, OutputJSON)
	}

	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}
