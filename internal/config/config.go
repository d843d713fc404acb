package config

import (
	"errors"
	"strings"

	"github.com/quantmind-br/adc/internal/utils"
)

// ErrEmptyGitExecutable is returned when git.executable is blank
var ErrEmptyGitExecutable = errors.New("git.executable must not be empty")

// Config represents the application configuration
type Config struct {
	Git     GitConfig     `mapstructure:"git" yaml:"git"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// GitConfig contains settings for the external git executable
type GitConfig struct {
	Executable string `mapstructure:"executable" yaml:"executable"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// Validate validates the configuration, replacing unknown logging values
// with their defaults.
func (c *Config) Validate() error {
	c.Git.Executable = strings.TrimSpace(c.Git.Executable)
	if c.Git.Executable == "" {
		return ErrEmptyGitExecutable
	}
	if !utils.IsValidLogLevel(c.Logging.Level) {
		c.Logging.Level = DefaultLogLevel
	}
	if c.Logging.Format != "pretty" && c.Logging.Format != "json" {
		c.Logging.Format = DefaultLogFormat
	}
	return nil
}
