package config

import (
	"os"
	"path/filepath"
)

// Default values
const (
	DefaultGitExecutable = "git"

	DefaultLogLevel  = "warn"
	DefaultLogFormat = "pretty"

	// EnvPrefix is the prefix for configuration environment variables
	EnvPrefix = "ADC"
)

// ConfigDir returns the config directory path
func ConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".adc"
	}
	return filepath.Join(home, ".adc")
}

// ConfigFilePath returns the config file path
func ConfigFilePath() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Git: GitConfig{
			Executable: DefaultGitExecutable,
		},
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}
