package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the complete playbot configuration
type Config struct {
	Playground PlaygroundConfig `json:"playground" mapstructure:"playground"`
	Rustfmt    RustfmtConfig    `json:"rustfmt" mapstructure:"rustfmt"`
	Logging    LoggingConfig    `json:"logging" mapstructure:"logging"`
}

// PlaygroundConfig contains settings for the remote playground backends
type PlaygroundConfig struct {
	// BaseURL is the playground root; backend paths (/miri, /clippy, ...) hang off it
	BaseURL string `json:"baseUrl" mapstructure:"baseUrl"`
	// TimeoutMs bounds one outbound HTTP call
	TimeoutMs int `json:"timeoutMs" mapstructure:"timeoutMs"`
}

// RustfmtConfig contains settings for the local formatter
type RustfmtConfig struct {
	// Command is the rustfmt binary to execute; looked up on PATH if not absolute
	Command string `json:"command" mapstructure:"command"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Format string `json:"format" mapstructure:"format"`
	Level  string `json:"level" mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Playground: PlaygroundConfig{
			BaseURL:   "https://play.rust-lang.org",
			TimeoutMs: 30000,
		},
		Rustfmt: RustfmtConfig{
			Command: "rustfmt",
		},
		Logging: LoggingConfig{
			Format: "human",
			Level:  "info",
		},
	}
}

// LoadConfig loads configuration from playbot.yaml in the given directory.
// An empty dir means the standard locations: $XDG_CONFIG_HOME/playbot (or
// ~/.config/playbot) and the current directory. Environment variables with
// the PLAYBOT_ prefix override file values (PLAYBOT_PLAYGROUND_BASEURL etc.).
func LoadConfig(dir string) (*Config, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("playground.baseUrl", defaults.Playground.BaseURL)
	v.SetDefault("playground.timeoutMs", defaults.Playground.TimeoutMs)
	v.SetDefault("rustfmt.command", defaults.Rustfmt.Command)
	v.SetDefault("logging.format", defaults.Logging.Format)
	v.SetDefault("logging.level", defaults.Logging.Level)

	v.SetConfigName("playbot")
	v.SetConfigType("yaml")
	if dir != "" {
		v.AddConfigPath(dir)
	} else {
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			v.AddConfigPath(filepath.Join(xdg, "playbot"))
		} else if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "playbot"))
		}
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("PLAYBOT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// A missing file is fine, defaults and env apply
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Playground.BaseURL == "" {
		return &ConfigError{Field: "playground.baseUrl", Message: "must not be empty"}
	}
	if c.Playground.TimeoutMs <= 0 {
		return &ConfigError{Field: "playground.timeoutMs", Message: "must be positive"}
	}
	if c.Rustfmt.Command == "" {
		return &ConfigError{Field: "rustfmt.command", Message: "must not be empty"}
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return &ConfigError{Field: "logging.level", Message: "must be one of debug, info, warn, error"}
	}
	switch c.Logging.Format {
	case "json", "human":
	default:
		return &ConfigError{Field: "logging.format", Message: "must be json or human"}
	}
	return nil
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "config error in field '" + e.Field + "': " + e.Message
}
