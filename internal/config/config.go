package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Config represents application configuration
type Config struct {
	Log     LogConfig     `mapstructure:"log"`
	Display DisplayConfig `mapstructure:"display"`
}

// LogConfig represents logging configuration
type LogConfig struct {
	File  string `mapstructure:"file"`  // Empty means console logging
	Level string `mapstructure:"level"` // debug, info, warn, error
}

// DisplayConfig represents output formatting configuration
type DisplayConfig struct {
	ColumnWidth int    `mapstructure:"column_width"` // Width of the "all" table columns
	Prompt      string `mapstructure:"prompt"`
}

// Defaults returns the configuration used when no config file is present.
func Defaults() *Config {
	return &Config{
		Log: LogConfig{
			Level: "info",
		},
		Display: DisplayConfig{
			ColumnWidth: 20,
			Prompt:      "Enter a command: ",
		},
	}
}

// Load loads configuration from file. A missing file is not an error: the
// program runs fine on defaults.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.contact-book")
		v.AddConfigPath("/etc/contact-book")
	}

	v.SetDefault("log.level", "info")
	v.SetDefault("display.column_width", 20)
	v.SetDefault("display.prompt", "Enter a command: ")

	// Read environment variables
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return Defaults(), nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.Log.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be debug, info, warn or error, got '%s'", c.Log.Level)
	}

	// Column captions ("Contact name") need at least this much room
	if c.Display.ColumnWidth < 12 {
		return fmt.Errorf("display.column_width must be at least 12, got %d", c.Display.ColumnWidth)
	}

	return nil
}
