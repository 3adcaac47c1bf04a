// Package config loads the server and REPL configuration from a YAML file.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v2"
)

// Config holds the settings for the toydb front ends. The core engine takes
// no configuration; everything here belongs to the hosting surfaces.
type Config struct {
	Addr     string `yaml:"addr"`      // TCP listen address, e.g. ":7433"
	LogLevel string `yaml:"log_level"` // debug | info | warn | error
	SeqURL   string `yaml:"seq_url"`   // Seq ingestion endpoint, empty disables the sink
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Addr:     ":7433",
		LogLevel: "info",
	}
}

// Load reads and decodes a YAML config file.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening config file: %w", err)
	}
	defer f.Close()

	cfg := Default()
	if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, nil
}

// Level maps the configured log level name onto a slog.Level. Unknown names
// fall back to info.
func (c *Config) Level() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
