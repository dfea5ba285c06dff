package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config holds the CLI settings. Values come from defaults, then the optional
// YAML file, then command-line flags.
type Config struct {
	Algorithm     string `yaml:"algorithm" validate:"oneof=astar idastar fringe dijkstra"`
	LogLevel      string `yaml:"log_level" validate:"oneof=debug info warn error"`
	LogFormat     string `yaml:"log_format" validate:"oneof=text json"`
	Workers       int    `yaml:"workers" validate:"gte=0"`
	MaxExpansions int    `yaml:"max_expansions" validate:"gte=0"`
	Verify        bool   `yaml:"verify"`
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		Algorithm: "astar",
		LogLevel:  "warn",
		LogFormat: "text",
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// LoadConfig reads the YAML file at path on top of DefaultConfig. An empty
// path yields the defaults.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()
	if path == "" {
		return config, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	config.normalize()
	if err := config.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return config, nil
}

// Validate checks every field against its allowed values.
func (c Config) Validate() error {
	return validate.Struct(c)
}

func (c *Config) normalize() {
	c.Algorithm = strings.ToLower(strings.TrimSpace(c.Algorithm))
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	c.LogFormat = strings.ToLower(strings.TrimSpace(c.LogFormat))
}

// Logger builds the slog logger described by the config, writing to w.
func (c Config) Logger(w io.Writer) *slog.Logger {
	var level slog.Level
	switch c.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelWarn
	}

	options := &slog.HandlerOptions{Level: level}
	if c.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, options))
	}
	return slog.New(slog.NewTextHandler(w, options))
}
