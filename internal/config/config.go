// Package config loads settings in layers: struct defaults, an optional .env
// file, an optional YAML file, then environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/gndm/itunesSearch/internal/validation"
)

// DefaultSearchURL is the public iTunes Search API endpoint.
const DefaultSearchURL = "https://itunes.apple.com/search"

// ConfigPathEnvVar overrides the YAML config file location.
const ConfigPathEnvVar = "CONFIG_PATH"

// DefaultConfigPaths are searched in order when CONFIG_PATH is unset.
var DefaultConfigPaths = []string{"config.yaml", "config.yml"}

// Config is the full application configuration.
type Config struct {
	Search  SearchConfig  `koanf:"search"`
	Session SessionConfig `koanf:"session"`
	Logging LoggingConfig `koanf:"logging"`
}

// SearchConfig controls the search API client.
type SearchConfig struct {
	URL     string        `koanf:"url" validate:"required,http_url"`
	Timeout time.Duration `koanf:"timeout" validate:"min=1ms"`
	// Country is an optional two-letter store code sent as "country".
	Country string `koanf:"country" validate:"omitempty,len=2,alpha"`
	// Media optionally narrows the catalog, e.g. "music" or "movie".
	Media string `koanf:"media" validate:"omitempty,oneof=movie podcast music musicVideo audiobook shortFilm tvShow software ebook all"`
}

// SessionConfig controls the interactive loop.
type SessionConfig struct {
	// StrictSelection reports out-of-range numeric selections instead of
	// treating them as a new search term.
	StrictSelection bool `koanf:"strict_selection"`
}

// LoggingConfig controls the global logger.
type LoggingConfig struct {
	Level  string `koanf:"level" validate:"oneof=trace debug info warn warning error disabled off"`
	Format string `koanf:"format" validate:"oneof=console json"`
}

func defaultConfig() *Config {
	return &Config{
		Search: SearchConfig{
			URL:     DefaultSearchURL,
			Timeout: 10 * time.Second,
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "console",
		},
	}
}

// envMappings maps lower-cased environment variable names to koanf paths.
// Variables not listed are ignored.
var envMappings = map[string]string{
	"itunes_search_url": "search.url",
	"itunes_timeout":    "search.timeout",
	"itunes_country":    "search.country",
	"itunes_media":      "search.media",
	"strict_selection":  "session.strict_selection",
	"log_level":         "logging.level",
	"log_format":        "logging.format",
}

func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}

// Load builds the configuration from all layers and validates it.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// .env only fills variables that are not already set.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	if path := findConfigFile(); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// Validate checks every field rule.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c)
}

func findConfigFile() string {
	if p := os.Getenv(ConfigPathEnvVar); p != "" {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	for _, p := range DefaultConfigPaths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}
