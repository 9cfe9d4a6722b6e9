// Package cli implements the logic behind the waymark commands, kept out
// of cmd/ so it can be tested without cobra plumbing.
package cli

import (
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the project-local configuration file name.
const DefaultConfigFile = "waymark.yaml"

// Config holds project-level settings merged underneath command flags.
type Config struct {
	// Attributes are default parser attributes applied to every document,
	// overridden per-call by --attr flags.
	Attributes map[string]string `mapstructure:"attributes"`
	Serve      ServeConfig       `mapstructure:"serve"`
	Cache      CacheConfig       `mapstructure:"cache"`
}

// ServeConfig configures the HTTP server command.
type ServeConfig struct {
	Port    string `mapstructure:"port"`
	Metrics bool   `mapstructure:"metrics"`
}

// CacheConfig configures the optional Redis-backed assembly cache.
type CacheConfig struct {
	RedisURL string `mapstructure:"redis_url"`
	// TTLMinutes bounds how long a cached walkthrough stays fresh.
	// Zero means no expiry.
	TTLMinutes int `mapstructure:"ttl_minutes"`
}

// DefaultConfig returns the settings used when no config file exists.
func DefaultConfig() Config {
	return Config{
		Serve: ServeConfig{
			Port:    "8080",
			Metrics: true,
		},
	}
}

// LoadConfig reads the given YAML config file, falling back to defaults
// when the file does not exist. An empty path means DefaultConfigFile.
func LoadConfig(path string) (Config, error) {
	if path == "" {
		path = DefaultConfigFile
	}

	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var raw map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := mapstructure.Decode(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// MergeAttributes layers per-call attributes over the configured defaults.
// The result is a fresh map; neither input is modified.
func (c Config) MergeAttributes(overrides map[string]string) map[string]string {
	if len(c.Attributes) == 0 && len(overrides) == 0 {
		return nil
	}

	merged := make(map[string]string, len(c.Attributes)+len(overrides))
	for k, v := range c.Attributes {
		merged[k] = v
	}
	for k, v := range overrides {
		merged[k] = v
	}
	return merged
}
