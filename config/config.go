// Package config loads the optional orcals YAML configuration file. All
// fields have usable zero values, so a missing file means defaults.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
)

// Log controls server-side logging. Verbosity counts like repeated -v
// flags; File redirects log output away from the protocol channel.
type Log struct {
	Verbosity int    `yaml:"verbosity"`
	File      string `yaml:"file"`
}

// Diagnostics adjusts how findings are reported to clients.
type Diagnostics struct {
	// Suppress drops findings whose message contains any of these
	// substrings. Applied where findings are published, never inside
	// the parser.
	Suppress []string `yaml:"suppress"`
}

type Config struct {
	Log         Log         `yaml:"log"`
	Diagnostics Diagnostics `yaml:"diagnostics"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{}
}

// Load reads and decodes a YAML configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Suppressed reports whether a finding message matches the suppression
// list. Empty suppression entries never match.
func (c *Config) Suppressed(message string) bool {
	for _, s := range c.Diagnostics.Suppress {
		if s != "" && strings.Contains(message, s) {
			return true
		}
	}
	return false
}
