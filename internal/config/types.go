// Package config loads and validates the querybridge project
// configuration. It is decoupled from CLI concerns so other tools can load
// the same file.
package config

import (
	"fmt"
	"sort"
)

// Default configuration values.
const (
	DefaultOutput = "table"
)

// SourceConfig describes one configured data source: which dialect driver
// handles it and the raw connection details handed to the driver. Details
// stay untyped here; the driver's SpecFromDetails owns validation.
type SourceConfig struct {
	Type    string         `koanf:"type"`
	Details map[string]any `koanf:"details"`
}

// Config is the full querybridge.yaml shape plus flag/env overrides.
type Config struct {
	Verbose bool   `koanf:"verbose"`
	Output  string `koanf:"output"`

	// Sources maps source names to their configuration.
	Sources map[string]SourceConfig `koanf:"sources"`

	// FileUsed is the config file the values came from, empty when the
	// configuration is defaults and overrides only.
	FileUsed string `koanf:"-"`
}

// SourceNames returns the configured source names (sorted).
func (c *Config) SourceNames() []string {
	names := make([]string, 0, len(c.Sources))
	for name := range c.Sources {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Source resolves a source by name. An empty name selects the sole
// configured source when exactly one exists.
func (c *Config) Source(name string) (SourceConfig, error) {
	if name == "" {
		if len(c.Sources) == 1 {
			for _, src := range c.Sources {
				return src, nil
			}
		}
		return SourceConfig{}, fmt.Errorf("no source selected; configured sources: %v", c.SourceNames())
	}
	src, ok := c.Sources[name]
	if !ok {
		return SourceConfig{}, fmt.Errorf("unknown source %q; configured sources: %v", name, c.SourceNames())
	}
	return src, nil
}

// Validate checks structural validity: every source needs a dialect type.
// Whether the type resolves to a registered driver is the registry's call.
func (c *Config) Validate() error {
	for name, src := range c.Sources {
		if src.Type == "" {
			return fmt.Errorf("source %q: type is required", name)
		}
	}
	return nil
}
