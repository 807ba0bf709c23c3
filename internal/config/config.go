// Package config provides YAML-based configuration loading for duckgen.
package config

import "strings"

// Config contains all user-settable options.
// None of them affect the content of the generated frames.
type Config struct {
	Output OutputConfig `yaml:"output"`
	Log    LogConfig    `yaml:"log"`
	Ledger LedgerConfig `yaml:"ledger"`
}

// OutputConfig defines where frame files are written.
type OutputConfig struct {
	Dir    string `yaml:"dir"`    // Output directory, "." for the working directory
	Prefix string `yaml:"prefix"` // File name prefix, frames are <prefix>_NN.png
}

// LogConfig defines logging behavior.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// LedgerConfig defines the optional generation ledger.
type LedgerConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// Normalize fills empty fields with their defaults.
func (c *Config) Normalize() {
	def := DefaultConfig()
	if strings.TrimSpace(c.Output.Dir) == "" {
		c.Output.Dir = def.Output.Dir
	}
	if strings.TrimSpace(c.Output.Prefix) == "" {
		c.Output.Prefix = def.Output.Prefix
	}
	if strings.TrimSpace(c.Log.Level) == "" {
		c.Log.Level = def.Log.Level
	}
	if strings.TrimSpace(c.Ledger.Path) == "" {
		c.Ledger.Path = def.Ledger.Path
	}
}
