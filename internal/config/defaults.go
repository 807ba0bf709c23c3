package config

import (
	_ "embed"
)

//go:embed defaults/duckgen.yaml
var defaultYAML []byte

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Output: OutputConfig{
			Dir:    ".",
			Prefix: "duck_anim",
		},
		Log: LogConfig{
			Level: "warn",
		},
		Ledger: LedgerConfig{
			Enabled: false,
			Path:    "~/.duckgen/ledger.db",
		},
	}
}
