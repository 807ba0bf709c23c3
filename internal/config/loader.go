package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// localConfigPath is the config file looked up in the working directory.
const localConfigPath = "duckgen.yaml"

// Load loads the duckgen configuration.
// Search order: customPath -> ~/.duckgen/config.yaml -> ./duckgen.yaml -> embedded default
func Load(customPath string) (Config, error) {
	var candidates []string
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		candidates = append(candidates, userCfgPath)
	}
	candidates = append(candidates, localConfigPath)
	return load(customPath, candidates)
}

// load resolves customPath first, then the first readable candidate.
func load(customPath string, candidates []string) (Config, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := readFile(customPath)
		if err != nil {
			return Config{}, err
		}
		return cfg, nil
	}

	for _, path := range candidates {
		if cfg, err := readFile(path); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return DefaultConfig(), nil // Fallback to hardcoded if embed fails
	}
	cfg.Normalize()
	return cfg, nil
}

// readFile parses a single YAML config file.
func readFile(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	cfg.Normalize()
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".duckgen", filename)
}
