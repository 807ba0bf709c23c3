package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	cfg, err := load("", nil)
	if err != nil {
		t.Fatalf("load() failed: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("embedded default = %+v, expected %+v", cfg, DefaultConfig())
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "custom.yaml", `
output:
  dir: ./frames
  prefix: hero
log:
  level: debug
ledger:
  enabled: true
  path: /tmp/ledger.db
`)

	cfg, err := load(path, nil)
	if err != nil {
		t.Fatalf("load() failed: %v", err)
	}

	if cfg.Output.Dir != "./frames" || cfg.Output.Prefix != "hero" {
		t.Errorf("output = %+v", cfg.Output)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("log level = %q", cfg.Log.Level)
	}
	if !cfg.Ledger.Enabled || cfg.Ledger.Path != "/tmp/ledger.db" {
		t.Errorf("ledger = %+v", cfg.Ledger)
	}
}

func TestLoadPartialFileIsNormalized(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "partial.yaml", "output:\n  dir: out\n")

	cfg, err := load(path, nil)
	if err != nil {
		t.Fatalf("load() failed: %v", err)
	}

	def := DefaultConfig()
	if cfg.Output.Dir != "out" {
		t.Errorf("Output.Dir = %q, expected out", cfg.Output.Dir)
	}
	if cfg.Output.Prefix != def.Output.Prefix {
		t.Errorf("Output.Prefix = %q, expected %q", cfg.Output.Prefix, def.Output.Prefix)
	}
	if cfg.Log.Level != def.Log.Level {
		t.Errorf("Log.Level = %q, expected %q", cfg.Log.Level, def.Log.Level)
	}
	if cfg.Ledger.Enabled {
		t.Error("ledger should stay disabled by default")
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := load(filepath.Join(dir, "missing.yaml"), nil)
	if err == nil || !strings.Contains(err.Error(), "failed to read") {
		t.Errorf("missing custom config: got %v", err)
	}

	bad := writeFile(t, dir, "bad.yaml", "output: [not, a, map")
	_, err = load(bad, nil)
	if err == nil || !strings.Contains(err.Error(), "failed to parse") {
		t.Errorf("malformed custom config: got %v", err)
	}
}

func TestLoadSearchOrder(t *testing.T) {
	dir := t.TempDir()
	bad := writeFile(t, dir, "bad.yaml", "log: [oops")
	first := writeFile(t, dir, "first.yaml", "output:\n  prefix: first\n")
	second := writeFile(t, dir, "second.yaml", "output:\n  prefix: second\n")
	missing := filepath.Join(dir, "missing.yaml")

	// Unreadable and malformed candidates are skipped
	cfg, err := load("", []string{missing, bad, first, second})
	if err != nil {
		t.Fatalf("load() failed: %v", err)
	}
	if cfg.Output.Prefix != "first" {
		t.Errorf("Output.Prefix = %q, expected the first readable candidate", cfg.Output.Prefix)
	}

	// Custom path wins over candidates
	cfg, err = load(second, []string{first})
	if err != nil {
		t.Fatalf("load() failed: %v", err)
	}
	if cfg.Output.Prefix != "second" {
		t.Errorf("Output.Prefix = %q, expected the custom path", cfg.Output.Prefix)
	}
}
