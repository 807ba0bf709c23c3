package main

import (
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewLoggerLevel(t *testing.T) {
	tests := []struct {
		level    string
		expected log.Level
	}{
		{"debug", log.DebugLevel},
		{"info", log.InfoLevel},
		{"warn", log.WarnLevel},
		{"error", log.ErrorLevel},
		{"loud", log.WarnLevel}, // Unknown falls back to warn
	}

	for _, tc := range tests {
		if got := newLogger(tc.level).GetLevel(); got != tc.expected {
			t.Errorf("newLogger(%q) level = %v, expected %v", tc.level, got, tc.expected)
		}
	}
}
