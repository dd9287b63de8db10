package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeConfig drops a config file into a temp dir and returns its path.
func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "logger.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, "level: warn\nquiet: true\nfile: ./app.log\n")
	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig returned unexpected error: %v", err)
	}
	if cfg.Level != "warn" || !cfg.Quiet || cfg.File != "./app.log" {
		t.Errorf("Unexpected config: %+v", cfg)
	}
}

func TestLoadConfigBadLevel(t *testing.T) {
	path := writeConfig(t, "level: verbose\n")
	if _, err := loadConfig(path); err == nil {
		t.Error("Expected an error for an unknown level name, got nil")
	} else if !strings.Contains(err.Error(), "verbose") {
		t.Errorf("Expected the error to name the bad level, got: %v", err)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := loadConfig(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("Expected an error for a missing config file, got nil")
	}
}

func TestLoadConfigBadYAML(t *testing.T) {
	path := writeConfig(t, "level: [unterminated\n")
	if _, err := loadConfig(path); err == nil {
		t.Error("Expected an error for malformed YAML, got nil")
	}
}
