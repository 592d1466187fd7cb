package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Storage.Path == "" {
		t.Fatal("default storage path should not be empty")
	}
	if !strings.HasSuffix(cfg.Storage.Path, filepath.Join("tasks-tui", "tasks.txt")) {
		t.Errorf("default path = %q", cfg.Storage.Path)
	}
}

func TestLoadFrom_MissingFileFallsBackToDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if cfg.Storage.Path != Default().Storage.Path {
		t.Errorf("expected default path, got %q", cfg.Storage.Path)
	}
}

func TestLoadFrom(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "[storage]\npath = \"/tmp/somewhere/tasks.txt\"\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if cfg.Storage.Path != "/tmp/somewhere/tasks.txt" {
		t.Errorf("path = %q", cfg.Storage.Path)
	}
}

func TestLoadFrom_ExpandsHome(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "[storage]\npath = \"~/tasks/tasks.txt\"\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	home, _ := os.UserHomeDir()
	if cfg.Storage.Path != filepath.Join(home, "tasks", "tasks.txt") {
		t.Errorf("path = %q, want under %q", cfg.Storage.Path, home)
	}
}

func TestLoadFrom_BadToml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("storage = ["), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFrom(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestSaveToLoadFromRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg := &Config{Storage: StorageConfig{Path: "/data/tasks.txt"}}
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if loaded.Storage.Path != cfg.Storage.Path {
		t.Errorf("path = %q, want %q", loaded.Storage.Path, cfg.Storage.Path)
	}
}
