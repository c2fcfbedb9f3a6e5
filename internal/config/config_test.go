package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFromPath_Default(t *testing.T) {
	tmpDir := t.TempDir()

	cfg, err := LoadFromPath(tmpDir)
	if err != nil {
		t.Fatalf("LoadFromPath() failed: %v", err)
	}

	if !cfg.FileInclusion {
		t.Errorf("expected FileInclusion=true by default, got false")
	}
	if cfg.Theme != "default" {
		t.Errorf("expected Theme=%q, got %q", "default", cfg.Theme)
	}
	if cfg.ConfigPath != "" {
		t.Errorf("expected empty ConfigPath for default config, got %q", cfg.ConfigPath)
	}

	absPath, _ := filepath.Abs(tmpDir)
	if cfg.ProjectRoot != absPath {
		t.Errorf("expected ProjectRoot=%q, got %q", absPath, cfg.ProjectRoot)
	}
}

func TestLoadFromPath_FileInclusionDisabled(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, ConfigFileName)
	if err := os.WriteFile(configPath, []byte("fileInclusion: false\n"), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := LoadFromPath(tmpDir)
	if err != nil {
		t.Fatalf("LoadFromPath() failed: %v", err)
	}

	if cfg.FileInclusion {
		t.Errorf("expected FileInclusion=false, got true")
	}
	if cfg.ConfigPath != configPath {
		t.Errorf("expected ConfigPath=%q, got %q", configPath, cfg.ConfigPath)
	}
}

func TestLoadFromPath_CustomTheme(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, ConfigFileName)
	if err := os.WriteFile(configPath, []byte("theme: monokai\n"), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := LoadFromPath(tmpDir)
	if err != nil {
		t.Fatalf("LoadFromPath() failed: %v", err)
	}
	if cfg.Theme != "monokai" {
		t.Errorf("expected Theme=%q, got %q", "monokai", cfg.Theme)
	}
}

func TestLoadFromPath_InvalidTheme(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, ConfigFileName)
	if err := os.WriteFile(configPath, []byte("theme: nonexistent\n"), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	if _, err := LoadFromPath(tmpDir); err == nil {
		t.Fatal("expected error for invalid theme, got nil")
	}
}

func TestLoadFromPath_WalksUpDirectoryTree(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, ConfigFileName)
	if err := os.WriteFile(configPath, []byte("theme: dark\n"), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	nested := filepath.Join(tmpDir, "a", "b", "c")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("failed to create nested dir: %v", err)
	}

	cfg, err := LoadFromPath(nested)
	if err != nil {
		t.Fatalf("LoadFromPath() failed: %v", err)
	}
	if cfg.Theme != "dark" {
		t.Errorf("expected Theme=%q, got %q", "dark", cfg.Theme)
	}

	absTmp, _ := filepath.Abs(tmpDir)
	if cfg.ProjectRoot != absTmp {
		t.Errorf("expected ProjectRoot=%q, got %q", absTmp, cfg.ProjectRoot)
	}
}

func TestLoadFromPath_MalformedYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, ConfigFileName)
	if err := os.WriteFile(configPath, []byte("theme: [unterminated\n"), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	if _, err := LoadFromPath(tmpDir); err == nil {
		t.Fatal("expected error for malformed YAML, got nil")
	}
}
