package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
skin = "dark"
strict = true
addr = ":9090"
mongo_uri = "mongodb://localhost:27017"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := loadConfigFile(path)
	if err != nil {
		t.Fatalf("loadConfigFile() error: %v", err)
	}

	if cfg.Skin != "dark" {
		t.Errorf("Skin = %q, want %q", cfg.Skin, "dark")
	}
	if !cfg.Strict {
		t.Error("Strict = false, want true")
	}
	if cfg.Addr != ":9090" {
		t.Errorf("Addr = %q, want %q", cfg.Addr, ":9090")
	}
	if cfg.MongoURI != "mongodb://localhost:27017" {
		t.Errorf("MongoURI = %q, want %q", cfg.MongoURI, "mongodb://localhost:27017")
	}
	if cfg.Redis != "" {
		t.Errorf("Redis = %q, want empty", cfg.Redis)
	}
}

func TestLoadConfigFileMissing(t *testing.T) {
	cfg, err := loadConfigFile(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("loadConfigFile() on missing file: %v", err)
	}
	if cfg != (Config{}) {
		t.Errorf("missing config file should yield zero Config, got %+v", cfg)
	}
}

func TestLoadConfigFileInvalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("skin = ["), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := loadConfigFile(path); err == nil {
		t.Error("loadConfigFile() should fail on malformed TOML")
	}
}
