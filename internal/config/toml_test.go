package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFileIsNotAnError(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Scan.CustomVar != nil || cfg.Plot.Height != nil {
		t.Fatalf("expected zero config for missing file, got %+v", cfg)
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[scan]
custom-var = "RX"

[plot]
height = 15

[coords]
"TrackX" = "TrackY"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Scan.CustomVar == nil || *cfg.Scan.CustomVar != "RX" {
		t.Fatalf("unexpected custom-var: %v", cfg.Scan.CustomVar)
	}
	if cfg.Plot.Height == nil || *cfg.Plot.Height != 15 {
		t.Fatalf("unexpected height: %v", cfg.Plot.Height)
	}
	if cfg.Coords["TrackX"] != "TrackY" {
		t.Fatalf("unexpected coords table: %v", cfg.Coords)
	}
}

func TestLoadConfigEmptyPath(t *testing.T) {
	if _, err := LoadConfig(""); err == nil {
		t.Fatalf("expected error for empty path")
	}
}
