package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	t.Run("defaults match original constants", func(t *testing.T) {
		t.Chdir(t.TempDir())

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}

		if cfg.Catalog.URL != "https://discord.com/api/v9/applications/detectable" {
			t.Errorf("Catalog.URL = %q", cfg.Catalog.URL)
		}
		if !cfg.Denylist.Enabled {
			t.Error("Denylist.Enabled = false, want true by default")
		}
		if cfg.Denylist.URL == "" {
			t.Error("Denylist.URL empty, want LDNOOBW default")
		}
		if cfg.Output.Path != "games.v2.json" {
			t.Errorf("Output.Path = %q, want games.v2.json", cfg.Output.Path)
		}
		if cfg.History.Path != "" {
			t.Errorf("History.Path = %q, want disabled by default", cfg.History.Path)
		}
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Chdir(t.TempDir())
		t.Setenv("GAMESYNC_CATALOG__URL", "http://localhost:9999/detectable")
		t.Setenv("GAMESYNC_DENYLIST__ENABLED", "false")
		t.Setenv("GAMESYNC_HISTORY__PATH", "runs.db")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}

		if cfg.Catalog.URL != "http://localhost:9999/detectable" {
			t.Errorf("Catalog.URL = %q", cfg.Catalog.URL)
		}
		if cfg.Denylist.Enabled {
			t.Error("Denylist.Enabled = true, want false from env")
		}
		if cfg.History.Path != "runs.db" {
			t.Errorf("History.Path = %q, want runs.db", cfg.History.Path)
		}
	})

	t.Run("config file overrides defaults", func(t *testing.T) {
		dir := t.TempDir()
		yaml := []byte("output:\n  path: custom.json\ndenylist:\n  enabled: false\n")
		if err := os.WriteFile(filepath.Join(dir, "config.yaml"), yaml, 0o644); err != nil {
			t.Fatalf("WriteFile() error = %v", err)
		}
		t.Chdir(dir)

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}

		if cfg.Output.Path != "custom.json" {
			t.Errorf("Output.Path = %q, want custom.json", cfg.Output.Path)
		}
		if cfg.Denylist.Enabled {
			t.Error("Denylist.Enabled = true, want false from file")
		}
		// Untouched keys keep their defaults.
		if cfg.Catalog.URL == "" {
			t.Error("Catalog.URL empty, want default")
		}
	})
}
