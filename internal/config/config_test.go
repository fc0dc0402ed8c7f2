package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Paintersrp/qb/internal/config"
)

func writeConfig(t *testing.T, home string, data map[string]any) {
	t.Helper()

	configPath := config.GetConfigPath(home)
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		t.Fatalf("failed to create config directory: %v", err)
	}

	raw, err := yaml.Marshal(data)
	if err != nil {
		t.Fatalf("failed to marshal config data: %v", err)
	}

	if err := os.WriteFile(configPath, raw, 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
}

func TestEnsureConfigExistsWritesDefaults(t *testing.T) {
	home := t.TempDir()

	if err := config.EnsureConfigExists(home); err != nil {
		t.Fatalf("expected config to be created: %v", err)
	}

	cfg, err := config.Load(home)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.KeywordLimit != config.DefaultKeywordLimit {
		t.Fatalf("expected keyword limit %d, got %d", config.DefaultKeywordLimit, cfg.KeywordLimit)
	}
	if cfg.CloseDelay != 600*time.Millisecond {
		t.Fatalf("expected close delay 600ms, got %v", cfg.CloseDelay)
	}
	if len(cfg.Breakpoints) != 2 || cfg.Breakpoints[0] != 768 || cfg.Breakpoints[1] != 1536 {
		t.Fatalf("unexpected breakpoints: %v", cfg.Breakpoints)
	}
	if cfg.NotesDir == "" {
		t.Fatalf("expected notes dir to default under the config directory")
	}
}

func TestLoadReadsDurationsAndOverrides(t *testing.T) {
	home := t.TempDir()
	writeConfig(t, home, map[string]any{
		"keyword_limit": 5,
		"close_delay":   "250ms",
		"success_ttl":   "1s",
		"cell_width":    10,
		"data_file":     "/tmp/board.json",
	})

	cfg, err := config.Load(home)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.KeywordLimit != 5 {
		t.Fatalf("expected keyword limit 5, got %d", cfg.KeywordLimit)
	}
	if cfg.CloseDelay != 250*time.Millisecond {
		t.Fatalf("expected close delay 250ms, got %v", cfg.CloseDelay)
	}
	if cfg.SuccessTTL != time.Second {
		t.Fatalf("expected success ttl 1s, got %v", cfg.SuccessTTL)
	}
	if cfg.HoverDelay != config.DefaultHoverDelay {
		t.Fatalf("expected default hover delay, got %v", cfg.HoverDelay)
	}
	if cfg.CellWidth != 10 {
		t.Fatalf("expected cell width 10, got %d", cfg.CellWidth)
	}
	if cfg.DataFile != "/tmp/board.json" {
		t.Fatalf("expected data file to be read, got %q", cfg.DataFile)
	}
}

func TestLoadRejectsInvalidBreakpoints(t *testing.T) {
	cases := map[string][]int{
		"single":     {768},
		"decreasing": {1536, 768},
		"zero":       {0, 768},
	}

	for name, breakpoints := range cases {
		breakpoints := breakpoints
		t.Run(name, func(t *testing.T) {
			home := t.TempDir()
			writeConfig(t, home, map[string]any{"breakpoints": breakpoints})

			_, err := config.Load(home)
			if !errors.Is(err, config.ErrInvalidBreakpoints) {
				t.Fatalf("expected ErrInvalidBreakpoints, got %v", err)
			}
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	home := t.TempDir()
	cfg := config.Default(home)
	cfg.GlamourStyle = "dark"
	cfg.Breakpoints = []int{600, 1200}

	if err := cfg.Save(); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	loaded, err := config.Load(home)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if loaded.GlamourStyle != "dark" {
		t.Fatalf("expected glamour style to round trip, got %q", loaded.GlamourStyle)
	}
	if loaded.Breakpoints[0] != 600 || loaded.Breakpoints[1] != 1200 {
		t.Fatalf("expected breakpoints to round trip, got %v", loaded.Breakpoints)
	}
	if loaded.CopiedTTL != config.DefaultCopiedTTL {
		t.Fatalf("expected copied ttl to round trip, got %v", loaded.CopiedTTL)
	}
}

func TestDataPathKeepsRemoteLocations(t *testing.T) {
	cfg := config.Default(t.TempDir())
	cfg.DataFile = "s3://bucket/board.json"

	path, err := cfg.DataPath()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path != "s3://bucket/board.json" {
		t.Fatalf("expected remote location untouched, got %q", path)
	}
}
