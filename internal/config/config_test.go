package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.UI.SearchDebounce.Duration != 150*time.Millisecond {
		t.Errorf("search debounce = %v, want 150ms", cfg.UI.SearchDebounce)
	}
	if cfg.UI.ResizeDebounce.Duration != 250*time.Millisecond {
		t.Errorf("resize debounce = %v, want 250ms", cfg.UI.ResizeDebounce)
	}
	want := SimulationConfig{
		CollisionPadding:  5,
		CollisionStrength: 0.8,
		AlphaDecay:        0.02,
		MaxTicks:          300,
		ChargeStrength:    -800,
		ChargeDistanceMax: 400,
	}
	if diff := cmp.Diff(want, cfg.Simulation); diff != "" {
		t.Errorf("simulation mismatch (-want +got):\n%s", diff)
	}
	if cfg.Dataset.Path != "" {
		t.Errorf("default dataset = %q, want embedded sample", cfg.Dataset.Path)
	}
}

func TestLoad(t *testing.T) {
	t.Run("missing file yields defaults", func(t *testing.T) {
		t.Setenv(DatasetEnv, "")
		cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if diff := cmp.Diff(Default(), cfg); diff != "" {
			t.Errorf("config mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("file overrides defaults", func(t *testing.T) {
		t.Setenv(DatasetEnv, "")
		path := filepath.Join(t.TempDir(), "config.toml")
		content := `
[dataset]
path = "/data/patterns.hcl"

[ui]
search_debounce = "300ms"

[log]
level = "debug"
format = "json"

[simulation]
max_ticks = 120
`
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}

		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.Dataset.Path != "/data/patterns.hcl" {
			t.Errorf("dataset = %q", cfg.Dataset.Path)
		}
		if cfg.UI.SearchDebounce.Duration != 300*time.Millisecond {
			t.Errorf("search debounce = %v", cfg.UI.SearchDebounce)
		}
		if cfg.UI.ResizeDebounce.Duration != 250*time.Millisecond {
			t.Errorf("resize debounce should keep its default, got %v", cfg.UI.ResizeDebounce)
		}
		if cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
			t.Errorf("log = %+v", cfg.Log)
		}
		if cfg.Simulation.MaxTicks != 120 || cfg.Simulation.ChargeStrength != -800 {
			t.Errorf("simulation = %+v", cfg.Simulation)
		}
	})

	t.Run("environment overrides file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		if err := os.WriteFile(path, []byte("[dataset]\npath = \"a.json\"\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		t.Setenv(DatasetEnv, "b.db")

		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.Dataset.Path != "b.db" {
			t.Errorf("dataset = %q, want b.db", cfg.Dataset.Path)
		}
	})

	t.Run("malformed file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		if err := os.WriteFile(path, []byte("[ui]\nsearch_debounce = \"soon\"\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := Load(path); err == nil {
			t.Error("expected error for invalid duration")
		}
	})

	t.Run("default location", func(t *testing.T) {
		dir := t.TempDir()
		t.Setenv("XDG_CONFIG_HOME", dir)
		t.Setenv(DatasetEnv, "")
		if err := Save(&Config{Server: ServerConfig{Addr: ":9999"}}, filepath.Join(dir, "patternmap", "config.toml")); err != nil {
			t.Fatalf("Save() error = %v", err)
		}

		cfg, err := Load("")
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.Server.Addr != ":9999" {
			t.Errorf("addr = %q, want :9999", cfg.Server.Addr)
		}
	})
}

func TestDatasetPath(t *testing.T) {
	t.Setenv(DatasetEnv, "")
	if got := DatasetPath(); got != DefaultDatasetPath {
		t.Errorf("DatasetPath() = %q, want default", got)
	}

	t.Setenv(DatasetEnv, "/tmp/catalog.json")
	if got := DatasetPath(); got != "/tmp/catalog.json" {
		t.Errorf("DatasetPath() = %q", got)
	}
}

func TestPageOptions(t *testing.T) {
	cfg := Default()
	cfg.Simulation.MaxTicks = 120

	opts := cfg.PageOptions("Patterns")
	if opts.Title != "Patterns" || opts.APIBase != "" {
		t.Errorf("opts = %+v", opts)
	}
	if opts.Simulation.MaxTicks != 120 || opts.Simulation.ChargeStrength != -800 {
		t.Errorf("simulation = %+v", opts.Simulation)
	}
	if opts.SearchDebounce != 150*time.Millisecond || opts.ResizeDebounce != 250*time.Millisecond {
		t.Errorf("debounce = %v, %v", opts.SearchDebounce, opts.ResizeDebounce)
	}
}
