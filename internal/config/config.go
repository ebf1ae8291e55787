// Package config resolves the dataset location and the settings file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"patternmap/internal/ports"
)

// DatasetEnv names the environment variable holding the dataset path
const DatasetEnv = "PATTERNMAP_DATASET"

// LogEnv names the environment variable holding the TUI log file path
const LogEnv = "PATTERNMAP_LOG"

// DefaultDatasetPath is empty: the embedded sample catalog
const DefaultDatasetPath = ""

// Config holds patternmap configuration.
type Config struct {
	Dataset    DatasetConfig    `toml:"dataset"`
	UI         UIConfig         `toml:"ui"`
	Log        LogConfig        `toml:"log"`
	Server     ServerConfig     `toml:"server"`
	Simulation SimulationConfig `toml:"simulation"`
	Catalog    CatalogConfig    `toml:"catalog"`
}

// DatasetConfig selects the catalog to explore.
type DatasetConfig struct {
	Path string `toml:"path"` // .json, .hcl or .db; empty for the embedded sample
}

// UIConfig controls input debouncing.
type UIConfig struct {
	SearchDebounce Duration `toml:"search_debounce"`
	ResizeDebounce Duration `toml:"resize_debounce"`
}

// LogConfig controls structured logging.
type LogConfig struct {
	Level  string `toml:"level"`  // debug, info, warn, error
	Format string `toml:"format"` // text, json
}

// ServerConfig controls the HTTP server.
type ServerConfig struct {
	Addr string `toml:"addr"`
}

// SimulationConfig tunes the force layout of the HTML page.
type SimulationConfig struct {
	CollisionPadding  float64 `toml:"collision_padding"`
	CollisionStrength float64 `toml:"collision_strength"`
	AlphaDecay        float64 `toml:"alpha_decay"`
	MaxTicks          int     `toml:"max_ticks"`
	ChargeStrength    float64 `toml:"charge_strength"`
	ChargeDistanceMax float64 `toml:"charge_distance_max"`
}

// CatalogConfig locates the SQLite catalog store.
type CatalogConfig struct {
	Path string `toml:"path"`
}

// Duration is a time.Duration written as a string such as "150ms"
type Duration struct {
	time.Duration
}

// UnmarshalText parses a Go duration string
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	if v < 0 {
		return fmt.Errorf("duration %q is negative", text)
	}
	d.Duration = v
	return nil
}

// MarshalText formats the duration as a Go duration string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Dataset: DatasetConfig{Path: DefaultDatasetPath},
		UI: UIConfig{
			SearchDebounce: Duration{150 * time.Millisecond},
			ResizeDebounce: Duration{250 * time.Millisecond},
		},
		Log:    LogConfig{Level: "info", Format: "text"},
		Server: ServerConfig{Addr: "127.0.0.1:8090"},
		Simulation: SimulationConfig{
			CollisionPadding:  5,
			CollisionStrength: 0.8,
			AlphaDecay:        0.02,
			MaxTicks:          300,
			ChargeStrength:    -800,
			ChargeDistanceMax: 400,
		},
	}
}

// ConfigDir returns the patternmap config directory path.
func ConfigDir() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "patternmap")
}

// DefaultPath returns the config file location
func DefaultPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// Load reads the config file at path, or the default location when path is
// empty. A missing file yields the defaults. The dataset environment variable
// overrides the file.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		path = DefaultPath()
	}

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return nil, fmt.Errorf("reading config: %w", err)
	default:
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	}

	if env := os.Getenv(DatasetEnv); env != "" {
		cfg.Dataset.Path = env
	}
	return cfg, nil
}

// PageOptions builds the HTML page settings from the config
func (c *Config) PageOptions(title string) ports.PageOptions {
	sim := c.Simulation
	return ports.PageOptions{
		Title: title,
		Simulation: ports.Simulation{
			CollisionPadding:  sim.CollisionPadding,
			CollisionStrength: sim.CollisionStrength,
			AlphaDecay:        sim.AlphaDecay,
			MaxTicks:          sim.MaxTicks,
			ChargeStrength:    sim.ChargeStrength,
			ChargeDistanceMax: sim.ChargeDistanceMax,
		},
		SearchDebounce: c.UI.SearchDebounce.Duration,
		ResizeDebounce: c.UI.ResizeDebounce.Duration,
	}
}

// DatasetPath returns the dataset path from PATTERNMAP_DATASET,
// falling back to DefaultDatasetPath.
func DatasetPath() string {
	if env := os.Getenv(DatasetEnv); env != "" {
		return env
	}
	return DefaultDatasetPath
}

// LogPath returns the TUI log file from PATTERNMAP_LOG, empty when unset
func LogPath() string {
	return os.Getenv(LogEnv)
}

// Save writes the config to path.
func Save(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}
