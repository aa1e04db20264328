// Package config loads launchdash settings from TOML, environment and flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"

	"github.com/theirongolddev/launchdash/internal/model"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "LAUNCHDASH_"

// DefaultDataFile is the dataset read when none is configured.
const DefaultDataFile = "spacex_launch_dash.csv"

// Config holds all launchdash configuration.
type Config struct {
	Data       DataConfig       `toml:"data"`
	Server     ServerConfig     `toml:"server"`
	Dashboard  DashboardConfig  `toml:"dashboard"`
	Appearance AppearanceConfig `toml:"appearance"`
	Logging    LoggingConfig    `toml:"logging"`
}

// DataConfig locates the dataset.
type DataConfig struct {
	File     string `toml:"file" env:"DATA_FILE"`
	UseCache bool   `toml:"use_cache" env:"DATA_USE_CACHE"`
}

// ServerConfig holds web server settings.
type ServerConfig struct {
	Addr string `toml:"addr" env:"SERVER_ADDR"`
}

// DashboardConfig holds dashboard layout settings.
type DashboardConfig struct {
	Sites       []string `toml:"sites" env:"DASHBOARD_SITES" envSeparator:","`
	SliderStep  float64  `toml:"slider_step" env:"DASHBOARD_SLIDER_STEP"`
	ChartWidth  int      `toml:"chart_width" env:"DASHBOARD_CHART_WIDTH"`
	ChartHeight int      `toml:"chart_height" env:"DASHBOARD_CHART_HEIGHT"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme" env:"THEME"`
}

// LoggingConfig holds log level and encoding.
type LoggingConfig struct {
	Level  string `toml:"level" env:"LOG_LEVEL"`
	Format string `toml:"format" env:"LOG_FORMAT"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Data: DataConfig{
			File:     DefaultDataFile,
			UseCache: true,
		},
		Server: ServerConfig{
			Addr: "127.0.0.1:8050",
		},
		Dashboard: DashboardConfig{
			Sites:       append([]string(nil), model.DefaultSites...),
			SliderStep:  1000,
			ChartWidth:  720,
			ChartHeight: 420,
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Validate rejects settings the dashboard cannot run with.
func (c Config) Validate() error {
	var errs []error
	if c.Data.File == "" {
		errs = append(errs, errors.New("data.file is empty"))
	}
	if c.Server.Addr == "" {
		errs = append(errs, errors.New("server.addr is empty"))
	}
	if c.Dashboard.SliderStep <= 0 {
		errs = append(errs, fmt.Errorf("dashboard.slider_step = %v, want > 0", c.Dashboard.SliderStep))
	}
	if c.Dashboard.ChartWidth < 0 || c.Dashboard.ChartHeight < 0 {
		errs = append(errs, errors.New("dashboard chart size must not be negative"))
	}
	return errors.Join(errs...)
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "launchdash")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "launchdash")
}

// Path returns the full path to the default config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// Load reads the default config file and applies environment overrides.
func Load() (Config, error) {
	return LoadFrom(Path())
}

// LoadFrom reads the config file at path, returning defaults if it doesn't
// exist, then applies LAUNCHDASH_* environment overrides.
func LoadFrom(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path) //nolint:gosec // config path is chosen by the local user
	switch {
	case err == nil:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config: %w", err)
		}
	case !os.IsNotExist(err):
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := ParseEnv(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// ParseEnv overlays LAUNCHDASH_* environment variables onto target. Unset
// variables leave the existing values alone.
func ParseEnv(target *Config) error {
	if err := env.ParseWithOptions(target, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Save writes the config to the default path.
func Save(cfg Config) error {
	return SaveTo(Path(), cfg)
}

// SaveTo writes the config to path, creating its directory.
func SaveTo(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600) //nolint:gosec // see LoadFrom
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return toml.NewEncoder(f).Encode(cfg)
}

// Exists returns true if a config file exists at path.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
