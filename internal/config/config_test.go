package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoadFromMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "none.toml"))
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if diff := cmp.Diff(DefaultConfig(), cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFromFileAndEnvPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	body := `
[data]
file = "/srv/launches.csv"
use_cache = false

[server]
addr = "0.0.0.0:9000"

[dashboard]
sites = ["KSC LC-39A"]
slider_step = 500
`
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("LAUNCHDASH_SERVER_ADDR", "127.0.0.1:7000")
	t.Setenv("LAUNCHDASH_DASHBOARD_SITES", "A,B")

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.Data.File != "/srv/launches.csv" || cfg.Data.UseCache {
		t.Errorf("Data = %+v", cfg.Data)
	}
	if cfg.Server.Addr != "127.0.0.1:7000" {
		t.Errorf("Addr = %q, want env override", cfg.Server.Addr)
	}
	if diff := cmp.Diff([]string{"A", "B"}, cfg.Dashboard.Sites); diff != "" {
		t.Errorf("Sites mismatch (-want +got):\n%s", diff)
	}
	if cfg.Dashboard.SliderStep != 500 {
		t.Errorf("SliderStep = %v, want 500", cfg.Dashboard.SliderStep)
	}
	// Untouched sections keep their defaults.
	if cfg.Logging.Level != "info" || cfg.Dashboard.ChartWidth != 720 {
		t.Errorf("defaults lost: %+v %+v", cfg.Logging, cfg.Dashboard)
	}
}

func TestLoadFromBadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[data\nfile="), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := LoadFrom(path)
	if err == nil || !strings.Contains(err.Error(), "parsing config") {
		t.Fatalf("err = %v, want parsing config error", err)
	}
}

func TestParseEnvBadValue(t *testing.T) {
	t.Setenv("LAUNCHDASH_DASHBOARD_SLIDER_STEP", "wide")
	cfg := DefaultConfig()
	err := ParseEnv(&cfg)
	if err == nil || !strings.HasPrefix(err.Error(), "parse env:") {
		t.Fatalf("err = %v, want parse env error", err)
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	cfg := DefaultConfig()
	cfg.Appearance.Theme = "tokyo-night"
	cfg.Data.File = "/data/x.csv"

	if err := SaveTo(path, cfg); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}
	if !Exists(path) {
		t.Fatal("Exists = false after SaveTo")
	}
	got, err := LoadFrom(path)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(cfg, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestValidate(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
	cfg := DefaultConfig()
	cfg.Dashboard.SliderStep = 0
	cfg.Data.File = ""
	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate accepted a broken config")
	}
	if !strings.Contains(err.Error(), "slider_step") || !strings.Contains(err.Error(), "data.file") {
		t.Errorf("err = %v, want both problems reported", err)
	}
}
