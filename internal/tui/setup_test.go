package tui

import (
	"testing"

	"github.com/theirongolddev/launchdash/internal/config"
)

func TestSetupValuesRoundTrip(t *testing.T) {
	cfg := config.DefaultConfig()
	v := SetupValuesFrom(cfg)
	if v.DataFile != config.DefaultDataFile || !v.UseCache {
		t.Fatalf("seeded values = %+v", v)
	}

	v.DataFile = "  data/launches.csv "
	v.Theme = "tokyo-night"
	v.UseCache = false
	v.Addr = "0.0.0.0:9000"
	v.Apply(&cfg)

	if cfg.Data.File != "data/launches.csv" {
		t.Errorf("Data.File = %q, want trimmed path", cfg.Data.File)
	}
	if cfg.Appearance.Theme != "tokyo-night" || cfg.Data.UseCache || cfg.Server.Addr != "0.0.0.0:9000" {
		t.Errorf("applied config = %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestSetupValidators(t *testing.T) {
	if err := validateDataFile("  "); err == nil {
		t.Error("blank dataset path accepted")
	}
	if err := validateAddr("localhost"); err == nil {
		t.Error("address without port accepted")
	}
	if err := validateAddr("127.0.0.1:8050"); err != nil {
		t.Errorf("validateAddr(127.0.0.1:8050) = %v", err)
	}
}

func TestNewSetupFormBuilds(t *testing.T) {
	v := SetupValuesFrom(config.DefaultConfig())
	if NewSetupForm(&v) == nil {
		t.Fatal("NewSetupForm returned nil")
	}
}
