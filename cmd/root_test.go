package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/theirongolddev/launchdash/internal/config"
	"github.com/theirongolddev/launchdash/internal/source"
)

const launchesCSV = "Launch Site,class,Payload Mass (kg),Booster Version Category\n" +
	"CCAFS LC-40,0,0,v1.0\n" +
	"KSC LC-39A,1,2490,FT\n" +
	"VAFB SLC-4E,1,9600,B4\n"

// useSettings points the package settings at dataFile with the cache on,
// and routes the package logger to an observer.
func useSettings(t *testing.T, dataFile string) *observer.ObservedLogs {
	t.Helper()
	prevSettings, prevLogger := settings, logger
	t.Cleanup(func() { settings, logger = prevSettings, prevLogger })

	settings = config.DefaultConfig()
	settings.Data.File = dataFile
	settings.Data.UseCache = true

	core, logs := observer.New(zapcore.DebugLevel)
	logger = zap.New(core)
	return logs
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestTUILoaderStaysSilentOnCacheFailure(t *testing.T) {
	logs := useSettings(t, writeFile(t, "launches.csv", launchesCSV))
	// A regular file where the cache directory should be makes store.Open fail.
	t.Setenv("XDG_CACHE_HOME", writeFile(t, "not-a-dir", ""))

	loaded, err := tuiLoader()()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Table == nil || loaded.Table.Len() != 3 {
		t.Fatalf("table = %v, want 3 records", loaded.Table)
	}
	if loaded.CacheErr == nil {
		t.Error("CacheErr = nil, want the cache open failure")
	}
	if n := logs.Len(); n != 0 {
		t.Errorf("log entries = %d, want 0 while the TUI owns the terminal", n)
	}
}

func TestLoadTableLogsCacheFailure(t *testing.T) {
	logs := useSettings(t, writeFile(t, "launches.csv", launchesCSV))
	t.Setenv("XDG_CACHE_HOME", writeFile(t, "not-a-dir", ""))

	r, err := loadTable(false, logger)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if r.CacheErr == nil || r.CacheHit {
		t.Errorf("CacheErr = %v, CacheHit = %v", r.CacheErr, r.CacheHit)
	}
	if n := logs.FilterMessage("cache unavailable, doing full parse").Len(); n != 1 {
		t.Errorf("cache warning logged %d times, want 1", n)
	}
}

func TestLoadTableDatasetErrorsSkipFallback(t *testing.T) {
	cases := map[string]struct {
		path string
		want error
	}{
		"missing":   {path: filepath.Join(t.TempDir(), "missing.csv"), want: os.ErrNotExist},
		"malformed": {path: writeFile(t, "bad.csv", "Launch Site,class,Payload Mass (kg),Booster Version Category\nKSC LC-39A,7,1,FT\n"), want: source.ErrMalformedRow},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			logs := useSettings(t, tc.path)
			t.Setenv("XDG_CACHE_HOME", t.TempDir())

			_, err := loadTable(false, logger)
			if !errors.Is(err, tc.want) {
				t.Fatalf("err = %v, want %v", err, tc.want)
			}
			if n := logs.Len(); n != 0 {
				t.Errorf("log entries = %d, want 0: a bad dataset is not a cache failure", n)
			}
		})
	}
}

func TestLoadTableUsesCacheOnSecondRun(t *testing.T) {
	useSettings(t, writeFile(t, "launches.csv", launchesCSV))
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	first, err := loadTable(false, logger)
	if err != nil {
		t.Fatal(err)
	}
	second, err := loadTable(false, logger)
	if err != nil {
		t.Fatal(err)
	}
	if first.CacheHit || !second.CacheHit {
		t.Errorf("hits = %v/%v, want false/true", first.CacheHit, second.CacheHit)
	}
}
