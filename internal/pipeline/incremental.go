package pipeline

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/theirongolddev/launchdash/internal/source"
	"github.com/theirongolddev/launchdash/internal/store"
)

// ErrCache marks a LoadWithCache failure caused by the cache rather than the
// dataset. Callers can retry with Load.
var ErrCache = errors.New("record cache")

// CachedLoadResult extends LoadResult with cache metadata.
type CachedLoadResult struct {
	LoadResult
	CacheHit bool
	// CacheErr is set when the cache could not be written. The load itself
	// still succeeded.
	CacheErr error
}

// LoadWithCache returns the cached rows for path when its mtime and size are
// unchanged, and otherwise parses the file and refreshes the cache.
func LoadWithCache(path string, cache *store.Cache, progressFn ProgressFunc) (*CachedLoadResult, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("opening dataset: %w", err)
	}
	mtime, size := info.ModTime().UnixNano(), info.Size()

	tracked, ok, err := cache.Lookup(abs)
	if err != nil {
		return nil, fmt.Errorf("%w: lookup: %w", ErrCache, err)
	}

	if ok && tracked.Matches(mtime, size) {
		if progressFn != nil {
			progressFn("reading cache")
		}
		records, err := cache.LoadRecords(abs)
		if err != nil {
			return nil, fmt.Errorf("%w: loading rows: %w", ErrCache, err)
		}
		lr, err := buildResult(path, tracked.Lines, source.ParseResult{Path: path, Records: records})
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCache, err)
		}
		return &CachedLoadResult{LoadResult: *lr, CacheHit: true}, nil
	}

	lr, err := Load(path, progressFn)
	if err != nil {
		return nil, err
	}

	result := &CachedLoadResult{LoadResult: *lr}
	if progressFn != nil {
		progressFn("writing cache")
	}
	result.CacheErr = cache.SaveRecords(abs, mtime, size, lr.Lines, lr.Table.records)
	return result, nil
}

// CacheDir returns the platform-appropriate cache directory.
func CacheDir() string {
	if xdg := os.Getenv("XDG_CACHE_HOME"); xdg != "" {
		return filepath.Join(xdg, "launchdash")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".cache", "launchdash")
}

// CachePath returns the full path to the cache database.
func CachePath() string {
	return filepath.Join(CacheDir(), "records.db")
}
