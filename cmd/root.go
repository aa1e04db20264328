// Package cmd implements the launchdash CLI commands.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/theirongolddev/launchdash/internal/cli"
	"github.com/theirongolddev/launchdash/internal/config"
	"github.com/theirongolddev/launchdash/internal/logging"
	"github.com/theirongolddev/launchdash/internal/pipeline"
	"github.com/theirongolddev/launchdash/internal/store"
	"github.com/theirongolddev/launchdash/internal/theme"
)

var (
	flagDataFile   string
	flagConfigPath string
	flagNoCache    bool
	flagQuiet      bool
	flagLogLevel   string

	// settings is the effective configuration: flags over env over file.
	settings config.Config
	logger   = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "launchdash",
	Short: "SpaceX launch records dashboard",
	Long: "Explore SpaceX launch outcomes by launch site and payload mass.\n" +
		"Without a subcommand, launchdash serves the web dashboard.",
	SilenceUsage:      true,
	PersistentPreRunE: loadSettings,
	PersistentPostRun: func(_ *cobra.Command, _ []string) { _ = logger.Sync() },
	RunE:              runServe,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDataFile, "data", "f", config.DefaultDataFile, "Launch dataset CSV")
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", config.Path(), "Config file")
	rootCmd.PersistentFlags().BoolVar(&flagNoCache, "no-cache", false, "Skip SQLite cache, reparse the dataset")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level (debug, info, warn, error)")
}

// loadSettings resolves the effective config and builds the logger.
func loadSettings(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadFrom(flagConfigPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("data") {
		cfg.Data.File = flagDataFile
	}
	if flagNoCache {
		cfg.Data.UseCache = false
	}
	if flagLogLevel != "" {
		cfg.Logging.Level = flagLogLevel
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	theme.SetActive(cfg.Appearance.Theme)

	l, err := logging.New(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		return err
	}
	settings = cfg
	logger = l
	return nil
}

// loadResult is what every command gets back from loadTable.
type loadResult struct {
	*pipeline.LoadResult
	CacheHit bool
	// CacheErr is a cache failure the load recovered from.
	CacheErr error
}

// loadTable is the shared data loading path used by all commands.
// Uses the SQLite cache when enabled. Cache failures fall back to a plain
// parse and are reported through log; dataset failures are returned as is.
func loadTable(progress bool, log *zap.Logger) (*loadResult, error) {
	path := settings.Data.File
	progressFn := func(stage string) {
		if progress {
			fmt.Fprintf(os.Stderr, "\r  %s %s...", stage, path)
		}
	}
	done := func(r *loadResult) (*loadResult, error) {
		if progress {
			source := "parsed"
			if r.CacheHit {
				source = "loaded from cache"
			}
			fmt.Fprintf(os.Stderr, "\r  %s launches %s (%d sites)    \n",
				cli.FormatNumber(r.Table.Len()), source, len(r.Table.Sites()))
		}
		return r, nil
	}

	var cacheErr error
	if settings.Data.UseCache {
		cache, err := store.Open(pipeline.CachePath())
		if err != nil {
			log.Warn("cache unavailable, doing full parse", zap.Error(err))
			cacheErr = err
		} else {
			defer func() { _ = cache.Close() }()

			cr, err := pipeline.LoadWithCache(path, cache, progressFn)
			switch {
			case err == nil:
				if cr.CacheErr != nil {
					log.Warn("cache write failed", zap.Error(cr.CacheErr))
				}
				return done(&loadResult{LoadResult: &cr.LoadResult, CacheHit: cr.CacheHit, CacheErr: cr.CacheErr})
			case errors.Is(err, pipeline.ErrCache):
				log.Warn("cache read failed, doing full parse", zap.Error(err))
				cacheErr = err
			default:
				if progress {
					fmt.Fprintln(os.Stderr)
				}
				return nil, err
			}
		}
	}

	lr, err := pipeline.Load(path, progressFn)
	if err != nil {
		if progress {
			fmt.Fprintln(os.Stderr)
		}
		return nil, err
	}
	return done(&loadResult{LoadResult: lr, CacheErr: cacheErr})
}

func showProgress() bool {
	return !flagQuiet
}
