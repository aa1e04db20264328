package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/launchdash/internal/config"
	"github.com/theirongolddev/launchdash/internal/pipeline"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg := settings

	fmt.Printf("  Config file: %s\n", flagConfigPath)
	if config.Exists(flagConfigPath) {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Printf("  Env prefix:  %s\n", config.EnvPrefix)
	fmt.Println()

	fmt.Println("  [Data]")
	fmt.Printf("    File:      %s\n", cfg.Data.File)
	fmt.Printf("    Use cache: %v\n", cfg.Data.UseCache)
	fmt.Printf("    Cache:     %s\n", pipeline.CachePath())
	fmt.Println()

	fmt.Println("  [Server]")
	fmt.Printf("    Addr: %s\n", cfg.Server.Addr)
	fmt.Println()

	fmt.Println("  [Dashboard]")
	fmt.Printf("    Sites:       %s\n", strings.Join(cfg.Dashboard.Sites, ", "))
	fmt.Printf("    Slider step: %.0f kg\n", cfg.Dashboard.SliderStep)
	fmt.Printf("    Chart size:  %dx%d\n", cfg.Dashboard.ChartWidth, cfg.Dashboard.ChartHeight)
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  [Logging]")
	fmt.Printf("    Level:  %s\n", cfg.Logging.Level)
	fmt.Printf("    Format: %s\n", cfg.Logging.Format)
	fmt.Println()

	fmt.Println("  Run `launchdash setup` to reconfigure.")
	return nil
}
