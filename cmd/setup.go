package cmd

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/theirongolddev/launchdash/internal/config"
	"github.com/theirongolddev/launchdash/internal/theme"
	"github.com/theirongolddev/launchdash/internal/tui"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	cfg := settings
	values := tui.SetupValuesFrom(cfg)

	form := tui.NewSetupForm(&values)
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Println("  Setup cancelled, nothing saved.")
			return nil
		}
		return fmt.Errorf("setup form: %w", err)
	}

	values.Apply(&cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if err := config.SaveTo(flagConfigPath, cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	theme.SetActive(cfg.Appearance.Theme)

	fmt.Println()
	fmt.Printf("  Saved to %s\n", flagConfigPath)
	fmt.Println("  Run `launchdash setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}
