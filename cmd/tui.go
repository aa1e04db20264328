package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/theirongolddev/launchdash/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch interactive terminal dashboard",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	// Force TrueColor profile so all background styling produces ANSI codes
	// Without this, lipgloss may default to Ascii profile (no colors)
	lipgloss.SetColorProfile(termenv.TrueColor)

	app := tui.NewApp(tui.Options{
		DataFile:   settings.Data.File,
		Sites:      settings.Dashboard.Sites,
		SliderStep: settings.Dashboard.SliderStep,
		Load:       tuiLoader(),
	})
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}

// tuiLoader loads without progress or logging: both would draw over the alt
// screen. Cache failures reach the status bar through Loaded.CacheErr.
func tuiLoader() tui.LoadFunc {
	return func() (tui.Loaded, error) {
		r, err := loadTable(false, zap.NewNop())
		if err != nil {
			return tui.Loaded{}, err
		}
		return tui.Loaded{Table: r.Table, CacheHit: r.CacheHit, CacheErr: r.CacheErr}, nil
	}
}
