package tui

import (
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/theirongolddev/launchdash/internal/config"
	"github.com/theirongolddev/launchdash/internal/theme"
)

// SetupValues are the fields the setup wizard edits.
type SetupValues struct {
	DataFile string
	Theme    string
	UseCache bool
	Addr     string
}

// SetupValuesFrom seeds the wizard from an existing config.
func SetupValuesFrom(cfg config.Config) SetupValues {
	return SetupValues{
		DataFile: cfg.Data.File,
		Theme:    cfg.Appearance.Theme,
		UseCache: cfg.Data.UseCache,
		Addr:     cfg.Server.Addr,
	}
}

// Apply copies the wizard answers onto cfg.
func (v SetupValues) Apply(cfg *config.Config) {
	cfg.Data.File = strings.TrimSpace(v.DataFile)
	cfg.Data.UseCache = v.UseCache
	cfg.Server.Addr = strings.TrimSpace(v.Addr)
	cfg.Appearance.Theme = v.Theme
}

// NewSetupForm builds the first-run wizard. Answers are written into v.
func NewSetupForm(v *SetupValues) *huh.Form {
	themeOpts := make([]huh.Option[string], 0, len(theme.All))
	for _, t := range theme.All {
		themeOpts = append(themeOpts, huh.NewOption(t.Name, t.Name))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to launchdash").
				Description("Explore SpaceX launch outcomes by site and payload.\nAnswers are saved to "+config.Path()),
			huh.NewInput().
				Title("Launch dataset").
				Description("CSV with Launch Site, class, Payload Mass (kg) and Booster Version Category").
				Placeholder(config.DefaultDataFile).
				Value(&v.DataFile).
				Validate(validateDataFile),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Colour theme").
				Options(themeOpts...).
				Value(&v.Theme),
			huh.NewConfirm().
				Title("Cache parsed records in SQLite?").
				Affirmative("Yes").
				Negative("No").
				Value(&v.UseCache),
			huh.NewInput().
				Title("Web dashboard address").
				Value(&v.Addr).
				Validate(validateAddr),
		),
	)
}

func validateDataFile(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("dataset path is required")
	}
	return nil
}

func validateAddr(s string) error {
	if _, _, err := net.SplitHostPort(strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("want host:port: %w", err)
	}
	return nil
}
