// Package theme defines the colour themes shared by the terminal dashboard,
// the CLI tables and the rendered charts.
package theme

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colour roles used by launchdash.
type Theme struct {
	Name        string
	Background  lipgloss.Color // page / chart canvas
	Surface     lipgloss.Color // card backgrounds
	Border      lipgloss.Color
	TextDim     lipgloss.Color // hints, axis labels
	TextMuted   lipgloss.Color // secondary labels
	TextPrimary lipgloss.Color
	Accent      lipgloss.Color
	Success     lipgloss.Color
	Failure     lipgloss.Color
	// Series colours slices and booster categories, in order.
	Series []lipgloss.Color
}

// Active is the currently selected theme.
var Active = FlexokiDark

// FlexokiDark is the default theme.
var FlexokiDark = Theme{
	Name:        "flexoki-dark",
	Background:  lipgloss.Color("#100F0F"),
	Surface:     lipgloss.Color("#1C1B1A"),
	Border:      lipgloss.Color("#403E3C"),
	TextDim:     lipgloss.Color("#575653"),
	TextMuted:   lipgloss.Color("#878580"),
	TextPrimary: lipgloss.Color("#FFFCF0"),
	Accent:      lipgloss.Color("#3AA99F"),
	Success:     lipgloss.Color("#879A39"),
	Failure:     lipgloss.Color("#D14D41"),
	Series: []lipgloss.Color{
		"#4385BE", "#DA702C", "#879A39", "#CE5D97", "#D0A215", "#24837B", "#8B7EC8", "#D14D41",
	},
}

// CatppuccinMocha is a soft pastel theme.
var CatppuccinMocha = Theme{
	Name:        "catppuccin-mocha",
	Background:  lipgloss.Color("#1E1E2E"),
	Surface:     lipgloss.Color("#313244"),
	Border:      lipgloss.Color("#585B70"),
	TextDim:     lipgloss.Color("#6C7086"),
	TextMuted:   lipgloss.Color("#A6ADC8"),
	TextPrimary: lipgloss.Color("#CDD6F4"),
	Accent:      lipgloss.Color("#89B4FA"),
	Success:     lipgloss.Color("#A6E3A1"),
	Failure:     lipgloss.Color("#F38BA8"),
	Series: []lipgloss.Color{
		"#89B4FA", "#FAB387", "#A6E3A1", "#F5C2E7", "#F9E2AF", "#94E2D5", "#CBA6F7", "#F38BA8",
	},
}

// TokyoNight is a cool blue/purple theme.
var TokyoNight = Theme{
	Name:        "tokyo-night",
	Background:  lipgloss.Color("#1A1B26"),
	Surface:     lipgloss.Color("#24283B"),
	Border:      lipgloss.Color("#565F89"),
	TextDim:     lipgloss.Color("#565F89"),
	TextMuted:   lipgloss.Color("#A9B1D6"),
	TextPrimary: lipgloss.Color("#C0CAF5"),
	Accent:      lipgloss.Color("#7AA2F7"),
	Success:     lipgloss.Color("#9ECE6A"),
	Failure:     lipgloss.Color("#F7768E"),
	Series: []lipgloss.Color{
		"#7AA2F7", "#FF9E64", "#9ECE6A", "#BB9AF7", "#E0AF68", "#7DCFFF", "#2AC3DE", "#F7768E",
	},
}

// Terminal uses ANSI 16 colours only. Chart renderers that need RGB fall
// back to FlexokiDark.
var Terminal = Theme{
	Name:        "terminal",
	Background:  lipgloss.Color("0"),
	Surface:     lipgloss.Color("0"),
	Border:      lipgloss.Color("8"),
	TextDim:     lipgloss.Color("8"),
	TextMuted:   lipgloss.Color("7"),
	TextPrimary: lipgloss.Color("15"),
	Accent:      lipgloss.Color("6"),
	Success:     lipgloss.Color("2"),
	Failure:     lipgloss.Color("1"),
	Series: []lipgloss.Color{
		"4", "3", "2", "5", "11", "6", "12", "1",
	},
}

// All available themes.
var All = []Theme{FlexokiDark, CatppuccinMocha, TokyoNight, Terminal}

// Names returns the names of all themes, in display order.
func Names() []string {
	names := make([]string, len(All))
	for i, t := range All {
		names[i] = t.Name
	}
	return names
}

// ByName returns a theme by its name, defaulting to FlexokiDark.
func ByName(name string) Theme {
	for _, t := range All {
		if t.Name == name {
			return t
		}
	}
	return FlexokiDark
}

// SetActive sets the active theme by name.
func SetActive(name string) {
	Active = ByName(name)
}

// SeriesColor returns the i-th series colour, cycling through the palette.
func (t Theme) SeriesColor(i int) lipgloss.Color {
	if len(t.Series) == 0 {
		return t.Accent
	}
	return t.Series[i%len(t.Series)]
}

// IsRGB reports whether every colour in the theme is a #RRGGBB hex value.
func (t Theme) IsRGB() bool {
	return isHex(t.Background) && isHex(t.TextPrimary) && isHex(t.Series[0])
}

// RGB returns t when it is an RGB theme and FlexokiDark otherwise.
func (t Theme) RGB() Theme {
	if t.IsRGB() {
		return t
	}
	return FlexokiDark
}

func isHex(c lipgloss.Color) bool {
	return strings.HasPrefix(string(c), "#") && len(c) == 7
}
