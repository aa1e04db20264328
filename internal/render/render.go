// Package render draws pie and scatter figures as SVG using go-chart.
package render

import (
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/theirongolddev/launchdash/internal/theme"
)

// Default chart size in pixels.
const (
	DefaultWidth  = 720
	DefaultHeight = 420
)

// EmptyMessage is shown in place of a chart with nothing to draw.
const EmptyMessage = "No launches match this selection"

// Options control the size and palette of rendered charts.
type Options struct {
	Width  int
	Height int
	Theme  theme.Theme
}

// withDefaults fills zero sizes and swaps ANSI themes for an RGB one.
func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = DefaultWidth
	}
	if o.Height <= 0 {
		o.Height = DefaultHeight
	}
	if o.Theme.Name == "" {
		o.Theme = theme.FlexokiDark
	}
	o.Theme = o.Theme.RGB()
	return o
}

func (o Options) color(c lipgloss.Color) drawing.Color {
	return drawing.ColorFromHex(strings.TrimPrefix(string(c), "#"))
}

func (o Options) background() chart.Style {
	return chart.Style{
		FillColor:   o.color(o.Theme.Background),
		StrokeColor: o.color(o.Theme.Background),
	}
}

func (o Options) titleStyle() chart.Style {
	return chart.Style{FontColor: o.color(o.Theme.TextPrimary), FontSize: 13}
}

func (o Options) axisStyle() chart.Style {
	return chart.Style{
		FontColor:   o.color(o.Theme.TextMuted),
		StrokeColor: o.color(o.Theme.Border),
		FontSize:    9,
	}
}

// placeholder writes a self-contained SVG with the title and a notice.
// go-chart refuses to render charts without values.
func placeholder(w io.Writer, title string, o Options) error {
	_, err := fmt.Fprintf(w, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+
		`<rect width="100%%" height="100%%" fill="%s"/>`+
		`<text x="50%%" y="28" text-anchor="middle" font-family="sans-serif" font-size="15" fill="%s">%s</text>`+
		`<text x="50%%" y="50%%" text-anchor="middle" font-family="sans-serif" font-size="13" fill="%s">%s</text>`+
		`</svg>`,
		o.Width, o.Height, o.Width, o.Height,
		o.Theme.Background,
		o.Theme.TextPrimary, html.EscapeString(title),
		o.Theme.TextMuted, html.EscapeString(EmptyMessage),
	)
	return err
}
