// Package components provides reusable widgets for the terminal dashboard.
package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/launchdash/internal/theme"
)

// Tone tints the value of a metric.
type Tone int

const (
	ToneNeutral Tone = iota
	ToneAccent
	ToneSuccess
	ToneFailure
)

func (tn Tone) color(t theme.Theme) lipgloss.Color {
	switch tn {
	case ToneAccent:
		return t.Accent
	case ToneSuccess:
		return t.Success
	case ToneFailure:
		return t.Failure
	}
	return t.TextPrimary
}

// Metric is one labelled figure in a metric strip.
type Metric struct {
	Label string
	Value string
	Note  string
	Tone  Tone
}

// minPanelWidth keeps very narrow panels legible.
const minPanelWidth = 12

// box is the rounded frame shared by every panel. Width excludes the border.
func box(outerWidth int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Active.Border).
		Width(max(outerWidth-2, minPanelWidth-2)).
		Padding(0, 1)
}

// SplitWidth divides total into n widths summing to total. Leading widths
// take the remainder.
func SplitWidth(total, n int) []int {
	if n <= 0 {
		return nil
	}
	widths := make([]int, n)
	for i := range widths {
		widths[i] = total / n
		if i < total%n {
			widths[i]++
		}
	}
	return widths
}

// MetricStrip renders metrics as equal-width framed cells spanning
// totalWidth. Cells are padded to the tallest one.
func MetricStrip(metrics []Metric, totalWidth int) string {
	if len(metrics) == 0 {
		return ""
	}
	t := theme.Active
	label := lipgloss.NewStyle().Foreground(t.TextMuted)
	note := lipgloss.NewStyle().Foreground(t.TextDim)

	hasNote := false
	for _, m := range metrics {
		hasNote = hasNote || m.Note != ""
	}

	cells := make([]string, len(metrics))
	for i, w := range SplitWidth(totalWidth, len(metrics)) {
		m := metrics[i]
		value := lipgloss.NewStyle().Foreground(m.Tone.color(t)).Bold(true)
		body := label.Render(m.Label) + "\n" + value.Render(m.Value)
		if hasNote {
			body += "\n" + note.Render(m.Note)
		}
		cells[i] = box(w).Render(body)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

// Panel frames body under a bold title. outerWidth includes the border.
func Panel(title, body string, outerWidth int) string {
	if title != "" {
		heading := lipgloss.NewStyle().Foreground(theme.Active.TextMuted).Bold(true)
		body = heading.Render(title) + "\n" + body
	}
	return box(outerWidth).Render(body)
}

// PanelInnerWidth is the text width available inside a Panel.
func PanelInnerWidth(outerWidth int) int {
	return max(outerWidth-4, minPanelWidth-4)
}
