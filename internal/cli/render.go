package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/launchdash/internal/theme"
)

// SeparatorRow marks a horizontal rule inside Table.Rows.
const SeparatorRow = "---"

// Table represents a bordered text table for CLI output.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
	Widths  []int // optional column widths, auto-calculated if nil
}

type styles struct {
	title, header, value, dim lipgloss.Style
}

func currentStyles() styles {
	t := theme.Active
	return styles{
		title:  lipgloss.NewStyle().Bold(true).Foreground(t.TextPrimary).Align(lipgloss.Center),
		header: lipgloss.NewStyle().Bold(true).Foreground(t.Accent),
		value:  lipgloss.NewStyle().Foreground(t.TextPrimary),
		dim:    lipgloss.NewStyle().Foreground(t.TextDim),
	}
}

// RenderTitle renders a centered title bar in a bordered box.
func RenderTitle(title string) string {
	s := currentStyles()
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Active.Border).
		Width(max(55, lipgloss.Width(title)+4)).
		Align(lipgloss.Center).
		Padding(0, 1)

	return border.Render(s.title.Render(title))
}

func (t Table) columnWidths() []int {
	numCols := len(t.Headers)
	if numCols == 0 && len(t.Rows) > 0 {
		numCols = len(t.Rows[0])
	}

	widths := make([]int, numCols)
	if t.Widths != nil {
		copy(widths, t.Widths)
		return widths
	}
	for i, h := range t.Headers {
		widths[i] = max(widths[i], lipgloss.Width(h))
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < numCols {
				widths[i] = max(widths[i], lipgloss.Width(cell))
			}
		}
	}
	return widths
}

// RenderTable renders a bordered table. The first column is left-aligned and
// the rest are right-aligned.
func RenderTable(t Table) string {
	if len(t.Rows) == 0 && len(t.Headers) == 0 {
		return ""
	}

	s := currentStyles()
	widths := t.columnWidths()

	var b strings.Builder
	rule := func(left, mid, right string) {
		b.WriteString(s.dim.Render(left))
		for i, w := range widths {
			b.WriteString(s.dim.Render(strings.Repeat("─", w+2)))
			if i < len(widths)-1 {
				b.WriteString(s.dim.Render(mid))
			}
		}
		b.WriteString(s.dim.Render(right))
		b.WriteString("\n")
	}
	line := func(cells []string, style lipgloss.Style, alignRight bool) {
		b.WriteString(s.dim.Render("│"))
		for i, w := range widths {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			pad := strings.Repeat(" ", max(0, w-lipgloss.Width(cell)))
			if alignRight && i > 0 {
				b.WriteString(style.Render(" " + pad + cell + " "))
			} else {
				b.WriteString(style.Render(" " + cell + pad + " "))
			}
			if i < len(widths)-1 {
				b.WriteString(s.dim.Render("│"))
			}
		}
		b.WriteString(s.dim.Render("│"))
		b.WriteString("\n")
	}

	if t.Title != "" {
		b.WriteString("  ")
		b.WriteString(s.header.Render(t.Title))
		b.WriteString("\n")
	}

	rule("╭", "┬", "╮")
	if len(t.Headers) > 0 {
		line(t.Headers, s.header, false)
		rule("├", "┼", "┤")
	}
	for _, row := range t.Rows {
		if len(row) == 1 && row[0] == SeparatorRow {
			rule("├", "┼", "┤")
			continue
		}
		line(row, s.value, true)
	}
	rule("╰", "┴", "╯")

	return b.String()
}

// RenderShareBar renders one labelled horizontal bar scaled to maxValue.
func RenderShareBar(label string, labelWidth int, value, maxValue float64, barWidth int, color lipgloss.Color) string {
	barLen := 0
	if maxValue > 0 && value > 0 {
		barLen = max(1, int(value/maxValue*float64(barWidth)+0.5))
	}
	barLen = min(barLen, barWidth)

	s := currentStyles()
	bar := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", barLen))
	rest := s.dim.Render(strings.Repeat("░", barWidth-barLen))
	return fmt.Sprintf("  %-*s %s%s", labelWidth, label, bar, rest)
}
