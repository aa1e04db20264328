package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/launchdash/internal/cli"
	"github.com/theirongolddev/launchdash/internal/model"
	"github.com/theirongolddev/launchdash/internal/theme"
)

// EmptyChart is drawn in place of a chart with nothing to show.
func EmptyChart(width int) string {
	t := theme.Active
	msg := lipgloss.NewStyle().Foreground(t.TextDim).Italic(true).Render("No launches match this selection")
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, msg)
}

// SliceBars renders a pie figure as labelled horizontal share bars, one per
// slice, scaled to the largest slice.
func SliceBars(fig model.PieFigure, width int) string {
	if fig.Empty() {
		return EmptyChart(width)
	}
	t := theme.Active

	labelW := 0
	peak := 0
	for _, s := range fig.Slices {
		labelW = max(labelW, lipgloss.Width(s.Label))
		peak = max(peak, s.Value)
	}
	total := fig.Total()

	// "  label bar  count  share"
	suffixW := 16
	barW := max(5, width-labelW-suffixW-3)

	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	shareStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	lines := make([]string, 0, len(fig.Slices))
	for i, s := range fig.Slices {
		bar := cli.RenderShareBar(s.Label, labelW, float64(s.Value), float64(peak), barW, t.SeriesColor(i))
		lines = append(lines, fmt.Sprintf("%s %s %s",
			bar,
			valueStyle.Render(fmt.Sprintf("%5d", s.Value)),
			shareStyle.Render(fmt.Sprintf("%6s", cli.FormatShare(s.Value, total)))))
	}
	return strings.Join(lines, "\n")
}

// StripPlot renders a scatter figure as two rows of dots, class 1 over
// class 0, across payload buckets. Dots take their booster category colour;
// when two categories share a bucket the later point wins.
func StripPlot(fig model.ScatterFigure, width int) string {
	if fig.Empty() {
		return EmptyChart(width)
	}
	t := theme.Active

	const labelW = 4
	cols := max(10, width-labelW-1)

	catIdx := make(map[string]int, len(fig.Categories))
	for i, c := range fig.Categories {
		catIdx[c] = i
	}

	lo, hi := fig.Payload.Low, fig.Payload.High
	span := hi - lo
	rows := [2][]int{make([]int, cols), make([]int, cols)} // [0]=class 1, [1]=class 0
	for r := range rows {
		for c := range rows[r] {
			rows[r][c] = -1
		}
	}
	for _, p := range fig.Points {
		col := 0
		if span > 0 {
			col = int((p.PayloadKg - lo) / span * float64(cols-1))
		}
		col = min(max(col, 0), cols-1)
		row := 1
		if p.Class == model.ClassSuccess {
			row = 0
		}
		rows[row][col] = catIdx[p.BoosterCategory]
	}

	axisStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	var b strings.Builder
	for r, label := range []string{"1", "0"} {
		b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", labelW, label)))
		b.WriteString(axisStyle.Render("│"))
		for _, ci := range rows[r] {
			if ci < 0 {
				b.WriteString(axisStyle.Render("·"))
				continue
			}
			b.WriteString(lipgloss.NewStyle().Foreground(t.SeriesColor(ci)).Render("●"))
		}
		b.WriteString("\n")
	}
	b.WriteString(axisStyle.Render(strings.Repeat(" ", labelW) + "└" + strings.Repeat("─", cols)))
	b.WriteString("\n")
	b.WriteString(axisStyle.Render(strings.Repeat(" ", labelW+1) + xTickLine(lo, hi, cols)))
	b.WriteString("\n")
	b.WriteString(Legend(fig.Categories))
	return b.String()
}

// xTickLine places payload tick labels at nice intervals under the axis.
func xTickLine(lo, hi float64, cols int) string {
	buf := []byte(strings.Repeat(" ", cols))
	span := hi - lo
	if span <= 0 {
		copy(buf, formatChartLabel(lo))
		return string(buf)
	}

	step := chartTickStep(span)
	lastEnd := -1
	for v := math.Ceil(lo/step) * step; v <= hi; v += step {
		lbl := formatChartLabel(v)
		pos := int((v - lo) / span * float64(cols-1))
		end := pos + len(lbl)
		if end > cols {
			pos, end = cols-len(lbl), cols
		}
		if pos <= lastEnd || pos < 0 {
			continue
		}
		copy(buf[pos:end], lbl)
		lastEnd = end
	}
	return strings.TrimRight(string(buf), " ")
}

// Legend renders a coloured dot and name per booster category.
func Legend(categories []string) string {
	t := theme.Active
	nameStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	parts := make([]string, 0, len(categories))
	for i, c := range categories {
		dot := lipgloss.NewStyle().Foreground(t.SeriesColor(i)).Render("●")
		parts = append(parts, dot+" "+nameStyle.Render(c))
	}
	return "     " + strings.Join(parts, "  ")
}

// chartTickStep computes a nice tick interval targeting ~5 ticks.
func chartTickStep(maxVal float64) float64 {
	if maxVal <= 0 {
		return 1
	}
	rough := maxVal / 5
	exp := math.Floor(math.Log10(rough))
	base := math.Pow(10, exp)
	frac := rough / base

	switch {
	case frac < 1.5:
		return base
	case frac < 3.5:
		return 2 * base
	default:
		return 5 * base
	}
}

func formatChartLabel(v float64) string {
	switch {
	case v >= 1e3:
		if v == math.Trunc(v/1e3)*1e3 {
			return fmt.Sprintf("%.0fk", v/1e3)
		}
		return fmt.Sprintf("%.1fk", v/1e3)
	case v >= 1 || v == 0:
		return fmt.Sprintf("%.0f", v)
	default:
		return fmt.Sprintf("%.2f", v)
	}
}
