package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/theirongolddev/launchdash/internal/model"
	"github.com/theirongolddev/launchdash/internal/theme"
)

func init() {
	// Plain output keeps assertions on layout, not escape codes.
	lipgloss.SetColorProfile(termenv.Ascii)
	theme.SetActive("flexoki-dark")
}

func TestSplitWidthSumsToTotal(t *testing.T) {
	widths := SplitWidth(101, 4)
	sum := 0
	for _, w := range widths {
		sum += w
	}
	if sum != 101 || widths[0] != 26 || widths[3] != 25 {
		t.Errorf("SplitWidth(101, 4) = %v", widths)
	}
	if SplitWidth(10, 0) != nil {
		t.Error("SplitWidth(10, 0) should be nil")
	}
}

func TestMetricStripAlignsCells(t *testing.T) {
	strip := MetricStrip([]Metric{
		{Label: "Site", Value: "All Sites"},
		{Label: "Launches", Value: "56", Note: "4 sites", Tone: ToneAccent},
		{Label: "Succeeded", Value: "24", Tone: ToneSuccess},
	}, 66)

	if got, want := lipgloss.Width(strip), 66; got != want {
		t.Errorf("strip width = %d, want %d", got, want)
	}
	// Border, label, value, note row (blank where a cell has no note), border.
	if got, want := lipgloss.Height(strip), 5; got != want {
		t.Errorf("strip height = %d, want %d", got, want)
	}
	if !strings.Contains(strip, "4 sites") {
		t.Error("note missing from strip")
	}
}

func TestPanelWrapsTitleAndBody(t *testing.T) {
	p := Panel("Pie", "body line", 30)
	if got := lipgloss.Width(p); got != 30 {
		t.Errorf("panel width = %d, want 30", got)
	}
	if !strings.Contains(p, "Pie") || !strings.Contains(p, "body line") {
		t.Errorf("panel missing content:\n%s", p)
	}
	if got := PanelInnerWidth(30); got != 26 {
		t.Errorf("PanelInnerWidth(30) = %d, want 26", got)
	}
}

func TestSliceBars(t *testing.T) {
	fig := model.PieFigure{Slices: []model.PieSlice{
		{Label: "CCAFS LC-40", Value: 7},
		{Label: "KSC LC-39A", Value: 10},
		{Label: "VAFB SLC-4E", Value: 0},
	}}

	out := SliceBars(fig, 70)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("lines = %d, want 3:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[1], "58.8%") {
		t.Errorf("KSC share missing: %q", lines[1])
	}
	if strings.Contains(lines[2], "█") {
		t.Errorf("zero slice drew a bar: %q", lines[2])
	}
	for _, l := range lines {
		if w := lipgloss.Width(l); w > 70 {
			t.Errorf("line width %d exceeds 70: %q", w, l)
		}
	}
}

func TestSliceBarsEmpty(t *testing.T) {
	out := SliceBars(model.PieFigure{}, 40)
	if !strings.Contains(out, "No launches match") {
		t.Errorf("empty pie = %q", out)
	}
}

func TestStripPlotPlacesClasses(t *testing.T) {
	fig := model.ScatterFigure{
		Payload:    model.PayloadRange{Low: 0, High: 1000},
		Categories: []string{"FT", "B4"},
		Points: []model.ScatterPoint{
			{PayloadKg: 0, Class: 1, BoosterCategory: "FT"},
			{PayloadKg: 1000, Class: 0, BoosterCategory: "B4"},
		},
	}

	out := StripPlot(fig, 25)
	lines := strings.Split(out, "\n")
	if len(lines) != 5 {
		t.Fatalf("lines = %d, want 5:\n%s", len(lines), out)
	}
	success, failure := lines[0], lines[1]
	if !strings.HasPrefix(success, "   1│●") {
		t.Errorf("success row = %q, want dot at the left edge", success)
	}
	if !strings.HasSuffix(failure, "●") || !strings.HasPrefix(failure, "   0│·") {
		t.Errorf("failure row = %q, want dot at the right edge", failure)
	}
	if !strings.Contains(lines[4], "FT") || !strings.Contains(lines[4], "B4") {
		t.Errorf("legend = %q", lines[4])
	}
}

func TestXTickLine(t *testing.T) {
	got := xTickLine(0, 10000, 41)
	for _, want := range []string{"0", "2k", "4k", "10k"} {
		if !strings.Contains(got, want) {
			t.Errorf("tick line %q missing %q", got, want)
		}
	}
}

func TestChartTickStep(t *testing.T) {
	for _, tc := range []struct{ in, want float64 }{
		{9600, 2000},
		{1000, 200},
		{0, 1},
	} {
		if got := chartTickStep(tc.in); got != tc.want {
			t.Errorf("chartTickStep(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
