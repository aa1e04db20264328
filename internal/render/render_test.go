package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/theirongolddev/launchdash/internal/model"
	"github.com/theirongolddev/launchdash/internal/theme"
)

func TestPieRendersSVG(t *testing.T) {
	fig := model.PieFigure{
		Title: "Total successful launches by site",
		Site:  model.AllSites,
		Slices: []model.PieSlice{
			{Label: "CCAFS LC-40", Value: 7},
			{Label: "KSC LC-39A", Value: 10},
			{Label: "VAFB SLC-4E", Value: 0},
		},
	}

	var buf bytes.Buffer
	if err := Pie(&buf, fig, Options{}); err != nil {
		t.Fatalf("Pie: %v", err)
	}
	out := buf.String()
	if !strings.HasPrefix(strings.TrimSpace(out), "<svg") {
		t.Fatalf("output is not SVG: %.60q", out)
	}
	if !strings.Contains(out, "KSC LC-39A") {
		t.Error("slice label missing from SVG")
	}
}

func TestPieEmptyWritesPlaceholder(t *testing.T) {
	fig := model.PieFigure{Title: "Success vs. failed launches for site <Nowhere>", Slices: []model.PieSlice{}}

	var buf bytes.Buffer
	if err := Pie(&buf, fig, Options{Width: 300, Height: 200}); err != nil {
		t.Fatalf("Pie: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, EmptyMessage) {
		t.Error("placeholder message missing")
	}
	if !strings.Contains(out, "&lt;Nowhere&gt;") {
		t.Error("title not escaped in placeholder")
	}
	if !strings.Contains(out, `width="300"`) {
		t.Error("placeholder ignored the requested width")
	}
}

func TestScatterRendersSVG(t *testing.T) {
	fig := model.ScatterFigure{
		Title:      "Correlation between Payload and Success for All sites",
		Payload:    model.PayloadRange{Low: 0, High: 10000},
		Categories: []string{"FT", "B4"},
		Points: []model.ScatterPoint{
			{PayloadKg: 2490, Class: 1, BoosterCategory: "FT"},
			{PayloadKg: 6070, Class: 0, BoosterCategory: "B4"},
			{PayloadKg: 5300, Class: 1, BoosterCategory: "FT"},
		},
	}

	var buf bytes.Buffer
	if err := Scatter(&buf, fig, Options{Theme: theme.TokyoNight}); err != nil {
		t.Fatalf("Scatter: %v", err)
	}
	if !strings.Contains(buf.String(), "<svg") {
		t.Fatal("output is not SVG")
	}
}

func TestScatterDegenerateRange(t *testing.T) {
	fig := model.ScatterFigure{
		Title:      "single",
		Payload:    model.PayloadRange{Low: 2000, High: 2000},
		Categories: []string{"FT"},
		Points:     []model.ScatterPoint{{PayloadKg: 2000, Class: 1, BoosterCategory: "FT"}},
	}

	var buf bytes.Buffer
	if err := Scatter(&buf, fig, Options{Theme: theme.Terminal}); err != nil {
		t.Fatalf("Scatter with zero-width range: %v", err)
	}
}

func TestScatterEmptyWritesPlaceholder(t *testing.T) {
	var buf bytes.Buffer
	if err := Scatter(&buf, model.ScatterFigure{Title: "nothing"}, Options{}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), EmptyMessage) {
		t.Error("placeholder message missing")
	}
}

func TestXRange(t *testing.T) {
	got := xRange(model.PayloadRange{Low: 2000, High: 2000})
	if got.Width() != minRangeWidth || got.Low != 1500 {
		t.Errorf("xRange = %+v", got)
	}
	wide := model.PayloadRange{Low: 0, High: 9600}
	if xRange(wide) != wide {
		t.Error("xRange changed a wide range")
	}
}
