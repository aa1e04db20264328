package render

import (
	"fmt"
	"io"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/theirongolddev/launchdash/internal/model"
)

// minRangeWidth is the smallest x-axis span drawn, in kg.
const minRangeWidth = 1000.0

// Scatter renders the payload/outcome scatter as SVG, one coloured series per
// booster category.
func Scatter(w io.Writer, fig model.ScatterFigure, opts Options) error {
	o := opts.withDefaults()
	if fig.Empty() {
		return placeholder(w, fig.Title, o)
	}

	series := make([]chart.Series, 0, len(fig.Categories))
	for i, s := range fig.Series() {
		if len(s.Points) == 0 {
			continue
		}
		xs := make([]float64, len(s.Points))
		ys := make([]float64, len(s.Points))
		for j, p := range s.Points {
			xs[j] = p.PayloadKg
			ys[j] = float64(p.Class)
		}
		col := o.color(o.Theme.SeriesColor(i))
		series = append(series, chart.ContinuousSeries{
			Name:    s.Category,
			XValues: xs,
			YValues: ys,
			Style: chart.Style{
				StrokeWidth: chart.Disabled,
				StrokeColor: col,
				DotWidth:    5,
				DotColor:    col,
			},
		})
	}

	xr := xRange(fig.Payload)
	ch := chart.Chart{
		Title:      fig.Title,
		TitleStyle: o.titleStyle(),
		Width:      o.Width,
		Height:     o.Height,
		Background: chart.Style{
			FillColor: o.color(o.Theme.Background),
			Padding:   chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16},
		},
		Canvas: o.background(),
		XAxis: chart.XAxis{
			Name:           "Payload Mass (kg)",
			NameStyle:      o.axisStyle(),
			Style:          o.axisStyle(),
			Range:          &chart.ContinuousRange{Min: xr.Low, Max: xr.High},
			ValueFormatter: massFormatter,
		},
		YAxis: chart.YAxis{
			Name:      "class",
			NameStyle: o.axisStyle(),
			Style:     o.axisStyle(),
			Range:     &chart.ContinuousRange{Min: -0.25, Max: 1.25},
			Ticks: []chart.Tick{
				{Value: -0.25, Label: ""},
				{Value: 0, Label: "0"},
				{Value: 1, Label: "1"},
				{Value: 1.25, Label: ""},
			},
		},
		Series: series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch, chart.Style{
		FillColor:   o.color(o.Theme.Surface),
		FontColor:   o.color(o.Theme.TextMuted),
		StrokeColor: o.color(o.Theme.Border),
	})}

	if err := ch.Render(chart.SVG, w); err != nil {
		return fmt.Errorf("rendering scatter: %w", err)
	}
	return nil
}

// xRange widens degenerate selections so the axis has a non-zero span.
func xRange(r model.PayloadRange) model.PayloadRange {
	if r.Width() >= minRangeWidth {
		return r
	}
	mid := (r.Low + r.High) / 2
	return model.PayloadRange{Low: mid - minRangeWidth/2, High: mid + minRangeWidth/2}
}

func massFormatter(v any) string {
	if f, ok := v.(float64); ok {
		return fmt.Sprintf("%.0f", f)
	}
	return ""
}
