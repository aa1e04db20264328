package render

import (
	"fmt"
	"io"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/theirongolddev/launchdash/internal/model"
)

// Pie renders the success pie as SVG. Zero-valued slices are left out of the
// drawing because they have no area; an all-zero figure gets a placeholder.
func Pie(w io.Writer, fig model.PieFigure, opts Options) error {
	o := opts.withDefaults()
	if fig.Empty() {
		return placeholder(w, fig.Title, o)
	}

	total := fig.Total()
	values := make([]chart.Value, 0, len(fig.Slices))
	for i, s := range fig.Slices {
		if s.Value == 0 {
			continue
		}
		share := float64(s.Value) / float64(total) * 100
		values = append(values, chart.Value{
			Label: fmt.Sprintf("%s (%.1f%%)", s.Label, share),
			Value: float64(s.Value),
			Style: chart.Style{
				FillColor:   o.color(o.Theme.SeriesColor(i)),
				StrokeColor: o.color(o.Theme.Background),
				FontColor:   o.color(o.Theme.TextPrimary),
				FontSize:    10,
			},
		})
	}

	pie := chart.PieChart{
		Title:      fig.Title,
		TitleStyle: o.titleStyle(),
		Width:      o.Width,
		Height:     o.Height,
		Background: o.background(),
		Canvas:     o.background(),
		Values:     values,
	}
	if err := pie.Render(chart.SVG, w); err != nil {
		return fmt.Errorf("rendering pie: %w", err)
	}
	return nil
}
