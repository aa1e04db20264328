package model

// PieSlice is one slice of a pie figure.
type PieSlice struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

// PieFigure is the chart data behind the success pie chart.
type PieFigure struct {
	Title  string     `json:"title"`
	Site   string     `json:"site"`
	Slices []PieSlice `json:"slices"`
}

// Total returns the sum of all slice values.
func (f PieFigure) Total() int {
	total := 0
	for _, s := range f.Slices {
		total += s.Value
	}
	return total
}

// Empty reports whether the figure has nothing to draw.
func (f PieFigure) Empty() bool {
	return f.Total() == 0
}

// ScatterPoint is one plotted launch in the payload/outcome scatter.
type ScatterPoint struct {
	PayloadKg       float64 `json:"payload_mass_kg"`
	Class           int     `json:"class"`
	BoosterCategory string  `json:"booster_version_category"`
	Site            string  `json:"launch_site"`
}

// ScatterSeries groups points that share a booster category (one colour).
type ScatterSeries struct {
	Category string
	Points   []ScatterPoint
}

// ScatterFigure is the chart data behind the payload/outcome scatter plot.
type ScatterFigure struct {
	Title      string         `json:"title"`
	Site       string         `json:"site"`
	Payload    PayloadRange   `json:"payload"`
	Categories []string       `json:"categories"`
	Points     []ScatterPoint `json:"points"`
}

// Empty reports whether the figure has no points.
func (f ScatterFigure) Empty() bool {
	return len(f.Points) == 0
}

// Series splits the points by booster category, in Categories order.
func (f ScatterFigure) Series() []ScatterSeries {
	idx := make(map[string]int, len(f.Categories))
	series := make([]ScatterSeries, len(f.Categories))
	for i, c := range f.Categories {
		idx[c] = i
		series[i].Category = c
	}
	for _, p := range f.Points {
		i, ok := idx[p.BoosterCategory]
		if !ok {
			continue
		}
		series[i].Points = append(series[i].Points, p)
	}
	return series
}
