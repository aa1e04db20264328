package web

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/a-h/templ"

	"github.com/theirongolddev/launchdash/internal/model"
	"github.com/theirongolddev/launchdash/internal/render"
	"github.com/theirongolddev/launchdash/internal/theme"
)

const (
	pageTitle         = "SpaceX Launch Records Dashboard"
	sitePlaceholder   = "Select a Launch Site here"
	allSitesLabel     = "All Sites"
	payloadRangeLabel = "Payload range (Kg):"
	htmxScriptURL     = "https://unpkg.com/htmx.org@2.0.4"
)

// dashboardState is everything the full page needs to render.
type dashboardState struct {
	Sites     []string
	Selection model.Selection
	Bounds    model.PayloadRange
	Step      float64
	Pie       model.PieFigure
	Scatter   model.ScatterFigure
	Render    render.Options
}

func esc(s string) string { return templ.EscapeString(s) }

func kg(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

// Page is the full dashboard document.
func Page(st dashboardState) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b bytes.Buffer
		b.WriteString("<!DOCTYPE html>\n<html lang=\"en\"><head><meta charset=\"utf-8\">")
		fmt.Fprintf(&b, "<title>%s</title>", esc(pageTitle))
		fmt.Fprintf(&b, "<script src=\"%s\"></script>", htmxScriptURL)
		b.WriteString("<style>")
		b.WriteString(stylesheet(st.Render.Theme))
		b.WriteString("</style></head><body>")
		fmt.Fprintf(&b, "<h1>%s</h1>", esc(pageTitle))

		b.WriteString(`<form id="controls" onsubmit="return false">`)
		if err := SiteDropdown(st.Sites, st.Selection.Site).Render(ctx, &b); err != nil {
			return err
		}
		b.WriteString(`<br>`)
		b.WriteString(`<div id="pie-pane" class="pane" hx-get="/fragments/pie" hx-trigger="change from:#site-dropdown" hx-include="#site-dropdown" hx-swap="innerHTML">`)
		if err := PiePane(st.Pie, st.Render).Render(ctx, &b); err != nil {
			return err
		}
		b.WriteString(`</div><br>`)
		fmt.Fprintf(&b, "<p>%s</p>", esc(payloadRangeLabel))
		if err := PayloadSlider(st.Bounds, st.Selection.Payload, st.Step).Render(ctx, &b); err != nil {
			return err
		}
		b.WriteString(`</form>`)
		b.WriteString(`<div id="scatter-pane" class="pane" hx-get="/fragments/scatter" hx-trigger="change from:#controls" hx-include="#controls" hx-swap="innerHTML">`)
		if err := ScatterPane(st.Scatter, st.Render).Render(ctx, &b); err != nil {
			return err
		}
		b.WriteString(`</div></body></html>`)

		_, err := w.Write(b.Bytes())
		return err
	})
}

// SiteDropdown is the launch-site <select>. ALL is listed first.
func SiteDropdown(sites []string, selected string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var b strings.Builder
		fmt.Fprintf(&b, `<select id="site-dropdown" name="site" title="%s" aria-label="%s">`,
			esc(sitePlaceholder), esc(sitePlaceholder))
		option := func(value, label string) {
			sel := ""
			if value == selected {
				sel = " selected"
			}
			fmt.Fprintf(&b, `<option value="%s"%s>%s</option>`, esc(value), sel, esc(label))
		}
		option(model.AllSites, allSitesLabel)
		for _, s := range sites {
			option(s, s)
		}
		// Keep a preselected site that is not in the configured list.
		if !model.IsAllSites(selected) && !slices.Contains(sites, selected) {
			option(selected, selected)
		}
		b.WriteString(`</select>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// PayloadSlider is a two-handle range control built from two range inputs.
// Marks are drawn at 0, 100 and the table bounds.
func PayloadSlider(bounds, value model.PayloadRange, step float64) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<div id="payload-slider" class="slider">`)
		handle := func(name, label string, v float64) {
			fmt.Fprintf(&b,
				`<label>%s <input type="range" name="%s" min="%s" max="%s" step="%s" value="%s" list="payload-marks" oninput="this.nextElementSibling.value=this.value"><output>%s</output></label>`,
				esc(label), name, kg(bounds.Low), kg(bounds.High), kg(step), kg(v), kg(v))
		}
		handle("low", "min", value.Low)
		handle("high", "max", value.High)

		b.WriteString(`<datalist id="payload-marks">`)
		for _, m := range sliderMarks(bounds) {
			fmt.Fprintf(&b, `<option value="%s" label="%s"></option>`, kg(m), kg(m))
		}
		b.WriteString(`</datalist><div class="marks">`)
		for _, m := range sliderMarks(bounds) {
			fmt.Fprintf(&b, `<span>%s</span>`, kg(m))
		}
		b.WriteString(`</div></div>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// sliderMarks returns the distinct marks 0, 100, min and max, ascending.
func sliderMarks(bounds model.PayloadRange) []float64 {
	marks := []float64{0, 100, bounds.Low, bounds.High}
	slices.Sort(marks)
	return slices.Compact(marks)
}

// PiePane is the swappable content of the pie pane.
func PiePane(fig model.PieFigure, opts render.Options) templ.Component {
	return chartPane("success-pie-chart", fig.Site, func(w io.Writer) error {
		return render.Pie(w, fig, opts)
	})
}

// ScatterPane is the swappable content of the scatter pane.
func ScatterPane(fig model.ScatterFigure, opts render.Options) templ.Component {
	return chartPane("success-payload-scatter-chart", fig.Site, func(w io.Writer) error {
		return render.Scatter(w, fig, opts)
	})
}

func chartPane(id, site string, draw func(io.Writer) error) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var b bytes.Buffer
		fmt.Fprintf(&b, `<figure id="%s" class="chart" data-site="%s">`, id, esc(site))
		if err := draw(&b); err != nil {
			return err
		}
		b.WriteString(`</figure>`)
		_, err := w.Write(b.Bytes())
		return err
	})
}

func stylesheet(t theme.Theme) string {
	t = t.RGB()
	return fmt.Sprintf(`body{background:%s;color:%s;font-family:sans-serif;max-width:960px;margin:0 auto;padding:1rem}
h1{text-align:center;color:%s;font-size:40px}
select,input{background:%s;color:%s;border:1px solid %s;padding:.3rem}
.pane{margin:1rem 0}.chart{margin:0;text-align:center}
.slider label{display:block;color:%s}.slider input{width:80%%}
.marks{display:flex;justify-content:space-between;color:%s;font-size:.8rem}
.htmx-request .chart{opacity:.6}`,
		t.Background, t.TextPrimary,
		t.Accent,
		t.Surface, t.TextPrimary, t.Border,
		t.TextMuted,
		t.TextDim)
}
