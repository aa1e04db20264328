package pipeline

import (
	"strconv"

	"github.com/theirongolddev/launchdash/internal/model"
)

const (
	pieTitleAll        = "Total successful launches by site"
	pieTitleSite       = "Success vs. failed launches for site "
	scatterTitleAll    = "Correlation between Payload and Success for All sites"
	scatterTitlePrefix = "Correlation between Payload and Success for site "
)

// DerivePie builds the success pie for site. For ALL it sums the outcome
// class per site; for a single site it counts launches per outcome class.
// An unknown site yields a figure with no slices.
func DerivePie(t *Table, site string) model.PieFigure {
	if model.IsAllSites(site) {
		totals := SumClassBySite(t.records)
		fig := model.PieFigure{
			Title:  pieTitleAll,
			Site:   model.AllSites,
			Slices: make([]model.PieSlice, 0, len(totals)),
		}
		for _, st := range totals {
			fig.Slices = append(fig.Slices, model.PieSlice{Label: st.Site, Value: st.Total})
		}
		return fig
	}

	counts := CountByClass(FilterBySite(t.records, site))
	fig := model.PieFigure{
		Title:  pieTitleSite + site,
		Site:   site,
		Slices: make([]model.PieSlice, 0, len(counts)),
	}
	for _, cc := range counts {
		fig.Slices = append(fig.Slices, model.PieSlice{Label: strconv.Itoa(cc.Class), Value: cc.Count})
	}
	return fig
}

// DeriveScatter builds the payload/outcome scatter for sel. Payload
// filtering is strict on both bounds and points keep table order.
func DeriveScatter(t *Table, sel model.Selection) model.ScatterFigure {
	fig := model.ScatterFigure{
		Title:      scatterTitleAll,
		Site:       model.AllSites,
		Payload:    sel.Payload,
		Categories: []string{},
		Points:     []model.ScatterPoint{},
	}
	if !sel.IsAll() {
		fig.Title = scatterTitlePrefix + sel.Site
		fig.Site = sel.Site
	}

	seen := make(map[string]struct{})
	for _, r := range FilterBySite(FilterByPayload(t.records, sel.Payload), fig.Site) {
		fig.Points = append(fig.Points, model.ScatterPoint{
			PayloadKg:       r.PayloadKg,
			Class:           r.Class,
			BoosterCategory: r.BoosterCategory,
			Site:            r.Site,
		})
		if _, ok := seen[r.BoosterCategory]; !ok {
			seen[r.BoosterCategory] = struct{}{}
			fig.Categories = append(fig.Categories, r.BoosterCategory)
		}
	}
	return fig
}
