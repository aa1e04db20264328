package pipeline

import (
	"cmp"
	"slices"

	"github.com/theirongolddev/launchdash/internal/model"
)

// FilterBySite returns the records launched from site. ALL keeps every record.
func FilterBySite(records []model.LaunchRecord, site string) []model.LaunchRecord {
	if model.IsAllSites(site) {
		return records
	}
	var out []model.LaunchRecord
	for _, r := range records {
		if r.Site == site {
			out = append(out, r)
		}
	}
	return out
}

// FilterByPayload returns the records whose payload lies strictly inside r.
func FilterByPayload(records []model.LaunchRecord, r model.PayloadRange) []model.LaunchRecord {
	var out []model.LaunchRecord
	for _, rec := range records {
		if r.Contains(rec.PayloadKg) {
			out = append(out, rec)
		}
	}
	return out
}

// SiteTotal is the summed outcome class of one launch site.
type SiteTotal struct {
	Site  string
	Total int
}

// SumClassBySite sums the outcome class per site, sorted by site name.
// Sites with no successes are kept with a zero total.
func SumClassBySite(records []model.LaunchRecord) []SiteTotal {
	totals := make(map[string]int)
	for _, r := range records {
		totals[r.Site] += r.Class
	}

	out := make([]SiteTotal, 0, len(totals))
	for site, total := range totals {
		out = append(out, SiteTotal{Site: site, Total: total})
	}
	slices.SortFunc(out, func(a, b SiteTotal) int {
		return cmp.Compare(a.Site, b.Site)
	})
	return out
}

// ClassCount is the number of records sharing an outcome class.
type ClassCount struct {
	Class int
	Count int
}

// CountByClass counts records per outcome class. Only classes that occur are
// returned, in ascending order.
func CountByClass(records []model.LaunchRecord) []ClassCount {
	counts := make(map[int]int)
	for _, r := range records {
		counts[r.Class]++
	}

	out := make([]ClassCount, 0, len(counts))
	for class, n := range counts {
		out = append(out, ClassCount{Class: class, Count: n})
	}
	slices.SortFunc(out, func(a, b ClassCount) int {
		return cmp.Compare(a.Class, b.Class)
	})
	return out
}

// SummarizeSites computes per-site launch counts and payload extremes,
// sorted by site name.
func SummarizeSites(records []model.LaunchRecord) []model.SiteSummary {
	siteMap := make(map[string]*model.SiteSummary)

	for _, r := range records {
		ss, ok := siteMap[r.Site]
		if !ok {
			ss = &model.SiteSummary{Site: r.Site, MinPayload: r.PayloadKg, MaxPayload: r.PayloadKg}
			siteMap[r.Site] = ss
		}
		ss.Launches++
		if r.Succeeded() {
			ss.Successes++
		} else {
			ss.Failures++
		}
		ss.MinPayload = min(ss.MinPayload, r.PayloadKg)
		ss.MaxPayload = max(ss.MaxPayload, r.PayloadKg)
	}

	summaries := make([]model.SiteSummary, 0, len(siteMap))
	for _, ss := range siteMap {
		summaries = append(summaries, *ss)
	}
	slices.SortFunc(summaries, func(a, b model.SiteSummary) int {
		return cmp.Compare(a.Site, b.Site)
	})
	return summaries
}

// TotalSummary folds per-site summaries into one row.
func TotalSummary(sites []model.SiteSummary) model.SiteSummary {
	total := model.SiteSummary{Site: "Total"}
	for i, s := range sites {
		total.Launches += s.Launches
		total.Successes += s.Successes
		total.Failures += s.Failures
		if i == 0 {
			total.MinPayload, total.MaxPayload = s.MinPayload, s.MaxPayload
			continue
		}
		total.MinPayload = min(total.MinPayload, s.MinPayload)
		total.MaxPayload = max(total.MaxPayload, s.MaxPayload)
	}
	return total
}
