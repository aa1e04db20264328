package model

import "strings"

// AllSites is the dropdown sentinel selecting every launch site.
const AllSites = "ALL"

// DefaultSites is the fixed dropdown site list shipped with the dashboard.
var DefaultSites = []string{
	"CCAFS LC-40",
	"CCAFS SLC-40",
	"KSC LC-39A",
	"VAFB SLC-4E",
}

// PayloadRange is a payload interval in kilograms.
type PayloadRange struct {
	Low  float64 `json:"low"`
	High float64 `json:"high"`
}

// Contains reports whether kg lies strictly inside the range.
// Boundary-exact payloads are excluded.
func (r PayloadRange) Contains(kg float64) bool {
	return r.Low < kg && kg < r.High
}

// Width returns High - Low.
func (r PayloadRange) Width() float64 {
	return r.High - r.Low
}

// Normalize orders the bounds and clamps them into limits.
func (r PayloadRange) Normalize(limits PayloadRange) PayloadRange {
	if r.Low > r.High {
		r.Low, r.High = r.High, r.Low
	}
	r.Low = clamp(r.Low, limits.Low, limits.High)
	r.High = clamp(r.High, limits.Low, limits.High)
	return r
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Selection is the current (site, payload range) filter chosen by the user.
type Selection struct {
	Site    string       `json:"site"`
	Payload PayloadRange `json:"payload"`
}

// IsAll reports whether the selection covers every site.
func (s Selection) IsAll() bool {
	return IsAllSites(s.Site)
}

// IsAllSites reports whether site is the ALL sentinel. An empty site means ALL.
func IsAllSites(site string) bool {
	site = strings.TrimSpace(site)
	return site == "" || site == AllSites
}
