// Package model defines domain types for launchdash records, selections and figures.
package model

// Outcome class values.
const (
	ClassFailure = 0
	ClassSuccess = 1
)

// LaunchRecord is one row of the dataset: a single launch attempt and its outcome.
type LaunchRecord struct {
	Site            string  `json:"launch_site"`
	PayloadKg       float64 `json:"payload_mass_kg"`
	BoosterCategory string  `json:"booster_version_category"`
	Class           int     `json:"class"`
}

// Succeeded reports whether the launch outcome class is success.
func (r LaunchRecord) Succeeded() bool {
	return r.Class == ClassSuccess
}

// SiteSummary holds per-site launch counts for the summary views.
type SiteSummary struct {
	Site       string
	Launches   int
	Successes  int
	Failures   int
	MinPayload float64
	MaxPayload float64
}

// SuccessRate returns successes/launches in [0, 1], or 0 when there are no launches.
func (s SiteSummary) SuccessRate() float64 {
	if s.Launches == 0 {
		return 0
	}
	return float64(s.Successes) / float64(s.Launches)
}
