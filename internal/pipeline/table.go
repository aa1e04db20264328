// Package pipeline loads launch datasets and derives chart figures from them.
package pipeline

import (
	"errors"
	"slices"

	"github.com/theirongolddev/launchdash/internal/model"
)

// ErrEmptyTable is returned when a dataset holds no launch records.
var ErrEmptyTable = errors.New("dataset has no launch records")

// Table is the read-only launch table built once at startup. It is safe for
// concurrent use because nothing mutates it after NewTable returns.
type Table struct {
	records []model.LaunchRecord
	sites   []string
	bounds  model.PayloadRange
}

// NewTable copies records into a new Table.
func NewTable(records []model.LaunchRecord) (*Table, error) {
	if len(records) == 0 {
		return nil, ErrEmptyTable
	}

	t := &Table{records: slices.Clone(records)}

	seen := make(map[string]struct{})
	t.bounds = model.PayloadRange{Low: records[0].PayloadKg, High: records[0].PayloadKg}
	for _, r := range t.records {
		if _, ok := seen[r.Site]; !ok {
			seen[r.Site] = struct{}{}
			t.sites = append(t.sites, r.Site)
		}
		t.bounds.Low = min(t.bounds.Low, r.PayloadKg)
		t.bounds.High = max(t.bounds.High, r.PayloadKg)
	}
	slices.Sort(t.sites)

	return t, nil
}

// Len returns the number of launch records.
func (t *Table) Len() int {
	return len(t.records)
}

// Records returns a copy of every record in file order.
func (t *Table) Records() []model.LaunchRecord {
	return slices.Clone(t.records)
}

// Sites returns the distinct launch sites, sorted.
func (t *Table) Sites() []string {
	return slices.Clone(t.sites)
}

// HasSite reports whether any record was launched from site.
func (t *Table) HasSite(site string) bool {
	_, found := slices.BinarySearch(t.sites, site)
	return found
}

// PayloadBounds returns the observed [min, max] payload of the table.
func (t *Table) PayloadBounds() model.PayloadRange {
	return t.bounds
}

// FullSelection is the initial dashboard state: every site over the full
// observed payload range.
func (t *Table) FullSelection() model.Selection {
	return model.Selection{Site: model.AllSites, Payload: t.bounds}
}
