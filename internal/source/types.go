package source

import (
	"errors"

	"github.com/theirongolddev/launchdash/internal/model"
)

// Header names of the columns launchdash reads. Other columns are ignored.
const (
	ColLaunchSite      = "Launch Site"
	ColPayloadMass     = "Payload Mass (kg)"
	ColClass           = "class"
	ColBoosterCategory = "Booster Version Category"
)

// RequiredColumns lists every header a launch dataset must carry.
var RequiredColumns = []string{ColLaunchSite, ColPayloadMass, ColClass, ColBoosterCategory}

var (
	// ErrMissingColumn is returned when the header lacks a required column.
	ErrMissingColumn = errors.New("missing required column")
	// ErrMalformedRow is returned when a data row cannot be decoded.
	ErrMalformedRow = errors.New("malformed row")
)

// ParseResult holds the output of parsing one dataset file.
type ParseResult struct {
	Path    string
	Records []model.LaunchRecord
	Lines   int // data lines read, excluding the header
}

// columnIndex maps required headers to their position in a row.
type columnIndex struct {
	site, payload, class, booster int
}

func (ci columnIndex) width() int {
	return max(ci.site, ci.payload, ci.class, ci.booster) + 1
}
