// Package source reads launch datasets from CSV files.
package source

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/theirongolddev/launchdash/internal/model"
)

// ParseFile reads a launch CSV file. Any malformed row fails the whole parse.
func ParseFile(path string) (ParseResult, error) {
	f, err := os.Open(path) //nolint:gosec // dataset path is configured by the local user
	if err != nil {
		return ParseResult{}, fmt.Errorf("opening dataset: %w", err)
	}
	defer func() { _ = f.Close() }()

	records, lines, err := Parse(f)
	if err != nil {
		return ParseResult{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	return ParseResult{Path: path, Records: records, Lines: lines}, nil
}

// Parse decodes launch records from CSV. The first row must be the header.
// It returns the records and the number of data lines read.
func Parse(r io.Reader) ([]model.LaunchRecord, int, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, 0, fmt.Errorf("empty file: %w", ErrMissingColumn)
		}
		return nil, 0, fmt.Errorf("reading header: %w", err)
	}

	idx, err := indexColumns(header)
	if err != nil {
		return nil, 0, err
	}

	var (
		records []model.LaunchRecord
		lines   int
	)
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, lines, fmt.Errorf("reading row: %w", err)
		}
		lines++
		line, _ := cr.FieldPos(0)

		if isBlank(row) {
			continue
		}

		rec, err := decodeRow(row, idx)
		if err != nil {
			return nil, lines, fmt.Errorf("line %d: %w", line, err)
		}
		records = append(records, rec)
	}

	return records, lines, nil
}

func indexColumns(header []string) (columnIndex, error) {
	pos := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		if _, dup := pos[h]; !dup {
			pos[h] = i
		}
	}

	var missing []string
	at := make([]int, len(RequiredColumns))
	for i, name := range RequiredColumns {
		p, ok := pos[name]
		if !ok {
			missing = append(missing, name)
		}
		at[i] = p
	}
	if len(missing) > 0 {
		return columnIndex{}, fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(missing, ", "))
	}
	// at follows RequiredColumns order.
	return columnIndex{site: at[0], payload: at[1], class: at[2], booster: at[3]}, nil
}

func decodeRow(row []string, idx columnIndex) (model.LaunchRecord, error) {
	if len(row) < idx.width() {
		return model.LaunchRecord{}, fmt.Errorf("%w: %d fields, want at least %d", ErrMalformedRow, len(row), idx.width())
	}

	site := strings.TrimSpace(row[idx.site])
	if site == "" {
		return model.LaunchRecord{}, fmt.Errorf("%w: empty %q", ErrMalformedRow, ColLaunchSite)
	}

	payload, err := strconv.ParseFloat(strings.TrimSpace(row[idx.payload]), 64)
	if err != nil || math.IsNaN(payload) || math.IsInf(payload, 0) || payload < 0 {
		return model.LaunchRecord{}, fmt.Errorf("%w: %q = %q", ErrMalformedRow, ColPayloadMass, row[idx.payload])
	}

	class, err := parseClass(row[idx.class])
	if err != nil {
		return model.LaunchRecord{}, err
	}

	return model.LaunchRecord{
		Site:            site,
		PayloadKg:       payload,
		BoosterCategory: strings.TrimSpace(row[idx.booster]),
		Class:           class,
	}, nil
}

// parseClass accepts "0"/"1" and their float spellings ("1.0").
func parseClass(s string) (int, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q = %q", ErrMalformedRow, ColClass, s)
	}
	switch v {
	case model.ClassFailure:
		return model.ClassFailure, nil
	case model.ClassSuccess:
		return model.ClassSuccess, nil
	}
	return 0, fmt.Errorf("%w: %q = %q, want 0 or 1", ErrMalformedRow, ColClass, s)
}

func isBlank(row []string) bool {
	for _, f := range row {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
