package web

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/theirongolddev/launchdash/internal/model"
	"github.com/theirongolddev/launchdash/internal/pipeline"
)

// parseSite reads the site query value. Missing means ALL.
func parseSite(q url.Values) string {
	site := strings.TrimSpace(q.Get("site"))
	if model.IsAllSites(site) {
		return model.AllSites
	}
	return site
}

// parseSelection reads site, low and high from q and normalises the payload
// range into the table bounds. A missing bound defaults to the table bound.
func parseSelection(q url.Values, t *pipeline.Table) (model.Selection, error) {
	sel, _, err := parseRequest(q, t)
	return sel, err
}

// parseRequest is parseSelection that also returns the range as asked for,
// before swapping and clamping.
func parseRequest(q url.Values, t *pipeline.Table) (model.Selection, model.PayloadRange, error) {
	bounds := t.PayloadBounds()
	requested := bounds

	var err error
	if requested.Low, err = parseBound(q, "low", bounds.Low); err != nil {
		return model.Selection{}, model.PayloadRange{}, err
	}
	if requested.High, err = parseBound(q, "high", bounds.High); err != nil {
		return model.Selection{}, model.PayloadRange{}, err
	}
	sel := model.Selection{Site: parseSite(q), Payload: requested.Normalize(bounds)}
	return sel, requested, nil
}

func parseBound(q url.Values, key string, fallback float64) (float64, error) {
	raw := strings.TrimSpace(q.Get(key))
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("invalid %s %q: want a payload mass in kg", key, raw)
	}
	return v, nil
}
