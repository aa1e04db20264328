package web

import (
	"encoding/json"
	"net/http"

	"github.com/a-h/templ"
	"go.uber.org/zap"

	"github.com/theirongolddev/launchdash/internal/model"
	"github.com/theirongolddev/launchdash/internal/pipeline"
	"github.com/theirongolddev/launchdash/internal/render"
)

func (s *Service) dashboard(sel model.Selection) dashboardState {
	return dashboardState{
		Sites:     s.cfg.Sites,
		Selection: sel,
		Bounds:    s.table.PayloadBounds(),
		Step:      s.cfg.SliderStep,
		Pie:       pipeline.DerivePie(s.table, sel.Site),
		Scatter:   pipeline.DeriveScatter(s.table, sel),
		Render:    s.renderOptions(),
	}
}

func (s *Service) handleIndex(w http.ResponseWriter, r *http.Request) {
	sel, err := parseSelection(r.URL.Query(), s.table)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	templ.Handler(Page(s.dashboard(sel))).ServeHTTP(w, r)
}

// handlePieFragment recomputes only the pie. It never reads the slider.
func (s *Service) handlePieFragment(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	site := parseSite(q)
	if !IsHTMXRequest(r) {
		sel, err := parseSelection(q, s.table)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		RenderPage(w, r, nil, Page(s.dashboard(sel)))
		return
	}
	RenderPage(w, r, PiePane(pipeline.DerivePie(s.table, site), s.renderOptions()), nil)
}

func (s *Service) handleScatterFragment(w http.ResponseWriter, r *http.Request) {
	sel, err := parseSelection(r.URL.Query(), s.table)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if !IsHTMXRequest(r) {
		RenderPage(w, r, nil, Page(s.dashboard(sel)))
		return
	}
	RenderPage(w, r, ScatterPane(pipeline.DeriveScatter(s.table, sel), s.renderOptions()), nil)
}

func (s *Service) handlePieJSON(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, pipeline.DerivePie(s.table, parseSite(r.URL.Query())))
}

// scatterResponse is the /v1/scatter body. The figure's payload is the range
// applied after normalising into the dataset bounds. Requested echoes the
// query, and Clamped is set when the two differ.
type scatterResponse struct {
	model.ScatterFigure
	Requested model.PayloadRange `json:"requested"`
	Clamped   bool               `json:"clamped"`
}

func (s *Service) handleScatterJSON(w http.ResponseWriter, r *http.Request) {
	sel, requested, err := parseRequest(r.URL.Query(), s.table)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, scatterResponse{
		ScatterFigure: pipeline.DeriveScatter(s.table, sel),
		Requested:     requested,
		Clamped:       requested != sel.Payload,
	})
}

func (s *Service) handlePieSVG(w http.ResponseWriter, r *http.Request) {
	fig := pipeline.DerivePie(s.table, parseSite(r.URL.Query()))
	w.Header().Set("Content-Type", "image/svg+xml")
	if err := render.Pie(w, fig, s.renderOptions()); err != nil {
		s.logger.Error("render pie", zap.Error(err))
	}
}

func (s *Service) handleScatterSVG(w http.ResponseWriter, r *http.Request) {
	sel, err := parseSelection(r.URL.Query(), s.table)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	if err := render.Scatter(w, pipeline.DeriveScatter(s.table, sel), s.renderOptions()); err != nil {
		s.logger.Error("render scatter", zap.Error(err))
	}
}

func (s *Service) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok\n"))
}

func (s *Service) handleStatus(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, s.status())
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
