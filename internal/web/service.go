// Package web serves the launch dashboard and its JSON and SVG endpoints.
package web

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/theirongolddev/launchdash/internal/model"
	"github.com/theirongolddev/launchdash/internal/pipeline"
	"github.com/theirongolddev/launchdash/internal/render"
	"github.com/theirongolddev/launchdash/internal/theme"
)

// DefaultAddr is the listen address used when none is configured.
const DefaultAddr = "127.0.0.1:8050"

const shutdownTimeout = 5 * time.Second

// Config controls the dashboard server.
type Config struct {
	Addr        string
	DataFile    string
	Sites       []string // dropdown entries after "All Sites"
	SliderStep  float64
	ChartWidth  int
	ChartHeight int
	Theme       theme.Theme
	CacheHit    bool
}

// Status is served at /v1/status.
type Status struct {
	StartedAt     time.Time          `json:"started_at"`
	DataFile      string             `json:"data_file"`
	Records       int                `json:"records"`
	Sites         []string           `json:"sites"`
	PayloadBounds model.PayloadRange `json:"payload_bounds"`
	Requests      int64              `json:"requests"`
	CacheHit      bool               `json:"cache_hit"`
}

// Service is the dashboard HTTP service. The table is shared read-only
// across handlers.
type Service struct {
	cfg    Config
	table  *pipeline.Table
	logger *zap.Logger

	startedAt time.Time
	requests  atomic.Int64
}

// New returns a dashboard service over table.
func New(table *pipeline.Table, cfg Config, logger *zap.Logger) *Service {
	if cfg.Addr == "" {
		cfg.Addr = DefaultAddr
	}
	if len(cfg.Sites) == 0 {
		cfg.Sites = model.DefaultSites
	}
	if cfg.SliderStep <= 0 {
		cfg.SliderStep = 1000
	}
	if cfg.Theme.Name == "" {
		cfg.Theme = theme.Active
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Service{
		cfg:       cfg,
		table:     table,
		logger:    logger,
		startedAt: time.Now(),
	}
}

// Handler returns the routed dashboard handler wrapped in request logging.
func (s *Service) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("GET /fragments/pie", s.handlePieFragment)
	mux.HandleFunc("GET /fragments/scatter", s.handleScatterFragment)
	mux.HandleFunc("GET /v1/pie", s.handlePieJSON)
	mux.HandleFunc("GET /v1/scatter", s.handleScatterJSON)
	mux.HandleFunc("GET /charts/pie.svg", s.handlePieSVG)
	mux.HandleFunc("GET /charts/scatter.svg", s.handleScatterSVG)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /v1/status", s.handleStatus)
	return s.logRequests(mux)
}

// Listen binds the configured address. Pass the listener to Serve.
func (s *Service) Listen() (net.Listener, error) {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return nil, fmt.Errorf("listening on %s: %w", s.cfg.Addr, err)
	}
	return ln, nil
}

// Serve serves on ln until ctx is canceled, then shuts down gracefully.
func (s *Service) Serve(ctx context.Context, ln net.Listener) error {
	server := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	s.logger.Info("dashboard listening",
		zap.String("addr", ln.Addr().String()),
		zap.String("data_file", s.cfg.DataFile),
		zap.Int("records", s.table.Len()))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("dashboard http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		s.logger.Info("dashboard shutting down")
		return server.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func (s *Service) status() Status {
	return Status{
		StartedAt:     s.startedAt,
		DataFile:      s.cfg.DataFile,
		Records:       s.table.Len(),
		Sites:         s.table.Sites(),
		PayloadBounds: s.table.PayloadBounds(),
		Requests:      s.requests.Load(),
		CacheHit:      s.cfg.CacheHit,
	}
}

func (s *Service) renderOptions() render.Options {
	return render.Options{Width: s.cfg.ChartWidth, Height: s.cfg.ChartHeight, Theme: s.cfg.Theme}
}
