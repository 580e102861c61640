// Package server is the web shell around the parsing core: upload and paste
// forms, conversion endpoints, one-shot download handoff, health and
// metrics. It holds no state beyond the injected download store.
package server

import (
	"net/http"

	"github.com/quantfold/wfo-parser/internal/logger"
	"github.com/quantfold/wfo-parser/internal/monitoring"
	"github.com/quantfold/wfo-parser/pkg/config"
	"github.com/quantfold/wfo-parser/pkg/reporting"
)

// Server wires the HTTP routes to the parsing core.
type Server struct {
	cfg    *config.ServerConfig
	log    *logger.Logger
	store  DownloadStore
	excel  reporting.ExcelReporter
	health *monitoring.HealthChecker
}

// New creates a Server with its collaborators injected.
func New(cfg *config.ServerConfig, log *logger.Logger, store DownloadStore, excel reporting.ExcelReporter) *Server {
	return &Server{
		cfg:    cfg,
		log:    log,
		store:  store,
		excel:  excel,
		health: monitoring.NewHealthChecker(),
	}
}

// Handler returns the route multiplexer for the web shell.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		s.renderPage(w, "launcher", nil)
	})
	mux.HandleFunc("GET /wfo", func(w http.ResponseWriter, r *http.Request) {
		s.renderPage(w, "wfo_form", nil)
	})
	mux.HandleFunc("GET /equity", func(w http.ResponseWriter, r *http.Request) {
		s.renderPage(w, "equity_form", nil)
	})
	mux.HandleFunc("POST /convert", s.handleConvert)
	mux.HandleFunc("POST /equity/render", s.handleEquity)
	mux.HandleFunc("GET /download/{id}", s.handleDownload)

	mux.Handle("GET /healthz", s.health)
	mux.Handle("GET /metrics", monitoring.NewMetricsHandler())

	return mux
}

// ListenAndServe runs the web shell until the listener fails.
func (s *Server) ListenAndServe() error {
	s.log.Info("listening on %s", s.cfg.ListenAddr)
	return http.ListenAndServe(s.cfg.ListenAddr, s.Handler())
}
