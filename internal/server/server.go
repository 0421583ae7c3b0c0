// Package server exposes the analysis pipeline over HTTP: a health probe, a
// canned test analysis, raw-text analysis, and multipart document upload.
package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/postlens/postlens/internal/analyzer"
	"github.com/postlens/postlens/internal/clients"
	"github.com/postlens/postlens/internal/db"
	"github.com/postlens/postlens/internal/extraction"
)

const (
	maxUploadBytes = 10 << 20
	serviceName    = "Social Media Content Analyzer"
)

type Config struct {
	Analyzer  *analyzer.Analyzer
	Extractor *extraction.Pipeline

	// Cache and History are optional collaborators; nil disables them.
	Cache   *clients.ValkeyClient
	History *db.HistoryWriter

	// PublishResults mirrors completed reports onto the results topic.
	PublishResults bool

	UploadDir string
	Logger    *slog.Logger
}

type Server struct {
	analyzer       *analyzer.Analyzer
	extractor      *extraction.Pipeline
	cache          *clients.ValkeyClient
	history        *db.HistoryWriter
	publishResults bool
	uploadDir      string
	logger         *slog.Logger
}

func New(cfg Config) *Server {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &Server{
		analyzer:       cfg.Analyzer,
		extractor:      cfg.Extractor,
		cache:          cfg.Cache,
		history:        cfg.History,
		publishResults: cfg.PublishResults,
		uploadDir:      cfg.UploadDir,
		logger:         cfg.Logger,
	}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", s.handleHealth)
		r.Get("/test-analysis", s.handleTestAnalysis)
		r.Post("/analyze", s.handleAnalyze)
		r.Post("/upload", s.handleUpload)
		if s.history != nil {
			r.Get("/history", s.handleHistory)
		}
	})

	return r
}
