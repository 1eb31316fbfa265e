package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/sevigo/snippet-warden/internal/config"
	"github.com/sevigo/snippet-warden/internal/server/handler"
)

// NewRouter creates and configures a new HTTP router with middleware, the
// browser routes and the JSON API.
func NewRouter(cfg *config.Config, reviews *handler.ReviewHandler, logger *slog.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Configure middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(middleware.RequestSize(cfg.Server.UploadMaxBytes))

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	r.Get("/", reviews.Index)
	r.Get("/review", reviews.Index)
	r.Post("/review", reviews.Submit)
	r.Get("/download_report", reviews.DownloadPDF)
	r.Get("/download_report.md", reviews.DownloadMarkdown)

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/review", reviews.APIReview)
	})

	logger.Debug("routes registered", "upload_max_bytes", cfg.Server.UploadMaxBytes)
	return r
}
