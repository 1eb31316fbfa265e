// Package app initializes and orchestrates the main components of the Snippet Warden application.
// It holds the configuration, the review pipeline and the HTTP server.
package app

import (
	"context"
	"log/slog"

	"github.com/sevigo/snippet-warden/internal/config"
	"github.com/sevigo/snippet-warden/internal/core"
	"github.com/sevigo/snippet-warden/internal/export"
	"github.com/sevigo/snippet-warden/internal/render"
	"github.com/sevigo/snippet-warden/internal/server"
)

// App holds the main application components. The exported fields are shared
// with the CLI, which runs reviews without starting the server.
type App struct {
	Cfg      *config.Config
	Settings *core.ReviewSettings
	Reviewer core.Reviewer
	Store    core.ReportStore
	Pages    *render.Renderer
	PDF      *export.PDFExporter
	Logger   *slog.Logger

	ctx    context.Context
	server *server.Server
}

// NewApp sets up the application with all its dependencies.
func NewApp(
	ctx context.Context,
	cfg *config.Config,
	settings *core.ReviewSettings,
	reviewer core.Reviewer,
	store core.ReportStore,
	pages *render.Renderer,
	pdf *export.PDFExporter,
	srv *server.Server,
	logger *slog.Logger,
) *App {
	logger.Info("Snippet Warden application initialized",
		"max_line_length", settings.MaxLineLength,
		"black_line_length", settings.BlackLineLength,
		"complexity_enabled", cfg.Tools.ComplexityEnabled,
		"pdf_export", pdf.Available())

	return &App{
		Cfg:      cfg,
		Settings: settings,
		Reviewer: reviewer,
		Store:    store,
		Pages:    pages,
		PDF:      pdf,
		Logger:   logger,
		ctx:      ctx,
		server:   srv,
	}
}

// Start runs the HTTP server.
func (a *App) Start() error {
	a.Logger.Info("starting Snippet Warden", "server_port", a.Cfg.Server.Port)

	err := a.server.Start()
	if err != nil {
		a.Logger.Error("failed to start HTTP server", "error", err)
		return err
	}

	return nil
}

// Stop shuts down the application cleanly.
func (a *App) Stop() error {
	a.Logger.Info("shutting down Snippet Warden services")

	if err := a.server.Stop(); err != nil {
		a.Logger.Error("Snippet Warden stopped with errors", "error", err)
		return err
	}

	a.Logger.Info("Snippet Warden stopped successfully")
	return nil
}
