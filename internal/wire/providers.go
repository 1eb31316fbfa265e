package wire

import (
	"errors"
	"io"
	"log/slog"

	"github.com/google/wire"

	"github.com/sevigo/snippet-warden/internal/analysis"
	"github.com/sevigo/snippet-warden/internal/app"
	"github.com/sevigo/snippet-warden/internal/config"
	"github.com/sevigo/snippet-warden/internal/core"
	"github.com/sevigo/snippet-warden/internal/export"
	"github.com/sevigo/snippet-warden/internal/logger"
	"github.com/sevigo/snippet-warden/internal/render"
	"github.com/sevigo/snippet-warden/internal/review"
	"github.com/sevigo/snippet-warden/internal/rules"
	"github.com/sevigo/snippet-warden/internal/server"
	"github.com/sevigo/snippet-warden/internal/server/handler"
	"github.com/sevigo/snippet-warden/internal/storage"
	"github.com/sevigo/snippet-warden/internal/toolexec"
)

// AppSet builds the application for the server, with logging as configured.
var AppSet = wire.NewSet(
	config.LoadConfig,
	coreSet,
)

// CLISet builds the application for the CLI, whose stdout carries the report.
var CLISet = wire.NewSet(
	provideCLIConfig,
	coreSet,
)

var coreSet = wire.NewSet(
	app.NewApp,
	server.NewServer,
	handler.NewReviewHandler,
	review.NewReviewer,
	storage.NewLatestStore,
	render.NewRenderer,
	toolexec.NewOSRunner,
	wire.Bind(new(core.Reviewer), new(*review.Reviewer)),
	wire.Bind(new(core.ReportStore), new(*storage.LatestStore)),
	wire.Bind(new(toolexec.CommandRunner), new(*toolexec.OSRunner)),
	wire.Bind(new(handler.PDFRenderer), new(*export.PDFExporter)),
	provideLoggerConfig,
	provideLogWriter,
	provideSlogLogger,
	provideReviewSettings,
	provideAIReviewer,
	provideRuleChecker,
	provideComplexityAnalyzer,
	provideLinter,
	provideFormatter,
	providePDFExporter,
)

func provideCLIConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	cfg.Logging = cliLogging(cfg.Logging)
	return cfg, nil
}

// cliLogging moves stdout logging to stderr. File logging is kept.
func cliLogging(cfg logger.Config) logger.Config {
	if cfg.Output != "file" {
		cfg.Output = "stderr"
	}
	return cfg
}

func provideLoggerConfig(cfg *config.Config) logger.Config {
	return cfg.Logging
}

func provideLogWriter(cfg logger.Config) (io.Writer, func()) {
	w, closeFn := cfg.Writer()
	return w, func() { _ = closeFn() }
}

func provideSlogLogger(cfg logger.Config, w io.Writer) *slog.Logger {
	return logger.NewLogger(cfg, w)
}

func provideReviewSettings(cfg *config.Config, logger *slog.Logger) (*core.ReviewSettings, error) {
	settings, err := config.LoadReviewSettings(cfg.ReviewSettingsPath)
	if errors.Is(err, config.ErrSettingsNotFound) {
		logger.Debug("no review settings file, using defaults", "path", cfg.ReviewSettingsPath)
		return settings, nil
	}
	return settings, err
}

func provideAIReviewer(logger *slog.Logger) core.AIReviewer {
	return analysis.NewStubAIReviewer(logger)
}

func provideRuleChecker(settings *core.ReviewSettings) core.RuleChecker {
	return rules.NewChecker(settings.MaxLineLength)
}

func provideComplexityAnalyzer(cfg *config.Config, settings *core.ReviewSettings, logger *slog.Logger) core.ComplexityAnalyzer {
	var engine analysis.ComplexityEngine
	if cfg.Tools.ComplexityEnabled {
		engine = analysis.NewTreeSitterEngine()
	}
	return analysis.NewComplexityAnalyzer(engine, settings.Complexity, logger)
}

func provideLinter(cfg *config.Config, runner toolexec.CommandRunner, logger *slog.Logger) core.Linter {
	return analysis.NewFlake8Linter(runner, cfg.Tools.Flake8Path, "", logger)
}

func provideFormatter(cfg *config.Config, settings *core.ReviewSettings, runner toolexec.CommandRunner, logger *slog.Logger) core.Formatter {
	return analysis.NewBlackFormatter(runner, cfg.Tools.BlackPath, settings.BlackLineLength, logger)
}

func providePDFExporter(cfg *config.Config, runner toolexec.CommandRunner, logger *slog.Logger) *export.PDFExporter {
	return export.NewPDFExporter(runner, cfg.Tools.WkhtmltopdfPath, logger)
}
