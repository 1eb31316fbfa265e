// Package export converts rendered report pages into downloadable documents.
package export

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/sevigo/snippet-warden/internal/toolexec"
)

const wkhtmltopdfBinary = "wkhtmltopdf"

var (
	// ErrRendererNotConfigured is returned when wkhtmltopdf is neither
	// configured nor on PATH.
	ErrRendererNotConfigured = errors.New("pdf renderer not configured")
	// ErrRenderFailed wraps a wkhtmltopdf run that produced no document.
	ErrRenderFailed = errors.New("pdf rendering failed")
)

// PDFExporter renders HTML to PDF with wkhtmltopdf, streaming the page through
// stdin and reading the document from stdout.
type PDFExporter struct {
	runner toolexec.CommandRunner
	path   string
	logger *slog.Logger
}

// NewPDFExporter creates an exporter for the wkhtmltopdf binary at path, or on
// PATH when path is empty.
func NewPDFExporter(runner toolexec.CommandRunner, path string, logger *slog.Logger) *PDFExporter {
	return &PDFExporter{runner: runner, path: path, logger: logger}
}

// Available reports whether a renderer binary can be resolved.
func (e *PDFExporter) Available() bool {
	_, err := toolexec.Resolve(e.runner, e.path, wkhtmltopdfBinary)
	return err == nil
}

// Render converts a complete HTML document into PDF bytes.
func (e *PDFExporter) Render(ctx context.Context, html []byte) ([]byte, error) {
	path, err := toolexec.Resolve(e.runner, e.path, wkhtmltopdfBinary)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRendererNotConfigured, err)
	}

	res, err := e.runner.Run(ctx, toolexec.Command{
		Path:  path,
		Args:  []string{"--quiet", "--encoding", "utf-8", "-", "-"},
		Stdin: html,
	})
	if err != nil {
		if errors.Is(err, toolexec.ErrNotFound) {
			return nil, fmt.Errorf("%w: %w", ErrRendererNotConfigured, err)
		}
		return nil, fmt.Errorf("%w: %w", ErrRenderFailed, err)
	}
	// wkhtmltopdf exits 1 on recoverable page load errors while still writing
	// a usable document.
	if res.ExitCode != 0 && !(res.ExitCode == 1 && isPDF(res.Stdout)) {
		return nil, fmt.Errorf("%w: exit status %d: %s", ErrRenderFailed, res.ExitCode, strings.TrimSpace(string(res.Stderr)))
	}
	if !isPDF(res.Stdout) {
		return nil, fmt.Errorf("%w: renderer produced no document", ErrRenderFailed)
	}

	e.logger.Debug("pdf rendered", "html_bytes", len(html), "pdf_bytes", len(res.Stdout))
	return res.Stdout, nil
}

func isPDF(b []byte) bool {
	return bytes.HasPrefix(b, []byte("%PDF-"))
}
