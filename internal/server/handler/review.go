// Package handler provides HTTP handlers for the Snippet-Warden application.
package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/sevigo/snippet-warden/internal/core"
	"github.com/sevigo/snippet-warden/internal/export"
	"github.com/sevigo/snippet-warden/internal/render"
)

// Texts returned to the browser.
const (
	NoCodeProvided = "# No code provided"
	NoCodeReviewed = "# No code reviewed yet"

	MsgReviewFailed    = "⚠️ Server Error while reviewing code. Check server logs."
	MsgRenderFailed    = "⚠️ Server Error while rendering report."
	MsgRendererMissing = "⚠️ wkhtmltopdf not configured or not found."
	MsgPDFFailed       = "⚠️ PDF generation failed. Check wkhtmltopdf installation."
)

const (
	pdfAttachmentName      = "code_review.pdf"
	markdownAttachmentName = "code_review.md"
)

// PDFRenderer converts a rendered HTML page into a PDF document.
type PDFRenderer interface {
	Render(ctx context.Context, html []byte) ([]byte, error)
}

// ReviewHandler serves the submission form, the report page and its exports.
type ReviewHandler struct {
	reviewer core.Reviewer
	store    core.ReportStore
	pages    *render.Renderer
	pdf      PDFRenderer
	logger   *slog.Logger
}

// NewReviewHandler creates the handler. pdf may be nil, in which case PDF
// downloads report a missing renderer.
func NewReviewHandler(reviewer core.Reviewer, store core.ReportStore, pages *render.Renderer, pdf PDFRenderer, logger *slog.Logger) *ReviewHandler {
	return &ReviewHandler{
		reviewer: reviewer,
		store:    store,
		pages:    pages,
		pdf:      pdf,
		logger:   logger,
	}
}

// Index serves the submission form.
func (h *ReviewHandler) Index(w http.ResponseWriter, _ *http.Request) {
	var buf bytes.Buffer
	if err := h.pages.Index(&buf); err != nil {
		h.logger.Error("failed to render index", "error", err)
		http.Error(w, MsgRenderFailed, http.StatusInternalServerError)
		return
	}
	writeHTML(w, buf.Bytes())
}

// Submit reviews a pasted or uploaded snippet and renders the report.
func (h *ReviewHandler) Submit(w http.ResponseWriter, r *http.Request) {
	sub, err := readSubmission(r)
	if err != nil {
		h.logger.Error("failed to read submission", "error", err)
		http.Error(w, MsgReviewFailed, http.StatusInternalServerError)
		return
	}

	report := h.reviewer.SafeReview(r.Context(), sub.Code, sub.FileName)
	h.store.Save(sub, report)

	var buf bytes.Buffer
	if err := h.pages.Review(&buf, render.NewReviewPage(sub.Code, report, false)); err != nil {
		h.logger.Error("failed to render review page", "error", err)
		http.Error(w, MsgReviewFailed, http.StatusInternalServerError)
		return
	}
	writeHTML(w, buf.Bytes())
}

// DownloadPDF exports the latest report as a PDF attachment.
func (h *ReviewHandler) DownloadPDF(w http.ResponseWriter, r *http.Request) {
	sub, report, _ := h.store.Latest()
	code := sub.Code
	if code == "" {
		code = NoCodeReviewed
	}

	var buf bytes.Buffer
	if err := h.pages.Review(&buf, render.NewReviewPage(code, report, true)); err != nil {
		h.logger.Error("failed to render export page", "error", err)
		http.Error(w, MsgRenderFailed, http.StatusInternalServerError)
		return
	}

	if h.pdf == nil {
		http.Error(w, MsgRendererMissing, http.StatusInternalServerError)
		return
	}
	doc, err := h.pdf.Render(r.Context(), buf.Bytes())
	if err != nil {
		if errors.Is(err, export.ErrRendererNotConfigured) {
			h.logger.Warn("pdf renderer unavailable", "error", err)
			http.Error(w, MsgRendererMissing, http.StatusInternalServerError)
			return
		}
		h.logger.Error("pdf generation failed", "error", err)
		http.Error(w, MsgPDFFailed, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename="+pdfAttachmentName)
	_, _ = w.Write(doc)
}

// DownloadMarkdown exports the latest report as a Markdown attachment.
func (h *ReviewHandler) DownloadMarkdown(w http.ResponseWriter, _ *http.Request) {
	_, report, ok := h.store.Latest()
	if !ok {
		report.Formatting = core.FormatResult{Original: NoCodeReviewed, Formatted: NoCodeReviewed}
	}

	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	w.Header().Set("Content-Disposition", "attachment; filename="+markdownAttachmentName)
	_, _ = io.WriteString(w, render.Markdown(report))
}

// APIReview reviews a JSON submission and returns the report as JSON.
func (h *ReviewHandler) APIReview(w http.ResponseWriter, r *http.Request) {
	var sub core.Submission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		h.logger.Debug("invalid review request", "error", err)
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	sub.Code = strings.TrimSpace(sub.Code)
	if sub.Code == "" {
		sub.Code = NoCodeProvided
	}

	report := h.reviewer.SafeReview(r.Context(), sub.Code, sub.FileName)
	h.store.Save(sub, report)
	writeJSON(w, http.StatusOK, report)
}

// readSubmission applies the intake rules: the trimmed code field, replaced by
// an uploaded .py file when present, and a placeholder when both are empty.
func readSubmission(r *http.Request) (core.Submission, error) {
	if err := r.ParseMultipartForm(32 << 20); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		return core.Submission{}, fmt.Errorf("failed to parse form: %w", err)
	}

	sub := core.Submission{Code: strings.TrimSpace(r.FormValue("code"))}

	file, header, err := r.FormFile("file")
	switch {
	case err == nil:
		defer file.Close()
		if strings.HasSuffix(strings.ToLower(header.Filename), ".py") {
			data, err := io.ReadAll(file)
			if err != nil {
				return core.Submission{}, fmt.Errorf("failed to read upload %s: %w", header.Filename, err)
			}
			sub.Code = strings.ToValidUTF8(string(data), "")
			sub.FileName = header.Filename
		}
	case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
	default:
		return core.Submission{}, fmt.Errorf("failed to open upload: %w", err)
	}

	if sub.Code == "" {
		sub.Code = NoCodeProvided
	}
	return sub, nil
}

func writeHTML(w http.ResponseWriter, body []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(body)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
