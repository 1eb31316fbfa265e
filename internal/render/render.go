// Package render turns review reports into HTML pages and Markdown documents.
package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/sevigo/snippet-warden/internal/core"
	"github.com/sevigo/snippet-warden/internal/diffview"
	"github.com/sevigo/snippet-warden/internal/rules"
)

//go:embed templates/*.html
var templateFiles embed.FS

const (
	indexTemplate  = "index.html"
	reviewTemplate = "review.html"
	layoutTemplate = "templates/layout.html"
)

// NoAIFeedback is shown when a report carries no AI commentary.
const NoAIFeedback = "⚠️ No AI feedback available"

// ReviewPage is the view model of review.html.
type ReviewPage struct {
	Code               string
	AIFeedback         string
	RuleFeedback       []string
	ComplexityFeedback []string
	LinterFeedback     string
	FormatError        string
	Diff               core.DiffView
	OriginalLines      []string
	FormattedLines     []string
	// ExportMode renders the page for PDF export: line-numbered listings
	// instead of preformatted blocks and no navigation.
	ExportMode bool
}

// NewReviewPage maps a report onto the review page, rebuilding the diff view
// from the report's formatting result.
func NewReviewPage(code string, report core.Report, exportMode bool) ReviewPage {
	ai := report.AIFeedback
	if ai == "" {
		ai = NoAIFeedback
	}
	original, formatted := report.Formatting.Original, report.Formatting.Formatted
	return ReviewPage{
		Code:               code,
		AIFeedback:         ai,
		RuleFeedback:       report.RuleFeedback,
		ComplexityFeedback: report.ComplexityFeedback,
		LinterFeedback:     report.LinterFeedback,
		FormatError:        report.Formatting.Error,
		Diff:               diffview.Build(original, formatted),
		OriginalLines:      rules.SplitLines(original),
		FormattedLines:     rules.SplitLines(formatted),
		ExportMode:         exportMode,
	}
}

// Renderer executes the embedded page templates.
type Renderer struct {
	pages map[string]*template.Template
}

// NewRenderer parses the embedded templates.
func NewRenderer() (*Renderer, error) {
	r := &Renderer{pages: make(map[string]*template.Template)}
	for _, name := range []string{indexTemplate, reviewTemplate} {
		tmpl, err := template.New(name).ParseFS(templateFiles, layoutTemplate, "templates/"+name)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		r.pages[name] = tmpl
	}
	return r, nil
}

// Index writes the submission form.
func (r *Renderer) Index(w io.Writer) error {
	return r.execute(w, indexTemplate, nil)
}

// Review writes the review report page.
func (r *Renderer) Review(w io.Writer, page ReviewPage) error {
	return r.execute(w, reviewTemplate, page)
}

func (r *Renderer) execute(w io.Writer, name string, data any) error {
	tmpl, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("template %s not loaded", name)
	}
	if err := tmpl.ExecuteTemplate(w, name, data); err != nil {
		return fmt.Errorf("failed to render %s: %w", name, err)
	}
	return nil
}
