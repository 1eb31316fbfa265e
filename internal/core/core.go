// Package core defines the essential interfaces and data structures that form the
// backbone of the application. Analysis backends, the review orchestrator and
// the presentation layer only meet through the types declared here.
package core

import (
	"context"
)

//go:generate go run go.uber.org/mock/mockgen -destination=mocks/mock_core.go -package=mocks . AIReviewer,RuleChecker,ComplexityAnalyzer,Linter,Formatter

// AIReviewer produces free-form commentary on a snippet.
type AIReviewer interface {
	Review(ctx context.Context, code string) string
}

// RuleChecker scans a snippet for style smells and returns one message per
// finding, in line order.
type RuleChecker interface {
	Check(code string) []string
}

// ComplexityAnalyzer reports functions whose cyclomatic complexity is above
// the configured thresholds. Unavailability is reported as an entry, never as
// a panic.
type ComplexityAnalyzer interface {
	Analyze(ctx context.Context, code string) []string
}

// Linter runs an external linter over a snippet and returns its findings as
// preformatted text.
type Linter interface {
	Lint(ctx context.Context, code string) string
}

// Formatter reformats a snippet. On any failure the original text is returned
// as the formatted text together with an explanatory error message.
type Formatter interface {
	Format(ctx context.Context, code string) FormatResult
}

// Reviewer runs every backend over a submission and aggregates the results.
type Reviewer interface {
	// SafeReview never panics and always returns a complete report.
	SafeReview(ctx context.Context, code, filePath string) Report
}

// ReportStore keeps the most recent submission and its report.
type ReportStore interface {
	Save(sub Submission, report Report)
	Latest() (Submission, Report, bool)
}
