// Package review runs the analysis backends over a submission and assembles
// the report.
package review

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/sevigo/snippet-warden/internal/core"
)

// Placeholders used when the review sequence fails as a whole.
const (
	FallbackAIFeedback         = "⚠️ AI Reviewer could not complete the review."
	FallbackRuleFeedback       = "⚠️ Rule-based checks unavailable due to error."
	FallbackComplexityFeedback = "⚠️ Complexity analysis failed."
	FallbackLinterFeedback     = "⚠️ Style check failed."
)

// Reviewer sequences the backends. Each backend is called exactly once per
// review, in a fixed order, and only ever sees the submitted code.
type Reviewer struct {
	ai         core.AIReviewer
	rules      core.RuleChecker
	complexity core.ComplexityAnalyzer
	linter     core.Linter
	formatter  core.Formatter
	logger     *slog.Logger
}

// NewReviewer creates a Reviewer from its backends.
func NewReviewer(
	ai core.AIReviewer,
	rules core.RuleChecker,
	complexity core.ComplexityAnalyzer,
	linter core.Linter,
	formatter core.Formatter,
	logger *slog.Logger,
) *Reviewer {
	return &Reviewer{
		ai:         ai,
		rules:      rules,
		complexity: complexity,
		linter:     linter,
		formatter:  formatter,
		logger:     logger,
	}
}

// Review runs AI commentary, the rule check, complexity analysis, the linter
// and the formatter, in that order. filePath identifies an uploaded file and
// is only used for logging.
func (r *Reviewer) Review(ctx context.Context, code, filePath string) core.Report {
	start := time.Now()

	report := core.Report{
		AIFeedback:         r.ai.Review(ctx, code),
		RuleFeedback:       r.rules.Check(code),
		ComplexityFeedback: r.complexity.Analyze(ctx, code),
		LinterFeedback:     r.linter.Lint(ctx, code),
		Formatting:         r.formatter.Format(ctx, code),
	}
	report.Normalize()

	r.logger.Info("review completed",
		"file", filePath,
		"code_bytes", len(code),
		"rule_findings", len(report.RuleFeedback),
		"complexity_findings", len(report.ComplexityFeedback),
		"reformatted", report.Formatting.Formatted != report.Formatting.Original,
		"duration", time.Since(start))
	return report
}

// SafeReview is Review behind a recovery boundary: a panic anywhere in the
// sequence is logged and replaced by the fallback report.
func (r *Reviewer) SafeReview(ctx context.Context, code, filePath string) (report core.Report) {
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error("review failed, returning fallback report",
				"file", filePath,
				"panic", fmt.Sprint(rec),
				"stack", string(debug.Stack()))
			report = FallbackReport(code)
		}
	}()
	return r.Review(ctx, code, filePath)
}

// FallbackReport is the complete report returned when a review cannot be
// produced at all.
func FallbackReport(code string) core.Report {
	return core.Report{
		AIFeedback:         FallbackAIFeedback,
		RuleFeedback:       []string{FallbackRuleFeedback},
		ComplexityFeedback: []string{FallbackComplexityFeedback},
		LinterFeedback:     FallbackLinterFeedback,
		Formatting:         core.FormatResult{Original: code, Formatted: code},
	}
}
