package analysis

import (
	"context"
	"log/slog"
)

// StubAIReviewer stands in for an LLM-backed reviewer and always returns the
// same placeholder commentary.
type StubAIReviewer struct {
	logger *slog.Logger
}

// NewStubAIReviewer creates the placeholder AI reviewer.
func NewStubAIReviewer(logger *slog.Logger) *StubAIReviewer {
	return &StubAIReviewer{logger: logger}
}

// Review implements core.AIReviewer.
func (r *StubAIReviewer) Review(_ context.Context, code string) string {
	r.logger.Debug("AI review requested; returning placeholder", "code_bytes", len(code))
	return MsgAIPlaceholder
}
