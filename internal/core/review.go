package core

import "html/template"

// Submission is the code under review. FileName is the optional source
// identifier of an uploaded file and is not used by the analysis itself.
type Submission struct {
	Code     string `json:"code"`
	FileName string `json:"file_name,omitempty"`
}

// Report is the aggregate of independent findings produced for one
// submission. Its JSON shape is the contract with every presentation layer.
type Report struct {
	AIFeedback         string       `json:"ai_feedback"`
	RuleFeedback       []string     `json:"rule_feedback"`
	ComplexityFeedback []string     `json:"complexity_feedback"`
	LinterFeedback     string       `json:"flake8_feedback"`
	Formatting         FormatResult `json:"formatted_code"`
}

// FormatResult is the outcome of running the formatter. Formatted equals
// Original whenever formatting was skipped or failed.
type FormatResult struct {
	Original  string `json:"original"`
	Formatted string `json:"formatted"`
	Error     string `json:"error,omitempty"`
}

// Normalize replaces nil feedback slices with empty ones so every field of
// the report is present when serialized.
func (r *Report) Normalize() {
	if r.RuleFeedback == nil {
		r.RuleFeedback = []string{}
	}
	if r.ComplexityFeedback == nil {
		r.ComplexityFeedback = []string{}
	}
}

// DiffView is the display bundle derived from a FormatResult. It is rebuilt on
// every render and never stored.
type DiffView struct {
	OriginalHTML  template.HTML
	FormattedHTML template.HTML
	// DiffHTML is empty when the diff table could not be built.
	DiffHTML     template.HTML
	OriginalRaw  string
	FormattedRaw string
}
