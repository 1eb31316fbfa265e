// Package analysis implements the review backends. Each backend defends
// itself: a missing tool or a tool failure becomes an explanatory message in
// the backend's own report field and never an error for the caller.
package analysis

// User-facing placeholders reported when a backend cannot do its job.
const (
	MsgAIPlaceholder = "⚠️ AI Reviewer could not complete the review. " +
		"This may be due to free-tier quota limits or rate limits. " +
		"Rule-based feedback is still available."

	MsgBlackMissing       = "⚠️ black not installed; skipping autoformat."
	MsgBlackFailedPrefix  = "⚠️ Black could not format: "
	MsgFlake8Missing      = "⚠️ flake8 not found on the system. Install flake8 to enable style checks."
	MsgFlake8FailedPrefix = "⚠️ flake8 execution failed: "
	MsgFlake8Clean        = "✅ No style issues found."
	MsgFlake8Header       = "Flake8 Issues:"

	MsgComplexityUnavailable  = "⚠️ Complexity engine not available; complexity analysis unavailable."
	MsgComplexityFailedPrefix = "⚠️ Complexity analysis failed: "
)
