// Package rules implements the line-based style checker.
//
// The checker is a plain text scanner: it does not parse the snippet, so it
// also works on code that does not compile. Per-line findings come first, in
// line order, followed by the findings that apply to the snippet as a whole.
package rules

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// DefaultMaxLineLength is the longest line accepted without a warning.
const DefaultMaxLineLength = 99

const (
	todoMarker   = "TODO"
	printCall    = "print("
	semicolon    = ";"
	mainGuard    = `if __name__ == "__main__"`
	warningGlyph = "⚠️"
)

var credentialHints = []string{"password", "passwd"}

// Checker scans code for a fixed set of style smells.
type Checker struct {
	maxLineLength int
}

// NewChecker returns a Checker flagging lines longer than maxLineLength
// characters. Non-positive values select DefaultMaxLineLength.
func NewChecker(maxLineLength int) *Checker {
	if maxLineLength <= 0 {
		maxLineLength = DefaultMaxLineLength
	}
	return &Checker{maxLineLength: maxLineLength}
}

// Check returns one warning per detected issue. It never fails; empty input
// only yields the missing-guard warning.
func (c *Checker) Check(code string) []string {
	feedback := []string{}

	for i, line := range SplitLines(code) {
		n := i + 1
		if strings.Contains(line, todoMarker) {
			feedback = append(feedback, fmt.Sprintf("%s Line %d: Found TODO comment. Consider resolving it.", warningGlyph, n))
		}
		if strings.Contains(line, printCall) {
			feedback = append(feedback, fmt.Sprintf("%s Line %d: Avoid using print statements; use logging instead.", warningGlyph, n))
		}
		if strings.Contains(line, semicolon) {
			feedback = append(feedback, fmt.Sprintf("%s Line %d: Contains semicolon (multiple statements on one line).", warningGlyph, n))
		}
		if length := utf8.RuneCountInString(line); length > c.maxLineLength {
			feedback = append(feedback, fmt.Sprintf("%s Line %d: Too long (%d chars). Consider wrapping.", warningGlyph, n, length))
		}
	}

	if !strings.Contains(code, mainGuard) {
		feedback = append(feedback, warningGlyph+" Missing `if __name__ == \"__main__\":` guard (only required for scripts).")
	}

	lower := strings.ToLower(code)
	for _, hint := range credentialHints {
		if strings.Contains(lower, hint) {
			feedback = append(feedback, warningGlyph+" Hardcoded credential-like string found. Use environment variables or secure vaults.")
			break
		}
	}

	return feedback
}

// Check runs a Checker with the default line length.
func Check(code string) []string {
	return NewChecker(DefaultMaxLineLength).Check(code)
}

// SplitLines splits text on \n, \r\n and \r. A trailing line break does not
// produce an extra empty line, and empty text yields no lines.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.TrimSuffix(text, "\n")
	return strings.Split(text, "\n")
}
