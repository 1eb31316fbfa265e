package render

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/sevigo/snippet-warden/internal/core"
)

// Markdown renders a report as a Markdown document.
func Markdown(report core.Report) string {
	var sb strings.Builder

	sb.WriteString("# Code Review Report\n\n")

	sb.WriteString("## AI Review\n\n")
	ai := report.AIFeedback
	if ai == "" {
		ai = NoAIFeedback
	}
	sb.WriteString(ai + "\n\n")

	sb.WriteString("## Rule-Based Checks\n\n")
	writeList(&sb, report.RuleFeedback, "No rule violations found.")

	sb.WriteString("## Complexity\n\n")
	writeList(&sb, report.ComplexityFeedback, "No complex functions found.")

	sb.WriteString("## Style (flake8)\n\n")
	writeFence(&sb, "text", report.LinterFeedback)

	sb.WriteString("## Formatting (black)\n\n")
	if report.Formatting.Error != "" {
		sb.WriteString(report.Formatting.Error + "\n\n")
	}
	if report.Formatting.Formatted == report.Formatting.Original {
		sb.WriteString("_No formatting changes._\n")
		return sb.String()
	}
	writeFence(&sb, "python", report.Formatting.Formatted)

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(report.Formatting.Original),
		B:        difflib.SplitLines(report.Formatting.Formatted),
		FromFile: "original",
		ToFile:   "formatted",
		Context:  2,
	})
	if err == nil && diff != "" {
		sb.WriteString("### Diff\n\n")
		writeFence(&sb, "diff", diff)
	}
	return sb.String()
}

func writeList(sb *strings.Builder, items []string, empty string) {
	if len(items) == 0 {
		sb.WriteString("_" + empty + "_\n\n")
		return
	}
	for _, item := range items {
		sb.WriteString("- " + item + "\n")
	}
	sb.WriteString("\n")
}

func writeFence(sb *strings.Builder, lang, body string) {
	sb.WriteString("```" + lang + "\n")
	sb.WriteString(strings.TrimRight(body, "\n"))
	sb.WriteString("\n```\n\n")
}
