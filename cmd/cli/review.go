package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/fatih/color"
	"github.com/pmezard/go-difflib/difflib"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sevigo/snippet-warden/internal/core"
	"github.com/sevigo/snippet-warden/internal/render"
	"github.com/sevigo/snippet-warden/internal/server/handler"
	"github.com/sevigo/snippet-warden/internal/wire"
)

var (
	outputFormat string
	verbose      bool
)

// Color definitions
var (
	successColor = color.New(color.FgGreen)
	warnColor    = color.New(color.FgYellow)
	infoColor    = color.New(color.FgWhite)
	dimColor     = color.New(color.FgHiBlack)
)

var reviewCmd = &cobra.Command{
	Use:   "review [file]",
	Short: "Review a Python file",
	Long: `Review a Python file with the rule checker, the complexity analyzer,
flake8 and black, and print the combined report.

Use "-" to read the code from stdin.

Examples:
  warden-cli review script.py
  warden-cli review --format markdown script.py
  cat script.py | warden-cli review --format json -`,
	Args: cobra.ExactArgs(1),
	RunE: runReview,
}

func init() { //nolint:gochecknoinits // Cobra command registration
	reviewCmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "Output format: text, markdown or json")
	reviewCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Print timing information")
	rootCmd.AddCommand(reviewCmd)
}

func runReview(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	sub, err := readSubmission(cmd.InOrStdin(), args[0])
	if err != nil {
		return err
	}

	start := time.Now()
	report, cleanup, err := reviewSubmission(ctx, sub)
	if err != nil {
		return err
	}
	defer cleanup()

	out := cmd.OutOrStdout()
	switch outputFormat {
	case "json":
		err = printJSON(out, report)
	case "markdown", "md":
		err = printMarkdown(out, report)
	case "text":
		printReport(out, GetTheme(ThemeName(viper.GetString("THEME"))), sub, report)
	default:
		return fmt.Errorf("unknown output format %q (expected text, markdown or json)", outputFormat)
	}
	if verbose {
		dimColor.Fprintf(cmd.ErrOrStderr(), "⏱️  Total time: %s\n", time.Since(start).Round(time.Millisecond))
	}
	return err
}

// readSubmission loads code from a file or stdin ("-"). Invalid UTF-8 is
// dropped and empty input is replaced by a placeholder, as for uploads.
func readSubmission(stdin io.Reader, path string) (core.Submission, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
		path = ""
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return core.Submission{}, fmt.Errorf("failed to read code: %w", err)
	}

	code := strings.ToValidUTF8(string(data), "")
	if strings.TrimSpace(code) == "" {
		code = handler.NoCodeProvided
	}
	return core.Submission{Code: code, FileName: path}, nil
}

func reviewSubmission(ctx context.Context, sub core.Submission) (core.Report, func(), error) {
	appInstance, cleanup, err := wire.InitializeCLIApp(ctx)
	if err != nil {
		return core.Report{}, nil, fmt.Errorf("failed to initialize app: %w\n\nTip: Check your .env and review settings file", err)
	}
	return appInstance.Reviewer.SafeReview(ctx, sub.Code, sub.FileName), cleanup, nil
}

func printJSON(w io.Writer, report core.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

func printMarkdown(w io.Writer, report core.Report) error {
	style := glamour.WithAutoStyle()
	if color.NoColor {
		style = glamour.WithStandardStyle("notty")
	}
	renderer, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(100))
	if err != nil {
		return fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	out, err := renderer.Render(render.Markdown(report))
	if err != nil {
		return fmt.Errorf("failed to render markdown: %w", err)
	}
	_, err = io.WriteString(w, out)
	return err
}

func printReport(w io.Writer, st styles, sub core.Submission, report core.Report) {
	title := "📋 Code Review Report"
	if sub.FileName != "" {
		title += ": " + sub.FileName
	}
	fmt.Fprintln(w, st.header.Render(title))

	section(w, st, "🤖 AI Review")
	infoColor.Fprintln(w, report.AIFeedback)

	section(w, st, "📏 Rule-Based Checks")
	printFindings(w, st, report.RuleFeedback, "No rule violations found.")

	section(w, st, "🧮 Complexity")
	printFindings(w, st, report.ComplexityFeedback, "No complex functions found.")

	section(w, st, "🎨 Style (flake8)")
	infoColor.Fprintln(w, report.LinterFeedback)

	section(w, st, "🖤 Formatting (black)")
	switch {
	case report.Formatting.Error != "":
		warnColor.Fprintln(w, report.Formatting.Error)
	case report.Formatting.Formatted == report.Formatting.Original:
		successColor.Fprintln(w, "✅ Already formatted.")
	default:
		changed := countChangedLines(report.Formatting.Original, report.Formatting.Formatted)
		warnColor.Fprintf(w, "black would reformat %d line(s); use --format markdown to see the diff.\n", changed)
	}
}

func section(w io.Writer, st styles, name string) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, st.section.Render(name))
}

func printFindings(w io.Writer, st styles, findings []string, empty string) {
	if len(findings) == 0 {
		fmt.Fprintln(w, st.inactive.Render(empty))
		return
	}
	for _, f := range findings {
		warnColor.Fprintf(w, "  %s\n", f)
	}
}

func countChangedLines(original, formatted string) int {
	matcher := difflib.NewMatcher(difflib.SplitLines(original), difflib.SplitLines(formatted))
	changed := 0
	for _, op := range matcher.GetOpCodes() {
		if op.Tag != 'e' {
			changed += max(op.I2-op.I1, op.J2-op.J1)
		}
	}
	return changed
}
