package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sevigo/snippet-warden/internal/export"
	"github.com/sevigo/snippet-warden/internal/render"
	"github.com/sevigo/snippet-warden/internal/wire"
)

var outputPath string

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Review a Python file and save the report as PDF or Markdown",
	Long: `Review a Python file and save the report.

The output format follows the extension of --output: ".md" writes Markdown,
anything else is rendered to PDF with wkhtmltopdf.

Examples:
  warden-cli export script.py
  warden-cli export -o review.md script.py`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() { //nolint:gochecknoinits // Cobra command registration
	exportCmd.Flags().StringVarP(&outputPath, "output", "o", "code_review.pdf", "Output file")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	sub, err := readSubmission(cmd.InOrStdin(), args[0])
	if err != nil {
		return err
	}

	appInstance, cleanup, err := wire.InitializeCLIApp(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize app: %w", err)
	}
	defer cleanup()

	report := appInstance.Reviewer.SafeReview(ctx, sub.Code, sub.FileName)

	var doc []byte
	if strings.EqualFold(filepath.Ext(outputPath), ".md") {
		doc = []byte(render.Markdown(report))
	} else {
		var page bytes.Buffer
		if err := appInstance.Pages.Review(&page, render.NewReviewPage(sub.Code, report, true)); err != nil {
			return fmt.Errorf("failed to render report: %w", err)
		}
		doc, err = appInstance.PDF.Render(ctx, page.Bytes())
		if err != nil {
			if errors.Is(err, export.ErrRendererNotConfigured) {
				return fmt.Errorf("%w\n\nTip: Install wkhtmltopdf or set WKHTMLTOPDF_PATH, or export Markdown with -o report.md", err)
			}
			return err
		}
	}

	if err := os.WriteFile(outputPath, doc, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", outputPath, err)
	}
	successColor.Fprintf(cmd.OutOrStdout(), "✅ Report written to %s\n", outputPath)
	return nil
}
