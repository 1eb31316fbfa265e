package analysis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/sevigo/snippet-warden/internal/core"
	"github.com/sevigo/snippet-warden/internal/toolexec"
)

const blackBinary = "black"

// BlackFormatter formats Python code by piping it through the black CLI.
type BlackFormatter struct {
	runner     toolexec.CommandRunner
	path       string
	lineLength int
	logger     *slog.Logger
}

// NewBlackFormatter creates a formatter. An empty path means black is looked
// up on PATH for every call, so installing it does not require a restart.
func NewBlackFormatter(runner toolexec.CommandRunner, path string, lineLength int, logger *slog.Logger) *BlackFormatter {
	if lineLength <= 0 {
		lineLength = core.DefaultReviewSettings().BlackLineLength
	}
	return &BlackFormatter{
		runner:     runner,
		path:       path,
		lineLength: lineLength,
		logger:     logger,
	}
}

// Format implements core.Formatter.
func (f *BlackFormatter) Format(ctx context.Context, code string) core.FormatResult {
	unchanged := func(msg string) core.FormatResult {
		return core.FormatResult{Original: code, Formatted: code, Error: msg}
	}

	path, err := toolexec.Resolve(f.runner, f.path, blackBinary)
	if err != nil {
		f.logger.Warn("formatter unavailable", "error", err)
		return unchanged(MsgBlackMissing)
	}

	res, err := f.runner.Run(ctx, toolexec.Command{
		Path:  path,
		Args:  []string{"--quiet", "--line-length", strconv.Itoa(f.lineLength), "-"},
		Stdin: []byte(code),
	})
	if err != nil {
		if errors.Is(err, toolexec.ErrNotFound) {
			f.logger.Warn("formatter binary vanished", "path", path, "error", err)
			return unchanged(MsgBlackMissing)
		}
		f.logger.Error("formatter failed to run", "path", path, "error", err)
		return unchanged(MsgBlackFailedPrefix + err.Error())
	}
	if res.ExitCode != 0 {
		reason := strings.TrimSpace(string(res.Stderr))
		if reason == "" {
			reason = fmt.Sprintf("exit status %d", res.ExitCode)
		}
		f.logger.Info("formatter rejected input", "exit_code", res.ExitCode, "reason", reason)
		return unchanged(MsgBlackFailedPrefix + reason)
	}

	formatted := string(res.Stdout)
	if formatted == code {
		return core.FormatResult{Original: code, Formatted: code}
	}
	return core.FormatResult{Original: code, Formatted: formatted}
}
