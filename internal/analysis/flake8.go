package analysis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"regexp"
	"strings"

	"github.com/sevigo/snippet-warden/internal/toolexec"
)

const flake8Binary = "flake8"

// flake8 reports line-length violations as E501; the rule checker covers them.
const flake8IgnoreFlag = "--ignore=E501"

// path:line:col: message. The path is matched lazily so Windows drive letters
// and colons inside the message both survive.
var flake8Line = regexp.MustCompile(`^(.+?):(\d+):(\d+):\s?(.*)$`)

// Flake8Linter runs flake8 against a temporary copy of the snippet.
type Flake8Linter struct {
	runner  toolexec.CommandRunner
	path    string
	tempDir string
	logger  *slog.Logger
}

// NewFlake8Linter creates a linter. An empty tempDir uses os.TempDir.
func NewFlake8Linter(runner toolexec.CommandRunner, path, tempDir string, logger *slog.Logger) *Flake8Linter {
	return &Flake8Linter{
		runner:  runner,
		path:    path,
		tempDir: tempDir,
		logger:  logger,
	}
}

// Lint implements core.Linter. The temporary file is removed on every path.
func (l *Flake8Linter) Lint(ctx context.Context, code string) string {
	tmpPath, err := writeTempSource(l.tempDir, code)
	if err != nil {
		l.logger.Error("failed to write snippet for flake8", "error", err)
		return MsgFlake8FailedPrefix + err.Error()
	}
	defer func() {
		if err := os.Remove(tmpPath); err != nil && !errors.Is(err, os.ErrNotExist) {
			l.logger.Warn("failed to remove flake8 temp file", "path", tmpPath, "error", err)
		}
	}()

	path, err := toolexec.Resolve(l.runner, l.path, flake8Binary)
	if err != nil {
		l.logger.Warn("linter unavailable", "error", err)
		return MsgFlake8Missing
	}

	res, err := l.runner.Run(ctx, toolexec.Command{
		Path: path,
		Args: []string{tmpPath, flake8IgnoreFlag},
	})
	if err != nil {
		if errors.Is(err, toolexec.ErrNotFound) {
			return MsgFlake8Missing
		}
		l.logger.Error("flake8 failed to run", "path", path, "error", err)
		return MsgFlake8FailedPrefix + err.Error()
	}

	out := strings.TrimSpace(string(res.Stdout))
	// Exit status 1 only means findings were reported.
	if out == "" && res.ExitCode > 1 {
		reason := strings.TrimSpace(string(res.Stderr))
		if reason == "" {
			reason = fmt.Sprintf("exit status %d", res.ExitCode)
		}
		return MsgFlake8FailedPrefix + reason
	}
	return FormatFlake8Output(out)
}

// FormatFlake8Output turns raw flake8 output into a bullet list. Lines that
// do not look like findings are kept verbatim.
func FormatFlake8Output(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return MsgFlake8Clean
	}

	var sb strings.Builder
	sb.WriteString(MsgFlake8Header)
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimRight(line, "\r")
		sb.WriteString("\n")
		m := flake8Line.FindStringSubmatch(line)
		if m == nil {
			sb.WriteString(line)
			continue
		}
		fmt.Fprintf(&sb, "- Line %s, Col %s: %s", m[2], m[3], strings.TrimSpace(m[4]))
	}
	return sb.String()
}

func writeTempSource(dir, code string) (string, error) {
	f, err := os.CreateTemp(dir, "snippet-*.py")
	if err != nil {
		return "", fmt.Errorf("creating temp file: %w", err)
	}
	name := f.Name()
	if _, err := f.WriteString(code); err != nil {
		_ = f.Close()
		_ = os.Remove(name)
		return "", fmt.Errorf("writing temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(name)
		return "", fmt.Errorf("closing temp file: %w", err)
	}
	return name, nil
}
