// Package toolexec locates and runs the external binaries the analysis
// backends depend on.
package toolexec

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os/exec"
)

//go:generate go run go.uber.org/mock/mockgen -destination=mocks/mock_runner.go -package=mocks . CommandRunner

// ErrNotFound is returned when a binary is neither configured nor on PATH.
var ErrNotFound = errors.New("executable not found")

// Command describes one invocation. Stdin may be nil.
type Command struct {
	Path  string
	Args  []string
	Stdin []byte
}

// Result holds the captured output of a finished command. A non-zero exit is
// reported through ExitCode rather than as an error, since linters use it to
// signal findings.
type Result struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
}

// CommandRunner abstracts process execution so backends can be tested
// without the real tools installed.
type CommandRunner interface {
	// LookPath resolves name to an executable path.
	LookPath(name string) (string, error)
	// Run executes cmd and waits for it. It only returns an error if the
	// process could not be started or was killed.
	Run(ctx context.Context, cmd Command) (Result, error)
}

// OSRunner runs commands with os/exec.
type OSRunner struct{}

// NewOSRunner returns a CommandRunner backed by os/exec.
func NewOSRunner() *OSRunner {
	return &OSRunner{}
}

// LookPath implements CommandRunner.
func (OSRunner) LookPath(name string) (string, error) {
	path, err := exec.LookPath(name)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrNotFound, name, err)
	}
	return path, nil
}

// Run implements CommandRunner.
func (OSRunner) Run(ctx context.Context, cmd Command) (Result, error) {
	c := exec.CommandContext(ctx, cmd.Path, cmd.Args...) //nolint:gosec // paths come from configuration or PATH lookup
	var stdout, stderr bytes.Buffer
	c.Stdout = &stdout
	c.Stderr = &stderr
	if cmd.Stdin != nil {
		c.Stdin = bytes.NewReader(cmd.Stdin)
	}

	err := c.Run()
	res := Result{Stdout: stdout.Bytes(), Stderr: stderr.Bytes()}
	if err == nil {
		return res, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && ctx.Err() == nil && exitErr.ExitCode() >= 0 {
		res.ExitCode = exitErr.ExitCode()
		return res, nil
	}
	if errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist) {
		return res, fmt.Errorf("%w: %s", ErrNotFound, cmd.Path)
	}
	return res, fmt.Errorf("running %s: %w", cmd.Path, err)
}

// Resolve returns the configured path if set, otherwise the result of looking
// name up on PATH.
func Resolve(runner CommandRunner, configured, name string) (string, error) {
	if configured != "" {
		return configured, nil
	}
	return runner.LookPath(name)
}
