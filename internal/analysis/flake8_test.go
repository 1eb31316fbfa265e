package analysis

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/sevigo/snippet-warden/internal/toolexec"
	"github.com/sevigo/snippet-warden/internal/toolexec/mocks"
)

func TestFlake8Linter_Lint(t *testing.T) {
	const code = "import os\nx=1\n"

	tests := []struct {
		name   string
		setup  func(t *testing.T, r *mocks.MockCommandRunner)
		want   string
		prefix string
	}{
		{
			name: "findings are formatted",
			setup: func(t *testing.T, r *mocks.MockCommandRunner) {
				r.EXPECT().LookPath("flake8").Return("/usr/bin/flake8", nil)
				r.EXPECT().Run(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, cmd toolexec.Command) (toolexec.Result, error) {
						require.Len(t, cmd.Args, 2)
						tmp := cmd.Args[0]
						assert.Equal(t, "--ignore=E501", cmd.Args[1])
						assert.True(t, strings.HasSuffix(tmp, ".py"))

						data, err := os.ReadFile(tmp)
						require.NoError(t, err)
						assert.Equal(t, code, string(data))

						out := tmp + ":1:1: F401 'os' imported but unused\n" +
							tmp + ":2:2: E225 missing whitespace around operator\n"
						return toolexec.Result{Stdout: []byte(out), ExitCode: 1}, nil
					})
			},
			want: "Flake8 Issues:\n" +
				"- Line 1, Col 1: F401 'os' imported but unused\n" +
				"- Line 2, Col 2: E225 missing whitespace around operator",
		},
		{
			name: "clean code",
			setup: func(_ *testing.T, r *mocks.MockCommandRunner) {
				r.EXPECT().LookPath("flake8").Return("/usr/bin/flake8", nil)
				r.EXPECT().Run(gomock.Any(), gomock.Any()).Return(toolexec.Result{}, nil)
			},
			want: MsgFlake8Clean,
		},
		{
			name: "flake8 missing",
			setup: func(_ *testing.T, r *mocks.MockCommandRunner) {
				r.EXPECT().LookPath("flake8").Return("", toolexec.ErrNotFound)
			},
			want: MsgFlake8Missing,
		},
		{
			name: "flake8 fails to start",
			setup: func(_ *testing.T, r *mocks.MockCommandRunner) {
				r.EXPECT().LookPath("flake8").Return("/usr/bin/flake8", nil)
				r.EXPECT().Run(gomock.Any(), gomock.Any()).Return(toolexec.Result{}, errors.New("permission denied"))
			},
			want: MsgFlake8FailedPrefix + "permission denied",
		},
		{
			name: "flake8 crashes without output",
			setup: func(_ *testing.T, r *mocks.MockCommandRunner) {
				r.EXPECT().LookPath("flake8").Return("/usr/bin/flake8", nil)
				r.EXPECT().Run(gomock.Any(), gomock.Any()).Return(toolexec.Result{Stderr: []byte("Traceback: boom\n"), ExitCode: 2}, nil)
			},
			want: MsgFlake8FailedPrefix + "Traceback: boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			runner := mocks.NewMockCommandRunner(ctrl)
			tt.setup(t, runner)

			dir := t.TempDir()
			l := NewFlake8Linter(runner, "", dir, discardLogger())
			assert.Equal(t, tt.want, l.Lint(context.Background(), code))

			leftovers, err := filepath.Glob(filepath.Join(dir, "*"))
			require.NoError(t, err)
			assert.Empty(t, leftovers, "temp file must be removed")
		})
	}
}

func TestFlake8Linter_TempDirUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockCommandRunner(ctrl)

	l := NewFlake8Linter(runner, "", filepath.Join(t.TempDir(), "missing"), discardLogger())
	got := l.Lint(context.Background(), "x = 1\n")
	assert.True(t, strings.HasPrefix(got, MsgFlake8FailedPrefix), got)
}

func TestFormatFlake8Output(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "empty", raw: "  \n", want: MsgFlake8Clean},
		{
			name: "message containing colons",
			raw:  "/tmp/s.py:3:1: E999 SyntaxError: invalid syntax",
			want: "Flake8 Issues:\n- Line 3, Col 1: E999 SyntaxError: invalid syntax",
		},
		{
			name: "windows path",
			raw:  `C:\Temp\s.py:4:10: W291 trailing whitespace`,
			want: "Flake8 Issues:\n- Line 4, Col 10: W291 trailing whitespace",
		},
		{
			name: "unparseable line kept",
			raw:  "/tmp/s.py:1:1: F401 unused\nsomething else",
			want: "Flake8 Issues:\n- Line 1, Col 1: F401 unused\nsomething else",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatFlake8Output(tt.raw))
		})
	}
}
