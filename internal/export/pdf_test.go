package export

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/sevigo/snippet-warden/internal/toolexec"
	"github.com/sevigo/snippet-warden/internal/toolexec/mocks"
)

func TestPDFExporter_Render(t *testing.T) {
	page := []byte("<html><body>report</body></html>")
	pdf := []byte("%PDF-1.4\n...")
	cmd := toolexec.Command{
		Path:  "/opt/wkhtmltopdf",
		Args:  []string{"--quiet", "--encoding", "utf-8", "-", "-"},
		Stdin: page,
	}

	tests := []struct {
		name    string
		path    string
		setup   func(r *mocks.MockCommandRunner)
		want    []byte
		wantErr error
	}{
		{
			name: "configured path",
			path: "/opt/wkhtmltopdf",
			setup: func(r *mocks.MockCommandRunner) {
				r.EXPECT().Run(gomock.Any(), cmd).Return(toolexec.Result{Stdout: pdf}, nil)
			},
			want: pdf,
		},
		{
			name: "found on PATH",
			setup: func(r *mocks.MockCommandRunner) {
				r.EXPECT().LookPath("wkhtmltopdf").Return("/opt/wkhtmltopdf", nil)
				r.EXPECT().Run(gomock.Any(), cmd).Return(toolexec.Result{Stdout: pdf}, nil)
			},
			want: pdf,
		},
		{
			name: "not installed",
			setup: func(r *mocks.MockCommandRunner) {
				r.EXPECT().LookPath("wkhtmltopdf").Return("", toolexec.ErrNotFound)
			},
			wantErr: ErrRendererNotConfigured,
		},
		{
			name: "configured path missing",
			path: "/opt/wkhtmltopdf",
			setup: func(r *mocks.MockCommandRunner) {
				r.EXPECT().Run(gomock.Any(), cmd).Return(toolexec.Result{}, toolexec.ErrNotFound)
			},
			wantErr: ErrRendererNotConfigured,
		},
		{
			name: "run error",
			path: "/opt/wkhtmltopdf",
			setup: func(r *mocks.MockCommandRunner) {
				r.EXPECT().Run(gomock.Any(), cmd).Return(toolexec.Result{}, errors.New("killed"))
			},
			wantErr: ErrRenderFailed,
		},
		{
			name: "non-zero exit",
			path: "/opt/wkhtmltopdf",
			setup: func(r *mocks.MockCommandRunner) {
				r.EXPECT().Run(gomock.Any(), cmd).Return(toolexec.Result{ExitCode: 2, Stderr: []byte("QXcbConnection")}, nil)
			},
			wantErr: ErrRenderFailed,
		},
		{
			name: "exit 1 with document",
			path: "/opt/wkhtmltopdf",
			setup: func(r *mocks.MockCommandRunner) {
				r.EXPECT().Run(gomock.Any(), cmd).Return(toolexec.Result{ExitCode: 1, Stdout: pdf}, nil)
			},
			want: pdf,
		},
		{
			name: "empty output",
			path: "/opt/wkhtmltopdf",
			setup: func(r *mocks.MockCommandRunner) {
				r.EXPECT().Run(gomock.Any(), cmd).Return(toolexec.Result{}, nil)
			},
			wantErr: ErrRenderFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			runner := mocks.NewMockCommandRunner(ctrl)
			tt.setup(runner)

			e := NewPDFExporter(runner, tt.path, slog.New(slog.NewTextHandler(io.Discard, nil)))
			got, err := e.Render(context.Background(), page)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPDFExporter_Available(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockCommandRunner(ctrl)
	runner.EXPECT().LookPath("wkhtmltopdf").Return("", toolexec.ErrNotFound)

	e := NewPDFExporter(runner, "", slog.New(slog.NewTextHandler(io.Discard, nil)))
	assert.False(t, e.Available())
	assert.True(t, NewPDFExporter(runner, "/opt/wkhtmltopdf", slog.New(slog.NewTextHandler(io.Discard, nil))).Available())
}
