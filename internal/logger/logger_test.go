package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name      string
		config    Config
		emit      func(l *slog.Logger)
		checkFunc func(t *testing.T, output string)
	}{
		{
			name: "Text Logger Info Level",
			config: Config{
				Level:  "info",
				Format: "text",
				Output: "stdout",
			},
			emit: func(l *slog.Logger) { l.Info("test message") },
			checkFunc: func(t *testing.T, output string) {
				assert.Contains(t, output, "level=INFO")
				assert.Contains(t, output, `msg="test message"`)
			},
		},
		{
			name: "JSON Logger Debug Level",
			config: Config{
				Level:  "debug",
				Format: "json",
				Output: "stdout",
			},
			emit: func(l *slog.Logger) { l.Debug("test message") },
			checkFunc: func(t *testing.T, output string) {
				var logEntry map[string]interface{}
				require.NoError(t, json.Unmarshal([]byte(output), &logEntry), "output: %s", output)
				assert.Equal(t, "DEBUG", logEntry["level"])
				assert.Equal(t, "test message", logEntry["msg"])
				assert.Contains(t, logEntry, "source")
			},
		},
		{
			name: "Debug suppressed at warn level",
			config: Config{
				Level:  "warn",
				Format: "text",
			},
			emit: func(l *slog.Logger) { l.Debug("test message") },
			checkFunc: func(t *testing.T, output string) {
				assert.Empty(t, output)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewLogger(tt.config, &buf)
			tt.emit(logger)
			tt.checkFunc(t, buf.String())
		})
	}
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("WARN"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("chatty"))
}

func TestConfig_WriterFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	w, closeFn := Config{Output: "file", File: path}.Writer()

	logger := NewLogger(Config{Level: "info", Format: "text"}, w)
	logger.Info("written to disk")
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "written to disk")
}
