package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sevigo/snippet-warden/internal/core"
	"github.com/sevigo/snippet-warden/internal/logger"
)

func TestLoadConfig_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.Server.Port)
	assert.Equal(t, int64(1<<20), cfg.Server.UploadMaxBytes)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.True(t, cfg.Tools.ComplexityEnabled)
	assert.Empty(t, cfg.Tools.Flake8Path)
	assert.Equal(t, ".snippet-warden.yml", cfg.ReviewSettingsPath)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("FLAKE8_PATH", "/opt/bin/flake8")
	t.Setenv("COMPLEXITY_ENABLED", "false")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "/opt/bin/flake8", cfg.Tools.Flake8Path)
	assert.False(t, cfg.Tools.ComplexityEnabled)
}

func TestLoadConfig_DotEnvFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("SERVER_PORT=7070\nWKHTMLTOPDF_PATH=/usr/local/bin/wkhtmltopdf\n"), 0o600))

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "7070", cfg.Server.Port)
	assert.Equal(t, "/usr/local/bin/wkhtmltopdf", cfg.Tools.WkhtmltopdfPath)
}

func TestConfig_Validate(t *testing.T) {
	valid := func() Config {
		return Config{
			Server:  ServerConfig{Port: "5000", UploadMaxBytes: 1024},
			Logging: logger.Config{Level: "info", Format: "text", Output: "stdout"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "Valid config", mutate: func(*Config) {}, wantErr: false},
		{name: "Empty port", mutate: func(c *Config) { c.Server.Port = "" }, wantErr: true},
		{name: "Zero upload limit", mutate: func(c *Config) { c.Server.UploadMaxBytes = 0 }, wantErr: true},
		{name: "Unknown log level", mutate: func(c *Config) { c.Logging.Level = "verbose" }, wantErr: true},
		{name: "Unknown log format", mutate: func(c *Config) { c.Logging.Format = "xml" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Config.Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadReviewSettings(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) string {
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
		return p
	}

	t.Run("missing file yields defaults", func(t *testing.T) {
		settings, err := LoadReviewSettings(filepath.Join(dir, "absent.yml"))
		assert.True(t, errors.Is(err, ErrSettingsNotFound))
		assert.Equal(t, core.DefaultReviewSettings(), settings)
	})

	t.Run("partial file keeps remaining defaults", func(t *testing.T) {
		settings, err := LoadReviewSettings(write("partial.yml", "max_line_length: 120\n"))
		require.NoError(t, err)
		assert.Equal(t, 120, settings.MaxLineLength)
		assert.Equal(t, 88, settings.BlackLineLength)
		assert.Equal(t, 10, settings.Complexity.High)
		assert.Equal(t, 5, settings.Complexity.Moderate)
	})

	t.Run("complexity thresholds", func(t *testing.T) {
		settings, err := LoadReviewSettings(write("cc.yml", "complexity:\n  high: 15\n  moderate: 8\n"))
		require.NoError(t, err)
		assert.Equal(t, core.ComplexityThresholds{High: 15, Moderate: 8}, settings.Complexity)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := LoadReviewSettings(write("bad.yml", "max_line_length: [nope\n"))
		assert.True(t, errors.Is(err, ErrSettingsParsing))
	})

	t.Run("inverted thresholds", func(t *testing.T) {
		_, err := LoadReviewSettings(write("inverted.yml", "complexity:\n  high: 3\n  moderate: 6\n"))
		assert.True(t, errors.Is(err, ErrSettingsParsing))
	})
}

// chdir changes the working directory for the duration of the test,
// restoring it on cleanup (stand-in for testing.T.Chdir on go1.21).
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { require.NoError(t, os.Chdir(wd)) })
}
