package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/viper"

	"github.com/sevigo/snippet-warden/internal/logger"
)

// Config holds the application's configuration values.
type Config struct {
	Server             ServerConfig
	Logging            logger.Config
	Tools              ToolsConfig
	ReviewSettingsPath string
}

// ServerConfig holds the HTTP server settings.
type ServerConfig struct {
	Port           string
	UploadMaxBytes int64
}

// ToolsConfig points at the external analysis binaries. Empty paths fall back
// to a PATH lookup.
type ToolsConfig struct {
	BlackPath         string
	Flake8Path        string
	WkhtmltopdfPath   string
	ComplexityEnabled bool
}

// LoadConfig reads configuration from environment variables and a .env file,
// sets defaults, and validates the result. Environment variables take
// precedence over the .env file.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()

	v.SetDefault("SERVER_PORT", "5000")
	v.SetDefault("UPLOAD_MAX_BYTES", 1<<20)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("LOG_OUTPUT", "stdout")
	v.SetDefault("BLACK_PATH", "")
	v.SetDefault("FLAKE8_PATH", "")
	v.SetDefault("WKHTMLTOPDF_PATH", "")
	v.SetDefault("COMPLEXITY_ENABLED", true)
	v.SetDefault("REVIEW_SETTINGS_PATH", ".snippet-warden.yml")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:           v.GetString("SERVER_PORT"),
			UploadMaxBytes: v.GetInt64("UPLOAD_MAX_BYTES"),
		},
		Logging: logger.Config{
			Level:  strings.ToLower(v.GetString("LOG_LEVEL")),
			Format: strings.ToLower(v.GetString("LOG_FORMAT")),
			Output: strings.ToLower(v.GetString("LOG_OUTPUT")),
		},
		Tools: ToolsConfig{
			BlackPath:         v.GetString("BLACK_PATH"),
			Flake8Path:        v.GetString("FLAKE8_PATH"),
			WkhtmltopdfPath:   v.GetString("WKHTMLTOPDF_PATH"),
			ComplexityEnabled: v.GetBool("COMPLEXITY_ENABLED"),
		},
		ReviewSettingsPath: v.GetString("REVIEW_SETTINGS_PATH"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the values that cannot be defaulted away.
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("SERVER_PORT must be set")
	}
	if c.Server.UploadMaxBytes <= 0 {
		return fmt.Errorf("UPLOAD_MAX_BYTES must be positive, got %d", c.Server.UploadMaxBytes)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unsupported LOG_LEVEL %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("unsupported LOG_FORMAT %q", c.Logging.Format)
	}
	return nil
}
