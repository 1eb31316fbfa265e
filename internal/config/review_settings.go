package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sevigo/snippet-warden/internal/core"
)

var (
	// ErrSettingsNotFound reports a missing settings file; defaults apply.
	ErrSettingsNotFound = errors.New("review settings file not found")
	// ErrSettingsParsing wraps YAML decoding failures.
	ErrSettingsParsing = errors.New("review settings parsing failed")
)

// LoadReviewSettings loads and parses the review settings file. A missing file
// yields the defaults together with ErrSettingsNotFound so callers can decide
// whether that is worth logging.
func LoadReviewSettings(path string) (*core.ReviewSettings, error) {
	settings := core.DefaultReviewSettings()
	if path == "" {
		return settings, ErrSettingsNotFound
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return settings, ErrSettingsNotFound
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSettingsParsing, err)
	}
	if err := validateReviewSettings(settings); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSettingsParsing, err)
	}
	return settings, nil
}

func validateReviewSettings(s *core.ReviewSettings) error {
	if s.MaxLineLength <= 0 {
		return fmt.Errorf("max_line_length must be positive, got %d", s.MaxLineLength)
	}
	if s.BlackLineLength <= 0 {
		return fmt.Errorf("black_line_length must be positive, got %d", s.BlackLineLength)
	}
	if s.Complexity.Moderate < 0 || s.Complexity.High < s.Complexity.Moderate {
		return fmt.Errorf("complexity thresholds must satisfy 0 <= moderate <= high, got moderate=%d high=%d",
			s.Complexity.Moderate, s.Complexity.High)
	}
	return nil
}
