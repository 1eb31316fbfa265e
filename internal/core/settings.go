package core

// ReviewSettings represents the structure of the .snippet-warden.yml file.
type ReviewSettings struct {
	// Lines longer than this many characters are flagged by the rule checker.
	MaxLineLength int `yaml:"max_line_length"`

	// Line length handed to the formatter.
	BlackLineLength int `yaml:"black_line_length"`

	Complexity ComplexityThresholds `yaml:"complexity"`
}

// ComplexityThresholds decides when a function is reported. A score strictly
// above High is reported as high, strictly above Moderate as moderate.
type ComplexityThresholds struct {
	High     int `yaml:"high"`
	Moderate int `yaml:"moderate"`
}

// DefaultReviewSettings returns settings with default values.
func DefaultReviewSettings() *ReviewSettings {
	return &ReviewSettings{
		MaxLineLength:   99,
		BlackLineLength: 88,
		Complexity: ComplexityThresholds{
			High:     10,
			Moderate: 5,
		},
	}
}
