package config

import "time"

// RetentionConfig controls data retention and cleanup behavior.
type RetentionConfig struct {
	// EphemeralProjectTTL is how long replay scratch projects live
	// before the cleanup loop deletes them.
	EphemeralProjectTTL time.Duration `yaml:"ephemeral_project_ttl"`

	// CleanupInterval is how often the cleanup loop runs.
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		EphemeralProjectTTL: 24 * time.Hour,
		CleanupInterval:     1 * time.Hour,
	}
}
