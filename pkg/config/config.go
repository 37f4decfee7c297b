package config

// Config is the umbrella configuration object returned by Initialize()
// and threaded through the application.
type Config struct {
	configDir string // Configuration directory path (for reference)

	// System-wide defaults (model settings, evaluation fan-out)
	Defaults *Defaults

	// Queue and worker pool configuration
	Queue *QueueConfig

	// Data retention and cleanup configuration
	Retention *RetentionConfig

	// Per-role agent overrides, keyed by role name
	Agents map[string]*AgentRoleConfig
}

// ConfigDir returns the configuration directory path
func (c *Config) ConfigDir() string {
	return c.configDir
}

// AgentFor resolves the effective model settings for an agent role.
// Role-specific overrides win; unset fields fall back to Defaults.
func (c *Config) AgentFor(role string) AgentRoleConfig {
	resolved := AgentRoleConfig{
		Provider:  c.Defaults.Provider,
		Model:     c.Defaults.Model,
		MaxTokens: c.Defaults.MaxTokens,
	}
	override, ok := c.Agents[role]
	if !ok {
		return resolved
	}
	if override.Provider != "" {
		resolved.Provider = override.Provider
	}
	if override.Model != "" {
		resolved.Model = override.Model
	}
	if override.MaxTokens > 0 {
		resolved.MaxTokens = override.MaxTokens
	}
	if override.Temperature != nil {
		resolved.Temperature = override.Temperature
	}
	return resolved
}

// Stats contains statistics about loaded configuration
type Stats struct {
	AgentOverrides  int
	Workers         int
	EvalConcurrency int
}

// Stats returns configuration statistics for logging/monitoring
func (c *Config) Stats() Stats {
	s := Stats{AgentOverrides: len(c.Agents)}
	if c.Queue != nil {
		s.Workers = c.Queue.WorkerCount
	}
	if c.Defaults != nil {
		s.EvalConcurrency = c.Defaults.EvalConcurrency
	}
	return s
}
