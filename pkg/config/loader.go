package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// AssayYAMLConfig represents the complete assay.yaml file structure
type AssayYAMLConfig struct {
	Defaults  *Defaults                  `yaml:"defaults"`
	Queue     *QueueConfig               `yaml:"queue"`
	Retention *RetentionConfig           `yaml:"retention"`
	Agents    map[string]AgentRoleConfig `yaml:"agents"`
}

// Initialize loads, validates, and returns ready-to-use configuration.
// This is the primary entry point for configuration loading.
//
// Steps performed:
//  1. Load assay.yaml from configDir (missing file is fine)
//  2. Expand environment variables in the YAML text
//  3. Merge user values over built-in defaults
//  4. Validate the result
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg, err := load(ctx, configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	stats := cfg.Stats()
	log.Info("Configuration initialized successfully",
		"agent_overrides", stats.AgentOverrides,
		"workers", stats.Workers,
		"eval_concurrency", stats.EvalConcurrency)

	return cfg, nil
}

// load is the internal loader (not exported)
func load(_ context.Context, configDir string) (*Config, error) {
	userCfg, err := loadAssayYAML(configDir)
	if err != nil {
		return nil, NewLoadError("assay.yaml", err)
	}

	// Start with built-in defaults, then merge user config on top so
	// unset user fields keep their defaults.
	defaults := DefaultDefaults()
	if userCfg.Defaults != nil {
		if err := mergo.Merge(defaults, userCfg.Defaults, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge defaults: %w", err)
		}
	}

	queueCfg := DefaultQueueConfig()
	if userCfg.Queue != nil {
		if err := mergo.Merge(queueCfg, userCfg.Queue, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge queue config: %w", err)
		}
	}

	retention := DefaultRetentionConfig()
	if userCfg.Retention != nil {
		if err := mergo.Merge(retention, userCfg.Retention, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge retention config: %w", err)
		}
	}

	agents := make(map[string]*AgentRoleConfig, len(userCfg.Agents))
	for role, agentCfg := range userCfg.Agents {
		cfgCopy := agentCfg
		agents[role] = &cfgCopy
	}

	return &Config{
		configDir: configDir,
		Defaults:  defaults,
		Queue:     queueCfg,
		Retention: retention,
		Agents:    agents,
	}, nil
}

// loadAssayYAML reads and parses assay.yaml. A missing file yields an
// empty config (built-in defaults apply).
func loadAssayYAML(configDir string) (*AssayYAMLConfig, error) {
	path := filepath.Join(configDir, "assay.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Info("No assay.yaml found, using built-in defaults", "path", path)
			return &AssayYAMLConfig{}, nil
		}
		return nil, err
	}

	// Expand ${VAR} references before parsing
	expanded := os.ExpandEnv(string(data))

	var cfg AssayYAMLConfig
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}
	return &cfg, nil
}

func validate(cfg *Config) error {
	if cfg.Defaults.EvalConcurrency < 1 || cfg.Defaults.EvalConcurrency > 32 {
		return NewFieldError("defaults.eval_concurrency",
			fmt.Errorf("%w: must be between 1 and 32, got %d", ErrInvalidValue, cfg.Defaults.EvalConcurrency))
	}
	if cfg.Defaults.MaxTokens < 1 {
		return NewFieldError("defaults.max_tokens",
			fmt.Errorf("%w: must be positive, got %d", ErrInvalidValue, cfg.Defaults.MaxTokens))
	}
	if cfg.Queue.WorkerCount < 1 {
		return NewFieldError("queue.worker_count",
			fmt.Errorf("%w: must be positive, got %d", ErrInvalidValue, cfg.Queue.WorkerCount))
	}
	if cfg.Queue.OrphanThreshold <= 0 {
		return NewFieldError("queue.orphan_threshold",
			fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	for role, agentCfg := range cfg.Agents {
		if _, ok := knownRoles[role]; !ok {
			return NewFieldError("agents."+role,
				fmt.Errorf("%w: unknown agent role", ErrInvalidValue))
		}
		if agentCfg.Temperature != nil && (*agentCfg.Temperature < 0 || *agentCfg.Temperature > 2) {
			return NewFieldError("agents."+role+".temperature",
				fmt.Errorf("%w: must be between 0 and 2", ErrInvalidValue))
		}
	}
	if cfg.Retention.EphemeralProjectTTL <= 0 {
		return NewFieldError("retention.ephemeral_project_ttl",
			fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	return nil
}
