// Package preflight validates that a project is ready to execute a run and
// normalizes the run configuration before anything is queued.
package preflight

import (
	"context"
	"fmt"

	"dario.cat/mergo"

	"github.com/assaylab/assay/pkg/models"
	"github.com/assaylab/assay/pkg/services"
)

// Finding codes.
const (
	CodeMissingProblemSpec     = "missing_problem_spec"
	CodeMissingWorldModel      = "missing_world_model"
	CodeInsufficientCandidates = "insufficient_candidates"
	CodeValidationError        = "validation_error"
	CodeHighBudget             = "high_budget"
	CodeLargeCandidateCount    = "large_candidate_count"
	CodeDeprecatedMode         = "deprecated_mode"
)

// Warning thresholds.
const (
	highBudgetUSD       = 100.0
	highBudgetTokens    = 2_000_000
	largeCandidateCount = 20
)

// Finding is one blocker or warning.
type Finding struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// Result is the preflight verdict. Ready is true exactly when there are no
// blockers.
type Result struct {
	Ready            bool                   `json:"ready"`
	Blockers         []Finding              `json:"blockers"`
	Warnings         []Finding              `json:"warnings"`
	NormalizedConfig models.RunConfig       `json:"normalized_config"`
	Prerequisites    services.Prerequisites `json:"prerequisites"`
}

// prereqChecker reports which run prerequisites exist for a project.
type prereqChecker interface {
	CheckPrerequisites(ctx context.Context, projectID string) (services.Prerequisites, error)
}

// liveCandidateCounter counts the live candidate pool for eval_only checks.
type liveCandidateCounter interface {
	CountLive(ctx context.Context, projectID string) (int, error)
}

// Checker runs preflight validation against the store.
type Checker struct {
	specs      prereqChecker
	candidates liveCandidateCounter
}

// NewChecker creates a Checker over the spec and candidate services.
func NewChecker(specs prereqChecker, candidates liveCandidateCounter) *Checker {
	return &Checker{specs: specs, candidates: candidates}
}

// Check validates the project and normalizes cfg. Store errors abort the
// check; everything else lands in Blockers or Warnings.
func (c *Checker) Check(ctx context.Context, projectID, mode string, cfg models.RunConfig) (*Result, error) {
	result := &Result{
		Blockers: []Finding{},
		Warnings: []Finding{},
	}

	prereqs, err := c.specs.CheckPrerequisites(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to check prerequisites: %w", err)
	}
	result.Prerequisites = prereqs

	if !prereqs.ProblemSpec {
		result.Blockers = append(result.Blockers, Finding{
			Code:    CodeMissingProblemSpec,
			Message: "project has no problem spec",
		})
	}
	if !prereqs.WorldModel {
		result.Blockers = append(result.Blockers, Finding{
			Code:    CodeMissingWorldModel,
			Message: "project has no world model",
		})
	}

	if mode == "" {
		mode = models.ModeFullSearch
	}
	if !models.ValidMode(mode) {
		result.Blockers = append(result.Blockers, Finding{
			Code:    CodeValidationError,
			Message: fmt.Sprintf("unknown mode %q", mode),
			Field:   "mode",
		})
	}

	if mode == models.ModeEvalOnly {
		live, err := c.candidates.CountLive(ctx, projectID)
		if err != nil {
			return nil, fmt.Errorf("failed to count live candidates: %w", err)
		}
		if live == 0 {
			result.Blockers = append(result.Blockers, Finding{
				Code:    CodeInsufficientCandidates,
				Message: "eval_only mode requires at least one live candidate",
			})
		}
	}
	if mode == models.ModeSeeded {
		result.Warnings = append(result.Warnings, Finding{
			Code:    CodeDeprecatedMode,
			Message: "seeded mode is deprecated; prefer full_search with parent candidates",
			Field:   "mode",
		})
	}

	normalized, err := NormalizeConfig(cfg)
	if err != nil {
		result.Blockers = append(result.Blockers, Finding{
			Code:    CodeValidationError,
			Message: err.Error(),
			Field:   "config",
		})
		normalized = models.DefaultRunConfig()
	}
	result.NormalizedConfig = normalized

	if cfg.BudgetUSD != nil && *cfg.BudgetUSD > highBudgetUSD {
		result.Warnings = append(result.Warnings, Finding{
			Code:    CodeHighBudget,
			Message: fmt.Sprintf("budget_usd %.2f exceeds %.0f", *cfg.BudgetUSD, highBudgetUSD),
			Field:   "budget_usd",
		})
	}
	if cfg.BudgetTokens != nil && *cfg.BudgetTokens > highBudgetTokens {
		result.Warnings = append(result.Warnings, Finding{
			Code:    CodeHighBudget,
			Message: fmt.Sprintf("budget_tokens %d exceeds %d", *cfg.BudgetTokens, highBudgetTokens),
			Field:   "budget_tokens",
		})
	}
	if normalized.NumCandidates > largeCandidateCount {
		result.Warnings = append(result.Warnings, Finding{
			Code:    CodeLargeCandidateCount,
			Message: fmt.Sprintf("num_candidates %d is large; runs will be slow and expensive", normalized.NumCandidates),
			Field:   "num_candidates",
		})
	}
	if normalized.NumScenarios > largeCandidateCount {
		result.Warnings = append(result.Warnings, Finding{
			Code:    CodeLargeCandidateCount,
			Message: fmt.Sprintf("num_scenarios %d is large; runs will be slow and expensive", normalized.NumScenarios),
			Field:   "num_scenarios",
		})
	}

	result.Ready = len(result.Blockers) == 0
	return result, nil
}

// NormalizeConfig fills unset fields from the default config and clamps the
// counts into their bounds.
func NormalizeConfig(cfg models.RunConfig) (models.RunConfig, error) {
	normalized := cfg
	defaults := models.DefaultRunConfig()
	if err := mergo.Merge(&normalized, defaults); err != nil {
		return cfg, fmt.Errorf("failed to apply config defaults: %w", err)
	}

	normalized.NumCandidates = clamp(normalized.NumCandidates, models.MinCandidates, models.MaxCandidates)
	normalized.NumScenarios = clamp(normalized.NumScenarios, models.MinScenarios, models.MaxScenarios)

	if normalized.BudgetTokens != nil && *normalized.BudgetTokens <= 0 {
		return cfg, fmt.Errorf("budget_tokens must be positive")
	}
	if normalized.BudgetUSD != nil && *normalized.BudgetUSD <= 0 {
		return cfg, fmt.Errorf("budget_usd must be positive")
	}
	if normalized.MaxRuntimeS != nil && *normalized.MaxRuntimeS <= 0 {
		return cfg, fmt.Errorf("max_runtime_s must be positive")
	}
	if normalized.Mode != "" && !models.ValidMode(normalized.Mode) {
		return cfg, fmt.Errorf("unknown mode %q", normalized.Mode)
	}
	return normalized, nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
