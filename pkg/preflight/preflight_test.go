package preflight

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/assaylab/assay/pkg/models"
	"github.com/assaylab/assay/pkg/services"
)

type fakePrereqs struct {
	prereqs services.Prerequisites
}

func (f *fakePrereqs) CheckPrerequisites(_ context.Context, _ string) (services.Prerequisites, error) {
	return f.prereqs, nil
}

type fakeCounter struct {
	live int
}

func (f *fakeCounter) CountLive(_ context.Context, _ string) (int, error) {
	return f.live, nil
}

func newChecker(spec, model bool, live int) *Checker {
	return NewChecker(
		&fakePrereqs{prereqs: services.Prerequisites{ProblemSpec: spec, WorldModel: model}},
		&fakeCounter{live: live},
	)
}

func findingCodes(findings []Finding) []string {
	codes := make([]string, len(findings))
	for i, f := range findings {
		codes[i] = f.Code
	}
	return codes
}

func TestChecker_Check(t *testing.T) {
	ctx := context.Background()

	t.Run("ready when prerequisites exist", func(t *testing.T) {
		result, err := newChecker(true, true, 0).Check(ctx, "p1", models.ModeFullSearch, models.RunConfig{})
		require.NoError(t, err)
		assert.True(t, result.Ready)
		assert.Empty(t, result.Blockers)
		assert.Equal(t, models.DefaultCandidates, result.NormalizedConfig.NumCandidates)
		assert.Equal(t, models.DefaultScenarios, result.NormalizedConfig.NumScenarios)
		assert.True(t, result.Prerequisites.ProblemSpec)
	})

	t.Run("missing prerequisites block the run", func(t *testing.T) {
		result, err := newChecker(false, false, 0).Check(ctx, "p1", models.ModeFullSearch, models.RunConfig{})
		require.NoError(t, err)
		assert.False(t, result.Ready)
		assert.ElementsMatch(t,
			[]string{CodeMissingProblemSpec, CodeMissingWorldModel},
			findingCodes(result.Blockers))
	})

	t.Run("eval_only with empty pool blocks", func(t *testing.T) {
		result, err := newChecker(true, true, 0).Check(ctx, "p1", models.ModeEvalOnly, models.RunConfig{})
		require.NoError(t, err)
		assert.Contains(t, findingCodes(result.Blockers), CodeInsufficientCandidates)
	})

	t.Run("eval_only with live candidates passes", func(t *testing.T) {
		result, err := newChecker(true, true, 3).Check(ctx, "p1", models.ModeEvalOnly, models.RunConfig{})
		require.NoError(t, err)
		assert.True(t, result.Ready)
	})

	t.Run("unknown mode blocks", func(t *testing.T) {
		result, err := newChecker(true, true, 0).Check(ctx, "p1", "exhaustive", models.RunConfig{})
		require.NoError(t, err)
		assert.Contains(t, findingCodes(result.Blockers), CodeValidationError)
	})

	t.Run("empty mode defaults to full_search", func(t *testing.T) {
		result, err := newChecker(true, true, 0).Check(ctx, "p1", "", models.RunConfig{})
		require.NoError(t, err)
		assert.True(t, result.Ready)
	})

	t.Run("seeded mode warns as deprecated", func(t *testing.T) {
		result, err := newChecker(true, true, 0).Check(ctx, "p1", models.ModeSeeded, models.RunConfig{})
		require.NoError(t, err)
		assert.True(t, result.Ready)
		assert.Contains(t, findingCodes(result.Warnings), CodeDeprecatedMode)
	})

	t.Run("budget warnings", func(t *testing.T) {
		usd := 250.0
		tokens := int64(5_000_000)
		result, err := newChecker(true, true, 0).Check(ctx, "p1", models.ModeFullSearch, models.RunConfig{
			BudgetUSD:    &usd,
			BudgetTokens: &tokens,
		})
		require.NoError(t, err)
		assert.True(t, result.Ready)
		codes := findingCodes(result.Warnings)
		assert.Equal(t, []string{CodeHighBudget, CodeHighBudget}, codes)
	})

	t.Run("large candidate count warns", func(t *testing.T) {
		result, err := newChecker(true, true, 0).Check(ctx, "p1", models.ModeFullSearch, models.RunConfig{NumCandidates: 30})
		require.NoError(t, err)
		assert.True(t, result.Ready)
		assert.Contains(t, findingCodes(result.Warnings), CodeLargeCandidateCount)
		assert.Equal(t, 30, result.NormalizedConfig.NumCandidates)
	})

	t.Run("large scenario count warns", func(t *testing.T) {
		result, err := newChecker(true, true, 0).Check(ctx, "p1", models.ModeFullSearch, models.RunConfig{NumScenarios: 25})
		require.NoError(t, err)
		assert.True(t, result.Ready)
		require.Contains(t, findingCodes(result.Warnings), CodeLargeCandidateCount)
		fields := make([]string, 0, len(result.Warnings))
		for _, w := range result.Warnings {
			fields = append(fields, w.Field)
		}
		assert.Contains(t, fields, "num_scenarios")
	})

	t.Run("invalid budget blocks with validation_error", func(t *testing.T) {
		bad := -1.0
		result, err := newChecker(true, true, 0).Check(ctx, "p1", models.ModeFullSearch, models.RunConfig{BudgetUSD: &bad})
		require.NoError(t, err)
		assert.False(t, result.Ready)
		assert.Contains(t, findingCodes(result.Blockers), CodeValidationError)
	})
}

func TestNormalizeConfig(t *testing.T) {
	t.Run("fills defaults", func(t *testing.T) {
		got, err := NormalizeConfig(models.RunConfig{})
		require.NoError(t, err)
		assert.Equal(t, models.DefaultCandidates, got.NumCandidates)
		assert.Equal(t, models.DefaultScenarios, got.NumScenarios)
	})

	t.Run("clamps counts into bounds", func(t *testing.T) {
		got, err := NormalizeConfig(models.RunConfig{NumCandidates: 900, NumScenarios: -2})
		require.NoError(t, err)
		assert.Equal(t, models.MaxCandidates, got.NumCandidates)
		assert.Equal(t, models.MinScenarios, got.NumScenarios)
	})

	t.Run("keeps explicit values", func(t *testing.T) {
		got, err := NormalizeConfig(models.RunConfig{NumCandidates: 12, NumScenarios: 3, Mode: models.ModeEvalOnly})
		require.NoError(t, err)
		assert.Equal(t, 12, got.NumCandidates)
		assert.Equal(t, 3, got.NumScenarios)
		assert.Equal(t, models.ModeEvalOnly, got.Mode)
	})
}
