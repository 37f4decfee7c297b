package snapshot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/assaylab/assay/pkg/models"
)

func floatPtr(v float64) *float64 { return &v }

func TestValidateInvariants(t *testing.T) {
	outcome := Outcome{
		CandidateCount:  5,
		ScenarioCount:   8,
		EvaluationCount: 40,
		RunStatus:       "completed",
		TopIScore:       floatPtr(0.85),
		DurationSeconds: floatPtr(120),
		HardViolations:  0,
	}

	tests := []struct {
		name       string
		invariant  models.Invariant
		outcome    Outcome
		wantStatus string
	}{
		{"min candidates met", models.Invariant{Type: models.InvariantMinCandidates, Value: float64(3)}, outcome, models.InvariantPassed},
		{"min candidates failed", models.Invariant{Type: models.InvariantMinCandidates, Value: float64(10)}, outcome, models.InvariantFailed},
		{"max candidates met", models.Invariant{Type: models.InvariantMaxCandidates, Value: float64(5)}, outcome, models.InvariantPassed},
		{"max scenarios failed", models.Invariant{Type: models.InvariantMaxScenarios, Value: float64(4)}, outcome, models.InvariantFailed},
		{"run status match", models.Invariant{Type: models.InvariantRunStatus, Value: "completed"}, outcome, models.InvariantPassed},
		{"run status mismatch", models.Invariant{Type: models.InvariantRunStatus, Value: "failed"}, outcome, models.InvariantFailed},
		{"run status non-string value", models.Invariant{Type: models.InvariantRunStatus, Value: 7}, outcome, models.InvariantError},
		{"min top i met", models.Invariant{Type: models.InvariantMinTopIScore, Value: 0.8}, outcome, models.InvariantPassed},
		{"max top i failed", models.Invariant{Type: models.InvariantMaxTopIScore, Value: 0.5}, outcome, models.InvariantFailed},
		{"no hard violations passed", models.Invariant{Type: models.InvariantNoHardViolations}, outcome, models.InvariantPassed},
		{"max duration met", models.Invariant{Type: models.InvariantMaxDurationSeconds, Value: float64(300)}, outcome, models.InvariantPassed},
		{"coverage met", models.Invariant{Type: models.InvariantMinEvalCoverage, Value: 1.0}, outcome, models.InvariantPassed},
		{"unknown type errors", models.Invariant{Type: "max_memory_mb", Value: 512}, outcome, models.InvariantError},
		{"non-numeric value errors", models.Invariant{Type: models.InvariantMinCandidates, Value: "three"}, outcome, models.InvariantError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results, _ := ValidateInvariants([]models.Invariant{tt.invariant}, tt.outcome)
			require.Len(t, results, 1)
			assert.Equal(t, tt.wantStatus, results[0].Status, "message: %s", results[0].Message)
		})
	}

	t.Run("nil top i score fails min", func(t *testing.T) {
		out := outcome
		out.TopIScore = nil
		results, allPassed := ValidateInvariants([]models.Invariant{
			{Type: models.InvariantMinTopIScore, Value: 0.1},
		}, out)
		require.Len(t, results, 1)
		assert.Equal(t, models.InvariantFailed, results[0].Status)
		assert.False(t, allPassed)
	})

	t.Run("nil duration fails max", func(t *testing.T) {
		out := outcome
		out.DurationSeconds = nil
		results, _ := ValidateInvariants([]models.Invariant{
			{Type: models.InvariantMaxDurationSeconds, Value: float64(60)},
		}, out)
		require.Len(t, results, 1)
		assert.Equal(t, models.InvariantFailed, results[0].Status)
	})

	t.Run("hard violations fail", func(t *testing.T) {
		out := outcome
		out.HardViolations = 2
		results, allPassed := ValidateInvariants([]models.Invariant{
			{Type: models.InvariantNoHardViolations},
		}, out)
		require.Len(t, results, 1)
		assert.Equal(t, models.InvariantFailed, results[0].Status)
		assert.Contains(t, results[0].Message, "2 candidates")
		assert.False(t, allPassed)
	})

	t.Run("empty grid counts as full coverage", func(t *testing.T) {
		out := Outcome{CandidateCount: 0, ScenarioCount: 0, EvaluationCount: 0}
		results, allPassed := ValidateInvariants([]models.Invariant{
			{Type: models.InvariantMinEvalCoverage, Value: 1.0},
		}, out)
		require.Len(t, results, 1)
		assert.Equal(t, models.InvariantPassed, results[0].Status)
		assert.True(t, allPassed)
	})

	t.Run("all passed requires every invariant", func(t *testing.T) {
		results, allPassed := ValidateInvariants([]models.Invariant{
			{Type: models.InvariantMinCandidates, Value: float64(1)},
			{Type: models.InvariantMinScenarios, Value: float64(100)},
		}, outcome)
		require.Len(t, results, 2)
		assert.Equal(t, models.InvariantPassed, results[0].Status)
		assert.Equal(t, models.InvariantFailed, results[1].Status)
		assert.False(t, allPassed)
	})
}

func TestReplayRunConfig(t *testing.T) {
	snapCfg := models.RunConfig{NumCandidates: 5, NumScenarios: 8, Mode: "full_search"}

	t.Run("snapshot config used when no override", func(t *testing.T) {
		cfg := mergedReplayConfig(snapCfg, nil)
		assert.Equal(t, 5, cfg.NumCandidates)
		assert.Equal(t, "full_search", cfg.Mode)
	})

	t.Run("override fields win", func(t *testing.T) {
		cfg := mergedReplayConfig(snapCfg, &models.RunConfig{NumCandidates: 2})
		assert.Equal(t, 2, cfg.NumCandidates)
		assert.Equal(t, 8, cfg.NumScenarios)
	})
}
