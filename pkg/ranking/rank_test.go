package ranking

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/assaylab/assay/pkg/models"
)

func evalInput(p, r float64) EvalInput {
	return EvalInput{P: p, R: r}
}

func TestRank_Aggregation(t *testing.T) {
	t.Run("means of evaluation signals", func(t *testing.T) {
		ranked := Rank(nil, []CandidateInput{
			{ID: "c1", Status: models.CandidateUnderTest, Evaluations: []EvalInput{
				evalInput(0.8, 0.4),
				evalInput(0.6, 0.2),
			}},
		})
		require.Len(t, ranked, 1)
		assert.InDelta(t, 0.7, ranked[0].P, 1e-9)
		assert.InDelta(t, 0.3, ranked[0].R, 1e-9)
		assert.InDelta(t, 0.7/0.3, ranked[0].I, 1e-9)
	})

	t.Run("no evaluations defaults to 0.5", func(t *testing.T) {
		ranked := Rank(nil, []CandidateInput{{ID: "c1", Status: models.CandidateNew}})
		require.Len(t, ranked, 1)
		assert.Equal(t, 0.5, ranked[0].P)
		assert.Equal(t, 0.5, ranked[0].R)
		assert.Equal(t, 1.0, ranked[0].I)
	})

	t.Run("zero R yields I of zero", func(t *testing.T) {
		ranked := Rank(nil, []CandidateInput{
			{ID: "c1", Status: models.CandidateUnderTest, Evaluations: []EvalInput{evalInput(0.9, 0)}},
		})
		assert.Equal(t, 0.0, ranked[0].I)
	})
}

func TestRank_StatusThresholds(t *testing.T) {
	tests := []struct {
		name string
		p, r float64
		want string
	}{
		{name: "I at 0.8 is promising", p: 0.8, r: 1.0, want: models.CandidatePromising},
		{name: "I at 0.5 stays under_test", p: 0.5, r: 1.0, want: models.CandidateUnderTest},
		{name: "I below 0.5 is weak", p: 0.4, r: 1.0, want: models.CandidateWeak},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ranked := Rank(nil, []CandidateInput{
				{ID: "c1", Status: models.CandidateUnderTest, Evaluations: []EvalInput{evalInput(tt.p, tt.r)}},
			})
			assert.Equal(t, tt.want, ranked[0].Status)
		})
	}
}

func TestRank_MonotoneStatusRespected(t *testing.T) {
	// A promising candidate scoring weak cannot move sideways; it keeps its
	// current status.
	ranked := Rank(nil, []CandidateInput{
		{ID: "c1", Status: models.CandidatePromising, Evaluations: []EvalInput{evalInput(0.2, 1.0)}},
	})
	assert.Equal(t, models.CandidatePromising, ranked[0].Status)
}

func TestRank_HardConstraintViolation(t *testing.T) {
	constraints := []models.Constraint{
		{Name: "budget", Weight: 100},
		{Name: "comfort", Weight: 10},
	}
	ranked := Rank(constraints, []CandidateInput{
		{ID: "c1", Status: models.CandidateUnderTest, Evaluations: []EvalInput{
			{P: 0.9, R: 0.3, ConstraintSatisfaction: map[string]models.ConstraintResult{
				"budget":  {Satisfied: true, Score: 0.9},
				"comfort": {Satisfied: false, Score: 0.1},
			}},
			{P: 0.9, R: 0.3, ConstraintSatisfaction: map[string]models.ConstraintResult{
				"budget": {Satisfied: false, Score: 0.2, Explanation: "exceeded in scenario 2"},
			}},
		}},
	})

	require.Len(t, ranked, 1)
	rc := ranked[0]
	// AND across evaluations: one failure flips the aggregate.
	assert.Equal(t, []string{"budget"}, rc.HardViolations)
	assert.Equal(t, models.CandidateRejected, rc.Status)
	// Soft constraint failures don't reject.
	assert.False(t, rc.ConstraintSatisfaction["comfort"].Satisfied)
	assert.Contains(t, rc.Explanation, "violates hard constraint budget")
	require.NotEmpty(t, rc.Factors.Negative)
	assert.Equal(t, "Violates hard constraint budget", rc.Factors.Negative[0])
	assert.InDelta(t, 0.55, rc.ConstraintSatisfaction["budget"].Score, 1e-9)
	assert.Equal(t, "exceeded in scenario 2", rc.ConstraintSatisfaction["budget"].Explanation)
}

func TestRank_OrderingAndExplanations(t *testing.T) {
	ranked := Rank(nil, []CandidateInput{
		{ID: "mid", Status: models.CandidateUnderTest, Evaluations: []EvalInput{evalInput(0.6, 1.0)}},
		{ID: "top", Status: models.CandidateUnderTest, Evaluations: []EvalInput{evalInput(0.9, 1.0)}},
		{ID: "bottom", Status: models.CandidateUnderTest, Evaluations: []EvalInput{evalInput(0.9, 0)}},
	})

	require.Len(t, ranked, 3)
	assert.Equal(t, "top", ranked[0].CandidateID)
	assert.Equal(t, "mid", ranked[1].CandidateID)
	assert.Equal(t, "bottom", ranked[2].CandidateID)

	assert.Equal(t, 1, ranked[0].Rank)
	assert.Contains(t, ranked[0].Explanation, "#1")
	assert.Contains(t, ranked[0].Explanation, "ahead of the next candidate")

	// The neighbour below "mid" has I == 0: the percentage is omitted.
	assert.Contains(t, ranked[1].Explanation, "#2")
	assert.NotContains(t, ranked[1].Explanation, "ahead of the next candidate")
}

func TestRank_StableTies(t *testing.T) {
	inputs := make([]CandidateInput, 5)
	for i := range inputs {
		inputs[i] = CandidateInput{
			ID:          fmt.Sprintf("c%d", i),
			Status:      models.CandidateUnderTest,
			Evaluations: []EvalInput{evalInput(0.6, 1.0)},
		}
	}
	ranked := Rank(nil, inputs)
	for i, rc := range ranked {
		assert.Equal(t, fmt.Sprintf("c%d", i), rc.CandidateID)
	}
}

func TestRank_Factors(t *testing.T) {
	constraints := []models.Constraint{{Name: "fairness", Weight: 60}}
	ranked := Rank(constraints, []CandidateInput{
		{ID: "strong", Status: models.CandidateUnderTest, Evaluations: []EvalInput{
			{P: 0.9, R: 0.2, ConstraintSatisfaction: map[string]models.ConstraintResult{
				"fairness": {Satisfied: true, Score: 0.95},
			}},
		}},
		{ID: "weak", Status: models.CandidateUnderTest, Evaluations: []EvalInput{evalInput(0.3, 0.9)}},
		{ID: "mid", Status: models.CandidateUnderTest, Evaluations: []EvalInput{evalInput(0.5, 0.5)}},
	})

	byID := map[string]RankedCandidate{}
	for _, rc := range ranked {
		byID[rc.CandidateID] = rc
	}

	strong := byID["strong"]
	assert.Contains(t, strong.Factors.Positive, "Satisfies high-weight constraint fairness")
	assert.Contains(t, strong.Factors.Positive, "P above cohort median")
	assert.Contains(t, strong.Factors.Positive, "R below cohort median")
	assert.Contains(t, strong.Explanation, "strong progress")

	weak := byID["weak"]
	assert.Contains(t, weak.Factors.Negative, "P below cohort median")
	assert.Contains(t, weak.Factors.Negative, "R above cohort median")
	assert.LessOrEqual(t, len(weak.Factors.Negative), 4)
}
