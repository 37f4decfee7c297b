package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidCandidateTransition(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
		want bool
	}{
		{"new to under_test", CandidateNew, CandidateUnderTest, true},
		{"under_test to promising", CandidateUnderTest, CandidatePromising, true},
		{"under_test to weak", CandidateUnderTest, CandidateWeak, true},
		{"new to promising skips under_test", CandidateNew, CandidatePromising, true},
		{"new to rejected", CandidateNew, CandidateRejected, true},
		{"promising to rejected", CandidatePromising, CandidateRejected, true},
		{"weak to rejected", CandidateWeak, CandidateRejected, true},
		{"rejected is terminal", CandidateRejected, CandidateNew, false},
		{"rejected to rejected", CandidateRejected, CandidateRejected, false},
		{"no backward move", CandidatePromising, CandidateUnderTest, false},
		{"promising and weak do not swap", CandidatePromising, CandidateWeak, false},
		{"weak and promising do not swap", CandidateWeak, CandidatePromising, false},
		{"under_test back to new", CandidateUnderTest, CandidateNew, false},
		{"unknown source", "limbo", CandidateRejected, false},
		{"unknown target", CandidateNew, "limbo", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidCandidateTransition(tt.from, tt.to))
		})
	}
}

func TestValidateConstraints(t *testing.T) {
	t.Run("accepts valid set", func(t *testing.T) {
		err := ValidateConstraints([]Constraint{
			{Name: "latency", Weight: 60},
			{Name: "safety", Weight: 100},
		})
		assert.NoError(t, err)
	})

	t.Run("rejects duplicate names", func(t *testing.T) {
		err := ValidateConstraints([]Constraint{
			{Name: "latency", Weight: 10},
			{Name: "latency", Weight: 20},
		})
		assert.ErrorContains(t, err, "duplicate")
	})

	t.Run("rejects weight out of range", func(t *testing.T) {
		assert.Error(t, ValidateConstraints([]Constraint{{Name: "x", Weight: 101}}))
		assert.Error(t, ValidateConstraints([]Constraint{{Name: "x", Weight: -1}}))
	})

	t.Run("rejects empty name", func(t *testing.T) {
		assert.Error(t, ValidateConstraints([]Constraint{{Weight: 10}}))
	})
}

func TestConstraintHard(t *testing.T) {
	assert.True(t, Constraint{Name: "safety", Weight: 100}.Hard())
	assert.False(t, Constraint{Name: "latency", Weight: 99.5}.Hard())
}

func TestTruncateErrorSummary(t *testing.T) {
	short := "boom"
	assert.Equal(t, short, TruncateErrorSummary(short))

	long := make([]rune, MaxErrorSummaryLen+100)
	for i := range long {
		long[i] = 'x'
	}
	got := TruncateErrorSummary(string(long))
	assert.Len(t, []rune(got), MaxErrorSummaryLen)
}
