package snapshot

import (
	"encoding/json"
	"fmt"

	"github.com/assaylab/assay/pkg/models"
)

// Outcome is the replay end state invariants are validated against.
type Outcome struct {
	CandidateCount  int
	ScenarioCount   int
	EvaluationCount int
	RunStatus       string
	TopIScore       *float64
	DurationSeconds *float64
	HardViolations  int
	Metrics         *models.RunMetrics
	CostUSD         float64
}

// ValidateInvariants checks every invariant against the outcome. Unknown
// types and unparseable expected values produce error results rather than
// failing the replay outright. all_passed is true only when every result
// passed.
func ValidateInvariants(invariants []models.Invariant, outcome Outcome) ([]models.InvariantResult, bool) {
	results := make([]models.InvariantResult, len(invariants))
	allPassed := true
	for i, inv := range invariants {
		results[i] = validateInvariant(inv, outcome)
		if results[i].Status != models.InvariantPassed {
			allPassed = false
		}
	}
	return results, allPassed
}

func validateInvariant(inv models.Invariant, outcome Outcome) models.InvariantResult {
	result := models.InvariantResult{
		Type:        inv.Type,
		Description: inv.Description,
		Expected:    inv.Value,
	}

	switch inv.Type {
	case models.InvariantMinCandidates:
		checkMin(&result, float64(outcome.CandidateCount), inv.Value, "candidates")
	case models.InvariantMaxCandidates:
		checkMax(&result, float64(outcome.CandidateCount), inv.Value, "candidates")
	case models.InvariantMinScenarios:
		checkMin(&result, float64(outcome.ScenarioCount), inv.Value, "scenarios")
	case models.InvariantMaxScenarios:
		checkMax(&result, float64(outcome.ScenarioCount), inv.Value, "scenarios")
	case models.InvariantRunStatus:
		expected, ok := inv.Value.(string)
		if !ok {
			return errorResult(result, "expected value must be a status string")
		}
		result.Actual = outcome.RunStatus
		if outcome.RunStatus == expected {
			result.Status = models.InvariantPassed
		} else {
			result.Status = models.InvariantFailed
			result.Message = fmt.Sprintf("run status %s, expected %s", outcome.RunStatus, expected)
		}
	case models.InvariantMinTopIScore:
		if outcome.TopIScore == nil {
			return failedResult(result, nil, "no candidate carries an I score")
		}
		checkMin(&result, *outcome.TopIScore, inv.Value, "top I score")
	case models.InvariantMaxTopIScore:
		if outcome.TopIScore == nil {
			return failedResult(result, nil, "no candidate carries an I score")
		}
		checkMax(&result, *outcome.TopIScore, inv.Value, "top I score")
	case models.InvariantNoHardViolations:
		result.Actual = outcome.HardViolations
		if outcome.HardViolations == 0 {
			result.Status = models.InvariantPassed
		} else {
			result.Status = models.InvariantFailed
			result.Message = fmt.Sprintf("%d candidates violate hard constraints", outcome.HardViolations)
		}
	case models.InvariantMaxDurationSeconds:
		if outcome.DurationSeconds == nil {
			return failedResult(result, nil, "run has no recorded duration")
		}
		checkMax(&result, *outcome.DurationSeconds, inv.Value, "duration seconds")
	case models.InvariantMinEvalCoverage:
		coverage := evaluationCoverage(outcome)
		checkMin(&result, coverage, inv.Value, "evaluation coverage")
	default:
		return errorResult(result, fmt.Sprintf("unknown invariant type %q", inv.Type))
	}
	return result
}

// evaluationCoverage is evaluations over the candidate x scenario grid. An
// empty grid counts as fully covered.
func evaluationCoverage(outcome Outcome) float64 {
	denominator := outcome.CandidateCount * outcome.ScenarioCount
	if denominator == 0 {
		return 1.0
	}
	return float64(outcome.EvaluationCount) / float64(denominator)
}

func checkMin(result *models.InvariantResult, actual float64, expected any, what string) {
	threshold, ok := toFloat(expected)
	result.Actual = actual
	if !ok {
		result.Status = models.InvariantError
		result.Message = "expected value must be numeric"
		return
	}
	if actual >= threshold {
		result.Status = models.InvariantPassed
		return
	}
	result.Status = models.InvariantFailed
	result.Message = fmt.Sprintf("%s %v below minimum %v", what, actual, threshold)
}

func checkMax(result *models.InvariantResult, actual float64, expected any, what string) {
	threshold, ok := toFloat(expected)
	result.Actual = actual
	if !ok {
		result.Status = models.InvariantError
		result.Message = "expected value must be numeric"
		return
	}
	if actual <= threshold {
		result.Status = models.InvariantPassed
		return
	}
	result.Status = models.InvariantFailed
	result.Message = fmt.Sprintf("%s %v above maximum %v", what, actual, threshold)
}

func failedResult(result models.InvariantResult, actual any, message string) models.InvariantResult {
	result.Actual = actual
	result.Status = models.InvariantFailed
	result.Message = message
	return result
}

func errorResult(result models.InvariantResult, message string) models.InvariantResult {
	result.Status = models.InvariantError
	result.Message = message
	return result
}

// toFloat accepts the numeric shapes a JSON round trip can produce.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}
