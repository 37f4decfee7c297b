// Package ranking turns a run's evaluations into candidate I scores,
// statuses and human-readable explanations. I = P_agg / R_agg: progress per
// unit of resource, higher is better.
package ranking

import (
	"fmt"
	"sort"
	"strings"

	"github.com/assaylab/assay/pkg/models"
)

// Status thresholds on I.
const (
	promisingThreshold = 0.8
	underTestThreshold = 0.5
)

// defaultSignal is used for P_agg and R_agg when a candidate has no
// evaluations.
const defaultSignal = 0.5

// Factor list bounds.
const maxFactorsPerSide = 4

// EvalInput is one evaluation's contribution to a candidate's aggregate.
type EvalInput struct {
	P                      float64
	R                      float64
	ConstraintSatisfaction map[string]models.ConstraintResult
}

// CandidateInput is what the ranker needs to know about one candidate.
type CandidateInput struct {
	ID          string
	Status      string
	Evaluations []EvalInput
}

// RankedCandidate is one ranked row, JSON-ready for the API response.
type RankedCandidate struct {
	CandidateID            string                             `json:"candidate_id"`
	Rank                   int                                `json:"rank"`
	P                      float64                            `json:"P"`
	R                      float64                            `json:"R"`
	I                      float64                            `json:"I"`
	Status                 string                             `json:"status"`
	EvaluationCount        int                                `json:"evaluation_count"`
	HardViolations         []string                           `json:"hard_violations,omitempty"`
	ConstraintSatisfaction map[string]models.ConstraintResult `json:"constraint_satisfaction,omitempty"`
	Explanation            string                             `json:"ranking_explanation"`
	Factors                models.RankingFactors              `json:"ranking_factors"`
}

// Rank computes aggregates, statuses, order and explanations for a cohort.
// It is pure: persistence is the Ranker's job. Status changes respect the
// monotone candidate machine; an unreachable verdict keeps the current
// status.
func Rank(constraints []models.Constraint, inputs []CandidateInput) []RankedCandidate {
	hardByName := make(map[string]models.Constraint)
	weightByName := make(map[string]models.Constraint, len(constraints))
	for _, c := range constraints {
		weightByName[c.Name] = c
		if c.Hard() {
			hardByName[c.Name] = c
		}
	}

	ranked := make([]RankedCandidate, 0, len(inputs))
	for _, in := range inputs {
		rc := RankedCandidate{
			CandidateID:            in.ID,
			EvaluationCount:        len(in.Evaluations),
			ConstraintSatisfaction: aggregateConstraints(in.Evaluations),
		}

		rc.P, rc.R = aggregateSignals(in.Evaluations)
		if rc.R == 0 {
			rc.I = 0
		} else {
			rc.I = rc.P / rc.R
		}

		// Hard violations force rejection regardless of I.
		for name := range hardByName {
			agg, ok := rc.ConstraintSatisfaction[name]
			if ok && !agg.Satisfied {
				rc.HardViolations = append(rc.HardViolations, name)
			}
		}
		sort.Strings(rc.HardViolations)

		desired := statusForI(rc.I)
		if len(rc.HardViolations) > 0 {
			desired = models.CandidateRejected
		}
		rc.Status = in.Status
		if desired != in.Status && models.ValidCandidateTransition(in.Status, desired) {
			rc.Status = desired
		}

		ranked = append(ranked, rc)
	}

	// Stable: ties keep prior order.
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].I > ranked[j].I
	})

	medianP := median(ranked, func(rc RankedCandidate) float64 { return rc.P })
	medianR := median(ranked, func(rc RankedCandidate) float64 { return rc.R })

	for i := range ranked {
		ranked[i].Rank = i + 1
		var next *RankedCandidate
		if i+1 < len(ranked) {
			next = &ranked[i+1]
		}
		ranked[i].Explanation = buildExplanation(&ranked[i], next)
		ranked[i].Factors = buildFactors(&ranked[i], weightByName, medianP, medianR)
	}
	return ranked
}

func statusForI(i float64) string {
	switch {
	case i >= promisingThreshold:
		return models.CandidatePromising
	case i >= underTestThreshold:
		return models.CandidateUnderTest
	default:
		return models.CandidateWeak
	}
}

func aggregateSignals(evals []EvalInput) (p, r float64) {
	if len(evals) == 0 {
		return defaultSignal, defaultSignal
	}
	for _, e := range evals {
		p += e.P
		r += e.R
	}
	n := float64(len(evals))
	return p / n, r / n
}

// aggregateConstraints merges per-evaluation constraint verdicts:
// satisfied = AND, score = mean, explanation = first 3 distinct non-empty
// explanations joined.
func aggregateConstraints(evals []EvalInput) map[string]models.ConstraintResult {
	type acc struct {
		satisfied    bool
		scoreSum     float64
		count        int
		explanations []string
	}
	accs := make(map[string]*acc)
	for _, e := range evals {
		for name, res := range e.ConstraintSatisfaction {
			a, ok := accs[name]
			if !ok {
				a = &acc{satisfied: true}
				accs[name] = a
			}
			a.satisfied = a.satisfied && res.Satisfied
			a.scoreSum += res.Score
			a.count++
			if res.Explanation != "" && len(a.explanations) < 3 && !contains(a.explanations, res.Explanation) {
				a.explanations = append(a.explanations, res.Explanation)
			}
		}
	}
	if len(accs) == 0 {
		return nil
	}
	out := make(map[string]models.ConstraintResult, len(accs))
	for name, a := range accs {
		out[name] = models.ConstraintResult{
			Satisfied:   a.satisfied,
			Score:       a.scoreSum / float64(a.count),
			Explanation: strings.Join(a.explanations, "; "),
		}
	}
	return out
}

// buildExplanation renders the per-candidate one-liner: rank position, lead
// over the next candidate, at most one hard violation callout, and a P/R
// tradeoff note.
func buildExplanation(rc, next *RankedCandidate) string {
	var b strings.Builder
	fmt.Fprintf(&b, "#%d (I=%.2f)", rc.Rank, rc.I)
	if next != nil && next.I != 0 {
		deltaPct := (rc.I - next.I) / next.I * 100
		fmt.Fprintf(&b, ", %.1f%% ahead of the next candidate", deltaPct)
	}
	if len(rc.HardViolations) > 0 {
		fmt.Fprintf(&b, "; violates hard constraint %s", rc.HardViolations[0])
	}
	if rc.P > 0.7 && rc.R < 0.4 {
		fmt.Fprintf(&b, "; strong progress (P=%.2f) at low resource cost (R=%.2f)", rc.P, rc.R)
	}
	return b.String()
}

func buildFactors(rc *RankedCandidate, constraints map[string]models.Constraint, medianP, medianR float64) models.RankingFactors {
	var f models.RankingFactors

	// Hard violations lead the negative list.
	for _, name := range rc.HardViolations {
		f.Negative = append(f.Negative, "Violates hard constraint "+name)
	}

	names := make([]string, 0, len(rc.ConstraintSatisfaction))
	for name := range rc.ConstraintSatisfaction {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		c, known := constraints[name]
		if !known {
			continue
		}
		agg := rc.ConstraintSatisfaction[name]
		if c.Weight >= 50 && agg.Satisfied && agg.Score > 0.8 {
			f.Positive = append(f.Positive, "Satisfies high-weight constraint "+name)
		}
	}

	if rc.P > medianP {
		f.Positive = append(f.Positive, "P above cohort median")
	} else if rc.P < medianP {
		f.Negative = append(f.Negative, "P below cohort median")
	}
	if rc.R < medianR {
		f.Positive = append(f.Positive, "R below cohort median")
	} else if rc.R > medianR {
		f.Negative = append(f.Negative, "R above cohort median")
	}
	if rc.EvaluationCount == 0 {
		f.Negative = append(f.Negative, "No evaluations recorded; neutral defaults applied")
	}

	if len(f.Positive) > maxFactorsPerSide {
		f.Positive = f.Positive[:maxFactorsPerSide]
	}
	if len(f.Negative) > maxFactorsPerSide {
		f.Negative = f.Negative[:maxFactorsPerSide]
	}
	return f
}

func median(ranked []RankedCandidate, get func(RankedCandidate) float64) float64 {
	if len(ranked) == 0 {
		return 0
	}
	values := make([]float64, len(ranked))
	for i, rc := range ranked {
		values[i] = get(rc)
	}
	sort.Float64s(values)
	mid := len(values) / 2
	if len(values)%2 == 1 {
		return values[mid]
	}
	return (values[mid-1] + values[mid]) / 2
}

func contains(list []string, s string) bool {
	for _, it := range list {
		if it == s {
			return true
		}
	}
	return false
}
