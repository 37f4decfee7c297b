package models

// Issue types: what kind of defect was observed.
const (
	IssueModel      = "model"
	IssueConstraint = "constraint"
	IssueEvaluator  = "evaluator"
	IssueScenario   = "scenario"
)

// Issue severities.
const (
	SeverityMinor        = "minor"
	SeverityImportant    = "important"
	SeverityCatastrophic = "catastrophic"
)

// Issue resolution statuses.
const (
	ResolutionOpen        = "open"
	ResolutionResolved    = "resolved"
	ResolutionInvalidated = "invalidated"
)

// Remediation actions.
const (
	ActionPatchAndRescore      = "patch_and_rescore"
	ActionPartialRerun         = "partial_rerun"
	ActionFullRerun            = "full_rerun"
	ActionInvalidateCandidates = "invalidate_candidates"
)

// ValidIssueType reports whether s is a known issue type.
func ValidIssueType(s string) bool {
	switch s {
	case IssueModel, IssueConstraint, IssueEvaluator, IssueScenario:
		return true
	}
	return false
}

// ValidSeverity reports whether s is a known severity.
func ValidSeverity(s string) bool {
	switch s {
	case SeverityMinor, SeverityImportant, SeverityCatastrophic:
		return true
	}
	return false
}

// ValidRemediationAction reports whether s is a known remediation action.
func ValidRemediationAction(s string) bool {
	switch s {
	case ActionPatchAndRescore, ActionPartialRerun, ActionFullRerun, ActionInvalidateCandidates:
		return true
	}
	return false
}

// CreateIssueRequest files an issue against a project, optionally linked to
// a run and/or candidate.
type CreateIssueRequest struct {
	ProjectID   string  `json:"project_id"`
	RunID       *string `json:"run_id,omitempty"`
	CandidateID *string `json:"candidate_id,omitempty"`
	IssueType   string  `json:"issue_type"`
	Severity    string  `json:"severity"`
	Description string  `json:"description"`
}

// IssueFilters narrows ListIssues.
type IssueFilters struct {
	ResolutionStatus string `json:"resolution_status,omitempty"`
	Severity         string `json:"severity,omitempty"`
	Limit            int    `json:"limit,omitempty"`
	Offset           int    `json:"offset,omitempty"`
}

// RemediationRecord is persisted on a resolved issue describing what the
// remediation engine did.
type RemediationRecord struct {
	Action         string   `json:"action"`
	ActionUpgraded bool     `json:"action_upgraded,omitempty"`
	OriginalAction string   `json:"original_remediation_action,omitempty"`
	RunID          string   `json:"run_id,omitempty"`
	InvalidatedIDs []string `json:"invalidated_ids,omitempty"`
	SkippedIDs     []string `json:"skipped_ids,omitempty"`
	PatchedSpec    bool     `json:"patched_spec,omitempty"`
	PatchedModel   bool     `json:"patched_model,omitempty"`
}
