package models

import (
	"fmt"

	"github.com/assaylab/assay/pkg/provenance"
)

// Resolution levels for a problem spec.
const (
	ResolutionCoarse = "coarse"
	ResolutionMedium = "medium"
	ResolutionFine   = "fine"
)

// Search modes. full_search designs new candidates, eval_only scores the
// existing pool, seeded designs variations of surviving parents.
const (
	ModeFullSearch = "full_search"
	ModeEvalOnly   = "eval_only"
	ModeSeeded     = "seeded"
)

// HardConstraintWeight marks a constraint as inviolable. A candidate that
// fails a hard constraint is rejected regardless of its I score.
const HardConstraintWeight = 100

// Constraint is a weighted requirement on candidate mechanisms. Names are
// unique within a problem spec.
type Constraint struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Weight      float64 `json:"weight"`
}

// Hard reports whether the constraint is inviolable.
func (c Constraint) Hard() bool {
	return c.Weight >= HardConstraintWeight
}

// ValidResolution reports whether s is a known resolution level.
func ValidResolution(s string) bool {
	switch s {
	case ResolutionCoarse, ResolutionMedium, ResolutionFine:
		return true
	}
	return false
}

// ValidMode reports whether s is a known search mode.
func ValidMode(s string) bool {
	switch s {
	case ModeFullSearch, ModeEvalOnly, ModeSeeded:
		return true
	}
	return false
}

// ValidateConstraints checks weight bounds and name uniqueness.
func ValidateConstraints(constraints []Constraint) error {
	seen := make(map[string]struct{}, len(constraints))
	for i, c := range constraints {
		if c.Name == "" {
			return fmt.Errorf("constraint %d: name is required", i)
		}
		if _, dup := seen[c.Name]; dup {
			return fmt.Errorf("constraint %q: duplicate name", c.Name)
		}
		seen[c.Name] = struct{}{}
		if c.Weight < 0 || c.Weight > HardConstraintWeight {
			return fmt.Errorf("constraint %q: weight %v outside [0, %d]", c.Name, c.Weight, HardConstraintWeight)
		}
	}
	return nil
}

// UpsertProblemSpecRequest creates or replaces a project's problem spec.
// Provenance, when set, is appended to the spec's log (a default
// spec_updated entry is written otherwise).
type UpsertProblemSpecRequest struct {
	ProjectID   string            `json:"project_id"`
	Constraints []Constraint      `json:"constraints"`
	Goals       []string          `json:"goals"`
	Resolution  string            `json:"resolution"`
	Mode        string            `json:"mode"`
	Provenance  *provenance.Entry `json:"-"`
}

// UpsertWorldModelRequest creates or replaces a project's world model.
// ModelData is the full JSON tree (actors, mechanisms, resources,
// constraints, assumptions, simplifications, provenance).
type UpsertWorldModelRequest struct {
	ProjectID  string            `json:"project_id"`
	ModelData  map[string]any    `json:"model_data"`
	Provenance *provenance.Entry `json:"-"`
}

// CreateProjectRequest creates a new project.
type CreateProjectRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Ephemeral   bool   `json:"ephemeral,omitempty"`
}
