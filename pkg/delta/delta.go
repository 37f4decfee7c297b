// Package delta computes structured diffs between problem spec and world
// model versions. Deltas are attached to provenance entries and returned to
// refinement callers so users can see what an agent actually changed.
package delta

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/assaylab/assay/pkg/agent"
	"github.com/assaylab/assay/pkg/models"
)

// SpecState is the comparable slice of a problem spec.
type SpecState struct {
	Constraints []models.Constraint `json:"constraints,omitempty"`
	Goals       []string            `json:"goals,omitempty"`
	Resolution  string              `json:"resolution,omitempty"`
	Mode        string              `json:"mode,omitempty"`
}

// ConstraintChange is one modified constraint with both versions.
type ConstraintChange struct {
	Name string             `json:"name"`
	Old  models.Constraint  `json:"old"`
	New  models.Constraint  `json:"new"`
}

// FieldChange is a scalar field change (resolution, mode).
type FieldChange struct {
	Field string `json:"field"`
	Old   string `json:"old"`
	New   string `json:"new"`
}

// SpecDelta is the structured diff between two problem spec versions.
type SpecDelta struct {
	ConstraintsAdded    []models.Constraint `json:"constraints_added,omitempty"`
	ConstraintsRemoved  []models.Constraint `json:"constraints_removed,omitempty"`
	ConstraintsModified []ConstraintChange  `json:"constraints_modified,omitempty"`
	GoalsAdded          []string            `json:"goals_added,omitempty"`
	GoalsRemoved        []string            `json:"goals_removed,omitempty"`
	FieldChanges        []FieldChange       `json:"field_changes,omitempty"`
}

// Empty reports whether the delta carries no changes.
func (d *SpecDelta) Empty() bool {
	return len(d.ConstraintsAdded) == 0 &&
		len(d.ConstraintsRemoved) == 0 &&
		len(d.ConstraintsModified) == 0 &&
		len(d.GoalsAdded) == 0 &&
		len(d.GoalsRemoved) == 0 &&
		len(d.FieldChanges) == 0
}

// Summary renders a one-line human description for provenance entries.
func (d *SpecDelta) Summary() string {
	if d.Empty() {
		return "no spec changes"
	}
	var parts []string
	if n := len(d.ConstraintsAdded); n > 0 {
		parts = append(parts, fmt.Sprintf("+%d constraints", n))
	}
	if n := len(d.ConstraintsRemoved); n > 0 {
		parts = append(parts, fmt.Sprintf("-%d constraints", n))
	}
	if n := len(d.ConstraintsModified); n > 0 {
		parts = append(parts, fmt.Sprintf("%d constraints modified", n))
	}
	if n := len(d.GoalsAdded); n > 0 {
		parts = append(parts, fmt.Sprintf("+%d goals", n))
	}
	if n := len(d.GoalsRemoved); n > 0 {
		parts = append(parts, fmt.Sprintf("-%d goals", n))
	}
	for _, fc := range d.FieldChanges {
		parts = append(parts, fmt.Sprintf("%s %s→%s", fc.Field, fc.Old, fc.New))
	}
	return strings.Join(parts, ", ")
}

// ComputeSpecDelta diffs two spec versions. Constraints are keyed by name;
// goals are compared as sets.
func ComputeSpecDelta(oldSpec, newSpec SpecState) *SpecDelta {
	d := &SpecDelta{}

	oldByName := make(map[string]models.Constraint, len(oldSpec.Constraints))
	for _, c := range oldSpec.Constraints {
		oldByName[c.Name] = c
	}
	newByName := make(map[string]models.Constraint, len(newSpec.Constraints))
	for _, c := range newSpec.Constraints {
		newByName[c.Name] = c
	}

	for _, c := range newSpec.Constraints {
		prev, ok := oldByName[c.Name]
		if !ok {
			d.ConstraintsAdded = append(d.ConstraintsAdded, c)
			continue
		}
		if prev.Weight != c.Weight || prev.Description != c.Description {
			d.ConstraintsModified = append(d.ConstraintsModified, ConstraintChange{
				Name: c.Name,
				Old:  prev,
				New:  c,
			})
		}
	}
	for _, c := range oldSpec.Constraints {
		if _, ok := newByName[c.Name]; !ok {
			d.ConstraintsRemoved = append(d.ConstraintsRemoved, c)
		}
	}

	oldGoals := toSet(oldSpec.Goals)
	newGoals := toSet(newSpec.Goals)
	for _, g := range newSpec.Goals {
		if _, ok := oldGoals[g]; !ok {
			d.GoalsAdded = append(d.GoalsAdded, g)
		}
	}
	for _, g := range oldSpec.Goals {
		if _, ok := newGoals[g]; !ok {
			d.GoalsRemoved = append(d.GoalsRemoved, g)
		}
	}

	if oldSpec.Resolution != newSpec.Resolution {
		d.FieldChanges = append(d.FieldChanges, FieldChange{Field: "resolution", Old: oldSpec.Resolution, New: newSpec.Resolution})
	}
	if oldSpec.Mode != newSpec.Mode {
		d.FieldChanges = append(d.FieldChanges, FieldChange{Field: "mode", Old: oldSpec.Mode, New: newSpec.Mode})
	}
	return d
}

// SectionChange is one top-level world model section compared by serialized
// size, the fallback when no structured change list is available.
type SectionChange struct {
	Section   string `json:"section"`
	Direction string `json:"direction"` // grew | shrank | unchanged
	OldBytes  int    `json:"old_bytes"`
	NewBytes  int    `json:"new_bytes"`
}

// ModelDelta is the diff between two world model versions. Changes is the
// world_modeller's structured list when it supplied one; otherwise Sections
// holds the size heuristic and Heuristic is true.
type ModelDelta struct {
	Changes   []agent.ModelChange `json:"changes,omitempty"`
	Sections  []SectionChange     `json:"sections,omitempty"`
	Heuristic bool                `json:"heuristic,omitempty"`
}

// Empty reports whether the delta carries no changes.
func (d *ModelDelta) Empty() bool {
	if len(d.Changes) > 0 {
		return false
	}
	for _, s := range d.Sections {
		if s.Direction != "unchanged" {
			return false
		}
	}
	return true
}

// Summary renders a one-line human description for provenance entries.
func (d *ModelDelta) Summary() string {
	if len(d.Changes) > 0 {
		counts := map[string]int{}
		for _, c := range d.Changes {
			counts[c.Type]++
		}
		var parts []string
		for _, typ := range []string{"added", "modified", "removed"} {
			if counts[typ] > 0 {
				parts = append(parts, fmt.Sprintf("%d %s", counts[typ], typ))
			}
		}
		return "model changes: " + strings.Join(parts, ", ")
	}
	var parts []string
	for _, s := range d.Sections {
		if s.Direction == "unchanged" {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s %s (%d→%d bytes)", s.Section, s.Direction, s.OldBytes, s.NewBytes))
	}
	if len(parts) == 0 {
		return "no model changes"
	}
	return "model sections: " + strings.Join(parts, ", ")
}

// ComputeModelDelta diffs two world model trees. The world_modeller's
// structured changes list wins when supplied; otherwise each top-level
// section is compared by serialized size.
func ComputeModelDelta(oldModel, newModel map[string]any, changes []agent.ModelChange) *ModelDelta {
	if len(changes) > 0 {
		return &ModelDelta{Changes: changes}
	}

	sections := make(map[string]struct{}, len(oldModel)+len(newModel))
	for k := range oldModel {
		sections[k] = struct{}{}
	}
	for k := range newModel {
		sections[k] = struct{}{}
	}
	names := make([]string, 0, len(sections))
	for k := range sections {
		names = append(names, k)
	}
	sort.Strings(names)

	d := &ModelDelta{Heuristic: true}
	for _, name := range names {
		oldBytes := serializedLen(oldModel[name])
		newBytes := serializedLen(newModel[name])
		direction := "unchanged"
		switch {
		case newBytes > oldBytes:
			direction = "grew"
		case newBytes < oldBytes:
			direction = "shrank"
		}
		d.Sections = append(d.Sections, SectionChange{
			Section:   name,
			Direction: direction,
			OldBytes:  oldBytes,
			NewBytes:  newBytes,
		})
	}
	return d
}

func serializedLen(v any) int {
	if v == nil {
		return 0
	}
	data, err := json.Marshal(v)
	if err != nil {
		return 0
	}
	return len(data)
}

func toSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, it := range items {
		set[it] = struct{}{}
	}
	return set
}
