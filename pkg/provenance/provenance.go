// Package provenance implements the append-only provenance logs embedded on
// pipeline entities. Logs are stored as JSON columns; this package owns the
// entry shape and the append/summarize semantics so every writer records
// history the same way.
package provenance

import (
	"encoding/json"
	"time"
)

// Actor identifies who caused a provenance event.
type Actor string

const (
	ActorUser   Actor = "user"
	ActorAgent  Actor = "agent"
	ActorSystem Actor = "system"
)

// Entry event types written by the pipeline. Callers may use their own types
// for domain-specific events; these cover the built-in writers.
const (
	TypeCandidateGenerated      = "candidate_generated"
	TypeScenarioSuiteGenerated  = "scenario_suite_generated"
	TypeRankingCompleted        = "ranking_completed"
	TypeFeedbackPatch           = "feedback_patch"
	TypeCandidateInvalidated    = "candidate_invalidated"
	TypeIssueResolved           = "issue_resolved"
	TypeSpecUpdated             = "spec_updated"
	TypeModelUpdated            = "model_updated"
	TypeSnapshotCaptured        = "snapshot_captured"
	TypeSnapshotRestored        = "snapshot_restored"
	TypeCandidateCreated        = "candidate_created"
	TypeRunSummaryEmitted       = "run_summary_emitted"
	TypeStatusChanged           = "status_changed"
	TypeEvaluationPhaseComplete = "evaluation_phase_completed"
)

// Entry is a single provenance event. Timestamps are UTC; Append fills a
// zero Timestamp and keeps timestamps non-decreasing within one log.
type Entry struct {
	Type         string         `json:"type"`
	Timestamp    time.Time      `json:"timestamp"`
	Actor        Actor          `json:"actor"`
	Source       string         `json:"source,omitempty"`
	Description  string         `json:"description,omitempty"`
	ReferenceIDs []string       `json:"reference_ids,omitempty"`
	Metadata     map[string]any `json:"metadata,omitempty"`
}

// Summary is the compact provenance view returned by read APIs.
type Summary struct {
	EventCount int    `json:"event_count"`
	LastEvent  *Entry `json:"last_event,omitempty"`
}

// ValidActor reports whether a is one of the known actors.
func ValidActor(a Actor) bool {
	switch a {
	case ActorUser, ActorAgent, ActorSystem:
		return true
	}
	return false
}

// Append returns a new log with e appended. The input slice is never
// mutated. A zero Timestamp is filled with the current UTC time, a zero
// Actor defaults to system, and the timestamp is clamped so it never moves
// backwards relative to the last entry.
func Append(log []Entry, e Entry) []Entry {
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now().UTC()
	} else {
		e.Timestamp = e.Timestamp.UTC()
	}
	if e.Actor == "" {
		e.Actor = ActorSystem
	}
	if n := len(log); n > 0 && e.Timestamp.Before(log[n-1].Timestamp) {
		e.Timestamp = log[n-1].Timestamp
	}

	out := make([]Entry, len(log), len(log)+1)
	copy(out, log)
	return append(out, e)
}

// Summarize reduces a log to its event count and most recent entry.
func Summarize(log []Entry) Summary {
	s := Summary{EventCount: len(log)}
	if len(log) > 0 {
		last := log[len(log)-1]
		s.LastEvent = &last
	}
	return s
}

// EntryMap converts an entry to a generic JSON map. Used when provenance is
// stored inside an untyped JSON tree (the world model keeps its provenance
// array inside model_data).
func EntryMap(e Entry) map[string]any {
	raw, err := json.Marshal(e)
	if err != nil {
		// Entry contains only JSON-safe types; this cannot happen with
		// well-formed metadata, but fall back to a minimal record anyway.
		return map[string]any{"type": e.Type, "actor": string(e.Actor)}
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return map[string]any{"type": e.Type, "actor": string(e.Actor)}
	}
	return m
}

// AppendToTree appends e to the "provenance" array of an untyped JSON tree
// and returns the tree. A missing or malformed array is replaced.
func AppendToTree(tree map[string]any, e Entry) map[string]any {
	if tree == nil {
		tree = map[string]any{}
	}
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now().UTC()
	}
	if e.Actor == "" {
		e.Actor = ActorSystem
	}

	var list []any
	if existing, ok := tree["provenance"].([]any); ok {
		list = make([]any, len(existing), len(existing)+1)
		copy(list, existing)
	}
	tree["provenance"] = append(list, EntryMap(e))
	return tree
}
