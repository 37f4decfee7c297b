// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/assaylab/assay/ent/candidate"
	"github.com/assaylab/assay/ent/chatsession"
	"github.com/assaylab/assay/ent/evaluation"
	"github.com/assaylab/assay/ent/issue"
	"github.com/assaylab/assay/ent/message"
	"github.com/assaylab/assay/ent/predicate"
	"github.com/assaylab/assay/ent/problemspec"
	"github.com/assaylab/assay/ent/project"
	"github.com/assaylab/assay/ent/run"
	"github.com/assaylab/assay/ent/scenariosuite"
	"github.com/assaylab/assay/ent/snapshot"
	"github.com/assaylab/assay/ent/worldmodel"
	"github.com/assaylab/assay/pkg/models"
	"github.com/assaylab/assay/pkg/provenance"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeCandidate     = "Candidate"
	TypeChatSession   = "ChatSession"
	TypeEvaluation    = "Evaluation"
	TypeIssue         = "Issue"
	TypeMessage       = "Message"
	TypeProblemSpec   = "ProblemSpec"
	TypeProject       = "Project"
	TypeRun           = "Run"
	TypeScenarioSuite = "ScenarioSuite"
	TypeSnapshot      = "Snapshot"
	TypeWorldModel    = "WorldModel"
)

// CandidateMutation represents an operation that mutates the Candidate nodes in the graph.
type CandidateMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	run_id                *string
	origin                *candidate.Origin
	status                *candidate.Status
	mechanism_description *string
	predicted_effects     **models.PredictedEffects
	parent_ids            *[]string
	appendparent_ids      []string
	scores                **models.CandidateScores
	provenance_log        *[]provenance.Entry
	appendprovenance_log  []provenance.Entry
	created_at            *time.Time
	updated_at            *time.Time
	clearedFields         map[string]struct{}
	project               *string
	clearedproject        bool
	done                  bool
	oldValue              func(context.Context) (*Candidate, error)
	predicates            []predicate.Candidate
}

var _ ent.Mutation = (*CandidateMutation)(nil)

// candidateOption allows management of the mutation configuration using functional options.
type candidateOption func(*CandidateMutation)

// newCandidateMutation creates new mutation for the Candidate entity.
func newCandidateMutation(c config, op Op, opts ...candidateOption) *CandidateMutation {
	m := &CandidateMutation{
		config:        c,
		op:            op,
		typ:           TypeCandidate,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCandidateID sets the ID field of the mutation.
func withCandidateID(id string) candidateOption {
	return func(m *CandidateMutation) {
		var (
			err   error
			once  sync.Once
			value *Candidate
		)
		m.oldValue = func(ctx context.Context) (*Candidate, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Candidate.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCandidate sets the old Candidate of the mutation.
func withCandidate(node *Candidate) candidateOption {
	return func(m *CandidateMutation) {
		m.oldValue = func(context.Context) (*Candidate, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CandidateMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CandidateMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Candidate entities.
func (m *CandidateMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CandidateMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CandidateMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Candidate.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProjectID sets the "project_id" field.
func (m *CandidateMutation) SetProjectID(s string) {
	m.project = &s
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *CandidateMutation) ProjectID() (r string, exists bool) {
	v := m.project
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the Candidate entity.
// If the Candidate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CandidateMutation) OldProjectID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *CandidateMutation) ResetProjectID() {
	m.project = nil
}

// SetRunID sets the "run_id" field.
func (m *CandidateMutation) SetRunID(s string) {
	m.run_id = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *CandidateMutation) RunID() (r string, exists bool) {
	v := m.run_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the Candidate entity.
// If the Candidate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CandidateMutation) OldRunID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ClearRunID clears the value of the "run_id" field.
func (m *CandidateMutation) ClearRunID() {
	m.run_id = nil
	m.clearedFields[candidate.FieldRunID] = struct{}{}
}

// RunIDCleared returns if the "run_id" field was cleared in this mutation.
func (m *CandidateMutation) RunIDCleared() bool {
	_, ok := m.clearedFields[candidate.FieldRunID]
	return ok
}

// ResetRunID resets all changes to the "run_id" field.
func (m *CandidateMutation) ResetRunID() {
	m.run_id = nil
	delete(m.clearedFields, candidate.FieldRunID)
}

// SetOrigin sets the "origin" field.
func (m *CandidateMutation) SetOrigin(c candidate.Origin) {
	m.origin = &c
}

// Origin returns the value of the "origin" field in the mutation.
func (m *CandidateMutation) Origin() (r candidate.Origin, exists bool) {
	v := m.origin
	if v == nil {
		return
	}
	return *v, true
}

// OldOrigin returns the old "origin" field's value of the Candidate entity.
// If the Candidate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CandidateMutation) OldOrigin(ctx context.Context) (v candidate.Origin, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrigin is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrigin requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrigin: %w", err)
	}
	return oldValue.Origin, nil
}

// ResetOrigin resets all changes to the "origin" field.
func (m *CandidateMutation) ResetOrigin() {
	m.origin = nil
}

// SetStatus sets the "status" field.
func (m *CandidateMutation) SetStatus(c candidate.Status) {
	m.status = &c
}

// Status returns the value of the "status" field in the mutation.
func (m *CandidateMutation) Status() (r candidate.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Candidate entity.
// If the Candidate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CandidateMutation) OldStatus(ctx context.Context) (v candidate.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *CandidateMutation) ResetStatus() {
	m.status = nil
}

// SetMechanismDescription sets the "mechanism_description" field.
func (m *CandidateMutation) SetMechanismDescription(s string) {
	m.mechanism_description = &s
}

// MechanismDescription returns the value of the "mechanism_description" field in the mutation.
func (m *CandidateMutation) MechanismDescription() (r string, exists bool) {
	v := m.mechanism_description
	if v == nil {
		return
	}
	return *v, true
}

// OldMechanismDescription returns the old "mechanism_description" field's value of the Candidate entity.
// If the Candidate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CandidateMutation) OldMechanismDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMechanismDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMechanismDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMechanismDescription: %w", err)
	}
	return oldValue.MechanismDescription, nil
}

// ResetMechanismDescription resets all changes to the "mechanism_description" field.
func (m *CandidateMutation) ResetMechanismDescription() {
	m.mechanism_description = nil
}

// SetPredictedEffects sets the "predicted_effects" field.
func (m *CandidateMutation) SetPredictedEffects(me *models.PredictedEffects) {
	m.predicted_effects = &me
}

// PredictedEffects returns the value of the "predicted_effects" field in the mutation.
func (m *CandidateMutation) PredictedEffects() (r *models.PredictedEffects, exists bool) {
	v := m.predicted_effects
	if v == nil {
		return
	}
	return *v, true
}

// OldPredictedEffects returns the old "predicted_effects" field's value of the Candidate entity.
// If the Candidate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CandidateMutation) OldPredictedEffects(ctx context.Context) (v *models.PredictedEffects, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPredictedEffects is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPredictedEffects requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPredictedEffects: %w", err)
	}
	return oldValue.PredictedEffects, nil
}

// ClearPredictedEffects clears the value of the "predicted_effects" field.
func (m *CandidateMutation) ClearPredictedEffects() {
	m.predicted_effects = nil
	m.clearedFields[candidate.FieldPredictedEffects] = struct{}{}
}

// PredictedEffectsCleared returns if the "predicted_effects" field was cleared in this mutation.
func (m *CandidateMutation) PredictedEffectsCleared() bool {
	_, ok := m.clearedFields[candidate.FieldPredictedEffects]
	return ok
}

// ResetPredictedEffects resets all changes to the "predicted_effects" field.
func (m *CandidateMutation) ResetPredictedEffects() {
	m.predicted_effects = nil
	delete(m.clearedFields, candidate.FieldPredictedEffects)
}

// SetParentIds sets the "parent_ids" field.
func (m *CandidateMutation) SetParentIds(s []string) {
	m.parent_ids = &s
	m.appendparent_ids = nil
}

// ParentIds returns the value of the "parent_ids" field in the mutation.
func (m *CandidateMutation) ParentIds() (r []string, exists bool) {
	v := m.parent_ids
	if v == nil {
		return
	}
	return *v, true
}

// OldParentIds returns the old "parent_ids" field's value of the Candidate entity.
// If the Candidate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CandidateMutation) OldParentIds(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParentIds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParentIds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParentIds: %w", err)
	}
	return oldValue.ParentIds, nil
}

// AppendParentIds adds s to the "parent_ids" field.
func (m *CandidateMutation) AppendParentIds(s []string) {
	m.appendparent_ids = append(m.appendparent_ids, s...)
}

// AppendedParentIds returns the list of values that were appended to the "parent_ids" field in this mutation.
func (m *CandidateMutation) AppendedParentIds() ([]string, bool) {
	if len(m.appendparent_ids) == 0 {
		return nil, false
	}
	return m.appendparent_ids, true
}

// ClearParentIds clears the value of the "parent_ids" field.
func (m *CandidateMutation) ClearParentIds() {
	m.parent_ids = nil
	m.appendparent_ids = nil
	m.clearedFields[candidate.FieldParentIds] = struct{}{}
}

// ParentIdsCleared returns if the "parent_ids" field was cleared in this mutation.
func (m *CandidateMutation) ParentIdsCleared() bool {
	_, ok := m.clearedFields[candidate.FieldParentIds]
	return ok
}

// ResetParentIds resets all changes to the "parent_ids" field.
func (m *CandidateMutation) ResetParentIds() {
	m.parent_ids = nil
	m.appendparent_ids = nil
	delete(m.clearedFields, candidate.FieldParentIds)
}

// SetScores sets the "scores" field.
func (m *CandidateMutation) SetScores(ms *models.CandidateScores) {
	m.scores = &ms
}

// Scores returns the value of the "scores" field in the mutation.
func (m *CandidateMutation) Scores() (r *models.CandidateScores, exists bool) {
	v := m.scores
	if v == nil {
		return
	}
	return *v, true
}

// OldScores returns the old "scores" field's value of the Candidate entity.
// If the Candidate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CandidateMutation) OldScores(ctx context.Context) (v *models.CandidateScores, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScores is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScores requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScores: %w", err)
	}
	return oldValue.Scores, nil
}

// ClearScores clears the value of the "scores" field.
func (m *CandidateMutation) ClearScores() {
	m.scores = nil
	m.clearedFields[candidate.FieldScores] = struct{}{}
}

// ScoresCleared returns if the "scores" field was cleared in this mutation.
func (m *CandidateMutation) ScoresCleared() bool {
	_, ok := m.clearedFields[candidate.FieldScores]
	return ok
}

// ResetScores resets all changes to the "scores" field.
func (m *CandidateMutation) ResetScores() {
	m.scores = nil
	delete(m.clearedFields, candidate.FieldScores)
}

// SetProvenanceLog sets the "provenance_log" field.
func (m *CandidateMutation) SetProvenanceLog(pr []provenance.Entry) {
	m.provenance_log = &pr
	m.appendprovenance_log = nil
}

// ProvenanceLog returns the value of the "provenance_log" field in the mutation.
func (m *CandidateMutation) ProvenanceLog() (r []provenance.Entry, exists bool) {
	v := m.provenance_log
	if v == nil {
		return
	}
	return *v, true
}

// OldProvenanceLog returns the old "provenance_log" field's value of the Candidate entity.
// If the Candidate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CandidateMutation) OldProvenanceLog(ctx context.Context) (v []provenance.Entry, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvenanceLog is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvenanceLog requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvenanceLog: %w", err)
	}
	return oldValue.ProvenanceLog, nil
}

// AppendProvenanceLog adds pr to the "provenance_log" field.
func (m *CandidateMutation) AppendProvenanceLog(pr []provenance.Entry) {
	m.appendprovenance_log = append(m.appendprovenance_log, pr...)
}

// AppendedProvenanceLog returns the list of values that were appended to the "provenance_log" field in this mutation.
func (m *CandidateMutation) AppendedProvenanceLog() ([]provenance.Entry, bool) {
	if len(m.appendprovenance_log) == 0 {
		return nil, false
	}
	return m.appendprovenance_log, true
}

// ClearProvenanceLog clears the value of the "provenance_log" field.
func (m *CandidateMutation) ClearProvenanceLog() {
	m.provenance_log = nil
	m.appendprovenance_log = nil
	m.clearedFields[candidate.FieldProvenanceLog] = struct{}{}
}

// ProvenanceLogCleared returns if the "provenance_log" field was cleared in this mutation.
func (m *CandidateMutation) ProvenanceLogCleared() bool {
	_, ok := m.clearedFields[candidate.FieldProvenanceLog]
	return ok
}

// ResetProvenanceLog resets all changes to the "provenance_log" field.
func (m *CandidateMutation) ResetProvenanceLog() {
	m.provenance_log = nil
	m.appendprovenance_log = nil
	delete(m.clearedFields, candidate.FieldProvenanceLog)
}

// SetCreatedAt sets the "created_at" field.
func (m *CandidateMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CandidateMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Candidate entity.
// If the Candidate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CandidateMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CandidateMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CandidateMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CandidateMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Candidate entity.
// If the Candidate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CandidateMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *CandidateMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearProject clears the "project" edge to the Project entity.
func (m *CandidateMutation) ClearProject() {
	m.clearedproject = true
	m.clearedFields[candidate.FieldProjectID] = struct{}{}
}

// ProjectCleared reports if the "project" edge to the Project entity was cleared.
func (m *CandidateMutation) ProjectCleared() bool {
	return m.clearedproject
}

// ProjectIDs returns the "project" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProjectID instead. It exists only for internal usage by the builders.
func (m *CandidateMutation) ProjectIDs() (ids []string) {
	if id := m.project; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProject resets all changes to the "project" edge.
func (m *CandidateMutation) ResetProject() {
	m.project = nil
	m.clearedproject = false
}

// Where appends a list predicates to the CandidateMutation builder.
func (m *CandidateMutation) Where(ps ...predicate.Candidate) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CandidateMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CandidateMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Candidate, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CandidateMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CandidateMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Candidate).
func (m *CandidateMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CandidateMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.project != nil {
		fields = append(fields, candidate.FieldProjectID)
	}
	if m.run_id != nil {
		fields = append(fields, candidate.FieldRunID)
	}
	if m.origin != nil {
		fields = append(fields, candidate.FieldOrigin)
	}
	if m.status != nil {
		fields = append(fields, candidate.FieldStatus)
	}
	if m.mechanism_description != nil {
		fields = append(fields, candidate.FieldMechanismDescription)
	}
	if m.predicted_effects != nil {
		fields = append(fields, candidate.FieldPredictedEffects)
	}
	if m.parent_ids != nil {
		fields = append(fields, candidate.FieldParentIds)
	}
	if m.scores != nil {
		fields = append(fields, candidate.FieldScores)
	}
	if m.provenance_log != nil {
		fields = append(fields, candidate.FieldProvenanceLog)
	}
	if m.created_at != nil {
		fields = append(fields, candidate.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, candidate.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CandidateMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case candidate.FieldProjectID:
		return m.ProjectID()
	case candidate.FieldRunID:
		return m.RunID()
	case candidate.FieldOrigin:
		return m.Origin()
	case candidate.FieldStatus:
		return m.Status()
	case candidate.FieldMechanismDescription:
		return m.MechanismDescription()
	case candidate.FieldPredictedEffects:
		return m.PredictedEffects()
	case candidate.FieldParentIds:
		return m.ParentIds()
	case candidate.FieldScores:
		return m.Scores()
	case candidate.FieldProvenanceLog:
		return m.ProvenanceLog()
	case candidate.FieldCreatedAt:
		return m.CreatedAt()
	case candidate.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CandidateMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case candidate.FieldProjectID:
		return m.OldProjectID(ctx)
	case candidate.FieldRunID:
		return m.OldRunID(ctx)
	case candidate.FieldOrigin:
		return m.OldOrigin(ctx)
	case candidate.FieldStatus:
		return m.OldStatus(ctx)
	case candidate.FieldMechanismDescription:
		return m.OldMechanismDescription(ctx)
	case candidate.FieldPredictedEffects:
		return m.OldPredictedEffects(ctx)
	case candidate.FieldParentIds:
		return m.OldParentIds(ctx)
	case candidate.FieldScores:
		return m.OldScores(ctx)
	case candidate.FieldProvenanceLog:
		return m.OldProvenanceLog(ctx)
	case candidate.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case candidate.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Candidate field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CandidateMutation) SetField(name string, value ent.Value) error {
	switch name {
	case candidate.FieldProjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case candidate.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case candidate.FieldOrigin:
		v, ok := value.(candidate.Origin)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrigin(v)
		return nil
	case candidate.FieldStatus:
		v, ok := value.(candidate.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case candidate.FieldMechanismDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMechanismDescription(v)
		return nil
	case candidate.FieldPredictedEffects:
		v, ok := value.(*models.PredictedEffects)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPredictedEffects(v)
		return nil
	case candidate.FieldParentIds:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParentIds(v)
		return nil
	case candidate.FieldScores:
		v, ok := value.(*models.CandidateScores)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScores(v)
		return nil
	case candidate.FieldProvenanceLog:
		v, ok := value.([]provenance.Entry)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvenanceLog(v)
		return nil
	case candidate.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case candidate.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Candidate field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CandidateMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CandidateMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CandidateMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Candidate numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CandidateMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(candidate.FieldRunID) {
		fields = append(fields, candidate.FieldRunID)
	}
	if m.FieldCleared(candidate.FieldPredictedEffects) {
		fields = append(fields, candidate.FieldPredictedEffects)
	}
	if m.FieldCleared(candidate.FieldParentIds) {
		fields = append(fields, candidate.FieldParentIds)
	}
	if m.FieldCleared(candidate.FieldScores) {
		fields = append(fields, candidate.FieldScores)
	}
	if m.FieldCleared(candidate.FieldProvenanceLog) {
		fields = append(fields, candidate.FieldProvenanceLog)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CandidateMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CandidateMutation) ClearField(name string) error {
	switch name {
	case candidate.FieldRunID:
		m.ClearRunID()
		return nil
	case candidate.FieldPredictedEffects:
		m.ClearPredictedEffects()
		return nil
	case candidate.FieldParentIds:
		m.ClearParentIds()
		return nil
	case candidate.FieldScores:
		m.ClearScores()
		return nil
	case candidate.FieldProvenanceLog:
		m.ClearProvenanceLog()
		return nil
	}
	return fmt.Errorf("unknown Candidate nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CandidateMutation) ResetField(name string) error {
	switch name {
	case candidate.FieldProjectID:
		m.ResetProjectID()
		return nil
	case candidate.FieldRunID:
		m.ResetRunID()
		return nil
	case candidate.FieldOrigin:
		m.ResetOrigin()
		return nil
	case candidate.FieldStatus:
		m.ResetStatus()
		return nil
	case candidate.FieldMechanismDescription:
		m.ResetMechanismDescription()
		return nil
	case candidate.FieldPredictedEffects:
		m.ResetPredictedEffects()
		return nil
	case candidate.FieldParentIds:
		m.ResetParentIds()
		return nil
	case candidate.FieldScores:
		m.ResetScores()
		return nil
	case candidate.FieldProvenanceLog:
		m.ResetProvenanceLog()
		return nil
	case candidate.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case candidate.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Candidate field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CandidateMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.project != nil {
		edges = append(edges, candidate.EdgeProject)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CandidateMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case candidate.EdgeProject:
		if id := m.project; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CandidateMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CandidateMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CandidateMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedproject {
		edges = append(edges, candidate.EdgeProject)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CandidateMutation) EdgeCleared(name string) bool {
	switch name {
	case candidate.EdgeProject:
		return m.clearedproject
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CandidateMutation) ClearEdge(name string) error {
	switch name {
	case candidate.EdgeProject:
		m.ClearProject()
		return nil
	}
	return fmt.Errorf("unknown Candidate unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CandidateMutation) ResetEdge(name string) error {
	switch name {
	case candidate.EdgeProject:
		m.ResetProject()
		return nil
	}
	return fmt.Errorf("unknown Candidate edge %s", name)
}

// ChatSessionMutation represents an operation that mutates the ChatSession nodes in the graph.
type ChatSessionMutation struct {
	config
	op              Op
	typ             string
	id              *string
	title           *string
	mode            *chatsession.Mode
	created_at      *time.Time
	clearedFields   map[string]struct{}
	project         *string
	clearedproject  bool
	messages        map[string]struct{}
	removedmessages map[string]struct{}
	clearedmessages bool
	done            bool
	oldValue        func(context.Context) (*ChatSession, error)
	predicates      []predicate.ChatSession
}

var _ ent.Mutation = (*ChatSessionMutation)(nil)

// chatsessionOption allows management of the mutation configuration using functional options.
type chatsessionOption func(*ChatSessionMutation)

// newChatSessionMutation creates new mutation for the ChatSession entity.
func newChatSessionMutation(c config, op Op, opts ...chatsessionOption) *ChatSessionMutation {
	m := &ChatSessionMutation{
		config:        c,
		op:            op,
		typ:           TypeChatSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withChatSessionID sets the ID field of the mutation.
func withChatSessionID(id string) chatsessionOption {
	return func(m *ChatSessionMutation) {
		var (
			err   error
			once  sync.Once
			value *ChatSession
		)
		m.oldValue = func(ctx context.Context) (*ChatSession, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ChatSession.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withChatSession sets the old ChatSession of the mutation.
func withChatSession(node *ChatSession) chatsessionOption {
	return func(m *ChatSessionMutation) {
		m.oldValue = func(context.Context) (*ChatSession, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ChatSessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ChatSessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ChatSession entities.
func (m *ChatSessionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ChatSessionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ChatSessionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ChatSession.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProjectID sets the "project_id" field.
func (m *ChatSessionMutation) SetProjectID(s string) {
	m.project = &s
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *ChatSessionMutation) ProjectID() (r string, exists bool) {
	v := m.project
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the ChatSession entity.
// If the ChatSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatSessionMutation) OldProjectID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *ChatSessionMutation) ResetProjectID() {
	m.project = nil
}

// SetTitle sets the "title" field.
func (m *ChatSessionMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *ChatSessionMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the ChatSession entity.
// If the ChatSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatSessionMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ClearTitle clears the value of the "title" field.
func (m *ChatSessionMutation) ClearTitle() {
	m.title = nil
	m.clearedFields[chatsession.FieldTitle] = struct{}{}
}

// TitleCleared returns if the "title" field was cleared in this mutation.
func (m *ChatSessionMutation) TitleCleared() bool {
	_, ok := m.clearedFields[chatsession.FieldTitle]
	return ok
}

// ResetTitle resets all changes to the "title" field.
func (m *ChatSessionMutation) ResetTitle() {
	m.title = nil
	delete(m.clearedFields, chatsession.FieldTitle)
}

// SetMode sets the "mode" field.
func (m *ChatSessionMutation) SetMode(c chatsession.Mode) {
	m.mode = &c
}

// Mode returns the value of the "mode" field in the mutation.
func (m *ChatSessionMutation) Mode() (r chatsession.Mode, exists bool) {
	v := m.mode
	if v == nil {
		return
	}
	return *v, true
}

// OldMode returns the old "mode" field's value of the ChatSession entity.
// If the ChatSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatSessionMutation) OldMode(ctx context.Context) (v chatsession.Mode, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMode: %w", err)
	}
	return oldValue.Mode, nil
}

// ResetMode resets all changes to the "mode" field.
func (m *ChatSessionMutation) ResetMode() {
	m.mode = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ChatSessionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ChatSessionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ChatSession entity.
// If the ChatSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatSessionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ChatSessionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearProject clears the "project" edge to the Project entity.
func (m *ChatSessionMutation) ClearProject() {
	m.clearedproject = true
	m.clearedFields[chatsession.FieldProjectID] = struct{}{}
}

// ProjectCleared reports if the "project" edge to the Project entity was cleared.
func (m *ChatSessionMutation) ProjectCleared() bool {
	return m.clearedproject
}

// ProjectIDs returns the "project" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProjectID instead. It exists only for internal usage by the builders.
func (m *ChatSessionMutation) ProjectIDs() (ids []string) {
	if id := m.project; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProject resets all changes to the "project" edge.
func (m *ChatSessionMutation) ResetProject() {
	m.project = nil
	m.clearedproject = false
}

// AddMessageIDs adds the "messages" edge to the Message entity by ids.
func (m *ChatSessionMutation) AddMessageIDs(ids ...string) {
	if m.messages == nil {
		m.messages = make(map[string]struct{})
	}
	for i := range ids {
		m.messages[ids[i]] = struct{}{}
	}
}

// ClearMessages clears the "messages" edge to the Message entity.
func (m *ChatSessionMutation) ClearMessages() {
	m.clearedmessages = true
}

// MessagesCleared reports if the "messages" edge to the Message entity was cleared.
func (m *ChatSessionMutation) MessagesCleared() bool {
	return m.clearedmessages
}

// RemoveMessageIDs removes the "messages" edge to the Message entity by IDs.
func (m *ChatSessionMutation) RemoveMessageIDs(ids ...string) {
	if m.removedmessages == nil {
		m.removedmessages = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.messages, ids[i])
		m.removedmessages[ids[i]] = struct{}{}
	}
}

// RemovedMessages returns the removed IDs of the "messages" edge to the Message entity.
func (m *ChatSessionMutation) RemovedMessagesIDs() (ids []string) {
	for id := range m.removedmessages {
		ids = append(ids, id)
	}
	return
}

// MessagesIDs returns the "messages" edge IDs in the mutation.
func (m *ChatSessionMutation) MessagesIDs() (ids []string) {
	for id := range m.messages {
		ids = append(ids, id)
	}
	return
}

// ResetMessages resets all changes to the "messages" edge.
func (m *ChatSessionMutation) ResetMessages() {
	m.messages = nil
	m.clearedmessages = false
	m.removedmessages = nil
}

// Where appends a list predicates to the ChatSessionMutation builder.
func (m *ChatSessionMutation) Where(ps ...predicate.ChatSession) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ChatSessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ChatSessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ChatSession, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ChatSessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ChatSessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ChatSession).
func (m *ChatSessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ChatSessionMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.project != nil {
		fields = append(fields, chatsession.FieldProjectID)
	}
	if m.title != nil {
		fields = append(fields, chatsession.FieldTitle)
	}
	if m.mode != nil {
		fields = append(fields, chatsession.FieldMode)
	}
	if m.created_at != nil {
		fields = append(fields, chatsession.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ChatSessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case chatsession.FieldProjectID:
		return m.ProjectID()
	case chatsession.FieldTitle:
		return m.Title()
	case chatsession.FieldMode:
		return m.Mode()
	case chatsession.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ChatSessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case chatsession.FieldProjectID:
		return m.OldProjectID(ctx)
	case chatsession.FieldTitle:
		return m.OldTitle(ctx)
	case chatsession.FieldMode:
		return m.OldMode(ctx)
	case chatsession.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ChatSession field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChatSessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case chatsession.FieldProjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case chatsession.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case chatsession.FieldMode:
		v, ok := value.(chatsession.Mode)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMode(v)
		return nil
	case chatsession.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ChatSession field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ChatSessionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ChatSessionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChatSessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ChatSession numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ChatSessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(chatsession.FieldTitle) {
		fields = append(fields, chatsession.FieldTitle)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ChatSessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ChatSessionMutation) ClearField(name string) error {
	switch name {
	case chatsession.FieldTitle:
		m.ClearTitle()
		return nil
	}
	return fmt.Errorf("unknown ChatSession nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ChatSessionMutation) ResetField(name string) error {
	switch name {
	case chatsession.FieldProjectID:
		m.ResetProjectID()
		return nil
	case chatsession.FieldTitle:
		m.ResetTitle()
		return nil
	case chatsession.FieldMode:
		m.ResetMode()
		return nil
	case chatsession.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ChatSession field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ChatSessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.project != nil {
		edges = append(edges, chatsession.EdgeProject)
	}
	if m.messages != nil {
		edges = append(edges, chatsession.EdgeMessages)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ChatSessionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case chatsession.EdgeProject:
		if id := m.project; id != nil {
			return []ent.Value{*id}
		}
	case chatsession.EdgeMessages:
		ids := make([]ent.Value, 0, len(m.messages))
		for id := range m.messages {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ChatSessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedmessages != nil {
		edges = append(edges, chatsession.EdgeMessages)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ChatSessionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case chatsession.EdgeMessages:
		ids := make([]ent.Value, 0, len(m.removedmessages))
		for id := range m.removedmessages {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ChatSessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedproject {
		edges = append(edges, chatsession.EdgeProject)
	}
	if m.clearedmessages {
		edges = append(edges, chatsession.EdgeMessages)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ChatSessionMutation) EdgeCleared(name string) bool {
	switch name {
	case chatsession.EdgeProject:
		return m.clearedproject
	case chatsession.EdgeMessages:
		return m.clearedmessages
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ChatSessionMutation) ClearEdge(name string) error {
	switch name {
	case chatsession.EdgeProject:
		m.ClearProject()
		return nil
	}
	return fmt.Errorf("unknown ChatSession unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ChatSessionMutation) ResetEdge(name string) error {
	switch name {
	case chatsession.EdgeProject:
		m.ResetProject()
		return nil
	case chatsession.EdgeMessages:
		m.ResetMessages()
		return nil
	}
	return fmt.Errorf("unknown ChatSession edge %s", name)
}

// EvaluationMutation represents an operation that mutates the Evaluation nodes in the graph.
type EvaluationMutation struct {
	config
	op                      Op
	typ                     string
	id                      *string
	candidate_id            *string
	scenario_id             *string
	p                       *models.Signal
	r                       *models.Signal
	constraint_satisfaction *map[string]models.ConstraintResult
	explanation             *string
	created_at              *time.Time
	clearedFields           map[string]struct{}
	run                     *string
	clearedrun              bool
	done                    bool
	oldValue                func(context.Context) (*Evaluation, error)
	predicates              []predicate.Evaluation
}

var _ ent.Mutation = (*EvaluationMutation)(nil)

// evaluationOption allows management of the mutation configuration using functional options.
type evaluationOption func(*EvaluationMutation)

// newEvaluationMutation creates new mutation for the Evaluation entity.
func newEvaluationMutation(c config, op Op, opts ...evaluationOption) *EvaluationMutation {
	m := &EvaluationMutation{
		config:        c,
		op:            op,
		typ:           TypeEvaluation,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEvaluationID sets the ID field of the mutation.
func withEvaluationID(id string) evaluationOption {
	return func(m *EvaluationMutation) {
		var (
			err   error
			once  sync.Once
			value *Evaluation
		)
		m.oldValue = func(ctx context.Context) (*Evaluation, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Evaluation.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEvaluation sets the old Evaluation of the mutation.
func withEvaluation(node *Evaluation) evaluationOption {
	return func(m *EvaluationMutation) {
		m.oldValue = func(context.Context) (*Evaluation, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EvaluationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EvaluationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Evaluation entities.
func (m *EvaluationMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EvaluationMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EvaluationMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Evaluation.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRunID sets the "run_id" field.
func (m *EvaluationMutation) SetRunID(s string) {
	m.run = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *EvaluationMutation) RunID() (r string, exists bool) {
	v := m.run
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the Evaluation entity.
// If the Evaluation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationMutation) OldRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ResetRunID resets all changes to the "run_id" field.
func (m *EvaluationMutation) ResetRunID() {
	m.run = nil
}

// SetCandidateID sets the "candidate_id" field.
func (m *EvaluationMutation) SetCandidateID(s string) {
	m.candidate_id = &s
}

// CandidateID returns the value of the "candidate_id" field in the mutation.
func (m *EvaluationMutation) CandidateID() (r string, exists bool) {
	v := m.candidate_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCandidateID returns the old "candidate_id" field's value of the Evaluation entity.
// If the Evaluation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationMutation) OldCandidateID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCandidateID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCandidateID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCandidateID: %w", err)
	}
	return oldValue.CandidateID, nil
}

// ResetCandidateID resets all changes to the "candidate_id" field.
func (m *EvaluationMutation) ResetCandidateID() {
	m.candidate_id = nil
}

// SetScenarioID sets the "scenario_id" field.
func (m *EvaluationMutation) SetScenarioID(s string) {
	m.scenario_id = &s
}

// ScenarioID returns the value of the "scenario_id" field in the mutation.
func (m *EvaluationMutation) ScenarioID() (r string, exists bool) {
	v := m.scenario_id
	if v == nil {
		return
	}
	return *v, true
}

// OldScenarioID returns the old "scenario_id" field's value of the Evaluation entity.
// If the Evaluation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationMutation) OldScenarioID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScenarioID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScenarioID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScenarioID: %w", err)
	}
	return oldValue.ScenarioID, nil
}

// ResetScenarioID resets all changes to the "scenario_id" field.
func (m *EvaluationMutation) ResetScenarioID() {
	m.scenario_id = nil
}

// SetP sets the "p" field.
func (m *EvaluationMutation) SetP(value models.Signal) {
	m.p = &value
}

// P returns the value of the "p" field in the mutation.
func (m *EvaluationMutation) P() (r models.Signal, exists bool) {
	v := m.p
	if v == nil {
		return
	}
	return *v, true
}

// OldP returns the old "p" field's value of the Evaluation entity.
// If the Evaluation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationMutation) OldP(ctx context.Context) (v models.Signal, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldP is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldP requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldP: %w", err)
	}
	return oldValue.P, nil
}

// ResetP resets all changes to the "p" field.
func (m *EvaluationMutation) ResetP() {
	m.p = nil
}

// SetR sets the "r" field.
func (m *EvaluationMutation) SetR(value models.Signal) {
	m.r = &value
}

// R returns the value of the "r" field in the mutation.
func (m *EvaluationMutation) R() (r models.Signal, exists bool) {
	v := m.r
	if v == nil {
		return
	}
	return *v, true
}

// OldR returns the old "r" field's value of the Evaluation entity.
// If the Evaluation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationMutation) OldR(ctx context.Context) (v models.Signal, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldR is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldR requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldR: %w", err)
	}
	return oldValue.R, nil
}

// ResetR resets all changes to the "r" field.
func (m *EvaluationMutation) ResetR() {
	m.r = nil
}

// SetConstraintSatisfaction sets the "constraint_satisfaction" field.
func (m *EvaluationMutation) SetConstraintSatisfaction(mr map[string]models.ConstraintResult) {
	m.constraint_satisfaction = &mr
}

// ConstraintSatisfaction returns the value of the "constraint_satisfaction" field in the mutation.
func (m *EvaluationMutation) ConstraintSatisfaction() (r map[string]models.ConstraintResult, exists bool) {
	v := m.constraint_satisfaction
	if v == nil {
		return
	}
	return *v, true
}

// OldConstraintSatisfaction returns the old "constraint_satisfaction" field's value of the Evaluation entity.
// If the Evaluation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationMutation) OldConstraintSatisfaction(ctx context.Context) (v map[string]models.ConstraintResult, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConstraintSatisfaction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConstraintSatisfaction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConstraintSatisfaction: %w", err)
	}
	return oldValue.ConstraintSatisfaction, nil
}

// ClearConstraintSatisfaction clears the value of the "constraint_satisfaction" field.
func (m *EvaluationMutation) ClearConstraintSatisfaction() {
	m.constraint_satisfaction = nil
	m.clearedFields[evaluation.FieldConstraintSatisfaction] = struct{}{}
}

// ConstraintSatisfactionCleared returns if the "constraint_satisfaction" field was cleared in this mutation.
func (m *EvaluationMutation) ConstraintSatisfactionCleared() bool {
	_, ok := m.clearedFields[evaluation.FieldConstraintSatisfaction]
	return ok
}

// ResetConstraintSatisfaction resets all changes to the "constraint_satisfaction" field.
func (m *EvaluationMutation) ResetConstraintSatisfaction() {
	m.constraint_satisfaction = nil
	delete(m.clearedFields, evaluation.FieldConstraintSatisfaction)
}

// SetExplanation sets the "explanation" field.
func (m *EvaluationMutation) SetExplanation(s string) {
	m.explanation = &s
}

// Explanation returns the value of the "explanation" field in the mutation.
func (m *EvaluationMutation) Explanation() (r string, exists bool) {
	v := m.explanation
	if v == nil {
		return
	}
	return *v, true
}

// OldExplanation returns the old "explanation" field's value of the Evaluation entity.
// If the Evaluation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationMutation) OldExplanation(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExplanation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExplanation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExplanation: %w", err)
	}
	return oldValue.Explanation, nil
}

// ClearExplanation clears the value of the "explanation" field.
func (m *EvaluationMutation) ClearExplanation() {
	m.explanation = nil
	m.clearedFields[evaluation.FieldExplanation] = struct{}{}
}

// ExplanationCleared returns if the "explanation" field was cleared in this mutation.
func (m *EvaluationMutation) ExplanationCleared() bool {
	_, ok := m.clearedFields[evaluation.FieldExplanation]
	return ok
}

// ResetExplanation resets all changes to the "explanation" field.
func (m *EvaluationMutation) ResetExplanation() {
	m.explanation = nil
	delete(m.clearedFields, evaluation.FieldExplanation)
}

// SetCreatedAt sets the "created_at" field.
func (m *EvaluationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EvaluationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Evaluation entity.
// If the Evaluation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EvaluationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearRun clears the "run" edge to the Run entity.
func (m *EvaluationMutation) ClearRun() {
	m.clearedrun = true
	m.clearedFields[evaluation.FieldRunID] = struct{}{}
}

// RunCleared reports if the "run" edge to the Run entity was cleared.
func (m *EvaluationMutation) RunCleared() bool {
	return m.clearedrun
}

// RunIDs returns the "run" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RunID instead. It exists only for internal usage by the builders.
func (m *EvaluationMutation) RunIDs() (ids []string) {
	if id := m.run; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRun resets all changes to the "run" edge.
func (m *EvaluationMutation) ResetRun() {
	m.run = nil
	m.clearedrun = false
}

// Where appends a list predicates to the EvaluationMutation builder.
func (m *EvaluationMutation) Where(ps ...predicate.Evaluation) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EvaluationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EvaluationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Evaluation, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EvaluationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EvaluationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Evaluation).
func (m *EvaluationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EvaluationMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.run != nil {
		fields = append(fields, evaluation.FieldRunID)
	}
	if m.candidate_id != nil {
		fields = append(fields, evaluation.FieldCandidateID)
	}
	if m.scenario_id != nil {
		fields = append(fields, evaluation.FieldScenarioID)
	}
	if m.p != nil {
		fields = append(fields, evaluation.FieldP)
	}
	if m.r != nil {
		fields = append(fields, evaluation.FieldR)
	}
	if m.constraint_satisfaction != nil {
		fields = append(fields, evaluation.FieldConstraintSatisfaction)
	}
	if m.explanation != nil {
		fields = append(fields, evaluation.FieldExplanation)
	}
	if m.created_at != nil {
		fields = append(fields, evaluation.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EvaluationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case evaluation.FieldRunID:
		return m.RunID()
	case evaluation.FieldCandidateID:
		return m.CandidateID()
	case evaluation.FieldScenarioID:
		return m.ScenarioID()
	case evaluation.FieldP:
		return m.P()
	case evaluation.FieldR:
		return m.R()
	case evaluation.FieldConstraintSatisfaction:
		return m.ConstraintSatisfaction()
	case evaluation.FieldExplanation:
		return m.Explanation()
	case evaluation.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EvaluationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case evaluation.FieldRunID:
		return m.OldRunID(ctx)
	case evaluation.FieldCandidateID:
		return m.OldCandidateID(ctx)
	case evaluation.FieldScenarioID:
		return m.OldScenarioID(ctx)
	case evaluation.FieldP:
		return m.OldP(ctx)
	case evaluation.FieldR:
		return m.OldR(ctx)
	case evaluation.FieldConstraintSatisfaction:
		return m.OldConstraintSatisfaction(ctx)
	case evaluation.FieldExplanation:
		return m.OldExplanation(ctx)
	case evaluation.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Evaluation field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EvaluationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case evaluation.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case evaluation.FieldCandidateID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCandidateID(v)
		return nil
	case evaluation.FieldScenarioID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScenarioID(v)
		return nil
	case evaluation.FieldP:
		v, ok := value.(models.Signal)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetP(v)
		return nil
	case evaluation.FieldR:
		v, ok := value.(models.Signal)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetR(v)
		return nil
	case evaluation.FieldConstraintSatisfaction:
		v, ok := value.(map[string]models.ConstraintResult)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConstraintSatisfaction(v)
		return nil
	case evaluation.FieldExplanation:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExplanation(v)
		return nil
	case evaluation.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Evaluation field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EvaluationMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EvaluationMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EvaluationMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Evaluation numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EvaluationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(evaluation.FieldConstraintSatisfaction) {
		fields = append(fields, evaluation.FieldConstraintSatisfaction)
	}
	if m.FieldCleared(evaluation.FieldExplanation) {
		fields = append(fields, evaluation.FieldExplanation)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EvaluationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EvaluationMutation) ClearField(name string) error {
	switch name {
	case evaluation.FieldConstraintSatisfaction:
		m.ClearConstraintSatisfaction()
		return nil
	case evaluation.FieldExplanation:
		m.ClearExplanation()
		return nil
	}
	return fmt.Errorf("unknown Evaluation nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EvaluationMutation) ResetField(name string) error {
	switch name {
	case evaluation.FieldRunID:
		m.ResetRunID()
		return nil
	case evaluation.FieldCandidateID:
		m.ResetCandidateID()
		return nil
	case evaluation.FieldScenarioID:
		m.ResetScenarioID()
		return nil
	case evaluation.FieldP:
		m.ResetP()
		return nil
	case evaluation.FieldR:
		m.ResetR()
		return nil
	case evaluation.FieldConstraintSatisfaction:
		m.ResetConstraintSatisfaction()
		return nil
	case evaluation.FieldExplanation:
		m.ResetExplanation()
		return nil
	case evaluation.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Evaluation field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EvaluationMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.run != nil {
		edges = append(edges, evaluation.EdgeRun)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EvaluationMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case evaluation.EdgeRun:
		if id := m.run; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EvaluationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EvaluationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EvaluationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrun {
		edges = append(edges, evaluation.EdgeRun)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EvaluationMutation) EdgeCleared(name string) bool {
	switch name {
	case evaluation.EdgeRun:
		return m.clearedrun
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EvaluationMutation) ClearEdge(name string) error {
	switch name {
	case evaluation.EdgeRun:
		m.ClearRun()
		return nil
	}
	return fmt.Errorf("unknown Evaluation unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EvaluationMutation) ResetEdge(name string) error {
	switch name {
	case evaluation.EdgeRun:
		m.ResetRun()
		return nil
	}
	return fmt.Errorf("unknown Evaluation edge %s", name)
}

// IssueMutation represents an operation that mutates the Issue nodes in the graph.
type IssueMutation struct {
	config
	op                Op
	typ               string
	id                *string
	run_id            *string
	candidate_id      *string
	issue_type        *issue.IssueType
	severity          *issue.Severity
	description       *string
	resolution_status *issue.ResolutionStatus
	resolved_at       *time.Time
	remediation       **models.RemediationRecord
	created_at        *time.Time
	updated_at        *time.Time
	clearedFields     map[string]struct{}
	project           *string
	clearedproject    bool
	done              bool
	oldValue          func(context.Context) (*Issue, error)
	predicates        []predicate.Issue
}

var _ ent.Mutation = (*IssueMutation)(nil)

// issueOption allows management of the mutation configuration using functional options.
type issueOption func(*IssueMutation)

// newIssueMutation creates new mutation for the Issue entity.
func newIssueMutation(c config, op Op, opts ...issueOption) *IssueMutation {
	m := &IssueMutation{
		config:        c,
		op:            op,
		typ:           TypeIssue,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withIssueID sets the ID field of the mutation.
func withIssueID(id string) issueOption {
	return func(m *IssueMutation) {
		var (
			err   error
			once  sync.Once
			value *Issue
		)
		m.oldValue = func(ctx context.Context) (*Issue, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Issue.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withIssue sets the old Issue of the mutation.
func withIssue(node *Issue) issueOption {
	return func(m *IssueMutation) {
		m.oldValue = func(context.Context) (*Issue, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m IssueMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m IssueMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Issue entities.
func (m *IssueMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *IssueMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *IssueMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Issue.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProjectID sets the "project_id" field.
func (m *IssueMutation) SetProjectID(s string) {
	m.project = &s
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *IssueMutation) ProjectID() (r string, exists bool) {
	v := m.project
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the Issue entity.
// If the Issue object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IssueMutation) OldProjectID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *IssueMutation) ResetProjectID() {
	m.project = nil
}

// SetRunID sets the "run_id" field.
func (m *IssueMutation) SetRunID(s string) {
	m.run_id = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *IssueMutation) RunID() (r string, exists bool) {
	v := m.run_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the Issue entity.
// If the Issue object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IssueMutation) OldRunID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ClearRunID clears the value of the "run_id" field.
func (m *IssueMutation) ClearRunID() {
	m.run_id = nil
	m.clearedFields[issue.FieldRunID] = struct{}{}
}

// RunIDCleared returns if the "run_id" field was cleared in this mutation.
func (m *IssueMutation) RunIDCleared() bool {
	_, ok := m.clearedFields[issue.FieldRunID]
	return ok
}

// ResetRunID resets all changes to the "run_id" field.
func (m *IssueMutation) ResetRunID() {
	m.run_id = nil
	delete(m.clearedFields, issue.FieldRunID)
}

// SetCandidateID sets the "candidate_id" field.
func (m *IssueMutation) SetCandidateID(s string) {
	m.candidate_id = &s
}

// CandidateID returns the value of the "candidate_id" field in the mutation.
func (m *IssueMutation) CandidateID() (r string, exists bool) {
	v := m.candidate_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCandidateID returns the old "candidate_id" field's value of the Issue entity.
// If the Issue object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IssueMutation) OldCandidateID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCandidateID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCandidateID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCandidateID: %w", err)
	}
	return oldValue.CandidateID, nil
}

// ClearCandidateID clears the value of the "candidate_id" field.
func (m *IssueMutation) ClearCandidateID() {
	m.candidate_id = nil
	m.clearedFields[issue.FieldCandidateID] = struct{}{}
}

// CandidateIDCleared returns if the "candidate_id" field was cleared in this mutation.
func (m *IssueMutation) CandidateIDCleared() bool {
	_, ok := m.clearedFields[issue.FieldCandidateID]
	return ok
}

// ResetCandidateID resets all changes to the "candidate_id" field.
func (m *IssueMutation) ResetCandidateID() {
	m.candidate_id = nil
	delete(m.clearedFields, issue.FieldCandidateID)
}

// SetIssueType sets the "issue_type" field.
func (m *IssueMutation) SetIssueType(it issue.IssueType) {
	m.issue_type = &it
}

// IssueType returns the value of the "issue_type" field in the mutation.
func (m *IssueMutation) IssueType() (r issue.IssueType, exists bool) {
	v := m.issue_type
	if v == nil {
		return
	}
	return *v, true
}

// OldIssueType returns the old "issue_type" field's value of the Issue entity.
// If the Issue object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IssueMutation) OldIssueType(ctx context.Context) (v issue.IssueType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIssueType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIssueType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIssueType: %w", err)
	}
	return oldValue.IssueType, nil
}

// ResetIssueType resets all changes to the "issue_type" field.
func (m *IssueMutation) ResetIssueType() {
	m.issue_type = nil
}

// SetSeverity sets the "severity" field.
func (m *IssueMutation) SetSeverity(i issue.Severity) {
	m.severity = &i
}

// Severity returns the value of the "severity" field in the mutation.
func (m *IssueMutation) Severity() (r issue.Severity, exists bool) {
	v := m.severity
	if v == nil {
		return
	}
	return *v, true
}

// OldSeverity returns the old "severity" field's value of the Issue entity.
// If the Issue object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IssueMutation) OldSeverity(ctx context.Context) (v issue.Severity, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeverity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeverity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeverity: %w", err)
	}
	return oldValue.Severity, nil
}

// ResetSeverity resets all changes to the "severity" field.
func (m *IssueMutation) ResetSeverity() {
	m.severity = nil
}

// SetDescription sets the "description" field.
func (m *IssueMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *IssueMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Issue entity.
// If the Issue object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IssueMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *IssueMutation) ResetDescription() {
	m.description = nil
}

// SetResolutionStatus sets the "resolution_status" field.
func (m *IssueMutation) SetResolutionStatus(is issue.ResolutionStatus) {
	m.resolution_status = &is
}

// ResolutionStatus returns the value of the "resolution_status" field in the mutation.
func (m *IssueMutation) ResolutionStatus() (r issue.ResolutionStatus, exists bool) {
	v := m.resolution_status
	if v == nil {
		return
	}
	return *v, true
}

// OldResolutionStatus returns the old "resolution_status" field's value of the Issue entity.
// If the Issue object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IssueMutation) OldResolutionStatus(ctx context.Context) (v issue.ResolutionStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResolutionStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResolutionStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResolutionStatus: %w", err)
	}
	return oldValue.ResolutionStatus, nil
}

// ResetResolutionStatus resets all changes to the "resolution_status" field.
func (m *IssueMutation) ResetResolutionStatus() {
	m.resolution_status = nil
}

// SetResolvedAt sets the "resolved_at" field.
func (m *IssueMutation) SetResolvedAt(t time.Time) {
	m.resolved_at = &t
}

// ResolvedAt returns the value of the "resolved_at" field in the mutation.
func (m *IssueMutation) ResolvedAt() (r time.Time, exists bool) {
	v := m.resolved_at
	if v == nil {
		return
	}
	return *v, true
}

// OldResolvedAt returns the old "resolved_at" field's value of the Issue entity.
// If the Issue object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IssueMutation) OldResolvedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResolvedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResolvedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResolvedAt: %w", err)
	}
	return oldValue.ResolvedAt, nil
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (m *IssueMutation) ClearResolvedAt() {
	m.resolved_at = nil
	m.clearedFields[issue.FieldResolvedAt] = struct{}{}
}

// ResolvedAtCleared returns if the "resolved_at" field was cleared in this mutation.
func (m *IssueMutation) ResolvedAtCleared() bool {
	_, ok := m.clearedFields[issue.FieldResolvedAt]
	return ok
}

// ResetResolvedAt resets all changes to the "resolved_at" field.
func (m *IssueMutation) ResetResolvedAt() {
	m.resolved_at = nil
	delete(m.clearedFields, issue.FieldResolvedAt)
}

// SetRemediation sets the "remediation" field.
func (m *IssueMutation) SetRemediation(mr *models.RemediationRecord) {
	m.remediation = &mr
}

// Remediation returns the value of the "remediation" field in the mutation.
func (m *IssueMutation) Remediation() (r *models.RemediationRecord, exists bool) {
	v := m.remediation
	if v == nil {
		return
	}
	return *v, true
}

// OldRemediation returns the old "remediation" field's value of the Issue entity.
// If the Issue object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IssueMutation) OldRemediation(ctx context.Context) (v *models.RemediationRecord, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRemediation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRemediation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRemediation: %w", err)
	}
	return oldValue.Remediation, nil
}

// ClearRemediation clears the value of the "remediation" field.
func (m *IssueMutation) ClearRemediation() {
	m.remediation = nil
	m.clearedFields[issue.FieldRemediation] = struct{}{}
}

// RemediationCleared returns if the "remediation" field was cleared in this mutation.
func (m *IssueMutation) RemediationCleared() bool {
	_, ok := m.clearedFields[issue.FieldRemediation]
	return ok
}

// ResetRemediation resets all changes to the "remediation" field.
func (m *IssueMutation) ResetRemediation() {
	m.remediation = nil
	delete(m.clearedFields, issue.FieldRemediation)
}

// SetCreatedAt sets the "created_at" field.
func (m *IssueMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *IssueMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Issue entity.
// If the Issue object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IssueMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *IssueMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *IssueMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *IssueMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Issue entity.
// If the Issue object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IssueMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *IssueMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearProject clears the "project" edge to the Project entity.
func (m *IssueMutation) ClearProject() {
	m.clearedproject = true
	m.clearedFields[issue.FieldProjectID] = struct{}{}
}

// ProjectCleared reports if the "project" edge to the Project entity was cleared.
func (m *IssueMutation) ProjectCleared() bool {
	return m.clearedproject
}

// ProjectIDs returns the "project" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProjectID instead. It exists only for internal usage by the builders.
func (m *IssueMutation) ProjectIDs() (ids []string) {
	if id := m.project; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProject resets all changes to the "project" edge.
func (m *IssueMutation) ResetProject() {
	m.project = nil
	m.clearedproject = false
}

// Where appends a list predicates to the IssueMutation builder.
func (m *IssueMutation) Where(ps ...predicate.Issue) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the IssueMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *IssueMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Issue, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *IssueMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *IssueMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Issue).
func (m *IssueMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *IssueMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.project != nil {
		fields = append(fields, issue.FieldProjectID)
	}
	if m.run_id != nil {
		fields = append(fields, issue.FieldRunID)
	}
	if m.candidate_id != nil {
		fields = append(fields, issue.FieldCandidateID)
	}
	if m.issue_type != nil {
		fields = append(fields, issue.FieldIssueType)
	}
	if m.severity != nil {
		fields = append(fields, issue.FieldSeverity)
	}
	if m.description != nil {
		fields = append(fields, issue.FieldDescription)
	}
	if m.resolution_status != nil {
		fields = append(fields, issue.FieldResolutionStatus)
	}
	if m.resolved_at != nil {
		fields = append(fields, issue.FieldResolvedAt)
	}
	if m.remediation != nil {
		fields = append(fields, issue.FieldRemediation)
	}
	if m.created_at != nil {
		fields = append(fields, issue.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, issue.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *IssueMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case issue.FieldProjectID:
		return m.ProjectID()
	case issue.FieldRunID:
		return m.RunID()
	case issue.FieldCandidateID:
		return m.CandidateID()
	case issue.FieldIssueType:
		return m.IssueType()
	case issue.FieldSeverity:
		return m.Severity()
	case issue.FieldDescription:
		return m.Description()
	case issue.FieldResolutionStatus:
		return m.ResolutionStatus()
	case issue.FieldResolvedAt:
		return m.ResolvedAt()
	case issue.FieldRemediation:
		return m.Remediation()
	case issue.FieldCreatedAt:
		return m.CreatedAt()
	case issue.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *IssueMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case issue.FieldProjectID:
		return m.OldProjectID(ctx)
	case issue.FieldRunID:
		return m.OldRunID(ctx)
	case issue.FieldCandidateID:
		return m.OldCandidateID(ctx)
	case issue.FieldIssueType:
		return m.OldIssueType(ctx)
	case issue.FieldSeverity:
		return m.OldSeverity(ctx)
	case issue.FieldDescription:
		return m.OldDescription(ctx)
	case issue.FieldResolutionStatus:
		return m.OldResolutionStatus(ctx)
	case issue.FieldResolvedAt:
		return m.OldResolvedAt(ctx)
	case issue.FieldRemediation:
		return m.OldRemediation(ctx)
	case issue.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case issue.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Issue field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IssueMutation) SetField(name string, value ent.Value) error {
	switch name {
	case issue.FieldProjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case issue.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case issue.FieldCandidateID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCandidateID(v)
		return nil
	case issue.FieldIssueType:
		v, ok := value.(issue.IssueType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIssueType(v)
		return nil
	case issue.FieldSeverity:
		v, ok := value.(issue.Severity)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeverity(v)
		return nil
	case issue.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case issue.FieldResolutionStatus:
		v, ok := value.(issue.ResolutionStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResolutionStatus(v)
		return nil
	case issue.FieldResolvedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResolvedAt(v)
		return nil
	case issue.FieldRemediation:
		v, ok := value.(*models.RemediationRecord)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRemediation(v)
		return nil
	case issue.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case issue.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Issue field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *IssueMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *IssueMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IssueMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Issue numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *IssueMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(issue.FieldRunID) {
		fields = append(fields, issue.FieldRunID)
	}
	if m.FieldCleared(issue.FieldCandidateID) {
		fields = append(fields, issue.FieldCandidateID)
	}
	if m.FieldCleared(issue.FieldResolvedAt) {
		fields = append(fields, issue.FieldResolvedAt)
	}
	if m.FieldCleared(issue.FieldRemediation) {
		fields = append(fields, issue.FieldRemediation)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *IssueMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *IssueMutation) ClearField(name string) error {
	switch name {
	case issue.FieldRunID:
		m.ClearRunID()
		return nil
	case issue.FieldCandidateID:
		m.ClearCandidateID()
		return nil
	case issue.FieldResolvedAt:
		m.ClearResolvedAt()
		return nil
	case issue.FieldRemediation:
		m.ClearRemediation()
		return nil
	}
	return fmt.Errorf("unknown Issue nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *IssueMutation) ResetField(name string) error {
	switch name {
	case issue.FieldProjectID:
		m.ResetProjectID()
		return nil
	case issue.FieldRunID:
		m.ResetRunID()
		return nil
	case issue.FieldCandidateID:
		m.ResetCandidateID()
		return nil
	case issue.FieldIssueType:
		m.ResetIssueType()
		return nil
	case issue.FieldSeverity:
		m.ResetSeverity()
		return nil
	case issue.FieldDescription:
		m.ResetDescription()
		return nil
	case issue.FieldResolutionStatus:
		m.ResetResolutionStatus()
		return nil
	case issue.FieldResolvedAt:
		m.ResetResolvedAt()
		return nil
	case issue.FieldRemediation:
		m.ResetRemediation()
		return nil
	case issue.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case issue.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Issue field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *IssueMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.project != nil {
		edges = append(edges, issue.EdgeProject)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *IssueMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case issue.EdgeProject:
		if id := m.project; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *IssueMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *IssueMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *IssueMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedproject {
		edges = append(edges, issue.EdgeProject)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *IssueMutation) EdgeCleared(name string) bool {
	switch name {
	case issue.EdgeProject:
		return m.clearedproject
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *IssueMutation) ClearEdge(name string) error {
	switch name {
	case issue.EdgeProject:
		m.ClearProject()
		return nil
	}
	return fmt.Errorf("unknown Issue unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *IssueMutation) ResetEdge(name string) error {
	switch name {
	case issue.EdgeProject:
		m.ResetProject()
		return nil
	}
	return fmt.Errorf("unknown Issue edge %s", name)
}

// MessageMutation represents an operation that mutates the Message nodes in the graph.
type MessageMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	role                *message.Role
	content             *string
	metadata            *map[string]interface{}
	created_at          *time.Time
	clearedFields       map[string]struct{}
	chat_session        *string
	clearedchat_session bool
	done                bool
	oldValue            func(context.Context) (*Message, error)
	predicates          []predicate.Message
}

var _ ent.Mutation = (*MessageMutation)(nil)

// messageOption allows management of the mutation configuration using functional options.
type messageOption func(*MessageMutation)

// newMessageMutation creates new mutation for the Message entity.
func newMessageMutation(c config, op Op, opts ...messageOption) *MessageMutation {
	m := &MessageMutation{
		config:        c,
		op:            op,
		typ:           TypeMessage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMessageID sets the ID field of the mutation.
func withMessageID(id string) messageOption {
	return func(m *MessageMutation) {
		var (
			err   error
			once  sync.Once
			value *Message
		)
		m.oldValue = func(ctx context.Context) (*Message, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Message.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMessage sets the old Message of the mutation.
func withMessage(node *Message) messageOption {
	return func(m *MessageMutation) {
		m.oldValue = func(context.Context) (*Message, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MessageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MessageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Message entities.
func (m *MessageMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MessageMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MessageMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Message.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetChatSessionID sets the "chat_session_id" field.
func (m *MessageMutation) SetChatSessionID(s string) {
	m.chat_session = &s
}

// ChatSessionID returns the value of the "chat_session_id" field in the mutation.
func (m *MessageMutation) ChatSessionID() (r string, exists bool) {
	v := m.chat_session
	if v == nil {
		return
	}
	return *v, true
}

// OldChatSessionID returns the old "chat_session_id" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldChatSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChatSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChatSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChatSessionID: %w", err)
	}
	return oldValue.ChatSessionID, nil
}

// ResetChatSessionID resets all changes to the "chat_session_id" field.
func (m *MessageMutation) ResetChatSessionID() {
	m.chat_session = nil
}

// SetRole sets the "role" field.
func (m *MessageMutation) SetRole(value message.Role) {
	m.role = &value
}

// Role returns the value of the "role" field in the mutation.
func (m *MessageMutation) Role() (r message.Role, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldRole(ctx context.Context) (v message.Role, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *MessageMutation) ResetRole() {
	m.role = nil
}

// SetContent sets the "content" field.
func (m *MessageMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *MessageMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *MessageMutation) ResetContent() {
	m.content = nil
}

// SetMetadata sets the "metadata" field.
func (m *MessageMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *MessageMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *MessageMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[message.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *MessageMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[message.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *MessageMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, message.FieldMetadata)
}

// SetCreatedAt sets the "created_at" field.
func (m *MessageMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MessageMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MessageMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearChatSession clears the "chat_session" edge to the ChatSession entity.
func (m *MessageMutation) ClearChatSession() {
	m.clearedchat_session = true
	m.clearedFields[message.FieldChatSessionID] = struct{}{}
}

// ChatSessionCleared reports if the "chat_session" edge to the ChatSession entity was cleared.
func (m *MessageMutation) ChatSessionCleared() bool {
	return m.clearedchat_session
}

// ChatSessionIDs returns the "chat_session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ChatSessionID instead. It exists only for internal usage by the builders.
func (m *MessageMutation) ChatSessionIDs() (ids []string) {
	if id := m.chat_session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetChatSession resets all changes to the "chat_session" edge.
func (m *MessageMutation) ResetChatSession() {
	m.chat_session = nil
	m.clearedchat_session = false
}

// Where appends a list predicates to the MessageMutation builder.
func (m *MessageMutation) Where(ps ...predicate.Message) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MessageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MessageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Message, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MessageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MessageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Message).
func (m *MessageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MessageMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.chat_session != nil {
		fields = append(fields, message.FieldChatSessionID)
	}
	if m.role != nil {
		fields = append(fields, message.FieldRole)
	}
	if m.content != nil {
		fields = append(fields, message.FieldContent)
	}
	if m.metadata != nil {
		fields = append(fields, message.FieldMetadata)
	}
	if m.created_at != nil {
		fields = append(fields, message.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MessageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case message.FieldChatSessionID:
		return m.ChatSessionID()
	case message.FieldRole:
		return m.Role()
	case message.FieldContent:
		return m.Content()
	case message.FieldMetadata:
		return m.Metadata()
	case message.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MessageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case message.FieldChatSessionID:
		return m.OldChatSessionID(ctx)
	case message.FieldRole:
		return m.OldRole(ctx)
	case message.FieldContent:
		return m.OldContent(ctx)
	case message.FieldMetadata:
		return m.OldMetadata(ctx)
	case message.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Message field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MessageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case message.FieldChatSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChatSessionID(v)
		return nil
	case message.FieldRole:
		v, ok := value.(message.Role)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case message.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case message.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case message.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Message field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MessageMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MessageMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MessageMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Message numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MessageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(message.FieldMetadata) {
		fields = append(fields, message.FieldMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MessageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MessageMutation) ClearField(name string) error {
	switch name {
	case message.FieldMetadata:
		m.ClearMetadata()
		return nil
	}
	return fmt.Errorf("unknown Message nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MessageMutation) ResetField(name string) error {
	switch name {
	case message.FieldChatSessionID:
		m.ResetChatSessionID()
		return nil
	case message.FieldRole:
		m.ResetRole()
		return nil
	case message.FieldContent:
		m.ResetContent()
		return nil
	case message.FieldMetadata:
		m.ResetMetadata()
		return nil
	case message.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Message field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MessageMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.chat_session != nil {
		edges = append(edges, message.EdgeChatSession)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MessageMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case message.EdgeChatSession:
		if id := m.chat_session; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MessageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MessageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MessageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedchat_session {
		edges = append(edges, message.EdgeChatSession)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MessageMutation) EdgeCleared(name string) bool {
	switch name {
	case message.EdgeChatSession:
		return m.clearedchat_session
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MessageMutation) ClearEdge(name string) error {
	switch name {
	case message.EdgeChatSession:
		m.ClearChatSession()
		return nil
	}
	return fmt.Errorf("unknown Message unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MessageMutation) ResetEdge(name string) error {
	switch name {
	case message.EdgeChatSession:
		m.ResetChatSession()
		return nil
	}
	return fmt.Errorf("unknown Message edge %s", name)
}

// ProblemSpecMutation represents an operation that mutates the ProblemSpec nodes in the graph.
type ProblemSpecMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	constraints          *[]models.Constraint
	appendconstraints    []models.Constraint
	goals                *[]string
	appendgoals          []string
	resolution           *problemspec.Resolution
	mode                 *problemspec.Mode
	provenance_log       *[]provenance.Entry
	appendprovenance_log []provenance.Entry
	created_at           *time.Time
	updated_at           *time.Time
	clearedFields        map[string]struct{}
	project              *string
	clearedproject       bool
	done                 bool
	oldValue             func(context.Context) (*ProblemSpec, error)
	predicates           []predicate.ProblemSpec
}

var _ ent.Mutation = (*ProblemSpecMutation)(nil)

// problemspecOption allows management of the mutation configuration using functional options.
type problemspecOption func(*ProblemSpecMutation)

// newProblemSpecMutation creates new mutation for the ProblemSpec entity.
func newProblemSpecMutation(c config, op Op, opts ...problemspecOption) *ProblemSpecMutation {
	m := &ProblemSpecMutation{
		config:        c,
		op:            op,
		typ:           TypeProblemSpec,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProblemSpecID sets the ID field of the mutation.
func withProblemSpecID(id string) problemspecOption {
	return func(m *ProblemSpecMutation) {
		var (
			err   error
			once  sync.Once
			value *ProblemSpec
		)
		m.oldValue = func(ctx context.Context) (*ProblemSpec, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ProblemSpec.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProblemSpec sets the old ProblemSpec of the mutation.
func withProblemSpec(node *ProblemSpec) problemspecOption {
	return func(m *ProblemSpecMutation) {
		m.oldValue = func(context.Context) (*ProblemSpec, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProblemSpecMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProblemSpecMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ProblemSpec entities.
func (m *ProblemSpecMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProblemSpecMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProblemSpecMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ProblemSpec.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProjectID sets the "project_id" field.
func (m *ProblemSpecMutation) SetProjectID(s string) {
	m.project = &s
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *ProblemSpecMutation) ProjectID() (r string, exists bool) {
	v := m.project
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the ProblemSpec entity.
// If the ProblemSpec object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProblemSpecMutation) OldProjectID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *ProblemSpecMutation) ResetProjectID() {
	m.project = nil
}

// SetConstraints sets the "constraints" field.
func (m *ProblemSpecMutation) SetConstraints(value []models.Constraint) {
	m.constraints = &value
	m.appendconstraints = nil
}

// Constraints returns the value of the "constraints" field in the mutation.
func (m *ProblemSpecMutation) Constraints() (r []models.Constraint, exists bool) {
	v := m.constraints
	if v == nil {
		return
	}
	return *v, true
}

// OldConstraints returns the old "constraints" field's value of the ProblemSpec entity.
// If the ProblemSpec object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProblemSpecMutation) OldConstraints(ctx context.Context) (v []models.Constraint, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConstraints is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConstraints requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConstraints: %w", err)
	}
	return oldValue.Constraints, nil
}

// AppendConstraints adds value to the "constraints" field.
func (m *ProblemSpecMutation) AppendConstraints(value []models.Constraint) {
	m.appendconstraints = append(m.appendconstraints, value...)
}

// AppendedConstraints returns the list of values that were appended to the "constraints" field in this mutation.
func (m *ProblemSpecMutation) AppendedConstraints() ([]models.Constraint, bool) {
	if len(m.appendconstraints) == 0 {
		return nil, false
	}
	return m.appendconstraints, true
}

// ResetConstraints resets all changes to the "constraints" field.
func (m *ProblemSpecMutation) ResetConstraints() {
	m.constraints = nil
	m.appendconstraints = nil
}

// SetGoals sets the "goals" field.
func (m *ProblemSpecMutation) SetGoals(s []string) {
	m.goals = &s
	m.appendgoals = nil
}

// Goals returns the value of the "goals" field in the mutation.
func (m *ProblemSpecMutation) Goals() (r []string, exists bool) {
	v := m.goals
	if v == nil {
		return
	}
	return *v, true
}

// OldGoals returns the old "goals" field's value of the ProblemSpec entity.
// If the ProblemSpec object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProblemSpecMutation) OldGoals(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGoals is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGoals requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGoals: %w", err)
	}
	return oldValue.Goals, nil
}

// AppendGoals adds s to the "goals" field.
func (m *ProblemSpecMutation) AppendGoals(s []string) {
	m.appendgoals = append(m.appendgoals, s...)
}

// AppendedGoals returns the list of values that were appended to the "goals" field in this mutation.
func (m *ProblemSpecMutation) AppendedGoals() ([]string, bool) {
	if len(m.appendgoals) == 0 {
		return nil, false
	}
	return m.appendgoals, true
}

// ClearGoals clears the value of the "goals" field.
func (m *ProblemSpecMutation) ClearGoals() {
	m.goals = nil
	m.appendgoals = nil
	m.clearedFields[problemspec.FieldGoals] = struct{}{}
}

// GoalsCleared returns if the "goals" field was cleared in this mutation.
func (m *ProblemSpecMutation) GoalsCleared() bool {
	_, ok := m.clearedFields[problemspec.FieldGoals]
	return ok
}

// ResetGoals resets all changes to the "goals" field.
func (m *ProblemSpecMutation) ResetGoals() {
	m.goals = nil
	m.appendgoals = nil
	delete(m.clearedFields, problemspec.FieldGoals)
}

// SetResolution sets the "resolution" field.
func (m *ProblemSpecMutation) SetResolution(pr problemspec.Resolution) {
	m.resolution = &pr
}

// Resolution returns the value of the "resolution" field in the mutation.
func (m *ProblemSpecMutation) Resolution() (r problemspec.Resolution, exists bool) {
	v := m.resolution
	if v == nil {
		return
	}
	return *v, true
}

// OldResolution returns the old "resolution" field's value of the ProblemSpec entity.
// If the ProblemSpec object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProblemSpecMutation) OldResolution(ctx context.Context) (v problemspec.Resolution, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResolution is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResolution requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResolution: %w", err)
	}
	return oldValue.Resolution, nil
}

// ResetResolution resets all changes to the "resolution" field.
func (m *ProblemSpecMutation) ResetResolution() {
	m.resolution = nil
}

// SetMode sets the "mode" field.
func (m *ProblemSpecMutation) SetMode(pr problemspec.Mode) {
	m.mode = &pr
}

// Mode returns the value of the "mode" field in the mutation.
func (m *ProblemSpecMutation) Mode() (r problemspec.Mode, exists bool) {
	v := m.mode
	if v == nil {
		return
	}
	return *v, true
}

// OldMode returns the old "mode" field's value of the ProblemSpec entity.
// If the ProblemSpec object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProblemSpecMutation) OldMode(ctx context.Context) (v problemspec.Mode, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMode: %w", err)
	}
	return oldValue.Mode, nil
}

// ResetMode resets all changes to the "mode" field.
func (m *ProblemSpecMutation) ResetMode() {
	m.mode = nil
}

// SetProvenanceLog sets the "provenance_log" field.
func (m *ProblemSpecMutation) SetProvenanceLog(pr []provenance.Entry) {
	m.provenance_log = &pr
	m.appendprovenance_log = nil
}

// ProvenanceLog returns the value of the "provenance_log" field in the mutation.
func (m *ProblemSpecMutation) ProvenanceLog() (r []provenance.Entry, exists bool) {
	v := m.provenance_log
	if v == nil {
		return
	}
	return *v, true
}

// OldProvenanceLog returns the old "provenance_log" field's value of the ProblemSpec entity.
// If the ProblemSpec object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProblemSpecMutation) OldProvenanceLog(ctx context.Context) (v []provenance.Entry, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvenanceLog is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvenanceLog requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvenanceLog: %w", err)
	}
	return oldValue.ProvenanceLog, nil
}

// AppendProvenanceLog adds pr to the "provenance_log" field.
func (m *ProblemSpecMutation) AppendProvenanceLog(pr []provenance.Entry) {
	m.appendprovenance_log = append(m.appendprovenance_log, pr...)
}

// AppendedProvenanceLog returns the list of values that were appended to the "provenance_log" field in this mutation.
func (m *ProblemSpecMutation) AppendedProvenanceLog() ([]provenance.Entry, bool) {
	if len(m.appendprovenance_log) == 0 {
		return nil, false
	}
	return m.appendprovenance_log, true
}

// ClearProvenanceLog clears the value of the "provenance_log" field.
func (m *ProblemSpecMutation) ClearProvenanceLog() {
	m.provenance_log = nil
	m.appendprovenance_log = nil
	m.clearedFields[problemspec.FieldProvenanceLog] = struct{}{}
}

// ProvenanceLogCleared returns if the "provenance_log" field was cleared in this mutation.
func (m *ProblemSpecMutation) ProvenanceLogCleared() bool {
	_, ok := m.clearedFields[problemspec.FieldProvenanceLog]
	return ok
}

// ResetProvenanceLog resets all changes to the "provenance_log" field.
func (m *ProblemSpecMutation) ResetProvenanceLog() {
	m.provenance_log = nil
	m.appendprovenance_log = nil
	delete(m.clearedFields, problemspec.FieldProvenanceLog)
}

// SetCreatedAt sets the "created_at" field.
func (m *ProblemSpecMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ProblemSpecMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ProblemSpec entity.
// If the ProblemSpec object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProblemSpecMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ProblemSpecMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ProblemSpecMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ProblemSpecMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ProblemSpec entity.
// If the ProblemSpec object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProblemSpecMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ProblemSpecMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearProject clears the "project" edge to the Project entity.
func (m *ProblemSpecMutation) ClearProject() {
	m.clearedproject = true
	m.clearedFields[problemspec.FieldProjectID] = struct{}{}
}

// ProjectCleared reports if the "project" edge to the Project entity was cleared.
func (m *ProblemSpecMutation) ProjectCleared() bool {
	return m.clearedproject
}

// ProjectIDs returns the "project" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProjectID instead. It exists only for internal usage by the builders.
func (m *ProblemSpecMutation) ProjectIDs() (ids []string) {
	if id := m.project; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProject resets all changes to the "project" edge.
func (m *ProblemSpecMutation) ResetProject() {
	m.project = nil
	m.clearedproject = false
}

// Where appends a list predicates to the ProblemSpecMutation builder.
func (m *ProblemSpecMutation) Where(ps ...predicate.ProblemSpec) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProblemSpecMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProblemSpecMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ProblemSpec, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProblemSpecMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProblemSpecMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ProblemSpec).
func (m *ProblemSpecMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProblemSpecMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.project != nil {
		fields = append(fields, problemspec.FieldProjectID)
	}
	if m.constraints != nil {
		fields = append(fields, problemspec.FieldConstraints)
	}
	if m.goals != nil {
		fields = append(fields, problemspec.FieldGoals)
	}
	if m.resolution != nil {
		fields = append(fields, problemspec.FieldResolution)
	}
	if m.mode != nil {
		fields = append(fields, problemspec.FieldMode)
	}
	if m.provenance_log != nil {
		fields = append(fields, problemspec.FieldProvenanceLog)
	}
	if m.created_at != nil {
		fields = append(fields, problemspec.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, problemspec.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProblemSpecMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case problemspec.FieldProjectID:
		return m.ProjectID()
	case problemspec.FieldConstraints:
		return m.Constraints()
	case problemspec.FieldGoals:
		return m.Goals()
	case problemspec.FieldResolution:
		return m.Resolution()
	case problemspec.FieldMode:
		return m.Mode()
	case problemspec.FieldProvenanceLog:
		return m.ProvenanceLog()
	case problemspec.FieldCreatedAt:
		return m.CreatedAt()
	case problemspec.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProblemSpecMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case problemspec.FieldProjectID:
		return m.OldProjectID(ctx)
	case problemspec.FieldConstraints:
		return m.OldConstraints(ctx)
	case problemspec.FieldGoals:
		return m.OldGoals(ctx)
	case problemspec.FieldResolution:
		return m.OldResolution(ctx)
	case problemspec.FieldMode:
		return m.OldMode(ctx)
	case problemspec.FieldProvenanceLog:
		return m.OldProvenanceLog(ctx)
	case problemspec.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case problemspec.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ProblemSpec field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProblemSpecMutation) SetField(name string, value ent.Value) error {
	switch name {
	case problemspec.FieldProjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case problemspec.FieldConstraints:
		v, ok := value.([]models.Constraint)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConstraints(v)
		return nil
	case problemspec.FieldGoals:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGoals(v)
		return nil
	case problemspec.FieldResolution:
		v, ok := value.(problemspec.Resolution)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResolution(v)
		return nil
	case problemspec.FieldMode:
		v, ok := value.(problemspec.Mode)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMode(v)
		return nil
	case problemspec.FieldProvenanceLog:
		v, ok := value.([]provenance.Entry)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvenanceLog(v)
		return nil
	case problemspec.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case problemspec.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ProblemSpec field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProblemSpecMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProblemSpecMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProblemSpecMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ProblemSpec numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProblemSpecMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(problemspec.FieldGoals) {
		fields = append(fields, problemspec.FieldGoals)
	}
	if m.FieldCleared(problemspec.FieldProvenanceLog) {
		fields = append(fields, problemspec.FieldProvenanceLog)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProblemSpecMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProblemSpecMutation) ClearField(name string) error {
	switch name {
	case problemspec.FieldGoals:
		m.ClearGoals()
		return nil
	case problemspec.FieldProvenanceLog:
		m.ClearProvenanceLog()
		return nil
	}
	return fmt.Errorf("unknown ProblemSpec nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProblemSpecMutation) ResetField(name string) error {
	switch name {
	case problemspec.FieldProjectID:
		m.ResetProjectID()
		return nil
	case problemspec.FieldConstraints:
		m.ResetConstraints()
		return nil
	case problemspec.FieldGoals:
		m.ResetGoals()
		return nil
	case problemspec.FieldResolution:
		m.ResetResolution()
		return nil
	case problemspec.FieldMode:
		m.ResetMode()
		return nil
	case problemspec.FieldProvenanceLog:
		m.ResetProvenanceLog()
		return nil
	case problemspec.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case problemspec.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ProblemSpec field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProblemSpecMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.project != nil {
		edges = append(edges, problemspec.EdgeProject)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProblemSpecMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case problemspec.EdgeProject:
		if id := m.project; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProblemSpecMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProblemSpecMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProblemSpecMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedproject {
		edges = append(edges, problemspec.EdgeProject)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProblemSpecMutation) EdgeCleared(name string) bool {
	switch name {
	case problemspec.EdgeProject:
		return m.clearedproject
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProblemSpecMutation) ClearEdge(name string) error {
	switch name {
	case problemspec.EdgeProject:
		m.ClearProject()
		return nil
	}
	return fmt.Errorf("unknown ProblemSpec unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProblemSpecMutation) ResetEdge(name string) error {
	switch name {
	case problemspec.EdgeProject:
		m.ResetProject()
		return nil
	}
	return fmt.Errorf("unknown ProblemSpec edge %s", name)
}

// ProjectMutation represents an operation that mutates the Project nodes in the graph.
type ProjectMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	name                 *string
	description          *string
	ephemeral            *bool
	created_at           *time.Time
	updated_at           *time.Time
	clearedFields        map[string]struct{}
	problem_spec         *string
	clearedproblem_spec  bool
	world_model          *string
	clearedworld_model   bool
	runs                 map[string]struct{}
	removedruns          map[string]struct{}
	clearedruns          bool
	candidates           map[string]struct{}
	removedcandidates    map[string]struct{}
	clearedcandidates    bool
	issues               map[string]struct{}
	removedissues        map[string]struct{}
	clearedissues        bool
	snapshots            map[string]struct{}
	removedsnapshots     map[string]struct{}
	clearedsnapshots     bool
	chat_sessions        map[string]struct{}
	removedchat_sessions map[string]struct{}
	clearedchat_sessions bool
	done                 bool
	oldValue             func(context.Context) (*Project, error)
	predicates           []predicate.Project
}

var _ ent.Mutation = (*ProjectMutation)(nil)

// projectOption allows management of the mutation configuration using functional options.
type projectOption func(*ProjectMutation)

// newProjectMutation creates new mutation for the Project entity.
func newProjectMutation(c config, op Op, opts ...projectOption) *ProjectMutation {
	m := &ProjectMutation{
		config:        c,
		op:            op,
		typ:           TypeProject,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProjectID sets the ID field of the mutation.
func withProjectID(id string) projectOption {
	return func(m *ProjectMutation) {
		var (
			err   error
			once  sync.Once
			value *Project
		)
		m.oldValue = func(ctx context.Context) (*Project, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Project.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProject sets the old Project of the mutation.
func withProject(node *Project) projectOption {
	return func(m *ProjectMutation) {
		m.oldValue = func(context.Context) (*Project, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProjectMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProjectMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Project entities.
func (m *ProjectMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProjectMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProjectMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Project.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *ProjectMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ProjectMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ProjectMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *ProjectMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *ProjectMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *ProjectMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[project.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *ProjectMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[project.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *ProjectMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, project.FieldDescription)
}

// SetEphemeral sets the "ephemeral" field.
func (m *ProjectMutation) SetEphemeral(b bool) {
	m.ephemeral = &b
}

// Ephemeral returns the value of the "ephemeral" field in the mutation.
func (m *ProjectMutation) Ephemeral() (r bool, exists bool) {
	v := m.ephemeral
	if v == nil {
		return
	}
	return *v, true
}

// OldEphemeral returns the old "ephemeral" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldEphemeral(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEphemeral is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEphemeral requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEphemeral: %w", err)
	}
	return oldValue.Ephemeral, nil
}

// ResetEphemeral resets all changes to the "ephemeral" field.
func (m *ProjectMutation) ResetEphemeral() {
	m.ephemeral = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ProjectMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ProjectMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ProjectMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ProjectMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ProjectMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ProjectMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetProblemSpecID sets the "problem_spec" edge to the ProblemSpec entity by id.
func (m *ProjectMutation) SetProblemSpecID(id string) {
	m.problem_spec = &id
}

// ClearProblemSpec clears the "problem_spec" edge to the ProblemSpec entity.
func (m *ProjectMutation) ClearProblemSpec() {
	m.clearedproblem_spec = true
}

// ProblemSpecCleared reports if the "problem_spec" edge to the ProblemSpec entity was cleared.
func (m *ProjectMutation) ProblemSpecCleared() bool {
	return m.clearedproblem_spec
}

// ProblemSpecID returns the "problem_spec" edge ID in the mutation.
func (m *ProjectMutation) ProblemSpecID() (id string, exists bool) {
	if m.problem_spec != nil {
		return *m.problem_spec, true
	}
	return
}

// ProblemSpecIDs returns the "problem_spec" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProblemSpecID instead. It exists only for internal usage by the builders.
func (m *ProjectMutation) ProblemSpecIDs() (ids []string) {
	if id := m.problem_spec; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProblemSpec resets all changes to the "problem_spec" edge.
func (m *ProjectMutation) ResetProblemSpec() {
	m.problem_spec = nil
	m.clearedproblem_spec = false
}

// SetWorldModelID sets the "world_model" edge to the WorldModel entity by id.
func (m *ProjectMutation) SetWorldModelID(id string) {
	m.world_model = &id
}

// ClearWorldModel clears the "world_model" edge to the WorldModel entity.
func (m *ProjectMutation) ClearWorldModel() {
	m.clearedworld_model = true
}

// WorldModelCleared reports if the "world_model" edge to the WorldModel entity was cleared.
func (m *ProjectMutation) WorldModelCleared() bool {
	return m.clearedworld_model
}

// WorldModelID returns the "world_model" edge ID in the mutation.
func (m *ProjectMutation) WorldModelID() (id string, exists bool) {
	if m.world_model != nil {
		return *m.world_model, true
	}
	return
}

// WorldModelIDs returns the "world_model" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// WorldModelID instead. It exists only for internal usage by the builders.
func (m *ProjectMutation) WorldModelIDs() (ids []string) {
	if id := m.world_model; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetWorldModel resets all changes to the "world_model" edge.
func (m *ProjectMutation) ResetWorldModel() {
	m.world_model = nil
	m.clearedworld_model = false
}

// AddRunIDs adds the "runs" edge to the Run entity by ids.
func (m *ProjectMutation) AddRunIDs(ids ...string) {
	if m.runs == nil {
		m.runs = make(map[string]struct{})
	}
	for i := range ids {
		m.runs[ids[i]] = struct{}{}
	}
}

// ClearRuns clears the "runs" edge to the Run entity.
func (m *ProjectMutation) ClearRuns() {
	m.clearedruns = true
}

// RunsCleared reports if the "runs" edge to the Run entity was cleared.
func (m *ProjectMutation) RunsCleared() bool {
	return m.clearedruns
}

// RemoveRunIDs removes the "runs" edge to the Run entity by IDs.
func (m *ProjectMutation) RemoveRunIDs(ids ...string) {
	if m.removedruns == nil {
		m.removedruns = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.runs, ids[i])
		m.removedruns[ids[i]] = struct{}{}
	}
}

// RemovedRuns returns the removed IDs of the "runs" edge to the Run entity.
func (m *ProjectMutation) RemovedRunsIDs() (ids []string) {
	for id := range m.removedruns {
		ids = append(ids, id)
	}
	return
}

// RunsIDs returns the "runs" edge IDs in the mutation.
func (m *ProjectMutation) RunsIDs() (ids []string) {
	for id := range m.runs {
		ids = append(ids, id)
	}
	return
}

// ResetRuns resets all changes to the "runs" edge.
func (m *ProjectMutation) ResetRuns() {
	m.runs = nil
	m.clearedruns = false
	m.removedruns = nil
}

// AddCandidateIDs adds the "candidates" edge to the Candidate entity by ids.
func (m *ProjectMutation) AddCandidateIDs(ids ...string) {
	if m.candidates == nil {
		m.candidates = make(map[string]struct{})
	}
	for i := range ids {
		m.candidates[ids[i]] = struct{}{}
	}
}

// ClearCandidates clears the "candidates" edge to the Candidate entity.
func (m *ProjectMutation) ClearCandidates() {
	m.clearedcandidates = true
}

// CandidatesCleared reports if the "candidates" edge to the Candidate entity was cleared.
func (m *ProjectMutation) CandidatesCleared() bool {
	return m.clearedcandidates
}

// RemoveCandidateIDs removes the "candidates" edge to the Candidate entity by IDs.
func (m *ProjectMutation) RemoveCandidateIDs(ids ...string) {
	if m.removedcandidates == nil {
		m.removedcandidates = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.candidates, ids[i])
		m.removedcandidates[ids[i]] = struct{}{}
	}
}

// RemovedCandidates returns the removed IDs of the "candidates" edge to the Candidate entity.
func (m *ProjectMutation) RemovedCandidatesIDs() (ids []string) {
	for id := range m.removedcandidates {
		ids = append(ids, id)
	}
	return
}

// CandidatesIDs returns the "candidates" edge IDs in the mutation.
func (m *ProjectMutation) CandidatesIDs() (ids []string) {
	for id := range m.candidates {
		ids = append(ids, id)
	}
	return
}

// ResetCandidates resets all changes to the "candidates" edge.
func (m *ProjectMutation) ResetCandidates() {
	m.candidates = nil
	m.clearedcandidates = false
	m.removedcandidates = nil
}

// AddIssueIDs adds the "issues" edge to the Issue entity by ids.
func (m *ProjectMutation) AddIssueIDs(ids ...string) {
	if m.issues == nil {
		m.issues = make(map[string]struct{})
	}
	for i := range ids {
		m.issues[ids[i]] = struct{}{}
	}
}

// ClearIssues clears the "issues" edge to the Issue entity.
func (m *ProjectMutation) ClearIssues() {
	m.clearedissues = true
}

// IssuesCleared reports if the "issues" edge to the Issue entity was cleared.
func (m *ProjectMutation) IssuesCleared() bool {
	return m.clearedissues
}

// RemoveIssueIDs removes the "issues" edge to the Issue entity by IDs.
func (m *ProjectMutation) RemoveIssueIDs(ids ...string) {
	if m.removedissues == nil {
		m.removedissues = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.issues, ids[i])
		m.removedissues[ids[i]] = struct{}{}
	}
}

// RemovedIssues returns the removed IDs of the "issues" edge to the Issue entity.
func (m *ProjectMutation) RemovedIssuesIDs() (ids []string) {
	for id := range m.removedissues {
		ids = append(ids, id)
	}
	return
}

// IssuesIDs returns the "issues" edge IDs in the mutation.
func (m *ProjectMutation) IssuesIDs() (ids []string) {
	for id := range m.issues {
		ids = append(ids, id)
	}
	return
}

// ResetIssues resets all changes to the "issues" edge.
func (m *ProjectMutation) ResetIssues() {
	m.issues = nil
	m.clearedissues = false
	m.removedissues = nil
}

// AddSnapshotIDs adds the "snapshots" edge to the Snapshot entity by ids.
func (m *ProjectMutation) AddSnapshotIDs(ids ...string) {
	if m.snapshots == nil {
		m.snapshots = make(map[string]struct{})
	}
	for i := range ids {
		m.snapshots[ids[i]] = struct{}{}
	}
}

// ClearSnapshots clears the "snapshots" edge to the Snapshot entity.
func (m *ProjectMutation) ClearSnapshots() {
	m.clearedsnapshots = true
}

// SnapshotsCleared reports if the "snapshots" edge to the Snapshot entity was cleared.
func (m *ProjectMutation) SnapshotsCleared() bool {
	return m.clearedsnapshots
}

// RemoveSnapshotIDs removes the "snapshots" edge to the Snapshot entity by IDs.
func (m *ProjectMutation) RemoveSnapshotIDs(ids ...string) {
	if m.removedsnapshots == nil {
		m.removedsnapshots = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.snapshots, ids[i])
		m.removedsnapshots[ids[i]] = struct{}{}
	}
}

// RemovedSnapshots returns the removed IDs of the "snapshots" edge to the Snapshot entity.
func (m *ProjectMutation) RemovedSnapshotsIDs() (ids []string) {
	for id := range m.removedsnapshots {
		ids = append(ids, id)
	}
	return
}

// SnapshotsIDs returns the "snapshots" edge IDs in the mutation.
func (m *ProjectMutation) SnapshotsIDs() (ids []string) {
	for id := range m.snapshots {
		ids = append(ids, id)
	}
	return
}

// ResetSnapshots resets all changes to the "snapshots" edge.
func (m *ProjectMutation) ResetSnapshots() {
	m.snapshots = nil
	m.clearedsnapshots = false
	m.removedsnapshots = nil
}

// AddChatSessionIDs adds the "chat_sessions" edge to the ChatSession entity by ids.
func (m *ProjectMutation) AddChatSessionIDs(ids ...string) {
	if m.chat_sessions == nil {
		m.chat_sessions = make(map[string]struct{})
	}
	for i := range ids {
		m.chat_sessions[ids[i]] = struct{}{}
	}
}

// ClearChatSessions clears the "chat_sessions" edge to the ChatSession entity.
func (m *ProjectMutation) ClearChatSessions() {
	m.clearedchat_sessions = true
}

// ChatSessionsCleared reports if the "chat_sessions" edge to the ChatSession entity was cleared.
func (m *ProjectMutation) ChatSessionsCleared() bool {
	return m.clearedchat_sessions
}

// RemoveChatSessionIDs removes the "chat_sessions" edge to the ChatSession entity by IDs.
func (m *ProjectMutation) RemoveChatSessionIDs(ids ...string) {
	if m.removedchat_sessions == nil {
		m.removedchat_sessions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.chat_sessions, ids[i])
		m.removedchat_sessions[ids[i]] = struct{}{}
	}
}

// RemovedChatSessions returns the removed IDs of the "chat_sessions" edge to the ChatSession entity.
func (m *ProjectMutation) RemovedChatSessionsIDs() (ids []string) {
	for id := range m.removedchat_sessions {
		ids = append(ids, id)
	}
	return
}

// ChatSessionsIDs returns the "chat_sessions" edge IDs in the mutation.
func (m *ProjectMutation) ChatSessionsIDs() (ids []string) {
	for id := range m.chat_sessions {
		ids = append(ids, id)
	}
	return
}

// ResetChatSessions resets all changes to the "chat_sessions" edge.
func (m *ProjectMutation) ResetChatSessions() {
	m.chat_sessions = nil
	m.clearedchat_sessions = false
	m.removedchat_sessions = nil
}

// Where appends a list predicates to the ProjectMutation builder.
func (m *ProjectMutation) Where(ps ...predicate.Project) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProjectMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProjectMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Project, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProjectMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProjectMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Project).
func (m *ProjectMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProjectMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.name != nil {
		fields = append(fields, project.FieldName)
	}
	if m.description != nil {
		fields = append(fields, project.FieldDescription)
	}
	if m.ephemeral != nil {
		fields = append(fields, project.FieldEphemeral)
	}
	if m.created_at != nil {
		fields = append(fields, project.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, project.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProjectMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case project.FieldName:
		return m.Name()
	case project.FieldDescription:
		return m.Description()
	case project.FieldEphemeral:
		return m.Ephemeral()
	case project.FieldCreatedAt:
		return m.CreatedAt()
	case project.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProjectMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case project.FieldName:
		return m.OldName(ctx)
	case project.FieldDescription:
		return m.OldDescription(ctx)
	case project.FieldEphemeral:
		return m.OldEphemeral(ctx)
	case project.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case project.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Project field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProjectMutation) SetField(name string, value ent.Value) error {
	switch name {
	case project.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case project.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case project.FieldEphemeral:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEphemeral(v)
		return nil
	case project.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case project.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Project field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProjectMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProjectMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProjectMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Project numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProjectMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(project.FieldDescription) {
		fields = append(fields, project.FieldDescription)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProjectMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProjectMutation) ClearField(name string) error {
	switch name {
	case project.FieldDescription:
		m.ClearDescription()
		return nil
	}
	return fmt.Errorf("unknown Project nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProjectMutation) ResetField(name string) error {
	switch name {
	case project.FieldName:
		m.ResetName()
		return nil
	case project.FieldDescription:
		m.ResetDescription()
		return nil
	case project.FieldEphemeral:
		m.ResetEphemeral()
		return nil
	case project.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case project.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Project field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProjectMutation) AddedEdges() []string {
	edges := make([]string, 0, 7)
	if m.problem_spec != nil {
		edges = append(edges, project.EdgeProblemSpec)
	}
	if m.world_model != nil {
		edges = append(edges, project.EdgeWorldModel)
	}
	if m.runs != nil {
		edges = append(edges, project.EdgeRuns)
	}
	if m.candidates != nil {
		edges = append(edges, project.EdgeCandidates)
	}
	if m.issues != nil {
		edges = append(edges, project.EdgeIssues)
	}
	if m.snapshots != nil {
		edges = append(edges, project.EdgeSnapshots)
	}
	if m.chat_sessions != nil {
		edges = append(edges, project.EdgeChatSessions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProjectMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case project.EdgeProblemSpec:
		if id := m.problem_spec; id != nil {
			return []ent.Value{*id}
		}
	case project.EdgeWorldModel:
		if id := m.world_model; id != nil {
			return []ent.Value{*id}
		}
	case project.EdgeRuns:
		ids := make([]ent.Value, 0, len(m.runs))
		for id := range m.runs {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeCandidates:
		ids := make([]ent.Value, 0, len(m.candidates))
		for id := range m.candidates {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeIssues:
		ids := make([]ent.Value, 0, len(m.issues))
		for id := range m.issues {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeSnapshots:
		ids := make([]ent.Value, 0, len(m.snapshots))
		for id := range m.snapshots {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeChatSessions:
		ids := make([]ent.Value, 0, len(m.chat_sessions))
		for id := range m.chat_sessions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProjectMutation) RemovedEdges() []string {
	edges := make([]string, 0, 7)
	if m.removedruns != nil {
		edges = append(edges, project.EdgeRuns)
	}
	if m.removedcandidates != nil {
		edges = append(edges, project.EdgeCandidates)
	}
	if m.removedissues != nil {
		edges = append(edges, project.EdgeIssues)
	}
	if m.removedsnapshots != nil {
		edges = append(edges, project.EdgeSnapshots)
	}
	if m.removedchat_sessions != nil {
		edges = append(edges, project.EdgeChatSessions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProjectMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case project.EdgeRuns:
		ids := make([]ent.Value, 0, len(m.removedruns))
		for id := range m.removedruns {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeCandidates:
		ids := make([]ent.Value, 0, len(m.removedcandidates))
		for id := range m.removedcandidates {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeIssues:
		ids := make([]ent.Value, 0, len(m.removedissues))
		for id := range m.removedissues {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeSnapshots:
		ids := make([]ent.Value, 0, len(m.removedsnapshots))
		for id := range m.removedsnapshots {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeChatSessions:
		ids := make([]ent.Value, 0, len(m.removedchat_sessions))
		for id := range m.removedchat_sessions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProjectMutation) ClearedEdges() []string {
	edges := make([]string, 0, 7)
	if m.clearedproblem_spec {
		edges = append(edges, project.EdgeProblemSpec)
	}
	if m.clearedworld_model {
		edges = append(edges, project.EdgeWorldModel)
	}
	if m.clearedruns {
		edges = append(edges, project.EdgeRuns)
	}
	if m.clearedcandidates {
		edges = append(edges, project.EdgeCandidates)
	}
	if m.clearedissues {
		edges = append(edges, project.EdgeIssues)
	}
	if m.clearedsnapshots {
		edges = append(edges, project.EdgeSnapshots)
	}
	if m.clearedchat_sessions {
		edges = append(edges, project.EdgeChatSessions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProjectMutation) EdgeCleared(name string) bool {
	switch name {
	case project.EdgeProblemSpec:
		return m.clearedproblem_spec
	case project.EdgeWorldModel:
		return m.clearedworld_model
	case project.EdgeRuns:
		return m.clearedruns
	case project.EdgeCandidates:
		return m.clearedcandidates
	case project.EdgeIssues:
		return m.clearedissues
	case project.EdgeSnapshots:
		return m.clearedsnapshots
	case project.EdgeChatSessions:
		return m.clearedchat_sessions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProjectMutation) ClearEdge(name string) error {
	switch name {
	case project.EdgeProblemSpec:
		m.ClearProblemSpec()
		return nil
	case project.EdgeWorldModel:
		m.ClearWorldModel()
		return nil
	}
	return fmt.Errorf("unknown Project unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProjectMutation) ResetEdge(name string) error {
	switch name {
	case project.EdgeProblemSpec:
		m.ResetProblemSpec()
		return nil
	case project.EdgeWorldModel:
		m.ResetWorldModel()
		return nil
	case project.EdgeRuns:
		m.ResetRuns()
		return nil
	case project.EdgeCandidates:
		m.ResetCandidates()
		return nil
	case project.EdgeIssues:
		m.ResetIssues()
		return nil
	case project.EdgeSnapshots:
		m.ResetSnapshots()
		return nil
	case project.EdgeChatSessions:
		m.ResetChatSessions()
		return nil
	}
	return fmt.Errorf("unknown Project edge %s", name)
}

// RunMutation represents an operation that mutates the Run nodes in the graph.
type RunMutation struct {
	config
	op                     Op
	typ                    string
	id                     *string
	_config                *models.RunConfig
	status                 *run.Status
	metrics                **models.RunMetrics
	llm_usage              **models.AggregatedUsage
	error_summary          *string
	created_at             *time.Time
	started_at             *time.Time
	completed_at           *time.Time
	chat_session_id        *string
	ui_trigger_id          *string
	ui_trigger_source      *string
	ui_trigger_metadata    *map[string]interface{}
	ui_trigger_at          *time.Time
	run_summary_message_id *string
	recommended_config     **models.RunConfig
	queued_at              *time.Time
	claimed_by             *string
	last_heartbeat_at      *time.Time
	clearedFields          map[string]struct{}
	project                *string
	clearedproject         bool
	scenario_suite         *string
	clearedscenario_suite  bool
	evaluations            map[string]struct{}
	removedevaluations     map[string]struct{}
	clearedevaluations     bool
	done                   bool
	oldValue               func(context.Context) (*Run, error)
	predicates             []predicate.Run
}

var _ ent.Mutation = (*RunMutation)(nil)

// runOption allows management of the mutation configuration using functional options.
type runOption func(*RunMutation)

// newRunMutation creates new mutation for the Run entity.
func newRunMutation(c config, op Op, opts ...runOption) *RunMutation {
	m := &RunMutation{
		config:        c,
		op:            op,
		typ:           TypeRun,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRunID sets the ID field of the mutation.
func withRunID(id string) runOption {
	return func(m *RunMutation) {
		var (
			err   error
			once  sync.Once
			value *Run
		)
		m.oldValue = func(ctx context.Context) (*Run, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Run.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRun sets the old Run of the mutation.
func withRun(node *Run) runOption {
	return func(m *RunMutation) {
		m.oldValue = func(context.Context) (*Run, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RunMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RunMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Run entities.
func (m *RunMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RunMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RunMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Run.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProjectID sets the "project_id" field.
func (m *RunMutation) SetProjectID(s string) {
	m.project = &s
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *RunMutation) ProjectID() (r string, exists bool) {
	v := m.project
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldProjectID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *RunMutation) ResetProjectID() {
	m.project = nil
}

// SetConfig sets the "config" field.
func (m *RunMutation) SetConfig(mc models.RunConfig) {
	m._config = &mc
}

// Config returns the value of the "config" field in the mutation.
func (m *RunMutation) Config() (r models.RunConfig, exists bool) {
	v := m._config
	if v == nil {
		return
	}
	return *v, true
}

// OldConfig returns the old "config" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldConfig(ctx context.Context) (v models.RunConfig, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfig is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfig requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfig: %w", err)
	}
	return oldValue.Config, nil
}

// ResetConfig resets all changes to the "config" field.
func (m *RunMutation) ResetConfig() {
	m._config = nil
}

// SetStatus sets the "status" field.
func (m *RunMutation) SetStatus(r run.Status) {
	m.status = &r
}

// Status returns the value of the "status" field in the mutation.
func (m *RunMutation) Status() (r run.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldStatus(ctx context.Context) (v run.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *RunMutation) ResetStatus() {
	m.status = nil
}

// SetMetrics sets the "metrics" field.
func (m *RunMutation) SetMetrics(mm *models.RunMetrics) {
	m.metrics = &mm
}

// Metrics returns the value of the "metrics" field in the mutation.
func (m *RunMutation) Metrics() (r *models.RunMetrics, exists bool) {
	v := m.metrics
	if v == nil {
		return
	}
	return *v, true
}

// OldMetrics returns the old "metrics" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldMetrics(ctx context.Context) (v *models.RunMetrics, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetrics is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetrics requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetrics: %w", err)
	}
	return oldValue.Metrics, nil
}

// ClearMetrics clears the value of the "metrics" field.
func (m *RunMutation) ClearMetrics() {
	m.metrics = nil
	m.clearedFields[run.FieldMetrics] = struct{}{}
}

// MetricsCleared returns if the "metrics" field was cleared in this mutation.
func (m *RunMutation) MetricsCleared() bool {
	_, ok := m.clearedFields[run.FieldMetrics]
	return ok
}

// ResetMetrics resets all changes to the "metrics" field.
func (m *RunMutation) ResetMetrics() {
	m.metrics = nil
	delete(m.clearedFields, run.FieldMetrics)
}

// SetLlmUsage sets the "llm_usage" field.
func (m *RunMutation) SetLlmUsage(mu *models.AggregatedUsage) {
	m.llm_usage = &mu
}

// LlmUsage returns the value of the "llm_usage" field in the mutation.
func (m *RunMutation) LlmUsage() (r *models.AggregatedUsage, exists bool) {
	v := m.llm_usage
	if v == nil {
		return
	}
	return *v, true
}

// OldLlmUsage returns the old "llm_usage" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldLlmUsage(ctx context.Context) (v *models.AggregatedUsage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLlmUsage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLlmUsage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLlmUsage: %w", err)
	}
	return oldValue.LlmUsage, nil
}

// ClearLlmUsage clears the value of the "llm_usage" field.
func (m *RunMutation) ClearLlmUsage() {
	m.llm_usage = nil
	m.clearedFields[run.FieldLlmUsage] = struct{}{}
}

// LlmUsageCleared returns if the "llm_usage" field was cleared in this mutation.
func (m *RunMutation) LlmUsageCleared() bool {
	_, ok := m.clearedFields[run.FieldLlmUsage]
	return ok
}

// ResetLlmUsage resets all changes to the "llm_usage" field.
func (m *RunMutation) ResetLlmUsage() {
	m.llm_usage = nil
	delete(m.clearedFields, run.FieldLlmUsage)
}

// SetErrorSummary sets the "error_summary" field.
func (m *RunMutation) SetErrorSummary(s string) {
	m.error_summary = &s
}

// ErrorSummary returns the value of the "error_summary" field in the mutation.
func (m *RunMutation) ErrorSummary() (r string, exists bool) {
	v := m.error_summary
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorSummary returns the old "error_summary" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldErrorSummary(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorSummary: %w", err)
	}
	return oldValue.ErrorSummary, nil
}

// ClearErrorSummary clears the value of the "error_summary" field.
func (m *RunMutation) ClearErrorSummary() {
	m.error_summary = nil
	m.clearedFields[run.FieldErrorSummary] = struct{}{}
}

// ErrorSummaryCleared returns if the "error_summary" field was cleared in this mutation.
func (m *RunMutation) ErrorSummaryCleared() bool {
	_, ok := m.clearedFields[run.FieldErrorSummary]
	return ok
}

// ResetErrorSummary resets all changes to the "error_summary" field.
func (m *RunMutation) ResetErrorSummary() {
	m.error_summary = nil
	delete(m.clearedFields, run.FieldErrorSummary)
}

// SetCreatedAt sets the "created_at" field.
func (m *RunMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RunMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *RunMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *RunMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *RunMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *RunMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[run.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *RunMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[run.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *RunMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, run.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *RunMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *RunMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *RunMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[run.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *RunMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[run.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *RunMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, run.FieldCompletedAt)
}

// SetChatSessionID sets the "chat_session_id" field.
func (m *RunMutation) SetChatSessionID(s string) {
	m.chat_session_id = &s
}

// ChatSessionID returns the value of the "chat_session_id" field in the mutation.
func (m *RunMutation) ChatSessionID() (r string, exists bool) {
	v := m.chat_session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldChatSessionID returns the old "chat_session_id" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldChatSessionID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChatSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChatSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChatSessionID: %w", err)
	}
	return oldValue.ChatSessionID, nil
}

// ClearChatSessionID clears the value of the "chat_session_id" field.
func (m *RunMutation) ClearChatSessionID() {
	m.chat_session_id = nil
	m.clearedFields[run.FieldChatSessionID] = struct{}{}
}

// ChatSessionIDCleared returns if the "chat_session_id" field was cleared in this mutation.
func (m *RunMutation) ChatSessionIDCleared() bool {
	_, ok := m.clearedFields[run.FieldChatSessionID]
	return ok
}

// ResetChatSessionID resets all changes to the "chat_session_id" field.
func (m *RunMutation) ResetChatSessionID() {
	m.chat_session_id = nil
	delete(m.clearedFields, run.FieldChatSessionID)
}

// SetUITriggerID sets the "ui_trigger_id" field.
func (m *RunMutation) SetUITriggerID(s string) {
	m.ui_trigger_id = &s
}

// UITriggerID returns the value of the "ui_trigger_id" field in the mutation.
func (m *RunMutation) UITriggerID() (r string, exists bool) {
	v := m.ui_trigger_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUITriggerID returns the old "ui_trigger_id" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldUITriggerID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUITriggerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUITriggerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUITriggerID: %w", err)
	}
	return oldValue.UITriggerID, nil
}

// ClearUITriggerID clears the value of the "ui_trigger_id" field.
func (m *RunMutation) ClearUITriggerID() {
	m.ui_trigger_id = nil
	m.clearedFields[run.FieldUITriggerID] = struct{}{}
}

// UITriggerIDCleared returns if the "ui_trigger_id" field was cleared in this mutation.
func (m *RunMutation) UITriggerIDCleared() bool {
	_, ok := m.clearedFields[run.FieldUITriggerID]
	return ok
}

// ResetUITriggerID resets all changes to the "ui_trigger_id" field.
func (m *RunMutation) ResetUITriggerID() {
	m.ui_trigger_id = nil
	delete(m.clearedFields, run.FieldUITriggerID)
}

// SetUITriggerSource sets the "ui_trigger_source" field.
func (m *RunMutation) SetUITriggerSource(s string) {
	m.ui_trigger_source = &s
}

// UITriggerSource returns the value of the "ui_trigger_source" field in the mutation.
func (m *RunMutation) UITriggerSource() (r string, exists bool) {
	v := m.ui_trigger_source
	if v == nil {
		return
	}
	return *v, true
}

// OldUITriggerSource returns the old "ui_trigger_source" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldUITriggerSource(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUITriggerSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUITriggerSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUITriggerSource: %w", err)
	}
	return oldValue.UITriggerSource, nil
}

// ClearUITriggerSource clears the value of the "ui_trigger_source" field.
func (m *RunMutation) ClearUITriggerSource() {
	m.ui_trigger_source = nil
	m.clearedFields[run.FieldUITriggerSource] = struct{}{}
}

// UITriggerSourceCleared returns if the "ui_trigger_source" field was cleared in this mutation.
func (m *RunMutation) UITriggerSourceCleared() bool {
	_, ok := m.clearedFields[run.FieldUITriggerSource]
	return ok
}

// ResetUITriggerSource resets all changes to the "ui_trigger_source" field.
func (m *RunMutation) ResetUITriggerSource() {
	m.ui_trigger_source = nil
	delete(m.clearedFields, run.FieldUITriggerSource)
}

// SetUITriggerMetadata sets the "ui_trigger_metadata" field.
func (m *RunMutation) SetUITriggerMetadata(value map[string]interface{}) {
	m.ui_trigger_metadata = &value
}

// UITriggerMetadata returns the value of the "ui_trigger_metadata" field in the mutation.
func (m *RunMutation) UITriggerMetadata() (r map[string]interface{}, exists bool) {
	v := m.ui_trigger_metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldUITriggerMetadata returns the old "ui_trigger_metadata" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldUITriggerMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUITriggerMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUITriggerMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUITriggerMetadata: %w", err)
	}
	return oldValue.UITriggerMetadata, nil
}

// ClearUITriggerMetadata clears the value of the "ui_trigger_metadata" field.
func (m *RunMutation) ClearUITriggerMetadata() {
	m.ui_trigger_metadata = nil
	m.clearedFields[run.FieldUITriggerMetadata] = struct{}{}
}

// UITriggerMetadataCleared returns if the "ui_trigger_metadata" field was cleared in this mutation.
func (m *RunMutation) UITriggerMetadataCleared() bool {
	_, ok := m.clearedFields[run.FieldUITriggerMetadata]
	return ok
}

// ResetUITriggerMetadata resets all changes to the "ui_trigger_metadata" field.
func (m *RunMutation) ResetUITriggerMetadata() {
	m.ui_trigger_metadata = nil
	delete(m.clearedFields, run.FieldUITriggerMetadata)
}

// SetUITriggerAt sets the "ui_trigger_at" field.
func (m *RunMutation) SetUITriggerAt(t time.Time) {
	m.ui_trigger_at = &t
}

// UITriggerAt returns the value of the "ui_trigger_at" field in the mutation.
func (m *RunMutation) UITriggerAt() (r time.Time, exists bool) {
	v := m.ui_trigger_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUITriggerAt returns the old "ui_trigger_at" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldUITriggerAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUITriggerAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUITriggerAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUITriggerAt: %w", err)
	}
	return oldValue.UITriggerAt, nil
}

// ClearUITriggerAt clears the value of the "ui_trigger_at" field.
func (m *RunMutation) ClearUITriggerAt() {
	m.ui_trigger_at = nil
	m.clearedFields[run.FieldUITriggerAt] = struct{}{}
}

// UITriggerAtCleared returns if the "ui_trigger_at" field was cleared in this mutation.
func (m *RunMutation) UITriggerAtCleared() bool {
	_, ok := m.clearedFields[run.FieldUITriggerAt]
	return ok
}

// ResetUITriggerAt resets all changes to the "ui_trigger_at" field.
func (m *RunMutation) ResetUITriggerAt() {
	m.ui_trigger_at = nil
	delete(m.clearedFields, run.FieldUITriggerAt)
}

// SetRunSummaryMessageID sets the "run_summary_message_id" field.
func (m *RunMutation) SetRunSummaryMessageID(s string) {
	m.run_summary_message_id = &s
}

// RunSummaryMessageID returns the value of the "run_summary_message_id" field in the mutation.
func (m *RunMutation) RunSummaryMessageID() (r string, exists bool) {
	v := m.run_summary_message_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRunSummaryMessageID returns the old "run_summary_message_id" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldRunSummaryMessageID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunSummaryMessageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunSummaryMessageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunSummaryMessageID: %w", err)
	}
	return oldValue.RunSummaryMessageID, nil
}

// ClearRunSummaryMessageID clears the value of the "run_summary_message_id" field.
func (m *RunMutation) ClearRunSummaryMessageID() {
	m.run_summary_message_id = nil
	m.clearedFields[run.FieldRunSummaryMessageID] = struct{}{}
}

// RunSummaryMessageIDCleared returns if the "run_summary_message_id" field was cleared in this mutation.
func (m *RunMutation) RunSummaryMessageIDCleared() bool {
	_, ok := m.clearedFields[run.FieldRunSummaryMessageID]
	return ok
}

// ResetRunSummaryMessageID resets all changes to the "run_summary_message_id" field.
func (m *RunMutation) ResetRunSummaryMessageID() {
	m.run_summary_message_id = nil
	delete(m.clearedFields, run.FieldRunSummaryMessageID)
}

// SetRecommendedConfig sets the "recommended_config" field.
func (m *RunMutation) SetRecommendedConfig(mc *models.RunConfig) {
	m.recommended_config = &mc
}

// RecommendedConfig returns the value of the "recommended_config" field in the mutation.
func (m *RunMutation) RecommendedConfig() (r *models.RunConfig, exists bool) {
	v := m.recommended_config
	if v == nil {
		return
	}
	return *v, true
}

// OldRecommendedConfig returns the old "recommended_config" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldRecommendedConfig(ctx context.Context) (v *models.RunConfig, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecommendedConfig is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecommendedConfig requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecommendedConfig: %w", err)
	}
	return oldValue.RecommendedConfig, nil
}

// ClearRecommendedConfig clears the value of the "recommended_config" field.
func (m *RunMutation) ClearRecommendedConfig() {
	m.recommended_config = nil
	m.clearedFields[run.FieldRecommendedConfig] = struct{}{}
}

// RecommendedConfigCleared returns if the "recommended_config" field was cleared in this mutation.
func (m *RunMutation) RecommendedConfigCleared() bool {
	_, ok := m.clearedFields[run.FieldRecommendedConfig]
	return ok
}

// ResetRecommendedConfig resets all changes to the "recommended_config" field.
func (m *RunMutation) ResetRecommendedConfig() {
	m.recommended_config = nil
	delete(m.clearedFields, run.FieldRecommendedConfig)
}

// SetQueuedAt sets the "queued_at" field.
func (m *RunMutation) SetQueuedAt(t time.Time) {
	m.queued_at = &t
}

// QueuedAt returns the value of the "queued_at" field in the mutation.
func (m *RunMutation) QueuedAt() (r time.Time, exists bool) {
	v := m.queued_at
	if v == nil {
		return
	}
	return *v, true
}

// OldQueuedAt returns the old "queued_at" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldQueuedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQueuedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQueuedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQueuedAt: %w", err)
	}
	return oldValue.QueuedAt, nil
}

// ClearQueuedAt clears the value of the "queued_at" field.
func (m *RunMutation) ClearQueuedAt() {
	m.queued_at = nil
	m.clearedFields[run.FieldQueuedAt] = struct{}{}
}

// QueuedAtCleared returns if the "queued_at" field was cleared in this mutation.
func (m *RunMutation) QueuedAtCleared() bool {
	_, ok := m.clearedFields[run.FieldQueuedAt]
	return ok
}

// ResetQueuedAt resets all changes to the "queued_at" field.
func (m *RunMutation) ResetQueuedAt() {
	m.queued_at = nil
	delete(m.clearedFields, run.FieldQueuedAt)
}

// SetClaimedBy sets the "claimed_by" field.
func (m *RunMutation) SetClaimedBy(s string) {
	m.claimed_by = &s
}

// ClaimedBy returns the value of the "claimed_by" field in the mutation.
func (m *RunMutation) ClaimedBy() (r string, exists bool) {
	v := m.claimed_by
	if v == nil {
		return
	}
	return *v, true
}

// OldClaimedBy returns the old "claimed_by" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldClaimedBy(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClaimedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClaimedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClaimedBy: %w", err)
	}
	return oldValue.ClaimedBy, nil
}

// ClearClaimedBy clears the value of the "claimed_by" field.
func (m *RunMutation) ClearClaimedBy() {
	m.claimed_by = nil
	m.clearedFields[run.FieldClaimedBy] = struct{}{}
}

// ClaimedByCleared returns if the "claimed_by" field was cleared in this mutation.
func (m *RunMutation) ClaimedByCleared() bool {
	_, ok := m.clearedFields[run.FieldClaimedBy]
	return ok
}

// ResetClaimedBy resets all changes to the "claimed_by" field.
func (m *RunMutation) ResetClaimedBy() {
	m.claimed_by = nil
	delete(m.clearedFields, run.FieldClaimedBy)
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (m *RunMutation) SetLastHeartbeatAt(t time.Time) {
	m.last_heartbeat_at = &t
}

// LastHeartbeatAt returns the value of the "last_heartbeat_at" field in the mutation.
func (m *RunMutation) LastHeartbeatAt() (r time.Time, exists bool) {
	v := m.last_heartbeat_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastHeartbeatAt returns the old "last_heartbeat_at" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldLastHeartbeatAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastHeartbeatAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastHeartbeatAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastHeartbeatAt: %w", err)
	}
	return oldValue.LastHeartbeatAt, nil
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (m *RunMutation) ClearLastHeartbeatAt() {
	m.last_heartbeat_at = nil
	m.clearedFields[run.FieldLastHeartbeatAt] = struct{}{}
}

// LastHeartbeatAtCleared returns if the "last_heartbeat_at" field was cleared in this mutation.
func (m *RunMutation) LastHeartbeatAtCleared() bool {
	_, ok := m.clearedFields[run.FieldLastHeartbeatAt]
	return ok
}

// ResetLastHeartbeatAt resets all changes to the "last_heartbeat_at" field.
func (m *RunMutation) ResetLastHeartbeatAt() {
	m.last_heartbeat_at = nil
	delete(m.clearedFields, run.FieldLastHeartbeatAt)
}

// ClearProject clears the "project" edge to the Project entity.
func (m *RunMutation) ClearProject() {
	m.clearedproject = true
	m.clearedFields[run.FieldProjectID] = struct{}{}
}

// ProjectCleared reports if the "project" edge to the Project entity was cleared.
func (m *RunMutation) ProjectCleared() bool {
	return m.clearedproject
}

// ProjectIDs returns the "project" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProjectID instead. It exists only for internal usage by the builders.
func (m *RunMutation) ProjectIDs() (ids []string) {
	if id := m.project; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProject resets all changes to the "project" edge.
func (m *RunMutation) ResetProject() {
	m.project = nil
	m.clearedproject = false
}

// SetScenarioSuiteID sets the "scenario_suite" edge to the ScenarioSuite entity by id.
func (m *RunMutation) SetScenarioSuiteID(id string) {
	m.scenario_suite = &id
}

// ClearScenarioSuite clears the "scenario_suite" edge to the ScenarioSuite entity.
func (m *RunMutation) ClearScenarioSuite() {
	m.clearedscenario_suite = true
}

// ScenarioSuiteCleared reports if the "scenario_suite" edge to the ScenarioSuite entity was cleared.
func (m *RunMutation) ScenarioSuiteCleared() bool {
	return m.clearedscenario_suite
}

// ScenarioSuiteID returns the "scenario_suite" edge ID in the mutation.
func (m *RunMutation) ScenarioSuiteID() (id string, exists bool) {
	if m.scenario_suite != nil {
		return *m.scenario_suite, true
	}
	return
}

// ScenarioSuiteIDs returns the "scenario_suite" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ScenarioSuiteID instead. It exists only for internal usage by the builders.
func (m *RunMutation) ScenarioSuiteIDs() (ids []string) {
	if id := m.scenario_suite; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetScenarioSuite resets all changes to the "scenario_suite" edge.
func (m *RunMutation) ResetScenarioSuite() {
	m.scenario_suite = nil
	m.clearedscenario_suite = false
}

// AddEvaluationIDs adds the "evaluations" edge to the Evaluation entity by ids.
func (m *RunMutation) AddEvaluationIDs(ids ...string) {
	if m.evaluations == nil {
		m.evaluations = make(map[string]struct{})
	}
	for i := range ids {
		m.evaluations[ids[i]] = struct{}{}
	}
}

// ClearEvaluations clears the "evaluations" edge to the Evaluation entity.
func (m *RunMutation) ClearEvaluations() {
	m.clearedevaluations = true
}

// EvaluationsCleared reports if the "evaluations" edge to the Evaluation entity was cleared.
func (m *RunMutation) EvaluationsCleared() bool {
	return m.clearedevaluations
}

// RemoveEvaluationIDs removes the "evaluations" edge to the Evaluation entity by IDs.
func (m *RunMutation) RemoveEvaluationIDs(ids ...string) {
	if m.removedevaluations == nil {
		m.removedevaluations = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.evaluations, ids[i])
		m.removedevaluations[ids[i]] = struct{}{}
	}
}

// RemovedEvaluations returns the removed IDs of the "evaluations" edge to the Evaluation entity.
func (m *RunMutation) RemovedEvaluationsIDs() (ids []string) {
	for id := range m.removedevaluations {
		ids = append(ids, id)
	}
	return
}

// EvaluationsIDs returns the "evaluations" edge IDs in the mutation.
func (m *RunMutation) EvaluationsIDs() (ids []string) {
	for id := range m.evaluations {
		ids = append(ids, id)
	}
	return
}

// ResetEvaluations resets all changes to the "evaluations" edge.
func (m *RunMutation) ResetEvaluations() {
	m.evaluations = nil
	m.clearedevaluations = false
	m.removedevaluations = nil
}

// Where appends a list predicates to the RunMutation builder.
func (m *RunMutation) Where(ps ...predicate.Run) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RunMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RunMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Run, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RunMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RunMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Run).
func (m *RunMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RunMutation) Fields() []string {
	fields := make([]string, 0, 19)
	if m.project != nil {
		fields = append(fields, run.FieldProjectID)
	}
	if m._config != nil {
		fields = append(fields, run.FieldConfig)
	}
	if m.status != nil {
		fields = append(fields, run.FieldStatus)
	}
	if m.metrics != nil {
		fields = append(fields, run.FieldMetrics)
	}
	if m.llm_usage != nil {
		fields = append(fields, run.FieldLlmUsage)
	}
	if m.error_summary != nil {
		fields = append(fields, run.FieldErrorSummary)
	}
	if m.created_at != nil {
		fields = append(fields, run.FieldCreatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, run.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, run.FieldCompletedAt)
	}
	if m.chat_session_id != nil {
		fields = append(fields, run.FieldChatSessionID)
	}
	if m.ui_trigger_id != nil {
		fields = append(fields, run.FieldUITriggerID)
	}
	if m.ui_trigger_source != nil {
		fields = append(fields, run.FieldUITriggerSource)
	}
	if m.ui_trigger_metadata != nil {
		fields = append(fields, run.FieldUITriggerMetadata)
	}
	if m.ui_trigger_at != nil {
		fields = append(fields, run.FieldUITriggerAt)
	}
	if m.run_summary_message_id != nil {
		fields = append(fields, run.FieldRunSummaryMessageID)
	}
	if m.recommended_config != nil {
		fields = append(fields, run.FieldRecommendedConfig)
	}
	if m.queued_at != nil {
		fields = append(fields, run.FieldQueuedAt)
	}
	if m.claimed_by != nil {
		fields = append(fields, run.FieldClaimedBy)
	}
	if m.last_heartbeat_at != nil {
		fields = append(fields, run.FieldLastHeartbeatAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RunMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case run.FieldProjectID:
		return m.ProjectID()
	case run.FieldConfig:
		return m.Config()
	case run.FieldStatus:
		return m.Status()
	case run.FieldMetrics:
		return m.Metrics()
	case run.FieldLlmUsage:
		return m.LlmUsage()
	case run.FieldErrorSummary:
		return m.ErrorSummary()
	case run.FieldCreatedAt:
		return m.CreatedAt()
	case run.FieldStartedAt:
		return m.StartedAt()
	case run.FieldCompletedAt:
		return m.CompletedAt()
	case run.FieldChatSessionID:
		return m.ChatSessionID()
	case run.FieldUITriggerID:
		return m.UITriggerID()
	case run.FieldUITriggerSource:
		return m.UITriggerSource()
	case run.FieldUITriggerMetadata:
		return m.UITriggerMetadata()
	case run.FieldUITriggerAt:
		return m.UITriggerAt()
	case run.FieldRunSummaryMessageID:
		return m.RunSummaryMessageID()
	case run.FieldRecommendedConfig:
		return m.RecommendedConfig()
	case run.FieldQueuedAt:
		return m.QueuedAt()
	case run.FieldClaimedBy:
		return m.ClaimedBy()
	case run.FieldLastHeartbeatAt:
		return m.LastHeartbeatAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RunMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case run.FieldProjectID:
		return m.OldProjectID(ctx)
	case run.FieldConfig:
		return m.OldConfig(ctx)
	case run.FieldStatus:
		return m.OldStatus(ctx)
	case run.FieldMetrics:
		return m.OldMetrics(ctx)
	case run.FieldLlmUsage:
		return m.OldLlmUsage(ctx)
	case run.FieldErrorSummary:
		return m.OldErrorSummary(ctx)
	case run.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case run.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case run.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case run.FieldChatSessionID:
		return m.OldChatSessionID(ctx)
	case run.FieldUITriggerID:
		return m.OldUITriggerID(ctx)
	case run.FieldUITriggerSource:
		return m.OldUITriggerSource(ctx)
	case run.FieldUITriggerMetadata:
		return m.OldUITriggerMetadata(ctx)
	case run.FieldUITriggerAt:
		return m.OldUITriggerAt(ctx)
	case run.FieldRunSummaryMessageID:
		return m.OldRunSummaryMessageID(ctx)
	case run.FieldRecommendedConfig:
		return m.OldRecommendedConfig(ctx)
	case run.FieldQueuedAt:
		return m.OldQueuedAt(ctx)
	case run.FieldClaimedBy:
		return m.OldClaimedBy(ctx)
	case run.FieldLastHeartbeatAt:
		return m.OldLastHeartbeatAt(ctx)
	}
	return nil, fmt.Errorf("unknown Run field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RunMutation) SetField(name string, value ent.Value) error {
	switch name {
	case run.FieldProjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case run.FieldConfig:
		v, ok := value.(models.RunConfig)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfig(v)
		return nil
	case run.FieldStatus:
		v, ok := value.(run.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case run.FieldMetrics:
		v, ok := value.(*models.RunMetrics)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetrics(v)
		return nil
	case run.FieldLlmUsage:
		v, ok := value.(*models.AggregatedUsage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLlmUsage(v)
		return nil
	case run.FieldErrorSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorSummary(v)
		return nil
	case run.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case run.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case run.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case run.FieldChatSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChatSessionID(v)
		return nil
	case run.FieldUITriggerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUITriggerID(v)
		return nil
	case run.FieldUITriggerSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUITriggerSource(v)
		return nil
	case run.FieldUITriggerMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUITriggerMetadata(v)
		return nil
	case run.FieldUITriggerAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUITriggerAt(v)
		return nil
	case run.FieldRunSummaryMessageID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunSummaryMessageID(v)
		return nil
	case run.FieldRecommendedConfig:
		v, ok := value.(*models.RunConfig)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecommendedConfig(v)
		return nil
	case run.FieldQueuedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQueuedAt(v)
		return nil
	case run.FieldClaimedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClaimedBy(v)
		return nil
	case run.FieldLastHeartbeatAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastHeartbeatAt(v)
		return nil
	}
	return fmt.Errorf("unknown Run field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RunMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RunMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RunMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Run numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RunMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(run.FieldMetrics) {
		fields = append(fields, run.FieldMetrics)
	}
	if m.FieldCleared(run.FieldLlmUsage) {
		fields = append(fields, run.FieldLlmUsage)
	}
	if m.FieldCleared(run.FieldErrorSummary) {
		fields = append(fields, run.FieldErrorSummary)
	}
	if m.FieldCleared(run.FieldStartedAt) {
		fields = append(fields, run.FieldStartedAt)
	}
	if m.FieldCleared(run.FieldCompletedAt) {
		fields = append(fields, run.FieldCompletedAt)
	}
	if m.FieldCleared(run.FieldChatSessionID) {
		fields = append(fields, run.FieldChatSessionID)
	}
	if m.FieldCleared(run.FieldUITriggerID) {
		fields = append(fields, run.FieldUITriggerID)
	}
	if m.FieldCleared(run.FieldUITriggerSource) {
		fields = append(fields, run.FieldUITriggerSource)
	}
	if m.FieldCleared(run.FieldUITriggerMetadata) {
		fields = append(fields, run.FieldUITriggerMetadata)
	}
	if m.FieldCleared(run.FieldUITriggerAt) {
		fields = append(fields, run.FieldUITriggerAt)
	}
	if m.FieldCleared(run.FieldRunSummaryMessageID) {
		fields = append(fields, run.FieldRunSummaryMessageID)
	}
	if m.FieldCleared(run.FieldRecommendedConfig) {
		fields = append(fields, run.FieldRecommendedConfig)
	}
	if m.FieldCleared(run.FieldQueuedAt) {
		fields = append(fields, run.FieldQueuedAt)
	}
	if m.FieldCleared(run.FieldClaimedBy) {
		fields = append(fields, run.FieldClaimedBy)
	}
	if m.FieldCleared(run.FieldLastHeartbeatAt) {
		fields = append(fields, run.FieldLastHeartbeatAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RunMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RunMutation) ClearField(name string) error {
	switch name {
	case run.FieldMetrics:
		m.ClearMetrics()
		return nil
	case run.FieldLlmUsage:
		m.ClearLlmUsage()
		return nil
	case run.FieldErrorSummary:
		m.ClearErrorSummary()
		return nil
	case run.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case run.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case run.FieldChatSessionID:
		m.ClearChatSessionID()
		return nil
	case run.FieldUITriggerID:
		m.ClearUITriggerID()
		return nil
	case run.FieldUITriggerSource:
		m.ClearUITriggerSource()
		return nil
	case run.FieldUITriggerMetadata:
		m.ClearUITriggerMetadata()
		return nil
	case run.FieldUITriggerAt:
		m.ClearUITriggerAt()
		return nil
	case run.FieldRunSummaryMessageID:
		m.ClearRunSummaryMessageID()
		return nil
	case run.FieldRecommendedConfig:
		m.ClearRecommendedConfig()
		return nil
	case run.FieldQueuedAt:
		m.ClearQueuedAt()
		return nil
	case run.FieldClaimedBy:
		m.ClearClaimedBy()
		return nil
	case run.FieldLastHeartbeatAt:
		m.ClearLastHeartbeatAt()
		return nil
	}
	return fmt.Errorf("unknown Run nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RunMutation) ResetField(name string) error {
	switch name {
	case run.FieldProjectID:
		m.ResetProjectID()
		return nil
	case run.FieldConfig:
		m.ResetConfig()
		return nil
	case run.FieldStatus:
		m.ResetStatus()
		return nil
	case run.FieldMetrics:
		m.ResetMetrics()
		return nil
	case run.FieldLlmUsage:
		m.ResetLlmUsage()
		return nil
	case run.FieldErrorSummary:
		m.ResetErrorSummary()
		return nil
	case run.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case run.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case run.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case run.FieldChatSessionID:
		m.ResetChatSessionID()
		return nil
	case run.FieldUITriggerID:
		m.ResetUITriggerID()
		return nil
	case run.FieldUITriggerSource:
		m.ResetUITriggerSource()
		return nil
	case run.FieldUITriggerMetadata:
		m.ResetUITriggerMetadata()
		return nil
	case run.FieldUITriggerAt:
		m.ResetUITriggerAt()
		return nil
	case run.FieldRunSummaryMessageID:
		m.ResetRunSummaryMessageID()
		return nil
	case run.FieldRecommendedConfig:
		m.ResetRecommendedConfig()
		return nil
	case run.FieldQueuedAt:
		m.ResetQueuedAt()
		return nil
	case run.FieldClaimedBy:
		m.ResetClaimedBy()
		return nil
	case run.FieldLastHeartbeatAt:
		m.ResetLastHeartbeatAt()
		return nil
	}
	return fmt.Errorf("unknown Run field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RunMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.project != nil {
		edges = append(edges, run.EdgeProject)
	}
	if m.scenario_suite != nil {
		edges = append(edges, run.EdgeScenarioSuite)
	}
	if m.evaluations != nil {
		edges = append(edges, run.EdgeEvaluations)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RunMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case run.EdgeProject:
		if id := m.project; id != nil {
			return []ent.Value{*id}
		}
	case run.EdgeScenarioSuite:
		if id := m.scenario_suite; id != nil {
			return []ent.Value{*id}
		}
	case run.EdgeEvaluations:
		ids := make([]ent.Value, 0, len(m.evaluations))
		for id := range m.evaluations {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RunMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedevaluations != nil {
		edges = append(edges, run.EdgeEvaluations)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RunMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case run.EdgeEvaluations:
		ids := make([]ent.Value, 0, len(m.removedevaluations))
		for id := range m.removedevaluations {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RunMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedproject {
		edges = append(edges, run.EdgeProject)
	}
	if m.clearedscenario_suite {
		edges = append(edges, run.EdgeScenarioSuite)
	}
	if m.clearedevaluations {
		edges = append(edges, run.EdgeEvaluations)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RunMutation) EdgeCleared(name string) bool {
	switch name {
	case run.EdgeProject:
		return m.clearedproject
	case run.EdgeScenarioSuite:
		return m.clearedscenario_suite
	case run.EdgeEvaluations:
		return m.clearedevaluations
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RunMutation) ClearEdge(name string) error {
	switch name {
	case run.EdgeProject:
		m.ClearProject()
		return nil
	case run.EdgeScenarioSuite:
		m.ClearScenarioSuite()
		return nil
	}
	return fmt.Errorf("unknown Run unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RunMutation) ResetEdge(name string) error {
	switch name {
	case run.EdgeProject:
		m.ResetProject()
		return nil
	case run.EdgeScenarioSuite:
		m.ResetScenarioSuite()
		return nil
	case run.EdgeEvaluations:
		m.ResetEvaluations()
		return nil
	}
	return fmt.Errorf("unknown Run edge %s", name)
}

// ScenarioSuiteMutation represents an operation that mutates the ScenarioSuite nodes in the graph.
type ScenarioSuiteMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	project_id           *string
	scenarios            *[]models.Scenario
	appendscenarios      []models.Scenario
	provenance_log       *[]provenance.Entry
	appendprovenance_log []provenance.Entry
	created_at           *time.Time
	updated_at           *time.Time
	clearedFields        map[string]struct{}
	run                  *string
	clearedrun           bool
	done                 bool
	oldValue             func(context.Context) (*ScenarioSuite, error)
	predicates           []predicate.ScenarioSuite
}

var _ ent.Mutation = (*ScenarioSuiteMutation)(nil)

// scenariosuiteOption allows management of the mutation configuration using functional options.
type scenariosuiteOption func(*ScenarioSuiteMutation)

// newScenarioSuiteMutation creates new mutation for the ScenarioSuite entity.
func newScenarioSuiteMutation(c config, op Op, opts ...scenariosuiteOption) *ScenarioSuiteMutation {
	m := &ScenarioSuiteMutation{
		config:        c,
		op:            op,
		typ:           TypeScenarioSuite,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withScenarioSuiteID sets the ID field of the mutation.
func withScenarioSuiteID(id string) scenariosuiteOption {
	return func(m *ScenarioSuiteMutation) {
		var (
			err   error
			once  sync.Once
			value *ScenarioSuite
		)
		m.oldValue = func(ctx context.Context) (*ScenarioSuite, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ScenarioSuite.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withScenarioSuite sets the old ScenarioSuite of the mutation.
func withScenarioSuite(node *ScenarioSuite) scenariosuiteOption {
	return func(m *ScenarioSuiteMutation) {
		m.oldValue = func(context.Context) (*ScenarioSuite, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ScenarioSuiteMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ScenarioSuiteMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ScenarioSuite entities.
func (m *ScenarioSuiteMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ScenarioSuiteMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ScenarioSuiteMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ScenarioSuite.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRunID sets the "run_id" field.
func (m *ScenarioSuiteMutation) SetRunID(s string) {
	m.run = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *ScenarioSuiteMutation) RunID() (r string, exists bool) {
	v := m.run
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the ScenarioSuite entity.
// If the ScenarioSuite object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScenarioSuiteMutation) OldRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ResetRunID resets all changes to the "run_id" field.
func (m *ScenarioSuiteMutation) ResetRunID() {
	m.run = nil
}

// SetProjectID sets the "project_id" field.
func (m *ScenarioSuiteMutation) SetProjectID(s string) {
	m.project_id = &s
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *ScenarioSuiteMutation) ProjectID() (r string, exists bool) {
	v := m.project_id
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the ScenarioSuite entity.
// If the ScenarioSuite object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScenarioSuiteMutation) OldProjectID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *ScenarioSuiteMutation) ResetProjectID() {
	m.project_id = nil
}

// SetScenarios sets the "scenarios" field.
func (m *ScenarioSuiteMutation) SetScenarios(value []models.Scenario) {
	m.scenarios = &value
	m.appendscenarios = nil
}

// Scenarios returns the value of the "scenarios" field in the mutation.
func (m *ScenarioSuiteMutation) Scenarios() (r []models.Scenario, exists bool) {
	v := m.scenarios
	if v == nil {
		return
	}
	return *v, true
}

// OldScenarios returns the old "scenarios" field's value of the ScenarioSuite entity.
// If the ScenarioSuite object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScenarioSuiteMutation) OldScenarios(ctx context.Context) (v []models.Scenario, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScenarios is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScenarios requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScenarios: %w", err)
	}
	return oldValue.Scenarios, nil
}

// AppendScenarios adds value to the "scenarios" field.
func (m *ScenarioSuiteMutation) AppendScenarios(value []models.Scenario) {
	m.appendscenarios = append(m.appendscenarios, value...)
}

// AppendedScenarios returns the list of values that were appended to the "scenarios" field in this mutation.
func (m *ScenarioSuiteMutation) AppendedScenarios() ([]models.Scenario, bool) {
	if len(m.appendscenarios) == 0 {
		return nil, false
	}
	return m.appendscenarios, true
}

// ResetScenarios resets all changes to the "scenarios" field.
func (m *ScenarioSuiteMutation) ResetScenarios() {
	m.scenarios = nil
	m.appendscenarios = nil
}

// SetProvenanceLog sets the "provenance_log" field.
func (m *ScenarioSuiteMutation) SetProvenanceLog(pr []provenance.Entry) {
	m.provenance_log = &pr
	m.appendprovenance_log = nil
}

// ProvenanceLog returns the value of the "provenance_log" field in the mutation.
func (m *ScenarioSuiteMutation) ProvenanceLog() (r []provenance.Entry, exists bool) {
	v := m.provenance_log
	if v == nil {
		return
	}
	return *v, true
}

// OldProvenanceLog returns the old "provenance_log" field's value of the ScenarioSuite entity.
// If the ScenarioSuite object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScenarioSuiteMutation) OldProvenanceLog(ctx context.Context) (v []provenance.Entry, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvenanceLog is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvenanceLog requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvenanceLog: %w", err)
	}
	return oldValue.ProvenanceLog, nil
}

// AppendProvenanceLog adds pr to the "provenance_log" field.
func (m *ScenarioSuiteMutation) AppendProvenanceLog(pr []provenance.Entry) {
	m.appendprovenance_log = append(m.appendprovenance_log, pr...)
}

// AppendedProvenanceLog returns the list of values that were appended to the "provenance_log" field in this mutation.
func (m *ScenarioSuiteMutation) AppendedProvenanceLog() ([]provenance.Entry, bool) {
	if len(m.appendprovenance_log) == 0 {
		return nil, false
	}
	return m.appendprovenance_log, true
}

// ClearProvenanceLog clears the value of the "provenance_log" field.
func (m *ScenarioSuiteMutation) ClearProvenanceLog() {
	m.provenance_log = nil
	m.appendprovenance_log = nil
	m.clearedFields[scenariosuite.FieldProvenanceLog] = struct{}{}
}

// ProvenanceLogCleared returns if the "provenance_log" field was cleared in this mutation.
func (m *ScenarioSuiteMutation) ProvenanceLogCleared() bool {
	_, ok := m.clearedFields[scenariosuite.FieldProvenanceLog]
	return ok
}

// ResetProvenanceLog resets all changes to the "provenance_log" field.
func (m *ScenarioSuiteMutation) ResetProvenanceLog() {
	m.provenance_log = nil
	m.appendprovenance_log = nil
	delete(m.clearedFields, scenariosuite.FieldProvenanceLog)
}

// SetCreatedAt sets the "created_at" field.
func (m *ScenarioSuiteMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ScenarioSuiteMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ScenarioSuite entity.
// If the ScenarioSuite object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScenarioSuiteMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ScenarioSuiteMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ScenarioSuiteMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ScenarioSuiteMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ScenarioSuite entity.
// If the ScenarioSuite object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScenarioSuiteMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ScenarioSuiteMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearRun clears the "run" edge to the Run entity.
func (m *ScenarioSuiteMutation) ClearRun() {
	m.clearedrun = true
	m.clearedFields[scenariosuite.FieldRunID] = struct{}{}
}

// RunCleared reports if the "run" edge to the Run entity was cleared.
func (m *ScenarioSuiteMutation) RunCleared() bool {
	return m.clearedrun
}

// RunIDs returns the "run" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RunID instead. It exists only for internal usage by the builders.
func (m *ScenarioSuiteMutation) RunIDs() (ids []string) {
	if id := m.run; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRun resets all changes to the "run" edge.
func (m *ScenarioSuiteMutation) ResetRun() {
	m.run = nil
	m.clearedrun = false
}

// Where appends a list predicates to the ScenarioSuiteMutation builder.
func (m *ScenarioSuiteMutation) Where(ps ...predicate.ScenarioSuite) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ScenarioSuiteMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ScenarioSuiteMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ScenarioSuite, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ScenarioSuiteMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ScenarioSuiteMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ScenarioSuite).
func (m *ScenarioSuiteMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ScenarioSuiteMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.run != nil {
		fields = append(fields, scenariosuite.FieldRunID)
	}
	if m.project_id != nil {
		fields = append(fields, scenariosuite.FieldProjectID)
	}
	if m.scenarios != nil {
		fields = append(fields, scenariosuite.FieldScenarios)
	}
	if m.provenance_log != nil {
		fields = append(fields, scenariosuite.FieldProvenanceLog)
	}
	if m.created_at != nil {
		fields = append(fields, scenariosuite.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, scenariosuite.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ScenarioSuiteMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case scenariosuite.FieldRunID:
		return m.RunID()
	case scenariosuite.FieldProjectID:
		return m.ProjectID()
	case scenariosuite.FieldScenarios:
		return m.Scenarios()
	case scenariosuite.FieldProvenanceLog:
		return m.ProvenanceLog()
	case scenariosuite.FieldCreatedAt:
		return m.CreatedAt()
	case scenariosuite.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ScenarioSuiteMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case scenariosuite.FieldRunID:
		return m.OldRunID(ctx)
	case scenariosuite.FieldProjectID:
		return m.OldProjectID(ctx)
	case scenariosuite.FieldScenarios:
		return m.OldScenarios(ctx)
	case scenariosuite.FieldProvenanceLog:
		return m.OldProvenanceLog(ctx)
	case scenariosuite.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case scenariosuite.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ScenarioSuite field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScenarioSuiteMutation) SetField(name string, value ent.Value) error {
	switch name {
	case scenariosuite.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case scenariosuite.FieldProjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case scenariosuite.FieldScenarios:
		v, ok := value.([]models.Scenario)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScenarios(v)
		return nil
	case scenariosuite.FieldProvenanceLog:
		v, ok := value.([]provenance.Entry)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvenanceLog(v)
		return nil
	case scenariosuite.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case scenariosuite.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ScenarioSuite field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ScenarioSuiteMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ScenarioSuiteMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScenarioSuiteMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ScenarioSuite numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ScenarioSuiteMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(scenariosuite.FieldProvenanceLog) {
		fields = append(fields, scenariosuite.FieldProvenanceLog)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ScenarioSuiteMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ScenarioSuiteMutation) ClearField(name string) error {
	switch name {
	case scenariosuite.FieldProvenanceLog:
		m.ClearProvenanceLog()
		return nil
	}
	return fmt.Errorf("unknown ScenarioSuite nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ScenarioSuiteMutation) ResetField(name string) error {
	switch name {
	case scenariosuite.FieldRunID:
		m.ResetRunID()
		return nil
	case scenariosuite.FieldProjectID:
		m.ResetProjectID()
		return nil
	case scenariosuite.FieldScenarios:
		m.ResetScenarios()
		return nil
	case scenariosuite.FieldProvenanceLog:
		m.ResetProvenanceLog()
		return nil
	case scenariosuite.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case scenariosuite.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ScenarioSuite field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ScenarioSuiteMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.run != nil {
		edges = append(edges, scenariosuite.EdgeRun)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ScenarioSuiteMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case scenariosuite.EdgeRun:
		if id := m.run; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ScenarioSuiteMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ScenarioSuiteMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ScenarioSuiteMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrun {
		edges = append(edges, scenariosuite.EdgeRun)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ScenarioSuiteMutation) EdgeCleared(name string) bool {
	switch name {
	case scenariosuite.EdgeRun:
		return m.clearedrun
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ScenarioSuiteMutation) ClearEdge(name string) error {
	switch name {
	case scenariosuite.EdgeRun:
		m.ClearRun()
		return nil
	}
	return fmt.Errorf("unknown ScenarioSuite unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ScenarioSuiteMutation) ResetEdge(name string) error {
	switch name {
	case scenariosuite.EdgeRun:
		m.ResetRun()
		return nil
	}
	return fmt.Errorf("unknown ScenarioSuite edge %s", name)
}

// SnapshotMutation represents an operation that mutates the Snapshot nodes in the graph.
type SnapshotMutation struct {
	config
	op                Op
	typ               string
	id                *string
	name              *string
	description       *string
	snapshot_data     *models.SnapshotData
	reference_metrics **models.ReferenceMetrics
	invariants        *[]models.Invariant
	appendinvariants  []models.Invariant
	tags              *[]string
	appendtags        []string
	created_at        *time.Time
	updated_at        *time.Time
	clearedFields     map[string]struct{}
	project           *string
	clearedproject    bool
	done              bool
	oldValue          func(context.Context) (*Snapshot, error)
	predicates        []predicate.Snapshot
}

var _ ent.Mutation = (*SnapshotMutation)(nil)

// snapshotOption allows management of the mutation configuration using functional options.
type snapshotOption func(*SnapshotMutation)

// newSnapshotMutation creates new mutation for the Snapshot entity.
func newSnapshotMutation(c config, op Op, opts ...snapshotOption) *SnapshotMutation {
	m := &SnapshotMutation{
		config:        c,
		op:            op,
		typ:           TypeSnapshot,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSnapshotID sets the ID field of the mutation.
func withSnapshotID(id string) snapshotOption {
	return func(m *SnapshotMutation) {
		var (
			err   error
			once  sync.Once
			value *Snapshot
		)
		m.oldValue = func(ctx context.Context) (*Snapshot, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Snapshot.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSnapshot sets the old Snapshot of the mutation.
func withSnapshot(node *Snapshot) snapshotOption {
	return func(m *SnapshotMutation) {
		m.oldValue = func(context.Context) (*Snapshot, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SnapshotMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SnapshotMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Snapshot entities.
func (m *SnapshotMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SnapshotMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SnapshotMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Snapshot.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProjectID sets the "project_id" field.
func (m *SnapshotMutation) SetProjectID(s string) {
	m.project = &s
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *SnapshotMutation) ProjectID() (r string, exists bool) {
	v := m.project
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the Snapshot entity.
// If the Snapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SnapshotMutation) OldProjectID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *SnapshotMutation) ResetProjectID() {
	m.project = nil
}

// SetName sets the "name" field.
func (m *SnapshotMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *SnapshotMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Snapshot entity.
// If the Snapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SnapshotMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *SnapshotMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *SnapshotMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *SnapshotMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Snapshot entity.
// If the Snapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SnapshotMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *SnapshotMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[snapshot.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *SnapshotMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[snapshot.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *SnapshotMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, snapshot.FieldDescription)
}

// SetSnapshotData sets the "snapshot_data" field.
func (m *SnapshotMutation) SetSnapshotData(md models.SnapshotData) {
	m.snapshot_data = &md
}

// SnapshotData returns the value of the "snapshot_data" field in the mutation.
func (m *SnapshotMutation) SnapshotData() (r models.SnapshotData, exists bool) {
	v := m.snapshot_data
	if v == nil {
		return
	}
	return *v, true
}

// OldSnapshotData returns the old "snapshot_data" field's value of the Snapshot entity.
// If the Snapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SnapshotMutation) OldSnapshotData(ctx context.Context) (v models.SnapshotData, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSnapshotData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSnapshotData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSnapshotData: %w", err)
	}
	return oldValue.SnapshotData, nil
}

// ResetSnapshotData resets all changes to the "snapshot_data" field.
func (m *SnapshotMutation) ResetSnapshotData() {
	m.snapshot_data = nil
}

// SetReferenceMetrics sets the "reference_metrics" field.
func (m *SnapshotMutation) SetReferenceMetrics(mm *models.ReferenceMetrics) {
	m.reference_metrics = &mm
}

// ReferenceMetrics returns the value of the "reference_metrics" field in the mutation.
func (m *SnapshotMutation) ReferenceMetrics() (r *models.ReferenceMetrics, exists bool) {
	v := m.reference_metrics
	if v == nil {
		return
	}
	return *v, true
}

// OldReferenceMetrics returns the old "reference_metrics" field's value of the Snapshot entity.
// If the Snapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SnapshotMutation) OldReferenceMetrics(ctx context.Context) (v *models.ReferenceMetrics, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReferenceMetrics is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReferenceMetrics requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReferenceMetrics: %w", err)
	}
	return oldValue.ReferenceMetrics, nil
}

// ClearReferenceMetrics clears the value of the "reference_metrics" field.
func (m *SnapshotMutation) ClearReferenceMetrics() {
	m.reference_metrics = nil
	m.clearedFields[snapshot.FieldReferenceMetrics] = struct{}{}
}

// ReferenceMetricsCleared returns if the "reference_metrics" field was cleared in this mutation.
func (m *SnapshotMutation) ReferenceMetricsCleared() bool {
	_, ok := m.clearedFields[snapshot.FieldReferenceMetrics]
	return ok
}

// ResetReferenceMetrics resets all changes to the "reference_metrics" field.
func (m *SnapshotMutation) ResetReferenceMetrics() {
	m.reference_metrics = nil
	delete(m.clearedFields, snapshot.FieldReferenceMetrics)
}

// SetInvariants sets the "invariants" field.
func (m *SnapshotMutation) SetInvariants(value []models.Invariant) {
	m.invariants = &value
	m.appendinvariants = nil
}

// Invariants returns the value of the "invariants" field in the mutation.
func (m *SnapshotMutation) Invariants() (r []models.Invariant, exists bool) {
	v := m.invariants
	if v == nil {
		return
	}
	return *v, true
}

// OldInvariants returns the old "invariants" field's value of the Snapshot entity.
// If the Snapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SnapshotMutation) OldInvariants(ctx context.Context) (v []models.Invariant, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInvariants is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInvariants requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInvariants: %w", err)
	}
	return oldValue.Invariants, nil
}

// AppendInvariants adds value to the "invariants" field.
func (m *SnapshotMutation) AppendInvariants(value []models.Invariant) {
	m.appendinvariants = append(m.appendinvariants, value...)
}

// AppendedInvariants returns the list of values that were appended to the "invariants" field in this mutation.
func (m *SnapshotMutation) AppendedInvariants() ([]models.Invariant, bool) {
	if len(m.appendinvariants) == 0 {
		return nil, false
	}
	return m.appendinvariants, true
}

// ClearInvariants clears the value of the "invariants" field.
func (m *SnapshotMutation) ClearInvariants() {
	m.invariants = nil
	m.appendinvariants = nil
	m.clearedFields[snapshot.FieldInvariants] = struct{}{}
}

// InvariantsCleared returns if the "invariants" field was cleared in this mutation.
func (m *SnapshotMutation) InvariantsCleared() bool {
	_, ok := m.clearedFields[snapshot.FieldInvariants]
	return ok
}

// ResetInvariants resets all changes to the "invariants" field.
func (m *SnapshotMutation) ResetInvariants() {
	m.invariants = nil
	m.appendinvariants = nil
	delete(m.clearedFields, snapshot.FieldInvariants)
}

// SetTags sets the "tags" field.
func (m *SnapshotMutation) SetTags(s []string) {
	m.tags = &s
	m.appendtags = nil
}

// Tags returns the value of the "tags" field in the mutation.
func (m *SnapshotMutation) Tags() (r []string, exists bool) {
	v := m.tags
	if v == nil {
		return
	}
	return *v, true
}

// OldTags returns the old "tags" field's value of the Snapshot entity.
// If the Snapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SnapshotMutation) OldTags(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTags is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTags requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTags: %w", err)
	}
	return oldValue.Tags, nil
}

// AppendTags adds s to the "tags" field.
func (m *SnapshotMutation) AppendTags(s []string) {
	m.appendtags = append(m.appendtags, s...)
}

// AppendedTags returns the list of values that were appended to the "tags" field in this mutation.
func (m *SnapshotMutation) AppendedTags() ([]string, bool) {
	if len(m.appendtags) == 0 {
		return nil, false
	}
	return m.appendtags, true
}

// ClearTags clears the value of the "tags" field.
func (m *SnapshotMutation) ClearTags() {
	m.tags = nil
	m.appendtags = nil
	m.clearedFields[snapshot.FieldTags] = struct{}{}
}

// TagsCleared returns if the "tags" field was cleared in this mutation.
func (m *SnapshotMutation) TagsCleared() bool {
	_, ok := m.clearedFields[snapshot.FieldTags]
	return ok
}

// ResetTags resets all changes to the "tags" field.
func (m *SnapshotMutation) ResetTags() {
	m.tags = nil
	m.appendtags = nil
	delete(m.clearedFields, snapshot.FieldTags)
}

// SetCreatedAt sets the "created_at" field.
func (m *SnapshotMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SnapshotMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Snapshot entity.
// If the Snapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SnapshotMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SnapshotMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SnapshotMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SnapshotMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Snapshot entity.
// If the Snapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SnapshotMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SnapshotMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearProject clears the "project" edge to the Project entity.
func (m *SnapshotMutation) ClearProject() {
	m.clearedproject = true
	m.clearedFields[snapshot.FieldProjectID] = struct{}{}
}

// ProjectCleared reports if the "project" edge to the Project entity was cleared.
func (m *SnapshotMutation) ProjectCleared() bool {
	return m.clearedproject
}

// ProjectIDs returns the "project" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProjectID instead. It exists only for internal usage by the builders.
func (m *SnapshotMutation) ProjectIDs() (ids []string) {
	if id := m.project; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProject resets all changes to the "project" edge.
func (m *SnapshotMutation) ResetProject() {
	m.project = nil
	m.clearedproject = false
}

// Where appends a list predicates to the SnapshotMutation builder.
func (m *SnapshotMutation) Where(ps ...predicate.Snapshot) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SnapshotMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SnapshotMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Snapshot, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SnapshotMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SnapshotMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Snapshot).
func (m *SnapshotMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SnapshotMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.project != nil {
		fields = append(fields, snapshot.FieldProjectID)
	}
	if m.name != nil {
		fields = append(fields, snapshot.FieldName)
	}
	if m.description != nil {
		fields = append(fields, snapshot.FieldDescription)
	}
	if m.snapshot_data != nil {
		fields = append(fields, snapshot.FieldSnapshotData)
	}
	if m.reference_metrics != nil {
		fields = append(fields, snapshot.FieldReferenceMetrics)
	}
	if m.invariants != nil {
		fields = append(fields, snapshot.FieldInvariants)
	}
	if m.tags != nil {
		fields = append(fields, snapshot.FieldTags)
	}
	if m.created_at != nil {
		fields = append(fields, snapshot.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, snapshot.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SnapshotMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case snapshot.FieldProjectID:
		return m.ProjectID()
	case snapshot.FieldName:
		return m.Name()
	case snapshot.FieldDescription:
		return m.Description()
	case snapshot.FieldSnapshotData:
		return m.SnapshotData()
	case snapshot.FieldReferenceMetrics:
		return m.ReferenceMetrics()
	case snapshot.FieldInvariants:
		return m.Invariants()
	case snapshot.FieldTags:
		return m.Tags()
	case snapshot.FieldCreatedAt:
		return m.CreatedAt()
	case snapshot.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SnapshotMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case snapshot.FieldProjectID:
		return m.OldProjectID(ctx)
	case snapshot.FieldName:
		return m.OldName(ctx)
	case snapshot.FieldDescription:
		return m.OldDescription(ctx)
	case snapshot.FieldSnapshotData:
		return m.OldSnapshotData(ctx)
	case snapshot.FieldReferenceMetrics:
		return m.OldReferenceMetrics(ctx)
	case snapshot.FieldInvariants:
		return m.OldInvariants(ctx)
	case snapshot.FieldTags:
		return m.OldTags(ctx)
	case snapshot.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case snapshot.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Snapshot field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SnapshotMutation) SetField(name string, value ent.Value) error {
	switch name {
	case snapshot.FieldProjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case snapshot.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case snapshot.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case snapshot.FieldSnapshotData:
		v, ok := value.(models.SnapshotData)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSnapshotData(v)
		return nil
	case snapshot.FieldReferenceMetrics:
		v, ok := value.(*models.ReferenceMetrics)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReferenceMetrics(v)
		return nil
	case snapshot.FieldInvariants:
		v, ok := value.([]models.Invariant)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInvariants(v)
		return nil
	case snapshot.FieldTags:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTags(v)
		return nil
	case snapshot.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case snapshot.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Snapshot field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SnapshotMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SnapshotMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SnapshotMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Snapshot numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SnapshotMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(snapshot.FieldDescription) {
		fields = append(fields, snapshot.FieldDescription)
	}
	if m.FieldCleared(snapshot.FieldReferenceMetrics) {
		fields = append(fields, snapshot.FieldReferenceMetrics)
	}
	if m.FieldCleared(snapshot.FieldInvariants) {
		fields = append(fields, snapshot.FieldInvariants)
	}
	if m.FieldCleared(snapshot.FieldTags) {
		fields = append(fields, snapshot.FieldTags)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SnapshotMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SnapshotMutation) ClearField(name string) error {
	switch name {
	case snapshot.FieldDescription:
		m.ClearDescription()
		return nil
	case snapshot.FieldReferenceMetrics:
		m.ClearReferenceMetrics()
		return nil
	case snapshot.FieldInvariants:
		m.ClearInvariants()
		return nil
	case snapshot.FieldTags:
		m.ClearTags()
		return nil
	}
	return fmt.Errorf("unknown Snapshot nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SnapshotMutation) ResetField(name string) error {
	switch name {
	case snapshot.FieldProjectID:
		m.ResetProjectID()
		return nil
	case snapshot.FieldName:
		m.ResetName()
		return nil
	case snapshot.FieldDescription:
		m.ResetDescription()
		return nil
	case snapshot.FieldSnapshotData:
		m.ResetSnapshotData()
		return nil
	case snapshot.FieldReferenceMetrics:
		m.ResetReferenceMetrics()
		return nil
	case snapshot.FieldInvariants:
		m.ResetInvariants()
		return nil
	case snapshot.FieldTags:
		m.ResetTags()
		return nil
	case snapshot.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case snapshot.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Snapshot field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SnapshotMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.project != nil {
		edges = append(edges, snapshot.EdgeProject)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SnapshotMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case snapshot.EdgeProject:
		if id := m.project; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SnapshotMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SnapshotMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SnapshotMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedproject {
		edges = append(edges, snapshot.EdgeProject)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SnapshotMutation) EdgeCleared(name string) bool {
	switch name {
	case snapshot.EdgeProject:
		return m.clearedproject
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SnapshotMutation) ClearEdge(name string) error {
	switch name {
	case snapshot.EdgeProject:
		m.ClearProject()
		return nil
	}
	return fmt.Errorf("unknown Snapshot unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SnapshotMutation) ResetEdge(name string) error {
	switch name {
	case snapshot.EdgeProject:
		m.ResetProject()
		return nil
	}
	return fmt.Errorf("unknown Snapshot edge %s", name)
}

// WorldModelMutation represents an operation that mutates the WorldModel nodes in the graph.
type WorldModelMutation struct {
	config
	op             Op
	typ            string
	id             *string
	model_data     *map[string]interface{}
	created_at     *time.Time
	updated_at     *time.Time
	clearedFields  map[string]struct{}
	project        *string
	clearedproject bool
	done           bool
	oldValue       func(context.Context) (*WorldModel, error)
	predicates     []predicate.WorldModel
}

var _ ent.Mutation = (*WorldModelMutation)(nil)

// worldmodelOption allows management of the mutation configuration using functional options.
type worldmodelOption func(*WorldModelMutation)

// newWorldModelMutation creates new mutation for the WorldModel entity.
func newWorldModelMutation(c config, op Op, opts ...worldmodelOption) *WorldModelMutation {
	m := &WorldModelMutation{
		config:        c,
		op:            op,
		typ:           TypeWorldModel,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWorldModelID sets the ID field of the mutation.
func withWorldModelID(id string) worldmodelOption {
	return func(m *WorldModelMutation) {
		var (
			err   error
			once  sync.Once
			value *WorldModel
		)
		m.oldValue = func(ctx context.Context) (*WorldModel, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().WorldModel.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWorldModel sets the old WorldModel of the mutation.
func withWorldModel(node *WorldModel) worldmodelOption {
	return func(m *WorldModelMutation) {
		m.oldValue = func(context.Context) (*WorldModel, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WorldModelMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WorldModelMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of WorldModel entities.
func (m *WorldModelMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WorldModelMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WorldModelMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().WorldModel.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProjectID sets the "project_id" field.
func (m *WorldModelMutation) SetProjectID(s string) {
	m.project = &s
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *WorldModelMutation) ProjectID() (r string, exists bool) {
	v := m.project
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the WorldModel entity.
// If the WorldModel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorldModelMutation) OldProjectID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *WorldModelMutation) ResetProjectID() {
	m.project = nil
}

// SetModelData sets the "model_data" field.
func (m *WorldModelMutation) SetModelData(value map[string]interface{}) {
	m.model_data = &value
}

// ModelData returns the value of the "model_data" field in the mutation.
func (m *WorldModelMutation) ModelData() (r map[string]interface{}, exists bool) {
	v := m.model_data
	if v == nil {
		return
	}
	return *v, true
}

// OldModelData returns the old "model_data" field's value of the WorldModel entity.
// If the WorldModel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorldModelMutation) OldModelData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModelData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModelData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModelData: %w", err)
	}
	return oldValue.ModelData, nil
}

// ResetModelData resets all changes to the "model_data" field.
func (m *WorldModelMutation) ResetModelData() {
	m.model_data = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *WorldModelMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *WorldModelMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the WorldModel entity.
// If the WorldModel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorldModelMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *WorldModelMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *WorldModelMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *WorldModelMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the WorldModel entity.
// If the WorldModel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorldModelMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *WorldModelMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearProject clears the "project" edge to the Project entity.
func (m *WorldModelMutation) ClearProject() {
	m.clearedproject = true
	m.clearedFields[worldmodel.FieldProjectID] = struct{}{}
}

// ProjectCleared reports if the "project" edge to the Project entity was cleared.
func (m *WorldModelMutation) ProjectCleared() bool {
	return m.clearedproject
}

// ProjectIDs returns the "project" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProjectID instead. It exists only for internal usage by the builders.
func (m *WorldModelMutation) ProjectIDs() (ids []string) {
	if id := m.project; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProject resets all changes to the "project" edge.
func (m *WorldModelMutation) ResetProject() {
	m.project = nil
	m.clearedproject = false
}

// Where appends a list predicates to the WorldModelMutation builder.
func (m *WorldModelMutation) Where(ps ...predicate.WorldModel) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WorldModelMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WorldModelMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.WorldModel, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WorldModelMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WorldModelMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (WorldModel).
func (m *WorldModelMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WorldModelMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.project != nil {
		fields = append(fields, worldmodel.FieldProjectID)
	}
	if m.model_data != nil {
		fields = append(fields, worldmodel.FieldModelData)
	}
	if m.created_at != nil {
		fields = append(fields, worldmodel.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, worldmodel.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WorldModelMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case worldmodel.FieldProjectID:
		return m.ProjectID()
	case worldmodel.FieldModelData:
		return m.ModelData()
	case worldmodel.FieldCreatedAt:
		return m.CreatedAt()
	case worldmodel.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WorldModelMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case worldmodel.FieldProjectID:
		return m.OldProjectID(ctx)
	case worldmodel.FieldModelData:
		return m.OldModelData(ctx)
	case worldmodel.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case worldmodel.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown WorldModel field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorldModelMutation) SetField(name string, value ent.Value) error {
	switch name {
	case worldmodel.FieldProjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case worldmodel.FieldModelData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModelData(v)
		return nil
	case worldmodel.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case worldmodel.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown WorldModel field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WorldModelMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WorldModelMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorldModelMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown WorldModel numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WorldModelMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WorldModelMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WorldModelMutation) ClearField(name string) error {
	return fmt.Errorf("unknown WorldModel nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WorldModelMutation) ResetField(name string) error {
	switch name {
	case worldmodel.FieldProjectID:
		m.ResetProjectID()
		return nil
	case worldmodel.FieldModelData:
		m.ResetModelData()
		return nil
	case worldmodel.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case worldmodel.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown WorldModel field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WorldModelMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.project != nil {
		edges = append(edges, worldmodel.EdgeProject)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WorldModelMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case worldmodel.EdgeProject:
		if id := m.project; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WorldModelMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WorldModelMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WorldModelMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedproject {
		edges = append(edges, worldmodel.EdgeProject)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WorldModelMutation) EdgeCleared(name string) bool {
	switch name {
	case worldmodel.EdgeProject:
		return m.clearedproject
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WorldModelMutation) ClearEdge(name string) error {
	switch name {
	case worldmodel.EdgeProject:
		m.ClearProject()
		return nil
	}
	return fmt.Errorf("unknown WorldModel unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WorldModelMutation) ResetEdge(name string) error {
	switch name {
	case worldmodel.EdgeProject:
		m.ResetProject()
		return nil
	}
	return fmt.Errorf("unknown WorldModel edge %s", name)
}
