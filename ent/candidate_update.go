// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/assaylab/assay/ent/candidate"
	"github.com/assaylab/assay/ent/predicate"
	"github.com/assaylab/assay/pkg/models"
	"github.com/assaylab/assay/pkg/provenance"
)

// CandidateUpdate is the builder for updating Candidate entities.
type CandidateUpdate struct {
	config
	hooks    []Hook
	mutation *CandidateMutation
}

// Where appends a list predicates to the CandidateUpdate builder.
func (_u *CandidateUpdate) Where(ps ...predicate.Candidate) *CandidateUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRunID sets the "run_id" field.
func (_u *CandidateUpdate) SetRunID(v string) *CandidateUpdate {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *CandidateUpdate) SetNillableRunID(v *string) *CandidateUpdate {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// ClearRunID clears the value of the "run_id" field.
func (_u *CandidateUpdate) ClearRunID() *CandidateUpdate {
	_u.mutation.ClearRunID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *CandidateUpdate) SetStatus(v candidate.Status) *CandidateUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CandidateUpdate) SetNillableStatus(v *candidate.Status) *CandidateUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetMechanismDescription sets the "mechanism_description" field.
func (_u *CandidateUpdate) SetMechanismDescription(v string) *CandidateUpdate {
	_u.mutation.SetMechanismDescription(v)
	return _u
}

// SetNillableMechanismDescription sets the "mechanism_description" field if the given value is not nil.
func (_u *CandidateUpdate) SetNillableMechanismDescription(v *string) *CandidateUpdate {
	if v != nil {
		_u.SetMechanismDescription(*v)
	}
	return _u
}

// SetPredictedEffects sets the "predicted_effects" field.
func (_u *CandidateUpdate) SetPredictedEffects(v *models.PredictedEffects) *CandidateUpdate {
	_u.mutation.SetPredictedEffects(v)
	return _u
}

// ClearPredictedEffects clears the value of the "predicted_effects" field.
func (_u *CandidateUpdate) ClearPredictedEffects() *CandidateUpdate {
	_u.mutation.ClearPredictedEffects()
	return _u
}

// SetParentIds sets the "parent_ids" field.
func (_u *CandidateUpdate) SetParentIds(v []string) *CandidateUpdate {
	_u.mutation.SetParentIds(v)
	return _u
}

// AppendParentIds appends value to the "parent_ids" field.
func (_u *CandidateUpdate) AppendParentIds(v []string) *CandidateUpdate {
	_u.mutation.AppendParentIds(v)
	return _u
}

// ClearParentIds clears the value of the "parent_ids" field.
func (_u *CandidateUpdate) ClearParentIds() *CandidateUpdate {
	_u.mutation.ClearParentIds()
	return _u
}

// SetScores sets the "scores" field.
func (_u *CandidateUpdate) SetScores(v *models.CandidateScores) *CandidateUpdate {
	_u.mutation.SetScores(v)
	return _u
}

// ClearScores clears the value of the "scores" field.
func (_u *CandidateUpdate) ClearScores() *CandidateUpdate {
	_u.mutation.ClearScores()
	return _u
}

// SetProvenanceLog sets the "provenance_log" field.
func (_u *CandidateUpdate) SetProvenanceLog(v []provenance.Entry) *CandidateUpdate {
	_u.mutation.SetProvenanceLog(v)
	return _u
}

// AppendProvenanceLog appends value to the "provenance_log" field.
func (_u *CandidateUpdate) AppendProvenanceLog(v []provenance.Entry) *CandidateUpdate {
	_u.mutation.AppendProvenanceLog(v)
	return _u
}

// ClearProvenanceLog clears the value of the "provenance_log" field.
func (_u *CandidateUpdate) ClearProvenanceLog() *CandidateUpdate {
	_u.mutation.ClearProvenanceLog()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CandidateUpdate) SetUpdatedAt(v time.Time) *CandidateUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the CandidateMutation object of the builder.
func (_u *CandidateUpdate) Mutation() *CandidateMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CandidateUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CandidateUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CandidateUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CandidateUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CandidateUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := candidate.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CandidateUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := candidate.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Candidate.status": %w`, err)}
		}
	}
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Candidate.project"`)
	}
	return nil
}

func (_u *CandidateUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(candidate.Table, candidate.Columns, sqlgraph.NewFieldSpec(candidate.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RunID(); ok {
		_spec.SetField(candidate.FieldRunID, field.TypeString, value)
	}
	if _u.mutation.RunIDCleared() {
		_spec.ClearField(candidate.FieldRunID, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(candidate.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.MechanismDescription(); ok {
		_spec.SetField(candidate.FieldMechanismDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.PredictedEffects(); ok {
		_spec.SetField(candidate.FieldPredictedEffects, field.TypeJSON, value)
	}
	if _u.mutation.PredictedEffectsCleared() {
		_spec.ClearField(candidate.FieldPredictedEffects, field.TypeJSON)
	}
	if value, ok := _u.mutation.ParentIds(); ok {
		_spec.SetField(candidate.FieldParentIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedParentIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, candidate.FieldParentIds, value)
		})
	}
	if _u.mutation.ParentIdsCleared() {
		_spec.ClearField(candidate.FieldParentIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.Scores(); ok {
		_spec.SetField(candidate.FieldScores, field.TypeJSON, value)
	}
	if _u.mutation.ScoresCleared() {
		_spec.ClearField(candidate.FieldScores, field.TypeJSON)
	}
	if value, ok := _u.mutation.ProvenanceLog(); ok {
		_spec.SetField(candidate.FieldProvenanceLog, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedProvenanceLog(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, candidate.FieldProvenanceLog, value)
		})
	}
	if _u.mutation.ProvenanceLogCleared() {
		_spec.ClearField(candidate.FieldProvenanceLog, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(candidate.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{candidate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CandidateUpdateOne is the builder for updating a single Candidate entity.
type CandidateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CandidateMutation
}

// SetRunID sets the "run_id" field.
func (_u *CandidateUpdateOne) SetRunID(v string) *CandidateUpdateOne {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *CandidateUpdateOne) SetNillableRunID(v *string) *CandidateUpdateOne {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// ClearRunID clears the value of the "run_id" field.
func (_u *CandidateUpdateOne) ClearRunID() *CandidateUpdateOne {
	_u.mutation.ClearRunID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *CandidateUpdateOne) SetStatus(v candidate.Status) *CandidateUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CandidateUpdateOne) SetNillableStatus(v *candidate.Status) *CandidateUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetMechanismDescription sets the "mechanism_description" field.
func (_u *CandidateUpdateOne) SetMechanismDescription(v string) *CandidateUpdateOne {
	_u.mutation.SetMechanismDescription(v)
	return _u
}

// SetNillableMechanismDescription sets the "mechanism_description" field if the given value is not nil.
func (_u *CandidateUpdateOne) SetNillableMechanismDescription(v *string) *CandidateUpdateOne {
	if v != nil {
		_u.SetMechanismDescription(*v)
	}
	return _u
}

// SetPredictedEffects sets the "predicted_effects" field.
func (_u *CandidateUpdateOne) SetPredictedEffects(v *models.PredictedEffects) *CandidateUpdateOne {
	_u.mutation.SetPredictedEffects(v)
	return _u
}

// ClearPredictedEffects clears the value of the "predicted_effects" field.
func (_u *CandidateUpdateOne) ClearPredictedEffects() *CandidateUpdateOne {
	_u.mutation.ClearPredictedEffects()
	return _u
}

// SetParentIds sets the "parent_ids" field.
func (_u *CandidateUpdateOne) SetParentIds(v []string) *CandidateUpdateOne {
	_u.mutation.SetParentIds(v)
	return _u
}

// AppendParentIds appends value to the "parent_ids" field.
func (_u *CandidateUpdateOne) AppendParentIds(v []string) *CandidateUpdateOne {
	_u.mutation.AppendParentIds(v)
	return _u
}

// ClearParentIds clears the value of the "parent_ids" field.
func (_u *CandidateUpdateOne) ClearParentIds() *CandidateUpdateOne {
	_u.mutation.ClearParentIds()
	return _u
}

// SetScores sets the "scores" field.
func (_u *CandidateUpdateOne) SetScores(v *models.CandidateScores) *CandidateUpdateOne {
	_u.mutation.SetScores(v)
	return _u
}

// ClearScores clears the value of the "scores" field.
func (_u *CandidateUpdateOne) ClearScores() *CandidateUpdateOne {
	_u.mutation.ClearScores()
	return _u
}

// SetProvenanceLog sets the "provenance_log" field.
func (_u *CandidateUpdateOne) SetProvenanceLog(v []provenance.Entry) *CandidateUpdateOne {
	_u.mutation.SetProvenanceLog(v)
	return _u
}

// AppendProvenanceLog appends value to the "provenance_log" field.
func (_u *CandidateUpdateOne) AppendProvenanceLog(v []provenance.Entry) *CandidateUpdateOne {
	_u.mutation.AppendProvenanceLog(v)
	return _u
}

// ClearProvenanceLog clears the value of the "provenance_log" field.
func (_u *CandidateUpdateOne) ClearProvenanceLog() *CandidateUpdateOne {
	_u.mutation.ClearProvenanceLog()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CandidateUpdateOne) SetUpdatedAt(v time.Time) *CandidateUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the CandidateMutation object of the builder.
func (_u *CandidateUpdateOne) Mutation() *CandidateMutation {
	return _u.mutation
}

// Where appends a list predicates to the CandidateUpdate builder.
func (_u *CandidateUpdateOne) Where(ps ...predicate.Candidate) *CandidateUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CandidateUpdateOne) Select(field string, fields ...string) *CandidateUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Candidate entity.
func (_u *CandidateUpdateOne) Save(ctx context.Context) (*Candidate, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CandidateUpdateOne) SaveX(ctx context.Context) *Candidate {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CandidateUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CandidateUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CandidateUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := candidate.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CandidateUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := candidate.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Candidate.status": %w`, err)}
		}
	}
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Candidate.project"`)
	}
	return nil
}

func (_u *CandidateUpdateOne) sqlSave(ctx context.Context) (_node *Candidate, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(candidate.Table, candidate.Columns, sqlgraph.NewFieldSpec(candidate.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Candidate.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, candidate.FieldID)
		for _, f := range fields {
			if !candidate.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != candidate.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RunID(); ok {
		_spec.SetField(candidate.FieldRunID, field.TypeString, value)
	}
	if _u.mutation.RunIDCleared() {
		_spec.ClearField(candidate.FieldRunID, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(candidate.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.MechanismDescription(); ok {
		_spec.SetField(candidate.FieldMechanismDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.PredictedEffects(); ok {
		_spec.SetField(candidate.FieldPredictedEffects, field.TypeJSON, value)
	}
	if _u.mutation.PredictedEffectsCleared() {
		_spec.ClearField(candidate.FieldPredictedEffects, field.TypeJSON)
	}
	if value, ok := _u.mutation.ParentIds(); ok {
		_spec.SetField(candidate.FieldParentIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedParentIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, candidate.FieldParentIds, value)
		})
	}
	if _u.mutation.ParentIdsCleared() {
		_spec.ClearField(candidate.FieldParentIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.Scores(); ok {
		_spec.SetField(candidate.FieldScores, field.TypeJSON, value)
	}
	if _u.mutation.ScoresCleared() {
		_spec.ClearField(candidate.FieldScores, field.TypeJSON)
	}
	if value, ok := _u.mutation.ProvenanceLog(); ok {
		_spec.SetField(candidate.FieldProvenanceLog, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedProvenanceLog(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, candidate.FieldProvenanceLog, value)
		})
	}
	if _u.mutation.ProvenanceLogCleared() {
		_spec.ClearField(candidate.FieldProvenanceLog, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(candidate.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Candidate{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{candidate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
