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
	"github.com/assaylab/assay/ent/predicate"
	"github.com/assaylab/assay/ent/problemspec"
	"github.com/assaylab/assay/pkg/models"
	"github.com/assaylab/assay/pkg/provenance"
)

// ProblemSpecUpdate is the builder for updating ProblemSpec entities.
type ProblemSpecUpdate struct {
	config
	hooks    []Hook
	mutation *ProblemSpecMutation
}

// Where appends a list predicates to the ProblemSpecUpdate builder.
func (_u *ProblemSpecUpdate) Where(ps ...predicate.ProblemSpec) *ProblemSpecUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetConstraints sets the "constraints" field.
func (_u *ProblemSpecUpdate) SetConstraints(v []models.Constraint) *ProblemSpecUpdate {
	_u.mutation.SetConstraints(v)
	return _u
}

// AppendConstraints appends value to the "constraints" field.
func (_u *ProblemSpecUpdate) AppendConstraints(v []models.Constraint) *ProblemSpecUpdate {
	_u.mutation.AppendConstraints(v)
	return _u
}

// SetGoals sets the "goals" field.
func (_u *ProblemSpecUpdate) SetGoals(v []string) *ProblemSpecUpdate {
	_u.mutation.SetGoals(v)
	return _u
}

// AppendGoals appends value to the "goals" field.
func (_u *ProblemSpecUpdate) AppendGoals(v []string) *ProblemSpecUpdate {
	_u.mutation.AppendGoals(v)
	return _u
}

// ClearGoals clears the value of the "goals" field.
func (_u *ProblemSpecUpdate) ClearGoals() *ProblemSpecUpdate {
	_u.mutation.ClearGoals()
	return _u
}

// SetResolution sets the "resolution" field.
func (_u *ProblemSpecUpdate) SetResolution(v problemspec.Resolution) *ProblemSpecUpdate {
	_u.mutation.SetResolution(v)
	return _u
}

// SetNillableResolution sets the "resolution" field if the given value is not nil.
func (_u *ProblemSpecUpdate) SetNillableResolution(v *problemspec.Resolution) *ProblemSpecUpdate {
	if v != nil {
		_u.SetResolution(*v)
	}
	return _u
}

// SetMode sets the "mode" field.
func (_u *ProblemSpecUpdate) SetMode(v problemspec.Mode) *ProblemSpecUpdate {
	_u.mutation.SetMode(v)
	return _u
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_u *ProblemSpecUpdate) SetNillableMode(v *problemspec.Mode) *ProblemSpecUpdate {
	if v != nil {
		_u.SetMode(*v)
	}
	return _u
}

// SetProvenanceLog sets the "provenance_log" field.
func (_u *ProblemSpecUpdate) SetProvenanceLog(v []provenance.Entry) *ProblemSpecUpdate {
	_u.mutation.SetProvenanceLog(v)
	return _u
}

// AppendProvenanceLog appends value to the "provenance_log" field.
func (_u *ProblemSpecUpdate) AppendProvenanceLog(v []provenance.Entry) *ProblemSpecUpdate {
	_u.mutation.AppendProvenanceLog(v)
	return _u
}

// ClearProvenanceLog clears the value of the "provenance_log" field.
func (_u *ProblemSpecUpdate) ClearProvenanceLog() *ProblemSpecUpdate {
	_u.mutation.ClearProvenanceLog()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProblemSpecUpdate) SetUpdatedAt(v time.Time) *ProblemSpecUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ProblemSpecMutation object of the builder.
func (_u *ProblemSpecUpdate) Mutation() *ProblemSpecMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProblemSpecUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProblemSpecUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProblemSpecUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProblemSpecUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProblemSpecUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := problemspec.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProblemSpecUpdate) check() error {
	if v, ok := _u.mutation.Resolution(); ok {
		if err := problemspec.ResolutionValidator(v); err != nil {
			return &ValidationError{Name: "resolution", err: fmt.Errorf(`ent: validator failed for field "ProblemSpec.resolution": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Mode(); ok {
		if err := problemspec.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "ProblemSpec.mode": %w`, err)}
		}
	}
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ProblemSpec.project"`)
	}
	return nil
}

func (_u *ProblemSpecUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(problemspec.Table, problemspec.Columns, sqlgraph.NewFieldSpec(problemspec.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Constraints(); ok {
		_spec.SetField(problemspec.FieldConstraints, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedConstraints(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, problemspec.FieldConstraints, value)
		})
	}
	if value, ok := _u.mutation.Goals(); ok {
		_spec.SetField(problemspec.FieldGoals, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedGoals(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, problemspec.FieldGoals, value)
		})
	}
	if _u.mutation.GoalsCleared() {
		_spec.ClearField(problemspec.FieldGoals, field.TypeJSON)
	}
	if value, ok := _u.mutation.Resolution(); ok {
		_spec.SetField(problemspec.FieldResolution, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Mode(); ok {
		_spec.SetField(problemspec.FieldMode, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ProvenanceLog(); ok {
		_spec.SetField(problemspec.FieldProvenanceLog, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedProvenanceLog(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, problemspec.FieldProvenanceLog, value)
		})
	}
	if _u.mutation.ProvenanceLogCleared() {
		_spec.ClearField(problemspec.FieldProvenanceLog, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(problemspec.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{problemspec.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProblemSpecUpdateOne is the builder for updating a single ProblemSpec entity.
type ProblemSpecUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProblemSpecMutation
}

// SetConstraints sets the "constraints" field.
func (_u *ProblemSpecUpdateOne) SetConstraints(v []models.Constraint) *ProblemSpecUpdateOne {
	_u.mutation.SetConstraints(v)
	return _u
}

// AppendConstraints appends value to the "constraints" field.
func (_u *ProblemSpecUpdateOne) AppendConstraints(v []models.Constraint) *ProblemSpecUpdateOne {
	_u.mutation.AppendConstraints(v)
	return _u
}

// SetGoals sets the "goals" field.
func (_u *ProblemSpecUpdateOne) SetGoals(v []string) *ProblemSpecUpdateOne {
	_u.mutation.SetGoals(v)
	return _u
}

// AppendGoals appends value to the "goals" field.
func (_u *ProblemSpecUpdateOne) AppendGoals(v []string) *ProblemSpecUpdateOne {
	_u.mutation.AppendGoals(v)
	return _u
}

// ClearGoals clears the value of the "goals" field.
func (_u *ProblemSpecUpdateOne) ClearGoals() *ProblemSpecUpdateOne {
	_u.mutation.ClearGoals()
	return _u
}

// SetResolution sets the "resolution" field.
func (_u *ProblemSpecUpdateOne) SetResolution(v problemspec.Resolution) *ProblemSpecUpdateOne {
	_u.mutation.SetResolution(v)
	return _u
}

// SetNillableResolution sets the "resolution" field if the given value is not nil.
func (_u *ProblemSpecUpdateOne) SetNillableResolution(v *problemspec.Resolution) *ProblemSpecUpdateOne {
	if v != nil {
		_u.SetResolution(*v)
	}
	return _u
}

// SetMode sets the "mode" field.
func (_u *ProblemSpecUpdateOne) SetMode(v problemspec.Mode) *ProblemSpecUpdateOne {
	_u.mutation.SetMode(v)
	return _u
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_u *ProblemSpecUpdateOne) SetNillableMode(v *problemspec.Mode) *ProblemSpecUpdateOne {
	if v != nil {
		_u.SetMode(*v)
	}
	return _u
}

// SetProvenanceLog sets the "provenance_log" field.
func (_u *ProblemSpecUpdateOne) SetProvenanceLog(v []provenance.Entry) *ProblemSpecUpdateOne {
	_u.mutation.SetProvenanceLog(v)
	return _u
}

// AppendProvenanceLog appends value to the "provenance_log" field.
func (_u *ProblemSpecUpdateOne) AppendProvenanceLog(v []provenance.Entry) *ProblemSpecUpdateOne {
	_u.mutation.AppendProvenanceLog(v)
	return _u
}

// ClearProvenanceLog clears the value of the "provenance_log" field.
func (_u *ProblemSpecUpdateOne) ClearProvenanceLog() *ProblemSpecUpdateOne {
	_u.mutation.ClearProvenanceLog()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProblemSpecUpdateOne) SetUpdatedAt(v time.Time) *ProblemSpecUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ProblemSpecMutation object of the builder.
func (_u *ProblemSpecUpdateOne) Mutation() *ProblemSpecMutation {
	return _u.mutation
}

// Where appends a list predicates to the ProblemSpecUpdate builder.
func (_u *ProblemSpecUpdateOne) Where(ps ...predicate.ProblemSpec) *ProblemSpecUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProblemSpecUpdateOne) Select(field string, fields ...string) *ProblemSpecUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ProblemSpec entity.
func (_u *ProblemSpecUpdateOne) Save(ctx context.Context) (*ProblemSpec, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProblemSpecUpdateOne) SaveX(ctx context.Context) *ProblemSpec {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProblemSpecUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProblemSpecUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProblemSpecUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := problemspec.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProblemSpecUpdateOne) check() error {
	if v, ok := _u.mutation.Resolution(); ok {
		if err := problemspec.ResolutionValidator(v); err != nil {
			return &ValidationError{Name: "resolution", err: fmt.Errorf(`ent: validator failed for field "ProblemSpec.resolution": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Mode(); ok {
		if err := problemspec.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "ProblemSpec.mode": %w`, err)}
		}
	}
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ProblemSpec.project"`)
	}
	return nil
}

func (_u *ProblemSpecUpdateOne) sqlSave(ctx context.Context) (_node *ProblemSpec, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(problemspec.Table, problemspec.Columns, sqlgraph.NewFieldSpec(problemspec.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ProblemSpec.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, problemspec.FieldID)
		for _, f := range fields {
			if !problemspec.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != problemspec.FieldID {
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
	if value, ok := _u.mutation.Constraints(); ok {
		_spec.SetField(problemspec.FieldConstraints, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedConstraints(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, problemspec.FieldConstraints, value)
		})
	}
	if value, ok := _u.mutation.Goals(); ok {
		_spec.SetField(problemspec.FieldGoals, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedGoals(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, problemspec.FieldGoals, value)
		})
	}
	if _u.mutation.GoalsCleared() {
		_spec.ClearField(problemspec.FieldGoals, field.TypeJSON)
	}
	if value, ok := _u.mutation.Resolution(); ok {
		_spec.SetField(problemspec.FieldResolution, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Mode(); ok {
		_spec.SetField(problemspec.FieldMode, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ProvenanceLog(); ok {
		_spec.SetField(problemspec.FieldProvenanceLog, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedProvenanceLog(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, problemspec.FieldProvenanceLog, value)
		})
	}
	if _u.mutation.ProvenanceLogCleared() {
		_spec.ClearField(problemspec.FieldProvenanceLog, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(problemspec.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &ProblemSpec{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{problemspec.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
