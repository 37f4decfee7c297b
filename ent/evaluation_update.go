// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/assaylab/assay/ent/evaluation"
	"github.com/assaylab/assay/ent/predicate"
	"github.com/assaylab/assay/pkg/models"
)

// EvaluationUpdate is the builder for updating Evaluation entities.
type EvaluationUpdate struct {
	config
	hooks    []Hook
	mutation *EvaluationMutation
}

// Where appends a list predicates to the EvaluationUpdate builder.
func (_u *EvaluationUpdate) Where(ps ...predicate.Evaluation) *EvaluationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetP sets the "p" field.
func (_u *EvaluationUpdate) SetP(v models.Signal) *EvaluationUpdate {
	_u.mutation.SetP(v)
	return _u
}

// SetNillableP sets the "p" field if the given value is not nil.
func (_u *EvaluationUpdate) SetNillableP(v *models.Signal) *EvaluationUpdate {
	if v != nil {
		_u.SetP(*v)
	}
	return _u
}

// SetR sets the "r" field.
func (_u *EvaluationUpdate) SetR(v models.Signal) *EvaluationUpdate {
	_u.mutation.SetR(v)
	return _u
}

// SetNillableR sets the "r" field if the given value is not nil.
func (_u *EvaluationUpdate) SetNillableR(v *models.Signal) *EvaluationUpdate {
	if v != nil {
		_u.SetR(*v)
	}
	return _u
}

// SetConstraintSatisfaction sets the "constraint_satisfaction" field.
func (_u *EvaluationUpdate) SetConstraintSatisfaction(v map[string]models.ConstraintResult) *EvaluationUpdate {
	_u.mutation.SetConstraintSatisfaction(v)
	return _u
}

// ClearConstraintSatisfaction clears the value of the "constraint_satisfaction" field.
func (_u *EvaluationUpdate) ClearConstraintSatisfaction() *EvaluationUpdate {
	_u.mutation.ClearConstraintSatisfaction()
	return _u
}

// SetExplanation sets the "explanation" field.
func (_u *EvaluationUpdate) SetExplanation(v string) *EvaluationUpdate {
	_u.mutation.SetExplanation(v)
	return _u
}

// SetNillableExplanation sets the "explanation" field if the given value is not nil.
func (_u *EvaluationUpdate) SetNillableExplanation(v *string) *EvaluationUpdate {
	if v != nil {
		_u.SetExplanation(*v)
	}
	return _u
}

// ClearExplanation clears the value of the "explanation" field.
func (_u *EvaluationUpdate) ClearExplanation() *EvaluationUpdate {
	_u.mutation.ClearExplanation()
	return _u
}

// Mutation returns the EvaluationMutation object of the builder.
func (_u *EvaluationUpdate) Mutation() *EvaluationMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EvaluationUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EvaluationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EvaluationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EvaluationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EvaluationUpdate) check() error {
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Evaluation.run"`)
	}
	return nil
}

func (_u *EvaluationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(evaluation.Table, evaluation.Columns, sqlgraph.NewFieldSpec(evaluation.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.P(); ok {
		_spec.SetField(evaluation.FieldP, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.R(); ok {
		_spec.SetField(evaluation.FieldR, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.ConstraintSatisfaction(); ok {
		_spec.SetField(evaluation.FieldConstraintSatisfaction, field.TypeJSON, value)
	}
	if _u.mutation.ConstraintSatisfactionCleared() {
		_spec.ClearField(evaluation.FieldConstraintSatisfaction, field.TypeJSON)
	}
	if value, ok := _u.mutation.Explanation(); ok {
		_spec.SetField(evaluation.FieldExplanation, field.TypeString, value)
	}
	if _u.mutation.ExplanationCleared() {
		_spec.ClearField(evaluation.FieldExplanation, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{evaluation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EvaluationUpdateOne is the builder for updating a single Evaluation entity.
type EvaluationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EvaluationMutation
}

// SetP sets the "p" field.
func (_u *EvaluationUpdateOne) SetP(v models.Signal) *EvaluationUpdateOne {
	_u.mutation.SetP(v)
	return _u
}

// SetNillableP sets the "p" field if the given value is not nil.
func (_u *EvaluationUpdateOne) SetNillableP(v *models.Signal) *EvaluationUpdateOne {
	if v != nil {
		_u.SetP(*v)
	}
	return _u
}

// SetR sets the "r" field.
func (_u *EvaluationUpdateOne) SetR(v models.Signal) *EvaluationUpdateOne {
	_u.mutation.SetR(v)
	return _u
}

// SetNillableR sets the "r" field if the given value is not nil.
func (_u *EvaluationUpdateOne) SetNillableR(v *models.Signal) *EvaluationUpdateOne {
	if v != nil {
		_u.SetR(*v)
	}
	return _u
}

// SetConstraintSatisfaction sets the "constraint_satisfaction" field.
func (_u *EvaluationUpdateOne) SetConstraintSatisfaction(v map[string]models.ConstraintResult) *EvaluationUpdateOne {
	_u.mutation.SetConstraintSatisfaction(v)
	return _u
}

// ClearConstraintSatisfaction clears the value of the "constraint_satisfaction" field.
func (_u *EvaluationUpdateOne) ClearConstraintSatisfaction() *EvaluationUpdateOne {
	_u.mutation.ClearConstraintSatisfaction()
	return _u
}

// SetExplanation sets the "explanation" field.
func (_u *EvaluationUpdateOne) SetExplanation(v string) *EvaluationUpdateOne {
	_u.mutation.SetExplanation(v)
	return _u
}

// SetNillableExplanation sets the "explanation" field if the given value is not nil.
func (_u *EvaluationUpdateOne) SetNillableExplanation(v *string) *EvaluationUpdateOne {
	if v != nil {
		_u.SetExplanation(*v)
	}
	return _u
}

// ClearExplanation clears the value of the "explanation" field.
func (_u *EvaluationUpdateOne) ClearExplanation() *EvaluationUpdateOne {
	_u.mutation.ClearExplanation()
	return _u
}

// Mutation returns the EvaluationMutation object of the builder.
func (_u *EvaluationUpdateOne) Mutation() *EvaluationMutation {
	return _u.mutation
}

// Where appends a list predicates to the EvaluationUpdate builder.
func (_u *EvaluationUpdateOne) Where(ps ...predicate.Evaluation) *EvaluationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EvaluationUpdateOne) Select(field string, fields ...string) *EvaluationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Evaluation entity.
func (_u *EvaluationUpdateOne) Save(ctx context.Context) (*Evaluation, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EvaluationUpdateOne) SaveX(ctx context.Context) *Evaluation {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EvaluationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EvaluationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EvaluationUpdateOne) check() error {
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Evaluation.run"`)
	}
	return nil
}

func (_u *EvaluationUpdateOne) sqlSave(ctx context.Context) (_node *Evaluation, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(evaluation.Table, evaluation.Columns, sqlgraph.NewFieldSpec(evaluation.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Evaluation.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, evaluation.FieldID)
		for _, f := range fields {
			if !evaluation.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != evaluation.FieldID {
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
	if value, ok := _u.mutation.P(); ok {
		_spec.SetField(evaluation.FieldP, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.R(); ok {
		_spec.SetField(evaluation.FieldR, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.ConstraintSatisfaction(); ok {
		_spec.SetField(evaluation.FieldConstraintSatisfaction, field.TypeJSON, value)
	}
	if _u.mutation.ConstraintSatisfactionCleared() {
		_spec.ClearField(evaluation.FieldConstraintSatisfaction, field.TypeJSON)
	}
	if value, ok := _u.mutation.Explanation(); ok {
		_spec.SetField(evaluation.FieldExplanation, field.TypeString, value)
	}
	if _u.mutation.ExplanationCleared() {
		_spec.ClearField(evaluation.FieldExplanation, field.TypeString)
	}
	_node = &Evaluation{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{evaluation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
