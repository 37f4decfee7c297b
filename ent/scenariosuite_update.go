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
	"github.com/assaylab/assay/ent/scenariosuite"
	"github.com/assaylab/assay/pkg/models"
	"github.com/assaylab/assay/pkg/provenance"
)

// ScenarioSuiteUpdate is the builder for updating ScenarioSuite entities.
type ScenarioSuiteUpdate struct {
	config
	hooks    []Hook
	mutation *ScenarioSuiteMutation
}

// Where appends a list predicates to the ScenarioSuiteUpdate builder.
func (_u *ScenarioSuiteUpdate) Where(ps ...predicate.ScenarioSuite) *ScenarioSuiteUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetScenarios sets the "scenarios" field.
func (_u *ScenarioSuiteUpdate) SetScenarios(v []models.Scenario) *ScenarioSuiteUpdate {
	_u.mutation.SetScenarios(v)
	return _u
}

// AppendScenarios appends value to the "scenarios" field.
func (_u *ScenarioSuiteUpdate) AppendScenarios(v []models.Scenario) *ScenarioSuiteUpdate {
	_u.mutation.AppendScenarios(v)
	return _u
}

// SetProvenanceLog sets the "provenance_log" field.
func (_u *ScenarioSuiteUpdate) SetProvenanceLog(v []provenance.Entry) *ScenarioSuiteUpdate {
	_u.mutation.SetProvenanceLog(v)
	return _u
}

// AppendProvenanceLog appends value to the "provenance_log" field.
func (_u *ScenarioSuiteUpdate) AppendProvenanceLog(v []provenance.Entry) *ScenarioSuiteUpdate {
	_u.mutation.AppendProvenanceLog(v)
	return _u
}

// ClearProvenanceLog clears the value of the "provenance_log" field.
func (_u *ScenarioSuiteUpdate) ClearProvenanceLog() *ScenarioSuiteUpdate {
	_u.mutation.ClearProvenanceLog()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ScenarioSuiteUpdate) SetUpdatedAt(v time.Time) *ScenarioSuiteUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ScenarioSuiteMutation object of the builder.
func (_u *ScenarioSuiteUpdate) Mutation() *ScenarioSuiteMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ScenarioSuiteUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScenarioSuiteUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ScenarioSuiteUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScenarioSuiteUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ScenarioSuiteUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := scenariosuite.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScenarioSuiteUpdate) check() error {
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ScenarioSuite.run"`)
	}
	return nil
}

func (_u *ScenarioSuiteUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(scenariosuite.Table, scenariosuite.Columns, sqlgraph.NewFieldSpec(scenariosuite.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Scenarios(); ok {
		_spec.SetField(scenariosuite.FieldScenarios, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedScenarios(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, scenariosuite.FieldScenarios, value)
		})
	}
	if value, ok := _u.mutation.ProvenanceLog(); ok {
		_spec.SetField(scenariosuite.FieldProvenanceLog, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedProvenanceLog(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, scenariosuite.FieldProvenanceLog, value)
		})
	}
	if _u.mutation.ProvenanceLogCleared() {
		_spec.ClearField(scenariosuite.FieldProvenanceLog, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(scenariosuite.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scenariosuite.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ScenarioSuiteUpdateOne is the builder for updating a single ScenarioSuite entity.
type ScenarioSuiteUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ScenarioSuiteMutation
}

// SetScenarios sets the "scenarios" field.
func (_u *ScenarioSuiteUpdateOne) SetScenarios(v []models.Scenario) *ScenarioSuiteUpdateOne {
	_u.mutation.SetScenarios(v)
	return _u
}

// AppendScenarios appends value to the "scenarios" field.
func (_u *ScenarioSuiteUpdateOne) AppendScenarios(v []models.Scenario) *ScenarioSuiteUpdateOne {
	_u.mutation.AppendScenarios(v)
	return _u
}

// SetProvenanceLog sets the "provenance_log" field.
func (_u *ScenarioSuiteUpdateOne) SetProvenanceLog(v []provenance.Entry) *ScenarioSuiteUpdateOne {
	_u.mutation.SetProvenanceLog(v)
	return _u
}

// AppendProvenanceLog appends value to the "provenance_log" field.
func (_u *ScenarioSuiteUpdateOne) AppendProvenanceLog(v []provenance.Entry) *ScenarioSuiteUpdateOne {
	_u.mutation.AppendProvenanceLog(v)
	return _u
}

// ClearProvenanceLog clears the value of the "provenance_log" field.
func (_u *ScenarioSuiteUpdateOne) ClearProvenanceLog() *ScenarioSuiteUpdateOne {
	_u.mutation.ClearProvenanceLog()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ScenarioSuiteUpdateOne) SetUpdatedAt(v time.Time) *ScenarioSuiteUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ScenarioSuiteMutation object of the builder.
func (_u *ScenarioSuiteUpdateOne) Mutation() *ScenarioSuiteMutation {
	return _u.mutation
}

// Where appends a list predicates to the ScenarioSuiteUpdate builder.
func (_u *ScenarioSuiteUpdateOne) Where(ps ...predicate.ScenarioSuite) *ScenarioSuiteUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ScenarioSuiteUpdateOne) Select(field string, fields ...string) *ScenarioSuiteUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ScenarioSuite entity.
func (_u *ScenarioSuiteUpdateOne) Save(ctx context.Context) (*ScenarioSuite, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScenarioSuiteUpdateOne) SaveX(ctx context.Context) *ScenarioSuite {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ScenarioSuiteUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScenarioSuiteUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ScenarioSuiteUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := scenariosuite.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScenarioSuiteUpdateOne) check() error {
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ScenarioSuite.run"`)
	}
	return nil
}

func (_u *ScenarioSuiteUpdateOne) sqlSave(ctx context.Context) (_node *ScenarioSuite, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(scenariosuite.Table, scenariosuite.Columns, sqlgraph.NewFieldSpec(scenariosuite.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ScenarioSuite.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, scenariosuite.FieldID)
		for _, f := range fields {
			if !scenariosuite.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != scenariosuite.FieldID {
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
	if value, ok := _u.mutation.Scenarios(); ok {
		_spec.SetField(scenariosuite.FieldScenarios, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedScenarios(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, scenariosuite.FieldScenarios, value)
		})
	}
	if value, ok := _u.mutation.ProvenanceLog(); ok {
		_spec.SetField(scenariosuite.FieldProvenanceLog, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedProvenanceLog(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, scenariosuite.FieldProvenanceLog, value)
		})
	}
	if _u.mutation.ProvenanceLogCleared() {
		_spec.ClearField(scenariosuite.FieldProvenanceLog, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(scenariosuite.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &ScenarioSuite{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scenariosuite.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
