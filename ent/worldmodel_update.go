// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/assaylab/assay/ent/predicate"
	"github.com/assaylab/assay/ent/worldmodel"
)

// WorldModelUpdate is the builder for updating WorldModel entities.
type WorldModelUpdate struct {
	config
	hooks    []Hook
	mutation *WorldModelMutation
}

// Where appends a list predicates to the WorldModelUpdate builder.
func (_u *WorldModelUpdate) Where(ps ...predicate.WorldModel) *WorldModelUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetModelData sets the "model_data" field.
func (_u *WorldModelUpdate) SetModelData(v map[string]interface{}) *WorldModelUpdate {
	_u.mutation.SetModelData(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WorldModelUpdate) SetUpdatedAt(v time.Time) *WorldModelUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the WorldModelMutation object of the builder.
func (_u *WorldModelUpdate) Mutation() *WorldModelMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WorldModelUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorldModelUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WorldModelUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorldModelUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WorldModelUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := worldmodel.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorldModelUpdate) check() error {
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "WorldModel.project"`)
	}
	return nil
}

func (_u *WorldModelUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(worldmodel.Table, worldmodel.Columns, sqlgraph.NewFieldSpec(worldmodel.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ModelData(); ok {
		_spec.SetField(worldmodel.FieldModelData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(worldmodel.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{worldmodel.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WorldModelUpdateOne is the builder for updating a single WorldModel entity.
type WorldModelUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WorldModelMutation
}

// SetModelData sets the "model_data" field.
func (_u *WorldModelUpdateOne) SetModelData(v map[string]interface{}) *WorldModelUpdateOne {
	_u.mutation.SetModelData(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WorldModelUpdateOne) SetUpdatedAt(v time.Time) *WorldModelUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the WorldModelMutation object of the builder.
func (_u *WorldModelUpdateOne) Mutation() *WorldModelMutation {
	return _u.mutation
}

// Where appends a list predicates to the WorldModelUpdate builder.
func (_u *WorldModelUpdateOne) Where(ps ...predicate.WorldModel) *WorldModelUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WorldModelUpdateOne) Select(field string, fields ...string) *WorldModelUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated WorldModel entity.
func (_u *WorldModelUpdateOne) Save(ctx context.Context) (*WorldModel, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorldModelUpdateOne) SaveX(ctx context.Context) *WorldModel {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WorldModelUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorldModelUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WorldModelUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := worldmodel.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorldModelUpdateOne) check() error {
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "WorldModel.project"`)
	}
	return nil
}

func (_u *WorldModelUpdateOne) sqlSave(ctx context.Context) (_node *WorldModel, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(worldmodel.Table, worldmodel.Columns, sqlgraph.NewFieldSpec(worldmodel.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "WorldModel.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, worldmodel.FieldID)
		for _, f := range fields {
			if !worldmodel.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != worldmodel.FieldID {
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
	if value, ok := _u.mutation.ModelData(); ok {
		_spec.SetField(worldmodel.FieldModelData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(worldmodel.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &WorldModel{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{worldmodel.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
