// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/assaylab/assay/ent/run"
	"github.com/assaylab/assay/ent/scenariosuite"
	"github.com/assaylab/assay/pkg/models"
	"github.com/assaylab/assay/pkg/provenance"
)

// ScenarioSuiteCreate is the builder for creating a ScenarioSuite entity.
type ScenarioSuiteCreate struct {
	config
	mutation *ScenarioSuiteMutation
	hooks    []Hook
}

// SetRunID sets the "run_id" field.
func (_c *ScenarioSuiteCreate) SetRunID(v string) *ScenarioSuiteCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetProjectID sets the "project_id" field.
func (_c *ScenarioSuiteCreate) SetProjectID(v string) *ScenarioSuiteCreate {
	_c.mutation.SetProjectID(v)
	return _c
}

// SetScenarios sets the "scenarios" field.
func (_c *ScenarioSuiteCreate) SetScenarios(v []models.Scenario) *ScenarioSuiteCreate {
	_c.mutation.SetScenarios(v)
	return _c
}

// SetProvenanceLog sets the "provenance_log" field.
func (_c *ScenarioSuiteCreate) SetProvenanceLog(v []provenance.Entry) *ScenarioSuiteCreate {
	_c.mutation.SetProvenanceLog(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ScenarioSuiteCreate) SetCreatedAt(v time.Time) *ScenarioSuiteCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ScenarioSuiteCreate) SetNillableCreatedAt(v *time.Time) *ScenarioSuiteCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ScenarioSuiteCreate) SetUpdatedAt(v time.Time) *ScenarioSuiteCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ScenarioSuiteCreate) SetNillableUpdatedAt(v *time.Time) *ScenarioSuiteCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ScenarioSuiteCreate) SetID(v string) *ScenarioSuiteCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetRun sets the "run" edge to the Run entity.
func (_c *ScenarioSuiteCreate) SetRun(v *Run) *ScenarioSuiteCreate {
	return _c.SetRunID(v.ID)
}

// Mutation returns the ScenarioSuiteMutation object of the builder.
func (_c *ScenarioSuiteCreate) Mutation() *ScenarioSuiteMutation {
	return _c.mutation
}

// Save creates the ScenarioSuite in the database.
func (_c *ScenarioSuiteCreate) Save(ctx context.Context) (*ScenarioSuite, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ScenarioSuiteCreate) SaveX(ctx context.Context) *ScenarioSuite {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScenarioSuiteCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScenarioSuiteCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ScenarioSuiteCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := scenariosuite.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := scenariosuite.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ScenarioSuiteCreate) check() error {
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "ScenarioSuite.run_id"`)}
	}
	if _, ok := _c.mutation.ProjectID(); !ok {
		return &ValidationError{Name: "project_id", err: errors.New(`ent: missing required field "ScenarioSuite.project_id"`)}
	}
	if _, ok := _c.mutation.Scenarios(); !ok {
		return &ValidationError{Name: "scenarios", err: errors.New(`ent: missing required field "ScenarioSuite.scenarios"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ScenarioSuite.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ScenarioSuite.updated_at"`)}
	}
	if len(_c.mutation.RunIDs()) == 0 {
		return &ValidationError{Name: "run", err: errors.New(`ent: missing required edge "ScenarioSuite.run"`)}
	}
	return nil
}

func (_c *ScenarioSuiteCreate) sqlSave(ctx context.Context) (*ScenarioSuite, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected ScenarioSuite.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ScenarioSuiteCreate) createSpec() (*ScenarioSuite, *sqlgraph.CreateSpec) {
	var (
		_node = &ScenarioSuite{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(scenariosuite.Table, sqlgraph.NewFieldSpec(scenariosuite.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ProjectID(); ok {
		_spec.SetField(scenariosuite.FieldProjectID, field.TypeString, value)
		_node.ProjectID = value
	}
	if value, ok := _c.mutation.Scenarios(); ok {
		_spec.SetField(scenariosuite.FieldScenarios, field.TypeJSON, value)
		_node.Scenarios = value
	}
	if value, ok := _c.mutation.ProvenanceLog(); ok {
		_spec.SetField(scenariosuite.FieldProvenanceLog, field.TypeJSON, value)
		_node.ProvenanceLog = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(scenariosuite.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(scenariosuite.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.RunIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   scenariosuite.RunTable,
			Columns: []string{scenariosuite.RunColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(run.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.RunID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ScenarioSuiteCreateBulk is the builder for creating many ScenarioSuite entities in bulk.
type ScenarioSuiteCreateBulk struct {
	config
	err      error
	builders []*ScenarioSuiteCreate
}

// Save creates the ScenarioSuite entities in the database.
func (_c *ScenarioSuiteCreateBulk) Save(ctx context.Context) ([]*ScenarioSuite, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ScenarioSuite, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ScenarioSuiteMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ScenarioSuiteCreateBulk) SaveX(ctx context.Context) []*ScenarioSuite {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScenarioSuiteCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScenarioSuiteCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
