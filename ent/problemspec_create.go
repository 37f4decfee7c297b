// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/assaylab/assay/ent/problemspec"
	"github.com/assaylab/assay/ent/project"
	"github.com/assaylab/assay/pkg/models"
	"github.com/assaylab/assay/pkg/provenance"
)

// ProblemSpecCreate is the builder for creating a ProblemSpec entity.
type ProblemSpecCreate struct {
	config
	mutation *ProblemSpecMutation
	hooks    []Hook
}

// SetProjectID sets the "project_id" field.
func (_c *ProblemSpecCreate) SetProjectID(v string) *ProblemSpecCreate {
	_c.mutation.SetProjectID(v)
	return _c
}

// SetConstraints sets the "constraints" field.
func (_c *ProblemSpecCreate) SetConstraints(v []models.Constraint) *ProblemSpecCreate {
	_c.mutation.SetConstraints(v)
	return _c
}

// SetGoals sets the "goals" field.
func (_c *ProblemSpecCreate) SetGoals(v []string) *ProblemSpecCreate {
	_c.mutation.SetGoals(v)
	return _c
}

// SetResolution sets the "resolution" field.
func (_c *ProblemSpecCreate) SetResolution(v problemspec.Resolution) *ProblemSpecCreate {
	_c.mutation.SetResolution(v)
	return _c
}

// SetNillableResolution sets the "resolution" field if the given value is not nil.
func (_c *ProblemSpecCreate) SetNillableResolution(v *problemspec.Resolution) *ProblemSpecCreate {
	if v != nil {
		_c.SetResolution(*v)
	}
	return _c
}

// SetMode sets the "mode" field.
func (_c *ProblemSpecCreate) SetMode(v problemspec.Mode) *ProblemSpecCreate {
	_c.mutation.SetMode(v)
	return _c
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_c *ProblemSpecCreate) SetNillableMode(v *problemspec.Mode) *ProblemSpecCreate {
	if v != nil {
		_c.SetMode(*v)
	}
	return _c
}

// SetProvenanceLog sets the "provenance_log" field.
func (_c *ProblemSpecCreate) SetProvenanceLog(v []provenance.Entry) *ProblemSpecCreate {
	_c.mutation.SetProvenanceLog(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ProblemSpecCreate) SetCreatedAt(v time.Time) *ProblemSpecCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ProblemSpecCreate) SetNillableCreatedAt(v *time.Time) *ProblemSpecCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ProblemSpecCreate) SetUpdatedAt(v time.Time) *ProblemSpecCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ProblemSpecCreate) SetNillableUpdatedAt(v *time.Time) *ProblemSpecCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ProblemSpecCreate) SetID(v string) *ProblemSpecCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetProject sets the "project" edge to the Project entity.
func (_c *ProblemSpecCreate) SetProject(v *Project) *ProblemSpecCreate {
	return _c.SetProjectID(v.ID)
}

// Mutation returns the ProblemSpecMutation object of the builder.
func (_c *ProblemSpecCreate) Mutation() *ProblemSpecMutation {
	return _c.mutation
}

// Save creates the ProblemSpec in the database.
func (_c *ProblemSpecCreate) Save(ctx context.Context) (*ProblemSpec, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProblemSpecCreate) SaveX(ctx context.Context) *ProblemSpec {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProblemSpecCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProblemSpecCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProblemSpecCreate) defaults() {
	if _, ok := _c.mutation.Resolution(); !ok {
		v := problemspec.DefaultResolution
		_c.mutation.SetResolution(v)
	}
	if _, ok := _c.mutation.Mode(); !ok {
		v := problemspec.DefaultMode
		_c.mutation.SetMode(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := problemspec.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := problemspec.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProblemSpecCreate) check() error {
	if _, ok := _c.mutation.ProjectID(); !ok {
		return &ValidationError{Name: "project_id", err: errors.New(`ent: missing required field "ProblemSpec.project_id"`)}
	}
	if _, ok := _c.mutation.Constraints(); !ok {
		return &ValidationError{Name: "constraints", err: errors.New(`ent: missing required field "ProblemSpec.constraints"`)}
	}
	if _, ok := _c.mutation.Resolution(); !ok {
		return &ValidationError{Name: "resolution", err: errors.New(`ent: missing required field "ProblemSpec.resolution"`)}
	}
	if v, ok := _c.mutation.Resolution(); ok {
		if err := problemspec.ResolutionValidator(v); err != nil {
			return &ValidationError{Name: "resolution", err: fmt.Errorf(`ent: validator failed for field "ProblemSpec.resolution": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Mode(); !ok {
		return &ValidationError{Name: "mode", err: errors.New(`ent: missing required field "ProblemSpec.mode"`)}
	}
	if v, ok := _c.mutation.Mode(); ok {
		if err := problemspec.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "ProblemSpec.mode": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ProblemSpec.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ProblemSpec.updated_at"`)}
	}
	if len(_c.mutation.ProjectIDs()) == 0 {
		return &ValidationError{Name: "project", err: errors.New(`ent: missing required edge "ProblemSpec.project"`)}
	}
	return nil
}

func (_c *ProblemSpecCreate) sqlSave(ctx context.Context) (*ProblemSpec, error) {
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
			return nil, fmt.Errorf("unexpected ProblemSpec.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ProblemSpecCreate) createSpec() (*ProblemSpec, *sqlgraph.CreateSpec) {
	var (
		_node = &ProblemSpec{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(problemspec.Table, sqlgraph.NewFieldSpec(problemspec.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Constraints(); ok {
		_spec.SetField(problemspec.FieldConstraints, field.TypeJSON, value)
		_node.Constraints = value
	}
	if value, ok := _c.mutation.Goals(); ok {
		_spec.SetField(problemspec.FieldGoals, field.TypeJSON, value)
		_node.Goals = value
	}
	if value, ok := _c.mutation.Resolution(); ok {
		_spec.SetField(problemspec.FieldResolution, field.TypeEnum, value)
		_node.Resolution = value
	}
	if value, ok := _c.mutation.Mode(); ok {
		_spec.SetField(problemspec.FieldMode, field.TypeEnum, value)
		_node.Mode = value
	}
	if value, ok := _c.mutation.ProvenanceLog(); ok {
		_spec.SetField(problemspec.FieldProvenanceLog, field.TypeJSON, value)
		_node.ProvenanceLog = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(problemspec.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(problemspec.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ProjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   problemspec.ProjectTable,
			Columns: []string{problemspec.ProjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ProjectID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ProblemSpecCreateBulk is the builder for creating many ProblemSpec entities in bulk.
type ProblemSpecCreateBulk struct {
	config
	err      error
	builders []*ProblemSpecCreate
}

// Save creates the ProblemSpec entities in the database.
func (_c *ProblemSpecCreateBulk) Save(ctx context.Context) ([]*ProblemSpec, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ProblemSpec, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProblemSpecMutation)
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
func (_c *ProblemSpecCreateBulk) SaveX(ctx context.Context) []*ProblemSpec {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProblemSpecCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProblemSpecCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
