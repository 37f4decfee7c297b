// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/assaylab/assay/ent/issue"
	"github.com/assaylab/assay/ent/project"
	"github.com/assaylab/assay/pkg/models"
)

// IssueCreate is the builder for creating a Issue entity.
type IssueCreate struct {
	config
	mutation *IssueMutation
	hooks    []Hook
}

// SetProjectID sets the "project_id" field.
func (_c *IssueCreate) SetProjectID(v string) *IssueCreate {
	_c.mutation.SetProjectID(v)
	return _c
}

// SetRunID sets the "run_id" field.
func (_c *IssueCreate) SetRunID(v string) *IssueCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_c *IssueCreate) SetNillableRunID(v *string) *IssueCreate {
	if v != nil {
		_c.SetRunID(*v)
	}
	return _c
}

// SetCandidateID sets the "candidate_id" field.
func (_c *IssueCreate) SetCandidateID(v string) *IssueCreate {
	_c.mutation.SetCandidateID(v)
	return _c
}

// SetNillableCandidateID sets the "candidate_id" field if the given value is not nil.
func (_c *IssueCreate) SetNillableCandidateID(v *string) *IssueCreate {
	if v != nil {
		_c.SetCandidateID(*v)
	}
	return _c
}

// SetIssueType sets the "issue_type" field.
func (_c *IssueCreate) SetIssueType(v issue.IssueType) *IssueCreate {
	_c.mutation.SetIssueType(v)
	return _c
}

// SetSeverity sets the "severity" field.
func (_c *IssueCreate) SetSeverity(v issue.Severity) *IssueCreate {
	_c.mutation.SetSeverity(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *IssueCreate) SetDescription(v string) *IssueCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetResolutionStatus sets the "resolution_status" field.
func (_c *IssueCreate) SetResolutionStatus(v issue.ResolutionStatus) *IssueCreate {
	_c.mutation.SetResolutionStatus(v)
	return _c
}

// SetNillableResolutionStatus sets the "resolution_status" field if the given value is not nil.
func (_c *IssueCreate) SetNillableResolutionStatus(v *issue.ResolutionStatus) *IssueCreate {
	if v != nil {
		_c.SetResolutionStatus(*v)
	}
	return _c
}

// SetResolvedAt sets the "resolved_at" field.
func (_c *IssueCreate) SetResolvedAt(v time.Time) *IssueCreate {
	_c.mutation.SetResolvedAt(v)
	return _c
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_c *IssueCreate) SetNillableResolvedAt(v *time.Time) *IssueCreate {
	if v != nil {
		_c.SetResolvedAt(*v)
	}
	return _c
}

// SetRemediation sets the "remediation" field.
func (_c *IssueCreate) SetRemediation(v *models.RemediationRecord) *IssueCreate {
	_c.mutation.SetRemediation(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *IssueCreate) SetCreatedAt(v time.Time) *IssueCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *IssueCreate) SetNillableCreatedAt(v *time.Time) *IssueCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *IssueCreate) SetUpdatedAt(v time.Time) *IssueCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *IssueCreate) SetNillableUpdatedAt(v *time.Time) *IssueCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *IssueCreate) SetID(v string) *IssueCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetProject sets the "project" edge to the Project entity.
func (_c *IssueCreate) SetProject(v *Project) *IssueCreate {
	return _c.SetProjectID(v.ID)
}

// Mutation returns the IssueMutation object of the builder.
func (_c *IssueCreate) Mutation() *IssueMutation {
	return _c.mutation
}

// Save creates the Issue in the database.
func (_c *IssueCreate) Save(ctx context.Context) (*Issue, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *IssueCreate) SaveX(ctx context.Context) *Issue {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *IssueCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *IssueCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *IssueCreate) defaults() {
	if _, ok := _c.mutation.ResolutionStatus(); !ok {
		v := issue.DefaultResolutionStatus
		_c.mutation.SetResolutionStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := issue.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := issue.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *IssueCreate) check() error {
	if _, ok := _c.mutation.ProjectID(); !ok {
		return &ValidationError{Name: "project_id", err: errors.New(`ent: missing required field "Issue.project_id"`)}
	}
	if _, ok := _c.mutation.IssueType(); !ok {
		return &ValidationError{Name: "issue_type", err: errors.New(`ent: missing required field "Issue.issue_type"`)}
	}
	if v, ok := _c.mutation.IssueType(); ok {
		if err := issue.IssueTypeValidator(v); err != nil {
			return &ValidationError{Name: "issue_type", err: fmt.Errorf(`ent: validator failed for field "Issue.issue_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Severity(); !ok {
		return &ValidationError{Name: "severity", err: errors.New(`ent: missing required field "Issue.severity"`)}
	}
	if v, ok := _c.mutation.Severity(); ok {
		if err := issue.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "Issue.severity": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "Issue.description"`)}
	}
	if _, ok := _c.mutation.ResolutionStatus(); !ok {
		return &ValidationError{Name: "resolution_status", err: errors.New(`ent: missing required field "Issue.resolution_status"`)}
	}
	if v, ok := _c.mutation.ResolutionStatus(); ok {
		if err := issue.ResolutionStatusValidator(v); err != nil {
			return &ValidationError{Name: "resolution_status", err: fmt.Errorf(`ent: validator failed for field "Issue.resolution_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Issue.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Issue.updated_at"`)}
	}
	if len(_c.mutation.ProjectIDs()) == 0 {
		return &ValidationError{Name: "project", err: errors.New(`ent: missing required edge "Issue.project"`)}
	}
	return nil
}

func (_c *IssueCreate) sqlSave(ctx context.Context) (*Issue, error) {
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
			return nil, fmt.Errorf("unexpected Issue.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *IssueCreate) createSpec() (*Issue, *sqlgraph.CreateSpec) {
	var (
		_node = &Issue{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(issue.Table, sqlgraph.NewFieldSpec(issue.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.RunID(); ok {
		_spec.SetField(issue.FieldRunID, field.TypeString, value)
		_node.RunID = &value
	}
	if value, ok := _c.mutation.CandidateID(); ok {
		_spec.SetField(issue.FieldCandidateID, field.TypeString, value)
		_node.CandidateID = &value
	}
	if value, ok := _c.mutation.IssueType(); ok {
		_spec.SetField(issue.FieldIssueType, field.TypeEnum, value)
		_node.IssueType = value
	}
	if value, ok := _c.mutation.Severity(); ok {
		_spec.SetField(issue.FieldSeverity, field.TypeEnum, value)
		_node.Severity = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(issue.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.ResolutionStatus(); ok {
		_spec.SetField(issue.FieldResolutionStatus, field.TypeEnum, value)
		_node.ResolutionStatus = value
	}
	if value, ok := _c.mutation.ResolvedAt(); ok {
		_spec.SetField(issue.FieldResolvedAt, field.TypeTime, value)
		_node.ResolvedAt = &value
	}
	if value, ok := _c.mutation.Remediation(); ok {
		_spec.SetField(issue.FieldRemediation, field.TypeJSON, value)
		_node.Remediation = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(issue.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(issue.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ProjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   issue.ProjectTable,
			Columns: []string{issue.ProjectColumn},
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

// IssueCreateBulk is the builder for creating many Issue entities in bulk.
type IssueCreateBulk struct {
	config
	err      error
	builders []*IssueCreate
}

// Save creates the Issue entities in the database.
func (_c *IssueCreateBulk) Save(ctx context.Context) ([]*Issue, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Issue, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*IssueMutation)
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
func (_c *IssueCreateBulk) SaveX(ctx context.Context) []*Issue {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *IssueCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *IssueCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
