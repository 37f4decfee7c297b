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
	"github.com/assaylab/assay/ent/issue"
	"github.com/assaylab/assay/ent/predicate"
	"github.com/assaylab/assay/pkg/models"
)

// IssueUpdate is the builder for updating Issue entities.
type IssueUpdate struct {
	config
	hooks    []Hook
	mutation *IssueMutation
}

// Where appends a list predicates to the IssueUpdate builder.
func (_u *IssueUpdate) Where(ps ...predicate.Issue) *IssueUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRunID sets the "run_id" field.
func (_u *IssueUpdate) SetRunID(v string) *IssueUpdate {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *IssueUpdate) SetNillableRunID(v *string) *IssueUpdate {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// ClearRunID clears the value of the "run_id" field.
func (_u *IssueUpdate) ClearRunID() *IssueUpdate {
	_u.mutation.ClearRunID()
	return _u
}

// SetCandidateID sets the "candidate_id" field.
func (_u *IssueUpdate) SetCandidateID(v string) *IssueUpdate {
	_u.mutation.SetCandidateID(v)
	return _u
}

// SetNillableCandidateID sets the "candidate_id" field if the given value is not nil.
func (_u *IssueUpdate) SetNillableCandidateID(v *string) *IssueUpdate {
	if v != nil {
		_u.SetCandidateID(*v)
	}
	return _u
}

// ClearCandidateID clears the value of the "candidate_id" field.
func (_u *IssueUpdate) ClearCandidateID() *IssueUpdate {
	_u.mutation.ClearCandidateID()
	return _u
}

// SetIssueType sets the "issue_type" field.
func (_u *IssueUpdate) SetIssueType(v issue.IssueType) *IssueUpdate {
	_u.mutation.SetIssueType(v)
	return _u
}

// SetNillableIssueType sets the "issue_type" field if the given value is not nil.
func (_u *IssueUpdate) SetNillableIssueType(v *issue.IssueType) *IssueUpdate {
	if v != nil {
		_u.SetIssueType(*v)
	}
	return _u
}

// SetSeverity sets the "severity" field.
func (_u *IssueUpdate) SetSeverity(v issue.Severity) *IssueUpdate {
	_u.mutation.SetSeverity(v)
	return _u
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_u *IssueUpdate) SetNillableSeverity(v *issue.Severity) *IssueUpdate {
	if v != nil {
		_u.SetSeverity(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *IssueUpdate) SetDescription(v string) *IssueUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *IssueUpdate) SetNillableDescription(v *string) *IssueUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetResolutionStatus sets the "resolution_status" field.
func (_u *IssueUpdate) SetResolutionStatus(v issue.ResolutionStatus) *IssueUpdate {
	_u.mutation.SetResolutionStatus(v)
	return _u
}

// SetNillableResolutionStatus sets the "resolution_status" field if the given value is not nil.
func (_u *IssueUpdate) SetNillableResolutionStatus(v *issue.ResolutionStatus) *IssueUpdate {
	if v != nil {
		_u.SetResolutionStatus(*v)
	}
	return _u
}

// SetResolvedAt sets the "resolved_at" field.
func (_u *IssueUpdate) SetResolvedAt(v time.Time) *IssueUpdate {
	_u.mutation.SetResolvedAt(v)
	return _u
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_u *IssueUpdate) SetNillableResolvedAt(v *time.Time) *IssueUpdate {
	if v != nil {
		_u.SetResolvedAt(*v)
	}
	return _u
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (_u *IssueUpdate) ClearResolvedAt() *IssueUpdate {
	_u.mutation.ClearResolvedAt()
	return _u
}

// SetRemediation sets the "remediation" field.
func (_u *IssueUpdate) SetRemediation(v *models.RemediationRecord) *IssueUpdate {
	_u.mutation.SetRemediation(v)
	return _u
}

// ClearRemediation clears the value of the "remediation" field.
func (_u *IssueUpdate) ClearRemediation() *IssueUpdate {
	_u.mutation.ClearRemediation()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *IssueUpdate) SetUpdatedAt(v time.Time) *IssueUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the IssueMutation object of the builder.
func (_u *IssueUpdate) Mutation() *IssueMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *IssueUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *IssueUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *IssueUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *IssueUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *IssueUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := issue.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *IssueUpdate) check() error {
	if v, ok := _u.mutation.IssueType(); ok {
		if err := issue.IssueTypeValidator(v); err != nil {
			return &ValidationError{Name: "issue_type", err: fmt.Errorf(`ent: validator failed for field "Issue.issue_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Severity(); ok {
		if err := issue.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "Issue.severity": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ResolutionStatus(); ok {
		if err := issue.ResolutionStatusValidator(v); err != nil {
			return &ValidationError{Name: "resolution_status", err: fmt.Errorf(`ent: validator failed for field "Issue.resolution_status": %w`, err)}
		}
	}
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Issue.project"`)
	}
	return nil
}

func (_u *IssueUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(issue.Table, issue.Columns, sqlgraph.NewFieldSpec(issue.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RunID(); ok {
		_spec.SetField(issue.FieldRunID, field.TypeString, value)
	}
	if _u.mutation.RunIDCleared() {
		_spec.ClearField(issue.FieldRunID, field.TypeString)
	}
	if value, ok := _u.mutation.CandidateID(); ok {
		_spec.SetField(issue.FieldCandidateID, field.TypeString, value)
	}
	if _u.mutation.CandidateIDCleared() {
		_spec.ClearField(issue.FieldCandidateID, field.TypeString)
	}
	if value, ok := _u.mutation.IssueType(); ok {
		_spec.SetField(issue.FieldIssueType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Severity(); ok {
		_spec.SetField(issue.FieldSeverity, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(issue.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.ResolutionStatus(); ok {
		_spec.SetField(issue.FieldResolutionStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ResolvedAt(); ok {
		_spec.SetField(issue.FieldResolvedAt, field.TypeTime, value)
	}
	if _u.mutation.ResolvedAtCleared() {
		_spec.ClearField(issue.FieldResolvedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Remediation(); ok {
		_spec.SetField(issue.FieldRemediation, field.TypeJSON, value)
	}
	if _u.mutation.RemediationCleared() {
		_spec.ClearField(issue.FieldRemediation, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(issue.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{issue.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// IssueUpdateOne is the builder for updating a single Issue entity.
type IssueUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *IssueMutation
}

// SetRunID sets the "run_id" field.
func (_u *IssueUpdateOne) SetRunID(v string) *IssueUpdateOne {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *IssueUpdateOne) SetNillableRunID(v *string) *IssueUpdateOne {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// ClearRunID clears the value of the "run_id" field.
func (_u *IssueUpdateOne) ClearRunID() *IssueUpdateOne {
	_u.mutation.ClearRunID()
	return _u
}

// SetCandidateID sets the "candidate_id" field.
func (_u *IssueUpdateOne) SetCandidateID(v string) *IssueUpdateOne {
	_u.mutation.SetCandidateID(v)
	return _u
}

// SetNillableCandidateID sets the "candidate_id" field if the given value is not nil.
func (_u *IssueUpdateOne) SetNillableCandidateID(v *string) *IssueUpdateOne {
	if v != nil {
		_u.SetCandidateID(*v)
	}
	return _u
}

// ClearCandidateID clears the value of the "candidate_id" field.
func (_u *IssueUpdateOne) ClearCandidateID() *IssueUpdateOne {
	_u.mutation.ClearCandidateID()
	return _u
}

// SetIssueType sets the "issue_type" field.
func (_u *IssueUpdateOne) SetIssueType(v issue.IssueType) *IssueUpdateOne {
	_u.mutation.SetIssueType(v)
	return _u
}

// SetNillableIssueType sets the "issue_type" field if the given value is not nil.
func (_u *IssueUpdateOne) SetNillableIssueType(v *issue.IssueType) *IssueUpdateOne {
	if v != nil {
		_u.SetIssueType(*v)
	}
	return _u
}

// SetSeverity sets the "severity" field.
func (_u *IssueUpdateOne) SetSeverity(v issue.Severity) *IssueUpdateOne {
	_u.mutation.SetSeverity(v)
	return _u
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_u *IssueUpdateOne) SetNillableSeverity(v *issue.Severity) *IssueUpdateOne {
	if v != nil {
		_u.SetSeverity(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *IssueUpdateOne) SetDescription(v string) *IssueUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *IssueUpdateOne) SetNillableDescription(v *string) *IssueUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetResolutionStatus sets the "resolution_status" field.
func (_u *IssueUpdateOne) SetResolutionStatus(v issue.ResolutionStatus) *IssueUpdateOne {
	_u.mutation.SetResolutionStatus(v)
	return _u
}

// SetNillableResolutionStatus sets the "resolution_status" field if the given value is not nil.
func (_u *IssueUpdateOne) SetNillableResolutionStatus(v *issue.ResolutionStatus) *IssueUpdateOne {
	if v != nil {
		_u.SetResolutionStatus(*v)
	}
	return _u
}

// SetResolvedAt sets the "resolved_at" field.
func (_u *IssueUpdateOne) SetResolvedAt(v time.Time) *IssueUpdateOne {
	_u.mutation.SetResolvedAt(v)
	return _u
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_u *IssueUpdateOne) SetNillableResolvedAt(v *time.Time) *IssueUpdateOne {
	if v != nil {
		_u.SetResolvedAt(*v)
	}
	return _u
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (_u *IssueUpdateOne) ClearResolvedAt() *IssueUpdateOne {
	_u.mutation.ClearResolvedAt()
	return _u
}

// SetRemediation sets the "remediation" field.
func (_u *IssueUpdateOne) SetRemediation(v *models.RemediationRecord) *IssueUpdateOne {
	_u.mutation.SetRemediation(v)
	return _u
}

// ClearRemediation clears the value of the "remediation" field.
func (_u *IssueUpdateOne) ClearRemediation() *IssueUpdateOne {
	_u.mutation.ClearRemediation()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *IssueUpdateOne) SetUpdatedAt(v time.Time) *IssueUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the IssueMutation object of the builder.
func (_u *IssueUpdateOne) Mutation() *IssueMutation {
	return _u.mutation
}

// Where appends a list predicates to the IssueUpdate builder.
func (_u *IssueUpdateOne) Where(ps ...predicate.Issue) *IssueUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *IssueUpdateOne) Select(field string, fields ...string) *IssueUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Issue entity.
func (_u *IssueUpdateOne) Save(ctx context.Context) (*Issue, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *IssueUpdateOne) SaveX(ctx context.Context) *Issue {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *IssueUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *IssueUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *IssueUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := issue.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *IssueUpdateOne) check() error {
	if v, ok := _u.mutation.IssueType(); ok {
		if err := issue.IssueTypeValidator(v); err != nil {
			return &ValidationError{Name: "issue_type", err: fmt.Errorf(`ent: validator failed for field "Issue.issue_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Severity(); ok {
		if err := issue.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "Issue.severity": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ResolutionStatus(); ok {
		if err := issue.ResolutionStatusValidator(v); err != nil {
			return &ValidationError{Name: "resolution_status", err: fmt.Errorf(`ent: validator failed for field "Issue.resolution_status": %w`, err)}
		}
	}
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Issue.project"`)
	}
	return nil
}

func (_u *IssueUpdateOne) sqlSave(ctx context.Context) (_node *Issue, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(issue.Table, issue.Columns, sqlgraph.NewFieldSpec(issue.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Issue.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, issue.FieldID)
		for _, f := range fields {
			if !issue.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != issue.FieldID {
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
		_spec.SetField(issue.FieldRunID, field.TypeString, value)
	}
	if _u.mutation.RunIDCleared() {
		_spec.ClearField(issue.FieldRunID, field.TypeString)
	}
	if value, ok := _u.mutation.CandidateID(); ok {
		_spec.SetField(issue.FieldCandidateID, field.TypeString, value)
	}
	if _u.mutation.CandidateIDCleared() {
		_spec.ClearField(issue.FieldCandidateID, field.TypeString)
	}
	if value, ok := _u.mutation.IssueType(); ok {
		_spec.SetField(issue.FieldIssueType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Severity(); ok {
		_spec.SetField(issue.FieldSeverity, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(issue.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.ResolutionStatus(); ok {
		_spec.SetField(issue.FieldResolutionStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ResolvedAt(); ok {
		_spec.SetField(issue.FieldResolvedAt, field.TypeTime, value)
	}
	if _u.mutation.ResolvedAtCleared() {
		_spec.ClearField(issue.FieldResolvedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Remediation(); ok {
		_spec.SetField(issue.FieldRemediation, field.TypeJSON, value)
	}
	if _u.mutation.RemediationCleared() {
		_spec.ClearField(issue.FieldRemediation, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(issue.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Issue{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{issue.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
