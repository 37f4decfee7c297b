// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/assaylab/assay/ent/evaluation"
	"github.com/assaylab/assay/ent/project"
	"github.com/assaylab/assay/ent/run"
	"github.com/assaylab/assay/ent/scenariosuite"
	"github.com/assaylab/assay/pkg/models"
)

// RunCreate is the builder for creating a Run entity.
type RunCreate struct {
	config
	mutation *RunMutation
	hooks    []Hook
}

// SetProjectID sets the "project_id" field.
func (_c *RunCreate) SetProjectID(v string) *RunCreate {
	_c.mutation.SetProjectID(v)
	return _c
}

// SetConfig sets the "config" field.
func (_c *RunCreate) SetConfig(v models.RunConfig) *RunCreate {
	_c.mutation.SetConfig(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *RunCreate) SetStatus(v run.Status) *RunCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *RunCreate) SetNillableStatus(v *run.Status) *RunCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetMetrics sets the "metrics" field.
func (_c *RunCreate) SetMetrics(v *models.RunMetrics) *RunCreate {
	_c.mutation.SetMetrics(v)
	return _c
}

// SetLlmUsage sets the "llm_usage" field.
func (_c *RunCreate) SetLlmUsage(v *models.AggregatedUsage) *RunCreate {
	_c.mutation.SetLlmUsage(v)
	return _c
}

// SetErrorSummary sets the "error_summary" field.
func (_c *RunCreate) SetErrorSummary(v string) *RunCreate {
	_c.mutation.SetErrorSummary(v)
	return _c
}

// SetNillableErrorSummary sets the "error_summary" field if the given value is not nil.
func (_c *RunCreate) SetNillableErrorSummary(v *string) *RunCreate {
	if v != nil {
		_c.SetErrorSummary(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *RunCreate) SetCreatedAt(v time.Time) *RunCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RunCreate) SetNillableCreatedAt(v *time.Time) *RunCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *RunCreate) SetStartedAt(v time.Time) *RunCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *RunCreate) SetNillableStartedAt(v *time.Time) *RunCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *RunCreate) SetCompletedAt(v time.Time) *RunCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *RunCreate) SetNillableCompletedAt(v *time.Time) *RunCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetChatSessionID sets the "chat_session_id" field.
func (_c *RunCreate) SetChatSessionID(v string) *RunCreate {
	_c.mutation.SetChatSessionID(v)
	return _c
}

// SetNillableChatSessionID sets the "chat_session_id" field if the given value is not nil.
func (_c *RunCreate) SetNillableChatSessionID(v *string) *RunCreate {
	if v != nil {
		_c.SetChatSessionID(*v)
	}
	return _c
}

// SetUITriggerID sets the "ui_trigger_id" field.
func (_c *RunCreate) SetUITriggerID(v string) *RunCreate {
	_c.mutation.SetUITriggerID(v)
	return _c
}

// SetNillableUITriggerID sets the "ui_trigger_id" field if the given value is not nil.
func (_c *RunCreate) SetNillableUITriggerID(v *string) *RunCreate {
	if v != nil {
		_c.SetUITriggerID(*v)
	}
	return _c
}

// SetUITriggerSource sets the "ui_trigger_source" field.
func (_c *RunCreate) SetUITriggerSource(v string) *RunCreate {
	_c.mutation.SetUITriggerSource(v)
	return _c
}

// SetNillableUITriggerSource sets the "ui_trigger_source" field if the given value is not nil.
func (_c *RunCreate) SetNillableUITriggerSource(v *string) *RunCreate {
	if v != nil {
		_c.SetUITriggerSource(*v)
	}
	return _c
}

// SetUITriggerMetadata sets the "ui_trigger_metadata" field.
func (_c *RunCreate) SetUITriggerMetadata(v map[string]interface{}) *RunCreate {
	_c.mutation.SetUITriggerMetadata(v)
	return _c
}

// SetUITriggerAt sets the "ui_trigger_at" field.
func (_c *RunCreate) SetUITriggerAt(v time.Time) *RunCreate {
	_c.mutation.SetUITriggerAt(v)
	return _c
}

// SetNillableUITriggerAt sets the "ui_trigger_at" field if the given value is not nil.
func (_c *RunCreate) SetNillableUITriggerAt(v *time.Time) *RunCreate {
	if v != nil {
		_c.SetUITriggerAt(*v)
	}
	return _c
}

// SetRunSummaryMessageID sets the "run_summary_message_id" field.
func (_c *RunCreate) SetRunSummaryMessageID(v string) *RunCreate {
	_c.mutation.SetRunSummaryMessageID(v)
	return _c
}

// SetNillableRunSummaryMessageID sets the "run_summary_message_id" field if the given value is not nil.
func (_c *RunCreate) SetNillableRunSummaryMessageID(v *string) *RunCreate {
	if v != nil {
		_c.SetRunSummaryMessageID(*v)
	}
	return _c
}

// SetRecommendedConfig sets the "recommended_config" field.
func (_c *RunCreate) SetRecommendedConfig(v *models.RunConfig) *RunCreate {
	_c.mutation.SetRecommendedConfig(v)
	return _c
}

// SetQueuedAt sets the "queued_at" field.
func (_c *RunCreate) SetQueuedAt(v time.Time) *RunCreate {
	_c.mutation.SetQueuedAt(v)
	return _c
}

// SetNillableQueuedAt sets the "queued_at" field if the given value is not nil.
func (_c *RunCreate) SetNillableQueuedAt(v *time.Time) *RunCreate {
	if v != nil {
		_c.SetQueuedAt(*v)
	}
	return _c
}

// SetClaimedBy sets the "claimed_by" field.
func (_c *RunCreate) SetClaimedBy(v string) *RunCreate {
	_c.mutation.SetClaimedBy(v)
	return _c
}

// SetNillableClaimedBy sets the "claimed_by" field if the given value is not nil.
func (_c *RunCreate) SetNillableClaimedBy(v *string) *RunCreate {
	if v != nil {
		_c.SetClaimedBy(*v)
	}
	return _c
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_c *RunCreate) SetLastHeartbeatAt(v time.Time) *RunCreate {
	_c.mutation.SetLastHeartbeatAt(v)
	return _c
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_c *RunCreate) SetNillableLastHeartbeatAt(v *time.Time) *RunCreate {
	if v != nil {
		_c.SetLastHeartbeatAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *RunCreate) SetID(v string) *RunCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetProject sets the "project" edge to the Project entity.
func (_c *RunCreate) SetProject(v *Project) *RunCreate {
	return _c.SetProjectID(v.ID)
}

// SetScenarioSuiteID sets the "scenario_suite" edge to the ScenarioSuite entity by ID.
func (_c *RunCreate) SetScenarioSuiteID(id string) *RunCreate {
	_c.mutation.SetScenarioSuiteID(id)
	return _c
}

// SetNillableScenarioSuiteID sets the "scenario_suite" edge to the ScenarioSuite entity by ID if the given value is not nil.
func (_c *RunCreate) SetNillableScenarioSuiteID(id *string) *RunCreate {
	if id != nil {
		_c = _c.SetScenarioSuiteID(*id)
	}
	return _c
}

// SetScenarioSuite sets the "scenario_suite" edge to the ScenarioSuite entity.
func (_c *RunCreate) SetScenarioSuite(v *ScenarioSuite) *RunCreate {
	return _c.SetScenarioSuiteID(v.ID)
}

// AddEvaluationIDs adds the "evaluations" edge to the Evaluation entity by IDs.
func (_c *RunCreate) AddEvaluationIDs(ids ...string) *RunCreate {
	_c.mutation.AddEvaluationIDs(ids...)
	return _c
}

// AddEvaluations adds the "evaluations" edges to the Evaluation entity.
func (_c *RunCreate) AddEvaluations(v ...*Evaluation) *RunCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddEvaluationIDs(ids...)
}

// Mutation returns the RunMutation object of the builder.
func (_c *RunCreate) Mutation() *RunMutation {
	return _c.mutation
}

// Save creates the Run in the database.
func (_c *RunCreate) Save(ctx context.Context) (*Run, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RunCreate) SaveX(ctx context.Context) *Run {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RunCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RunCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RunCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := run.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := run.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RunCreate) check() error {
	if _, ok := _c.mutation.ProjectID(); !ok {
		return &ValidationError{Name: "project_id", err: errors.New(`ent: missing required field "Run.project_id"`)}
	}
	if _, ok := _c.mutation.Config(); !ok {
		return &ValidationError{Name: "config", err: errors.New(`ent: missing required field "Run.config"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Run.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := run.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Run.status": %w`, err)}
		}
	}
	if v, ok := _c.mutation.ErrorSummary(); ok {
		if err := run.ErrorSummaryValidator(v); err != nil {
			return &ValidationError{Name: "error_summary", err: fmt.Errorf(`ent: validator failed for field "Run.error_summary": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Run.created_at"`)}
	}
	if len(_c.mutation.ProjectIDs()) == 0 {
		return &ValidationError{Name: "project", err: errors.New(`ent: missing required edge "Run.project"`)}
	}
	return nil
}

func (_c *RunCreate) sqlSave(ctx context.Context) (*Run, error) {
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
			return nil, fmt.Errorf("unexpected Run.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *RunCreate) createSpec() (*Run, *sqlgraph.CreateSpec) {
	var (
		_node = &Run{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(run.Table, sqlgraph.NewFieldSpec(run.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Config(); ok {
		_spec.SetField(run.FieldConfig, field.TypeJSON, value)
		_node.Config = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(run.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Metrics(); ok {
		_spec.SetField(run.FieldMetrics, field.TypeJSON, value)
		_node.Metrics = value
	}
	if value, ok := _c.mutation.LlmUsage(); ok {
		_spec.SetField(run.FieldLlmUsage, field.TypeJSON, value)
		_node.LlmUsage = value
	}
	if value, ok := _c.mutation.ErrorSummary(); ok {
		_spec.SetField(run.FieldErrorSummary, field.TypeString, value)
		_node.ErrorSummary = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(run.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(run.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(run.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.ChatSessionID(); ok {
		_spec.SetField(run.FieldChatSessionID, field.TypeString, value)
		_node.ChatSessionID = &value
	}
	if value, ok := _c.mutation.UITriggerID(); ok {
		_spec.SetField(run.FieldUITriggerID, field.TypeString, value)
		_node.UITriggerID = &value
	}
	if value, ok := _c.mutation.UITriggerSource(); ok {
		_spec.SetField(run.FieldUITriggerSource, field.TypeString, value)
		_node.UITriggerSource = &value
	}
	if value, ok := _c.mutation.UITriggerMetadata(); ok {
		_spec.SetField(run.FieldUITriggerMetadata, field.TypeJSON, value)
		_node.UITriggerMetadata = value
	}
	if value, ok := _c.mutation.UITriggerAt(); ok {
		_spec.SetField(run.FieldUITriggerAt, field.TypeTime, value)
		_node.UITriggerAt = &value
	}
	if value, ok := _c.mutation.RunSummaryMessageID(); ok {
		_spec.SetField(run.FieldRunSummaryMessageID, field.TypeString, value)
		_node.RunSummaryMessageID = &value
	}
	if value, ok := _c.mutation.RecommendedConfig(); ok {
		_spec.SetField(run.FieldRecommendedConfig, field.TypeJSON, value)
		_node.RecommendedConfig = value
	}
	if value, ok := _c.mutation.QueuedAt(); ok {
		_spec.SetField(run.FieldQueuedAt, field.TypeTime, value)
		_node.QueuedAt = &value
	}
	if value, ok := _c.mutation.ClaimedBy(); ok {
		_spec.SetField(run.FieldClaimedBy, field.TypeString, value)
		_node.ClaimedBy = &value
	}
	if value, ok := _c.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(run.FieldLastHeartbeatAt, field.TypeTime, value)
		_node.LastHeartbeatAt = &value
	}
	if nodes := _c.mutation.ProjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   run.ProjectTable,
			Columns: []string{run.ProjectColumn},
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
	if nodes := _c.mutation.ScenarioSuiteIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   run.ScenarioSuiteTable,
			Columns: []string{run.ScenarioSuiteColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(scenariosuite.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.EvaluationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.EvaluationsTable,
			Columns: []string{run.EvaluationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(evaluation.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// RunCreateBulk is the builder for creating many Run entities in bulk.
type RunCreateBulk struct {
	config
	err      error
	builders []*RunCreate
}

// Save creates the Run entities in the database.
func (_c *RunCreateBulk) Save(ctx context.Context) ([]*Run, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Run, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RunMutation)
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
func (_c *RunCreateBulk) SaveX(ctx context.Context) []*Run {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RunCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RunCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
