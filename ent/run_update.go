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
	"github.com/assaylab/assay/ent/evaluation"
	"github.com/assaylab/assay/ent/predicate"
	"github.com/assaylab/assay/ent/run"
	"github.com/assaylab/assay/ent/scenariosuite"
	"github.com/assaylab/assay/pkg/models"
)

// RunUpdate is the builder for updating Run entities.
type RunUpdate struct {
	config
	hooks    []Hook
	mutation *RunMutation
}

// Where appends a list predicates to the RunUpdate builder.
func (_u *RunUpdate) Where(ps ...predicate.Run) *RunUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetConfig sets the "config" field.
func (_u *RunUpdate) SetConfig(v models.RunConfig) *RunUpdate {
	_u.mutation.SetConfig(v)
	return _u
}

// SetNillableConfig sets the "config" field if the given value is not nil.
func (_u *RunUpdate) SetNillableConfig(v *models.RunConfig) *RunUpdate {
	if v != nil {
		_u.SetConfig(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *RunUpdate) SetStatus(v run.Status) *RunUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *RunUpdate) SetNillableStatus(v *run.Status) *RunUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetMetrics sets the "metrics" field.
func (_u *RunUpdate) SetMetrics(v *models.RunMetrics) *RunUpdate {
	_u.mutation.SetMetrics(v)
	return _u
}

// ClearMetrics clears the value of the "metrics" field.
func (_u *RunUpdate) ClearMetrics() *RunUpdate {
	_u.mutation.ClearMetrics()
	return _u
}

// SetLlmUsage sets the "llm_usage" field.
func (_u *RunUpdate) SetLlmUsage(v *models.AggregatedUsage) *RunUpdate {
	_u.mutation.SetLlmUsage(v)
	return _u
}

// ClearLlmUsage clears the value of the "llm_usage" field.
func (_u *RunUpdate) ClearLlmUsage() *RunUpdate {
	_u.mutation.ClearLlmUsage()
	return _u
}

// SetErrorSummary sets the "error_summary" field.
func (_u *RunUpdate) SetErrorSummary(v string) *RunUpdate {
	_u.mutation.SetErrorSummary(v)
	return _u
}

// SetNillableErrorSummary sets the "error_summary" field if the given value is not nil.
func (_u *RunUpdate) SetNillableErrorSummary(v *string) *RunUpdate {
	if v != nil {
		_u.SetErrorSummary(*v)
	}
	return _u
}

// ClearErrorSummary clears the value of the "error_summary" field.
func (_u *RunUpdate) ClearErrorSummary() *RunUpdate {
	_u.mutation.ClearErrorSummary()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *RunUpdate) SetStartedAt(v time.Time) *RunUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *RunUpdate) SetNillableStartedAt(v *time.Time) *RunUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *RunUpdate) ClearStartedAt() *RunUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *RunUpdate) SetCompletedAt(v time.Time) *RunUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *RunUpdate) SetNillableCompletedAt(v *time.Time) *RunUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *RunUpdate) ClearCompletedAt() *RunUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetChatSessionID sets the "chat_session_id" field.
func (_u *RunUpdate) SetChatSessionID(v string) *RunUpdate {
	_u.mutation.SetChatSessionID(v)
	return _u
}

// SetNillableChatSessionID sets the "chat_session_id" field if the given value is not nil.
func (_u *RunUpdate) SetNillableChatSessionID(v *string) *RunUpdate {
	if v != nil {
		_u.SetChatSessionID(*v)
	}
	return _u
}

// ClearChatSessionID clears the value of the "chat_session_id" field.
func (_u *RunUpdate) ClearChatSessionID() *RunUpdate {
	_u.mutation.ClearChatSessionID()
	return _u
}

// SetUITriggerID sets the "ui_trigger_id" field.
func (_u *RunUpdate) SetUITriggerID(v string) *RunUpdate {
	_u.mutation.SetUITriggerID(v)
	return _u
}

// SetNillableUITriggerID sets the "ui_trigger_id" field if the given value is not nil.
func (_u *RunUpdate) SetNillableUITriggerID(v *string) *RunUpdate {
	if v != nil {
		_u.SetUITriggerID(*v)
	}
	return _u
}

// ClearUITriggerID clears the value of the "ui_trigger_id" field.
func (_u *RunUpdate) ClearUITriggerID() *RunUpdate {
	_u.mutation.ClearUITriggerID()
	return _u
}

// SetUITriggerSource sets the "ui_trigger_source" field.
func (_u *RunUpdate) SetUITriggerSource(v string) *RunUpdate {
	_u.mutation.SetUITriggerSource(v)
	return _u
}

// SetNillableUITriggerSource sets the "ui_trigger_source" field if the given value is not nil.
func (_u *RunUpdate) SetNillableUITriggerSource(v *string) *RunUpdate {
	if v != nil {
		_u.SetUITriggerSource(*v)
	}
	return _u
}

// ClearUITriggerSource clears the value of the "ui_trigger_source" field.
func (_u *RunUpdate) ClearUITriggerSource() *RunUpdate {
	_u.mutation.ClearUITriggerSource()
	return _u
}

// SetUITriggerMetadata sets the "ui_trigger_metadata" field.
func (_u *RunUpdate) SetUITriggerMetadata(v map[string]interface{}) *RunUpdate {
	_u.mutation.SetUITriggerMetadata(v)
	return _u
}

// ClearUITriggerMetadata clears the value of the "ui_trigger_metadata" field.
func (_u *RunUpdate) ClearUITriggerMetadata() *RunUpdate {
	_u.mutation.ClearUITriggerMetadata()
	return _u
}

// SetUITriggerAt sets the "ui_trigger_at" field.
func (_u *RunUpdate) SetUITriggerAt(v time.Time) *RunUpdate {
	_u.mutation.SetUITriggerAt(v)
	return _u
}

// SetNillableUITriggerAt sets the "ui_trigger_at" field if the given value is not nil.
func (_u *RunUpdate) SetNillableUITriggerAt(v *time.Time) *RunUpdate {
	if v != nil {
		_u.SetUITriggerAt(*v)
	}
	return _u
}

// ClearUITriggerAt clears the value of the "ui_trigger_at" field.
func (_u *RunUpdate) ClearUITriggerAt() *RunUpdate {
	_u.mutation.ClearUITriggerAt()
	return _u
}

// SetRunSummaryMessageID sets the "run_summary_message_id" field.
func (_u *RunUpdate) SetRunSummaryMessageID(v string) *RunUpdate {
	_u.mutation.SetRunSummaryMessageID(v)
	return _u
}

// SetNillableRunSummaryMessageID sets the "run_summary_message_id" field if the given value is not nil.
func (_u *RunUpdate) SetNillableRunSummaryMessageID(v *string) *RunUpdate {
	if v != nil {
		_u.SetRunSummaryMessageID(*v)
	}
	return _u
}

// ClearRunSummaryMessageID clears the value of the "run_summary_message_id" field.
func (_u *RunUpdate) ClearRunSummaryMessageID() *RunUpdate {
	_u.mutation.ClearRunSummaryMessageID()
	return _u
}

// SetRecommendedConfig sets the "recommended_config" field.
func (_u *RunUpdate) SetRecommendedConfig(v *models.RunConfig) *RunUpdate {
	_u.mutation.SetRecommendedConfig(v)
	return _u
}

// ClearRecommendedConfig clears the value of the "recommended_config" field.
func (_u *RunUpdate) ClearRecommendedConfig() *RunUpdate {
	_u.mutation.ClearRecommendedConfig()
	return _u
}

// SetQueuedAt sets the "queued_at" field.
func (_u *RunUpdate) SetQueuedAt(v time.Time) *RunUpdate {
	_u.mutation.SetQueuedAt(v)
	return _u
}

// SetNillableQueuedAt sets the "queued_at" field if the given value is not nil.
func (_u *RunUpdate) SetNillableQueuedAt(v *time.Time) *RunUpdate {
	if v != nil {
		_u.SetQueuedAt(*v)
	}
	return _u
}

// ClearQueuedAt clears the value of the "queued_at" field.
func (_u *RunUpdate) ClearQueuedAt() *RunUpdate {
	_u.mutation.ClearQueuedAt()
	return _u
}

// SetClaimedBy sets the "claimed_by" field.
func (_u *RunUpdate) SetClaimedBy(v string) *RunUpdate {
	_u.mutation.SetClaimedBy(v)
	return _u
}

// SetNillableClaimedBy sets the "claimed_by" field if the given value is not nil.
func (_u *RunUpdate) SetNillableClaimedBy(v *string) *RunUpdate {
	if v != nil {
		_u.SetClaimedBy(*v)
	}
	return _u
}

// ClearClaimedBy clears the value of the "claimed_by" field.
func (_u *RunUpdate) ClearClaimedBy() *RunUpdate {
	_u.mutation.ClearClaimedBy()
	return _u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_u *RunUpdate) SetLastHeartbeatAt(v time.Time) *RunUpdate {
	_u.mutation.SetLastHeartbeatAt(v)
	return _u
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_u *RunUpdate) SetNillableLastHeartbeatAt(v *time.Time) *RunUpdate {
	if v != nil {
		_u.SetLastHeartbeatAt(*v)
	}
	return _u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (_u *RunUpdate) ClearLastHeartbeatAt() *RunUpdate {
	_u.mutation.ClearLastHeartbeatAt()
	return _u
}

// SetScenarioSuiteID sets the "scenario_suite" edge to the ScenarioSuite entity by ID.
func (_u *RunUpdate) SetScenarioSuiteID(id string) *RunUpdate {
	_u.mutation.SetScenarioSuiteID(id)
	return _u
}

// SetNillableScenarioSuiteID sets the "scenario_suite" edge to the ScenarioSuite entity by ID if the given value is not nil.
func (_u *RunUpdate) SetNillableScenarioSuiteID(id *string) *RunUpdate {
	if id != nil {
		_u = _u.SetScenarioSuiteID(*id)
	}
	return _u
}

// SetScenarioSuite sets the "scenario_suite" edge to the ScenarioSuite entity.
func (_u *RunUpdate) SetScenarioSuite(v *ScenarioSuite) *RunUpdate {
	return _u.SetScenarioSuiteID(v.ID)
}

// AddEvaluationIDs adds the "evaluations" edge to the Evaluation entity by IDs.
func (_u *RunUpdate) AddEvaluationIDs(ids ...string) *RunUpdate {
	_u.mutation.AddEvaluationIDs(ids...)
	return _u
}

// AddEvaluations adds the "evaluations" edges to the Evaluation entity.
func (_u *RunUpdate) AddEvaluations(v ...*Evaluation) *RunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEvaluationIDs(ids...)
}

// Mutation returns the RunMutation object of the builder.
func (_u *RunUpdate) Mutation() *RunMutation {
	return _u.mutation
}

// ClearScenarioSuite clears the "scenario_suite" edge to the ScenarioSuite entity.
func (_u *RunUpdate) ClearScenarioSuite() *RunUpdate {
	_u.mutation.ClearScenarioSuite()
	return _u
}

// ClearEvaluations clears all "evaluations" edges to the Evaluation entity.
func (_u *RunUpdate) ClearEvaluations() *RunUpdate {
	_u.mutation.ClearEvaluations()
	return _u
}

// RemoveEvaluationIDs removes the "evaluations" edge to Evaluation entities by IDs.
func (_u *RunUpdate) RemoveEvaluationIDs(ids ...string) *RunUpdate {
	_u.mutation.RemoveEvaluationIDs(ids...)
	return _u
}

// RemoveEvaluations removes "evaluations" edges to Evaluation entities.
func (_u *RunUpdate) RemoveEvaluations(v ...*Evaluation) *RunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEvaluationIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RunUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RunUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RunUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RunUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RunUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := run.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Run.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ErrorSummary(); ok {
		if err := run.ErrorSummaryValidator(v); err != nil {
			return &ValidationError{Name: "error_summary", err: fmt.Errorf(`ent: validator failed for field "Run.error_summary": %w`, err)}
		}
	}
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Run.project"`)
	}
	return nil
}

func (_u *RunUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(run.Table, run.Columns, sqlgraph.NewFieldSpec(run.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Config(); ok {
		_spec.SetField(run.FieldConfig, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(run.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Metrics(); ok {
		_spec.SetField(run.FieldMetrics, field.TypeJSON, value)
	}
	if _u.mutation.MetricsCleared() {
		_spec.ClearField(run.FieldMetrics, field.TypeJSON)
	}
	if value, ok := _u.mutation.LlmUsage(); ok {
		_spec.SetField(run.FieldLlmUsage, field.TypeJSON, value)
	}
	if _u.mutation.LlmUsageCleared() {
		_spec.ClearField(run.FieldLlmUsage, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorSummary(); ok {
		_spec.SetField(run.FieldErrorSummary, field.TypeString, value)
	}
	if _u.mutation.ErrorSummaryCleared() {
		_spec.ClearField(run.FieldErrorSummary, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(run.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(run.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(run.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(run.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ChatSessionID(); ok {
		_spec.SetField(run.FieldChatSessionID, field.TypeString, value)
	}
	if _u.mutation.ChatSessionIDCleared() {
		_spec.ClearField(run.FieldChatSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.UITriggerID(); ok {
		_spec.SetField(run.FieldUITriggerID, field.TypeString, value)
	}
	if _u.mutation.UITriggerIDCleared() {
		_spec.ClearField(run.FieldUITriggerID, field.TypeString)
	}
	if value, ok := _u.mutation.UITriggerSource(); ok {
		_spec.SetField(run.FieldUITriggerSource, field.TypeString, value)
	}
	if _u.mutation.UITriggerSourceCleared() {
		_spec.ClearField(run.FieldUITriggerSource, field.TypeString)
	}
	if value, ok := _u.mutation.UITriggerMetadata(); ok {
		_spec.SetField(run.FieldUITriggerMetadata, field.TypeJSON, value)
	}
	if _u.mutation.UITriggerMetadataCleared() {
		_spec.ClearField(run.FieldUITriggerMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.UITriggerAt(); ok {
		_spec.SetField(run.FieldUITriggerAt, field.TypeTime, value)
	}
	if _u.mutation.UITriggerAtCleared() {
		_spec.ClearField(run.FieldUITriggerAt, field.TypeTime)
	}
	if value, ok := _u.mutation.RunSummaryMessageID(); ok {
		_spec.SetField(run.FieldRunSummaryMessageID, field.TypeString, value)
	}
	if _u.mutation.RunSummaryMessageIDCleared() {
		_spec.ClearField(run.FieldRunSummaryMessageID, field.TypeString)
	}
	if value, ok := _u.mutation.RecommendedConfig(); ok {
		_spec.SetField(run.FieldRecommendedConfig, field.TypeJSON, value)
	}
	if _u.mutation.RecommendedConfigCleared() {
		_spec.ClearField(run.FieldRecommendedConfig, field.TypeJSON)
	}
	if value, ok := _u.mutation.QueuedAt(); ok {
		_spec.SetField(run.FieldQueuedAt, field.TypeTime, value)
	}
	if _u.mutation.QueuedAtCleared() {
		_spec.ClearField(run.FieldQueuedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ClaimedBy(); ok {
		_spec.SetField(run.FieldClaimedBy, field.TypeString, value)
	}
	if _u.mutation.ClaimedByCleared() {
		_spec.ClearField(run.FieldClaimedBy, field.TypeString)
	}
	if value, ok := _u.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(run.FieldLastHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatAtCleared() {
		_spec.ClearField(run.FieldLastHeartbeatAt, field.TypeTime)
	}
	if _u.mutation.ScenarioSuiteCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ScenarioSuiteIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EvaluationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEvaluationsIDs(); len(nodes) > 0 && !_u.mutation.EvaluationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EvaluationsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{run.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RunUpdateOne is the builder for updating a single Run entity.
type RunUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RunMutation
}

// SetConfig sets the "config" field.
func (_u *RunUpdateOne) SetConfig(v models.RunConfig) *RunUpdateOne {
	_u.mutation.SetConfig(v)
	return _u
}

// SetNillableConfig sets the "config" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableConfig(v *models.RunConfig) *RunUpdateOne {
	if v != nil {
		_u.SetConfig(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *RunUpdateOne) SetStatus(v run.Status) *RunUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableStatus(v *run.Status) *RunUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetMetrics sets the "metrics" field.
func (_u *RunUpdateOne) SetMetrics(v *models.RunMetrics) *RunUpdateOne {
	_u.mutation.SetMetrics(v)
	return _u
}

// ClearMetrics clears the value of the "metrics" field.
func (_u *RunUpdateOne) ClearMetrics() *RunUpdateOne {
	_u.mutation.ClearMetrics()
	return _u
}

// SetLlmUsage sets the "llm_usage" field.
func (_u *RunUpdateOne) SetLlmUsage(v *models.AggregatedUsage) *RunUpdateOne {
	_u.mutation.SetLlmUsage(v)
	return _u
}

// ClearLlmUsage clears the value of the "llm_usage" field.
func (_u *RunUpdateOne) ClearLlmUsage() *RunUpdateOne {
	_u.mutation.ClearLlmUsage()
	return _u
}

// SetErrorSummary sets the "error_summary" field.
func (_u *RunUpdateOne) SetErrorSummary(v string) *RunUpdateOne {
	_u.mutation.SetErrorSummary(v)
	return _u
}

// SetNillableErrorSummary sets the "error_summary" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableErrorSummary(v *string) *RunUpdateOne {
	if v != nil {
		_u.SetErrorSummary(*v)
	}
	return _u
}

// ClearErrorSummary clears the value of the "error_summary" field.
func (_u *RunUpdateOne) ClearErrorSummary() *RunUpdateOne {
	_u.mutation.ClearErrorSummary()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *RunUpdateOne) SetStartedAt(v time.Time) *RunUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableStartedAt(v *time.Time) *RunUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *RunUpdateOne) ClearStartedAt() *RunUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *RunUpdateOne) SetCompletedAt(v time.Time) *RunUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableCompletedAt(v *time.Time) *RunUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *RunUpdateOne) ClearCompletedAt() *RunUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetChatSessionID sets the "chat_session_id" field.
func (_u *RunUpdateOne) SetChatSessionID(v string) *RunUpdateOne {
	_u.mutation.SetChatSessionID(v)
	return _u
}

// SetNillableChatSessionID sets the "chat_session_id" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableChatSessionID(v *string) *RunUpdateOne {
	if v != nil {
		_u.SetChatSessionID(*v)
	}
	return _u
}

// ClearChatSessionID clears the value of the "chat_session_id" field.
func (_u *RunUpdateOne) ClearChatSessionID() *RunUpdateOne {
	_u.mutation.ClearChatSessionID()
	return _u
}

// SetUITriggerID sets the "ui_trigger_id" field.
func (_u *RunUpdateOne) SetUITriggerID(v string) *RunUpdateOne {
	_u.mutation.SetUITriggerID(v)
	return _u
}

// SetNillableUITriggerID sets the "ui_trigger_id" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableUITriggerID(v *string) *RunUpdateOne {
	if v != nil {
		_u.SetUITriggerID(*v)
	}
	return _u
}

// ClearUITriggerID clears the value of the "ui_trigger_id" field.
func (_u *RunUpdateOne) ClearUITriggerID() *RunUpdateOne {
	_u.mutation.ClearUITriggerID()
	return _u
}

// SetUITriggerSource sets the "ui_trigger_source" field.
func (_u *RunUpdateOne) SetUITriggerSource(v string) *RunUpdateOne {
	_u.mutation.SetUITriggerSource(v)
	return _u
}

// SetNillableUITriggerSource sets the "ui_trigger_source" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableUITriggerSource(v *string) *RunUpdateOne {
	if v != nil {
		_u.SetUITriggerSource(*v)
	}
	return _u
}

// ClearUITriggerSource clears the value of the "ui_trigger_source" field.
func (_u *RunUpdateOne) ClearUITriggerSource() *RunUpdateOne {
	_u.mutation.ClearUITriggerSource()
	return _u
}

// SetUITriggerMetadata sets the "ui_trigger_metadata" field.
func (_u *RunUpdateOne) SetUITriggerMetadata(v map[string]interface{}) *RunUpdateOne {
	_u.mutation.SetUITriggerMetadata(v)
	return _u
}

// ClearUITriggerMetadata clears the value of the "ui_trigger_metadata" field.
func (_u *RunUpdateOne) ClearUITriggerMetadata() *RunUpdateOne {
	_u.mutation.ClearUITriggerMetadata()
	return _u
}

// SetUITriggerAt sets the "ui_trigger_at" field.
func (_u *RunUpdateOne) SetUITriggerAt(v time.Time) *RunUpdateOne {
	_u.mutation.SetUITriggerAt(v)
	return _u
}

// SetNillableUITriggerAt sets the "ui_trigger_at" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableUITriggerAt(v *time.Time) *RunUpdateOne {
	if v != nil {
		_u.SetUITriggerAt(*v)
	}
	return _u
}

// ClearUITriggerAt clears the value of the "ui_trigger_at" field.
func (_u *RunUpdateOne) ClearUITriggerAt() *RunUpdateOne {
	_u.mutation.ClearUITriggerAt()
	return _u
}

// SetRunSummaryMessageID sets the "run_summary_message_id" field.
func (_u *RunUpdateOne) SetRunSummaryMessageID(v string) *RunUpdateOne {
	_u.mutation.SetRunSummaryMessageID(v)
	return _u
}

// SetNillableRunSummaryMessageID sets the "run_summary_message_id" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableRunSummaryMessageID(v *string) *RunUpdateOne {
	if v != nil {
		_u.SetRunSummaryMessageID(*v)
	}
	return _u
}

// ClearRunSummaryMessageID clears the value of the "run_summary_message_id" field.
func (_u *RunUpdateOne) ClearRunSummaryMessageID() *RunUpdateOne {
	_u.mutation.ClearRunSummaryMessageID()
	return _u
}

// SetRecommendedConfig sets the "recommended_config" field.
func (_u *RunUpdateOne) SetRecommendedConfig(v *models.RunConfig) *RunUpdateOne {
	_u.mutation.SetRecommendedConfig(v)
	return _u
}

// ClearRecommendedConfig clears the value of the "recommended_config" field.
func (_u *RunUpdateOne) ClearRecommendedConfig() *RunUpdateOne {
	_u.mutation.ClearRecommendedConfig()
	return _u
}

// SetQueuedAt sets the "queued_at" field.
func (_u *RunUpdateOne) SetQueuedAt(v time.Time) *RunUpdateOne {
	_u.mutation.SetQueuedAt(v)
	return _u
}

// SetNillableQueuedAt sets the "queued_at" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableQueuedAt(v *time.Time) *RunUpdateOne {
	if v != nil {
		_u.SetQueuedAt(*v)
	}
	return _u
}

// ClearQueuedAt clears the value of the "queued_at" field.
func (_u *RunUpdateOne) ClearQueuedAt() *RunUpdateOne {
	_u.mutation.ClearQueuedAt()
	return _u
}

// SetClaimedBy sets the "claimed_by" field.
func (_u *RunUpdateOne) SetClaimedBy(v string) *RunUpdateOne {
	_u.mutation.SetClaimedBy(v)
	return _u
}

// SetNillableClaimedBy sets the "claimed_by" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableClaimedBy(v *string) *RunUpdateOne {
	if v != nil {
		_u.SetClaimedBy(*v)
	}
	return _u
}

// ClearClaimedBy clears the value of the "claimed_by" field.
func (_u *RunUpdateOne) ClearClaimedBy() *RunUpdateOne {
	_u.mutation.ClearClaimedBy()
	return _u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_u *RunUpdateOne) SetLastHeartbeatAt(v time.Time) *RunUpdateOne {
	_u.mutation.SetLastHeartbeatAt(v)
	return _u
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableLastHeartbeatAt(v *time.Time) *RunUpdateOne {
	if v != nil {
		_u.SetLastHeartbeatAt(*v)
	}
	return _u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (_u *RunUpdateOne) ClearLastHeartbeatAt() *RunUpdateOne {
	_u.mutation.ClearLastHeartbeatAt()
	return _u
}

// SetScenarioSuiteID sets the "scenario_suite" edge to the ScenarioSuite entity by ID.
func (_u *RunUpdateOne) SetScenarioSuiteID(id string) *RunUpdateOne {
	_u.mutation.SetScenarioSuiteID(id)
	return _u
}

// SetNillableScenarioSuiteID sets the "scenario_suite" edge to the ScenarioSuite entity by ID if the given value is not nil.
func (_u *RunUpdateOne) SetNillableScenarioSuiteID(id *string) *RunUpdateOne {
	if id != nil {
		_u = _u.SetScenarioSuiteID(*id)
	}
	return _u
}

// SetScenarioSuite sets the "scenario_suite" edge to the ScenarioSuite entity.
func (_u *RunUpdateOne) SetScenarioSuite(v *ScenarioSuite) *RunUpdateOne {
	return _u.SetScenarioSuiteID(v.ID)
}

// AddEvaluationIDs adds the "evaluations" edge to the Evaluation entity by IDs.
func (_u *RunUpdateOne) AddEvaluationIDs(ids ...string) *RunUpdateOne {
	_u.mutation.AddEvaluationIDs(ids...)
	return _u
}

// AddEvaluations adds the "evaluations" edges to the Evaluation entity.
func (_u *RunUpdateOne) AddEvaluations(v ...*Evaluation) *RunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEvaluationIDs(ids...)
}

// Mutation returns the RunMutation object of the builder.
func (_u *RunUpdateOne) Mutation() *RunMutation {
	return _u.mutation
}

// ClearScenarioSuite clears the "scenario_suite" edge to the ScenarioSuite entity.
func (_u *RunUpdateOne) ClearScenarioSuite() *RunUpdateOne {
	_u.mutation.ClearScenarioSuite()
	return _u
}

// ClearEvaluations clears all "evaluations" edges to the Evaluation entity.
func (_u *RunUpdateOne) ClearEvaluations() *RunUpdateOne {
	_u.mutation.ClearEvaluations()
	return _u
}

// RemoveEvaluationIDs removes the "evaluations" edge to Evaluation entities by IDs.
func (_u *RunUpdateOne) RemoveEvaluationIDs(ids ...string) *RunUpdateOne {
	_u.mutation.RemoveEvaluationIDs(ids...)
	return _u
}

// RemoveEvaluations removes "evaluations" edges to Evaluation entities.
func (_u *RunUpdateOne) RemoveEvaluations(v ...*Evaluation) *RunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEvaluationIDs(ids...)
}

// Where appends a list predicates to the RunUpdate builder.
func (_u *RunUpdateOne) Where(ps ...predicate.Run) *RunUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RunUpdateOne) Select(field string, fields ...string) *RunUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Run entity.
func (_u *RunUpdateOne) Save(ctx context.Context) (*Run, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RunUpdateOne) SaveX(ctx context.Context) *Run {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RunUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RunUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RunUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := run.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Run.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ErrorSummary(); ok {
		if err := run.ErrorSummaryValidator(v); err != nil {
			return &ValidationError{Name: "error_summary", err: fmt.Errorf(`ent: validator failed for field "Run.error_summary": %w`, err)}
		}
	}
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Run.project"`)
	}
	return nil
}

func (_u *RunUpdateOne) sqlSave(ctx context.Context) (_node *Run, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(run.Table, run.Columns, sqlgraph.NewFieldSpec(run.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Run.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, run.FieldID)
		for _, f := range fields {
			if !run.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != run.FieldID {
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
	if value, ok := _u.mutation.Config(); ok {
		_spec.SetField(run.FieldConfig, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(run.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Metrics(); ok {
		_spec.SetField(run.FieldMetrics, field.TypeJSON, value)
	}
	if _u.mutation.MetricsCleared() {
		_spec.ClearField(run.FieldMetrics, field.TypeJSON)
	}
	if value, ok := _u.mutation.LlmUsage(); ok {
		_spec.SetField(run.FieldLlmUsage, field.TypeJSON, value)
	}
	if _u.mutation.LlmUsageCleared() {
		_spec.ClearField(run.FieldLlmUsage, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorSummary(); ok {
		_spec.SetField(run.FieldErrorSummary, field.TypeString, value)
	}
	if _u.mutation.ErrorSummaryCleared() {
		_spec.ClearField(run.FieldErrorSummary, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(run.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(run.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(run.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(run.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ChatSessionID(); ok {
		_spec.SetField(run.FieldChatSessionID, field.TypeString, value)
	}
	if _u.mutation.ChatSessionIDCleared() {
		_spec.ClearField(run.FieldChatSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.UITriggerID(); ok {
		_spec.SetField(run.FieldUITriggerID, field.TypeString, value)
	}
	if _u.mutation.UITriggerIDCleared() {
		_spec.ClearField(run.FieldUITriggerID, field.TypeString)
	}
	if value, ok := _u.mutation.UITriggerSource(); ok {
		_spec.SetField(run.FieldUITriggerSource, field.TypeString, value)
	}
	if _u.mutation.UITriggerSourceCleared() {
		_spec.ClearField(run.FieldUITriggerSource, field.TypeString)
	}
	if value, ok := _u.mutation.UITriggerMetadata(); ok {
		_spec.SetField(run.FieldUITriggerMetadata, field.TypeJSON, value)
	}
	if _u.mutation.UITriggerMetadataCleared() {
		_spec.ClearField(run.FieldUITriggerMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.UITriggerAt(); ok {
		_spec.SetField(run.FieldUITriggerAt, field.TypeTime, value)
	}
	if _u.mutation.UITriggerAtCleared() {
		_spec.ClearField(run.FieldUITriggerAt, field.TypeTime)
	}
	if value, ok := _u.mutation.RunSummaryMessageID(); ok {
		_spec.SetField(run.FieldRunSummaryMessageID, field.TypeString, value)
	}
	if _u.mutation.RunSummaryMessageIDCleared() {
		_spec.ClearField(run.FieldRunSummaryMessageID, field.TypeString)
	}
	if value, ok := _u.mutation.RecommendedConfig(); ok {
		_spec.SetField(run.FieldRecommendedConfig, field.TypeJSON, value)
	}
	if _u.mutation.RecommendedConfigCleared() {
		_spec.ClearField(run.FieldRecommendedConfig, field.TypeJSON)
	}
	if value, ok := _u.mutation.QueuedAt(); ok {
		_spec.SetField(run.FieldQueuedAt, field.TypeTime, value)
	}
	if _u.mutation.QueuedAtCleared() {
		_spec.ClearField(run.FieldQueuedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ClaimedBy(); ok {
		_spec.SetField(run.FieldClaimedBy, field.TypeString, value)
	}
	if _u.mutation.ClaimedByCleared() {
		_spec.ClearField(run.FieldClaimedBy, field.TypeString)
	}
	if value, ok := _u.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(run.FieldLastHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatAtCleared() {
		_spec.ClearField(run.FieldLastHeartbeatAt, field.TypeTime)
	}
	if _u.mutation.ScenarioSuiteCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ScenarioSuiteIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EvaluationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEvaluationsIDs(); len(nodes) > 0 && !_u.mutation.EvaluationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EvaluationsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Run{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{run.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
