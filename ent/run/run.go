// Code generated by ent, DO NOT EDIT.

package run

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the run type in the database.
	Label = "run"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "run_id"
	// FieldProjectID holds the string denoting the project_id field in the database.
	FieldProjectID = "project_id"
	// FieldConfig holds the string denoting the config field in the database.
	FieldConfig = "config"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldMetrics holds the string denoting the metrics field in the database.
	FieldMetrics = "metrics"
	// FieldLlmUsage holds the string denoting the llm_usage field in the database.
	FieldLlmUsage = "llm_usage"
	// FieldErrorSummary holds the string denoting the error_summary field in the database.
	FieldErrorSummary = "error_summary"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldChatSessionID holds the string denoting the chat_session_id field in the database.
	FieldChatSessionID = "chat_session_id"
	// FieldUITriggerID holds the string denoting the ui_trigger_id field in the database.
	FieldUITriggerID = "ui_trigger_id"
	// FieldUITriggerSource holds the string denoting the ui_trigger_source field in the database.
	FieldUITriggerSource = "ui_trigger_source"
	// FieldUITriggerMetadata holds the string denoting the ui_trigger_metadata field in the database.
	FieldUITriggerMetadata = "ui_trigger_metadata"
	// FieldUITriggerAt holds the string denoting the ui_trigger_at field in the database.
	FieldUITriggerAt = "ui_trigger_at"
	// FieldRunSummaryMessageID holds the string denoting the run_summary_message_id field in the database.
	FieldRunSummaryMessageID = "run_summary_message_id"
	// FieldRecommendedConfig holds the string denoting the recommended_config field in the database.
	FieldRecommendedConfig = "recommended_config"
	// FieldQueuedAt holds the string denoting the queued_at field in the database.
	FieldQueuedAt = "queued_at"
	// FieldClaimedBy holds the string denoting the claimed_by field in the database.
	FieldClaimedBy = "claimed_by"
	// FieldLastHeartbeatAt holds the string denoting the last_heartbeat_at field in the database.
	FieldLastHeartbeatAt = "last_heartbeat_at"
	// EdgeProject holds the string denoting the project edge name in mutations.
	EdgeProject = "project"
	// EdgeScenarioSuite holds the string denoting the scenario_suite edge name in mutations.
	EdgeScenarioSuite = "scenario_suite"
	// EdgeEvaluations holds the string denoting the evaluations edge name in mutations.
	EdgeEvaluations = "evaluations"
	// ProjectFieldID holds the string denoting the ID field of the Project.
	ProjectFieldID = "project_id"
	// ScenarioSuiteFieldID holds the string denoting the ID field of the ScenarioSuite.
	ScenarioSuiteFieldID = "suite_id"
	// EvaluationFieldID holds the string denoting the ID field of the Evaluation.
	EvaluationFieldID = "evaluation_id"
	// Table holds the table name of the run in the database.
	Table = "runs"
	// ProjectTable is the table that holds the project relation/edge.
	ProjectTable = "runs"
	// ProjectInverseTable is the table name for the Project entity.
	// It exists in this package in order to avoid circular dependency with the "project" package.
	ProjectInverseTable = "projects"
	// ProjectColumn is the table column denoting the project relation/edge.
	ProjectColumn = "project_id"
	// ScenarioSuiteTable is the table that holds the scenario_suite relation/edge.
	ScenarioSuiteTable = "scenario_suites"
	// ScenarioSuiteInverseTable is the table name for the ScenarioSuite entity.
	// It exists in this package in order to avoid circular dependency with the "scenariosuite" package.
	ScenarioSuiteInverseTable = "scenario_suites"
	// ScenarioSuiteColumn is the table column denoting the scenario_suite relation/edge.
	ScenarioSuiteColumn = "run_id"
	// EvaluationsTable is the table that holds the evaluations relation/edge.
	EvaluationsTable = "evaluations"
	// EvaluationsInverseTable is the table name for the Evaluation entity.
	// It exists in this package in order to avoid circular dependency with the "evaluation" package.
	EvaluationsInverseTable = "evaluations"
	// EvaluationsColumn is the table column denoting the evaluations relation/edge.
	EvaluationsColumn = "run_id"
)

// Columns holds all SQL columns for run fields.
var Columns = []string{
	FieldID,
	FieldProjectID,
	FieldConfig,
	FieldStatus,
	FieldMetrics,
	FieldLlmUsage,
	FieldErrorSummary,
	FieldCreatedAt,
	FieldStartedAt,
	FieldCompletedAt,
	FieldChatSessionID,
	FieldUITriggerID,
	FieldUITriggerSource,
	FieldUITriggerMetadata,
	FieldUITriggerAt,
	FieldRunSummaryMessageID,
	FieldRecommendedConfig,
	FieldQueuedAt,
	FieldClaimedBy,
	FieldLastHeartbeatAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// ErrorSummaryValidator is a validator for the "error_summary" field. It is called by the builders before save.
	ErrorSummaryValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusCreated is the default value of the Status enum.
const DefaultStatus = StatusCreated

// Status values.
const (
	StatusCreated   Status = "created"
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusCreated, StatusRunning, StatusCompleted, StatusFailed, StatusCancelled:
		return nil
	default:
		return fmt.Errorf("run: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Run queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByProjectID orders the results by the project_id field.
func ByProjectID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProjectID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByErrorSummary orders the results by the error_summary field.
func ByErrorSummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorSummary, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByChatSessionID orders the results by the chat_session_id field.
func ByChatSessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChatSessionID, opts...).ToFunc()
}

// ByUITriggerID orders the results by the ui_trigger_id field.
func ByUITriggerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUITriggerID, opts...).ToFunc()
}

// ByUITriggerSource orders the results by the ui_trigger_source field.
func ByUITriggerSource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUITriggerSource, opts...).ToFunc()
}

// ByUITriggerAt orders the results by the ui_trigger_at field.
func ByUITriggerAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUITriggerAt, opts...).ToFunc()
}

// ByRunSummaryMessageID orders the results by the run_summary_message_id field.
func ByRunSummaryMessageID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRunSummaryMessageID, opts...).ToFunc()
}

// ByQueuedAt orders the results by the queued_at field.
func ByQueuedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQueuedAt, opts...).ToFunc()
}

// ByClaimedBy orders the results by the claimed_by field.
func ByClaimedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClaimedBy, opts...).ToFunc()
}

// ByLastHeartbeatAt orders the results by the last_heartbeat_at field.
func ByLastHeartbeatAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastHeartbeatAt, opts...).ToFunc()
}

// ByProjectField orders the results by project field.
func ByProjectField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newProjectStep(), sql.OrderByField(field, opts...))
	}
}

// ByScenarioSuiteField orders the results by scenario_suite field.
func ByScenarioSuiteField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newScenarioSuiteStep(), sql.OrderByField(field, opts...))
	}
}

// ByEvaluationsCount orders the results by evaluations count.
func ByEvaluationsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newEvaluationsStep(), opts...)
	}
}

// ByEvaluations orders the results by evaluations terms.
func ByEvaluations(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newEvaluationsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newProjectStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ProjectInverseTable, ProjectFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ProjectTable, ProjectColumn),
	)
}
func newScenarioSuiteStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ScenarioSuiteInverseTable, ScenarioSuiteFieldID),
		sqlgraph.Edge(sqlgraph.O2O, false, ScenarioSuiteTable, ScenarioSuiteColumn),
	)
}
func newEvaluationsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EvaluationsInverseTable, EvaluationFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, EvaluationsTable, EvaluationsColumn),
	)
}
