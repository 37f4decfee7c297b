// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/assaylab/assay/ent/project"
	"github.com/assaylab/assay/ent/run"
	"github.com/assaylab/assay/ent/scenariosuite"
	"github.com/assaylab/assay/pkg/models"
)

// Run is the model entity for the Run schema.
type Run struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ProjectID holds the value of the "project_id" field.
	ProjectID string `json:"project_id,omitempty"`
	// Config holds the value of the "config" field.
	Config models.RunConfig `json:"config,omitempty"`
	// Mutated only through UpdateRunStatus
	Status run.Status `json:"status,omitempty"`
	// Per-phase timings and resource counts, written on success and failure
	Metrics *models.RunMetrics `json:"metrics,omitempty"`
	// LlmUsage holds the value of the "llm_usage" field.
	LlmUsage *models.AggregatedUsage `json:"llm_usage,omitempty"`
	// ErrorSummary holds the value of the "error_summary" field.
	ErrorSummary *string `json:"error_summary,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt *time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// ChatSessionID holds the value of the "chat_session_id" field.
	ChatSessionID *string `json:"chat_session_id,omitempty"`
	// UITriggerID holds the value of the "ui_trigger_id" field.
	UITriggerID *string `json:"ui_trigger_id,omitempty"`
	// UITriggerSource holds the value of the "ui_trigger_source" field.
	UITriggerSource *string `json:"ui_trigger_source,omitempty"`
	// UITriggerMetadata holds the value of the "ui_trigger_metadata" field.
	UITriggerMetadata map[string]interface{} `json:"ui_trigger_metadata,omitempty"`
	// UITriggerAt holds the value of the "ui_trigger_at" field.
	UITriggerAt *time.Time `json:"ui_trigger_at,omitempty"`
	// RunSummaryMessageID holds the value of the "run_summary_message_id" field.
	RunSummaryMessageID *string `json:"run_summary_message_id,omitempty"`
	// Preflight-normalized config snapshot at trigger time
	RecommendedConfig *models.RunConfig `json:"recommended_config,omitempty"`
	// Set when the run awaits a queue worker
	QueuedAt *time.Time `json:"queued_at,omitempty"`
	// Pod id of the claiming worker, for multi-replica coordination
	ClaimedBy *string `json:"claimed_by,omitempty"`
	// For orphan detection
	LastHeartbeatAt *time.Time `json:"last_heartbeat_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the RunQuery when eager-loading is set.
	Edges        RunEdges `json:"edges"`
	selectValues sql.SelectValues
}

// RunEdges holds the relations/edges for other nodes in the graph.
type RunEdges struct {
	// Project holds the value of the project edge.
	Project *Project `json:"project,omitempty"`
	// ScenarioSuite holds the value of the scenario_suite edge.
	ScenarioSuite *ScenarioSuite `json:"scenario_suite,omitempty"`
	// Evaluations holds the value of the evaluations edge.
	Evaluations []*Evaluation `json:"evaluations,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// ProjectOrErr returns the Project value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e RunEdges) ProjectOrErr() (*Project, error) {
	if e.Project != nil {
		return e.Project, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: project.Label}
	}
	return nil, &NotLoadedError{edge: "project"}
}

// ScenarioSuiteOrErr returns the ScenarioSuite value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e RunEdges) ScenarioSuiteOrErr() (*ScenarioSuite, error) {
	if e.ScenarioSuite != nil {
		return e.ScenarioSuite, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: scenariosuite.Label}
	}
	return nil, &NotLoadedError{edge: "scenario_suite"}
}

// EvaluationsOrErr returns the Evaluations value or an error if the edge
// was not loaded in eager-loading.
func (e RunEdges) EvaluationsOrErr() ([]*Evaluation, error) {
	if e.loadedTypes[2] {
		return e.Evaluations, nil
	}
	return nil, &NotLoadedError{edge: "evaluations"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Run) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case run.FieldConfig, run.FieldMetrics, run.FieldLlmUsage, run.FieldUITriggerMetadata, run.FieldRecommendedConfig:
			values[i] = new([]byte)
		case run.FieldID, run.FieldProjectID, run.FieldStatus, run.FieldErrorSummary, run.FieldChatSessionID, run.FieldUITriggerID, run.FieldUITriggerSource, run.FieldRunSummaryMessageID, run.FieldClaimedBy:
			values[i] = new(sql.NullString)
		case run.FieldCreatedAt, run.FieldStartedAt, run.FieldCompletedAt, run.FieldUITriggerAt, run.FieldQueuedAt, run.FieldLastHeartbeatAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Run fields.
func (_m *Run) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case run.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case run.FieldProjectID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field project_id", values[i])
			} else if value.Valid {
				_m.ProjectID = value.String
			}
		case run.FieldConfig:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field config", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Config); err != nil {
					return fmt.Errorf("unmarshal field config: %w", err)
				}
			}
		case run.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = run.Status(value.String)
			}
		case run.FieldMetrics:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field metrics", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Metrics); err != nil {
					return fmt.Errorf("unmarshal field metrics: %w", err)
				}
			}
		case run.FieldLlmUsage:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field llm_usage", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.LlmUsage); err != nil {
					return fmt.Errorf("unmarshal field llm_usage: %w", err)
				}
			}
		case run.FieldErrorSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_summary", values[i])
			} else if value.Valid {
				_m.ErrorSummary = new(string)
				*_m.ErrorSummary = value.String
			}
		case run.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case run.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case run.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case run.FieldChatSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field chat_session_id", values[i])
			} else if value.Valid {
				_m.ChatSessionID = new(string)
				*_m.ChatSessionID = value.String
			}
		case run.FieldUITriggerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ui_trigger_id", values[i])
			} else if value.Valid {
				_m.UITriggerID = new(string)
				*_m.UITriggerID = value.String
			}
		case run.FieldUITriggerSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ui_trigger_source", values[i])
			} else if value.Valid {
				_m.UITriggerSource = new(string)
				*_m.UITriggerSource = value.String
			}
		case run.FieldUITriggerMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field ui_trigger_metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.UITriggerMetadata); err != nil {
					return fmt.Errorf("unmarshal field ui_trigger_metadata: %w", err)
				}
			}
		case run.FieldUITriggerAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field ui_trigger_at", values[i])
			} else if value.Valid {
				_m.UITriggerAt = new(time.Time)
				*_m.UITriggerAt = value.Time
			}
		case run.FieldRunSummaryMessageID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field run_summary_message_id", values[i])
			} else if value.Valid {
				_m.RunSummaryMessageID = new(string)
				*_m.RunSummaryMessageID = value.String
			}
		case run.FieldRecommendedConfig:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field recommended_config", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.RecommendedConfig); err != nil {
					return fmt.Errorf("unmarshal field recommended_config: %w", err)
				}
			}
		case run.FieldQueuedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field queued_at", values[i])
			} else if value.Valid {
				_m.QueuedAt = new(time.Time)
				*_m.QueuedAt = value.Time
			}
		case run.FieldClaimedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field claimed_by", values[i])
			} else if value.Valid {
				_m.ClaimedBy = new(string)
				*_m.ClaimedBy = value.String
			}
		case run.FieldLastHeartbeatAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_heartbeat_at", values[i])
			} else if value.Valid {
				_m.LastHeartbeatAt = new(time.Time)
				*_m.LastHeartbeatAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Run.
// This includes values selected through modifiers, order, etc.
func (_m *Run) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryProject queries the "project" edge of the Run entity.
func (_m *Run) QueryProject() *ProjectQuery {
	return NewRunClient(_m.config).QueryProject(_m)
}

// QueryScenarioSuite queries the "scenario_suite" edge of the Run entity.
func (_m *Run) QueryScenarioSuite() *ScenarioSuiteQuery {
	return NewRunClient(_m.config).QueryScenarioSuite(_m)
}

// QueryEvaluations queries the "evaluations" edge of the Run entity.
func (_m *Run) QueryEvaluations() *EvaluationQuery {
	return NewRunClient(_m.config).QueryEvaluations(_m)
}

// Update returns a builder for updating this Run.
// Note that you need to call Run.Unwrap() before calling this method if this Run
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Run) Update() *RunUpdateOne {
	return NewRunClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Run entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Run) Unwrap() *Run {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Run is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Run) String() string {
	var builder strings.Builder
	builder.WriteString("Run(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("project_id=")
	builder.WriteString(_m.ProjectID)
	builder.WriteString(", ")
	builder.WriteString("config=")
	builder.WriteString(fmt.Sprintf("%v", _m.Config))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("metrics=")
	builder.WriteString(fmt.Sprintf("%v", _m.Metrics))
	builder.WriteString(", ")
	builder.WriteString("llm_usage=")
	builder.WriteString(fmt.Sprintf("%v", _m.LlmUsage))
	builder.WriteString(", ")
	if v := _m.ErrorSummary; v != nil {
		builder.WriteString("error_summary=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ChatSessionID; v != nil {
		builder.WriteString("chat_session_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.UITriggerID; v != nil {
		builder.WriteString("ui_trigger_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.UITriggerSource; v != nil {
		builder.WriteString("ui_trigger_source=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("ui_trigger_metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.UITriggerMetadata))
	builder.WriteString(", ")
	if v := _m.UITriggerAt; v != nil {
		builder.WriteString("ui_trigger_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.RunSummaryMessageID; v != nil {
		builder.WriteString("run_summary_message_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("recommended_config=")
	builder.WriteString(fmt.Sprintf("%v", _m.RecommendedConfig))
	builder.WriteString(", ")
	if v := _m.QueuedAt; v != nil {
		builder.WriteString("queued_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ClaimedBy; v != nil {
		builder.WriteString("claimed_by=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.LastHeartbeatAt; v != nil {
		builder.WriteString("last_heartbeat_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Runs is a parsable slice of Run.
type Runs []*Run
