// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/assaylab/assay/ent/run"
	"github.com/assaylab/assay/ent/scenariosuite"
	"github.com/assaylab/assay/pkg/models"
	"github.com/assaylab/assay/pkg/provenance"
)

// ScenarioSuite is the model entity for the ScenarioSuite schema.
type ScenarioSuite struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// RunID holds the value of the "run_id" field.
	RunID string `json:"run_id,omitempty"`
	// ProjectID holds the value of the "project_id" field.
	ProjectID string `json:"project_id,omitempty"`
	// Scenarios holds the value of the "scenarios" field.
	Scenarios []models.Scenario `json:"scenarios,omitempty"`
	// ProvenanceLog holds the value of the "provenance_log" field.
	ProvenanceLog []provenance.Entry `json:"provenance_log,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ScenarioSuiteQuery when eager-loading is set.
	Edges        ScenarioSuiteEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ScenarioSuiteEdges holds the relations/edges for other nodes in the graph.
type ScenarioSuiteEdges struct {
	// Run holds the value of the run edge.
	Run *Run `json:"run,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// RunOrErr returns the Run value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ScenarioSuiteEdges) RunOrErr() (*Run, error) {
	if e.Run != nil {
		return e.Run, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: run.Label}
	}
	return nil, &NotLoadedError{edge: "run"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ScenarioSuite) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case scenariosuite.FieldScenarios, scenariosuite.FieldProvenanceLog:
			values[i] = new([]byte)
		case scenariosuite.FieldID, scenariosuite.FieldRunID, scenariosuite.FieldProjectID:
			values[i] = new(sql.NullString)
		case scenariosuite.FieldCreatedAt, scenariosuite.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ScenarioSuite fields.
func (_m *ScenarioSuite) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case scenariosuite.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case scenariosuite.FieldRunID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field run_id", values[i])
			} else if value.Valid {
				_m.RunID = value.String
			}
		case scenariosuite.FieldProjectID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field project_id", values[i])
			} else if value.Valid {
				_m.ProjectID = value.String
			}
		case scenariosuite.FieldScenarios:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field scenarios", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Scenarios); err != nil {
					return fmt.Errorf("unmarshal field scenarios: %w", err)
				}
			}
		case scenariosuite.FieldProvenanceLog:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field provenance_log", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ProvenanceLog); err != nil {
					return fmt.Errorf("unmarshal field provenance_log: %w", err)
				}
			}
		case scenariosuite.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case scenariosuite.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ScenarioSuite.
// This includes values selected through modifiers, order, etc.
func (_m *ScenarioSuite) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRun queries the "run" edge of the ScenarioSuite entity.
func (_m *ScenarioSuite) QueryRun() *RunQuery {
	return NewScenarioSuiteClient(_m.config).QueryRun(_m)
}

// Update returns a builder for updating this ScenarioSuite.
// Note that you need to call ScenarioSuite.Unwrap() before calling this method if this ScenarioSuite
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ScenarioSuite) Update() *ScenarioSuiteUpdateOne {
	return NewScenarioSuiteClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ScenarioSuite entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ScenarioSuite) Unwrap() *ScenarioSuite {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ScenarioSuite is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ScenarioSuite) String() string {
	var builder strings.Builder
	builder.WriteString("ScenarioSuite(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("run_id=")
	builder.WriteString(_m.RunID)
	builder.WriteString(", ")
	builder.WriteString("project_id=")
	builder.WriteString(_m.ProjectID)
	builder.WriteString(", ")
	builder.WriteString("scenarios=")
	builder.WriteString(fmt.Sprintf("%v", _m.Scenarios))
	builder.WriteString(", ")
	builder.WriteString("provenance_log=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProvenanceLog))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ScenarioSuites is a parsable slice of ScenarioSuite.
type ScenarioSuites []*ScenarioSuite
