// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/assaylab/assay/ent/problemspec"
	"github.com/assaylab/assay/ent/project"
	"github.com/assaylab/assay/pkg/models"
	"github.com/assaylab/assay/pkg/provenance"
)

// ProblemSpec is the model entity for the ProblemSpec schema.
type ProblemSpec struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ProjectID holds the value of the "project_id" field.
	ProjectID string `json:"project_id,omitempty"`
	// Weighted requirements; weight 100 is a hard constraint
	Constraints []models.Constraint `json:"constraints,omitempty"`
	// Goals holds the value of the "goals" field.
	Goals []string `json:"goals,omitempty"`
	// Resolution holds the value of the "resolution" field.
	Resolution problemspec.Resolution `json:"resolution,omitempty"`
	// Mode holds the value of the "mode" field.
	Mode problemspec.Mode `json:"mode,omitempty"`
	// ProvenanceLog holds the value of the "provenance_log" field.
	ProvenanceLog []provenance.Entry `json:"provenance_log,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ProblemSpecQuery when eager-loading is set.
	Edges        ProblemSpecEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ProblemSpecEdges holds the relations/edges for other nodes in the graph.
type ProblemSpecEdges struct {
	// Project holds the value of the project edge.
	Project *Project `json:"project,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ProjectOrErr returns the Project value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ProblemSpecEdges) ProjectOrErr() (*Project, error) {
	if e.Project != nil {
		return e.Project, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: project.Label}
	}
	return nil, &NotLoadedError{edge: "project"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ProblemSpec) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case problemspec.FieldConstraints, problemspec.FieldGoals, problemspec.FieldProvenanceLog:
			values[i] = new([]byte)
		case problemspec.FieldID, problemspec.FieldProjectID, problemspec.FieldResolution, problemspec.FieldMode:
			values[i] = new(sql.NullString)
		case problemspec.FieldCreatedAt, problemspec.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ProblemSpec fields.
func (_m *ProblemSpec) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case problemspec.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case problemspec.FieldProjectID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field project_id", values[i])
			} else if value.Valid {
				_m.ProjectID = value.String
			}
		case problemspec.FieldConstraints:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field constraints", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Constraints); err != nil {
					return fmt.Errorf("unmarshal field constraints: %w", err)
				}
			}
		case problemspec.FieldGoals:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field goals", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Goals); err != nil {
					return fmt.Errorf("unmarshal field goals: %w", err)
				}
			}
		case problemspec.FieldResolution:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field resolution", values[i])
			} else if value.Valid {
				_m.Resolution = problemspec.Resolution(value.String)
			}
		case problemspec.FieldMode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field mode", values[i])
			} else if value.Valid {
				_m.Mode = problemspec.Mode(value.String)
			}
		case problemspec.FieldProvenanceLog:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field provenance_log", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ProvenanceLog); err != nil {
					return fmt.Errorf("unmarshal field provenance_log: %w", err)
				}
			}
		case problemspec.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case problemspec.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the ProblemSpec.
// This includes values selected through modifiers, order, etc.
func (_m *ProblemSpec) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryProject queries the "project" edge of the ProblemSpec entity.
func (_m *ProblemSpec) QueryProject() *ProjectQuery {
	return NewProblemSpecClient(_m.config).QueryProject(_m)
}

// Update returns a builder for updating this ProblemSpec.
// Note that you need to call ProblemSpec.Unwrap() before calling this method if this ProblemSpec
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ProblemSpec) Update() *ProblemSpecUpdateOne {
	return NewProblemSpecClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ProblemSpec entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ProblemSpec) Unwrap() *ProblemSpec {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ProblemSpec is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ProblemSpec) String() string {
	var builder strings.Builder
	builder.WriteString("ProblemSpec(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("project_id=")
	builder.WriteString(_m.ProjectID)
	builder.WriteString(", ")
	builder.WriteString("constraints=")
	builder.WriteString(fmt.Sprintf("%v", _m.Constraints))
	builder.WriteString(", ")
	builder.WriteString("goals=")
	builder.WriteString(fmt.Sprintf("%v", _m.Goals))
	builder.WriteString(", ")
	builder.WriteString("resolution=")
	builder.WriteString(fmt.Sprintf("%v", _m.Resolution))
	builder.WriteString(", ")
	builder.WriteString("mode=")
	builder.WriteString(fmt.Sprintf("%v", _m.Mode))
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

// ProblemSpecs is a parsable slice of ProblemSpec.
type ProblemSpecs []*ProblemSpec
