// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/assaylab/assay/ent/problemspec"
	"github.com/assaylab/assay/ent/project"
	"github.com/assaylab/assay/ent/worldmodel"
)

// Project is the model entity for the Project schema.
type Project struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// Replay scratch projects, subject to retention cleanup
	Ephemeral bool `json:"ephemeral,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ProjectQuery when eager-loading is set.
	Edges        ProjectEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ProjectEdges holds the relations/edges for other nodes in the graph.
type ProjectEdges struct {
	// ProblemSpec holds the value of the problem_spec edge.
	ProblemSpec *ProblemSpec `json:"problem_spec,omitempty"`
	// WorldModel holds the value of the world_model edge.
	WorldModel *WorldModel `json:"world_model,omitempty"`
	// Runs holds the value of the runs edge.
	Runs []*Run `json:"runs,omitempty"`
	// Candidates holds the value of the candidates edge.
	Candidates []*Candidate `json:"candidates,omitempty"`
	// Issues holds the value of the issues edge.
	Issues []*Issue `json:"issues,omitempty"`
	// Snapshots holds the value of the snapshots edge.
	Snapshots []*Snapshot `json:"snapshots,omitempty"`
	// ChatSessions holds the value of the chat_sessions edge.
	ChatSessions []*ChatSession `json:"chat_sessions,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [7]bool
}

// ProblemSpecOrErr returns the ProblemSpec value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ProjectEdges) ProblemSpecOrErr() (*ProblemSpec, error) {
	if e.ProblemSpec != nil {
		return e.ProblemSpec, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: problemspec.Label}
	}
	return nil, &NotLoadedError{edge: "problem_spec"}
}

// WorldModelOrErr returns the WorldModel value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ProjectEdges) WorldModelOrErr() (*WorldModel, error) {
	if e.WorldModel != nil {
		return e.WorldModel, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: worldmodel.Label}
	}
	return nil, &NotLoadedError{edge: "world_model"}
}

// RunsOrErr returns the Runs value or an error if the edge
// was not loaded in eager-loading.
func (e ProjectEdges) RunsOrErr() ([]*Run, error) {
	if e.loadedTypes[2] {
		return e.Runs, nil
	}
	return nil, &NotLoadedError{edge: "runs"}
}

// CandidatesOrErr returns the Candidates value or an error if the edge
// was not loaded in eager-loading.
func (e ProjectEdges) CandidatesOrErr() ([]*Candidate, error) {
	if e.loadedTypes[3] {
		return e.Candidates, nil
	}
	return nil, &NotLoadedError{edge: "candidates"}
}

// IssuesOrErr returns the Issues value or an error if the edge
// was not loaded in eager-loading.
func (e ProjectEdges) IssuesOrErr() ([]*Issue, error) {
	if e.loadedTypes[4] {
		return e.Issues, nil
	}
	return nil, &NotLoadedError{edge: "issues"}
}

// SnapshotsOrErr returns the Snapshots value or an error if the edge
// was not loaded in eager-loading.
func (e ProjectEdges) SnapshotsOrErr() ([]*Snapshot, error) {
	if e.loadedTypes[5] {
		return e.Snapshots, nil
	}
	return nil, &NotLoadedError{edge: "snapshots"}
}

// ChatSessionsOrErr returns the ChatSessions value or an error if the edge
// was not loaded in eager-loading.
func (e ProjectEdges) ChatSessionsOrErr() ([]*ChatSession, error) {
	if e.loadedTypes[6] {
		return e.ChatSessions, nil
	}
	return nil, &NotLoadedError{edge: "chat_sessions"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Project) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case project.FieldEphemeral:
			values[i] = new(sql.NullBool)
		case project.FieldID, project.FieldName, project.FieldDescription:
			values[i] = new(sql.NullString)
		case project.FieldCreatedAt, project.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Project fields.
func (_m *Project) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case project.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case project.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case project.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case project.FieldEphemeral:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field ephemeral", values[i])
			} else if value.Valid {
				_m.Ephemeral = value.Bool
			}
		case project.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case project.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Project.
// This includes values selected through modifiers, order, etc.
func (_m *Project) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryProblemSpec queries the "problem_spec" edge of the Project entity.
func (_m *Project) QueryProblemSpec() *ProblemSpecQuery {
	return NewProjectClient(_m.config).QueryProblemSpec(_m)
}

// QueryWorldModel queries the "world_model" edge of the Project entity.
func (_m *Project) QueryWorldModel() *WorldModelQuery {
	return NewProjectClient(_m.config).QueryWorldModel(_m)
}

// QueryRuns queries the "runs" edge of the Project entity.
func (_m *Project) QueryRuns() *RunQuery {
	return NewProjectClient(_m.config).QueryRuns(_m)
}

// QueryCandidates queries the "candidates" edge of the Project entity.
func (_m *Project) QueryCandidates() *CandidateQuery {
	return NewProjectClient(_m.config).QueryCandidates(_m)
}

// QueryIssues queries the "issues" edge of the Project entity.
func (_m *Project) QueryIssues() *IssueQuery {
	return NewProjectClient(_m.config).QueryIssues(_m)
}

// QuerySnapshots queries the "snapshots" edge of the Project entity.
func (_m *Project) QuerySnapshots() *SnapshotQuery {
	return NewProjectClient(_m.config).QuerySnapshots(_m)
}

// QueryChatSessions queries the "chat_sessions" edge of the Project entity.
func (_m *Project) QueryChatSessions() *ChatSessionQuery {
	return NewProjectClient(_m.config).QueryChatSessions(_m)
}

// Update returns a builder for updating this Project.
// Note that you need to call Project.Unwrap() before calling this method if this Project
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Project) Update() *ProjectUpdateOne {
	return NewProjectClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Project entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Project) Unwrap() *Project {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Project is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Project) String() string {
	var builder strings.Builder
	builder.WriteString("Project(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("ephemeral=")
	builder.WriteString(fmt.Sprintf("%v", _m.Ephemeral))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Projects is a parsable slice of Project.
type Projects []*Project
