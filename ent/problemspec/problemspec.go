// Code generated by ent, DO NOT EDIT.

package problemspec

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the problemspec type in the database.
	Label = "problem_spec"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "spec_id"
	// FieldProjectID holds the string denoting the project_id field in the database.
	FieldProjectID = "project_id"
	// FieldConstraints holds the string denoting the constraints field in the database.
	FieldConstraints = "constraints"
	// FieldGoals holds the string denoting the goals field in the database.
	FieldGoals = "goals"
	// FieldResolution holds the string denoting the resolution field in the database.
	FieldResolution = "resolution"
	// FieldMode holds the string denoting the mode field in the database.
	FieldMode = "mode"
	// FieldProvenanceLog holds the string denoting the provenance_log field in the database.
	FieldProvenanceLog = "provenance_log"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeProject holds the string denoting the project edge name in mutations.
	EdgeProject = "project"
	// ProjectFieldID holds the string denoting the ID field of the Project.
	ProjectFieldID = "project_id"
	// Table holds the table name of the problemspec in the database.
	Table = "problem_specs"
	// ProjectTable is the table that holds the project relation/edge.
	ProjectTable = "problem_specs"
	// ProjectInverseTable is the table name for the Project entity.
	// It exists in this package in order to avoid circular dependency with the "project" package.
	ProjectInverseTable = "projects"
	// ProjectColumn is the table column denoting the project relation/edge.
	ProjectColumn = "project_id"
)

// Columns holds all SQL columns for problemspec fields.
var Columns = []string{
	FieldID,
	FieldProjectID,
	FieldConstraints,
	FieldGoals,
	FieldResolution,
	FieldMode,
	FieldProvenanceLog,
	FieldCreatedAt,
	FieldUpdatedAt,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Resolution defines the type for the "resolution" enum field.
type Resolution string

// ResolutionMedium is the default value of the Resolution enum.
const DefaultResolution = ResolutionMedium

// Resolution values.
const (
	ResolutionCoarse Resolution = "coarse"
	ResolutionMedium Resolution = "medium"
	ResolutionFine   Resolution = "fine"
)

func (r Resolution) String() string {
	return string(r)
}

// ResolutionValidator is a validator for the "resolution" field enum values. It is called by the builders before save.
func ResolutionValidator(r Resolution) error {
	switch r {
	case ResolutionCoarse, ResolutionMedium, ResolutionFine:
		return nil
	default:
		return fmt.Errorf("problemspec: invalid enum value for resolution field: %q", r)
	}
}

// Mode defines the type for the "mode" enum field.
type Mode string

// ModeFullSearch is the default value of the Mode enum.
const DefaultMode = ModeFullSearch

// Mode values.
const (
	ModeFullSearch Mode = "full_search"
	ModeEvalOnly   Mode = "eval_only"
	ModeSeeded     Mode = "seeded"
)

func (m Mode) String() string {
	return string(m)
}

// ModeValidator is a validator for the "mode" field enum values. It is called by the builders before save.
func ModeValidator(m Mode) error {
	switch m {
	case ModeFullSearch, ModeEvalOnly, ModeSeeded:
		return nil
	default:
		return fmt.Errorf("problemspec: invalid enum value for mode field: %q", m)
	}
}

// OrderOption defines the ordering options for the ProblemSpec queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByProjectID orders the results by the project_id field.
func ByProjectID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProjectID, opts...).ToFunc()
}

// ByResolution orders the results by the resolution field.
func ByResolution(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResolution, opts...).ToFunc()
}

// ByMode orders the results by the mode field.
func ByMode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMode, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByProjectField orders the results by project field.
func ByProjectField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newProjectStep(), sql.OrderByField(field, opts...))
	}
}
func newProjectStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ProjectInverseTable, ProjectFieldID),
		sqlgraph.Edge(sqlgraph.O2O, true, ProjectTable, ProjectColumn),
	)
}
