// Code generated by ent, DO NOT EDIT.

package candidate

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the candidate type in the database.
	Label = "candidate"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "candidate_id"
	// FieldProjectID holds the string denoting the project_id field in the database.
	FieldProjectID = "project_id"
	// FieldRunID holds the string denoting the run_id field in the database.
	FieldRunID = "run_id"
	// FieldOrigin holds the string denoting the origin field in the database.
	FieldOrigin = "origin"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldMechanismDescription holds the string denoting the mechanism_description field in the database.
	FieldMechanismDescription = "mechanism_description"
	// FieldPredictedEffects holds the string denoting the predicted_effects field in the database.
	FieldPredictedEffects = "predicted_effects"
	// FieldParentIds holds the string denoting the parent_ids field in the database.
	FieldParentIds = "parent_ids"
	// FieldScores holds the string denoting the scores field in the database.
	FieldScores = "scores"
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
	// Table holds the table name of the candidate in the database.
	Table = "candidates"
	// ProjectTable is the table that holds the project relation/edge.
	ProjectTable = "candidates"
	// ProjectInverseTable is the table name for the Project entity.
	// It exists in this package in order to avoid circular dependency with the "project" package.
	ProjectInverseTable = "projects"
	// ProjectColumn is the table column denoting the project relation/edge.
	ProjectColumn = "project_id"
)

// Columns holds all SQL columns for candidate fields.
var Columns = []string{
	FieldID,
	FieldProjectID,
	FieldRunID,
	FieldOrigin,
	FieldStatus,
	FieldMechanismDescription,
	FieldPredictedEffects,
	FieldParentIds,
	FieldScores,
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

// Origin defines the type for the "origin" enum field.
type Origin string

// OriginSystem is the default value of the Origin enum.
const DefaultOrigin = OriginSystem

// Origin values.
const (
	OriginUser   Origin = "user"
	OriginSystem Origin = "system"
)

func (o Origin) String() string {
	return string(o)
}

// OriginValidator is a validator for the "origin" field enum values. It is called by the builders before save.
func OriginValidator(o Origin) error {
	switch o {
	case OriginUser, OriginSystem:
		return nil
	default:
		return fmt.Errorf("candidate: invalid enum value for origin field: %q", o)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusNew is the default value of the Status enum.
const DefaultStatus = StatusNew

// Status values.
const (
	StatusNew       Status = "new"
	StatusUnderTest Status = "under_test"
	StatusPromising Status = "promising"
	StatusWeak      Status = "weak"
	StatusRejected  Status = "rejected"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusNew, StatusUnderTest, StatusPromising, StatusWeak, StatusRejected:
		return nil
	default:
		return fmt.Errorf("candidate: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Candidate queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByProjectID orders the results by the project_id field.
func ByProjectID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProjectID, opts...).ToFunc()
}

// ByRunID orders the results by the run_id field.
func ByRunID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRunID, opts...).ToFunc()
}

// ByOrigin orders the results by the origin field.
func ByOrigin(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOrigin, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByMechanismDescription orders the results by the mechanism_description field.
func ByMechanismDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMechanismDescription, opts...).ToFunc()
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
		sqlgraph.Edge(sqlgraph.M2O, true, ProjectTable, ProjectColumn),
	)
}
