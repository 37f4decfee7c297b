// Code generated by ent, DO NOT EDIT.

package issue

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the issue type in the database.
	Label = "issue"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "issue_id"
	// FieldProjectID holds the string denoting the project_id field in the database.
	FieldProjectID = "project_id"
	// FieldRunID holds the string denoting the run_id field in the database.
	FieldRunID = "run_id"
	// FieldCandidateID holds the string denoting the candidate_id field in the database.
	FieldCandidateID = "candidate_id"
	// FieldIssueType holds the string denoting the issue_type field in the database.
	FieldIssueType = "issue_type"
	// FieldSeverity holds the string denoting the severity field in the database.
	FieldSeverity = "severity"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldResolutionStatus holds the string denoting the resolution_status field in the database.
	FieldResolutionStatus = "resolution_status"
	// FieldResolvedAt holds the string denoting the resolved_at field in the database.
	FieldResolvedAt = "resolved_at"
	// FieldRemediation holds the string denoting the remediation field in the database.
	FieldRemediation = "remediation"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeProject holds the string denoting the project edge name in mutations.
	EdgeProject = "project"
	// ProjectFieldID holds the string denoting the ID field of the Project.
	ProjectFieldID = "project_id"
	// Table holds the table name of the issue in the database.
	Table = "issues"
	// ProjectTable is the table that holds the project relation/edge.
	ProjectTable = "issues"
	// ProjectInverseTable is the table name for the Project entity.
	// It exists in this package in order to avoid circular dependency with the "project" package.
	ProjectInverseTable = "projects"
	// ProjectColumn is the table column denoting the project relation/edge.
	ProjectColumn = "project_id"
)

// Columns holds all SQL columns for issue fields.
var Columns = []string{
	FieldID,
	FieldProjectID,
	FieldRunID,
	FieldCandidateID,
	FieldIssueType,
	FieldSeverity,
	FieldDescription,
	FieldResolutionStatus,
	FieldResolvedAt,
	FieldRemediation,
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

// IssueType defines the type for the "issue_type" enum field.
type IssueType string

// IssueType values.
const (
	IssueTypeModel      IssueType = "model"
	IssueTypeConstraint IssueType = "constraint"
	IssueTypeEvaluator  IssueType = "evaluator"
	IssueTypeScenario   IssueType = "scenario"
)

func (it IssueType) String() string {
	return string(it)
}

// IssueTypeValidator is a validator for the "issue_type" field enum values. It is called by the builders before save.
func IssueTypeValidator(it IssueType) error {
	switch it {
	case IssueTypeModel, IssueTypeConstraint, IssueTypeEvaluator, IssueTypeScenario:
		return nil
	default:
		return fmt.Errorf("issue: invalid enum value for issue_type field: %q", it)
	}
}

// Severity defines the type for the "severity" enum field.
type Severity string

// Severity values.
const (
	SeverityMinor        Severity = "minor"
	SeverityImportant    Severity = "important"
	SeverityCatastrophic Severity = "catastrophic"
)

func (s Severity) String() string {
	return string(s)
}

// SeverityValidator is a validator for the "severity" field enum values. It is called by the builders before save.
func SeverityValidator(s Severity) error {
	switch s {
	case SeverityMinor, SeverityImportant, SeverityCatastrophic:
		return nil
	default:
		return fmt.Errorf("issue: invalid enum value for severity field: %q", s)
	}
}

// ResolutionStatus defines the type for the "resolution_status" enum field.
type ResolutionStatus string

// ResolutionStatusOpen is the default value of the ResolutionStatus enum.
const DefaultResolutionStatus = ResolutionStatusOpen

// ResolutionStatus values.
const (
	ResolutionStatusOpen        ResolutionStatus = "open"
	ResolutionStatusResolved    ResolutionStatus = "resolved"
	ResolutionStatusInvalidated ResolutionStatus = "invalidated"
)

func (rs ResolutionStatus) String() string {
	return string(rs)
}

// ResolutionStatusValidator is a validator for the "resolution_status" field enum values. It is called by the builders before save.
func ResolutionStatusValidator(rs ResolutionStatus) error {
	switch rs {
	case ResolutionStatusOpen, ResolutionStatusResolved, ResolutionStatusInvalidated:
		return nil
	default:
		return fmt.Errorf("issue: invalid enum value for resolution_status field: %q", rs)
	}
}

// OrderOption defines the ordering options for the Issue queries.
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

// ByCandidateID orders the results by the candidate_id field.
func ByCandidateID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCandidateID, opts...).ToFunc()
}

// ByIssueType orders the results by the issue_type field.
func ByIssueType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIssueType, opts...).ToFunc()
}

// BySeverity orders the results by the severity field.
func BySeverity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSeverity, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByResolutionStatus orders the results by the resolution_status field.
func ByResolutionStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResolutionStatus, opts...).ToFunc()
}

// ByResolvedAt orders the results by the resolved_at field.
func ByResolvedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResolvedAt, opts...).ToFunc()
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
