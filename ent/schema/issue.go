package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/assaylab/assay/pkg/models"
)

// Issue holds the schema definition for the Issue entity, a reported defect
// in the model, a constraint, the evaluator or a scenario.
type Issue struct {
	ent.Schema
}

// Fields of the Issue.
func (Issue) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("issue_id").
			Unique().
			Immutable(),
		field.String("project_id").
			Immutable(),
		field.String("run_id").
			Optional().
			Nillable(),
		field.String("candidate_id").
			Optional().
			Nillable(),
		field.Enum("issue_type").
			Values("model", "constraint", "evaluator", "scenario"),
		field.Enum("severity").
			Values("minor", "important", "catastrophic"),
		field.Text("description"),
		field.Enum("resolution_status").
			Values("open", "resolved", "invalidated").
			Default("open"),
		field.Time("resolved_at").
			Optional().
			Nillable(),
		field.JSON("remediation", &models.RemediationRecord{}).
			Optional().
			Comment("What the remediation engine did, including auto-upgrades"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Issue.
func (Issue) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("project", Project.Type).
			Ref("issues").
			Field("project_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Issue.
func (Issue) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("project_id", "resolution_status"),
		index.Fields("severity"),
	}
}
