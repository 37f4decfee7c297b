package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/assaylab/assay/pkg/models"
	"github.com/assaylab/assay/pkg/provenance"
)

// ProblemSpec holds the schema definition for the ProblemSpec entity.
// One per project; upserts replace the spec fields in place.
type ProblemSpec struct {
	ent.Schema
}

// Fields of the ProblemSpec.
func (ProblemSpec) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("spec_id").
			Unique().
			Immutable(),
		field.String("project_id").
			Immutable(),
		field.JSON("constraints", []models.Constraint{}).
			Comment("Weighted requirements; weight 100 is a hard constraint"),
		field.JSON("goals", []string{}).
			Optional(),
		field.Enum("resolution").
			Values("coarse", "medium", "fine").
			Default("medium"),
		field.Enum("mode").
			Values("full_search", "eval_only", "seeded").
			Default("full_search"),
		field.JSON("provenance_log", []provenance.Entry{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the ProblemSpec.
func (ProblemSpec) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("project", Project.Type).
			Ref("problem_spec").
			Field("project_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the ProblemSpec.
func (ProblemSpec) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("project_id").
			Unique(),
	}
}
