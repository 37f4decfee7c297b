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

// Candidate holds the schema definition for the Candidate entity, one
// proposed solution mechanism. Candidates belong to the project and outlive
// the run that created them.
type Candidate struct {
	ent.Schema
}

// Fields of the Candidate.
func (Candidate) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("candidate_id").
			Unique().
			Immutable(),
		field.String("project_id").
			Immutable(),
		field.String("run_id").
			Optional().
			Nillable().
			Comment("Run that generated this candidate (system origin only)"),
		field.Enum("origin").
			Values("user", "system").
			Default("system").
			Immutable(),
		field.Enum("status").
			Values("new", "under_test", "promising", "weak", "rejected").
			Default("new").
			Comment("Monotone machine; rejected is terminal"),
		field.Text("mechanism_description"),
		field.JSON("predicted_effects", &models.PredictedEffects{}).
			Optional(),
		field.JSON("parent_ids", []string{}).
			Optional().
			Comment("Lineage for seeded search"),
		field.JSON("scores", &models.CandidateScores{}).
			Optional(),
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

// Edges of the Candidate.
func (Candidate) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("project", Project.Type).
			Ref("candidates").
			Field("project_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Candidate.
func (Candidate) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("project_id", "status"),
		index.Fields("project_id", "created_at"),
		index.Fields("run_id"),
	}
}
