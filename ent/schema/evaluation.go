package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/assaylab/assay/pkg/models"
)

// Evaluation holds the schema definition for the Evaluation entity, the
// evaluator's verdict for one (candidate, scenario) pair within a run.
type Evaluation struct {
	ent.Schema
}

// Fields of the Evaluation.
func (Evaluation) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("evaluation_id").
			Unique().
			Immutable(),
		field.String("run_id").
			Immutable(),
		field.String("candidate_id").
			Immutable(),
		field.String("scenario_id").
			Immutable().
			Comment("Scenario id inside the run's suite JSON"),
		field.JSON("p", models.Signal{}).
			Comment("Progress signal in [0,1]"),
		field.JSON("r", models.Signal{}).
			Comment("Resource signal in [0,1]"),
		field.JSON("constraint_satisfaction", map[string]models.ConstraintResult{}).
			Optional(),
		field.Text("explanation").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Evaluation.
func (Evaluation) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("run", Run.Type).
			Ref("evaluations").
			Field("run_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Evaluation.
func (Evaluation) Indexes() []ent.Index {
	return []ent.Index{
		// Idempotence: one verdict per pair per run
		index.Fields("run_id", "candidate_id", "scenario_id").
			Unique(),
		index.Fields("candidate_id"),
	}
}
