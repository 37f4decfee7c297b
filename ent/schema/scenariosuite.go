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

// ScenarioSuite holds the schema definition for the ScenarioSuite entity,
// the per-run set of test scenarios.
type ScenarioSuite struct {
	ent.Schema
}

// Fields of the ScenarioSuite.
func (ScenarioSuite) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("suite_id").
			Unique().
			Immutable(),
		field.String("run_id").
			Immutable(),
		field.String("project_id").
			Immutable(),
		field.JSON("scenarios", []models.Scenario{}),
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

// Edges of the ScenarioSuite.
func (ScenarioSuite) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("run", Run.Type).
			Ref("scenario_suite").
			Field("run_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the ScenarioSuite.
func (ScenarioSuite) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("run_id").
			Unique(),
		index.Fields("project_id"),
	}
}
