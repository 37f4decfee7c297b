package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/assaylab/assay/pkg/models"
)

// Run holds the schema definition for the Run entity, one pipeline
// execution over a project.
type Run struct {
	ent.Schema
}

// Fields of the Run.
func (Run) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("run_id").
			Unique().
			Immutable(),
		field.String("project_id").
			Immutable(),
		field.JSON("config", models.RunConfig{}),
		field.Enum("status").
			Values("created", "running", "completed", "failed", "cancelled").
			Default("created").
			Comment("Mutated only through UpdateRunStatus"),
		field.JSON("metrics", &models.RunMetrics{}).
			Optional().
			Comment("Per-phase timings and resource counts, written on success and failure"),
		field.JSON("llm_usage", &models.AggregatedUsage{}).
			Optional(),
		field.String("error_summary").
			Optional().
			Nillable().
			MaxLen(models.MaxErrorSummaryLen),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),

		// UI trigger context
		field.String("chat_session_id").
			Optional().
			Nillable(),
		field.String("ui_trigger_id").
			Optional().
			Nillable(),
		field.String("ui_trigger_source").
			Optional().
			Nillable(),
		field.JSON("ui_trigger_metadata", map[string]interface{}{}).
			Optional(),
		field.Time("ui_trigger_at").
			Optional().
			Nillable(),
		field.String("run_summary_message_id").
			Optional().
			Nillable(),
		field.JSON("recommended_config", &models.RunConfig{}).
			Optional().
			Comment("Preflight-normalized config snapshot at trigger time"),

		// Queue coordination
		field.Time("queued_at").
			Optional().
			Nillable().
			Comment("Set when the run awaits a queue worker"),
		field.String("claimed_by").
			Optional().
			Nillable().
			Comment("Pod id of the claiming worker, for multi-replica coordination"),
		field.Time("last_heartbeat_at").
			Optional().
			Nillable().
			Comment("For orphan detection"),
	}
}

// Edges of the Run.
func (Run) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("project", Project.Type).
			Ref("runs").
			Field("project_id").
			Unique().
			Required().
			Immutable(),
		edge.To("scenario_suite", ScenarioSuite.Type).
			Unique().
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("evaluations", Evaluation.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Run.
func (Run) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("project_id", "created_at"),

		// Claim scan: queued runs awaiting a worker
		index.Fields("status", "queued_at"),
		// Orphan scan: running runs with stale heartbeats
		index.Fields("status", "last_heartbeat_at"),
	}
}
