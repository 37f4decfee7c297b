package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Project holds the schema definition for the Project entity, the root
// aggregate. Deleting a project cascade-deletes everything beneath it.
type Project struct {
	ent.Schema
}

// Fields of the Project.
func (Project) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("project_id").
			Unique().
			Immutable(),
		field.String("name"),
		field.Text("description").
			Optional(),
		field.Bool("ephemeral").
			Default(false).
			Comment("Replay scratch projects, subject to retention cleanup"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Project.
func (Project) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("problem_spec", ProblemSpec.Type).
			Unique().
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("world_model", WorldModel.Type).
			Unique().
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("runs", Run.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("candidates", Candidate.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("issues", Issue.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("snapshots", Snapshot.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("chat_sessions", ChatSession.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Project.
func (Project) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("created_at"),

		// Partial index for the retention sweep
		index.Fields("ephemeral").
			Annotations(entsql.IndexWhere("ephemeral")),
	}
}
