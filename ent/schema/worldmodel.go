package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// WorldModel holds the schema definition for the WorldModel entity. The
// model is a JSON tree (actors, mechanisms, resources, constraints,
// assumptions, simplifications) carrying its own provenance array.
type WorldModel struct {
	ent.Schema
}

// Fields of the WorldModel.
func (WorldModel) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("model_id").
			Unique().
			Immutable(),
		field.String("project_id").
			Immutable(),
		field.JSON("model_data", map[string]interface{}{}),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the WorldModel.
func (WorldModel) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("project", Project.Type).
			Ref("world_model").
			Field("project_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the WorldModel.
func (WorldModel) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("project_id").
			Unique(),
	}
}
