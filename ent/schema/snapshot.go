package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/assaylab/assay/pkg/models"
)

// Snapshot holds the schema definition for the Snapshot entity, a frozen
// capture of project state used for replay and regression testing.
type Snapshot struct {
	ent.Schema
}

// Fields of the Snapshot.
func (Snapshot) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("snapshot_id").
			Unique().
			Immutable(),
		field.String("project_id").
			Immutable(),
		field.String("name"),
		field.Text("description").
			Optional(),
		field.JSON("snapshot_data", models.SnapshotData{}).
			Immutable().
			Comment("Frozen at capture; version 1.0"),
		field.JSON("reference_metrics", &models.ReferenceMetrics{}).
			Optional().
			Immutable(),
		field.JSON("invariants", []models.Invariant{}).
			Optional(),
		field.JSON("tags", []string{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Snapshot.
func (Snapshot) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("project", Project.Type).
			Ref("snapshots").
			Field("project_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Snapshot.
func (Snapshot) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("project_id", "name").
			Unique(),
	}
}
