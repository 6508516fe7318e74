package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Activity holds the schema definition for the Activity entity.
// Activities are an append-only timeline of human-readable events per
// lead. Once written they are never mutated or deleted, except through
// cascading lead deletion.
type Activity struct {
	ent.Schema
}

// Fields of the Activity.
func (Activity) Fields() []ent.Field {
	return []ent.Field{
		field.Int("lead_id").
			Positive().
			Comment("Lead this activity belongs to"),
		field.Int("opportunity_id").
			Optional().
			Comment("Related opportunity, when applicable"),
		field.Enum("type").
			Values("stage_change", "note", "lead_created", "assignment").
			Comment("Event kind"),
		field.Text("content").
			NotEmpty().
			Comment("Human-readable event description"),
		field.JSON("metadata", map[string]interface{}{}).
			Optional().
			Comment("Structured event details (from/to stage ids and names, ...)"),
		field.Int("created_by_id").
			Default(0).
			Comment("User who caused the event (0 = system)"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("When the event occurred"),
	}
}

// Edges of the Activity.
func (Activity) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("lead", Lead.Type).
			Ref("activities").
			Field("lead_id").
			Unique().
			Required(),
	}
}

// Indexes of the Activity.
func (Activity) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("lead_id", "created_at").
			StorageKey("idx_activity_lead_time"),
		index.Fields("type", "created_at").
			StorageKey("idx_activity_type_time"),
	}
}
