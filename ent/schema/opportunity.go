package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Opportunity holds the schema definition for the Opportunity entity.
// An opportunity tracks one lead's progress through the sales pipeline
// and is mutated only by the stage transition engine.
type Opportunity struct {
	ent.Schema
}

// Fields of the Opportunity.
func (Opportunity) Fields() []ent.Field {
	return []ent.Field{
		field.Int("lead_id").
			Positive().
			Comment("Owning lead"),
		field.String("stage_id").
			NotEmpty().
			Comment("Current pipeline stage"),
		field.String("previous_stage_id").
			Optional().
			Nillable().
			Comment("Stage held before the last transition (null before first move)"),
		field.Time("stage_entered_at").
			Default(time.Now).
			Comment("When the opportunity entered the current stage"),
		field.Int("assigned_agent_id").
			Default(0).
			Comment("Owning agent user id (0 = unassigned)"),
		field.Bool("is_exclusive").
			Default(false).
			Comment("Copied from the lead at creation"),
		field.Float("expected_value").
			Default(0).
			Comment("Expected deal value, used only for aggregation"),
		field.Time("expected_close_date").
			Optional().
			Nillable().
			Comment("Expected close date, never validated"),
		field.Enum("outcome").
			Values("won", "lost").
			Optional().
			Nillable().
			Comment("Set on entering a terminal stage"),
		field.Time("closed_at").
			Optional().
			Nillable().
			Comment("Set together with outcome"),
		field.Int("version").
			Default(1).
			Comment("Optimistic concurrency token, incremented on every move"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("Creation timestamp"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("Last update timestamp"),
	}
}

// Edges of the Opportunity.
func (Opportunity) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("lead", Lead.Type).
			Ref("opportunities").
			Field("lead_id").
			Unique().
			Required(),
	}
}

// Indexes of the Opportunity.
func (Opportunity) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("stage_id", "updated_at").
			StorageKey("idx_opportunity_stage_updated"),
		index.Fields("assigned_agent_id").
			StorageKey("idx_opportunity_agent"),
		index.Fields("lead_id").
			StorageKey("idx_opportunity_lead"),
	}
}
