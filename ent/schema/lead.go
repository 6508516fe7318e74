package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Lead holds the schema definition for the Lead entity.
type Lead struct {
	ent.Schema
}

// Fields of the Lead.
func (Lead) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			NotEmpty().
			Comment("Contact full name"),
		field.String("email").
			Optional().
			Comment("Email address"),
		field.String("phone").
			Optional().
			Comment("Phone number"),
		field.String("source").
			Optional().
			Comment("Acquisition source (facebook, website, referral, ...)"),
		field.Int("assigned_agent_id").
			Default(0).
			Comment("Owning agent user id (0 = unassigned)"),
		field.Bool("is_exclusive").
			Default(false).
			Comment("Lead is reserved to a single agent"),

		// Denormalized mirror of the active opportunity, kept in sync
		// by the stage transition engine.
		field.String("current_stage_id").
			Optional().
			Comment("Stage id of the active opportunity"),
		field.String("current_stage_name").
			Optional().
			Comment("Stage name of the active opportunity"),

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

// Edges of the Lead.
func (Lead) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("opportunities", Opportunity.Type).
			Comment("Pipeline positions for this lead"),
		edge.To("activities", Activity.Type).
			Comment("Append-only event timeline"),
		edge.To("property", Property.Type).
			Unique().
			Comment("Property of interest, when known"),
	}
}

// Indexes of the Lead.
func (Lead) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("assigned_agent_id"),
		index.Fields("current_stage_id"),
		index.Fields("created_at"),
	}
}
