package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Property holds the schema definition for the Property entity.
type Property struct {
	ent.Schema
}

// Fields of the Property.
func (Property) Fields() []ent.Field {
	return []ent.Field{
		field.String("title").
			NotEmpty().
			Comment("Listing title"),
		field.String("address").
			Optional().
			Comment("Street address"),
		field.String("city").
			Optional().
			Comment("City name"),
		field.Enum("property_type").
			Values("house", "apartment", "land", "commercial").
			Default("house").
			Comment("Property category"),
		field.Float("price").
			Default(0).
			Comment("Listing price"),
		field.Int("bedrooms").
			Default(0).
			Comment("Bedroom count"),
		field.Float("area_sqm").
			Default(0).
			Comment("Built area in square meters"),
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

// Edges of the Property.
func (Property) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("lead", Lead.Type).
			Ref("property").
			Unique().
			Comment("Lead interested in this property"),
	}
}

// Indexes of the Property.
func (Property) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("city"),
		index.Fields("property_type"),
	}
}
