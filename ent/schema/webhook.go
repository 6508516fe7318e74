package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Webhook holds the schema definition for the Webhook entity.
// Outbound subscriptions notified when opportunities change stage.
type Webhook struct {
	ent.Schema
}

// Fields of the Webhook.
func (Webhook) Fields() []ent.Field {
	return []ent.Field{
		field.Int("user_id").
			Positive().
			Comment("User who registered the webhook"),
		field.String("url").
			NotEmpty().
			Comment("Delivery endpoint"),
		field.JSON("events", []string{}).
			Comment("Subscribed event types"),
		field.String("secret").
			Sensitive().
			NotEmpty().
			Comment("HMAC signing secret"),
		field.String("description").
			Optional().
			Comment("Free-form description"),
		field.Bool("active").
			Default(true).
			Comment("Inactive webhooks are skipped on delivery"),
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

// Indexes of the Webhook.
func (Webhook) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("active"),
	}
}
