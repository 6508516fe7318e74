package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"

	"github.com/casaflow/casaflow/pkg/models"
)

// PipelineConfig holds the schema definition for the PipelineConfig entity.
// A single row keyed by the literal string "pipeline" holds the active
// stage configuration. Writes are guarded by an optimistic version check.
type PipelineConfig struct {
	ent.Schema
}

// Fields of the PipelineConfig.
func (PipelineConfig) Fields() []ent.Field {
	return []ent.Field{
		field.String("key").
			Unique().
			Comment("Singleton document key"),
		field.JSON("stages", []models.Stage{}).
			Comment("Ordered stage list (array order is the kanban column order)"),
		field.String("default_stage_id").
			NotEmpty().
			Comment("Stage assigned to newly created opportunities"),
		field.Int("version").
			Default(1).
			Comment("Monotonic version for optimistic concurrency"),
		field.Int("updated_by_id").
			Default(0).
			Comment("User who last updated the configuration"),
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
