// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/casaflow/casaflow/ent/pipelineconfig"
	"github.com/casaflow/casaflow/pkg/models"
)

// PipelineConfig is the model entity for the PipelineConfig schema.
type PipelineConfig struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Singleton document key
	Key string `json:"key,omitempty"`
	// Ordered stage list (array order is the kanban column order)
	Stages []models.Stage `json:"stages,omitempty"`
	// Stage assigned to newly created opportunities
	DefaultStageID string `json:"default_stage_id,omitempty"`
	// Monotonic version for optimistic concurrency
	Version int `json:"version,omitempty"`
	// User who last updated the configuration
	UpdatedByID int `json:"updated_by_id,omitempty"`
	// Creation timestamp
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Last update timestamp
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PipelineConfig) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case pipelineconfig.FieldStages:
			values[i] = new([]byte)
		case pipelineconfig.FieldID, pipelineconfig.FieldVersion, pipelineconfig.FieldUpdatedByID:
			values[i] = new(sql.NullInt64)
		case pipelineconfig.FieldKey, pipelineconfig.FieldDefaultStageID:
			values[i] = new(sql.NullString)
		case pipelineconfig.FieldCreatedAt, pipelineconfig.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PipelineConfig fields.
func (_m *PipelineConfig) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case pipelineconfig.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case pipelineconfig.FieldKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field key", values[i])
			} else if value.Valid {
				_m.Key = value.String
			}
		case pipelineconfig.FieldStages:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field stages", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Stages); err != nil {
					return fmt.Errorf("unmarshal field stages: %w", err)
				}
			}
		case pipelineconfig.FieldDefaultStageID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field default_stage_id", values[i])
			} else if value.Valid {
				_m.DefaultStageID = value.String
			}
		case pipelineconfig.FieldVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field version", values[i])
			} else if value.Valid {
				_m.Version = int(value.Int64)
			}
		case pipelineconfig.FieldUpdatedByID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field updated_by_id", values[i])
			} else if value.Valid {
				_m.UpdatedByID = int(value.Int64)
			}
		case pipelineconfig.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case pipelineconfig.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PipelineConfig.
// This includes values selected through modifiers, order, etc.
func (_m *PipelineConfig) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this PipelineConfig.
// Note that you need to call PipelineConfig.Unwrap() before calling this method if this PipelineConfig
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PipelineConfig) Update() *PipelineConfigUpdateOne {
	return NewPipelineConfigClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PipelineConfig entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PipelineConfig) Unwrap() *PipelineConfig {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PipelineConfig is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PipelineConfig) String() string {
	var builder strings.Builder
	builder.WriteString("PipelineConfig(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("key=")
	builder.WriteString(_m.Key)
	builder.WriteString(", ")
	builder.WriteString("stages=")
	builder.WriteString(fmt.Sprintf("%v", _m.Stages))
	builder.WriteString(", ")
	builder.WriteString("default_stage_id=")
	builder.WriteString(_m.DefaultStageID)
	builder.WriteString(", ")
	builder.WriteString("version=")
	builder.WriteString(fmt.Sprintf("%v", _m.Version))
	builder.WriteString(", ")
	builder.WriteString("updated_by_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.UpdatedByID))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// PipelineConfigs is a parsable slice of PipelineConfig.
type PipelineConfigs []*PipelineConfig
