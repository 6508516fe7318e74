// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/casaflow/casaflow/ent/lead"
	"github.com/casaflow/casaflow/ent/opportunity"
)

// Opportunity is the model entity for the Opportunity schema.
type Opportunity struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Owning lead
	LeadID int `json:"lead_id,omitempty"`
	// Current pipeline stage
	StageID string `json:"stage_id,omitempty"`
	// Stage held before the last transition (null before first move)
	PreviousStageID *string `json:"previous_stage_id,omitempty"`
	// When the opportunity entered the current stage
	StageEnteredAt time.Time `json:"stage_entered_at,omitempty"`
	// Owning agent user id (0 = unassigned)
	AssignedAgentID int `json:"assigned_agent_id,omitempty"`
	// Copied from the lead at creation
	IsExclusive bool `json:"is_exclusive,omitempty"`
	// Expected deal value, used only for aggregation
	ExpectedValue float64 `json:"expected_value,omitempty"`
	// Expected close date, never validated
	ExpectedCloseDate *time.Time `json:"expected_close_date,omitempty"`
	// Set on entering a terminal stage
	Outcome *opportunity.Outcome `json:"outcome,omitempty"`
	// Set together with outcome
	ClosedAt *time.Time `json:"closed_at,omitempty"`
	// Optimistic concurrency token, incremented on every move
	Version int `json:"version,omitempty"`
	// Creation timestamp
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Last update timestamp
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the OpportunityQuery when eager-loading is set.
	Edges        OpportunityEdges `json:"edges"`
	selectValues sql.SelectValues
}

// OpportunityEdges holds the relations/edges for other nodes in the graph.
type OpportunityEdges struct {
	// Lead holds the value of the lead edge.
	Lead *Lead `json:"lead,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// LeadOrErr returns the Lead value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e OpportunityEdges) LeadOrErr() (*Lead, error) {
	if e.Lead != nil {
		return e.Lead, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: lead.Label}
	}
	return nil, &NotLoadedError{edge: "lead"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Opportunity) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case opportunity.FieldIsExclusive:
			values[i] = new(sql.NullBool)
		case opportunity.FieldExpectedValue:
			values[i] = new(sql.NullFloat64)
		case opportunity.FieldID, opportunity.FieldLeadID, opportunity.FieldAssignedAgentID, opportunity.FieldVersion:
			values[i] = new(sql.NullInt64)
		case opportunity.FieldStageID, opportunity.FieldPreviousStageID, opportunity.FieldOutcome:
			values[i] = new(sql.NullString)
		case opportunity.FieldStageEnteredAt, opportunity.FieldExpectedCloseDate, opportunity.FieldClosedAt, opportunity.FieldCreatedAt, opportunity.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Opportunity fields.
func (_m *Opportunity) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case opportunity.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case opportunity.FieldLeadID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field lead_id", values[i])
			} else if value.Valid {
				_m.LeadID = int(value.Int64)
			}
		case opportunity.FieldStageID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stage_id", values[i])
			} else if value.Valid {
				_m.StageID = value.String
			}
		case opportunity.FieldPreviousStageID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field previous_stage_id", values[i])
			} else if value.Valid {
				_m.PreviousStageID = new(string)
				*_m.PreviousStageID = value.String
			}
		case opportunity.FieldStageEnteredAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field stage_entered_at", values[i])
			} else if value.Valid {
				_m.StageEnteredAt = value.Time
			}
		case opportunity.FieldAssignedAgentID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field assigned_agent_id", values[i])
			} else if value.Valid {
				_m.AssignedAgentID = int(value.Int64)
			}
		case opportunity.FieldIsExclusive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_exclusive", values[i])
			} else if value.Valid {
				_m.IsExclusive = value.Bool
			}
		case opportunity.FieldExpectedValue:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field expected_value", values[i])
			} else if value.Valid {
				_m.ExpectedValue = value.Float64
			}
		case opportunity.FieldExpectedCloseDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field expected_close_date", values[i])
			} else if value.Valid {
				_m.ExpectedCloseDate = new(time.Time)
				*_m.ExpectedCloseDate = value.Time
			}
		case opportunity.FieldOutcome:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field outcome", values[i])
			} else if value.Valid {
				_m.Outcome = new(opportunity.Outcome)
				*_m.Outcome = opportunity.Outcome(value.String)
			}
		case opportunity.FieldClosedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field closed_at", values[i])
			} else if value.Valid {
				_m.ClosedAt = new(time.Time)
				*_m.ClosedAt = value.Time
			}
		case opportunity.FieldVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field version", values[i])
			} else if value.Valid {
				_m.Version = int(value.Int64)
			}
		case opportunity.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case opportunity.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Opportunity.
// This includes values selected through modifiers, order, etc.
func (_m *Opportunity) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryLead queries the "lead" edge of the Opportunity entity.
func (_m *Opportunity) QueryLead() *LeadQuery {
	return NewOpportunityClient(_m.config).QueryLead(_m)
}

// Update returns a builder for updating this Opportunity.
// Note that you need to call Opportunity.Unwrap() before calling this method if this Opportunity
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Opportunity) Update() *OpportunityUpdateOne {
	return NewOpportunityClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Opportunity entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Opportunity) Unwrap() *Opportunity {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Opportunity is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Opportunity) String() string {
	var builder strings.Builder
	builder.WriteString("Opportunity(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("lead_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.LeadID))
	builder.WriteString(", ")
	builder.WriteString("stage_id=")
	builder.WriteString(_m.StageID)
	builder.WriteString(", ")
	if v := _m.PreviousStageID; v != nil {
		builder.WriteString("previous_stage_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("stage_entered_at=")
	builder.WriteString(_m.StageEnteredAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("assigned_agent_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.AssignedAgentID))
	builder.WriteString(", ")
	builder.WriteString("is_exclusive=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsExclusive))
	builder.WriteString(", ")
	builder.WriteString("expected_value=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExpectedValue))
	builder.WriteString(", ")
	if v := _m.ExpectedCloseDate; v != nil {
		builder.WriteString("expected_close_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.Outcome; v != nil {
		builder.WriteString("outcome=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ClosedAt; v != nil {
		builder.WriteString("closed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("version=")
	builder.WriteString(fmt.Sprintf("%v", _m.Version))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Opportunities is a parsable slice of Opportunity.
type Opportunities []*Opportunity
