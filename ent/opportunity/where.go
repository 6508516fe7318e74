// Code generated by ent, DO NOT EDIT.

package opportunity

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/casaflow/casaflow/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldLTE(FieldID, id))
}

// LeadID applies equality check predicate on the "lead_id" field. It's identical to LeadIDEQ.
func LeadID(v int) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldEQ(FieldLeadID, v))
}

// StageID applies equality check predicate on the "stage_id" field. It's identical to StageIDEQ.
func StageID(v string) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldEQ(FieldStageID, v))
}

// PreviousStageID applies equality check predicate on the "previous_stage_id" field. It's identical to PreviousStageIDEQ.
func PreviousStageID(v string) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldEQ(FieldPreviousStageID, v))
}

// StageEnteredAt applies equality check predicate on the "stage_entered_at" field. It's identical to StageEnteredAtEQ.
func StageEnteredAt(v time.Time) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldEQ(FieldStageEnteredAt, v))
}

// AssignedAgentID applies equality check predicate on the "assigned_agent_id" field. It's identical to AssignedAgentIDEQ.
func AssignedAgentID(v int) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldEQ(FieldAssignedAgentID, v))
}

// IsExclusive applies equality check predicate on the "is_exclusive" field. It's identical to IsExclusiveEQ.
func IsExclusive(v bool) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldEQ(FieldIsExclusive, v))
}

// ExpectedValue applies equality check predicate on the "expected_value" field. It's identical to ExpectedValueEQ.
func ExpectedValue(v float64) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldEQ(FieldExpectedValue, v))
}

// ExpectedCloseDate applies equality check predicate on the "expected_close_date" field. It's identical to ExpectedCloseDateEQ.
func ExpectedCloseDate(v time.Time) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldEQ(FieldExpectedCloseDate, v))
}

// ClosedAt applies equality check predicate on the "closed_at" field. It's identical to ClosedAtEQ.
func ClosedAt(v time.Time) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldEQ(FieldClosedAt, v))
}

// Version applies equality check predicate on the "version" field. It's identical to VersionEQ.
func Version(v int) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldEQ(FieldVersion, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldEQ(FieldUpdatedAt, v))
}

// LeadIDEQ applies the EQ predicate on the "lead_id" field.
func LeadIDEQ(v int) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldEQ(FieldLeadID, v))
}

// LeadIDNEQ applies the NEQ predicate on the "lead_id" field.
func LeadIDNEQ(v int) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldNEQ(FieldLeadID, v))
}

// LeadIDIn applies the In predicate on the "lead_id" field.
func LeadIDIn(vs ...int) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldIn(FieldLeadID, vs...))
}

// LeadIDNotIn applies the NotIn predicate on the "lead_id" field.
func LeadIDNotIn(vs ...int) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldNotIn(FieldLeadID, vs...))
}

// StageIDEQ applies the EQ predicate on the "stage_id" field.
func StageIDEQ(v string) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldEQ(FieldStageID, v))
}

// StageIDNEQ applies the NEQ predicate on the "stage_id" field.
func StageIDNEQ(v string) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldNEQ(FieldStageID, v))
}

// StageIDIn applies the In predicate on the "stage_id" field.
func StageIDIn(vs ...string) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldIn(FieldStageID, vs...))
}

// StageIDNotIn applies the NotIn predicate on the "stage_id" field.
func StageIDNotIn(vs ...string) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldNotIn(FieldStageID, vs...))
}

// StageIDGT applies the GT predicate on the "stage_id" field.
func StageIDGT(v string) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldGT(FieldStageID, v))
}

// StageIDGTE applies the GTE predicate on the "stage_id" field.
func StageIDGTE(v string) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldGTE(FieldStageID, v))
}

// StageIDLT applies the LT predicate on the "stage_id" field.
func StageIDLT(v string) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldLT(FieldStageID, v))
}

// StageIDLTE applies the LTE predicate on the "stage_id" field.
func StageIDLTE(v string) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldLTE(FieldStageID, v))
}

// StageIDContains applies the Contains predicate on the "stage_id" field.
func StageIDContains(v string) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldContains(FieldStageID, v))
}

// StageIDHasPrefix applies the HasPrefix predicate on the "stage_id" field.
func StageIDHasPrefix(v string) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldHasPrefix(FieldStageID, v))
}

// StageIDHasSuffix applies the HasSuffix predicate on the "stage_id" field.
func StageIDHasSuffix(v string) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldHasSuffix(FieldStageID, v))
}

// StageIDEqualFold applies the EqualFold predicate on the "stage_id" field.
func StageIDEqualFold(v string) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldEqualFold(FieldStageID, v))
}

// StageIDContainsFold applies the ContainsFold predicate on the "stage_id" field.
func StageIDContainsFold(v string) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldContainsFold(FieldStageID, v))
}

// PreviousStageIDEQ applies the EQ predicate on the "previous_stage_id" field.
func PreviousStageIDEQ(v string) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldEQ(FieldPreviousStageID, v))
}

// PreviousStageIDNEQ applies the NEQ predicate on the "previous_stage_id" field.
func PreviousStageIDNEQ(v string) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldNEQ(FieldPreviousStageID, v))
}

// PreviousStageIDIn applies the In predicate on the "previous_stage_id" field.
func PreviousStageIDIn(vs ...string) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldIn(FieldPreviousStageID, vs...))
}

// PreviousStageIDNotIn applies the NotIn predicate on the "previous_stage_id" field.
func PreviousStageIDNotIn(vs ...string) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldNotIn(FieldPreviousStageID, vs...))
}

// PreviousStageIDGT applies the GT predicate on the "previous_stage_id" field.
func PreviousStageIDGT(v string) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldGT(FieldPreviousStageID, v))
}

// PreviousStageIDGTE applies the GTE predicate on the "previous_stage_id" field.
func PreviousStageIDGTE(v string) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldGTE(FieldPreviousStageID, v))
}

// PreviousStageIDLT applies the LT predicate on the "previous_stage_id" field.
func PreviousStageIDLT(v string) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldLT(FieldPreviousStageID, v))
}

// PreviousStageIDLTE applies the LTE predicate on the "previous_stage_id" field.
func PreviousStageIDLTE(v string) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldLTE(FieldPreviousStageID, v))
}

// PreviousStageIDContains applies the Contains predicate on the "previous_stage_id" field.
func PreviousStageIDContains(v string) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldContains(FieldPreviousStageID, v))
}

// PreviousStageIDHasPrefix applies the HasPrefix predicate on the "previous_stage_id" field.
func PreviousStageIDHasPrefix(v string) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldHasPrefix(FieldPreviousStageID, v))
}

// PreviousStageIDHasSuffix applies the HasSuffix predicate on the "previous_stage_id" field.
func PreviousStageIDHasSuffix(v string) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldHasSuffix(FieldPreviousStageID, v))
}

// PreviousStageIDIsNil applies the IsNil predicate on the "previous_stage_id" field.
func PreviousStageIDIsNil() predicate.Opportunity {
	return predicate.Opportunity(sql.FieldIsNull(FieldPreviousStageID))
}

// PreviousStageIDNotNil applies the NotNil predicate on the "previous_stage_id" field.
func PreviousStageIDNotNil() predicate.Opportunity {
	return predicate.Opportunity(sql.FieldNotNull(FieldPreviousStageID))
}

// PreviousStageIDEqualFold applies the EqualFold predicate on the "previous_stage_id" field.
func PreviousStageIDEqualFold(v string) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldEqualFold(FieldPreviousStageID, v))
}

// PreviousStageIDContainsFold applies the ContainsFold predicate on the "previous_stage_id" field.
func PreviousStageIDContainsFold(v string) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldContainsFold(FieldPreviousStageID, v))
}

// StageEnteredAtEQ applies the EQ predicate on the "stage_entered_at" field.
func StageEnteredAtEQ(v time.Time) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldEQ(FieldStageEnteredAt, v))
}

// StageEnteredAtNEQ applies the NEQ predicate on the "stage_entered_at" field.
func StageEnteredAtNEQ(v time.Time) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldNEQ(FieldStageEnteredAt, v))
}

// StageEnteredAtIn applies the In predicate on the "stage_entered_at" field.
func StageEnteredAtIn(vs ...time.Time) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldIn(FieldStageEnteredAt, vs...))
}

// StageEnteredAtNotIn applies the NotIn predicate on the "stage_entered_at" field.
func StageEnteredAtNotIn(vs ...time.Time) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldNotIn(FieldStageEnteredAt, vs...))
}

// StageEnteredAtGT applies the GT predicate on the "stage_entered_at" field.
func StageEnteredAtGT(v time.Time) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldGT(FieldStageEnteredAt, v))
}

// StageEnteredAtGTE applies the GTE predicate on the "stage_entered_at" field.
func StageEnteredAtGTE(v time.Time) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldGTE(FieldStageEnteredAt, v))
}

// StageEnteredAtLT applies the LT predicate on the "stage_entered_at" field.
func StageEnteredAtLT(v time.Time) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldLT(FieldStageEnteredAt, v))
}

// StageEnteredAtLTE applies the LTE predicate on the "stage_entered_at" field.
func StageEnteredAtLTE(v time.Time) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldLTE(FieldStageEnteredAt, v))
}

// AssignedAgentIDEQ applies the EQ predicate on the "assigned_agent_id" field.
func AssignedAgentIDEQ(v int) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldEQ(FieldAssignedAgentID, v))
}

// AssignedAgentIDNEQ applies the NEQ predicate on the "assigned_agent_id" field.
func AssignedAgentIDNEQ(v int) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldNEQ(FieldAssignedAgentID, v))
}

// AssignedAgentIDIn applies the In predicate on the "assigned_agent_id" field.
func AssignedAgentIDIn(vs ...int) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldIn(FieldAssignedAgentID, vs...))
}

// AssignedAgentIDNotIn applies the NotIn predicate on the "assigned_agent_id" field.
func AssignedAgentIDNotIn(vs ...int) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldNotIn(FieldAssignedAgentID, vs...))
}

// AssignedAgentIDGT applies the GT predicate on the "assigned_agent_id" field.
func AssignedAgentIDGT(v int) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldGT(FieldAssignedAgentID, v))
}

// AssignedAgentIDGTE applies the GTE predicate on the "assigned_agent_id" field.
func AssignedAgentIDGTE(v int) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldGTE(FieldAssignedAgentID, v))
}

// AssignedAgentIDLT applies the LT predicate on the "assigned_agent_id" field.
func AssignedAgentIDLT(v int) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldLT(FieldAssignedAgentID, v))
}

// AssignedAgentIDLTE applies the LTE predicate on the "assigned_agent_id" field.
func AssignedAgentIDLTE(v int) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldLTE(FieldAssignedAgentID, v))
}

// IsExclusiveEQ applies the EQ predicate on the "is_exclusive" field.
func IsExclusiveEQ(v bool) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldEQ(FieldIsExclusive, v))
}

// IsExclusiveNEQ applies the NEQ predicate on the "is_exclusive" field.
func IsExclusiveNEQ(v bool) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldNEQ(FieldIsExclusive, v))
}

// ExpectedValueEQ applies the EQ predicate on the "expected_value" field.
func ExpectedValueEQ(v float64) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldEQ(FieldExpectedValue, v))
}

// ExpectedValueNEQ applies the NEQ predicate on the "expected_value" field.
func ExpectedValueNEQ(v float64) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldNEQ(FieldExpectedValue, v))
}

// ExpectedValueIn applies the In predicate on the "expected_value" field.
func ExpectedValueIn(vs ...float64) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldIn(FieldExpectedValue, vs...))
}

// ExpectedValueNotIn applies the NotIn predicate on the "expected_value" field.
func ExpectedValueNotIn(vs ...float64) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldNotIn(FieldExpectedValue, vs...))
}

// ExpectedValueGT applies the GT predicate on the "expected_value" field.
func ExpectedValueGT(v float64) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldGT(FieldExpectedValue, v))
}

// ExpectedValueGTE applies the GTE predicate on the "expected_value" field.
func ExpectedValueGTE(v float64) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldGTE(FieldExpectedValue, v))
}

// ExpectedValueLT applies the LT predicate on the "expected_value" field.
func ExpectedValueLT(v float64) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldLT(FieldExpectedValue, v))
}

// ExpectedValueLTE applies the LTE predicate on the "expected_value" field.
func ExpectedValueLTE(v float64) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldLTE(FieldExpectedValue, v))
}

// ExpectedCloseDateEQ applies the EQ predicate on the "expected_close_date" field.
func ExpectedCloseDateEQ(v time.Time) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldEQ(FieldExpectedCloseDate, v))
}

// ExpectedCloseDateNEQ applies the NEQ predicate on the "expected_close_date" field.
func ExpectedCloseDateNEQ(v time.Time) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldNEQ(FieldExpectedCloseDate, v))
}

// ExpectedCloseDateIn applies the In predicate on the "expected_close_date" field.
func ExpectedCloseDateIn(vs ...time.Time) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldIn(FieldExpectedCloseDate, vs...))
}

// ExpectedCloseDateNotIn applies the NotIn predicate on the "expected_close_date" field.
func ExpectedCloseDateNotIn(vs ...time.Time) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldNotIn(FieldExpectedCloseDate, vs...))
}

// ExpectedCloseDateGT applies the GT predicate on the "expected_close_date" field.
func ExpectedCloseDateGT(v time.Time) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldGT(FieldExpectedCloseDate, v))
}

// ExpectedCloseDateGTE applies the GTE predicate on the "expected_close_date" field.
func ExpectedCloseDateGTE(v time.Time) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldGTE(FieldExpectedCloseDate, v))
}

// ExpectedCloseDateLT applies the LT predicate on the "expected_close_date" field.
func ExpectedCloseDateLT(v time.Time) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldLT(FieldExpectedCloseDate, v))
}

// ExpectedCloseDateLTE applies the LTE predicate on the "expected_close_date" field.
func ExpectedCloseDateLTE(v time.Time) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldLTE(FieldExpectedCloseDate, v))
}

// ExpectedCloseDateIsNil applies the IsNil predicate on the "expected_close_date" field.
func ExpectedCloseDateIsNil() predicate.Opportunity {
	return predicate.Opportunity(sql.FieldIsNull(FieldExpectedCloseDate))
}

// ExpectedCloseDateNotNil applies the NotNil predicate on the "expected_close_date" field.
func ExpectedCloseDateNotNil() predicate.Opportunity {
	return predicate.Opportunity(sql.FieldNotNull(FieldExpectedCloseDate))
}

// OutcomeEQ applies the EQ predicate on the "outcome" field.
func OutcomeEQ(v Outcome) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldEQ(FieldOutcome, v))
}

// OutcomeNEQ applies the NEQ predicate on the "outcome" field.
func OutcomeNEQ(v Outcome) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldNEQ(FieldOutcome, v))
}

// OutcomeIn applies the In predicate on the "outcome" field.
func OutcomeIn(vs ...Outcome) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldIn(FieldOutcome, vs...))
}

// OutcomeNotIn applies the NotIn predicate on the "outcome" field.
func OutcomeNotIn(vs ...Outcome) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldNotIn(FieldOutcome, vs...))
}

// OutcomeIsNil applies the IsNil predicate on the "outcome" field.
func OutcomeIsNil() predicate.Opportunity {
	return predicate.Opportunity(sql.FieldIsNull(FieldOutcome))
}

// OutcomeNotNil applies the NotNil predicate on the "outcome" field.
func OutcomeNotNil() predicate.Opportunity {
	return predicate.Opportunity(sql.FieldNotNull(FieldOutcome))
}

// ClosedAtEQ applies the EQ predicate on the "closed_at" field.
func ClosedAtEQ(v time.Time) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldEQ(FieldClosedAt, v))
}

// ClosedAtNEQ applies the NEQ predicate on the "closed_at" field.
func ClosedAtNEQ(v time.Time) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldNEQ(FieldClosedAt, v))
}

// ClosedAtIn applies the In predicate on the "closed_at" field.
func ClosedAtIn(vs ...time.Time) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldIn(FieldClosedAt, vs...))
}

// ClosedAtNotIn applies the NotIn predicate on the "closed_at" field.
func ClosedAtNotIn(vs ...time.Time) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldNotIn(FieldClosedAt, vs...))
}

// ClosedAtGT applies the GT predicate on the "closed_at" field.
func ClosedAtGT(v time.Time) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldGT(FieldClosedAt, v))
}

// ClosedAtGTE applies the GTE predicate on the "closed_at" field.
func ClosedAtGTE(v time.Time) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldGTE(FieldClosedAt, v))
}

// ClosedAtLT applies the LT predicate on the "closed_at" field.
func ClosedAtLT(v time.Time) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldLT(FieldClosedAt, v))
}

// ClosedAtLTE applies the LTE predicate on the "closed_at" field.
func ClosedAtLTE(v time.Time) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldLTE(FieldClosedAt, v))
}

// ClosedAtIsNil applies the IsNil predicate on the "closed_at" field.
func ClosedAtIsNil() predicate.Opportunity {
	return predicate.Opportunity(sql.FieldIsNull(FieldClosedAt))
}

// ClosedAtNotNil applies the NotNil predicate on the "closed_at" field.
func ClosedAtNotNil() predicate.Opportunity {
	return predicate.Opportunity(sql.FieldNotNull(FieldClosedAt))
}

// VersionEQ applies the EQ predicate on the "version" field.
func VersionEQ(v int) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldEQ(FieldVersion, v))
}

// VersionNEQ applies the NEQ predicate on the "version" field.
func VersionNEQ(v int) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldNEQ(FieldVersion, v))
}

// VersionIn applies the In predicate on the "version" field.
func VersionIn(vs ...int) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldIn(FieldVersion, vs...))
}

// VersionNotIn applies the NotIn predicate on the "version" field.
func VersionNotIn(vs ...int) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldNotIn(FieldVersion, vs...))
}

// VersionGT applies the GT predicate on the "version" field.
func VersionGT(v int) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldGT(FieldVersion, v))
}

// VersionGTE applies the GTE predicate on the "version" field.
func VersionGTE(v int) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldGTE(FieldVersion, v))
}

// VersionLT applies the LT predicate on the "version" field.
func VersionLT(v int) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldLT(FieldVersion, v))
}

// VersionLTE applies the LTE predicate on the "version" field.
func VersionLTE(v int) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldLTE(FieldVersion, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Opportunity {
	return predicate.Opportunity(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasLead applies the HasEdge predicate on the "lead" edge.
func HasLead() predicate.Opportunity {
	return predicate.Opportunity(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, LeadTable, LeadColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasLeadWith applies the HasEdge predicate on the "lead" edge with a given conditions (other predicates).
func HasLeadWith(preds ...predicate.Lead) predicate.Opportunity {
	return predicate.Opportunity(func(s *sql.Selector) {
		step := newLeadStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Opportunity) predicate.Opportunity {
	return predicate.Opportunity(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Opportunity) predicate.Opportunity {
	return predicate.Opportunity(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Opportunity) predicate.Opportunity {
	return predicate.Opportunity(sql.NotPredicates(p))
}
