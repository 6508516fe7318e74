// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/casaflow/casaflow/ent/lead"
	"github.com/casaflow/casaflow/ent/opportunity"
	"github.com/casaflow/casaflow/ent/predicate"
)

// OpportunityUpdate is the builder for updating Opportunity entities.
type OpportunityUpdate struct {
	config
	hooks    []Hook
	mutation *OpportunityMutation
}

// Where appends a list predicates to the OpportunityUpdate builder.
func (_u *OpportunityUpdate) Where(ps ...predicate.Opportunity) *OpportunityUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLeadID sets the "lead_id" field.
func (_u *OpportunityUpdate) SetLeadID(v int) *OpportunityUpdate {
	_u.mutation.SetLeadID(v)
	return _u
}

// SetNillableLeadID sets the "lead_id" field if the given value is not nil.
func (_u *OpportunityUpdate) SetNillableLeadID(v *int) *OpportunityUpdate {
	if v != nil {
		_u.SetLeadID(*v)
	}
	return _u
}

// SetStageID sets the "stage_id" field.
func (_u *OpportunityUpdate) SetStageID(v string) *OpportunityUpdate {
	_u.mutation.SetStageID(v)
	return _u
}

// SetNillableStageID sets the "stage_id" field if the given value is not nil.
func (_u *OpportunityUpdate) SetNillableStageID(v *string) *OpportunityUpdate {
	if v != nil {
		_u.SetStageID(*v)
	}
	return _u
}

// SetPreviousStageID sets the "previous_stage_id" field.
func (_u *OpportunityUpdate) SetPreviousStageID(v string) *OpportunityUpdate {
	_u.mutation.SetPreviousStageID(v)
	return _u
}

// SetNillablePreviousStageID sets the "previous_stage_id" field if the given value is not nil.
func (_u *OpportunityUpdate) SetNillablePreviousStageID(v *string) *OpportunityUpdate {
	if v != nil {
		_u.SetPreviousStageID(*v)
	}
	return _u
}

// ClearPreviousStageID clears the value of the "previous_stage_id" field.
func (_u *OpportunityUpdate) ClearPreviousStageID() *OpportunityUpdate {
	_u.mutation.ClearPreviousStageID()
	return _u
}

// SetStageEnteredAt sets the "stage_entered_at" field.
func (_u *OpportunityUpdate) SetStageEnteredAt(v time.Time) *OpportunityUpdate {
	_u.mutation.SetStageEnteredAt(v)
	return _u
}

// SetNillableStageEnteredAt sets the "stage_entered_at" field if the given value is not nil.
func (_u *OpportunityUpdate) SetNillableStageEnteredAt(v *time.Time) *OpportunityUpdate {
	if v != nil {
		_u.SetStageEnteredAt(*v)
	}
	return _u
}

// SetAssignedAgentID sets the "assigned_agent_id" field.
func (_u *OpportunityUpdate) SetAssignedAgentID(v int) *OpportunityUpdate {
	_u.mutation.ResetAssignedAgentID()
	_u.mutation.SetAssignedAgentID(v)
	return _u
}

// SetNillableAssignedAgentID sets the "assigned_agent_id" field if the given value is not nil.
func (_u *OpportunityUpdate) SetNillableAssignedAgentID(v *int) *OpportunityUpdate {
	if v != nil {
		_u.SetAssignedAgentID(*v)
	}
	return _u
}

// AddAssignedAgentID adds value to the "assigned_agent_id" field.
func (_u *OpportunityUpdate) AddAssignedAgentID(v int) *OpportunityUpdate {
	_u.mutation.AddAssignedAgentID(v)
	return _u
}

// SetIsExclusive sets the "is_exclusive" field.
func (_u *OpportunityUpdate) SetIsExclusive(v bool) *OpportunityUpdate {
	_u.mutation.SetIsExclusive(v)
	return _u
}

// SetNillableIsExclusive sets the "is_exclusive" field if the given value is not nil.
func (_u *OpportunityUpdate) SetNillableIsExclusive(v *bool) *OpportunityUpdate {
	if v != nil {
		_u.SetIsExclusive(*v)
	}
	return _u
}

// SetExpectedValue sets the "expected_value" field.
func (_u *OpportunityUpdate) SetExpectedValue(v float64) *OpportunityUpdate {
	_u.mutation.ResetExpectedValue()
	_u.mutation.SetExpectedValue(v)
	return _u
}

// SetNillableExpectedValue sets the "expected_value" field if the given value is not nil.
func (_u *OpportunityUpdate) SetNillableExpectedValue(v *float64) *OpportunityUpdate {
	if v != nil {
		_u.SetExpectedValue(*v)
	}
	return _u
}

// AddExpectedValue adds value to the "expected_value" field.
func (_u *OpportunityUpdate) AddExpectedValue(v float64) *OpportunityUpdate {
	_u.mutation.AddExpectedValue(v)
	return _u
}

// SetExpectedCloseDate sets the "expected_close_date" field.
func (_u *OpportunityUpdate) SetExpectedCloseDate(v time.Time) *OpportunityUpdate {
	_u.mutation.SetExpectedCloseDate(v)
	return _u
}

// SetNillableExpectedCloseDate sets the "expected_close_date" field if the given value is not nil.
func (_u *OpportunityUpdate) SetNillableExpectedCloseDate(v *time.Time) *OpportunityUpdate {
	if v != nil {
		_u.SetExpectedCloseDate(*v)
	}
	return _u
}

// ClearExpectedCloseDate clears the value of the "expected_close_date" field.
func (_u *OpportunityUpdate) ClearExpectedCloseDate() *OpportunityUpdate {
	_u.mutation.ClearExpectedCloseDate()
	return _u
}

// SetOutcome sets the "outcome" field.
func (_u *OpportunityUpdate) SetOutcome(v opportunity.Outcome) *OpportunityUpdate {
	_u.mutation.SetOutcome(v)
	return _u
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_u *OpportunityUpdate) SetNillableOutcome(v *opportunity.Outcome) *OpportunityUpdate {
	if v != nil {
		_u.SetOutcome(*v)
	}
	return _u
}

// ClearOutcome clears the value of the "outcome" field.
func (_u *OpportunityUpdate) ClearOutcome() *OpportunityUpdate {
	_u.mutation.ClearOutcome()
	return _u
}

// SetClosedAt sets the "closed_at" field.
func (_u *OpportunityUpdate) SetClosedAt(v time.Time) *OpportunityUpdate {
	_u.mutation.SetClosedAt(v)
	return _u
}

// SetNillableClosedAt sets the "closed_at" field if the given value is not nil.
func (_u *OpportunityUpdate) SetNillableClosedAt(v *time.Time) *OpportunityUpdate {
	if v != nil {
		_u.SetClosedAt(*v)
	}
	return _u
}

// ClearClosedAt clears the value of the "closed_at" field.
func (_u *OpportunityUpdate) ClearClosedAt() *OpportunityUpdate {
	_u.mutation.ClearClosedAt()
	return _u
}

// SetVersion sets the "version" field.
func (_u *OpportunityUpdate) SetVersion(v int) *OpportunityUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *OpportunityUpdate) SetNillableVersion(v *int) *OpportunityUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *OpportunityUpdate) AddVersion(v int) *OpportunityUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *OpportunityUpdate) SetUpdatedAt(v time.Time) *OpportunityUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetLead sets the "lead" edge to the Lead entity.
func (_u *OpportunityUpdate) SetLead(v *Lead) *OpportunityUpdate {
	return _u.SetLeadID(v.ID)
}

// Mutation returns the OpportunityMutation object of the builder.
func (_u *OpportunityUpdate) Mutation() *OpportunityMutation {
	return _u.mutation
}

// ClearLead clears the "lead" edge to the Lead entity.
func (_u *OpportunityUpdate) ClearLead() *OpportunityUpdate {
	_u.mutation.ClearLead()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *OpportunityUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OpportunityUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *OpportunityUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OpportunityUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *OpportunityUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := opportunity.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OpportunityUpdate) check() error {
	if v, ok := _u.mutation.LeadID(); ok {
		if err := opportunity.LeadIDValidator(v); err != nil {
			return &ValidationError{Name: "lead_id", err: fmt.Errorf(`ent: validator failed for field "Opportunity.lead_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StageID(); ok {
		if err := opportunity.StageIDValidator(v); err != nil {
			return &ValidationError{Name: "stage_id", err: fmt.Errorf(`ent: validator failed for field "Opportunity.stage_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Outcome(); ok {
		if err := opportunity.OutcomeValidator(v); err != nil {
			return &ValidationError{Name: "outcome", err: fmt.Errorf(`ent: validator failed for field "Opportunity.outcome": %w`, err)}
		}
	}
	if _u.mutation.LeadCleared() && len(_u.mutation.LeadIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Opportunity.lead"`)
	}
	return nil
}

func (_u *OpportunityUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(opportunity.Table, opportunity.Columns, sqlgraph.NewFieldSpec(opportunity.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StageID(); ok {
		_spec.SetField(opportunity.FieldStageID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PreviousStageID(); ok {
		_spec.SetField(opportunity.FieldPreviousStageID, field.TypeString, value)
	}
	if _u.mutation.PreviousStageIDCleared() {
		_spec.ClearField(opportunity.FieldPreviousStageID, field.TypeString)
	}
	if value, ok := _u.mutation.StageEnteredAt(); ok {
		_spec.SetField(opportunity.FieldStageEnteredAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.AssignedAgentID(); ok {
		_spec.SetField(opportunity.FieldAssignedAgentID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAssignedAgentID(); ok {
		_spec.AddField(opportunity.FieldAssignedAgentID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsExclusive(); ok {
		_spec.SetField(opportunity.FieldIsExclusive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ExpectedValue(); ok {
		_spec.SetField(opportunity.FieldExpectedValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedExpectedValue(); ok {
		_spec.AddField(opportunity.FieldExpectedValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ExpectedCloseDate(); ok {
		_spec.SetField(opportunity.FieldExpectedCloseDate, field.TypeTime, value)
	}
	if _u.mutation.ExpectedCloseDateCleared() {
		_spec.ClearField(opportunity.FieldExpectedCloseDate, field.TypeTime)
	}
	if value, ok := _u.mutation.Outcome(); ok {
		_spec.SetField(opportunity.FieldOutcome, field.TypeEnum, value)
	}
	if _u.mutation.OutcomeCleared() {
		_spec.ClearField(opportunity.FieldOutcome, field.TypeEnum)
	}
	if value, ok := _u.mutation.ClosedAt(); ok {
		_spec.SetField(opportunity.FieldClosedAt, field.TypeTime, value)
	}
	if _u.mutation.ClosedAtCleared() {
		_spec.ClearField(opportunity.FieldClosedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(opportunity.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(opportunity.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(opportunity.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.LeadCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   opportunity.LeadTable,
			Columns: []string{opportunity.LeadColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lead.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LeadIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   opportunity.LeadTable,
			Columns: []string{opportunity.LeadColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lead.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{opportunity.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// OpportunityUpdateOne is the builder for updating a single Opportunity entity.
type OpportunityUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *OpportunityMutation
}

// SetLeadID sets the "lead_id" field.
func (_u *OpportunityUpdateOne) SetLeadID(v int) *OpportunityUpdateOne {
	_u.mutation.SetLeadID(v)
	return _u
}

// SetNillableLeadID sets the "lead_id" field if the given value is not nil.
func (_u *OpportunityUpdateOne) SetNillableLeadID(v *int) *OpportunityUpdateOne {
	if v != nil {
		_u.SetLeadID(*v)
	}
	return _u
}

// SetStageID sets the "stage_id" field.
func (_u *OpportunityUpdateOne) SetStageID(v string) *OpportunityUpdateOne {
	_u.mutation.SetStageID(v)
	return _u
}

// SetNillableStageID sets the "stage_id" field if the given value is not nil.
func (_u *OpportunityUpdateOne) SetNillableStageID(v *string) *OpportunityUpdateOne {
	if v != nil {
		_u.SetStageID(*v)
	}
	return _u
}

// SetPreviousStageID sets the "previous_stage_id" field.
func (_u *OpportunityUpdateOne) SetPreviousStageID(v string) *OpportunityUpdateOne {
	_u.mutation.SetPreviousStageID(v)
	return _u
}

// SetNillablePreviousStageID sets the "previous_stage_id" field if the given value is not nil.
func (_u *OpportunityUpdateOne) SetNillablePreviousStageID(v *string) *OpportunityUpdateOne {
	if v != nil {
		_u.SetPreviousStageID(*v)
	}
	return _u
}

// ClearPreviousStageID clears the value of the "previous_stage_id" field.
func (_u *OpportunityUpdateOne) ClearPreviousStageID() *OpportunityUpdateOne {
	_u.mutation.ClearPreviousStageID()
	return _u
}

// SetStageEnteredAt sets the "stage_entered_at" field.
func (_u *OpportunityUpdateOne) SetStageEnteredAt(v time.Time) *OpportunityUpdateOne {
	_u.mutation.SetStageEnteredAt(v)
	return _u
}

// SetNillableStageEnteredAt sets the "stage_entered_at" field if the given value is not nil.
func (_u *OpportunityUpdateOne) SetNillableStageEnteredAt(v *time.Time) *OpportunityUpdateOne {
	if v != nil {
		_u.SetStageEnteredAt(*v)
	}
	return _u
}

// SetAssignedAgentID sets the "assigned_agent_id" field.
func (_u *OpportunityUpdateOne) SetAssignedAgentID(v int) *OpportunityUpdateOne {
	_u.mutation.ResetAssignedAgentID()
	_u.mutation.SetAssignedAgentID(v)
	return _u
}

// SetNillableAssignedAgentID sets the "assigned_agent_id" field if the given value is not nil.
func (_u *OpportunityUpdateOne) SetNillableAssignedAgentID(v *int) *OpportunityUpdateOne {
	if v != nil {
		_u.SetAssignedAgentID(*v)
	}
	return _u
}

// AddAssignedAgentID adds value to the "assigned_agent_id" field.
func (_u *OpportunityUpdateOne) AddAssignedAgentID(v int) *OpportunityUpdateOne {
	_u.mutation.AddAssignedAgentID(v)
	return _u
}

// SetIsExclusive sets the "is_exclusive" field.
func (_u *OpportunityUpdateOne) SetIsExclusive(v bool) *OpportunityUpdateOne {
	_u.mutation.SetIsExclusive(v)
	return _u
}

// SetNillableIsExclusive sets the "is_exclusive" field if the given value is not nil.
func (_u *OpportunityUpdateOne) SetNillableIsExclusive(v *bool) *OpportunityUpdateOne {
	if v != nil {
		_u.SetIsExclusive(*v)
	}
	return _u
}

// SetExpectedValue sets the "expected_value" field.
func (_u *OpportunityUpdateOne) SetExpectedValue(v float64) *OpportunityUpdateOne {
	_u.mutation.ResetExpectedValue()
	_u.mutation.SetExpectedValue(v)
	return _u
}

// SetNillableExpectedValue sets the "expected_value" field if the given value is not nil.
func (_u *OpportunityUpdateOne) SetNillableExpectedValue(v *float64) *OpportunityUpdateOne {
	if v != nil {
		_u.SetExpectedValue(*v)
	}
	return _u
}

// AddExpectedValue adds value to the "expected_value" field.
func (_u *OpportunityUpdateOne) AddExpectedValue(v float64) *OpportunityUpdateOne {
	_u.mutation.AddExpectedValue(v)
	return _u
}

// SetExpectedCloseDate sets the "expected_close_date" field.
func (_u *OpportunityUpdateOne) SetExpectedCloseDate(v time.Time) *OpportunityUpdateOne {
	_u.mutation.SetExpectedCloseDate(v)
	return _u
}

// SetNillableExpectedCloseDate sets the "expected_close_date" field if the given value is not nil.
func (_u *OpportunityUpdateOne) SetNillableExpectedCloseDate(v *time.Time) *OpportunityUpdateOne {
	if v != nil {
		_u.SetExpectedCloseDate(*v)
	}
	return _u
}

// ClearExpectedCloseDate clears the value of the "expected_close_date" field.
func (_u *OpportunityUpdateOne) ClearExpectedCloseDate() *OpportunityUpdateOne {
	_u.mutation.ClearExpectedCloseDate()
	return _u
}

// SetOutcome sets the "outcome" field.
func (_u *OpportunityUpdateOne) SetOutcome(v opportunity.Outcome) *OpportunityUpdateOne {
	_u.mutation.SetOutcome(v)
	return _u
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_u *OpportunityUpdateOne) SetNillableOutcome(v *opportunity.Outcome) *OpportunityUpdateOne {
	if v != nil {
		_u.SetOutcome(*v)
	}
	return _u
}

// ClearOutcome clears the value of the "outcome" field.
func (_u *OpportunityUpdateOne) ClearOutcome() *OpportunityUpdateOne {
	_u.mutation.ClearOutcome()
	return _u
}

// SetClosedAt sets the "closed_at" field.
func (_u *OpportunityUpdateOne) SetClosedAt(v time.Time) *OpportunityUpdateOne {
	_u.mutation.SetClosedAt(v)
	return _u
}

// SetNillableClosedAt sets the "closed_at" field if the given value is not nil.
func (_u *OpportunityUpdateOne) SetNillableClosedAt(v *time.Time) *OpportunityUpdateOne {
	if v != nil {
		_u.SetClosedAt(*v)
	}
	return _u
}

// ClearClosedAt clears the value of the "closed_at" field.
func (_u *OpportunityUpdateOne) ClearClosedAt() *OpportunityUpdateOne {
	_u.mutation.ClearClosedAt()
	return _u
}

// SetVersion sets the "version" field.
func (_u *OpportunityUpdateOne) SetVersion(v int) *OpportunityUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *OpportunityUpdateOne) SetNillableVersion(v *int) *OpportunityUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *OpportunityUpdateOne) AddVersion(v int) *OpportunityUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *OpportunityUpdateOne) SetUpdatedAt(v time.Time) *OpportunityUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetLead sets the "lead" edge to the Lead entity.
func (_u *OpportunityUpdateOne) SetLead(v *Lead) *OpportunityUpdateOne {
	return _u.SetLeadID(v.ID)
}

// Mutation returns the OpportunityMutation object of the builder.
func (_u *OpportunityUpdateOne) Mutation() *OpportunityMutation {
	return _u.mutation
}

// ClearLead clears the "lead" edge to the Lead entity.
func (_u *OpportunityUpdateOne) ClearLead() *OpportunityUpdateOne {
	_u.mutation.ClearLead()
	return _u
}

// Where appends a list predicates to the OpportunityUpdate builder.
func (_u *OpportunityUpdateOne) Where(ps ...predicate.Opportunity) *OpportunityUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *OpportunityUpdateOne) Select(field string, fields ...string) *OpportunityUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Opportunity entity.
func (_u *OpportunityUpdateOne) Save(ctx context.Context) (*Opportunity, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OpportunityUpdateOne) SaveX(ctx context.Context) *Opportunity {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *OpportunityUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OpportunityUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *OpportunityUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := opportunity.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OpportunityUpdateOne) check() error {
	if v, ok := _u.mutation.LeadID(); ok {
		if err := opportunity.LeadIDValidator(v); err != nil {
			return &ValidationError{Name: "lead_id", err: fmt.Errorf(`ent: validator failed for field "Opportunity.lead_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StageID(); ok {
		if err := opportunity.StageIDValidator(v); err != nil {
			return &ValidationError{Name: "stage_id", err: fmt.Errorf(`ent: validator failed for field "Opportunity.stage_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Outcome(); ok {
		if err := opportunity.OutcomeValidator(v); err != nil {
			return &ValidationError{Name: "outcome", err: fmt.Errorf(`ent: validator failed for field "Opportunity.outcome": %w`, err)}
		}
	}
	if _u.mutation.LeadCleared() && len(_u.mutation.LeadIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Opportunity.lead"`)
	}
	return nil
}

func (_u *OpportunityUpdateOne) sqlSave(ctx context.Context) (_node *Opportunity, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(opportunity.Table, opportunity.Columns, sqlgraph.NewFieldSpec(opportunity.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Opportunity.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, opportunity.FieldID)
		for _, f := range fields {
			if !opportunity.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != opportunity.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StageID(); ok {
		_spec.SetField(opportunity.FieldStageID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PreviousStageID(); ok {
		_spec.SetField(opportunity.FieldPreviousStageID, field.TypeString, value)
	}
	if _u.mutation.PreviousStageIDCleared() {
		_spec.ClearField(opportunity.FieldPreviousStageID, field.TypeString)
	}
	if value, ok := _u.mutation.StageEnteredAt(); ok {
		_spec.SetField(opportunity.FieldStageEnteredAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.AssignedAgentID(); ok {
		_spec.SetField(opportunity.FieldAssignedAgentID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAssignedAgentID(); ok {
		_spec.AddField(opportunity.FieldAssignedAgentID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsExclusive(); ok {
		_spec.SetField(opportunity.FieldIsExclusive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ExpectedValue(); ok {
		_spec.SetField(opportunity.FieldExpectedValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedExpectedValue(); ok {
		_spec.AddField(opportunity.FieldExpectedValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ExpectedCloseDate(); ok {
		_spec.SetField(opportunity.FieldExpectedCloseDate, field.TypeTime, value)
	}
	if _u.mutation.ExpectedCloseDateCleared() {
		_spec.ClearField(opportunity.FieldExpectedCloseDate, field.TypeTime)
	}
	if value, ok := _u.mutation.Outcome(); ok {
		_spec.SetField(opportunity.FieldOutcome, field.TypeEnum, value)
	}
	if _u.mutation.OutcomeCleared() {
		_spec.ClearField(opportunity.FieldOutcome, field.TypeEnum)
	}
	if value, ok := _u.mutation.ClosedAt(); ok {
		_spec.SetField(opportunity.FieldClosedAt, field.TypeTime, value)
	}
	if _u.mutation.ClosedAtCleared() {
		_spec.ClearField(opportunity.FieldClosedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(opportunity.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(opportunity.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(opportunity.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.LeadCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   opportunity.LeadTable,
			Columns: []string{opportunity.LeadColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lead.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LeadIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   opportunity.LeadTable,
			Columns: []string{opportunity.LeadColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lead.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Opportunity{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{opportunity.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
