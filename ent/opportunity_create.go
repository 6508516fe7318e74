// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/casaflow/casaflow/ent/lead"
	"github.com/casaflow/casaflow/ent/opportunity"
)

// OpportunityCreate is the builder for creating a Opportunity entity.
type OpportunityCreate struct {
	config
	mutation *OpportunityMutation
	hooks    []Hook
}

// SetLeadID sets the "lead_id" field.
func (_c *OpportunityCreate) SetLeadID(v int) *OpportunityCreate {
	_c.mutation.SetLeadID(v)
	return _c
}

// SetStageID sets the "stage_id" field.
func (_c *OpportunityCreate) SetStageID(v string) *OpportunityCreate {
	_c.mutation.SetStageID(v)
	return _c
}

// SetPreviousStageID sets the "previous_stage_id" field.
func (_c *OpportunityCreate) SetPreviousStageID(v string) *OpportunityCreate {
	_c.mutation.SetPreviousStageID(v)
	return _c
}

// SetNillablePreviousStageID sets the "previous_stage_id" field if the given value is not nil.
func (_c *OpportunityCreate) SetNillablePreviousStageID(v *string) *OpportunityCreate {
	if v != nil {
		_c.SetPreviousStageID(*v)
	}
	return _c
}

// SetStageEnteredAt sets the "stage_entered_at" field.
func (_c *OpportunityCreate) SetStageEnteredAt(v time.Time) *OpportunityCreate {
	_c.mutation.SetStageEnteredAt(v)
	return _c
}

// SetNillableStageEnteredAt sets the "stage_entered_at" field if the given value is not nil.
func (_c *OpportunityCreate) SetNillableStageEnteredAt(v *time.Time) *OpportunityCreate {
	if v != nil {
		_c.SetStageEnteredAt(*v)
	}
	return _c
}

// SetAssignedAgentID sets the "assigned_agent_id" field.
func (_c *OpportunityCreate) SetAssignedAgentID(v int) *OpportunityCreate {
	_c.mutation.SetAssignedAgentID(v)
	return _c
}

// SetNillableAssignedAgentID sets the "assigned_agent_id" field if the given value is not nil.
func (_c *OpportunityCreate) SetNillableAssignedAgentID(v *int) *OpportunityCreate {
	if v != nil {
		_c.SetAssignedAgentID(*v)
	}
	return _c
}

// SetIsExclusive sets the "is_exclusive" field.
func (_c *OpportunityCreate) SetIsExclusive(v bool) *OpportunityCreate {
	_c.mutation.SetIsExclusive(v)
	return _c
}

// SetNillableIsExclusive sets the "is_exclusive" field if the given value is not nil.
func (_c *OpportunityCreate) SetNillableIsExclusive(v *bool) *OpportunityCreate {
	if v != nil {
		_c.SetIsExclusive(*v)
	}
	return _c
}

// SetExpectedValue sets the "expected_value" field.
func (_c *OpportunityCreate) SetExpectedValue(v float64) *OpportunityCreate {
	_c.mutation.SetExpectedValue(v)
	return _c
}

// SetNillableExpectedValue sets the "expected_value" field if the given value is not nil.
func (_c *OpportunityCreate) SetNillableExpectedValue(v *float64) *OpportunityCreate {
	if v != nil {
		_c.SetExpectedValue(*v)
	}
	return _c
}

// SetExpectedCloseDate sets the "expected_close_date" field.
func (_c *OpportunityCreate) SetExpectedCloseDate(v time.Time) *OpportunityCreate {
	_c.mutation.SetExpectedCloseDate(v)
	return _c
}

// SetNillableExpectedCloseDate sets the "expected_close_date" field if the given value is not nil.
func (_c *OpportunityCreate) SetNillableExpectedCloseDate(v *time.Time) *OpportunityCreate {
	if v != nil {
		_c.SetExpectedCloseDate(*v)
	}
	return _c
}

// SetOutcome sets the "outcome" field.
func (_c *OpportunityCreate) SetOutcome(v opportunity.Outcome) *OpportunityCreate {
	_c.mutation.SetOutcome(v)
	return _c
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_c *OpportunityCreate) SetNillableOutcome(v *opportunity.Outcome) *OpportunityCreate {
	if v != nil {
		_c.SetOutcome(*v)
	}
	return _c
}

// SetClosedAt sets the "closed_at" field.
func (_c *OpportunityCreate) SetClosedAt(v time.Time) *OpportunityCreate {
	_c.mutation.SetClosedAt(v)
	return _c
}

// SetNillableClosedAt sets the "closed_at" field if the given value is not nil.
func (_c *OpportunityCreate) SetNillableClosedAt(v *time.Time) *OpportunityCreate {
	if v != nil {
		_c.SetClosedAt(*v)
	}
	return _c
}

// SetVersion sets the "version" field.
func (_c *OpportunityCreate) SetVersion(v int) *OpportunityCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_c *OpportunityCreate) SetNillableVersion(v *int) *OpportunityCreate {
	if v != nil {
		_c.SetVersion(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *OpportunityCreate) SetCreatedAt(v time.Time) *OpportunityCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *OpportunityCreate) SetNillableCreatedAt(v *time.Time) *OpportunityCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *OpportunityCreate) SetUpdatedAt(v time.Time) *OpportunityCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *OpportunityCreate) SetNillableUpdatedAt(v *time.Time) *OpportunityCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetLead sets the "lead" edge to the Lead entity.
func (_c *OpportunityCreate) SetLead(v *Lead) *OpportunityCreate {
	return _c.SetLeadID(v.ID)
}

// Mutation returns the OpportunityMutation object of the builder.
func (_c *OpportunityCreate) Mutation() *OpportunityMutation {
	return _c.mutation
}

// Save creates the Opportunity in the database.
func (_c *OpportunityCreate) Save(ctx context.Context) (*Opportunity, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *OpportunityCreate) SaveX(ctx context.Context) *Opportunity {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OpportunityCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OpportunityCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *OpportunityCreate) defaults() {
	if _, ok := _c.mutation.StageEnteredAt(); !ok {
		v := opportunity.DefaultStageEnteredAt()
		_c.mutation.SetStageEnteredAt(v)
	}
	if _, ok := _c.mutation.AssignedAgentID(); !ok {
		v := opportunity.DefaultAssignedAgentID
		_c.mutation.SetAssignedAgentID(v)
	}
	if _, ok := _c.mutation.IsExclusive(); !ok {
		v := opportunity.DefaultIsExclusive
		_c.mutation.SetIsExclusive(v)
	}
	if _, ok := _c.mutation.ExpectedValue(); !ok {
		v := opportunity.DefaultExpectedValue
		_c.mutation.SetExpectedValue(v)
	}
	if _, ok := _c.mutation.Version(); !ok {
		v := opportunity.DefaultVersion
		_c.mutation.SetVersion(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := opportunity.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := opportunity.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *OpportunityCreate) check() error {
	if _, ok := _c.mutation.LeadID(); !ok {
		return &ValidationError{Name: "lead_id", err: errors.New(`ent: missing required field "Opportunity.lead_id"`)}
	}
	if v, ok := _c.mutation.LeadID(); ok {
		if err := opportunity.LeadIDValidator(v); err != nil {
			return &ValidationError{Name: "lead_id", err: fmt.Errorf(`ent: validator failed for field "Opportunity.lead_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StageID(); !ok {
		return &ValidationError{Name: "stage_id", err: errors.New(`ent: missing required field "Opportunity.stage_id"`)}
	}
	if v, ok := _c.mutation.StageID(); ok {
		if err := opportunity.StageIDValidator(v); err != nil {
			return &ValidationError{Name: "stage_id", err: fmt.Errorf(`ent: validator failed for field "Opportunity.stage_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StageEnteredAt(); !ok {
		return &ValidationError{Name: "stage_entered_at", err: errors.New(`ent: missing required field "Opportunity.stage_entered_at"`)}
	}
	if _, ok := _c.mutation.AssignedAgentID(); !ok {
		return &ValidationError{Name: "assigned_agent_id", err: errors.New(`ent: missing required field "Opportunity.assigned_agent_id"`)}
	}
	if _, ok := _c.mutation.IsExclusive(); !ok {
		return &ValidationError{Name: "is_exclusive", err: errors.New(`ent: missing required field "Opportunity.is_exclusive"`)}
	}
	if _, ok := _c.mutation.ExpectedValue(); !ok {
		return &ValidationError{Name: "expected_value", err: errors.New(`ent: missing required field "Opportunity.expected_value"`)}
	}
	if v, ok := _c.mutation.Outcome(); ok {
		if err := opportunity.OutcomeValidator(v); err != nil {
			return &ValidationError{Name: "outcome", err: fmt.Errorf(`ent: validator failed for field "Opportunity.outcome": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "Opportunity.version"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Opportunity.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Opportunity.updated_at"`)}
	}
	if len(_c.mutation.LeadIDs()) == 0 {
		return &ValidationError{Name: "lead", err: errors.New(`ent: missing required edge "Opportunity.lead"`)}
	}
	return nil
}

func (_c *OpportunityCreate) sqlSave(ctx context.Context) (*Opportunity, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *OpportunityCreate) createSpec() (*Opportunity, *sqlgraph.CreateSpec) {
	var (
		_node = &Opportunity{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(opportunity.Table, sqlgraph.NewFieldSpec(opportunity.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.StageID(); ok {
		_spec.SetField(opportunity.FieldStageID, field.TypeString, value)
		_node.StageID = value
	}
	if value, ok := _c.mutation.PreviousStageID(); ok {
		_spec.SetField(opportunity.FieldPreviousStageID, field.TypeString, value)
		_node.PreviousStageID = &value
	}
	if value, ok := _c.mutation.StageEnteredAt(); ok {
		_spec.SetField(opportunity.FieldStageEnteredAt, field.TypeTime, value)
		_node.StageEnteredAt = value
	}
	if value, ok := _c.mutation.AssignedAgentID(); ok {
		_spec.SetField(opportunity.FieldAssignedAgentID, field.TypeInt, value)
		_node.AssignedAgentID = value
	}
	if value, ok := _c.mutation.IsExclusive(); ok {
		_spec.SetField(opportunity.FieldIsExclusive, field.TypeBool, value)
		_node.IsExclusive = value
	}
	if value, ok := _c.mutation.ExpectedValue(); ok {
		_spec.SetField(opportunity.FieldExpectedValue, field.TypeFloat64, value)
		_node.ExpectedValue = value
	}
	if value, ok := _c.mutation.ExpectedCloseDate(); ok {
		_spec.SetField(opportunity.FieldExpectedCloseDate, field.TypeTime, value)
		_node.ExpectedCloseDate = &value
	}
	if value, ok := _c.mutation.Outcome(); ok {
		_spec.SetField(opportunity.FieldOutcome, field.TypeEnum, value)
		_node.Outcome = &value
	}
	if value, ok := _c.mutation.ClosedAt(); ok {
		_spec.SetField(opportunity.FieldClosedAt, field.TypeTime, value)
		_node.ClosedAt = &value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(opportunity.FieldVersion, field.TypeInt, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(opportunity.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(opportunity.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.LeadIDs(); len(nodes) > 0 {
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
		_node.LeadID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OpportunityCreateBulk is the builder for creating many Opportunity entities in bulk.
type OpportunityCreateBulk struct {
	config
	err      error
	builders []*OpportunityCreate
}

// Save creates the Opportunity entities in the database.
func (_c *OpportunityCreateBulk) Save(ctx context.Context) ([]*Opportunity, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Opportunity, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*OpportunityMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *OpportunityCreateBulk) SaveX(ctx context.Context) []*Opportunity {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OpportunityCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OpportunityCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
