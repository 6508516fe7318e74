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
	"github.com/casaflow/casaflow/ent/property"
)

// PropertyCreate is the builder for creating a Property entity.
type PropertyCreate struct {
	config
	mutation *PropertyMutation
	hooks    []Hook
}

// SetTitle sets the "title" field.
func (_c *PropertyCreate) SetTitle(v string) *PropertyCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetAddress sets the "address" field.
func (_c *PropertyCreate) SetAddress(v string) *PropertyCreate {
	_c.mutation.SetAddress(v)
	return _c
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_c *PropertyCreate) SetNillableAddress(v *string) *PropertyCreate {
	if v != nil {
		_c.SetAddress(*v)
	}
	return _c
}

// SetCity sets the "city" field.
func (_c *PropertyCreate) SetCity(v string) *PropertyCreate {
	_c.mutation.SetCity(v)
	return _c
}

// SetNillableCity sets the "city" field if the given value is not nil.
func (_c *PropertyCreate) SetNillableCity(v *string) *PropertyCreate {
	if v != nil {
		_c.SetCity(*v)
	}
	return _c
}

// SetPropertyType sets the "property_type" field.
func (_c *PropertyCreate) SetPropertyType(v property.PropertyType) *PropertyCreate {
	_c.mutation.SetPropertyType(v)
	return _c
}

// SetNillablePropertyType sets the "property_type" field if the given value is not nil.
func (_c *PropertyCreate) SetNillablePropertyType(v *property.PropertyType) *PropertyCreate {
	if v != nil {
		_c.SetPropertyType(*v)
	}
	return _c
}

// SetPrice sets the "price" field.
func (_c *PropertyCreate) SetPrice(v float64) *PropertyCreate {
	_c.mutation.SetPrice(v)
	return _c
}

// SetNillablePrice sets the "price" field if the given value is not nil.
func (_c *PropertyCreate) SetNillablePrice(v *float64) *PropertyCreate {
	if v != nil {
		_c.SetPrice(*v)
	}
	return _c
}

// SetBedrooms sets the "bedrooms" field.
func (_c *PropertyCreate) SetBedrooms(v int) *PropertyCreate {
	_c.mutation.SetBedrooms(v)
	return _c
}

// SetNillableBedrooms sets the "bedrooms" field if the given value is not nil.
func (_c *PropertyCreate) SetNillableBedrooms(v *int) *PropertyCreate {
	if v != nil {
		_c.SetBedrooms(*v)
	}
	return _c
}

// SetAreaSqm sets the "area_sqm" field.
func (_c *PropertyCreate) SetAreaSqm(v float64) *PropertyCreate {
	_c.mutation.SetAreaSqm(v)
	return _c
}

// SetNillableAreaSqm sets the "area_sqm" field if the given value is not nil.
func (_c *PropertyCreate) SetNillableAreaSqm(v *float64) *PropertyCreate {
	if v != nil {
		_c.SetAreaSqm(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PropertyCreate) SetCreatedAt(v time.Time) *PropertyCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PropertyCreate) SetNillableCreatedAt(v *time.Time) *PropertyCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PropertyCreate) SetUpdatedAt(v time.Time) *PropertyCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PropertyCreate) SetNillableUpdatedAt(v *time.Time) *PropertyCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetLeadID sets the "lead" edge to the Lead entity by ID.
func (_c *PropertyCreate) SetLeadID(id int) *PropertyCreate {
	_c.mutation.SetLeadID(id)
	return _c
}

// SetNillableLeadID sets the "lead" edge to the Lead entity by ID if the given value is not nil.
func (_c *PropertyCreate) SetNillableLeadID(id *int) *PropertyCreate {
	if id != nil {
		_c = _c.SetLeadID(*id)
	}
	return _c
}

// SetLead sets the "lead" edge to the Lead entity.
func (_c *PropertyCreate) SetLead(v *Lead) *PropertyCreate {
	return _c.SetLeadID(v.ID)
}

// Mutation returns the PropertyMutation object of the builder.
func (_c *PropertyCreate) Mutation() *PropertyMutation {
	return _c.mutation
}

// Save creates the Property in the database.
func (_c *PropertyCreate) Save(ctx context.Context) (*Property, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PropertyCreate) SaveX(ctx context.Context) *Property {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PropertyCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PropertyCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PropertyCreate) defaults() {
	if _, ok := _c.mutation.PropertyType(); !ok {
		v := property.DefaultPropertyType
		_c.mutation.SetPropertyType(v)
	}
	if _, ok := _c.mutation.Price(); !ok {
		v := property.DefaultPrice
		_c.mutation.SetPrice(v)
	}
	if _, ok := _c.mutation.Bedrooms(); !ok {
		v := property.DefaultBedrooms
		_c.mutation.SetBedrooms(v)
	}
	if _, ok := _c.mutation.AreaSqm(); !ok {
		v := property.DefaultAreaSqm
		_c.mutation.SetAreaSqm(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := property.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := property.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PropertyCreate) check() error {
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Property.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := property.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Property.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PropertyType(); !ok {
		return &ValidationError{Name: "property_type", err: errors.New(`ent: missing required field "Property.property_type"`)}
	}
	if v, ok := _c.mutation.PropertyType(); ok {
		if err := property.PropertyTypeValidator(v); err != nil {
			return &ValidationError{Name: "property_type", err: fmt.Errorf(`ent: validator failed for field "Property.property_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Price(); !ok {
		return &ValidationError{Name: "price", err: errors.New(`ent: missing required field "Property.price"`)}
	}
	if _, ok := _c.mutation.Bedrooms(); !ok {
		return &ValidationError{Name: "bedrooms", err: errors.New(`ent: missing required field "Property.bedrooms"`)}
	}
	if _, ok := _c.mutation.AreaSqm(); !ok {
		return &ValidationError{Name: "area_sqm", err: errors.New(`ent: missing required field "Property.area_sqm"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Property.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Property.updated_at"`)}
	}
	return nil
}

func (_c *PropertyCreate) sqlSave(ctx context.Context) (*Property, error) {
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

func (_c *PropertyCreate) createSpec() (*Property, *sqlgraph.CreateSpec) {
	var (
		_node = &Property{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(property.Table, sqlgraph.NewFieldSpec(property.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(property.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Address(); ok {
		_spec.SetField(property.FieldAddress, field.TypeString, value)
		_node.Address = value
	}
	if value, ok := _c.mutation.City(); ok {
		_spec.SetField(property.FieldCity, field.TypeString, value)
		_node.City = value
	}
	if value, ok := _c.mutation.PropertyType(); ok {
		_spec.SetField(property.FieldPropertyType, field.TypeEnum, value)
		_node.PropertyType = value
	}
	if value, ok := _c.mutation.Price(); ok {
		_spec.SetField(property.FieldPrice, field.TypeFloat64, value)
		_node.Price = value
	}
	if value, ok := _c.mutation.Bedrooms(); ok {
		_spec.SetField(property.FieldBedrooms, field.TypeInt, value)
		_node.Bedrooms = value
	}
	if value, ok := _c.mutation.AreaSqm(); ok {
		_spec.SetField(property.FieldAreaSqm, field.TypeFloat64, value)
		_node.AreaSqm = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(property.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(property.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.LeadIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   property.LeadTable,
			Columns: []string{property.LeadColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lead.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.lead_property = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// PropertyCreateBulk is the builder for creating many Property entities in bulk.
type PropertyCreateBulk struct {
	config
	err      error
	builders []*PropertyCreate
}

// Save creates the Property entities in the database.
func (_c *PropertyCreateBulk) Save(ctx context.Context) ([]*Property, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Property, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PropertyMutation)
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
func (_c *PropertyCreateBulk) SaveX(ctx context.Context) []*Property {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PropertyCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PropertyCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
