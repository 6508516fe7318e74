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
	"github.com/casaflow/casaflow/ent/predicate"
	"github.com/casaflow/casaflow/ent/property"
)

// PropertyUpdate is the builder for updating Property entities.
type PropertyUpdate struct {
	config
	hooks    []Hook
	mutation *PropertyMutation
}

// Where appends a list predicates to the PropertyUpdate builder.
func (_u *PropertyUpdate) Where(ps ...predicate.Property) *PropertyUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *PropertyUpdate) SetTitle(v string) *PropertyUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *PropertyUpdate) SetNillableTitle(v *string) *PropertyUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetAddress sets the "address" field.
func (_u *PropertyUpdate) SetAddress(v string) *PropertyUpdate {
	_u.mutation.SetAddress(v)
	return _u
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_u *PropertyUpdate) SetNillableAddress(v *string) *PropertyUpdate {
	if v != nil {
		_u.SetAddress(*v)
	}
	return _u
}

// ClearAddress clears the value of the "address" field.
func (_u *PropertyUpdate) ClearAddress() *PropertyUpdate {
	_u.mutation.ClearAddress()
	return _u
}

// SetCity sets the "city" field.
func (_u *PropertyUpdate) SetCity(v string) *PropertyUpdate {
	_u.mutation.SetCity(v)
	return _u
}

// SetNillableCity sets the "city" field if the given value is not nil.
func (_u *PropertyUpdate) SetNillableCity(v *string) *PropertyUpdate {
	if v != nil {
		_u.SetCity(*v)
	}
	return _u
}

// ClearCity clears the value of the "city" field.
func (_u *PropertyUpdate) ClearCity() *PropertyUpdate {
	_u.mutation.ClearCity()
	return _u
}

// SetPropertyType sets the "property_type" field.
func (_u *PropertyUpdate) SetPropertyType(v property.PropertyType) *PropertyUpdate {
	_u.mutation.SetPropertyType(v)
	return _u
}

// SetNillablePropertyType sets the "property_type" field if the given value is not nil.
func (_u *PropertyUpdate) SetNillablePropertyType(v *property.PropertyType) *PropertyUpdate {
	if v != nil {
		_u.SetPropertyType(*v)
	}
	return _u
}

// SetPrice sets the "price" field.
func (_u *PropertyUpdate) SetPrice(v float64) *PropertyUpdate {
	_u.mutation.ResetPrice()
	_u.mutation.SetPrice(v)
	return _u
}

// SetNillablePrice sets the "price" field if the given value is not nil.
func (_u *PropertyUpdate) SetNillablePrice(v *float64) *PropertyUpdate {
	if v != nil {
		_u.SetPrice(*v)
	}
	return _u
}

// AddPrice adds value to the "price" field.
func (_u *PropertyUpdate) AddPrice(v float64) *PropertyUpdate {
	_u.mutation.AddPrice(v)
	return _u
}

// SetBedrooms sets the "bedrooms" field.
func (_u *PropertyUpdate) SetBedrooms(v int) *PropertyUpdate {
	_u.mutation.ResetBedrooms()
	_u.mutation.SetBedrooms(v)
	return _u
}

// SetNillableBedrooms sets the "bedrooms" field if the given value is not nil.
func (_u *PropertyUpdate) SetNillableBedrooms(v *int) *PropertyUpdate {
	if v != nil {
		_u.SetBedrooms(*v)
	}
	return _u
}

// AddBedrooms adds value to the "bedrooms" field.
func (_u *PropertyUpdate) AddBedrooms(v int) *PropertyUpdate {
	_u.mutation.AddBedrooms(v)
	return _u
}

// SetAreaSqm sets the "area_sqm" field.
func (_u *PropertyUpdate) SetAreaSqm(v float64) *PropertyUpdate {
	_u.mutation.ResetAreaSqm()
	_u.mutation.SetAreaSqm(v)
	return _u
}

// SetNillableAreaSqm sets the "area_sqm" field if the given value is not nil.
func (_u *PropertyUpdate) SetNillableAreaSqm(v *float64) *PropertyUpdate {
	if v != nil {
		_u.SetAreaSqm(*v)
	}
	return _u
}

// AddAreaSqm adds value to the "area_sqm" field.
func (_u *PropertyUpdate) AddAreaSqm(v float64) *PropertyUpdate {
	_u.mutation.AddAreaSqm(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PropertyUpdate) SetUpdatedAt(v time.Time) *PropertyUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetLeadID sets the "lead" edge to the Lead entity by ID.
func (_u *PropertyUpdate) SetLeadID(id int) *PropertyUpdate {
	_u.mutation.SetLeadID(id)
	return _u
}

// SetNillableLeadID sets the "lead" edge to the Lead entity by ID if the given value is not nil.
func (_u *PropertyUpdate) SetNillableLeadID(id *int) *PropertyUpdate {
	if id != nil {
		_u = _u.SetLeadID(*id)
	}
	return _u
}

// SetLead sets the "lead" edge to the Lead entity.
func (_u *PropertyUpdate) SetLead(v *Lead) *PropertyUpdate {
	return _u.SetLeadID(v.ID)
}

// Mutation returns the PropertyMutation object of the builder.
func (_u *PropertyUpdate) Mutation() *PropertyMutation {
	return _u.mutation
}

// ClearLead clears the "lead" edge to the Lead entity.
func (_u *PropertyUpdate) ClearLead() *PropertyUpdate {
	_u.mutation.ClearLead()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PropertyUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PropertyUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PropertyUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PropertyUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PropertyUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := property.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PropertyUpdate) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := property.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Property.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PropertyType(); ok {
		if err := property.PropertyTypeValidator(v); err != nil {
			return &ValidationError{Name: "property_type", err: fmt.Errorf(`ent: validator failed for field "Property.property_type": %w`, err)}
		}
	}
	return nil
}

func (_u *PropertyUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(property.Table, property.Columns, sqlgraph.NewFieldSpec(property.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(property.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Address(); ok {
		_spec.SetField(property.FieldAddress, field.TypeString, value)
	}
	if _u.mutation.AddressCleared() {
		_spec.ClearField(property.FieldAddress, field.TypeString)
	}
	if value, ok := _u.mutation.City(); ok {
		_spec.SetField(property.FieldCity, field.TypeString, value)
	}
	if _u.mutation.CityCleared() {
		_spec.ClearField(property.FieldCity, field.TypeString)
	}
	if value, ok := _u.mutation.PropertyType(); ok {
		_spec.SetField(property.FieldPropertyType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Price(); ok {
		_spec.SetField(property.FieldPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPrice(); ok {
		_spec.AddField(property.FieldPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Bedrooms(); ok {
		_spec.SetField(property.FieldBedrooms, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBedrooms(); ok {
		_spec.AddField(property.FieldBedrooms, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AreaSqm(); ok {
		_spec.SetField(property.FieldAreaSqm, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAreaSqm(); ok {
		_spec.AddField(property.FieldAreaSqm, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(property.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.LeadCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LeadIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{property.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PropertyUpdateOne is the builder for updating a single Property entity.
type PropertyUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PropertyMutation
}

// SetTitle sets the "title" field.
func (_u *PropertyUpdateOne) SetTitle(v string) *PropertyUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *PropertyUpdateOne) SetNillableTitle(v *string) *PropertyUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetAddress sets the "address" field.
func (_u *PropertyUpdateOne) SetAddress(v string) *PropertyUpdateOne {
	_u.mutation.SetAddress(v)
	return _u
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_u *PropertyUpdateOne) SetNillableAddress(v *string) *PropertyUpdateOne {
	if v != nil {
		_u.SetAddress(*v)
	}
	return _u
}

// ClearAddress clears the value of the "address" field.
func (_u *PropertyUpdateOne) ClearAddress() *PropertyUpdateOne {
	_u.mutation.ClearAddress()
	return _u
}

// SetCity sets the "city" field.
func (_u *PropertyUpdateOne) SetCity(v string) *PropertyUpdateOne {
	_u.mutation.SetCity(v)
	return _u
}

// SetNillableCity sets the "city" field if the given value is not nil.
func (_u *PropertyUpdateOne) SetNillableCity(v *string) *PropertyUpdateOne {
	if v != nil {
		_u.SetCity(*v)
	}
	return _u
}

// ClearCity clears the value of the "city" field.
func (_u *PropertyUpdateOne) ClearCity() *PropertyUpdateOne {
	_u.mutation.ClearCity()
	return _u
}

// SetPropertyType sets the "property_type" field.
func (_u *PropertyUpdateOne) SetPropertyType(v property.PropertyType) *PropertyUpdateOne {
	_u.mutation.SetPropertyType(v)
	return _u
}

// SetNillablePropertyType sets the "property_type" field if the given value is not nil.
func (_u *PropertyUpdateOne) SetNillablePropertyType(v *property.PropertyType) *PropertyUpdateOne {
	if v != nil {
		_u.SetPropertyType(*v)
	}
	return _u
}

// SetPrice sets the "price" field.
func (_u *PropertyUpdateOne) SetPrice(v float64) *PropertyUpdateOne {
	_u.mutation.ResetPrice()
	_u.mutation.SetPrice(v)
	return _u
}

// SetNillablePrice sets the "price" field if the given value is not nil.
func (_u *PropertyUpdateOne) SetNillablePrice(v *float64) *PropertyUpdateOne {
	if v != nil {
		_u.SetPrice(*v)
	}
	return _u
}

// AddPrice adds value to the "price" field.
func (_u *PropertyUpdateOne) AddPrice(v float64) *PropertyUpdateOne {
	_u.mutation.AddPrice(v)
	return _u
}

// SetBedrooms sets the "bedrooms" field.
func (_u *PropertyUpdateOne) SetBedrooms(v int) *PropertyUpdateOne {
	_u.mutation.ResetBedrooms()
	_u.mutation.SetBedrooms(v)
	return _u
}

// SetNillableBedrooms sets the "bedrooms" field if the given value is not nil.
func (_u *PropertyUpdateOne) SetNillableBedrooms(v *int) *PropertyUpdateOne {
	if v != nil {
		_u.SetBedrooms(*v)
	}
	return _u
}

// AddBedrooms adds value to the "bedrooms" field.
func (_u *PropertyUpdateOne) AddBedrooms(v int) *PropertyUpdateOne {
	_u.mutation.AddBedrooms(v)
	return _u
}

// SetAreaSqm sets the "area_sqm" field.
func (_u *PropertyUpdateOne) SetAreaSqm(v float64) *PropertyUpdateOne {
	_u.mutation.ResetAreaSqm()
	_u.mutation.SetAreaSqm(v)
	return _u
}

// SetNillableAreaSqm sets the "area_sqm" field if the given value is not nil.
func (_u *PropertyUpdateOne) SetNillableAreaSqm(v *float64) *PropertyUpdateOne {
	if v != nil {
		_u.SetAreaSqm(*v)
	}
	return _u
}

// AddAreaSqm adds value to the "area_sqm" field.
func (_u *PropertyUpdateOne) AddAreaSqm(v float64) *PropertyUpdateOne {
	_u.mutation.AddAreaSqm(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PropertyUpdateOne) SetUpdatedAt(v time.Time) *PropertyUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetLeadID sets the "lead" edge to the Lead entity by ID.
func (_u *PropertyUpdateOne) SetLeadID(id int) *PropertyUpdateOne {
	_u.mutation.SetLeadID(id)
	return _u
}

// SetNillableLeadID sets the "lead" edge to the Lead entity by ID if the given value is not nil.
func (_u *PropertyUpdateOne) SetNillableLeadID(id *int) *PropertyUpdateOne {
	if id != nil {
		_u = _u.SetLeadID(*id)
	}
	return _u
}

// SetLead sets the "lead" edge to the Lead entity.
func (_u *PropertyUpdateOne) SetLead(v *Lead) *PropertyUpdateOne {
	return _u.SetLeadID(v.ID)
}

// Mutation returns the PropertyMutation object of the builder.
func (_u *PropertyUpdateOne) Mutation() *PropertyMutation {
	return _u.mutation
}

// ClearLead clears the "lead" edge to the Lead entity.
func (_u *PropertyUpdateOne) ClearLead() *PropertyUpdateOne {
	_u.mutation.ClearLead()
	return _u
}

// Where appends a list predicates to the PropertyUpdate builder.
func (_u *PropertyUpdateOne) Where(ps ...predicate.Property) *PropertyUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PropertyUpdateOne) Select(field string, fields ...string) *PropertyUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Property entity.
func (_u *PropertyUpdateOne) Save(ctx context.Context) (*Property, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PropertyUpdateOne) SaveX(ctx context.Context) *Property {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PropertyUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PropertyUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PropertyUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := property.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PropertyUpdateOne) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := property.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Property.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PropertyType(); ok {
		if err := property.PropertyTypeValidator(v); err != nil {
			return &ValidationError{Name: "property_type", err: fmt.Errorf(`ent: validator failed for field "Property.property_type": %w`, err)}
		}
	}
	return nil
}

func (_u *PropertyUpdateOne) sqlSave(ctx context.Context) (_node *Property, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(property.Table, property.Columns, sqlgraph.NewFieldSpec(property.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Property.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, property.FieldID)
		for _, f := range fields {
			if !property.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != property.FieldID {
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
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(property.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Address(); ok {
		_spec.SetField(property.FieldAddress, field.TypeString, value)
	}
	if _u.mutation.AddressCleared() {
		_spec.ClearField(property.FieldAddress, field.TypeString)
	}
	if value, ok := _u.mutation.City(); ok {
		_spec.SetField(property.FieldCity, field.TypeString, value)
	}
	if _u.mutation.CityCleared() {
		_spec.ClearField(property.FieldCity, field.TypeString)
	}
	if value, ok := _u.mutation.PropertyType(); ok {
		_spec.SetField(property.FieldPropertyType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Price(); ok {
		_spec.SetField(property.FieldPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPrice(); ok {
		_spec.AddField(property.FieldPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Bedrooms(); ok {
		_spec.SetField(property.FieldBedrooms, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBedrooms(); ok {
		_spec.AddField(property.FieldBedrooms, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AreaSqm(); ok {
		_spec.SetField(property.FieldAreaSqm, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAreaSqm(); ok {
		_spec.AddField(property.FieldAreaSqm, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(property.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.LeadCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LeadIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Property{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{property.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
