// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/casaflow/casaflow/ent/pipelineconfig"
	"github.com/casaflow/casaflow/ent/predicate"
	"github.com/casaflow/casaflow/pkg/models"
)

// PipelineConfigUpdate is the builder for updating PipelineConfig entities.
type PipelineConfigUpdate struct {
	config
	hooks    []Hook
	mutation *PipelineConfigMutation
}

// Where appends a list predicates to the PipelineConfigUpdate builder.
func (_u *PipelineConfigUpdate) Where(ps ...predicate.PipelineConfig) *PipelineConfigUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetKey sets the "key" field.
func (_u *PipelineConfigUpdate) SetKey(v string) *PipelineConfigUpdate {
	_u.mutation.SetKey(v)
	return _u
}

// SetNillableKey sets the "key" field if the given value is not nil.
func (_u *PipelineConfigUpdate) SetNillableKey(v *string) *PipelineConfigUpdate {
	if v != nil {
		_u.SetKey(*v)
	}
	return _u
}

// SetStages sets the "stages" field.
func (_u *PipelineConfigUpdate) SetStages(v []models.Stage) *PipelineConfigUpdate {
	_u.mutation.SetStages(v)
	return _u
}

// AppendStages appends value to the "stages" field.
func (_u *PipelineConfigUpdate) AppendStages(v []models.Stage) *PipelineConfigUpdate {
	_u.mutation.AppendStages(v)
	return _u
}

// SetDefaultStageID sets the "default_stage_id" field.
func (_u *PipelineConfigUpdate) SetDefaultStageID(v string) *PipelineConfigUpdate {
	_u.mutation.SetDefaultStageID(v)
	return _u
}

// SetNillableDefaultStageID sets the "default_stage_id" field if the given value is not nil.
func (_u *PipelineConfigUpdate) SetNillableDefaultStageID(v *string) *PipelineConfigUpdate {
	if v != nil {
		_u.SetDefaultStageID(*v)
	}
	return _u
}

// SetVersion sets the "version" field.
func (_u *PipelineConfigUpdate) SetVersion(v int) *PipelineConfigUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *PipelineConfigUpdate) SetNillableVersion(v *int) *PipelineConfigUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *PipelineConfigUpdate) AddVersion(v int) *PipelineConfigUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetUpdatedByID sets the "updated_by_id" field.
func (_u *PipelineConfigUpdate) SetUpdatedByID(v int) *PipelineConfigUpdate {
	_u.mutation.ResetUpdatedByID()
	_u.mutation.SetUpdatedByID(v)
	return _u
}

// SetNillableUpdatedByID sets the "updated_by_id" field if the given value is not nil.
func (_u *PipelineConfigUpdate) SetNillableUpdatedByID(v *int) *PipelineConfigUpdate {
	if v != nil {
		_u.SetUpdatedByID(*v)
	}
	return _u
}

// AddUpdatedByID adds value to the "updated_by_id" field.
func (_u *PipelineConfigUpdate) AddUpdatedByID(v int) *PipelineConfigUpdate {
	_u.mutation.AddUpdatedByID(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PipelineConfigUpdate) SetUpdatedAt(v time.Time) *PipelineConfigUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the PipelineConfigMutation object of the builder.
func (_u *PipelineConfigUpdate) Mutation() *PipelineConfigMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PipelineConfigUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PipelineConfigUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PipelineConfigUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PipelineConfigUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PipelineConfigUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := pipelineconfig.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PipelineConfigUpdate) check() error {
	if v, ok := _u.mutation.DefaultStageID(); ok {
		if err := pipelineconfig.DefaultStageIDValidator(v); err != nil {
			return &ValidationError{Name: "default_stage_id", err: fmt.Errorf(`ent: validator failed for field "PipelineConfig.default_stage_id": %w`, err)}
		}
	}
	return nil
}

func (_u *PipelineConfigUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pipelineconfig.Table, pipelineconfig.Columns, sqlgraph.NewFieldSpec(pipelineconfig.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Key(); ok {
		_spec.SetField(pipelineconfig.FieldKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Stages(); ok {
		_spec.SetField(pipelineconfig.FieldStages, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedStages(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, pipelineconfig.FieldStages, value)
		})
	}
	if value, ok := _u.mutation.DefaultStageID(); ok {
		_spec.SetField(pipelineconfig.FieldDefaultStageID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(pipelineconfig.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(pipelineconfig.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedByID(); ok {
		_spec.SetField(pipelineconfig.FieldUpdatedByID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUpdatedByID(); ok {
		_spec.AddField(pipelineconfig.FieldUpdatedByID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(pipelineconfig.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pipelineconfig.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PipelineConfigUpdateOne is the builder for updating a single PipelineConfig entity.
type PipelineConfigUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PipelineConfigMutation
}

// SetKey sets the "key" field.
func (_u *PipelineConfigUpdateOne) SetKey(v string) *PipelineConfigUpdateOne {
	_u.mutation.SetKey(v)
	return _u
}

// SetNillableKey sets the "key" field if the given value is not nil.
func (_u *PipelineConfigUpdateOne) SetNillableKey(v *string) *PipelineConfigUpdateOne {
	if v != nil {
		_u.SetKey(*v)
	}
	return _u
}

// SetStages sets the "stages" field.
func (_u *PipelineConfigUpdateOne) SetStages(v []models.Stage) *PipelineConfigUpdateOne {
	_u.mutation.SetStages(v)
	return _u
}

// AppendStages appends value to the "stages" field.
func (_u *PipelineConfigUpdateOne) AppendStages(v []models.Stage) *PipelineConfigUpdateOne {
	_u.mutation.AppendStages(v)
	return _u
}

// SetDefaultStageID sets the "default_stage_id" field.
func (_u *PipelineConfigUpdateOne) SetDefaultStageID(v string) *PipelineConfigUpdateOne {
	_u.mutation.SetDefaultStageID(v)
	return _u
}

// SetNillableDefaultStageID sets the "default_stage_id" field if the given value is not nil.
func (_u *PipelineConfigUpdateOne) SetNillableDefaultStageID(v *string) *PipelineConfigUpdateOne {
	if v != nil {
		_u.SetDefaultStageID(*v)
	}
	return _u
}

// SetVersion sets the "version" field.
func (_u *PipelineConfigUpdateOne) SetVersion(v int) *PipelineConfigUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *PipelineConfigUpdateOne) SetNillableVersion(v *int) *PipelineConfigUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *PipelineConfigUpdateOne) AddVersion(v int) *PipelineConfigUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetUpdatedByID sets the "updated_by_id" field.
func (_u *PipelineConfigUpdateOne) SetUpdatedByID(v int) *PipelineConfigUpdateOne {
	_u.mutation.ResetUpdatedByID()
	_u.mutation.SetUpdatedByID(v)
	return _u
}

// SetNillableUpdatedByID sets the "updated_by_id" field if the given value is not nil.
func (_u *PipelineConfigUpdateOne) SetNillableUpdatedByID(v *int) *PipelineConfigUpdateOne {
	if v != nil {
		_u.SetUpdatedByID(*v)
	}
	return _u
}

// AddUpdatedByID adds value to the "updated_by_id" field.
func (_u *PipelineConfigUpdateOne) AddUpdatedByID(v int) *PipelineConfigUpdateOne {
	_u.mutation.AddUpdatedByID(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PipelineConfigUpdateOne) SetUpdatedAt(v time.Time) *PipelineConfigUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the PipelineConfigMutation object of the builder.
func (_u *PipelineConfigUpdateOne) Mutation() *PipelineConfigMutation {
	return _u.mutation
}

// Where appends a list predicates to the PipelineConfigUpdate builder.
func (_u *PipelineConfigUpdateOne) Where(ps ...predicate.PipelineConfig) *PipelineConfigUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PipelineConfigUpdateOne) Select(field string, fields ...string) *PipelineConfigUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PipelineConfig entity.
func (_u *PipelineConfigUpdateOne) Save(ctx context.Context) (*PipelineConfig, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PipelineConfigUpdateOne) SaveX(ctx context.Context) *PipelineConfig {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PipelineConfigUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PipelineConfigUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PipelineConfigUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := pipelineconfig.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PipelineConfigUpdateOne) check() error {
	if v, ok := _u.mutation.DefaultStageID(); ok {
		if err := pipelineconfig.DefaultStageIDValidator(v); err != nil {
			return &ValidationError{Name: "default_stage_id", err: fmt.Errorf(`ent: validator failed for field "PipelineConfig.default_stage_id": %w`, err)}
		}
	}
	return nil
}

func (_u *PipelineConfigUpdateOne) sqlSave(ctx context.Context) (_node *PipelineConfig, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pipelineconfig.Table, pipelineconfig.Columns, sqlgraph.NewFieldSpec(pipelineconfig.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PipelineConfig.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, pipelineconfig.FieldID)
		for _, f := range fields {
			if !pipelineconfig.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != pipelineconfig.FieldID {
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
	if value, ok := _u.mutation.Key(); ok {
		_spec.SetField(pipelineconfig.FieldKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Stages(); ok {
		_spec.SetField(pipelineconfig.FieldStages, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedStages(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, pipelineconfig.FieldStages, value)
		})
	}
	if value, ok := _u.mutation.DefaultStageID(); ok {
		_spec.SetField(pipelineconfig.FieldDefaultStageID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(pipelineconfig.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(pipelineconfig.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedByID(); ok {
		_spec.SetField(pipelineconfig.FieldUpdatedByID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUpdatedByID(); ok {
		_spec.AddField(pipelineconfig.FieldUpdatedByID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(pipelineconfig.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &PipelineConfig{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pipelineconfig.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
