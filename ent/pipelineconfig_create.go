// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/casaflow/casaflow/ent/pipelineconfig"
	"github.com/casaflow/casaflow/pkg/models"
)

// PipelineConfigCreate is the builder for creating a PipelineConfig entity.
type PipelineConfigCreate struct {
	config
	mutation *PipelineConfigMutation
	hooks    []Hook
}

// SetKey sets the "key" field.
func (_c *PipelineConfigCreate) SetKey(v string) *PipelineConfigCreate {
	_c.mutation.SetKey(v)
	return _c
}

// SetStages sets the "stages" field.
func (_c *PipelineConfigCreate) SetStages(v []models.Stage) *PipelineConfigCreate {
	_c.mutation.SetStages(v)
	return _c
}

// SetDefaultStageID sets the "default_stage_id" field.
func (_c *PipelineConfigCreate) SetDefaultStageID(v string) *PipelineConfigCreate {
	_c.mutation.SetDefaultStageID(v)
	return _c
}

// SetVersion sets the "version" field.
func (_c *PipelineConfigCreate) SetVersion(v int) *PipelineConfigCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_c *PipelineConfigCreate) SetNillableVersion(v *int) *PipelineConfigCreate {
	if v != nil {
		_c.SetVersion(*v)
	}
	return _c
}

// SetUpdatedByID sets the "updated_by_id" field.
func (_c *PipelineConfigCreate) SetUpdatedByID(v int) *PipelineConfigCreate {
	_c.mutation.SetUpdatedByID(v)
	return _c
}

// SetNillableUpdatedByID sets the "updated_by_id" field if the given value is not nil.
func (_c *PipelineConfigCreate) SetNillableUpdatedByID(v *int) *PipelineConfigCreate {
	if v != nil {
		_c.SetUpdatedByID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PipelineConfigCreate) SetCreatedAt(v time.Time) *PipelineConfigCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PipelineConfigCreate) SetNillableCreatedAt(v *time.Time) *PipelineConfigCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PipelineConfigCreate) SetUpdatedAt(v time.Time) *PipelineConfigCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PipelineConfigCreate) SetNillableUpdatedAt(v *time.Time) *PipelineConfigCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the PipelineConfigMutation object of the builder.
func (_c *PipelineConfigCreate) Mutation() *PipelineConfigMutation {
	return _c.mutation
}

// Save creates the PipelineConfig in the database.
func (_c *PipelineConfigCreate) Save(ctx context.Context) (*PipelineConfig, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PipelineConfigCreate) SaveX(ctx context.Context) *PipelineConfig {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PipelineConfigCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PipelineConfigCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PipelineConfigCreate) defaults() {
	if _, ok := _c.mutation.Version(); !ok {
		v := pipelineconfig.DefaultVersion
		_c.mutation.SetVersion(v)
	}
	if _, ok := _c.mutation.UpdatedByID(); !ok {
		v := pipelineconfig.DefaultUpdatedByID
		_c.mutation.SetUpdatedByID(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := pipelineconfig.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := pipelineconfig.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PipelineConfigCreate) check() error {
	if _, ok := _c.mutation.Key(); !ok {
		return &ValidationError{Name: "key", err: errors.New(`ent: missing required field "PipelineConfig.key"`)}
	}
	if _, ok := _c.mutation.Stages(); !ok {
		return &ValidationError{Name: "stages", err: errors.New(`ent: missing required field "PipelineConfig.stages"`)}
	}
	if _, ok := _c.mutation.DefaultStageID(); !ok {
		return &ValidationError{Name: "default_stage_id", err: errors.New(`ent: missing required field "PipelineConfig.default_stage_id"`)}
	}
	if v, ok := _c.mutation.DefaultStageID(); ok {
		if err := pipelineconfig.DefaultStageIDValidator(v); err != nil {
			return &ValidationError{Name: "default_stage_id", err: fmt.Errorf(`ent: validator failed for field "PipelineConfig.default_stage_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "PipelineConfig.version"`)}
	}
	if _, ok := _c.mutation.UpdatedByID(); !ok {
		return &ValidationError{Name: "updated_by_id", err: errors.New(`ent: missing required field "PipelineConfig.updated_by_id"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PipelineConfig.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "PipelineConfig.updated_at"`)}
	}
	return nil
}

func (_c *PipelineConfigCreate) sqlSave(ctx context.Context) (*PipelineConfig, error) {
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

func (_c *PipelineConfigCreate) createSpec() (*PipelineConfig, *sqlgraph.CreateSpec) {
	var (
		_node = &PipelineConfig{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(pipelineconfig.Table, sqlgraph.NewFieldSpec(pipelineconfig.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Key(); ok {
		_spec.SetField(pipelineconfig.FieldKey, field.TypeString, value)
		_node.Key = value
	}
	if value, ok := _c.mutation.Stages(); ok {
		_spec.SetField(pipelineconfig.FieldStages, field.TypeJSON, value)
		_node.Stages = value
	}
	if value, ok := _c.mutation.DefaultStageID(); ok {
		_spec.SetField(pipelineconfig.FieldDefaultStageID, field.TypeString, value)
		_node.DefaultStageID = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(pipelineconfig.FieldVersion, field.TypeInt, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.UpdatedByID(); ok {
		_spec.SetField(pipelineconfig.FieldUpdatedByID, field.TypeInt, value)
		_node.UpdatedByID = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(pipelineconfig.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(pipelineconfig.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// PipelineConfigCreateBulk is the builder for creating many PipelineConfig entities in bulk.
type PipelineConfigCreateBulk struct {
	config
	err      error
	builders []*PipelineConfigCreate
}

// Save creates the PipelineConfig entities in the database.
func (_c *PipelineConfigCreateBulk) Save(ctx context.Context) ([]*PipelineConfig, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PipelineConfig, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PipelineConfigMutation)
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
func (_c *PipelineConfigCreateBulk) SaveX(ctx context.Context) []*PipelineConfig {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PipelineConfigCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PipelineConfigCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
