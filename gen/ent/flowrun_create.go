// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dfgiraldo/pqr-pipeline/gen/ent/flowrun"
	"github.com/dfgiraldo/pqr-pipeline/internal/entity"
	"github.com/google/uuid"
)

// FlowRunCreate is the builder for creating a FlowRun entity.
type FlowRunCreate struct {
	config
	mutation *FlowRunMutation
	hooks    []Hook
}

// SetEmpresa sets the "empresa" field.
func (_c *FlowRunCreate) SetEmpresa(v string) *FlowRunCreate {
	_c.mutation.SetEmpresa(v)
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *FlowRunCreate) SetStartedAt(v time.Time) *FlowRunCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *FlowRunCreate) SetNillableStartedAt(v *time.Time) *FlowRunCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetFinishedAt sets the "finished_at" field.
func (_c *FlowRunCreate) SetFinishedAt(v time.Time) *FlowRunCreate {
	_c.mutation.SetFinishedAt(v)
	return _c
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_c *FlowRunCreate) SetNillableFinishedAt(v *time.Time) *FlowRunCreate {
	if v != nil {
		_c.SetFinishedAt(*v)
	}
	return _c
}

// SetSuccess sets the "success" field.
func (_c *FlowRunCreate) SetSuccess(v bool) *FlowRunCreate {
	_c.mutation.SetSuccess(v)
	return _c
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_c *FlowRunCreate) SetNillableSuccess(v *bool) *FlowRunCreate {
	if v != nil {
		_c.SetSuccess(*v)
	}
	return _c
}

// SetSteps sets the "steps" field.
func (_c *FlowRunCreate) SetSteps(v []entity.FlowStepResult) *FlowRunCreate {
	_c.mutation.SetSteps(v)
	return _c
}

// SetID sets the "id" field.
func (_c *FlowRunCreate) SetID(v uuid.UUID) *FlowRunCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *FlowRunCreate) SetNillableID(v *uuid.UUID) *FlowRunCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the FlowRunMutation object of the builder.
func (_c *FlowRunCreate) Mutation() *FlowRunMutation {
	return _c.mutation
}

// Save creates the FlowRun in the database.
func (_c *FlowRunCreate) Save(ctx context.Context) (*FlowRun, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FlowRunCreate) SaveX(ctx context.Context) *FlowRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FlowRunCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FlowRunCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *FlowRunCreate) defaults() {
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := flowrun.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
	if _, ok := _c.mutation.Success(); !ok {
		v := flowrun.DefaultSuccess
		_c.mutation.SetSuccess(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := flowrun.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FlowRunCreate) check() error {
	if _, ok := _c.mutation.Empresa(); !ok {
		return &ValidationError{Name: "empresa", err: errors.New(`ent: missing required field "FlowRun.empresa"`)}
	}
	if v, ok := _c.mutation.Empresa(); ok {
		if err := flowrun.EmpresaValidator(v); err != nil {
			return &ValidationError{Name: "empresa", err: fmt.Errorf(`ent: validator failed for field "FlowRun.empresa": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "FlowRun.started_at"`)}
	}
	if _, ok := _c.mutation.Success(); !ok {
		return &ValidationError{Name: "success", err: errors.New(`ent: missing required field "FlowRun.success"`)}
	}
	return nil
}

func (_c *FlowRunCreate) sqlSave(ctx context.Context) (*FlowRun, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *FlowRunCreate) createSpec() (*FlowRun, *sqlgraph.CreateSpec) {
	var (
		_node = &FlowRun{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(flowrun.Table, sqlgraph.NewFieldSpec(flowrun.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Empresa(); ok {
		_spec.SetField(flowrun.FieldEmpresa, field.TypeString, value)
		_node.Empresa = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(flowrun.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.FinishedAt(); ok {
		_spec.SetField(flowrun.FieldFinishedAt, field.TypeTime, value)
		_node.FinishedAt = &value
	}
	if value, ok := _c.mutation.Success(); ok {
		_spec.SetField(flowrun.FieldSuccess, field.TypeBool, value)
		_node.Success = value
	}
	if value, ok := _c.mutation.Steps(); ok {
		_spec.SetField(flowrun.FieldSteps, field.TypeJSON, value)
		_node.Steps = value
	}
	return _node, _spec
}

// FlowRunCreateBulk is the builder for creating many FlowRun entities in bulk.
type FlowRunCreateBulk struct {
	config
	err      error
	builders []*FlowRunCreate
}

// Save creates the FlowRun entities in the database.
func (_c *FlowRunCreateBulk) Save(ctx context.Context) ([]*FlowRun, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*FlowRun, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FlowRunMutation)
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
func (_c *FlowRunCreateBulk) SaveX(ctx context.Context) []*FlowRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FlowRunCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FlowRunCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
