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
	"github.com/dfgiraldo/pqr-pipeline/gen/ent/flowrun"
	"github.com/dfgiraldo/pqr-pipeline/gen/ent/predicate"
	"github.com/dfgiraldo/pqr-pipeline/internal/entity"
)

// FlowRunUpdate is the builder for updating FlowRun entities.
type FlowRunUpdate struct {
	config
	hooks    []Hook
	mutation *FlowRunMutation
}

// Where appends a list predicates to the FlowRunUpdate builder.
func (_u *FlowRunUpdate) Where(ps ...predicate.FlowRun) *FlowRunUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEmpresa sets the "empresa" field.
func (_u *FlowRunUpdate) SetEmpresa(v string) *FlowRunUpdate {
	_u.mutation.SetEmpresa(v)
	return _u
}

// SetNillableEmpresa sets the "empresa" field if the given value is not nil.
func (_u *FlowRunUpdate) SetNillableEmpresa(v *string) *FlowRunUpdate {
	if v != nil {
		_u.SetEmpresa(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *FlowRunUpdate) SetStartedAt(v time.Time) *FlowRunUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *FlowRunUpdate) SetNillableStartedAt(v *time.Time) *FlowRunUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *FlowRunUpdate) SetFinishedAt(v time.Time) *FlowRunUpdate {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *FlowRunUpdate) SetNillableFinishedAt(v *time.Time) *FlowRunUpdate {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *FlowRunUpdate) ClearFinishedAt() *FlowRunUpdate {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetSuccess sets the "success" field.
func (_u *FlowRunUpdate) SetSuccess(v bool) *FlowRunUpdate {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *FlowRunUpdate) SetNillableSuccess(v *bool) *FlowRunUpdate {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetSteps sets the "steps" field.
func (_u *FlowRunUpdate) SetSteps(v []entity.FlowStepResult) *FlowRunUpdate {
	_u.mutation.SetSteps(v)
	return _u
}

// AppendSteps appends value to the "steps" field.
func (_u *FlowRunUpdate) AppendSteps(v []entity.FlowStepResult) *FlowRunUpdate {
	_u.mutation.AppendSteps(v)
	return _u
}

// ClearSteps clears the value of the "steps" field.
func (_u *FlowRunUpdate) ClearSteps() *FlowRunUpdate {
	_u.mutation.ClearSteps()
	return _u
}

// Mutation returns the FlowRunMutation object of the builder.
func (_u *FlowRunUpdate) Mutation() *FlowRunMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FlowRunUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FlowRunUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FlowRunUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FlowRunUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FlowRunUpdate) check() error {
	if v, ok := _u.mutation.Empresa(); ok {
		if err := flowrun.EmpresaValidator(v); err != nil {
			return &ValidationError{Name: "empresa", err: fmt.Errorf(`ent: validator failed for field "FlowRun.empresa": %w`, err)}
		}
	}
	return nil
}

func (_u *FlowRunUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(flowrun.Table, flowrun.Columns, sqlgraph.NewFieldSpec(flowrun.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Empresa(); ok {
		_spec.SetField(flowrun.FieldEmpresa, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(flowrun.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(flowrun.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(flowrun.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(flowrun.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Steps(); ok {
		_spec.SetField(flowrun.FieldSteps, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSteps(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, flowrun.FieldSteps, value)
		})
	}
	if _u.mutation.StepsCleared() {
		_spec.ClearField(flowrun.FieldSteps, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{flowrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FlowRunUpdateOne is the builder for updating a single FlowRun entity.
type FlowRunUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FlowRunMutation
}

// SetEmpresa sets the "empresa" field.
func (_u *FlowRunUpdateOne) SetEmpresa(v string) *FlowRunUpdateOne {
	_u.mutation.SetEmpresa(v)
	return _u
}

// SetNillableEmpresa sets the "empresa" field if the given value is not nil.
func (_u *FlowRunUpdateOne) SetNillableEmpresa(v *string) *FlowRunUpdateOne {
	if v != nil {
		_u.SetEmpresa(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *FlowRunUpdateOne) SetStartedAt(v time.Time) *FlowRunUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *FlowRunUpdateOne) SetNillableStartedAt(v *time.Time) *FlowRunUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *FlowRunUpdateOne) SetFinishedAt(v time.Time) *FlowRunUpdateOne {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *FlowRunUpdateOne) SetNillableFinishedAt(v *time.Time) *FlowRunUpdateOne {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *FlowRunUpdateOne) ClearFinishedAt() *FlowRunUpdateOne {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetSuccess sets the "success" field.
func (_u *FlowRunUpdateOne) SetSuccess(v bool) *FlowRunUpdateOne {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *FlowRunUpdateOne) SetNillableSuccess(v *bool) *FlowRunUpdateOne {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetSteps sets the "steps" field.
func (_u *FlowRunUpdateOne) SetSteps(v []entity.FlowStepResult) *FlowRunUpdateOne {
	_u.mutation.SetSteps(v)
	return _u
}

// AppendSteps appends value to the "steps" field.
func (_u *FlowRunUpdateOne) AppendSteps(v []entity.FlowStepResult) *FlowRunUpdateOne {
	_u.mutation.AppendSteps(v)
	return _u
}

// ClearSteps clears the value of the "steps" field.
func (_u *FlowRunUpdateOne) ClearSteps() *FlowRunUpdateOne {
	_u.mutation.ClearSteps()
	return _u
}

// Mutation returns the FlowRunMutation object of the builder.
func (_u *FlowRunUpdateOne) Mutation() *FlowRunMutation {
	return _u.mutation
}

// Where appends a list predicates to the FlowRunUpdate builder.
func (_u *FlowRunUpdateOne) Where(ps ...predicate.FlowRun) *FlowRunUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FlowRunUpdateOne) Select(field string, fields ...string) *FlowRunUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated FlowRun entity.
func (_u *FlowRunUpdateOne) Save(ctx context.Context) (*FlowRun, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FlowRunUpdateOne) SaveX(ctx context.Context) *FlowRun {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FlowRunUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FlowRunUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FlowRunUpdateOne) check() error {
	if v, ok := _u.mutation.Empresa(); ok {
		if err := flowrun.EmpresaValidator(v); err != nil {
			return &ValidationError{Name: "empresa", err: fmt.Errorf(`ent: validator failed for field "FlowRun.empresa": %w`, err)}
		}
	}
	return nil
}

func (_u *FlowRunUpdateOne) sqlSave(ctx context.Context) (_node *FlowRun, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(flowrun.Table, flowrun.Columns, sqlgraph.NewFieldSpec(flowrun.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "FlowRun.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, flowrun.FieldID)
		for _, f := range fields {
			if !flowrun.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != flowrun.FieldID {
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
	if value, ok := _u.mutation.Empresa(); ok {
		_spec.SetField(flowrun.FieldEmpresa, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(flowrun.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(flowrun.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(flowrun.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(flowrun.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Steps(); ok {
		_spec.SetField(flowrun.FieldSteps, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSteps(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, flowrun.FieldSteps, value)
		})
	}
	if _u.mutation.StepsCleared() {
		_spec.ClearField(flowrun.FieldSteps, field.TypeJSON)
	}
	_node = &FlowRun{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{flowrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
