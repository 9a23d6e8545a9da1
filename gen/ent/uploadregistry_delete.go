// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dfgiraldo/pqr-pipeline/gen/ent/predicate"
	"github.com/dfgiraldo/pqr-pipeline/gen/ent/uploadregistry"
)

// UploadRegistryDelete is the builder for deleting a UploadRegistry entity.
type UploadRegistryDelete struct {
	config
	hooks    []Hook
	mutation *UploadRegistryMutation
}

// Where appends a list predicates to the UploadRegistryDelete builder.
func (_d *UploadRegistryDelete) Where(ps ...predicate.UploadRegistry) *UploadRegistryDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *UploadRegistryDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *UploadRegistryDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *UploadRegistryDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(uploadregistry.Table, sqlgraph.NewFieldSpec(uploadregistry.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// UploadRegistryDeleteOne is the builder for deleting a single UploadRegistry entity.
type UploadRegistryDeleteOne struct {
	_d *UploadRegistryDelete
}

// Where appends a list predicates to the UploadRegistryDelete builder.
func (_d *UploadRegistryDeleteOne) Where(ps ...predicate.UploadRegistry) *UploadRegistryDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *UploadRegistryDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{uploadregistry.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *UploadRegistryDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
