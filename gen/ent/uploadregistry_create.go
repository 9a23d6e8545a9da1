// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dfgiraldo/pqr-pipeline/gen/ent/uploadregistry"
	"github.com/google/uuid"
)

// UploadRegistryCreate is the builder for creating a UploadRegistry entity.
type UploadRegistryCreate struct {
	config
	mutation *UploadRegistryMutation
	hooks    []Hook
}

// SetNombreArchivo sets the "nombre_archivo" field.
func (_c *UploadRegistryCreate) SetNombreArchivo(v string) *UploadRegistryCreate {
	_c.mutation.SetNombreArchivo(v)
	return _c
}

// SetClaveS3 sets the "clave_s3" field.
func (_c *UploadRegistryCreate) SetClaveS3(v string) *UploadRegistryCreate {
	_c.mutation.SetClaveS3(v)
	return _c
}

// SetHashArchivo sets the "hash_archivo" field.
func (_c *UploadRegistryCreate) SetHashArchivo(v string) *UploadRegistryCreate {
	_c.mutation.SetHashArchivo(v)
	return _c
}

// SetEmpresa sets the "empresa" field.
func (_c *UploadRegistryCreate) SetEmpresa(v string) *UploadRegistryCreate {
	_c.mutation.SetEmpresa(v)
	return _c
}

// SetNumeroReclamoSgc sets the "numero_reclamo_sgc" field.
func (_c *UploadRegistryCreate) SetNumeroReclamoSgc(v string) *UploadRegistryCreate {
	_c.mutation.SetNumeroReclamoSgc(v)
	return _c
}

// SetNillableNumeroReclamoSgc sets the "numero_reclamo_sgc" field if the given value is not nil.
func (_c *UploadRegistryCreate) SetNillableNumeroReclamoSgc(v *string) *UploadRegistryCreate {
	if v != nil {
		_c.SetNumeroReclamoSgc(*v)
	}
	return _c
}

// SetEstadoCarga sets the "estado_carga" field.
func (_c *UploadRegistryCreate) SetEstadoCarga(v string) *UploadRegistryCreate {
	_c.mutation.SetEstadoCarga(v)
	return _c
}

// SetNillableEstadoCarga sets the "estado_carga" field if the given value is not nil.
func (_c *UploadRegistryCreate) SetNillableEstadoCarga(v *string) *UploadRegistryCreate {
	if v != nil {
		_c.SetEstadoCarga(*v)
	}
	return _c
}

// SetOrigenCarga sets the "origen_carga" field.
func (_c *UploadRegistryCreate) SetOrigenCarga(v string) *UploadRegistryCreate {
	_c.mutation.SetOrigenCarga(v)
	return _c
}

// SetNillableOrigenCarga sets the "origen_carga" field if the given value is not nil.
func (_c *UploadRegistryCreate) SetNillableOrigenCarga(v *string) *UploadRegistryCreate {
	if v != nil {
		_c.SetOrigenCarga(*v)
	}
	return _c
}

// SetIntentos sets the "intentos" field.
func (_c *UploadRegistryCreate) SetIntentos(v int) *UploadRegistryCreate {
	_c.mutation.SetIntentos(v)
	return _c
}

// SetNillableIntentos sets the "intentos" field if the given value is not nil.
func (_c *UploadRegistryCreate) SetNillableIntentos(v *int) *UploadRegistryCreate {
	if v != nil {
		_c.SetIntentos(*v)
	}
	return _c
}

// SetMetadatos sets the "metadatos" field.
func (_c *UploadRegistryCreate) SetMetadatos(v map[string]string) *UploadRegistryCreate {
	_c.mutation.SetMetadatos(v)
	return _c
}

// SetSincronizadoBd sets the "sincronizado_bd" field.
func (_c *UploadRegistryCreate) SetSincronizadoBd(v bool) *UploadRegistryCreate {
	_c.mutation.SetSincronizadoBd(v)
	return _c
}

// SetNillableSincronizadoBd sets the "sincronizado_bd" field if the given value is not nil.
func (_c *UploadRegistryCreate) SetNillableSincronizadoBd(v *bool) *UploadRegistryCreate {
	if v != nil {
		_c.SetSincronizadoBd(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *UploadRegistryCreate) SetCreatedAt(v time.Time) *UploadRegistryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *UploadRegistryCreate) SetNillableCreatedAt(v *time.Time) *UploadRegistryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *UploadRegistryCreate) SetUpdatedAt(v time.Time) *UploadRegistryCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *UploadRegistryCreate) SetNillableUpdatedAt(v *time.Time) *UploadRegistryCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *UploadRegistryCreate) SetID(v uuid.UUID) *UploadRegistryCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *UploadRegistryCreate) SetNillableID(v *uuid.UUID) *UploadRegistryCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the UploadRegistryMutation object of the builder.
func (_c *UploadRegistryCreate) Mutation() *UploadRegistryMutation {
	return _c.mutation
}

// Save creates the UploadRegistry in the database.
func (_c *UploadRegistryCreate) Save(ctx context.Context) (*UploadRegistry, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *UploadRegistryCreate) SaveX(ctx context.Context) *UploadRegistry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UploadRegistryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UploadRegistryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *UploadRegistryCreate) defaults() {
	if _, ok := _c.mutation.EstadoCarga(); !ok {
		v := uploadregistry.DefaultEstadoCarga
		_c.mutation.SetEstadoCarga(v)
	}
	if _, ok := _c.mutation.OrigenCarga(); !ok {
		v := uploadregistry.DefaultOrigenCarga
		_c.mutation.SetOrigenCarga(v)
	}
	if _, ok := _c.mutation.Intentos(); !ok {
		v := uploadregistry.DefaultIntentos
		_c.mutation.SetIntentos(v)
	}
	if _, ok := _c.mutation.SincronizadoBd(); !ok {
		v := uploadregistry.DefaultSincronizadoBd
		_c.mutation.SetSincronizadoBd(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := uploadregistry.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := uploadregistry.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := uploadregistry.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *UploadRegistryCreate) check() error {
	if _, ok := _c.mutation.NombreArchivo(); !ok {
		return &ValidationError{Name: "nombre_archivo", err: errors.New(`ent: missing required field "UploadRegistry.nombre_archivo"`)}
	}
	if v, ok := _c.mutation.NombreArchivo(); ok {
		if err := uploadregistry.NombreArchivoValidator(v); err != nil {
			return &ValidationError{Name: "nombre_archivo", err: fmt.Errorf(`ent: validator failed for field "UploadRegistry.nombre_archivo": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ClaveS3(); !ok {
		return &ValidationError{Name: "clave_s3", err: errors.New(`ent: missing required field "UploadRegistry.clave_s3"`)}
	}
	if v, ok := _c.mutation.ClaveS3(); ok {
		if err := uploadregistry.ClaveS3Validator(v); err != nil {
			return &ValidationError{Name: "clave_s3", err: fmt.Errorf(`ent: validator failed for field "UploadRegistry.clave_s3": %w`, err)}
		}
	}
	if _, ok := _c.mutation.HashArchivo(); !ok {
		return &ValidationError{Name: "hash_archivo", err: errors.New(`ent: missing required field "UploadRegistry.hash_archivo"`)}
	}
	if v, ok := _c.mutation.HashArchivo(); ok {
		if err := uploadregistry.HashArchivoValidator(v); err != nil {
			return &ValidationError{Name: "hash_archivo", err: fmt.Errorf(`ent: validator failed for field "UploadRegistry.hash_archivo": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Empresa(); !ok {
		return &ValidationError{Name: "empresa", err: errors.New(`ent: missing required field "UploadRegistry.empresa"`)}
	}
	if v, ok := _c.mutation.Empresa(); ok {
		if err := uploadregistry.EmpresaValidator(v); err != nil {
			return &ValidationError{Name: "empresa", err: fmt.Errorf(`ent: validator failed for field "UploadRegistry.empresa": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EstadoCarga(); !ok {
		return &ValidationError{Name: "estado_carga", err: errors.New(`ent: missing required field "UploadRegistry.estado_carga"`)}
	}
	if v, ok := _c.mutation.EstadoCarga(); ok {
		if err := uploadregistry.EstadoCargaValidator(v); err != nil {
			return &ValidationError{Name: "estado_carga", err: fmt.Errorf(`ent: validator failed for field "UploadRegistry.estado_carga": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OrigenCarga(); !ok {
		return &ValidationError{Name: "origen_carga", err: errors.New(`ent: missing required field "UploadRegistry.origen_carga"`)}
	}
	if v, ok := _c.mutation.OrigenCarga(); ok {
		if err := uploadregistry.OrigenCargaValidator(v); err != nil {
			return &ValidationError{Name: "origen_carga", err: fmt.Errorf(`ent: validator failed for field "UploadRegistry.origen_carga": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Intentos(); !ok {
		return &ValidationError{Name: "intentos", err: errors.New(`ent: missing required field "UploadRegistry.intentos"`)}
	}
	if v, ok := _c.mutation.Intentos(); ok {
		if err := uploadregistry.IntentosValidator(v); err != nil {
			return &ValidationError{Name: "intentos", err: fmt.Errorf(`ent: validator failed for field "UploadRegistry.intentos": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SincronizadoBd(); !ok {
		return &ValidationError{Name: "sincronizado_bd", err: errors.New(`ent: missing required field "UploadRegistry.sincronizado_bd"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "UploadRegistry.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "UploadRegistry.updated_at"`)}
	}
	return nil
}

func (_c *UploadRegistryCreate) sqlSave(ctx context.Context) (*UploadRegistry, error) {
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

func (_c *UploadRegistryCreate) createSpec() (*UploadRegistry, *sqlgraph.CreateSpec) {
	var (
		_node = &UploadRegistry{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(uploadregistry.Table, sqlgraph.NewFieldSpec(uploadregistry.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.NombreArchivo(); ok {
		_spec.SetField(uploadregistry.FieldNombreArchivo, field.TypeString, value)
		_node.NombreArchivo = value
	}
	if value, ok := _c.mutation.ClaveS3(); ok {
		_spec.SetField(uploadregistry.FieldClaveS3, field.TypeString, value)
		_node.ClaveS3 = value
	}
	if value, ok := _c.mutation.HashArchivo(); ok {
		_spec.SetField(uploadregistry.FieldHashArchivo, field.TypeString, value)
		_node.HashArchivo = value
	}
	if value, ok := _c.mutation.Empresa(); ok {
		_spec.SetField(uploadregistry.FieldEmpresa, field.TypeString, value)
		_node.Empresa = value
	}
	if value, ok := _c.mutation.NumeroReclamoSgc(); ok {
		_spec.SetField(uploadregistry.FieldNumeroReclamoSgc, field.TypeString, value)
		_node.NumeroReclamoSgc = value
	}
	if value, ok := _c.mutation.EstadoCarga(); ok {
		_spec.SetField(uploadregistry.FieldEstadoCarga, field.TypeString, value)
		_node.EstadoCarga = value
	}
	if value, ok := _c.mutation.OrigenCarga(); ok {
		_spec.SetField(uploadregistry.FieldOrigenCarga, field.TypeString, value)
		_node.OrigenCarga = value
	}
	if value, ok := _c.mutation.Intentos(); ok {
		_spec.SetField(uploadregistry.FieldIntentos, field.TypeInt, value)
		_node.Intentos = value
	}
	if value, ok := _c.mutation.Metadatos(); ok {
		_spec.SetField(uploadregistry.FieldMetadatos, field.TypeJSON, value)
		_node.Metadatos = value
	}
	if value, ok := _c.mutation.SincronizadoBd(); ok {
		_spec.SetField(uploadregistry.FieldSincronizadoBd, field.TypeBool, value)
		_node.SincronizadoBd = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(uploadregistry.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(uploadregistry.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// UploadRegistryCreateBulk is the builder for creating many UploadRegistry entities in bulk.
type UploadRegistryCreateBulk struct {
	config
	err      error
	builders []*UploadRegistryCreate
}

// Save creates the UploadRegistry entities in the database.
func (_c *UploadRegistryCreateBulk) Save(ctx context.Context) ([]*UploadRegistry, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*UploadRegistry, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UploadRegistryMutation)
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
func (_c *UploadRegistryCreateBulk) SaveX(ctx context.Context) []*UploadRegistry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UploadRegistryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UploadRegistryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
