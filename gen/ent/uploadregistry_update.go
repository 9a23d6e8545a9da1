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
	"github.com/dfgiraldo/pqr-pipeline/gen/ent/predicate"
	"github.com/dfgiraldo/pqr-pipeline/gen/ent/uploadregistry"
)

// UploadRegistryUpdate is the builder for updating UploadRegistry entities.
type UploadRegistryUpdate struct {
	config
	hooks    []Hook
	mutation *UploadRegistryMutation
}

// Where appends a list predicates to the UploadRegistryUpdate builder.
func (_u *UploadRegistryUpdate) Where(ps ...predicate.UploadRegistry) *UploadRegistryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetNombreArchivo sets the "nombre_archivo" field.
func (_u *UploadRegistryUpdate) SetNombreArchivo(v string) *UploadRegistryUpdate {
	_u.mutation.SetNombreArchivo(v)
	return _u
}

// SetNillableNombreArchivo sets the "nombre_archivo" field if the given value is not nil.
func (_u *UploadRegistryUpdate) SetNillableNombreArchivo(v *string) *UploadRegistryUpdate {
	if v != nil {
		_u.SetNombreArchivo(*v)
	}
	return _u
}

// SetClaveS3 sets the "clave_s3" field.
func (_u *UploadRegistryUpdate) SetClaveS3(v string) *UploadRegistryUpdate {
	_u.mutation.SetClaveS3(v)
	return _u
}

// SetNillableClaveS3 sets the "clave_s3" field if the given value is not nil.
func (_u *UploadRegistryUpdate) SetNillableClaveS3(v *string) *UploadRegistryUpdate {
	if v != nil {
		_u.SetClaveS3(*v)
	}
	return _u
}

// SetHashArchivo sets the "hash_archivo" field.
func (_u *UploadRegistryUpdate) SetHashArchivo(v string) *UploadRegistryUpdate {
	_u.mutation.SetHashArchivo(v)
	return _u
}

// SetNillableHashArchivo sets the "hash_archivo" field if the given value is not nil.
func (_u *UploadRegistryUpdate) SetNillableHashArchivo(v *string) *UploadRegistryUpdate {
	if v != nil {
		_u.SetHashArchivo(*v)
	}
	return _u
}

// SetEmpresa sets the "empresa" field.
func (_u *UploadRegistryUpdate) SetEmpresa(v string) *UploadRegistryUpdate {
	_u.mutation.SetEmpresa(v)
	return _u
}

// SetNillableEmpresa sets the "empresa" field if the given value is not nil.
func (_u *UploadRegistryUpdate) SetNillableEmpresa(v *string) *UploadRegistryUpdate {
	if v != nil {
		_u.SetEmpresa(*v)
	}
	return _u
}

// SetNumeroReclamoSgc sets the "numero_reclamo_sgc" field.
func (_u *UploadRegistryUpdate) SetNumeroReclamoSgc(v string) *UploadRegistryUpdate {
	_u.mutation.SetNumeroReclamoSgc(v)
	return _u
}

// SetNillableNumeroReclamoSgc sets the "numero_reclamo_sgc" field if the given value is not nil.
func (_u *UploadRegistryUpdate) SetNillableNumeroReclamoSgc(v *string) *UploadRegistryUpdate {
	if v != nil {
		_u.SetNumeroReclamoSgc(*v)
	}
	return _u
}

// ClearNumeroReclamoSgc clears the value of the "numero_reclamo_sgc" field.
func (_u *UploadRegistryUpdate) ClearNumeroReclamoSgc() *UploadRegistryUpdate {
	_u.mutation.ClearNumeroReclamoSgc()
	return _u
}

// SetEstadoCarga sets the "estado_carga" field.
func (_u *UploadRegistryUpdate) SetEstadoCarga(v string) *UploadRegistryUpdate {
	_u.mutation.SetEstadoCarga(v)
	return _u
}

// SetNillableEstadoCarga sets the "estado_carga" field if the given value is not nil.
func (_u *UploadRegistryUpdate) SetNillableEstadoCarga(v *string) *UploadRegistryUpdate {
	if v != nil {
		_u.SetEstadoCarga(*v)
	}
	return _u
}

// SetOrigenCarga sets the "origen_carga" field.
func (_u *UploadRegistryUpdate) SetOrigenCarga(v string) *UploadRegistryUpdate {
	_u.mutation.SetOrigenCarga(v)
	return _u
}

// SetNillableOrigenCarga sets the "origen_carga" field if the given value is not nil.
func (_u *UploadRegistryUpdate) SetNillableOrigenCarga(v *string) *UploadRegistryUpdate {
	if v != nil {
		_u.SetOrigenCarga(*v)
	}
	return _u
}

// SetIntentos sets the "intentos" field.
func (_u *UploadRegistryUpdate) SetIntentos(v int) *UploadRegistryUpdate {
	_u.mutation.ResetIntentos()
	_u.mutation.SetIntentos(v)
	return _u
}

// SetNillableIntentos sets the "intentos" field if the given value is not nil.
func (_u *UploadRegistryUpdate) SetNillableIntentos(v *int) *UploadRegistryUpdate {
	if v != nil {
		_u.SetIntentos(*v)
	}
	return _u
}

// AddIntentos adds value to the "intentos" field.
func (_u *UploadRegistryUpdate) AddIntentos(v int) *UploadRegistryUpdate {
	_u.mutation.AddIntentos(v)
	return _u
}

// SetMetadatos sets the "metadatos" field.
func (_u *UploadRegistryUpdate) SetMetadatos(v map[string]string) *UploadRegistryUpdate {
	_u.mutation.SetMetadatos(v)
	return _u
}

// ClearMetadatos clears the value of the "metadatos" field.
func (_u *UploadRegistryUpdate) ClearMetadatos() *UploadRegistryUpdate {
	_u.mutation.ClearMetadatos()
	return _u
}

// SetSincronizadoBd sets the "sincronizado_bd" field.
func (_u *UploadRegistryUpdate) SetSincronizadoBd(v bool) *UploadRegistryUpdate {
	_u.mutation.SetSincronizadoBd(v)
	return _u
}

// SetNillableSincronizadoBd sets the "sincronizado_bd" field if the given value is not nil.
func (_u *UploadRegistryUpdate) SetNillableSincronizadoBd(v *bool) *UploadRegistryUpdate {
	if v != nil {
		_u.SetSincronizadoBd(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *UploadRegistryUpdate) SetUpdatedAt(v time.Time) *UploadRegistryUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the UploadRegistryMutation object of the builder.
func (_u *UploadRegistryUpdate) Mutation() *UploadRegistryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UploadRegistryUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UploadRegistryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UploadRegistryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UploadRegistryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UploadRegistryUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := uploadregistry.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UploadRegistryUpdate) check() error {
	if v, ok := _u.mutation.NombreArchivo(); ok {
		if err := uploadregistry.NombreArchivoValidator(v); err != nil {
			return &ValidationError{Name: "nombre_archivo", err: fmt.Errorf(`ent: validator failed for field "UploadRegistry.nombre_archivo": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ClaveS3(); ok {
		if err := uploadregistry.ClaveS3Validator(v); err != nil {
			return &ValidationError{Name: "clave_s3", err: fmt.Errorf(`ent: validator failed for field "UploadRegistry.clave_s3": %w`, err)}
		}
	}
	if v, ok := _u.mutation.HashArchivo(); ok {
		if err := uploadregistry.HashArchivoValidator(v); err != nil {
			return &ValidationError{Name: "hash_archivo", err: fmt.Errorf(`ent: validator failed for field "UploadRegistry.hash_archivo": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Empresa(); ok {
		if err := uploadregistry.EmpresaValidator(v); err != nil {
			return &ValidationError{Name: "empresa", err: fmt.Errorf(`ent: validator failed for field "UploadRegistry.empresa": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EstadoCarga(); ok {
		if err := uploadregistry.EstadoCargaValidator(v); err != nil {
			return &ValidationError{Name: "estado_carga", err: fmt.Errorf(`ent: validator failed for field "UploadRegistry.estado_carga": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OrigenCarga(); ok {
		if err := uploadregistry.OrigenCargaValidator(v); err != nil {
			return &ValidationError{Name: "origen_carga", err: fmt.Errorf(`ent: validator failed for field "UploadRegistry.origen_carga": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Intentos(); ok {
		if err := uploadregistry.IntentosValidator(v); err != nil {
			return &ValidationError{Name: "intentos", err: fmt.Errorf(`ent: validator failed for field "UploadRegistry.intentos": %w`, err)}
		}
	}
	return nil
}

func (_u *UploadRegistryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(uploadregistry.Table, uploadregistry.Columns, sqlgraph.NewFieldSpec(uploadregistry.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.NombreArchivo(); ok {
		_spec.SetField(uploadregistry.FieldNombreArchivo, field.TypeString, value)
	}
	if value, ok := _u.mutation.ClaveS3(); ok {
		_spec.SetField(uploadregistry.FieldClaveS3, field.TypeString, value)
	}
	if value, ok := _u.mutation.HashArchivo(); ok {
		_spec.SetField(uploadregistry.FieldHashArchivo, field.TypeString, value)
	}
	if value, ok := _u.mutation.Empresa(); ok {
		_spec.SetField(uploadregistry.FieldEmpresa, field.TypeString, value)
	}
	if value, ok := _u.mutation.NumeroReclamoSgc(); ok {
		_spec.SetField(uploadregistry.FieldNumeroReclamoSgc, field.TypeString, value)
	}
	if _u.mutation.NumeroReclamoSgcCleared() {
		_spec.ClearField(uploadregistry.FieldNumeroReclamoSgc, field.TypeString)
	}
	if value, ok := _u.mutation.EstadoCarga(); ok {
		_spec.SetField(uploadregistry.FieldEstadoCarga, field.TypeString, value)
	}
	if value, ok := _u.mutation.OrigenCarga(); ok {
		_spec.SetField(uploadregistry.FieldOrigenCarga, field.TypeString, value)
	}
	if value, ok := _u.mutation.Intentos(); ok {
		_spec.SetField(uploadregistry.FieldIntentos, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIntentos(); ok {
		_spec.AddField(uploadregistry.FieldIntentos, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Metadatos(); ok {
		_spec.SetField(uploadregistry.FieldMetadatos, field.TypeJSON, value)
	}
	if _u.mutation.MetadatosCleared() {
		_spec.ClearField(uploadregistry.FieldMetadatos, field.TypeJSON)
	}
	if value, ok := _u.mutation.SincronizadoBd(); ok {
		_spec.SetField(uploadregistry.FieldSincronizadoBd, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(uploadregistry.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{uploadregistry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UploadRegistryUpdateOne is the builder for updating a single UploadRegistry entity.
type UploadRegistryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UploadRegistryMutation
}

// SetNombreArchivo sets the "nombre_archivo" field.
func (_u *UploadRegistryUpdateOne) SetNombreArchivo(v string) *UploadRegistryUpdateOne {
	_u.mutation.SetNombreArchivo(v)
	return _u
}

// SetNillableNombreArchivo sets the "nombre_archivo" field if the given value is not nil.
func (_u *UploadRegistryUpdateOne) SetNillableNombreArchivo(v *string) *UploadRegistryUpdateOne {
	if v != nil {
		_u.SetNombreArchivo(*v)
	}
	return _u
}

// SetClaveS3 sets the "clave_s3" field.
func (_u *UploadRegistryUpdateOne) SetClaveS3(v string) *UploadRegistryUpdateOne {
	_u.mutation.SetClaveS3(v)
	return _u
}

// SetNillableClaveS3 sets the "clave_s3" field if the given value is not nil.
func (_u *UploadRegistryUpdateOne) SetNillableClaveS3(v *string) *UploadRegistryUpdateOne {
	if v != nil {
		_u.SetClaveS3(*v)
	}
	return _u
}

// SetHashArchivo sets the "hash_archivo" field.
func (_u *UploadRegistryUpdateOne) SetHashArchivo(v string) *UploadRegistryUpdateOne {
	_u.mutation.SetHashArchivo(v)
	return _u
}

// SetNillableHashArchivo sets the "hash_archivo" field if the given value is not nil.
func (_u *UploadRegistryUpdateOne) SetNillableHashArchivo(v *string) *UploadRegistryUpdateOne {
	if v != nil {
		_u.SetHashArchivo(*v)
	}
	return _u
}

// SetEmpresa sets the "empresa" field.
func (_u *UploadRegistryUpdateOne) SetEmpresa(v string) *UploadRegistryUpdateOne {
	_u.mutation.SetEmpresa(v)
	return _u
}

// SetNillableEmpresa sets the "empresa" field if the given value is not nil.
func (_u *UploadRegistryUpdateOne) SetNillableEmpresa(v *string) *UploadRegistryUpdateOne {
	if v != nil {
		_u.SetEmpresa(*v)
	}
	return _u
}

// SetNumeroReclamoSgc sets the "numero_reclamo_sgc" field.
func (_u *UploadRegistryUpdateOne) SetNumeroReclamoSgc(v string) *UploadRegistryUpdateOne {
	_u.mutation.SetNumeroReclamoSgc(v)
	return _u
}

// SetNillableNumeroReclamoSgc sets the "numero_reclamo_sgc" field if the given value is not nil.
func (_u *UploadRegistryUpdateOne) SetNillableNumeroReclamoSgc(v *string) *UploadRegistryUpdateOne {
	if v != nil {
		_u.SetNumeroReclamoSgc(*v)
	}
	return _u
}

// ClearNumeroReclamoSgc clears the value of the "numero_reclamo_sgc" field.
func (_u *UploadRegistryUpdateOne) ClearNumeroReclamoSgc() *UploadRegistryUpdateOne {
	_u.mutation.ClearNumeroReclamoSgc()
	return _u
}

// SetEstadoCarga sets the "estado_carga" field.
func (_u *UploadRegistryUpdateOne) SetEstadoCarga(v string) *UploadRegistryUpdateOne {
	_u.mutation.SetEstadoCarga(v)
	return _u
}

// SetNillableEstadoCarga sets the "estado_carga" field if the given value is not nil.
func (_u *UploadRegistryUpdateOne) SetNillableEstadoCarga(v *string) *UploadRegistryUpdateOne {
	if v != nil {
		_u.SetEstadoCarga(*v)
	}
	return _u
}

// SetOrigenCarga sets the "origen_carga" field.
func (_u *UploadRegistryUpdateOne) SetOrigenCarga(v string) *UploadRegistryUpdateOne {
	_u.mutation.SetOrigenCarga(v)
	return _u
}

// SetNillableOrigenCarga sets the "origen_carga" field if the given value is not nil.
func (_u *UploadRegistryUpdateOne) SetNillableOrigenCarga(v *string) *UploadRegistryUpdateOne {
	if v != nil {
		_u.SetOrigenCarga(*v)
	}
	return _u
}

// SetIntentos sets the "intentos" field.
func (_u *UploadRegistryUpdateOne) SetIntentos(v int) *UploadRegistryUpdateOne {
	_u.mutation.ResetIntentos()
	_u.mutation.SetIntentos(v)
	return _u
}

// SetNillableIntentos sets the "intentos" field if the given value is not nil.
func (_u *UploadRegistryUpdateOne) SetNillableIntentos(v *int) *UploadRegistryUpdateOne {
	if v != nil {
		_u.SetIntentos(*v)
	}
	return _u
}

// AddIntentos adds value to the "intentos" field.
func (_u *UploadRegistryUpdateOne) AddIntentos(v int) *UploadRegistryUpdateOne {
	_u.mutation.AddIntentos(v)
	return _u
}

// SetMetadatos sets the "metadatos" field.
func (_u *UploadRegistryUpdateOne) SetMetadatos(v map[string]string) *UploadRegistryUpdateOne {
	_u.mutation.SetMetadatos(v)
	return _u
}

// ClearMetadatos clears the value of the "metadatos" field.
func (_u *UploadRegistryUpdateOne) ClearMetadatos() *UploadRegistryUpdateOne {
	_u.mutation.ClearMetadatos()
	return _u
}

// SetSincronizadoBd sets the "sincronizado_bd" field.
func (_u *UploadRegistryUpdateOne) SetSincronizadoBd(v bool) *UploadRegistryUpdateOne {
	_u.mutation.SetSincronizadoBd(v)
	return _u
}

// SetNillableSincronizadoBd sets the "sincronizado_bd" field if the given value is not nil.
func (_u *UploadRegistryUpdateOne) SetNillableSincronizadoBd(v *bool) *UploadRegistryUpdateOne {
	if v != nil {
		_u.SetSincronizadoBd(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *UploadRegistryUpdateOne) SetUpdatedAt(v time.Time) *UploadRegistryUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the UploadRegistryMutation object of the builder.
func (_u *UploadRegistryUpdateOne) Mutation() *UploadRegistryMutation {
	return _u.mutation
}

// Where appends a list predicates to the UploadRegistryUpdate builder.
func (_u *UploadRegistryUpdateOne) Where(ps ...predicate.UploadRegistry) *UploadRegistryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UploadRegistryUpdateOne) Select(field string, fields ...string) *UploadRegistryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated UploadRegistry entity.
func (_u *UploadRegistryUpdateOne) Save(ctx context.Context) (*UploadRegistry, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UploadRegistryUpdateOne) SaveX(ctx context.Context) *UploadRegistry {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UploadRegistryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UploadRegistryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UploadRegistryUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := uploadregistry.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UploadRegistryUpdateOne) check() error {
	if v, ok := _u.mutation.NombreArchivo(); ok {
		if err := uploadregistry.NombreArchivoValidator(v); err != nil {
			return &ValidationError{Name: "nombre_archivo", err: fmt.Errorf(`ent: validator failed for field "UploadRegistry.nombre_archivo": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ClaveS3(); ok {
		if err := uploadregistry.ClaveS3Validator(v); err != nil {
			return &ValidationError{Name: "clave_s3", err: fmt.Errorf(`ent: validator failed for field "UploadRegistry.clave_s3": %w`, err)}
		}
	}
	if v, ok := _u.mutation.HashArchivo(); ok {
		if err := uploadregistry.HashArchivoValidator(v); err != nil {
			return &ValidationError{Name: "hash_archivo", err: fmt.Errorf(`ent: validator failed for field "UploadRegistry.hash_archivo": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Empresa(); ok {
		if err := uploadregistry.EmpresaValidator(v); err != nil {
			return &ValidationError{Name: "empresa", err: fmt.Errorf(`ent: validator failed for field "UploadRegistry.empresa": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EstadoCarga(); ok {
		if err := uploadregistry.EstadoCargaValidator(v); err != nil {
			return &ValidationError{Name: "estado_carga", err: fmt.Errorf(`ent: validator failed for field "UploadRegistry.estado_carga": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OrigenCarga(); ok {
		if err := uploadregistry.OrigenCargaValidator(v); err != nil {
			return &ValidationError{Name: "origen_carga", err: fmt.Errorf(`ent: validator failed for field "UploadRegistry.origen_carga": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Intentos(); ok {
		if err := uploadregistry.IntentosValidator(v); err != nil {
			return &ValidationError{Name: "intentos", err: fmt.Errorf(`ent: validator failed for field "UploadRegistry.intentos": %w`, err)}
		}
	}
	return nil
}

func (_u *UploadRegistryUpdateOne) sqlSave(ctx context.Context) (_node *UploadRegistry, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(uploadregistry.Table, uploadregistry.Columns, sqlgraph.NewFieldSpec(uploadregistry.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "UploadRegistry.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, uploadregistry.FieldID)
		for _, f := range fields {
			if !uploadregistry.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != uploadregistry.FieldID {
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
	if value, ok := _u.mutation.NombreArchivo(); ok {
		_spec.SetField(uploadregistry.FieldNombreArchivo, field.TypeString, value)
	}
	if value, ok := _u.mutation.ClaveS3(); ok {
		_spec.SetField(uploadregistry.FieldClaveS3, field.TypeString, value)
	}
	if value, ok := _u.mutation.HashArchivo(); ok {
		_spec.SetField(uploadregistry.FieldHashArchivo, field.TypeString, value)
	}
	if value, ok := _u.mutation.Empresa(); ok {
		_spec.SetField(uploadregistry.FieldEmpresa, field.TypeString, value)
	}
	if value, ok := _u.mutation.NumeroReclamoSgc(); ok {
		_spec.SetField(uploadregistry.FieldNumeroReclamoSgc, field.TypeString, value)
	}
	if _u.mutation.NumeroReclamoSgcCleared() {
		_spec.ClearField(uploadregistry.FieldNumeroReclamoSgc, field.TypeString)
	}
	if value, ok := _u.mutation.EstadoCarga(); ok {
		_spec.SetField(uploadregistry.FieldEstadoCarga, field.TypeString, value)
	}
	if value, ok := _u.mutation.OrigenCarga(); ok {
		_spec.SetField(uploadregistry.FieldOrigenCarga, field.TypeString, value)
	}
	if value, ok := _u.mutation.Intentos(); ok {
		_spec.SetField(uploadregistry.FieldIntentos, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIntentos(); ok {
		_spec.AddField(uploadregistry.FieldIntentos, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Metadatos(); ok {
		_spec.SetField(uploadregistry.FieldMetadatos, field.TypeJSON, value)
	}
	if _u.mutation.MetadatosCleared() {
		_spec.ClearField(uploadregistry.FieldMetadatos, field.TypeJSON)
	}
	if value, ok := _u.mutation.SincronizadoBd(); ok {
		_spec.SetField(uploadregistry.FieldSincronizadoBd, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(uploadregistry.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &UploadRegistry{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{uploadregistry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
