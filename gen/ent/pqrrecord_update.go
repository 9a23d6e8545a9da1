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
	"github.com/dfgiraldo/pqr-pipeline/gen/ent/pqrrecord"
	"github.com/dfgiraldo/pqr-pipeline/gen/ent/predicate"
)

// PQRRecordUpdate is the builder for updating PQRRecord entities.
type PQRRecordUpdate struct {
	config
	hooks    []Hook
	mutation *PQRRecordMutation
}

// Where appends a list predicates to the PQRRecordUpdate builder.
func (_u *PQRRecordUpdate) Where(ps ...predicate.PQRRecord) *PQRRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEmpresa sets the "empresa" field.
func (_u *PQRRecordUpdate) SetEmpresa(v string) *PQRRecordUpdate {
	_u.mutation.SetEmpresa(v)
	return _u
}

// SetNillableEmpresa sets the "empresa" field if the given value is not nil.
func (_u *PQRRecordUpdate) SetNillableEmpresa(v *string) *PQRRecordUpdate {
	if v != nil {
		_u.SetEmpresa(*v)
	}
	return _u
}

// SetNumeroRadicado sets the "numero_radicado" field.
func (_u *PQRRecordUpdate) SetNumeroRadicado(v string) *PQRRecordUpdate {
	_u.mutation.SetNumeroRadicado(v)
	return _u
}

// SetNillableNumeroRadicado sets the "numero_radicado" field if the given value is not nil.
func (_u *PQRRecordUpdate) SetNillableNumeroRadicado(v *string) *PQRRecordUpdate {
	if v != nil {
		_u.SetNumeroRadicado(*v)
	}
	return _u
}

// SetFecha sets the "fecha" field.
func (_u *PQRRecordUpdate) SetFecha(v string) *PQRRecordUpdate {
	_u.mutation.SetFecha(v)
	return _u
}

// SetNillableFecha sets the "fecha" field if the given value is not nil.
func (_u *PQRRecordUpdate) SetNillableFecha(v *string) *PQRRecordUpdate {
	if v != nil {
		_u.SetFecha(*v)
	}
	return _u
}

// SetTipoPqr sets the "tipo_pqr" field.
func (_u *PQRRecordUpdate) SetTipoPqr(v string) *PQRRecordUpdate {
	_u.mutation.SetTipoPqr(v)
	return _u
}

// SetNillableTipoPqr sets the "tipo_pqr" field if the given value is not nil.
func (_u *PQRRecordUpdate) SetNillableTipoPqr(v *string) *PQRRecordUpdate {
	if v != nil {
		_u.SetTipoPqr(*v)
	}
	return _u
}

// ClearTipoPqr clears the value of the "tipo_pqr" field.
func (_u *PQRRecordUpdate) ClearTipoPqr() *PQRRecordUpdate {
	_u.mutation.ClearTipoPqr()
	return _u
}

// SetNic sets the "nic" field.
func (_u *PQRRecordUpdate) SetNic(v string) *PQRRecordUpdate {
	_u.mutation.SetNic(v)
	return _u
}

// SetNillableNic sets the "nic" field if the given value is not nil.
func (_u *PQRRecordUpdate) SetNillableNic(v *string) *PQRRecordUpdate {
	if v != nil {
		_u.SetNic(*v)
	}
	return _u
}

// ClearNic clears the value of the "nic" field.
func (_u *PQRRecordUpdate) ClearNic() *PQRRecordUpdate {
	_u.mutation.ClearNic()
	return _u
}

// SetDocumentoIdentidad sets the "documento_identidad" field.
func (_u *PQRRecordUpdate) SetDocumentoIdentidad(v string) *PQRRecordUpdate {
	_u.mutation.SetDocumentoIdentidad(v)
	return _u
}

// SetNillableDocumentoIdentidad sets the "documento_identidad" field if the given value is not nil.
func (_u *PQRRecordUpdate) SetNillableDocumentoIdentidad(v *string) *PQRRecordUpdate {
	if v != nil {
		_u.SetDocumentoIdentidad(*v)
	}
	return _u
}

// ClearDocumentoIdentidad clears the value of the "documento_identidad" field.
func (_u *PQRRecordUpdate) ClearDocumentoIdentidad() *PQRRecordUpdate {
	_u.mutation.ClearDocumentoIdentidad()
	return _u
}

// SetNombresApellidos sets the "nombres_apellidos" field.
func (_u *PQRRecordUpdate) SetNombresApellidos(v string) *PQRRecordUpdate {
	_u.mutation.SetNombresApellidos(v)
	return _u
}

// SetNillableNombresApellidos sets the "nombres_apellidos" field if the given value is not nil.
func (_u *PQRRecordUpdate) SetNillableNombresApellidos(v *string) *PQRRecordUpdate {
	if v != nil {
		_u.SetNombresApellidos(*v)
	}
	return _u
}

// ClearNombresApellidos clears the value of the "nombres_apellidos" field.
func (_u *PQRRecordUpdate) ClearNombresApellidos() *PQRRecordUpdate {
	_u.mutation.ClearNombresApellidos()
	return _u
}

// SetTelefono sets the "telefono" field.
func (_u *PQRRecordUpdate) SetTelefono(v string) *PQRRecordUpdate {
	_u.mutation.SetTelefono(v)
	return _u
}

// SetNillableTelefono sets the "telefono" field if the given value is not nil.
func (_u *PQRRecordUpdate) SetNillableTelefono(v *string) *PQRRecordUpdate {
	if v != nil {
		_u.SetTelefono(*v)
	}
	return _u
}

// ClearTelefono clears the value of the "telefono" field.
func (_u *PQRRecordUpdate) ClearTelefono() *PQRRecordUpdate {
	_u.mutation.ClearTelefono()
	return _u
}

// SetCelular sets the "celular" field.
func (_u *PQRRecordUpdate) SetCelular(v string) *PQRRecordUpdate {
	_u.mutation.SetCelular(v)
	return _u
}

// SetNillableCelular sets the "celular" field if the given value is not nil.
func (_u *PQRRecordUpdate) SetNillableCelular(v *string) *PQRRecordUpdate {
	if v != nil {
		_u.SetCelular(*v)
	}
	return _u
}

// ClearCelular clears the value of the "celular" field.
func (_u *PQRRecordUpdate) ClearCelular() *PQRRecordUpdate {
	_u.mutation.ClearCelular()
	return _u
}

// SetCorreoElectronico sets the "correo_electronico" field.
func (_u *PQRRecordUpdate) SetCorreoElectronico(v string) *PQRRecordUpdate {
	_u.mutation.SetCorreoElectronico(v)
	return _u
}

// SetNillableCorreoElectronico sets the "correo_electronico" field if the given value is not nil.
func (_u *PQRRecordUpdate) SetNillableCorreoElectronico(v *string) *PQRRecordUpdate {
	if v != nil {
		_u.SetCorreoElectronico(*v)
	}
	return _u
}

// ClearCorreoElectronico clears the value of the "correo_electronico" field.
func (_u *PQRRecordUpdate) ClearCorreoElectronico() *PQRRecordUpdate {
	_u.mutation.ClearCorreoElectronico()
	return _u
}

// SetCanalRespuesta sets the "canal_respuesta" field.
func (_u *PQRRecordUpdate) SetCanalRespuesta(v string) *PQRRecordUpdate {
	_u.mutation.SetCanalRespuesta(v)
	return _u
}

// SetNillableCanalRespuesta sets the "canal_respuesta" field if the given value is not nil.
func (_u *PQRRecordUpdate) SetNillableCanalRespuesta(v *string) *PQRRecordUpdate {
	if v != nil {
		_u.SetCanalRespuesta(*v)
	}
	return _u
}

// ClearCanalRespuesta clears the value of the "canal_respuesta" field.
func (_u *PQRRecordUpdate) ClearCanalRespuesta() *PQRRecordUpdate {
	_u.mutation.ClearCanalRespuesta()
	return _u
}

// SetEstadoSolicitud sets the "estado_solicitud" field.
func (_u *PQRRecordUpdate) SetEstadoSolicitud(v string) *PQRRecordUpdate {
	_u.mutation.SetEstadoSolicitud(v)
	return _u
}

// SetNillableEstadoSolicitud sets the "estado_solicitud" field if the given value is not nil.
func (_u *PQRRecordUpdate) SetNillableEstadoSolicitud(v *string) *PQRRecordUpdate {
	if v != nil {
		_u.SetEstadoSolicitud(*v)
	}
	return _u
}

// SetNumeroReclamoSgc sets the "numero_reclamo_sgc" field.
func (_u *PQRRecordUpdate) SetNumeroReclamoSgc(v string) *PQRRecordUpdate {
	_u.mutation.SetNumeroReclamoSgc(v)
	return _u
}

// SetNillableNumeroReclamoSgc sets the "numero_reclamo_sgc" field if the given value is not nil.
func (_u *PQRRecordUpdate) SetNillableNumeroReclamoSgc(v *string) *PQRRecordUpdate {
	if v != nil {
		_u.SetNumeroReclamoSgc(*v)
	}
	return _u
}

// ClearNumeroReclamoSgc clears the value of the "numero_reclamo_sgc" field.
func (_u *PQRRecordUpdate) ClearNumeroReclamoSgc() *PQRRecordUpdate {
	_u.mutation.ClearNumeroReclamoSgc()
	return _u
}

// SetHashRegistro sets the "hash_registro" field.
func (_u *PQRRecordUpdate) SetHashRegistro(v string) *PQRRecordUpdate {
	_u.mutation.SetHashRegistro(v)
	return _u
}

// SetNillableHashRegistro sets the "hash_registro" field if the given value is not nil.
func (_u *PQRRecordUpdate) SetNillableHashRegistro(v *string) *PQRRecordUpdate {
	if v != nil {
		_u.SetHashRegistro(*v)
	}
	return _u
}

// SetArchivoOrigen sets the "archivo_origen" field.
func (_u *PQRRecordUpdate) SetArchivoOrigen(v string) *PQRRecordUpdate {
	_u.mutation.SetArchivoOrigen(v)
	return _u
}

// SetNillableArchivoOrigen sets the "archivo_origen" field if the given value is not nil.
func (_u *PQRRecordUpdate) SetNillableArchivoOrigen(v *string) *PQRRecordUpdate {
	if v != nil {
		_u.SetArchivoOrigen(*v)
	}
	return _u
}

// ClearArchivoOrigen clears the value of the "archivo_origen" field.
func (_u *PQRRecordUpdate) ClearArchivoOrigen() *PQRRecordUpdate {
	_u.mutation.ClearArchivoOrigen()
	return _u
}

// SetFechaProcesamiento sets the "fecha_procesamiento" field.
func (_u *PQRRecordUpdate) SetFechaProcesamiento(v time.Time) *PQRRecordUpdate {
	_u.mutation.SetFechaProcesamiento(v)
	return _u
}

// SetNillableFechaProcesamiento sets the "fecha_procesamiento" field if the given value is not nil.
func (_u *PQRRecordUpdate) SetNillableFechaProcesamiento(v *time.Time) *PQRRecordUpdate {
	if v != nil {
		_u.SetFechaProcesamiento(*v)
	}
	return _u
}

// Mutation returns the PQRRecordMutation object of the builder.
func (_u *PQRRecordUpdate) Mutation() *PQRRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PQRRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PQRRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PQRRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PQRRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PQRRecordUpdate) check() error {
	if v, ok := _u.mutation.Empresa(); ok {
		if err := pqrrecord.EmpresaValidator(v); err != nil {
			return &ValidationError{Name: "empresa", err: fmt.Errorf(`ent: validator failed for field "PQRRecord.empresa": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NumeroRadicado(); ok {
		if err := pqrrecord.NumeroRadicadoValidator(v); err != nil {
			return &ValidationError{Name: "numero_radicado", err: fmt.Errorf(`ent: validator failed for field "PQRRecord.numero_radicado": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Fecha(); ok {
		if err := pqrrecord.FechaValidator(v); err != nil {
			return &ValidationError{Name: "fecha", err: fmt.Errorf(`ent: validator failed for field "PQRRecord.fecha": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EstadoSolicitud(); ok {
		if err := pqrrecord.EstadoSolicitudValidator(v); err != nil {
			return &ValidationError{Name: "estado_solicitud", err: fmt.Errorf(`ent: validator failed for field "PQRRecord.estado_solicitud": %w`, err)}
		}
	}
	if v, ok := _u.mutation.HashRegistro(); ok {
		if err := pqrrecord.HashRegistroValidator(v); err != nil {
			return &ValidationError{Name: "hash_registro", err: fmt.Errorf(`ent: validator failed for field "PQRRecord.hash_registro": %w`, err)}
		}
	}
	return nil
}

func (_u *PQRRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pqrrecord.Table, pqrrecord.Columns, sqlgraph.NewFieldSpec(pqrrecord.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Empresa(); ok {
		_spec.SetField(pqrrecord.FieldEmpresa, field.TypeString, value)
	}
	if value, ok := _u.mutation.NumeroRadicado(); ok {
		_spec.SetField(pqrrecord.FieldNumeroRadicado, field.TypeString, value)
	}
	if value, ok := _u.mutation.Fecha(); ok {
		_spec.SetField(pqrrecord.FieldFecha, field.TypeString, value)
	}
	if value, ok := _u.mutation.TipoPqr(); ok {
		_spec.SetField(pqrrecord.FieldTipoPqr, field.TypeString, value)
	}
	if _u.mutation.TipoPqrCleared() {
		_spec.ClearField(pqrrecord.FieldTipoPqr, field.TypeString)
	}
	if value, ok := _u.mutation.Nic(); ok {
		_spec.SetField(pqrrecord.FieldNic, field.TypeString, value)
	}
	if _u.mutation.NicCleared() {
		_spec.ClearField(pqrrecord.FieldNic, field.TypeString)
	}
	if value, ok := _u.mutation.DocumentoIdentidad(); ok {
		_spec.SetField(pqrrecord.FieldDocumentoIdentidad, field.TypeString, value)
	}
	if _u.mutation.DocumentoIdentidadCleared() {
		_spec.ClearField(pqrrecord.FieldDocumentoIdentidad, field.TypeString)
	}
	if value, ok := _u.mutation.NombresApellidos(); ok {
		_spec.SetField(pqrrecord.FieldNombresApellidos, field.TypeString, value)
	}
	if _u.mutation.NombresApellidosCleared() {
		_spec.ClearField(pqrrecord.FieldNombresApellidos, field.TypeString)
	}
	if value, ok := _u.mutation.Telefono(); ok {
		_spec.SetField(pqrrecord.FieldTelefono, field.TypeString, value)
	}
	if _u.mutation.TelefonoCleared() {
		_spec.ClearField(pqrrecord.FieldTelefono, field.TypeString)
	}
	if value, ok := _u.mutation.Celular(); ok {
		_spec.SetField(pqrrecord.FieldCelular, field.TypeString, value)
	}
	if _u.mutation.CelularCleared() {
		_spec.ClearField(pqrrecord.FieldCelular, field.TypeString)
	}
	if value, ok := _u.mutation.CorreoElectronico(); ok {
		_spec.SetField(pqrrecord.FieldCorreoElectronico, field.TypeString, value)
	}
	if _u.mutation.CorreoElectronicoCleared() {
		_spec.ClearField(pqrrecord.FieldCorreoElectronico, field.TypeString)
	}
	if value, ok := _u.mutation.CanalRespuesta(); ok {
		_spec.SetField(pqrrecord.FieldCanalRespuesta, field.TypeString, value)
	}
	if _u.mutation.CanalRespuestaCleared() {
		_spec.ClearField(pqrrecord.FieldCanalRespuesta, field.TypeString)
	}
	if value, ok := _u.mutation.EstadoSolicitud(); ok {
		_spec.SetField(pqrrecord.FieldEstadoSolicitud, field.TypeString, value)
	}
	if value, ok := _u.mutation.NumeroReclamoSgc(); ok {
		_spec.SetField(pqrrecord.FieldNumeroReclamoSgc, field.TypeString, value)
	}
	if _u.mutation.NumeroReclamoSgcCleared() {
		_spec.ClearField(pqrrecord.FieldNumeroReclamoSgc, field.TypeString)
	}
	if value, ok := _u.mutation.HashRegistro(); ok {
		_spec.SetField(pqrrecord.FieldHashRegistro, field.TypeString, value)
	}
	if value, ok := _u.mutation.ArchivoOrigen(); ok {
		_spec.SetField(pqrrecord.FieldArchivoOrigen, field.TypeString, value)
	}
	if _u.mutation.ArchivoOrigenCleared() {
		_spec.ClearField(pqrrecord.FieldArchivoOrigen, field.TypeString)
	}
	if value, ok := _u.mutation.FechaProcesamiento(); ok {
		_spec.SetField(pqrrecord.FieldFechaProcesamiento, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pqrrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PQRRecordUpdateOne is the builder for updating a single PQRRecord entity.
type PQRRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PQRRecordMutation
}

// SetEmpresa sets the "empresa" field.
func (_u *PQRRecordUpdateOne) SetEmpresa(v string) *PQRRecordUpdateOne {
	_u.mutation.SetEmpresa(v)
	return _u
}

// SetNillableEmpresa sets the "empresa" field if the given value is not nil.
func (_u *PQRRecordUpdateOne) SetNillableEmpresa(v *string) *PQRRecordUpdateOne {
	if v != nil {
		_u.SetEmpresa(*v)
	}
	return _u
}

// SetNumeroRadicado sets the "numero_radicado" field.
func (_u *PQRRecordUpdateOne) SetNumeroRadicado(v string) *PQRRecordUpdateOne {
	_u.mutation.SetNumeroRadicado(v)
	return _u
}

// SetNillableNumeroRadicado sets the "numero_radicado" field if the given value is not nil.
func (_u *PQRRecordUpdateOne) SetNillableNumeroRadicado(v *string) *PQRRecordUpdateOne {
	if v != nil {
		_u.SetNumeroRadicado(*v)
	}
	return _u
}

// SetFecha sets the "fecha" field.
func (_u *PQRRecordUpdateOne) SetFecha(v string) *PQRRecordUpdateOne {
	_u.mutation.SetFecha(v)
	return _u
}

// SetNillableFecha sets the "fecha" field if the given value is not nil.
func (_u *PQRRecordUpdateOne) SetNillableFecha(v *string) *PQRRecordUpdateOne {
	if v != nil {
		_u.SetFecha(*v)
	}
	return _u
}

// SetTipoPqr sets the "tipo_pqr" field.
func (_u *PQRRecordUpdateOne) SetTipoPqr(v string) *PQRRecordUpdateOne {
	_u.mutation.SetTipoPqr(v)
	return _u
}

// SetNillableTipoPqr sets the "tipo_pqr" field if the given value is not nil.
func (_u *PQRRecordUpdateOne) SetNillableTipoPqr(v *string) *PQRRecordUpdateOne {
	if v != nil {
		_u.SetTipoPqr(*v)
	}
	return _u
}

// ClearTipoPqr clears the value of the "tipo_pqr" field.
func (_u *PQRRecordUpdateOne) ClearTipoPqr() *PQRRecordUpdateOne {
	_u.mutation.ClearTipoPqr()
	return _u
}

// SetNic sets the "nic" field.
func (_u *PQRRecordUpdateOne) SetNic(v string) *PQRRecordUpdateOne {
	_u.mutation.SetNic(v)
	return _u
}

// SetNillableNic sets the "nic" field if the given value is not nil.
func (_u *PQRRecordUpdateOne) SetNillableNic(v *string) *PQRRecordUpdateOne {
	if v != nil {
		_u.SetNic(*v)
	}
	return _u
}

// ClearNic clears the value of the "nic" field.
func (_u *PQRRecordUpdateOne) ClearNic() *PQRRecordUpdateOne {
	_u.mutation.ClearNic()
	return _u
}

// SetDocumentoIdentidad sets the "documento_identidad" field.
func (_u *PQRRecordUpdateOne) SetDocumentoIdentidad(v string) *PQRRecordUpdateOne {
	_u.mutation.SetDocumentoIdentidad(v)
	return _u
}

// SetNillableDocumentoIdentidad sets the "documento_identidad" field if the given value is not nil.
func (_u *PQRRecordUpdateOne) SetNillableDocumentoIdentidad(v *string) *PQRRecordUpdateOne {
	if v != nil {
		_u.SetDocumentoIdentidad(*v)
	}
	return _u
}

// ClearDocumentoIdentidad clears the value of the "documento_identidad" field.
func (_u *PQRRecordUpdateOne) ClearDocumentoIdentidad() *PQRRecordUpdateOne {
	_u.mutation.ClearDocumentoIdentidad()
	return _u
}

// SetNombresApellidos sets the "nombres_apellidos" field.
func (_u *PQRRecordUpdateOne) SetNombresApellidos(v string) *PQRRecordUpdateOne {
	_u.mutation.SetNombresApellidos(v)
	return _u
}

// SetNillableNombresApellidos sets the "nombres_apellidos" field if the given value is not nil.
func (_u *PQRRecordUpdateOne) SetNillableNombresApellidos(v *string) *PQRRecordUpdateOne {
	if v != nil {
		_u.SetNombresApellidos(*v)
	}
	return _u
}

// ClearNombresApellidos clears the value of the "nombres_apellidos" field.
func (_u *PQRRecordUpdateOne) ClearNombresApellidos() *PQRRecordUpdateOne {
	_u.mutation.ClearNombresApellidos()
	return _u
}

// SetTelefono sets the "telefono" field.
func (_u *PQRRecordUpdateOne) SetTelefono(v string) *PQRRecordUpdateOne {
	_u.mutation.SetTelefono(v)
	return _u
}

// SetNillableTelefono sets the "telefono" field if the given value is not nil.
func (_u *PQRRecordUpdateOne) SetNillableTelefono(v *string) *PQRRecordUpdateOne {
	if v != nil {
		_u.SetTelefono(*v)
	}
	return _u
}

// ClearTelefono clears the value of the "telefono" field.
func (_u *PQRRecordUpdateOne) ClearTelefono() *PQRRecordUpdateOne {
	_u.mutation.ClearTelefono()
	return _u
}

// SetCelular sets the "celular" field.
func (_u *PQRRecordUpdateOne) SetCelular(v string) *PQRRecordUpdateOne {
	_u.mutation.SetCelular(v)
	return _u
}

// SetNillableCelular sets the "celular" field if the given value is not nil.
func (_u *PQRRecordUpdateOne) SetNillableCelular(v *string) *PQRRecordUpdateOne {
	if v != nil {
		_u.SetCelular(*v)
	}
	return _u
}

// ClearCelular clears the value of the "celular" field.
func (_u *PQRRecordUpdateOne) ClearCelular() *PQRRecordUpdateOne {
	_u.mutation.ClearCelular()
	return _u
}

// SetCorreoElectronico sets the "correo_electronico" field.
func (_u *PQRRecordUpdateOne) SetCorreoElectronico(v string) *PQRRecordUpdateOne {
	_u.mutation.SetCorreoElectronico(v)
	return _u
}

// SetNillableCorreoElectronico sets the "correo_electronico" field if the given value is not nil.
func (_u *PQRRecordUpdateOne) SetNillableCorreoElectronico(v *string) *PQRRecordUpdateOne {
	if v != nil {
		_u.SetCorreoElectronico(*v)
	}
	return _u
}

// ClearCorreoElectronico clears the value of the "correo_electronico" field.
func (_u *PQRRecordUpdateOne) ClearCorreoElectronico() *PQRRecordUpdateOne {
	_u.mutation.ClearCorreoElectronico()
	return _u
}

// SetCanalRespuesta sets the "canal_respuesta" field.
func (_u *PQRRecordUpdateOne) SetCanalRespuesta(v string) *PQRRecordUpdateOne {
	_u.mutation.SetCanalRespuesta(v)
	return _u
}

// SetNillableCanalRespuesta sets the "canal_respuesta" field if the given value is not nil.
func (_u *PQRRecordUpdateOne) SetNillableCanalRespuesta(v *string) *PQRRecordUpdateOne {
	if v != nil {
		_u.SetCanalRespuesta(*v)
	}
	return _u
}

// ClearCanalRespuesta clears the value of the "canal_respuesta" field.
func (_u *PQRRecordUpdateOne) ClearCanalRespuesta() *PQRRecordUpdateOne {
	_u.mutation.ClearCanalRespuesta()
	return _u
}

// SetEstadoSolicitud sets the "estado_solicitud" field.
func (_u *PQRRecordUpdateOne) SetEstadoSolicitud(v string) *PQRRecordUpdateOne {
	_u.mutation.SetEstadoSolicitud(v)
	return _u
}

// SetNillableEstadoSolicitud sets the "estado_solicitud" field if the given value is not nil.
func (_u *PQRRecordUpdateOne) SetNillableEstadoSolicitud(v *string) *PQRRecordUpdateOne {
	if v != nil {
		_u.SetEstadoSolicitud(*v)
	}
	return _u
}

// SetNumeroReclamoSgc sets the "numero_reclamo_sgc" field.
func (_u *PQRRecordUpdateOne) SetNumeroReclamoSgc(v string) *PQRRecordUpdateOne {
	_u.mutation.SetNumeroReclamoSgc(v)
	return _u
}

// SetNillableNumeroReclamoSgc sets the "numero_reclamo_sgc" field if the given value is not nil.
func (_u *PQRRecordUpdateOne) SetNillableNumeroReclamoSgc(v *string) *PQRRecordUpdateOne {
	if v != nil {
		_u.SetNumeroReclamoSgc(*v)
	}
	return _u
}

// ClearNumeroReclamoSgc clears the value of the "numero_reclamo_sgc" field.
func (_u *PQRRecordUpdateOne) ClearNumeroReclamoSgc() *PQRRecordUpdateOne {
	_u.mutation.ClearNumeroReclamoSgc()
	return _u
}

// SetHashRegistro sets the "hash_registro" field.
func (_u *PQRRecordUpdateOne) SetHashRegistro(v string) *PQRRecordUpdateOne {
	_u.mutation.SetHashRegistro(v)
	return _u
}

// SetNillableHashRegistro sets the "hash_registro" field if the given value is not nil.
func (_u *PQRRecordUpdateOne) SetNillableHashRegistro(v *string) *PQRRecordUpdateOne {
	if v != nil {
		_u.SetHashRegistro(*v)
	}
	return _u
}

// SetArchivoOrigen sets the "archivo_origen" field.
func (_u *PQRRecordUpdateOne) SetArchivoOrigen(v string) *PQRRecordUpdateOne {
	_u.mutation.SetArchivoOrigen(v)
	return _u
}

// SetNillableArchivoOrigen sets the "archivo_origen" field if the given value is not nil.
func (_u *PQRRecordUpdateOne) SetNillableArchivoOrigen(v *string) *PQRRecordUpdateOne {
	if v != nil {
		_u.SetArchivoOrigen(*v)
	}
	return _u
}

// ClearArchivoOrigen clears the value of the "archivo_origen" field.
func (_u *PQRRecordUpdateOne) ClearArchivoOrigen() *PQRRecordUpdateOne {
	_u.mutation.ClearArchivoOrigen()
	return _u
}

// SetFechaProcesamiento sets the "fecha_procesamiento" field.
func (_u *PQRRecordUpdateOne) SetFechaProcesamiento(v time.Time) *PQRRecordUpdateOne {
	_u.mutation.SetFechaProcesamiento(v)
	return _u
}

// SetNillableFechaProcesamiento sets the "fecha_procesamiento" field if the given value is not nil.
func (_u *PQRRecordUpdateOne) SetNillableFechaProcesamiento(v *time.Time) *PQRRecordUpdateOne {
	if v != nil {
		_u.SetFechaProcesamiento(*v)
	}
	return _u
}

// Mutation returns the PQRRecordMutation object of the builder.
func (_u *PQRRecordUpdateOne) Mutation() *PQRRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the PQRRecordUpdate builder.
func (_u *PQRRecordUpdateOne) Where(ps ...predicate.PQRRecord) *PQRRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PQRRecordUpdateOne) Select(field string, fields ...string) *PQRRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PQRRecord entity.
func (_u *PQRRecordUpdateOne) Save(ctx context.Context) (*PQRRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PQRRecordUpdateOne) SaveX(ctx context.Context) *PQRRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PQRRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PQRRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PQRRecordUpdateOne) check() error {
	if v, ok := _u.mutation.Empresa(); ok {
		if err := pqrrecord.EmpresaValidator(v); err != nil {
			return &ValidationError{Name: "empresa", err: fmt.Errorf(`ent: validator failed for field "PQRRecord.empresa": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NumeroRadicado(); ok {
		if err := pqrrecord.NumeroRadicadoValidator(v); err != nil {
			return &ValidationError{Name: "numero_radicado", err: fmt.Errorf(`ent: validator failed for field "PQRRecord.numero_radicado": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Fecha(); ok {
		if err := pqrrecord.FechaValidator(v); err != nil {
			return &ValidationError{Name: "fecha", err: fmt.Errorf(`ent: validator failed for field "PQRRecord.fecha": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EstadoSolicitud(); ok {
		if err := pqrrecord.EstadoSolicitudValidator(v); err != nil {
			return &ValidationError{Name: "estado_solicitud", err: fmt.Errorf(`ent: validator failed for field "PQRRecord.estado_solicitud": %w`, err)}
		}
	}
	if v, ok := _u.mutation.HashRegistro(); ok {
		if err := pqrrecord.HashRegistroValidator(v); err != nil {
			return &ValidationError{Name: "hash_registro", err: fmt.Errorf(`ent: validator failed for field "PQRRecord.hash_registro": %w`, err)}
		}
	}
	return nil
}

func (_u *PQRRecordUpdateOne) sqlSave(ctx context.Context) (_node *PQRRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pqrrecord.Table, pqrrecord.Columns, sqlgraph.NewFieldSpec(pqrrecord.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PQRRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, pqrrecord.FieldID)
		for _, f := range fields {
			if !pqrrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != pqrrecord.FieldID {
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
		_spec.SetField(pqrrecord.FieldEmpresa, field.TypeString, value)
	}
	if value, ok := _u.mutation.NumeroRadicado(); ok {
		_spec.SetField(pqrrecord.FieldNumeroRadicado, field.TypeString, value)
	}
	if value, ok := _u.mutation.Fecha(); ok {
		_spec.SetField(pqrrecord.FieldFecha, field.TypeString, value)
	}
	if value, ok := _u.mutation.TipoPqr(); ok {
		_spec.SetField(pqrrecord.FieldTipoPqr, field.TypeString, value)
	}
	if _u.mutation.TipoPqrCleared() {
		_spec.ClearField(pqrrecord.FieldTipoPqr, field.TypeString)
	}
	if value, ok := _u.mutation.Nic(); ok {
		_spec.SetField(pqrrecord.FieldNic, field.TypeString, value)
	}
	if _u.mutation.NicCleared() {
		_spec.ClearField(pqrrecord.FieldNic, field.TypeString)
	}
	if value, ok := _u.mutation.DocumentoIdentidad(); ok {
		_spec.SetField(pqrrecord.FieldDocumentoIdentidad, field.TypeString, value)
	}
	if _u.mutation.DocumentoIdentidadCleared() {
		_spec.ClearField(pqrrecord.FieldDocumentoIdentidad, field.TypeString)
	}
	if value, ok := _u.mutation.NombresApellidos(); ok {
		_spec.SetField(pqrrecord.FieldNombresApellidos, field.TypeString, value)
	}
	if _u.mutation.NombresApellidosCleared() {
		_spec.ClearField(pqrrecord.FieldNombresApellidos, field.TypeString)
	}
	if value, ok := _u.mutation.Telefono(); ok {
		_spec.SetField(pqrrecord.FieldTelefono, field.TypeString, value)
	}
	if _u.mutation.TelefonoCleared() {
		_spec.ClearField(pqrrecord.FieldTelefono, field.TypeString)
	}
	if value, ok := _u.mutation.Celular(); ok {
		_spec.SetField(pqrrecord.FieldCelular, field.TypeString, value)
	}
	if _u.mutation.CelularCleared() {
		_spec.ClearField(pqrrecord.FieldCelular, field.TypeString)
	}
	if value, ok := _u.mutation.CorreoElectronico(); ok {
		_spec.SetField(pqrrecord.FieldCorreoElectronico, field.TypeString, value)
	}
	if _u.mutation.CorreoElectronicoCleared() {
		_spec.ClearField(pqrrecord.FieldCorreoElectronico, field.TypeString)
	}
	if value, ok := _u.mutation.CanalRespuesta(); ok {
		_spec.SetField(pqrrecord.FieldCanalRespuesta, field.TypeString, value)
	}
	if _u.mutation.CanalRespuestaCleared() {
		_spec.ClearField(pqrrecord.FieldCanalRespuesta, field.TypeString)
	}
	if value, ok := _u.mutation.EstadoSolicitud(); ok {
		_spec.SetField(pqrrecord.FieldEstadoSolicitud, field.TypeString, value)
	}
	if value, ok := _u.mutation.NumeroReclamoSgc(); ok {
		_spec.SetField(pqrrecord.FieldNumeroReclamoSgc, field.TypeString, value)
	}
	if _u.mutation.NumeroReclamoSgcCleared() {
		_spec.ClearField(pqrrecord.FieldNumeroReclamoSgc, field.TypeString)
	}
	if value, ok := _u.mutation.HashRegistro(); ok {
		_spec.SetField(pqrrecord.FieldHashRegistro, field.TypeString, value)
	}
	if value, ok := _u.mutation.ArchivoOrigen(); ok {
		_spec.SetField(pqrrecord.FieldArchivoOrigen, field.TypeString, value)
	}
	if _u.mutation.ArchivoOrigenCleared() {
		_spec.ClearField(pqrrecord.FieldArchivoOrigen, field.TypeString)
	}
	if value, ok := _u.mutation.FechaProcesamiento(); ok {
		_spec.SetField(pqrrecord.FieldFechaProcesamiento, field.TypeTime, value)
	}
	_node = &PQRRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pqrrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
