// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dfgiraldo/pqr-pipeline/gen/ent/pqrrecord"
	"github.com/google/uuid"
)

// PQRRecordCreate is the builder for creating a PQRRecord entity.
type PQRRecordCreate struct {
	config
	mutation *PQRRecordMutation
	hooks    []Hook
}

// SetEmpresa sets the "empresa" field.
func (_c *PQRRecordCreate) SetEmpresa(v string) *PQRRecordCreate {
	_c.mutation.SetEmpresa(v)
	return _c
}

// SetNumeroRadicado sets the "numero_radicado" field.
func (_c *PQRRecordCreate) SetNumeroRadicado(v string) *PQRRecordCreate {
	_c.mutation.SetNumeroRadicado(v)
	return _c
}

// SetFecha sets the "fecha" field.
func (_c *PQRRecordCreate) SetFecha(v string) *PQRRecordCreate {
	_c.mutation.SetFecha(v)
	return _c
}

// SetTipoPqr sets the "tipo_pqr" field.
func (_c *PQRRecordCreate) SetTipoPqr(v string) *PQRRecordCreate {
	_c.mutation.SetTipoPqr(v)
	return _c
}

// SetNillableTipoPqr sets the "tipo_pqr" field if the given value is not nil.
func (_c *PQRRecordCreate) SetNillableTipoPqr(v *string) *PQRRecordCreate {
	if v != nil {
		_c.SetTipoPqr(*v)
	}
	return _c
}

// SetNic sets the "nic" field.
func (_c *PQRRecordCreate) SetNic(v string) *PQRRecordCreate {
	_c.mutation.SetNic(v)
	return _c
}

// SetNillableNic sets the "nic" field if the given value is not nil.
func (_c *PQRRecordCreate) SetNillableNic(v *string) *PQRRecordCreate {
	if v != nil {
		_c.SetNic(*v)
	}
	return _c
}

// SetDocumentoIdentidad sets the "documento_identidad" field.
func (_c *PQRRecordCreate) SetDocumentoIdentidad(v string) *PQRRecordCreate {
	_c.mutation.SetDocumentoIdentidad(v)
	return _c
}

// SetNillableDocumentoIdentidad sets the "documento_identidad" field if the given value is not nil.
func (_c *PQRRecordCreate) SetNillableDocumentoIdentidad(v *string) *PQRRecordCreate {
	if v != nil {
		_c.SetDocumentoIdentidad(*v)
	}
	return _c
}

// SetNombresApellidos sets the "nombres_apellidos" field.
func (_c *PQRRecordCreate) SetNombresApellidos(v string) *PQRRecordCreate {
	_c.mutation.SetNombresApellidos(v)
	return _c
}

// SetNillableNombresApellidos sets the "nombres_apellidos" field if the given value is not nil.
func (_c *PQRRecordCreate) SetNillableNombresApellidos(v *string) *PQRRecordCreate {
	if v != nil {
		_c.SetNombresApellidos(*v)
	}
	return _c
}

// SetTelefono sets the "telefono" field.
func (_c *PQRRecordCreate) SetTelefono(v string) *PQRRecordCreate {
	_c.mutation.SetTelefono(v)
	return _c
}

// SetNillableTelefono sets the "telefono" field if the given value is not nil.
func (_c *PQRRecordCreate) SetNillableTelefono(v *string) *PQRRecordCreate {
	if v != nil {
		_c.SetTelefono(*v)
	}
	return _c
}

// SetCelular sets the "celular" field.
func (_c *PQRRecordCreate) SetCelular(v string) *PQRRecordCreate {
	_c.mutation.SetCelular(v)
	return _c
}

// SetNillableCelular sets the "celular" field if the given value is not nil.
func (_c *PQRRecordCreate) SetNillableCelular(v *string) *PQRRecordCreate {
	if v != nil {
		_c.SetCelular(*v)
	}
	return _c
}

// SetCorreoElectronico sets the "correo_electronico" field.
func (_c *PQRRecordCreate) SetCorreoElectronico(v string) *PQRRecordCreate {
	_c.mutation.SetCorreoElectronico(v)
	return _c
}

// SetNillableCorreoElectronico sets the "correo_electronico" field if the given value is not nil.
func (_c *PQRRecordCreate) SetNillableCorreoElectronico(v *string) *PQRRecordCreate {
	if v != nil {
		_c.SetCorreoElectronico(*v)
	}
	return _c
}

// SetCanalRespuesta sets the "canal_respuesta" field.
func (_c *PQRRecordCreate) SetCanalRespuesta(v string) *PQRRecordCreate {
	_c.mutation.SetCanalRespuesta(v)
	return _c
}

// SetNillableCanalRespuesta sets the "canal_respuesta" field if the given value is not nil.
func (_c *PQRRecordCreate) SetNillableCanalRespuesta(v *string) *PQRRecordCreate {
	if v != nil {
		_c.SetCanalRespuesta(*v)
	}
	return _c
}

// SetEstadoSolicitud sets the "estado_solicitud" field.
func (_c *PQRRecordCreate) SetEstadoSolicitud(v string) *PQRRecordCreate {
	_c.mutation.SetEstadoSolicitud(v)
	return _c
}

// SetNumeroReclamoSgc sets the "numero_reclamo_sgc" field.
func (_c *PQRRecordCreate) SetNumeroReclamoSgc(v string) *PQRRecordCreate {
	_c.mutation.SetNumeroReclamoSgc(v)
	return _c
}

// SetNillableNumeroReclamoSgc sets the "numero_reclamo_sgc" field if the given value is not nil.
func (_c *PQRRecordCreate) SetNillableNumeroReclamoSgc(v *string) *PQRRecordCreate {
	if v != nil {
		_c.SetNumeroReclamoSgc(*v)
	}
	return _c
}

// SetHashRegistro sets the "hash_registro" field.
func (_c *PQRRecordCreate) SetHashRegistro(v string) *PQRRecordCreate {
	_c.mutation.SetHashRegistro(v)
	return _c
}

// SetArchivoOrigen sets the "archivo_origen" field.
func (_c *PQRRecordCreate) SetArchivoOrigen(v string) *PQRRecordCreate {
	_c.mutation.SetArchivoOrigen(v)
	return _c
}

// SetNillableArchivoOrigen sets the "archivo_origen" field if the given value is not nil.
func (_c *PQRRecordCreate) SetNillableArchivoOrigen(v *string) *PQRRecordCreate {
	if v != nil {
		_c.SetArchivoOrigen(*v)
	}
	return _c
}

// SetFechaProcesamiento sets the "fecha_procesamiento" field.
func (_c *PQRRecordCreate) SetFechaProcesamiento(v time.Time) *PQRRecordCreate {
	_c.mutation.SetFechaProcesamiento(v)
	return _c
}

// SetNillableFechaProcesamiento sets the "fecha_procesamiento" field if the given value is not nil.
func (_c *PQRRecordCreate) SetNillableFechaProcesamiento(v *time.Time) *PQRRecordCreate {
	if v != nil {
		_c.SetFechaProcesamiento(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PQRRecordCreate) SetCreatedAt(v time.Time) *PQRRecordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PQRRecordCreate) SetNillableCreatedAt(v *time.Time) *PQRRecordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PQRRecordCreate) SetID(v uuid.UUID) *PQRRecordCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *PQRRecordCreate) SetNillableID(v *uuid.UUID) *PQRRecordCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the PQRRecordMutation object of the builder.
func (_c *PQRRecordCreate) Mutation() *PQRRecordMutation {
	return _c.mutation
}

// Save creates the PQRRecord in the database.
func (_c *PQRRecordCreate) Save(ctx context.Context) (*PQRRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PQRRecordCreate) SaveX(ctx context.Context) *PQRRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PQRRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PQRRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PQRRecordCreate) defaults() {
	if _, ok := _c.mutation.FechaProcesamiento(); !ok {
		v := pqrrecord.DefaultFechaProcesamiento()
		_c.mutation.SetFechaProcesamiento(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := pqrrecord.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := pqrrecord.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PQRRecordCreate) check() error {
	if _, ok := _c.mutation.Empresa(); !ok {
		return &ValidationError{Name: "empresa", err: errors.New(`ent: missing required field "PQRRecord.empresa"`)}
	}
	if v, ok := _c.mutation.Empresa(); ok {
		if err := pqrrecord.EmpresaValidator(v); err != nil {
			return &ValidationError{Name: "empresa", err: fmt.Errorf(`ent: validator failed for field "PQRRecord.empresa": %w`, err)}
		}
	}
	if _, ok := _c.mutation.NumeroRadicado(); !ok {
		return &ValidationError{Name: "numero_radicado", err: errors.New(`ent: missing required field "PQRRecord.numero_radicado"`)}
	}
	if v, ok := _c.mutation.NumeroRadicado(); ok {
		if err := pqrrecord.NumeroRadicadoValidator(v); err != nil {
			return &ValidationError{Name: "numero_radicado", err: fmt.Errorf(`ent: validator failed for field "PQRRecord.numero_radicado": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Fecha(); !ok {
		return &ValidationError{Name: "fecha", err: errors.New(`ent: missing required field "PQRRecord.fecha"`)}
	}
	if v, ok := _c.mutation.Fecha(); ok {
		if err := pqrrecord.FechaValidator(v); err != nil {
			return &ValidationError{Name: "fecha", err: fmt.Errorf(`ent: validator failed for field "PQRRecord.fecha": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EstadoSolicitud(); !ok {
		return &ValidationError{Name: "estado_solicitud", err: errors.New(`ent: missing required field "PQRRecord.estado_solicitud"`)}
	}
	if v, ok := _c.mutation.EstadoSolicitud(); ok {
		if err := pqrrecord.EstadoSolicitudValidator(v); err != nil {
			return &ValidationError{Name: "estado_solicitud", err: fmt.Errorf(`ent: validator failed for field "PQRRecord.estado_solicitud": %w`, err)}
		}
	}
	if _, ok := _c.mutation.HashRegistro(); !ok {
		return &ValidationError{Name: "hash_registro", err: errors.New(`ent: missing required field "PQRRecord.hash_registro"`)}
	}
	if v, ok := _c.mutation.HashRegistro(); ok {
		if err := pqrrecord.HashRegistroValidator(v); err != nil {
			return &ValidationError{Name: "hash_registro", err: fmt.Errorf(`ent: validator failed for field "PQRRecord.hash_registro": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FechaProcesamiento(); !ok {
		return &ValidationError{Name: "fecha_procesamiento", err: errors.New(`ent: missing required field "PQRRecord.fecha_procesamiento"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PQRRecord.created_at"`)}
	}
	return nil
}

func (_c *PQRRecordCreate) sqlSave(ctx context.Context) (*PQRRecord, error) {
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

func (_c *PQRRecordCreate) createSpec() (*PQRRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &PQRRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(pqrrecord.Table, sqlgraph.NewFieldSpec(pqrrecord.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Empresa(); ok {
		_spec.SetField(pqrrecord.FieldEmpresa, field.TypeString, value)
		_node.Empresa = value
	}
	if value, ok := _c.mutation.NumeroRadicado(); ok {
		_spec.SetField(pqrrecord.FieldNumeroRadicado, field.TypeString, value)
		_node.NumeroRadicado = value
	}
	if value, ok := _c.mutation.Fecha(); ok {
		_spec.SetField(pqrrecord.FieldFecha, field.TypeString, value)
		_node.Fecha = value
	}
	if value, ok := _c.mutation.TipoPqr(); ok {
		_spec.SetField(pqrrecord.FieldTipoPqr, field.TypeString, value)
		_node.TipoPqr = value
	}
	if value, ok := _c.mutation.Nic(); ok {
		_spec.SetField(pqrrecord.FieldNic, field.TypeString, value)
		_node.Nic = value
	}
	if value, ok := _c.mutation.DocumentoIdentidad(); ok {
		_spec.SetField(pqrrecord.FieldDocumentoIdentidad, field.TypeString, value)
		_node.DocumentoIdentidad = value
	}
	if value, ok := _c.mutation.NombresApellidos(); ok {
		_spec.SetField(pqrrecord.FieldNombresApellidos, field.TypeString, value)
		_node.NombresApellidos = value
	}
	if value, ok := _c.mutation.Telefono(); ok {
		_spec.SetField(pqrrecord.FieldTelefono, field.TypeString, value)
		_node.Telefono = value
	}
	if value, ok := _c.mutation.Celular(); ok {
		_spec.SetField(pqrrecord.FieldCelular, field.TypeString, value)
		_node.Celular = value
	}
	if value, ok := _c.mutation.CorreoElectronico(); ok {
		_spec.SetField(pqrrecord.FieldCorreoElectronico, field.TypeString, value)
		_node.CorreoElectronico = value
	}
	if value, ok := _c.mutation.CanalRespuesta(); ok {
		_spec.SetField(pqrrecord.FieldCanalRespuesta, field.TypeString, value)
		_node.CanalRespuesta = value
	}
	if value, ok := _c.mutation.EstadoSolicitud(); ok {
		_spec.SetField(pqrrecord.FieldEstadoSolicitud, field.TypeString, value)
		_node.EstadoSolicitud = value
	}
	if value, ok := _c.mutation.NumeroReclamoSgc(); ok {
		_spec.SetField(pqrrecord.FieldNumeroReclamoSgc, field.TypeString, value)
		_node.NumeroReclamoSgc = value
	}
	if value, ok := _c.mutation.HashRegistro(); ok {
		_spec.SetField(pqrrecord.FieldHashRegistro, field.TypeString, value)
		_node.HashRegistro = value
	}
	if value, ok := _c.mutation.ArchivoOrigen(); ok {
		_spec.SetField(pqrrecord.FieldArchivoOrigen, field.TypeString, value)
		_node.ArchivoOrigen = value
	}
	if value, ok := _c.mutation.FechaProcesamiento(); ok {
		_spec.SetField(pqrrecord.FieldFechaProcesamiento, field.TypeTime, value)
		_node.FechaProcesamiento = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(pqrrecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// PQRRecordCreateBulk is the builder for creating many PQRRecord entities in bulk.
type PQRRecordCreateBulk struct {
	config
	err      error
	builders []*PQRRecordCreate
}

// Save creates the PQRRecord entities in the database.
func (_c *PQRRecordCreateBulk) Save(ctx context.Context) ([]*PQRRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PQRRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PQRRecordMutation)
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
func (_c *PQRRecordCreateBulk) SaveX(ctx context.Context) []*PQRRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PQRRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PQRRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
