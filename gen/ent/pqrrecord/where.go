// Code generated by ent, DO NOT EDIT.

package pqrrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/dfgiraldo/pqr-pipeline/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldLTE(FieldID, id))
}

// Empresa applies equality check predicate on the "empresa" field. It's identical to EmpresaEQ.
func Empresa(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldEQ(FieldEmpresa, v))
}

// NumeroRadicado applies equality check predicate on the "numero_radicado" field. It's identical to NumeroRadicadoEQ.
func NumeroRadicado(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldEQ(FieldNumeroRadicado, v))
}

// Fecha applies equality check predicate on the "fecha" field. It's identical to FechaEQ.
func Fecha(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldEQ(FieldFecha, v))
}

// TipoPqr applies equality check predicate on the "tipo_pqr" field. It's identical to TipoPqrEQ.
func TipoPqr(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldEQ(FieldTipoPqr, v))
}

// Nic applies equality check predicate on the "nic" field. It's identical to NicEQ.
func Nic(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldEQ(FieldNic, v))
}

// DocumentoIdentidad applies equality check predicate on the "documento_identidad" field. It's identical to DocumentoIdentidadEQ.
func DocumentoIdentidad(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldEQ(FieldDocumentoIdentidad, v))
}

// NombresApellidos applies equality check predicate on the "nombres_apellidos" field. It's identical to NombresApellidosEQ.
func NombresApellidos(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldEQ(FieldNombresApellidos, v))
}

// Telefono applies equality check predicate on the "telefono" field. It's identical to TelefonoEQ.
func Telefono(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldEQ(FieldTelefono, v))
}

// Celular applies equality check predicate on the "celular" field. It's identical to CelularEQ.
func Celular(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldEQ(FieldCelular, v))
}

// CorreoElectronico applies equality check predicate on the "correo_electronico" field. It's identical to CorreoElectronicoEQ.
func CorreoElectronico(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldEQ(FieldCorreoElectronico, v))
}

// CanalRespuesta applies equality check predicate on the "canal_respuesta" field. It's identical to CanalRespuestaEQ.
func CanalRespuesta(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldEQ(FieldCanalRespuesta, v))
}

// EstadoSolicitud applies equality check predicate on the "estado_solicitud" field. It's identical to EstadoSolicitudEQ.
func EstadoSolicitud(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldEQ(FieldEstadoSolicitud, v))
}

// NumeroReclamoSgc applies equality check predicate on the "numero_reclamo_sgc" field. It's identical to NumeroReclamoSgcEQ.
func NumeroReclamoSgc(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldEQ(FieldNumeroReclamoSgc, v))
}

// HashRegistro applies equality check predicate on the "hash_registro" field. It's identical to HashRegistroEQ.
func HashRegistro(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldEQ(FieldHashRegistro, v))
}

// ArchivoOrigen applies equality check predicate on the "archivo_origen" field. It's identical to ArchivoOrigenEQ.
func ArchivoOrigen(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldEQ(FieldArchivoOrigen, v))
}

// FechaProcesamiento applies equality check predicate on the "fecha_procesamiento" field. It's identical to FechaProcesamientoEQ.
func FechaProcesamiento(v time.Time) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldEQ(FieldFechaProcesamiento, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// EmpresaEQ applies the EQ predicate on the "empresa" field.
func EmpresaEQ(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldEQ(FieldEmpresa, v))
}

// EmpresaNEQ applies the NEQ predicate on the "empresa" field.
func EmpresaNEQ(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldNEQ(FieldEmpresa, v))
}

// EmpresaIn applies the In predicate on the "empresa" field.
func EmpresaIn(vs ...string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldIn(FieldEmpresa, vs...))
}

// EmpresaNotIn applies the NotIn predicate on the "empresa" field.
func EmpresaNotIn(vs ...string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldNotIn(FieldEmpresa, vs...))
}

// EmpresaGT applies the GT predicate on the "empresa" field.
func EmpresaGT(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldGT(FieldEmpresa, v))
}

// EmpresaGTE applies the GTE predicate on the "empresa" field.
func EmpresaGTE(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldGTE(FieldEmpresa, v))
}

// EmpresaLT applies the LT predicate on the "empresa" field.
func EmpresaLT(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldLT(FieldEmpresa, v))
}

// EmpresaLTE applies the LTE predicate on the "empresa" field.
func EmpresaLTE(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldLTE(FieldEmpresa, v))
}

// EmpresaContains applies the Contains predicate on the "empresa" field.
func EmpresaContains(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldContains(FieldEmpresa, v))
}

// EmpresaHasPrefix applies the HasPrefix predicate on the "empresa" field.
func EmpresaHasPrefix(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldHasPrefix(FieldEmpresa, v))
}

// EmpresaHasSuffix applies the HasSuffix predicate on the "empresa" field.
func EmpresaHasSuffix(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldHasSuffix(FieldEmpresa, v))
}

// EmpresaEqualFold applies the EqualFold predicate on the "empresa" field.
func EmpresaEqualFold(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldEqualFold(FieldEmpresa, v))
}

// EmpresaContainsFold applies the ContainsFold predicate on the "empresa" field.
func EmpresaContainsFold(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldContainsFold(FieldEmpresa, v))
}

// NumeroRadicadoEQ applies the EQ predicate on the "numero_radicado" field.
func NumeroRadicadoEQ(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldEQ(FieldNumeroRadicado, v))
}

// NumeroRadicadoNEQ applies the NEQ predicate on the "numero_radicado" field.
func NumeroRadicadoNEQ(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldNEQ(FieldNumeroRadicado, v))
}

// NumeroRadicadoIn applies the In predicate on the "numero_radicado" field.
func NumeroRadicadoIn(vs ...string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldIn(FieldNumeroRadicado, vs...))
}

// NumeroRadicadoNotIn applies the NotIn predicate on the "numero_radicado" field.
func NumeroRadicadoNotIn(vs ...string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldNotIn(FieldNumeroRadicado, vs...))
}

// NumeroRadicadoGT applies the GT predicate on the "numero_radicado" field.
func NumeroRadicadoGT(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldGT(FieldNumeroRadicado, v))
}

// NumeroRadicadoGTE applies the GTE predicate on the "numero_radicado" field.
func NumeroRadicadoGTE(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldGTE(FieldNumeroRadicado, v))
}

// NumeroRadicadoLT applies the LT predicate on the "numero_radicado" field.
func NumeroRadicadoLT(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldLT(FieldNumeroRadicado, v))
}

// NumeroRadicadoLTE applies the LTE predicate on the "numero_radicado" field.
func NumeroRadicadoLTE(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldLTE(FieldNumeroRadicado, v))
}

// NumeroRadicadoContains applies the Contains predicate on the "numero_radicado" field.
func NumeroRadicadoContains(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldContains(FieldNumeroRadicado, v))
}

// NumeroRadicadoHasPrefix applies the HasPrefix predicate on the "numero_radicado" field.
func NumeroRadicadoHasPrefix(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldHasPrefix(FieldNumeroRadicado, v))
}

// NumeroRadicadoHasSuffix applies the HasSuffix predicate on the "numero_radicado" field.
func NumeroRadicadoHasSuffix(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldHasSuffix(FieldNumeroRadicado, v))
}

// NumeroRadicadoEqualFold applies the EqualFold predicate on the "numero_radicado" field.
func NumeroRadicadoEqualFold(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldEqualFold(FieldNumeroRadicado, v))
}

// NumeroRadicadoContainsFold applies the ContainsFold predicate on the "numero_radicado" field.
func NumeroRadicadoContainsFold(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldContainsFold(FieldNumeroRadicado, v))
}

// FechaEQ applies the EQ predicate on the "fecha" field.
func FechaEQ(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldEQ(FieldFecha, v))
}

// FechaNEQ applies the NEQ predicate on the "fecha" field.
func FechaNEQ(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldNEQ(FieldFecha, v))
}

// FechaIn applies the In predicate on the "fecha" field.
func FechaIn(vs ...string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldIn(FieldFecha, vs...))
}

// FechaNotIn applies the NotIn predicate on the "fecha" field.
func FechaNotIn(vs ...string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldNotIn(FieldFecha, vs...))
}

// FechaGT applies the GT predicate on the "fecha" field.
func FechaGT(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldGT(FieldFecha, v))
}

// FechaGTE applies the GTE predicate on the "fecha" field.
func FechaGTE(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldGTE(FieldFecha, v))
}

// FechaLT applies the LT predicate on the "fecha" field.
func FechaLT(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldLT(FieldFecha, v))
}

// FechaLTE applies the LTE predicate on the "fecha" field.
func FechaLTE(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldLTE(FieldFecha, v))
}

// FechaContains applies the Contains predicate on the "fecha" field.
func FechaContains(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldContains(FieldFecha, v))
}

// FechaHasPrefix applies the HasPrefix predicate on the "fecha" field.
func FechaHasPrefix(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldHasPrefix(FieldFecha, v))
}

// FechaHasSuffix applies the HasSuffix predicate on the "fecha" field.
func FechaHasSuffix(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldHasSuffix(FieldFecha, v))
}

// FechaEqualFold applies the EqualFold predicate on the "fecha" field.
func FechaEqualFold(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldEqualFold(FieldFecha, v))
}

// FechaContainsFold applies the ContainsFold predicate on the "fecha" field.
func FechaContainsFold(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldContainsFold(FieldFecha, v))
}

// TipoPqrEQ applies the EQ predicate on the "tipo_pqr" field.
func TipoPqrEQ(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldEQ(FieldTipoPqr, v))
}

// TipoPqrNEQ applies the NEQ predicate on the "tipo_pqr" field.
func TipoPqrNEQ(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldNEQ(FieldTipoPqr, v))
}

// TipoPqrIn applies the In predicate on the "tipo_pqr" field.
func TipoPqrIn(vs ...string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldIn(FieldTipoPqr, vs...))
}

// TipoPqrNotIn applies the NotIn predicate on the "tipo_pqr" field.
func TipoPqrNotIn(vs ...string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldNotIn(FieldTipoPqr, vs...))
}

// TipoPqrGT applies the GT predicate on the "tipo_pqr" field.
func TipoPqrGT(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldGT(FieldTipoPqr, v))
}

// TipoPqrGTE applies the GTE predicate on the "tipo_pqr" field.
func TipoPqrGTE(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldGTE(FieldTipoPqr, v))
}

// TipoPqrLT applies the LT predicate on the "tipo_pqr" field.
func TipoPqrLT(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldLT(FieldTipoPqr, v))
}

// TipoPqrLTE applies the LTE predicate on the "tipo_pqr" field.
func TipoPqrLTE(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldLTE(FieldTipoPqr, v))
}

// TipoPqrContains applies the Contains predicate on the "tipo_pqr" field.
func TipoPqrContains(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldContains(FieldTipoPqr, v))
}

// TipoPqrHasPrefix applies the HasPrefix predicate on the "tipo_pqr" field.
func TipoPqrHasPrefix(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldHasPrefix(FieldTipoPqr, v))
}

// TipoPqrHasSuffix applies the HasSuffix predicate on the "tipo_pqr" field.
func TipoPqrHasSuffix(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldHasSuffix(FieldTipoPqr, v))
}

// TipoPqrIsNil applies the IsNil predicate on the "tipo_pqr" field.
func TipoPqrIsNil() predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldIsNull(FieldTipoPqr))
}

// TipoPqrNotNil applies the NotNil predicate on the "tipo_pqr" field.
func TipoPqrNotNil() predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldNotNull(FieldTipoPqr))
}

// TipoPqrEqualFold applies the EqualFold predicate on the "tipo_pqr" field.
func TipoPqrEqualFold(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldEqualFold(FieldTipoPqr, v))
}

// TipoPqrContainsFold applies the ContainsFold predicate on the "tipo_pqr" field.
func TipoPqrContainsFold(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldContainsFold(FieldTipoPqr, v))
}

// NicEQ applies the EQ predicate on the "nic" field.
func NicEQ(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldEQ(FieldNic, v))
}

// NicNEQ applies the NEQ predicate on the "nic" field.
func NicNEQ(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldNEQ(FieldNic, v))
}

// NicIn applies the In predicate on the "nic" field.
func NicIn(vs ...string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldIn(FieldNic, vs...))
}

// NicNotIn applies the NotIn predicate on the "nic" field.
func NicNotIn(vs ...string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldNotIn(FieldNic, vs...))
}

// NicGT applies the GT predicate on the "nic" field.
func NicGT(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldGT(FieldNic, v))
}

// NicGTE applies the GTE predicate on the "nic" field.
func NicGTE(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldGTE(FieldNic, v))
}

// NicLT applies the LT predicate on the "nic" field.
func NicLT(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldLT(FieldNic, v))
}

// NicLTE applies the LTE predicate on the "nic" field.
func NicLTE(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldLTE(FieldNic, v))
}

// NicContains applies the Contains predicate on the "nic" field.
func NicContains(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldContains(FieldNic, v))
}

// NicHasPrefix applies the HasPrefix predicate on the "nic" field.
func NicHasPrefix(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldHasPrefix(FieldNic, v))
}

// NicHasSuffix applies the HasSuffix predicate on the "nic" field.
func NicHasSuffix(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldHasSuffix(FieldNic, v))
}

// NicIsNil applies the IsNil predicate on the "nic" field.
func NicIsNil() predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldIsNull(FieldNic))
}

// NicNotNil applies the NotNil predicate on the "nic" field.
func NicNotNil() predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldNotNull(FieldNic))
}

// NicEqualFold applies the EqualFold predicate on the "nic" field.
func NicEqualFold(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldEqualFold(FieldNic, v))
}

// NicContainsFold applies the ContainsFold predicate on the "nic" field.
func NicContainsFold(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldContainsFold(FieldNic, v))
}

// DocumentoIdentidadEQ applies the EQ predicate on the "documento_identidad" field.
func DocumentoIdentidadEQ(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldEQ(FieldDocumentoIdentidad, v))
}

// DocumentoIdentidadNEQ applies the NEQ predicate on the "documento_identidad" field.
func DocumentoIdentidadNEQ(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldNEQ(FieldDocumentoIdentidad, v))
}

// DocumentoIdentidadIn applies the In predicate on the "documento_identidad" field.
func DocumentoIdentidadIn(vs ...string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldIn(FieldDocumentoIdentidad, vs...))
}

// DocumentoIdentidadNotIn applies the NotIn predicate on the "documento_identidad" field.
func DocumentoIdentidadNotIn(vs ...string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldNotIn(FieldDocumentoIdentidad, vs...))
}

// DocumentoIdentidadGT applies the GT predicate on the "documento_identidad" field.
func DocumentoIdentidadGT(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldGT(FieldDocumentoIdentidad, v))
}

// DocumentoIdentidadGTE applies the GTE predicate on the "documento_identidad" field.
func DocumentoIdentidadGTE(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldGTE(FieldDocumentoIdentidad, v))
}

// DocumentoIdentidadLT applies the LT predicate on the "documento_identidad" field.
func DocumentoIdentidadLT(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldLT(FieldDocumentoIdentidad, v))
}

// DocumentoIdentidadLTE applies the LTE predicate on the "documento_identidad" field.
func DocumentoIdentidadLTE(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldLTE(FieldDocumentoIdentidad, v))
}

// DocumentoIdentidadContains applies the Contains predicate on the "documento_identidad" field.
func DocumentoIdentidadContains(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldContains(FieldDocumentoIdentidad, v))
}

// DocumentoIdentidadHasPrefix applies the HasPrefix predicate on the "documento_identidad" field.
func DocumentoIdentidadHasPrefix(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldHasPrefix(FieldDocumentoIdentidad, v))
}

// DocumentoIdentidadHasSuffix applies the HasSuffix predicate on the "documento_identidad" field.
func DocumentoIdentidadHasSuffix(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldHasSuffix(FieldDocumentoIdentidad, v))
}

// DocumentoIdentidadIsNil applies the IsNil predicate on the "documento_identidad" field.
func DocumentoIdentidadIsNil() predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldIsNull(FieldDocumentoIdentidad))
}

// DocumentoIdentidadNotNil applies the NotNil predicate on the "documento_identidad" field.
func DocumentoIdentidadNotNil() predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldNotNull(FieldDocumentoIdentidad))
}

// DocumentoIdentidadEqualFold applies the EqualFold predicate on the "documento_identidad" field.
func DocumentoIdentidadEqualFold(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldEqualFold(FieldDocumentoIdentidad, v))
}

// DocumentoIdentidadContainsFold applies the ContainsFold predicate on the "documento_identidad" field.
func DocumentoIdentidadContainsFold(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldContainsFold(FieldDocumentoIdentidad, v))
}

// NombresApellidosEQ applies the EQ predicate on the "nombres_apellidos" field.
func NombresApellidosEQ(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldEQ(FieldNombresApellidos, v))
}

// NombresApellidosNEQ applies the NEQ predicate on the "nombres_apellidos" field.
func NombresApellidosNEQ(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldNEQ(FieldNombresApellidos, v))
}

// NombresApellidosIn applies the In predicate on the "nombres_apellidos" field.
func NombresApellidosIn(vs ...string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldIn(FieldNombresApellidos, vs...))
}

// NombresApellidosNotIn applies the NotIn predicate on the "nombres_apellidos" field.
func NombresApellidosNotIn(vs ...string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldNotIn(FieldNombresApellidos, vs...))
}

// NombresApellidosGT applies the GT predicate on the "nombres_apellidos" field.
func NombresApellidosGT(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldGT(FieldNombresApellidos, v))
}

// NombresApellidosGTE applies the GTE predicate on the "nombres_apellidos" field.
func NombresApellidosGTE(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldGTE(FieldNombresApellidos, v))
}

// NombresApellidosLT applies the LT predicate on the "nombres_apellidos" field.
func NombresApellidosLT(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldLT(FieldNombresApellidos, v))
}

// NombresApellidosLTE applies the LTE predicate on the "nombres_apellidos" field.
func NombresApellidosLTE(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldLTE(FieldNombresApellidos, v))
}

// NombresApellidosContains applies the Contains predicate on the "nombres_apellidos" field.
func NombresApellidosContains(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldContains(FieldNombresApellidos, v))
}

// NombresApellidosHasPrefix applies the HasPrefix predicate on the "nombres_apellidos" field.
func NombresApellidosHasPrefix(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldHasPrefix(FieldNombresApellidos, v))
}

// NombresApellidosHasSuffix applies the HasSuffix predicate on the "nombres_apellidos" field.
func NombresApellidosHasSuffix(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldHasSuffix(FieldNombresApellidos, v))
}

// NombresApellidosIsNil applies the IsNil predicate on the "nombres_apellidos" field.
func NombresApellidosIsNil() predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldIsNull(FieldNombresApellidos))
}

// NombresApellidosNotNil applies the NotNil predicate on the "nombres_apellidos" field.
func NombresApellidosNotNil() predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldNotNull(FieldNombresApellidos))
}

// NombresApellidosEqualFold applies the EqualFold predicate on the "nombres_apellidos" field.
func NombresApellidosEqualFold(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldEqualFold(FieldNombresApellidos, v))
}

// NombresApellidosContainsFold applies the ContainsFold predicate on the "nombres_apellidos" field.
func NombresApellidosContainsFold(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldContainsFold(FieldNombresApellidos, v))
}

// TelefonoEQ applies the EQ predicate on the "telefono" field.
func TelefonoEQ(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldEQ(FieldTelefono, v))
}

// TelefonoNEQ applies the NEQ predicate on the "telefono" field.
func TelefonoNEQ(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldNEQ(FieldTelefono, v))
}

// TelefonoIn applies the In predicate on the "telefono" field.
func TelefonoIn(vs ...string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldIn(FieldTelefono, vs...))
}

// TelefonoNotIn applies the NotIn predicate on the "telefono" field.
func TelefonoNotIn(vs ...string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldNotIn(FieldTelefono, vs...))
}

// TelefonoGT applies the GT predicate on the "telefono" field.
func TelefonoGT(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldGT(FieldTelefono, v))
}

// TelefonoGTE applies the GTE predicate on the "telefono" field.
func TelefonoGTE(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldGTE(FieldTelefono, v))
}

// TelefonoLT applies the LT predicate on the "telefono" field.
func TelefonoLT(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldLT(FieldTelefono, v))
}

// TelefonoLTE applies the LTE predicate on the "telefono" field.
func TelefonoLTE(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldLTE(FieldTelefono, v))
}

// TelefonoContains applies the Contains predicate on the "telefono" field.
func TelefonoContains(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldContains(FieldTelefono, v))
}

// TelefonoHasPrefix applies the HasPrefix predicate on the "telefono" field.
func TelefonoHasPrefix(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldHasPrefix(FieldTelefono, v))
}

// TelefonoHasSuffix applies the HasSuffix predicate on the "telefono" field.
func TelefonoHasSuffix(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldHasSuffix(FieldTelefono, v))
}

// TelefonoIsNil applies the IsNil predicate on the "telefono" field.
func TelefonoIsNil() predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldIsNull(FieldTelefono))
}

// TelefonoNotNil applies the NotNil predicate on the "telefono" field.
func TelefonoNotNil() predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldNotNull(FieldTelefono))
}

// TelefonoEqualFold applies the EqualFold predicate on the "telefono" field.
func TelefonoEqualFold(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldEqualFold(FieldTelefono, v))
}

// TelefonoContainsFold applies the ContainsFold predicate on the "telefono" field.
func TelefonoContainsFold(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldContainsFold(FieldTelefono, v))
}

// CelularEQ applies the EQ predicate on the "celular" field.
func CelularEQ(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldEQ(FieldCelular, v))
}

// CelularNEQ applies the NEQ predicate on the "celular" field.
func CelularNEQ(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldNEQ(FieldCelular, v))
}

// CelularIn applies the In predicate on the "celular" field.
func CelularIn(vs ...string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldIn(FieldCelular, vs...))
}

// CelularNotIn applies the NotIn predicate on the "celular" field.
func CelularNotIn(vs ...string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldNotIn(FieldCelular, vs...))
}

// CelularGT applies the GT predicate on the "celular" field.
func CelularGT(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldGT(FieldCelular, v))
}

// CelularGTE applies the GTE predicate on the "celular" field.
func CelularGTE(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldGTE(FieldCelular, v))
}

// CelularLT applies the LT predicate on the "celular" field.
func CelularLT(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldLT(FieldCelular, v))
}

// CelularLTE applies the LTE predicate on the "celular" field.
func CelularLTE(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldLTE(FieldCelular, v))
}

// CelularContains applies the Contains predicate on the "celular" field.
func CelularContains(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldContains(FieldCelular, v))
}

// CelularHasPrefix applies the HasPrefix predicate on the "celular" field.
func CelularHasPrefix(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldHasPrefix(FieldCelular, v))
}

// CelularHasSuffix applies the HasSuffix predicate on the "celular" field.
func CelularHasSuffix(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldHasSuffix(FieldCelular, v))
}

// CelularIsNil applies the IsNil predicate on the "celular" field.
func CelularIsNil() predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldIsNull(FieldCelular))
}

// CelularNotNil applies the NotNil predicate on the "celular" field.
func CelularNotNil() predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldNotNull(FieldCelular))
}

// CelularEqualFold applies the EqualFold predicate on the "celular" field.
func CelularEqualFold(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldEqualFold(FieldCelular, v))
}

// CelularContainsFold applies the ContainsFold predicate on the "celular" field.
func CelularContainsFold(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldContainsFold(FieldCelular, v))
}

// CorreoElectronicoEQ applies the EQ predicate on the "correo_electronico" field.
func CorreoElectronicoEQ(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldEQ(FieldCorreoElectronico, v))
}

// CorreoElectronicoNEQ applies the NEQ predicate on the "correo_electronico" field.
func CorreoElectronicoNEQ(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldNEQ(FieldCorreoElectronico, v))
}

// CorreoElectronicoIn applies the In predicate on the "correo_electronico" field.
func CorreoElectronicoIn(vs ...string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldIn(FieldCorreoElectronico, vs...))
}

// CorreoElectronicoNotIn applies the NotIn predicate on the "correo_electronico" field.
func CorreoElectronicoNotIn(vs ...string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldNotIn(FieldCorreoElectronico, vs...))
}

// CorreoElectronicoGT applies the GT predicate on the "correo_electronico" field.
func CorreoElectronicoGT(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldGT(FieldCorreoElectronico, v))
}

// CorreoElectronicoGTE applies the GTE predicate on the "correo_electronico" field.
func CorreoElectronicoGTE(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldGTE(FieldCorreoElectronico, v))
}

// CorreoElectronicoLT applies the LT predicate on the "correo_electronico" field.
func CorreoElectronicoLT(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldLT(FieldCorreoElectronico, v))
}

// CorreoElectronicoLTE applies the LTE predicate on the "correo_electronico" field.
func CorreoElectronicoLTE(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldLTE(FieldCorreoElectronico, v))
}

// CorreoElectronicoContains applies the Contains predicate on the "correo_electronico" field.
func CorreoElectronicoContains(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldContains(FieldCorreoElectronico, v))
}

// CorreoElectronicoHasPrefix applies the HasPrefix predicate on the "correo_electronico" field.
func CorreoElectronicoHasPrefix(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldHasPrefix(FieldCorreoElectronico, v))
}

// CorreoElectronicoHasSuffix applies the HasSuffix predicate on the "correo_electronico" field.
func CorreoElectronicoHasSuffix(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldHasSuffix(FieldCorreoElectronico, v))
}

// CorreoElectronicoIsNil applies the IsNil predicate on the "correo_electronico" field.
func CorreoElectronicoIsNil() predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldIsNull(FieldCorreoElectronico))
}

// CorreoElectronicoNotNil applies the NotNil predicate on the "correo_electronico" field.
func CorreoElectronicoNotNil() predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldNotNull(FieldCorreoElectronico))
}

// CorreoElectronicoEqualFold applies the EqualFold predicate on the "correo_electronico" field.
func CorreoElectronicoEqualFold(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldEqualFold(FieldCorreoElectronico, v))
}

// CorreoElectronicoContainsFold applies the ContainsFold predicate on the "correo_electronico" field.
func CorreoElectronicoContainsFold(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldContainsFold(FieldCorreoElectronico, v))
}

// CanalRespuestaEQ applies the EQ predicate on the "canal_respuesta" field.
func CanalRespuestaEQ(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldEQ(FieldCanalRespuesta, v))
}

// CanalRespuestaNEQ applies the NEQ predicate on the "canal_respuesta" field.
func CanalRespuestaNEQ(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldNEQ(FieldCanalRespuesta, v))
}

// CanalRespuestaIn applies the In predicate on the "canal_respuesta" field.
func CanalRespuestaIn(vs ...string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldIn(FieldCanalRespuesta, vs...))
}

// CanalRespuestaNotIn applies the NotIn predicate on the "canal_respuesta" field.
func CanalRespuestaNotIn(vs ...string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldNotIn(FieldCanalRespuesta, vs...))
}

// CanalRespuestaGT applies the GT predicate on the "canal_respuesta" field.
func CanalRespuestaGT(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldGT(FieldCanalRespuesta, v))
}

// CanalRespuestaGTE applies the GTE predicate on the "canal_respuesta" field.
func CanalRespuestaGTE(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldGTE(FieldCanalRespuesta, v))
}

// CanalRespuestaLT applies the LT predicate on the "canal_respuesta" field.
func CanalRespuestaLT(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldLT(FieldCanalRespuesta, v))
}

// CanalRespuestaLTE applies the LTE predicate on the "canal_respuesta" field.
func CanalRespuestaLTE(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldLTE(FieldCanalRespuesta, v))
}

// CanalRespuestaContains applies the Contains predicate on the "canal_respuesta" field.
func CanalRespuestaContains(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldContains(FieldCanalRespuesta, v))
}

// CanalRespuestaHasPrefix applies the HasPrefix predicate on the "canal_respuesta" field.
func CanalRespuestaHasPrefix(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldHasPrefix(FieldCanalRespuesta, v))
}

// CanalRespuestaHasSuffix applies the HasSuffix predicate on the "canal_respuesta" field.
func CanalRespuestaHasSuffix(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldHasSuffix(FieldCanalRespuesta, v))
}

// CanalRespuestaIsNil applies the IsNil predicate on the "canal_respuesta" field.
func CanalRespuestaIsNil() predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldIsNull(FieldCanalRespuesta))
}

// CanalRespuestaNotNil applies the NotNil predicate on the "canal_respuesta" field.
func CanalRespuestaNotNil() predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldNotNull(FieldCanalRespuesta))
}

// CanalRespuestaEqualFold applies the EqualFold predicate on the "canal_respuesta" field.
func CanalRespuestaEqualFold(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldEqualFold(FieldCanalRespuesta, v))
}

// CanalRespuestaContainsFold applies the ContainsFold predicate on the "canal_respuesta" field.
func CanalRespuestaContainsFold(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldContainsFold(FieldCanalRespuesta, v))
}

// EstadoSolicitudEQ applies the EQ predicate on the "estado_solicitud" field.
func EstadoSolicitudEQ(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldEQ(FieldEstadoSolicitud, v))
}

// EstadoSolicitudNEQ applies the NEQ predicate on the "estado_solicitud" field.
func EstadoSolicitudNEQ(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldNEQ(FieldEstadoSolicitud, v))
}

// EstadoSolicitudIn applies the In predicate on the "estado_solicitud" field.
func EstadoSolicitudIn(vs ...string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldIn(FieldEstadoSolicitud, vs...))
}

// EstadoSolicitudNotIn applies the NotIn predicate on the "estado_solicitud" field.
func EstadoSolicitudNotIn(vs ...string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldNotIn(FieldEstadoSolicitud, vs...))
}

// EstadoSolicitudGT applies the GT predicate on the "estado_solicitud" field.
func EstadoSolicitudGT(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldGT(FieldEstadoSolicitud, v))
}

// EstadoSolicitudGTE applies the GTE predicate on the "estado_solicitud" field.
func EstadoSolicitudGTE(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldGTE(FieldEstadoSolicitud, v))
}

// EstadoSolicitudLT applies the LT predicate on the "estado_solicitud" field.
func EstadoSolicitudLT(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldLT(FieldEstadoSolicitud, v))
}

// EstadoSolicitudLTE applies the LTE predicate on the "estado_solicitud" field.
func EstadoSolicitudLTE(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldLTE(FieldEstadoSolicitud, v))
}

// EstadoSolicitudContains applies the Contains predicate on the "estado_solicitud" field.
func EstadoSolicitudContains(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldContains(FieldEstadoSolicitud, v))
}

// EstadoSolicitudHasPrefix applies the HasPrefix predicate on the "estado_solicitud" field.
func EstadoSolicitudHasPrefix(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldHasPrefix(FieldEstadoSolicitud, v))
}

// EstadoSolicitudHasSuffix applies the HasSuffix predicate on the "estado_solicitud" field.
func EstadoSolicitudHasSuffix(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldHasSuffix(FieldEstadoSolicitud, v))
}

// EstadoSolicitudEqualFold applies the EqualFold predicate on the "estado_solicitud" field.
func EstadoSolicitudEqualFold(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldEqualFold(FieldEstadoSolicitud, v))
}

// EstadoSolicitudContainsFold applies the ContainsFold predicate on the "estado_solicitud" field.
func EstadoSolicitudContainsFold(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldContainsFold(FieldEstadoSolicitud, v))
}

// NumeroReclamoSgcEQ applies the EQ predicate on the "numero_reclamo_sgc" field.
func NumeroReclamoSgcEQ(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldEQ(FieldNumeroReclamoSgc, v))
}

// NumeroReclamoSgcNEQ applies the NEQ predicate on the "numero_reclamo_sgc" field.
func NumeroReclamoSgcNEQ(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldNEQ(FieldNumeroReclamoSgc, v))
}

// NumeroReclamoSgcIn applies the In predicate on the "numero_reclamo_sgc" field.
func NumeroReclamoSgcIn(vs ...string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldIn(FieldNumeroReclamoSgc, vs...))
}

// NumeroReclamoSgcNotIn applies the NotIn predicate on the "numero_reclamo_sgc" field.
func NumeroReclamoSgcNotIn(vs ...string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldNotIn(FieldNumeroReclamoSgc, vs...))
}

// NumeroReclamoSgcGT applies the GT predicate on the "numero_reclamo_sgc" field.
func NumeroReclamoSgcGT(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldGT(FieldNumeroReclamoSgc, v))
}

// NumeroReclamoSgcGTE applies the GTE predicate on the "numero_reclamo_sgc" field.
func NumeroReclamoSgcGTE(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldGTE(FieldNumeroReclamoSgc, v))
}

// NumeroReclamoSgcLT applies the LT predicate on the "numero_reclamo_sgc" field.
func NumeroReclamoSgcLT(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldLT(FieldNumeroReclamoSgc, v))
}

// NumeroReclamoSgcLTE applies the LTE predicate on the "numero_reclamo_sgc" field.
func NumeroReclamoSgcLTE(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldLTE(FieldNumeroReclamoSgc, v))
}

// NumeroReclamoSgcContains applies the Contains predicate on the "numero_reclamo_sgc" field.
func NumeroReclamoSgcContains(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldContains(FieldNumeroReclamoSgc, v))
}

// NumeroReclamoSgcHasPrefix applies the HasPrefix predicate on the "numero_reclamo_sgc" field.
func NumeroReclamoSgcHasPrefix(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldHasPrefix(FieldNumeroReclamoSgc, v))
}

// NumeroReclamoSgcHasSuffix applies the HasSuffix predicate on the "numero_reclamo_sgc" field.
func NumeroReclamoSgcHasSuffix(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldHasSuffix(FieldNumeroReclamoSgc, v))
}

// NumeroReclamoSgcIsNil applies the IsNil predicate on the "numero_reclamo_sgc" field.
func NumeroReclamoSgcIsNil() predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldIsNull(FieldNumeroReclamoSgc))
}

// NumeroReclamoSgcNotNil applies the NotNil predicate on the "numero_reclamo_sgc" field.
func NumeroReclamoSgcNotNil() predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldNotNull(FieldNumeroReclamoSgc))
}

// NumeroReclamoSgcEqualFold applies the EqualFold predicate on the "numero_reclamo_sgc" field.
func NumeroReclamoSgcEqualFold(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldEqualFold(FieldNumeroReclamoSgc, v))
}

// NumeroReclamoSgcContainsFold applies the ContainsFold predicate on the "numero_reclamo_sgc" field.
func NumeroReclamoSgcContainsFold(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldContainsFold(FieldNumeroReclamoSgc, v))
}

// HashRegistroEQ applies the EQ predicate on the "hash_registro" field.
func HashRegistroEQ(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldEQ(FieldHashRegistro, v))
}

// HashRegistroNEQ applies the NEQ predicate on the "hash_registro" field.
func HashRegistroNEQ(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldNEQ(FieldHashRegistro, v))
}

// HashRegistroIn applies the In predicate on the "hash_registro" field.
func HashRegistroIn(vs ...string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldIn(FieldHashRegistro, vs...))
}

// HashRegistroNotIn applies the NotIn predicate on the "hash_registro" field.
func HashRegistroNotIn(vs ...string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldNotIn(FieldHashRegistro, vs...))
}

// HashRegistroGT applies the GT predicate on the "hash_registro" field.
func HashRegistroGT(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldGT(FieldHashRegistro, v))
}

// HashRegistroGTE applies the GTE predicate on the "hash_registro" field.
func HashRegistroGTE(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldGTE(FieldHashRegistro, v))
}

// HashRegistroLT applies the LT predicate on the "hash_registro" field.
func HashRegistroLT(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldLT(FieldHashRegistro, v))
}

// HashRegistroLTE applies the LTE predicate on the "hash_registro" field.
func HashRegistroLTE(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldLTE(FieldHashRegistro, v))
}

// HashRegistroContains applies the Contains predicate on the "hash_registro" field.
func HashRegistroContains(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldContains(FieldHashRegistro, v))
}

// HashRegistroHasPrefix applies the HasPrefix predicate on the "hash_registro" field.
func HashRegistroHasPrefix(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldHasPrefix(FieldHashRegistro, v))
}

// HashRegistroHasSuffix applies the HasSuffix predicate on the "hash_registro" field.
func HashRegistroHasSuffix(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldHasSuffix(FieldHashRegistro, v))
}

// HashRegistroEqualFold applies the EqualFold predicate on the "hash_registro" field.
func HashRegistroEqualFold(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldEqualFold(FieldHashRegistro, v))
}

// HashRegistroContainsFold applies the ContainsFold predicate on the "hash_registro" field.
func HashRegistroContainsFold(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldContainsFold(FieldHashRegistro, v))
}

// ArchivoOrigenEQ applies the EQ predicate on the "archivo_origen" field.
func ArchivoOrigenEQ(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldEQ(FieldArchivoOrigen, v))
}

// ArchivoOrigenNEQ applies the NEQ predicate on the "archivo_origen" field.
func ArchivoOrigenNEQ(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldNEQ(FieldArchivoOrigen, v))
}

// ArchivoOrigenIn applies the In predicate on the "archivo_origen" field.
func ArchivoOrigenIn(vs ...string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldIn(FieldArchivoOrigen, vs...))
}

// ArchivoOrigenNotIn applies the NotIn predicate on the "archivo_origen" field.
func ArchivoOrigenNotIn(vs ...string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldNotIn(FieldArchivoOrigen, vs...))
}

// ArchivoOrigenGT applies the GT predicate on the "archivo_origen" field.
func ArchivoOrigenGT(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldGT(FieldArchivoOrigen, v))
}

// ArchivoOrigenGTE applies the GTE predicate on the "archivo_origen" field.
func ArchivoOrigenGTE(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldGTE(FieldArchivoOrigen, v))
}

// ArchivoOrigenLT applies the LT predicate on the "archivo_origen" field.
func ArchivoOrigenLT(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldLT(FieldArchivoOrigen, v))
}

// ArchivoOrigenLTE applies the LTE predicate on the "archivo_origen" field.
func ArchivoOrigenLTE(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldLTE(FieldArchivoOrigen, v))
}

// ArchivoOrigenContains applies the Contains predicate on the "archivo_origen" field.
func ArchivoOrigenContains(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldContains(FieldArchivoOrigen, v))
}

// ArchivoOrigenHasPrefix applies the HasPrefix predicate on the "archivo_origen" field.
func ArchivoOrigenHasPrefix(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldHasPrefix(FieldArchivoOrigen, v))
}

// ArchivoOrigenHasSuffix applies the HasSuffix predicate on the "archivo_origen" field.
func ArchivoOrigenHasSuffix(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldHasSuffix(FieldArchivoOrigen, v))
}

// ArchivoOrigenIsNil applies the IsNil predicate on the "archivo_origen" field.
func ArchivoOrigenIsNil() predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldIsNull(FieldArchivoOrigen))
}

// ArchivoOrigenNotNil applies the NotNil predicate on the "archivo_origen" field.
func ArchivoOrigenNotNil() predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldNotNull(FieldArchivoOrigen))
}

// ArchivoOrigenEqualFold applies the EqualFold predicate on the "archivo_origen" field.
func ArchivoOrigenEqualFold(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldEqualFold(FieldArchivoOrigen, v))
}

// ArchivoOrigenContainsFold applies the ContainsFold predicate on the "archivo_origen" field.
func ArchivoOrigenContainsFold(v string) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldContainsFold(FieldArchivoOrigen, v))
}

// FechaProcesamientoEQ applies the EQ predicate on the "fecha_procesamiento" field.
func FechaProcesamientoEQ(v time.Time) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldEQ(FieldFechaProcesamiento, v))
}

// FechaProcesamientoNEQ applies the NEQ predicate on the "fecha_procesamiento" field.
func FechaProcesamientoNEQ(v time.Time) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldNEQ(FieldFechaProcesamiento, v))
}

// FechaProcesamientoIn applies the In predicate on the "fecha_procesamiento" field.
func FechaProcesamientoIn(vs ...time.Time) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldIn(FieldFechaProcesamiento, vs...))
}

// FechaProcesamientoNotIn applies the NotIn predicate on the "fecha_procesamiento" field.
func FechaProcesamientoNotIn(vs ...time.Time) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldNotIn(FieldFechaProcesamiento, vs...))
}

// FechaProcesamientoGT applies the GT predicate on the "fecha_procesamiento" field.
func FechaProcesamientoGT(v time.Time) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldGT(FieldFechaProcesamiento, v))
}

// FechaProcesamientoGTE applies the GTE predicate on the "fecha_procesamiento" field.
func FechaProcesamientoGTE(v time.Time) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldGTE(FieldFechaProcesamiento, v))
}

// FechaProcesamientoLT applies the LT predicate on the "fecha_procesamiento" field.
func FechaProcesamientoLT(v time.Time) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldLT(FieldFechaProcesamiento, v))
}

// FechaProcesamientoLTE applies the LTE predicate on the "fecha_procesamiento" field.
func FechaProcesamientoLTE(v time.Time) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldLTE(FieldFechaProcesamiento, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PQRRecord {
	return predicate.PQRRecord(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PQRRecord) predicate.PQRRecord {
	return predicate.PQRRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PQRRecord) predicate.PQRRecord {
	return predicate.PQRRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PQRRecord) predicate.PQRRecord {
	return predicate.PQRRecord(sql.NotPredicates(p))
}
