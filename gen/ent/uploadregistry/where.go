// Code generated by ent, DO NOT EDIT.

package uploadregistry

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/dfgiraldo/pqr-pipeline/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.UploadRegistry {
	return predicate.UploadRegistry(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.UploadRegistry {
	return predicate.UploadRegistry(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.UploadRegistry {
	return predicate.UploadRegistry(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.UploadRegistry {
	return predicate.UploadRegistry(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.UploadRegistry {
	return predicate.UploadRegistry(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.UploadRegistry {
	return predicate.UploadRegistry(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.UploadRegistry {
	return predicate.UploadRegistry(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.UploadRegistry {
	return predicate.UploadRegistry(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.UploadRegistry {
	return predicate.UploadRegistry(sql.FieldLTE(FieldID, id))
}

// NombreArchivo applies equality check predicate on the "nombre_archivo" field. It's identical to NombreArchivoEQ.
func NombreArchivo(v string) predicate.UploadRegistry {
	return predicate.UploadRegistry(sql.FieldEQ(FieldNombreArchivo, v))
}

// ClaveS3 applies equality check predicate on the "clave_s3" field. It's identical to ClaveS3EQ.
func ClaveS3(v string) predicate.UploadRegistry {
	return predicate.UploadRegistry(sql.FieldEQ(FieldClaveS3, v))
}

// HashArchivo applies equality check predicate on the "hash_archivo" field. It's identical to HashArchivoEQ.
func HashArchivo(v string) predicate.UploadRegistry {
	return predicate.UploadRegistry(sql.FieldEQ(FieldHashArchivo, v))
}

// Empresa applies equality check predicate on the "empresa" field. It's identical to EmpresaEQ.
func Empresa(v string) predicate.UploadRegistry {
	return predicate.UploadRegistry(sql.FieldEQ(FieldEmpresa, v))
}

// NumeroReclamoSgc applies equality check predicate on the "numero_reclamo_sgc" field. It's identical to NumeroReclamoSgcEQ.
func NumeroReclamoSgc(v string) predicate.UploadRegistry {
	return predicate.UploadRegistry(sql.FieldEQ(FieldNumeroReclamoSgc, v))
}

// EstadoCarga applies equality check predicate on the "estado_carga" field. It's identical to EstadoCargaEQ.
func EstadoCarga(v string) predicate.UploadRegistry {
	return predicate.UploadRegistry(sql.FieldEQ(FieldEstadoCarga, v))
}

// OrigenCarga applies equality check predicate on the "origen_carga" field. It's identical to OrigenCargaEQ.
func OrigenCarga(v string) predicate.UploadRegistry {
	return predicate.UploadRegistry(sql.FieldEQ(FieldOrigenCarga, v))
}

// Intentos applies equality check predicate on the "intentos" field. It's identical to IntentosEQ.
func Intentos(v int) predicate.UploadRegistry {
	return predicate.UploadRegistry(sql.FieldEQ(FieldIntentos, v))
}

// SincronizadoBd applies equality check predicate on the "sincronizado_bd" field. It's identical to SincronizadoBdEQ.
func SincronizadoBd(v bool) predicate.UploadRegistry {
	return predicate.UploadRegistry(sql.FieldEQ(FieldSincronizadoBd, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.UploadRegistry {
	return predicate.UploadRegistry(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.UploadRegistry {
	return predicate.UploadRegistry(sql.FieldEQ(FieldUpdatedAt, v))
}

// NombreArchivoEQ applies the EQ predicate on the "nombre_archivo" field.
func NombreArchivoEQ(v string) predicate.UploadRegistry {
	return predicate.UploadRegistry(sql.FieldEQ(FieldNombreArchivo, v))
}

// NombreArchivoNEQ applies the NEQ predicate on the "nombre_archivo" field.
func NombreArchivoNEQ(v string) predicate.UploadRegistry {
	return predicate.UploadRegistry(sql.FieldNEQ(FieldNombreArchivo, v))
}

// NombreArchivoIn applies the In predicate on the "nombre_archivo" field.
func NombreArchivoIn(vs ...string) predicate.UploadRegistry {
	return predicate.UploadRegistry(sql.FieldIn(FieldNombreArchivo, vs...))
}

// NombreArchivoNotIn applies the NotIn predicate on the "nombre_archivo" field.
func NombreArchivoNotIn(vs ...string) predicate.UploadRegistry {
	return predicate.UploadRegistry(sql.FieldNotIn(FieldNombreArchivo, vs...))
}

// NombreArchivoGT applies the GT predicate on the "nombre_archivo" field.
func NombreArchivoGT(v string) predicate.UploadRegistry {
	return predicate.UploadRegistry(sql.FieldGT(FieldNombreArchivo, v))
}

// NombreArchivoGTE applies the GTE predicate on the "nombre_archivo" field.
func NombreArchivoGTE(v string) predicate.UploadRegistry {
	return predicate.UploadRegistry(sql.FieldGTE(FieldNombreArchivo, v))
}

// NombreArchivoLT applies the LT predicate on the "nombre_archivo" field.
func NombreArchivoLT(v string) predicate.UploadRegistry {
	return predicate.UploadRegistry(sql.FieldLT(FieldNombreArchivo, v))
}

// NombreArchivoLTE applies the LTE predicate on the "nombre_archivo" field.
func NombreArchivoLTE(v string) predicate.UploadRegistry {
	return predicate.UploadRegistry(sql.FieldLTE(FieldNombreArchivo, v))
}

// NombreArchivoContains applies the Contains predicate on the "nombre_archivo" field.
func NombreArchivoContains(v string) predicate.UploadRegistry {
	return predicate.UploadRegistry(sql.FieldContains(FieldNombreArchivo, v))
}

// NombreArchivoHasPrefix applies the HasPrefix predicate on the "nombre_archivo" field.
func NombreArchivoHasPrefix(v string) predicate.UploadRegistry {
	return predicate.UploadRegistry(sql.FieldHasPrefix(FieldNombreArchivo, v))
}

// NombreArchivoHasSuffix applies the HasSuffix predicate on the "nombre_archivo" field.
func NombreArchivoHasSuffix(v string) predicate.UploadRegistry {
	return predicate.UploadRegistry(sql.FieldHasSuffix(FieldNombreArchivo, v))
}

// NombreArchivoEqualFold applies the EqualFold predicate on the "nombre_archivo" field.
func NombreArchivoEqualFold(v string) predicate.UploadRegistry {
	return predicate.UploadRegistry(sql.FieldEqualFold(FieldNombreArchivo, v))
}

// NombreArchivoContainsFold applies the ContainsFold predicate on the "nombre_archivo" field.
func NombreArchivoContainsFold(v string) predicate.UploadRegistry {
	return predicate.UploadRegistry(sql.FieldContainsFold(FieldNombreArchivo, v))
}

// ClaveS3EQ applies the EQ predicate on the "clave_s3" field.
func ClaveS3EQ(v string) predicate.UploadRegistry {
	return predicate.UploadRegistry(sql.FieldEQ(FieldClaveS3, v))
}

// ClaveS3NEQ applies the NEQ predicate on the "clave_s3" field.
func ClaveS3NEQ(v string) predicate.UploadRegistry {
	return predicate.UploadRegistry(sql.FieldNEQ(FieldClaveS3, v))
}

// ClaveS3In applies the In predicate on the "clave_s3" field.
func ClaveS3In(vs ...string) predicate.UploadRegistry {
	return predicate.UploadRegistry(sql.FieldIn(FieldClaveS3, vs...))
}

// ClaveS3NotIn applies the NotIn predicate on the "clave_s3" field.
func ClaveS3NotIn(vs ...string) predicate.UploadRegistry {
	return predicate.UploadRegistry(sql.FieldNotIn(FieldClaveS3, vs...))
}

// ClaveS3GT applies the GT predicate on the "clave_s3" field.
func ClaveS3GT(v string) predicate.UploadRegistry {
	return predicate.UploadRegistry(sql.FieldGT(FieldClaveS3, v))
}

// ClaveS3GTE applies the GTE predicate on the "clave_s3" field.
func ClaveS3GTE(v string) predicate.UploadRegistry {
	return predicate.UploadRegistry(sql.FieldGTE(FieldClaveS3, v))
}

// ClaveS3LT applies the LT predicate on the "clave_s3" field.
func ClaveS3LT(v string) predicate.UploadRegistry {
	return predicate.UploadRegistry(sql.FieldLT(FieldClaveS3, v))
}

// ClaveS3LTE applies the LTE predicate on the "clave_s3" field.
func ClaveS3LTE(v string) predicate.UploadRegistry {
	return predicate.UploadRegistry(sql.FieldLTE(FieldClaveS3, v))
}

// ClaveS3Contains applies the Contains predicate on the "clave_s3" field.
func ClaveS3Contains(v string) predicate.UploadRegistry {
	return predicate.UploadRegistry(sql.FieldContains(FieldClaveS3, v))
}

// ClaveS3HasPrefix applies the HasPrefix predicate on the "clave_s3" field.
func ClaveS3HasPrefix(v string) predicate.UploadRegistry {
	return predicate.UploadRegistry(sql.FieldHasPrefix(FieldClaveS3, v))
}

// ClaveS3HasSuffix applies the HasSuffix predicate on the "clave_s3" field.
func ClaveS3HasSuffix(v string) predicate.UploadRegistry {
	return predicate.UploadRegistry(sql.FieldHasSuffix(FieldClaveS3, v))
}

// ClaveS3EqualFold applies the EqualFold predicate on the "clave_s3" field.
func ClaveS3EqualFold(v string) predicate.UploadRegistry {
	return predicate.UploadRegistry(sql.FieldEqualFold(FieldClaveS3, v))
}

// ClaveS3ContainsFold applies the ContainsFold predicate on the "clave_s3" field.
func ClaveS3ContainsFold(v string) predicate.UploadRegistry {
	return predicate.UploadRegistry(sql.FieldContainsFold(FieldClaveS3, v))
}

// HashArchivoEQ applies the EQ predicate on the "hash_archivo" field.
func HashArchivoEQ(v string) predicate.UploadRegistry {
	return predicate.UploadRegistry(sql.FieldEQ(FieldHashArchivo, v))
}

// HashArchivoNEQ applies the NEQ predicate on the "hash_archivo" field.
func HashArchivoNEQ(v string) predicate.UploadRegistry {
	return predicate.UploadRegistry(sql.FieldNEQ(FieldHashArchivo, v))
}

// HashArchivoIn applies the In predicate on the "hash_archivo" field.
func HashArchivoIn(vs ...string) predicate.UploadRegistry {
	return predicate.UploadRegistry(sql.FieldIn(FieldHashArchivo, vs...))
}

// HashArchivoNotIn applies the NotIn predicate on the "hash_archivo" field.
func HashArchivoNotIn(vs ...string) predicate.UploadRegistry {
	return predicate.UploadRegistry(sql.FieldNotIn(FieldHashArchivo, vs...))
}

// HashArchivoGT applies the GT predicate on the "hash_archivo" field.
func HashArchivoGT(v string) predicate.UploadRegistry {
	return predicate.UploadRegistry(sql.FieldGT(FieldHashArchivo, v))
}

// HashArchivoGTE applies the GTE predicate on the "hash_archivo" field.
func HashArchivoGTE(v string) predicate.UploadRegistry {
	return predicate.UploadRegistry(sql.FieldGTE(FieldHashArchivo, v))
}

// HashArchivoLT applies the LT predicate on the "hash_archivo" field.
func HashArchivoLT(v string) predicate.UploadRegistry {
	return predicate.UploadRegistry(sql.FieldLT(FieldHashArchivo, v))
}

// HashArchivoLTE applies the LTE predicate on the "hash_archivo" field.
func HashArchivoLTE(v string) predicate.UploadRegistry {
	return predicate.UploadRegistry(sql.FieldLTE(FieldHashArchivo, v))
}

// HashArchivoContains applies the Contains predicate on the "hash_archivo" field.
func HashArchivoContains(v string) predicate.UploadRegistry {
	return predicate.UploadRegistry(sql.FieldContains(FieldHashArchivo, v))
}

// HashArchivoHasPrefix applies the HasPrefix predicate on the "hash_archivo" field.
func HashArchivoHasPrefix(v string) predicate.UploadRegistry {
	return predicate.UploadRegistry(sql.FieldHasPrefix(FieldHashArchivo, v))
}

// HashArchivoHasSuffix applies the HasSuffix predicate on the "hash_archivo" field.
func HashArchivoHasSuffix(v string) predicate.UploadRegistry {
	return predicate.UploadRegistry(sql.FieldHasSuffix(FieldHashArchivo, v))
}

// HashArchivoEqualFold applies the EqualFold predicate on the "hash_archivo" field.
func HashArchivoEqualFold(v string) predicate.UploadRegistry {
	return predicate.UploadRegistry(sql.FieldEqualFold(FieldHashArchivo, v))
}

// HashArchivoContainsFold applies the ContainsFold predicate on the "hash_archivo" field.
func HashArchivoContainsFold(v string) predicate.UploadRegistry {
	return predicate.UploadRegistry(sql.FieldContainsFold(FieldHashArchivo, v))
}

// EmpresaEQ applies the EQ predicate on the "empresa" field.
func EmpresaEQ(v string) predicate.UploadRegistry {
	return predicate.UploadRegistry(sql.FieldEQ(FieldEmpresa, v))
}

// EmpresaNEQ applies the NEQ predicate on the "empresa" field.
func EmpresaNEQ(v string) predicate.UploadRegistry {
	return predicate.UploadRegistry(sql.FieldNEQ(FieldEmpresa, v))
}

// EmpresaIn applies the In predicate on the "empresa" field.
func EmpresaIn(vs ...string) predicate.UploadRegistry {
	return predicate.UploadRegistry(sql.FieldIn(FieldEmpresa, vs...))
}

// EmpresaNotIn applies the NotIn predicate on the "empresa" field.
func EmpresaNotIn(vs ...string) predicate.UploadRegistry {
	return predicate.UploadRegistry(sql.FieldNotIn(FieldEmpresa, vs...))
}

// EmpresaGT applies the GT predicate on the "empresa" field.
func EmpresaGT(v string) predicate.UploadRegistry {
	return predicate.UploadRegistry(sql.FieldGT(FieldEmpresa, v))
}

// EmpresaGTE applies the GTE predicate on the "empresa" field.
func EmpresaGTE(v string) predicate.UploadRegistry {
	return predicate.UploadRegistry(sql.FieldGTE(FieldEmpresa, v))
}

// EmpresaLT applies the LT predicate on the "empresa" field.
func EmpresaLT(v string) predicate.UploadRegistry {
	return predicate.UploadRegistry(sql.FieldLT(FieldEmpresa, v))
}

// EmpresaLTE applies the LTE predicate on the "empresa" field.
func EmpresaLTE(v string) predicate.UploadRegistry {
	return predicate.UploadRegistry(sql.FieldLTE(FieldEmpresa, v))
}

// EmpresaContains applies the Contains predicate on the "empresa" field.
func EmpresaContains(v string) predicate.UploadRegistry {
	return predicate.UploadRegistry(sql.FieldContains(FieldEmpresa, v))
}

// EmpresaHasPrefix applies the HasPrefix predicate on the "empresa" field.
func EmpresaHasPrefix(v string) predicate.UploadRegistry {
	return predicate.UploadRegistry(sql.FieldHasPrefix(FieldEmpresa, v))
}

// EmpresaHasSuffix applies the HasSuffix predicate on the "empresa" field.
func EmpresaHasSuffix(v string) predicate.UploadRegistry {
	return predicate.UploadRegistry(sql.FieldHasSuffix(FieldEmpresa, v))
}

// EmpresaEqualFold applies the EqualFold predicate on the "empresa" field.
func EmpresaEqualFold(v string) predicate.UploadRegistry {
	return predicate.UploadRegistry(sql.FieldEqualFold(FieldEmpresa, v))
}

// EmpresaContainsFold applies the ContainsFold predicate on the "empresa" field.
func EmpresaContainsFold(v string) predicate.UploadRegistry {
	return predicate.UploadRegistry(sql.FieldContainsFold(FieldEmpresa, v))
}

// NumeroReclamoSgcEQ applies the EQ predicate on the "numero_reclamo_sgc" field.
func NumeroReclamoSgcEQ(v string) predicate.UploadRegistry {
	return predicate.UploadRegistry(sql.FieldEQ(FieldNumeroReclamoSgc, v))
}

// NumeroReclamoSgcNEQ applies the NEQ predicate on the "numero_reclamo_sgc" field.
func NumeroReclamoSgcNEQ(v string) predicate.UploadRegistry {
	return predicate.UploadRegistry(sql.FieldNEQ(FieldNumeroReclamoSgc, v))
}

// NumeroReclamoSgcIn applies the In predicate on the "numero_reclamo_sgc" field.
func NumeroReclamoSgcIn(vs ...string) predicate.UploadRegistry {
	return predicate.UploadRegistry(sql.FieldIn(FieldNumeroReclamoSgc, vs...))
}

// NumeroReclamoSgcNotIn applies the NotIn predicate on the "numero_reclamo_sgc" field.
func NumeroReclamoSgcNotIn(vs ...string) predicate.UploadRegistry {
	return predicate.UploadRegistry(sql.FieldNotIn(FieldNumeroReclamoSgc, vs...))
}

// NumeroReclamoSgcGT applies the GT predicate on the "numero_reclamo_sgc" field.
func NumeroReclamoSgcGT(v string) predicate.UploadRegistry {
	return predicate.UploadRegistry(sql.FieldGT(FieldNumeroReclamoSgc, v))
}

// NumeroReclamoSgcGTE applies the GTE predicate on the "numero_reclamo_sgc" field.
func NumeroReclamoSgcGTE(v string) predicate.UploadRegistry {
	return predicate.UploadRegistry(sql.FieldGTE(FieldNumeroReclamoSgc, v))
}

// NumeroReclamoSgcLT applies the LT predicate on the "numero_reclamo_sgc" field.
func NumeroReclamoSgcLT(v string) predicate.UploadRegistry {
	return predicate.UploadRegistry(sql.FieldLT(FieldNumeroReclamoSgc, v))
}

// NumeroReclamoSgcLTE applies the LTE predicate on the "numero_reclamo_sgc" field.
func NumeroReclamoSgcLTE(v string) predicate.UploadRegistry {
	return predicate.UploadRegistry(sql.FieldLTE(FieldNumeroReclamoSgc, v))
}

// NumeroReclamoSgcContains applies the Contains predicate on the "numero_reclamo_sgc" field.
func NumeroReclamoSgcContains(v string) predicate.UploadRegistry {
	return predicate.UploadRegistry(sql.FieldContains(FieldNumeroReclamoSgc, v))
}

// NumeroReclamoSgcHasPrefix applies the HasPrefix predicate on the "numero_reclamo_sgc" field.
func NumeroReclamoSgcHasPrefix(v string) predicate.UploadRegistry {
	return predicate.UploadRegistry(sql.FieldHasPrefix(FieldNumeroReclamoSgc, v))
}

// NumeroReclamoSgcHasSuffix applies the HasSuffix predicate on the "numero_reclamo_sgc" field.
func NumeroReclamoSgcHasSuffix(v string) predicate.UploadRegistry {
	return predicate.UploadRegistry(sql.FieldHasSuffix(FieldNumeroReclamoSgc, v))
}

// NumeroReclamoSgcIsNil applies the IsNil predicate on the "numero_reclamo_sgc" field.
func NumeroReclamoSgcIsNil() predicate.UploadRegistry {
	return predicate.UploadRegistry(sql.FieldIsNull(FieldNumeroReclamoSgc))
}

// NumeroReclamoSgcNotNil applies the NotNil predicate on the "numero_reclamo_sgc" field.
func NumeroReclamoSgcNotNil() predicate.UploadRegistry {
	return predicate.UploadRegistry(sql.FieldNotNull(FieldNumeroReclamoSgc))
}

// NumeroReclamoSgcEqualFold applies the EqualFold predicate on the "numero_reclamo_sgc" field.
func NumeroReclamoSgcEqualFold(v string) predicate.UploadRegistry {
	return predicate.UploadRegistry(sql.FieldEqualFold(FieldNumeroReclamoSgc, v))
}

// NumeroReclamoSgcContainsFold applies the ContainsFold predicate on the "numero_reclamo_sgc" field.
func NumeroReclamoSgcContainsFold(v string) predicate.UploadRegistry {
	return predicate.UploadRegistry(sql.FieldContainsFold(FieldNumeroReclamoSgc, v))
}

// EstadoCargaEQ applies the EQ predicate on the "estado_carga" field.
func EstadoCargaEQ(v string) predicate.UploadRegistry {
	return predicate.UploadRegistry(sql.FieldEQ(FieldEstadoCarga, v))
}

// EstadoCargaNEQ applies the NEQ predicate on the "estado_carga" field.
func EstadoCargaNEQ(v string) predicate.UploadRegistry {
	return predicate.UploadRegistry(sql.FieldNEQ(FieldEstadoCarga, v))
}

// EstadoCargaIn applies the In predicate on the "estado_carga" field.
func EstadoCargaIn(vs ...string) predicate.UploadRegistry {
	return predicate.UploadRegistry(sql.FieldIn(FieldEstadoCarga, vs...))
}

// EstadoCargaNotIn applies the NotIn predicate on the "estado_carga" field.
func EstadoCargaNotIn(vs ...string) predicate.UploadRegistry {
	return predicate.UploadRegistry(sql.FieldNotIn(FieldEstadoCarga, vs...))
}

// EstadoCargaGT applies the GT predicate on the "estado_carga" field.
func EstadoCargaGT(v string) predicate.UploadRegistry {
	return predicate.UploadRegistry(sql.FieldGT(FieldEstadoCarga, v))
}

// EstadoCargaGTE applies the GTE predicate on the "estado_carga" field.
func EstadoCargaGTE(v string) predicate.UploadRegistry {
	return predicate.UploadRegistry(sql.FieldGTE(FieldEstadoCarga, v))
}

// EstadoCargaLT applies the LT predicate on the "estado_carga" field.
func EstadoCargaLT(v string) predicate.UploadRegistry {
	return predicate.UploadRegistry(sql.FieldLT(FieldEstadoCarga, v))
}

// EstadoCargaLTE applies the LTE predicate on the "estado_carga" field.
func EstadoCargaLTE(v string) predicate.UploadRegistry {
	return predicate.UploadRegistry(sql.FieldLTE(FieldEstadoCarga, v))
}

// EstadoCargaContains applies the Contains predicate on the "estado_carga" field.
func EstadoCargaContains(v string) predicate.UploadRegistry {
	return predicate.UploadRegistry(sql.FieldContains(FieldEstadoCarga, v))
}

// EstadoCargaHasPrefix applies the HasPrefix predicate on the "estado_carga" field.
func EstadoCargaHasPrefix(v string) predicate.UploadRegistry {
	return predicate.UploadRegistry(sql.FieldHasPrefix(FieldEstadoCarga, v))
}

// EstadoCargaHasSuffix applies the HasSuffix predicate on the "estado_carga" field.
func EstadoCargaHasSuffix(v string) predicate.UploadRegistry {
	return predicate.UploadRegistry(sql.FieldHasSuffix(FieldEstadoCarga, v))
}

// EstadoCargaEqualFold applies the EqualFold predicate on the "estado_carga" field.
func EstadoCargaEqualFold(v string) predicate.UploadRegistry {
	return predicate.UploadRegistry(sql.FieldEqualFold(FieldEstadoCarga, v))
}

// EstadoCargaContainsFold applies the ContainsFold predicate on the "estado_carga" field.
func EstadoCargaContainsFold(v string) predicate.UploadRegistry {
	return predicate.UploadRegistry(sql.FieldContainsFold(FieldEstadoCarga, v))
}

// OrigenCargaEQ applies the EQ predicate on the "origen_carga" field.
func OrigenCargaEQ(v string) predicate.UploadRegistry {
	return predicate.UploadRegistry(sql.FieldEQ(FieldOrigenCarga, v))
}

// OrigenCargaNEQ applies the NEQ predicate on the "origen_carga" field.
func OrigenCargaNEQ(v string) predicate.UploadRegistry {
	return predicate.UploadRegistry(sql.FieldNEQ(FieldOrigenCarga, v))
}

// OrigenCargaIn applies the In predicate on the "origen_carga" field.
func OrigenCargaIn(vs ...string) predicate.UploadRegistry {
	return predicate.UploadRegistry(sql.FieldIn(FieldOrigenCarga, vs...))
}

// OrigenCargaNotIn applies the NotIn predicate on the "origen_carga" field.
func OrigenCargaNotIn(vs ...string) predicate.UploadRegistry {
	return predicate.UploadRegistry(sql.FieldNotIn(FieldOrigenCarga, vs...))
}

// OrigenCargaGT applies the GT predicate on the "origen_carga" field.
func OrigenCargaGT(v string) predicate.UploadRegistry {
	return predicate.UploadRegistry(sql.FieldGT(FieldOrigenCarga, v))
}

// OrigenCargaGTE applies the GTE predicate on the "origen_carga" field.
func OrigenCargaGTE(v string) predicate.UploadRegistry {
	return predicate.UploadRegistry(sql.FieldGTE(FieldOrigenCarga, v))
}

// OrigenCargaLT applies the LT predicate on the "origen_carga" field.
func OrigenCargaLT(v string) predicate.UploadRegistry {
	return predicate.UploadRegistry(sql.FieldLT(FieldOrigenCarga, v))
}

// OrigenCargaLTE applies the LTE predicate on the "origen_carga" field.
func OrigenCargaLTE(v string) predicate.UploadRegistry {
	return predicate.UploadRegistry(sql.FieldLTE(FieldOrigenCarga, v))
}

// OrigenCargaContains applies the Contains predicate on the "origen_carga" field.
func OrigenCargaContains(v string) predicate.UploadRegistry {
	return predicate.UploadRegistry(sql.FieldContains(FieldOrigenCarga, v))
}

// OrigenCargaHasPrefix applies the HasPrefix predicate on the "origen_carga" field.
func OrigenCargaHasPrefix(v string) predicate.UploadRegistry {
	return predicate.UploadRegistry(sql.FieldHasPrefix(FieldOrigenCarga, v))
}

// OrigenCargaHasSuffix applies the HasSuffix predicate on the "origen_carga" field.
func OrigenCargaHasSuffix(v string) predicate.UploadRegistry {
	return predicate.UploadRegistry(sql.FieldHasSuffix(FieldOrigenCarga, v))
}

// OrigenCargaEqualFold applies the EqualFold predicate on the "origen_carga" field.
func OrigenCargaEqualFold(v string) predicate.UploadRegistry {
	return predicate.UploadRegistry(sql.FieldEqualFold(FieldOrigenCarga, v))
}

// OrigenCargaContainsFold applies the ContainsFold predicate on the "origen_carga" field.
func OrigenCargaContainsFold(v string) predicate.UploadRegistry {
	return predicate.UploadRegistry(sql.FieldContainsFold(FieldOrigenCarga, v))
}

// IntentosEQ applies the EQ predicate on the "intentos" field.
func IntentosEQ(v int) predicate.UploadRegistry {
	return predicate.UploadRegistry(sql.FieldEQ(FieldIntentos, v))
}

// IntentosNEQ applies the NEQ predicate on the "intentos" field.
func IntentosNEQ(v int) predicate.UploadRegistry {
	return predicate.UploadRegistry(sql.FieldNEQ(FieldIntentos, v))
}

// IntentosIn applies the In predicate on the "intentos" field.
func IntentosIn(vs ...int) predicate.UploadRegistry {
	return predicate.UploadRegistry(sql.FieldIn(FieldIntentos, vs...))
}

// IntentosNotIn applies the NotIn predicate on the "intentos" field.
func IntentosNotIn(vs ...int) predicate.UploadRegistry {
	return predicate.UploadRegistry(sql.FieldNotIn(FieldIntentos, vs...))
}

// IntentosGT applies the GT predicate on the "intentos" field.
func IntentosGT(v int) predicate.UploadRegistry {
	return predicate.UploadRegistry(sql.FieldGT(FieldIntentos, v))
}

// IntentosGTE applies the GTE predicate on the "intentos" field.
func IntentosGTE(v int) predicate.UploadRegistry {
	return predicate.UploadRegistry(sql.FieldGTE(FieldIntentos, v))
}

// IntentosLT applies the LT predicate on the "intentos" field.
func IntentosLT(v int) predicate.UploadRegistry {
	return predicate.UploadRegistry(sql.FieldLT(FieldIntentos, v))
}

// IntentosLTE applies the LTE predicate on the "intentos" field.
func IntentosLTE(v int) predicate.UploadRegistry {
	return predicate.UploadRegistry(sql.FieldLTE(FieldIntentos, v))
}

// MetadatosIsNil applies the IsNil predicate on the "metadatos" field.
func MetadatosIsNil() predicate.UploadRegistry {
	return predicate.UploadRegistry(sql.FieldIsNull(FieldMetadatos))
}

// MetadatosNotNil applies the NotNil predicate on the "metadatos" field.
func MetadatosNotNil() predicate.UploadRegistry {
	return predicate.UploadRegistry(sql.FieldNotNull(FieldMetadatos))
}

// SincronizadoBdEQ applies the EQ predicate on the "sincronizado_bd" field.
func SincronizadoBdEQ(v bool) predicate.UploadRegistry {
	return predicate.UploadRegistry(sql.FieldEQ(FieldSincronizadoBd, v))
}

// SincronizadoBdNEQ applies the NEQ predicate on the "sincronizado_bd" field.
func SincronizadoBdNEQ(v bool) predicate.UploadRegistry {
	return predicate.UploadRegistry(sql.FieldNEQ(FieldSincronizadoBd, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.UploadRegistry {
	return predicate.UploadRegistry(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.UploadRegistry {
	return predicate.UploadRegistry(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.UploadRegistry {
	return predicate.UploadRegistry(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.UploadRegistry {
	return predicate.UploadRegistry(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.UploadRegistry {
	return predicate.UploadRegistry(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.UploadRegistry {
	return predicate.UploadRegistry(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.UploadRegistry {
	return predicate.UploadRegistry(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.UploadRegistry {
	return predicate.UploadRegistry(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.UploadRegistry {
	return predicate.UploadRegistry(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.UploadRegistry {
	return predicate.UploadRegistry(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.UploadRegistry {
	return predicate.UploadRegistry(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.UploadRegistry {
	return predicate.UploadRegistry(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.UploadRegistry {
	return predicate.UploadRegistry(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.UploadRegistry {
	return predicate.UploadRegistry(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.UploadRegistry {
	return predicate.UploadRegistry(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.UploadRegistry {
	return predicate.UploadRegistry(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.UploadRegistry) predicate.UploadRegistry {
	return predicate.UploadRegistry(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.UploadRegistry) predicate.UploadRegistry {
	return predicate.UploadRegistry(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.UploadRegistry) predicate.UploadRegistry {
	return predicate.UploadRegistry(sql.NotPredicates(p))
}
