// Code generated by ent, DO NOT EDIT.

package uploadregistry

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the uploadregistry type in the database.
	Label = "upload_registry"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldNombreArchivo holds the string denoting the nombre_archivo field in the database.
	FieldNombreArchivo = "nombre_archivo"
	// FieldClaveS3 holds the string denoting the clave_s3 field in the database.
	FieldClaveS3 = "clave_s3"
	// FieldHashArchivo holds the string denoting the hash_archivo field in the database.
	FieldHashArchivo = "hash_archivo"
	// FieldEmpresa holds the string denoting the empresa field in the database.
	FieldEmpresa = "empresa"
	// FieldNumeroReclamoSgc holds the string denoting the numero_reclamo_sgc field in the database.
	FieldNumeroReclamoSgc = "numero_reclamo_sgc"
	// FieldEstadoCarga holds the string denoting the estado_carga field in the database.
	FieldEstadoCarga = "estado_carga"
	// FieldOrigenCarga holds the string denoting the origen_carga field in the database.
	FieldOrigenCarga = "origen_carga"
	// FieldIntentos holds the string denoting the intentos field in the database.
	FieldIntentos = "intentos"
	// FieldMetadatos holds the string denoting the metadatos field in the database.
	FieldMetadatos = "metadatos"
	// FieldSincronizadoBd holds the string denoting the sincronizado_bd field in the database.
	FieldSincronizadoBd = "sincronizado_bd"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the uploadregistry in the database.
	Table = "upload_registry"
)

// Columns holds all SQL columns for uploadregistry fields.
var Columns = []string{
	FieldID,
	FieldNombreArchivo,
	FieldClaveS3,
	FieldHashArchivo,
	FieldEmpresa,
	FieldNumeroReclamoSgc,
	FieldEstadoCarga,
	FieldOrigenCarga,
	FieldIntentos,
	FieldMetadatos,
	FieldSincronizadoBd,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// NombreArchivoValidator is a validator for the "nombre_archivo" field. It is called by the builders before save.
	NombreArchivoValidator func(string) error
	// ClaveS3Validator is a validator for the "clave_s3" field. It is called by the builders before save.
	ClaveS3Validator func(string) error
	// HashArchivoValidator is a validator for the "hash_archivo" field. It is called by the builders before save.
	HashArchivoValidator func(string) error
	// EmpresaValidator is a validator for the "empresa" field. It is called by the builders before save.
	EmpresaValidator func(string) error
	// DefaultEstadoCarga holds the default value on creation for the "estado_carga" field.
	DefaultEstadoCarga string
	// EstadoCargaValidator is a validator for the "estado_carga" field. It is called by the builders before save.
	EstadoCargaValidator func(string) error
	// DefaultOrigenCarga holds the default value on creation for the "origen_carga" field.
	DefaultOrigenCarga string
	// OrigenCargaValidator is a validator for the "origen_carga" field. It is called by the builders before save.
	OrigenCargaValidator func(string) error
	// DefaultIntentos holds the default value on creation for the "intentos" field.
	DefaultIntentos int
	// IntentosValidator is a validator for the "intentos" field. It is called by the builders before save.
	IntentosValidator func(int) error
	// DefaultSincronizadoBd holds the default value on creation for the "sincronizado_bd" field.
	DefaultSincronizadoBd bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the UploadRegistry queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByNombreArchivo orders the results by the nombre_archivo field.
func ByNombreArchivo(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNombreArchivo, opts...).ToFunc()
}

// ByClaveS3 orders the results by the clave_s3 field.
func ByClaveS3(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClaveS3, opts...).ToFunc()
}

// ByHashArchivo orders the results by the hash_archivo field.
func ByHashArchivo(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHashArchivo, opts...).ToFunc()
}

// ByEmpresa orders the results by the empresa field.
func ByEmpresa(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmpresa, opts...).ToFunc()
}

// ByNumeroReclamoSgc orders the results by the numero_reclamo_sgc field.
func ByNumeroReclamoSgc(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNumeroReclamoSgc, opts...).ToFunc()
}

// ByEstadoCarga orders the results by the estado_carga field.
func ByEstadoCarga(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEstadoCarga, opts...).ToFunc()
}

// ByOrigenCarga orders the results by the origen_carga field.
func ByOrigenCarga(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOrigenCarga, opts...).ToFunc()
}

// ByIntentos orders the results by the intentos field.
func ByIntentos(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIntentos, opts...).ToFunc()
}

// BySincronizadoBd orders the results by the sincronizado_bd field.
func BySincronizadoBd(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSincronizadoBd, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
