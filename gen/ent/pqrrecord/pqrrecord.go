// Code generated by ent, DO NOT EDIT.

package pqrrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the pqrrecord type in the database.
	Label = "pqr_record"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldEmpresa holds the string denoting the empresa field in the database.
	FieldEmpresa = "empresa"
	// FieldNumeroRadicado holds the string denoting the numero_radicado field in the database.
	FieldNumeroRadicado = "numero_radicado"
	// FieldFecha holds the string denoting the fecha field in the database.
	FieldFecha = "fecha"
	// FieldTipoPqr holds the string denoting the tipo_pqr field in the database.
	FieldTipoPqr = "tipo_pqr"
	// FieldNic holds the string denoting the nic field in the database.
	FieldNic = "nic"
	// FieldDocumentoIdentidad holds the string denoting the documento_identidad field in the database.
	FieldDocumentoIdentidad = "documento_identidad"
	// FieldNombresApellidos holds the string denoting the nombres_apellidos field in the database.
	FieldNombresApellidos = "nombres_apellidos"
	// FieldTelefono holds the string denoting the telefono field in the database.
	FieldTelefono = "telefono"
	// FieldCelular holds the string denoting the celular field in the database.
	FieldCelular = "celular"
	// FieldCorreoElectronico holds the string denoting the correo_electronico field in the database.
	FieldCorreoElectronico = "correo_electronico"
	// FieldCanalRespuesta holds the string denoting the canal_respuesta field in the database.
	FieldCanalRespuesta = "canal_respuesta"
	// FieldEstadoSolicitud holds the string denoting the estado_solicitud field in the database.
	FieldEstadoSolicitud = "estado_solicitud"
	// FieldNumeroReclamoSgc holds the string denoting the numero_reclamo_sgc field in the database.
	FieldNumeroReclamoSgc = "numero_reclamo_sgc"
	// FieldHashRegistro holds the string denoting the hash_registro field in the database.
	FieldHashRegistro = "hash_registro"
	// FieldArchivoOrigen holds the string denoting the archivo_origen field in the database.
	FieldArchivoOrigen = "archivo_origen"
	// FieldFechaProcesamiento holds the string denoting the fecha_procesamiento field in the database.
	FieldFechaProcesamiento = "fecha_procesamiento"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the pqrrecord in the database.
	Table = "pqr_records"
)

// Columns holds all SQL columns for pqrrecord fields.
var Columns = []string{
	FieldID,
	FieldEmpresa,
	FieldNumeroRadicado,
	FieldFecha,
	FieldTipoPqr,
	FieldNic,
	FieldDocumentoIdentidad,
	FieldNombresApellidos,
	FieldTelefono,
	FieldCelular,
	FieldCorreoElectronico,
	FieldCanalRespuesta,
	FieldEstadoSolicitud,
	FieldNumeroReclamoSgc,
	FieldHashRegistro,
	FieldArchivoOrigen,
	FieldFechaProcesamiento,
	FieldCreatedAt,
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
	// EmpresaValidator is a validator for the "empresa" field. It is called by the builders before save.
	EmpresaValidator func(string) error
	// NumeroRadicadoValidator is a validator for the "numero_radicado" field. It is called by the builders before save.
	NumeroRadicadoValidator func(string) error
	// FechaValidator is a validator for the "fecha" field. It is called by the builders before save.
	FechaValidator func(string) error
	// EstadoSolicitudValidator is a validator for the "estado_solicitud" field. It is called by the builders before save.
	EstadoSolicitudValidator func(string) error
	// HashRegistroValidator is a validator for the "hash_registro" field. It is called by the builders before save.
	HashRegistroValidator func(string) error
	// DefaultFechaProcesamiento holds the default value on creation for the "fecha_procesamiento" field.
	DefaultFechaProcesamiento func() time.Time
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the PQRRecord queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByEmpresa orders the results by the empresa field.
func ByEmpresa(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmpresa, opts...).ToFunc()
}

// ByNumeroRadicado orders the results by the numero_radicado field.
func ByNumeroRadicado(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNumeroRadicado, opts...).ToFunc()
}

// ByFecha orders the results by the fecha field.
func ByFecha(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFecha, opts...).ToFunc()
}

// ByTipoPqr orders the results by the tipo_pqr field.
func ByTipoPqr(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTipoPqr, opts...).ToFunc()
}

// ByNic orders the results by the nic field.
func ByNic(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNic, opts...).ToFunc()
}

// ByDocumentoIdentidad orders the results by the documento_identidad field.
func ByDocumentoIdentidad(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocumentoIdentidad, opts...).ToFunc()
}

// ByNombresApellidos orders the results by the nombres_apellidos field.
func ByNombresApellidos(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNombresApellidos, opts...).ToFunc()
}

// ByTelefono orders the results by the telefono field.
func ByTelefono(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTelefono, opts...).ToFunc()
}

// ByCelular orders the results by the celular field.
func ByCelular(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCelular, opts...).ToFunc()
}

// ByCorreoElectronico orders the results by the correo_electronico field.
func ByCorreoElectronico(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorreoElectronico, opts...).ToFunc()
}

// ByCanalRespuesta orders the results by the canal_respuesta field.
func ByCanalRespuesta(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCanalRespuesta, opts...).ToFunc()
}

// ByEstadoSolicitud orders the results by the estado_solicitud field.
func ByEstadoSolicitud(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEstadoSolicitud, opts...).ToFunc()
}

// ByNumeroReclamoSgc orders the results by the numero_reclamo_sgc field.
func ByNumeroReclamoSgc(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNumeroReclamoSgc, opts...).ToFunc()
}

// ByHashRegistro orders the results by the hash_registro field.
func ByHashRegistro(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHashRegistro, opts...).ToFunc()
}

// ByArchivoOrigen orders the results by the archivo_origen field.
func ByArchivoOrigen(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldArchivoOrigen, opts...).ToFunc()
}

// ByFechaProcesamiento orders the results by the fecha_procesamiento field.
func ByFechaProcesamiento(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFechaProcesamiento, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
