// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/dfgiraldo/pqr-pipeline/db/ent/schema"
	"github.com/dfgiraldo/pqr-pipeline/gen/ent/flowrun"
	"github.com/dfgiraldo/pqr-pipeline/gen/ent/pqrrecord"
	"github.com/dfgiraldo/pqr-pipeline/gen/ent/uploadregistry"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	flowrunFields := schema.FlowRun{}.Fields()
	_ = flowrunFields
	// flowrunDescEmpresa is the schema descriptor for empresa field.
	flowrunDescEmpresa := flowrunFields[1].Descriptor()
	// flowrun.EmpresaValidator is a validator for the "empresa" field. It is called by the builders before save.
	flowrun.EmpresaValidator = flowrunDescEmpresa.Validators[0].(func(string) error)
	// flowrunDescStartedAt is the schema descriptor for started_at field.
	flowrunDescStartedAt := flowrunFields[2].Descriptor()
	// flowrun.DefaultStartedAt holds the default value on creation for the started_at field.
	flowrun.DefaultStartedAt = flowrunDescStartedAt.Default.(func() time.Time)
	// flowrunDescSuccess is the schema descriptor for success field.
	flowrunDescSuccess := flowrunFields[4].Descriptor()
	// flowrun.DefaultSuccess holds the default value on creation for the success field.
	flowrun.DefaultSuccess = flowrunDescSuccess.Default.(bool)
	// flowrunDescID is the schema descriptor for id field.
	flowrunDescID := flowrunFields[0].Descriptor()
	// flowrun.DefaultID holds the default value on creation for the id field.
	flowrun.DefaultID = flowrunDescID.Default.(func() uuid.UUID)
	pqrrecordFields := schema.PQRRecord{}.Fields()
	_ = pqrrecordFields
	// pqrrecordDescEmpresa is the schema descriptor for empresa field.
	pqrrecordDescEmpresa := pqrrecordFields[1].Descriptor()
	// pqrrecord.EmpresaValidator is a validator for the "empresa" field. It is called by the builders before save.
	pqrrecord.EmpresaValidator = pqrrecordDescEmpresa.Validators[0].(func(string) error)
	// pqrrecordDescNumeroRadicado is the schema descriptor for numero_radicado field.
	pqrrecordDescNumeroRadicado := pqrrecordFields[2].Descriptor()
	// pqrrecord.NumeroRadicadoValidator is a validator for the "numero_radicado" field. It is called by the builders before save.
	pqrrecord.NumeroRadicadoValidator = pqrrecordDescNumeroRadicado.Validators[0].(func(string) error)
	// pqrrecordDescFecha is the schema descriptor for fecha field.
	pqrrecordDescFecha := pqrrecordFields[3].Descriptor()
	// pqrrecord.FechaValidator is a validator for the "fecha" field. It is called by the builders before save.
	pqrrecord.FechaValidator = pqrrecordDescFecha.Validators[0].(func(string) error)
	// pqrrecordDescEstadoSolicitud is the schema descriptor for estado_solicitud field.
	pqrrecordDescEstadoSolicitud := pqrrecordFields[12].Descriptor()
	// pqrrecord.EstadoSolicitudValidator is a validator for the "estado_solicitud" field. It is called by the builders before save.
	pqrrecord.EstadoSolicitudValidator = pqrrecordDescEstadoSolicitud.Validators[0].(func(string) error)
	// pqrrecordDescHashRegistro is the schema descriptor for hash_registro field.
	pqrrecordDescHashRegistro := pqrrecordFields[14].Descriptor()
	// pqrrecord.HashRegistroValidator is a validator for the "hash_registro" field. It is called by the builders before save.
	pqrrecord.HashRegistroValidator = pqrrecordDescHashRegistro.Validators[0].(func(string) error)
	// pqrrecordDescFechaProcesamiento is the schema descriptor for fecha_procesamiento field.
	pqrrecordDescFechaProcesamiento := pqrrecordFields[16].Descriptor()
	// pqrrecord.DefaultFechaProcesamiento holds the default value on creation for the fecha_procesamiento field.
	pqrrecord.DefaultFechaProcesamiento = pqrrecordDescFechaProcesamiento.Default.(func() time.Time)
	// pqrrecordDescCreatedAt is the schema descriptor for created_at field.
	pqrrecordDescCreatedAt := pqrrecordFields[17].Descriptor()
	// pqrrecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	pqrrecord.DefaultCreatedAt = pqrrecordDescCreatedAt.Default.(func() time.Time)
	// pqrrecordDescID is the schema descriptor for id field.
	pqrrecordDescID := pqrrecordFields[0].Descriptor()
	// pqrrecord.DefaultID holds the default value on creation for the id field.
	pqrrecord.DefaultID = pqrrecordDescID.Default.(func() uuid.UUID)
	uploadregistryFields := schema.UploadRegistry{}.Fields()
	_ = uploadregistryFields
	// uploadregistryDescNombreArchivo is the schema descriptor for nombre_archivo field.
	uploadregistryDescNombreArchivo := uploadregistryFields[1].Descriptor()
	// uploadregistry.NombreArchivoValidator is a validator for the "nombre_archivo" field. It is called by the builders before save.
	uploadregistry.NombreArchivoValidator = uploadregistryDescNombreArchivo.Validators[0].(func(string) error)
	// uploadregistryDescClaveS3 is the schema descriptor for clave_s3 field.
	uploadregistryDescClaveS3 := uploadregistryFields[2].Descriptor()
	// uploadregistry.ClaveS3Validator is a validator for the "clave_s3" field. It is called by the builders before save.
	uploadregistry.ClaveS3Validator = uploadregistryDescClaveS3.Validators[0].(func(string) error)
	// uploadregistryDescHashArchivo is the schema descriptor for hash_archivo field.
	uploadregistryDescHashArchivo := uploadregistryFields[3].Descriptor()
	// uploadregistry.HashArchivoValidator is a validator for the "hash_archivo" field. It is called by the builders before save.
	uploadregistry.HashArchivoValidator = uploadregistryDescHashArchivo.Validators[0].(func(string) error)
	// uploadregistryDescEmpresa is the schema descriptor for empresa field.
	uploadregistryDescEmpresa := uploadregistryFields[4].Descriptor()
	// uploadregistry.EmpresaValidator is a validator for the "empresa" field. It is called by the builders before save.
	uploadregistry.EmpresaValidator = uploadregistryDescEmpresa.Validators[0].(func(string) error)
	// uploadregistryDescEstadoCarga is the schema descriptor for estado_carga field.
	uploadregistryDescEstadoCarga := uploadregistryFields[6].Descriptor()
	// uploadregistry.DefaultEstadoCarga holds the default value on creation for the estado_carga field.
	uploadregistry.DefaultEstadoCarga = uploadregistryDescEstadoCarga.Default.(string)
	// uploadregistry.EstadoCargaValidator is a validator for the "estado_carga" field. It is called by the builders before save.
	uploadregistry.EstadoCargaValidator = uploadregistryDescEstadoCarga.Validators[0].(func(string) error)
	// uploadregistryDescOrigenCarga is the schema descriptor for origen_carga field.
	uploadregistryDescOrigenCarga := uploadregistryFields[7].Descriptor()
	// uploadregistry.DefaultOrigenCarga holds the default value on creation for the origen_carga field.
	uploadregistry.DefaultOrigenCarga = uploadregistryDescOrigenCarga.Default.(string)
	// uploadregistry.OrigenCargaValidator is a validator for the "origen_carga" field. It is called by the builders before save.
	uploadregistry.OrigenCargaValidator = uploadregistryDescOrigenCarga.Validators[0].(func(string) error)
	// uploadregistryDescIntentos is the schema descriptor for intentos field.
	uploadregistryDescIntentos := uploadregistryFields[8].Descriptor()
	// uploadregistry.DefaultIntentos holds the default value on creation for the intentos field.
	uploadregistry.DefaultIntentos = uploadregistryDescIntentos.Default.(int)
	// uploadregistry.IntentosValidator is a validator for the "intentos" field. It is called by the builders before save.
	uploadregistry.IntentosValidator = uploadregistryDescIntentos.Validators[0].(func(int) error)
	// uploadregistryDescSincronizadoBd is the schema descriptor for sincronizado_bd field.
	uploadregistryDescSincronizadoBd := uploadregistryFields[10].Descriptor()
	// uploadregistry.DefaultSincronizadoBd holds the default value on creation for the sincronizado_bd field.
	uploadregistry.DefaultSincronizadoBd = uploadregistryDescSincronizadoBd.Default.(bool)
	// uploadregistryDescCreatedAt is the schema descriptor for created_at field.
	uploadregistryDescCreatedAt := uploadregistryFields[11].Descriptor()
	// uploadregistry.DefaultCreatedAt holds the default value on creation for the created_at field.
	uploadregistry.DefaultCreatedAt = uploadregistryDescCreatedAt.Default.(func() time.Time)
	// uploadregistryDescUpdatedAt is the schema descriptor for updated_at field.
	uploadregistryDescUpdatedAt := uploadregistryFields[12].Descriptor()
	// uploadregistry.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	uploadregistry.DefaultUpdatedAt = uploadregistryDescUpdatedAt.Default.(func() time.Time)
	// uploadregistry.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	uploadregistry.UpdateDefaultUpdatedAt = uploadregistryDescUpdatedAt.UpdateDefault.(func() time.Time)
	// uploadregistryDescID is the schema descriptor for id field.
	uploadregistryDescID := uploadregistryFields[0].Descriptor()
	// uploadregistry.DefaultID holds the default value on creation for the id field.
	uploadregistry.DefaultID = uploadregistryDescID.Default.(func() uuid.UUID)
}
