package entity

import (
	"time"

	"github.com/dfgiraldo/pqr-pipeline/constants"
)

// RawRecord is one scraped PQR record exactly as the portal bot emitted it.
// Keys are loosely typed; values may be strings or numbers.
type RawRecord map[string]any

// Record is the closed, normalized shape a RawRecord takes after the
// normalize step. Missing source keys become empty strings; no untyped map
// travels past this boundary.
type Record struct {
	NumeroRadicado     string `json:"numero_radicado"`
	Fecha              string `json:"fecha"`
	NIC                string `json:"nic"`
	DocumentoIdentidad string `json:"documento_identidad"`
	NombresApellidos   string `json:"nombres_apellidos"`
	Telefono           string `json:"telefono"`
	Celular            string `json:"celular"`
	CorreoElectronico  string `json:"correo_electronico"`
	TipoPQR            string `json:"tipo_pqr"`
	CanalRespuesta     string `json:"canal_respuesta"`
	EstadoSolicitud    string `json:"estado_solicitud"`
	NumeroReclamoSGC   string `json:"numero_reclamo_sgc,omitempty"`
}

// ValidationOutcome is the validator's verdict on one normalized record.
// Errors make the record unusable; warnings ride along into consolidation.
type ValidationOutcome struct {
	Valid       bool     `json:"es_valido"`
	Record      Record   `json:"registro"`
	Errors      []string `json:"errores,omitempty"`
	Warnings    []string `json:"advertencias,omitempty"`
	ContentHash string   `json:"hash_registro"`
}

// ConsolidatedRecord is a unique, valid record as written to the per-run
// flat files. Never mutated after the consolidation run that created it.
type ConsolidatedRecord struct {
	Record
	HashRegistro       string    `json:"hash_registro"`
	ArchivoOrigen      string    `json:"archivo_origen"`
	FechaProcesamiento time.Time `json:"fecha_procesamiento"`
	Warnings           []string  `json:"advertencias,omitempty"`
}

// ProcessingReport summarizes one company's consolidation run.
type ProcessingReport struct {
	Empresa          constants.Company `json:"empresa"`
	TotalFiles       int               `json:"total_files"`
	TotalRecords     int               `json:"total_records"`
	ValidRecords     int               `json:"valid_records"`
	InvalidRecords   int               `json:"invalid_records"`
	DuplicateRecords int               `json:"duplicate_records"`
	ProcessingTime   float64           `json:"processing_time"` // seconds
	Errors           []string          `json:"errors"`
}
