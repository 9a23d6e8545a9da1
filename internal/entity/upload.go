package entity

import (
	"github.com/google/uuid"

	"github.com/dfgiraldo/pqr-pipeline/constants"
)

// UploadCandidate is one ingested record joined against the upload registry:
// a record whose files may still need to reach object storage.
type UploadCandidate struct {
	NumeroRadicado   string
	Empresa          constants.Company
	NumeroReclamoSGC string
	Files            []string // resolved local paths; empty when files are missing
	RegistryID       *uuid.UUID
	EstadoS3         constants.UploadStatus
	Intentos         int
	NeedsUpload      bool
	MissingFiles     bool
}

// ReconcileSummary is the reconciler's per-company result.
type ReconcileSummary struct {
	Empresa           constants.Company
	TotalRegistros    int
	Subidos           int
	PendientesS3      int
	ArchivosFaltantes int
	Candidates        []UploadCandidate
}

// FileUploadResult is the outcome for a single file of a candidate.
type FileUploadResult struct {
	Path         string
	ClaveS3      string
	HashArchivo  string
	Uploaded     bool
	PreExistente bool
	Err          string
}

// RecordUploadResult aggregates one candidate's per-file outcomes.
type RecordUploadResult struct {
	NumeroRadicado string
	Outcome        constants.RecordOutcome
	Files          []FileUploadResult
}

// UploadSummary is the filtered uploader's per-company result.
type UploadSummary struct {
	Empresa               constants.Company
	RegistrosProcesados   int
	Completados           int
	Parciales             int
	Fallidos              int
	Omitidos              int
	ArchivosSubidos       int
	ArchivosPreexistentes int
	ArchivosFallidos      int
	Results               []RecordUploadResult
}
