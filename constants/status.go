package constants

// UploadStatus is the canonical estado_carga for rows in upload_registry.
type UploadStatus string

// Stable values (store these exact strings in DB).
const (
	UploadStatusPendiente    UploadStatus = "pendiente"     // known but not yet pushed
	UploadStatusSubido       UploadStatus = "subido"        // bytes confirmed in object storage
	UploadStatusPreExistente UploadStatus = "pre_existente" // found already present, not re-uploaded
	UploadStatusError        UploadStatus = "error"         // last attempt failed; eligible for retry
)

// UploadOrigin is the canonical origen_carga for rows in upload_registry.
type UploadOrigin string

const (
	OriginBot          UploadOrigin = "bot"
	OriginPreExistente UploadOrigin = "pre_existente"
	OriginManual       UploadOrigin = "manual"
	OriginMigracion    UploadOrigin = "migracion"
)

// RecordOutcome classifies the per-record result of a filtered upload pass.
type RecordOutcome string

const (
	OutcomeCompletado RecordOutcome = "completado" // every file uploaded or confirmed
	OutcomeParcial    RecordOutcome = "parcial"    // some files failed
	OutcomeFallido    RecordOutcome = "fallido"    // every file failed
	OutcomeOmitido    RecordOutcome = "omitido"    // already fully uploaded, skipped
)

// DupKind says which dedup index matched within a consolidation run.
type DupKind string

const (
	DupNone     DupKind = "ninguno"
	DupHash     DupKind = "hash_exacto"
	DupRadicado DupKind = "numero_radicado"
)

// FlowStep names the stages of one company's end-to-end flow.
type FlowStep string

const (
	StepConsolidate FlowStep = "consolidacion"
	StepLoad        FlowStep = "carga_bd"
	StepReconcile   FlowStep = "verificacion_s3"
	StepUpload      FlowStep = "subida_s3"
	StepCritical    FlowStep = "error_critico"
)
