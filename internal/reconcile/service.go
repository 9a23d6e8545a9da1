// Package reconcile joins the ingested-records table against the upload
// registry to decide, per record, whether its files still need to reach
// object storage.
package reconcile

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/dfgiraldo/pqr-pipeline/constants"
	"github.com/dfgiraldo/pqr-pipeline/gen/ent"
	"github.com/dfgiraldo/pqr-pipeline/internal/entity"
	"github.com/dfgiraldo/pqr-pipeline/internal/repository"
)

type Service struct {
	records      repository.PQRRecordRepository
	registry     repository.UploadRegistryRepository
	processedDir string
	recordLimit  int
	logger       *slog.Logger
}

func NewService(records repository.PQRRecordRepository, registry repository.UploadRegistryRepository, processedDir string, recordLimit int, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		records:      records,
		registry:     registry,
		processedDir: processedDir,
		recordLimit:  recordLimit,
		logger:       logger,
	}
}

// Reconcile left-joins the company's ingested records against the upload
// registry on the business key and resolves local files for every pending
// record. Records whose files cannot be located are counted but stay in the
// candidate list flagged MissingFiles: a diagnosable dead end, not a silent
// drop.
func (s *Service) Reconcile(ctx context.Context, empresa constants.Company) (entity.ReconcileSummary, error) {
	summary := entity.ReconcileSummary{Empresa: empresa}

	rows, err := s.records.ListByEmpresa(ctx, empresa, s.recordLimit)
	if err != nil {
		return summary, fmt.Errorf("list records: %w", err)
	}
	regRows, err := s.registry.ListByEmpresa(ctx, empresa)
	if err != nil {
		return summary, fmt.Errorf("list registry: %w", err)
	}

	byClaim := groupByClaim(regRows)
	idx := buildSGCIndex(s.processedDir)

	for _, row := range rows {
		summary.TotalRegistros++

		cand := entity.UploadCandidate{
			NumeroRadicado:   row.NumeroRadicado,
			Empresa:          empresa,
			NumeroReclamoSGC: row.NumeroReclamoSgc,
		}
		if cand.NumeroReclamoSGC == "" {
			cand.NumeroReclamoSGC = idx[row.NumeroRadicado]
		}

		// Records without an SGC can never match registry rows: the empty
		// group would alias every other unresolved row, so they go straight
		// to pendiente.
		state := joinState{estado: constants.UploadStatusPendiente, needsUpload: true}
		if cand.NumeroReclamoSGC != "" {
			state = claimState(byClaim[cand.NumeroReclamoSGC])
			s.markSynchronized(ctx, byClaim[cand.NumeroReclamoSGC])
		}
		cand.EstadoS3 = state.estado
		cand.RegistryID = state.registryID
		cand.Intentos = state.intentos
		cand.NeedsUpload = state.needsUpload

		if !cand.NeedsUpload {
			summary.Subidos++
			continue
		}

		if cand.NumeroReclamoSGC != "" {
			cand.Files = globClaimFiles(s.processedDir, cand.NumeroReclamoSGC)
		}
		if len(cand.Files) == 0 {
			cand.MissingFiles = true
			summary.ArchivosFaltantes++
			s.logger.Warn("pending record has no local files",
				"empresa", empresa,
				"numero_radicado", cand.NumeroRadicado,
				"numero_reclamo_sgc", cand.NumeroReclamoSGC)
		}

		summary.PendientesS3++
		summary.Candidates = append(summary.Candidates, cand)
	}

	s.logger.Info("reconciliation completed",
		"empresa", empresa,
		"total_registros", summary.TotalRegistros,
		"subidos", summary.Subidos,
		"pendientes_s3", summary.PendientesS3,
		"archivos_faltantes", summary.ArchivosFaltantes,
	)
	return summary, nil
}

// markSynchronized flips sincronizado_bd on registry rows whose record has
// just been confirmed present in the relational store. Rows are otherwise
// never updated by reconciliation. Failures are logged, not fatal; the next
// pass retries.
func (s *Service) markSynchronized(ctx context.Context, rows []*ent.UploadRegistry) {
	for _, row := range rows {
		if row.SincronizadoBd {
			continue
		}
		if err := s.registry.MarkSincronizado(ctx, row.ID); err != nil {
			s.logger.Error("failed to mark registry row synchronized",
				"id", row.ID, "clave_s3", row.ClaveS3, "error", err)
		}
	}
}

// joinState is the claim-level verdict derived from its registry rows.
type joinState struct {
	estado      constants.UploadStatus
	registryID  *uuid.UUID
	intentos    int
	needsUpload bool
}

func groupByClaim(rows []*ent.UploadRegistry) map[string][]*ent.UploadRegistry {
	m := make(map[string][]*ent.UploadRegistry, len(rows))
	for _, row := range rows {
		m[row.NumeroReclamoSgc] = append(m[row.NumeroReclamoSgc], row)
	}
	return m
}

// claimState folds a claim's per-file registry rows into one verdict:
// no rows => pendiente; all subido => done; any error => retry (always
// eligible, attempt counter carried); anything else => pendiente.
func claimState(rows []*ent.UploadRegistry) joinState {
	out := joinState{estado: constants.UploadStatusPendiente, needsUpload: true}

	if len(rows) == 0 {
		return out
	}

	id := rows[0].ID
	out.registryID = &id

	allSubido := true
	anyError := false
	for _, row := range rows {
		if row.Intentos > out.intentos {
			out.intentos = row.Intentos
		}
		switch constants.UploadStatus(row.EstadoCarga) {
		case constants.UploadStatusSubido, constants.UploadStatusPreExistente:
			// counts as uploaded
		case constants.UploadStatusError:
			anyError = true
			allSubido = false
		default:
			allSubido = false
		}
	}

	switch {
	case allSubido:
		out.estado = constants.UploadStatusSubido
		out.needsUpload = false
	case anyError:
		out.estado = constants.UploadStatusError
	}
	return out
}
