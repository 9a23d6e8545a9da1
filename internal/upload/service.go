// Package upload pushes a reconciliation pass's pending files to object
// storage, at most once per distinct file content. The registry's unique
// constraints on hash_archivo and clave_s3 are the actual guarantee; the
// checks here exist to avoid needless transfers and to classify outcomes.
package upload

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/dfgiraldo/pqr-pipeline/constants"
	"github.com/dfgiraldo/pqr-pipeline/internal/entity"
	"github.com/dfgiraldo/pqr-pipeline/internal/repository"
	"github.com/dfgiraldo/pqr-pipeline/internal/storage"
)

type Service struct {
	registry repository.UploadRegistryRepository
	store    storage.ObjectStore
	basePath string
	dryRun   bool
	logger   *slog.Logger
	now      func() time.Time
}

func NewService(registry repository.UploadRegistryRepository, store storage.ObjectStore, basePath string, dryRun bool, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		registry: registry,
		store:    store,
		basePath: basePath,
		dryRun:   dryRun,
		logger:   logger,
		now:      time.Now,
	}
}

// Upload consumes the reconciler's candidate list. Candidates whose files
// could not be located are skipped (they stay pending until files reappear);
// everything else is processed file by file, errors accumulated per record.
func (s *Service) Upload(ctx context.Context, rec entity.ReconcileSummary) (entity.UploadSummary, error) {
	summary := entity.UploadSummary{Empresa: rec.Empresa}

	for _, cand := range rec.Candidates {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		if cand.MissingFiles || len(cand.Files) == 0 {
			continue
		}

		result := s.uploadRecord(ctx, cand)
		summary.RegistrosProcesados++
		summary.Results = append(summary.Results, result)

		switch result.Outcome {
		case constants.OutcomeCompletado:
			summary.Completados++
		case constants.OutcomeParcial:
			summary.Parciales++
		case constants.OutcomeFallido:
			summary.Fallidos++
		case constants.OutcomeOmitido:
			summary.Omitidos++
		}
		for _, f := range result.Files {
			switch {
			case f.Err != "":
				summary.ArchivosFallidos++
			case f.Uploaded:
				summary.ArchivosSubidos++
			case f.PreExistente:
				summary.ArchivosPreexistentes++
			}
		}
	}

	s.logger.Info("filtered upload completed",
		"empresa", rec.Empresa,
		"registros_procesados", summary.RegistrosProcesados,
		"completados", summary.Completados,
		"parciales", summary.Parciales,
		"fallidos", summary.Fallidos,
		"omitidos", summary.Omitidos,
		"archivos_subidos", summary.ArchivosSubidos,
		"archivos_preexistentes", summary.ArchivosPreexistentes,
		"archivos_fallidos", summary.ArchivosFallidos,
		"dry_run", s.dryRun,
	)
	return summary, nil
}

func (s *Service) uploadRecord(ctx context.Context, cand entity.UploadCandidate) entity.RecordUploadResult {
	result := entity.RecordUploadResult{NumeroRadicado: cand.NumeroRadicado}

	var failed, acted, alreadyDone int
	for _, path := range cand.Files {
		fr := s.uploadFile(ctx, cand, path)
		result.Files = append(result.Files, fr)
		switch {
		case fr.Err != "":
			failed++
		case fr.Uploaded || fr.PreExistente:
			acted++
		default:
			alreadyDone++
		}
	}

	switch {
	case failed == len(result.Files):
		result.Outcome = constants.OutcomeFallido
	case failed > 0:
		result.Outcome = constants.OutcomeParcial
	case acted == 0:
		// every file was already registered as uploaded before this pass
		result.Outcome = constants.OutcomeOmitido
	default:
		result.Outcome = constants.OutcomeCompletado
	}
	return result
}

// uploadFile applies the at-most-once ladder to a single file:
// registry-by-hash, registry-by-key, direct storage check, then upload.
func (s *Service) uploadFile(ctx context.Context, cand entity.UploadCandidate, path string) entity.FileUploadResult {
	filename := filepath.Base(path)
	out := entity.FileUploadResult{Path: path}

	hash, err := FileSHA256(path)
	if err != nil {
		out.Err = err.Error()
		return out
	}
	out.HashArchivo = hash
	out.ClaveS3 = BuildKey(s.basePath, cand.Empresa, cand.NumeroReclamoSGC, filename)

	// Identical content is never pushed twice, no matter how many times the
	// pipeline runs or which path rediscovered the file.
	if row, err := s.registry.GetByHash(ctx, hash); err == nil {
		return s.settleRegistered(ctx, row.ID, constants.UploadStatus(row.EstadoCarga), out, path, filename)
	}
	if row, err := s.registry.GetByClave(ctx, out.ClaveS3); err == nil {
		return s.settleRegistered(ctx, row.ID, constants.UploadStatus(row.EstadoCarga), out, path, filename)
	}

	// No registry row. A prior run may have uploaded the bytes and crashed
	// before bookkeeping; ask storage before transferring anything.
	exists, err := s.store.Exists(ctx, out.ClaveS3)
	if err != nil {
		out.Err = err.Error()
		return out
	}
	if exists {
		out.PreExistente = true
		if !s.dryRun {
			s.writeRow(ctx, cand, filename, out, constants.UploadStatusPreExistente, constants.OriginPreExistente)
		}
		return out
	}

	if s.dryRun {
		s.logger.Info("dry-run: would upload", "clave_s3", out.ClaveS3, "path", path)
		out.Uploaded = true
		return out
	}

	if err := s.putFile(ctx, out.ClaveS3, path, filename); err != nil {
		out.Err = err.Error()
		s.writeRow(ctx, cand, filename, out, constants.UploadStatusError, constants.OriginBot)
		return out
	}
	out.Uploaded = true
	s.writeRow(ctx, cand, filename, out, constants.UploadStatusSubido, constants.OriginBot)
	return out
}

// settleRegistered handles a file that already has a registry row. Uploaded
// states become a no-op; error/pendiente rows get one retry attempt now.
func (s *Service) settleRegistered(ctx context.Context, id uuid.UUID, estado constants.UploadStatus, out entity.FileUploadResult, path, filename string) entity.FileUploadResult {
	switch estado {
	case constants.UploadStatusSubido, constants.UploadStatusPreExistente:
		// already settled by an earlier pass; nothing to do
		return out
	default:
		if s.dryRun {
			s.logger.Info("dry-run: would retry", "clave_s3", out.ClaveS3, "estado", estado)
			out.Uploaded = true
			return out
		}
		if err := s.putFile(ctx, out.ClaveS3, path, filename); err != nil {
			out.Err = err.Error()
			if _, merr := s.registry.MarkEstado(ctx, id, constants.UploadStatusError); merr != nil {
				s.logger.Error("failed to record retry failure", "clave_s3", out.ClaveS3, "error", merr)
			}
			return out
		}
		out.Uploaded = true
		if _, merr := s.registry.MarkEstado(ctx, id, constants.UploadStatusSubido); merr != nil {
			s.logger.Error("failed to record retry success", "clave_s3", out.ClaveS3, "error", merr)
		}
		return out
	}
}

func (s *Service) putFile(ctx context.Context, key, path, filename string) error {
	ext := filepath.Ext(filename)
	return s.store.PutFile(ctx, key, path, constants.ContentTypeFor(ext), map[string]string{
		"origen":       string(constants.OriginBot),
		"fecha-subida": s.now().UTC().Format(time.RFC3339),
	})
}

// writeRow records the outcome for a file that had no registry row yet.
// Failures here are logged, not fatal: the next reconciliation pass will
// rediscover the file via the storage check.
func (s *Service) writeRow(ctx context.Context, cand entity.UploadCandidate, filename string, fr entity.FileUploadResult, estado constants.UploadStatus, origen constants.UploadOrigin) {
	_, err := s.registry.Create(ctx, repository.RegistryRowParams{
		NombreArchivo:    filename,
		ClaveS3:          fr.ClaveS3,
		HashArchivo:      fr.HashArchivo,
		Empresa:          cand.Empresa,
		NumeroReclamoSGC: cand.NumeroReclamoSGC,
		Estado:           estado,
		Origen:           origen,
		Metadatos: map[string]string{
			"numero_radicado": cand.NumeroRadicado,
			"fecha_registro":  s.now().UTC().Format(time.RFC3339),
		},
	})
	if err != nil {
		s.logger.Error("failed to write registry row",
			"clave_s3", fr.ClaveS3, "estado", estado, "error", err)
	}
}
