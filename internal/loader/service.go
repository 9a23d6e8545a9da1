// Package loader moves a consolidation run's output into the relational
// store. Inserts are per-record and auto-committing: a mid-run crash leaves a
// partial load that the next run completes, because the unique constraint on
// (empresa, numero_radicado) makes re-inserts harmless.
package loader

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dfgiraldo/pqr-pipeline/constants"
	"github.com/dfgiraldo/pqr-pipeline/internal/consolidate"
	"github.com/dfgiraldo/pqr-pipeline/internal/entity"
	"github.com/dfgiraldo/pqr-pipeline/internal/repository"
)

// Result summarizes one load step.
type Result struct {
	Total    int
	Inserted int
	Skipped  int // business key already present (cross-run duplicate)
	Failed   int
	Errors   []string
}

type Service struct {
	records repository.PQRRecordRepository
	logger  *slog.Logger
}

func NewService(records repository.PQRRecordRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{records: records, logger: logger}
}

// LoadMaster reads a master JSON file and loads its records.
func (s *Service) LoadMaster(ctx context.Context, empresa constants.Company, path string) (Result, error) {
	recs, err := consolidate.ReadMaster(path)
	if err != nil {
		return Result{}, err
	}
	return s.LoadRecords(ctx, empresa, recs)
}

// LoadRecords upserts records one at a time, accumulating errors instead of
// aborting. The returned error is non-nil only when nothing could be loaded
// at all and at least one insert was attempted.
func (s *Service) LoadRecords(ctx context.Context, empresa constants.Company, recs []entity.ConsolidatedRecord) (Result, error) {
	res := Result{Total: len(recs)}

	for _, rec := range recs {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		_, existed, err := s.records.UpsertByRadicado(ctx, empresa, rec)
		if err != nil {
			res.Failed++
			res.Errors = append(res.Errors, fmt.Sprintf("radicado %s: %v", rec.NumeroRadicado, err))
			continue
		}
		if existed {
			res.Skipped++
		} else {
			res.Inserted++
		}
	}

	s.logger.Info("relational load completed",
		"empresa", empresa,
		"total", res.Total,
		"inserted", res.Inserted,
		"skipped", res.Skipped,
		"failed", res.Failed,
	)

	if res.Failed > 0 && res.Inserted == 0 && res.Skipped == 0 {
		return res, fmt.Errorf("relational load failed for all %d records", res.Failed)
	}
	return res, nil
}
