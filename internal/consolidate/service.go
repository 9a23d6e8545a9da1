// Package consolidate turns a directory of raw scraper JSON for one company
// into a single validated, deduplicated flat dataset plus a processing report.
// The contract is best-effort maximal extraction: a bad file or bad record
// degrades the run's yield but never stops it.
package consolidate

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/dfgiraldo/pqr-pipeline/constants"
	"github.com/dfgiraldo/pqr-pipeline/internal/entity"
	"github.com/dfgiraldo/pqr-pipeline/internal/record"
)

// RunResult is everything one consolidation run produced.
type RunResult struct {
	Records    []entity.ConsolidatedRecord
	Report     entity.ProcessingReport
	CSVPath    string
	JSONPath   string
	ReportPath string
}

// Service consolidates one company's raw directory per invocation. The
// dedup state is created fresh inside Run, so instances are reusable across
// companies and runs.
type Service struct {
	logger     *slog.Logger
	fileSchema *jsonschema.Schema
	errorCap   int
	now        func() time.Time // injectable for tests
}

func NewService(logger *slog.Logger, errorCap int) (*Service, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if errorCap <= 0 {
		errorCap = 50
	}
	schema, err := compileFileSchema()
	if err != nil {
		return nil, err
	}
	return &Service{logger: logger, fileSchema: schema, errorCap: errorCap, now: time.Now}, nil
}

// Run scans inputDir for the company's JSON files, normalizes, validates and
// deduplicates every record, and writes the CSV, master JSON and processing
// report into outputDir.
func (s *Service) Run(ctx context.Context, empresa constants.Company, inputDir, outputDir string) (*RunResult, error) {
	start := s.now()

	entries, err := os.ReadDir(inputDir)
	if err != nil {
		// Missing input is a step-level failure, not a degraded run.
		return nil, fmt.Errorf("read input dir %s: %w", inputDir, err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(strings.ToLower(e.Name()), ".json") {
			continue
		}
		files = append(files, e.Name())
	}
	// Processing order decides which duplicate is "first" and therefore kept.
	sort.Strings(files)

	report := entity.ProcessingReport{Empresa: empresa, TotalFiles: len(files)}
	deduper := record.NewDeduper()
	var consolidated []entity.ConsolidatedRecord

	for _, name := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		path := filepath.Join(inputDir, name)
		raws, err := s.readFile(path)
		if err != nil {
			s.logger.Warn("skipping unreadable file", "empresa", empresa, "file", name, "error", err)
			s.addError(&report, fmt.Sprintf("archivo %s: %v", name, err))
			continue
		}

		for _, raw := range raws {
			report.TotalRecords++
			rec := record.Normalize(raw)
			if rec.Fecha != "" {
				if _, ok := record.ParseDate(rec.Fecha); !ok {
					// Unparseable dates pass through unchanged; keep them
					// visible instead of silently accepting garbage.
					s.logger.Warn("unparseable fecha passed through",
						"empresa", empresa, "file", name,
						"numero_radicado", rec.NumeroRadicado, "fecha", rec.Fecha)
				}
			}

			outcome := record.Validate(rec)
			if !outcome.Valid {
				report.InvalidRecords++
				for _, e := range outcome.Errors {
					s.addError(&report, fmt.Sprintf("archivo %s, radicado %q: %s", name, rec.NumeroRadicado, e))
				}
				continue
			}

			if dup, kind := deduper.Check(rec, outcome.ContentHash); dup {
				// Duplicates are expected across scraper runs, not errors.
				report.DuplicateRecords++
				s.logger.Debug("duplicate dropped",
					"empresa", empresa, "numero_radicado", rec.NumeroRadicado, "kind", kind)
				continue
			}

			consolidated = append(consolidated, entity.ConsolidatedRecord{
				Record:             rec,
				HashRegistro:       outcome.ContentHash,
				ArchivoOrigen:      name,
				FechaProcesamiento: s.now().UTC(),
				Warnings:           outcome.Warnings,
			})
			report.ValidRecords++
		}
	}

	report.ProcessingTime = s.now().Sub(start).Seconds()

	out := &RunResult{Records: consolidated, Report: report}
	if outputDir != "" {
		if err := s.writeOutputs(empresa, outputDir, out); err != nil {
			return nil, err
		}
	}

	s.logger.Info("consolidation completed",
		"empresa", empresa,
		"total_files", report.TotalFiles,
		"total_records", report.TotalRecords,
		"valid_records", report.ValidRecords,
		"invalid_records", report.InvalidRecords,
		"duplicate_records", report.DuplicateRecords,
		"processing_time_s", report.ProcessingTime,
	)
	return out, nil
}

// readFile parses one scraper file. A top-level list is N records, a
// top-level object is 1 record.
func (s *Service) readFile(path string) ([]entity.RawRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := checkFileShape(s.fileSchema, data); err != nil {
		return nil, err
	}

	var list []entity.RawRecord
	if err := json.Unmarshal(data, &list); err == nil {
		return list, nil
	}
	var single entity.RawRecord
	if err := json.Unmarshal(data, &single); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	return []entity.RawRecord{single}, nil
}

// addError appends to the bounded error sample.
func (s *Service) addError(report *entity.ProcessingReport, msg string) {
	if len(report.Errors) < s.errorCap {
		report.Errors = append(report.Errors, msg)
	}
}
