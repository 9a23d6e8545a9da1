// Package flow composes consolidation, relational load, reconciliation and
// filtered upload into one end-to-end run per company.
package flow

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/dfgiraldo/pqr-pipeline/constants"
	"github.com/dfgiraldo/pqr-pipeline/internal/common"
	"github.com/dfgiraldo/pqr-pipeline/internal/consolidate"
	"github.com/dfgiraldo/pqr-pipeline/internal/entity"
	"github.com/dfgiraldo/pqr-pipeline/internal/loader"
	"github.com/dfgiraldo/pqr-pipeline/internal/repository"
)

// Consolidator is the consolidation step dependency.
type Consolidator interface {
	Run(ctx context.Context, empresa constants.Company, inputDir, outputDir string) (*consolidate.RunResult, error)
}

// RecordLoader is the relational-load step dependency.
type RecordLoader interface {
	LoadRecords(ctx context.Context, empresa constants.Company, recs []entity.ConsolidatedRecord) (loader.Result, error)
}

// Reconciler is the registry-verification step dependency.
type Reconciler interface {
	Reconcile(ctx context.Context, empresa constants.Company) (entity.ReconcileSummary, error)
}

// Uploader is the filtered-upload step dependency.
type Uploader interface {
	Upload(ctx context.Context, rec entity.ReconcileSummary) (entity.UploadSummary, error)
}

// Orchestrator runs one company's pipeline start to finish, recording a step
// result per stage. Consolidation and load are required; reconciliation and
// upload failures are recorded but do not halt the flow.
type Orchestrator struct {
	consolidator Consolidator
	loader       RecordLoader
	reconciler   Reconciler
	uploader     Uploader
	flowRuns     repository.FlowRunRepository // nil disables persistence
	paths        common.PathsConfig
	logger       *slog.Logger
	now          func() time.Time
}

func NewOrchestrator(c Consolidator, l RecordLoader, r Reconciler, u Uploader, runs repository.FlowRunRepository, paths common.PathsConfig, logger *slog.Logger) *Orchestrator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Orchestrator{
		consolidator: c,
		loader:       l,
		reconciler:   r,
		uploader:     u,
		flowRuns:     runs,
		paths:        paths,
		logger:       logger,
		now:          time.Now,
	}
}

// RunCompany executes the full flow for one company. The returned error is
// non-nil only when a required step failed or something unexpected escaped a
// step; partial reconcile/upload failures leave err nil and show up in the
// step results instead.
func (o *Orchestrator) RunCompany(ctx context.Context, empresa constants.Company) (result entity.FlowResult, err error) {
	ctx = common.WithCompany(ctx, empresa)
	result = entity.FlowResult{Empresa: empresa, StartedAt: o.now().UTC()}

	var runID *uuid.UUID
	if o.flowRuns != nil {
		if run, rerr := o.flowRuns.Start(ctx, empresa); rerr != nil {
			o.logger.Error("failed to persist flow run", "empresa", empresa, "error", rerr)
		} else {
			runID = &run.ID
		}
	}

	defer func() {
		// Truly unexpected failures become a synthetic critical step and are
		// re-raised to the caller for alerting.
		if r := recover(); r != nil {
			err = fmt.Errorf("critical error in %s flow: %v", empresa, r)
			result.Steps = append(result.Steps, entity.FlowStepResult{
				Step:    constants.StepCritical,
				Success: false,
				Errors:  []string{err.Error()},
			})
		}
		result.FinishedAt = o.now().UTC()
		result.Success = err == nil && allRequiredOK(result.Steps)
		if runID != nil {
			if ferr := o.flowRuns.Finish(ctx, *runID, result.Success, result.Steps); ferr != nil {
				o.logger.Error("failed to finish flow run", "empresa", empresa, "error", ferr)
			}
		}
	}()

	o.logger.Info("starting flow", "empresa", empresa)

	// 1. Consolidation (required)
	stepStart := o.now()
	runRes, cerr := o.consolidator.Run(ctx, empresa,
		filepath.Join(o.paths.InputDir, string(empresa)),
		filepath.Join(o.paths.OutputDir, string(empresa)))
	if cerr != nil {
		result.Steps = append(result.Steps, failedStep(constants.StepConsolidate, stepStart, o.now(), cerr))
		return result, fmt.Errorf("consolidation failed: %w", cerr)
	}
	result.Steps = append(result.Steps, entity.FlowStepResult{
		Step:      constants.StepConsolidate,
		Success:   true,
		Duration:  o.now().Sub(stepStart),
		Processed: runRes.Report.ValidRecords,
		Errors:    runRes.Report.Errors,
	})

	// 2. Relational load (required)
	stepStart = o.now()
	loadRes, lerr := o.loader.LoadRecords(ctx, empresa, runRes.Records)
	if lerr != nil {
		result.Steps = append(result.Steps, failedStep(constants.StepLoad, stepStart, o.now(), lerr))
		return result, fmt.Errorf("relational load failed: %w", lerr)
	}
	result.Steps = append(result.Steps, entity.FlowStepResult{
		Step:      constants.StepLoad,
		Success:   true,
		Duration:  o.now().Sub(stepStart),
		Processed: loadRes.Inserted + loadRes.Skipped,
		Errors:    loadRes.Errors,
	})

	// 3. Reconciliation (non-fatal)
	stepStart = o.now()
	recSummary, rerr := o.reconciler.Reconcile(ctx, empresa)
	if rerr != nil {
		o.logger.Error("reconciliation failed", "empresa", empresa, "error", rerr)
		result.Steps = append(result.Steps, failedStep(constants.StepReconcile, stepStart, o.now(), rerr))
		return result, nil
	}
	result.Steps = append(result.Steps, entity.FlowStepResult{
		Step:      constants.StepReconcile,
		Success:   true,
		Duration:  o.now().Sub(stepStart),
		Processed: recSummary.PendientesS3,
	})

	// 4. Filtered upload (non-fatal)
	stepStart = o.now()
	upSummary, uerr := o.uploader.Upload(ctx, recSummary)
	if uerr != nil {
		o.logger.Error("upload failed", "empresa", empresa, "error", uerr)
		result.Steps = append(result.Steps, failedStep(constants.StepUpload, stepStart, o.now(), uerr))
		return result, nil
	}
	var uploadErrs []string
	for _, r := range upSummary.Results {
		for _, f := range r.Files {
			if f.Err != "" {
				uploadErrs = append(uploadErrs, fmt.Sprintf("%s: %s", f.ClaveS3, f.Err))
			}
		}
	}
	result.Steps = append(result.Steps, entity.FlowStepResult{
		Step:      constants.StepUpload,
		Success:   upSummary.Fallidos == 0,
		Duration:  o.now().Sub(stepStart),
		Processed: upSummary.RegistrosProcesados,
		Errors:    uploadErrs,
	})

	return result, nil
}

// RunAll runs every company's flow in sequence. One company failing never
// blocks the next; per-company errors land in the returned results.
func (o *Orchestrator) RunAll(ctx context.Context, companies []constants.Company) []entity.FlowResult {
	results := make([]entity.FlowResult, 0, len(companies))
	for _, c := range companies {
		res, err := o.RunCompany(ctx, c)
		if err != nil {
			o.logger.Error("flow failed", "empresa", c, "error", err)
		}
		results = append(results, res)
	}
	return results
}

func failedStep(step constants.FlowStep, start, end time.Time, err error) entity.FlowStepResult {
	return entity.FlowStepResult{
		Step:     step,
		Success:  false,
		Duration: end.Sub(start),
		Errors:   []string{err.Error()},
	}
}

func allRequiredOK(steps []entity.FlowStepResult) bool {
	for _, s := range steps {
		if !s.Success && (s.Step == constants.StepConsolidate || s.Step == constants.StepLoad || s.Step == constants.StepCritical) {
			return false
		}
	}
	return true
}
