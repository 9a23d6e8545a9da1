package flow

import (
	"context"
	"errors"
	"testing"

	"github.com/dfgiraldo/pqr-pipeline/constants"
	"github.com/dfgiraldo/pqr-pipeline/internal/common"
	"github.com/dfgiraldo/pqr-pipeline/internal/consolidate"
	"github.com/dfgiraldo/pqr-pipeline/internal/entity"
	"github.com/dfgiraldo/pqr-pipeline/internal/loader"
)

type fakeConsolidator struct {
	res   *consolidate.RunResult
	err   map[constants.Company]error
	calls []constants.Company
}

func (f *fakeConsolidator) Run(ctx context.Context, empresa constants.Company, inputDir, outputDir string) (*consolidate.RunResult, error) {
	f.calls = append(f.calls, empresa)
	if err := f.err[empresa]; err != nil {
		return nil, err
	}
	if f.res != nil {
		return f.res, nil
	}
	return &consolidate.RunResult{
		Records: []entity.ConsolidatedRecord{{Record: entity.Record{NumeroRadicado: "RAD-001"}}},
		Report:  entity.ProcessingReport{Empresa: empresa, ValidRecords: 1},
	}, nil
}

type fakeLoader struct {
	err   error
	panic bool
	calls int
}

func (f *fakeLoader) LoadRecords(ctx context.Context, empresa constants.Company, recs []entity.ConsolidatedRecord) (loader.Result, error) {
	f.calls++
	if f.panic {
		panic("nil client")
	}
	if f.err != nil {
		return loader.Result{}, f.err
	}
	return loader.Result{Total: len(recs), Inserted: len(recs)}, nil
}

type fakeReconciler struct {
	err   error
	calls int
}

func (f *fakeReconciler) Reconcile(ctx context.Context, empresa constants.Company) (entity.ReconcileSummary, error) {
	f.calls++
	if f.err != nil {
		return entity.ReconcileSummary{}, f.err
	}
	return entity.ReconcileSummary{Empresa: empresa, PendientesS3: 2}, nil
}

type fakeUploader struct {
	sum   entity.UploadSummary
	err   error
	calls int
}

func (f *fakeUploader) Upload(ctx context.Context, rec entity.ReconcileSummary) (entity.UploadSummary, error) {
	f.calls++
	return f.sum, f.err
}

func newTestOrchestrator(c Consolidator, l RecordLoader, r Reconciler, u Uploader) *Orchestrator {
	return NewOrchestrator(c, l, r, u, nil, common.PathsConfig{
		InputDir:  "in",
		OutputDir: "out",
	}, nil)
}

func stepByName(t *testing.T, steps []entity.FlowStepResult, name constants.FlowStep) entity.FlowStepResult {
	t.Helper()
	for _, s := range steps {
		if s.Step == name {
			return s
		}
	}
	t.Fatalf("step %s not found in %+v", name, steps)
	return entity.FlowStepResult{}
}

func TestRunCompanyHappyPath(t *testing.T) {
	cons := &fakeConsolidator{}
	load := &fakeLoader{}
	rec := &fakeReconciler{}
	up := &fakeUploader{sum: entity.UploadSummary{RegistrosProcesados: 2}}

	res, err := newTestOrchestrator(cons, load, rec, up).RunCompany(context.Background(), constants.CompanyAfinia)
	if err != nil {
		t.Fatalf("RunCompany: %v", err)
	}
	if !res.Success {
		t.Errorf("Success = false, steps %+v", res.Steps)
	}
	if len(res.Steps) != 4 {
		t.Fatalf("got %d steps, want 4", len(res.Steps))
	}
	for _, s := range res.Steps {
		if !s.Success {
			t.Errorf("step %s failed: %v", s.Step, s.Errors)
		}
	}
	if res.FinishedAt.Before(res.StartedAt) {
		t.Error("FinishedAt before StartedAt")
	}
}

func TestRunCompanyConsolidationFailureHalts(t *testing.T) {
	cons := &fakeConsolidator{err: map[constants.Company]error{
		constants.CompanyAfinia: errors.New("no such directory"),
	}}
	load := &fakeLoader{}
	rec := &fakeReconciler{}
	up := &fakeUploader{}

	res, err := newTestOrchestrator(cons, load, rec, up).RunCompany(context.Background(), constants.CompanyAfinia)
	if err == nil {
		t.Fatal("required step failure must surface as an error")
	}
	if res.Success {
		t.Error("Success must be false")
	}
	if load.calls != 0 || rec.calls != 0 || up.calls != 0 {
		t.Error("later steps must not run after a required failure")
	}
	step := stepByName(t, res.Steps, constants.StepConsolidate)
	if step.Success || len(step.Errors) == 0 {
		t.Errorf("consolidation step = %+v", step)
	}
}

func TestRunCompanyReconcileFailureNonFatal(t *testing.T) {
	cons := &fakeConsolidator{}
	load := &fakeLoader{}
	rec := &fakeReconciler{err: errors.New("db gone")}
	up := &fakeUploader{}

	res, err := newTestOrchestrator(cons, load, rec, up).RunCompany(context.Background(), constants.CompanyAfinia)
	if err != nil {
		t.Fatalf("reconcile failure must not error the flow: %v", err)
	}
	if !res.Success {
		t.Error("required steps passed, flow should still be Success")
	}
	if up.calls != 0 {
		t.Error("upload must not run without a reconciliation summary")
	}
	step := stepByName(t, res.Steps, constants.StepReconcile)
	if step.Success {
		t.Error("reconcile step should be recorded as failed")
	}
}

func TestRunCompanyUploadFailuresRecorded(t *testing.T) {
	cons := &fakeConsolidator{}
	load := &fakeLoader{}
	rec := &fakeReconciler{}
	up := &fakeUploader{sum: entity.UploadSummary{
		RegistrosProcesados: 2,
		Fallidos:            1,
		Results: []entity.RecordUploadResult{{
			NumeroRadicado: "RAD-001",
			Outcome:        constants.OutcomeFallido,
			Files: []entity.FileUploadResult{{
				ClaveS3: "Base/x.pdf",
				Err:     "timeout",
			}},
		}},
	}}

	res, err := newTestOrchestrator(cons, load, rec, up).RunCompany(context.Background(), constants.CompanyAfinia)
	if err != nil {
		t.Fatalf("RunCompany: %v", err)
	}
	step := stepByName(t, res.Steps, constants.StepUpload)
	if step.Success {
		t.Error("upload step with fallidos should not be marked successful")
	}
	if len(step.Errors) != 1 {
		t.Errorf("step errors = %v, want the per-file failure collected", step.Errors)
	}
	if !res.Success {
		t.Error("upload failures are non-fatal, flow Success should hold")
	}
}

func TestRunCompanyPanicBecomesCriticalStep(t *testing.T) {
	cons := &fakeConsolidator{}
	load := &fakeLoader{panic: true}
	rec := &fakeReconciler{}
	up := &fakeUploader{}

	res, err := newTestOrchestrator(cons, load, rec, up).RunCompany(context.Background(), constants.CompanyAfinia)
	if err == nil {
		t.Fatal("a panic must surface as an error")
	}
	if res.Success {
		t.Error("Success must be false after a panic")
	}
	step := stepByName(t, res.Steps, constants.StepCritical)
	if step.Success || len(step.Errors) == 0 {
		t.Errorf("critical step = %+v", step)
	}
}

func TestRunAllIsolatesFailures(t *testing.T) {
	cons := &fakeConsolidator{err: map[constants.Company]error{
		constants.CompanyAfinia: errors.New("boom"),
	}}
	load := &fakeLoader{}
	rec := &fakeReconciler{}
	up := &fakeUploader{}

	results := newTestOrchestrator(cons, load, rec, up).RunAll(context.Background(), constants.Companies)
	if len(results) != 2 {
		t.Fatalf("got %d results, want one per company", len(results))
	}
	if results[0].Success {
		t.Error("afinia should have failed")
	}
	if !results[1].Success {
		t.Errorf("aire should have run to completion despite afinia failing: %+v", results[1].Steps)
	}
	if len(cons.calls) != 2 {
		t.Errorf("consolidator calls = %v, want both companies attempted", cons.calls)
	}
}
