package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/dfgiraldo/pqr-pipeline/constants"
	"github.com/dfgiraldo/pqr-pipeline/internal/common"
	"github.com/dfgiraldo/pqr-pipeline/internal/consolidate"
	"github.com/dfgiraldo/pqr-pipeline/internal/entity"
	"github.com/dfgiraldo/pqr-pipeline/internal/flow"
	"github.com/dfgiraldo/pqr-pipeline/internal/loader"
	"github.com/dfgiraldo/pqr-pipeline/internal/reconcile"
	"github.com/dfgiraldo/pqr-pipeline/internal/repository"
	"github.com/dfgiraldo/pqr-pipeline/internal/storage"
	"github.com/dfgiraldo/pqr-pipeline/internal/upload"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dfgiraldo/pqr-pipeline/gen/ent"
)

func main() {
	var (
		company = flag.String("company", "all", "company to process: afinia|aire|all")
		inmem   = flag.Bool("inmem", false, "use an in-memory SQLite database instead of Postgres")
		dryRun  = flag.Bool("dry-run", false, "skip actual S3 uploads, report what would happen")
	)
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	companies, err := resolveCompanies(*company)
	if err != nil {
		logger.Error("invalid company", "error", err)
		os.Exit(1)
	}

	cfg := common.LoadConfig()
	ctx := context.Background()

	var (
		entClient *ent.Client
		pool      *pgxpool.Pool
	)
	if *inmem {
		entClient, err = repository.OpenSQLite(ctx, "", logger)
	} else {
		entClient, pool, err = repository.Open(ctx, repository.Config(cfg.Database), logger)
	}
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repository.Close(entClient, pool, logger)

	records := repository.NewPQRRecordRepository(entClient, logger)
	registry := repository.NewUploadRegistryRepository(entClient, logger)
	flowRuns := repository.NewFlowRunRepository(entClient, logger)

	consolidator, err := consolidate.NewService(logger, cfg.Pipeline.ErrorSampleCap)
	if err != nil {
		logger.Error("failed to initialize consolidator", "error", err)
		os.Exit(1)
	}
	recordLoader := loader.NewService(records, logger)
	reconciler := reconcile.NewService(records, registry, cfg.Paths.ProcessedDir, cfg.Pipeline.RecordLimit, logger)

	store, err := storage.NewMinioStore(ctx, cfg.Storage, logger)
	if err != nil {
		logger.Error("failed to initialize object storage", "error", err)
		os.Exit(1)
	}
	uploader := upload.NewService(registry, store, cfg.Storage.BasePath, *dryRun, logger)

	orchestrator := flow.NewOrchestrator(consolidator, recordLoader, reconciler, uploader, flowRuns, cfg.Paths, logger)

	results := orchestrator.RunAll(ctx, companies)

	allOK := true
	for _, res := range results {
		printResult(res)
		if !res.Success {
			allOK = false
		}
	}
	if !allOK {
		os.Exit(1)
	}
}

func resolveCompanies(s string) ([]constants.Company, error) {
	if s == "all" {
		return constants.Companies, nil
	}
	c, ok := constants.ParseCompany(s)
	if !ok {
		return nil, fmt.Errorf("unknown company %q, expected afinia, aire or all", s)
	}
	return []constants.Company{c}, nil
}

func printResult(res entity.FlowResult) {
	status := "OK"
	if !res.Success {
		status = "FALLIDO"
	}
	fmt.Printf("Flujo %s: %s (%s)\n", res.Empresa, status, res.FinishedAt.Sub(res.StartedAt).Round(time.Millisecond))
	for _, step := range res.Steps {
		mark := "✓"
		if !step.Success {
			mark = "✗"
		}
		fmt.Printf("  %s %-16s %6d procesados  %s\n", mark, step.Step, step.Processed, step.Duration.Round(time.Millisecond))
		for _, e := range step.Errors {
			fmt.Printf("      - %s\n", e)
		}
	}
}
