package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/dfgiraldo/pqr-pipeline/internal/common"
	"github.com/dfgiraldo/pqr-pipeline/internal/reconcile"
	"github.com/dfgiraldo/pqr-pipeline/internal/repository"
	"github.com/dfgiraldo/pqr-pipeline/internal/storage"
	"github.com/dfgiraldo/pqr-pipeline/internal/upload"
)

func main() {
	var (
		company = flag.String("company", "", "company to upload: afinia|aire (required)")
		limit   = flag.Int("limite-registros", 0, "cap the number of records reconciled (0 = no cap)")
		dryRun  = flag.Bool("dry-run", false, "reconcile and plan uploads without touching S3")
		output  = flag.String("output", "", "write the upload summary as JSON to this path")
	)
	flag.Parse()

	empresa, verr := common.RequireCompany("company", *company)
	if verr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", verr)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	entClient, pool, err := repository.Open(ctx, repository.Config(cfg.Database), logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repository.Close(entClient, pool, logger)

	records := repository.NewPQRRecordRepository(entClient, logger)
	registry := repository.NewUploadRegistryRepository(entClient, logger)

	recordLimit := cfg.Pipeline.RecordLimit
	if *limit > 0 {
		recordLimit = *limit
	}
	reconciler := reconcile.NewService(records, registry, cfg.Paths.ProcessedDir, recordLimit, logger)

	summary, err := reconciler.Reconcile(ctx, empresa)
	if err != nil {
		logger.Error("reconciliation failed", "empresa", empresa, "error", err)
		os.Exit(1)
	}
	fmt.Printf("Verificación %s: %d registros, %d subidos, %d pendientes, %d con archivos faltantes\n",
		empresa, summary.TotalRegistros, summary.Subidos, summary.PendientesS3, summary.ArchivosFaltantes)

	store, err := storage.NewMinioStore(ctx, cfg.Storage, logger)
	if err != nil {
		logger.Error("failed to initialize object storage", "error", err)
		os.Exit(1)
	}
	uploader := upload.NewService(registry, store, cfg.Storage.BasePath, *dryRun, logger)

	result, err := uploader.Upload(ctx, summary)
	if err != nil {
		logger.Error("upload failed", "empresa", empresa, "error", err)
		os.Exit(1)
	}

	fmt.Printf("Subida %s: %d procesados (%d completados, %d parciales, %d fallidos, %d omitidos)\n",
		empresa, result.RegistrosProcesados, result.Completados, result.Parciales, result.Fallidos, result.Omitidos)
	fmt.Printf("  archivos: %d subidos, %d preexistentes, %d fallidos\n",
		result.ArchivosSubidos, result.ArchivosPreexistentes, result.ArchivosFallidos)

	if *output != "" {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			logger.Error("failed to encode summary", "error", err)
			os.Exit(1)
		}
		if err := os.WriteFile(*output, data, 0o644); err != nil {
			logger.Error("failed to write summary", "path", *output, "error", err)
			os.Exit(1)
		}
		logger.Info("upload summary written", "path", *output)
	}

	if result.Fallidos > 0 {
		os.Exit(1)
	}
}
