package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/dfgiraldo/pqr-pipeline/gen/ent"
	"github.com/dfgiraldo/pqr-pipeline/internal/common"
	"github.com/dfgiraldo/pqr-pipeline/internal/loader"
	"github.com/dfgiraldo/pqr-pipeline/internal/repository"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Loads a consolidation run's master JSON into the relational store, for
// re-loading past runs without re-consolidating the raw files.
func main() {
	var (
		company = flag.String("company", "", "company the master belongs to: afinia|aire (required)")
		master  = flag.String("master", "", "path to a master JSON produced by pqr-consolidate (required)")
		inmem   = flag.Bool("inmem", false, "use an in-memory SQLite database instead of Postgres")
	)
	flag.Parse()

	empresa, verr := common.RequireCompany("company", *company)
	if verr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", verr)
		os.Exit(1)
	}
	if verr := common.RequireNonEmpty("master", *master); verr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", verr)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	ctx := context.Background()

	var (
		entClient *ent.Client
		pool      *pgxpool.Pool
		err       error
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
	res, err := loader.NewService(records, logger).LoadMaster(ctx, empresa, *master)
	if err != nil {
		logger.Error("load failed", "empresa", empresa, "master", *master, "error", err)
		os.Exit(1)
	}

	fmt.Printf("Carga %s: %d registros (%d insertados, %d ya existentes, %d fallidos)\n",
		empresa, res.Total, res.Inserted, res.Skipped, res.Failed)
	for _, e := range res.Errors {
		fmt.Printf("  - %s\n", e)
	}
}
