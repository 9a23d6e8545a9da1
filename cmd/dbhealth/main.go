package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/dfgiraldo/pqr-pipeline/constants"
	"github.com/dfgiraldo/pqr-pipeline/internal/common"
	"github.com/dfgiraldo/pqr-pipeline/internal/repository"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	cfg := common.LoadConfig()
	if cfg.Database.DSN == "" {
		printError("DB_URL is not set\n")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	entClient, pool, err := repository.Open(ctx, repository.Config(cfg.Database), logger)
	if err != nil {
		printError("failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer repository.Close(entClient, pool, logger)

	if err := repository.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		printError("health check failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("database: OK")

	records := repository.NewPQRRecordRepository(entClient, logger)
	for _, empresa := range constants.Companies {
		n, err := records.CountByEmpresa(ctx, empresa)
		if err != nil {
			printError("failed to count records for %s: %v\n", empresa, err)
			os.Exit(1)
		}
		fmt.Printf("%s: %d registros\n", empresa, n)
	}
}
