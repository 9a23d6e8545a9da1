package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/dfgiraldo/pqr-pipeline/internal/common"
	"github.com/dfgiraldo/pqr-pipeline/internal/consolidate"
	"github.com/dfgiraldo/pqr-pipeline/internal/export"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		company = flag.String("company", "", "company to consolidate: afinia|aire (required)")
		input   = flag.String("input", "", "raw JSON directory (defaults to PQR_INPUT_DIR/<company>)")
		output  = flag.String("output", "", "output directory (defaults to PQR_OUTPUT_DIR/<company>)")
		xlsx    = flag.Bool("xlsx", false, "also write an XLSX workbook next to the CSV")
	)
	flag.Parse()

	empresa, verr := common.RequireCompany("company", *company)
	if verr != nil {
		printError("Error: %v\n", verr)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	inputDir := *input
	if inputDir == "" {
		inputDir = filepath.Join(cfg.Paths.InputDir, string(empresa))
	}
	outputDir := *output
	if outputDir == "" {
		outputDir = filepath.Join(cfg.Paths.OutputDir, string(empresa))
	}

	svc, err := consolidate.NewService(logger, cfg.Pipeline.ErrorSampleCap)
	if err != nil {
		logger.Error("failed to initialize consolidator", "error", err)
		os.Exit(1)
	}

	res, err := svc.Run(context.Background(), empresa, inputDir, outputDir)
	if err != nil {
		logger.Error("consolidation failed", "empresa", empresa, "error", err)
		os.Exit(1)
	}

	xlsxPath := ""
	if *xlsx {
		data, err := export.NewService(logger).ConsolidationXLSX(empresa, res.Records)
		if err != nil {
			logger.Error("xlsx export failed", "empresa", empresa, "error", err)
			os.Exit(1)
		}
		xlsxPath = strings.TrimSuffix(res.CSVPath, filepath.Ext(res.CSVPath)) + ".xlsx"
		if err := os.WriteFile(xlsxPath, data, 0o644); err != nil {
			logger.Error("failed to write xlsx", "path", xlsxPath, "error", err)
			os.Exit(1)
		}
	}

	r := res.Report
	fmt.Printf("Consolidación %s\n", empresa)
	fmt.Printf("  archivos:   %d\n", r.TotalFiles)
	fmt.Printf("  registros:  %d (válidos %d, inválidos %d, duplicados %d)\n",
		r.TotalRecords, r.ValidRecords, r.InvalidRecords, r.DuplicateRecords)
	fmt.Printf("  tiempo:     %.2fs\n", r.ProcessingTime)
	fmt.Printf("  csv:        %s\n", res.CSVPath)
	fmt.Printf("  master:     %s\n", res.JSONPath)
	fmt.Printf("  reporte:    %s\n", res.ReportPath)
	if xlsxPath != "" {
		fmt.Printf("  xlsx:       %s\n", xlsxPath)
	}
	if len(r.Errors) > 0 {
		fmt.Printf("  errores (%d, muestra):\n", len(r.Errors))
		for _, e := range r.Errors {
			fmt.Printf("    - %s\n", e)
		}
	}
}
