package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"sort"

	"github.com/dfgiraldo/pqr-pipeline/constants"
	"github.com/dfgiraldo/pqr-pipeline/gen/ent"
	"github.com/dfgiraldo/pqr-pipeline/internal/common"
	"github.com/dfgiraldo/pqr-pipeline/internal/repository"
)

// Removes duplicated registry rows left behind by databases that predate
// the unique constraints on hash_archivo and clave_s3. The oldest row of
// each group survives; newer copies are deleted.
func main() {
	var (
		company = flag.String("company", "all", "company to clean: afinia|aire|all")
		confirm = flag.Bool("confirm", false, "actually delete duplicates (default is a dry run)")
	)
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	companies := constants.Companies
	if *company != "all" {
		c, ok := constants.ParseCompany(*company)
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown company %q\n", *company)
			os.Exit(1)
		}
		companies = []constants.Company{c}
	}

	cfg := common.LoadConfig()
	ctx := context.Background()

	entClient, pool, err := repository.Open(ctx, repository.Config(cfg.Database), logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repository.Close(entClient, pool, logger)

	registry := repository.NewUploadRegistryRepository(entClient, logger)

	totalDupes := 0
	for _, empresa := range companies {
		rows, err := registry.ListByEmpresa(ctx, empresa)
		if err != nil {
			logger.Error("failed to list registry", "empresa", empresa, "error", err)
			os.Exit(1)
		}

		dupes := findDuplicates(rows)
		totalDupes += len(dupes)
		fmt.Printf("%s: %d registros, %d duplicados\n", empresa, len(rows), len(dupes))

		for _, row := range dupes {
			fmt.Printf("  duplicado: %s (hash %s, clave %s)\n", row.ID, row.HashArchivo, row.ClaveS3)
			if !*confirm {
				continue
			}
			if err := registry.Delete(ctx, row.ID); err != nil {
				logger.Error("failed to delete duplicate", "id", row.ID, "error", err)
				os.Exit(1)
			}
		}
	}

	if !*confirm && totalDupes > 0 {
		fmt.Println("Dry run: re-run with --confirm to delete the rows above.")
	}
}

// findDuplicates returns every row that shares a hash_archivo or clave_s3
// with an older row. Rows are ordered by created_at so the first row seen
// in each group is the keeper.
func findDuplicates(rows []*ent.UploadRegistry) []*ent.UploadRegistry {
	sorted := make([]*ent.UploadRegistry, len(rows))
	copy(sorted, rows)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
	})

	seenHash := make(map[string]bool)
	seenClave := make(map[string]bool)
	var dupes []*ent.UploadRegistry
	for _, row := range sorted {
		if seenHash[row.HashArchivo] || seenClave[row.ClaveS3] {
			dupes = append(dupes, row)
			continue
		}
		seenHash[row.HashArchivo] = true
		seenClave[row.ClaveS3] = true
	}
	return dupes
}
