package export

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/dfgiraldo/pqr-pipeline/constants"
	"github.com/dfgiraldo/pqr-pipeline/internal/entity"
)

// Service is a tiny façade that turns a consolidation run into an XLSX
// workbook for the operations team.
type Service struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{logger: logger}
}

// ConsolidationXLSX returns an XLSX workbook (as bytes) summarizing one
// company's consolidated records.
func (s *Service) ConsolidationXLSX(empresa constants.Company, records []entity.ConsolidatedRecord) ([]byte, error) {
	start := time.Now()

	f := excelize.NewFile()
	const sheet = "Registros"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Radicado",
		"Fecha",
		"Tipo PQR",
		"NIC",
		"Documento",
		"Estado",
		"Hash",
		"Archivo Origen",
		"Advertencias",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, r := range records {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}
		write(1, r.NumeroRadicado)
		write(2, r.Fecha)
		write(3, r.TipoPQR)
		write(4, r.NIC)
		write(5, r.DocumentoIdentidad)
		write(6, r.EstadoSolicitud)
		write(7, r.HashRegistro)
		write(8, r.ArchivoOrigen)
		write(9, truncate(strings.Join(r.Warnings, "; "), 140))
		row++
	}

	// Widen a few columns
	_ = f.SetColWidth(sheet, "A", "A", 18) // radicado
	_ = f.SetColWidth(sheet, "B", "B", 18) // fecha
	_ = f.SetColWidth(sheet, "C", "C", 22) // tipo
	_ = f.SetColWidth(sheet, "G", "G", 66) // hash
	_ = f.SetColWidth(sheet, "H", "I", 40) // origen, advertencias

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"empresa", empresa.String(),
		"rows", len(records),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
