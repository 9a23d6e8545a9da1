package export

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/dfgiraldo/pqr-pipeline/constants"
	"github.com/dfgiraldo/pqr-pipeline/internal/entity"
)

func TestConsolidationXLSX(t *testing.T) {
	records := []entity.ConsolidatedRecord{
		{
			Record: entity.Record{
				NumeroRadicado:  "RAD-001",
				Fecha:           "2024/03/15 10:30",
				TipoPQR:         "reclamo",
				NIC:             "1234567",
				EstadoSolicitud: "cerrado",
			},
			HashRegistro:  "abc123",
			ArchivoOrigen: "01.json",
			Warnings:      []string{"nic sospechoso"},
		},
		{
			Record: entity.Record{NumeroRadicado: "RAD-002", Fecha: "2024/03/16 09:00", EstadoSolicitud: "abierto"},
		},
	}

	data, err := NewService(nil).ConsolidationXLSX(constants.CompanyAfinia, records)
	if err != nil {
		t.Fatalf("ConsolidationXLSX: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("workbook does not open: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Registros")
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want header + 2", len(rows))
	}
	if rows[0][0] != "Radicado" {
		t.Errorf("header = %v", rows[0])
	}
	if rows[1][0] != "RAD-001" || rows[2][0] != "RAD-002" {
		t.Errorf("data rows = %v / %v", rows[1], rows[2])
	}
	if rows[1][len(rows[1])-1] != "nic sospechoso" {
		t.Errorf("advertencias cell = %v", rows[1])
	}
}

func TestConsolidationXLSXEmpty(t *testing.T) {
	data, err := NewService(nil).ConsolidationXLSX(constants.CompanyAire, nil)
	if err != nil {
		t.Fatalf("ConsolidationXLSX: %v", err)
	}
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("workbook does not open: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Registros")
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 {
		t.Errorf("rows = %d, want header only", len(rows))
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("hola", 10); got != "hola" {
		t.Errorf("truncate short = %q", got)
	}
	if got := truncate("abcdefghij", 5); len(got) > 5+2 { // rune ellipsis is multibyte
		t.Errorf("truncate long = %q", got)
	}
	if got := truncate("abc", 0); got != "abc" {
		t.Errorf("truncate zero = %q", got)
	}
}
