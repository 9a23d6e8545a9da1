package consolidate

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/dfgiraldo/pqr-pipeline/constants"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	svc, err := NewService(nil, 10)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc
}

func writeInput(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestRunDeduplicatesAcrossFiles(t *testing.T) {
	input := t.TempDir()
	// Same record scraped twice, in two files. Lexical file order makes
	// 01.json the keeper.
	writeInput(t, input, "01.json", `[
		{"numero_radicado": "RAD-001", "fecha": "2024/03/15 10:30", "estado_solicitud": "abierto", "nic": "1234567"},
		{"numero_radicado": "RAD-002", "fecha": "2024/03/16 09:00", "estado_solicitud": "cerrado"}
	]`)
	writeInput(t, input, "02.json", `{"numero_radicado": "RAD-001", "fecha": "2024/03/15 10:30", "estado_solicitud": "abierto", "nic": "1234567"}`)

	res, err := newTestService(t).Run(context.Background(), constants.CompanyAfinia, input, "")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	r := res.Report
	if r.TotalFiles != 2 || r.TotalRecords != 3 {
		t.Errorf("files=%d records=%d, want 2 and 3", r.TotalFiles, r.TotalRecords)
	}
	if r.ValidRecords != 2 || r.DuplicateRecords != 1 || r.InvalidRecords != 0 {
		t.Errorf("valid=%d dup=%d invalid=%d, want 2/1/0", r.ValidRecords, r.DuplicateRecords, r.InvalidRecords)
	}
	if len(res.Records) != 2 {
		t.Fatalf("got %d consolidated records", len(res.Records))
	}
	if res.Records[0].ArchivoOrigen != "01.json" {
		t.Errorf("first writer should win, keeper came from %s", res.Records[0].ArchivoOrigen)
	}
}

func TestRunInvalidRecordsReported(t *testing.T) {
	input := t.TempDir()
	writeInput(t, input, "data.json", `[
		{"numero_radicado": "RAD-001", "fecha": "2024/03/15 10:30", "estado_solicitud": "abierto"},
		{"fecha": "2024/03/15 10:30", "estado_solicitud": "abierto"},
		{"numero_radicado": "RAD-003", "fecha": "no-date", "estado_solicitud": "abierto"},
		{"numero_radicado": "RAD-004", "fecha": "2024/03/15 10:30"}
	]`)

	res, err := newTestService(t).Run(context.Background(), constants.CompanyAire, input, "")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	r := res.Report
	if r.ValidRecords != 1 || r.InvalidRecords != 3 {
		t.Errorf("valid=%d invalid=%d, want 1/3", r.ValidRecords, r.InvalidRecords)
	}
	if len(r.Errors) == 0 {
		t.Error("expected error samples in the report")
	}
}

func TestRunSkipsMalformedFile(t *testing.T) {
	input := t.TempDir()
	writeInput(t, input, "bad.json", `{"numero_radicado": "RAD-00`)
	writeInput(t, input, "good.json", `{"numero_radicado": "RAD-001", "fecha": "2024/03/15 10:30", "estado_solicitud": "abierto"}`)
	writeInput(t, input, "notjson.txt", `ignored`)

	res, err := newTestService(t).Run(context.Background(), constants.CompanyAfinia, input, "")
	if err != nil {
		t.Fatalf("a bad file must degrade, not fail the run: %v", err)
	}
	if res.Report.TotalFiles != 2 {
		t.Errorf("TotalFiles = %d, want 2 (txt ignored)", res.Report.TotalFiles)
	}
	if res.Report.ValidRecords != 1 {
		t.Errorf("ValidRecords = %d, want 1", res.Report.ValidRecords)
	}
	if len(res.Report.Errors) != 1 {
		t.Errorf("Errors = %v, want one file-level error", res.Report.Errors)
	}
}

func TestRunMissingInputDirFails(t *testing.T) {
	svc := newTestService(t)
	if _, err := svc.Run(context.Background(), constants.CompanyAfinia, filepath.Join(t.TempDir(), "nope"), ""); err == nil {
		t.Fatal("missing input dir must be a run-level failure")
	}
}

func TestRunWritesOutputs(t *testing.T) {
	input := t.TempDir()
	output := t.TempDir()
	writeInput(t, input, "data.json", `{"numero_radicado": "RAD-001", "fecha": "2024/03/15 10:30", "estado_solicitud": "abierto", "nic": "123"}`)

	res, err := newTestService(t).Run(context.Background(), constants.CompanyAire, input, output)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	for _, p := range []string{res.CSVPath, res.JSONPath, res.ReportPath} {
		if p == "" {
			t.Fatal("output path not populated")
		}
		if _, err := os.Stat(p); err != nil {
			t.Errorf("output %s not written: %v", p, err)
		}
	}

	f, err := os.Open(res.CSVPath)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Fatalf("csv rows = %d, want header + 1", len(rows))
	}
	if rows[1][0] != "RAD-001" {
		t.Errorf("csv radicado = %q", rows[1][0])
	}
	// The short NIC warning lands in the advertencias column.
	if rows[1][len(rows[1])-1] == "" {
		t.Error("expected a warning in the advertencias column")
	}

	records, err := ReadMaster(res.JSONPath)
	if err != nil {
		t.Fatalf("ReadMaster: %v", err)
	}
	if len(records) != 1 || records[0].NumeroRadicado != "RAD-001" {
		t.Errorf("master round-trip failed: %+v", records)
	}
}

func TestRunErrorSampleCapped(t *testing.T) {
	input := t.TempDir()
	// Twelve invalid records against a cap of 3.
	writeInput(t, input, "data.json", `[
		{}, {}, {}, {}, {}, {}, {}, {}, {}, {}, {}, {}
	]`)

	svc, err := NewService(nil, 3)
	if err != nil {
		t.Fatal(err)
	}
	res, err := svc.Run(context.Background(), constants.CompanyAfinia, input, "")
	if err != nil {
		t.Fatal(err)
	}
	if res.Report.InvalidRecords != 12 {
		t.Errorf("InvalidRecords = %d, want 12", res.Report.InvalidRecords)
	}
	if len(res.Report.Errors) != 3 {
		t.Errorf("error sample = %d entries, want capped at 3", len(res.Report.Errors))
	}
}
