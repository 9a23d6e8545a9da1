package loader

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/dfgiraldo/pqr-pipeline/constants"
	"github.com/dfgiraldo/pqr-pipeline/gen/ent"
	"github.com/dfgiraldo/pqr-pipeline/internal/entity"
)

type fakeRecordRepo struct {
	existing map[string]bool // radicado -> already in the table
	failOn   map[string]error
	upserts  []string
}

func (f *fakeRecordRepo) GetByRadicado(ctx context.Context, empresa constants.Company, radicado string) (*ent.PQRRecord, error) {
	if f.existing[radicado] {
		return &ent.PQRRecord{NumeroRadicado: radicado}, nil
	}
	return nil, errors.New("not found")
}

func (f *fakeRecordRepo) UpsertByRadicado(ctx context.Context, empresa constants.Company, rec entity.ConsolidatedRecord) (*ent.PQRRecord, bool, error) {
	if err := f.failOn[rec.NumeroRadicado]; err != nil {
		return nil, false, err
	}
	f.upserts = append(f.upserts, rec.NumeroRadicado)
	if f.existing[rec.NumeroRadicado] {
		return &ent.PQRRecord{NumeroRadicado: rec.NumeroRadicado}, true, nil
	}
	f.existing[rec.NumeroRadicado] = true
	return &ent.PQRRecord{NumeroRadicado: rec.NumeroRadicado}, false, nil
}

func (f *fakeRecordRepo) ListByEmpresa(ctx context.Context, empresa constants.Company, limit int) ([]*ent.PQRRecord, error) {
	return nil, nil
}

func (f *fakeRecordRepo) CountByEmpresa(ctx context.Context, empresa constants.Company) (int, error) {
	return len(f.existing), nil
}

func newFakeRepo() *fakeRecordRepo {
	return &fakeRecordRepo{existing: map[string]bool{}, failOn: map[string]error{}}
}

func consolidated(radicados ...string) []entity.ConsolidatedRecord {
	recs := make([]entity.ConsolidatedRecord, 0, len(radicados))
	for _, r := range radicados {
		recs = append(recs, entity.ConsolidatedRecord{Record: entity.Record{NumeroRadicado: r}})
	}
	return recs
}

func TestLoadRecordsAccounting(t *testing.T) {
	repo := newFakeRepo()
	repo.existing["RAD-002"] = true
	repo.failOn["RAD-003"] = errors.New("constraint violation")

	res, err := NewService(repo, nil).LoadRecords(context.Background(),
		constants.CompanyAfinia, consolidated("RAD-001", "RAD-002", "RAD-003"))
	if err != nil {
		t.Fatalf("partial failure must not error: %v", err)
	}

	if res.Total != 3 || res.Inserted != 1 || res.Skipped != 1 || res.Failed != 1 {
		t.Errorf("result = %+v, want total 3, inserted 1, skipped 1, failed 1", res)
	}
	if len(res.Errors) != 1 {
		t.Errorf("errors = %v", res.Errors)
	}
}

func TestLoadRecordsIdempotent(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, nil)
	recs := consolidated("RAD-001", "RAD-002")

	first, err := svc.LoadRecords(context.Background(), constants.CompanyAfinia, recs)
	if err != nil {
		t.Fatal(err)
	}
	second, err := svc.LoadRecords(context.Background(), constants.CompanyAfinia, recs)
	if err != nil {
		t.Fatal(err)
	}

	if first.Inserted != 2 || second.Inserted != 0 || second.Skipped != 2 {
		t.Errorf("first=%+v second=%+v, want re-run to skip everything", first, second)
	}
}

func TestLoadRecordsAllFailed(t *testing.T) {
	repo := newFakeRepo()
	repo.failOn["RAD-001"] = errors.New("db down")
	repo.failOn["RAD-002"] = errors.New("db down")

	_, err := NewService(repo, nil).LoadRecords(context.Background(),
		constants.CompanyAfinia, consolidated("RAD-001", "RAD-002"))
	if err == nil {
		t.Fatal("total failure must surface as an error")
	}
}

func TestLoadRecordsEmpty(t *testing.T) {
	res, err := NewService(newFakeRepo(), nil).LoadRecords(context.Background(),
		constants.CompanyAfinia, nil)
	if err != nil {
		t.Fatalf("empty input should be a no-op: %v", err)
	}
	if res.Total != 0 {
		t.Errorf("Total = %d", res.Total)
	}
}

func TestLoadMaster(t *testing.T) {
	path := filepath.Join(t.TempDir(), "master.json")
	content := `{
		"empresa": "afinia",
		"total_registros": 1,
		"registros": [{"numero_radicado": "RAD-001", "fecha": "2024/03/15 10:30", "estado_solicitud": "abierto"}]
	}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	repo := newFakeRepo()
	res, err := NewService(repo, nil).LoadMaster(context.Background(), constants.CompanyAfinia, path)
	if err != nil {
		t.Fatalf("LoadMaster: %v", err)
	}
	if res.Inserted != 1 {
		t.Errorf("Inserted = %d, want 1", res.Inserted)
	}
	if len(repo.upserts) != 1 || repo.upserts[0] != "RAD-001" {
		t.Errorf("upserts = %v", repo.upserts)
	}

	if _, err := NewService(repo, nil).LoadMaster(context.Background(), constants.CompanyAfinia, filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("missing master file must error")
	}
}
