package reconcile

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"

	"github.com/dfgiraldo/pqr-pipeline/constants"
	"github.com/dfgiraldo/pqr-pipeline/gen/ent"
	"github.com/dfgiraldo/pqr-pipeline/internal/entity"
	"github.com/dfgiraldo/pqr-pipeline/internal/repository"
)

type fakeRecordRepo struct {
	rows []*ent.PQRRecord
	err  error
}

func (f *fakeRecordRepo) GetByRadicado(ctx context.Context, empresa constants.Company, radicado string) (*ent.PQRRecord, error) {
	for _, r := range f.rows {
		if r.NumeroRadicado == radicado {
			return r, nil
		}
	}
	return nil, errors.New("not found")
}

func (f *fakeRecordRepo) UpsertByRadicado(ctx context.Context, empresa constants.Company, rec entity.ConsolidatedRecord) (*ent.PQRRecord, bool, error) {
	panic("not used")
}

func (f *fakeRecordRepo) ListByEmpresa(ctx context.Context, empresa constants.Company, limit int) ([]*ent.PQRRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	if limit > 0 && len(f.rows) > limit {
		return f.rows[:limit], nil
	}
	return f.rows, nil
}

func (f *fakeRecordRepo) CountByEmpresa(ctx context.Context, empresa constants.Company) (int, error) {
	return len(f.rows), nil
}

type fakeRegistryRepo struct {
	rows   []*ent.UploadRegistry
	synced []uuid.UUID
}

func (f *fakeRegistryRepo) GetByHash(ctx context.Context, hash string) (*ent.UploadRegistry, error) {
	for _, r := range f.rows {
		if r.HashArchivo == hash {
			return r, nil
		}
	}
	return nil, errors.New("not found")
}

func (f *fakeRegistryRepo) GetByClave(ctx context.Context, clave string) (*ent.UploadRegistry, error) {
	for _, r := range f.rows {
		if r.ClaveS3 == clave {
			return r, nil
		}
	}
	return nil, errors.New("not found")
}

func (f *fakeRegistryRepo) ListByEmpresa(ctx context.Context, empresa constants.Company) ([]*ent.UploadRegistry, error) {
	return f.rows, nil
}

func (f *fakeRegistryRepo) Create(ctx context.Context, p repository.RegistryRowParams) (*ent.UploadRegistry, error) {
	row := &ent.UploadRegistry{
		ID:               uuid.New(),
		NombreArchivo:    p.NombreArchivo,
		ClaveS3:          p.ClaveS3,
		HashArchivo:      p.HashArchivo,
		Empresa:          string(p.Empresa),
		NumeroReclamoSgc: p.NumeroReclamoSGC,
		EstadoCarga:      string(p.Estado),
		OrigenCarga:      string(p.Origen),
		Metadatos:        p.Metadatos,
	}
	f.rows = append(f.rows, row)
	return row, nil
}

func (f *fakeRegistryRepo) MarkEstado(ctx context.Context, id uuid.UUID, estado constants.UploadStatus) (*ent.UploadRegistry, error) {
	for _, r := range f.rows {
		if r.ID == id {
			r.EstadoCarga = string(estado)
			if estado == constants.UploadStatusError {
				r.Intentos++
			}
			return r, nil
		}
	}
	return nil, errors.New("not found")
}

func (f *fakeRegistryRepo) MarkSincronizado(ctx context.Context, id uuid.UUID) error {
	for _, r := range f.rows {
		if r.ID == id {
			r.SincronizadoBd = true
			f.synced = append(f.synced, id)
			return nil
		}
	}
	return errors.New("not found")
}

func (f *fakeRegistryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	for i, r := range f.rows {
		if r.ID == id {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return nil
		}
	}
	return errors.New("not found")
}

func dbRecord(radicado, sgc string) *ent.PQRRecord {
	return &ent.PQRRecord{
		ID:               uuid.New(),
		Empresa:          "afinia",
		NumeroRadicado:   radicado,
		NumeroReclamoSgc: sgc,
	}
}

func registryRow(sgc, estado string, intentos int) *ent.UploadRegistry {
	return &ent.UploadRegistry{
		ID:               uuid.New(),
		NumeroReclamoSgc: sgc,
		EstadoCarga:      estado,
		Intentos:         intentos,
	}
}

func TestReconcileAllUploaded(t *testing.T) {
	records := &fakeRecordRepo{rows: []*ent.PQRRecord{dbRecord("RAD-001", "SGC-1")}}
	registry := &fakeRegistryRepo{rows: []*ent.UploadRegistry{
		registryRow("SGC-1", "subido", 0),
		registryRow("SGC-1", "pre_existente", 0),
	}}

	svc := NewService(records, registry, t.TempDir(), 0, nil)
	sum, err := svc.Reconcile(context.Background(), constants.CompanyAfinia)
	if err != nil {
		t.Fatalf("Reconcile: %v", err)
	}

	if sum.TotalRegistros != 1 || sum.Subidos != 1 || sum.PendientesS3 != 0 {
		t.Errorf("total=%d subidos=%d pendientes=%d, want 1/1/0", sum.TotalRegistros, sum.Subidos, sum.PendientesS3)
	}
	if len(sum.Candidates) != 0 {
		t.Errorf("fully uploaded record should produce no candidates, got %d", len(sum.Candidates))
	}
}

func TestReconcileErrorRowsStayEligible(t *testing.T) {
	dir := t.TempDir()
	mustWrite(t, filepath.Join(dir, "SGC-2_escrito.pdf"))

	records := &fakeRecordRepo{rows: []*ent.PQRRecord{dbRecord("RAD-002", "SGC-2")}}
	registry := &fakeRegistryRepo{rows: []*ent.UploadRegistry{
		registryRow("SGC-2", "subido", 0),
		registryRow("SGC-2", "error", 3),
	}}

	svc := NewService(records, registry, dir, 0, nil)
	sum, err := svc.Reconcile(context.Background(), constants.CompanyAfinia)
	if err != nil {
		t.Fatalf("Reconcile: %v", err)
	}

	if sum.PendientesS3 != 1 || len(sum.Candidates) != 1 {
		t.Fatalf("pendientes=%d candidates=%d, want 1/1", sum.PendientesS3, len(sum.Candidates))
	}
	cand := sum.Candidates[0]
	if !cand.NeedsUpload || cand.EstadoS3 != constants.UploadStatusError {
		t.Errorf("candidate = %+v, want needs-upload with estado error", cand)
	}
	if cand.Intentos != 3 {
		t.Errorf("Intentos = %d, want attempt counter carried", cand.Intentos)
	}
	if len(cand.Files) != 1 {
		t.Errorf("Files = %v, want the local pdf resolved", cand.Files)
	}
}

func TestReconcileNoRegistryRowsIsPending(t *testing.T) {
	records := &fakeRecordRepo{rows: []*ent.PQRRecord{dbRecord("RAD-003", "SGC-3")}}
	registry := &fakeRegistryRepo{}

	svc := NewService(records, registry, t.TempDir(), 0, nil)
	sum, err := svc.Reconcile(context.Background(), constants.CompanyAfinia)
	if err != nil {
		t.Fatalf("Reconcile: %v", err)
	}

	if sum.PendientesS3 != 1 || sum.ArchivosFaltantes != 1 {
		t.Errorf("pendientes=%d faltantes=%d, want 1/1", sum.PendientesS3, sum.ArchivosFaltantes)
	}
	// Missing files keep the candidate visible, flagged.
	if len(sum.Candidates) != 1 || !sum.Candidates[0].MissingFiles {
		t.Errorf("candidates = %+v, want one flagged MissingFiles", sum.Candidates)
	}
}

func TestReconcileFallsBackToSGCIndex(t *testing.T) {
	dir := t.TempDir()
	mustWriteContent(t, filepath.Join(dir, "processed.json"),
		`[{"numero_radicado": "RAD-004", "numero_reclamo_sgc": "SGC-4"}]`)
	mustWrite(t, filepath.Join(dir, "SGC-4_data_x.json"))

	// DB row carries no SGC; the processed-file index resolves it.
	records := &fakeRecordRepo{rows: []*ent.PQRRecord{dbRecord("RAD-004", "")}}
	registry := &fakeRegistryRepo{}

	svc := NewService(records, registry, dir, 0, nil)
	sum, err := svc.Reconcile(context.Background(), constants.CompanyAfinia)
	if err != nil {
		t.Fatalf("Reconcile: %v", err)
	}

	if len(sum.Candidates) != 1 {
		t.Fatalf("candidates = %d, want 1", len(sum.Candidates))
	}
	cand := sum.Candidates[0]
	if cand.NumeroReclamoSGC != "SGC-4" {
		t.Errorf("NumeroReclamoSGC = %q, want resolved from index", cand.NumeroReclamoSGC)
	}
	if cand.MissingFiles || len(cand.Files) == 0 {
		t.Errorf("files should resolve via the index SGC, got %+v", cand)
	}
}

func TestReconcileEmptySGCStaysPending(t *testing.T) {
	// A registry row with an empty numero_reclamo_sgc must never satisfy a
	// record whose SGC is also unresolved.
	records := &fakeRecordRepo{rows: []*ent.PQRRecord{dbRecord("RAD-005", "")}}
	registry := &fakeRegistryRepo{rows: []*ent.UploadRegistry{
		registryRow("", "subido", 0),
	}}

	svc := NewService(records, registry, t.TempDir(), 0, nil)
	sum, err := svc.Reconcile(context.Background(), constants.CompanyAfinia)
	if err != nil {
		t.Fatalf("Reconcile: %v", err)
	}

	if sum.Subidos != 0 {
		t.Errorf("Subidos = %d, unresolved record must not count as uploaded", sum.Subidos)
	}
	if sum.PendientesS3 != 1 || len(sum.Candidates) != 1 {
		t.Fatalf("pendientes=%d candidates=%d, want 1/1", sum.PendientesS3, len(sum.Candidates))
	}
	cand := sum.Candidates[0]
	if !cand.NeedsUpload || cand.EstadoS3 != constants.UploadStatusPendiente {
		t.Errorf("candidate = %+v, want pendiente", cand)
	}
	if len(registry.synced) != 0 {
		t.Errorf("empty-SGC rows must not be touched, synced = %v", registry.synced)
	}
}

func TestReconcileMarksSynchronized(t *testing.T) {
	already := registryRow("SGC-6", "subido", 0)
	already.SincronizadoBd = true
	pending := registryRow("SGC-6", "subido", 0)

	records := &fakeRecordRepo{rows: []*ent.PQRRecord{dbRecord("RAD-006", "SGC-6")}}
	registry := &fakeRegistryRepo{rows: []*ent.UploadRegistry{already, pending}}

	svc := NewService(records, registry, t.TempDir(), 0, nil)
	if _, err := svc.Reconcile(context.Background(), constants.CompanyAfinia); err != nil {
		t.Fatalf("Reconcile: %v", err)
	}

	if len(registry.synced) != 1 || registry.synced[0] != pending.ID {
		t.Errorf("synced = %v, want only the unsynchronized row flipped", registry.synced)
	}
	if !pending.SincronizadoBd {
		t.Error("pending row not marked synchronized")
	}
}

func mustWrite(t *testing.T, path string) {
	t.Helper()
	mustWriteContent(t, path, "x")
}

func mustWriteContent(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}
