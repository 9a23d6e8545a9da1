package upload

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

type fakeRegistry struct {
	rows      []*ent.UploadRegistry
	created   []repository.RegistryRowParams
	createErr error
}

func (f *fakeRegistry) GetByHash(ctx context.Context, hash string) (*ent.UploadRegistry, error) {
	for _, r := range f.rows {
		if r.HashArchivo == hash {
			return r, nil
		}
	}
	return nil, errors.New("not found")
}

func (f *fakeRegistry) GetByClave(ctx context.Context, clave string) (*ent.UploadRegistry, error) {
	for _, r := range f.rows {
		if r.ClaveS3 == clave {
			return r, nil
		}
	}
	return nil, errors.New("not found")
}

func (f *fakeRegistry) ListByEmpresa(ctx context.Context, empresa constants.Company) ([]*ent.UploadRegistry, error) {
	return f.rows, nil
}

func (f *fakeRegistry) Create(ctx context.Context, p repository.RegistryRowParams) (*ent.UploadRegistry, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = append(f.created, p)
	row := &ent.UploadRegistry{
		ID:          uuid.New(),
		ClaveS3:     p.ClaveS3,
		HashArchivo: p.HashArchivo,
		EstadoCarga: string(p.Estado),
		OrigenCarga: string(p.Origen),
	}
	f.rows = append(f.rows, row)
	return row, nil
}

func (f *fakeRegistry) MarkEstado(ctx context.Context, id uuid.UUID, estado constants.UploadStatus) (*ent.UploadRegistry, error) {
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

func (f *fakeRegistry) MarkSincronizado(ctx context.Context, id uuid.UUID) error { return nil }
func (f *fakeRegistry) Delete(ctx context.Context, id uuid.UUID) error           { return nil }

type fakeStore struct {
	objects map[string]bool // key -> present
	puts    []string
	putErr  map[string]error
}

func newFakeStore() *fakeStore {
	return &fakeStore{objects: map[string]bool{}, putErr: map[string]error{}}
}

func (f *fakeStore) Exists(ctx context.Context, key string) (bool, error) {
	return f.objects[key], nil
}

func (f *fakeStore) PutFile(ctx context.Context, key, path, contentType string, metadata map[string]string) error {
	if err := f.putErr[key]; err != nil {
		return err
	}
	f.puts = append(f.puts, key)
	f.objects[key] = true
	return nil
}

func tempFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func candidate(files ...string) entity.UploadCandidate {
	return entity.UploadCandidate{
		NumeroRadicado:   "RAD-001",
		Empresa:          constants.CompanyAfinia,
		NumeroReclamoSGC: "SGC-1",
		Files:            files,
		NeedsUpload:      true,
	}
}

func summaryWith(cands ...entity.UploadCandidate) entity.ReconcileSummary {
	return entity.ReconcileSummary{
		Empresa:    constants.CompanyAfinia,
		Candidates: cands,
	}
}

func TestUploadFreshFile(t *testing.T) {
	reg := &fakeRegistry{}
	store := newFakeStore()
	svc := NewService(reg, store, "Base", false, nil)

	file := tempFile(t, "SGC-1_escrito.pdf", "contenido")
	sum, err := svc.Upload(context.Background(), summaryWith(candidate(file)))
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}

	if sum.Completados != 1 || sum.ArchivosSubidos != 1 {
		t.Errorf("completados=%d subidos=%d, want 1/1", sum.Completados, sum.ArchivosSubidos)
	}
	if len(store.puts) != 1 {
		t.Fatalf("puts = %v, want exactly one transfer", store.puts)
	}
	if len(reg.created) != 1 {
		t.Fatalf("created rows = %d, want 1", len(reg.created))
	}
	row := reg.created[0]
	if row.Estado != constants.UploadStatusSubido || row.Origen != constants.OriginBot {
		t.Errorf("row estado=%v origen=%v, want subido/bot", row.Estado, row.Origen)
	}
	if row.Metadatos["numero_radicado"] != "RAD-001" {
		t.Errorf("metadatos = %v", row.Metadatos)
	}
}

func TestUploadContentAlreadyRegistered(t *testing.T) {
	file := tempFile(t, "SGC-1_escrito.pdf", "contenido")
	hash, err := FileSHA256(file)
	if err != nil {
		t.Fatal(err)
	}

	reg := &fakeRegistry{rows: []*ent.UploadRegistry{{
		ID:          uuid.New(),
		HashArchivo: hash,
		EstadoCarga: "subido",
	}}}
	store := newFakeStore()
	svc := NewService(reg, store, "Base", false, nil)

	sum, err := svc.Upload(context.Background(), summaryWith(candidate(file)))
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}

	if len(store.puts) != 0 {
		t.Errorf("registered content must never transfer again, puts = %v", store.puts)
	}
	if sum.Omitidos != 1 || sum.ArchivosSubidos != 0 {
		t.Errorf("omitidos=%d subidos=%d, want 1/0", sum.Omitidos, sum.ArchivosSubidos)
	}
}

func TestUploadCrashRecovery(t *testing.T) {
	// Object already in storage from a crashed run; no registry row exists.
	file := tempFile(t, "SGC-1_escrito.pdf", "contenido")
	key := BuildKey("Base", constants.CompanyAfinia, "SGC-1", "SGC-1_escrito.pdf")

	reg := &fakeRegistry{}
	store := newFakeStore()
	store.objects[key] = true
	svc := NewService(reg, store, "Base", false, nil)

	sum, err := svc.Upload(context.Background(), summaryWith(candidate(file)))
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}

	if len(store.puts) != 0 {
		t.Errorf("existing object must not transfer, puts = %v", store.puts)
	}
	if sum.ArchivosPreexistentes != 1 || sum.Completados != 1 {
		t.Errorf("preexistentes=%d completados=%d, want 1/1", sum.ArchivosPreexistentes, sum.Completados)
	}
	if len(reg.created) != 1 {
		t.Fatalf("bookkeeping row missing")
	}
	row := reg.created[0]
	if row.Estado != constants.UploadStatusPreExistente || row.Origen != constants.OriginPreExistente {
		t.Errorf("row estado=%v origen=%v, want pre_existente/pre_existente", row.Estado, row.Origen)
	}
}

func TestUploadRetriesErrorRow(t *testing.T) {
	file := tempFile(t, "SGC-1_escrito.pdf", "contenido")
	hash, err := FileSHA256(file)
	if err != nil {
		t.Fatal(err)
	}

	errRow := &ent.UploadRegistry{
		ID:          uuid.New(),
		HashArchivo: hash,
		EstadoCarga: "error",
		Intentos:    2,
	}
	reg := &fakeRegistry{rows: []*ent.UploadRegistry{errRow}}
	store := newFakeStore()
	svc := NewService(reg, store, "Base", false, nil)

	sum, err := svc.Upload(context.Background(), summaryWith(candidate(file)))
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}

	if len(store.puts) != 1 {
		t.Fatalf("retry should transfer once, puts = %v", store.puts)
	}
	if errRow.EstadoCarga != "subido" {
		t.Errorf("row estado = %q, want subido after retry", errRow.EstadoCarga)
	}
	if len(reg.created) != 0 {
		t.Errorf("retry must update the existing row, not create one")
	}
	if sum.Completados != 1 {
		t.Errorf("completados = %d", sum.Completados)
	}
}

func TestUploadFailureRecordsErrorRow(t *testing.T) {
	file := tempFile(t, "SGC-1_escrito.pdf", "contenido")
	key := BuildKey("Base", constants.CompanyAfinia, "SGC-1", "SGC-1_escrito.pdf")

	reg := &fakeRegistry{}
	store := newFakeStore()
	store.putErr[key] = errors.New("connection reset")
	svc := NewService(reg, store, "Base", false, nil)

	sum, err := svc.Upload(context.Background(), summaryWith(candidate(file)))
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}

	if sum.Fallidos != 1 || sum.ArchivosFallidos != 1 {
		t.Errorf("fallidos=%d archivos_fallidos=%d, want 1/1", sum.Fallidos, sum.ArchivosFallidos)
	}
	if len(reg.created) != 1 || reg.created[0].Estado != constants.UploadStatusError {
		t.Errorf("expected an error bookkeeping row, got %+v", reg.created)
	}
}

func TestUploadPartialOutcome(t *testing.T) {
	good := tempFile(t, "SGC-1_escrito.pdf", "bueno")
	bad := tempFile(t, "SGC-1_adjunto_1.jpg", "malo")
	badKey := BuildKey("Base", constants.CompanyAfinia, "SGC-1", "SGC-1_adjunto_1.jpg")

	reg := &fakeRegistry{}
	store := newFakeStore()
	store.putErr[badKey] = errors.New("timeout")
	svc := NewService(reg, store, "Base", false, nil)

	sum, err := svc.Upload(context.Background(), summaryWith(candidate(good, bad)))
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}

	if sum.Parciales != 1 || sum.ArchivosSubidos != 1 || sum.ArchivosFallidos != 1 {
		t.Errorf("parciales=%d subidos=%d fallidos=%d, want 1/1/1",
			sum.Parciales, sum.ArchivosSubidos, sum.ArchivosFallidos)
	}
}

func TestUploadSkipsMissingFiles(t *testing.T) {
	reg := &fakeRegistry{}
	store := newFakeStore()
	svc := NewService(reg, store, "Base", false, nil)

	cand := candidate()
	cand.MissingFiles = true
	sum, err := svc.Upload(context.Background(), summaryWith(cand))
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if sum.RegistrosProcesados != 0 || len(sum.Results) != 0 {
		t.Errorf("missing-files candidate must be skipped, got %+v", sum)
	}
}

func TestUploadDryRun(t *testing.T) {
	file := tempFile(t, "SGC-1_escrito.pdf", "contenido")

	reg := &fakeRegistry{}
	store := newFakeStore()
	svc := NewService(reg, store, "Base", true, nil)

	sum, err := svc.Upload(context.Background(), summaryWith(candidate(file)))
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}

	if len(store.puts) != 0 || len(reg.created) != 0 {
		t.Errorf("dry run must not transfer or write rows: puts=%v rows=%v", store.puts, reg.created)
	}
	if sum.Completados != 1 {
		t.Errorf("dry run still reports the planned outcome, completados = %d", sum.Completados)
	}
}
