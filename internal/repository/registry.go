package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/dfgiraldo/pqr-pipeline/constants"
	"github.com/dfgiraldo/pqr-pipeline/gen/ent"
	entregistry "github.com/dfgiraldo/pqr-pipeline/gen/ent/uploadregistry"
)

// RegistryRowParams captures everything needed to record an upload outcome.
type RegistryRowParams struct {
	NombreArchivo    string
	ClaveS3          string
	HashArchivo      string
	Empresa          constants.Company
	NumeroReclamoSGC string
	Estado           constants.UploadStatus
	Origen           constants.UploadOrigin
	Metadatos        map[string]string
}

// UploadRegistryRepository persists per-file upload state. The unique
// constraints on hash_archivo and clave_s3 back the at-most-once guarantee;
// Create surfaces constraint violations to the caller instead of hiding them.
type UploadRegistryRepository interface {
	GetByHash(ctx context.Context, hash string) (*ent.UploadRegistry, error)
	GetByClave(ctx context.Context, clave string) (*ent.UploadRegistry, error)
	ListByEmpresa(ctx context.Context, empresa constants.Company) ([]*ent.UploadRegistry, error)
	Create(ctx context.Context, p RegistryRowParams) (*ent.UploadRegistry, error)
	// MarkEstado flips estado_carga, bumping the attempt counter when the
	// new state is an error.
	MarkEstado(ctx context.Context, id uuid.UUID, estado constants.UploadStatus) (*ent.UploadRegistry, error)
	MarkSincronizado(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type uploadRegistryRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewUploadRegistryRepository(entc *ent.Client, logger *slog.Logger) UploadRegistryRepository {
	return &uploadRegistryRepo{ent: entc, logger: logger}
}

func (r *uploadRegistryRepo) GetByHash(ctx context.Context, hash string) (*ent.UploadRegistry, error) {
	return r.ent.UploadRegistry.Query().
		Where(entregistry.HashArchivo(hash)).
		Only(ctx)
}

func (r *uploadRegistryRepo) GetByClave(ctx context.Context, clave string) (*ent.UploadRegistry, error) {
	return r.ent.UploadRegistry.Query().
		Where(entregistry.ClaveS3(clave)).
		Only(ctx)
}

func (r *uploadRegistryRepo) ListByEmpresa(ctx context.Context, empresa constants.Company) ([]*ent.UploadRegistry, error) {
	rows, err := r.ent.UploadRegistry.Query().
		Where(entregistry.Empresa(string(empresa))).
		Order(ent.Asc(entregistry.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list upload registry", "empresa", empresa, "error", err)
		return nil, err
	}
	return rows, nil
}

func (r *uploadRegistryRepo) Create(ctx context.Context, p RegistryRowParams) (*ent.UploadRegistry, error) {
	row, err := r.ent.UploadRegistry.Create().
		SetNombreArchivo(p.NombreArchivo).
		SetClaveS3(p.ClaveS3).
		SetHashArchivo(p.HashArchivo).
		SetEmpresa(string(p.Empresa)).
		SetNumeroReclamoSgc(p.NumeroReclamoSGC).
		SetEstadoCarga(string(p.Estado)).
		SetOrigenCarga(string(p.Origen)).
		SetMetadatos(p.Metadatos).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create registry row",
			"clave_s3", p.ClaveS3, "hash_archivo", p.HashArchivo, "error", err)
		return nil, err
	}
	return row, nil
}

func (r *uploadRegistryRepo) MarkEstado(ctx context.Context, id uuid.UUID, estado constants.UploadStatus) (*ent.UploadRegistry, error) {
	upd := r.ent.UploadRegistry.UpdateOneID(id).
		SetEstadoCarga(string(estado))
	if estado == constants.UploadStatusError {
		upd = upd.AddIntentos(1)
	}
	row, err := upd.Save(ctx)
	if err != nil {
		r.logger.Error("failed to update registry estado", "id", id, "estado", estado, "error", err)
		return nil, err
	}
	return row, nil
}

func (r *uploadRegistryRepo) MarkSincronizado(ctx context.Context, id uuid.UUID) error {
	_, err := r.ent.UploadRegistry.UpdateOneID(id).
		SetSincronizadoBd(true).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to mark registry row synchronized", "id", id, "error", err)
	}
	return err
}

func (r *uploadRegistryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.ent.UploadRegistry.DeleteOneID(id).Exec(ctx)
	if err != nil {
		r.logger.Error("failed to delete registry row", "id", id, "error", err)
	}
	return err
}
