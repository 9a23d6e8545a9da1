package repository

import (
	"context"
	"log/slog"

	"github.com/dfgiraldo/pqr-pipeline/constants"
	"github.com/dfgiraldo/pqr-pipeline/gen/ent"
	entrecord "github.com/dfgiraldo/pqr-pipeline/gen/ent/pqrrecord"
	"github.com/dfgiraldo/pqr-pipeline/internal/entity"
)

// PQRRecordRepository persists consolidated records keyed by
// (empresa, numero_radicado).
type PQRRecordRepository interface {
	GetByRadicado(ctx context.Context, empresa constants.Company, radicado string) (*ent.PQRRecord, error)
	// UpsertByRadicado inserts the record unless the business key already
	// exists; the bool reports whether the row pre-existed.
	UpsertByRadicado(ctx context.Context, empresa constants.Company, rec entity.ConsolidatedRecord) (*ent.PQRRecord, bool, error)
	ListByEmpresa(ctx context.Context, empresa constants.Company, limit int) ([]*ent.PQRRecord, error)
	CountByEmpresa(ctx context.Context, empresa constants.Company) (int, error)
}

type pqrRecordRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewPQRRecordRepository(entc *ent.Client, logger *slog.Logger) PQRRecordRepository {
	return &pqrRecordRepo{ent: entc, logger: logger}
}

func (r *pqrRecordRepo) GetByRadicado(ctx context.Context, empresa constants.Company, radicado string) (*ent.PQRRecord, error) {
	return r.ent.PQRRecord.Query().
		Where(
			entrecord.Empresa(string(empresa)),
			entrecord.NumeroRadicado(radicado),
		).Only(ctx)
}

func (r *pqrRecordRepo) UpsertByRadicado(ctx context.Context, empresa constants.Company, rec entity.ConsolidatedRecord) (*ent.PQRRecord, bool, error) {
	if existing, err := r.GetByRadicado(ctx, empresa, rec.NumeroRadicado); err == nil {
		return existing, true, nil
	}
	row, err := r.ent.PQRRecord.Create().
		SetEmpresa(string(empresa)).
		SetNumeroRadicado(rec.NumeroRadicado).
		SetFecha(rec.Fecha).
		SetTipoPqr(rec.TipoPQR).
		SetNic(rec.NIC).
		SetDocumentoIdentidad(rec.DocumentoIdentidad).
		SetNombresApellidos(rec.NombresApellidos).
		SetTelefono(rec.Telefono).
		SetCelular(rec.Celular).
		SetCorreoElectronico(rec.CorreoElectronico).
		SetCanalRespuesta(rec.CanalRespuesta).
		SetEstadoSolicitud(rec.EstadoSolicitud).
		SetNumeroReclamoSgc(rec.NumeroReclamoSGC).
		SetHashRegistro(rec.HashRegistro).
		SetArchivoOrigen(rec.ArchivoOrigen).
		SetFechaProcesamiento(rec.FechaProcesamiento).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create pqr record",
			"empresa", empresa, "numero_radicado", rec.NumeroRadicado, "error", err)
		return nil, false, err
	}
	return row, false, nil
}

func (r *pqrRecordRepo) ListByEmpresa(ctx context.Context, empresa constants.Company, limit int) ([]*ent.PQRRecord, error) {
	q := r.ent.PQRRecord.Query().
		Where(entrecord.Empresa(string(empresa))).
		Order(ent.Asc(entrecord.FieldNumeroRadicado))
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		r.logger.Error("failed to list pqr records", "empresa", empresa, "error", err)
		return nil, err
	}
	return rows, nil
}

func (r *pqrRecordRepo) CountByEmpresa(ctx context.Context, empresa constants.Company) (int, error) {
	return r.ent.PQRRecord.Query().
		Where(entrecord.Empresa(string(empresa))).
		Count(ctx)
}
