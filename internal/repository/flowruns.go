package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/dfgiraldo/pqr-pipeline/constants"
	"github.com/dfgiraldo/pqr-pipeline/gen/ent"
	entflowrun "github.com/dfgiraldo/pqr-pipeline/gen/ent/flowrun"
	"github.com/dfgiraldo/pqr-pipeline/internal/entity"
)

// FlowRunRepository persists pipeline invocations and their step results.
type FlowRunRepository interface {
	Start(ctx context.Context, empresa constants.Company) (*ent.FlowRun, error)
	Finish(ctx context.Context, id uuid.UUID, success bool, steps []entity.FlowStepResult) error
	Get(ctx context.Context, id uuid.UUID) (*ent.FlowRun, error)
	ListByEmpresa(ctx context.Context, empresa constants.Company, limit int) ([]*ent.FlowRun, error)
}

type flowRunRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewFlowRunRepository(entc *ent.Client, logger *slog.Logger) FlowRunRepository {
	return &flowRunRepo{ent: entc, logger: logger}
}

func (r *flowRunRepo) Start(ctx context.Context, empresa constants.Company) (*ent.FlowRun, error) {
	row, err := r.ent.FlowRun.Create().
		SetEmpresa(string(empresa)).
		SetStartedAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create flow run", "empresa", empresa, "error", err)
		return nil, err
	}
	return row, nil
}

func (r *flowRunRepo) Finish(ctx context.Context, id uuid.UUID, success bool, steps []entity.FlowStepResult) error {
	_, err := r.ent.FlowRun.UpdateOneID(id).
		SetFinishedAt(time.Now().UTC()).
		SetSuccess(success).
		SetSteps(steps).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to finish flow run", "id", id, "error", err)
	}
	return err
}

func (r *flowRunRepo) Get(ctx context.Context, id uuid.UUID) (*ent.FlowRun, error) {
	return r.ent.FlowRun.Get(ctx, id)
}

func (r *flowRunRepo) ListByEmpresa(ctx context.Context, empresa constants.Company, limit int) ([]*ent.FlowRun, error) {
	q := r.ent.FlowRun.Query().
		Where(entflowrun.Empresa(string(empresa))).
		Order(ent.Desc(entflowrun.FieldStartedAt))
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		r.logger.Error("failed to list flow runs", "empresa", empresa, "error", err)
		return nil, err
	}
	return rows, nil
}
