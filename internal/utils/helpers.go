package utils

import (
	"time"

	"github.com/dfgiraldo/pqr-pipeline/gen/ent"
	pqrv1 "github.com/dfgiraldo/pqr-pipeline/gen/proto/pqr/v1"
	"github.com/dfgiraldo/pqr-pipeline/internal/entity"
)

// ToPBFlowRun maps a persisted flow run to its wire shape.
func ToPBFlowRun(r *ent.FlowRun) *pqrv1.FlowRun {
	out := &pqrv1.FlowRun{
		Id:        r.ID.String(),
		Empresa:   r.Empresa,
		StartedAt: r.StartedAt.UTC().Format(time.RFC3339),
		Success:   r.Success,
		Steps:     ToPBSteps(r.Steps),
	}
	if r.FinishedAt != nil {
		out.FinishedAt = r.FinishedAt.UTC().Format(time.RFC3339)
	}
	return out
}

// ToPBFlowResult maps an in-memory flow result (a run that just happened)
// to the wire shape.
func ToPBFlowResult(r entity.FlowResult) *pqrv1.FlowRun {
	return &pqrv1.FlowRun{
		Empresa:    string(r.Empresa),
		StartedAt:  r.StartedAt.UTC().Format(time.RFC3339),
		FinishedAt: r.FinishedAt.UTC().Format(time.RFC3339),
		Success:    r.Success,
		Steps:      ToPBSteps(r.Steps),
	}
}

func ToPBSteps(steps []entity.FlowStepResult) []*pqrv1.FlowStepResult {
	out := make([]*pqrv1.FlowStepResult, 0, len(steps))
	for _, s := range steps {
		out = append(out, &pqrv1.FlowStepResult{
			Step:       string(s.Step),
			Success:    s.Success,
			DurationMs: s.Duration.Milliseconds(),
			Processed:  int32(s.Processed),
			Errors:     s.Errors,
		})
	}
	return out
}
