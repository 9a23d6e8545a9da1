// Package server exposes the pipeline over gRPC for the task scheduler and
// operators.
package server

import (
	"context"
	"log/slog"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pqrv1 "github.com/dfgiraldo/pqr-pipeline/gen/proto/pqr/v1"
	"github.com/dfgiraldo/pqr-pipeline/internal/common"
	"github.com/dfgiraldo/pqr-pipeline/internal/flow"
	"github.com/dfgiraldo/pqr-pipeline/internal/repository"
	"github.com/dfgiraldo/pqr-pipeline/internal/utils"
)

type FlowService struct {
	pqrv1.UnimplementedPQRFlowServiceServer
	orchestrator *flow.Orchestrator
	flowRuns     repository.FlowRunRepository
	logger       *slog.Logger
}

func NewFlowService(o *flow.Orchestrator, runs repository.FlowRunRepository, logger *slog.Logger) *FlowService {
	return &FlowService{orchestrator: o, flowRuns: runs, logger: logger}
}

// RunFlow executes one company's pipeline synchronously. Required-step
// failures surface as Internal; the step detail rides in the response
// regardless.
func (s *FlowService) RunFlow(ctx context.Context, req *pqrv1.RunFlowRequest) (*pqrv1.RunFlowResponse, error) {
	empresa, verr := common.RequireCompany("empresa", req.GetEmpresa())
	if verr != nil {
		s.logger.Error("invalid empresa for run flow", "empresa", req.GetEmpresa())
		return nil, status.Error(codes.InvalidArgument, verr.Error())
	}

	s.logger.Info("run flow requested", "empresa", empresa)
	result, err := s.orchestrator.RunCompany(ctx, empresa)
	resp := &pqrv1.RunFlowResponse{Run: utils.ToPBFlowResult(result)}
	if err != nil {
		s.logger.Error("flow failed", "empresa", empresa, "error", err)
		return resp, status.Errorf(codes.Internal, "flow failed: %v", err)
	}
	return resp, nil
}

func (s *FlowService) GetFlowRun(ctx context.Context, req *pqrv1.GetFlowRunRequest) (*pqrv1.GetFlowRunResponse, error) {
	id, verr := common.RequireUUID("id", req.GetId())
	if verr != nil {
		return nil, status.Error(codes.InvalidArgument, verr.Error())
	}
	run, err := s.flowRuns.Get(ctx, id)
	if err != nil {
		s.logger.Error("flow run not found", "id", id, "error", err)
		return nil, status.Error(codes.NotFound, "flow run not found")
	}
	return &pqrv1.GetFlowRunResponse{Run: utils.ToPBFlowRun(run)}, nil
}

func (s *FlowService) ListFlowRuns(ctx context.Context, req *pqrv1.ListFlowRunsRequest) (*pqrv1.ListFlowRunsResponse, error) {
	empresa, verr := common.RequireCompany("empresa", req.GetEmpresa())
	if verr != nil {
		return nil, status.Error(codes.InvalidArgument, verr.Error())
	}
	limit := int(req.GetLimit())
	if limit <= 0 {
		limit = 20
	}
	runs, err := s.flowRuns.ListByEmpresa(ctx, empresa, limit)
	if err != nil {
		s.logger.Error("list flow runs failed", "empresa", empresa, "error", err)
		return nil, status.Error(codes.Internal, "list flow runs failed")
	}
	out := make([]*pqrv1.FlowRun, 0, len(runs))
	for _, r := range runs {
		out = append(out, utils.ToPBFlowRun(r))
	}
	return &pqrv1.ListFlowRunsResponse{Runs: out}, nil
}
