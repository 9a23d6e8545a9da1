package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	pqrv1 "github.com/dfgiraldo/pqr-pipeline/gen/proto/pqr/v1"
	"github.com/dfgiraldo/pqr-pipeline/internal/common"
	"github.com/dfgiraldo/pqr-pipeline/internal/consolidate"
	"github.com/dfgiraldo/pqr-pipeline/internal/flow"
	"github.com/dfgiraldo/pqr-pipeline/internal/loader"
	"github.com/dfgiraldo/pqr-pipeline/internal/reconcile"
	"github.com/dfgiraldo/pqr-pipeline/internal/repository"
	"github.com/dfgiraldo/pqr-pipeline/internal/server"
	"github.com/dfgiraldo/pqr-pipeline/internal/storage"
	"github.com/dfgiraldo/pqr-pipeline/internal/upload"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	entClient, pool, err := repository.Open(ctx, repository.Config(cfg.Database), logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repository.Close(entClient, pool, logger)

	if err := repository.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		logger.Error("database health check failed", "error", err)
		os.Exit(1)
	}

	records := repository.NewPQRRecordRepository(entClient, logger)
	registry := repository.NewUploadRegistryRepository(entClient, logger)
	flowRuns := repository.NewFlowRunRepository(entClient, logger)

	consolidator, err := consolidate.NewService(logger, cfg.Pipeline.ErrorSampleCap)
	if err != nil {
		logger.Error("failed to initialize consolidator", "error", err)
		os.Exit(1)
	}
	recordLoader := loader.NewService(records, logger)
	reconciler := reconcile.NewService(records, registry, cfg.Paths.ProcessedDir, cfg.Pipeline.RecordLimit, logger)

	store, err := storage.NewMinioStore(ctx, cfg.Storage, logger)
	if err != nil {
		logger.Error("failed to initialize object storage", "error", err)
		os.Exit(1)
	}
	uploader := upload.NewService(registry, store, cfg.Storage.BasePath, false, logger)

	orchestrator := flow.NewOrchestrator(consolidator, recordLoader, reconciler, uploader, flowRuns, cfg.Paths, logger)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}

	grpcServer := grpc.NewServer()
	pqrv1.RegisterPQRFlowServiceServer(grpcServer, server.NewFlowService(orchestrator, flowRuns, logger))

	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)

	reflection.Register(grpcServer)

	go func() {
		<-ctx.Done()
		logger.Info("shutting down gRPC server")
		healthServer.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
		grpcServer.GracefulStop()
	}()

	logger.Info("pqrd listening", "addr", cfg.Server.GRPCAddr)
	if err := grpcServer.Serve(lis); err != nil {
		logger.Error("gRPC server stopped", "error", err)
		os.Exit(1)
	}
}
