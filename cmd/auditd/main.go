package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	auditv1 "github.com/greentrust/esg-audit/gen/proto/audit/v1"
	"github.com/greentrust/esg-audit/internal/audit"
	"github.com/greentrust/esg-audit/internal/benchmark"
	"github.com/greentrust/esg-audit/internal/common"
	"github.com/greentrust/esg-audit/internal/export"
	"github.com/greentrust/esg-audit/internal/extract"
	"github.com/greentrust/esg-audit/internal/ingest"
	"github.com/greentrust/esg-audit/internal/llm"
	"github.com/greentrust/esg-audit/internal/llm/openai"
	"github.com/greentrust/esg-audit/internal/normalize"
	"github.com/greentrust/esg-audit/internal/repository"
	"github.com/greentrust/esg-audit/internal/risk"
	"github.com/greentrust/esg-audit/internal/score"
	"github.com/greentrust/esg-audit/internal/server"
	"github.com/greentrust/esg-audit/internal/verify"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	db, err := common.InitDatabase(ctx, cfg, false, logger)
	if err != nil {
		logger.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer db.Close(logger)

	if err := repository.HealthCheck(ctx, db.Pool, cfg.Database.DialTimeout, logger); err != nil {
		logger.Error("database health check failed", "error", err)
		os.Exit(1)
	}
	logger.Info("database health OK")

	table, err := loadTable(cfg.Audit.KnowledgeDir)
	if err != nil {
		logger.Error("failed to load benchmark table", "error", err)
		os.Exit(1)
	}
	regions, err := loadRegions(cfg.Audit.KnowledgeDir)
	if err != nil {
		logger.Error("failed to load risk regions", "error", err)
		os.Exit(1)
	}

	var primary llm.FieldExtractor
	if cfg.LLM.APIKey != "" {
		primary = openai.NewClient(openai.Config{
			Model:       cfg.LLM.Model,
			APIKey:      cfg.LLM.APIKey,
			Temperature: cfg.LLM.Temperature,
			Timeout:     cfg.LLM.Timeout,
		}, logger)
		logger.Info("OpenAI client initialized", "model", cfg.LLM.Model)
	} else {
		logger.Warn("OpenAI API key not configured, extraction will use pattern rules")
	}

	rates := normalize.DefaultRates(cfg.Audit.ReportingCurrency)
	if rates == nil {
		logger.Error("unsupported reporting currency", "currency", cfg.Audit.ReportingCurrency)
		os.Exit(1)
	}

	workflow := audit.NewWorkflow(
		extract.NewExtractor(primary, cfg.Audit.ReportingCurrency, logger),
		normalize.NewNormalizer(cfg.Audit.ReportingCurrency, rates),
		benchmark.NewResolver(table, logger),
		risk.NewAssessor(regions),
		verify.NewEngine(logger),
		score.NewScorer(score.DefaultConfig(), logger),
		logger,
	)

	docsRepo := repository.NewInvoiceDocumentRepository(db.Client, logger)
	auditsRepo := repository.NewAuditRecordRepository(db.Client, logger)
	ingestor := ingest.NewFSIngestor(docsRepo, logger)
	exportService := export.NewService(db.Client, auditsRepo, docsRepo, logger)

	grpcServer := grpc.NewServer()
	hs := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	svc := server.NewAuditServer(ingestor, workflow, auditsRepo, docsRepo, exportService, logger)
	auditv1.RegisterAuditServiceServer(grpcServer, svc)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("listen failed", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	logger.Info("gRPC serving", "addr", cfg.Server.GRPCAddr)

	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			logger.Error("grpc serve failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	grpcServer.GracefulStop()
	logger.Info("stopped")
}

func loadTable(knowledgeDir string) (*benchmark.Table, error) {
	if knowledgeDir == "" {
		return benchmark.DefaultTable()
	}
	return benchmark.LoadTable(filepath.Join(knowledgeDir, "benchmarks.yaml"))
}

func loadRegions(knowledgeDir string) (*risk.Regions, error) {
	if knowledgeDir == "" {
		return risk.DefaultRegions()
	}
	return risk.LoadRegions(filepath.Join(knowledgeDir, "regions.yaml"))
}
