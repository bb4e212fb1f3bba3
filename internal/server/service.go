package server

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	auditv1 "github.com/greentrust/esg-audit/gen/proto/audit/v1"
	"github.com/greentrust/esg-audit/internal/audit"
	"github.com/greentrust/esg-audit/internal/common"
	"github.com/greentrust/esg-audit/internal/entity"
	"github.com/greentrust/esg-audit/internal/export"
	"github.com/greentrust/esg-audit/internal/ingest"
	"github.com/greentrust/esg-audit/internal/repository"
)

// AuditServer wires ingest, the audit workflow, and persistence behind the
// gRPC surface.
type AuditServer struct {
	auditv1.UnimplementedAuditServiceServer
	ingestor ingest.Ingestor
	workflow *audit.Workflow
	audits   repository.AuditRecordRepository
	docs     repository.InvoiceDocumentRepository
	export   *export.Service
	logger   *slog.Logger
}

func NewAuditServer(
	ing ingest.Ingestor,
	wf *audit.Workflow,
	audits repository.AuditRecordRepository,
	docs repository.InvoiceDocumentRepository,
	exp *export.Service,
	logger *slog.Logger,
) *AuditServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuditServer{
		ingestor: ing,
		workflow: wf,
		audits:   audits,
		docs:     docs,
		export:   exp,
		logger:   logger,
	}
}

func (s *AuditServer) SubmitAudit(ctx context.Context, req *auditv1.SubmitAuditRequest) (*auditv1.SubmitAuditResponse, error) {
	path := strings.TrimSpace(req.GetPath())
	if path == "" {
		return nil, common.InvalidArgumentError("path is required")
	}

	ctx = common.WithRequestID(ctx, uuid.NewString())
	s.logger.Info("starting invoice audit", "path", path, "request_id", common.RequestIDFromContext(ctx))
	res, err := s.ingestor.IngestPath(ctx, path)
	if err != nil {
		return nil, common.InvalidArgumentErrorf("ingest: %v", err)
	}

	outcome, err := s.auditIngested(ctx, res)
	if err != nil {
		return nil, err
	}

	return &auditv1.SubmitAuditResponse{
		Outcome:        outcome,
		Deduplicated:   res.Deduplicated,
		ContentHashHex: res.HashHex,
	}, nil
}

func (s *AuditServer) SubmitDirectory(ctx context.Context, req *auditv1.SubmitDirectoryRequest) (*auditv1.SubmitDirectoryResponse, error) {
	root := strings.TrimSpace(req.GetRootPath())
	if root == "" {
		return nil, common.InvalidArgumentError("root_path is required")
	}

	ctx = common.WithRequestID(ctx, uuid.NewString())
	s.logger.Info("starting directory audit", "root", root, "skip_hidden", req.GetSkipHidden(), "request_id", common.RequestIDFromContext(ctx))
	results, stats, err := s.ingestor.IngestDirectory(ctx, root, req.GetSkipHidden())
	if err != nil {
		return nil, common.InvalidArgumentErrorf("ingest directory: %v", err)
	}
	s.logger.Info("directory ingest completed",
		"scanned", stats.Scanned, "matched", stats.Matched,
		"succeeded", stats.Succeeded, "deduplicated", stats.Deduplicated, "failed", stats.Failed)

	out := &auditv1.SubmitDirectoryResponse{
		Scanned:      stats.Scanned,
		Matched:      stats.Matched,
		Succeeded:    stats.Succeeded,
		Deduplicated: stats.Deduplicated,
		Failed:       stats.Failed,
		Outcomes:     make([]*auditv1.AuditOutcome, 0, len(results)),
	}

	for _, r := range results {
		if r.Err != "" || r.DocumentID == "" {
			continue
		}
		outcome, err := s.auditIngested(ctx, r)
		if err != nil {
			s.logger.Error("audit.failed", "document_id", r.DocumentID, "error", err)
			continue
		}
		out.Outcomes = append(out.Outcomes, outcome)
	}
	return out, nil
}

// auditIngested runs one ingested document through the workflow and persists
// the outcome.
func (s *AuditServer) auditIngested(ctx context.Context, res ingest.IngestionResult) (*auditv1.AuditOutcome, error) {
	ctx = common.WithDocumentID(ctx, res.DocumentID)
	rec := s.workflow.Run(ctx, res.DocumentID, res.RawText)

	docID, err := uuid.Parse(res.DocumentID)
	if err != nil {
		return nil, common.InternalErrorf("document id: %v", err)
	}
	if _, err := s.audits.Save(ctx, docID, rec); err != nil {
		return nil, common.InternalErrorf("save audit: %v", err)
	}
	s.logger.Info("audit persisted",
		"document_id", common.DocumentIDFromContext(ctx),
		"request_id", common.RequestIDFromContext(ctx),
		"verdict", rec.Verdict,
	)

	return toOutcome(repository.SummaryFromRecord(rec, res.SourcePath)), nil
}

func toOutcome(sum entity.AuditSummary) *auditv1.AuditOutcome {
	out := &auditv1.AuditOutcome{
		Id:                  sum.ID.String(),
		DocumentId:          sum.DocumentID.String(),
		SourcePath:          sum.SourcePath,
		Verdict:             sum.Verdict,
		TrustScore:          sum.TrustScore,
		Completeness:        sum.Completeness,
		VerificationQuality: sum.VerificationQuality,
		DisclosureStandards: sum.DisclosureStandards,
		ExtractionMethod:    sum.ExtractionMethod,
		RequiresReview:      sum.RequiresReview,
		Flags:               sum.Flags,
		FailureReason:       sum.FailureReason,
		StartedAt:           sum.StartedAt.UTC().Format(time.RFC3339),
	}
	if sum.DeviationPercent != nil {
		out.DeviationPercent = sum.DeviationPercent
	}
	if sum.FinishedAt != nil {
		out.FinishedAt = sum.FinishedAt.UTC().Format(time.RFC3339)
	}
	return out
}
