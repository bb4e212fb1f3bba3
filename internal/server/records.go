package server

import (
	"context"

	auditv1 "github.com/greentrust/esg-audit/gen/proto/audit/v1"
	"github.com/greentrust/esg-audit/internal/common"
	"github.com/greentrust/esg-audit/internal/repository"
)

func (s *AuditServer) ListAuditRecords(ctx context.Context, req *auditv1.ListAuditRecordsRequest) (*auditv1.ListAuditRecordsResponse, error) {
	rows, err := s.audits.List(ctx, req.GetVerdict(), req.RequiresReview)
	if err != nil {
		s.logger.Error("list audits failed", "error", err)
		return nil, common.InternalError("list audits failed")
	}

	out := make([]*auditv1.AuditOutcome, 0, len(rows))
	for _, row := range rows {
		sourcePath := ""
		if doc, err := s.docs.GetByID(ctx, row.DocumentID); err == nil && doc != nil {
			sourcePath = doc.SourcePath
		}
		out = append(out, toOutcome(repository.ToSummary(row, sourcePath)))
	}
	return &auditv1.ListAuditRecordsResponse{Outcomes: out}, nil
}
