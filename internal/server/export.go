package server

import (
	"context"
	"time"

	auditv1 "github.com/greentrust/esg-audit/gen/proto/audit/v1"
	"github.com/greentrust/esg-audit/internal/common"
)

// ExportAudits renders stored outcomes as an XLSX workbook.
func (s *AuditServer) ExportAudits(ctx context.Context, req *auditv1.ExportAuditsRequest) (*auditv1.ExportAuditsResponse, error) {
	if s.export == nil {
		return nil, common.InternalError("export service not configured")
	}
	ctx, cancel := common.WithTimeout(ctx, 60*time.Second)
	defer cancel()
	xlsx, err := s.export.ExportAuditsXLSX(ctx, req.GetVerdict(), req.RequiresReview)
	if err != nil {
		s.logger.Error("export.xlsx.failed", "error", err)
		return nil, common.InternalError("export failed")
	}
	return &auditv1.ExportAuditsResponse{Xlsx: xlsx}, nil
}
