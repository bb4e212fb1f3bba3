package export

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/greentrust/esg-audit/gen/ent"
	"github.com/greentrust/esg-audit/internal/entity"
	"github.com/greentrust/esg-audit/internal/repository"
)

// Service is a tiny façade over repositories that produces XLSX bytes for
// compliance exports.
type Service struct {
	ent        *ent.Client
	auditsRepo repository.AuditRecordRepository
	docsRepo   repository.InvoiceDocumentRepository
	logger     *slog.Logger
}

func NewService(entc *ent.Client, audits repository.AuditRecordRepository, docs repository.InvoiceDocumentRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{ent: entc, auditsRepo: audits, docsRepo: docs, logger: logger}
}

// ExportAuditsXLSX returns an XLSX workbook (as bytes) for stored audit
// outcomes. An empty verdict exports everything; requiresReview narrows to
// rows flagged for review when non-nil.
func (s *Service) ExportAuditsXLSX(ctx context.Context, verdict string, requiresReview *bool) ([]byte, error) {
	start := time.Now()

	rows, err := s.auditsRepo.List(ctx, verdict, requiresReview)
	if err != nil {
		return nil, fmt.Errorf("query audits: %w", err)
	}

	summaries := make([]entity.AuditSummary, 0, len(rows))
	for _, row := range rows {
		sourcePath := ""
		if doc, err := s.docsRepo.GetByID(ctx, row.DocumentID); err == nil && doc != nil {
			sourcePath = doc.SourcePath
		}
		summaries = append(summaries, repository.ToSummary(row, sourcePath))
	}

	buf, err := SummariesXLSX(summaries)
	if err != nil {
		return nil, err
	}

	s.logger.Info("export.xlsx.ok",
		"rows", len(rows),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf, nil
}

// SummariesXLSX renders audit summaries into a workbook without touching the
// database; the batch CLI uses it on in-memory results.
func SummariesXLSX(summaries []entity.AuditSummary) ([]byte, error) {
	f := excelize.NewFile()
	const sheet = "Audits"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		_, err := f.NewSheet(sheet)
		if err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Audited At",
		"Source Document",
		"Verdict",
		"Trust Score",
		"Completeness",
		"Verification Quality",
		"Disclosure Standards",
		"Deviation %",
		"Extraction",
		"Requires Review",
		"Flags",
		"Failure Reason",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, sum := range summaries {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, sum.StartedAt.Format("2006-01-02 15:04:05"))
		write(2, sum.SourcePath)
		write(3, sum.Verdict)
		write(4, fmt.Sprintf("%.2f", sum.TrustScore))
		write(5, fmt.Sprintf("%.2f", sum.Completeness))
		write(6, fmt.Sprintf("%.2f", sum.VerificationQuality))
		write(7, fmt.Sprintf("%.2f", sum.DisclosureStandards))
		if sum.DeviationPercent != nil {
			write(8, fmt.Sprintf("%+.1f", *sum.DeviationPercent))
		} else {
			write(8, "")
		}
		write(9, sum.ExtractionMethod)
		write(10, sum.RequiresReview)
		write(11, truncate(strings.Join(sum.Flags, ", "), 140))
		write(12, truncate(sum.FailureReason, 140))

		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 20) // timestamp
	_ = f.SetColWidth(sheet, "B", "B", 60) // path
	_ = f.SetColWidth(sheet, "C", "C", 28) // verdict
	_ = f.SetColWidth(sheet, "D", "H", 14) // scores
	_ = f.SetColWidth(sheet, "K", "L", 48) // flags, reason

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}
	return buf.Bytes(), nil
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
