package repository

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"

	"github.com/greentrust/esg-audit/constants"
	"github.com/greentrust/esg-audit/gen/ent"
	entaudit "github.com/greentrust/esg-audit/gen/ent/auditrecord"
	"github.com/greentrust/esg-audit/internal/audit"
	"github.com/greentrust/esg-audit/internal/entity"
)

type AuditRecordRepository interface {
	Save(ctx context.Context, documentID uuid.UUID, rec *audit.Record) (*ent.AuditRecord, error)
	GetByID(ctx context.Context, id uuid.UUID) (*ent.AuditRecord, error)
	List(ctx context.Context, verdict string, requiresReview *bool) ([]*ent.AuditRecord, error)
}

type auditRecordRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewAuditRecordRepository(entc *ent.Client, logger *slog.Logger) AuditRecordRepository {
	return &auditRecordRepo{
		ent:    entc,
		logger: logger,
	}
}

func (r *auditRecordRepo) Save(ctx context.Context, documentID uuid.UUID, rec *audit.Record) (*ent.AuditRecord, error) {
	flags, err := json.Marshal(rec.Verification.Flags)
	if err != nil {
		return nil, err
	}
	invoice, err := json.Marshal(rec.Invoice)
	if err != nil {
		return nil, err
	}
	history, err := json.Marshal(rec.History)
	if err != nil {
		return nil, err
	}

	create := r.ent.AuditRecord.Create().
		SetID(rec.ID).
		SetDocumentID(documentID).
		SetVerdict(string(rec.Verdict)).
		SetTrustScore(rec.Score.Total).
		SetCompleteness(rec.Score.Completeness).
		SetVerificationQuality(rec.Score.VerificationQuality).
		SetDisclosureStandards(rec.Score.DisclosureStandards).
		SetRequiresReview(rec.Verification.RequiresReview).
		SetFlags(flags).
		SetInvoice(invoice).
		SetHistory(history).
		SetStartedAt(rec.StartedAt)
	if rec.Verification.DeviationPercent != nil {
		create.SetDeviationPercent(*rec.Verification.DeviationPercent)
	}
	if rec.ExtractionMethod != "" {
		create.SetExtractionMethod(string(rec.ExtractionMethod))
	}
	if rec.FailureReason != "" {
		create.SetFailureReason(rec.FailureReason)
	}
	if rec.FinishedAt != nil {
		create.SetFinishedAt(*rec.FinishedAt)
	}

	row, err := create.Save(ctx)
	if err != nil {
		r.logger.Error("failed to save audit record", "document_id", documentID, "error", err)
		return nil, err
	}
	return row, nil
}

func (r *auditRecordRepo) GetByID(ctx context.Context, id uuid.UUID) (*ent.AuditRecord, error) {
	return r.ent.AuditRecord.Get(ctx, id)
}

func (r *auditRecordRepo) List(ctx context.Context, verdict string, requiresReview *bool) ([]*ent.AuditRecord, error) {
	q := r.ent.AuditRecord.Query()
	if verdict != "" {
		q = q.Where(entaudit.Verdict(verdict))
	}
	if requiresReview != nil {
		q = q.Where(entaudit.RequiresReview(*requiresReview))
	}
	return q.Order(entaudit.ByStartedAt()).All(ctx)
}

// ToSummary flattens a stored row into the listing/export shape.
func ToSummary(row *ent.AuditRecord, sourcePath string) entity.AuditSummary {
	s := entity.AuditSummary{
		ID:                  row.ID,
		DocumentID:          row.DocumentID,
		SourcePath:          sourcePath,
		Verdict:             row.Verdict,
		TrustScore:          row.TrustScore,
		Completeness:        row.Completeness,
		VerificationQuality: row.VerificationQuality,
		DisclosureStandards: row.DisclosureStandards,
		DeviationPercent:    row.DeviationPercent,
		RequiresReview:      row.RequiresReview,
		StartedAt:           row.StartedAt,
		FinishedAt:          row.FinishedAt,
	}
	if row.ExtractionMethod != nil {
		s.ExtractionMethod = *row.ExtractionMethod
	}
	if row.FailureReason != nil {
		s.FailureReason = *row.FailureReason
	}
	if len(row.Flags) > 0 {
		var flags []constants.Flag
		if err := json.Unmarshal(row.Flags, &flags); err == nil {
			for _, f := range flags {
				s.Flags = append(s.Flags, string(f))
			}
		}
	}
	return s
}

// SummaryFromRecord flattens an in-memory record without a database round trip.
func SummaryFromRecord(rec *audit.Record, sourcePath string) entity.AuditSummary {
	s := entity.AuditSummary{
		ID:                  rec.ID,
		Verdict:             string(rec.Verdict),
		SourcePath:          sourcePath,
		TrustScore:          rec.Score.Total,
		Completeness:        rec.Score.Completeness,
		VerificationQuality: rec.Score.VerificationQuality,
		DisclosureStandards: rec.Score.DisclosureStandards,
		DeviationPercent:    rec.Verification.DeviationPercent,
		ExtractionMethod:    string(rec.ExtractionMethod),
		RequiresReview:      rec.Verification.RequiresReview,
		FailureReason:       rec.FailureReason,
		StartedAt:           rec.StartedAt,
		FinishedAt:          rec.FinishedAt,
	}
	if id, err := uuid.Parse(rec.DocumentID); err == nil {
		s.DocumentID = id
	}
	for _, f := range rec.Verification.Flags {
		s.Flags = append(s.Flags, string(f))
	}
	return s
}
