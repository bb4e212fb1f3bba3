package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/greentrust/esg-audit/gen/ent"
	entdoc "github.com/greentrust/esg-audit/gen/ent/invoicedocument"
)

type InvoiceDocumentRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ent.InvoiceDocument, error)
	GetByHash(ctx context.Context, hash []byte) (*ent.InvoiceDocument, error)
	Create(ctx context.Context, sourcePath, ext, rawText string, hash []byte, ingestedAt time.Time) (*ent.InvoiceDocument, error)
	UpsertByHash(ctx context.Context, sourcePath, ext, rawText string, hash []byte, ingestedAt time.Time) (*ent.InvoiceDocument, bool, error)
	List(ctx context.Context) ([]*ent.InvoiceDocument, error)
}

type invoiceDocumentRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewInvoiceDocumentRepository(entc *ent.Client, logger *slog.Logger) InvoiceDocumentRepository {
	return &invoiceDocumentRepo{
		ent:    entc,
		logger: logger,
	}
}

func (r *invoiceDocumentRepo) GetByID(ctx context.Context, id uuid.UUID) (*ent.InvoiceDocument, error) {
	return r.ent.InvoiceDocument.Get(ctx, id)
}

func (r *invoiceDocumentRepo) GetByHash(ctx context.Context, hash []byte) (*ent.InvoiceDocument, error) {
	row, err := r.ent.InvoiceDocument.Query().
		Where(entdoc.ContentHash(hash)).
		Only(ctx)
	if err != nil {
		return nil, err
	}
	return row, nil
}

func (r *invoiceDocumentRepo) Create(ctx context.Context, sourcePath, ext, rawText string, hash []byte, ingestedAt time.Time) (*ent.InvoiceDocument, error) {
	row, err := r.ent.InvoiceDocument.Create().
		SetSourcePath(sourcePath).
		SetFileExt(ext).
		SetRawText(rawText).
		SetContentHash(hash).
		SetIngestedAt(ingestedAt).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create invoice document", "source_path", sourcePath, "error", err)
		return nil, err
	}
	return row, nil
}

// UpsertByHash returns the existing row when the content hash is already
// known, so re-ingesting the same invoice text never produces duplicates.
func (r *invoiceDocumentRepo) UpsertByHash(ctx context.Context, sourcePath, ext, rawText string, hash []byte, ingestedAt time.Time) (*ent.InvoiceDocument, bool, error) {
	if existing, err := r.GetByHash(ctx, hash); err == nil {
		return existing, true, nil
	}
	row, err := r.Create(ctx, sourcePath, ext, rawText, hash, ingestedAt)
	if err != nil {
		return nil, false, err
	}
	return row, false, nil
}

func (r *invoiceDocumentRepo) List(ctx context.Context) ([]*ent.InvoiceDocument, error) {
	return r.ent.InvoiceDocument.Query().
		Order(entdoc.ByIngestedAt()).
		All(ctx)
}
