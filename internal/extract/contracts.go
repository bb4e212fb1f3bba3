package extract

import (
	"context"

	"github.com/greentrust/esg-audit/constants"
	"github.com/greentrust/esg-audit/internal/entity"
)

// InvoiceExtractor is Stage 1 of the audit pipeline: raw text -> invoice record.
// Extract never fails; the worst case is a record with every field missing.
type InvoiceExtractor interface {
	Extract(ctx context.Context, rawText string) (entity.InvoiceRecord, constants.ExtractionMethod)
}
