package extract

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/greentrust/esg-audit/constants"
	"github.com/greentrust/esg-audit/internal/entity"
	"github.com/greentrust/esg-audit/internal/llm"
)

// Extractor composes the model-based primary path with the pattern fallback.
// Selection is by availability, never by quality: any primary failure silently
// switches to the pattern rules and the method is recorded for the audit trail.
type Extractor struct {
	Primary         llm.FieldExtractor // nil disables the primary path
	DefaultCurrency string
	Logger          *slog.Logger
}

func NewExtractor(primary llm.FieldExtractor, defaultCurrency string, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{Primary: primary, DefaultCurrency: defaultCurrency, Logger: logger}
}

// Extract never fails. Worst case is a record with every field missing.
func (e *Extractor) Extract(ctx context.Context, rawText string) (entity.InvoiceRecord, constants.ExtractionMethod) {
	if e.Primary != nil {
		fields, _, err := e.primaryExtract(ctx, rawText)
		if err == nil {
			return fromFields(fields), constants.ExtractionLLM
		}
		e.Logger.Warn("extract.primary_unavailable", "error", err)
	}
	return FromText(rawText), constants.ExtractionPattern
}

// primaryExtract isolates the provider call so that a panicking provider
// degrades to the fallback instead of killing the audit.
func (e *Extractor) primaryExtract(ctx context.Context, rawText string) (fields llm.InvoiceFields, raw []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("provider panic: %v", r)
		}
	}()
	return e.Primary.ExtractFields(ctx, llm.ExtractRequest{
		RawText:         rawText,
		DefaultCurrency: e.DefaultCurrency,
	})
}
