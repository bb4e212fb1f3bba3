package extract

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greentrust/esg-audit/constants"
	"github.com/greentrust/esg-audit/internal/llm"
)

type stubProvider struct {
	fields llm.InvoiceFields
	err    error
	panics bool
}

func (s *stubProvider) ExtractFields(context.Context, llm.ExtractRequest) (llm.InvoiceFields, []byte, error) {
	if s.panics {
		panic("provider exploded")
	}
	return s.fields, nil, s.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestExtractUsesPrimaryWhenHealthy(t *testing.T) {
	co2e := 245.5
	e := NewExtractor(&stubProvider{fields: llm.InvoiceFields{
		SupplierID:    "SUP-DE-2026-042",
		TransportMode: "rail",
		CO2eKG:        &co2e,
	}}, "USD", discardLogger())

	rec, method := e.Extract(context.Background(), "irrelevant")
	assert.Equal(t, constants.ExtractionLLM, method)
	assert.Equal(t, "SUP-DE-2026-042", rec.SupplierID)
	assert.Equal(t, constants.ModeRail, rec.Mode)
	require.NotNil(t, rec.CO2eKG)
	assert.InDelta(t, 245.5, *rec.CO2eKG, 1e-9)
}

func TestExtractFallsBackOnError(t *testing.T) {
	e := NewExtractor(&stubProvider{err: errors.New("rate limited")}, "USD", discardLogger())

	rec, method := e.Extract(context.Background(), sampleInvoice)
	assert.Equal(t, constants.ExtractionPattern, method)
	assert.Equal(t, "SUP-IN-2026-001", rec.SupplierID)
}

func TestExtractFallsBackOnPanic(t *testing.T) {
	e := NewExtractor(&stubProvider{panics: true}, "USD", discardLogger())

	rec, method := e.Extract(context.Background(), sampleInvoice)
	assert.Equal(t, constants.ExtractionPattern, method)
	assert.Equal(t, constants.ModeRoad, rec.Mode)
}

func TestExtractWithoutPrimary(t *testing.T) {
	e := NewExtractor(nil, "USD", discardLogger())

	rec, method := e.Extract(context.Background(), sampleInvoice)
	assert.Equal(t, constants.ExtractionPattern, method)
	require.NotNil(t, rec.CO2eKG)
}

func TestExtractNeverFailsOnEmptyInput(t *testing.T) {
	e := NewExtractor(&stubProvider{err: errors.New("down")}, "USD", discardLogger())

	rec, method := e.Extract(context.Background(), "")
	assert.Equal(t, constants.ExtractionPattern, method)
	assert.Empty(t, rec.SupplierID)
	assert.Nil(t, rec.CO2eKG)
}

func TestFromFieldsDropsNegativeNumerics(t *testing.T) {
	neg := -12.0
	ok := 42.0
	rec := fromFields(llm.InvoiceFields{
		WeightKG:      &neg,
		CO2eKG:        &ok,
		TransportMode: "truck freight",
	})
	assert.Nil(t, rec.WeightKG)
	require.NotNil(t, rec.CO2eKG)
	assert.Equal(t, constants.ModeRoad, rec.Mode)
}
