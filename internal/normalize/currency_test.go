package normalize

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greentrust/esg-audit/internal/entity"
)

func ptr(v float64) *float64 { return &v }

func TestNormalizeSameCurrencyPassthrough(t *testing.T) {
	n := NewNormalizer("USD", DefaultRates("USD"))

	out, err := n.Normalize(entity.InvoiceRecord{
		AmountTotal:  ptr(4500.00),
		CurrencyCode: "USD",
	})
	require.NoError(t, err)
	require.NotNil(t, out.AmountReporting)
	assert.InDelta(t, 4500.00, *out.AmountReporting, 1e-9)
	assert.Equal(t, "USD", out.ReportingCurrency)
}

func TestNormalizeConversion(t *testing.T) {
	n := NewNormalizer("USD", Rates{"EUR": 1.0751})

	out, err := n.Normalize(entity.InvoiceRecord{
		AmountTotal:  ptr(1000.00),
		CurrencyCode: "eur",
	})
	require.NoError(t, err)
	require.NotNil(t, out.AmountReporting)
	assert.InDelta(t, 1075.10, *out.AmountReporting, 1e-9)
}

func TestNormalizeBankersRounding(t *testing.T) {
	n := NewNormalizer("USD", Rates{"EUR": 1.0})

	// .005 with an even preceding digit rounds down, odd rounds up
	out, err := n.Normalize(entity.InvoiceRecord{AmountTotal: ptr(2.125), CurrencyCode: "EUR"})
	require.NoError(t, err)
	assert.InDelta(t, 2.12, *out.AmountReporting, 1e-9)

	out, err = n.Normalize(entity.InvoiceRecord{AmountTotal: ptr(2.135), CurrencyCode: "EUR"})
	require.NoError(t, err)
	assert.InDelta(t, 2.14, *out.AmountReporting, 1e-9)
}

func TestNormalizeIdempotent(t *testing.T) {
	n := NewNormalizer("USD", DefaultRates("USD"))

	first, err := n.Normalize(entity.InvoiceRecord{AmountTotal: ptr(1234.56), CurrencyCode: "EUR"})
	require.NoError(t, err)

	again, err := n.Normalize(entity.InvoiceRecord{
		AmountTotal:  first.AmountReporting,
		CurrencyCode: first.ReportingCurrency,
	})
	require.NoError(t, err)
	assert.Equal(t, *first.AmountReporting, *again.AmountReporting)
}

func TestNormalizeUnknownCurrency(t *testing.T) {
	n := NewNormalizer("USD", DefaultRates("USD"))

	_, err := n.Normalize(entity.InvoiceRecord{AmountTotal: ptr(100), CurrencyCode: "XYZ"})
	require.Error(t, err)

	var unknown *UnknownCurrencyError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "XYZ", unknown.Code)
}

func TestNormalizeMissingAmount(t *testing.T) {
	n := NewNormalizer("USD", DefaultRates("USD"))

	out, err := n.Normalize(entity.InvoiceRecord{CurrencyCode: "XYZ"})
	require.NoError(t, err, "no amount means nothing to convert, even with a bad code")
	assert.Nil(t, out.AmountReporting)
}

func TestDefaultRates(t *testing.T) {
	rates := DefaultRates("INR")
	require.NotNil(t, rates)
	assert.InDelta(t, 89.50, rates["EUR"], 1e-9)
	assert.InDelta(t, 1.0, rates["INR"], 1e-9)

	usd := DefaultRates("USD")
	require.NotNil(t, usd)
	assert.InDelta(t, 89.50/83.25, usd["EUR"], 1e-9)

	assert.Nil(t, DefaultRates("XYZ"))
}
