package normalize

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/greentrust/esg-audit/internal/entity"
)

// Rates maps an ISO 4217 currency code to its fixed conversion factor into the
// reporting currency. The table is frozen at call time, never fetched here.
type Rates map[string]float64

// UnknownCurrencyError is returned when an invoice declares a currency code
// that has no entry in the rate table. There is no 1:1 fallback.
type UnknownCurrencyError struct {
	Code string
}

func (e *UnknownCurrencyError) Error() string {
	return fmt.Sprintf("unknown currency code %q", e.Code)
}

// Normalizer converts invoice monetary values into one reporting currency.
// Weights and distances arrive already normalized (kg/km) from extraction.
type Normalizer struct {
	ReportingCurrency string
	Rates             Rates
}

func NewNormalizer(reportingCurrency string, rates Rates) *Normalizer {
	return &Normalizer{ReportingCurrency: strings.ToUpper(reportingCurrency), Rates: rates}
}

// Normalize builds the immutable normalized snapshot for one invoice record.
// Conversion is exact multiplication with round-half-to-even at 2 decimal
// places, so repeated runs are bit-identical. An invoice already in the
// reporting currency passes through unchanged.
func (n *Normalizer) Normalize(rec entity.InvoiceRecord) (entity.NormalizedInvoice, error) {
	out := entity.NormalizedInvoice{
		InvoiceRecord:     rec,
		ReportingCurrency: n.ReportingCurrency,
	}

	if rec.AmountTotal == nil {
		return out, nil
	}

	code := strings.ToUpper(rec.CurrencyCode)
	if code == "" || code == n.ReportingCurrency {
		v := roundBank2(*rec.AmountTotal)
		out.AmountReporting = &v
		return out, nil
	}

	rate, ok := n.Rates[code]
	if !ok {
		return out, &UnknownCurrencyError{Code: code}
	}

	converted := decimal.NewFromFloat(*rec.AmountTotal).
		Mul(decimal.NewFromFloat(rate)).
		RoundBank(2)
	v, _ := converted.Float64()
	out.AmountReporting = &v
	return out, nil
}

func roundBank2(v float64) float64 {
	r, _ := decimal.NewFromFloat(v).RoundBank(2).Float64()
	return r
}
