package normalize

import "strings"

// inrPivot is the frozen exchange table, expressed as units of INR per one
// unit of each currency. Conversions between any two supported currencies go
// through this pivot, so the table stays a single column.
var inrPivot = map[string]float64{
	"EUR": 89.50,
	"USD": 83.25,
	"GBP": 105.30,
	"INR": 1.0,
}

// DefaultRates derives the conversion table into the given reporting
// currency from the frozen pivot. Returns nil for an unsupported reporting
// currency.
func DefaultRates(reportingCurrency string) Rates {
	base, ok := inrPivot[strings.ToUpper(strings.TrimSpace(reportingCurrency))]
	if !ok {
		return nil
	}
	rates := make(Rates, len(inrPivot))
	for code, inr := range inrPivot {
		rates[code] = inr / base
	}
	return rates
}
