package entity

import "github.com/greentrust/esg-audit/constants"

// VerificationResult compares a declared emissions value to its benchmark.
type VerificationResult struct {
	BenchmarkCO2eKG  *float64         `json:"benchmark_co2e_kg,omitempty"`
	DeclaredCO2eKG   *float64         `json:"declared_co2e_kg,omitempty"`
	DeviationPercent *float64         `json:"deviation_percent,omitempty"` // signed; nil when no benchmark
	Flags            []constants.Flag `json:"flags"`
	RequiresReview   bool             `json:"requires_review"`
}

// HasFlag reports whether the result carries the given flag.
func (v *VerificationResult) HasFlag(f constants.Flag) bool {
	for _, have := range v.Flags {
		if have == f {
			return true
		}
	}
	return false
}
