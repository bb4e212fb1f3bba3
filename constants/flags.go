package constants

// Flag is a data-quality signal raised during verification.
// Each flag is raised deterministically and independently.
type Flag string

const (
	FlagMissingSupplierID        Flag = "missing-supplier-id"
	FlagUnrealisticValue         Flag = "unrealistic-value"
	FlagGreenwashingSuspected    Flag = "greenwashing-suspected"
	FlagInconsistentRouteMode    Flag = "inconsistent-route-mode"
	FlagHighRiskRegion           Flag = "high-risk-region"
	FlagUnverifiedEmissionFactor Flag = "unverified-emission-factor"
	FlagNoBenchmark              Flag = "no-benchmark"
	FlagPartialBenchmark         Flag = "partial-benchmark"
	FlagUnknownCurrency          Flag = "unknown-currency"
	FlagMalformedNumeric         Flag = "malformed-numeric"
)

// forcedReviewFlags independently route an audit to human review,
// regardless of Trust Score.
var forcedReviewFlags = map[Flag]struct{}{
	FlagUnrealisticValue:      {},
	FlagGreenwashingSuspected: {},
	FlagHighRiskRegion:        {},
	FlagMissingSupplierID:     {},
}

// ForcesReview reports whether the flag alone makes manual review mandatory.
func ForcesReview(f Flag) bool {
	_, ok := forcedReviewFlags[f]
	return ok
}
