package entity

// TrustScoreBreakdown carries the three sub-scores, their fixed weights,
// the weighted total, and every reason that cost points or forced review.
type TrustScoreBreakdown struct {
	Completeness        float64 `json:"completeness"`         // [0,100]
	VerificationQuality float64 `json:"verification_quality"` // [0,100]
	DisclosureStandards float64 `json:"disclosure_standards"` // [0,100]

	WeightCompleteness float64 `json:"weight_completeness"` // 0.30
	WeightVerification float64 `json:"weight_verification"` // 0.40
	WeightDisclosure   float64 `json:"weight_disclosure"`   // 0.30

	Total    float64  `json:"total"` // weighted sum, clamped to [0,100]
	RedFlags []string `json:"red_flags,omitempty"`
}
