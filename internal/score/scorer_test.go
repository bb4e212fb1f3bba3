package score

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greentrust/esg-audit/constants"
	"github.com/greentrust/esg-audit/internal/entity"
)

func ptr(v float64) *float64 { return &v }

func testScorer() *Scorer {
	return NewScorer(DefaultConfig(), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func completeInvoice() entity.NormalizedInvoice {
	return entity.NormalizedInvoice{InvoiceRecord: entity.InvoiceRecord{
		SupplierID:    "SUP-IN-2026-001",
		Origin:        "Mumbai Port",
		Destination:   "Delhi Warehouse",
		Mode:          constants.ModeRoad,
		CO2eKG:        ptr(1650),
		FactorSource:  constants.FactorIndustryAverage,
		PriorYearCO2e: ptr(1800),
	}}
}

func cleanResult(deviation float64) entity.VerificationResult {
	return entity.VerificationResult{DeviationPercent: ptr(deviation)}
}

func TestScoreCompleteCompliantInvoice(t *testing.T) {
	inv := completeInvoice()
	vr := cleanResult(6.7)
	b := testScorer().Score(&inv, &vr)

	assert.InDelta(t, 100.0, b.Completeness, 1e-9)
	assert.InDelta(t, 100.0, b.VerificationQuality, 1e-9)
	assert.InDelta(t, 100.0, b.DisclosureStandards, 1e-9)
	assert.InDelta(t, 100.0, b.Total, 1e-9)
	assert.Empty(t, b.RedFlags)
}

func TestScoreCompletenessPerMissingField(t *testing.T) {
	inv := completeInvoice()
	inv.SupplierID = ""
	inv.Mode = ""
	vr := cleanResult(0)
	b := testScorer().Score(&inv, &vr)

	assert.InDelta(t, 60.0, b.Completeness, 1e-9) // 3 of 5 present
	assert.Contains(t, b.RedFlags, "missing required field: supplier id")
	assert.Contains(t, b.RedFlags, "missing required field: transport mode")
}

func TestScoreRoutePresentViaLegs(t *testing.T) {
	inv := completeInvoice()
	inv.Origin = ""
	inv.Destination = ""
	inv.Legs = []entity.Leg{{Mode: constants.ModeRoad, Origin: "Mumbai", Destination: "Pune"}}
	vr := cleanResult(0)
	b := testScorer().Score(&inv, &vr)

	assert.InDelta(t, 100.0, b.Completeness, 1e-9)
}

func TestScoreVerificationPenaltyBeyondBand(t *testing.T) {
	inv := completeInvoice()

	// 15% band, zero at 50%: 25% deviation loses 10/35 of 100
	vr := cleanResult(25.0)
	b := testScorer().Score(&inv, &vr)
	assert.InDelta(t, 100.0-10.0*100.0/35.0, b.VerificationQuality, 1e-6)

	// sign does not matter for the penalty
	vr = cleanResult(-25.0)
	b = testScorer().Score(&inv, &vr)
	assert.InDelta(t, 100.0-10.0*100.0/35.0, b.VerificationQuality, 1e-6)

	// floor at zero
	vr = cleanResult(90.0)
	b = testScorer().Score(&inv, &vr)
	assert.InDelta(t, 0.0, b.VerificationQuality, 1e-9)
}

func TestScoreNoDeviationZeroBase(t *testing.T) {
	inv := completeInvoice()
	vr := entity.VerificationResult{}
	b := testScorer().Score(&inv, &vr)

	assert.InDelta(t, 0.0, b.VerificationQuality, 1e-9)
	assert.Contains(t, b.RedFlags, "no benchmark deviation available")
}

func TestScoreNoDeviationBonusesDoNotApply(t *testing.T) {
	// A factor tag and a certification string cannot buy points for a
	// claim nothing could be checked against.
	inv := completeInvoice()
	inv.FactorSource = constants.FactorSupplierSpecific
	inv.Certification = "ISO 14083"
	vr := entity.VerificationResult{}
	b := testScorer().Score(&inv, &vr)

	assert.InDelta(t, 0.0, b.VerificationQuality, 1e-9)
}

func TestScoreBonusesClampAt100(t *testing.T) {
	inv := completeInvoice()
	inv.FactorSource = constants.FactorSupplierSpecific
	inv.Certification = "ISO 14083"
	vr := cleanResult(0)
	b := testScorer().Score(&inv, &vr)

	assert.InDelta(t, 100.0, b.VerificationQuality, 1e-9)
}

func TestScoreBonusesLiftPenalizedScore(t *testing.T) {
	inv := completeInvoice()
	inv.FactorSource = constants.FactorSupplierSpecific
	inv.Certification = "ISO 14083"
	vr := cleanResult(25.0)
	b := testScorer().Score(&inv, &vr)

	assert.InDelta(t, 100.0-10.0*100.0/35.0+10.0, b.VerificationQuality, 1e-6)
}

func TestScoreDisclosureChecks(t *testing.T) {
	inv := completeInvoice()
	inv.FactorSource = constants.FactorUnspecified
	inv.PriorYearCO2e = nil
	vr := cleanResult(0)
	vr.Flags = []constants.Flag{constants.FlagUnknownCurrency}
	b := testScorer().Score(&inv, &vr)

	assert.InDelta(t, 0.0, b.DisclosureStandards, 1e-6)
	assert.Contains(t, b.RedFlags, "methodology not documented")
	assert.Contains(t, b.RedFlags, "no year-over-year comparison data")
	assert.Contains(t, b.RedFlags, "inconsistent units or currency")
}

func TestScoreMonotonicInDeviation(t *testing.T) {
	inv := completeInvoice()
	prev := 101.0
	for _, dev := range []float64{0, 10, 16, 25, 40, 49, 60} {
		vr := cleanResult(dev)
		b := testScorer().Score(&inv, &vr)
		assert.LessOrEqual(t, b.Total, prev, "total must not rise as deviation grows (dev=%v)", dev)
		prev = b.Total
	}
}

func TestVerdictCompliant(t *testing.T) {
	inv := completeInvoice()
	vr := cleanResult(6.7)
	s := testScorer()
	b := s.Score(&inv, &vr)

	assert.Equal(t, constants.VerdictCompliant, s.Verdict(&b, &vr))
}

func TestVerdictForcedReviewBeatsPassingScore(t *testing.T) {
	inv := completeInvoice()
	vr := cleanResult(6.7)
	vr.RequiresReview = true
	s := testScorer()
	b := s.Score(&inv, &vr)

	assert.GreaterOrEqual(t, b.Total, s.cfg.PassThreshold)
	assert.Equal(t, constants.VerdictHumanReview, s.Verdict(&b, &vr))
}

func TestVerdictRemediation(t *testing.T) {
	inv := entity.NormalizedInvoice{InvoiceRecord: entity.InvoiceRecord{
		FactorSource: constants.FactorUnspecified,
	}}
	vr := entity.VerificationResult{}
	s := testScorer()
	b := s.Score(&inv, &vr)

	require.Less(t, b.Total, s.cfg.PassThreshold)
	assert.Equal(t, constants.VerdictRemediation, s.Verdict(&b, &vr))
}
