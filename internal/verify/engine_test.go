package verify

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greentrust/esg-audit/constants"
	"github.com/greentrust/esg-audit/internal/benchmark"
	"github.com/greentrust/esg-audit/internal/entity"
	"github.com/greentrust/esg-audit/internal/risk"
)

func ptr(v float64) *float64 { return &v }

func testEngine() *Engine {
	return NewEngine(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func normalProfile() risk.Profile {
	return risk.Profile{Tier: risk.TierNormal, Rationale: "no watch-list match"}
}

func completeInvoice(co2e float64) entity.NormalizedInvoice {
	return entity.NormalizedInvoice{InvoiceRecord: entity.InvoiceRecord{
		SupplierID:   "SUP-IN-2026-001",
		Origin:       "Mumbai Port",
		Destination:  "Delhi Warehouse",
		Mode:         constants.ModeRoad,
		CO2eKG:       ptr(co2e),
		FactorSource: constants.FactorIndustryAverage,
	}}
}

func resolution(total float64) benchmark.Resolution {
	return benchmark.Resolution{TotalCO2eKG: ptr(total)}
}

func TestVerifyWithinBand(t *testing.T) {
	inv := completeInvoice(245.5)
	vr := testEngine().Verify(&inv, resolution(230.0), normalProfile())

	require.NotNil(t, vr.DeviationPercent)
	assert.InDelta(t, 6.7, *vr.DeviationPercent, 0.05)
	assert.False(t, vr.RequiresReview)
	assert.Empty(t, vr.Flags)
}

func TestVerifyDeviationIsSigned(t *testing.T) {
	inv := completeInvoice(200.0)
	vr := testEngine().Verify(&inv, resolution(250.0), normalProfile())

	require.NotNil(t, vr.DeviationPercent)
	assert.InDelta(t, -20.0, *vr.DeviationPercent, 1e-9)
	assert.True(t, vr.RequiresReview, "magnitude beyond the band forces review")
}

func TestVerifyUnrealisticallyLow(t *testing.T) {
	// Declared 42 against benchmark 100 is -58%: below half the benchmark.
	inv := completeInvoice(42.0)
	vr := testEngine().Verify(&inv, resolution(100.0), normalProfile())

	require.NotNil(t, vr.DeviationPercent)
	assert.InDelta(t, -58.0, *vr.DeviationPercent, 1e-9)
	assert.True(t, vr.HasFlag(constants.FlagUnrealisticValue))
	assert.True(t, vr.RequiresReview)
}

func TestVerifyUnrealisticallyHigh(t *testing.T) {
	inv := completeInvoice(350.0)
	vr := testEngine().Verify(&inv, resolution(100.0), normalProfile())

	assert.True(t, vr.HasFlag(constants.FlagUnrealisticValue))
	assert.True(t, vr.RequiresReview)
}

func TestVerifyGreenwashingNearZeroClaim(t *testing.T) {
	inv := completeInvoice(0.0)
	vr := testEngine().Verify(&inv, resolution(500.0), normalProfile())

	assert.True(t, vr.HasFlag(constants.FlagGreenwashingSuspected))
	assert.True(t, vr.RequiresReview)
}

func TestVerifyNearZeroWithCertificationNotGreenwashing(t *testing.T) {
	inv := completeInvoice(0.0)
	inv.Certification = "carbon neutral"
	vr := testEngine().Verify(&inv, resolution(500.0), normalProfile())

	assert.False(t, vr.HasFlag(constants.FlagGreenwashingSuspected))
}

func TestVerifyMissingSupplierForcesReview(t *testing.T) {
	inv := completeInvoice(230.0)
	inv.SupplierID = ""
	vr := testEngine().Verify(&inv, resolution(230.0), normalProfile())

	assert.True(t, vr.HasFlag(constants.FlagMissingSupplierID))
	assert.True(t, vr.RequiresReview)
}

func TestVerifyHighRiskRegionForcesReview(t *testing.T) {
	inv := completeInvoice(230.0)
	vr := testEngine().Verify(&inv, resolution(230.0), risk.Profile{Tier: risk.TierHigh, Rationale: "conflict zones: Syria"})

	assert.True(t, vr.HasFlag(constants.FlagHighRiskRegion))
	assert.True(t, vr.RequiresReview)
}

func TestVerifyUnverifiedFactorDoesNotForceReview(t *testing.T) {
	inv := completeInvoice(230.0)
	inv.FactorSource = constants.FactorUnspecified
	vr := testEngine().Verify(&inv, resolution(230.0), normalProfile())

	assert.True(t, vr.HasFlag(constants.FlagUnverifiedEmissionFactor))
	assert.False(t, vr.RequiresReview)
}

func TestVerifyNoDeclaredCO2e(t *testing.T) {
	inv := completeInvoice(0)
	inv.CO2eKG = nil
	vr := testEngine().Verify(&inv, resolution(230.0), normalProfile())

	assert.Nil(t, vr.DeviationPercent)
	assert.False(t, vr.HasFlag(constants.FlagNoBenchmark))
}

func TestVerifyNoBenchmark(t *testing.T) {
	inv := completeInvoice(245.5)
	vr := testEngine().Verify(&inv, benchmark.Resolution{Partial: true}, normalProfile())

	assert.Nil(t, vr.DeviationPercent)
	assert.True(t, vr.HasFlag(constants.FlagNoBenchmark))
	assert.True(t, vr.HasFlag(constants.FlagPartialBenchmark))
	assert.False(t, vr.RequiresReview, "missing benchmark alone does not force review")
}

func TestVerifyNearZeroBenchmarkNoDivision(t *testing.T) {
	inv := completeInvoice(245.5)
	vr := testEngine().Verify(&inv, resolution(0.0), normalProfile())

	assert.Nil(t, vr.DeviationPercent)
	assert.True(t, vr.HasFlag(constants.FlagNoBenchmark))
}

func TestVerifyInlandSeaRoute(t *testing.T) {
	inv := completeInvoice(245.5)
	inv.Mode = constants.ModeSea
	inv.Origin = "Delhi"
	inv.Destination = "Zurich"
	vr := testEngine().Verify(&inv, resolution(230.0), normalProfile())

	assert.True(t, vr.HasFlag(constants.FlagInconsistentRouteMode))
	assert.False(t, vr.RequiresReview, "inconsistent route-mode flags but does not force review")
}

func TestVerifyUpstreamFlagsCarryThrough(t *testing.T) {
	inv := completeInvoice(245.5)
	vr := testEngine().Verify(&inv, resolution(230.0), normalProfile(), constants.FlagUnknownCurrency)

	assert.True(t, vr.HasFlag(constants.FlagUnknownCurrency))
	assert.False(t, vr.RequiresReview)
}
