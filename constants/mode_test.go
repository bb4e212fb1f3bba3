package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeMode(t *testing.T) {
	cases := map[string]TransportMode{
		"road":          ModeRoad,
		"Truck freight": ModeRoad,
		"ocean freight": ModeSea,
		"Cargo vessel":  ModeSea,
		"AIR":           ModeAir,
		"railway":       ModeRail,
		"  train  ":     ModeRail,
	}
	for input, want := range cases {
		got, ok := CanonicalizeMode(input)
		assert.True(t, ok, input)
		assert.Equal(t, want, got, input)
	}

	for _, input := range []string{"", "teleport", "pipeline"} {
		_, ok := CanonicalizeMode(input)
		assert.False(t, ok, input)
	}
}

func TestCanonicalizeFactorSource(t *testing.T) {
	assert.Equal(t, FactorSupplierSpecific, CanonicalizeFactorSource("Supplier-specific measurement"))
	assert.Equal(t, FactorIndustryAverage, CanonicalizeFactorSource("industry average"))
	assert.Equal(t, FactorIndustryAverage, CanonicalizeFactorSource("default factor"))
	assert.Equal(t, FactorUnspecified, CanonicalizeFactorSource("unclear"))
	assert.Equal(t, FactorUnspecified, CanonicalizeFactorSource(""))
}

func TestForcesReview(t *testing.T) {
	for _, f := range []Flag{FlagUnrealisticValue, FlagGreenwashingSuspected, FlagHighRiskRegion, FlagMissingSupplierID} {
		assert.True(t, ForcesReview(f), f)
	}
	for _, f := range []Flag{FlagUnverifiedEmissionFactor, FlagNoBenchmark, FlagPartialBenchmark, FlagUnknownCurrency, FlagMalformedNumeric, FlagInconsistentRouteMode} {
		assert.False(t, ForcesReview(f), f)
	}
}
