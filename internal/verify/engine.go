package verify

import (
	"log/slog"
	"math"
	"strings"

	"github.com/greentrust/esg-audit/constants"
	"github.com/greentrust/esg-audit/internal/benchmark"
	"github.com/greentrust/esg-audit/internal/entity"
	"github.com/greentrust/esg-audit/internal/risk"
)

const (
	// DeviationBandPercent is the acceptable deviation band around the benchmark.
	DeviationBandPercent = 15.0
	// Declared values above 200% or below 50% of benchmark are unrealistic,
	// a stricter signal than the deviation band. In deviation terms that is
	// +100% and -50%.
	unrealisticHigh = 100.0
	unrealisticLow  = -50.0
	// Declared CO2e under this is treated as a zero claim.
	nearZeroKG = 0.001
	// Benchmarks under this cannot anchor a deviation.
	benchmarkEpsilon = 1e-6
)

// Engine compares declared emissions to the resolved benchmark and raises
// data-quality flags. Pure computation; all inputs are read-only snapshots.
type Engine struct {
	// InlandLocations lists endpoints with no sea access, lowercased.
	// A single-mode sea shipment between two of them is route-inconsistent.
	InlandLocations map[string]struct{}
	Logger          *slog.Logger
}

func NewEngine(logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{InlandLocations: defaultInlandLocations, Logger: logger}
}

var defaultInlandLocations = map[string]struct{}{
	"delhi": {}, "delhi warehouse": {}, "madrid": {}, "zurich": {}, "vienna": {},
	"prague": {}, "kathmandu": {}, "ulaanbaatar": {}, "nairobi": {}, "denver": {},
	"frankfurt": {}, "warsaw": {}, "kabul": {},
}

// Verify produces the verification result for one normalized invoice.
// extraFlags carries upstream domain-validation flags (unknown currency,
// malformed numerics) so they surface on the same result.
func (e *Engine) Verify(inv *entity.NormalizedInvoice, res benchmark.Resolution, rp risk.Profile, extraFlags ...constants.Flag) entity.VerificationResult {
	out := entity.VerificationResult{
		DeclaredCO2eKG:  inv.CO2eKG,
		BenchmarkCO2eKG: res.TotalCO2eKG,
	}
	out.Flags = append(out.Flags, extraFlags...)

	if inv.SupplierID == "" {
		out.Flags = append(out.Flags, constants.FlagMissingSupplierID)
	}
	if inv.FactorSource == constants.FactorUnspecified {
		out.Flags = append(out.Flags, constants.FlagUnverifiedEmissionFactor)
	}
	if rp.Tier == risk.TierHigh {
		out.Flags = append(out.Flags, constants.FlagHighRiskRegion)
	}
	if res.Partial {
		out.Flags = append(out.Flags, constants.FlagPartialBenchmark)
	}

	if inv.CO2eKG != nil && *inv.CO2eKG < nearZeroKG && inv.Certification == "" {
		out.Flags = append(out.Flags, constants.FlagGreenwashingSuspected)
	}

	if e.routeModeInconsistent(inv) {
		out.Flags = append(out.Flags, constants.FlagInconsistentRouteMode)
	}

	switch {
	case inv.CO2eKG == nil:
		// nothing declared; completeness scoring picks this up
	case res.TotalCO2eKG == nil || *res.TotalCO2eKG < benchmarkEpsilon:
		out.Flags = append(out.Flags, constants.FlagNoBenchmark)
	default:
		deviation := (*inv.CO2eKG - *res.TotalCO2eKG) / *res.TotalCO2eKG * 100.0
		out.DeviationPercent = &deviation
		if deviation > unrealisticHigh || deviation < unrealisticLow {
			out.Flags = append(out.Flags, constants.FlagUnrealisticValue)
		}
	}

	out.RequiresReview = requiresReview(&out)

	e.Logger.Info("verify.done",
		"deviation", deref(out.DeviationPercent),
		"flags", len(out.Flags),
		"requires_review", out.RequiresReview,
	)
	return out
}

// requiresReview applies the forced-review rule: deviation magnitude beyond
// the band, or any independently forcing flag.
func requiresReview(v *entity.VerificationResult) bool {
	if v.DeviationPercent != nil && math.Abs(*v.DeviationPercent) > DeviationBandPercent {
		return true
	}
	for _, f := range v.Flags {
		if constants.ForcesReview(f) {
			return true
		}
	}
	return false
}

// routeModeInconsistent flags positive evidence only: a sea shipment whose
// endpoints are both known inland locations, with no connecting leg.
func (e *Engine) routeModeInconsistent(inv *entity.NormalizedInvoice) bool {
	if inv.Multimodal() || inv.Mode != constants.ModeSea {
		return false
	}
	return e.inland(inv.Origin) && e.inland(inv.Destination)
}

func (e *Engine) inland(location string) bool {
	_, ok := e.InlandLocations[strings.ToLower(strings.TrimSpace(location))]
	return ok
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
