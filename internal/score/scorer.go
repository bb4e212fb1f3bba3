package score

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/greentrust/esg-audit/constants"
	"github.com/greentrust/esg-audit/internal/entity"
	"github.com/greentrust/esg-audit/internal/verify"
)

// Config holds the scoring weights and the configurable bonus constants.
// The bonus magnitudes are policy, not an inferred business rule.
type Config struct {
	WeightCompleteness float64
	WeightVerification float64
	WeightDisclosure   float64
	PassThreshold      float64
	BonusSupplierFactor float64
	BonusCertification  float64
}

// DefaultConfig returns the 30/40/30 split with a pass mark of 60 and
// +5/+5 verification-quality bonuses.
func DefaultConfig() Config {
	return Config{
		WeightCompleteness:  0.30,
		WeightVerification:  0.40,
		WeightDisclosure:    0.30,
		PassThreshold:       60.0,
		BonusSupplierFactor: 5.0,
		BonusCertification:  5.0,
	}
}

type Scorer struct {
	cfg Config
	log *slog.Logger
}

func NewScorer(cfg Config, logger *slog.Logger) *Scorer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scorer{cfg: cfg, log: logger}
}

// requiredFields is the fixed completeness checklist.
const requiredFields = 5 // supplier id, route, mode, CO2e value, factor source

// Score combines completeness, verification quality, and disclosure-standard
// checks into the weighted Trust Score breakdown.
func (s *Scorer) Score(inv *entity.NormalizedInvoice, vr *entity.VerificationResult) entity.TrustScoreBreakdown {
	b := entity.TrustScoreBreakdown{
		WeightCompleteness: s.cfg.WeightCompleteness,
		WeightVerification: s.cfg.WeightVerification,
		WeightDisclosure:   s.cfg.WeightDisclosure,
	}

	b.Completeness = s.completeness(inv, &b)
	b.VerificationQuality = s.verificationQuality(inv, vr, &b)
	b.DisclosureStandards = s.disclosure(inv, vr, &b)

	total := b.Completeness*b.WeightCompleteness +
		b.VerificationQuality*b.WeightVerification +
		b.DisclosureStandards*b.WeightDisclosure
	b.Total = clamp(total, 0, 100)

	if vr.RequiresReview {
		b.RedFlags = append(b.RedFlags, "forced manual review")
	}

	s.log.Info("score.done",
		"completeness", b.Completeness,
		"verification_quality", b.VerificationQuality,
		"disclosure", b.DisclosureStandards,
		"total", b.Total,
	)
	return b
}

// Verdict applies the decision rule. Forced review takes precedence over a
// numerically passing score.
func (s *Scorer) Verdict(b *entity.TrustScoreBreakdown, vr *entity.VerificationResult) constants.Verdict {
	if vr.RequiresReview {
		return constants.VerdictHumanReview
	}
	if b.Total >= s.cfg.PassThreshold {
		return constants.VerdictCompliant
	}
	return constants.VerdictRemediation
}

// completeness is 100 x presentFields / requiredFields.
func (s *Scorer) completeness(inv *entity.NormalizedInvoice, b *entity.TrustScoreBreakdown) float64 {
	present := 0

	if inv.SupplierID != "" {
		present++
	} else {
		b.RedFlags = append(b.RedFlags, "missing required field: supplier id")
	}
	if routePresent(inv) {
		present++
	} else {
		b.RedFlags = append(b.RedFlags, "missing required field: route")
	}
	if inv.Mode != "" {
		present++
	} else {
		b.RedFlags = append(b.RedFlags, "missing required field: transport mode")
	}
	if inv.CO2eKG != nil {
		present++
	} else {
		b.RedFlags = append(b.RedFlags, "missing required field: CO2e value")
	}
	if inv.FactorSource != constants.FactorUnspecified {
		present++
	} else {
		b.RedFlags = append(b.RedFlags, "missing required field: emission-factor source")
	}

	return 100.0 * float64(present) / float64(requiredFields)
}

// verificationQuality starts at 100 and loses points linearly beyond the
// deviation band, hitting 0 at 50% deviation. Bonuses for supplier-specific
// factors and third-party evidence never push the sub-score past 100, and
// apply only when a deviation was actually computed: an unverifiable claim
// earns nothing from a factor tag or a certification string alone.
func (s *Scorer) verificationQuality(inv *entity.NormalizedInvoice, vr *entity.VerificationResult, b *entity.TrustScoreBreakdown) float64 {
	if vr.DeviationPercent == nil {
		b.RedFlags = append(b.RedFlags, "no benchmark deviation available")
		return 0
	}

	base := 100.0
	over := math.Abs(*vr.DeviationPercent) - verify.DeviationBandPercent
	if over > 0 {
		penalty := over * 100.0 / (50.0 - verify.DeviationBandPercent)
		base -= math.Min(penalty, 100)
		b.RedFlags = append(b.RedFlags,
			fmt.Sprintf("deviation %.1f%% beyond the ±%.0f%% band", *vr.DeviationPercent, verify.DeviationBandPercent))
	}

	if inv.FactorSource == constants.FactorSupplierSpecific {
		base += s.cfg.BonusSupplierFactor
	}
	if inv.Certification != "" {
		base += s.cfg.BonusCertification
	}
	return clamp(base, 0, 100)
}

// disclosure checks methodology documentation, year-over-year comparison data,
// and unit/currency consistency. A fixed-size penalty per missing check.
func (s *Scorer) disclosure(inv *entity.NormalizedInvoice, vr *entity.VerificationResult, b *entity.TrustScoreBreakdown) float64 {
	const perCheck = 100.0 / 3.0
	score := 100.0

	if inv.FactorSource == constants.FactorUnspecified {
		score -= perCheck
		b.RedFlags = append(b.RedFlags, "methodology not documented")
	}
	if inv.PriorYearCO2e == nil {
		score -= perCheck
		b.RedFlags = append(b.RedFlags, "no year-over-year comparison data")
	}
	if vr.HasFlag(constants.FlagUnknownCurrency) || vr.HasFlag(constants.FlagMalformedNumeric) {
		score -= perCheck
		b.RedFlags = append(b.RedFlags, "inconsistent units or currency")
	}
	return clamp(score, 0, 100)
}

func routePresent(inv *entity.NormalizedInvoice) bool {
	if inv.Route() != "" {
		return true
	}
	for _, leg := range inv.Legs {
		if leg.Origin != "" && leg.Destination != "" {
			return true
		}
	}
	return false
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
