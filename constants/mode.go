package constants

import (
	"strings"
)

// TransportMode is the canonical transport mode for a shipment or leg.
type TransportMode string

const (
	ModeRoad       TransportMode = "road"
	ModeRail       TransportMode = "rail"
	ModeSea        TransportMode = "sea"
	ModeAir        TransportMode = "air"
	ModeMultimodal TransportMode = "multimodal"
)

var allModes = []TransportMode{ModeRoad, ModeRail, ModeSea, ModeAir}

// ModesAsStrings returns the single-leg modes as plain strings (for schemas/prompts).
func ModesAsStrings() []string {
	result := make([]string, len(allModes))
	for i, m := range allModes {
		result[i] = string(m)
	}
	return result
}

// modeVocabulary maps free-text transport vocabulary to canonical modes.
// Keywords are lowercase and matched as substrings of the input.
var modeVocabulary = map[TransportMode][]string{
	ModeRoad: {"road", "truck", "lorry", "highway", "vehicle", "haulage"},
	ModeAir:  {"air", "flight", "aircraft", "cargo plane", "airfreight"},
	ModeSea:  {"sea", "ship", "vessel", "maritime", "ocean freight"},
	ModeRail: {"rail", "train", "railway"},
}

// CanonicalizeMode maps a free-text mode label to a canonical TransportMode.
// Returns false when no vocabulary entry matches.
func CanonicalizeMode(input string) (TransportMode, bool) {
	normalized := strings.ToLower(strings.TrimSpace(input))
	if normalized == "" {
		return "", false
	}
	for _, m := range allModes {
		if normalized == string(m) {
			return m, true
		}
	}
	for _, m := range allModes {
		for _, kw := range modeVocabulary[m] {
			if strings.Contains(normalized, kw) {
				return m, true
			}
		}
	}
	return "", false
}

// FactorSource tags where an invoice's emission factor came from.
type FactorSource string

const (
	FactorSupplierSpecific FactorSource = "supplier-specific"
	FactorIndustryAverage  FactorSource = "industry-average"
	FactorUnspecified      FactorSource = "unspecified"
)

// CanonicalizeFactorSource normalizes a free-text factor source tag.
// Anything unrecognized is treated as unspecified.
func CanonicalizeFactorSource(input string) FactorSource {
	normalized := strings.ToLower(strings.TrimSpace(input))
	switch {
	case strings.Contains(normalized, "supplier"):
		return FactorSupplierSpecific
	case strings.Contains(normalized, "industry"), strings.Contains(normalized, "average"), strings.Contains(normalized, "default"):
		return FactorIndustryAverage
	default:
		return FactorUnspecified
	}
}
