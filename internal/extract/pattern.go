package extract

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/greentrust/esg-audit/constants"
	"github.com/greentrust/esg-audit/internal/entity"
)

// Pattern-based fallback extractor. A fixed rule set per field; returns
// "missing" rather than guessing when no rule matches. Total over every
// input, including empty or binary-garbled text.

var (
	reCO2e = []*regexp.Regexp{
		regexp.MustCompile(`(?i)([\d,]+(?:\.\d+)?)\s*kg\s*CO2e?`),
		regexp.MustCompile(`(?i)CO2e?[:\s]+([\d,]+(?:\.\d+)?)\s*kg`),
		regexp.MustCompile(`(?i)emissions[:\s]+([\d,]+(?:\.\d+)?)\s*kg`),
		regexp.MustCompile(`(?i)carbon[:\s]+([\d,]+(?:\.\d+)?)\s*kg`),
	}
	reSupplierCode  = regexp.MustCompile(`SUP-[A-Z]{2}-\d{4}-\d{3,4}`)
	reSupplierLabel = []*regexp.Regexp{
		regexp.MustCompile(`(?i)Supplier\s+ID[:\s]+([A-Z0-9-]+)`),
		regexp.MustCompile(`(?i)Vendor[:\s]+([A-Z0-9-]+)`),
	}
	reRoute = []*regexp.Regexp{
		regexp.MustCompile(`(?i)Origin[:\s]+([A-Za-z][A-Za-z\s]*?)\s*[\r\n].*?Destination[:\s]+([A-Za-z][A-Za-z\s]*?)\s*(?:[\r\n]|$)`),
		regexp.MustCompile(`(?i)From[:\s]+([A-Za-z][A-Za-z\s]*?)\s+To[:\s]+([A-Za-z][A-Za-z\s]*?)\s*(?:[\r\n]|$)`),
		// Bare arrow: endpoints are runs of capitalized words on one line, so
		// surrounding prose ("route X -> Y by sea") stays out of the capture.
		regexp.MustCompile(`([A-Z][A-Za-z]*(?:[ \t]+[A-Z][A-Za-z]*)*)[ \t]*(?:→|->)[ \t]*([A-Z][A-Za-z]*(?:[ \t]+[A-Z][A-Za-z]*)*)`),
	}
	reWeightLabel   = regexp.MustCompile(`(?i)weight[:\s]+([\d,]+(?:\.\d+)?)\s*(kg|kilograms?|metric\s*tons?|tons?|t\b)`)
	reWeightUnit    = regexp.MustCompile(`(?i)([\d,]+(?:\.\d+)?)\s*(kilograms?|metric\s*tons?|tons?|kg)`)
	reDistanceLabel = regexp.MustCompile(`(?i)distance[:\s]+([\d,]+(?:\.\d+)?)\s*(km|kilometers?|miles?|mi\b)?`)
	reDistanceUnit  = regexp.MustCompile(`(?i)([\d,]+(?:\.\d+)?)\s*(kilometers?|miles?|km)`)
	reAmount        = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:total|amount)[^\d\r\n]{0,20}?([A-Z]{3})\s*([\d,]+(?:\.\d+)?)`),
		regexp.MustCompile(`(?i)(?:total|amount)[^\d\r\n]{0,20}?([$€£₹])\s*([\d,]+(?:\.\d+)?)`),
		regexp.MustCompile(`(?i)([A-Z]{3})\s*([\d,]+(?:\.\d+)?)\s*(?:total|due)`),
	}
	reISODate  = regexp.MustCompile(`\b(\d{4})-(\d{2})-(\d{2})\b`)
	rePrior    = regexp.MustCompile(`(?i)(?:prior|previous|last)\s+year[^\d\r\n]{0,40}?([\d,]+(?:\.\d+)?)\s*kg`)
	reLeg      = regexp.MustCompile(`(?i)leg\s*\d+[:\s]+([a-z][a-z\s]*?)[,:\s]+([A-Za-z][A-Za-z\s]*?)\s*(?:→|->|to)\s*([A-Za-z][A-Za-z\s]*?)\s*[,:]?\s*([\d,]+(?:\.\d+)?)\s*(km|kilometers?|miles?)`)
	reFactorRe = regexp.MustCompile(`(?i)emission\s*factor(?:\s*source)?[:\s]+([^\r\n]+)`)

	currencySymbols = map[string]string{"$": "USD", "€": "EUR", "£": "GBP", "₹": "INR"}

	certificationPhrases = []string{
		"carbon neutral", "iso 14083", "iso 14064", "third-party verified",
		"independently verified", "verified by", "smartway certified",
	}
)

// FromText applies the fixed field-recognition rules to raw invoice text.
// Weights are normalized to kg and distances to km at extraction time.
func FromText(text string) entity.InvoiceRecord {
	var rec entity.InvoiceRecord
	rec.FactorSource = constants.FactorUnspecified
	if strings.TrimSpace(text) == "" {
		return rec
	}

	rec.CO2eKG = firstNumber(text, reCO2e)

	if m := reSupplierCode.FindString(text); m != "" {
		rec.SupplierID = m
	} else {
		for _, re := range reSupplierLabel {
			if m := re.FindStringSubmatch(text); m != nil {
				rec.SupplierID = strings.TrimSpace(m[1])
				break
			}
		}
	}

	for _, re := range reRoute {
		if m := re.FindStringSubmatch(text); m != nil {
			rec.Origin = strings.TrimSpace(m[1])
			rec.Destination = strings.TrimSpace(m[2])
			break
		}
	}

	if mode, ok := constants.CanonicalizeMode(text); ok {
		rec.Mode = mode
	}

	rec.WeightKG = weightKG(text)
	rec.DistanceKM = distanceKM(text)
	rec.Legs = parseLegs(text)
	if len(rec.Legs) > 0 {
		rec.Mode = constants.ModeMultimodal
	}

	for _, re := range reAmount {
		if m := re.FindStringSubmatch(text); m != nil {
			code := m[1]
			if mapped, ok := currencySymbols[code]; ok {
				code = mapped
			}
			if v, ok := parseNumber(m[2]); ok {
				rec.AmountTotal = &v
				rec.CurrencyCode = strings.ToUpper(code)
			}
			break
		}
	}

	if m := reISODate.FindStringSubmatch(text); m != nil {
		if t, err := time.Parse("2006-01-02", m[0]); err == nil {
			rec.InvoiceDate = &t
		}
	}

	if m := reFactorRe.FindStringSubmatch(text); m != nil {
		rec.FactorSource = constants.CanonicalizeFactorSource(m[1])
	} else if strings.Contains(strings.ToLower(text), "supplier-specific") {
		rec.FactorSource = constants.FactorSupplierSpecific
	} else if strings.Contains(strings.ToLower(text), "industry average") {
		rec.FactorSource = constants.FactorIndustryAverage
	}

	lower := strings.ToLower(text)
	for _, phrase := range certificationPhrases {
		if idx := strings.Index(lower, phrase); idx >= 0 {
			rec.Certification = strings.TrimSpace(text[idx : idx+len(phrase)])
			break
		}
	}

	rec.PriorYearCO2e = firstNumber(text, []*regexp.Regexp{rePrior})

	return rec
}

func firstNumber(text string, res []*regexp.Regexp) *float64 {
	for _, re := range res {
		if m := re.FindStringSubmatch(text); m != nil {
			if v, ok := parseNumber(m[1]); ok {
				return &v
			}
		}
	}
	return nil
}

func parseNumber(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(s), ",", ""), 64)
	if err != nil || v < 0 {
		return 0, false
	}
	return v, true
}

// weightKG prefers a labeled weight; otherwise scans unit-tagged numbers,
// skipping matches that belong to a CO2e figure. Tons convert to kg.
func weightKG(text string) *float64 {
	if m := reWeightLabel.FindStringSubmatch(text); m != nil {
		if v, ok := parseNumber(m[1]); ok {
			return scaleWeight(v, m[2])
		}
	}
	for _, m := range reWeightUnit.FindAllStringSubmatchIndex(text, -1) {
		tail := text[m[1]:min(len(text), m[1]+12)]
		if strings.Contains(strings.ToLower(tail), "co2") {
			continue
		}
		if v, ok := parseNumber(text[m[2]:m[3]]); ok {
			return scaleWeight(v, text[m[4]:m[5]])
		}
	}
	return nil
}

func scaleWeight(v float64, unit string) *float64 {
	if strings.Contains(strings.ToLower(unit), "ton") || strings.EqualFold(strings.TrimSpace(unit), "t") {
		v *= 1000
	}
	return &v
}

func distanceKM(text string) *float64 {
	if m := reDistanceLabel.FindStringSubmatch(text); m != nil {
		if v, ok := parseNumber(m[1]); ok {
			return scaleDistance(v, m[2])
		}
	}
	if m := reDistanceUnit.FindStringSubmatch(text); m != nil {
		if v, ok := parseNumber(m[1]); ok {
			return scaleDistance(v, m[2])
		}
	}
	return nil
}

func scaleDistance(v float64, unit string) *float64 {
	if strings.Contains(strings.ToLower(unit), "mi") {
		v *= 1.60934
	}
	return &v
}

func parseLegs(text string) []entity.Leg {
	var legs []entity.Leg
	for _, m := range reLeg.FindAllStringSubmatch(text, -1) {
		mode, ok := constants.CanonicalizeMode(m[1])
		if !ok {
			continue
		}
		leg := entity.Leg{
			Mode:        mode,
			Origin:      strings.TrimSpace(m[2]),
			Destination: strings.TrimSpace(m[3]),
		}
		if v, ok := parseNumber(m[4]); ok {
			leg.DistanceKM = scaleDistance(v, m[5])
		}
		legs = append(legs, leg)
	}
	return legs
}
