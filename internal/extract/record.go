package extract

import (
	"time"

	"github.com/greentrust/esg-audit/constants"
	"github.com/greentrust/esg-audit/internal/entity"
	"github.com/greentrust/esg-audit/internal/llm"
)

// fromFields converts a schema-validated provider result into the canonical
// invoice record. Unrecognized labels degrade to "missing", never to guesses.
func fromFields(f llm.InvoiceFields) entity.InvoiceRecord {
	rec := entity.InvoiceRecord{
		SupplierID:    f.SupplierID,
		Origin:        f.Origin,
		Destination:   f.Destination,
		WeightKG:      nonNegative(f.WeightKG),
		DistanceKM:    nonNegative(f.DistanceKM),
		CO2eKG:        nonNegative(f.CO2eKG),
		AmountTotal:   nonNegative(f.AmountTotal),
		CurrencyCode:  f.CurrencyCode,
		FactorSource:  constants.CanonicalizeFactorSource(f.EmissionFactorSource),
		Certification: f.Certification,
		PriorYearCO2e: nonNegative(f.PriorYearCO2eKG),
	}

	if mode, ok := constants.CanonicalizeMode(f.TransportMode); ok {
		rec.Mode = mode
	}

	for _, l := range f.Legs {
		mode, ok := constants.CanonicalizeMode(l.Mode)
		if !ok {
			continue
		}
		rec.Legs = append(rec.Legs, entity.Leg{
			Mode:        mode,
			Origin:      l.Origin,
			Destination: l.Destination,
			DistanceKM:  nonNegative(l.DistanceKM),
			WeightKG:    nonNegative(l.WeightKG),
		})
	}
	if len(rec.Legs) > 0 {
		rec.Mode = constants.ModeMultimodal
	}

	if f.InvoiceDate != "" {
		if t, err := time.Parse("2006-01-02", f.InvoiceDate); err == nil {
			rec.InvoiceDate = &t
		}
	}

	return rec
}

func nonNegative(v *float64) *float64 {
	if v == nil || *v < 0 {
		return nil
	}
	return v
}
