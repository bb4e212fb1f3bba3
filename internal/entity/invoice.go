package entity

import (
	"time"

	"github.com/greentrust/esg-audit/constants"
)

// Leg is one segment of a multimodal shipment.
type Leg struct {
	Mode        constants.TransportMode `json:"mode"`
	Origin      string                  `json:"origin"`
	Destination string                  `json:"destination"`
	DistanceKM  *float64                `json:"distance_km,omitempty"`
	WeightKG    *float64                `json:"weight_kg,omitempty"`
}

// InvoiceRecord holds the facts extracted from one freight invoice.
// Numeric fields are pointers: nil means "missing", never a coerced zero.
type InvoiceRecord struct {
	SupplierID    string                  `json:"supplier_id,omitempty"`
	Origin        string                  `json:"origin,omitempty"`
	Destination   string                  `json:"destination,omitempty"`
	Mode          constants.TransportMode `json:"transport_mode,omitempty"`
	Legs          []Leg                   `json:"legs,omitempty"` // ordered; non-empty for multimodal shipments
	WeightKG      *float64                `json:"weight_kg,omitempty"`
	DistanceKM    *float64                `json:"distance_km,omitempty"`
	CO2eKG        *float64                `json:"co2e_kg,omitempty"`
	AmountTotal   *float64                `json:"amount_total,omitempty"`
	CurrencyCode  string                  `json:"currency_code,omitempty"` // ISO 4217
	InvoiceDate   *time.Time              `json:"invoice_date,omitempty"`
	FactorSource  constants.FactorSource  `json:"factor_source"`
	Certification string                  `json:"certification,omitempty"` // e.g. "carbon neutral", "ISO 14083"
	PriorYearCO2e *float64                `json:"prior_year_co2e_kg,omitempty"`
}

// Route returns "origin-destination" or "" when either endpoint is missing.
func (r *InvoiceRecord) Route() string {
	if r.Origin == "" || r.Destination == "" {
		return ""
	}
	return r.Origin + "-" + r.Destination
}

// Multimodal reports whether the shipment is declared as an ordered leg sequence.
func (r *InvoiceRecord) Multimodal() bool {
	return len(r.Legs) > 0
}

// NormalizedInvoice is an InvoiceRecord with all monetary values expressed in
// the reporting currency and weights/distances in kg/km. It is created once
// per record and never mutated afterwards.
type NormalizedInvoice struct {
	InvoiceRecord
	ReportingCurrency string   `json:"reporting_currency"`
	AmountReporting   *float64 `json:"amount_reporting,omitempty"`
}
