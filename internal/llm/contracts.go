package llm

import "context"

// LegFields is one leg of a multimodal shipment as returned by the model.
type LegFields struct {
	Mode        string   `json:"mode"`
	Origin      string   `json:"origin,omitempty"`
	Destination string   `json:"destination,omitempty"`
	DistanceKM  *float64 `json:"distance_km,omitempty"`
	WeightKG    *float64 `json:"weight_kg,omitempty"`
}

// InvoiceFields is the normalized shape we want from the LLM.
// Missing fields are omitted, never null or zero-filled.
type InvoiceFields struct {
	SupplierID           string      `json:"supplier_id,omitempty"`
	Origin               string      `json:"origin,omitempty"`
	Destination          string      `json:"destination,omitempty"`
	TransportMode        string      `json:"transport_mode,omitempty"` // road|rail|sea|air
	Legs                 []LegFields `json:"legs,omitempty"`           // ordered, multimodal only
	WeightKG             *float64    `json:"weight_kg,omitempty"`
	DistanceKM           *float64    `json:"distance_km,omitempty"`
	CO2eKG               *float64    `json:"co2e_kg,omitempty"`
	AmountTotal          *float64    `json:"amount_total,omitempty"`
	CurrencyCode         string      `json:"currency_code,omitempty"` // ISO 4217
	InvoiceDate          string      `json:"invoice_date,omitempty"`  // YYYY-MM-DD
	EmissionFactorSource string      `json:"emission_factor_source,omitempty"`
	Certification        string      `json:"certification,omitempty"`
	PriorYearCO2eKG      *float64    `json:"prior_year_co2e_kg,omitempty"`
	ModelConfidence      float32     `json:"confidence,omitempty"` // optional (0..1)
}

type ExtractRequest struct {
	RawText         string
	DocumentHint    string // filename or external id, prompt context only
	DefaultCurrency string
}

// FieldExtractor is the interface the audit pipeline depends on.
// Implementations are treated as unreliable: any error triggers the
// deterministic pattern fallback upstream.
type FieldExtractor interface {
	ExtractFields(ctx context.Context, req ExtractRequest) (InvoiceFields, []byte /*rawJSON*/, error)
}
