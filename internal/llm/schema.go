package llm

// BuildInvoiceJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a generic map.
// We pass this to the provider as a structured output constraint and also use it
// locally to validate whatever comes back.
func BuildInvoiceJSONSchema(allowedModes []string) map[string]any {
	legProps := map[string]any{
		"mode":        map[string]any{"type": "string", "enum": allowedModes},
		"origin":      map[string]any{"type": "string"},
		"destination": map[string]any{"type": "string"},
		"distance_km": nonNegativeNumber(),
		"weight_kg":   nonNegativeNumber(),
	}

	props := map[string]any{
		"supplier_id":    map[string]any{"type": "string", "minLength": 1},
		"origin":         map[string]any{"type": "string", "minLength": 1},
		"destination":    map[string]any{"type": "string", "minLength": 1},
		"transport_mode": map[string]any{"type": "string", "enum": allowedModes},
		"legs": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type":                 "object",
				"additionalProperties": false,
				"properties":           legProps,
				"required":             []string{"mode"},
			},
		},
		"weight_kg":              nonNegativeNumber(),
		"distance_km":            nonNegativeNumber(),
		"co2e_kg":                nonNegativeNumber(),
		"amount_total":           nonNegativeNumber(),
		"currency_code":          map[string]any{"type": "string", "minLength": 3, "maxLength": 3},
		"invoice_date":           map[string]any{"type": "string", "pattern": `^\d{4}-\d{2}-\d{2}$`},
		"emission_factor_source": map[string]any{"type": "string"},
		"certification":          map[string]any{"type": "string"},
		"prior_year_co2e_kg":     nonNegativeNumber(),
		"confidence":             map[string]any{"type": "number", "minimum": 0.0, "maximum": 1.0},
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           props,
		// Everything is optional by contract: the extractor reports "missing"
		// rather than guessing.
		"required": []string{},
	}
}

func nonNegativeNumber() map[string]any {
	return map[string]any{"type": "number", "minimum": 0.0}
}
