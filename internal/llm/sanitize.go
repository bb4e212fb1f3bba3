package llm

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"maps"
	"strconv"
	"strings"
)

var numericFields = []string{
	"weight_kg", "distance_km", "co2e_kg", "amount_total", "prior_year_co2e_kg", "confidence",
}

// NormalizeAndSanitizeJSON
// - Renames known synonyms (co2e -> co2e_kg, mode -> transport_mode)
// - Drops null/empty values so "missing" stays missing
// - Coerces numeric strings ("2,500") to numbers
// - Removes unknown keys (strict additionalProperties = false friendliness)
func NormalizeAndSanitizeJSON(raw []byte, logger *slog.Logger) ([]byte, []string, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, nil, fmt.Errorf("sanitize: decode: %w", err)
	}

	dropped := make([]string, 0, 8)
	renamed := func(from, to string) {
		if v, ok := m[from]; ok {
			if _, exists := m[to]; !exists {
				m[to] = v
			}
			delete(m, from)
			dropped = append(dropped, from+"->"+to)
		}
	}

	// 1) rename synonyms to our schema
	renamed("co2e", "co2e_kg")
	renamed("co2e_claimed", "co2e_kg")
	renamed("emissions_kg", "co2e_kg")
	renamed("mode", "transport_mode")
	renamed("weight", "weight_kg")
	renamed("distance", "distance_km")
	renamed("currency", "currency_code")
	renamed("factor_source", "emission_factor_source")

	// 2) drop null / "" and coerce numeric strings
	for _, k := range numericFields {
		if v, ok := m[k]; ok {
			switch t := v.(type) {
			case float64:
				if t < 0 {
					delete(m, k)
					dropped = append(dropped, k+"(negative)")
				}
			case string:
				s := strings.ReplaceAll(strings.TrimSpace(t), ",", "")
				if s == "" || strings.EqualFold(s, "null") {
					delete(m, k)
					dropped = append(dropped, k+"(empty)")
					continue
				}
				if f, err := strconv.ParseFloat(s, 64); err == nil && f >= 0 {
					m[k] = f
				} else {
					delete(m, k)
					dropped = append(dropped, k+"(unparseable)")
				}
			case nil:
				delete(m, k)
				dropped = append(dropped, k+"(null)")
			default:
				delete(m, k)
				dropped = append(dropped, k+"(type)")
			}
		}
	}

	// 3) normalize string fields lightly
	if v, ok := m["currency_code"].(string); ok {
		cc := strings.ToUpper(strings.TrimSpace(v))
		if len(cc) == 3 {
			m["currency_code"] = cc
		} else {
			delete(m, "currency_code")
			dropped = append(dropped, "currency_code(shape)")
		}
	}
	if v, ok := m["transport_mode"].(string); ok {
		m["transport_mode"] = strings.ToLower(strings.TrimSpace(v))
	}

	// 4) remove unknown keys (everything not in the schema set below)
	allowed := map[string]struct{}{
		"supplier_id": {}, "origin": {}, "destination": {}, "transport_mode": {},
		"legs": {}, "weight_kg": {}, "distance_km": {}, "co2e_kg": {},
		"amount_total": {}, "currency_code": {}, "invoice_date": {},
		"emission_factor_source": {}, "certification": {}, "prior_year_co2e_kg": {},
		"confidence": {},
	}
	for k := range maps.Clone(m) {
		if _, ok := allowed[k]; !ok {
			delete(m, k)
			dropped = append(dropped, k+"(unknown)")
		}
	}

	// 5) trim obvious strings
	trimKeys := []string{"supplier_id", "origin", "destination", "invoice_date", "emission_factor_source", "certification"}
	for _, k := range trimKeys {
		if v, ok := m[k].(string); ok {
			s := strings.TrimSpace(v)
			if s == "" {
				delete(m, k)
				dropped = append(dropped, k+"(empty)")
			} else {
				m[k] = s
			}
		}
	}

	out, err := json.Marshal(m)
	if err != nil {
		return nil, dropped, fmt.Errorf("sanitize: encode: %w", err)
	}
	if len(dropped) > 0 {
		logger.Warn("llm.extract.normalize_sanitize", "dropped", dropped)
	}
	return out, dropped, nil
}
