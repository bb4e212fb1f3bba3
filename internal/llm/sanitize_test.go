package llm

import (
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greentrust/esg-audit/constants"
)

func sanitize(t *testing.T, raw string) map[string]any {
	t.Helper()
	out, _, err := NormalizeAndSanitizeJSON([]byte(raw), slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(out, &m))
	return m
}

func TestSanitizeRenamesSynonyms(t *testing.T) {
	m := sanitize(t, `{"co2e": 245.5, "mode": "Road", "currency": "usd"}`)
	assert.Equal(t, 245.5, m["co2e_kg"])
	assert.Equal(t, "road", m["transport_mode"])
	assert.Equal(t, "USD", m["currency_code"])
	assert.NotContains(t, m, "co2e")
	assert.NotContains(t, m, "mode")
}

func TestSanitizeCoercesNumericStrings(t *testing.T) {
	m := sanitize(t, `{"weight_kg": "2,500", "distance_km": "1400.5"}`)
	assert.Equal(t, 2500.0, m["weight_kg"])
	assert.Equal(t, 1400.5, m["distance_km"])
}

func TestSanitizeDropsBadValues(t *testing.T) {
	m := sanitize(t, `{"co2e_kg": -12, "weight_kg": null, "distance_km": "n/a", "supplier_id": "  "}`)
	assert.NotContains(t, m, "co2e_kg")
	assert.NotContains(t, m, "weight_kg")
	assert.NotContains(t, m, "distance_km")
	assert.NotContains(t, m, "supplier_id")
}

func TestSanitizeRemovesUnknownKeys(t *testing.T) {
	m := sanitize(t, `{"supplier_id": "SUP-IN-2026-001", "chain_of_thought": "hmm", "notes": 3}`)
	assert.Equal(t, "SUP-IN-2026-001", m["supplier_id"])
	assert.NotContains(t, m, "chain_of_thought")
	assert.NotContains(t, m, "notes")
}

func TestSanitizeRejectsNonObject(t *testing.T) {
	_, _, err := NormalizeAndSanitizeJSON([]byte(`[1,2,3]`), nil)
	assert.Error(t, err)
}

func TestSanitizedOutputValidates(t *testing.T) {
	schema := BuildInvoiceJSONSchema(constants.ModesAsStrings())

	raw := `{"co2e": "1,650", "mode": "Truck freight", "weight": 12000, "scratchpad": "x", "currency": "usd"}`
	out, _, err := NormalizeAndSanitizeJSON([]byte(raw), slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	// transport_mode "truck freight" is not a schema enum value, so strict
	// validation can still fail after sanitizing; mirror the client by
	// checking the fields that survive.
	var fields InvoiceFields
	require.NoError(t, json.Unmarshal(out, &fields))
	require.NotNil(t, fields.CO2eKG)
	assert.InDelta(t, 1650.0, *fields.CO2eKG, 1e-9)

	clean := `{"supplier_id": "SUP-DE-2026-042", "transport_mode": "rail", "co2e_kg": 245.5, "currency_code": "EUR", "invoice_date": "2026-02-01"}`
	sanitized, _, err := NormalizeAndSanitizeJSON([]byte(clean), nil)
	require.NoError(t, err)
	assert.NoError(t, ValidateJSONAgainstSchema(schema, sanitized))
}

func TestValidateRejectsSchemaViolations(t *testing.T) {
	schema := BuildInvoiceJSONSchema(constants.ModesAsStrings())

	for name, doc := range map[string]string{
		"negative number": `{"co2e_kg": -5}`,
		"bad mode":        `{"transport_mode": "teleport"}`,
		"bad date":        `{"invoice_date": "Feb 1, 2026"}`,
		"unknown key":     `{"scratchpad": "x"}`,
		"bad currency":    `{"currency_code": "US"}`,
	} {
		assert.Error(t, ValidateJSONAgainstSchema(schema, []byte(doc)), name)
	}
}

func TestValidateAcceptsEmptyObject(t *testing.T) {
	schema := BuildInvoiceJSONSchema(constants.ModesAsStrings())
	assert.NoError(t, ValidateJSONAgainstSchema(schema, []byte(`{}`)), "all fields optional by contract")
}
