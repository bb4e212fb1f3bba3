package extract

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greentrust/esg-audit/constants"
)

const sampleInvoice = `FREIGHT INVOICE
Invoice Date: 2026-03-15
Supplier ID: SUP-IN-2026-001
Origin: Mumbai Port
Destination: Delhi Warehouse
Transport Mode: Road (Truck)
Weight: 12 tons
Distance: 1400 km
Total CO2e: 1650.0 kg
Emission Factor Source: industry average
Total Amount: USD 4,500.00
`

func TestFromTextFullInvoice(t *testing.T) {
	rec := FromText(sampleInvoice)

	assert.Equal(t, "SUP-IN-2026-001", rec.SupplierID)
	assert.Equal(t, "Mumbai Port", rec.Origin)
	assert.Equal(t, "Delhi Warehouse", rec.Destination)
	assert.Equal(t, constants.ModeRoad, rec.Mode)

	require.NotNil(t, rec.WeightKG)
	assert.InDelta(t, 12000.0, *rec.WeightKG, 1e-9)
	require.NotNil(t, rec.DistanceKM)
	assert.InDelta(t, 1400.0, *rec.DistanceKM, 1e-9)
	require.NotNil(t, rec.CO2eKG)
	assert.InDelta(t, 1650.0, *rec.CO2eKG, 1e-9)

	require.NotNil(t, rec.AmountTotal)
	assert.InDelta(t, 4500.0, *rec.AmountTotal, 1e-9)
	assert.Equal(t, "USD", rec.CurrencyCode)

	require.NotNil(t, rec.InvoiceDate)
	assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), rec.InvoiceDate.UTC())

	assert.Equal(t, constants.FactorIndustryAverage, rec.FactorSource)
}

func TestFromTextEmptyInput(t *testing.T) {
	for _, text := range []string{"", "   \n\t  "} {
		rec := FromText(text)
		assert.Empty(t, rec.SupplierID)
		assert.Nil(t, rec.CO2eKG)
		assert.Nil(t, rec.WeightKG)
		assert.Nil(t, rec.AmountTotal)
		assert.Equal(t, constants.FactorUnspecified, rec.FactorSource)
	}
}

func TestFromTextGarbledInputNeverPanics(t *testing.T) {
	rec := FromText("\x00\xff\xfe garbled £$%^ 123 ---")
	assert.Nil(t, rec.CO2eKG)
	assert.Equal(t, constants.FactorUnspecified, rec.FactorSource)
}

func TestFromTextWeightSkipsCO2eFigure(t *testing.T) {
	// The only kg figure belongs to emissions; weight must stay missing.
	rec := FromText("Shipment emissions: 245.5 kg CO2e declared for Q1.")
	require.NotNil(t, rec.CO2eKG)
	assert.InDelta(t, 245.5, *rec.CO2eKG, 1e-9)
	assert.Nil(t, rec.WeightKG)
}

func TestFromTextUnitlessWeightStaysMissing(t *testing.T) {
	// A bare "Weight: 5" does not declare its unit; treating it as kg
	// would be a guess, so the field stays absent.
	rec := FromText("Weight: 5\nDistance: 700 km")
	assert.Nil(t, rec.WeightKG)
	require.NotNil(t, rec.DistanceKM)
	assert.InDelta(t, 700.0, *rec.DistanceKM, 1e-9)
}

func TestFromTextMilesConvertToKM(t *testing.T) {
	rec := FromText("Distance: 100 miles")
	require.NotNil(t, rec.DistanceKM)
	assert.InDelta(t, 160.934, *rec.DistanceKM, 1e-6)
}

func TestFromTextArrowRoute(t *testing.T) {
	rec := FromText("Shipment route Rotterdam -> Singapore by ocean freight")
	assert.Equal(t, "Rotterdam", rec.Origin)
	assert.Equal(t, "Singapore", rec.Destination)
	assert.Equal(t, constants.ModeSea, rec.Mode)
}

func TestFromTextCurrencySymbol(t *testing.T) {
	rec := FromText("Amount due: € 1,200.50")
	require.NotNil(t, rec.AmountTotal)
	assert.InDelta(t, 1200.50, *rec.AmountTotal, 1e-9)
	assert.Equal(t, "EUR", rec.CurrencyCode)
}

func TestFromTextLegs(t *testing.T) {
	text := `MULTIMODAL SHIPMENT
Leg 1: road, Mumbai to Mumbai Port, 120 km
Leg 2: sea, Mumbai Port to Rotterdam, 6500 km
Leg 3: rail, Rotterdam to Warsaw, 1100 km
`
	rec := FromText(text)
	require.Len(t, rec.Legs, 3)
	assert.Equal(t, constants.ModeMultimodal, rec.Mode)

	assert.Equal(t, constants.ModeRoad, rec.Legs[0].Mode)
	assert.Equal(t, "Mumbai", rec.Legs[0].Origin)
	assert.Equal(t, "Mumbai Port", rec.Legs[0].Destination)
	require.NotNil(t, rec.Legs[0].DistanceKM)
	assert.InDelta(t, 120.0, *rec.Legs[0].DistanceKM, 1e-9)

	assert.Equal(t, constants.ModeSea, rec.Legs[1].Mode)
	assert.Equal(t, constants.ModeRail, rec.Legs[2].Mode)
	require.NotNil(t, rec.Legs[2].DistanceKM)
	assert.InDelta(t, 1100.0, *rec.Legs[2].DistanceKM, 1e-9)
}

func TestFromTextCertificationAndPriorYear(t *testing.T) {
	text := `Green shipment, Carbon Neutral certified.
Prior year total: 1800 kg
Emissions: 1650 kg
`
	rec := FromText(text)
	assert.Equal(t, "Carbon Neutral", rec.Certification)
	require.NotNil(t, rec.PriorYearCO2e)
	assert.InDelta(t, 1800.0, *rec.PriorYearCO2e, 1e-9)
	require.NotNil(t, rec.CO2eKG)
	assert.InDelta(t, 1650.0, *rec.CO2eKG, 1e-9)
}

func TestFromTextNegativeNumbersRejected(t *testing.T) {
	rec := FromText("Emissions: -40 kg")
	assert.Nil(t, rec.CO2eKG)
}
