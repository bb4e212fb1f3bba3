package benchmark

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greentrust/esg-audit/constants"
	"github.com/greentrust/esg-audit/internal/entity"
)

func ptr(v float64) *float64 { return &v }

func testResolver(t *testing.T) *Resolver {
	t.Helper()
	table, err := DefaultTable()
	require.NoError(t, err)
	return NewResolver(table, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestResolveExactRouteWins(t *testing.T) {
	r := testResolver(t)

	entry, err := r.Resolve(constants.ModeRoad, "Mumbai Port", "Delhi Warehouse")
	require.NoError(t, err)
	assert.Equal(t, MatchExactRoute, entry.Match)
	assert.InDelta(t, 0.102, entry.Factor, 1e-9)
}

func TestResolveRouteClassMultiplier(t *testing.T) {
	r := testResolver(t)

	entry, err := r.Resolve(constants.ModeSea, "Shanghai International Port", "Los Angeles")
	require.NoError(t, err)
	assert.Equal(t, MatchRouteClass, entry.Match)
	assert.Equal(t, "international", entry.RouteClass)
	assert.InDelta(t, 0.016*1.15, entry.Factor, 1e-9)
}

func TestResolveModeDefault(t *testing.T) {
	r := testResolver(t)

	entry, err := r.Resolve(constants.ModeAir, "Pune", "Nagpur")
	require.NoError(t, err)
	assert.Equal(t, MatchModeDefault, entry.Match)
	assert.InDelta(t, 0.602, entry.Factor, 1e-9)
}

func TestResolveUnknownMode(t *testing.T) {
	r := testResolver(t)

	_, err := r.Resolve(constants.TransportMode("teleport"), "A", "B")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResolveShipmentSingleMode(t *testing.T) {
	r := testResolver(t)

	inv := entity.NormalizedInvoice{InvoiceRecord: entity.InvoiceRecord{
		Mode:       constants.ModeRoad,
		Origin:     "Pune",
		Destination: "Nagpur",
		WeightKG:   ptr(12000),
		DistanceKM: ptr(1400),
	}}
	res := r.ResolveShipment(&inv)
	assert.False(t, res.Partial)
	require.NotNil(t, res.TotalCO2eKG)
	// 0.096 kg/ton-km x 12 tons x 1400 km
	assert.InDelta(t, 0.096*12*1400, *res.TotalCO2eKG, 1e-6)
	require.NotNil(t, res.Entry)
	assert.Equal(t, MatchModeDefault, res.Entry.Match)
}

func TestResolveShipmentMissingInputsPartial(t *testing.T) {
	r := testResolver(t)

	inv := entity.NormalizedInvoice{InvoiceRecord: entity.InvoiceRecord{
		Mode:   constants.ModeRoad,
		Origin: "Pune",
	}}
	res := r.ResolveShipment(&inv)
	assert.True(t, res.Partial)
	assert.Nil(t, res.TotalCO2eKG)
}

func TestResolveShipmentMultimodalFold(t *testing.T) {
	r := testResolver(t)

	inv := entity.NormalizedInvoice{InvoiceRecord: entity.InvoiceRecord{
		WeightKG: ptr(10000), // legs without their own weight carry the total
		Legs: []entity.Leg{
			{Mode: constants.ModeRoad, Origin: "Mumbai", Destination: "Mumbai Port", DistanceKM: ptr(120)},
			{Mode: constants.ModeSea, Origin: "Mumbai Port", Destination: "Rotterdam", DistanceKM: ptr(6500)},
		},
	}}
	res := r.ResolveShipment(&inv)
	assert.False(t, res.Partial)
	require.NotNil(t, res.TotalCO2eKG)
	expected := 0.096*10*120 + 0.016*10*6500
	assert.InDelta(t, expected, *res.TotalCO2eKG, 1e-6)
	require.Len(t, res.Legs, 2)
	assert.True(t, res.Legs[0].Resolved)
	assert.True(t, res.Legs[1].Resolved)
}

func TestResolveShipmentMultimodalPartialAccumulates(t *testing.T) {
	r := testResolver(t)

	inv := entity.NormalizedInvoice{InvoiceRecord: entity.InvoiceRecord{
		WeightKG: ptr(10000),
		Legs: []entity.Leg{
			{Mode: constants.ModeRoad, Origin: "Mumbai", Destination: "Mumbai Port", DistanceKM: ptr(120)},
			{Mode: constants.ModeSea, Origin: "Mumbai Port", Destination: "Rotterdam"}, // no distance
		},
	}}
	res := r.ResolveShipment(&inv)
	assert.True(t, res.Partial, "one unresolved leg marks the shipment partial")
	require.NotNil(t, res.TotalCO2eKG, "resolved legs still contribute")
	assert.InDelta(t, 0.096*10*120, *res.TotalCO2eKG, 1e-6)
	require.Len(t, res.Legs, 2)
	assert.True(t, res.Legs[0].Resolved)
	assert.False(t, res.Legs[1].Resolved)
}

func TestResolveShipmentMultimodalNothingResolved(t *testing.T) {
	r := testResolver(t)

	inv := entity.NormalizedInvoice{InvoiceRecord: entity.InvoiceRecord{
		Legs: []entity.Leg{
			{Mode: constants.ModeSea, Origin: "A", Destination: "B"},
		},
	}}
	res := r.ResolveShipment(&inv)
	assert.True(t, res.Partial)
	assert.Nil(t, res.TotalCO2eKG)
}

func TestRouteClass(t *testing.T) {
	assert.Equal(t, "express", RouteClass("Express hub Delhi", "Mumbai"))
	assert.Equal(t, "international", RouteClass("Rotterdam", "Singapore International Terminal"))
	assert.Equal(t, "domestic", RouteClass("Pune", "Nagpur"))
	assert.Equal(t, "express", RouteClass("Urgent dispatch Delhi", "International hub"), "express outranks international")
}
