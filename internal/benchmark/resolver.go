package benchmark

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/greentrust/esg-audit/constants"
	"github.com/greentrust/esg-audit/internal/entity"
)

// ErrNotFound is returned when no benchmark can be derived for a mode.
var ErrNotFound = errors.New("no benchmark entry for transport mode")

// MatchLevel records which resolution rule produced an entry.
type MatchLevel string

const (
	MatchExactRoute  MatchLevel = "exact-route"
	MatchRouteClass  MatchLevel = "route-class"
	MatchModeDefault MatchLevel = "mode-default"
)

// Entry is the expected CO2e per unit distance per unit weight for a
// (transport mode, region class) key. Looked up, never mutated.
type Entry struct {
	Mode       constants.TransportMode `json:"mode"`
	RouteClass string                  `json:"route_class"`
	Factor     float64                 `json:"factor"` // kg CO2e per ton-km
	Match      MatchLevel              `json:"match"`
}

// LegResult pairs a leg with its resolved entry and CO2e contribution.
type LegResult struct {
	Leg      entity.Leg `json:"leg"`
	Entry    *Entry     `json:"entry,omitempty"` // nil when unresolved
	CO2eKG   *float64   `json:"co2e_kg,omitempty"`
	Resolved bool       `json:"resolved"`
}

// Resolution is the shipment-level benchmark: the weight-and-distance-weighted
// sum across legs. Partial marks an entry where at least one leg (or the lone
// shipment itself) could not be resolved; resolved legs keep contributing.
type Resolution struct {
	TotalCO2eKG *float64    `json:"total_co2e_kg,omitempty"`
	Partial     bool        `json:"partial"`
	Legs        []LegResult `json:"legs,omitempty"`
	Entry       *Entry      `json:"entry,omitempty"` // single-mode shipments
}

type Resolver struct {
	table  *Table
	logger *slog.Logger
}

func NewResolver(table *Table, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{table: table, logger: logger}
}

// Resolve looks up the benchmark entry for one (mode, origin, destination).
// Resolution order: exact route match, then (mode, route-class), then the
// mode-only industry default.
func (r *Resolver) Resolve(mode constants.TransportMode, origin, destination string) (Entry, error) {
	for _, o := range r.table.Routes {
		if strings.EqualFold(o.Mode, string(mode)) &&
			strings.EqualFold(o.Origin, origin) &&
			strings.EqualFold(o.Destination, destination) {
			return Entry{Mode: mode, RouteClass: RouteClass(origin, destination), Factor: o.Factor, Match: MatchExactRoute}, nil
		}
	}

	factor, ok := r.table.Factors[strings.ToLower(string(mode))]
	if !ok {
		return Entry{}, ErrNotFound
	}

	class := RouteClass(origin, destination)
	if mult, ok := r.table.RouteClasses[class]; ok && class != "domestic" {
		return Entry{Mode: mode, RouteClass: class, Factor: factor * mult, Match: MatchRouteClass}, nil
	}
	return Entry{Mode: mode, RouteClass: "domestic", Factor: factor, Match: MatchModeDefault}, nil
}

// ResolveShipment computes the shipment benchmark. Multimodal shipments fold
// over the ordered legs, accumulating partial status instead of short-circuiting.
func (r *Resolver) ResolveShipment(inv *entity.NormalizedInvoice) Resolution {
	if inv.Multimodal() {
		return r.resolveLegs(inv)
	}

	var res Resolution
	if inv.Mode == "" || inv.WeightKG == nil || inv.DistanceKM == nil {
		res.Partial = true
		return res
	}
	entry, err := r.Resolve(inv.Mode, inv.Origin, inv.Destination)
	if err != nil {
		r.logger.Warn("benchmark.unresolved", "mode", inv.Mode, "route", inv.Route())
		res.Partial = true
		return res
	}
	total := entry.Factor * (*inv.WeightKG / 1000.0) * (*inv.DistanceKM)
	res.Entry = &entry
	res.TotalCO2eKG = &total
	return res
}

func (r *Resolver) resolveLegs(inv *entity.NormalizedInvoice) Resolution {
	var res Resolution
	var sum float64
	var anyResolved bool

	for _, leg := range inv.Legs {
		lr := LegResult{Leg: leg}

		weight := leg.WeightKG
		if weight == nil {
			weight = inv.WeightKG // legs without own weight carry the total
		}

		if leg.DistanceKM == nil || weight == nil {
			res.Partial = true
			res.Legs = append(res.Legs, lr)
			continue
		}

		entry, err := r.Resolve(leg.Mode, leg.Origin, leg.Destination)
		if err != nil {
			r.logger.Warn("benchmark.leg_unresolved", "mode", leg.Mode, "origin", leg.Origin, "destination", leg.Destination)
			res.Partial = true
			res.Legs = append(res.Legs, lr)
			continue
		}

		co2e := entry.Factor * (*weight / 1000.0) * (*leg.DistanceKM)
		lr.Entry = &entry
		lr.CO2eKG = &co2e
		lr.Resolved = true
		sum += co2e
		anyResolved = true
		res.Legs = append(res.Legs, lr)
	}

	if anyResolved {
		res.TotalCO2eKG = &sum
	} else {
		res.Partial = true
	}
	return res
}

// RouteClass classifies a route from its endpoint labels. Express and
// international markers come from the shipment description vocabulary;
// everything else is domestic.
func RouteClass(origin, destination string) string {
	s := strings.ToLower(origin + " " + destination)
	for _, kw := range []string{"express", "urgent", "priority"} {
		if strings.Contains(s, kw) {
			return "express"
		}
	}
	for _, kw := range []string{"international", "overseas", "export", "import"} {
		if strings.Contains(s, kw) {
			return "international"
		}
	}
	return "domestic"
}
