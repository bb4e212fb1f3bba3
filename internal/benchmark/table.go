package benchmark

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed benchmarks.yaml
var defaultTableYAML []byte

// RouteOverride pins an exact (mode, origin, destination) to a factor,
// overriding the mode/route-class derivation.
type RouteOverride struct {
	Mode        string  `yaml:"mode"`
	Origin      string  `yaml:"origin"`
	Destination string  `yaml:"destination"`
	Factor      float64 `yaml:"factor"` // kg CO2e per ton-km
}

// Table is the read-only benchmark knowledge base, loaded once per process
// lifetime before any audit begins.
type Table struct {
	// Factors holds industry-average emission factors in kg CO2e per ton-km.
	Factors map[string]float64 `yaml:"factors"`
	// RouteClasses holds multipliers applied on top of the mode factor.
	RouteClasses map[string]float64 `yaml:"route_classes"`
	Routes       []RouteOverride    `yaml:"routes"`
}

// DefaultTable parses the embedded benchmark table.
func DefaultTable() (*Table, error) {
	return parseTable(defaultTableYAML)
}

// LoadTable reads a benchmark table from a YAML file.
func LoadTable(path string) (*Table, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read benchmark table: %w", err)
	}
	return parseTable(b)
}

func parseTable(b []byte) (*Table, error) {
	var t Table
	if err := yaml.Unmarshal(b, &t); err != nil {
		return nil, fmt.Errorf("parse benchmark table: %w", err)
	}
	if len(t.Factors) == 0 {
		return nil, fmt.Errorf("benchmark table has no mode factors")
	}
	if t.RouteClasses == nil {
		t.RouteClasses = map[string]float64{}
	}
	// normalize keys once at load
	factors := make(map[string]float64, len(t.Factors))
	for k, v := range t.Factors {
		factors[strings.ToLower(k)] = v
	}
	t.Factors = factors
	classes := make(map[string]float64, len(t.RouteClasses))
	for k, v := range t.RouteClasses {
		classes[strings.ToLower(k)] = v
	}
	t.RouteClasses = classes
	return &t, nil
}
