package risk

import (
	_ "embed"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed regions.yaml
var defaultRegionsYAML []byte

// Tier is the operational/reputational risk classification of a route.
type Tier string

const (
	TierNormal   Tier = "normal"
	TierElevated Tier = "elevated"
	TierHigh     Tier = "high"
)

// Profile is the risk assessment for one origin/destination pair.
type Profile struct {
	Tier      Tier   `json:"tier"`
	Rationale string `json:"rationale"`
}

// Regions holds the fixed watch lists, keyed by category name.
type Regions struct {
	HighRisk map[string][]string `yaml:"high_risk"`
	Elevated map[string][]string `yaml:"elevated"`
}

// DefaultRegions parses the embedded watch lists.
func DefaultRegions() (*Regions, error) {
	return parseRegions(defaultRegionsYAML)
}

// LoadRegions reads watch lists from a YAML file.
func LoadRegions(path string) (*Regions, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read risk regions: %w", err)
	}
	return parseRegions(b)
}

func parseRegions(b []byte) (*Regions, error) {
	var r Regions
	if err := yaml.Unmarshal(b, &r); err != nil {
		return nil, fmt.Errorf("parse risk regions: %w", err)
	}
	return &r, nil
}

// Assessor scores a route for region risk, independent of emissions data.
type Assessor struct {
	regions *Regions
}

func NewAssessor(regions *Regions) *Assessor {
	return &Assessor{regions: regions}
}

// Assess always executes, even when extraction produced no emissions figures.
// A high-risk match on either endpoint wins over every other signal.
func (a *Assessor) Assess(origin, destination string) Profile {
	route := strings.ToLower(origin + " " + destination)

	if category, region, ok := match(a.regions.HighRisk, route); ok {
		return Profile{
			Tier:      TierHigh,
			Rationale: fmt.Sprintf("%s: %s", categoryLabel(category), region),
		}
	}
	if category, region, ok := match(a.regions.Elevated, route); ok {
		return Profile{
			Tier:      TierElevated,
			Rationale: fmt.Sprintf("%s: %s", categoryLabel(category), region),
		}
	}
	return Profile{Tier: TierNormal, Rationale: "no watch-list match"}
}

// match walks categories in sorted order so rationales are reproducible.
func match(lists map[string][]string, route string) (category, region string, ok bool) {
	cats := make([]string, 0, len(lists))
	for cat := range lists {
		cats = append(cats, cat)
	}
	sort.Strings(cats)
	for _, cat := range cats {
		for _, r := range lists[cat] {
			if strings.Contains(route, strings.ToLower(r)) {
				return cat, r, true
			}
		}
	}
	return "", "", false
}

func categoryLabel(category string) string {
	return strings.ReplaceAll(category, "_", " ")
}
