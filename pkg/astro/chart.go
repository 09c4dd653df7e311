package astro

import (
	"encoding/json"
	"fmt"
)

// Planet is a single planetary placement within a natal chart.
type Planet struct {
	Sign        string  `json:"sign"`
	House       int     `json:"house"`
	Degree      float64 `json:"degree,omitempty"`
	Retrograde  bool    `json:"retrograde,omitempty"`
	IsAfflicted bool    `json:"isAfflicted,omitempty"`
}

// House is one of the 12 chart sectors.
type House struct {
	Sign   string  `json:"sign"`
	Degree float64 `json:"degree,omitempty"`
}

// Aspect is an angular relation between two planets.
type Aspect struct {
	Planet1 string  `json:"planet1"`
	Type    string  `json:"type"`
	Planet2 string  `json:"planet2"`
	Orb     float64 `json:"orb,omitempty"`
}

// Chart is the decoded natal chart as produced by the ephemeris script.
// Houses are keyed by house number ("1".."12"), planets by name ("Sun", "Moon", ...).
type Chart struct {
	Houses  map[string]House  `json:"houses"`
	Planets map[string]Planet `json:"planets"`
	Aspects []Aspect          `json:"aspects,omitempty"`
}

// ChartResult is the full payload returned by the chart engine. All four
// sections stay raw JSON: the storage layer persists them verbatim and
// decoding is deferred to prompt assembly.
type ChartResult struct {
	Houses    json.RawMessage `json:"houses"`
	Planets   json.RawMessage `json:"planets"`
	Aspects   json.RawMessage `json:"aspects"`
	ChartData json.RawMessage `json:"chartData"`
}

// DecodeChart rebuilds a Chart from the three JSON columns the storage layer keeps.
// Absent columns decode to nil maps; callers decide what an empty chart means.
func DecodeChart(houses, planets, aspects []byte) (*Chart, error) {
	c := &Chart{}

	if len(houses) > 0 {
		if err := json.Unmarshal(houses, &c.Houses); err != nil {
			return nil, fmt.Errorf("decode houses: %w", err)
		}
	}
	if len(planets) > 0 {
		if err := json.Unmarshal(planets, &c.Planets); err != nil {
			return nil, fmt.Errorf("decode planets: %w", err)
		}
	}
	if len(aspects) > 0 {
		if err := json.Unmarshal(aspects, &c.Aspects); err != nil {
			return nil, fmt.Errorf("decode aspects: %w", err)
		}
	}

	return c, nil
}
