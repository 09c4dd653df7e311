package prompt

import (
	"fmt"
	"strings"

	"astro-chat-be/pkg/astro"
)

const (
	// SummaryNotAvailable is returned when a chart has no planet or house data.
	SummaryNotAvailable = "Birth chart data is not available."
	// SummaryInvalidFormat is returned when stored chart data fails to decode.
	// Rendering a summary never fails the request.
	SummaryInvalidFormat = "Birth chart data format is invalid."

	maxAspectsInSummary = 5
)

// summaryPlanets are the placements rendered, in this order.
var summaryPlanets = []string{"Sun", "Moon", "Mercury", "Venus", "Mars"}

// ChartSummary renders the deterministic text block describing a stored chart.
// The inputs are the raw JSON columns from the storage layer.
func ChartSummary(houses, planets, aspects []byte) string {
	chart, err := astro.DecodeChart(houses, planets, aspects)
	if err != nil {
		return SummaryInvalidFormat
	}
	return RenderChartSummary(chart)
}

// RenderChartSummary renders a decoded chart. Missing placements are simply
// omitted; a chart with no planets or no houses yields the fixed fallback.
func RenderChartSummary(chart *astro.Chart) string {
	if chart == nil || chart.Planets == nil || chart.Houses == nil {
		return SummaryNotAvailable
	}

	var b strings.Builder
	b.WriteString("Birth Chart Summary:\n")

	for _, name := range summaryPlanets {
		if p, ok := chart.Planets[name]; ok {
			fmt.Fprintf(&b, "%s: %s in %s house\n", name, p.Sign, ordinal(p.House))
		}
	}

	if first, ok := chart.Houses["1"]; ok {
		fmt.Fprintf(&b, "Ascendant: %s\n", first.Sign)
	}

	if len(chart.Aspects) > 0 {
		b.WriteString("\nMajor Aspects:\n")
		aspects := chart.Aspects
		if len(aspects) > maxAspectsInSummary {
			aspects = aspects[:maxAspectsInSummary]
		}
		for _, a := range aspects {
			fmt.Fprintf(&b, "%s %s %s\n", a.Planet1, a.Type, a.Planet2)
		}
	}

	return b.String()
}

func ordinal(n int) string {
	suffix := "th"
	switch n % 10 {
	case 1:
		if n%100 != 11 {
			suffix = "st"
		}
	case 2:
		if n%100 != 12 {
			suffix = "nd"
		}
	case 3:
		if n%100 != 13 {
			suffix = "rd"
		}
	}
	return fmt.Sprintf("%d%s", n, suffix)
}
