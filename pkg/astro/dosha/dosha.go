package dosha

import (
	"fmt"
	"strings"

	"astro-chat-be/pkg/astro"
)

// Finding is a single detected affliction with the placement that triggered it.
type Finding struct {
	Dosha  string
	Planet string
	House  int
}

// mangalHouses are the Mars placements that trigger Mangal Dosha.
var mangalHouses = map[int]bool{1: true, 4: true, 7: true, 8: true, 12: true}

// Analyze inspects planetary placements for known affliction patterns. Rahu and
// Ketu remedies exist in the knowledge table but have no detection rule; the
// generator may still bring them up since the full table is always in the prompt.
func Analyze(chart *astro.Chart) []Finding {
	if chart == nil {
		return nil
	}

	var findings []Finding

	if mars, ok := chart.Planets["Mars"]; ok && mangalHouses[mars.House] {
		findings = append(findings, Finding{
			Dosha:  "Mangal Dosha",
			Planet: "Mars",
			House:  mars.House,
		})
	}

	if saturn, ok := chart.Planets["Saturn"]; ok && saturn.IsAfflicted {
		findings = append(findings, Finding{
			Dosha:  "Shani Dosha",
			Planet: "Saturn",
			House:  saturn.House,
		})
	}

	return findings
}

// Render formats findings the way the prompt expects them. The header is always
// present, even with zero findings.
func Render(findings []Finding) string {
	var b strings.Builder
	b.WriteString("Potential Doshas Identified:\n")

	for _, f := range findings {
		switch f.Dosha {
		case "Mangal Dosha":
			fmt.Fprintf(&b, "- Mangal Dosha detected due to Mars in %d house\n", f.House)
		case "Shani Dosha":
			b.WriteString("- Saturn affliction detected\n")
		default:
			fmt.Fprintf(&b, "- %s detected\n", f.Dosha)
		}
	}

	return b.String()
}
