package dosha

import (
	"fmt"
	"strings"
)

// GemstoneRemedy is one row of the static dosha-to-gemstone knowledge base.
type GemstoneRemedy struct {
	Dosha                  string
	Description            string
	Symptoms               []string
	PrimaryGem             string
	SecondaryGems          []string
	Properties             string
	WearingInstructions    string
	AstrologicalConnection string
}

// GemstoneKnowledge is fixed at process start and fed whole into every prompt,
// regardless of which doshas were actually detected.
var GemstoneKnowledge = []GemstoneRemedy{
	{
		Dosha:                  "Mangal Dosha (Mars Affliction)",
		Description:            "Caused by Mars placement in 1st, 4th, 7th, 8th, or 12th house",
		Symptoms:               []string{"Relationship conflicts", "Delayed marriage", "Anger issues", "Accidents"},
		PrimaryGem:             "Red Coral (Moonga)",
		SecondaryGems:          []string{"Carnelian", "Red Jasper"},
		Properties:             "Strengthens Mars energy positively, reduces aggression, promotes courage",
		WearingInstructions:    "Wear on Tuesday, ring finger of right hand, gold or copper setting",
		AstrologicalConnection: "Mars governs energy, passion, and relationships",
	},
	{
		Dosha:                  "Shani Dosha (Saturn Affliction)",
		Description:            "Caused by Saturn's malefic placement or Sade Sati period",
		Symptoms:               []string{"Chronic delays", "Depression", "Career obstacles", "Health issues"},
		PrimaryGem:             "Blue Sapphire (Neelam)",
		SecondaryGems:          []string{"Amethyst", "Lapis Lazuli"},
		Properties:             "Channels Saturn's discipline positively, removes obstacles, brings stability",
		WearingInstructions:    "Wear on Saturday, middle finger, silver or white gold setting",
		AstrologicalConnection: "Saturn represents karma, discipline, and life lessons",
	},
	{
		Dosha:                  "Rahu Dosha (North Node Affliction)",
		Description:            "Caused by Rahu's malefic influence or conjunction with benefic planets",
		Symptoms:               []string{"Confusion", "Addiction tendencies", "Sudden losses", "Mental instability"},
		PrimaryGem:             "Hessonite Garnet (Gomed)",
		SecondaryGems:          []string{"Smoky Quartz", "Tiger's Eye"},
		Properties:             "Stabilizes Rahu's energy, brings clarity, reduces confusion",
		WearingInstructions:    "Wear on Saturday, middle finger, silver or panchdhatu setting",
		AstrologicalConnection: "Rahu represents desires, illusions, and material pursuits",
	},
	{
		Dosha:                  "Ketu Dosha (South Node Affliction)",
		Description:            "Caused by Ketu's placement affecting spiritual and material balance",
		Symptoms:               []string{"Spiritual confusion", "Lack of focus", "Sudden changes", "Isolation"},
		PrimaryGem:             "Cat's Eye (Lehsunia)",
		SecondaryGems:          []string{"Moonstone", "Labradorite"},
		Properties:             "Balances Ketu's spiritual energy, improves intuition, brings stability",
		WearingInstructions:    "Wear on Thursday, ring finger, silver or gold setting",
		AstrologicalConnection: "Ketu represents spirituality, detachment, and past-life karma",
	},
}

// RenderKnowledge formats the full remedy table for prompt inclusion.
func RenderKnowledge() string {
	var b strings.Builder

	for _, gem := range GemstoneKnowledge {
		fmt.Fprintf(&b, `
**%s:**
- Description: %s
- Symptoms: %s
- Primary Remedy: %s
- Secondary Options: %s
- Properties: %s
- How to Wear: %s
- Astrological Connection: %s
`,
			gem.Dosha,
			gem.Description,
			strings.Join(gem.Symptoms, ", "),
			gem.PrimaryGem,
			strings.Join(gem.SecondaryGems, ", "),
			gem.Properties,
			gem.WearingInstructions,
			gem.AstrologicalConnection,
		)
		b.WriteString("\n")
	}

	return b.String()
}
