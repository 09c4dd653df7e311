package prompt

import (
	"fmt"
	"strings"

	"astro-chat-be/pkg/astro"
	"astro-chat-be/pkg/astro/dosha"
)

// behavioralGuidelines close every system prompt, verbatim.
const behavioralGuidelines = `IMPORTANT GUIDELINES:
- Always provide personalized insights based on the specific birth chart data
- When you identify doshas or planetary afflictions, naturally recommend appropriate gemstones
- Reference specific planetary positions, houses, and aspects when relevant
- Maintain your chosen personality throughout the conversation
- If recommending gemstones, mention they're available in your shop
- Provide practical wearing instructions for gemstones
- Keep responses conversational, warm, and encouraging
- Provide actionable advice when appropriate
- If asked about topics outside astrology, gently redirect to astrological perspectives`

// Context carries everything the assembler needs to build a system prompt for
// one generation call.
type Context struct {
	UserName        string
	BotSystemPrompt string
	Personality     Personality

	// Raw JSON columns from the stored chart.
	Houses  []byte
	Planets []byte
	Aspects []byte
}

// SystemPrompt assembles the full system instruction: persona block, bot prompt,
// chart summary, dosha findings, the complete gemstone knowledge table, and the
// behavioral guidelines. The remedy table is always included whole so the model
// can bring up remedies contextually even when no dosha was detected.
func SystemPrompt(c Context) string {
	summary := ChartSummary(c.Houses, c.Planets, c.Aspects)

	var findings []dosha.Finding
	if chart, err := astro.DecodeChart(c.Houses, c.Planets, c.Aspects); err == nil {
		findings = dosha.Analyze(chart)
	}

	var b strings.Builder
	b.WriteString(PersonaPrompt(c.Personality))
	b.WriteString("\n\n")
	b.WriteString(c.BotSystemPrompt)
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "Birth Chart Context for %s:\n%s\n", c.UserName, summary)
	b.WriteString("\nDosha Analysis:\n")
	b.WriteString(dosha.Render(findings))

	b.WriteString("\nGEMSTONE EXPERTISE:\n")
	b.WriteString("You have deep knowledge about how gemstones can resolve astrological doshas. Here's your knowledge base:\n")
	b.WriteString(dosha.RenderKnowledge())

	b.WriteString("\n")
	b.WriteString(behavioralGuidelines)

	return b.String()
}

// WelcomePrompt builds the single-shot prompt used to greet a user when a new
// session is created. No conversation history is involved.
func WelcomePrompt(userName, botName string, houses, planets, aspects []byte) string {
	summary := ChartSummary(houses, planets, aspects)

	return fmt.Sprintf(`You are %s, an AI astrology expert. Generate a warm, personalized welcome message for %s that:
1. Greets them by name
2. Thanks them for taking the first step
3. Mentions 1-2 key insights from their birth chart
4. Asks what they'd like to explore

Birth Chart Summary:
%s

Keep it conversational, warm, and under 150 words.`, botName, userName, summary)
}

// FallbackWelcome is used when welcome generation fails; the session still gets
// a first message.
func FallbackWelcome(userName string) string {
	return fmt.Sprintf("Hi %s! Thank you for taking the first step. I'm excited to explore your cosmic blueprint with you. What would you like to discover about your astrology today?", userName)
}

// Temperature returns the sampling temperature for a personality. The
// scientific persona runs cooler.
func Temperature(p Personality) float64 {
	if p == PersonalityScientific {
		return 0.5
	}
	return 0.7
}
