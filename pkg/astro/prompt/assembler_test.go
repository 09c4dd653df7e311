package prompt

import (
	"strings"
	"testing"
)

func TestSystemPrompt(t *testing.T) {
	ctx := Context{
		UserName:        "Priya",
		BotSystemPrompt: "You are an expert Vedic astrologer.",
		Personality:     PersonalityNurturing,
		Houses:          []byte(`{"1":{"sign":"Aries"}}`),
		Planets:         []byte(`{"Mars":{"sign":"Scorpio","house":8},"Sun":{"sign":"Leo","house":5}}`),
		Aspects:         []byte(`[]`),
	}

	out := SystemPrompt(ctx)

	if !strings.HasPrefix(out, "You are Stella") {
		t.Errorf("expected nurturing persona first: %q", out[:60])
	}
	if !strings.Contains(out, "You are an expert Vedic astrologer.") {
		t.Error("bot system prompt missing")
	}
	if !strings.Contains(out, "Birth Chart Context for Priya:") {
		t.Error("chart context header missing")
	}
	if !strings.Contains(out, "Sun: Leo in 5th house") {
		t.Error("chart summary missing")
	}
	if !strings.Contains(out, "Dosha Analysis:\nPotential Doshas Identified:") {
		t.Error("dosha section missing")
	}
	if !strings.Contains(out, "Mangal Dosha detected due to Mars in 8 house") {
		t.Error("mangal finding missing")
	}
	// The whole gemstone table rides along even without matching doshas.
	for _, gem := range []string{"Red Coral (Moonga)", "Blue Sapphire (Neelam)", "Hessonite Garnet (Gomed)", "Cat's Eye (Lehsunia)"} {
		if !strings.Contains(out, gem) {
			t.Errorf("gemstone %q missing from prompt", gem)
		}
	}
	if !strings.Contains(out, "IMPORTANT GUIDELINES:") {
		t.Error("behavioral guidelines missing")
	}
}

func TestSystemPromptMalformedChart(t *testing.T) {
	ctx := Context{
		UserName:        "Ravi",
		BotSystemPrompt: "Bot prompt.",
		Personality:     PersonalityDirect,
		Houses:          []byte(`{broken`),
		Planets:         []byte(`{}`),
	}

	out := SystemPrompt(ctx)

	if !strings.Contains(out, SummaryInvalidFormat) {
		t.Errorf("expected invalid-format placeholder: %q", out)
	}
	// Malformed data degrades the summary but never drops the dosha header.
	if !strings.Contains(out, "Potential Doshas Identified:") {
		t.Error("dosha header missing for malformed chart")
	}
}

func TestPersonaPromptFallback(t *testing.T) {
	if got := PersonaPrompt("unknown"); got != PersonaPrompt(PersonalityNurturing) {
		t.Error("unknown personality should fall back to nurturing")
	}
	if !strings.Contains(PersonaPrompt(PersonalityMystic), "Luna") {
		t.Error("mystic persona should be Luna")
	}
}

func TestTemperature(t *testing.T) {
	if got := Temperature(PersonalityScientific); got != 0.5 {
		t.Errorf("scientific temperature = %v, want 0.5", got)
	}
	for _, p := range []Personality{PersonalityNurturing, PersonalityMystic, PersonalityDirect, PersonalitySpiritual} {
		if got := Temperature(p); got != 0.7 {
			t.Errorf("%s temperature = %v, want 0.7", p, got)
		}
	}
}

func TestWelcomePrompt(t *testing.T) {
	out := WelcomePrompt("Priya", "Vedic Guru", []byte(`{"1":{"sign":"Aries"}}`), []byte(`{"Sun":{"sign":"Leo","house":5}}`), nil)

	if !strings.Contains(out, "You are Vedic Guru, an AI astrology expert.") {
		t.Errorf("bot name missing: %q", out)
	}
	if !strings.Contains(out, "welcome message for Priya") {
		t.Errorf("user name missing: %q", out)
	}
	if !strings.Contains(out, "Sun: Leo in 5th house") {
		t.Errorf("chart summary missing: %q", out)
	}
	if !strings.Contains(out, "under 150 words") {
		t.Errorf("length constraint missing: %q", out)
	}
}

func TestFallbackWelcome(t *testing.T) {
	out := FallbackWelcome("Priya")
	if !strings.Contains(out, "Hi Priya!") {
		t.Errorf("fallback should greet by name: %q", out)
	}
}
