package dosha

import (
	"strings"
	"testing"

	"astro-chat-be/pkg/astro"
)

func TestAnalyze(t *testing.T) {
	tests := []struct {
		name       string
		planets    map[string]astro.Planet
		wantDoshas []string
	}{
		{
			name: "mars in 7th triggers mangal",
			planets: map[string]astro.Planet{
				"Mars": {Sign: "Aries", House: 7},
			},
			wantDoshas: []string{"Mangal Dosha"},
		},
		{
			name: "mars in 3rd is clean",
			planets: map[string]astro.Planet{
				"Mars": {Sign: "Gemini", House: 3},
			},
			wantDoshas: nil,
		},
		{
			name: "afflicted saturn triggers shani",
			planets: map[string]astro.Planet{
				"Saturn": {Sign: "Capricorn", House: 10, IsAfflicted: true},
			},
			wantDoshas: []string{"Shani Dosha"},
		},
		{
			name: "unafflicted saturn is clean",
			planets: map[string]astro.Planet{
				"Saturn": {Sign: "Capricorn", House: 10},
			},
			wantDoshas: nil,
		},
		{
			name: "both doshas together",
			planets: map[string]astro.Planet{
				"Mars":   {Sign: "Scorpio", House: 8},
				"Saturn": {Sign: "Aquarius", House: 11, IsAfflicted: true},
			},
			wantDoshas: []string{"Mangal Dosha", "Shani Dosha"},
		},
		{
			name:       "empty chart",
			planets:    map[string]astro.Planet{},
			wantDoshas: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			findings := Analyze(&astro.Chart{Planets: tt.planets})
			if len(findings) != len(tt.wantDoshas) {
				t.Fatalf("got %d findings, want %d", len(findings), len(tt.wantDoshas))
			}
			for i, want := range tt.wantDoshas {
				if findings[i].Dosha != want {
					t.Errorf("finding %d = %q, want %q", i, findings[i].Dosha, want)
				}
			}
		})
	}
}

func TestAnalyzeMangalHouses(t *testing.T) {
	triggering := map[int]bool{1: true, 4: true, 7: true, 8: true, 12: true}
	for house := 1; house <= 12; house++ {
		chart := &astro.Chart{Planets: map[string]astro.Planet{
			"Mars": {Sign: "Aries", House: house},
		}}
		findings := Analyze(chart)
		if triggering[house] && len(findings) != 1 {
			t.Errorf("house %d: expected mangal dosha, got none", house)
		}
		if !triggering[house] && len(findings) != 0 {
			t.Errorf("house %d: unexpected finding %v", house, findings)
		}
	}
}

func TestAnalyzeNilChart(t *testing.T) {
	if findings := Analyze(nil); findings != nil {
		t.Errorf("expected nil findings for nil chart, got %v", findings)
	}
}

func TestRender(t *testing.T) {
	t.Run("header always present", func(t *testing.T) {
		out := Render(nil)
		if out != "Potential Doshas Identified:\n" {
			t.Errorf("unexpected render for zero findings: %q", out)
		}
	})

	t.Run("mangal line includes house", func(t *testing.T) {
		out := Render([]Finding{{Dosha: "Mangal Dosha", Planet: "Mars", House: 8}})
		if !strings.Contains(out, "- Mangal Dosha detected due to Mars in 8 house") {
			t.Errorf("missing mangal line: %q", out)
		}
	})

	t.Run("shani line", func(t *testing.T) {
		out := Render([]Finding{{Dosha: "Shani Dosha", Planet: "Saturn"}})
		if !strings.Contains(out, "- Saturn affliction detected") {
			t.Errorf("missing shani line: %q", out)
		}
	})
}

func TestRenderKnowledge(t *testing.T) {
	out := RenderKnowledge()
	for _, dosha := range []string{"Mangal Dosha (Mars Affliction)", "Shani Dosha (Saturn Affliction)", "Rahu Dosha", "Ketu Dosha"} {
		if !strings.Contains(out, dosha) {
			t.Errorf("knowledge table missing %q", dosha)
		}
	}
	for _, section := range []string{"- Description:", "- Symptoms:", "- Primary Remedy:", "- Secondary Options:", "- Properties:", "- How to Wear:", "- Astrological Connection:"} {
		if !strings.Contains(out, section) {
			t.Errorf("knowledge table missing section %q", section)
		}
	}
}
