package memory

import "testing"

func TestBotCatalogAll(t *testing.T) {
	catalog := NewBotCatalog()

	bots := catalog.All()
	if len(bots) != 6 {
		t.Fatalf("got %d bots, want 6", len(bots))
	}

	wantOrder := []string{"vedic-guru", "love-advisor", "career-guide", "wellness-guide", "spiritual-mentor", "transit-tracker"}
	for i, id := range wantOrder {
		if bots[i].Id != id {
			t.Errorf("bot %d = %q, want %q", i, bots[i].Id, id)
		}
	}

	for _, bot := range bots {
		if bot.Name == "" || bot.SystemPrompt == "" || bot.Specialization == "" {
			t.Errorf("bot %q has empty fields: %+v", bot.Id, bot)
		}
	}
}

func TestBotCatalogGet(t *testing.T) {
	catalog := NewBotCatalog()

	bot := catalog.Get("vedic-guru")
	if bot == nil {
		t.Fatal("vedic-guru should exist")
	}
	if bot.Name != "Vedic Guru" {
		t.Errorf("name = %q, want Vedic Guru", bot.Name)
	}

	if catalog.Get("fortune-teller") != nil {
		t.Error("unknown bot id should return nil")
	}
}
