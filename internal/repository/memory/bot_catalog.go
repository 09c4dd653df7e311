package memory

import "astro-chat-be/internal/entity"

// BotCatalog serves the static astrologer roster. The catalog is fixed at
// build time, so no database table backs it.
type BotCatalog struct {
	order []string
	bots  map[string]*entity.AstrologyBot
}

func NewBotCatalog() *BotCatalog {
	catalog := []*entity.AstrologyBot{
		{
			Id:             "vedic-guru",
			Name:           "Vedic Guru",
			Description:    "Deep insights from ancient Vedic astrology traditions. Specializes in karma, dharma, and life purpose analysis.",
			Specialization: "Traditional Astrologer",
			Icon:           "fas fa-om",
			Color:          "from-orange-400 to-red-500",
			Rating:         "4.9",
			SystemPrompt:   "You are an expert Vedic astrologer with deep knowledge of traditional Indian astrology. Provide insights based on the user's birth chart focusing on karma, dharma, life purpose, and spiritual growth. Always reference specific planetary positions and houses when giving advice.",
		},
		{
			Id:             "love-advisor",
			Name:           "Love Advisor",
			Description:    "Specialized in synastry, compatibility analysis, and relationship timing. Find your perfect cosmic match.",
			Specialization: "Relationship Expert",
			Icon:           "fas fa-heart",
			Color:          "from-pink-400 to-rose-500",
			Rating:         "4.8",
			SystemPrompt:   "You are a relationship astrologer specializing in love, partnerships, and compatibility. Analyze the user's birth chart to provide insights about their romantic nature, ideal partner qualities, relationship patterns, and timing for love. Focus on Venus, Mars, 7th house, and relevant aspects.",
		},
		{
			Id:             "career-guide",
			Name:           "Career Guide",
			Description:    "Navigate your professional path with 10th house analysis, planetary periods, and career timing guidance.",
			Specialization: "Professional Astrologer",
			Icon:           "fas fa-briefcase",
			Color:          "from-blue-400 to-indigo-500",
			Rating:         "4.7",
			SystemPrompt:   "You are a career astrology expert. Analyze the user's birth chart to provide guidance on career path, professional strengths, ideal work environments, and timing for career moves. Focus on the 10th house, Midheaven, Saturn, Jupiter, and relevant planetary periods.",
		},
		{
			Id:             "wellness-guide",
			Name:           "Wellness Guide",
			Description:    "Holistic health insights through medical astrology, planetary influences on wellbeing, and healing guidance.",
			Specialization: "Health Astrologer",
			Icon:           "fas fa-leaf",
			Color:          "from-green-400 to-emerald-500",
			Rating:         "4.6",
			SystemPrompt:   "You are a medical astrology specialist focusing on health and wellness. Analyze the user's birth chart to provide insights about health tendencies, wellness practices, and mind-body connection. Focus on the 6th house, Mars, Moon, and health-related planetary influences.",
		},
		{
			Id:             "spiritual-mentor",
			Name:           "Spiritual Mentor",
			Description:    "Explore your soul's journey, past life connections, and spiritual evolution through your birth chart.",
			Specialization: "Soul Guide",
			Icon:           "fas fa-meditation",
			Color:          "from-purple-400 to-violet-500",
			Rating:         "4.9",
			SystemPrompt:   "You are a spiritual astrology guide focusing on soul evolution, spiritual growth, and higher consciousness. Analyze the user's birth chart to provide insights about their spiritual path, soul lessons, past life influences, and spiritual practices. Focus on the 12th house, Neptune, Pluto, and karmic indicators.",
		},
		{
			Id:             "transit-tracker",
			Name:           "Transit Tracker",
			Description:    "Stay ahead of planetary transits, retrograde periods, and optimal timing for important life decisions.",
			Specialization: "Timing Expert",
			Icon:           "fas fa-clock",
			Color:          "from-yellow-400 to-orange-500",
			Rating:         "4.8",
			SystemPrompt:   "You are a timing and transit specialist in astrology. Analyze current and upcoming planetary transits to the user's birth chart. Provide insights about timing for important decisions, upcoming opportunities and challenges, and how to work with current planetary energies.",
		},
	}

	order := make([]string, len(catalog))
	bots := make(map[string]*entity.AstrologyBot, len(catalog))
	for i, bot := range catalog {
		order[i] = bot.Id
		bots[bot.Id] = bot
	}

	return &BotCatalog{order: order, bots: bots}
}

// All returns every bot in catalog order.
func (c *BotCatalog) All() []*entity.AstrologyBot {
	out := make([]*entity.AstrologyBot, len(c.order))
	for i, id := range c.order {
		out[i] = c.bots[id]
	}
	return out
}

// Get returns the bot with the given id, or nil when unknown.
func (c *BotCatalog) Get(id string) *entity.AstrologyBot {
	return c.bots[id]
}
