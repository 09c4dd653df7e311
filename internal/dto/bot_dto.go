package dto

type AstrologyBotResponse struct {
	Id             string `json:"id"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	Specialization string `json:"specialization"`
	Icon           string `json:"icon"`
	Color          string `json:"color"`
	Rating         string `json:"rating"`
	SystemPrompt   string `json:"systemPrompt"`
}

type BotsEnvelope struct {
	Bots []*AstrologyBotResponse `json:"bots"`
}
