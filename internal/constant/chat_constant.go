package constant

const (
	ChatMessageRoleUser      = "user"
	ChatMessageRoleAssistant = "assistant"
	ChatMessageRoleSystem    = "system"

	// DefaultBirthTime is substituted when the user marked their birth time as
	// unknown. Midday-ish keeps house placement errors bounded.
	DefaultBirthTime = "11:00"

	// HistoryWindow caps how many stored messages precede the new user message
	// in the conversation sent to the model. Hard window, not configurable per
	// call.
	HistoryWindow = 10

	// Generation parameters for the two prompt shapes.
	ChatMaxTokens       = 800
	WelcomeMaxTokens    = 200
	WelcomeTemperature  = 0.8
	GenerationFailedMsg = "I apologize, but I couldn't generate a response at this time."
)
