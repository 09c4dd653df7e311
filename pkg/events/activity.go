package events

// Topic for user-activity events, published in-process via watermill.
const UserActivityTopic = "USER_ACTIVITY"

// Activity actions.
const (
	ActionRegistered     = "registered"
	ActionChartGenerated = "chart_generated"
	ActionChatStarted    = "chat_started"
	ActionMessageSent    = "message_sent"
)

// UserActivityEvent is the payload published whenever a user does something
// worth recording. Persisted asynchronously; never blocks the request path.
type UserActivityEvent struct {
	UserID  int64             `json:"user_id"`
	Action  string            `json:"action"`
	Details map[string]string `json:"details,omitempty"`
}
