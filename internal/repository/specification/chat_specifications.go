package specification

import "gorm.io/gorm"

type BySessionID struct {
	SessionID int64
}

func (s BySessionID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("session_id = ?", s.SessionID)
}

// ActiveByUserAndBot matches the active session a user holds with a given bot.
type ActiveByUserAndBot struct {
	UserID  int64
	BotType string
}

func (s ActiveByUserAndBot) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ? AND bot_type = ? AND is_active = ?", s.UserID, s.BotType, true)
}
