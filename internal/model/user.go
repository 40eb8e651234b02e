package model

import "time"

// User учетная запись владельца заметок
type User struct {
	ID           string
	Email        string
	PasswordHash string // argon2id в формате PHC
	CreatedAt    time.Time
}

// Session сессия, выданная при входе
type Session struct {
	Token     string
	UserID    string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Expired сообщает, истекла ли сессия к моменту now
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}
