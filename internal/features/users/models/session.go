package users_models

import (
	"time"

	"github.com/google/uuid"
)

// Session is resolved once per request from the bearer token and handed to
// services explicitly. An anonymous session has no user.
type Session struct {
	User      *User
	TokenID   string
	ExpiresAt time.Time
}

func AnonymousSession() *Session {
	return &Session{}
}

func (s *Session) IsAuthenticated() bool {
	return s != nil && s.User != nil
}

// UserID returns uuid.Nil for anonymous sessions.
func (s *Session) UserID() uuid.UUID {
	if !s.IsAuthenticated() {
		return uuid.Nil
	}

	return s.User.ID
}
