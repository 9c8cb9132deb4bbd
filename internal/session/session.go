package session

import (
	"context"
	"encoding/json"

	"github.com/alexedwards/scs/v2"
	"github.com/ianwestfall/tourneyman-web/internal/model"
)

// Session data keys. Both live in the same scs record, so they are always
// committed together.
const (
	userKey      = "user"
	userTokenKey = "userToken"
)

// Session is the authenticated-session value threaded explicitly through
// every backend call. LoggedIn is true only when a sanitized user and a
// well-formed token were both recovered from the session record.
type Session struct {
	LoggedIn bool
	User     *model.User
	Token    *model.Token
}

type persistedUser struct {
	Email string `json:"email"`
}

// Store reads and writes the persisted session record.
type Store struct {
	sessions *scs.SessionManager
}

func NewStore(sessions *scs.SessionManager) *Store {
	return &Store{sessions: sessions}
}

// Load reconstructs the Session from the persisted record. A missing,
// partial, or corrupt record is treated as logged out, never as an error.
func (s *Store) Load(ctx context.Context) Session {
	rawUser := s.sessions.GetString(ctx, userKey)
	rawToken := s.sessions.GetString(ctx, userTokenKey)
	if rawUser == "" || rawToken == "" {
		return Session{}
	}

	var user persistedUser
	if err := json.Unmarshal([]byte(rawUser), &user); err != nil || user.Email == "" {
		return Session{}
	}

	var token model.Token
	if err := json.Unmarshal([]byte(rawToken), &token); err != nil || token.AccessToken == "" {
		return Session{}
	}

	return Session{
		LoggedIn: true,
		User:     &model.User{Email: user.Email},
		Token:    &token,
	}
}

// SetLogin persists the password-stripped user alongside the raw token
// response. Both keys land in the same record and are committed in one
// write when the session middleware saves.
func (s *Store) SetLogin(ctx context.Context, email string, rawToken []byte) {
	userJSON, _ := json.Marshal(persistedUser{Email: email})
	s.sessions.Put(ctx, userKey, string(userJSON))
	s.sessions.Put(ctx, userTokenKey, string(rawToken))
}

// Clear drops the session record. Safe to call with no active session.
func (s *Store) Clear(ctx context.Context) {
	s.sessions.Remove(ctx, userKey)
	s.sessions.Remove(ctx, userTokenKey)
}
