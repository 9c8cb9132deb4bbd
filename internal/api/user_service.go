package api

import (
	"context"
	"net/http"

	"github.com/ianwestfall/tourneyman-web/internal/session"
)

type UserService struct {
	client *Client
}

func NewUserService(client *Client) *UserService {
	return &UserService{client: client}
}

// Profile fetches the current user's profile. The payload passes through
// undecoded into a generic map; the client does not own this shape.
func (s *UserService) Profile(ctx context.Context, sess session.Session) (map[string]any, error) {
	var profile map[string]any
	err := s.client.do(ctx, sess, http.MethodGet, "/users/me", nil, nil, http.StatusOK, &profile)
	if err != nil {
		return nil, err
	}
	return profile, nil
}
