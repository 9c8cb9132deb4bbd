package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/ianwestfall/tourneyman-web/internal/model"
	"github.com/ianwestfall/tourneyman-web/internal/session"
)

// Validation errors raised before any network call is made.
var (
	ErrNilUser            = errors.New("user must not be nil")
	ErrMissingCredentials = errors.New("user must have an email and a password")
)

// Gateway performs login, registration, and logout against the backend's
// auth endpoints and keeps the session store in step with the outcome.
type Gateway struct {
	baseURL    string
	httpClient *http.Client
	sessions   *session.Store
}

func NewGateway(baseURL string, httpClient *http.Client, sessions *session.Store) *Gateway {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Gateway{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: httpClient,
		sessions:   sessions,
	}
}

func validateUser(user *model.User) error {
	if user == nil {
		return ErrNilUser
	}
	if user.Email == "" || user.Password == "" {
		return ErrMissingCredentials
	}
	return nil
}

// Login exchanges credentials for a bearer token at the token endpoint. The
// form's username field carries the email. When the response holds an
// access token, the password-stripped user and the full raw token response
// are persisted before Login returns; on any failure the session record is
// left untouched and the error propagates unchanged.
func (g *Gateway) Login(ctx context.Context, user *model.User) (*model.Token, error) {
	if err := validateUser(user); err != nil {
		return nil, err
	}

	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	if err := form.WriteField("username", user.Email); err != nil {
		return nil, err
	}
	if err := form.WriteField("password", user.Password); err != nil {
		return nil, err
	}
	if err := form.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/auth/token", &body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", form.FormDataContentType())

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("POST /auth/token: unexpected status %d", resp.StatusCode)
	}

	var token model.Token
	if err := json.Unmarshal(raw, &token); err != nil {
		return nil, err
	}

	if token.AccessToken != "" {
		g.sessions.SetLogin(ctx, user.Email, raw)
	}

	return &token, nil
}

// Logout unconditionally clears the persisted session. Calling it with no
// active session is a no-op.
func (g *Gateway) Logout(ctx context.Context) {
	g.sessions.Clear(ctx)
}

// Register creates a new account. It never changes login state; a freshly
// registered user still has to log in.
func (g *Gateway) Register(ctx context.Context, user *model.User) error {
	if err := validateUser(user); err != nil {
		return err
	}

	payload, err := json.Marshal(map[string]string{
		"email":    user.Email,
		"password": user.Password,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/auth/users", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("POST /auth/users: unexpected status %d", resp.StatusCode)
	}
	return nil
}
