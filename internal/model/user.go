package model

import "strings"

// User carries auth credentials during login and registration. Password is
// only ever held transiently; persisted session state strips it.
type User struct {
	Email    string
	Password string
}

// Username derives the display name as the local part of the email. An
// email with no @ yields the empty string.
func (u User) Username() string {
	name, _, found := strings.Cut(u.Email, "@")
	if !found {
		return ""
	}
	return name
}

type UserResponse struct {
	Email string `json:"email"`
}

// Token is the decoded view of the backend's token response. The raw
// response body is what gets persisted; this type only needs the fields the
// client reads.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
