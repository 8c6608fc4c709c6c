package api

import (
	"context"
	"net/http"

	"github.com/minsu-cho/sajubook/internal/client/models"
)

// Credentials is the login payload.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignupRequest is the account-creation payload.
type SignupRequest struct {
	Name     string `json:"name"`
	Nickname string `json:"nickname,omitempty"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone,omitempty"`
}

// LoginResult is the backend's successful login response. RefreshToken is
// optional; one backend variant does not issue it.
type LoginResult struct {
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken,omitempty"`
	User         *models.User `json:"user"`
}

// Login exchanges credentials for token(s) and a profile snapshot.
func (c *Client) Login(ctx context.Context, creds Credentials) (*LoginResult, error) {
	var res LoginResult
	if err := c.do(ctx, http.MethodPost, "/auth/login", nil, creds, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Logout asks the backend to invalidate the server-side session.
func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/auth/logout", nil, nil, nil)
}

// Signup creates a new account. It has no session side effect; the new
// account is not logged in automatically.
func (c *Client) Signup(ctx context.Context, req SignupRequest) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodPost, "/users/signup", nil, req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
