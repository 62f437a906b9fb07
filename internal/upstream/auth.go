package upstream

import (
	"context"
	"net/http"
)

// TokenPair is the upstream session grant: access/refresh tokens and the
// access token's lifetime in seconds.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
	UserID       int64  `json:"user_id"`
}

// SignupRequest creates a new user account.
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login exchanges credentials for a token pair.
func (c *Client) Login(ctx context.Context, email, password string) (*TokenPair, error) {
	payload := map[string]string{"email": email, "password": password}
	var pair TokenPair
	if err := c.do(ctx, http.MethodPost, "/sessions/login", "", nil, payload, &pair); err != nil {
		return nil, err
	}
	return &pair, nil
}

// RefreshSession exchanges a refresh token for a fresh token pair.
func (c *Client) RefreshSession(ctx context.Context, refreshToken string) (*TokenPair, error) {
	payload := map[string]string{"refresh_token": refreshToken}
	var pair TokenPair
	if err := c.do(ctx, http.MethodPost, "/sessions/refresh", "", nil, payload, &pair); err != nil {
		return nil, err
	}
	return &pair, nil
}

// Signup registers a new user.
func (c *Client) Signup(ctx context.Context, req SignupRequest) error {
	return c.do(ctx, http.MethodPost, "/users", "", nil, req, nil)
}
