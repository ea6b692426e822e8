package api

import (
	"context"
	"net/http"
)

type loginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// Login exchanges credentials for a bearer token. Credential-acquisition
// routes never carry a stored Authorization header.
func (c *Client) Login(ctx context.Context, email, password string) (AuthResponse, error) {
	var out AuthResponse
	err := c.do(ctx, http.MethodPost, "/auth/login", nil, loginPayload{Email: email, Password: password}, &out)
	if err != nil {
		return AuthResponse{}, err
	}
	return out, nil
}

// Register creates an account and returns a bearer token for it.
func (c *Client) Register(ctx context.Context, email, password, name string) (AuthResponse, error) {
	var out AuthResponse
	err := c.do(ctx, http.MethodPost, "/auth/register", nil, registerPayload{Email: email, Password: password, Name: name}, &out)
	if err != nil {
		return AuthResponse{}, err
	}
	return out, nil
}

// Me returns the account behind the attached credential.
func (c *Client) Me(ctx context.Context) (User, error) {
	var out meResponse
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, nil, &out); err != nil {
		return User{}, err
	}
	return out.User, nil
}
