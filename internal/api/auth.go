package api

import (
	"context"
	"fmt"
)

// loginRequest is the credentials payload for login and register.
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// authResponse is the token payload. The backend has shipped both
// field names over time; accept either.
type authResponse struct {
	Token       string `json:"token"`
	AccessToken string `json:"access_token"`
}

func (r authResponse) token() string {
	if r.Token != "" {
		return r.Token
	}
	return r.AccessToken
}

// Login authenticates with the backend and returns the session token.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	var resp authResponse
	if err := c.post(ctx, "/auth/login", loginRequest{Email: email, Password: password}, &resp); err != nil {
		return "", err
	}
	if resp.token() == "" {
		return "", fmt.Errorf("login response contained no token")
	}
	return resp.token(), nil
}

// Register creates an account and returns the session token.
func (c *Client) Register(ctx context.Context, email, password string) (string, error) {
	var resp authResponse
	if err := c.post(ctx, "/auth/register", loginRequest{Email: email, Password: password}, &resp); err != nil {
		return "", err
	}
	if resp.token() == "" {
		return "", fmt.Errorf("register response contained no token")
	}
	return resp.token(), nil
}

// AuthBridge adapts the client to the session layer's Authenticator
// interface.
type AuthBridge struct {
	Client *Client
}

// Login implements session.Authenticator.
func (b AuthBridge) Login(ctx context.Context, email, password string) (string, error) {
	return b.Client.Login(ctx, email, password)
}

// Register implements session.Authenticator.
func (b AuthBridge) Register(ctx context.Context, email, password string) (string, error) {
	return b.Client.Register(ctx, email, password)
}
