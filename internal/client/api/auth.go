package api

import (
	"context"

	"github.com/setka-dev/setka/internal/client/models"
	"github.com/setka-dev/setka/internal/common"
)

type authResponse struct {
	envelope
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

func (c *HTTPClient) Login(ctx context.Context, username, password string) (*AuthResult, error) {
	req := struct {
		Action   string `json:"action"`
		Username string `json:"username"`
		Password string `json:"password"`
	}{"login", username, password}

	var res authResponse
	status, err := c.post(ctx, c.authURL, req, &res)
	if err != nil {
		return nil, err
	}
	if !res.Success {
		return nil, failure(status, res.envelope)
	}
	return &AuthResult{Token: res.Token, User: res.User}, nil
}

func (c *HTTPClient) Register(ctx context.Context, reg RegisterRequest) (*AuthResult, error) {
	req := struct {
		Action string `json:"action"`
		RegisterRequest
	}{Action: "register", RegisterRequest: reg}

	var res authResponse
	status, err := c.post(ctx, c.authURL, req, &res)
	if err != nil {
		return nil, err
	}
	if !res.Success {
		return nil, failure(status, res.envelope)
	}
	return &AuthResult{Token: res.Token, User: res.User}, nil
}

// Verify asks the auth function whether a token is still accepted. The
// response has its own shape ({valid, user}) rather than the success
// envelope.
func (c *HTTPClient) Verify(ctx context.Context, token string) (*models.User, error) {
	req := struct {
		Action string `json:"action"`
		Token  string `json:"token"`
	}{"verify", token}

	var res struct {
		Valid bool         `json:"valid"`
		User  *models.User `json:"user"`
	}
	if _, err := c.post(ctx, c.authURL, req, &res); err != nil {
		return nil, err
	}
	if !res.Valid || res.User == nil {
		return nil, common.ErrUnauthorized
	}
	return res.User, nil
}
