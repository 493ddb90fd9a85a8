package api

import (
	"context"

	"javabite-client/internal/domain"
)

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userEnvelope struct {
	Data *domain.User `json:"data"`
}

// Login authenticates against the backend, which sets the session cookie on
// this client's jar. The returned user may carry a bearer token for
// deployments that persist one.
func (c *Client) Login(ctx context.Context, email, password string) (*domain.User, error) {
	var resp userEnvelope
	if err := c.post(ctx, "/auth/login", Credentials{Email: email, Password: password}, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (c *Client) Signup(ctx context.Context, req SignupRequest) (*domain.User, error) {
	var resp userEnvelope
	if err := c.post(ctx, "/auth/signup", req, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (c *Client) Logout(ctx context.Context) error {
	return c.post(ctx, "/auth/logout", nil, nil)
}

// Me probes the current session; a 401 means not authenticated.
func (c *Client) Me(ctx context.Context) (*domain.User, error) {
	var resp userEnvelope
	if err := c.get(ctx, "/auth/me", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}
