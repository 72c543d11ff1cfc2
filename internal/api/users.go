package api

import (
	"context"
	"net/http"
)

func (c *Client) Register(ctx context.Context, in RegisterRequest) (*AuthResponse, error) {
	var out AuthResponse
	if err := c.do(ctx, http.MethodPost, "/users/register", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Login(ctx context.Context, in LoginRequest) (*AuthResponse, error) {
	var out AuthResponse
	if err := c.do(ctx, http.MethodPost, "/users/login", in, &out); err != nil {
		return nil, err
	}
	if out.Token == "" {
		return nil, ErrBadResponse
	}
	return &out, nil
}

func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/users/logout", nil, nil)
}

func (c *Client) Profile(ctx context.Context) (*Profile, error) {
	var out Profile
	if err := c.do(ctx, http.MethodGet, "/users/profile", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProfile sends the full profile form. Backends that answer with no
// body yield the submitted profile.
func (c *Client) UpdateProfile(ctx context.Context, in Profile) (*Profile, error) {
	out := in
	if err := c.do(ctx, http.MethodPut, "/users/profile", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdatePassword(ctx context.Context, in PasswordChange) error {
	return c.do(ctx, http.MethodPut, "/users/password", in, nil)
}

func (c *Client) ForgotPassword(ctx context.Context, in PasswordReset) error {
	return c.do(ctx, http.MethodPost, "/users/forgot-password", in, nil)
}
