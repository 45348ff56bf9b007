package api

import (
	"context"
	"net/http"

	"github.com/accelleon/cloudmgmt/internal/domain"
)

// Login exchanges credentials for a bearer token and stores it in the
// session. When the account has 2FA enabled and no code was supplied,
// the backend answers with a challenge instead of a token; that is
// surfaced as domain.ErrTwoFactorRequired so the caller can prompt.
func (c *Client) Login(ctx context.Context, req domain.AuthRequest) (domain.AuthResponse, error) {
	var out domain.AuthResponse
	err := c.do(ctx, Descriptor{
		Method:    http.MethodPost,
		URL:       "/login",
		Body:      req,
		MediaType: "application/json",
		Errors: map[int]string{
			401: "Unauthorized",
			403: "Forbidden",
			422: "Validation Error",
		},
	}, &out)
	if err != nil {
		return domain.AuthResponse{}, err
	}

	if out.TwoFARequired {
		return out, domain.ErrTwoFactorRequired
	}

	if err := c.session.SetToken(ctx, out.AccessToken); err != nil {
		return domain.AuthResponse{}, err
	}

	return out, nil
}

// Logout drops the local session. The backend keeps no server-side
// session state, so this is purely a client-side operation.
func (c *Client) Logout(ctx context.Context) error {
	return c.session.Clear(ctx)
}
