package api

import (
	"context"
	"net/http"

	"github.com/accelleon/cloudmgmt/internal/domain"
)

// Me returns the calling user.
func (c *Client) Me(ctx context.Context) (domain.User, error) {
	var out domain.User
	err := c.do(ctx, Descriptor{
		Method: http.MethodGet,
		URL:    "/me",
		Errors: map[int]string{
			401: "Unauthorized",
		},
	}, &out)
	return out, err
}

// UpdateMe updates the calling user. The response carries the 2FA
// provisioning URI while enrollment is pending.
func (c *Client) UpdateMe(ctx context.Context, req domain.UpdateSelf) (domain.UpdateSelfResponse, error) {
	var out domain.UpdateSelfResponse
	err := c.do(ctx, Descriptor{
		Method:    http.MethodPost,
		URL:       "/me",
		Body:      req,
		MediaType: "application/json",
		Errors: map[int]string{
			401: "Unauthorized",
			403: "Forbidden",
			409: "Conflict",
			422: "Validation Error",
		},
	}, &out)
	return out, err
}
