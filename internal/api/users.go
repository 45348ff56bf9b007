package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/accelleon/cloudmgmt/internal/domain"
)

// UserSearch filters the user list. Nil fields are omitted from the
// query string.
type UserSearch struct {
	Username     *string
	FirstName    *string
	LastName     *string
	IsAdmin      *bool
	TwoFAEnabled *bool
	domain.SearchPage
}

func (q UserSearch) values() url.Values {
	v := url.Values{}
	optQuery(v, "username", q.Username)
	optQuery(v, "first_name", q.FirstName)
	optQuery(v, "last_name", q.LastName)
	optQuery(v, "is_admin", q.IsAdmin)
	optQuery(v, "twofa_enabled", q.TwoFAEnabled)
	pageValues(v, q.SearchPage, "username")
	return v
}

func (c *Client) SearchUsers(ctx context.Context, q UserSearch) (domain.UserSearchResponse, error) {
	var out domain.UserSearchResponse
	err := c.do(ctx, Descriptor{
		Method: http.MethodGet,
		URL:    "/users",
		Query:  q.values(),
		Errors: map[int]string{
			401: "Unauthorized",
			403: "Forbidden",
			422: "Validation Error",
		},
	}, &out)
	return out, err
}

func (c *Client) GetUser(ctx context.Context, userID int64) (domain.User, error) {
	var out domain.User
	err := c.do(ctx, Descriptor{
		Method: http.MethodGet,
		URL:    "/users/{user_id}",
		Path:   map[string]any{"user_id": userID},
		Errors: map[int]string{
			401: "Unauthorized",
			403: "Forbidden",
			404: "Not Found",
			422: "Validation Error",
		},
	}, &out)
	return out, err
}

func (c *Client) CreateUser(ctx context.Context, req domain.CreateUser) (domain.User, error) {
	var out domain.User
	err := c.do(ctx, Descriptor{
		Method:    http.MethodPost,
		URL:       "/users",
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

func (c *Client) UpdateUser(ctx context.Context, userID int64, req domain.UpdateUser) (domain.User, error) {
	var out domain.User
	err := c.do(ctx, Descriptor{
		Method:    http.MethodPatch,
		URL:       "/users/{user_id}",
		Path:      map[string]any{"user_id": userID},
		Body:      req,
		MediaType: "application/json",
		Errors: map[int]string{
			401: "Unauthorized",
			403: "Forbidden",
			404: "Not Found",
			409: "Conflict",
			422: "Validation Error",
		},
	}, &out)
	return out, err
}

func (c *Client) DeleteUser(ctx context.Context, userID int64) error {
	return c.do(ctx, Descriptor{
		Method: http.MethodDelete,
		URL:    "/users/{user_id}",
		Path:   map[string]any{"user_id": userID},
		Errors: map[int]string{
			401: "Unauthorized",
			403: "Forbidden",
			404: "Not Found",
			422: "Validation Error",
		},
	}, nil)
}

// pageValues applies the shared pagination knobs, defaulting sort to
// the resource's natural key the way the backend does.
func pageValues(v url.Values, page domain.SearchPage, defaultSort string) {
	optQuery(v, "page", page.Page)
	optQuery(v, "per_page", page.PerPage)
	sort := page.Sort
	if sort == "" {
		sort = defaultSort
	}
	setQuery(v, "sort", sort)
	if page.Order.Valid() {
		setQuery(v, "order", page.Order)
	}
}
