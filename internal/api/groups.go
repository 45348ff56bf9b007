package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/accelleon/cloudmgmt/internal/domain"
)

type GroupSearch struct {
	Name *string
	domain.SearchPage
}

func (q GroupSearch) values() url.Values {
	v := url.Values{}
	optQuery(v, "name", q.Name)
	pageValues(v, q.SearchPage, "name")
	return v
}

func (c *Client) SearchGroups(ctx context.Context, q GroupSearch) (domain.GroupSearchResponse, error) {
	var out domain.GroupSearchResponse
	err := c.do(ctx, Descriptor{
		Method: http.MethodGet,
		URL:    "/groups",
		Query:  q.values(),
		Errors: map[int]string{
			401: "Unauthorized",
			403: "Forbidden",
			422: "Validation Error",
		},
	}, &out)
	return out, err
}

func (c *Client) GetGroup(ctx context.Context, groupID int64) (domain.Group, error) {
	var out domain.Group
	err := c.do(ctx, Descriptor{
		Method: http.MethodGet,
		URL:    "/groups/{group_id}",
		Path:   map[string]any{"group_id": groupID},
		Errors: map[int]string{
			401: "Unauthorized",
			403: "Forbidden",
			404: "Not Found",
			422: "Validation Error",
		},
	}, &out)
	return out, err
}

func (c *Client) CreateGroup(ctx context.Context, req domain.CreateGroup) (domain.Group, error) {
	var out domain.Group
	err := c.do(ctx, Descriptor{
		Method:    http.MethodPost,
		URL:       "/groups",
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

func (c *Client) UpdateGroup(ctx context.Context, groupID int64, req domain.UpdateGroup) (domain.Group, error) {
	var out domain.Group
	err := c.do(ctx, Descriptor{
		Method:    http.MethodPut,
		URL:       "/groups/{group_id}",
		Path:      map[string]any{"group_id": groupID},
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

func (c *Client) DeleteGroup(ctx context.Context, groupID int64) error {
	return c.do(ctx, Descriptor{
		Method: http.MethodDelete,
		URL:    "/groups/{group_id}",
		Path:   map[string]any{"group_id": groupID},
		Errors: map[int]string{
			401: "Unauthorized",
			403: "Forbidden",
			404: "Not Found",
			422: "Validation Error",
		},
	}, nil)
}
