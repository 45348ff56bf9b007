package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/accelleon/cloudmgmt/internal/domain"
)

type TemplateSearch struct {
	Name *string
	domain.SearchPage
}

func (q TemplateSearch) values() url.Values {
	v := url.Values{}
	optQuery(v, "name", q.Name)
	pageValues(v, q.SearchPage, "name")
	return v
}

func (c *Client) SearchTemplates(ctx context.Context, q TemplateSearch) (domain.TemplateSearchResponse, error) {
	var out domain.TemplateSearchResponse
	err := c.do(ctx, Descriptor{
		Method: http.MethodGet,
		URL:    "/template",
		Query:  q.values(),
		Errors: map[int]string{
			401: "Unauthorized",
			422: "Validation Error",
		},
	}, &out)
	return out, err
}

func (c *Client) GetTemplate(ctx context.Context, id int64) (domain.Template, error) {
	var out domain.Template
	err := c.do(ctx, Descriptor{
		Method: http.MethodGet,
		URL:    "/template/{id}",
		Path:   map[string]any{"id": id},
		Errors: map[int]string{
			401: "Unauthorized",
			404: "Not Found",
			422: "Validation Error",
		},
	}, &out)
	return out, err
}

func (c *Client) CreateTemplate(ctx context.Context, req domain.CreateTemplate) (domain.Template, error) {
	var out domain.Template
	err := c.do(ctx, Descriptor{
		Method:    http.MethodPost,
		URL:       "/template",
		Body:      req,
		MediaType: "application/json",
		Errors: map[int]string{
			401: "Unauthorized",
			409: "Conflict",
			422: "Validation Error",
		},
	}, &out)
	return out, err
}

func (c *Client) UpdateTemplate(ctx context.Context, id int64, req domain.UpdateTemplate) (domain.Template, error) {
	var out domain.Template
	err := c.do(ctx, Descriptor{
		Method:    http.MethodPut,
		URL:       "/template/{id}",
		Path:      map[string]any{"id": id},
		Body:      req,
		MediaType: "application/json",
		Errors: map[int]string{
			401: "Unauthorized",
			404: "Not Found",
			409: "Conflict",
			422: "Validation Error",
		},
	}, &out)
	return out, err
}

func (c *Client) DeleteTemplate(ctx context.Context, id int64) error {
	return c.do(ctx, Descriptor{
		Method: http.MethodDelete,
		URL:    "/template/{id}",
		Path:   map[string]any{"id": id},
		Errors: map[int]string{
			401: "Unauthorized",
			404: "Not Found",
			422: "Validation Error",
		},
	}, nil)
}
