package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/accelleon/cloudmgmt/internal/domain"
)

type AccountSearch struct {
	Name *string
	Iaas *string
	Type *domain.IaasType
	domain.SearchPage
}

func (q AccountSearch) values() url.Values {
	v := url.Values{}
	optQuery(v, "name", q.Name)
	optQuery(v, "iaas", q.Iaas)
	optQuery(v, "type", q.Type)
	pageValues(v, q.SearchPage, "name")
	return v
}

func (c *Client) SearchAccounts(ctx context.Context, q AccountSearch) (domain.AccountSearchResponse, error) {
	var out domain.AccountSearchResponse
	err := c.do(ctx, Descriptor{
		Method: http.MethodGet,
		URL:    "/accounts",
		Query:  q.values(),
		Errors: map[int]string{
			401: "Unauthorized",
			403: "Forbidden",
			422: "Validation Error",
		},
	}, &out)
	return out, err
}

func (c *Client) GetAccount(ctx context.Context, accountID int64) (domain.Account, error) {
	var out domain.Account
	err := c.do(ctx, Descriptor{
		Method: http.MethodGet,
		URL:    "/accounts/{account_id}",
		Path:   map[string]any{"account_id": accountID},
		Errors: map[int]string{
			401: "Unauthorized",
			403: "Forbidden",
			404: "Not Found",
			422: "Validation Error",
		},
	}, &out)
	return out, err
}

func (c *Client) CreateAccount(ctx context.Context, req domain.CreateAccount) (domain.Account, error) {
	var out domain.Account
	err := c.do(ctx, Descriptor{
		Method:    http.MethodPost,
		URL:       "/accounts",
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

func (c *Client) UpdateAccount(ctx context.Context, accountID int64, req domain.UpdateAccount) (domain.Account, error) {
	var out domain.Account
	err := c.do(ctx, Descriptor{
		Method:    http.MethodPatch,
		URL:       "/accounts/{account_id}",
		Path:      map[string]any{"account_id": accountID},
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

func (c *Client) DeleteAccount(ctx context.Context, accountID int64) error {
	return c.do(ctx, Descriptor{
		Method: http.MethodDelete,
		URL:    "/accounts/{account_id}",
		Path:   map[string]any{"account_id": accountID},
		Errors: map[int]string{
			401: "Unauthorized",
			403: "Forbidden",
			404: "Not Found",
			422: "Validation Error",
		},
	}, nil)
}
