package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/accelleon/cloudmgmt/internal/domain"
)

type ProviderSearch struct {
	Name *string
	Type *domain.IaasType
	domain.SearchPage
}

func (q ProviderSearch) values() url.Values {
	v := url.Values{}
	optQuery(v, "name", q.Name)
	optQuery(v, "type", q.Type)
	pageValues(v, q.SearchPage, "name")
	return v
}

// SearchProviders lists the supported cloud providers and the
// parameters an account on each must supply.
func (c *Client) SearchProviders(ctx context.Context, q ProviderSearch) (domain.IaasSearchResponse, error) {
	var out domain.IaasSearchResponse
	err := c.do(ctx, Descriptor{
		Method: http.MethodGet,
		URL:    "/providers/",
		Query:  q.values(),
		Errors: map[int]string{
			401: "Unauthorized",
			403: "Forbidden",
			422: "Validation Error",
		},
	}, &out)
	return out, err
}

func (c *Client) GetProvider(ctx context.Context, providerID int64) (domain.Iaas, error) {
	var out domain.Iaas
	err := c.do(ctx, Descriptor{
		Method: http.MethodGet,
		URL:    "/providers/{provider_id}",
		Path:   map[string]any{"provider_id": providerID},
		Errors: map[int]string{
			401: "Unauthorized",
			403: "Forbidden",
			404: "Not Found",
			422: "Validation Error",
		},
	}, &out)
	return out, err
}

// ProviderAccounts lists the accounts registered on one provider.
func (c *Client) ProviderAccounts(ctx context.Context, providerID int64, page domain.SearchPage) (domain.AccountSearchResponse, error) {
	v := url.Values{}
	pageValues(v, page, "name")

	var out domain.AccountSearchResponse
	err := c.do(ctx, Descriptor{
		Method: http.MethodGet,
		URL:    "/providers/{provider_id}/accounts",
		Path:   map[string]any{"provider_id": providerID},
		Query:  v,
		Errors: map[int]string{
			401: "Unauthorized",
			403: "Forbidden",
			404: "Not Found",
			422: "Validation Error",
		},
	}, &out)
	return out, err
}
