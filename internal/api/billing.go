package api

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/accelleon/cloudmgmt/internal/domain"
)

type BillingSearch struct {
	Iaas      *string
	Account   *string
	StartDate *time.Time
	EndDate   *time.Time
	domain.SearchPage
}

func (q BillingSearch) values() url.Values {
	v := url.Values{}
	optQuery(v, "iaas", q.Iaas)
	optQuery(v, "account", q.Account)
	optQuery(v, "start_date", q.StartDate)
	optQuery(v, "end_date", q.EndDate)
	pageValues(v, q.SearchPage, "start_date")
	return v
}

// SearchBilling lists billing period summaries filtered by query.
func (c *Client) SearchBilling(ctx context.Context, q BillingSearch) (domain.BillingSearchResponse, error) {
	var out domain.BillingSearchResponse
	err := c.do(ctx, Descriptor{
		Method: http.MethodGet,
		URL:    "/billing",
		Query:  q.values(),
		Errors: map[int]string{
			401: "Unauthorized",
			422: "Validation Error",
		},
	}, &out)
	return out, err
}

func (c *Client) GetBillingPeriod(ctx context.Context, id int64) (domain.BillingPeriod, error) {
	var out domain.BillingPeriod
	err := c.do(ctx, Descriptor{
		Method: http.MethodGet,
		URL:    "/billing/{id}",
		Path:   map[string]any{"id": id},
		Errors: map[int]string{
			401: "Unauthorized",
			404: "Not Found",
			422: "Validation Error",
		},
	}, &out)
	return out, err
}
