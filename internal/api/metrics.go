package api

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/accelleon/cloudmgmt/internal/domain"
)

type MetricQuery struct {
	Iaas        *string
	Account     *string
	Granularity *string
	StartDate   *time.Time
	EndDate     *time.Time
}

func (q MetricQuery) values() url.Values {
	v := url.Values{}
	optQuery(v, "iaas", q.Iaas)
	optQuery(v, "account", q.Account)
	optQuery(v, "granularity", q.Granularity)
	optQuery(v, "start_date", q.StartDate)
	optQuery(v, "end_date", q.EndDate)
	return v
}

// Metrics returns instance-count samples across all accounts.
func (c *Client) Metrics(ctx context.Context, q MetricQuery) (domain.MetricResponse, error) {
	var out domain.MetricResponse
	err := c.do(ctx, Descriptor{
		Method: http.MethodGet,
		URL:    "/metric/",
		Query:  q.values(),
		Errors: map[int]string{
			422: "Validation Error",
		},
	}, &out)
	return out, err
}

// AccountMetrics returns samples for one account by name.
func (c *Client) AccountMetrics(ctx context.Context, account string, q MetricQuery) (domain.MetricResponse, error) {
	var out domain.MetricResponse
	err := c.do(ctx, Descriptor{
		Method: http.MethodGet,
		URL:    "/metric/{account}",
		Path:   map[string]any{"account": account},
		Query:  q.values(),
		Errors: map[int]string{
			422: "Validation Error",
		},
	}, &out)
	return out, err
}
