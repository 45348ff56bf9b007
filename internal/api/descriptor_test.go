package api

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/accelleon/cloudmgmt/internal/domain"
)

func mustParse(t *testing.T, raw string) *url.URL {
	t.Helper()

	u, err := url.Parse(raw)
	require.NoError(t, err)
	return u
}

func TestExpandURLSubstitutesPathParams(t *testing.T) {
	t.Parallel()

	base := mustParse(t, "http://10.0.0.5:8000/api/v1")
	d := Descriptor{
		Method: "GET",
		URL:    "/users/{user_id}",
		Path:   map[string]any{"user_id": int64(42)},
	}

	u, err := d.expandURL(base)
	require.NoError(t, err)
	assert.Equal(t, "http://10.0.0.5:8000/api/v1/users/42", u.String())
}

func TestExpandURLEscapesPathValues(t *testing.T) {
	t.Parallel()

	base := mustParse(t, "http://localhost:8000/api/v1")
	d := Descriptor{
		URL:  "/metric/{account}",
		Path: map[string]any{"account": "prod/eu west"},
	}

	u, err := d.expandURL(base)
	require.NoError(t, err)
	assert.Equal(t, "/api/v1/metric/prod%2Feu%20west", u.EscapedPath())
}

func TestExpandURLRejectsUnresolvedPlaceholder(t *testing.T) {
	t.Parallel()

	base := mustParse(t, "http://localhost:8000/api/v1")

	_, err := Descriptor{URL: "/users/{user_id}"}.expandURL(base)
	require.Error(t, err)
	assert.ErrorContains(t, err, "unresolved path parameter")

	_, err = Descriptor{URL: "/users", Path: map[string]any{"user_id": 1}}.expandURL(base)
	require.Error(t, err)
	assert.ErrorContains(t, err, "not in template")
}

func TestExpandURLAppendsQuery(t *testing.T) {
	t.Parallel()

	base := mustParse(t, "http://localhost:8000/api/v1")
	v := url.Values{}
	setQuery(v, "sort", "name")
	setQuery(v, "page", 2)

	u, err := Descriptor{URL: "/accounts", Query: v}.expandURL(base)
	require.NoError(t, err)
	assert.Equal(t, "page=2&sort=name", u.RawQuery)
}

func TestOptQueryOmitsAbsentValues(t *testing.T) {
	t.Parallel()

	name := "potato"
	enabled := false
	v := url.Values{}
	optQuery(v, "name", &name)
	optQuery(v, "twofa_enabled", &enabled)
	optQuery[string](v, "iaas", nil)

	assert.Equal(t, "potato", v.Get("name"))
	assert.Equal(t, "false", v.Get("twofa_enabled"))
	assert.False(t, v.Has("iaas"))
}

func TestQueryValueFormatsTimesAsRFC3339(t *testing.T) {
	t.Parallel()

	ts := time.Date(2026, 4, 1, 8, 30, 0, 0, time.UTC)
	assert.Equal(t, "2026-04-01T08:30:00Z", queryValue(ts))
}

func TestPageValuesDefaultsSortAndOmitsUnsetPaging(t *testing.T) {
	t.Parallel()

	v := url.Values{}
	pageValues(v, domain.SearchPage{}, "username")

	assert.Equal(t, "username", v.Get("sort"))
	assert.False(t, v.Has("page"))
	assert.False(t, v.Has("per_page"))
	assert.False(t, v.Has("order"))

	page, perPage := 3, 50
	v = url.Values{}
	pageValues(v, domain.SearchPage{
		Page:    &page,
		PerPage: &perPage,
		Sort:    "name",
		Order:   domain.OrderDesc,
	}, "username")

	assert.Equal(t, "3", v.Get("page"))
	assert.Equal(t, "50", v.Get("per_page"))
	assert.Equal(t, "name", v.Get("sort"))
	assert.Equal(t, "desc", v.Get("order"))
}
