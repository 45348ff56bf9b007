package api

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// Descriptor is the logical request the typed service layer hands to
// the pipeline: verb, path template, parameters, optional body and the
// per-status error labels declared for the endpoint. It is immutable
// once built and consumed by exactly one dispatch.
type Descriptor struct {
	Method    string
	URL       string
	Path      map[string]any
	Query     url.Values
	Body      any
	MediaType string
	Errors    map[int]string
}

// expandURL substitutes path parameters into the template and resolves
// it against the API base. Placeholders without a value are an error;
// descriptors are produced by code, so this is a bug, not user input.
func (d Descriptor) expandURL(base *url.URL) (*url.URL, error) {
	path := d.URL
	for key, value := range d.Path {
		placeholder := "{" + key + "}"
		if !strings.Contains(path, placeholder) {
			return nil, fmt.Errorf("path parameter %q not in template %q", key, d.URL)
		}
		path = strings.ReplaceAll(path, placeholder, url.PathEscape(queryValue(value)))
	}
	if i := strings.IndexByte(path, '{'); i >= 0 {
		return nil, fmt.Errorf("unresolved path parameter in %q", path)
	}

	resolved := *base
	resolved.RawPath = strings.TrimSuffix(base.EscapedPath(), "/") + path
	unescaped, err := url.PathUnescape(resolved.RawPath)
	if err != nil {
		return nil, fmt.Errorf("invalid path %q: %w", resolved.RawPath, err)
	}
	resolved.Path = unescaped
	resolved.RawQuery = d.Query.Encode()

	return &resolved, nil
}

// setQuery adds a query parameter unconditionally.
func setQuery(values url.Values, key string, value any) {
	values.Set(key, queryValue(value))
}

// optQuery adds a query parameter only when it has a defined value.
// Absent parameters are omitted entirely, never sent empty.
func optQuery[T any](values url.Values, key string, value *T) {
	if value == nil {
		return
	}
	values.Set(key, queryValue(*value))
}

func queryValue(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case time.Time:
		return v.Format(time.RFC3339)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
