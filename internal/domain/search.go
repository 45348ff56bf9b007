package domain

// SearchOrder is the sort direction accepted by every list endpoint.
type SearchOrder string

const (
	OrderAsc  SearchOrder = "asc"
	OrderDesc SearchOrder = "desc"
)

func (o SearchOrder) Valid() bool {
	return o == OrderAsc || o == OrderDesc
}

// SearchPage carries the pagination and ordering knobs shared by every
// search request. Nil fields are omitted from the query string so the
// backend applies its own defaults.
type SearchPage struct {
	Page    *int
	PerPage *int
	Sort    string
	Order   SearchOrder
}

// SearchResponse is the common envelope returned by list endpoints.
type SearchResponse[T any] struct {
	Results []T         `json:"results"`
	Page    int         `json:"page"`
	PerPage int         `json:"per_page"`
	Total   int         `json:"total"`
	Order   SearchOrder `json:"order"`
	Next    string      `json:"next,omitempty"`
	Prev    string      `json:"prev,omitempty"`
}
