package domain

// Template is an ordered layout of accounts used by the console dashboard.
type Template struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Order       []int64 `json:"order"`
}

type CreateTemplate struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Order       []int64 `json:"order"`
}

type UpdateTemplate struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Order       []int64 `json:"order,omitempty"`
}

type TemplateSearchResponse = SearchResponse[Template]
