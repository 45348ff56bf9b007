package domain

// Group is a named collection of accounts.
type Group struct {
	ID       int64     `json:"id"`
	Name     string    `json:"name"`
	Accounts []Account `json:"accounts"`
}

type CreateGroup struct {
	Name string `json:"name"`
}

type UpdateGroup struct {
	Name       *string `json:"name,omitempty"`
	AccountIDs []int64 `json:"account_ids,omitempty"`
}

type GroupSearchResponse = SearchResponse[Group]
