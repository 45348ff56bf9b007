package domain

// AccountData holds the provider-specific fields of an account. Secret
// parameters are filtered out by the backend before they reach us.
type AccountData map[string]string

// Account is a billing account on a cloud provider.
type Account struct {
	ID       int64       `json:"id"`
	Name     string      `json:"name"`
	IaasID   int64       `json:"iaas_id"`
	Currency string      `json:"currency,omitempty"`
	Data     AccountData `json:"data"`
	Iaas     Iaas        `json:"iaas"`
}

type CreateAccount struct {
	Name string      `json:"name"`
	Iaas string      `json:"iaas"`
	Data AccountData `json:"data"`
}

type UpdateAccount struct {
	Name *string     `json:"name,omitempty"`
	Data AccountData `json:"data,omitempty"`
}

type AccountSearchResponse = SearchResponse[Account]
