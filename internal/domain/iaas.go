package domain

// IaasType distinguishes infrastructure from platform providers.
type IaasType string

const (
	IaasTypeIaaS IaasType = "IAAS"
	IaasTypePaaS IaasType = "PAAS"
)

// IaasParamType describes how a provider credential field is rendered
// and stored.
type IaasParamType string

const (
	ParamString IaasParamType = "string"
	ParamChoice IaasParamType = "choice"
	ParamSecret IaasParamType = "secret"
)

// IaasParam describes one credential/config field a provider requires.
type IaasParam struct {
	Key      string        `json:"key"`
	Label    string        `json:"label"`
	Type     IaasParamType `json:"type,omitempty"`
	Choices  []string      `json:"choices,omitempty"`
	ReadOnly bool          `json:"readonly,omitempty"`
}

// Iaas is a supported cloud provider and the parameters an account on it
// must supply.
type Iaas struct {
	ID     int64       `json:"id"`
	Name   string      `json:"name"`
	Type   IaasType    `json:"type"`
	Params []IaasParam `json:"params"`
}

type IaasSearchResponse = SearchResponse[Iaas]
