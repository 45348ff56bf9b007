package table

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/accelleon/cloudmgmt/internal/domain"
)

func TestUsersRendersRows(t *testing.T) {
	t.Parallel()

	out := Users([]domain.User{
		{ID: 1, Username: "admin", FirstName: "Ada", LastName: "Lovelace", IsAdmin: true},
		{ID: 2, Username: "bob", TwoFAEnabled: true},
	})

	assert.Contains(t, out, "Users")
	assert.Contains(t, out, "admin")
	assert.Contains(t, out, "Ada Lovelace")
	assert.Contains(t, out, "yes")
	assert.Contains(t, out, "bob")
}

func TestEmptyListRendersPlaceholder(t *testing.T) {
	t.Parallel()

	out := Accounts(nil)
	assert.Contains(t, out, "Accounts")
	assert.Contains(t, out, "(none)")
}

func TestBillingPeriodsFormatDatesAndAmounts(t *testing.T) {
	t.Parallel()

	out := BillingPeriods([]domain.BillingPeriod{{
		ID:        4,
		StartDate: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC),
		Total:     1234.5,
		Balance:   200,
		Account:   domain.Account{Name: "aws-prod"},
	}})

	assert.Contains(t, out, "2026-01-01")
	assert.Contains(t, out, "2026-01-31")
	assert.Contains(t, out, "1234.50")
	assert.Contains(t, out, "aws-prod")
}

func TestProvidersListParamKeys(t *testing.T) {
	t.Parallel()

	out := Providers([]domain.Iaas{{
		ID:   1,
		Name: "digitalocean",
		Type: domain.IaasTypeIaaS,
		Params: []domain.IaasParam{
			{Key: "api_key", Label: "API Key", Type: domain.ParamSecret},
			{Key: "region", Label: "Region", Type: domain.ParamChoice},
		},
	}})

	assert.Contains(t, out, "digitalocean")
	assert.Contains(t, out, "api_key, region")
}
