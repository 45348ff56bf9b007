package domain

import "time"

// BillingPeriod is one provider invoice window for an account.
type BillingPeriod struct {
	ID        int64     `json:"id"`
	AccountID int64     `json:"account_id"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Total     float64   `json:"total"`
	Balance   float64   `json:"balance"`
	Account   Account   `json:"account"`
}

type BillingSearchResponse = SearchResponse[BillingPeriod]
