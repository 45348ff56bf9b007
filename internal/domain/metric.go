package domain

import "time"

// Metric is an instance-count sample for an account at a point in time.
type Metric struct {
	AccountID int64     `json:"account_id"`
	Instances int64     `json:"instances"`
	Time      time.Time `json:"time"`
}

// MetricResponse is a window of samples at a given granularity.
type MetricResponse struct {
	Results     []Metric  `json:"results"`
	Granularity string    `json:"granularity"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
}
