package model

import "time"

// SearchEvent records a single executed search for analytics purposes.
type SearchEvent struct {
	QueryID      string        `json:"query_id"`
	Query        string        `json:"query"`
	Kind         string        `json:"kind"` // "jobs" or "freelancers"
	ResponseTime time.Duration `json:"response_time"`
	ResultCount  int           `json:"result_count"`
	Degraded     bool          `json:"degraded"` // fetch failed, empty results served
	Timestamp    time.Time     `json:"timestamp"`
}
