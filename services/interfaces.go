package services

import (
	"context"

	"github.com/teejay382/jobtolk-search/model"
)

// EntityKind selects which entity type a search targets.
type EntityKind string

const (
	KindJobs        EntityKind = "jobs"
	KindFreelancers EntityKind = "freelancers"
)

// CoarseFilter is the structured (non-text) part of a search request.
// It is applied by the backing source before any text scoring happens.
type CoarseFilter struct {
	Category  string   `json:"category,omitempty"`
	JobType   string   `json:"job_type,omitempty"`
	BudgetMin *float64 `json:"budget_min,omitempty"`
	BudgetMax *float64 `json:"budget_max,omitempty"`
	Location  string   `json:"location,omitempty"`
	Skills    []string `json:"skills,omitempty"`
}

// SearchQuery is one search invocation: free text plus the coarse
// filter and the entity kind to search.
type SearchQuery struct {
	Query  string       `json:"query"`
	Kind   EntityKind   `json:"kind"`
	Filter CoarseFilter `json:"filter"`
}

// Hit is a single ranked entity. Exactly one of Job and Profile is set,
// matching the query's entity kind. Score is 0 on the empty-query path,
// where the coarse result set passes through unscored.
type Hit struct {
	Job     *model.Job               `json:"job,omitempty"`
	Profile *model.FreelancerProfile `json:"profile,omitempty"`
	Score   int                      `json:"score"`
}

// SearchResult is the outcome of one search pass. Scores are comparable
// only within a single result; they carry no meaning across searches.
type SearchResult struct {
	Hits    []Hit  `json:"hits"`
	Total   int    `json:"total"`
	Took    int64  `json:"took_ms"`
	QueryID string `json:"query_id"`
	// Degraded reports that the coarse fetch failed and an empty result
	// set was served in its place.
	Degraded bool `json:"degraded,omitempty"`
}

// JobSource fetches jobs matching a coarse filter, in arbitrary order,
// bounded by limit.
type JobSource interface {
	FetchJobs(ctx context.Context, filter CoarseFilter, limit int) ([]model.Job, error)
}

// ProfileSource fetches freelancer profiles matching a coarse filter,
// in arbitrary order, bounded by limit.
type ProfileSource interface {
	FetchProfiles(ctx context.Context, filter CoarseFilter, limit int) ([]model.FreelancerProfile, error)
}

// Source combines both coarse-filter sources behind one backing store.
type Source interface {
	JobSource
	ProfileSource
}

// Searcher executes one full search pass: coarse fetch, score, rank.
type Searcher interface {
	Search(ctx context.Context, query SearchQuery) (SearchResult, error)
}

// EventTracker records executed searches for analytics.
type EventTracker interface {
	TrackSearchEvent(event model.SearchEvent) error
}
