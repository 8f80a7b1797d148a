// Package analytics tracks executed searches in memory and aggregates
// them for the stats endpoint.
package analytics

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/teejay382/jobtolk-search/model"
)

const (
	maxEventsToKeep   = 10000 // Keep last 10k events for performance
	topQueriesToShow  = 10
	popularSinceHours = 24 * 7
)

// QueryCount pairs a query string with how often it was searched.
type QueryCount struct {
	Query string `json:"query"`
	Count int    `json:"count"`
}

// Stats is the aggregated view served by the stats endpoint.
type Stats struct {
	TotalSearches      int          `json:"total_searches"`
	ZeroResultSearches int          `json:"zero_result_searches"`
	DegradedSearches   int          `json:"degraded_searches"`
	AvgResponseTimeMs  int64        `json:"avg_response_time_ms"`
	PopularQueries     []QueryCount `json:"popular_queries"`
	ZeroResultQueries  []QueryCount `json:"zero_result_queries"`
}

// Service implements analytics tracking and reporting. Events are held
// in a bounded in-memory window; the service is intentionally stateless
// across restarts.
type Service struct {
	mutex  sync.RWMutex
	events []model.SearchEvent
}

// NewService creates a new analytics service
func NewService() *Service {
	return &Service{
		events: make([]model.SearchEvent, 0),
	}
}

// TrackSearchEvent records a new search event
func (s *Service) TrackSearchEvent(event model.SearchEvent) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	event.Timestamp = time.Now()
	s.events = append(s.events, event)

	// Keep only the latest events to prevent unbounded growth
	if len(s.events) > maxEventsToKeep {
		s.events = s.events[len(s.events)-maxEventsToKeep:]
	}

	return nil
}

// GetStats aggregates the retained events.
func (s *Service) GetStats() Stats {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	since := time.Now().Add(-popularSinceHours * time.Hour)

	stats := Stats{}
	var totalResponse time.Duration
	popular := make(map[string]int)
	zeroResult := make(map[string]int)

	for _, event := range s.events {
		stats.TotalSearches++
		totalResponse += event.ResponseTime
		if event.Degraded {
			stats.DegradedSearches++
		}
		if event.ResultCount == 0 && !event.Degraded {
			stats.ZeroResultSearches++
		}

		query := strings.TrimSpace(strings.ToLower(event.Query))
		if query == "" || event.Timestamp.Before(since) {
			continue
		}
		popular[query]++
		if event.ResultCount == 0 && !event.Degraded {
			zeroResult[query]++
		}
	}

	if stats.TotalSearches > 0 {
		avg := totalResponse / time.Duration(stats.TotalSearches)
		stats.AvgResponseTimeMs = avg.Milliseconds()
	}

	stats.PopularQueries = topQueries(popular, topQueriesToShow)
	stats.ZeroResultQueries = topQueries(zeroResult, topQueriesToShow)
	return stats
}

// topQueries returns the n most frequent queries, most frequent first.
// Ties are broken alphabetically so the output is deterministic.
func topQueries(counts map[string]int, n int) []QueryCount {
	result := make([]QueryCount, 0, len(counts))
	for query, count := range counts {
		result = append(result, QueryCount{Query: query, Count: count})
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return result[i].Query < result[j].Query
	})

	if len(result) > n {
		result = result[:n]
	}
	return result
}
