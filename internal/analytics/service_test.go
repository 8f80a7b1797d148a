package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teejay382/jobtolk-search/model"
)

func TestService_GetStats(t *testing.T) {
	service := NewService()

	events := []model.SearchEvent{
		{Query: "react", Kind: "jobs", ResponseTime: 10 * time.Millisecond, ResultCount: 5},
		{Query: "React", Kind: "jobs", ResponseTime: 20 * time.Millisecond, ResultCount: 3},
		{Query: "golang", Kind: "freelancers", ResponseTime: 30 * time.Millisecond, ResultCount: 0},
		{Query: "broken", Kind: "jobs", ResponseTime: 40 * time.Millisecond, ResultCount: 0, Degraded: true},
	}
	for _, event := range events {
		require.NoError(t, service.TrackSearchEvent(event))
	}

	stats := service.GetStats()

	assert.Equal(t, 4, stats.TotalSearches)
	assert.Equal(t, 1, stats.ZeroResultSearches) // degraded searches do not count as zero-result
	assert.Equal(t, 1, stats.DegradedSearches)
	assert.Equal(t, int64(25), stats.AvgResponseTimeMs)

	require.NotEmpty(t, stats.PopularQueries)
	assert.Equal(t, "react", stats.PopularQueries[0].Query) // case-folded, counted twice
	assert.Equal(t, 2, stats.PopularQueries[0].Count)

	require.Len(t, stats.ZeroResultQueries, 1)
	assert.Equal(t, "golang", stats.ZeroResultQueries[0].Query)
}

func TestService_EmptyStats(t *testing.T) {
	service := NewService()
	stats := service.GetStats()

	assert.Zero(t, stats.TotalSearches)
	assert.Zero(t, stats.AvgResponseTimeMs)
	assert.Empty(t, stats.PopularQueries)
}

func TestService_BoundsRetainedEvents(t *testing.T) {
	service := NewService()

	for i := 0; i < maxEventsToKeep+100; i++ {
		require.NoError(t, service.TrackSearchEvent(model.SearchEvent{Query: "react"}))
	}

	stats := service.GetStats()
	assert.Equal(t, maxEventsToKeep, stats.TotalSearches)
}
