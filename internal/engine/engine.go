// Package engine orchestrates one search pass: tokenize the query,
// fetch the coarse result set from the backing source, score every
// entity, and rank. Nothing is cached between passes; every search
// re-scores the fetched set.
package engine

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/teejay382/jobtolk-search/config"
	"github.com/teejay382/jobtolk-search/internal/errors"
	"github.com/teejay382/jobtolk-search/internal/ranking"
	"github.com/teejay382/jobtolk-search/internal/scoring"
	"github.com/teejay382/jobtolk-search/internal/tokenizer"
	"github.com/teejay382/jobtolk-search/model"
	"github.com/teejay382/jobtolk-search/services"
)

// Engine implements services.Searcher over a coarse-filter source.
type Engine struct {
	settings      config.EngineSettings
	source        services.Source
	jobScorer     *scoring.Scorer
	profileScorer *scoring.Scorer
	tracker       services.EventTracker // optional
}

// New creates an Engine. The tracker may be nil, in which case no
// analytics events are recorded.
func New(source services.Source, settings config.EngineSettings, tracker services.EventTracker) (*Engine, error) {
	if source == nil {
		return nil, fmt.Errorf("source cannot be nil")
	}

	settings.ApplyDefaults()
	if problems := settings.Validate(); len(problems) > 0 {
		return nil, fmt.Errorf("invalid engine settings: %v", problems)
	}

	return &Engine{
		settings:      settings,
		source:        source,
		jobScorer:     scoring.NewScorer(settings.JobWeights),
		profileScorer: scoring.NewScorer(settings.ProfileWeights),
		tracker:       tracker,
	}, nil
}

// Settings returns a copy of the engine's effective settings.
func (e *Engine) Settings() config.EngineSettings {
	return e.settings
}

// Search runs one full pass for the query. A failed coarse fetch is
// served as an empty, degraded result with a logged diagnostic; it is
// not an error and is never retried. An unknown entity kind is a real
// error.
func (e *Engine) Search(ctx context.Context, query services.SearchQuery) (services.SearchResult, error) {
	startTime := time.Now()
	queryID := uuid.New().String()

	q := tokenizer.Normalize(query.Query, e.settings.MinWordLength)

	var hits []services.Hit
	switch query.Kind {
	case services.KindJobs:
		jobs, err := e.source.FetchJobs(ctx, query.Filter, e.settings.CoarseLimit)
		if err != nil {
			return e.degraded(query, queryID, startTime, errors.NewFetchError(string(query.Kind), err)), nil
		}
		hits = e.scoreJobs(q, jobs)
	case services.KindFreelancers:
		profiles, err := e.source.FetchProfiles(ctx, query.Filter, e.settings.CoarseLimit)
		if err != nil {
			return e.degraded(query, queryID, startTime, errors.NewFetchError(string(query.Kind), err)), nil
		}
		hits = e.scoreProfiles(q, profiles)
	default:
		return services.SearchResult{}, errors.NewUnknownKindError(string(query.Kind))
	}

	ranked := ranking.Rank(q, hits, e.settings.MaxResults)

	result := services.SearchResult{
		Hits:    ranked,
		Total:   len(ranked),
		Took:    time.Since(startTime).Milliseconds(),
		QueryID: queryID,
	}

	e.track(query, result, startTime)
	return result, nil
}

func (e *Engine) scoreJobs(q tokenizer.Query, jobs []model.Job) []services.Hit {
	hits := make([]services.Hit, 0, len(jobs))
	for i := range jobs {
		job := jobs[i]
		hits = append(hits, services.Hit{
			Job:   &job,
			Score: e.jobScorer.ScoreJob(q, &job),
		})
	}
	return hits
}

func (e *Engine) scoreProfiles(q tokenizer.Query, profiles []model.FreelancerProfile) []services.Hit {
	hits := make([]services.Hit, 0, len(profiles))
	for i := range profiles {
		profile := profiles[i]
		hits = append(hits, services.Hit{
			Profile: &profile,
			Score:   e.profileScorer.ScoreProfile(q, &profile),
		})
	}
	return hits
}

// degraded logs a fetch failure and builds the empty result served in
// its place.
func (e *Engine) degraded(query services.SearchQuery, queryID string, startTime time.Time, fetchErr error) services.SearchResult {
	log.Printf("Warning: serving empty result for query %q: %v", query.Query, fetchErr)

	result := services.SearchResult{
		Hits:     []services.Hit{},
		Total:    0,
		Took:     time.Since(startTime).Milliseconds(),
		QueryID:  queryID,
		Degraded: true,
	}
	e.track(query, result, startTime)
	return result
}

// track records the search asynchronously so analytics never slow down
// the response.
func (e *Engine) track(query services.SearchQuery, result services.SearchResult, startTime time.Time) {
	if e.tracker == nil {
		return
	}

	event := model.SearchEvent{
		QueryID:      result.QueryID,
		Query:        query.Query,
		Kind:         string(query.Kind),
		ResponseTime: time.Since(startTime),
		ResultCount:  result.Total,
		Degraded:     result.Degraded,
	}
	go func() {
		if err := e.tracker.TrackSearchEvent(event); err != nil {
			log.Printf("Warning: Failed to track search event: %v", err)
		}
	}()
}
