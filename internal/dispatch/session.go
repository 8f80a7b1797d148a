package dispatch

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/teejay382/jobtolk-search/services"
)

// State is the lifecycle phase of the current search cycle.
type State string

const (
	StateIdle       State = "idle"
	StateDebouncing State = "debouncing"
	StateFetching   State = "fetching"
	StateScoring    State = "scoring"
	StateRendered   State = "rendered"
)

// Session drives repeated searches from one caller (one UI input box):
// it debounces submissions and tracks a generation counter so a
// superseded in-flight search is detected and its result discarded.
// The render callback therefore only ever sees the latest submission
// (last-dispatched-wins, not last-resolved-wins).
type Session struct {
	mu        sync.Mutex
	searcher  services.Searcher
	debouncer *Debouncer
	gen       uint64
	state     State
}

// NewSession creates a Session over the given searcher with the given
// debounce window.
func NewSession(searcher services.Searcher, window time.Duration) *Session {
	return &Session{
		searcher:  searcher,
		debouncer: NewDebouncer(window),
		state:     StateIdle,
	}
}

// State returns the lifecycle phase of the latest submission.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Submit schedules a search. Submissions within the debounce window
// coalesce into one execution with the last submission's query. render
// is invoked with the result only if no newer submission has arrived by
// the time the search resolves; stale results are dropped silently.
//
// A failed search logs a diagnostic and returns the session to Idle
// without rendering; there is no retry.
func (s *Session) Submit(ctx context.Context, query services.SearchQuery, render func(services.SearchResult)) {
	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.state = StateDebouncing
	s.mu.Unlock()

	s.debouncer.Do(func() {
		if !s.advance(gen, StateFetching) {
			return
		}

		result, err := s.searcher.Search(ctx, query)
		if err != nil {
			log.Printf("Warning: search for query %q failed: %v", query.Query, err)
			s.advance(gen, StateIdle)
			return
		}

		if !s.advance(gen, StateScoring) {
			return
		}

		s.mu.Lock()
		if gen != s.gen {
			// Superseded while resolving; discard the stale result.
			s.mu.Unlock()
			return
		}
		s.state = StateRendered
		s.mu.Unlock()

		render(result)
	})
}

// Cancel drops any pending debounced submission and returns the session
// to Idle. An already-executing search still runs, but its result is
// discarded by the generation check on the next Submit.
func (s *Session) Cancel() {
	s.debouncer.Cancel()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateDebouncing {
		s.state = StateIdle
	}
}

// advance moves the session to next if gen is still the latest
// submission, reporting whether the caller should continue.
func (s *Session) advance(gen uint64, next State) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.gen {
		return false
	}
	s.state = next
	return true
}
