package dispatch

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/teejay382/jobtolk-search/services"
)

// fakeSearcher resolves searches in Submit order, optionally blocking
// on a per-query gate so tests can control when a fetch resolves.
type fakeSearcher struct {
	mu    sync.Mutex
	gates map[string]chan struct{} // query text -> release gate
	calls []string
	err   error
}

func newFakeSearcher() *fakeSearcher {
	return &fakeSearcher{gates: make(map[string]chan struct{})}
}

func (f *fakeSearcher) gate(query string) chan struct{} {
	f.mu.Lock()
	defer f.mu.Unlock()
	ch := make(chan struct{})
	f.gates[query] = ch
	return ch
}

func (f *fakeSearcher) Search(_ context.Context, query services.SearchQuery) (services.SearchResult, error) {
	f.mu.Lock()
	f.calls = append(f.calls, query.Query)
	gate := f.gates[query.Query]
	err := f.err
	f.mu.Unlock()

	if gate != nil {
		<-gate
	}
	if err != nil {
		return services.SearchResult{}, err
	}
	return services.SearchResult{QueryID: query.Query, Hits: []services.Hit{}}, nil
}

func (f *fakeSearcher) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func TestSession_RendersResult(t *testing.T) {
	searcher := newFakeSearcher()
	session := NewSession(searcher, 10*time.Millisecond)

	rendered := make(chan services.SearchResult, 1)
	session.Submit(context.Background(), services.SearchQuery{Query: "react", Kind: services.KindJobs}, func(r services.SearchResult) {
		rendered <- r
	})

	select {
	case r := <-rendered:
		if r.QueryID != "react" {
			t.Errorf("rendered result for %q, want %q", r.QueryID, "react")
		}
	case <-time.After(time.Second):
		t.Fatal("result was never rendered")
	}

	if got := session.State(); got != StateRendered {
		t.Errorf("session state = %q, want %q", got, StateRendered)
	}
}

func TestSession_RapidSubmitsCoalesce(t *testing.T) {
	searcher := newFakeSearcher()
	session := NewSession(searcher, 150*time.Millisecond)

	rendered := make(chan services.SearchResult, 3)
	render := func(r services.SearchResult) { rendered <- r }

	ctx := context.Background()
	session.Submit(ctx, services.SearchQuery{Query: "r", Kind: services.KindJobs}, render)
	time.Sleep(50 * time.Millisecond)
	session.Submit(ctx, services.SearchQuery{Query: "re", Kind: services.KindJobs}, render)
	time.Sleep(50 * time.Millisecond)
	session.Submit(ctx, services.SearchQuery{Query: "react", Kind: services.KindJobs}, render)

	select {
	case r := <-rendered:
		if r.QueryID != "react" {
			t.Errorf("rendered %q, want the last submission %q", r.QueryID, "react")
		}
	case <-time.After(time.Second):
		t.Fatal("result was never rendered")
	}

	if got := searcher.callCount(); got != 1 {
		t.Errorf("underlying search executed %d times, want exactly 1", got)
	}
}

func TestSession_StaleResultDiscarded(t *testing.T) {
	searcher := newFakeSearcher()
	session := NewSession(searcher, 5*time.Millisecond)

	slowGate := searcher.gate("slow")

	var (
		mu       sync.Mutex
		rendered []string
	)
	render := func(r services.SearchResult) {
		mu.Lock()
		rendered = append(rendered, r.QueryID)
		mu.Unlock()
	}

	ctx := context.Background()
	session.Submit(ctx, services.SearchQuery{Query: "slow", Kind: services.KindJobs}, render)

	// Wait for the slow search to actually start, then supersede it.
	deadline := time.Now().Add(time.Second)
	for searcher.callCount() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("slow search never started")
		}
		time.Sleep(time.Millisecond)
	}
	done := make(chan struct{})
	session.Submit(ctx, services.SearchQuery{Query: "fast", Kind: services.KindJobs}, func(r services.SearchResult) {
		render(r)
		close(done)
	})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("fast search never rendered")
	}

	// Now let the superseded search resolve; its result must be dropped.
	close(slowGate)
	time.Sleep(50 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	if len(rendered) != 1 || rendered[0] != "fast" {
		t.Errorf("rendered = %v, want only the fast result", rendered)
	}
}

func TestSession_FailureReturnsToIdle(t *testing.T) {
	searcher := newFakeSearcher()
	searcher.err = errors.New("backend exploded")
	session := NewSession(searcher, 5*time.Millisecond)

	session.Submit(context.Background(), services.SearchQuery{Query: "react", Kind: services.KindJobs}, func(services.SearchResult) {
		t.Error("render must not be called on failure")
	})

	deadline := time.Now().Add(time.Second)
	for session.State() != StateIdle {
		if time.Now().After(deadline) {
			t.Fatalf("session state = %q, want %q", session.State(), StateIdle)
		}
		time.Sleep(time.Millisecond)
	}
}

func TestSession_CancelDropsPending(t *testing.T) {
	searcher := newFakeSearcher()
	session := NewSession(searcher, 50*time.Millisecond)

	session.Submit(context.Background(), services.SearchQuery{Query: "react", Kind: services.KindJobs}, func(services.SearchResult) {
		t.Error("render must not be called after Cancel")
	})
	session.Cancel()

	time.Sleep(150 * time.Millisecond)

	if got := searcher.callCount(); got != 0 {
		t.Errorf("underlying search executed %d times after Cancel, want 0", got)
	}
	if got := session.State(); got != StateIdle {
		t.Errorf("session state = %q, want %q", got, StateIdle)
	}
}
