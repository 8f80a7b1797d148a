// Package dispatch coalesces rapid repeated search triggers and tracks
// the lifecycle of one search cycle.
package dispatch

import (
	"sync"
	"time"
)

// Debouncer collapses calls arriving within a quiet window into a
// single execution of the last call's function. Calls are coalesced,
// never queued: each call resets the window and replaces the pending
// function (last-call-wins). Safe for concurrent use.
type Debouncer struct {
	mu    sync.Mutex
	delay time.Duration
	timer *time.Timer
}

// NewDebouncer creates a Debouncer with the given quiet window.
func NewDebouncer(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay}
}

// Do schedules fn to run after the quiet window elapses with no further
// calls. A zero delay runs fn synchronously.
func (d *Debouncer) Do(fn func()) {
	if d.delay == 0 {
		fn()
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, fn)
}

// Cancel drops any pending execution. A function already started by the
// timer is not interrupted.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
