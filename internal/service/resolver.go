package service

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"estatehub/internal/model"
)

// ResolverState is the phase of one autocomplete input session
type ResolverState string

const (
	ResolverIdle       ResolverState = "idle"
	ResolverDebouncing ResolverState = "debouncing"
	ResolverFetching   ResolverState = "fetching"
	ResolverResolved   ResolverState = "resolved"
	ResolverFailed     ResolverState = "failed"
)

// LookupFunc issues the remote autocomplete lookup for a query term
type LookupFunc func(ctx context.Context, query string) ([]model.LocationSuggestion, error)

// ResolverSnapshot is an immutable view of the resolver for rendering
type ResolverSnapshot struct {
	State       ResolverState              `json:"state"`
	Text        string                     `json:"text"`
	Busy        bool                       `json:"busy"`
	Suggestions []model.LocationSuggestion `json:"suggestions"`
}

// LocationResolver turns free-text location input into concrete
// location identifiers through a debounced, cancellation-aware remote
// lookup. Each keystroke restarts the debounce timer; only the latest
// scheduled lookup may fire, and every issued request carries a
// monotonically increasing sequence number so that a late completion
// for an older request can never overwrite a fresher result
// (last-request-wins).
//
// The resolver is instance-scoped with an explicit lifecycle: create
// it per input session and Close it when the session ends.
type LocationResolver struct {
	lookup   LookupFunc
	debounce time.Duration
	timeout  time.Duration
	logger   *slog.Logger

	mu          sync.Mutex
	text        string
	state       ResolverState
	busy        bool
	suggestions []model.LocationSuggestion
	timer       *time.Timer
	seq         uint64
	cancelFetch context.CancelFunc
	onUpdate    func(ResolverSnapshot)
	closed      bool
}

// Default resolver timings
const (
	DefaultDebounce      = 500 * time.Millisecond
	DefaultLookupTimeout = 10 * time.Second
)

// NewLocationResolver creates a resolver around the given lookup.
// Zero durations fall back to the defaults.
func NewLocationResolver(lookup LookupFunc, debounce, timeout time.Duration, logger *slog.Logger) *LocationResolver {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	if timeout <= 0 {
		timeout = DefaultLookupTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &LocationResolver{
		lookup:   lookup,
		debounce: debounce,
		timeout:  timeout,
		logger:   logger,
		state:    ResolverIdle,
	}
}

// SetOnUpdate registers a callback invoked after every state change.
// The callback runs with the resolver lock held and must not call back
// into the resolver.
func (r *LocationResolver) SetOnUpdate(fn func(ResolverSnapshot)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onUpdate = fn
}

// Input records a keystroke. Empty input returns the resolver to Idle;
// anything else restarts the debounce timer.
func (r *LocationResolver) Input(text string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}

	r.stopTimerLocked()
	r.text = text

	if strings.TrimSpace(text) == "" {
		r.resetLocked()
		r.notifyLocked()
		return
	}

	r.state = ResolverDebouncing
	term := text
	r.timer = time.AfterFunc(r.debounce, func() { r.fire(term) })
	r.notifyLocked()
}

// Clear is the explicit clear action: it cancels any pending timer and
// in-flight fetch, empties the suggestion list and returns to Idle.
func (r *LocationResolver) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}
	r.stopTimerLocked()
	r.text = ""
	r.resetLocked()
	r.notifyLocked()
}

// Select accepts a suggestion by its external identifier. It clears
// the suggestion list, replaces the visible text with the suggestion's
// display name and hands the identifier back to the caller. This is
// the only path by which free text becomes a structured filter value.
func (r *LocationResolver) Select(externalID string) (model.LocationSuggestion, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return model.LocationSuggestion{}, false
	}

	for _, s := range r.suggestions {
		if s.ExternalID != externalID {
			continue
		}
		r.stopTimerLocked()
		r.seq++ // anything still in flight is now stale
		if r.cancelFetch != nil {
			r.cancelFetch()
			r.cancelFetch = nil
		}
		r.text = s.Name
		r.suggestions = nil
		r.busy = false
		r.state = ResolverResolved
		r.notifyLocked()
		return s, true
	}
	return model.LocationSuggestion{}, false
}

// Snapshot returns the current view of the resolver
func (r *LocationResolver) Snapshot() ResolverSnapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshotLocked()
}

// Close cancels all pending work. The resolver ignores events after
// Close.
func (r *LocationResolver) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}
	r.closed = true
	r.stopTimerLocked()
	if r.cancelFetch != nil {
		r.cancelFetch()
		r.cancelFetch = nil
	}
}

// fire runs when the debounce timer elapses. A stopped timer can still
// have been mid-fire, so the scheduled term must still match the
// current text for the lookup to proceed.
func (r *LocationResolver) fire(term string) {
	r.mu.Lock()
	if r.closed || r.text != term {
		r.mu.Unlock()
		return
	}

	r.seq++
	id := r.seq
	r.state = ResolverFetching
	r.busy = true
	if r.cancelFetch != nil {
		r.cancelFetch()
	}
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	r.cancelFetch = cancel
	r.notifyLocked()
	r.mu.Unlock()

	go func() {
		hits, err := r.lookup(ctx, term)
		cancel()

		r.mu.Lock()
		defer r.mu.Unlock()
		if r.closed || id != r.seq {
			// A newer request was issued while this one was in
			// flight; its result is authoritative, ours is dropped.
			return
		}
		r.busy = false
		r.cancelFetch = nil
		if err != nil {
			// Lookup failures never block the search form; the user
			// keeps typing against an empty list.
			r.logger.Warn("location lookup failed", "query", term, "error", err)
			r.suggestions = nil
			if r.state == ResolverFetching {
				r.state = ResolverFailed
			}
		} else {
			r.suggestions = hits
			if r.state == ResolverFetching {
				r.state = ResolverResolved
			}
		}
		r.notifyLocked()
	}()
}

func (r *LocationResolver) resetLocked() {
	r.seq++ // discard any in-flight completion
	if r.cancelFetch != nil {
		r.cancelFetch()
		r.cancelFetch = nil
	}
	r.suggestions = nil
	r.busy = false
	r.state = ResolverIdle
}

func (r *LocationResolver) stopTimerLocked() {
	if r.timer != nil {
		r.timer.Stop()
		r.timer = nil
	}
}

func (r *LocationResolver) snapshotLocked() ResolverSnapshot {
	return ResolverSnapshot{
		State:       r.state,
		Text:        r.text,
		Busy:        r.busy,
		Suggestions: append([]model.LocationSuggestion(nil), r.suggestions...),
	}
}

func (r *LocationResolver) notifyLocked() {
	if r.onUpdate != nil {
		r.onUpdate(r.snapshotLocked())
	}
}
