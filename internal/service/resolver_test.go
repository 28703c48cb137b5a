package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"estatehub/internal/model"
)

// lookupRecorder is a scripted LookupFunc: it records every issued
// query and can hold a response until the test releases it
type lookupRecorder struct {
	mu      sync.Mutex
	calls   []string
	results map[string][]model.LocationSuggestion
	errs    map[string]error
	gates   map[string]chan struct{}
}

func newLookupRecorder() *lookupRecorder {
	return &lookupRecorder{
		results: make(map[string][]model.LocationSuggestion),
		errs:    make(map[string]error),
		gates:   make(map[string]chan struct{}),
	}
}

func (l *lookupRecorder) lookup(ctx context.Context, query string) ([]model.LocationSuggestion, error) {
	l.mu.Lock()
	l.calls = append(l.calls, query)
	gate := l.gates[query]
	l.mu.Unlock()

	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.errs[query]; err != nil {
		return nil, err
	}
	return l.results[query], nil
}

func (l *lookupRecorder) callCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.calls)
}

func (l *lookupRecorder) lastCall() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.calls) == 0 {
		return ""
	}
	return l.calls[len(l.calls)-1]
}

func suggestion(id int64, name, externalID string) model.LocationSuggestion {
	return model.LocationSuggestion{ID: id, Name: name, ExternalID: externalID}
}

func waitFor(t *testing.T, timeout time.Duration, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(2 * time.Millisecond)
	}
	t.Fatal("condition not met within timeout")
}

func TestLocationResolver_DebounceCollapsesKeystrokes(t *testing.T) {
	lookups := newLookupRecorder()
	lookups.results["abc"] = []model.LocationSuggestion{suggestion(1, "Abu Dhabi", "6020")}

	r := NewLocationResolver(lookups.lookup, 40*time.Millisecond, time.Second, nil)
	defer r.Close()

	// Three keystrokes inside one debounce window
	r.Input("a")
	time.Sleep(5 * time.Millisecond)
	r.Input("ab")
	time.Sleep(5 * time.Millisecond)
	r.Input("abc")

	if snap := r.Snapshot(); snap.State != ResolverDebouncing {
		t.Errorf("Expected debouncing, got %s", snap.State)
	}

	waitFor(t, time.Second, func() bool {
		return r.Snapshot().State == ResolverResolved
	})

	if got := lookups.callCount(); got != 1 {
		t.Errorf("Expected exactly one fetch, got %d", got)
	}
	if got := lookups.lastCall(); got != "abc" {
		t.Errorf("Expected fetch for %q, got %q", "abc", got)
	}

	snap := r.Snapshot()
	if len(snap.Suggestions) != 1 || snap.Suggestions[0].ExternalID != "6020" {
		t.Errorf("Unexpected suggestions: %+v", snap.Suggestions)
	}
}

func TestLocationResolver_LastRequestWins(t *testing.T) {
	lookups := newLookupRecorder()
	lookups.results["ab"] = []model.LocationSuggestion{suggestion(1, "Stale Town", "1111")}
	lookups.results["abc"] = []model.LocationSuggestion{suggestion(2, "Fresh City", "2222")}
	lookups.gates["ab"] = make(chan struct{})
	lookups.gates["abc"] = make(chan struct{})

	r := NewLocationResolver(lookups.lookup, 10*time.Millisecond, time.Second, nil)
	defer r.Close()

	r.Input("ab")
	waitFor(t, time.Second, func() bool { return lookups.callCount() == 1 })

	// A newer request starts while the first is still in flight
	r.Input("abc")
	waitFor(t, time.Second, func() bool { return lookups.callCount() == 2 })

	// The newer request resolves first
	close(lookups.gates["abc"])
	waitFor(t, time.Second, func() bool {
		snap := r.Snapshot()
		return len(snap.Suggestions) == 1 && snap.Suggestions[0].ExternalID == "2222"
	})

	// The older request resolves late; its result must be discarded
	close(lookups.gates["ab"])
	time.Sleep(50 * time.Millisecond)

	snap := r.Snapshot()
	if len(snap.Suggestions) != 1 || snap.Suggestions[0].ExternalID != "2222" {
		t.Errorf("Stale response overwrote fresh suggestions: %+v", snap.Suggestions)
	}
}

func TestLocationResolver_FailureYieldsEmptyList(t *testing.T) {
	lookups := newLookupRecorder()
	lookups.errs["nowhere"] = errors.New("upstream unavailable")

	r := NewLocationResolver(lookups.lookup, 10*time.Millisecond, time.Second, nil)
	defer r.Close()

	r.Input("nowhere")
	waitFor(t, time.Second, func() bool {
		return r.Snapshot().State == ResolverFailed
	})

	snap := r.Snapshot()
	if len(snap.Suggestions) != 0 {
		t.Errorf("Expected empty suggestions after failure, got %+v", snap.Suggestions)
	}
	if snap.Busy {
		t.Error("Resolver should not stay busy after a failed lookup")
	}
}

func TestLocationResolver_ClearCancelsPendingTimer(t *testing.T) {
	lookups := newLookupRecorder()

	r := NewLocationResolver(lookups.lookup, 30*time.Millisecond, time.Second, nil)
	defer r.Close()

	r.Input("dubai")
	r.Clear()

	time.Sleep(80 * time.Millisecond)
	if got := lookups.callCount(); got != 0 {
		t.Errorf("Cleared input still fetched %d times", got)
	}
	if snap := r.Snapshot(); snap.State != ResolverIdle || snap.Text != "" {
		t.Errorf("Expected idle after clear, got %+v", snap)
	}
}

func TestLocationResolver_ClearDiscardsInFlightFetch(t *testing.T) {
	lookups := newLookupRecorder()
	lookups.results["dubai"] = []model.LocationSuggestion{suggestion(1, "Dubai", "5002")}
	lookups.gates["dubai"] = make(chan struct{})

	r := NewLocationResolver(lookups.lookup, 10*time.Millisecond, time.Second, nil)
	defer r.Close()

	r.Input("dubai")
	waitFor(t, time.Second, func() bool { return lookups.callCount() == 1 })

	r.Clear()
	close(lookups.gates["dubai"])
	time.Sleep(50 * time.Millisecond)

	snap := r.Snapshot()
	if snap.State != ResolverIdle {
		t.Errorf("Expected idle, got %s", snap.State)
	}
	if len(snap.Suggestions) != 0 {
		t.Errorf("Discarded fetch still delivered suggestions: %+v", snap.Suggestions)
	}
}

func TestLocationResolver_EmptyInputReturnsToIdle(t *testing.T) {
	lookups := newLookupRecorder()
	lookups.results["abc"] = []model.LocationSuggestion{suggestion(1, "Abu Dhabi", "6020")}

	r := NewLocationResolver(lookups.lookup, 10*time.Millisecond, time.Second, nil)
	defer r.Close()

	r.Input("abc")
	waitFor(t, time.Second, func() bool { return r.Snapshot().State == ResolverResolved })

	r.Input("")
	snap := r.Snapshot()
	if snap.State != ResolverIdle {
		t.Errorf("Expected idle on empty input, got %s", snap.State)
	}
	if len(snap.Suggestions) != 0 {
		t.Errorf("Expected suggestions cleared, got %+v", snap.Suggestions)
	}
}

func TestLocationResolver_Select(t *testing.T) {
	lookups := newLookupRecorder()
	lookups.results["marina"] = []model.LocationSuggestion{
		suggestion(1, "Dubai Marina", "5002"),
		suggestion(2, "Marina Walk", "5003"),
	}

	r := NewLocationResolver(lookups.lookup, 10*time.Millisecond, time.Second, nil)
	defer r.Close()

	r.Input("marina")
	waitFor(t, time.Second, func() bool { return r.Snapshot().State == ResolverResolved })

	if _, ok := r.Select("9999"); ok {
		t.Error("Selecting an unknown suggestion should fail")
	}

	picked, ok := r.Select("5002")
	if !ok {
		t.Fatal("Expected selection to succeed")
	}
	if picked.ExternalID != "5002" {
		t.Errorf("Expected external ID 5002, got %s", picked.ExternalID)
	}

	snap := r.Snapshot()
	if snap.Text != "Dubai Marina" {
		t.Errorf("Expected visible text replaced by display name, got %q", snap.Text)
	}
	if len(snap.Suggestions) != 0 {
		t.Errorf("Expected suggestion list cleared, got %+v", snap.Suggestions)
	}
}

func TestLocationResolver_CloseStopsEvents(t *testing.T) {
	lookups := newLookupRecorder()

	r := NewLocationResolver(lookups.lookup, 10*time.Millisecond, time.Second, nil)
	r.Close()

	r.Input("abc")
	time.Sleep(50 * time.Millisecond)
	if got := lookups.callCount(); got != 0 {
		t.Errorf("Closed resolver still fetched %d times", got)
	}
}

func TestLocationResolver_NotifiesOnUpdate(t *testing.T) {
	lookups := newLookupRecorder()
	lookups.results["abc"] = []model.LocationSuggestion{suggestion(1, "Abu Dhabi", "6020")}

	r := NewLocationResolver(lookups.lookup, 10*time.Millisecond, time.Second, nil)
	defer r.Close()

	var mu sync.Mutex
	var states []ResolverState
	r.SetOnUpdate(func(snap ResolverSnapshot) {
		mu.Lock()
		states = append(states, snap.State)
		mu.Unlock()
	})

	r.Input("abc")
	waitFor(t, time.Second, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(states) >= 3 && states[len(states)-1] == ResolverResolved
	})

	mu.Lock()
	defer mu.Unlock()
	want := []ResolverState{ResolverDebouncing, ResolverFetching, ResolverResolved}
	for i, state := range want {
		if states[i] != state {
			t.Errorf("Transition %d: expected %s, got %s", i, state, states[i])
		}
	}
}
