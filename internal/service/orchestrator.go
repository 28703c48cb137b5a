package service

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	"estatehub/internal/model"
)

// Overlay is a transient surface (the mobile filter panel) the
// orchestrator closes after a successful submit
type Overlay interface {
	Close()
}

// Notifier delivers transient, dismissible user feedback
type Notifier interface {
	Notify(model.Notification)
}

// SubmitResult is the outcome of a committed search
type SubmitResult struct {
	TargetURL     string
	Filters       model.FilterState
	OverlayClosed bool
	Notification  model.Notification
}

// SearchOrchestrator owns one FilterStore per search context and wires
// it to the location resolver and the URL sync. It exposes the submit
// action: snapshot the filters, commit them over the pass-through
// query, navigate, and report the outcome.
type SearchOrchestrator struct {
	store       *FilterStore
	urlSync     *URLSync
	nav         Navigator
	resolver    *LocationResolver
	notifier    Notifier
	overlay     Overlay
	passThrough url.Values
	logger      *slog.Logger
}

// NewSearchOrchestrator wires the coordinator. The resolver, notifier
// and overlay are optional.
func NewSearchOrchestrator(
	store *FilterStore,
	urlSync *URLSync,
	nav Navigator,
	resolver *LocationResolver,
	notifier Notifier,
	overlay Overlay,
	logger *slog.Logger,
) *SearchOrchestrator {
	if logger == nil {
		logger = slog.Default()
	}
	return &SearchOrchestrator{
		store:       store,
		urlSync:     urlSync,
		nav:         nav,
		resolver:    resolver,
		notifier:    notifier,
		overlay:     overlay,
		passThrough: url.Values{},
		logger:      logger,
	}
}

// HydrateFromURL seeds the filter store from the entry URL's query
// parameters and remembers the parameters the store does not own so a
// later commit can carry them through. Called exactly once per page
// entry, before any interaction is processed.
func (o *SearchOrchestrator) HydrateFromURL(params url.Values) model.FilterState {
	o.passThrough = url.Values{}
	for key, vals := range params {
		if !ownedParam(key) {
			o.passThrough[key] = append([]string(nil), vals...)
		}
	}
	state := o.urlSync.Hydrate(params)
	o.store.state = state
	return state
}

// Filters returns the current filter snapshot
func (o *SearchOrchestrator) Filters() model.FilterState {
	return o.store.Get()
}

// FiltersActive reports the display-only "any filter non-default" flag
func (o *SearchOrchestrator) FiltersActive() bool {
	return o.store.IsActive()
}

// SetField applies one raw field value through the store
func (o *SearchOrchestrator) SetField(field Field, raw string) model.FilterState {
	return o.store.Set(field, raw)
}

// ResetFilters restores the documented defaults
func (o *SearchOrchestrator) ResetFilters() model.FilterState {
	return o.store.Reset()
}

// SelectLocation accepts a resolver suggestion and routes its
// identifier into the filter store. This is the only path from free
// text to the location filter.
func (o *SearchOrchestrator) SelectLocation(externalID string) (model.FilterState, bool) {
	if o.resolver == nil {
		return o.store.Get(), false
	}
	suggestion, ok := o.resolver.Select(externalID)
	if !ok {
		return o.store.Get(), false
	}
	return o.store.Set(FieldLocation, suggestion.ExternalID), true
}

// Submit commits the current filters: it serializes the snapshot over
// the pass-through parameters, navigates to the resulting URL and
// emits transient feedback. On failure the in-memory filter state is
// untouched and the overlay stays open, so the user can retry.
// Repeated submits with unchanged filters produce the same target URL.
func (o *SearchOrchestrator) Submit(ctx context.Context, fromOverlay bool) (SubmitResult, error) {
	state := o.store.Get()
	target := o.urlSync.TargetURL(state, o.passThrough)

	result := SubmitResult{
		TargetURL: target,
		Filters:   state,
	}

	if err := o.nav.Navigate(ctx, target); err != nil {
		o.logger.Error("search navigation failed", "target", target, "error", err)
		result.Notification = model.Notification{
			Status:      model.NotifyError,
			Title:       "Error",
			Description: "Failed to apply filters. Please try again.",
			DurationMS:  3000,
			Closable:    true,
		}
		o.notify(result.Notification)
		return result, fmt.Errorf("commit search: %w", err)
	}

	result.Notification = model.Notification{
		Status:      model.NotifySuccess,
		Title:       "Filters Applied",
		Description: "Showing properties matching your criteria",
		DurationMS:  3000,
		Closable:    true,
	}
	o.notify(result.Notification)

	if fromOverlay && o.overlay != nil {
		o.overlay.Close()
		result.OverlayClosed = true
	}

	return result, nil
}

func (o *SearchOrchestrator) notify(n model.Notification) {
	if o.notifier != nil {
		o.notifier.Notify(n)
	}
}
