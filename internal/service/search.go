package service

import (
	"context"
	"log/slog"
	"net/url"
	"time"

	"github.com/google/uuid"

	"estatehub/internal/model"
	"estatehub/internal/repository"
	"estatehub/internal/upstream"
)

// SearchService handles the search, featured and detail reads of the
// portal, plus the submit flow through the orchestrator
type SearchService struct {
	api              *upstream.Client
	repo             *repository.PostgresRepository // nil when logging is disabled
	searchPath       string
	featuredLocation string
	logger           *slog.Logger
}

// NewSearchService creates a new search service. repo may be nil.
func NewSearchService(
	api *upstream.Client,
	repo *repository.PostgresRepository,
	searchPath string,
	featuredLocation string,
	logger *slog.Logger,
) *SearchService {
	if logger == nil {
		logger = slog.Default()
	}
	return &SearchService{
		api:              api,
		repo:             repo,
		searchPath:       searchPath,
		featuredLocation: featuredLocation,
		logger:           logger,
	}
}

// Search hydrates a FilterState from the incoming query parameters,
// queries the upstream and presents every hit for rendering
func (s *SearchService) Search(ctx context.Context, params url.Values, page, hitsPerPage int) (*model.SearchResponse, error) {
	startTime := time.Now()

	urlSync := NewURLSync(s.searchPath)
	store := NewFilterStore(urlSync.Hydrate(params))
	state := store.Get()

	listing, err := s.api.List(ctx, state, page, hitsPerPage)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	cards := make([]model.CardView, len(listing.Hits))
	for i, hit := range listing.Hits {
		cards[i] = PresentListing(hit, false, now)
	}

	took := time.Since(startTime).Milliseconds()
	searchID := uuid.NewString()

	// Log search (non-blocking)
	if s.repo != nil {
		go func() {
			if err := s.repo.LogSearch(context.Background(), searchID, state, listing.NbHits, int(took)); err != nil {
				s.logger.Warn("search log write failed", "error", err)
			}
		}()
	}

	return &model.SearchResponse{
		SearchID:      searchID,
		Filters:       state,
		FiltersActive: store.IsActive(),
		Cards:         cards,
		Total:         listing.NbHits,
		Page:          listing.Page,
		NbPages:       listing.NbPages,
		HitsPerPage:   listing.HitsPerPage,
		Took:          took,
	}, nil
}

// Featured returns the two home page strips: three rental and three
// sale listings scoped to the featured location
func (s *SearchService) Featured(ctx context.Context) (*model.FeaturedResponse, error) {
	startTime := time.Now()

	strip := func(purpose model.Purpose) ([]model.CardView, error) {
		state := model.DefaultFilters()
		state.Purpose = purpose
		state.LocationExternalIDs = s.featuredLocation

		listing, err := s.api.List(ctx, state, 0, 3)
		if err != nil {
			return nil, err
		}
		now := time.Now()
		cards := make([]model.CardView, len(listing.Hits))
		for i, hit := range listing.Hits {
			cards[i] = PresentListing(hit, false, now)
		}
		return cards, nil
	}

	forRent, err := strip(model.PurposeForRent)
	if err != nil {
		return nil, err
	}
	forSale, err := strip(model.PurposeForSale)
	if err != nil {
		return nil, err
	}

	return &model.FeaturedResponse{
		ForRent: forRent,
		ForSale: forSale,
		Took:    time.Since(startTime).Milliseconds(),
	}, nil
}

// Detail fetches and presents one detailed record. An upstream failure
// degrades to a placeholder view instead of breaking the page; the
// error is logged, not propagated.
func (s *SearchService) Detail(ctx context.Context, externalID string) model.DetailView {
	detail, err := s.api.Detail(ctx, externalID)
	if err != nil {
		s.logger.Error("detail fetch failed", "externalID", externalID, "error", err)
		return model.DetailView{
			ExternalID:  externalID,
			Title:       "Property information unavailable",
			Description: "Property details could not be loaded at this time.",
		}
	}
	return PresentDetail(*detail, time.Now())
}

// AutoComplete resolves a location query directly, for the stateless
// autocomplete endpoint
func (s *SearchService) AutoComplete(ctx context.Context, query string) ([]model.LocationSuggestion, error) {
	return s.api.AutoComplete(ctx, query)
}

// Submit replays a page's filter interaction and commits it: hydrate
// from the current query, apply the posted raw field values in
// canonical order, then navigate through the orchestrator
func (s *SearchService) Submit(ctx context.Context, params url.Values, req model.SubmitRequest) (*model.SubmitResponse, error) {
	urlSync := NewURLSync(s.searchPath)
	store := NewFilterStore(model.DefaultFilters())
	overlay := &overlayFlag{open: true}

	orch := NewSearchOrchestrator(store, urlSync, ParseNavigator{}, nil, nil, overlay, s.logger)
	orch.HydrateFromURL(params)

	for _, field := range Fields {
		if raw, ok := req.Filters[string(field)]; ok {
			orch.SetField(field, raw)
		}
	}

	result, err := orch.Submit(ctx, req.FromOverlay)
	resp := &model.SubmitResponse{
		TargetURL:     result.TargetURL,
		Filters:       result.Filters,
		OverlayClosed: result.OverlayClosed,
		Notification:  result.Notification,
	}
	return resp, err
}

// Feedback records a user action against a logged search. A no-op when
// logging is disabled.
func (s *SearchService) Feedback(ctx context.Context, req model.FeedbackRequest) error {
	if s.repo == nil {
		return nil
	}
	return s.repo.LogFeedback(ctx, req.SearchID, req.ExternalID, req.Action)
}

// overlayFlag adapts the Overlay interface for the stateless submit
// endpoint: closure is reported back to the client, which owns the
// actual panel.
type overlayFlag struct {
	open bool
}

func (o *overlayFlag) Close() { o.open = false }

// ParseNavigator is the server-side Navigator: it validates that the
// committed target is a well-formed relative URL. The client performs
// the actual transition.
type ParseNavigator struct{}

// Navigate implements Navigator
func (ParseNavigator) Navigate(_ context.Context, target string) error {
	_, err := url.ParseRequestURI(target)
	return err
}
