// Package upstream is the typed client for the remote real-estate
// listings API consumed by the portal. The portal never stores
// listings itself; every page render goes through this client.
package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/jellydator/ttlcache/v3"

	"estatehub/internal/model"
)

// Config holds the upstream API endpoint and credentials
type Config struct {
	BaseURL         string
	APIKey          string
	APIHost         string
	Timeout         time.Duration
	AutoCompleteTTL time.Duration
}

// Client talks to the listings API. Autocomplete responses are cached
// for a short TTL because the same prefixes get typed over and over.
type Client struct {
	baseURL    string
	apiKey     string
	apiHost    string
	httpClient *http.Client
	logger     *slog.Logger
	acCache    *ttlcache.Cache[string, []model.LocationSuggestion]
}

// NewClient creates an upstream client. Call Close to release the
// cache janitor.
func NewClient(cfg Config, logger *slog.Logger) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.AutoCompleteTTL <= 0 {
		cfg.AutoCompleteTTL = 5 * time.Minute
	}
	if logger == nil {
		logger = slog.Default()
	}

	cache := ttlcache.New(
		ttlcache.WithTTL[string, []model.LocationSuggestion](cfg.AutoCompleteTTL),
		ttlcache.WithDisableTouchOnHit[string, []model.LocationSuggestion](),
	)
	go cache.Start()

	return &Client{
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		apiHost:    cfg.APIHost,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     logger,
		acCache:    cache,
	}
}

// Close stops the autocomplete cache
func (c *Client) Close() {
	c.acCache.Stop()
}

// List fetches a page of listings matching the filter state via
// GET /properties/list
func (c *Client) List(ctx context.Context, state model.FilterState, page, hitsPerPage int) (*model.ListResponse, error) {
	params := url.Values{}
	params.Set("purpose", string(state.Purpose))
	params.Set("minPrice", strconv.Itoa(state.MinPrice))
	params.Set("maxPrice", strconv.Itoa(state.MaxPrice))
	params.Set("roomsMin", strconv.Itoa(state.RoomsMin))
	params.Set("bathsMin", strconv.Itoa(state.BathsMin))
	params.Set("areaMin", strconv.Itoa(state.AreaMin))
	params.Set("categoryExternalID", strconv.Itoa(state.CategoryExternalID))
	params.Set("sort", string(state.Sort))
	if state.LocationExternalIDs != "" {
		params.Set("locationExternalIDs", state.LocationExternalIDs)
	}
	params.Set("page", strconv.Itoa(page))
	params.Set("hitsPerPage", strconv.Itoa(hitsPerPage))

	var resp model.ListResponse
	if err := c.getJSON(ctx, "/properties/list", params, &resp); err != nil {
		return nil, fmt.Errorf("list properties: %w", err)
	}
	return &resp, nil
}

// Detail fetches a single detailed record via GET /properties/detail
func (c *Client) Detail(ctx context.Context, externalID string) (*model.DetailedListing, error) {
	params := url.Values{}
	params.Set("externalID", externalID)

	var resp model.DetailedListing
	if err := c.getJSON(ctx, "/properties/detail", params, &resp); err != nil {
		return nil, fmt.Errorf("property detail %s: %w", externalID, err)
	}
	return &resp, nil
}

// AutoComplete resolves free-text location input into suggestions via
// GET /auto-complete. Its signature matches service.LookupFunc so the
// location resolver can consume it directly.
func (c *Client) AutoComplete(ctx context.Context, query string) ([]model.LocationSuggestion, error) {
	if item := c.acCache.Get(query); item != nil {
		return item.Value(), nil
	}

	params := url.Values{}
	params.Set("query", query)

	var resp model.AutoCompleteResponse
	if err := c.getJSON(ctx, "/auto-complete", params, &resp); err != nil {
		return nil, fmt.Errorf("auto-complete %q: %w", query, err)
	}

	c.acCache.Set(query, resp.Hits, ttlcache.DefaultTTL)
	return resp.Hits, nil
}

// getJSON performs a GET against the upstream and decodes the JSON
// body into out
func (c *Client) getJSON(ctx context.Context, path string, params url.Values, out any) error {
	target := c.baseURL + path + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("X-RapidAPI-Key", c.apiKey)
	}
	if c.apiHost != "" {
		req.Header.Set("X-RapidAPI-Host", c.apiHost)
	}

	c.logger.Debug("upstream request", "path", path)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("perform request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("upstream returned status %d: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
