package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"estatehub/internal/model"
	"estatehub/internal/service"
)

// SearchHandler handles search-related HTTP requests
type SearchHandler struct {
	searchService *service.SearchService
	defaultLimit  int
	maxLimit      int
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(searchService *service.SearchService, defaultLimit, maxLimit int) *SearchHandler {
	return &SearchHandler{
		searchService: searchService,
		defaultLimit:  defaultLimit,
		maxLimit:      maxLimit,
	}
}

// Search handles GET /api/v1/properties. The request's own query
// string is the addressable filter state; it is hydrated, queried
// against the upstream and returned as presented cards.
func (h *SearchHandler) Search(c *gin.Context) {
	params := c.Request.URL.Query()

	page := 0
	if v, err := strconv.Atoi(params.Get("page")); err == nil && v > 0 {
		page = v
	}

	hitsPerPage := h.defaultLimit
	if v, err := strconv.Atoi(params.Get("hitsPerPage")); err == nil && v > 0 {
		hitsPerPage = v
	}
	if hitsPerPage > h.maxLimit {
		hitsPerPage = h.maxLimit
	}

	response, err := h.searchService.Search(c.Request.Context(), params, page, hitsPerPage)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Search failed: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, response)
}

// Featured handles GET /api/v1/featured
func (h *SearchHandler) Featured(c *gin.Context) {
	response, err := h.searchService.Featured(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Featured listings failed: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, response)
}

// Detail handles GET /api/v1/properties/:externalID. The view degrades
// to a placeholder when the upstream record cannot be loaded, so this
// endpoint never fails the page.
func (h *SearchHandler) Detail(c *gin.Context) {
	externalID := c.Param("externalID")
	if externalID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing external ID"})
		return
	}

	view := h.searchService.Detail(c.Request.Context(), externalID)
	c.JSON(http.StatusOK, view)
}

// AutoComplete handles GET /api/v1/auto-complete
func (h *SearchHandler) AutoComplete(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing query parameter"})
		return
	}

	hits, err := h.searchService.AutoComplete(c.Request.Context(), query)
	if err != nil {
		// Lookup failures degrade to an empty suggestion list; the
		// search form stays usable with manual text.
		c.JSON(http.StatusOK, model.AutoCompleteResponse{Hits: []model.LocationSuggestion{}})
		return
	}

	c.JSON(http.StatusOK, model.AutoCompleteResponse{Hits: hits})
}

// Submit handles POST /api/v1/search/submit: it commits the posted
// filter values over the request's query string and returns the
// navigation target plus the transient notification
func (h *SearchHandler) Submit(c *gin.Context) {
	var req model.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	response, err := h.searchService.Submit(c.Request.Context(), c.Request.URL.Query(), req)
	if err != nil {
		// Filter state survives a failed commit; the client keeps it
		// for retry along with the error notification.
		c.JSON(http.StatusBadGateway, response)
		return
	}

	c.JSON(http.StatusOK, response)
}
