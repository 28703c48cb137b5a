package model

// SearchResponse is returned by GET /api/v1/properties
type SearchResponse struct {
	SearchID      string      `json:"search_id"`
	Filters       FilterState `json:"filters"`
	FiltersActive bool        `json:"filters_active"`
	Cards         []CardView  `json:"cards"`
	Total         int         `json:"total"`
	Page          int         `json:"page"`
	NbPages       int         `json:"nb_pages"`
	HitsPerPage   int         `json:"hits_per_page"`
	Took          int64       `json:"took_ms"`
}

// FeaturedResponse is returned by GET /api/v1/featured: the two home
// page strips
type FeaturedResponse struct {
	ForRent []CardView `json:"for_rent"`
	ForSale []CardView `json:"for_sale"`
	Took    int64      `json:"took_ms"`
}

// SubmitRequest is the body of POST /api/v1/search/submit. Filter
// values arrive as raw strings exactly as typed; validation and
// clamping happen server-side.
type SubmitRequest struct {
	FromOverlay bool              `json:"from_overlay"`
	Filters     map[string]string `json:"filters"`
}

// SubmitResponse carries the navigation target of a committed search
// along with the transient feedback notification
type SubmitResponse struct {
	TargetURL     string       `json:"target_url"`
	Filters       FilterState  `json:"filters"`
	OverlayClosed bool         `json:"overlay_closed"`
	Notification  Notification `json:"notification"`
}

// FeedbackRequest represents a user action on a search result
type FeedbackRequest struct {
	SearchID   string `json:"search_id" binding:"required"`
	ExternalID string `json:"external_id" binding:"required"`
	Action     string `json:"action" binding:"required"` // click, contact, view_details
}

// FeedbackResponse represents feedback response
type FeedbackResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}
