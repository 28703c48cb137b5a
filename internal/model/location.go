package model

import "strings"

// LocationLevel is one ancestor entry in a location hierarchy,
// outermost first (country, emirate, city, community, ...)
type LocationLevel struct {
	ID         int64  `json:"id,omitempty"`
	Name       string `json:"name"`
	ExternalID string `json:"externalID,omitempty"`
	Level      int    `json:"level,omitempty"`
}

// LocationSuggestion is a read-only hit of the upstream /auto-complete
// endpoint. It is owned by the location resolver and never mutated.
type LocationSuggestion struct {
	ID         int64           `json:"id"`
	Name       string          `json:"name"`
	ExternalID string          `json:"externalID"`
	Hierarchy  []LocationLevel `json:"hierarchy,omitempty"`
}

// Breadcrumb joins the hierarchy names into a display label,
// outermost first ("Dubai, Dubai Marina")
func (s LocationSuggestion) Breadcrumb() string {
	if len(s.Hierarchy) == 0 {
		return s.Name
	}
	names := make([]string, 0, len(s.Hierarchy))
	for _, level := range s.Hierarchy {
		if level.Name != "" {
			names = append(names, level.Name)
		}
	}
	return strings.Join(names, ", ")
}

// AutoCompleteResponse is the envelope of the upstream /auto-complete endpoint
type AutoCompleteResponse struct {
	Hits []LocationSuggestion `json:"hits"`
}
