package model

import "time"

// Photo is an upstream-hosted image reference
type Photo struct {
	ID  int64  `json:"id,omitempty"`
	URL string `json:"url"`
}

// Agency represents the listing agency block of an upstream record
type Agency struct {
	Name string `json:"name"`
	Logo *Photo `json:"logo,omitempty"`
}

// PhoneNumber holds the contact numbers of a detailed listing
type PhoneNumber struct {
	Mobile string `json:"mobile,omitempty"`
	Phone  string `json:"phone,omitempty"`
}

// Amenity is a single amenity entry of a detailed listing
type Amenity struct {
	Text string `json:"text"`
}

// ListingSummary is one hit of the upstream /properties/list response.
// All fields are read-only input; missing optional fields degrade to
// their zero values rather than failing the render path.
type ListingSummary struct {
	ID               int64   `json:"id"`
	ExternalID       string  `json:"externalID"`
	Title            string  `json:"title"`
	Purpose          Purpose `json:"purpose"`
	Price            float64 `json:"price"`
	RentFrequency    string  `json:"rentFrequency,omitempty"`
	Rooms            int     `json:"rooms"`
	Baths            int     `json:"baths"`
	Area             float64 `json:"area"`
	Score            float64 `json:"score"`
	CreatedAt        int64   `json:"createdAt"` // unix seconds
	IsVerified       bool    `json:"isVerified"`
	FurnishingStatus string  `json:"furnishingStatus,omitempty"`
	CoverPhoto       *Photo  `json:"coverPhoto,omitempty"`
	Agency           *Agency `json:"agency,omitempty"`
}

// CreatedTime returns the listing creation time as a time.Time
func (l ListingSummary) CreatedTime() time.Time {
	return time.Unix(l.CreatedAt, 0)
}

// DetailedListing is the upstream /properties/detail response
type DetailedListing struct {
	ListingSummary
	Description string          `json:"description,omitempty"`
	Type        string          `json:"type,omitempty"`
	Amenities   []Amenity       `json:"amenities,omitempty"`
	Photos      []Photo         `json:"photos,omitempty"`
	Phone       *PhoneNumber    `json:"phoneNumber,omitempty"`
	ContactName string          `json:"contactName,omitempty"`
	Location    []LocationLevel `json:"location,omitempty"`
}

// ListResponse is the envelope of the upstream /properties/list endpoint
type ListResponse struct {
	Hits        []ListingSummary `json:"hits"`
	NbHits      int              `json:"nbHits"`
	Page        int              `json:"page"`
	NbPages     int              `json:"nbPages"`
	HitsPerPage int              `json:"hitsPerPage"`
}
