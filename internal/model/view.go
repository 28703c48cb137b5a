package model

// ImageState is the display state of a card image slot
type ImageState string

const (
	ImagePending  ImageState = "pending"
	ImageLoaded   ImageState = "loaded"
	ImageFallback ImageState = "fallback"
)

// BadgeKind identifies a card badge
type BadgeKind string

const (
	BadgeVerified BadgeKind = "verified"
	BadgeFeatured BadgeKind = "featured"
	BadgeNew      BadgeKind = "new"
	BadgePurpose  BadgeKind = "purpose"
)

// Badge is one visible card badge. Badges are emitted in a fixed order:
// verified, featured, new, purpose.
type Badge struct {
	Kind  BadgeKind `json:"kind"`
	Label string    `json:"label"`
}

// CardView is the derived presentation of one listing card. It is
// computed per render from the raw record and the current time, never
// stored.
type CardView struct {
	Placeholder      bool    `json:"placeholder"`
	ExternalID       string  `json:"externalID,omitempty"`
	Title            string  `json:"title,omitempty"`
	PriceLabel       string  `json:"priceLabel,omitempty"`
	Badges           []Badge `json:"badges,omitempty"`
	Rooms            int     `json:"rooms,omitempty"`
	RoomsLabel       string  `json:"roomsLabel,omitempty"`
	Baths            int     `json:"baths,omitempty"`
	BathsLabel       string  `json:"bathsLabel,omitempty"`
	AreaLabel        string  `json:"areaLabel,omitempty"`
	CoverPhotoURL    string  `json:"coverPhotoUrl,omitempty"`
	IsFeatured       bool    `json:"isFeatured,omitempty"`
	IsNew            bool    `json:"isNew,omitempty"`
	FurnishingStatus string  `json:"furnishingStatus,omitempty"`
	AgencyName       string  `json:"agencyName,omitempty"`
	AgencyLogoURL    string  `json:"agencyLogoUrl,omitempty"`
}

// DetailView is the derived presentation of a property detail page
type DetailView struct {
	ExternalID       string   `json:"externalID"`
	Title            string   `json:"title"`
	PriceLabel       string   `json:"priceLabel"`
	Badges           []Badge  `json:"badges,omitempty"`
	Rooms            int      `json:"rooms"`
	Baths            int      `json:"baths"`
	AreaLabel        string   `json:"areaLabel"`
	Description      string   `json:"description,omitempty"`
	Type             string   `json:"type,omitempty"`
	FurnishingStatus string   `json:"furnishingStatus,omitempty"`
	Amenities        []string `json:"amenities,omitempty"`
	PhotoURLs        []string `json:"photoUrls,omitempty"`
	LocationLabel    string   `json:"locationLabel,omitempty"`
	AgencyName       string   `json:"agencyName,omitempty"`
	AgencyLogoURL    string   `json:"agencyLogoUrl,omitempty"`
	PhoneLink        string   `json:"phoneLink,omitempty"`
	WhatsAppLink     string   `json:"whatsAppLink,omitempty"`
}

// NotificationStatus is the severity of a transient notification
type NotificationStatus string

const (
	NotifySuccess NotificationStatus = "success"
	NotifyError   NotificationStatus = "error"
)

// Notification is a transient, dismissible user-facing message
type Notification struct {
	Status      NotificationStatus `json:"status"`
	Title       string             `json:"title"`
	Description string             `json:"description,omitempty"`
	DurationMS  int                `json:"duration_ms"`
	Closable    bool               `json:"closable"`
}
