package service

import (
	"strings"
	"time"

	"estatehub/internal/model"
	"estatehub/internal/utils"
)

// DefaultImageURL is the fixed substitute shown when a listing's cover
// photo is missing or fails to decode
const DefaultImageURL = "/static/images/house.jpg"

const (
	// Listings scoring strictly above this are badged Featured
	featuredScoreThreshold = 80
	// Listings created within this window (inclusive) are badged New
	newListingWindow = 7 * 24 * time.Hour
)

// PresentListing derives the visible card state for one listing. It is
// a pure function of the record, the loading flag and the wall clock;
// derived flags are recomputed every render and never cached.
//
// While isLoading is set the card carries no data-derived fields at
// all, so a renderer can only show structural placeholders.
func PresentListing(l model.ListingSummary, isLoading bool, now time.Time) model.CardView {
	if isLoading {
		return model.CardView{Placeholder: true}
	}

	view := model.CardView{
		ExternalID:       l.ExternalID,
		Title:            l.Title,
		PriceLabel:       utils.FormatPrice(l.Price, l.RentFrequency),
		Rooms:            l.Rooms,
		RoomsLabel:       utils.CountLabel(l.Rooms, "Bed"),
		Baths:            l.Baths,
		BathsLabel:       utils.CountLabel(l.Baths, "Bath"),
		AreaLabel:        utils.FormatArea(l.Area),
		IsFeatured:       l.Score > featuredScoreThreshold,
		IsNew:            isNewListing(l.CreatedTime(), now),
		FurnishingStatus: l.FurnishingStatus,
	}
	if l.CoverPhoto != nil {
		view.CoverPhotoURL = l.CoverPhoto.URL
	}
	if l.Agency != nil {
		view.AgencyName = l.Agency.Name
		if l.Agency.Logo != nil {
			view.AgencyLogoURL = l.Agency.Logo.URL
		}
	}
	view.Badges = badgeSet(l.IsVerified, view.IsFeatured, view.IsNew, l.Purpose)
	return view
}

// PresentDetail derives the detail page view. Missing upstream fields
// degrade to zero values; nothing in here can fail the render path.
func PresentDetail(d model.DetailedListing, now time.Time) model.DetailView {
	view := model.DetailView{
		ExternalID:       d.ExternalID,
		Title:            d.Title,
		PriceLabel:       utils.FormatPrice(d.Price, d.RentFrequency),
		Rooms:            d.Rooms,
		Baths:            d.Baths,
		AreaLabel:        utils.FormatArea(d.Area),
		Description:      d.Description,
		Type:             d.Type,
		FurnishingStatus: d.FurnishingStatus,
	}

	isFeatured := d.Score > featuredScoreThreshold
	view.Badges = badgeSet(d.IsVerified, isFeatured, isNewListing(d.CreatedTime(), now), d.Purpose)

	if len(d.Amenities) > 0 {
		names := make([]string, len(d.Amenities))
		for i, a := range d.Amenities {
			names[i] = a.Text
		}
		view.Amenities = utils.NormalizeAmenities(names)
	}

	for _, p := range d.Photos {
		if p.URL != "" {
			view.PhotoURLs = append(view.PhotoURLs, p.URL)
		}
	}

	if len(d.Location) > 0 {
		names := make([]string, 0, len(d.Location))
		for _, level := range d.Location {
			if level.Name != "" {
				names = append(names, level.Name)
			}
		}
		view.LocationLabel = strings.Join(names, ", ")
	}

	if d.Agency != nil {
		view.AgencyName = d.Agency.Name
		if d.Agency.Logo != nil {
			view.AgencyLogoURL = d.Agency.Logo.URL
		}
	}

	if d.Phone != nil {
		number := d.Phone.Mobile
		if number == "" {
			number = d.Phone.Phone
		}
		if digits := digitsOnly(number); digits != "" {
			view.PhoneLink = "tel:" + digits
			view.WhatsAppLink = "https://wa.me/" + digits
		}
	}

	return view
}

// badgeSet builds the card badges in their fixed order: verified,
// featured, new, purpose. Absent conditions are omitted, never
// reordered.
func badgeSet(verified, featured, isNew bool, purpose model.Purpose) []model.Badge {
	var badges []model.Badge
	if verified {
		badges = append(badges, model.Badge{Kind: model.BadgeVerified, Label: "Verified"})
	}
	if featured {
		badges = append(badges, model.Badge{Kind: model.BadgeFeatured, Label: "Featured"})
	}
	if isNew {
		badges = append(badges, model.Badge{Kind: model.BadgeNew, Label: "New"})
	}
	switch purpose {
	case model.PurposeForRent:
		badges = append(badges, model.Badge{Kind: model.BadgePurpose, Label: "Rent"})
	case model.PurposeForSale:
		badges = append(badges, model.Badge{Kind: model.BadgePurpose, Label: "Sale"})
	}
	return badges
}

// isNewListing reports whether a listing was created within the new
// window. The boundary is inclusive: exactly seven days old still
// counts.
func isNewListing(createdAt, now time.Time) bool {
	if createdAt.IsZero() || createdAt.Unix() == 0 {
		return false
	}
	age := now.Sub(createdAt)
	return age >= 0 && age <= newListingWindow
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// CardImage tracks the image display state of one card slot. The slot
// may be reused for different listings, so binding a new external ID
// resets the state to pending; a previous listing's loaded or fallback
// state never leaks onto the next one.
type CardImage struct {
	externalID string
	state      model.ImageState
}

// NewCardImage returns a tracker in the pending state
func NewCardImage() *CardImage {
	return &CardImage{state: model.ImagePending}
}

// Bind associates the slot with a listing. A changed external ID
// resets to pending; a listing with no cover photo goes straight to
// fallback.
func (c *CardImage) Bind(externalID, coverURL string) {
	if externalID != c.externalID {
		c.externalID = externalID
		c.state = model.ImagePending
	}
	if c.state == model.ImagePending && coverURL == "" {
		c.state = model.ImageFallback
	}
}

// MarkLoaded records a successful decode of the primary photo. The
// transition is one-way: once settled, further events are ignored.
func (c *CardImage) MarkLoaded() {
	if c.state == model.ImagePending {
		c.state = model.ImageLoaded
	}
}

// MarkFailed records a decode error, substituting the default image
func (c *CardImage) MarkFailed() {
	if c.state == model.ImagePending {
		c.state = model.ImageFallback
	}
}

// State returns the current image state
func (c *CardImage) State() model.ImageState {
	return c.state
}

// Settled reports whether the slot counts as loaded for layout
// purposes; a fallback is settled even though it records the
// substitution.
func (c *CardImage) Settled() bool {
	return c.state != model.ImagePending
}

// DisplayURL resolves the URL the slot should render: the cover photo,
// or the fixed default when the state fell back or no cover exists.
func (c *CardImage) DisplayURL(coverURL string) string {
	if c.state == model.ImageFallback || coverURL == "" {
		return DefaultImageURL
	}
	return coverURL
}
