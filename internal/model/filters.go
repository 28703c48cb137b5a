package model

// Purpose is the listing purpose a search is scoped to
type Purpose string

const (
	PurposeForRent Purpose = "for-rent"
	PurposeForSale Purpose = "for-sale"
)

// Valid reports whether p is one of the known purposes
func (p Purpose) Valid() bool {
	return p == PurposeForRent || p == PurposeForSale
}

// SortOrder controls result ordering in the upstream listings API
type SortOrder string

const (
	SortPriceDesc SortOrder = "price-desc"
	SortPriceAsc  SortOrder = "price-asc"
	SortDateDesc  SortOrder = "date-desc"
)

// Valid reports whether s is one of the known sort orders
func (s SortOrder) Valid() bool {
	return s == SortPriceDesc || s == SortPriceAsc || s == SortDateDesc
}

// Domain bounds for numeric filter fields
const (
	PriceFloor   = 0
	PriceCeiling = 1_000_000
	RoomsMax     = 6
	BathsMax     = 5
)

// Default filter values. Absence of a query parameter, or an unparseable
// value, always resolves to these.
const (
	DefaultPurpose  = PurposeForRent
	DefaultSort     = SortPriceDesc
	DefaultMinPrice = 0
	DefaultMaxPrice = PriceCeiling
	DefaultRoomsMin = 0
	DefaultBathsMin = 0
	DefaultAreaMin  = 0
	DefaultCategory = 4 // apartment
)

// FilterState is the canonical value object for one search context.
// One instance is live at a time; it is hydrated from the URL on page
// entry and serialized back into the URL on submit.
type FilterState struct {
	Purpose             Purpose   `json:"purpose"`
	MinPrice            int       `json:"minPrice"`
	MaxPrice            int       `json:"maxPrice"`
	RoomsMin            int       `json:"roomsMin"`
	BathsMin            int       `json:"bathsMin"`
	AreaMin             int       `json:"areaMin"`
	CategoryExternalID  int       `json:"categoryExternalID"`
	Sort                SortOrder `json:"sort"`
	LocationExternalIDs string    `json:"locationExternalIDs"`
}

// DefaultFilters returns a FilterState with every field at its
// documented default.
func DefaultFilters() FilterState {
	return FilterState{
		Purpose:             DefaultPurpose,
		MinPrice:            DefaultMinPrice,
		MaxPrice:            DefaultMaxPrice,
		RoomsMin:            DefaultRoomsMin,
		BathsMin:            DefaultBathsMin,
		AreaMin:             DefaultAreaMin,
		CategoryExternalID:  DefaultCategory,
		Sort:                DefaultSort,
		LocationExternalIDs: "",
	}
}

// IsDefault reports whether every field matches its documented default.
func (f FilterState) IsDefault() bool {
	return f == DefaultFilters()
}
