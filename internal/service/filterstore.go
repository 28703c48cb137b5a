package service

import (
	"strconv"

	"estatehub/internal/model"
)

// Field identifies one FilterState field for FilterStore.Set. The
// values double as the owned query parameter names.
type Field string

const (
	FieldPurpose  Field = "purpose"
	FieldMinPrice Field = "minPrice"
	FieldMaxPrice Field = "maxPrice"
	FieldRoomsMin Field = "roomsMin"
	FieldBathsMin Field = "bathsMin"
	FieldAreaMin  Field = "areaMin"
	FieldCategory Field = "categoryExternalID"
	FieldSort     Field = "sort"
	FieldLocation Field = "locationExternalIDs"
)

// Fields lists every owned field in serialization order
var Fields = []Field{
	FieldPurpose,
	FieldMinPrice,
	FieldMaxPrice,
	FieldRoomsMin,
	FieldBathsMin,
	FieldAreaMin,
	FieldCategory,
	FieldSort,
	FieldLocation,
}

// FilterStore owns the canonical filter values of one search context.
// It validates and clamps on every Set and never triggers navigation
// itself; serializing to the URL is URLSync's job. A store is owned by
// exactly one orchestrator, so no locking is needed.
type FilterStore struct {
	state model.FilterState
}

// NewFilterStore creates a store seeded with the given state
func NewFilterStore(initial model.FilterState) *FilterStore {
	return &FilterStore{state: initial}
}

// Get returns the current filter snapshot
func (s *FilterStore) Get() model.FilterState {
	return s.state
}

// Reset restores every field to its documented default
func (s *FilterStore) Reset() model.FilterState {
	s.state = model.DefaultFilters()
	return s.state
}

// IsActive reports whether any field differs from its documented
// default. Purpose and sort count against their non-empty defaults.
// Display-only; never used for query construction.
func (s *FilterStore) IsActive() bool {
	return !s.state.IsDefault()
}

// Set applies one raw field value, validating and clamping per the
// field's domain. Unparseable numeric input silently becomes zero
// rather than an error. When a price bound crosses the other, the
// field being set wins and the other bound follows, so
// minPrice <= maxPrice holds after every call.
func (s *FilterStore) Set(field Field, raw string) model.FilterState {
	switch field {
	case FieldPurpose:
		p := model.Purpose(raw)
		if !p.Valid() {
			p = model.DefaultPurpose
		}
		s.state.Purpose = p

	case FieldSort:
		order := model.SortOrder(raw)
		if !order.Valid() {
			order = model.DefaultSort
		}
		s.state.Sort = order

	case FieldMinPrice:
		v := clampInt(parseNumeric(raw), model.PriceFloor, model.PriceCeiling)
		s.state.MinPrice = v
		if s.state.MaxPrice < v {
			s.state.MaxPrice = v
		}

	case FieldMaxPrice:
		v := clampInt(parseNumeric(raw), model.PriceFloor, model.PriceCeiling)
		s.state.MaxPrice = v
		if s.state.MinPrice > v {
			s.state.MinPrice = v
		}

	case FieldRoomsMin:
		s.state.RoomsMin = clampInt(parseNumeric(raw), 0, model.RoomsMax)

	case FieldBathsMin:
		s.state.BathsMin = clampInt(parseNumeric(raw), 0, model.BathsMax)

	case FieldAreaMin:
		s.state.AreaMin = clampInt(parseNumeric(raw), 0, model.PriceCeiling)

	case FieldCategory:
		// The taxonomy id is opaque; zero is not a valid entry, so a
		// bad value falls back to the default category instead.
		v, err := strconv.Atoi(raw)
		if err != nil || v <= 0 {
			v = model.DefaultCategory
		}
		s.state.CategoryExternalID = v

	case FieldLocation:
		// Set only through explicit suggestion selection; raw text
		// never reaches this field.
		s.state.LocationExternalIDs = raw
	}

	return s.state
}

// parseNumeric mirrors the lenient numeric handling of the filter
// form: anything unparseable or negative collapses to zero.
func parseNumeric(raw string) int {
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
