package service

import (
	"context"
	"net/url"
	"strconv"

	"estatehub/internal/model"
)

// Navigator performs the client-side navigation a committed search
// resolves to. Implementations surface failures as errors; they must
// not mutate filter state.
type Navigator interface {
	Navigate(ctx context.Context, target string) error
}

// URLSync is the bidirectional adapter between the filter store and
// the page's navigable query string. Hydrate runs exactly once per
// page entry, before any interaction; Commit runs only on explicit
// submit.
type URLSync struct {
	path string
}

// NewURLSync creates a URLSync that commits to the given path
// (typically "/search")
func NewURLSync(path string) *URLSync {
	return &URLSync{path: path}
}

// Hydrate builds a FilterState from incoming query parameters. Absent
// or unparseable parameters resolve to the documented defaults; unknown
// parameters are ignored. The price invariant is re-established with
// the upper bound as the anchor.
func (u *URLSync) Hydrate(params url.Values) model.FilterState {
	state := model.DefaultFilters()

	if raw := params.Get(string(FieldPurpose)); raw != "" {
		if p := model.Purpose(raw); p.Valid() {
			state.Purpose = p
		}
	}
	if raw := params.Get(string(FieldSort)); raw != "" {
		if s := model.SortOrder(raw); s.Valid() {
			state.Sort = s
		}
	}

	state.MinPrice = hydrateInt(params, FieldMinPrice, model.DefaultMinPrice, model.PriceFloor, model.PriceCeiling)
	state.MaxPrice = hydrateInt(params, FieldMaxPrice, model.DefaultMaxPrice, model.PriceFloor, model.PriceCeiling)
	state.RoomsMin = hydrateInt(params, FieldRoomsMin, model.DefaultRoomsMin, 0, model.RoomsMax)
	state.BathsMin = hydrateInt(params, FieldBathsMin, model.DefaultBathsMin, 0, model.BathsMax)
	state.AreaMin = hydrateInt(params, FieldAreaMin, model.DefaultAreaMin, 0, model.PriceCeiling)
	state.CategoryExternalID = hydrateInt(params, FieldCategory, model.DefaultCategory, 1, 1<<31-1)
	state.LocationExternalIDs = params.Get(string(FieldLocation))

	if state.MinPrice > state.MaxPrice {
		state.MinPrice = state.MaxPrice
	}

	return state
}

// Commit serializes the state's fields as query parameters merged over
// the current query, so parameters not owned by the filter state
// survive the navigation.
func (u *URLSync) Commit(state model.FilterState, current url.Values) url.Values {
	merged := url.Values{}
	for key, vals := range current {
		if !ownedParam(key) {
			merged[key] = append([]string(nil), vals...)
		}
	}

	merged.Set(string(FieldPurpose), string(state.Purpose))
	merged.Set(string(FieldMinPrice), strconv.Itoa(state.MinPrice))
	merged.Set(string(FieldMaxPrice), strconv.Itoa(state.MaxPrice))
	merged.Set(string(FieldRoomsMin), strconv.Itoa(state.RoomsMin))
	merged.Set(string(FieldBathsMin), strconv.Itoa(state.BathsMin))
	merged.Set(string(FieldAreaMin), strconv.Itoa(state.AreaMin))
	merged.Set(string(FieldCategory), strconv.Itoa(state.CategoryExternalID))
	merged.Set(string(FieldSort), string(state.Sort))
	if state.LocationExternalIDs != "" {
		merged.Set(string(FieldLocation), state.LocationExternalIDs)
	}

	return merged
}

// TargetURL renders the committed navigation target. Encode sorts the
// keys, so identical states always produce identical URLs.
func (u *URLSync) TargetURL(state model.FilterState, current url.Values) string {
	return u.path + "?" + u.Commit(state, current).Encode()
}

func hydrateInt(params url.Values, field Field, def, lo, hi int) int {
	raw := params.Get(string(field))
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < lo || v > hi {
		return def
	}
	return v
}

func ownedParam(key string) bool {
	for _, f := range Fields {
		if key == string(f) {
			return true
		}
	}
	return false
}
