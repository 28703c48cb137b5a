package service

import (
	"testing"

	"estatehub/internal/model"
)

func TestFilterStore_Defaults(t *testing.T) {
	store := NewFilterStore(model.DefaultFilters())

	state := store.Get()
	if state.Purpose != model.PurposeForRent {
		t.Errorf("Expected default purpose for-rent, got %s", state.Purpose)
	}
	if state.MaxPrice != model.PriceCeiling {
		t.Errorf("Expected default max price %d, got %d", model.PriceCeiling, state.MaxPrice)
	}
	if state.CategoryExternalID != model.DefaultCategory {
		t.Errorf("Expected default category %d, got %d", model.DefaultCategory, state.CategoryExternalID)
	}
	if store.IsActive() {
		t.Error("Fresh store should not report active filters")
	}
}

func TestFilterStore_Set(t *testing.T) {
	tests := []struct {
		name  string
		field Field
		raw   string
		check func(t *testing.T, s model.FilterState)
	}{
		{
			name:  "valid purpose",
			field: FieldPurpose,
			raw:   "for-sale",
			check: func(t *testing.T, s model.FilterState) {
				if s.Purpose != model.PurposeForSale {
					t.Errorf("Expected for-sale, got %s", s.Purpose)
				}
			},
		},
		{
			name:  "invalid purpose falls back to default",
			field: FieldPurpose,
			raw:   "for-squatting",
			check: func(t *testing.T, s model.FilterState) {
				if s.Purpose != model.DefaultPurpose {
					t.Errorf("Expected default purpose, got %s", s.Purpose)
				}
			},
		},
		{
			name:  "invalid sort falls back to default",
			field: FieldSort,
			raw:   "alphabetical",
			check: func(t *testing.T, s model.FilterState) {
				if s.Sort != model.DefaultSort {
					t.Errorf("Expected default sort, got %s", s.Sort)
				}
			},
		},
		{
			name:  "unparseable numeric becomes zero",
			field: FieldMinPrice,
			raw:   "lots",
			check: func(t *testing.T, s model.FilterState) {
				if s.MinPrice != 0 {
					t.Errorf("Expected 0, got %d", s.MinPrice)
				}
			},
		},
		{
			name:  "negative numeric becomes zero",
			field: FieldAreaMin,
			raw:   "-500",
			check: func(t *testing.T, s model.FilterState) {
				if s.AreaMin != 0 {
					t.Errorf("Expected 0, got %d", s.AreaMin)
				}
			},
		},
		{
			name:  "price above ceiling is clamped",
			field: FieldMinPrice,
			raw:   "2000000",
			check: func(t *testing.T, s model.FilterState) {
				if s.MinPrice != model.PriceCeiling {
					t.Errorf("Expected %d, got %d", model.PriceCeiling, s.MinPrice)
				}
			},
		},
		{
			name:  "rooms above bound is clamped",
			field: FieldRoomsMin,
			raw:   "12",
			check: func(t *testing.T, s model.FilterState) {
				if s.RoomsMin != model.RoomsMax {
					t.Errorf("Expected %d, got %d", model.RoomsMax, s.RoomsMin)
				}
			},
		},
		{
			name:  "baths above bound is clamped",
			field: FieldBathsMin,
			raw:   "9",
			check: func(t *testing.T, s model.FilterState) {
				if s.BathsMin != model.BathsMax {
					t.Errorf("Expected %d, got %d", model.BathsMax, s.BathsMin)
				}
			},
		},
		{
			name:  "invalid category falls back to default",
			field: FieldCategory,
			raw:   "zero",
			check: func(t *testing.T, s model.FilterState) {
				if s.CategoryExternalID != model.DefaultCategory {
					t.Errorf("Expected %d, got %d", model.DefaultCategory, s.CategoryExternalID)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewFilterStore(model.DefaultFilters())
			state := store.Set(tt.field, tt.raw)
			tt.check(t, state)
		})
	}
}

func TestFilterStore_PriceInvariant(t *testing.T) {
	store := NewFilterStore(model.DefaultFilters())

	// Set max below current min: min follows down
	store.Set(FieldMinPrice, "200000")
	state := store.Set(FieldMaxPrice, "150000")
	if state.MinPrice != 150000 || state.MaxPrice != 150000 {
		t.Errorf("Expected 150000/150000, got %d/%d", state.MinPrice, state.MaxPrice)
	}

	// Then set min above old max: max follows up
	state = store.Set(FieldMinPrice, "300000")
	if state.MinPrice != 300000 || state.MaxPrice != 300000 {
		t.Errorf("Expected 300000/300000, got %d/%d", state.MinPrice, state.MaxPrice)
	}

	// Adversarial ordering keeps the invariant after every call
	sequences := [][2]string{
		{"500000", "100"},
		{"0", "999999"},
		{"junk", "junk"},
		{"1000000", "0"},
	}
	for _, seq := range sequences {
		store.Set(FieldMinPrice, seq[0])
		if s := store.Get(); s.MinPrice > s.MaxPrice {
			t.Fatalf("Invariant broken after min=%s: %d > %d", seq[0], s.MinPrice, s.MaxPrice)
		}
		store.Set(FieldMaxPrice, seq[1])
		if s := store.Get(); s.MinPrice > s.MaxPrice {
			t.Fatalf("Invariant broken after max=%s: %d > %d", seq[1], s.MinPrice, s.MaxPrice)
		}
	}
}

func TestFilterStore_IsActive(t *testing.T) {
	tests := []struct {
		name   string
		field  Field
		raw    string
		active bool
	}{
		{"purpose change", FieldPurpose, "for-sale", true},
		{"sort change", FieldSort, "date-desc", true},
		{"rooms change", FieldRoomsMin, "2", true},
		{"location set", FieldLocation, "5002", true},
		{"max price lowered", FieldMaxPrice, "500000", true},
		{"setting a default value", FieldRoomsMin, "0", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewFilterStore(model.DefaultFilters())
			store.Set(tt.field, tt.raw)
			if store.IsActive() != tt.active {
				t.Errorf("IsActive = %v, want %v", store.IsActive(), tt.active)
			}
		})
	}
}

func TestFilterStore_Reset(t *testing.T) {
	store := NewFilterStore(model.DefaultFilters())
	store.Set(FieldPurpose, "for-sale")
	store.Set(FieldMinPrice, "50000")
	store.Set(FieldLocation, "5002")

	state := store.Reset()
	if !state.IsDefault() {
		t.Errorf("Expected defaults after reset, got %+v", state)
	}
	if store.IsActive() {
		t.Error("Store should be inactive after reset")
	}
}
