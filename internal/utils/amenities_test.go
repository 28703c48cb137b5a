package utils

import (
	"reflect"
	"testing"
)

func TestNormalizeAmenity(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Swimming Pool", "Swimming Pool"},
		{"shared pool", "Swimming Pool"},
		{"GYMNASIUM", "Gym"},
		{"Central A/C", "Air Conditioning"},
		{"  covered parking  ", "Parking"},
		{"Rooftop Cinema", "Rooftop Cinema"}, // unrecognized passes through
		{"", ""},
	}

	for _, tt := range tests {
		if got := NormalizeAmenity(tt.input); got != tt.expected {
			t.Errorf("NormalizeAmenity(%q): expected %q, got %q", tt.input, tt.expected, got)
		}
	}
}

func TestNormalizeAmenities(t *testing.T) {
	input := []string{"pool", "Swimming Pool", "gym", "", "fitness center", "Balcony", "sea view"}
	expected := []string{"Swimming Pool", "Gym", "Balcony", "Waterfront View"}

	if got := NormalizeAmenities(input); !reflect.DeepEqual(got, expected) {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

func TestNormalizeAmenitiesPreservesOrder(t *testing.T) {
	input := []string{"security", "maid's room", "pets allowed"}
	expected := []string{"Security", "Maids Room", "Pets Allowed"}

	if got := NormalizeAmenities(input); !reflect.DeepEqual(got, expected) {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}
