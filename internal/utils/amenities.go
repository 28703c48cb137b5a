package utils

import "strings"

// Canonical display labels for amenity names that arrive from the
// upstream API in inconsistent spellings
var amenityLabels = map[string]string{
	"pool":             "Swimming Pool",
	"swimming pool":    "Swimming Pool",
	"shared pool":      "Swimming Pool",
	"gym":              "Gym",
	"gymnasium":        "Gym",
	"fitness":          "Gym",
	"fitness center":   "Gym",
	"aircon":           "Air Conditioning",
	"air conditioning": "Air Conditioning",
	"central a/c":      "Air Conditioning",
	"a/c":              "Air Conditioning",
	"balcony":          "Balcony",
	"terrace":          "Balcony",
	"balcony or terrace": "Balcony",
	"parking":          "Parking",
	"covered parking":  "Parking",
	"parking spaces":   "Parking",
	"security":         "Security",
	"24 hours concierge": "Security",
	"maids room":       "Maids Room",
	"maid's room":      "Maids Room",
	"furnished":        "Furnished",
	"pets allowed":     "Pets Allowed",
	"view of water":    "Waterfront View",
	"sea view":         "Waterfront View",
}

// NormalizeAmenity maps an upstream amenity name to its canonical
// display label; unrecognized names pass through trimmed.
func NormalizeAmenity(name string) string {
	trimmed := strings.TrimSpace(name)
	if label, ok := amenityLabels[strings.ToLower(trimmed)]; ok {
		return label
	}
	return trimmed
}

// NormalizeAmenities maps a full amenity list to display labels,
// dropping empties and duplicates while preserving order.
func NormalizeAmenities(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, name := range names {
		label := NormalizeAmenity(name)
		if label == "" || seen[label] {
			continue
		}
		seen[label] = true
		out = append(out, label)
	}
	return out
}
