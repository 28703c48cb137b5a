package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Currency is the display currency of the upstream listings API
const Currency = "AED"

var magnitudeSuffixes = []string{"", "K", "M", "B", "T"}

// Abbreviate shortens a number with 1000-based magnitude suffixes,
// keeping two to three significant digits: 1250000 -> "1.25M",
// 999 -> "999", 999999 -> "1M".
func Abbreviate(value float64) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return "0"
	}

	negative := value < 0
	abs := math.Abs(value)

	tier := 0
	for abs >= 1000 && tier < len(magnitudeSuffixes)-1 {
		abs /= 1000
		tier++
	}

	var digits int
	switch {
	case abs >= 100:
		digits = 0
	case abs >= 10:
		digits = 1
	default:
		digits = 2
	}

	rounded, _ := strconv.ParseFloat(strconv.FormatFloat(abs, 'f', digits, 64), 64)

	// Rounding can overflow into the next magnitude (999999 -> 1000K)
	if rounded >= 1000 && tier < len(magnitudeSuffixes)-1 {
		rounded /= 1000
		tier++
		digits = 2
	}

	s := strconv.FormatFloat(rounded, 'f', digits, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}

	if negative {
		s = "-" + s
	}
	return s + magnitudeSuffixes[tier]
}

// FormatPrice renders a listing price label: "AED 1.25M", with the rent
// frequency appended when present ("AED 85K/yearly")
func FormatPrice(price float64, rentFrequency string) string {
	label := Currency + " " + Abbreviate(price)
	if rentFrequency != "" {
		label += "/" + rentFrequency
	}
	return label
}

// FormatArea renders an area label in square feet: "1.2K sqft"
func FormatArea(area float64) string {
	return Abbreviate(area) + " sqft"
}

// CountLabel pluralizes a counted feature: "1 Bed", "3 Beds"
func CountLabel(count int, singular string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %ss", count, singular)
}
