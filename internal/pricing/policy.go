// internal/pricing/policy.go
package pricing

import (
	"strconv"
	"strings"
)

// isAccommodationApplicable encodes the "no hotel booked on departure day"
// rule: the last day of the trip never gets a stay.
func isAccommodationApplicable(dayIndex, totalDays int) bool {
	return dayIndex < totalDays-1
}

// costSource tags where a cost figure came from, so fallbacks are observable
// in logs even though the API contract stays "always a number".
type costSource string

const (
	sourceLive     costSource = "live"
	sourceFallback costSource = "fallback"
	sourceZero     costSource = "zero"
)

// parsePrice extracts a numeric price from a display string by stripping
// every rune that is not a digit or decimal point. Returns 0 when nothing
// parseable remains.
func parsePrice(s string) float64 {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return 0
	}

	value, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0
	}
	return value
}
