// internal/pricing/policy_test.go
package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsAccommodationApplicable(t *testing.T) {
	tests := []struct {
		name       string
		dayIndex   int
		totalDays  int
		applicable bool
	}{
		{"first day of multi-day trip", 0, 3, true},
		{"middle day", 1, 3, true},
		{"last day never books a stay", 2, 3, false},
		{"single-day trip has no stay", 0, 1, false},
		{"second-to-last day", 3, 5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.applicable, isAccommodationApplicable(tt.dayIndex, tt.totalDays))
		})
	}
}

func TestParsePrice(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected float64
	}{
		{"dollar amount", "$25", 25},
		{"decimal", "$19.99", 19.99},
		{"currency suffix", "4500 LKR", 4500},
		{"comma separated", "$1,250", 1250},
		{"embedded in text", "Adults: $30 per person", 30},
		{"plain number", "42", 42},
		{"empty string", "", 0},
		{"no digits", "free admission", 0},
		{"multiple dots do not parse", "1.2.3", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, parsePrice(tt.input))
		})
	}
}
