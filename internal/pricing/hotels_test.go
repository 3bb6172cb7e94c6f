// internal/pricing/hotels_test.go
package pricing

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"itinerary-pricing/internal/search"
)

func TestSelectOptions(t *testing.T) {
	engine := newTestEngine(t, stubProvider(`{}`, `{}`))

	properties := []search.Property{
		{Name: "Pricey", RatePerNight: &search.RatePerNight{ExtractedLowest: 140}},
		{Name: "No price"},
		{Name: "Display only", RatePerNight: &search.RatePerNight{Lowest: "$95"}},
		{Name: "Cheapest", RatePerNight: &search.RatePerNight{ExtractedLowest: 55}},
		{Name: "Zero", RatePerNight: &search.RatePerNight{ExtractedLowest: 0}},
	}

	options := engine.selectOptions(properties)

	require.Len(t, options, 3)
	assert.Equal(t, "Cheapest", options[0].Name)
	assert.Equal(t, 55.0, options[0].Price)
	assert.True(t, options[0].IsRecommended)
	assert.Equal(t, "Display only", options[1].Name)
	assert.Equal(t, 95.0, options[1].Price)
	assert.Equal(t, "Pricey", options[2].Name)

	for _, o := range options[1:] {
		assert.False(t, o.IsRecommended)
	}
}

func TestSelectOptions_CapsList(t *testing.T) {
	engine := newTestEngine(t, stubProvider(`{}`, `{}`))

	var properties []search.Property
	for i := 0; i < 12; i++ {
		properties = append(properties, search.Property{
			Name:         fmt.Sprintf("Hotel %d", i),
			RatePerNight: &search.RatePerNight{ExtractedLowest: float64(100 + i)},
		})
	}

	options := engine.selectOptions(properties)
	assert.Len(t, options, 5)
}

func TestSelectOptions_Empty(t *testing.T) {
	engine := newTestEngine(t, stubProvider(`{}`, `{}`))

	assert.Empty(t, engine.selectOptions(nil))
	assert.Empty(t, engine.selectOptions([]search.Property{{Name: "No rate"}}))
}

func TestPropertyPrice(t *testing.T) {
	tests := []struct {
		name     string
		property search.Property
		expected float64
	}{
		{"extracted number preferred", search.Property{RatePerNight: &search.RatePerNight{Lowest: "$999", ExtractedLowest: 120}}, 120},
		{"display string parsed", search.Property{RatePerNight: &search.RatePerNight{Lowest: "$85"}}, 85},
		{"no rate block", search.Property{}, 0},
		{"unparseable display string", search.Property{RatePerNight: &search.RatePerNight{Lowest: "call us"}}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, propertyPrice(tt.property))
		})
	}
}

func TestHotelOptions_RequestShape(t *testing.T) {
	var mu sync.Mutex
	var queries []url.Values

	engine := newTestEngine(t, func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		queries = append(queries, r.URL.Query())
		mu.Unlock()
		fmt.Fprint(w, hotelsJSON)
	})

	price, options := engine.hotelOptions(context.Background(), "Galle", "2026-04-02", 4, 3)
	assert.Equal(t, 60.0, price)
	assert.Len(t, options, 2)

	require.Len(t, queries, 1)
	q := queries[0]
	assert.Equal(t, "google_hotels", q.Get("engine"))
	assert.Equal(t, "4 star hotel in Galle", q.Get("q"))
	assert.Equal(t, "2026-04-02", q.Get("check_in_date"))
	assert.Equal(t, "2026-04-03", q.Get("check_out_date"))
	assert.Equal(t, "3", q.Get("adults"))
	assert.Equal(t, "USD", q.Get("currency"))
}

func TestHotelOptions_NoRatingUsesGenericQuery(t *testing.T) {
	var mu sync.Mutex
	var gotQuery string

	engine := newTestEngine(t, func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		gotQuery = r.URL.Query().Get("q")
		mu.Unlock()
		fmt.Fprint(w, hotelsJSON)
	})

	engine.hotelOptions(context.Background(), "Mirissa", "2026-04-02", 0, 2)
	assert.Equal(t, "best hotels in Mirissa", gotQuery)
}

func TestHotelOptions_LookupFailureDegradesToEmpty(t *testing.T) {
	engine := newTestEngine(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	price, options := engine.hotelOptions(context.Background(), "Kandy", "2026-04-02", 3, 2)
	assert.Equal(t, 0.0, price)
	assert.Empty(t, options)
}
