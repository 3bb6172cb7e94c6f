// internal/pricing/hotels.go
package pricing

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"itinerary-pricing/internal/search"
)

const dateLayout = "2006-01-02"

// hotelOptions looks up stays for a location and night, returning the
// selected (cheapest) nightly price and up to MaxHotelOptions candidates.
// Any failure, from the lookup to an unparseable date, degrades to
// (0, empty) so a hotel outage never fails the refresh; the caller then
// falls back to the prior estimate.
func (e *Engine) hotelOptions(ctx context.Context, location, checkInDate string, starRating, travelers int) (float64, []HotelOption) {
	checkIn, err := time.Parse(dateLayout, checkInDate)
	if err != nil {
		e.logger.Warn("unparseable check-in date, skipping hotel lookup", map[string]interface{}{
			"location": location,
			"date":     checkInDate,
		})
		return 0, []HotelOption{}
	}
	checkOut := checkIn.AddDate(0, 0, 1)

	query := fmt.Sprintf("best hotels in %s", location)
	if starRating > 0 {
		query = fmt.Sprintf("%d star hotel in %s", starRating, location)
	}

	result, err := e.search.Search(ctx, "google_hotels", query, map[string]string{
		"check_in_date":  checkIn.Format(dateLayout),
		"check_out_date": checkOut.Format(dateLayout),
		"adults":         strconv.Itoa(travelers),
		"currency":       e.config.Currency,
		"gl":             "lk",
		"hl":             "en",
	})
	if err != nil {
		e.logger.Warn("hotel lookup failed, using prior estimate", map[string]interface{}{
			"location": location,
			"error":    err.Error(),
		})
		return 0, []HotelOption{}
	}

	options := e.selectOptions(result.Properties)
	if len(options) == 0 {
		return 0, options
	}
	return options[0].Price, options
}

// selectOptions keeps candidates with a usable nightly price, caps the list,
// and orders it cheapest-first so the recommended option is always at index
// zero with the price the day's accommodation cost uses.
func (e *Engine) selectOptions(properties []search.Property) []HotelOption {
	options := make([]HotelOption, 0, e.config.MaxHotelOptions)

	for _, p := range properties {
		price := propertyPrice(p)
		if price <= 0 {
			continue
		}

		image := ""
		if len(p.Images) > 0 {
			image = p.Images[0].Thumbnail
		}

		options = append(options, HotelOption{
			Name:        p.Name,
			Price:       price,
			Rating:      p.OverallRating,
			Image:       image,
			Description: p.Description,
			Link:        p.Link,
		})
		if len(options) == e.config.MaxHotelOptions {
			break
		}
	}

	if len(options) == 0 {
		return options
	}

	sort.SliceStable(options, func(i, j int) bool {
		return options[i].Price < options[j].Price
	})
	options[0].IsRecommended = true
	return options
}

// propertyPrice extracts the nightly price, preferring the provider's
// pre-extracted number over stripping the display string.
func propertyPrice(p search.Property) float64 {
	if p.RatePerNight == nil {
		return 0
	}
	if p.RatePerNight.ExtractedLowest > 0 {
		return p.RatePerNight.ExtractedLowest
	}
	return parsePrice(p.RatePerNight.Lowest)
}
