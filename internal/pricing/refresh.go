// internal/pricing/refresh.go
package pricing

import (
	"context"

	"golang.org/x/sync/errgroup"

	apperrors "itinerary-pricing/internal/common/errors"
	"itinerary-pricing/internal/common/logger"
	"itinerary-pricing/internal/common/metrics"
	"itinerary-pricing/internal/search"
	"itinerary-pricing/internal/vehicles"
)

// Engine re-prices AI-generated itineraries with live search data. Every day
// is enriched concurrently and within a day the transport, hotel, and ticket
// lookups run concurrently too. Single-lookup failures degrade to the prior
// AI estimate; the refresh as a whole is all-or-nothing across days.
type Engine struct {
	config   *Config
	search   *search.Client
	vehicles *vehicles.Store
	logger   logger.Logger
}

func NewEngine(config *Config, searchClient *search.Client, vehicleStore *vehicles.Store, log logger.Logger) *Engine {
	return &Engine{
		config:   config,
		search:   searchClient,
		vehicles: vehicleStore,
		logger:   log.WithFields(map[string]interface{}{"component": "pricing"}),
	}
}

// Refresh recomputes every day's cost breakdown and the trip total. Fails
// with a validation error when the itinerary has no days field; any other
// failure aborts the entire refresh with no partial result.
func (e *Engine) Refresh(ctx context.Context, itinerary *Itinerary, input *PlannerInput) (*Itinerary, error) {
	if itinerary == nil || itinerary.Days == nil {
		return nil, apperrors.NewValidationError("Invalid itinerary data")
	}

	travelers := input.TravelerCount()
	days := itinerary.Days
	updated := make([]Day, len(days))

	g, gctx := errgroup.WithContext(ctx)
	for i := range days {
		g.Go(func() error {
			// Origin resolution reads the original input list, never another
			// day's enrichment output, so completion order cannot change the
			// result.
			origin := input.StartPoint
			if i > 0 {
				origin = days[i-1].Location
			}

			day, err := e.enrichDay(gctx, days[i], origin, isAccommodationApplicable(i, len(days)), input, travelers)
			if err != nil {
				return err
			}
			updated[i] = day
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := 0.0
	for _, day := range updated {
		total += day.EstimatedCost.Total
	}

	out := *itinerary
	out.Days = updated
	out.EstimatedTotalBudget = total

	e.logger.Info("itinerary refreshed", map[string]interface{}{
		"days":      len(updated),
		"travelers": travelers,
		"total":     total,
	})
	return &out, nil
}

// enrichDay replaces a day's costs with live figures, falling back to the
// prior estimate wherever a lookup yields nothing.
func (e *Engine) enrichDay(ctx context.Context, day Day, origin string, stayNight bool, input *PlannerInput, travelers int) (Day, error) {
	prior := day.EstimatedCost

	var (
		transport       float64
		transportSource costSource
		hotelPrice      float64
		hotelOpts       []HotelOption
		ticketTotal     float64
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		transport, transportSource = e.transportCost(gctx, origin, day.Location, input.VehicleType)
		return nil
	})

	g.Go(func() error {
		if !stayNight {
			// Departure day: no stay is booked, no fallback applies.
			hotelOpts = []HotelOption{}
			return nil
		}
		hotelPrice, hotelOpts = e.hotelOptions(gctx, day.Location, day.Date, input.HotelRating, travelers)
		return nil
	})

	g.Go(func() error {
		perPerson := make([]float64, len(day.Activities))
		tg, tctx := errgroup.WithContext(gctx)
		for i, activity := range day.Activities {
			tg.Go(func() error {
				perPerson[i] = e.ticketPrice(tctx, activity.Name)
				return nil
			})
		}
		if err := tg.Wait(); err != nil {
			return err
		}
		for _, p := range perPerson {
			ticketTotal += p
		}
		ticketTotal *= float64(travelers)
		return nil
	})

	if err := g.Wait(); err != nil {
		return Day{}, err
	}
	if err := ctx.Err(); err != nil {
		return Day{}, err
	}

	hotelSource, ticketSource := sourceLive, sourceLive
	if stayNight && hotelPrice == 0 {
		hotelPrice = prior.Accommodation
		hotelSource = sourceFallback
		metrics.CostFallbacks.WithLabelValues("accommodation").Inc()
	}
	if !stayNight {
		hotelSource = sourceZero
	}
	if ticketTotal == 0 {
		ticketTotal = prior.Tickets
		ticketSource = sourceFallback
		metrics.CostFallbacks.WithLabelValues("tickets").Inc()
	}
	if transport == 0 {
		transport = prior.TransportFuel
		transportSource = sourceFallback
		metrics.CostFallbacks.WithLabelValues("transport").Inc()
	}

	if hotelSource == sourceFallback || ticketSource == sourceFallback || transportSource == sourceFallback {
		e.logger.Debug("day costs partially fell back to prior estimates", map[string]interface{}{
			"day":       day.Day,
			"location":  day.Location,
			"hotel":     string(hotelSource),
			"tickets":   string(ticketSource),
			"transport": string(transportSource),
		})
	}

	guideCost := 0.0
	if input.IsGuideIncluded {
		guideCost = e.config.GuideDailyCost
	}
	miscellaneous := prior.Miscellaneous + guideCost

	day.HotelOptions = hotelOpts
	day.EstimatedCost = CostBreakdown{
		Accommodation: hotelPrice,
		Tickets:       ticketTotal,
		TransportFuel: transport,
		Food:          prior.Food,
		Miscellaneous: miscellaneous,
		Total:         transport + hotelPrice + ticketTotal + prior.Food + miscellaneous,
	}
	return day, nil
}
