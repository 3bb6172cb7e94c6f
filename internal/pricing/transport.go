// internal/pricing/transport.go
package pricing

import (
	"context"
	"math"
)

// transportCost estimates the day's transport spend as the base rate scaled
// by the vehicle multiplier. origin and destination are accepted for the
// eventual distance-aware model but do not affect the result yet; this is a
// flat day-to-day estimate.
func (e *Engine) transportCost(ctx context.Context, origin, destination, vehicleType string) (float64, costSource) {
	multiplier, err := e.vehicles.Multiplier(ctx, vehicleType)
	if err != nil {
		e.logger.Warn("vehicle multiplier lookup failed, using base cost", map[string]interface{}{
			"vehicleType": vehicleType,
			"origin":      origin,
			"destination": destination,
			"error":       err.Error(),
		})
		return e.config.BaseTransportCost, sourceFallback
	}

	return math.Round(e.config.BaseTransportCost * multiplier), sourceLive
}
