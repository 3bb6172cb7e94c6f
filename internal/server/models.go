// internal/server/models.go
package server

import "itinerary-pricing/internal/pricing"

// RefreshRequest is the POST body for the price-refresh endpoint.
type RefreshRequest struct {
	Itinerary *pricing.Itinerary    `json:"itinerary"`
	Input     *pricing.PlannerInput `json:"input"`
}

// refreshRequestSchema rejects structurally broken bodies before decoding.
// Day-level validation (the days field itself) stays in the pricing engine so
// the error message matches its contract.
const refreshRequestSchema = `{
	"type": "object",
	"required": ["itinerary"],
	"properties": {
		"itinerary": {
			"type": "object"
		},
		"input": {
			"type": "object",
			"properties": {
				"startPoint":      {"type": "string"},
				"vehicleType":     {"type": "string"},
				"hotelRating":     {"type": "integer"},
				"travelers":       {"type": "integer"},
				"adults":          {"type": "integer"},
				"children":        {"type": "integer"},
				"isGuideIncluded": {"type": "boolean"}
			}
		}
	}
}`

type healthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
}
