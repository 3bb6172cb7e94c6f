// internal/server/handler.go
package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/xeipuuv/gojsonschema"

	apperrors "itinerary-pricing/internal/common/errors"
	"itinerary-pricing/internal/common/metrics"
	"itinerary-pricing/internal/pricing"
)

// handleRefresh re-prices the submitted itinerary and returns it. Request
// shape problems are 400s; everything else that escapes the engine is a 500.
func (s *Server) handleRefresh(c *fiber.Ctx) error {
	requestID := uuid.NewString()
	start := time.Now()

	log := s.logger.WithFields(map[string]interface{}{
		"requestId": requestID,
	})

	body := c.Body()
	if err := validateRefreshBody(body); err != nil {
		return s.writeError(c, requestID, err)
	}

	var req RefreshRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return s.writeError(c, requestID, apperrors.NewValidationError("Invalid request body"))
	}
	if req.Input == nil {
		req.Input = &pricing.PlannerInput{}
	}

	log.Info("refreshing itinerary prices", map[string]interface{}{
		"days":        dayCount(req),
		"vehicleType": req.Input.VehicleType,
	})

	refreshed, err := s.engine.Refresh(c.UserContext(), req.Itinerary, req.Input)
	if err != nil {
		s.obs.RecordRefreshProcessed(c.UserContext(), "error")
		return s.writeError(c, requestID, err)
	}

	elapsed := time.Since(start)
	metrics.RefreshRequests.WithLabelValues("success").Inc()
	metrics.RefreshDuration.Observe(elapsed.Seconds())
	s.obs.RecordRefreshProcessed(c.UserContext(), "success")
	s.obs.RecordRefreshDuration(c.UserContext(), elapsed, "success")

	log.Info("itinerary prices refreshed", map[string]interface{}{
		"days":       dayCount(req),
		"total":      refreshed.EstimatedTotalBudget,
		"durationMs": elapsed.Milliseconds(),
	})

	return c.Status(http.StatusOK).JSON(refreshed)
}

func (s *Server) handleHealth(c *fiber.Ctx) error {
	return c.JSON(healthResponse{
		Status:  "ok",
		Service: s.name,
		Version: s.version,
	})
}

func (s *Server) writeError(c *fiber.Ctx, requestID string, err error) error {
	status, resp := s.errors.HandleRequestError(requestID, err)
	metrics.RefreshRequests.WithLabelValues("error").Inc()
	return c.Status(status).JSON(resp)
}

func validateRefreshBody(body []byte) error {
	if len(body) == 0 {
		return apperrors.NewValidationError("Invalid request body")
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(refreshRequestSchema),
		gojsonschema.NewBytesLoader(body),
	)
	if err != nil {
		return apperrors.NewValidationError("Invalid request body")
	}
	if !result.Valid() {
		return apperrors.NewValidationError("Invalid itinerary data")
	}
	return nil
}

func dayCount(req RefreshRequest) int {
	if req.Itinerary == nil {
		return 0
	}
	return len(req.Itinerary.Days)
}
