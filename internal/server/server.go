// internal/server/server.go
package server

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	apperrors "itinerary-pricing/internal/common/errors"
	"itinerary-pricing/internal/common/logger"
	"itinerary-pricing/internal/common/observability"
	"itinerary-pricing/internal/pricing"
)

// Server exposes the pricing engine over HTTP.
type Server struct {
	app     *fiber.App
	engine  *pricing.Engine
	errors  *apperrors.ErrorHandler
	obs     *observability.Observability
	logger  logger.Logger
	name    string
	version string
}

func New(engine *pricing.Engine, obs *observability.Observability, log logger.Logger, name, version string) *Server {
	s := &Server{
		app: fiber.New(fiber.Config{
			AppName:               name,
			DisableStartupMessage: true,
		}),
		engine:  engine,
		errors:  apperrors.NewErrorHandler(log),
		obs:     obs,
		logger:  log.WithFields(map[string]interface{}{"component": "server"}),
		name:    name,
		version: version,
	}

	s.app.Get("/health", s.handleHealth)
	s.app.Post("/api/itinerary/refresh-prices", s.handleRefresh)

	return s
}

// Listen blocks serving requests on the given port.
func (s *Server) Listen(port int) error {
	return s.app.Listen(fmt.Sprintf(":%d", port))
}

// Shutdown drains in-flight requests and stops the listener.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// App exposes the fiber application for tests.
func (s *Server) App() *fiber.App {
	return s.app
}
