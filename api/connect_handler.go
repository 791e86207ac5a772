package api

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// connectRequest is the body of POST /api/connect.
type connectRequest struct {
	URI string `json:"uri"`
}

// handleConnect rebinds the process-wide store connection to a new target.
// The swap waits for in-flight requests holding the old driver to finish, so
// they complete against a valid connection rather than a torn one.
func (s *Server) handleConnect(c *fiber.Ctx) error {
	var req connectRequest
	if err := c.BodyParser(&req); err != nil || req.URI == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "URI is required",
		})
	}

	drv, err := s.dial(c.Context(), req.URI)
	if err != nil {
		s.logger.Error("store rebind failed",
			zap.String("uri", req.URI),
			zap.Error(err),
		)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: fmt.Sprintf("Connection failed: %s", err),
		})
	}

	// Re-ensure the substring-search index exists on the new target. Index
	// creation problems are not fatal to the rebind.
	if err := drv.EnsureSearchIndex(c.Context()); err != nil {
		s.logger.Warn("search index creation warning", zap.Error(err))
	}

	if err := s.handle.Swap(c.Context(), drv); err != nil {
		s.logger.Warn("closing previous store connection", zap.Error(err))
	}

	s.logger.Info("store connection switched", zap.String("uri", req.URI))

	return c.JSON(fiber.Map{"message": "Database connected successfully"})
}
