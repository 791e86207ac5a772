package api

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/tridentsearch/trident/pkg/seed"
)

// handleSeed clears and repopulates the store with the sample set. Disabled
// in production deployments.
func (s *Server) handleSeed(c *fiber.Ctx) error {
	if s.config.Environment == EnvProduction {
		return c.Status(fiber.StatusForbidden).JSON(ErrorResponse{
			Error: "Seeding disabled in production",
		})
	}

	drv, release := s.handle.Acquire()
	defer release()

	count, err := seed.Seed(c.Context(), drv, s.embedder, s.logger)
	if err != nil {
		s.logger.Error("seeding failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "Seeding failed",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Database seeded successfully",
		"count":   count,
	})
}
