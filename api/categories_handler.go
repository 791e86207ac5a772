package api

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// handleCategories returns the distinct set of record types in the store.
func (s *Server) handleCategories(c *fiber.Ctx) error {
	drv, release := s.handle.Acquire()
	defer release()

	categories, err := drv.Categories(c.Context())
	if err != nil {
		s.logger.Error("listing categories failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "Internal Server Error",
		})
	}

	if categories == nil {
		categories = []string{}
	}

	return c.JSON(fiber.Map{"categories": categories})
}
