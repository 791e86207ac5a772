package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// searchRequest is the body of POST /api/search.
type searchRequest struct {
	Text string `json:"text"`
}

// handleSearch handles POST /api/search requests by running the resolution
// cascade. Tier-local failures never surface here; an error from the
// resolver means the terminal fallback tier itself failed.
func (s *Server) handleSearch(c *fiber.Ctx) error {
	var req searchRequest
	if err := c.BodyParser(&req); err != nil || strings.TrimSpace(req.Text) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "Query text is required",
		})
	}

	drv, release := s.handle.Acquire()
	defer release()

	output, err := s.resolver.Resolve(c.Context(), drv, req.Text)
	if err != nil {
		s.logger.Error("search failed",
			zap.String("query", req.Text),
			zap.Error(err),
		)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "An error occurred while processing your request.",
		})
	}

	return c.JSON(output)
}
