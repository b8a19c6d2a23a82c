package api

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/Haribaskar21/Profile-backend/internal/service"
)

// PublicHandler serves the read-only aggregate view. No auth middleware
// runs in front of it.
type PublicHandler struct {
	publicService service.PublicProfileService
}

func NewPublicHandler(publicService service.PublicProfileService) *PublicHandler {
	return &PublicHandler{publicService: publicService}
}

func (h *PublicHandler) GetPublicProfile(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid user ID format"})
	}

	page, err := h.publicService.GetPublicProfile(c.Context(), userID)
	if err != nil {
		slog.ErrorContext(c.UserContext(), "Failed to load public profile", slog.String("error", err.Error()))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch public profile"})
	}

	return c.Status(fiber.StatusOK).JSON(page)
}
