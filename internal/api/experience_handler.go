package api

import (
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/Haribaskar21/Profile-backend/internal/model"
	"github.com/Haribaskar21/Profile-backend/internal/service"
)

type ExperienceHandler struct {
	experienceService service.ExperienceService
	validate          *validator.Validate
}

func NewExperienceHandler(experienceService service.ExperienceService) *ExperienceHandler {
	return &ExperienceHandler{
		experienceService: experienceService,
		validate:          validator.New(),
	}
}

type CreateExperienceRequest struct {
	Role        string `json:"role" validate:"required,max=120"`
	Company     string `json:"company" validate:"required,max=120"`
	StartDate   string `json:"startDate" validate:"required,max=40"`
	EndDate     string `json:"endDate" validate:"omitempty,max=40"`
	Description string `json:"description" validate:"omitempty,max=2000"`
}

func (h *ExperienceHandler) ListExperience(c *fiber.Ctx) error {
	userID, err := AuthenticatedUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	entries, err := h.experienceService.ListExperience(c.Context(), userID)
	if err != nil {
		slog.ErrorContext(c.UserContext(), "Failed to list experience", slog.String("error", err.Error()))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch experience"})
	}

	return c.Status(fiber.StatusOK).JSON(entries)
}

func (h *ExperienceHandler) CreateExperience(c *fiber.Ctx) error {
	userID, err := AuthenticatedUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	var request CreateExperienceRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	if err := h.validate.Struct(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input", "details": err.Error()})
	}

	exp := &model.Experience{
		UserID:      userID,
		Role:        request.Role,
		Company:     request.Company,
		StartDate:   request.StartDate,
		EndDate:     request.EndDate,
		Description: request.Description,
	}

	created, err := h.experienceService.CreateExperience(c.Context(), exp)
	if err != nil {
		slog.ErrorContext(c.UserContext(), "Failed to create experience", slog.String("error", err.Error()))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not create experience"})
	}

	return c.Status(fiber.StatusOK).JSON(created)
}

func (h *ExperienceHandler) DeleteExperience(c *fiber.Ctx) error {
	userID, err := AuthenticatedUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	expID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid experience ID format"})
	}

	if err := h.experienceService.DeleteExperience(c.Context(), userID, expID); err != nil {
		slog.ErrorContext(c.UserContext(), "Failed to delete experience", slog.String("error", err.Error()))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not delete experience"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true})
}
