package api

import (
	"errors"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/Haribaskar21/Profile-backend/internal/service"
)

type SkillHandler struct {
	skillService service.SkillService
	validate     *validator.Validate
}

func NewSkillHandler(skillService service.SkillService) *SkillHandler {
	return &SkillHandler{
		skillService: skillService,
		validate:     validator.New(),
	}
}

type CreateSkillRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=100"`
	Level string `json:"level" validate:"required,max=50"`
}

func (h *SkillHandler) ListSkills(c *fiber.Ctx) error {
	userID, err := AuthenticatedUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	skills, err := h.skillService.ListSkills(c.Context(), userID)
	if err != nil {
		slog.ErrorContext(c.UserContext(), "Failed to list skills", slog.String("error", err.Error()))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch skills"})
	}

	return c.Status(fiber.StatusOK).JSON(skills)
}

func (h *SkillHandler) CreateSkill(c *fiber.Ctx) error {
	userID, err := AuthenticatedUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	var request CreateSkillRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	if err := h.validate.Struct(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input", "details": err.Error()})
	}

	skill, err := h.skillService.CreateSkill(c.Context(), userID, request.Name, request.Level)
	if err != nil {
		slog.ErrorContext(c.UserContext(), "Failed to create skill", slog.String("error", err.Error()))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not create skill"})
	}

	return c.Status(fiber.StatusOK).JSON(skill)
}

func (h *SkillHandler) DeleteSkill(c *fiber.Ctx) error {
	userID, err := AuthenticatedUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	skillID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid skill ID format"})
	}

	if err := h.skillService.DeleteSkill(c.Context(), userID, skillID); err != nil {
		slog.ErrorContext(c.UserContext(), "Failed to delete skill", slog.String("error", err.Error()))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not delete skill"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true})
}

func (h *SkillHandler) EndorseSkill(c *fiber.Ctx) error {
	userID, err := AuthenticatedUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	skillID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid skill ID format"})
	}

	skill, err := h.skillService.EndorseSkill(c.Context(), userID, skillID)
	if err != nil {
		if errors.Is(err, service.ErrSkillNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Skill not found"})
		}

		slog.ErrorContext(c.UserContext(), "Failed to endorse skill", slog.String("error", err.Error()))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not endorse skill"})
	}

	return c.Status(fiber.StatusOK).JSON(skill)
}
