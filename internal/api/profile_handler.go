package api

import (
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/Haribaskar21/Profile-backend/internal/repository"
	"github.com/Haribaskar21/Profile-backend/internal/s3"
	"github.com/Haribaskar21/Profile-backend/internal/service"
)

type ProfileHandler struct {
	profileService service.ProfileService
	validate       *validator.Validate
	presigner      *s3.AvatarPresigner
}

func NewProfileHandler(profileService service.ProfileService, presigner *s3.AvatarPresigner) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
		validate:       validator.New(),
		presigner:      presigner,
	}
}

type UpdateProfileRequest struct {
	Title    *string `json:"title,omitempty" validate:"omitempty,max=120"`
	Bio      *string `json:"bio,omitempty" validate:"omitempty,max=2000"`
	Location *string `json:"location,omitempty" validate:"omitempty,max=120"`
}

func (h *ProfileHandler) GetProfile(c *fiber.Ctx) error {
	userID, err := AuthenticatedUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	profile, err := h.profileService.GetOwnProfile(c.Context(), userID)
	if err != nil {
		slog.ErrorContext(c.UserContext(), "Failed to load profile", slog.String("error", err.Error()))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch profile"})
	}

	return c.Status(fiber.StatusOK).JSON(profile)
}

func (h *ProfileHandler) UpdateProfile(c *fiber.Ctx) error {
	userID, err := AuthenticatedUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	var request UpdateProfileRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	if err := h.validate.Struct(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input", "details": err.Error()})
	}

	profile, err := h.profileService.UpdateOwnProfile(c.Context(), userID, repository.ProfileUpdate{
		Title:    request.Title,
		Bio:      request.Bio,
		Location: request.Location,
	})
	if err != nil {
		slog.ErrorContext(c.UserContext(), "Failed to update profile", slog.String("error", err.Error()))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not update profile"})
	}

	return c.Status(fiber.StatusOK).JSON(profile)
}

func (h *ProfileHandler) GetAvatarUploadURL(c *fiber.Ctx) error {
	userID, err := AuthenticatedUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	objectKey := "avatars/" + userID.String() + "/" + uuid.New().String() + ".jpg"

	uploadURL, err := h.presigner.PresignedUploadURL(objectKey)
	if err != nil {
		slog.ErrorContext(c.UserContext(), "Failed to presign avatar upload", slog.String("error", err.Error()))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not generate upload URL"})
	}

	return c.JSON(fiber.Map{
		"upload_url":      uploadURL,
		"final_image_url": h.presigner.ObjectURL(objectKey),
	})
}
