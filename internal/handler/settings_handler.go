package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/fitfolio/fitfolio-backend/internal/models"
	"github.com/fitfolio/fitfolio-backend/internal/service"
	"github.com/fitfolio/fitfolio-backend/pkg/utils"
)

type SettingsHandler struct {
	settingsService *service.SettingsService
	validator       *utils.Validator
}

func NewSettingsHandler(settingsService *service.SettingsService, validator *utils.Validator) *SettingsHandler {
	return &SettingsHandler{
		settingsService: settingsService,
		validator:       validator,
	}
}

func (h *SettingsHandler) List(c *fiber.Ctx) error {
	settings, err := h.settingsService.List()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(models.SuccessResponse(settings, ""))
}

func (h *SettingsHandler) Set(c *fiber.Ctx) error {
	var req models.SiteSettingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}
	if err := h.validator.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	setting, err := h.settingsService.Set(req.Key, req.Value)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(models.SuccessResponse(setting, "Setting saved successfully"))
}

// UploadGreetingImage replaces the landing page greeting image from a
// multipart "image" file.
func (h *SettingsHandler) UploadGreetingImage(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Image file is required"))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Failed to read image file"))
	}
	defer file.Close()

	setting, err := h.settingsService.UploadGreetingImage(fileHeader.Filename, file, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(models.SuccessResponse(setting, "Greeting image updated successfully"))
}
