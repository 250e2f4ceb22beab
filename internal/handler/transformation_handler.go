package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/fitfolio/fitfolio-backend/internal/models"
	"github.com/fitfolio/fitfolio-backend/internal/service"
)

type TransformationHandler struct {
	transformationService *service.TransformationService
}

func NewTransformationHandler(transformationService *service.TransformationService) *TransformationHandler {
	return &TransformationHandler{transformationService: transformationService}
}

func (h *TransformationHandler) List(c *fiber.Ctx) error {
	rows, err := h.transformationService.List()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(models.SuccessResponse(rows, ""))
}

// Create takes multipart "before" and "after" image files plus client name
// and description fields.
func (h *TransformationHandler) Create(c *fiber.Ctx) error {
	beforeHeader, err := c.FormFile("before")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Before image is required"))
	}
	afterHeader, err := c.FormFile("after")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("After image is required"))
	}

	beforeFile, err := beforeHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Failed to read before image"))
	}
	defer beforeFile.Close()

	afterFile, err := afterHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Failed to read after image"))
	}
	defer afterFile.Close()

	row, err := h.transformationService.Create(service.TransformationUpload{
		ClientName:        c.FormValue("client_name"),
		Description:       c.FormValue("description"),
		BeforeFilename:    beforeHeader.Filename,
		BeforeContent:     beforeFile,
		BeforeContentType: beforeHeader.Header.Get("Content-Type"),
		AfterFilename:     afterHeader.Filename,
		AfterContent:      afterFile,
		AfterContentType:  afterHeader.Header.Get("Content-Type"),
	})
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse(row, "Transformation created successfully"))
}

func (h *TransformationHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	if err := h.transformationService.Delete(id); err != nil {
		return fail(c, err)
	}
	return c.JSON(models.SuccessResponse(nil, "Transformation deleted successfully"))
}
