package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/fitfolio/fitfolio-backend/internal/models"
	"github.com/fitfolio/fitfolio-backend/internal/service"
)

type GalleryHandler struct {
	galleryService *service.GalleryService
}

func NewGalleryHandler(galleryService *service.GalleryService) *GalleryHandler {
	return &GalleryHandler{galleryService: galleryService}
}

func (h *GalleryHandler) List(c *fiber.Ctx) error {
	photos, err := h.galleryService.List(c.Query("category"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(models.SuccessResponse(photos, ""))
}

// Upload takes a multipart "image" file plus optional category and alt
// fields.
func (h *GalleryHandler) Upload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Image file is required"))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Failed to read image file"))
	}
	defer file.Close()

	photo, err := h.galleryService.Upload(
		fileHeader.Filename,
		file,
		fileHeader.Header.Get("Content-Type"),
		c.FormValue("category"),
		c.FormValue("alt"),
	)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse(photo, "Photo uploaded successfully"))
}

func (h *GalleryHandler) Patch(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	var patch models.GalleryPhotoPatch
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	photo, err := h.galleryService.Patch(id, patch)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(models.SuccessResponse(photo, "Photo updated successfully"))
}

func (h *GalleryHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	if err := h.galleryService.Delete(id); err != nil {
		return fail(c, err)
	}
	return c.JSON(models.SuccessResponse(nil, "Photo deleted successfully"))
}
