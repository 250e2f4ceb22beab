package handler

import (
	"mime/multipart"

	"github.com/gofiber/fiber/v2"

	"github.com/fitfolio/fitfolio-backend/internal/models"
	"github.com/fitfolio/fitfolio-backend/internal/service"
)

type InstagramHandler struct {
	instagramService *service.InstagramService
}

func NewInstagramHandler(instagramService *service.InstagramService) *InstagramHandler {
	return &InstagramHandler{instagramService: instagramService}
}

func (h *InstagramHandler) List(c *fiber.Ctx) error {
	rows, err := h.instagramService.List()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(models.SuccessResponse(rows, ""))
}

// Create takes the post URL and optional type, caption and "thumbnail" file.
func (h *InstagramHandler) Create(c *fiber.Ctx) error {
	url := c.FormValue("url")
	if url == "" {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Post URL is required"))
	}

	up := service.InstagramUpload{
		URL:     url,
		Type:    c.FormValue("type"),
		Caption: c.FormValue("caption"),
	}

	var file multipart.File
	if thumbHeader, err := c.FormFile("thumbnail"); err == nil {
		file, err = thumbHeader.Open()
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Failed to read thumbnail"))
		}
		defer file.Close()

		up.ThumbnailFilename = thumbHeader.Filename
		up.ThumbnailContent = file
		up.ThumbnailContentType = thumbHeader.Header.Get("Content-Type")
	}

	post, err := h.instagramService.Create(up)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse(post, "Instagram post created successfully"))
}

func (h *InstagramHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	if err := h.instagramService.Delete(id); err != nil {
		return fail(c, err)
	}
	return c.JSON(models.SuccessResponse(nil, "Instagram post deleted successfully"))
}
