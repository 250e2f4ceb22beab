package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/fitfolio/fitfolio-backend/internal/models"
	"github.com/fitfolio/fitfolio-backend/internal/service"
	"github.com/fitfolio/fitfolio-backend/pkg/utils"
)

type BlogHandler struct {
	blogService *service.BlogService
	validator   *utils.Validator
}

func NewBlogHandler(blogService *service.BlogService, validator *utils.Validator) *BlogHandler {
	return &BlogHandler{
		blogService: blogService,
		validator:   validator,
	}
}

// List returns every post, drafts included, for the admin table.
func (h *BlogHandler) List(c *fiber.Ctx) error {
	posts, err := h.blogService.List()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(models.SuccessResponse(posts, ""))
}

func (h *BlogHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	post, err := h.blogService.Get(id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(models.SuccessResponse(post, ""))
}

func (h *BlogHandler) Create(c *fiber.Ctx) error {
	var req models.BlogPostRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}
	if err := h.validator.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	post, err := h.blogService.Create(req)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse(post, "Post created successfully"))
}

func (h *BlogHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	var req models.BlogPostRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}
	if err := h.validator.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	post, err := h.blogService.Update(id, req)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(models.SuccessResponse(post, "Post updated successfully"))
}

// UploadCover replaces the post's cover image from a multipart "image" file.
func (h *BlogHandler) UploadCover(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Image file is required"))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Failed to read image file"))
	}
	defer file.Close()

	post, err := h.blogService.UploadCover(id, fileHeader.Filename, file, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(models.SuccessResponse(post, "Cover image updated successfully"))
}

func (h *BlogHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	if err := h.blogService.Delete(id); err != nil {
		return fail(c, err)
	}
	return c.JSON(models.SuccessResponse(nil, "Post deleted successfully"))
}
