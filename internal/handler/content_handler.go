package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/fitfolio/fitfolio-backend/internal/models"
	"github.com/fitfolio/fitfolio-backend/internal/service"
	"github.com/fitfolio/fitfolio-backend/pkg/utils"
)

// ContentHandler is the shared admin CRUD handler for the uniform content
// collections. T is the entity, R its request DTO; apply copies a validated
// request onto an entity.
type ContentHandler[T any, R any] struct {
	svc       *service.ContentService[T]
	validator *utils.Validator
	apply     func(req *R, row *T)
	label     string
}

func NewContentHandler[T any, R any](
	svc *service.ContentService[T],
	validator *utils.Validator,
	apply func(req *R, row *T),
	label string,
) *ContentHandler[T, R] {
	return &ContentHandler[T, R]{
		svc:       svc,
		validator: validator,
		apply:     apply,
		label:     label,
	}
}

func (h *ContentHandler[T, R]) List(c *fiber.Ctx) error {
	rows, err := h.svc.List()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(models.SuccessResponse(rows, ""))
}

func (h *ContentHandler[T, R]) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	row, err := h.svc.Get(id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(models.SuccessResponse(row, ""))
}

func (h *ContentHandler[T, R]) Create(c *fiber.Ctx) error {
	var req R
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}
	if err := h.validator.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	var row T
	h.apply(&req, &row)
	if err := h.svc.Create(&row); err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse(row, h.label+" created successfully"))
}

func (h *ContentHandler[T, R]) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	var req R
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}
	if err := h.validator.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	row, err := h.svc.Get(id)
	if err != nil {
		return fail(c, err)
	}

	h.apply(&req, row)
	if err := h.svc.Update(row); err != nil {
		return fail(c, err)
	}
	return c.JSON(models.SuccessResponse(row, h.label+" updated successfully"))
}

func (h *ContentHandler[T, R]) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	if err := h.svc.Delete(id); err != nil {
		return fail(c, err)
	}
	return c.JSON(models.SuccessResponse(nil, h.label+" deleted successfully"))
}

func (h *ContentHandler[T, R]) Reorder(c *fiber.Ctx) error {
	var req models.ReorderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}
	if err := h.validator.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	if err := h.svc.Reorder(req.IDs); err != nil {
		return fail(c, err)
	}
	return c.JSON(models.SuccessResponse(nil, "Order updated successfully"))
}
