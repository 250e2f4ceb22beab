package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/fitfolio/fitfolio-backend/internal/models"
	"github.com/fitfolio/fitfolio-backend/internal/service"
	"github.com/fitfolio/fitfolio-backend/pkg/utils"
)

type CouponHandler struct {
	couponService *service.CouponService
	validator     *utils.Validator
}

func NewCouponHandler(couponService *service.CouponService, validator *utils.Validator) *CouponHandler {
	return &CouponHandler{
		couponService: couponService,
		validator:     validator,
	}
}

func (h *CouponHandler) List(c *fiber.Ctx) error {
	coupons, err := h.couponService.List()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(models.SuccessResponse(coupons, ""))
}

func (h *CouponHandler) Create(c *fiber.Ctx) error {
	var req models.CouponRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}
	if err := h.validator.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	coupon, err := h.couponService.Create(req)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse(coupon, "Coupon created successfully"))
}

func (h *CouponHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	var req models.CouponRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}
	if err := h.validator.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	coupon, err := h.couponService.Update(id, req)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(models.SuccessResponse(coupon, "Coupon updated successfully"))
}

func (h *CouponHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	if err := h.couponService.Delete(id); err != nil {
		return fail(c, err)
	}
	return c.JSON(models.SuccessResponse(nil, "Coupon deleted successfully"))
}

// Apply validates a code from the public checkout flow and, when valid,
// counts the redemption.
func (h *CouponHandler) Apply(c *fiber.Ctx) error {
	var req models.ApplyCouponRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}
	if err := h.validator.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	applied, err := h.couponService.ValidateAndApply(req.Code)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(models.SuccessResponse(applied, "Coupon applied"))
}
