package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/fitfolio/fitfolio-backend/internal/models"
	"github.com/fitfolio/fitfolio-backend/internal/service"
	"github.com/fitfolio/fitfolio-backend/pkg/captcha"
	"github.com/fitfolio/fitfolio-backend/pkg/qrcode"
	"github.com/fitfolio/fitfolio-backend/pkg/utils"
)

type PricingHandler struct {
	pricingService *service.PricingService
	verifier       *captcha.TurnstileVerifier
	validator      *utils.Validator
}

func NewPricingHandler(pricingService *service.PricingService, verifier *captcha.TurnstileVerifier, validator *utils.Validator) *PricingHandler {
	return &PricingHandler{
		pricingService: pricingService,
		verifier:       verifier,
		validator:      validator,
	}
}

// Quote prices a package or diet plan with an optional coupon and returns the
// WhatsApp hand-off for the result.
func (h *PricingHandler) Quote(c *fiber.Ctx) error {
	var req models.QuoteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	var (
		quote *models.QuoteResponse
		err   error
	)
	switch {
	case req.PackageID != 0:
		quote, err = h.pricingService.QuotePackage(req.PackageID, req.CouponCode)
	case req.DietPlanID != 0:
		quote, err = h.pricingService.QuoteDietPlan(req.DietPlanID, req.CouponCode)
	default:
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("package_id or diet_plan_id is required"))
	}
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(models.SuccessResponse(quote, ""))
}

// Enquire is the contact form hand-off, gated by Turnstile.
func (h *PricingHandler) Enquire(c *fiber.Ctx) error {
	var req models.EnquiryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}
	if err := h.validator.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	ok, err := h.verifier.Verify(c.Get("X-Turnstile-Token"))
	if err != nil || !ok {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Captcha verification failed"))
	}

	resp, err := h.pricingService.Enquire(req)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(models.SuccessResponse(resp, ""))
}

// WhatsAppQR renders a scan-to-chat QR code pointing at the configured
// number.
func (h *PricingHandler) WhatsAppQR(c *fiber.Ctx) error {
	link, err := h.pricingService.ChatLink()
	if err != nil {
		return fail(c, err)
	}

	size := c.QueryInt("size", 256)
	png, err := qrcode.GeneratePNG(link, size)
	if err != nil {
		return fail(c, err)
	}

	c.Set("Content-Type", "image/png")
	return c.Send(png)
}
