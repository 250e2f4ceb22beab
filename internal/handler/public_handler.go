package handler

import (
	"sort"

	"github.com/gofiber/fiber/v2"

	"github.com/fitfolio/fitfolio-backend/internal/models"
	"github.com/fitfolio/fitfolio-backend/internal/repository"
	"github.com/fitfolio/fitfolio-backend/internal/service"
)

// PublicHandler serves the site's read-only views. No auth, no mutation
// except the coupon redemption counter behind /coupons/apply.
type PublicHandler struct {
	pricingService  *service.PricingService
	brandRepo       *repository.ContentRepository[models.BrandService]
	achievementRepo *repository.ContentRepository[models.Achievement]
	faqRepo         *repository.ContentRepository[models.FAQ]
	reviewRepo      *repository.ContentRepository[models.Review]
	videoRepo       *repository.ContentRepository[models.Video]
	instagramRepo   *repository.ContentRepository[models.InstagramPost]
	transformRepo   *repository.ContentRepository[models.Transformation]
	galleryService  *service.GalleryService
	blogService     *service.BlogService
	settingsService *service.SettingsService
}

func NewPublicHandler(
	pricingService *service.PricingService,
	brandRepo *repository.ContentRepository[models.BrandService],
	achievementRepo *repository.ContentRepository[models.Achievement],
	faqRepo *repository.ContentRepository[models.FAQ],
	reviewRepo *repository.ContentRepository[models.Review],
	videoRepo *repository.ContentRepository[models.Video],
	instagramRepo *repository.ContentRepository[models.InstagramPost],
	transformRepo *repository.ContentRepository[models.Transformation],
	galleryService *service.GalleryService,
	blogService *service.BlogService,
	settingsService *service.SettingsService,
) *PublicHandler {
	return &PublicHandler{
		pricingService:  pricingService,
		brandRepo:       brandRepo,
		achievementRepo: achievementRepo,
		faqRepo:         faqRepo,
		reviewRepo:      reviewRepo,
		videoRepo:       videoRepo,
		instagramRepo:   instagramRepo,
		transformRepo:   transformRepo,
		galleryService:  galleryService,
		blogService:     blogService,
		settingsService: settingsService,
	}
}

// Packages returns the pricing page packages with computed offer state.
func (h *PublicHandler) Packages(c *fiber.Ctx) error {
	packages, err := h.pricingService.PublicPackages()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(models.SuccessResponse(packages, ""))
}

// DietPlans lists plans cheapest first, optionally filtered by goal category.
func (h *PublicHandler) DietPlans(c *fiber.Ctx) error {
	plans, err := h.pricingService.PublicDietPlans()
	if err != nil {
		return fail(c, err)
	}

	if category := c.Query("category"); category != "" {
		filtered := plans[:0]
		for _, p := range plans {
			if p.Category == category {
				filtered = append(filtered, p)
			}
		}
		plans = filtered
	}
	return c.JSON(models.SuccessResponse(plans, ""))
}

// BrandServices lists active brand-promotion offerings in display order.
func (h *PublicHandler) BrandServices(c *fiber.Ctx) error {
	rows, err := h.brandRepo.List()
	if err != nil {
		return fail(c, err)
	}

	active := rows[:0]
	for _, r := range rows {
		if r.Active {
			active = append(active, r)
		}
	}
	return c.JSON(models.SuccessResponse(active, ""))
}

func (h *PublicHandler) Achievements(c *fiber.Ctx) error {
	rows, err := h.achievementRepo.List()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(models.SuccessResponse(rows, ""))
}

func (h *PublicHandler) FAQs(c *fiber.Ctx) error {
	rows, err := h.faqRepo.List()
	if err != nil {
		return fail(c, err)
	}

	if category := c.Query("category"); category != "" {
		filtered := rows[:0]
		for _, f := range rows {
			if f.Category == category {
				filtered = append(filtered, f)
			}
		}
		rows = filtered
	}
	return c.JSON(models.SuccessResponse(rows, ""))
}

// Reviews leads with featured testimonials, keeping display order within
// each group.
func (h *PublicHandler) Reviews(c *fiber.Ctx) error {
	rows, err := h.reviewRepo.List()
	if err != nil {
		return fail(c, err)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Featured && !rows[j].Featured
	})
	return c.JSON(models.SuccessResponse(rows, ""))
}

func (h *PublicHandler) Videos(c *fiber.Ctx) error {
	rows, err := h.videoRepo.List()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(models.SuccessResponse(rows, ""))
}

// Gallery returns photos pinned-first, optionally filtered by category.
// ?limit caps the result for the home page grid.
func (h *PublicHandler) Gallery(c *fiber.Ctx) error {
	photos, err := h.galleryService.List(c.Query("category"))
	if err != nil {
		return fail(c, err)
	}

	if limit := c.QueryInt("limit", 0); limit > 0 && limit < len(photos) {
		photos = photos[:limit]
	}
	return c.JSON(models.SuccessResponse(photos, ""))
}

func (h *PublicHandler) InstagramPosts(c *fiber.Ctx) error {
	rows, err := h.instagramRepo.List()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(models.SuccessResponse(rows, ""))
}

func (h *PublicHandler) Transformations(c *fiber.Ctx) error {
	rows, err := h.transformRepo.List()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(models.SuccessResponse(rows, ""))
}

// BlogPosts lists published posts, newest first. ?limit caps the result for
// the home page teaser.
func (h *PublicHandler) BlogPosts(c *fiber.Ctx) error {
	posts, err := h.blogService.ListPublished(c.QueryInt("limit", 0))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(models.SuccessResponse(posts, ""))
}

func (h *PublicHandler) BlogPostBySlug(c *fiber.Ctx) error {
	post, err := h.blogService.GetPublishedBySlug(c.Params("slug"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(models.SuccessResponse(post, ""))
}

// Settings exposes the public settings map: WhatsApp number, greeting image
// and the home page stats.
func (h *PublicHandler) Settings(c *fiber.Ctx) error {
	settings, err := h.settingsService.List()
	if err != nil {
		return fail(c, err)
	}

	out := make(map[string]string, len(settings))
	for _, s := range settings {
		out[s.Key] = s.Value
	}
	return c.JSON(models.SuccessResponse(out, ""))
}
