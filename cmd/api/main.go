package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"

	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/fitfolio/fitfolio-backend/internal/config"
	"github.com/fitfolio/fitfolio-backend/internal/handler"
	"github.com/fitfolio/fitfolio-backend/internal/middleware"
	"github.com/fitfolio/fitfolio-backend/internal/models"
	"github.com/fitfolio/fitfolio-backend/internal/repository"
	"github.com/fitfolio/fitfolio-backend/internal/service"
	"github.com/fitfolio/fitfolio-backend/pkg/captcha"
	"github.com/fitfolio/fitfolio-backend/pkg/database"
	"github.com/fitfolio/fitfolio-backend/pkg/email"
	"github.com/fitfolio/fitfolio-backend/pkg/logger"
	"github.com/fitfolio/fitfolio-backend/pkg/storage"
	"github.com/fitfolio/fitfolio-backend/pkg/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	cfg := config.LoadConfig()
	zlog := logger.New()
	defer zlog.Sync()

	db := database.NewDatabase()

	// Repositories
	userRepo := repository.NewUserRepository(db)
	packageRepo := repository.NewContentRepository[models.ServicePackage](db, "sort_order ASC, id ASC")
	dietRepo := repository.NewContentRepository[models.DietPlan](db, "created_at DESC")
	brandRepo := repository.NewContentRepository[models.BrandService](db, "sort_order ASC, id ASC")
	couponRepo := repository.NewCouponRepository(db)
	achievementRepo := repository.NewContentRepository[models.Achievement](db, "sort_order ASC, id ASC")
	faqRepo := repository.NewContentRepository[models.FAQ](db, "sort_order ASC, id ASC")
	reviewRepo := repository.NewContentRepository[models.Review](db, "sort_order ASC, id ASC")
	videoRepo := repository.NewContentRepository[models.Video](db, "sort_order ASC, id ASC")
	galleryRepo := repository.NewContentRepository[models.GalleryPhoto](db, "created_at DESC")
	instagramRepo := repository.NewContentRepository[models.InstagramPost](db, "created_at DESC")
	transformRepo := repository.NewContentRepository[models.Transformation](db, "created_at DESC")
	blogRepo := repository.NewBlogRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)

	// Storage
	r2Storage, err := storage.NewR2Storage(cfg)
	if err != nil {
		log.Fatal("Failed to initialize R2 storage:", err)
	}

	// Email service
	emailService := email.NewEmailService(cfg.ResendAPIKey, cfg.MailFrom, cfg.AppBaseURL, zlog)

	// Services
	authService := service.NewAuthService(userRepo, emailService)
	mediaService := service.NewMediaService(r2Storage, zlog)
	couponService := service.NewCouponService(couponRepo)
	pricingService := service.NewPricingService(packageRepo, dietRepo, couponService, settingsRepo)
	galleryService := service.NewGalleryService(galleryRepo, mediaService)
	transformationService := service.NewTransformationService(transformRepo, mediaService)
	instagramService := service.NewInstagramService(instagramRepo, mediaService)
	blogService := service.NewBlogService(blogRepo, mediaService)
	settingsService := service.NewSettingsService(settingsRepo, mediaService)

	packageService := service.NewContentService(packageRepo)
	dietService := service.NewContentService(dietRepo)
	brandService := service.NewContentService(brandRepo)
	achievementService := service.NewContentService(achievementRepo)
	faqService := service.NewContentService(faqRepo)
	reviewService := service.NewContentService(reviewRepo)
	videoService := service.NewContentService(videoRepo)

	validator := utils.NewValidator()
	verifier := captcha.NewTurnstileVerifier(cfg.TurnstileKey)

	// Handlers
	authHandler := handler.NewAuthHandler(authService, validator)
	couponHandler := handler.NewCouponHandler(couponService, validator)
	pricingHandler := handler.NewPricingHandler(pricingService, verifier, validator)
	galleryHandler := handler.NewGalleryHandler(galleryService)
	transformationHandler := handler.NewTransformationHandler(transformationService)
	instagramHandler := handler.NewInstagramHandler(instagramService)
	blogHandler := handler.NewBlogHandler(blogService, validator)
	settingsHandler := handler.NewSettingsHandler(settingsService, validator)

	packageHandler := handler.NewContentHandler(packageService, validator, handler.ApplyServicePackage, "Package")
	dietHandler := handler.NewContentHandler(dietService, validator, handler.ApplyDietPlan, "Diet plan")
	brandHandler := handler.NewContentHandler(brandService, validator, handler.ApplyBrandService, "Brand service")
	achievementHandler := handler.NewContentHandler(achievementService, validator, handler.ApplyAchievement, "Achievement")
	faqHandler := handler.NewContentHandler(faqService, validator, handler.ApplyFAQ, "FAQ")
	reviewHandler := handler.NewContentHandler(reviewService, validator, handler.ApplyReview, "Review")
	videoHandler := handler.NewContentHandler(videoService, validator, handler.ApplyVideo, "Video")

	publicHandler := handler.NewPublicHandler(
		pricingService,
		brandRepo,
		achievementRepo,
		faqRepo,
		reviewRepo,
		videoRepo,
		instagramRepo,
		transformRepo,
		galleryService,
		blogService,
		settingsService,
	)

	// Router
	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowedOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Turnstile-Token",
		AllowMethods: "GET, POST, PUT, PATCH, DELETE",
	}))
	app.Use(fiberlogger.New())
	app.Use(limiter.New(limiter.Config{
		Max:        60,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
	}))

	api := app.Group("/api")

	// Public auth routes
	auth := api.Group("/auth")
	auth.Post("/login", authHandler.Login)
	auth.Post("/forgot-password", authHandler.ForgotPassword)
	auth.Post("/reset-password", authHandler.ResetPassword)

	// Public read views
	api.Get("/packages", publicHandler.Packages)
	api.Get("/diet-plans", publicHandler.DietPlans)
	api.Get("/brand-services", publicHandler.BrandServices)
	api.Get("/achievements", publicHandler.Achievements)
	api.Get("/faqs", publicHandler.FAQs)
	api.Get("/reviews", publicHandler.Reviews)
	api.Get("/videos", publicHandler.Videos)
	api.Get("/gallery", publicHandler.Gallery)
	api.Get("/instagram", publicHandler.InstagramPosts)
	api.Get("/transformations", publicHandler.Transformations)
	api.Get("/blog", publicHandler.BlogPosts)
	api.Get("/blog/:slug", publicHandler.BlogPostBySlug)
	api.Get("/settings", publicHandler.Settings)

	// Pricing and enquiry hand-off
	api.Post("/quote", pricingHandler.Quote)
	api.Post("/coupons/apply", couponHandler.Apply)
	api.Post("/enquiry", pricingHandler.Enquire)
	api.Get("/whatsapp-qr", pricingHandler.WhatsAppQR)

	// Admin routes
	admin := api.Group("/admin", middleware.AuthMiddleware(), middleware.AdminMiddleware(userRepo))
	{
		admin.Get("/me", authHandler.Me)
		admin.Post("/change-password", authHandler.ChangePassword)

		registerContent(admin, "/packages", packageHandler)
		registerContent(admin, "/diet-plans", dietHandler)
		registerContent(admin, "/brand-services", brandHandler)
		registerContent(admin, "/achievements", achievementHandler)
		registerContent(admin, "/faqs", faqHandler)
		registerContent(admin, "/reviews", reviewHandler)
		registerContent(admin, "/videos", videoHandler)

		coupons := admin.Group("/coupons")
		coupons.Get("/", couponHandler.List)
		coupons.Post("/", couponHandler.Create)
		coupons.Put("/:id", couponHandler.Update)
		coupons.Delete("/:id", couponHandler.Delete)

		gallery := admin.Group("/gallery")
		gallery.Get("/", galleryHandler.List)
		gallery.Post("/", galleryHandler.Upload)
		gallery.Patch("/:id", galleryHandler.Patch)
		gallery.Delete("/:id", galleryHandler.Delete)

		transformations := admin.Group("/transformations")
		transformations.Get("/", transformationHandler.List)
		transformations.Post("/", transformationHandler.Create)
		transformations.Delete("/:id", transformationHandler.Delete)

		instagram := admin.Group("/instagram")
		instagram.Get("/", instagramHandler.List)
		instagram.Post("/", instagramHandler.Create)
		instagram.Delete("/:id", instagramHandler.Delete)

		blog := admin.Group("/blog")
		blog.Get("/", blogHandler.List)
		blog.Get("/:id", blogHandler.Get)
		blog.Post("/", blogHandler.Create)
		blog.Put("/:id", blogHandler.Update)
		blog.Post("/:id/cover", blogHandler.UploadCover)
		blog.Delete("/:id", blogHandler.Delete)

		settings := admin.Group("/settings")
		settings.Get("/", settingsHandler.List)
		settings.Put("/", settingsHandler.Set)
		settings.Post("/greeting-image", settingsHandler.UploadGreetingImage)
	}

	zlog.Infow("starting server", "port", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}

// registerContent wires the uniform CRUD + reorder routes for one collection.
func registerContent[T any, R any](router fiber.Router, prefix string, h *handler.ContentHandler[T, R]) {
	group := router.Group(prefix)
	group.Get("/", h.List)
	group.Get("/:id", h.Get)
	group.Post("/", h.Create)
	group.Put("/:id", h.Update)
	group.Delete("/:id", h.Delete)
	group.Post("/reorder", h.Reorder)
}
