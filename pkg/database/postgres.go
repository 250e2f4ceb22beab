package database

import (
	"log"
	"os"

	"github.com/fitfolio/fitfolio-backend/internal/models"
	"github.com/fitfolio/fitfolio-backend/pkg/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func NewDatabase() *gorm.DB {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := RunMigrations(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return db
}

func RunMigrations(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.UserRole{},
		&models.ServicePackage{},
		&models.DietPlan{},
		&models.Coupon{},
		&models.Achievement{},
		&models.FAQ{},
		&models.Review{},
		&models.Video{},
		&models.GalleryPhoto{},
		&models.InstagramPost{},
		&models.Transformation{},
		&models.BrandService{},
		&models.BlogPost{},
		&models.SiteSetting{},
	)
	if err != nil {
		return err
	}

	if err := seedPackages(db); err != nil {
		return err
	}
	if err := seedSettings(db); err != nil {
		return err
	}
	return seedAdmin(db)
}

// seedPackages installs the four launch packages on an empty table.
func seedPackages(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.ServicePackage{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	packages := []models.ServicePackage{
		{
			Name:      "Personal Training",
			Tagline:   "1-on-1 gym sessions",
			Icon:      "dumbbell",
			Price:     "₹3,000",
			Duration:  "month",
			SortOrder: 1,
			Features: []models.PackageFeature{
				{Text: "Customized workout plan", Included: true},
				{Text: "In-person gym sessions", Included: true},
				{Text: "Form correction & spotting", Included: true},
				{Text: "Progress tracking", Included: true},
				{Text: "Diet guidance", Included: true},
				{Text: "24/7 WhatsApp support", Included: false},
				{Text: "Video analysis", Included: false},
			},
		},
		{
			Name:      "Online Coaching",
			Tagline:   "Train from anywhere",
			Icon:      "monitor",
			Price:     "₹2,000",
			Duration:  "month",
			Popular:   true,
			SortOrder: 2,
			Features: []models.PackageFeature{
				{Text: "Customized workout plan", Included: true},
				{Text: "Video demonstrations", Included: true},
				{Text: "Weekly check-ins", Included: true},
				{Text: "Progress tracking", Included: true},
				{Text: "Diet guidance", Included: true},
				{Text: "24/7 WhatsApp support", Included: true},
				{Text: "Video analysis", Included: true},
			},
		},
		{
			Name:      "Event Planning",
			Tagline:   "Fitness events & expos",
			Icon:      "calendar",
			Price:     "Custom",
			Duration:  "event",
			SortOrder: 3,
			Features: []models.PackageFeature{
				{Text: "Event concept & design", Included: true},
				{Text: "Venue coordination", Included: true},
				{Text: "Athlete management", Included: true},
				{Text: "Sponsorship handling", Included: true},
				{Text: "Marketing & promotion", Included: true},
				{Text: "On-day management", Included: true},
				{Text: "Post-event reporting", Included: true},
			},
		},
		{
			Name:      "Modeling / Brand",
			Tagline:   "Collaborations & shoots",
			Icon:      "camera",
			Price:     "Custom",
			Duration:  "project",
			SortOrder: 4,
			Features: []models.PackageFeature{
				{Text: "Brand collaboration", Included: true},
				{Text: "Product shoots", Included: true},
				{Text: "Social media promotion", Included: true},
				{Text: "Fitness campaigns", Included: true},
				{Text: "Content creation", Included: true},
				{Text: "Reel & video shoots", Included: true},
				{Text: "Long-term partnerships", Included: true},
			},
		},
	}

	for _, pkg := range packages {
		if err := db.Create(&pkg).Error; err != nil {
			return err
		}
	}
	return nil
}

// seedSettings makes sure every known settings key exists so the admin panel
// always has a row to edit.
func seedSettings(db *gorm.DB) error {
	defaults := map[string]string{
		models.SettingWhatsAppNumber: "",
		models.SettingGreetingImage:  "",
		models.SettingStatYears:      "8",
		models.SettingStatClients:    "500",
		models.SettingStatEvents:     "50",
		models.SettingStatPrograms:   "20",
	}

	for key, value := range defaults {
		var count int64
		if err := db.Model(&models.SiteSetting{}).Where("key = ?", key).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			if err := db.Create(&models.SiteSetting{Key: key, Value: value}).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

// seedAdmin creates the bootstrap admin account from ADMIN_EMAIL and
// ADMIN_PASSWORD. Skipped when the env vars are unset or the user exists.
func seedAdmin(db *gorm.DB) error {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		return nil
	}

	var count int64
	if err := db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashed, err := bcrypt.HashPassword(password)
	if err != nil {
		return err
	}

	user := models.User{
		Email:    email,
		Password: hashed,
		FullName: "Admin",
	}
	if err := db.Create(&user).Error; err != nil {
		return err
	}

	return db.Create(&models.UserRole{UserID: user.ID, Role: models.RoleAdmin}).Error
}
