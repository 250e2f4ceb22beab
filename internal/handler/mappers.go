package handler

import (
	"github.com/fitfolio/fitfolio-backend/internal/models"
)

// Request-to-entity copy functions for the generic content handlers. Zero
// values on optional fields fall back to the column defaults on create.

func ApplyAchievement(req *models.AchievementRequest, row *models.Achievement) {
	row.Title = req.Title
	row.Description = req.Description
	if req.Icon != "" {
		row.Icon = req.Icon
	}
	if req.Category != "" {
		row.Category = req.Category
	}
	row.Year = req.Year
	row.SortOrder = req.SortOrder
}

func ApplyFAQ(req *models.FAQRequest, row *models.FAQ) {
	row.Question = req.Question
	row.Answer = req.Answer
	if req.Category != "" {
		row.Category = req.Category
	}
	row.SortOrder = req.SortOrder
}

func ApplyReview(req *models.ReviewRequest, row *models.Review) {
	row.ClientName = req.ClientName
	row.Designation = req.Designation
	row.Review = req.Review
	row.Rating = req.Rating
	row.AvatarURL = req.AvatarURL
	row.Featured = req.Featured
	row.SortOrder = req.SortOrder
}

func ApplyVideo(req *models.VideoRequest, row *models.Video) {
	row.Title = req.Title
	row.URL = req.URL
	if req.Platform != "" {
		row.Platform = req.Platform
	}
	row.Thumbnail = req.Thumbnail
	row.SortOrder = req.SortOrder
}

func ApplyDietPlan(req *models.DietPlanRequest, row *models.DietPlan) {
	row.Name = req.Name
	row.Description = req.Description
	if req.Category != "" {
		row.Category = req.Category
	}
	row.Price = req.Price
	if req.Duration != "" {
		row.Duration = req.Duration
	}
	row.Features = req.Features
	row.Popular = req.Popular
}

func ApplyBrandService(req *models.BrandServiceRequest, row *models.BrandService) {
	row.Name = req.Name
	if req.Category != "" {
		row.Category = req.Category
	}
	row.Description = req.Description
	row.Price = req.Price
	if req.Duration != "" {
		row.Duration = req.Duration
	}
	row.Features = req.Features
	row.Popular = req.Popular
	row.Active = req.Active
	row.SortOrder = req.SortOrder
}

func ApplyServicePackage(req *models.ServicePackageRequest, row *models.ServicePackage) {
	row.Name = req.Name
	row.Tagline = req.Tagline
	if req.Icon != "" {
		row.Icon = req.Icon
	}
	if req.Price != "" {
		row.Price = req.Price
	}
	if req.Duration != "" {
		row.Duration = req.Duration
	}
	row.Popular = req.Popular
	row.Features = req.Features
	row.SortOrder = req.SortOrder
	row.DiscountPercentage = req.DiscountPercentage
	row.DiscountLabel = req.DiscountLabel
	row.OfferEndsAt = req.OfferEndsAt
}
