package models

import (
	"time"
)

// Brand promotion categories.
const (
	BrandCategoryReel   = "reel"
	BrandCategoryStory  = "story"
	BrandCategoryPost   = "post"
	BrandCategoryBundle = "bundle"
)

// BrandService is a brand-promotion offering (sponsored reels, stories,
// posts, bundles). Inactive rows stay editable in the admin but are hidden
// from the public page.
type BrandService struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"not null"`
	Category    string    `json:"category" gorm:"default:'reel'"`
	Description string    `json:"description"`
	Price       float64   `json:"price" gorm:"not null;default:0"`
	Duration    string    `json:"duration" gorm:"default:'post'"`
	Features    []string  `json:"features" gorm:"type:json;serializer:json"`
	Popular     bool      `json:"popular" gorm:"default:false"`
	Active      bool      `json:"active" gorm:"default:true"`
	SortOrder   int       `json:"sort_order" gorm:"default:0"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type BrandServiceRequest struct {
	Name        string   `json:"name" validate:"required"`
	Category    string   `json:"category" validate:"omitempty,oneof=reel story post bundle"`
	Description string   `json:"description"`
	Price       float64  `json:"price" validate:"gte=0"`
	Duration    string   `json:"duration"`
	Features    []string `json:"features"`
	Popular     bool     `json:"popular"`
	Active      bool     `json:"active"`
	SortOrder   int      `json:"sort_order"`
}
