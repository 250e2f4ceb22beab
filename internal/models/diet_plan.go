package models

import (
	"time"
)

// Diet plan goal categories.
const (
	DietCategoryWeightLoss  = "weight-loss"
	DietCategoryMuscleGain  = "muscle-gain"
	DietCategoryMaintenance = "maintenance"
	DietCategorySports      = "sports"
)

// DietPlan is a priced nutrition offering, filterable by goal category.
// Unlike packages the price is always numeric, so it is always discountable.
type DietPlan struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"not null"`
	Description string    `json:"description"`
	Category    string    `json:"category" gorm:"default:'weight-loss'"`
	Price       float64   `json:"price" gorm:"not null;default:0"`
	Duration    string    `json:"duration" gorm:"default:'1 Month'"`
	Features    []string  `json:"features" gorm:"type:json;serializer:json"`
	Popular     bool      `json:"popular" gorm:"default:false"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type DietPlanRequest struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description"`
	Category    string   `json:"category" validate:"omitempty,oneof=weight-loss muscle-gain maintenance sports"`
	Price       float64  `json:"price" validate:"gte=0"`
	Duration    string   `json:"duration"`
	Features    []string `json:"features"`
	Popular     bool     `json:"popular"`
}
