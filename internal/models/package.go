package models

import (
	"time"
)

// PackageFeature is a single line item on a package card. Included=false rows
// are still shown, struck through.
type PackageFeature struct {
	Text     string `json:"text"`
	Included bool   `json:"included"`
}

// ServicePackage is a priced service offering on the pricing page. Price is
// free text: a currency-prefixed amount ("₹3,000") or the literal "Custom".
type ServicePackage struct {
	ID                 uint             `json:"id" gorm:"primaryKey"`
	Name               string           `json:"name" gorm:"not null"`
	Tagline            string           `json:"tagline"`
	Icon               string           `json:"icon" gorm:"default:'dumbbell'"`
	Price              string           `json:"price" gorm:"not null;default:'Custom'"`
	Duration           string           `json:"duration" gorm:"default:'month'"`
	Popular            bool             `json:"popular" gorm:"default:false"`
	Features           []PackageFeature `json:"features" gorm:"type:json;serializer:json"`
	SortOrder          int              `json:"sort_order" gorm:"default:0"`
	DiscountPercentage int              `json:"discount_percentage" gorm:"default:0"`
	DiscountLabel      string           `json:"discount_label"`
	OfferEndsAt        *time.Time       `json:"offer_ends_at"`
	CreatedAt          time.Time        `json:"created_at"`
	UpdatedAt          time.Time        `json:"updated_at"`
}

type ServicePackageRequest struct {
	Name               string           `json:"name" validate:"required"`
	Tagline            string           `json:"tagline"`
	Icon               string           `json:"icon"`
	Price              string           `json:"price"`
	Duration           string           `json:"duration"`
	Popular            bool             `json:"popular"`
	Features           []PackageFeature `json:"features"`
	SortOrder          int              `json:"sort_order"`
	DiscountPercentage int              `json:"discount_percentage" validate:"gte=0,lte=100"`
	DiscountLabel      string           `json:"discount_label"`
	OfferEndsAt        *time.Time       `json:"offer_ends_at"`
}

// PackageResponse decorates a ServicePackage with the computed offer state so
// the site can decide whether to render the countdown.
type PackageResponse struct {
	ServicePackage
	OfferActive bool `json:"offer_active"`
}
