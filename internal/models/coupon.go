package models

import (
	"time"
)

// Coupon is a stackable percentage discount code. Codes are stored uppercase.
// UsageLimit nil means unlimited; UsageCount only ever goes up.
type Coupon struct {
	ID                 uint       `json:"id" gorm:"primaryKey"`
	Code               string     `json:"code" gorm:"uniqueIndex;not null"`
	DiscountPercentage int        `json:"discount_percentage" gorm:"not null;default:10"`
	Active             bool       `json:"active" gorm:"default:true"`
	ValidFrom          *time.Time `json:"valid_from"`
	ValidUntil         *time.Time `json:"valid_until"`
	UsageLimit         *int       `json:"usage_limit"`
	UsageCount         int        `json:"usage_count" gorm:"default:0"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

type CouponRequest struct {
	Code               string     `json:"code"`
	DiscountPercentage int        `json:"discount_percentage" validate:"gte=1,lte=100"`
	Active             bool       `json:"active"`
	ValidFrom          *time.Time `json:"valid_from"`
	ValidUntil         *time.Time `json:"valid_until"`
	UsageLimit         *int       `json:"usage_limit"`
}

type ApplyCouponRequest struct {
	Code string `json:"code" validate:"required"`
}

// AppliedCoupon is what a successful validation hands to the pricing engine.
type AppliedCoupon struct {
	Code               string `json:"code"`
	DiscountPercentage int    `json:"discount_percentage"`
}
