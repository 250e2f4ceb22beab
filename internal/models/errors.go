package models

import (
	"errors"
)

// Coupon validation failures. Each one maps to a specific user-facing reason;
// callers must not collapse them into a generic error.
var (
	ErrCouponNotFound  = errors.New("coupon code not found")
	ErrCouponInactive  = errors.New("coupon is not active")
	ErrCouponExpired   = errors.New("coupon has expired")
	ErrCouponExhausted = errors.New("coupon usage limit reached")
)

var (
	ErrNotFound             = errors.New("record not found")
	ErrUnsupportedImageType = errors.New("unsupported image type, use JPEG, PNG, GIF or WebP")
	ErrWhatsAppNotSet       = errors.New("whatsapp number is not configured")
	ErrSlugTaken            = errors.New("slug is already in use")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrUnauthorized         = errors.New("unauthorized")
)
