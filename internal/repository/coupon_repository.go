package repository

import (
	"strings"

	"github.com/fitfolio/fitfolio-backend/internal/models"
	"gorm.io/gorm"
)

type CouponRepository struct {
	db *gorm.DB
}

func NewCouponRepository(db *gorm.DB) *CouponRepository {
	return &CouponRepository{db: db}
}

func (r *CouponRepository) List() ([]models.Coupon, error) {
	var coupons []models.Coupon
	err := r.db.Order("created_at DESC").Find(&coupons).Error
	return coupons, err
}

// GetByCode looks up a coupon by its normalized (uppercase) code.
func (r *CouponRepository) GetByCode(code string) (*models.Coupon, error) {
	var coupon models.Coupon
	err := r.db.Where("code = ?", strings.ToUpper(strings.TrimSpace(code))).First(&coupon).Error
	if err != nil {
		return nil, err
	}
	return &coupon, nil
}

func (r *CouponRepository) GetByID(id uint) (*models.Coupon, error) {
	var coupon models.Coupon
	err := r.db.First(&coupon, id).Error
	if err != nil {
		return nil, err
	}
	return &coupon, nil
}

func (r *CouponRepository) Create(coupon *models.Coupon) error {
	return r.db.Create(coupon).Error
}

func (r *CouponRepository) Save(coupon *models.Coupon) error {
	return r.db.Save(coupon).Error
}

func (r *CouponRepository) Delete(id uint) error {
	return r.db.Delete(&models.Coupon{}, id).Error
}

// SetUsageCount writes an absolute usage count. The caller reads the current
// count first; the write is deliberately not an atomic increment.
func (r *CouponRepository) SetUsageCount(id uint, count int) error {
	return r.db.Model(&models.Coupon{}).Where("id = ?", id).
		UpdateColumn("usage_count", count).Error
}
