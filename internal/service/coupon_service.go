package service

import (
	"errors"
	"strings"
	"time"

	"github.com/fitfolio/fitfolio-backend/internal/models"
	"github.com/fitfolio/fitfolio-backend/internal/repository"
	"github.com/fitfolio/fitfolio-backend/pkg/utils"
	"gorm.io/gorm"
)

// couponStore is the slice of CouponRepository the validator needs.
type couponStore interface {
	GetByCode(code string) (*models.Coupon, error)
	SetUsageCount(id uint, count int) error
}

// couponAdminStore is the slice the admin CRUD needs.
type couponAdminStore interface {
	List() ([]models.Coupon, error)
	GetByID(id uint) (*models.Coupon, error)
	Create(coupon *models.Coupon) error
	Save(coupon *models.Coupon) error
	Delete(id uint) error
}

type CouponService struct {
	repo  couponAdminStore
	store couponStore
	now   func() time.Time
}

func NewCouponService(repo *repository.CouponRepository) *CouponService {
	return &CouponService{
		repo:  repo,
		store: repo,
		now:   time.Now,
	}
}

// ValidateAndApply runs the coupon state machine and, on success, counts the
// redemption. The counter is a plain read-then-write: concurrent validations
// of the same code can undercount, which is acceptable for lead telemetry.
func (s *CouponService) ValidateAndApply(code string) (*models.AppliedCoupon, error) {
	coupon, err := s.store.GetByCode(code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrCouponNotFound
		}
		return nil, err
	}

	if !coupon.Active {
		return nil, models.ErrCouponInactive
	}

	now := s.now()
	if coupon.ValidFrom != nil && now.Before(*coupon.ValidFrom) {
		return nil, models.ErrCouponInactive
	}
	if coupon.ValidUntil != nil && !now.Before(*coupon.ValidUntil) {
		return nil, models.ErrCouponExpired
	}
	if coupon.UsageLimit != nil && coupon.UsageCount >= *coupon.UsageLimit {
		return nil, models.ErrCouponExhausted
	}

	if err := s.store.SetUsageCount(coupon.ID, coupon.UsageCount+1); err != nil {
		return nil, err
	}

	return &models.AppliedCoupon{
		Code:               coupon.Code,
		DiscountPercentage: coupon.DiscountPercentage,
	}, nil
}

func (s *CouponService) List() ([]models.Coupon, error) {
	return s.repo.List()
}

// Create stores the coupon with an uppercase code. An empty code gets a
// random 8-character one.
func (s *CouponService) Create(req models.CouponRequest) (*models.Coupon, error) {
	code := strings.ToUpper(strings.TrimSpace(req.Code))
	if code == "" {
		code = strings.ToUpper(utils.GenerateRandomString(8))
	}

	coupon := &models.Coupon{
		Code:               code,
		DiscountPercentage: req.DiscountPercentage,
		Active:             req.Active,
		ValidFrom:          req.ValidFrom,
		ValidUntil:         req.ValidUntil,
		UsageLimit:         req.UsageLimit,
	}
	if err := s.repo.Create(coupon); err != nil {
		return nil, err
	}
	return coupon, nil
}

func (s *CouponService) Update(id uint, req models.CouponRequest) (*models.Coupon, error) {
	coupon, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}

	if code := strings.ToUpper(strings.TrimSpace(req.Code)); code != "" {
		coupon.Code = code
	}
	coupon.DiscountPercentage = req.DiscountPercentage
	coupon.Active = req.Active
	coupon.ValidFrom = req.ValidFrom
	coupon.ValidUntil = req.ValidUntil
	coupon.UsageLimit = req.UsageLimit

	if err := s.repo.Save(coupon); err != nil {
		return nil, err
	}
	return coupon, nil
}

func (s *CouponService) Delete(id uint) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrNotFound
		}
		return err
	}
	return s.repo.Delete(id)
}
