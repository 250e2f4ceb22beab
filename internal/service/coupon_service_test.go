package service

import (
	"errors"
	"testing"
	"time"

	"github.com/fitfolio/fitfolio-backend/internal/models"
)

func newTestCouponService(store *fakeCouponStore, now time.Time) *CouponService {
	return &CouponService{
		store: store,
		now:   func() time.Time { return now },
	}
}

func intp(v int) *int { return &v }

func TestValidateAndApplyUnknownCode(t *testing.T) {
	svc := newTestCouponService(newFakeCouponStore(), time.Now())

	if _, err := svc.ValidateAndApply("NOPE"); !errors.Is(err, models.ErrCouponNotFound) {
		t.Fatalf("err = %v, want ErrCouponNotFound", err)
	}
}

func TestValidateAndApplyInactive(t *testing.T) {
	store := newFakeCouponStore(&models.Coupon{ID: 1, Code: "OFF", DiscountPercentage: 10, Active: false})
	svc := newTestCouponService(store, time.Now())

	if _, err := svc.ValidateAndApply("OFF"); !errors.Is(err, models.ErrCouponInactive) {
		t.Fatalf("err = %v, want ErrCouponInactive", err)
	}
}

func TestValidateAndApplyNotYetValid(t *testing.T) {
	from := time.Now().Add(time.Hour)
	store := newFakeCouponStore(&models.Coupon{ID: 1, Code: "SOON", DiscountPercentage: 10, Active: true, ValidFrom: &from})
	svc := newTestCouponService(store, time.Now())

	if _, err := svc.ValidateAndApply("SOON"); !errors.Is(err, models.ErrCouponInactive) {
		t.Fatalf("err = %v, want ErrCouponInactive", err)
	}
}

func TestValidateAndApplyExpired(t *testing.T) {
	until := time.Now().Add(-time.Hour)
	store := newFakeCouponStore(&models.Coupon{ID: 1, Code: "LATE", DiscountPercentage: 10, Active: true, ValidUntil: &until})
	svc := newTestCouponService(store, time.Now())

	if _, err := svc.ValidateAndApply("LATE"); !errors.Is(err, models.ErrCouponExpired) {
		t.Fatalf("err = %v, want ErrCouponExpired", err)
	}
}

func TestValidateAndApplyExhausted(t *testing.T) {
	store := newFakeCouponStore(&models.Coupon{
		ID: 1, Code: "FULL", DiscountPercentage: 10, Active: true,
		UsageLimit: intp(5), UsageCount: 5,
	})
	svc := newTestCouponService(store, time.Now())

	if _, err := svc.ValidateAndApply("FULL"); !errors.Is(err, models.ErrCouponExhausted) {
		t.Fatalf("err = %v, want ErrCouponExhausted", err)
	}
	if len(store.usage) != 0 {
		t.Fatal("exhausted coupon must not be counted")
	}
}

func TestValidateAndApplySuccess(t *testing.T) {
	store := newFakeCouponStore(&models.Coupon{
		ID: 1, Code: "FIT15", DiscountPercentage: 15, Active: true,
		UsageLimit: intp(10), UsageCount: 3,
	})
	svc := newTestCouponService(store, time.Now())

	applied, err := svc.ValidateAndApply("  fit15 ")
	if err != nil {
		t.Fatalf("ValidateAndApply: %v", err)
	}

	if applied.Code != "FIT15" || applied.DiscountPercentage != 15 {
		t.Errorf("applied = %+v", applied)
	}
	if store.usage[1] != 4 {
		t.Errorf("usage count = %d, want 4", store.usage[1])
	}
}

func TestValidateAndApplyNoLimit(t *testing.T) {
	store := newFakeCouponStore(&models.Coupon{
		ID: 2, Code: "OPEN", DiscountPercentage: 5, Active: true, UsageCount: 10000,
	})
	svc := newTestCouponService(store, time.Now())

	if _, err := svc.ValidateAndApply("OPEN"); err != nil {
		t.Fatalf("unlimited coupon rejected: %v", err)
	}
	if store.usage[2] != 10001 {
		t.Errorf("usage count = %d, want 10001", store.usage[2])
	}
}

func TestUpdateKeepsCodeWhenOmitted(t *testing.T) {
	svc := &CouponService{
		repo: newFakeCouponAdminStore(&models.Coupon{ID: 1, Code: "FIT15", DiscountPercentage: 15, Active: true}),
		now:  time.Now,
	}

	updated, err := svc.Update(1, models.CouponRequest{DiscountPercentage: 20, Active: true})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Code != "FIT15" {
		t.Fatalf("code = %q, want FIT15", updated.Code)
	}
	if updated.DiscountPercentage != 20 {
		t.Fatalf("discount = %d, want 20", updated.DiscountPercentage)
	}
}

func TestUpdateNormalizesNewCode(t *testing.T) {
	repo := newFakeCouponAdminStore(&models.Coupon{ID: 1, Code: "FIT15", DiscountPercentage: 15, Active: true})
	svc := &CouponService{repo: repo, now: time.Now}

	updated, err := svc.Update(1, models.CouponRequest{Code: "  summer25 ", DiscountPercentage: 25, Active: true})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Code != "SUMMER25" {
		t.Fatalf("code = %q, want SUMMER25", updated.Code)
	}
	if saved, _ := repo.GetByID(1); saved.Code != "SUMMER25" {
		t.Fatalf("stored code = %q, want SUMMER25", saved.Code)
	}
}
