package service

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/fitfolio/fitfolio-backend/internal/models"
	"github.com/fitfolio/fitfolio-backend/pkg/whatsapp"
	"gorm.io/gorm"
)

// MaxTotalDiscount caps stacked package and coupon discounts.
const MaxTotalDiscount = 100

// settingsStore is the slice of SettingsRepository the pricing engine needs.
type settingsStore interface {
	Get(key string) (*models.SiteSetting, error)
}

type PricingService struct {
	packageRepo  ContentStore[models.ServicePackage]
	dietRepo     ContentStore[models.DietPlan]
	couponSvc    *CouponService
	settingsRepo settingsStore
	now          func() time.Time
}

func NewPricingService(
	packageRepo ContentStore[models.ServicePackage],
	dietRepo ContentStore[models.DietPlan],
	couponSvc *CouponService,
	settingsRepo settingsStore,
) *PricingService {
	return &PricingService{
		packageRepo:  packageRepo,
		dietRepo:     dietRepo,
		couponSvc:    couponSvc,
		settingsRepo: settingsRepo,
		now:          time.Now,
	}
}

// ParseAmount extracts the numeric amount from a display price such as
// "₹3,000": the leading digit run with thousands separators dropped. Prices
// with no digits ("Custom") return nil.
func ParseAmount(price string) *int64 {
	var amount int64
	seen := false

	for _, r := range price {
		if r >= '0' && r <= '9' {
			amount = amount*10 + int64(r-'0')
			seen = true
			continue
		}
		if r == ',' && seen {
			continue
		}
		if seen {
			break
		}
	}

	if !seen {
		return nil
	}
	return &amount
}

// Quote applies a total discount percentage to a base amount. A nil base
// means custom pricing and discounting is a no-op. The discounted amount is
// rounded half up to the nearest whole unit.
func Quote(base *int64, packageDiscount int, coupon *models.AppliedCoupon) models.PriceQuote {
	total := packageDiscount
	if coupon != nil {
		total += coupon.DiscountPercentage
	}
	if total > MaxTotalDiscount {
		total = MaxTotalDiscount
	}
	if total < 0 {
		total = 0
	}

	quote := models.PriceQuote{TotalDiscount: total}
	if base == nil {
		return quote
	}

	quote.Original = base
	discounted := int64(math.Floor(float64(*base)*(1-float64(total)/100) + 0.5))
	quote.Discounted = &discounted
	return quote
}

// OfferActive reports whether a package's countdown should render: a discount
// with a deadline that has not passed. An expired deadline only hides the
// countdown, the discount keeps applying until the admin clears it.
func (s *PricingService) OfferActive(pkg *models.ServicePackage) bool {
	if pkg.DiscountPercentage <= 0 || pkg.OfferEndsAt == nil {
		return false
	}
	return s.now().Before(*pkg.OfferEndsAt)
}

// PublicPackages returns the pricing page view: packages in display order,
// decorated with computed offer state.
func (s *PricingService) PublicPackages() ([]models.PackageResponse, error) {
	packages, err := s.packageRepo.List()
	if err != nil {
		return nil, err
	}

	out := make([]models.PackageResponse, 0, len(packages))
	for i := range packages {
		out = append(out, models.PackageResponse{
			ServicePackage: packages[i],
			OfferActive:    s.OfferActive(&packages[i]),
		})
	}
	return out, nil
}

// PublicDietPlans returns plans for the diet page, cheapest first. Equal
// prices keep their stored order.
func (s *PricingService) PublicDietPlans() ([]models.DietPlan, error) {
	plans, err := s.dietRepo.List()
	if err != nil {
		return nil, err
	}

	sort.SliceStable(plans, func(i, j int) bool {
		return plans[i].Price < plans[j].Price
	})
	return plans, nil
}

// QuotePackage prices a package, optionally applying a coupon, and builds the
// WhatsApp enquiry hand-off for the result.
func (s *PricingService) QuotePackage(id uint, couponCode string) (*models.QuoteResponse, error) {
	pkg, err := s.packageRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}

	coupon, err := s.applyCoupon(couponCode)
	if err != nil {
		return nil, err
	}

	quote := Quote(ParseAmount(pkg.Price), pkg.DiscountPercentage, coupon)
	return s.buildQuoteResponse(pkg.Name, pkg.Price, quote, coupon)
}

// QuoteDietPlan prices a diet plan. Diet plans have numeric prices and no
// package-level discount, so only the coupon applies.
func (s *PricingService) QuoteDietPlan(id uint, couponCode string) (*models.QuoteResponse, error) {
	plan, err := s.dietRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}

	coupon, err := s.applyCoupon(couponCode)
	if err != nil {
		return nil, err
	}

	base := int64(math.Floor(plan.Price + 0.5))
	quote := Quote(&base, 0, coupon)
	display := fmt.Sprintf("₹%d", base)
	return s.buildQuoteResponse(plan.Name, display, quote, coupon)
}

func (s *PricingService) applyCoupon(code string) (*models.AppliedCoupon, error) {
	if code == "" {
		return nil, nil
	}
	return s.couponSvc.ValidateAndApply(code)
}

func (s *PricingService) buildQuoteResponse(name, displayPrice string, quote models.PriceQuote, coupon *models.AppliedCoupon) (*models.QuoteResponse, error) {
	message := EnquiryMessage(name, displayPrice, quote, coupon)

	link, err := s.whatsappLink(message)
	if err != nil {
		return nil, err
	}

	return &models.QuoteResponse{
		Name:         name,
		Quote:        quote,
		Coupon:       coupon,
		Message:      message,
		WhatsAppLink: link,
	}, nil
}

func (s *PricingService) whatsappLink(message string) (string, error) {
	setting, err := s.settingsRepo.Get(models.SettingWhatsAppNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", models.ErrWhatsAppNotSet
		}
		return "", err
	}

	link, err := whatsapp.BuildLink(setting.Value, message)
	if err != nil {
		return "", models.ErrWhatsAppNotSet
	}
	return link, nil
}

// EnquiryMessage renders the text pre-filled into the WhatsApp chat. A
// discounted quote names the original price, the reduced price and the coupon
// code when one was applied.
func EnquiryMessage(name, displayPrice string, quote models.PriceQuote, coupon *models.AppliedCoupon) string {
	if quote.HasDiscount() {
		msg := fmt.Sprintf("Hi Vivek! I'm interested in the \"%s\" package (₹%d instead of %s, %d%% off",
			name, *quote.Discounted, displayPrice, quote.TotalDiscount)
		if coupon != nil {
			msg += " with coupon " + coupon.Code
		}
		return msg + "). Can you share more details?"
	}

	if quote.Original != nil {
		return fmt.Sprintf("Hi Vivek! I'm interested in the \"%s\" package (%s). Can you share more details?", name, displayPrice)
	}
	return fmt.Sprintf("Hi Vivek! I'm interested in the \"%s\" package. Can you share more details?", name)
}

// GeneralEnquiryMessage renders the contact form hand-off text.
func GeneralEnquiryMessage(req models.EnquiryRequest) string {
	message := fmt.Sprintf("Hi Vivek! I'm %s and I'm interested in \"%s\".", req.Name, req.Service)
	if req.Message != "" {
		message += " " + req.Message
	}
	if req.Phone != "" {
		message += fmt.Sprintf(" (You can reach me at %s.)", req.Phone)
	}
	return message
}

// ChatLink is the bare "talk to me" deep link used by the floating button
// and the scan-to-chat QR code.
func (s *PricingService) ChatLink() (string, error) {
	return s.whatsappLink("Hi Vivek! I'd like to know more about your coaching programs.")
}

// Enquire turns a contact form submission into a WhatsApp deep link.
func (s *PricingService) Enquire(req models.EnquiryRequest) (*models.EnquiryResponse, error) {
	link, err := s.whatsappLink(GeneralEnquiryMessage(req))
	if err != nil {
		return nil, err
	}
	return &models.EnquiryResponse{WhatsAppLink: link}, nil
}
