package models

// PriceQuote is the pricing engine's output. Original and Discounted are nil
// for custom-priced packages, where discounting is a no-op.
type PriceQuote struct {
	Original      *int64 `json:"original"`
	Discounted    *int64 `json:"discounted"`
	TotalDiscount int    `json:"total_discount"`
}

// HasDiscount reports whether a reduced price should be rendered.
func (q PriceQuote) HasDiscount() bool {
	return q.Discounted != nil && q.Original != nil && *q.Discounted < *q.Original
}

type QuoteRequest struct {
	PackageID  uint   `json:"package_id"`
	DietPlanID uint   `json:"diet_plan_id"`
	CouponCode string `json:"coupon_code"`
}

// QuoteResponse carries everything the booking flow needs: the computed
// price, the enquiry text and the WhatsApp deep link to open.
type QuoteResponse struct {
	Name         string         `json:"name"`
	Quote        PriceQuote     `json:"quote"`
	Coupon       *AppliedCoupon `json:"coupon,omitempty"`
	Message      string         `json:"message"`
	WhatsAppLink string         `json:"whatsapp_link"`
}

type EnquiryRequest struct {
	Name    string `json:"name" validate:"required"`
	Phone   string `json:"phone"`
	Service string `json:"service" validate:"required"`
	Message string `json:"message"`
}

type EnquiryResponse struct {
	WhatsAppLink string `json:"whatsapp_link"`
}

// ReorderRequest is the drag-to-reorder payload: ids in their new display
// order. Rows are renumbered to match.
type ReorderRequest struct {
	IDs []uint `json:"ids" validate:"required,min=1"`
}
