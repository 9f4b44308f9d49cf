package feedback

import "strings"

// Coupon is derived from the review id and never persisted; it can always be
// recomputed from the review alone.
type Coupon struct {
	CouponID        string `json:"coupon_id"`
	DiscountPercent int    `json:"discount_percent"`
}

// MintCoupon derives the coupon for a review.
func MintCoupon(reviewID string, discountPercent int) Coupon {
	short := reviewID
	if len(short) > 8 {
		short = short[:8]
	}
	return Coupon{
		CouponID:        "CXOS-" + strings.ToUpper(short),
		DiscountPercent: discountPercent,
	}
}
