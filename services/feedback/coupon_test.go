package feedback

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMintCoupon(t *testing.T) {
	coupon := MintCoupon("abcd1234-e89b-12d3-a456-426614174000", 5)

	assert.Equal(t, "CXOS-ABCD1234", coupon.CouponID)
	assert.Equal(t, 5, coupon.DiscountPercent)
}

func TestMintCouponRecomputable(t *testing.T) {
	first := MintCoupon("f47ac10b-58cc-4372-a567-0e02b2c3d479", 10)
	second := MintCoupon("f47ac10b-58cc-4372-a567-0e02b2c3d479", 10)

	assert.Equal(t, first, second)
}

func TestMintCouponShortID(t *testing.T) {
	coupon := MintCoupon("abc", 5)

	assert.Equal(t, "CXOS-ABC", coupon.CouponID)
}
