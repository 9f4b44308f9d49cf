package models

// Setting keys understood by the engine
const (
	SettingReviewFrequencyMonths = "review_frequency_months"
	SettingSLAHours              = "sla_hours"
	SettingCouponDiscountPercent = "coupon_discount_percent"
)

// Setting is a staff-tunable integer value. Missing rows fall back to the
// environment defaults in config.
type Setting struct {
	Name  string `json:"name" gorm:"primaryKey;size:64"`
	Value int    `json:"value" gorm:"not null"`
}
