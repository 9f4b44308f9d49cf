package models

import "time"

// EligibilityRecord caps submissions to one per cooldown window per identity.
// The key is tagged ("customer:<token>" or "guest:<phone>") so a phone number
// can never collide with a customer id.
type EligibilityRecord struct {
	IdentityKey     string    `json:"identity_key" gorm:"primaryKey;size:191"`
	LastReviewDate  time.Time `json:"last_review_date" gorm:"not null"`
	NextAllowedDate time.Time `json:"next_allowed_date" gorm:"not null"`
	UpdatedAt       time.Time `json:"updated_at"`
}
