package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Sentiment tags derived from the rating
const (
	SentimentPromoter  = "promoter"
	SentimentPassive   = "passive"
	SentimentDetractor = "detractor"
)

// Review is immutable once created; sentiment is always derived from the rating.
type Review struct {
	ID            string         `json:"id" gorm:"type:uuid;primaryKey"`
	CustomerID    *string        `json:"customer_id" gorm:"index"` // verified customer token, nil for guests and anonymous
	IsNonCustomer bool           `json:"is_non_customer" gorm:"default:false"`
	Rating        int            `json:"rating" gorm:"not null;check:rating >= 1 AND rating <= 5"`
	NPS           *int           `json:"nps"`
	ReviewText    string         `json:"review_text" gorm:"type:text;not null"`
	Sentiment     string         `json:"sentiment" gorm:"not null;index"`
	GuestName     string         `json:"customer_name" gorm:"default:''"`
	GuestPhone    string         `json:"customer_phone" gorm:"default:''"`
	GuestEmail    string         `json:"customer_email" gorm:"default:''"`
	Meta          datatypes.JSON `json:"non_customer_meta"`
	CreatedAt     time.Time      `json:"created_at"`
}

func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
