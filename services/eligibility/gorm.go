package eligibility

import (
	"context"
	"errors"
	"time"

	"cxos/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCache stores eligibility records in the SQL database.
type GormCache struct {
	db *gorm.DB
}

func NewGormCache(db *gorm.DB) *GormCache {
	return &GormCache{db: db}
}

func (c *GormCache) Check(ctx context.Context, key string) (Status, error) {
	var record models.EligibilityRecord
	err := c.db.WithContext(ctx).Where("identity_key = ?", key).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Status{Eligible: true}, nil
	}
	if err != nil {
		return Status{}, err
	}

	if !record.NextAllowedDate.After(time.Now()) {
		return Status{Eligible: true}, nil
	}
	return Status{Eligible: false, NextAllowedAt: record.NextAllowedDate}, nil
}

func (c *GormCache) Record(ctx context.Context, key string, last, next time.Time) error {
	record := models.EligibilityRecord{
		IdentityKey:     key,
		LastReviewDate:  last,
		NextAllowedDate: next,
	}
	return c.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "identity_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"last_review_date", "next_allowed_date", "updated_at"}),
	}).Create(&record).Error
}
