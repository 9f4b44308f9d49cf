package settings

import (
	"context"

	"cxos/models"

	"gorm.io/gorm"
)

// Provider supplies staff-tunable integers. Implementations must fall back to
// the given default when the value is missing or unreadable.
type Provider interface {
	GetInt(ctx context.Context, name string, defaultValue int) int
}

// Store reads settings from the database.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) GetInt(ctx context.Context, name string, defaultValue int) int {
	var setting models.Setting
	if err := s.db.WithContext(ctx).Where("name = ?", name).First(&setting).Error; err != nil {
		return defaultValue
	}
	return setting.Value
}
