package models

import (
	"time"

	"gorm.io/gorm"
)

// StaffUser can log in to the admin surface and resolve tickets.
type StaffUser struct {
	gorm.Model
	Name      string     `json:"name" gorm:"default:''"`
	Email     string     `json:"email" gorm:"unique;not null"`
	Password  string     `json:"-" gorm:"not null"`
	Role      string     `json:"role" gorm:"default:'STAFF'"`
	LastLogin *time.Time `json:"last_login"`
	IsDeleted bool       `json:"is_deleted" gorm:"default:false"`
}
