package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Ticket statuses. Escalated is set by the SLA sweeper when a deadline is missed.
const (
	TicketOpen       = "open"
	TicketInProgress = "in_progress"
	TicketResolved   = "resolved"
	TicketEscalated  = "escalated"
)

// SupportTicket tracks follow-up on passive/detractor feedback from identified
// users. The SLA deadline is fixed at creation and never recomputed.
type SupportTicket struct {
	ID              string    `json:"id" gorm:"type:uuid;primaryKey"`
	ReviewID        string    `json:"review_id" gorm:"not null;index"`
	IdentityKey     string    `json:"identity_key" gorm:"not null;index"`
	Status          string    `json:"status" gorm:"default:'open';index"`
	AssignedTo      string    `json:"assigned_to" gorm:"default:'care'"`
	SLADeadline     time.Time `json:"sla_deadline" gorm:"not null;index"`
	ResolutionNotes *string   `json:"resolution_notes"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (t *SupportTicket) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
