package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AdminUpdate is one entry of a complaint's append-only audit ledger. Exactly
// one is written per successful status transition and it is never mutated
// afterwards. The acting admin's name is denormalized for display.
type AdminUpdate struct {
	ID             string  `gorm:"primaryKey" json:"id"`
	ComplaintID    string  `gorm:"not null;index:idx_complaint_created,priority:1" json:"complaintId"`
	AdminID        string  `gorm:"not null;index" json:"adminId"`
	AdminName      string  `gorm:"not null" json:"adminName"`
	PreviousStatus Status  `gorm:"type:text;not null" json:"previousStatus"`
	NewStatus      Status  `gorm:"type:text;not null" json:"newStatus"`
	Notes          *string `gorm:"type:text" json:"notes"`

	CreatedAt time.Time `gorm:"index:idx_complaint_created,priority:2" json:"createdAt"`
}

// BeforeCreate генерує UUID для запису аудиту, якщо ID ще не встановлено.
func (u *AdminUpdate) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return
}
