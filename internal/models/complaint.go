package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq" // Необхідний для pq.StringArray
	"gorm.io/gorm"
)

// Status is the lifecycle state of a complaint. The transition graph is fully
// connected: an admin may move a complaint between any two states, including
// reopening a resolved one.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in-progress"
	StatusResolved   Status = "resolved"
)

// ValidStatus reports whether s is one of the three lifecycle states.
func ValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusInProgress, StatusResolved:
		return true
	}
	return false
}

// Category classifies what kind of maintenance problem a complaint is about.
type Category string

const (
	CategoryPlumbing   Category = "plumbing"
	CategoryElectrical Category = "electrical"
	CategoryFurniture  Category = "furniture"
	CategoryCleaning   Category = "cleaning"
	CategoryInternet   Category = "internet"
	CategorySecurity   Category = "security"
	CategoryOther      Category = "other"
)

// ValidCategory reports whether c is one of the fixed complaint categories.
func ValidCategory(c Category) bool {
	switch c {
	case CategoryPlumbing, CategoryElectrical, CategoryFurniture,
		CategoryCleaning, CategoryInternet, CategorySecurity, CategoryOther:
		return true
	}
	return false
}

// Complaint is a maintenance complaint submitted by a student. The owning
// student's display attributes are denormalized so a complaint can be rendered
// (and broadcast) without a follow-up user lookup.
type Complaint struct {
	ID          string   `gorm:"primaryKey" json:"id"`
	StudentID   string   `gorm:"not null;index:idx_student_created,priority:1" json:"studentId"`
	StudentName string   `gorm:"not null" json:"studentName"`
	UserID      string   `gorm:"not null" json:"userId"`
	RoomNumber  string   `gorm:"not null" json:"roomNumber"`
	Category    Category `gorm:"type:text;not null" json:"category"`
	Description string   `gorm:"type:text;not null" json:"description"`
	Status      Status   `gorm:"type:text;not null;index:idx_status_created,priority:1" json:"status"`

	AdminNotes *string `gorm:"type:text" json:"adminNotes"`

	// ResolvedByID, ResolvedByName and ResolvedAt are set together when the
	// complaint transitions to resolved, and refreshed on re-resolution.
	ResolvedByID   *string    `json:"resolvedBy"`
	ResolvedByName *string    `json:"resolvedByName"`
	ResolvedAt     *time.Time `json:"resolvedAt"`

	// Attachments holds optional photo URLs supplied at creation.
	Attachments pq.StringArray `gorm:"type:text[]" json:"attachments"`

	CreatedAt time.Time `gorm:"index:idx_student_created,priority:2;index:idx_status_created,priority:2" json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BeforeCreate генерує UUID для скарги, якщо ID ще не встановлено.
func (c *Complaint) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return
}

// Stats holds per-status complaint counts.
type Stats struct {
	Total      int64 `json:"total"`
	Pending    int64 `json:"pending"`
	InProgress int64 `json:"in-progress"`
	Resolved   int64 `json:"resolved"`
}
