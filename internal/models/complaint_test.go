package models_test

import (
	"testing"

	"hostelgo/backend/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestValidStatus(t *testing.T) {
	tests := []struct {
		status models.Status
		valid  bool
	}{
		{models.StatusPending, true},
		{models.StatusInProgress, true},
		{models.StatusResolved, true},
		{models.Status("closed"), false},
		{models.Status(""), false},
		{models.Status("Resolved"), false}, // case-sensitive
	}

	for _, tt := range tests {
		assert.Equal(t, tt.valid, models.ValidStatus(tt.status), "status %q", tt.status)
	}
}

func TestValidCategory(t *testing.T) {
	for _, c := range []models.Category{
		models.CategoryPlumbing, models.CategoryElectrical, models.CategoryFurniture,
		models.CategoryCleaning, models.CategoryInternet, models.CategorySecurity,
		models.CategoryOther,
	} {
		assert.True(t, models.ValidCategory(c), "category %q", c)
	}

	assert.False(t, models.ValidCategory(models.Category("roof")))
	assert.False(t, models.ValidCategory(models.Category("")))
}

func TestComplaintBeforeCreate_GeneratesUUID(t *testing.T) {
	complaint := &models.Complaint{RoomNumber: "A-101"}

	assert.NoError(t, complaint.BeforeCreate(nil))

	_, err := uuid.Parse(complaint.ID)
	assert.NoError(t, err, "Complaint ID must be a valid UUID string")
}

func TestAdminUpdateBeforeCreate_GeneratesUUID(t *testing.T) {
	update := &models.AdminUpdate{ComplaintID: "complaint-1"}

	assert.NoError(t, update.BeforeCreate(nil))

	_, err := uuid.Parse(update.ID)
	assert.NoError(t, err)
}
