package models_test

import (
	"testing"

	"hostelgo/backend/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestUserBeforeCreate_GeneratesUUID verifies that the BeforeCreate hook generates a valid UUID.
func TestUserBeforeCreate_GeneratesUUID(t *testing.T) {
	user := &models.User{
		UserID: "S-2024-001",
		Name:   "Student S",
		Email:  "s@example.com",
		Role:   models.RoleStudent,
	}

	assert.Empty(t, user.ID, "User ID should be empty before BeforeCreate")

	err := user.BeforeCreate(nil) // nil *gorm.DB is acceptable for this hook

	assert.NoError(t, err)
	assert.NotEmpty(t, user.ID, "User ID must be populated after BeforeCreate")

	parsedUUID, parseErr := uuid.Parse(user.ID)
	assert.NoError(t, parseErr, "User ID must be a valid UUID string")
	assert.NotEqual(t, uuid.Nil, parsedUUID)
}

// TestUserBeforeCreate_PreservesExistingID verifies that the hook doesn't overwrite an existing ID.
func TestUserBeforeCreate_PreservesExistingID(t *testing.T) {
	existingID := uuid.New().String()
	user := &models.User{ID: existingID, Role: models.RoleAdmin}

	err := user.BeforeCreate(nil)

	assert.NoError(t, err)
	assert.Equal(t, existingID, user.ID, "BeforeCreate should preserve existing ID")
}

func TestUserPassword_HashAndCheck(t *testing.T) {
	user := &models.User{}

	require.NoError(t, user.SetPassword("hunter2secret"))
	assert.NotEmpty(t, user.PasswordHash)
	assert.NotEqual(t, "hunter2secret", user.PasswordHash, "password must not be stored in plaintext")

	assert.True(t, user.CheckPassword("hunter2secret"))
	assert.False(t, user.CheckPassword("wrong"))
	assert.False(t, user.CheckPassword(""))
}

func TestValidRole(t *testing.T) {
	assert.True(t, models.ValidRole(models.RoleStudent))
	assert.True(t, models.ValidRole(models.RoleAdmin))
	assert.False(t, models.ValidRole("superuser"))
	assert.False(t, models.ValidRole(""))
}

func TestPrincipalFromUser(t *testing.T) {
	user := &models.User{
		ID:     "id-1",
		UserID: "ADM-01",
		Name:   "Admin A",
		Email:  "a@example.com",
		Role:   models.RoleAdmin,
	}

	p := models.PrincipalFromUser(user)

	assert.Equal(t, "id-1", p.ID)
	assert.Equal(t, "ADM-01", p.UserID)
	assert.Equal(t, "Admin A", p.Name)
	assert.True(t, p.IsAdmin())
	assert.False(t, p.IsStudent())
}
